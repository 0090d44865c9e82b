package roster

import (
	"context"
	"errors"

	"github.com/TrustedSamu/Dome1v1/internal"
	"github.com/TrustedSamu/Dome1v1/internal/storage"
)

// Roster is the fixed set of participants. There is no authentication; a
// request's identity is its :name path segment checked against this set.
type Roster struct {
	names []string
	index map[string]bool
}

func New(names []string) *Roster {
	r := &Roster{names: names, index: make(map[string]bool, len(names))}
	for _, n := range names {
		r.index[n] = true
	}
	return r
}

func (r *Roster) Contains(name string) bool {
	return r.index[name]
}

func (r *Roster) Names() []string {
	return r.names
}

func (r *Roster) Size() int {
	return len(r.names)
}

// EnsureUsers creates an empty record for every roster member missing from
// the store. Run once at startup.
func (r *Roster) EnsureUsers(ctx context.Context, repo storage.UserRepository, logger internal.Logger) error {
	for _, name := range r.names {
		_, err := repo.GetUser(ctx, name)
		if err == nil {
			continue
		}
		if !errors.Is(err, storage.ErrUserNotFound) {
			return err
		}
		logger.Infof("initializing user: %s", name)
		if err := repo.CreateUser(ctx, internal.NewUser(name)); err != nil {
			return err
		}
	}
	return nil
}
