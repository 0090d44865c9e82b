package storage

import (
	"context"
	"errors"

	"github.com/TrustedSamu/Dome1v1/internal"
)

// ErrUserNotFound is returned by GetUser when no record exists for the name.
var ErrUserNotFound = errors.New("storage: user not found")

// UserPatch is a merge-style partial update. Nil fields are left untouched;
// a non-nil field replaces that whole field tree, matching the granularity
// of a document-store merge update.
type UserPatch struct {
	Tasks    *[]internal.Task
	Training *[]internal.TrainingEntry
	Insights *[]internal.Insight
	Sleep    *internal.SleepRecord
	Stats    *internal.Stats
}

// IsEmpty reports whether the patch would change nothing.
func (p UserPatch) IsEmpty() bool {
	return p.Tasks == nil && p.Training == nil && p.Insights == nil && p.Sleep == nil && p.Stats == nil
}

type UserRepository interface {
	GetUser(ctx context.Context, name string) (*internal.User, error)
	GetAllUsers(ctx context.Context) ([]internal.User, error)
	CreateUser(ctx context.Context, user *internal.User) error

	// ReplaceUserFields applies a partial update to one user record.
	// A missing user is a no-op, not an error.
	ReplaceUserFields(ctx context.Context, name string, patch UserPatch) error
}
