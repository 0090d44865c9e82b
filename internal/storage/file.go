package storage

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/TrustedSamu/Dome1v1/internal"
)

// FileStorage keeps every user record in memory and persists the whole set
// to a single JSON file through a debounced background save worker.
type FileStorage struct {
	users        map[string]*internal.User
	mu           sync.RWMutex
	usersFile    string
	saveChan     chan struct{}
	shutdownChan chan struct{}
	saveDelay    time.Duration
	logger       internal.Logger
}

func NewFileStorage(usersFile string, logger internal.Logger) (*FileStorage, error) {
	s := &FileStorage{
		users:        make(map[string]*internal.User),
		usersFile:    usersFile,
		saveChan:     make(chan struct{}, 1),
		shutdownChan: make(chan struct{}),
		saveDelay:    500 * time.Millisecond,
		logger:       logger,
	}

	if err := s.loadUsers(); err != nil {
		logger.Errorf("storage: failed to load users: %v", err)
		return nil, err
	}

	go s.saveWorker()

	return s, nil
}

func (s *FileStorage) loadUsers() error {
	file, err := os.Open(s.usersFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	var users []*internal.User
	if err := json.NewDecoder(file).Decode(&users); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range users {
		s.users[u.Name] = u
	}
	return nil
}

func atomicWriteFileJSON(filePath string, data interface{}) error {
	tempFile := filePath + ".tmp"
	f, err := os.Create(tempFile)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tempFile)
		return err
	}

	return os.Rename(tempFile, filePath)
}

func (s *FileStorage) saveUsers() error {
	s.mu.RLock()
	users := make([]*internal.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	s.mu.RUnlock()

	// Stable file output
	sort.Slice(users, func(i, j int) bool { return users[i].Name < users[j].Name })

	return atomicWriteFileJSON(s.usersFile, users)
}

// saveWorker batches save operations to avoid frequent disk writes.
func (s *FileStorage) saveWorker() {
	timer := time.NewTimer(s.saveDelay)
	defer timer.Stop()

	for {
		select {
		case <-s.saveChan:
			timer.Reset(s.saveDelay)
		case <-timer.C:
			if err := s.saveUsers(); err != nil {
				s.logger.Errorf("storage: error saving users: %v", err)
			}
		case <-s.shutdownChan:
			return
		}
	}
}

func (s *FileStorage) requestSave() {
	select {
	case s.saveChan <- struct{}{}:
	default:
	}
}

func (s *FileStorage) GetUser(ctx context.Context, name string) (*internal.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[name]
	if !ok {
		return nil, ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (s *FileStorage) GetAllUsers(ctx context.Context) ([]internal.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]internal.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, *u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Name < users[j].Name })
	return users, nil
}

func (s *FileStorage) CreateUser(ctx context.Context, user *internal.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.Name]; exists {
		return nil
	}
	copied := *user
	s.users[user.Name] = &copied
	s.requestSave()
	return nil
}

func (s *FileStorage) ReplaceUserFields(ctx context.Context, name string, patch UserPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[name]
	if !ok {
		// Missing user on a mutating call is a no-op.
		return nil
	}

	if patch.Tasks != nil {
		u.Tasks = *patch.Tasks
	}
	if patch.Training != nil {
		u.Training = *patch.Training
	}
	if patch.Insights != nil {
		u.Insights = *patch.Insights
	}
	if patch.Sleep != nil {
		sleep := *patch.Sleep
		u.Sleep = &sleep
	}
	if patch.Stats != nil {
		u.Stats = *patch.Stats
	}

	s.requestSave()
	return nil
}

// Close stops the save worker and flushes pending data synchronously.
func (s *FileStorage) Close() error {
	close(s.shutdownChan)
	return s.saveUsers()
}

var _ UserRepository = (*FileStorage)(nil)
