package storage

import "github.com/TrustedSamu/Dome1v1/internal"

func NewFileRepository(usersFile string, logger internal.Logger) (UserRepository, error) {
	return NewFileStorage(usersFile, logger)
}

func NewPostgresRepository(dsn string, logger internal.Logger) (UserRepository, error) {
	return NewPostgresStorage(dsn, logger)
}
