package api

import (
	"github.com/TrustedSamu/Dome1v1/internal"
	"github.com/TrustedSamu/Dome1v1/internal/service"
	"github.com/TrustedSamu/Dome1v1/internal/storage"
)

type App interface {
	Logger() internal.Logger
	Users() storage.UserRepository
	Today() service.DateProvider
}
