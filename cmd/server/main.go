package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/TrustedSamu/Dome1v1/internal"
	"github.com/TrustedSamu/Dome1v1/internal/api"
	"github.com/TrustedSamu/Dome1v1/internal/config"
	"github.com/TrustedSamu/Dome1v1/internal/metrics"
	"github.com/TrustedSamu/Dome1v1/internal/roster"
	"github.com/TrustedSamu/Dome1v1/internal/scheduler"
	"github.com/TrustedSamu/Dome1v1/internal/service"
	"github.com/TrustedSamu/Dome1v1/internal/storage"
)

type application struct {
	logger internal.Logger
	users  storage.UserRepository
	today  service.DateProvider
}

func (a *application) Logger() internal.Logger       { return a.logger }
func (a *application) Users() storage.UserRepository { return a.users }
func (a *application) Today() service.DateProvider   { return a.today }

func main() {
	cfg := config.Load()
	logger := internal.NewLogger(cfg.LogLevel, cfg.LogPath)

	repo, err := newRepository(cfg, logger)
	if err != nil {
		logger.Fatalf("failed to init storage: %v", err)
	}

	participants := roster.New(cfg.Roster)
	ctx := context.Background()
	if err := participants.EnsureUsers(ctx, repo, logger); err != nil {
		logger.Fatalf("failed to initialize roster users: %v", err)
	}

	metrics.MustRegister(prometheus.DefaultRegisterer)

	app := &application{logger: logger, users: repo, today: service.Today}

	sched := scheduler.New(repo, service.Today, logger)
	if err := sched.Start(cfg.ResetSchedule); err != nil {
		logger.Fatalf("failed to start reset scheduler: %v", err)
	}

	router := api.NewRouter(app, participants)
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Infof("server running on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	sched.Stop()

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("server shutdown: %v", err)
	}
	if closer, ok := repo.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			logger.Errorf("storage shutdown: %v", err)
		}
	}
}

func newRepository(cfg *config.Config, logger internal.Logger) (storage.UserRepository, error) {
	if cfg.StorageBackend == "postgres" {
		return storage.NewPostgresRepository(cfg.PostgresDSN, logger)
	}
	if dir := filepath.Dir(cfg.UsersFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return storage.NewFileRepository(cfg.UsersFile, logger)
}
