package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/TrustedSamu/Dome1v1/internal"
	"github.com/TrustedSamu/Dome1v1/internal/metrics"
	"github.com/TrustedSamu/Dome1v1/internal/service"
	"github.com/TrustedSamu/Dome1v1/internal/storage"
)

// Scheduler fires the daily reset once per local day boundary. The default
// schedule is midnight; the cron spec is configurable for testing in odd
// timezones. Daily cadence means firings never overlap.
type Scheduler struct {
	cron   *cron.Cron
	repo   storage.UserRepository
	today  service.DateProvider
	logger internal.Logger
}

func New(repo storage.UserRepository, today service.DateProvider, logger internal.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(cron.WithLocation(time.Local)),
		repo:   repo,
		today:  today,
		logger: logger,
	}
}

func (s *Scheduler) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Infof("daily reset scheduled: %s", spec)
	return nil
}

func (s *Scheduler) run() {
	metrics.ResetRunsTotal.Inc()
	winner, err := service.RunDailyReset(context.Background(), s.repo, s.today(), s.logger)
	if err != nil {
		metrics.ResetFailuresTotal.Inc()
		return
	}
	if winner != "" {
		metrics.WinsAwardedTotal.Inc()
	}
}

// Stop halts the cron loop; an in-flight reset runs to completion.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
