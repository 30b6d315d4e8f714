package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrijs2005/pegasus/internal/logging"
	"github.com/dmitrijs2005/pegasus/internal/server/config"
	"github.com/robfig/cron/v3"
)

// Scheduler registers the jobs with cron. A panicking job is recovered and
// logged, the next run still happens.
type Scheduler struct {
	cron   *cron.Cron
	jobs   *Jobs
	logger logging.Logger
	cfg    *config.Config
}

func NewScheduler(jobs *Jobs, logger *logging.SlogLogger, cfg *config.Config) *Scheduler {
	cronLogger := cron.PrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelInfo))
	c := cron.New(cron.WithChain(cron.Recover(cronLogger)), cron.WithLogger(cronLogger))

	return &Scheduler{
		cron:   c,
		jobs:   jobs,
		logger: logger.With("module", "scheduler"),
		cfg:    cfg,
	}
}

// Start registers the jobs and starts cron. A bad schedule expression is an
// error; nothing is started in that case.
func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.cfg.SweepSchedule, s.jobs.SweepExpiredTokens); err != nil {
		return fmt.Errorf("schedule token sweep job: %w", err)
	}
	s.logger.Info(ctx, "scheduled token sweep job", "schedule", s.cfg.SweepSchedule)

	if s.jobs.archiver != nil {
		if _, err := s.cron.AddFunc(s.cfg.ArchiveSchedule, s.jobs.ArchiveLoginAttempts); err != nil {
			return fmt.Errorf("schedule archive job: %w", err)
		}
		s.logger.Info(ctx, "scheduled login attempt archive job", "schedule", s.cfg.ArchiveSchedule)
	}

	s.cron.Start()
	return nil
}

// Stop stops cron; the returned context is done once running jobs finish.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

// Entries reports how many jobs are registered.
func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}
