// Package jobs runs the periodic housekeeping of the server on a cron
// schedule.
package jobs

import (
	"context"
	"time"

	"github.com/dmitrijs2005/pegasus/internal/common"
	"github.com/dmitrijs2005/pegasus/internal/logging"
)

// jobTimeout bounds one run of a job.
const jobTimeout = 5 * time.Minute

type TokenSweeper interface {
	SweepExpired(ctx context.Context, purpose string) (int64, error)
}

type RefreshSweeper interface {
	SweepExpired(ctx context.Context) (int64, error)
}

type LedgerArchiver interface {
	ArchivePreviousDay(ctx context.Context) (string, int, error)
}

// Jobs holds the job bodies. Archiver may be nil when archiving is off.
type Jobs struct {
	verification TokenSweeper
	refresh      RefreshSweeper
	archiver     LedgerArchiver
	logger       logging.Logger
}

func NewJobs(v TokenSweeper, r RefreshSweeper, a LedgerArchiver, logger logging.Logger) *Jobs {
	return &Jobs{
		verification: v,
		refresh:      r,
		archiver:     a,
		logger:       logger.With("module", "jobs"),
	}
}

// SweepExpiredTokens deletes expired reset and refresh tokens. Email
// verification tokens stay: an expired one still reports TokenExpired and
// can request a resend.
func (j *Jobs) SweepExpiredTokens() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	reset, err := j.verification.SweepExpired(ctx, common.PurposeResetPassword)
	if err != nil {
		j.logger.Error(ctx, "reset token sweep failed", "error", err)
	}

	refresh, err := j.refresh.SweepExpired(ctx)
	if err != nil {
		j.logger.Error(ctx, "refresh token sweep failed", "error", err)
	}

	j.logger.Info(ctx, "expired tokens swept", "reset", reset, "refresh", refresh)
}

// ArchiveLoginAttempts exports yesterday's login attempts.
func (j *Jobs) ArchiveLoginAttempts() {
	if j.archiver == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	key, n, err := j.archiver.ArchivePreviousDay(ctx)
	if err != nil {
		j.logger.Error(ctx, "login attempt archive failed", "error", err)
		return
	}
	j.logger.Info(ctx, "login attempt archive finished", "key", key, "count", n)
}
