package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/pegasus/internal/common"
	"github.com/dmitrijs2005/pegasus/internal/cryptox"
	"github.com/dmitrijs2005/pegasus/internal/logging"
	"github.com/dmitrijs2005/pegasus/internal/server/config"
	"github.com/dmitrijs2005/pegasus/internal/server/models"
	"github.com/dmitrijs2005/pegasus/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/pegasus/internal/timex"
)

const pinLength = 4

// PinService guards the transaction PIN of an account. After maxAttempts
// consecutive failures the PIN is locked for lockout, counted from the last
// failure. The lock is lifted lazily: nothing is written when it runs out.
type PinService struct {
	repomanager repomanager.RepositoryManager
	hasher      cryptox.PinHasher
	clock       timex.Clock
	maxAttempts int
	lockout     time.Duration
	logger      logging.Logger
}

func NewPinService(m repomanager.RepositoryManager, hasher cryptox.PinHasher, cfg *config.Config, clock timex.Clock, logger logging.Logger) *PinService {
	return &PinService{
		repomanager: m,
		hasher:      hasher,
		clock:       clock,
		maxAttempts: cfg.PinMaxAttempts,
		lockout:     cfg.PinLockoutDuration,
		logger:      logger.With("module", "pin"),
	}
}

// ValidatePinFormat accepts exactly four ASCII digits.
func ValidatePinFormat(pin string) error {
	if len(pin) != pinLength {
		return common.ErrInvalidPinFormat
	}
	for i := 0; i < len(pin); i++ {
		if pin[i] < '0' || pin[i] > '9' {
			return common.ErrInvalidPinFormat
		}
	}
	return nil
}

// SetPin creates or replaces the PIN and clears any lockout.
func (s *PinService) SetPin(ctx context.Context, accountID, pin string) error {
	if err := ValidatePinFormat(pin); err != nil {
		return err
	}

	salt, hash, err := s.hasher.Hash(pin)
	if err != nil {
		return fmt.Errorf("error hashing pin: %w", err)
	}

	err = s.repomanager.Pins(s.repomanager.Conn()).Upsert(ctx, &models.Pin{
		AccountID: accountID,
		Salt:      salt,
		Hash:      hash,
	})
	if err != nil {
		return fmt.Errorf("error storing pin: %w", err)
	}
	return nil
}

// VerifyPin returns nil when pin matches. Failures are common.ErrPinNotSet,
// common.ErrInvalidPin or an *common.AccountLockedError.
func (s *PinService) VerifyPin(ctx context.Context, accountID, pin string) error {
	if err := ValidatePinFormat(pin); err != nil {
		return err
	}

	repo := s.repomanager.Pins(s.repomanager.Conn())

	record, err := repo.Get(ctx, accountID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrPinNotSet
		}
		return fmt.Errorf("error loading pin: %w", err)
	}

	now := s.clock.Now()
	if until := record.LockedUntil(s.lockout); now.Before(until) {
		return &common.AccountLockedError{Until: until}
	}

	ok, err := s.hasher.Verify(pin, record.Salt, record.Hash)
	if err != nil {
		return err
	}

	if !ok {
		return s.recordFailure(ctx, accountID, now)
	}

	if record.FailedAttempts > 0 || record.IsLocked {
		reset, err := repo.ResetFailures(ctx, accountID, now.Add(-s.lockout))
		if err != nil {
			return fmt.Errorf("error resetting pin attempts: %w", err)
		}
		if !reset {
			// concurrent failures locked the pin after it was read
			return s.lockedError(ctx, accountID)
		}
	}
	return nil
}

func (s *PinService) lockedError(ctx context.Context, accountID string) error {
	current, err := s.repomanager.Pins(s.repomanager.Conn()).Get(ctx, accountID)
	if err != nil {
		return common.ErrAccountLocked
	}
	return &common.AccountLockedError{Until: current.LockedUntil(s.lockout)}
}

func (s *PinService) recordFailure(ctx context.Context, accountID string, now time.Time) error {
	repo := s.repomanager.Pins(s.repomanager.Conn())

	updated, err := repo.RecordFailure(ctx, accountID, now, s.maxAttempts, now.Add(-s.lockout))
	if errors.Is(err, common.ErrAccountLocked) {
		// a concurrent failure locked the pin first
		return s.lockedError(ctx, accountID)
	}
	if err != nil {
		return fmt.Errorf("error recording pin failure: %w", err)
	}

	if updated.IsLocked {
		s.logger.Warn(ctx, "pin locked", "account_id", accountID, "until", updated.LockedUntil(s.lockout))
	}
	return common.ErrInvalidPin
}
