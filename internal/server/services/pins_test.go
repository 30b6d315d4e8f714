package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/pegasus/internal/common"
	"github.com/dmitrijs2005/pegasus/internal/cryptox"
	"github.com/dmitrijs2005/pegasus/internal/dbx"
	"github.com/dmitrijs2005/pegasus/internal/logging"
	"github.com/dmitrijs2005/pegasus/internal/server/repositories/pins"
	"github.com/dmitrijs2005/pegasus/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePinFormat(t *testing.T) {
	for _, ok := range []string{"0000", "1234", "9876"} {
		assert.NoError(t, ValidatePinFormat(ok), ok)
	}
	for _, bad := range []string{"", "123", "12345", "12a4", " 123", "١٢٣٤"} {
		assert.ErrorIs(t, ValidatePinFormat(bad), common.ErrInvalidPinFormat, bad)
	}
}

func TestVerifyPin_NotSet(t *testing.T) {
	e := newTestEnv(t)
	err := e.pins.VerifyPin(context.Background(), "acc-1", "1234")
	assert.ErrorIs(t, err, common.ErrPinNotSet)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestSetPin_RejectsBadFormat(t *testing.T) {
	e := newTestEnv(t)
	err := e.pins.SetPin(context.Background(), "acc-1", "12ab")
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestVerifyPin_LockoutAndLazyUnlock(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	require.NoError(t, e.pins.SetPin(ctx, "acc-1", "1234"))

	for i := 0; i < 3; i++ {
		e.clock.Advance(time.Second)
		assert.ErrorIs(t, e.pins.VerifyPin(ctx, "acc-1", "0000"), common.ErrInvalidPin)
	}
	lastFailure := e.clock.Now()

	err := e.pins.VerifyPin(ctx, "acc-1", "1234")
	var locked *common.AccountLockedError
	require.True(t, errors.As(err, &locked))
	assert.ErrorIs(t, err, common.ErrAccountLocked)
	assert.Equal(t, lastFailure.Add(5*time.Minute), locked.Until)

	e.clock.Set(lastFailure.Add(5*time.Minute - time.Second))
	assert.ErrorIs(t, e.pins.VerifyPin(ctx, "acc-1", "1234"), common.ErrAccountLocked)

	e.clock.Set(lastFailure.Add(5 * time.Minute))
	require.NoError(t, e.pins.VerifyPin(ctx, "acc-1", "1234"))

	rec, err := e.rm.Store.Pins().Get(ctx, "acc-1")
	require.NoError(t, err)
	assert.Zero(t, rec.FailedAttempts)
	assert.False(t, rec.IsLocked)
	assert.Nil(t, rec.LastFailedAttempt)
}

func TestVerifyPin_FailureAfterExpiredLockRestartsCount(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	require.NoError(t, e.pins.SetPin(ctx, "acc-1", "1234"))

	for i := 0; i < 3; i++ {
		_ = e.pins.VerifyPin(ctx, "acc-1", "0000")
	}
	e.clock.Advance(6 * time.Minute)

	assert.ErrorIs(t, e.pins.VerifyPin(ctx, "acc-1", "0000"), common.ErrInvalidPin)

	rec, err := e.rm.Store.Pins().Get(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, 1, rec.FailedAttempts)
	assert.False(t, rec.IsLocked)
}

func TestVerifyPin_SuccessResetsCounter(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	require.NoError(t, e.pins.SetPin(ctx, "acc-1", "1234"))

	assert.ErrorIs(t, e.pins.VerifyPin(ctx, "acc-1", "1111"), common.ErrInvalidPin)
	assert.ErrorIs(t, e.pins.VerifyPin(ctx, "acc-1", "2222"), common.ErrInvalidPin)
	require.NoError(t, e.pins.VerifyPin(ctx, "acc-1", "1234"))

	// two more failures do not lock because the counter restarted
	assert.ErrorIs(t, e.pins.VerifyPin(ctx, "acc-1", "1111"), common.ErrInvalidPin)
	assert.ErrorIs(t, e.pins.VerifyPin(ctx, "acc-1", "2222"), common.ErrInvalidPin)
	require.NoError(t, e.pins.VerifyPin(ctx, "acc-1", "1234"))
}

func TestSetPin_ClearsLock(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	require.NoError(t, e.pins.SetPin(ctx, "acc-1", "1234"))
	for i := 0; i < 3; i++ {
		_ = e.pins.VerifyPin(ctx, "acc-1", "0000")
	}
	require.ErrorIs(t, e.pins.VerifyPin(ctx, "acc-1", "1234"), common.ErrAccountLocked)

	require.NoError(t, e.pins.SetPin(ctx, "acc-1", "5678"))
	assert.NoError(t, e.pins.VerifyPin(ctx, "acc-1", "5678"))
	assert.ErrorIs(t, e.pins.VerifyPin(ctx, "acc-1", "1234"), common.ErrInvalidPin)
}

func TestVerifyPin_ConcurrentFailuresLockExactlyOnce(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	require.NoError(t, e.pins.SetPin(ctx, "acc-1", "1234"))

	const workers = 10
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = e.pins.VerifyPin(ctx, "acc-1", "0000")
		}(i)
	}
	wg.Wait()

	invalid := 0
	for _, err := range errs {
		switch {
		case errors.Is(err, common.ErrAccountLocked):
		case errors.Is(err, common.ErrInvalidPin):
			invalid++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 3, invalid)

	rec, err := e.rm.Store.Pins().Get(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, 3, rec.FailedAttempts)
	assert.True(t, rec.IsLocked)
}

type lockingPins struct {
	pins.Repository
	beforeReset func()
}

func (p lockingPins) ResetFailures(ctx context.Context, accountID string, lockedSince time.Time) (bool, error) {
	p.beforeReset()
	return p.Repository.ResetFailures(ctx, accountID, lockedSince)
}

type lockingPinsManager struct {
	*repomanager.InMemoryRepositoryManager
	beforeReset func()
}

func (m lockingPinsManager) Pins(db dbx.DBTX) pins.Repository {
	return lockingPins{Repository: m.InMemoryRepositoryManager.Pins(db), beforeReset: m.beforeReset}
}

func TestVerifyPin_SuccessKeepsLockTakenAfterRead(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	require.NoError(t, e.pins.SetPin(ctx, "acc-1", "1234"))
	require.ErrorIs(t, e.pins.VerifyPin(ctx, "acc-1", "0000"), common.ErrInvalidPin)

	hasher := cryptox.NewArgon2Hasher(cryptox.Argon2Params{Time: 1, Memory: 1024, Threads: 1, KeyLen: 32, SaltLen: 16})
	svc := NewPinService(lockingPinsManager{
		InMemoryRepositoryManager: e.rm,
		beforeReset: func() {
			// two more failures land between the read and the reset
			for i := 0; i < 2; i++ {
				require.ErrorIs(t, e.pins.VerifyPin(ctx, "acc-1", "0000"), common.ErrInvalidPin)
			}
		},
	}, hasher, e.cfg, e.clock, logging.Discard())

	err := svc.VerifyPin(ctx, "acc-1", "1234")
	var locked *common.AccountLockedError
	require.True(t, errors.As(err, &locked))
	assert.Equal(t, e.clock.Now().Add(5*time.Minute), locked.Until)

	rec, err := e.rm.Store.Pins().Get(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, 3, rec.FailedAttempts)
	assert.True(t, rec.IsLocked)
}
