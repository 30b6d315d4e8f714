package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/pegasus/internal/common"
	"github.com/dmitrijs2005/pegasus/internal/dbx"
	"github.com/dmitrijs2005/pegasus/internal/logging"
	"github.com/dmitrijs2005/pegasus/internal/server/models"
	"github.com/dmitrijs2005/pegasus/internal/server/repositories/loginattempts"
	"github.com/dmitrijs2005/pegasus/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/pegasus/internal/timex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerificationService_IssueReplacesPrevious(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	v := e.sessions.Verification()

	first, err := v.Issue(ctx, "u1", common.PurposeResetPassword)
	require.NoError(t, err)
	second, err := v.Issue(ctx, "u1", common.PurposeResetPassword)
	require.NoError(t, err)
	other, err := v.Issue(ctx, "u1", common.PurposeVerifyEmail)
	require.NoError(t, err)

	assert.NotEqual(t, first.Token, second.Token)
	assert.Equal(t, t0.Add(time.Hour), second.ExpiresAt)
	assert.Equal(t, t0.Add(20*time.Minute), other.ExpiresAt)

	got, err := v.FindValid(ctx, first.Token, common.PurposeResetPassword)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = v.FindValid(ctx, second.Token, common.PurposeResetPassword)
	require.NoError(t, err)
	require.NotNil(t, got)

	got, err = v.FindValid(ctx, other.Token, common.PurposeVerifyEmail)
	require.NoError(t, err)
	assert.NotNil(t, got, "purposes do not overwrite each other")

	_, err = v.Issue(ctx, "u1", "unlock-card")
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestVerificationService_FindValidBoundaries(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	v := e.sessions.Verification()

	tok, err := v.Issue(ctx, "u1", common.PurposeResetPassword)
	require.NoError(t, err)

	e.clock.Set(tok.ExpiresAt)
	got, err := v.FindValid(ctx, tok.Token, common.PurposeResetPassword)
	require.NoError(t, err)
	assert.NotNil(t, got, "valid at the expiry instant")

	got, err = v.FindValid(ctx, tok.Token, common.PurposeVerifyEmail)
	require.NoError(t, err)
	assert.Nil(t, got, "wrong purpose")

	consumed, err := v.MarkUsed(ctx, tok.Token, common.PurposeResetPassword)
	require.NoError(t, err)
	assert.True(t, consumed)
	consumed, err = v.MarkUsed(ctx, tok.Token, common.PurposeResetPassword)
	require.NoError(t, err)
	assert.False(t, consumed, "a token is consumed once")
	got, err = v.FindValid(ctx, tok.Token, common.PurposeResetPassword)
	require.NoError(t, err)
	assert.Nil(t, got, "used")

	found, err := v.Find(ctx, tok.Token)
	require.NoError(t, err)
	assert.True(t, found.Used)
}

func TestVerificationService_SweepExpired(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	v := e.sessions.Verification()

	_, err := v.Issue(ctx, "u1", common.PurposeVerifyEmail)
	require.NoError(t, err)
	_, err = v.Issue(ctx, "u2", common.PurposeResetPassword)
	require.NoError(t, err)

	e.clock.Advance(30 * time.Minute)
	n, err := v.SweepExpired(ctx, common.PurposeResetPassword)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = v.SweepExpired(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	e.clock.Advance(time.Hour)
	n, err = v.SweepExpired(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestRefreshTokenService(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	u := e.registerVerified(t, "a@x.com", "pw")
	rts := e.sessions.RefreshTokens()

	rec, err := rts.Save(ctx, u.ID, "tok-1", t0.Add(time.Hour))
	require.NoError(t, err)
	_, err = rts.Save(ctx, u.ID, "tok-2", t0.Add(2*time.Hour))
	require.NoError(t, err)

	found, err := rts.FindByValue(ctx, "tok-1")
	require.NoError(t, err)
	require.NotNil(t, found)
	require.NotNil(t, found.Owner)
	assert.Equal(t, "a@x.com", found.Owner.Email)

	ok, err := rts.DeleteByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = rts.DeleteByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, rts.DeleteByValue(ctx, "never-existed"))

	e.clock.Advance(3 * time.Hour)
	n, err := rts.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	found, err = rts.FindByValue(ctx, "tok-2")
	require.NoError(t, err)
	assert.Nil(t, found)
}

type failingAttempts struct{}

func (failingAttempts) Create(context.Context, *models.LoginAttempt) error {
	return errors.New("disk full")
}

func (failingAttempts) ListByUser(context.Context, string, int) ([]*models.LoginAttempt, error) {
	return nil, errors.New("disk full")
}

func (failingAttempts) ListBetween(context.Context, time.Time, time.Time) ([]*models.LoginAttempt, error) {
	return nil, errors.New("disk full")
}

type failingLedgerManager struct {
	*repomanager.InMemoryRepositoryManager
}

func (failingLedgerManager) LoginAttempts(dbx.DBTX) loginattempts.Repository {
	return failingAttempts{}
}

func TestLoginAttemptLedger_RecordNeverFails(t *testing.T) {
	rm := failingLedgerManager{repomanager.NewInMemoryRepositoryManager(timex.NewManualClock(t0))}
	l := NewLoginAttemptLedger(rm, logging.Discard())

	assert.NotPanics(t, func() { l.Record(context.Background(), "u1", "ip", "ua", true) })

	_, err := l.List(context.Background(), "u1", 5)
	assert.Error(t, err)
}

func TestLoginAttemptLedger_ListCapsLimit(t *testing.T) {
	rm := repomanager.NewInMemoryRepositoryManager(timex.NewManualClock(t0))
	l := NewLoginAttemptLedger(rm, logging.Discard())
	ctx := context.Background()

	for i := 0; i < defaultAttemptsLimit+5; i++ {
		l.Record(ctx, "u1", "ip", "ua", i%2 == 0)
	}
	l.Record(ctx, "u2", "ip", "ua", true)

	got, err := l.List(ctx, "u1", 1000)
	require.NoError(t, err)
	assert.Len(t, got, defaultAttemptsLimit)

	got, err = l.List(ctx, "u1", 3)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestLogin_LedgerFailureDoesNotBlockLogin(t *testing.T) {
	e := newTestEnv(t)
	e.registerVerified(t, "a@x.com", "pw")

	e.sessions.ledger = NewLoginAttemptLedger(failingLedgerManager{e.rm}, logging.Discard())

	res := e.login(t, "a@x.com", "pw")
	assert.NotEmpty(t, res.Tokens.AccessToken)
}
