package jobs

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/pegasus/internal/common"
	"github.com/dmitrijs2005/pegasus/internal/cryptox"
	"github.com/dmitrijs2005/pegasus/internal/logging"
	"github.com/dmitrijs2005/pegasus/internal/server/auth"
	"github.com/dmitrijs2005/pegasus/internal/server/config"
	"github.com/dmitrijs2005/pegasus/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/pegasus/internal/server/services"
	"github.com/dmitrijs2005/pegasus/internal/timex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type linkMailer struct {
	urls []string
}

func (m *linkMailer) Send(_ context.Context, _, _ string, vars map[string]string) bool {
	m.urls = append(m.urls, vars["url"])
	return true
}

func (m *linkMailer) lastToken(t *testing.T) string {
	t.Helper()
	require.NotEmpty(t, m.urls)
	url := m.urls[len(m.urls)-1]
	return url[strings.LastIndex(url, "/")+1:]
}

func TestSweepExpiredTokens_KeepsVerificationFlow(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	clock := timex.NewManualClock(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC))
	rm := repomanager.NewInMemoryRepositoryManager(clock)
	mailer := &linkMailer{}
	codec := auth.NewCodec(cfg.AccessTokenSecret, cfg.RefreshTokenSecret, cfg.AccessTokenValidityDuration, cfg.RefreshTokenValidityDuration, clock)
	sessions := services.NewSessionService(rm, cfg, codec, cryptox.NewBcryptHasher(bcrypt.MinCost), mailer, clock, logging.Discard())

	register := func(email string) string {
		_, err := sessions.Register(ctx, services.RegisterInput{FirstName: "Ada", LastName: "Obi", Email: email, Password: "pw"})
		require.NoError(t, err)
		return mailer.lastToken(t)
	}

	verifiedToken := register("v@x.com")
	_, err := sessions.VerifyAccount(ctx, verifiedToken)
	require.NoError(t, err)

	pendingToken := register("p@x.com")

	require.NoError(t, sessions.ForgotPassword(ctx, "v@x.com"))
	resetToken := mailer.lastToken(t)

	clock.Advance(cfg.ResetTokenValidityDuration + time.Minute)
	NewJobs(sessions.Verification(), sessions.RefreshTokens(), nil, logging.Discard()).SweepExpiredTokens()

	_, err = sessions.VerifyAccount(ctx, pendingToken)
	assert.ErrorIs(t, err, common.ErrTokenExpired)

	u, err := sessions.VerifyAccount(ctx, verifiedToken)
	require.NoError(t, err)
	assert.True(t, u.IsVerified)

	sent, err := sessions.ResendVerification(ctx, pendingToken)
	require.NoError(t, err)
	assert.True(t, sent)

	found, err := sessions.Verification().Find(ctx, resetToken)
	require.NoError(t, err)
	assert.Nil(t, found, "expired reset token swept")
}
