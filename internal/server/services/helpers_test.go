package services

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/pegasus/internal/cryptox"
	"github.com/dmitrijs2005/pegasus/internal/logging"
	"github.com/dmitrijs2005/pegasus/internal/server/auth"
	"github.com/dmitrijs2005/pegasus/internal/server/config"
	"github.com/dmitrijs2005/pegasus/internal/server/models"
	"github.com/dmitrijs2005/pegasus/internal/server/ratelimit"
	"github.com/dmitrijs2005/pegasus/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/pegasus/internal/timex"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var t0 = time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)

type sentMail struct {
	template string
	to       string
	vars     map[string]string
}

type fakeMailer struct {
	mu   sync.Mutex
	fail bool
	sent []sentMail
}

func (f *fakeMailer) Send(_ context.Context, templateID, address string, vars map[string]string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentMail{template: templateID, to: address, vars: vars})
	return !f.fail
}

func (f *fakeMailer) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

func (f *fakeMailer) last(t *testing.T) sentMail {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.sent, "no mail sent")
	return f.sent[len(f.sent)-1]
}

// lastToken extracts the token from the link in the latest mail.
func (f *fakeMailer) lastToken(t *testing.T) string {
	t.Helper()
	url := f.last(t).vars["url"]
	return url[strings.LastIndex(url, "/")+1:]
}

type fakeLimiter struct {
	allow bool
	keys  []string
}

func (f *fakeLimiter) Allow(_ context.Context, key string) (ratelimit.Decision, error) {
	f.keys = append(f.keys, key)
	return ratelimit.Decision{Allowed: f.allow, RetryAfter: time.Minute}, nil
}

type testEnv struct {
	cfg      *config.Config
	clock    *timex.ManualClock
	rm       *repomanager.InMemoryRepositoryManager
	mailer   *fakeMailer
	codec    *auth.Codec
	sessions *SessionService
	pins     *PinService
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	return cfg
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := testConfig()
	clock := timex.NewManualClock(t0)
	rm := repomanager.NewInMemoryRepositoryManager(clock)
	mailer := &fakeMailer{}
	codec := auth.NewCodec(cfg.AccessTokenSecret, cfg.RefreshTokenSecret, cfg.AccessTokenValidityDuration, cfg.RefreshTokenValidityDuration, clock)
	logger := logging.Discard()

	pinHasher := cryptox.NewArgon2Hasher(cryptox.Argon2Params{Time: 1, Memory: 1024, Threads: 1, KeyLen: 32, SaltLen: 16})

	return &testEnv{
		cfg:      cfg,
		clock:    clock,
		rm:       rm,
		mailer:   mailer,
		codec:    codec,
		sessions: NewSessionService(rm, cfg, codec, cryptox.NewBcryptHasher(bcrypt.MinCost), mailer, clock, logger),
		pins:     NewPinService(rm, pinHasher, cfg, clock, logger),
	}
}

func registerInput(email, password string) RegisterInput {
	return RegisterInput{FirstName: "Ada", LastName: "Obi", Email: email, Password: password}
}

func (e *testEnv) register(t *testing.T, email, password string) (*models.PublicUser, string) {
	t.Helper()
	u, err := e.sessions.Register(context.Background(), registerInput(email, password))
	require.NoError(t, err)
	return u, e.mailer.lastToken(t)
}

func (e *testEnv) registerVerified(t *testing.T, email, password string) *models.PublicUser {
	t.Helper()
	_, token := e.register(t, email, password)
	u, err := e.sessions.VerifyAccount(context.Background(), token)
	require.NoError(t, err)
	return u
}

func (e *testEnv) login(t *testing.T, email, password string) *LoginResult {
	t.Helper()
	res, err := e.sessions.Login(context.Background(), LoginInput{Email: email, Password: password, IPAddress: "10.0.0.1", UserAgent: "test"})
	require.NoError(t, err)
	return res
}
