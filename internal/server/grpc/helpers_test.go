package grpc

import (
	"context"
	"net"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/pegasus/internal/cryptox"
	pb "github.com/dmitrijs2005/pegasus/internal/proto"
	"github.com/dmitrijs2005/pegasus/internal/server/auth"
	"github.com/dmitrijs2005/pegasus/internal/server/config"
	"github.com/dmitrijs2005/pegasus/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/pegasus/internal/server/services"
	"github.com/dmitrijs2005/pegasus/internal/timex"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/test/bufconn"
)

type recordingMailer struct {
	mu   sync.Mutex
	urls []string
}

func (m *recordingMailer) Send(_ context.Context, _, _ string, vars map[string]string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.urls = append(m.urls, vars["url"])
	return true
}

func (m *recordingMailer) lastToken(t *testing.T) string {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	require.NotEmpty(t, m.urls)
	u := m.urls[len(m.urls)-1]
	return u[strings.LastIndex(u, "/")+1:]
}

type testServer struct {
	conn   *grpc.ClientConn
	client pb.AuthServiceClient
	mailer *recordingMailer
	clock  *timex.ManualClock
	codec  *auth.Codec
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := &config.Config{}
	cfg.LoadDefaults()

	clock := timex.NewManualClock(time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC))
	rm := repomanager.NewInMemoryRepositoryManager(clock)
	mailer := &recordingMailer{}
	codec := auth.NewCodec(cfg.AccessTokenSecret, cfg.RefreshTokenSecret, cfg.AccessTokenValidityDuration, cfg.RefreshTokenValidityDuration, clock)
	pinHasher := cryptox.NewArgon2Hasher(cryptox.Argon2Params{Time: 1, Memory: 1024, Threads: 1, KeyLen: 32, SaltLen: 16})

	sessions := services.NewSessionService(rm, cfg, codec, cryptox.NewBcryptHasher(bcrypt.MinCost), mailer, clock, nopLogger{})
	pins := services.NewPinService(rm, pinHasher, cfg, clock, nopLogger{})

	srv := NewGRPCServer("bufnet", nopLogger{}, sessions, pins, codec, nil)

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		cancel()
		<-done
	})

	return &testServer{conn: conn, client: pb.NewAuthServiceClient(conn), mailer: mailer, clock: clock, codec: codec}
}

func withToken(token string) context.Context {
	return metadata.AppendToOutgoingContext(context.Background(), "access_token", token)
}

// signup registers, verifies and logs in a user, returning the login reply.
func (s *testServer) signup(t *testing.T, email, password string) *pb.LoginResponse {
	t.Helper()
	ctx := context.Background()

	_, err := s.client.Register(ctx, &pb.RegisterRequest{
		FirstName: "Ngozi",
		LastName:  "Eze",
		Email:     email,
		Password:  password,
	})
	require.NoError(t, err)

	_, err = s.client.VerifyAccount(ctx, &pb.VerifyAccountRequest{Token: s.mailer.lastToken(t)})
	require.NoError(t, err)

	out, err := s.client.Login(ctx, &pb.LoginRequest{Email: email, Password: password})
	require.NoError(t, err)
	return out
}
