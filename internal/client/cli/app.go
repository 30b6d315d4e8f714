// Package cli implements pegasusctl, an interactive console for the
// Pegasus AuthService.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/pegasus/internal/client/client"
	"github.com/dmitrijs2005/pegasus/internal/client/config"
)

// authClient is the subset of client.GRPCClient the console uses.
type authClient interface {
	LoggedIn() bool
	Register(ctx context.Context, r client.RegisterRequest) (*client.User, error)
	VerifyAccount(ctx context.Context, token string) (*client.User, error)
	ResendVerification(ctx context.Context, token string) (bool, error)
	Login(ctx context.Context, email, password string) (*client.User, error)
	Logout(ctx context.Context) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, password string) error
	ChangePassword(ctx context.Context, current, newPassword string) error
	SetPin(ctx context.Context, pin string) error
	VerifyPin(ctx context.Context, pin string) error
	ListLoginAttempts(ctx context.Context, limit int) ([]client.LoginAttempt, error)
	Ping(ctx context.Context) error
	Close() error
}

type App struct {
	config   *config.Config
	client   authClient
	userName string
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewPegasusClient(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}
	return &App{config: c, client: apiClient, reader: bufio.NewReader(os.Stdin), out: os.Stdout}, nil
}

func (a *App) isLoggedIn() bool {
	return a.client.LoggedIn()
}

func (a *App) status() string {
	if a.userName == "" {
		return ""
	}
	return "(" + a.userName + ") "
}

func (a *App) Run(ctx context.Context) {
	defer a.client.Close()

	printlnFn("Pegasus console (type 'help' for commands)")
	if err := a.ping(ctx); err != nil {
		printlnFn("Server is not reachable:", err)
	}

	runREPL(ctx, a, a.status, bufio.NewScanner(a.reader))
}
