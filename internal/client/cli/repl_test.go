package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool
	calls    []string
}

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return nil
}

func (f *fakeExec) isLoggedIn() bool                         { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error       { return f.record("register") }
func (f *fakeExec) Verify(ctx context.Context) error         { return f.record("verify") }
func (f *fakeExec) Resend(ctx context.Context) error         { return f.record("resend") }
func (f *fakeExec) Forgot(ctx context.Context) error         { return f.record("forgot") }
func (f *fakeExec) Reset(ctx context.Context) error          { return f.record("reset") }
func (f *fakeExec) ChangePassword(ctx context.Context) error { return f.record("passwd") }
func (f *fakeExec) SetPin(ctx context.Context) error         { return f.record("setpin") }
func (f *fakeExec) VerifyPin(ctx context.Context) error      { return f.record("verifypin") }
func (f *fakeExec) Attempts(ctx context.Context) error       { return f.record("attempts") }

func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login")
}

func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}

func silence(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		parts := make([]string, 0, len(a))
		for _, v := range a {
			if s, ok := v.(string); ok {
				parts = append(parts, s)
			}
		}
		lines = append(lines, strings.Join(parts, " "))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })
	return &lines
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	silence(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"register",
		"verify",
		"",
		"login",
		"setpin",
		"verifypin",
		"attempts",
		"passwd",
		"logout",
		"resend",
		"forgot",
		"reset",
		"foobar",
		"exit",
		"login",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(input))

	want := []string{"register", "verify", "login", "setpin", "verifypin", "attempts", "passwd", "logout", "resend", "forgot", "reset"}
	if strings.Join(exec.calls, ",") != strings.Join(want, ",") {
		t.Fatalf("calls = %v, want %v", exec.calls, want)
	}
}

func TestRunREPL_HelpDependsOnLogin(t *testing.T) {
	lines := silence(t)

	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(strings.NewReader("help\nquit\n")))

	found := false
	for _, l := range *lines {
		if strings.Contains(l, "setpin") {
			found = true
		}
	}
	if !found {
		t.Fatalf("logged-in help not shown: %v", *lines)
	}
}
