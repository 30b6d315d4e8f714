package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/pegasus/internal/client/client"
)

const attemptsShown = 10

func (a *App) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config == nil || a.config.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}

func (a *App) report(err error) error {
	if err != nil {
		printlnFn("Error:", err)
	}
	return err
}

func (a *App) ask(prompt string) (string, error) {
	return GetSimpleText(a.reader, prompt, a.out)
}

func (a *App) ping(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()
	return a.client.Ping(ctx)
}

func (a *App) Register(ctx context.Context) error {
	var r client.RegisterRequest
	var err error

	if r.FirstName, err = a.ask("First name"); err != nil {
		return a.report(err)
	}
	if r.LastName, err = a.ask("Last name"); err != nil {
		return a.report(err)
	}
	if r.MiddleName, err = a.ask("Middle name (optional)"); err != nil {
		return a.report(err)
	}
	if r.Email, err = a.ask("Email"); err != nil {
		return a.report(err)
	}
	if r.Password, err = GetPassword(a.out); err != nil {
		return a.report(err)
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	u, err := a.client.Register(ctx, r)
	if err != nil {
		return a.report(err)
	}
	printlnFn(fmt.Sprintf("Registered %s. Check your email for the verification link.", u.Email))
	return nil
}

func (a *App) Verify(ctx context.Context) error {
	token, err := a.ask("Verification token")
	if err != nil {
		return a.report(err)
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	u, err := a.client.VerifyAccount(ctx, token)
	if err != nil {
		return a.report(err)
	}
	printlnFn(fmt.Sprintf("Account %s verified.", u.Email))
	return nil
}

func (a *App) Resend(ctx context.Context) error {
	token, err := a.ask("Previous verification token")
	if err != nil {
		return a.report(err)
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	sent, err := a.client.ResendVerification(ctx, token)
	if err != nil {
		return a.report(err)
	}
	if sent {
		printlnFn("A new verification email has been sent.")
	} else {
		printlnFn("Nothing to resend.")
	}
	return nil
}

func (a *App) Login(ctx context.Context) error {
	email, err := a.ask("Email")
	if err != nil {
		return a.report(err)
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return a.report(err)
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	u, err := a.client.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, client.ErrNotVerified) {
			printlnFn("Account is not verified yet, a new verification email has been sent.")
			return err
		}
		return a.report(err)
	}
	a.userName = u.FirstName
	printlnFn(fmt.Sprintf("Welcome, %s!", u.FirstName))
	return nil
}

func (a *App) Forgot(ctx context.Context) error {
	email, err := a.ask("Email")
	if err != nil {
		return a.report(err)
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.client.ForgotPassword(ctx, email); err != nil {
		return a.report(err)
	}
	printlnFn("If the address is registered, a reset link is on its way.")
	return nil
}

func (a *App) Reset(ctx context.Context) error {
	token, err := a.ask("Reset token")
	if err != nil {
		return a.report(err)
	}
	password, err := GetSecret(a.out, "New password")
	if err != nil {
		return a.report(err)
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.client.ResetPassword(ctx, token, password); err != nil {
		return a.report(err)
	}
	printlnFn("Password updated.")
	return nil
}

func (a *App) ChangePassword(ctx context.Context) error {
	if !a.isLoggedIn() {
		return a.report(client.ErrNotLoggedIn)
	}
	current, err := GetSecret(a.out, "Current password")
	if err != nil {
		return a.report(err)
	}
	next, err := GetSecret(a.out, "New password")
	if err != nil {
		return a.report(err)
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.client.ChangePassword(ctx, current, next); err != nil {
		return a.report(err)
	}
	printlnFn("Password changed.")
	return nil
}

func (a *App) SetPin(ctx context.Context) error {
	if !a.isLoggedIn() {
		return a.report(client.ErrNotLoggedIn)
	}
	pin, err := GetPin(a.out)
	if err != nil {
		return a.report(err)
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.client.SetPin(ctx, pin); err != nil {
		return a.report(err)
	}
	printlnFn("PIN saved.")
	return nil
}

func (a *App) VerifyPin(ctx context.Context) error {
	if !a.isLoggedIn() {
		return a.report(client.ErrNotLoggedIn)
	}
	pin, err := GetPin(a.out)
	if err != nil {
		return a.report(err)
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.client.VerifyPin(ctx, pin); err != nil {
		return a.report(err)
	}
	printlnFn("PIN accepted.")
	return nil
}

func (a *App) Attempts(ctx context.Context) error {
	if !a.isLoggedIn() {
		return a.report(client.ErrNotLoggedIn)
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	attempts, err := a.client.ListLoginAttempts(ctx, attemptsShown)
	if err != nil {
		return a.report(err)
	}
	if len(attempts) == 0 {
		printlnFn("No login attempts recorded.")
		return nil
	}
	for _, at := range attempts {
		result := "failed"
		if at.Success {
			result = "ok"
		}
		printlnFn(fmt.Sprintf("%s  %-6s  %s  %s", at.CreatedAt, result, at.IPAddress, at.UserAgent))
	}
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	err := a.client.Logout(ctx)
	a.userName = ""
	if err != nil {
		return a.report(err)
	}
	printlnFn("Logged out.")
	return nil
}
