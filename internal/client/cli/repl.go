package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Verify(ctx context.Context) error
	Resend(ctx context.Context) error
	Login(ctx context.Context) error
	Forgot(ctx context.Context) error
	Reset(ctx context.Context) error
	ChangePassword(ctx context.Context) error
	SetPin(ctx context.Context) error
	VerifyPin(ctx context.Context) error
	Attempts(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL reads commands from scanner until EOF, "exit" or "quit".
//
//	Not logged in: register, verify, resend, login, forgot, reset, exit
//	Logged in:     setpin, verifypin, passwd, attempts, logout, exit
//
// Errors from handlers are ignored here; handlers report their own.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("pegasus %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: setpin, verifypin, passwd, attempts, logout, exit")
			} else {
				printlnFn("Available commands: register, verify, resend, login, forgot, reset, exit")
			}

		case "register":
			_ = a.Register(ctx)
		case "verify":
			_ = a.Verify(ctx)
		case "resend":
			_ = a.Resend(ctx)
		case "login":
			_ = a.Login(ctx)
		case "forgot":
			_ = a.Forgot(ctx)
		case "reset":
			_ = a.Reset(ctx)
		case "passwd":
			_ = a.ChangePassword(ctx)
		case "setpin":
			_ = a.SetPin(ctx)
		case "verifypin":
			_ = a.VerifyPin(ctx)
		case "attempts":
			_ = a.Attempts(ctx)
		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
