package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isLoggedIn() bool
	SignUp(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	List(ctx context.Context) error
	Favorites(ctx context.Context) error
	Mine(ctx context.Context) error
	Submit(ctx context.Context) error
	Edit(ctx context.Context) error
	Delete(ctx context.Context) error
	Favorite(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands:
//
//	Not logged in:
//	  - help | list | login | signup | fav* | exit
//	Logged in:
//	  - help | list | favorites | mine | submit | edit | delete | fav
//	  - profile | logout | exit
//
// (*fav while anonymous just reports "log in first"; the original client
// showed the login panel instead.)
//
// Errors returned by command handlers are ignored here; handlers report
// their own failures. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("snooze %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, favorites, mine, submit, edit, delete, fav, profile, logout, exit")
			} else {
				printlnFn("Available commands: (l)ist, login, signup, fav, exit")
			}

		case "signup":
			_ = a.SignUp(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "favorites":
			_ = a.Favorites(ctx)

		case "mine":
			_ = a.Mine(ctx)

		case "submit":
			_ = a.Submit(ctx)

		case "edit":
			_ = a.Edit(ctx)

		case "delete":
			_ = a.Delete(ctx)

		case "fav":
			_ = a.Favorite(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
