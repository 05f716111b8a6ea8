package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	List(ctx context.Context) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Dashboard(ctx context.Context) error
	Chart(ctx context.Context, args []string) error
	Avatar(ctx context.Context, args []string) error
	WhoAmI(ctx context.Context) error
	Logout(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: signup, login, help, exit"
	helpLoggedIn  = "Available commands: (l)ist, add, edit <n>, delete <n>, dashboard, " +
		"chart [followers|views|revenue], avatar [path|reset], whoami, logout, help, exit"
)

// runREPL starts a simple read-eval-print loop for the SocialHub CLI.
//
// It reads a line from reader, parses the first token as the command,
// and dispatches to methods on 'a'. The loop exits on EOF or when the
// user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current user (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help             show available commands
//	  - signup           create an account
//	  - login            authenticate
//	  - exit | quit      leave the program
//
//	Logged in:
//	  - help             show available commands
//	  - list | l         list connected accounts
//	  - add              connect a social media account
//	  - edit <n|id>      edit an account
//	  - delete <n|id>    remove an account (asks for confirmation)
//	  - dashboard        show totals, growth and quick stats
//	  - chart [metric]   export the 7-day chart as SVG
//	  - avatar [path|reset]   show, import or reset the profile picture
//	  - whoami           show the current user
//	  - logout           log out and wipe local data
//	  - exit | quit      leave the program
//
// Handler errors are printed and the loop continues. Login and signup
// block until their operation completes, so no second auth call can be
// submitted while one is pending.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("socialhub%s> ", prefixSpace(statusFn())))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		printErr(dispatch(ctx, a, cmd, args))
	}
}

func prefixSpace(s string) string {
	if s == "" {
		return ""
	}
	return " " + s
}

// printErr prints a handler error, if any.
func printErr(err error) {
	if err != nil {
		printlnFn("Error:", err)
	}
}

// dispatch runs cmd after checking it fits the current login state.
func dispatch(ctx context.Context, a execIface, cmd string, args []string) error {
	switch cmd {
	case "signup", "login":
		if a.isLoggedIn() {
			return errAlreadyLoggedIn
		}
		if cmd == "signup" {
			return a.Signup(ctx)
		}
		return a.Login(ctx)
	}

	handlers := map[string]func() error{
		"list":      func() error { return a.List(ctx) },
		"l":         func() error { return a.List(ctx) },
		"add":       func() error { return a.Add(ctx) },
		"edit":      func() error { return a.Edit(ctx, args) },
		"delete":    func() error { return a.Delete(ctx, args) },
		"dashboard": func() error { return a.Dashboard(ctx) },
		"chart":     func() error { return a.Chart(ctx, args) },
		"avatar":    func() error { return a.Avatar(ctx, args) },
		"whoami":    func() error { return a.WhoAmI(ctx) },
		"logout":    func() error { return a.Logout(ctx) },
	}
	h, ok := handlers[cmd]
	if !ok {
		return fmt.Errorf("%w: %s", errUnknownCommand, cmd)
	}
	if !a.isLoggedIn() {
		return errLoginRequired
	}
	return h()
}
