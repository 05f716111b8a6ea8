package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/dmitrijs2005/socialhub/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	err   error
}

func (f *fakeExec) record(name string, args ...string) error {
	f.calls = append(f.calls, strings.TrimSpace(name+" "+strings.Join(args, " ")))
	return f.err
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Signup(ctx context.Context) error {
	f.loggedIn = true
	return f.record("signup")
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) List(ctx context.Context) error { return f.record("list") }
func (f *fakeExec) Add(ctx context.Context) error { return f.record("add") }
func (f *fakeExec) Edit(ctx context.Context, args []string) error {
	return f.record("edit", args...)
}
func (f *fakeExec) Delete(ctx context.Context, args []string) error {
	return f.record("delete", args...)
}
func (f *fakeExec) Dashboard(ctx context.Context) error { return f.record("dashboard") }
func (f *fakeExec) Chart(ctx context.Context, args []string) error {
	return f.record("chart", args...)
}
func (f *fakeExec) Avatar(ctx context.Context, args []string) error {
	return f.record("avatar", args...)
}
func (f *fakeExec) WhoAmI(ctx context.Context) error { return f.record("whoami") }
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var out []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		out = append(out, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })
	return &out
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	captureOutput(t)

	input := readerFromLines(
		"",
		"login",
		"l",
		"list",
		"add",
		"edit 2",
		"DELETE abc",
		"chart views",
		"avatar reset",
		"dashboard",
		"whoami",
		"logout",
		"exit",
		"list",
	)

	f := &fakeExec{}
	runREPL(context.Background(), f, func() string { return "" }, input)

	assert.Equal(t, []string{
		"login", "list", "list", "add", "edit 2", "delete abc", "chart views",
		"avatar reset", "dashboard", "whoami", "logout",
	}, f.calls)
}

func TestRunREPL_GatesCommandsByLoginState(t *testing.T) {
	out := captureOutput(t)

	f := &fakeExec{}
	runREPL(context.Background(), f, func() string { return "" }, readerFromLines("list", "signup", "login", "help"))

	assert.Equal(t, []string{"signup"}, f.calls)
	joined := strings.Join(*out, "\n")
	assert.Contains(t, joined, common.ErrNotAuthenticated.Error())
	assert.Contains(t, joined, errAlreadyLoggedIn.Error())
	assert.Contains(t, joined, helpLoggedIn)
}

func TestRunREPL_HelpUnknownAndErrors(t *testing.T) {
	out := captureOutput(t)

	f := &fakeExec{err: errors.New("boom")}
	runREPL(context.Background(), f, func() string { return "(ada)" }, readerFromLines("help", "frobnicate", "login", "quit"))

	joined := strings.Join(*out, "\n")
	assert.Contains(t, joined, helpLoggedOut)
	assert.Contains(t, joined, "unknown command: frobnicate")
	assert.Contains(t, joined, "Error: boom")
	assert.Contains(t, joined, "socialhub (ada)> ")
	assert.Equal(t, "Bye!", (*out)[len(*out)-1])
}

func TestRunREPL_StopsOnEOFWithoutTrailingNewline(t *testing.T) {
	captureOutput(t)

	f := &fakeExec{}
	runREPL(context.Background(), f, func() string { return "" }, rdr("login"))

	require.Equal(t, []string{"login"}, f.calls)
}
