package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/socialhub/internal/client/config"
	"github.com/dmitrijs2005/socialhub/internal/client/models"
	"github.com/dmitrijs2005/socialhub/internal/client/repositories/localstore"
	"github.com/dmitrijs2005/socialhub/internal/client/services"
	"github.com/dmitrijs2005/socialhub/internal/logging"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// ------------ helpers ------------

var fixedNow = time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

func rdr(s string) *bufio.Reader { return bufio.NewReader(strings.NewReader(s)) }

// readerFromLines feeds each line as one answer, so "" is an empty answer.
func readerFromLines(lines ...string) *bufio.Reader {
	if len(lines) == 0 {
		return rdr("")
	}
	return rdr(strings.Join(lines, "\n") + "\n")
}

type testApp struct {
	*App
	buf *bytes.Buffer
}

// feed replaces the pending input with lines.
func (ta testApp) feed(lines ...string) {
	ta.reader = readerFromLines(lines...)
}

func newTestAppWith(t *testing.T, auth services.Authenticator) testApp {
	t.Helper()
	ctx := context.Background()
	log := logging.Discard()

	store := localstore.NewFileStore(afero.NewMemMapFs(), "/data")
	session := services.NewSessionStore(store, auth, log)
	session.Init(ctx)
	accounts := services.NewAccountStore(ctx, store, session, log)

	cfg := &config.Config{ChartDir: "/charts", ReportStyle: "notty"}
	a := newApp(cfg, store, session, accounts, afero.NewMemMapFs(), log)
	buf := &bytes.Buffer{}
	a.out = buf
	a.reader = readerFromLines()
	a.now = func() time.Time { return fixedNow }
	t.Cleanup(func() { _ = a.Close() })

	return testApp{App: a, buf: buf}
}

func newTestApp(t *testing.T) testApp {
	t.Helper()
	return newTestAppWith(t, services.NewMockAuthenticator(0))
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := getPassword
	getPassword = func(io.Writer) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { getPassword = orig })
}

// loggedIn returns an app with "ada@example.com" signed in.
func loggedIn(t *testing.T) testApp {
	t.Helper()
	ta := newTestApp(t)
	op := ta.session.Login(context.Background(), "ada@example.com", []byte("pw"))
	require.True(t, op.Wait(context.Background()))
	return ta
}

func addAccount(t *testing.T, ta testApp, d models.AccountDraft) models.SocialMediaAccount {
	t.Helper()
	acc, ok := ta.accounts.Add(context.Background(), d)
	require.True(t, ok)
	return acc
}
