package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/socialhub/internal/client/config"
	"github.com/dmitrijs2005/socialhub/internal/client/repositories/localstore"
	"github.com/dmitrijs2005/socialhub/internal/client/services"
	"github.com/dmitrijs2005/socialhub/internal/filex"
	"github.com/dmitrijs2005/socialhub/internal/logging"
	"github.com/spf13/afero"
)

// App is the CLI's composition root: it owns the store and the services
// built on top of it.
type App struct {
	config   *config.Config
	store    localstore.Store
	session  *services.SessionStore
	accounts *services.AccountStore
	fs       afero.Fs
	log      logging.Logger
	reader   *bufio.Reader
	out      io.Writer
	now      func() time.Time
}

// NewApp opens the configured storage backend and builds the session
// and account stores on it. Call Close when done.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	fs := afero.NewOsFs()

	opts := cfg.StoreOptions()
	opts.Fs = fs
	if opts.Backend == localstore.BackendSQLite || opts.Backend == "" {
		if _, err := filex.EnsureDir(fs, filepath.Dir(opts.DatabasePath)); err != nil {
			return nil, err
		}
	}

	store, err := localstore.Open(ctx, opts)
	if err != nil {
		log.Error(ctx, "error opening storage", "backend", opts.Backend, "error", err)
		return nil, err
	}

	session := services.NewSessionStore(store, services.NewMockAuthenticator(cfg.AuthLatency), log)
	accounts := services.NewAccountStore(ctx, store, session, log)

	return newApp(cfg, store, session, accounts, fs, log), nil
}

func newApp(cfg *config.Config, store localstore.Store, session *services.SessionStore,
	accounts *services.AccountStore, fs afero.Fs, log logging.Logger) *App {
	return &App{
		config:   cfg,
		store:    store,
		session:  session,
		accounts: accounts,
		fs:       fs,
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		now:      time.Now,
	}
}

// Close detaches the account store and releases the storage backend.
func (a *App) Close() error {
	a.accounts.Close()
	return a.store.Close()
}

// Restore loads the session persisted by an earlier run and reports
// whether someone is logged in.
func (a *App) Restore(ctx context.Context) bool {
	a.session.Init(ctx)
	return a.isLoggedIn()
}

// Run restores the session and blocks in the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	a.Restore(ctx)

	printlnFn("Welcome to SocialHub (type 'help' for commands)")
	if u, ok := a.session.User(); ok {
		printlnFn(fmt.Sprintf("Welcome back, %s!", u.Name))
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) getStatus() string {
	if u, ok := a.session.User(); ok {
		return fmt.Sprintf("(%s)", u.Name)
	}
	return ""
}
