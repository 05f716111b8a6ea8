package services

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/dmitrijs2005/socialhub/internal/client/models"
	"github.com/dmitrijs2005/socialhub/internal/client/repositories/localstore"
	"github.com/dmitrijs2005/socialhub/internal/logging"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// ---- helpers ----

func newMemStore(t *testing.T) localstore.Store {
	t.Helper()
	return localstore.NewFileStore(afero.NewMemMapFs(), "/data")
}

func newBufferLogger() (logging.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	h := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return logging.NewSlogLogger(slog.New(h)), buf
}

// newSession returns an initialized session with an instant authenticator.
func newSession(t *testing.T, store localstore.Store) *SessionStore {
	t.Helper()
	s := NewSessionStore(store, NewMockAuthenticator(0), logging.Discard())
	s.Init(context.Background())
	return s
}

func login(t *testing.T, s *SessionStore, email string) models.User {
	t.Helper()
	op := s.Login(context.Background(), email, []byte("secret"))
	require.True(t, op.Wait(context.Background()), "login failed: %v", op.Err())
	u, ok := op.User()
	require.True(t, ok)
	return u
}

func signup(t *testing.T, s *SessionStore, email, name string) models.User {
	t.Helper()
	op := s.Signup(context.Background(), email, []byte("secret"), name)
	require.True(t, op.Wait(context.Background()), "signup failed: %v", op.Err())
	u, _ := op.User()
	return u
}

func mustGet(t *testing.T, store localstore.Store, key string) []byte {
	t.Helper()
	v, err := store.Get(context.Background(), key)
	require.NoError(t, err)
	return v
}

// ---- fakes ----

// stubAuth lets tests hold, fail or crash the authentication call.
type stubAuth struct {
	gate     chan struct{}
	err      error
	panicMsg string
}

func (a *stubAuth) call(email string) (models.User, error) {
	if a.gate != nil {
		<-a.gate
	}
	if a.panicMsg != "" {
		panic(a.panicMsg)
	}
	if a.err != nil {
		return models.User{}, a.err
	}
	return models.User{ID: "stub", Email: email, Name: "stub"}, nil
}

func (a *stubAuth) Login(_ context.Context, email string, _ []byte) (models.User, error) {
	return a.call(email)
}

func (a *stubAuth) Signup(_ context.Context, email string, _ []byte, _ string) (models.User, error) {
	return a.call(email)
}

var errStoreDown = errors.New("store down")

// brokenStore reads as empty and fails every write.
type brokenStore struct{}

func (brokenStore) Get(context.Context, string) ([]byte, error) { return nil, nil }
func (brokenStore) Set(context.Context, string, []byte) error { return errStoreDown }
func (brokenStore) Remove(context.Context, string) error { return errStoreDown }
func (brokenStore) Close() error { return nil }
func (brokenStore) Update(context.Context, string, localstore.UpdateFunc) error {
	return errStoreDown
}

// countingStore counts write calls on top of another store.
type countingStore struct {
	localstore.Store
	writes int
}

func (c *countingStore) Set(ctx context.Context, key string, v []byte) error {
	c.writes++
	return c.Store.Set(ctx, key, v)
}

func (c *countingStore) Update(ctx context.Context, key string, fn localstore.UpdateFunc) error {
	c.writes++
	return c.Store.Update(ctx, key, fn)
}
