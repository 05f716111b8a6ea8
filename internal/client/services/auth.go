// Package services contains the SocialHub client's stateful services.
// This file defines the authenticator used by the session store: a mock
// of the remote login/signup call with an artificial network delay.
package services

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/socialhub/internal/client/models"
	"github.com/dmitrijs2005/socialhub/internal/common"
	"github.com/google/uuid"
)

// DefaultAuthLatency is the simulated round trip of a login or signup.
const DefaultAuthLatency = time.Second

// mockUserID is the fixed id every login resolves to.
const mockUserID = "1"

// Authenticator performs the remote half of login and signup.
//
// Contract:
//   - Login: resolve credentials to a User.
//   - Signup: create a User with the given display name.
//
// Implementations may block; the session store calls them off the
// caller's goroutine.
type Authenticator interface {
	Login(ctx context.Context, email string, password []byte) (models.User, error)
	Signup(ctx context.Context, email string, password []byte, name string) (models.User, error)
}

// mockAuthenticator accepts any credentials. It is not a security boundary.
type mockAuthenticator struct {
	latency time.Duration
	now     func() time.Time
	newID   func() string
}

// NewMockAuthenticator returns an Authenticator that waits latency and
// then succeeds.
func NewMockAuthenticator(latency time.Duration) Authenticator {
	return &mockAuthenticator{latency: latency, now: time.Now, newID: newTimeOrderedID}
}

// Login returns the fixed mock user; the name is the local part of email.
func (m *mockAuthenticator) Login(ctx context.Context, email string, password []byte) (models.User, error) {
	m.delay()
	return models.User{
		ID:        mockUserID,
		Email:     email,
		Name:      strings.SplitN(email, "@", 2)[0],
		Avatar:    common.DefaultAvatar,
		CreatedAt: m.now().UTC(),
	}, nil
}

// Signup returns a new user with a fresh time-ordered id.
func (m *mockAuthenticator) Signup(ctx context.Context, email string, password []byte, name string) (models.User, error) {
	m.delay()
	return models.User{
		ID:        m.newID(),
		Email:     email,
		Name:      name,
		Avatar:    common.DefaultAvatar,
		CreatedAt: m.now().UTC(),
	}, nil
}

// delay ignores ctx: the simulated call cannot be aborted.
func (m *mockAuthenticator) delay() {
	if m.latency > 0 {
		time.Sleep(m.latency)
	}
}

// newTimeOrderedID returns a UUIDv7 string. Values are monotonic within
// the process, so ids are unique even when minted in the same millisecond.
func newTimeOrderedID() string {
	return uuid.Must(uuid.NewV7()).String()
}
