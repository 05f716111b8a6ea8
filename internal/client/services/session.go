package services

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"

	"github.com/dmitrijs2005/socialhub/internal/client/models"
	"github.com/dmitrijs2005/socialhub/internal/client/repositories/localstore"
	"github.com/dmitrijs2005/socialhub/internal/common"
	"github.com/dmitrijs2005/socialhub/internal/logging"
	"github.com/sourcegraph/conc/panics"
)

// Status is the session lifecycle state.
type Status int

const (
	StatusUninitialized Status = iota
	StatusLoading
	StatusAuthenticated
	StatusAnonymous
)

func (s Status) String() string {
	switch s {
	case StatusUninitialized:
		return "uninitialized"
	case StatusLoading:
		return "loading"
	case StatusAuthenticated:
		return "authenticated"
	case StatusAnonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

// Observer is notified after every session transition with the current
// user, or nil when nobody is logged in.
type Observer func(u *models.User)

type observerEntry struct {
	id int
	fn Observer
}

// SessionStore owns the current user and persists it under the "user"
// key. Persistence failures are logged and never returned.
type SessionStore struct {
	store localstore.Store
	auth  Authenticator
	log   logging.Logger

	initOnce sync.Once

	mu        sync.RWMutex
	status    Status
	user      *models.User
	observers []observerEntry
	nextObsID int
}

// NewSessionStore returns an uninitialized session; call Init to restore
// the persisted user.
func NewSessionStore(store localstore.Store, auth Authenticator, log logging.Logger) *SessionStore {
	return &SessionStore{
		store: store,
		auth:  auth,
		log:   log.With("component", "session"),
	}
}

// Init restores the persisted session. Only the first call has an effect.
func (s *SessionStore) Init(ctx context.Context) {
	s.initOnce.Do(func() {
		s.setStatus(StatusLoading)

		raw, err := s.store.Get(ctx, common.StorageKeyUser)
		if err != nil {
			s.log.Error(ctx, "failed to read session", "error", err)
			s.transition(StatusAnonymous, nil)
			return
		}
		if raw == nil {
			s.transition(StatusAnonymous, nil)
			return
		}

		var u models.User
		if err := json.Unmarshal(raw, &u); err != nil || u.ID == "" {
			s.log.Warn(ctx, "discarding malformed session record", "error", err)
			if err := s.store.Remove(ctx, common.StorageKeyUser); err != nil {
				s.log.Error(ctx, "failed to remove session", "error", err)
			}
			s.transition(StatusAnonymous, nil)
			return
		}

		s.log.Info(ctx, "session restored", "user_id", u.ID)
		s.transition(StatusAuthenticated, &u)
	})
}

// Login starts the mock login. The returned operation completes after
// the authenticator returns; Status reports StatusLoading meanwhile.
func (s *SessionStore) Login(ctx context.Context, email string, password []byte) *AuthOperation {
	pw := bytes.Clone(password)
	return s.authenticate(ctx, func(ctx context.Context) (models.User, error) {
		defer common.WipeByteArray(pw)
		return s.auth.Login(ctx, email, pw)
	})
}

// Signup starts the mock registration of a new user.
func (s *SessionStore) Signup(ctx context.Context, email string, password []byte, name string) *AuthOperation {
	pw := bytes.Clone(password)
	return s.authenticate(ctx, func(ctx context.Context) (models.User, error) {
		defer common.WipeByteArray(pw)
		return s.auth.Signup(ctx, email, pw, name)
	})
}

func (s *SessionStore) authenticate(ctx context.Context, call func(context.Context) (models.User, error)) *AuthOperation {
	op := newAuthOperation()

	s.mu.Lock()
	prev := s.status
	s.status = StatusLoading
	s.mu.Unlock()

	ctx = context.WithoutCancel(ctx)

	go func() {
		var (
			u   models.User
			err error
			pc  panics.Catcher
		)
		pc.Try(func() { u, err = call(ctx) })
		if r := pc.Recovered(); r != nil {
			err = r.AsError()
		}

		if err != nil {
			s.log.Warn(ctx, "authentication failed", "error", err)
			s.mu.Lock()
			if s.status == StatusLoading {
				s.status = prev
			}
			s.mu.Unlock()
			op.fail(err)
			return
		}

		s.persist(ctx, u)
		s.log.Info(ctx, "user authenticated", "user_id", u.ID)
		s.transition(StatusAuthenticated, &u)
		op.resolve(u)
	}()

	return op
}

// UpdateUserProfile merges the present fields of p into the current
// user. It does nothing when nobody is logged in.
func (s *SessionStore) UpdateUserProfile(ctx context.Context, p models.UserPatch) {
	s.mu.RLock()
	cur := s.user
	s.mu.RUnlock()
	if cur == nil {
		return
	}

	updated := cur.Apply(p)
	s.persist(ctx, updated)
	s.transition(StatusAuthenticated, &updated)
}

// Logout forgets the user and every stored account on this device.
func (s *SessionStore) Logout(ctx context.Context) {
	for _, key := range []string{common.StorageKeyUser, common.StorageKeyAccounts} {
		if err := s.store.Remove(ctx, key); err != nil {
			s.log.Error(ctx, "failed to clear local data", "key", key, "error", err)
		}
	}
	s.log.Info(ctx, "user logged out")
	s.transition(StatusAnonymous, nil)
}

// Subscribe registers fn for session transitions. The returned func
// removes it.
func (s *SessionStore) Subscribe(fn Observer) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextObsID
	s.nextObsID++
	s.observers = append(s.observers, observerEntry{id: id, fn: fn})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, o := range s.observers {
				if o.id == id {
					s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
					return
				}
			}
		})
	}
}

// Status returns the current lifecycle state.
func (s *SessionStore) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// User returns a copy of the current user.
func (s *SessionStore) User() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

func (s *SessionStore) IsAuthenticated() bool {
	return s.Status() == StatusAuthenticated
}

func (s *SessionStore) setStatus(st Status) {
	s.mu.Lock()
	s.status = st
	s.mu.Unlock()
}

// transition commits the new state and then calls observers outside the
// lock, each with its own copy of the user.
func (s *SessionStore) transition(st Status, u *models.User) {
	s.mu.Lock()
	s.status = st
	s.user = u
	obs := make([]Observer, len(s.observers))
	for i, o := range s.observers {
		obs[i] = o.fn
	}
	s.mu.Unlock()

	for _, fn := range obs {
		if u == nil {
			fn(nil)
			continue
		}
		cp := *u
		fn(&cp)
	}
}

func (s *SessionStore) persist(ctx context.Context, u models.User) {
	raw, err := json.Marshal(u)
	if err != nil {
		s.log.Error(ctx, "failed to encode user", "error", err)
		return
	}
	if err := s.store.Set(ctx, common.StorageKeyUser, raw); err != nil {
		s.log.Error(ctx, "failed to save user", "user_id", u.ID, "error", err)
	}
}
