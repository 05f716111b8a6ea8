package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/socialhub/internal/client/models"
	"github.com/dmitrijs2005/socialhub/internal/common"
	"github.com/dmitrijs2005/socialhub/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStore_InitWithoutRecordIsAnonymous(t *testing.T) {
	s := NewSessionStore(newMemStore(t), NewMockAuthenticator(0), logging.Discard())
	require.Equal(t, StatusUninitialized, s.Status())

	s.Init(context.Background())

	assert.Equal(t, StatusAnonymous, s.Status())
	_, ok := s.User()
	assert.False(t, ok)
}

func TestSessionStore_InitRestoresPersistedUser(t *testing.T) {
	store := newMemStore(t)
	want := models.User{ID: "42", Email: "x@y.z", Name: "x", Avatar: common.DefaultAvatar, CreatedAt: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)}
	raw, _ := json.Marshal(want)
	require.NoError(t, store.Set(context.Background(), common.StorageKeyUser, raw))

	s := newSession(t, store)

	assert.True(t, s.IsAuthenticated())
	got, ok := s.User()
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestSessionStore_InitDiscardsMalformedRecord(t *testing.T) {
	for name, raw := range map[string]string{
		"garbage": "{not json",
		"null":    "null",
	} {
		t.Run(name, func(t *testing.T) {
			store := newMemStore(t)
			require.NoError(t, store.Set(context.Background(), common.StorageKeyUser, []byte(raw)))

			s := newSession(t, store)

			assert.Equal(t, StatusAnonymous, s.Status())
			assert.Nil(t, mustGet(t, store, common.StorageKeyUser))
		})
	}
}

func TestSessionStore_InitRunsOnce(t *testing.T) {
	store := newMemStore(t)
	s := newSession(t, store)

	u := models.User{ID: "late"}
	raw, _ := json.Marshal(u)
	require.NoError(t, store.Set(context.Background(), common.StorageKeyUser, raw))
	s.Init(context.Background())

	assert.Equal(t, StatusAnonymous, s.Status())
}

func TestSessionStore_LoginBuildsMockUser(t *testing.T) {
	store := newMemStore(t)
	s := newSession(t, store)

	u := login(t, s, "a@b.c")

	assert.Equal(t, "1", u.ID)
	assert.Equal(t, "a", u.Name)
	assert.Equal(t, "a@b.c", u.Email)
	assert.Equal(t, common.DefaultAvatar, u.Avatar)
	assert.WithinDuration(t, time.Now(), u.CreatedAt, time.Minute)
	assert.True(t, s.IsAuthenticated())

	var persisted models.User
	require.NoError(t, json.Unmarshal(mustGet(t, store, common.StorageKeyUser), &persisted))
	assert.Equal(t, "1", persisted.ID)
	assert.Equal(t, "a", persisted.Name)
}

func TestSessionStore_LoginWithoutAtSignUsesWholeEmail(t *testing.T) {
	s := newSession(t, newMemStore(t))
	u := login(t, s, "plain")
	assert.Equal(t, "plain", u.Name)
}

func TestSessionStore_SignupAssignsDistinctIDs(t *testing.T) {
	s := newSession(t, newMemStore(t))

	u1 := signup(t, s, "a@b.c", "Alice Liddell")
	u2 := signup(t, s, "a@b.c", "Alice Liddell")

	assert.Equal(t, "Alice Liddell", u1.Name)
	assert.NotEmpty(t, u1.ID)
	assert.NotEqual(t, mockUserID, u1.ID)
	assert.NotEqual(t, u1.ID, u2.ID)

	cur, _ := s.User()
	assert.Equal(t, u2.ID, cur.ID)
}

func TestSessionStore_StatusIsLoadingWhilePending(t *testing.T) {
	auth := &stubAuth{gate: make(chan struct{})}
	s := NewSessionStore(newMemStore(t), auth, logging.Discard())
	s.Init(context.Background())

	op := s.Login(context.Background(), "a@b.c", nil)
	assert.Equal(t, OpPending, op.State())
	assert.Equal(t, StatusLoading, s.Status())
	select {
	case <-op.Done():
		t.Fatal("operation finished before the call returned")
	default:
	}

	close(auth.gate)
	require.True(t, op.Wait(context.Background()))
	assert.Equal(t, OpResolved, op.State())
	assert.Equal(t, StatusAuthenticated, s.Status())
	assert.NoError(t, op.Err())
}

func TestSessionStore_FailedAuthRestoresStatus(t *testing.T) {
	boom := errors.New("network unreachable")
	tests := []struct {
		name string
		auth *stubAuth
	}{
		{name: "error", auth: &stubAuth{err: boom}},
		{name: "panic", auth: &stubAuth{panicMsg: "kaboom"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemStore(t)
			s := NewSessionStore(store, tt.auth, logging.Discard())
			s.Init(context.Background())

			op := s.Signup(context.Background(), "a@b.c", nil, "A")

			assert.False(t, op.Wait(context.Background()))
			assert.Equal(t, OpFailed, op.State())
			assert.Error(t, op.Err())
			_, ok := op.User()
			assert.False(t, ok)
			assert.Equal(t, StatusAnonymous, s.Status())
			assert.Nil(t, mustGet(t, store, common.StorageKeyUser))
		})
	}
}

func TestSessionStore_CancelledWaitDoesNotAbortLogin(t *testing.T) {
	auth := &stubAuth{gate: make(chan struct{})}
	s := NewSessionStore(newMemStore(t), auth, logging.Discard())
	s.Init(context.Background())

	ctx, cancel := context.WithCancel(context.Background())
	op := s.Login(ctx, "a@b.c", nil)
	cancel()
	assert.False(t, op.Wait(ctx))

	close(auth.gate)
	require.True(t, op.Wait(context.Background()))
	assert.True(t, s.IsAuthenticated())
}

func TestSessionStore_UpdateUserProfile(t *testing.T) {
	t.Run("no-op when anonymous", func(t *testing.T) {
		store := &countingStore{Store: newMemStore(t)}
		s := newSession(t, store)

		s.UpdateUserProfile(context.Background(), models.UserPatch{Name: models.Ptr("x")})

		assert.False(t, s.IsAuthenticated())
		assert.Zero(t, store.writes)
	})

	t.Run("merges and persists", func(t *testing.T) {
		store := newMemStore(t)
		s := newSession(t, store)
		login(t, s, "a@b.c")

		s.UpdateUserProfile(context.Background(), models.UserPatch{Avatar: models.Ptr("data:image/png;base64,AAAA")})

		u, _ := s.User()
		assert.Equal(t, "data:image/png;base64,AAAA", u.Avatar)
		assert.Equal(t, "a", u.Name)

		var persisted models.User
		require.NoError(t, json.Unmarshal(mustGet(t, store, common.StorageKeyUser), &persisted))
		assert.Equal(t, u.Avatar, persisted.Avatar)
	})
}

func TestSessionStore_LogoutWipesLocalData(t *testing.T) {
	store := newMemStore(t)
	s := newSession(t, store)
	login(t, s, "a@b.c")
	require.NoError(t, store.Set(context.Background(), common.StorageKeyAccounts, []byte(`[{"id":"x","userId":"someone-else"}]`)))

	s.Logout(context.Background())

	assert.Equal(t, StatusAnonymous, s.Status())
	assert.Nil(t, mustGet(t, store, common.StorageKeyUser))
	assert.Nil(t, mustGet(t, store, common.StorageKeyAccounts))
}

func TestSessionStore_SubscribeNotifiesUntilUnsubscribed(t *testing.T) {
	s := newSession(t, newMemStore(t))

	var seen []string
	unsubscribe := s.Subscribe(func(u *models.User) {
		if u == nil {
			seen = append(seen, "<nil>")
			return
		}
		seen = append(seen, u.Name)
	})

	login(t, s, "bob@b.c")
	s.UpdateUserProfile(context.Background(), models.UserPatch{Name: models.Ptr("Bobby")})
	s.Logout(context.Background())
	unsubscribe()
	unsubscribe()
	login(t, s, "carol@b.c")

	assert.Equal(t, []string{"bob", "Bobby", "<nil>"}, seen)
}

func TestSessionStore_StoreFailuresAreLogged(t *testing.T) {
	log, buf := newBufferLogger()
	s := NewSessionStore(brokenStore{}, NewMockAuthenticator(0), log)
	s.Init(context.Background())

	op := s.Login(context.Background(), "a@b.c", nil)
	require.True(t, op.Wait(context.Background()))
	assert.True(t, s.IsAuthenticated())

	s.Logout(context.Background())
	assert.Equal(t, StatusAnonymous, s.Status())

	out := buf.String()
	assert.Contains(t, out, "failed to save user")
	assert.Contains(t, out, "failed to clear local data")
	assert.Contains(t, out, errStoreDown.Error())
}

func TestMockAuthenticator_WaitsLatency(t *testing.T) {
	auth := NewMockAuthenticator(20 * time.Millisecond)

	start := time.Now()
	_, err := auth.Login(context.Background(), "a@b.c", nil)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestOpState_String(t *testing.T) {
	assert.Equal(t, "pending", OpPending.String())
	assert.Equal(t, "resolved", OpResolved.String())
	assert.Equal(t, "failed", OpFailed.String())
	assert.Equal(t, "loading", StatusLoading.String())
}
