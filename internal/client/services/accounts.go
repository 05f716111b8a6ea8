package services

import (
	"context"
	"encoding/json"
	"math/rand/v2"
	"slices"
	"sync"

	"github.com/dmitrijs2005/socialhub/internal/client/models"
	"github.com/dmitrijs2005/socialhub/internal/client/repositories/localstore"
	"github.com/dmitrijs2005/socialhub/internal/common"
	"github.com/dmitrijs2005/socialhub/internal/logging"
)

// AccountStore holds the logged-in user's social accounts and writes
// every change through to the shared "socialAccounts" list, which also
// carries other users' entries.
type AccountStore struct {
	store localstore.Store
	log   logging.Logger
	newID func() string
	rnd   *rand.Rand

	mu       sync.Mutex
	userID   string
	accounts []models.SocialMediaAccount

	unsubscribe func()
}

// AccountOption customizes an AccountStore.
type AccountOption func(*AccountStore)

// WithIDGenerator replaces the UUIDv7 id source.
func WithIDGenerator(fn func() string) AccountOption {
	return func(a *AccountStore) { a.newID = fn }
}

// WithRand sets the source for seeded growth percentages.
func WithRand(r *rand.Rand) AccountOption {
	return func(a *AccountStore) { a.rnd = r }
}

// NewAccountStore subscribes to session and loads the current user's
// accounts, if any.
func NewAccountStore(ctx context.Context, store localstore.Store, session *SessionStore, log logging.Logger, opts ...AccountOption) *AccountStore {
	a := &AccountStore{
		store: store,
		log:   log.With("component", "accounts"),
		newID: newTimeOrderedID,
		rnd:   rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, o := range opts {
		o(a)
	}

	ctx = context.WithoutCancel(ctx)
	a.unsubscribe = session.Subscribe(func(u *models.User) { a.onSession(ctx, u) })

	if u, ok := session.User(); ok {
		a.onSession(ctx, &u)
	}
	return a
}

// Close detaches the store from the session.
func (a *AccountStore) Close() {
	a.unsubscribe()
}

func (a *AccountStore) onSession(ctx context.Context, u *models.User) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if u == nil {
		a.userID, a.accounts = "", nil
		return
	}
	if u.ID == a.userID {
		return
	}

	a.userID = u.ID
	a.accounts = a.load(ctx, u.ID)
	a.log.Debug(ctx, "accounts loaded", "user_id", u.ID, "count", len(a.accounts))
}

func (a *AccountStore) load(ctx context.Context, userID string) []models.SocialMediaAccount {
	raw, err := a.store.Get(ctx, common.StorageKeyAccounts)
	if err != nil {
		a.log.Error(ctx, "failed to read accounts", "error", err)
		return nil
	}

	var out []models.SocialMediaAccount
	for _, acc := range a.decode(ctx, raw) {
		if acc.UserID == userID {
			out = append(out, acc)
		}
	}
	return out
}

// decode treats an absent or malformed list as empty.
func (a *AccountStore) decode(ctx context.Context, raw []byte) []models.SocialMediaAccount {
	if raw == nil {
		return nil
	}
	var all []models.SocialMediaAccount
	if err := json.Unmarshal(raw, &all); err != nil {
		a.log.Warn(ctx, "ignoring malformed account list", "error", err)
		return nil
	}
	return all
}

// List returns the current user's accounts in insertion order.
func (a *AccountStore) List() []models.SocialMediaAccount {
	a.mu.Lock()
	defer a.mu.Unlock()
	return slices.Clone(a.accounts)
}

// Get finds one of the current user's accounts by id.
func (a *AccountStore) Get(id string) (models.SocialMediaAccount, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if i := a.indexOf(id); i >= 0 {
		return a.accounts[i], true
	}
	return models.SocialMediaAccount{}, false
}

// Add creates an account from d for the current user. It reports false
// without side effects when nobody is logged in.
func (a *AccountStore) Add(ctx context.Context, d models.AccountDraft) (models.SocialMediaAccount, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.userID == "" {
		return models.SocialMediaAccount{}, false
	}

	acc := models.SocialMediaAccount{
		ID:          a.newID(),
		UserID:      a.userID,
		Platform:    d.Platform,
		Username:    d.Username,
		Followers:   d.Followers,
		Views:       d.Views,
		Comments:    d.Comments,
		Likes:       d.Likes,
		Revenue:     d.Revenue,
		Avatar:      common.DefaultAvatar,
		IsVerified:  d.IsVerified,
		LastUpdated: common.JustNow,
	}
	a.seedGrowth(&acc)

	a.accounts = append(a.accounts, acc)
	a.save(ctx)
	return acc, true
}

// Update merges p into the account with the given id.
func (a *AccountStore) Update(ctx context.Context, id string, p models.AccountPatch) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	i := a.indexOf(id)
	if i < 0 {
		return false
	}
	acc := a.accounts[i].Apply(p)
	acc.LastUpdated = common.JustNow
	a.accounts[i] = acc
	a.save(ctx)
	return true
}

// Delete removes the account with the given id.
func (a *AccountStore) Delete(ctx context.Context, id string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	i := a.indexOf(id)
	if i < 0 {
		return false
	}
	a.accounts = slices.Delete(a.accounts, i, i+1)
	a.save(ctx)
	return true
}

// indexOf expects a.mu held.
func (a *AccountStore) indexOf(id string) int {
	return slices.IndexFunc(a.accounts, func(x models.SocialMediaAccount) bool { return x.ID == id })
}

// save replaces the current user's slice of the shared list with the
// in-memory accounts, leaving other users' entries as found. Expects a.mu
// held. The in-memory state stands even if the write fails.
func (a *AccountStore) save(ctx context.Context) {
	userID := a.userID
	mine := slices.Clone(a.accounts)

	err := a.store.Update(ctx, common.StorageKeyAccounts, func(current []byte) ([]byte, error) {
		all := a.decode(ctx, current)
		merged := make([]models.SocialMediaAccount, 0, len(all)+len(mine))
		for _, acc := range all {
			if acc.UserID != userID {
				merged = append(merged, acc)
			}
		}
		merged = append(merged, mine...)
		return json.Marshal(merged)
	})
	if err != nil {
		a.log.Error(ctx, "failed to save accounts", "user_id", userID, "error", err)
	}
}

// seedGrowth fills in the simulated period-over-period growth.
func (a *AccountStore) seedGrowth(acc *models.SocialMediaAccount) {
	between := func(lo, hi float64) float64 { return lo + a.rnd.Float64()*(hi-lo) }
	acc.FollowersGrowth = between(-5, 15)
	acc.ViewsGrowth = between(-5, 20)
	acc.CommentsGrowth = between(-10, 20)
	acc.LikesGrowth = between(-5, 15)
	acc.RevenueGrowth = between(-10, 30)
}
