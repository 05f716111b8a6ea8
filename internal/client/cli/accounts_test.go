package cli

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/socialhub/internal/client/models"
	"github.com/dmitrijs2005/socialhub/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApp_AddAndList(t *testing.T) {
	ta := loggedIn(t)
	ta.feed("YouTube", "@ada_codes", "1500", "-20", "abc", "7", "12.5", "y")

	require.NoError(t, ta.Add(context.Background()))

	accs := ta.accounts.List()
	require.Len(t, accs, 1)
	acc := accs[0]
	assert.Equal(t, models.PlatformYouTube, acc.Platform)
	assert.Equal(t, "ada_codes", acc.Username)
	assert.Equal(t, int64(1500), acc.Followers)
	assert.Zero(t, acc.Views)
	assert.Zero(t, acc.Comments)
	assert.Equal(t, int64(7), acc.Likes)
	assert.Equal(t, 12.5, acc.Revenue)
	assert.True(t, acc.IsVerified)
	assert.Contains(t, ta.buf.String(), "Connected @ada_codes on YouTube.")

	ta.buf.Reset()
	require.NoError(t, ta.List(context.Background()))
	out := ta.buf.String()
	assert.Contains(t, out, "PLATFORM")
	assert.Contains(t, out, "@ada_codes ✓")
	assert.Contains(t, out, "1.5K")
	assert.Contains(t, out, "$12.50")
	assert.Contains(t, out, "Just now")
}

func TestApp_AddDefaultsAndErrors(t *testing.T) {
	ta := loggedIn(t)

	ta.feed("", "plain", "", "", "", "", "", "")
	require.NoError(t, ta.Add(context.Background()))
	assert.Equal(t, models.PlatformInstagram, ta.accounts.List()[0].Platform)

	ta.feed("myspace")
	assert.ErrorIs(t, ta.Add(context.Background()), common.ErrUnknownPlatform)

	ta.feed("twitter", "")
	assert.ErrorIs(t, ta.Add(context.Background()), errRequired)
	assert.Len(t, ta.accounts.List(), 1)
}

func TestApp_ListEmpty(t *testing.T) {
	ta := loggedIn(t)
	require.NoError(t, ta.List(context.Background()))
	assert.Contains(t, ta.buf.String(), "No accounts yet")
}

func TestApp_Edit(t *testing.T) {
	ta := loggedIn(t)
	acc := addAccount(t, ta, models.AccountDraft{Platform: models.PlatformTikTok, Username: "ada", Followers: 10, Revenue: 5})

	// keep platform and username, change followers and verification
	ta.feed("", "", "250", "", "", "", "", "y")
	require.NoError(t, ta.Edit(context.Background(), []string{"1"}))

	got, ok := ta.accounts.Get(acc.ID)
	require.True(t, ok)
	assert.Equal(t, int64(250), got.Followers)
	assert.True(t, got.IsVerified)
	assert.Equal(t, "ada", got.Username)
	assert.Equal(t, 5.0, got.Revenue)
	assert.Contains(t, ta.buf.String(), "Updated @ada.")
}

func TestApp_EditNothingChanged(t *testing.T) {
	ta := loggedIn(t)
	acc := addAccount(t, ta, models.AccountDraft{Platform: models.PlatformTikTok, Username: "ada", Followers: 10})

	ta.feed("tiktok", "ada", "10", "", "", "", "", "n")
	require.NoError(t, ta.Edit(context.Background(), []string{acc.ID}))

	assert.Contains(t, ta.buf.String(), "Nothing changed.")
}

func TestApp_EditAndDeleteResolveErrors(t *testing.T) {
	ta := loggedIn(t)
	addAccount(t, ta, models.AccountDraft{Platform: models.PlatformFacebook, Username: "x"})

	assert.ErrorIs(t, ta.Edit(context.Background(), nil), errUsage)
	assert.ErrorIs(t, ta.Edit(context.Background(), []string{"2"}), common.ErrorNotFound)
	assert.ErrorIs(t, ta.Delete(context.Background(), []string{"nope"}), common.ErrorNotFound)
}

func TestApp_DeleteAsksForConfirmation(t *testing.T) {
	ta := loggedIn(t)
	acc := addAccount(t, ta, models.AccountDraft{Platform: models.PlatformFacebook, Username: "x"})

	ta.feed("n")
	require.NoError(t, ta.Delete(context.Background(), []string{"1"}))
	assert.Len(t, ta.accounts.List(), 1)
	assert.Contains(t, ta.buf.String(), "Cancelled.")

	ta.feed("yes")
	require.NoError(t, ta.Delete(context.Background(), []string{acc.ID}))
	assert.Empty(t, ta.accounts.List())
	assert.Contains(t, ta.buf.String(), "Deleted @x.")
}
