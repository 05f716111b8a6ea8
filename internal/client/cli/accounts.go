package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/socialhub/internal/client/analytics"
	"github.com/dmitrijs2005/socialhub/internal/client/models"
	"github.com/dmitrijs2005/socialhub/internal/common"
)

// List prints the current user's accounts as a table. The # column is
// what edit and delete accept.
func (a *App) List(ctx context.Context) error {
	accs := a.accounts.List()
	if len(accs) == 0 {
		fmt.Fprintln(a.out, "No accounts yet. Use 'add' to connect your first account.")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tPLATFORM\tUSERNAME\tFOLLOWERS\tVIEWS\tCOMMENTS\tLIKES\tREVENUE\tENGAGEMENT\tUPDATED")
	for i, acc := range accs {
		user := "@" + acc.Username
		if acc.IsVerified {
			user += " ✓"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s (%s)\t%s (%s)\t%s (%s)\t%s\t%s (%s)\t%.1f%%\t%s\n",
			i+1, acc.Platform.Label(), user,
			analytics.FormatNumber(float64(acc.Followers)), analytics.FormatPercent(acc.FollowersGrowth),
			analytics.FormatNumber(float64(acc.Views)), analytics.FormatPercent(acc.ViewsGrowth),
			analytics.FormatNumber(float64(acc.Comments)), analytics.FormatPercent(acc.CommentsGrowth),
			analytics.FormatNumber(float64(acc.Likes)),
			analytics.FormatCurrency(acc.Revenue), analytics.FormatPercent(acc.RevenueGrowth),
			analytics.EngagementRate(acc), acc.LastUpdated)
	}
	return tw.Flush()
}

func platformMenu() string {
	names := make([]string, 0, len(models.Platforms()))
	for _, p := range models.Platforms() {
		names = append(names, string(p))
	}
	return strings.Join(names, ", ")
}

// Add prompts for a new account and connects it.
func (a *App) Add(ctx context.Context) error {
	raw, err := getSimpleText(a.reader, "Platform ("+platformMenu()+") [instagram]", a.out)
	if err != nil {
		return err
	}
	platform := models.PlatformInstagram
	if raw != "" {
		if platform, err = models.ParsePlatform(raw); err != nil {
			return err
		}
	}

	username, err := a.required("Username")
	if err != nil {
		return err
	}

	d := models.AccountDraft{Platform: platform, Username: strings.TrimPrefix(username, "@")}
	for _, f := range []struct {
		prompt string
		dst    *int64
	}{
		{"Followers", &d.Followers},
		{"Views", &d.Views},
		{"Comments", &d.Comments},
		{"Likes", &d.Likes},
	} {
		v, err := getSimpleText(a.reader, f.prompt+" [0]", a.out)
		if err != nil {
			return err
		}
		*f.dst = models.CoerceCount(v)
	}

	v, err := getSimpleText(a.reader, "Revenue in USD [0]", a.out)
	if err != nil {
		return err
	}
	d.Revenue = models.CoerceAmount(v)

	v, err = getSimpleText(a.reader, "Verified? (y/N)", a.out)
	if err != nil {
		return err
	}
	d.IsVerified = models.CoerceBool(v)

	acc, ok := a.accounts.Add(ctx, d)
	if !ok {
		return errLoginRequired
	}
	fmt.Fprintf(a.out, "Connected @%s on %s.\n", acc.Username, acc.Platform.Label())
	return nil
}

// resolve finds an account by its list number or id.
func (a *App) resolve(args []string, usage string) (models.SocialMediaAccount, error) {
	if len(args) != 1 {
		return models.SocialMediaAccount{}, fmt.Errorf("%w: %s", errUsage, usage)
	}
	ref := args[0]

	if n, err := strconv.Atoi(ref); err == nil {
		accs := a.accounts.List()
		if n >= 1 && n <= len(accs) {
			return accs[n-1], nil
		}
	}
	if acc, ok := a.accounts.Get(ref); ok {
		return acc, nil
	}
	return models.SocialMediaAccount{}, fmt.Errorf("account %s: %w", ref, common.ErrorNotFound)
}

// Edit prompts for each field showing the current value; an empty answer
// keeps it.
func (a *App) Edit(ctx context.Context, args []string) error {
	acc, err := a.resolve(args, "edit <n|id>")
	if err != nil {
		return err
	}

	var p models.AccountPatch
	ask := func(label, current string) (string, error) {
		return getSimpleText(a.reader, fmt.Sprintf("%s [%s]", label, current), a.out)
	}

	v, err := ask("Platform ("+platformMenu()+")", string(acc.Platform))
	if err != nil {
		return err
	}
	if v != "" {
		pl, err := models.ParsePlatform(v)
		if err != nil {
			return err
		}
		if pl != acc.Platform {
			p.Platform = &pl
		}
	}

	if v, err = ask("Username", acc.Username); err != nil {
		return err
	}
	if v = strings.TrimPrefix(v, "@"); v != "" && v != acc.Username {
		p.Username = &v
	}

	for _, f := range []struct {
		label   string
		current int64
		dst     **int64
	}{
		{"Followers", acc.Followers, &p.Followers},
		{"Views", acc.Views, &p.Views},
		{"Comments", acc.Comments, &p.Comments},
		{"Likes", acc.Likes, &p.Likes},
	} {
		v, err := ask(f.label, strconv.FormatInt(f.current, 10))
		if err != nil {
			return err
		}
		if v == "" {
			continue
		}
		if n := models.CoerceCount(v); n != f.current {
			*f.dst = &n
		}
	}

	if v, err = ask("Revenue in USD", strconv.FormatFloat(acc.Revenue, 'f', -1, 64)); err != nil {
		return err
	}
	if v != "" {
		if r := models.CoerceAmount(v); r != acc.Revenue {
			p.Revenue = &r
		}
	}

	if v, err = ask("Verified (y/n)", yesNo(acc.IsVerified)); err != nil {
		return err
	}
	if v != "" {
		if b := models.CoerceBool(v); b != acc.IsVerified {
			p.IsVerified = &b
		}
	}

	if p.IsEmpty() {
		fmt.Fprintln(a.out, "Nothing changed.")
		return nil
	}
	if !a.accounts.Update(ctx, acc.ID, p) {
		return fmt.Errorf("account %s: %w", acc.ID, common.ErrorNotFound)
	}
	fmt.Fprintf(a.out, "Updated @%s.\n", acc.Apply(p).Username)
	return nil
}

func yesNo(b bool) string {
	if b {
		return "y"
	}
	return "n"
}

// Delete removes an account after confirmation.
func (a *App) Delete(ctx context.Context, args []string) error {
	acc, err := a.resolve(args, "delete <n|id>")
	if err != nil {
		return err
	}

	q := fmt.Sprintf("Delete @%s on %s?", acc.Username, acc.Platform.Label())
	if !getConfirmation(a.reader, q, a.out) {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}
	if !a.accounts.Delete(ctx, acc.ID) {
		return fmt.Errorf("account %s: %w", acc.ID, common.ErrorNotFound)
	}
	fmt.Fprintf(a.out, "Deleted @%s.\n", acc.Username)
	return nil
}
