package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/socialhub/internal/client/avatar"
	"github.com/dmitrijs2005/socialhub/internal/client/models"
)

// WhoAmI prints the logged-in user.
func (a *App) WhoAmI(ctx context.Context) error {
	u, ok := a.session.User()
	if !ok {
		return errLoginRequired
	}
	fmt.Fprintf(a.out, "%s <%s>\n", u.Name, u.Email)
	fmt.Fprintf(a.out, "  id:           %s\n", u.ID)
	fmt.Fprintf(a.out, "  member since: %s\n", u.CreatedAt.Local().Format("Jan 2, 2006"))
	fmt.Fprintf(a.out, "  avatar:       %s\n", describeAvatar(u.Avatar))
	fmt.Fprintf(a.out, "  accounts:     %d\n", len(a.accounts.List()))
	return nil
}

// describeAvatar shortens data URIs to their media type.
func describeAvatar(v string) string {
	if rest, ok := strings.CutPrefix(v, "data:"); ok {
		kind, _, _ := strings.Cut(rest, ";")
		return fmt.Sprintf("uploaded %s (%d bytes encoded)", kind, len(v))
	}
	return v
}

// Avatar shows the profile picture, imports one from an image file, or
// resets it to the default with "reset".
func (a *App) Avatar(ctx context.Context, args []string) error {
	u, ok := a.session.User()
	if !ok {
		return errLoginRequired
	}

	switch {
	case len(args) == 0:
		fmt.Fprintln(a.out, describeAvatar(u.Avatar))
		return nil
	case len(args) > 1:
		return fmt.Errorf("%w: avatar [path|reset]", errUsage)
	case args[0] == "reset":
		a.session.UpdateUserProfile(ctx, models.UserPatch{Avatar: models.Ptr(avatar.Default)})
		fmt.Fprintln(a.out, "Avatar reset to default.")
		return nil
	}

	uri, err := avatar.FromFile(a.fs, args[0])
	if err != nil {
		return err
	}
	a.session.UpdateUserProfile(ctx, models.UserPatch{Avatar: &uri})
	fmt.Fprintln(a.out, "Avatar updated.")
	return nil
}
