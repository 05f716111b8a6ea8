package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/socialhub/internal/client/services"
	"github.com/dmitrijs2005/socialhub/internal/common"
)

// progressInterval is how often a dot is printed while an auth call runs.
var progressInterval = 250 * time.Millisecond

// Signup prompts for email, display name and password and registers a
// new user. It returns once the operation has completed.
func (a *App) Signup(ctx context.Context) error {
	email, err := a.required("Enter email")
	if err != nil {
		return err
	}
	name, err := a.required("Enter your name")
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	if len(password) == 0 {
		return fmt.Errorf("password: %w", errRequired)
	}

	return a.await(ctx, "Creating account", a.session.Signup(ctx, email, password, name))
}

// Login prompts for credentials and signs in.
func (a *App) Login(ctx context.Context) error {
	email, err := a.required("Enter email")
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	if len(password) == 0 {
		return fmt.Errorf("password: %w", errRequired)
	}

	return a.await(ctx, "Signing in", a.session.Login(ctx, email, password))
}

// await shows a progress indicator until op completes. A cancelled ctx
// stops the wait, not the operation.
func (a *App) await(ctx context.Context, label string, op *services.AuthOperation) error {
	fmt.Fprint(a.out, label)
	ticker := time.NewTicker(progressInterval)
	defer ticker.Stop()

	for {
		select {
		case <-op.Done():
			fmt.Fprintln(a.out)
			if op.State() == services.OpFailed {
				a.log.Warn(ctx, "authentication unsuccessful", "error", op.Err())
				return fmt.Errorf("authentication failed: %w", op.Err())
			}
			u, _ := op.User()
			fmt.Fprintf(a.out, "Welcome, %s!\n", u.Name)
			return nil
		case <-ticker.C:
			fmt.Fprint(a.out, ".")
		case <-ctx.Done():
			fmt.Fprintln(a.out)
			return ctx.Err()
		}
	}
}

// Logout signs out and wipes the user and account records from this device.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// required reads one answer and rejects an empty value.
func (a *App) required(prompt string) (string, error) {
	v, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}
	if v == "" {
		return "", fmt.Errorf("%s: %w", prompt, errRequired)
	}
	return v, nil
}
