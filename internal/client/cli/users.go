package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/pbishop/crispychat/internal/client/api"
	"github.com/pbishop/crispychat/internal/client/services"
)

// Users refreshes and prints the user directory. The signed-in user is
// skipped, matching the mobile client's roster view.
func (a *App) Users(ctx context.Context) error {
	if err := a.session.RefreshDirectory(ctx); err != nil {
		return err
	}

	current := a.session.CurrentUser()

	for _, u := range a.session.Users() {
		if current != nil && u.ID == current.ID {
			continue
		}
		presence := " "
		if u.Online {
			presence = "*"
		}
		fmt.Fprintf(a.out, "%s %s <%s>\n", presence, u.Name, u.Email)
	}
	return nil
}

// Whoami prints the signed-in user.
func (a *App) Whoami(ctx context.Context) error {
	current := a.session.CurrentUser()
	if current == nil {
		fmt.Fprintln(a.out, "Not signed in.")
		return nil
	}
	fmt.Fprintf(a.out, "%s <%s> (id %s)\n", current.Name, current.Email, current.ID)
	return nil
}

// Status prints session state, connectivity, and access-token expiry.
func (a *App) Status(ctx context.Context) error {
	fmt.Fprintf(a.out, "session: %s\n", a.session.State())
	if a.mode != "" {
		fmt.Fprintf(a.out, "server:  %s\n", a.mode)
	}

	if a.session.State() != services.StateAuthenticated {
		return nil
	}

	token, err := a.store.AccessToken(ctx)
	if err != nil || token == "" {
		return nil
	}
	if exp, err := api.TokenExpiry(token); err == nil {
		fmt.Fprintf(a.out, "token:   expires %s\n", exp.Time.Format(time.RFC3339))
	}
	return nil
}
