package cli

import (
	"context"
	"fmt"

	"github.com/pbishop/crispychat/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a name, email, and password and creates a new
// account. Registration issues no tokens, so the user logs in afterwards.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Register(ctx, name, email, string(password)); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Account created. Use 'login' to sign in.")
	return nil
}

// Login prompts for credentials and signs in. On success the session is
// persisted locally and the user directory is refreshed.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Login(ctx, email, string(password)); err != nil {
		return err
	}

	if err := a.session.LastPresenceErr(); err != nil {
		fmt.Fprintf(a.out, "Signed in, but presence update failed: %v\n", err)
	} else {
		fmt.Fprintln(a.out, "Signed in.")
	}

	if err := a.session.RefreshDirectory(ctx); err != nil {
		fmt.Fprintf(a.out, "Could not fetch user list: %v\n", err)
	}
	return nil
}

// Refresh exchanges the stored refresh token for a new access token.
func (a *App) Refresh(ctx context.Context) error {
	if err := a.session.Refresh(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Access token refreshed.")
	return nil
}

// Logout clears the locally stored session. No server call is made.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
