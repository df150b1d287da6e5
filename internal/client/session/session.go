// Package session persists and retrieves the current session: the signed-in
// user record, the access token, and the refresh token.
package session

import "github.com/pbishop/crispychat/internal/client/models"

// Session is the in-memory view of the persisted credentials. Any field may
// be empty: a crash between writes can leave tokens without a user or the
// other way around, and callers must tolerate that.
type Session struct {
	User         *models.User
	AccessToken  string
	RefreshToken string
}
