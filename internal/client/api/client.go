// Package api implements the HTTP client for the account/chat service:
// registration, login, token refresh, and the authenticated user directory.
package api

import (
	"context"

	"github.com/pbishop/crispychat/internal/client/models"
	"github.com/pbishop/crispychat/internal/client/session"
)

// Client defines the remote operations the rest of the application uses.
//
// Contract:
//   - Register: create an account; success only on the server's 201.
//   - Login: authenticate and persist the returned session; prior stored
//     session survives any failure.
//   - Refresh: exchange the stored refresh token for a new access token;
//     only the access token is rewritten.
//   - ListUsers / GetUser / UpdateUser: bearer-authenticated directory
//     calls; they fail with common.ErrAuthRequired before touching the
//     network when no access token is stored.
//   - Ping: server liveness probe.
//
// All methods honor context cancellation.
type Client interface {
	Register(ctx context.Context, name, email, password string) error
	Login(ctx context.Context, email, password string) (*session.Session, error)
	Refresh(ctx context.Context) (string, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	Ping(ctx context.Context) error
}
