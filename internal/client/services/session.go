// Package services contains the application services for the chat client.
// This file defines the session service: the state machine that orchestrates
// the API client and the local session store across login, register,
// refresh, logout, and startup hydration.
package services

import (
	"context"
	"log/slog"
	"sync"

	"github.com/pbishop/crispychat/internal/client/api"
	"github.com/pbishop/crispychat/internal/client/models"
	"github.com/pbishop/crispychat/internal/client/session"
	"github.com/pbishop/crispychat/internal/logging"
)

// State is the session lifecycle position.
type State string

const (
	StateUnauthenticated State = "unauthenticated"
	StateAuthenticating  State = "authenticating"
	StateAuthenticated   State = "authenticated"
	StateRefreshing      State = "refreshing"
)

// SessionService defines the session lifecycle operations for the CLI.
//
// Contract:
//   - Hydrate: rebuild session state from local storage at startup; a stored
//     user that fails to decode means "no session", never an error.
//   - Login / Register: authenticate against the server; only one session
//     mutation runs at a time.
//   - Refresh: obtain a new access token; failure drops the session back to
//     unauthenticated.
//   - Logout: clear local storage; no server call.
//   - RefreshDirectory: fetch the full user list; safe to call concurrently
//     with other reads.
//
// All methods honor context cancellation.
type SessionService interface {
	Hydrate(ctx context.Context) error
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, name, email, password string) error
	Refresh(ctx context.Context) error
	Logout(ctx context.Context) error
	RefreshDirectory(ctx context.Context) error
	Ping(ctx context.Context) error

	State() State
	CurrentUser() *models.User
	Users() []models.User
	LastPresenceErr() error
}

// sessionService is the concrete SessionService backed by a remote Client
// and the local session store.
type sessionService struct {
	client api.Client
	store  *session.Store
	log    logging.Logger

	// mu serializes session mutations: login, register, refresh, logout,
	// hydrate. Directory reads do not take it.
	mu sync.Mutex

	// stateMu guards the observable fields below so reads never block on an
	// in-flight network call.
	stateMu         sync.RWMutex
	state           State
	current         *models.User
	users           []models.User
	lastPresenceErr error
}

func NewSessionService(client api.Client, store *session.Store, log logging.Logger) SessionService {
	if log == nil {
		log = logging.NewSlogLogger(slog.Default())
	}
	return &sessionService{
		client: client,
		store:  store,
		log:    log,
		state:  StateUnauthenticated,
	}
}

// Hydrate reconstructs session state from local storage. A missing or
// undecodable stored user is treated as "no session" and not reported
// upward. The directory fetch runs regardless of the hydration outcome and
// its error, if any, is returned.
func (s *sessionService) Hydrate(ctx context.Context) error {
	s.mu.Lock()

	user, err := s.store.User(ctx)
	if err != nil {
		s.log.Warn(ctx, "stored user unreadable, treating as no session", "error", err)
		user = nil
	}

	if user != nil {
		user.Online = true
		s.setAuthenticated(user)
		s.pushPresence(ctx, user)
	} else {
		s.setState(StateUnauthenticated)
	}
	s.mu.Unlock()

	return s.RefreshDirectory(ctx)
}

// Login authenticates, marks the user online, and propagates presence to
// the directory. A presence-push failure does not fail the login; it is
// logged and kept readable via LastPresenceErr.
func (s *sessionService) Login(ctx context.Context, email, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.setState(StateAuthenticating)

	sess, err := s.client.Login(ctx, email, password)
	if err != nil {
		s.setState(StateUnauthenticated)
		s.log.Warn(ctx, "login failed", "email", email, "error", err)
		return err
	}

	user := sess.User
	user.Online = true
	s.setAuthenticated(user)
	s.log.Info(ctx, "login succeeded", "user_id", user.ID)

	s.pushPresence(ctx, user)
	return nil
}

// Register creates an account. The server issues no tokens on registration,
// so a successful register returns to the unauthenticated state and the
// caller follows up with Login.
func (s *sessionService) Register(ctx context.Context, name, email, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.setState(StateAuthenticating)
	defer s.setState(StateUnauthenticated)

	if err := s.client.Register(ctx, name, email, password); err != nil {
		s.log.Warn(ctx, "register failed", "email", email, "error", err)
		return err
	}
	s.log.Info(ctx, "register succeeded", "email", email)
	return nil
}

// Refresh exchanges the refresh token for a new access token. Any failure
// drops the session to unauthenticated; the user has to log in again.
func (s *sessionService) Refresh(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.setState(StateRefreshing)

	if _, err := s.client.Refresh(ctx); err != nil {
		s.setState(StateUnauthenticated)
		s.log.Warn(ctx, "token refresh failed", "error", err)
		return err
	}

	s.setState(StateAuthenticated)
	s.log.Info(ctx, "access token refreshed")
	return nil
}

// Logout clears the persisted session. The server is not told; token
// invalidation happens there only by expiry.
func (s *sessionService) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Clear(ctx); err != nil {
		return err
	}

	s.stateMu.Lock()
	s.state = StateUnauthenticated
	s.current = nil
	s.users = nil
	s.lastPresenceErr = nil
	s.stateMu.Unlock()

	s.log.Info(ctx, "logged out")
	return nil
}

// RefreshDirectory fetches the full user list. On failure the cached list
// is left unchanged.
func (s *sessionService) RefreshDirectory(ctx context.Context) error {
	users, err := s.client.ListUsers(ctx)
	if err != nil {
		s.log.Warn(ctx, "directory fetch failed", "error", err)
		return err
	}

	s.stateMu.Lock()
	s.users = users
	s.stateMu.Unlock()
	return nil
}

// Ping proxies a liveness check to the underlying client.
func (s *sessionService) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}

func (s *sessionService) State() State {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.state
}

// CurrentUser returns a copy of the signed-in user, or nil.
func (s *sessionService) CurrentUser() *models.User {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	if s.current == nil {
		return nil
	}
	u := *s.current
	return &u
}

func (s *sessionService) Users() []models.User {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.users
}

// LastPresenceErr reports the outcome of the most recent presence push.
func (s *sessionService) LastPresenceErr() error {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.lastPresenceErr
}

// pushPresence propagates the online flag to the directory. Its failure is
// observable through LastPresenceErr but never aborts the calling flow.
// Callers hold s.mu.
func (s *sessionService) pushPresence(ctx context.Context, user *models.User) {
	err := s.client.UpdateUser(ctx, user)
	if err != nil {
		s.log.Warn(ctx, "presence update failed", "user_id", user.ID, "error", err)
	}

	s.stateMu.Lock()
	s.lastPresenceErr = err
	s.stateMu.Unlock()
}

func (s *sessionService) setState(state State) {
	s.stateMu.Lock()
	s.state = state
	s.stateMu.Unlock()
}

func (s *sessionService) setAuthenticated(user *models.User) {
	s.stateMu.Lock()
	s.state = StateAuthenticated
	s.current = user
	s.stateMu.Unlock()
}
