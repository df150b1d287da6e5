package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pbishop/crispychat/internal/client/models"
	"github.com/pbishop/crispychat/internal/client/repositories/kv"
	"github.com/pbishop/crispychat/internal/common"
	"github.com/pbishop/crispychat/internal/dbx"
)

// Store reads and writes the three session keys (currentUser, authToken,
// refreshToken) in the local database.
//
// Contract:
//   - SaveLogin: replace the whole session in one transaction.
//   - SaveAccessToken: overwrite only the access token.
//   - User / AccessToken / RefreshToken: read back stored values; absence is
//     not an error (nil user, empty token).
//   - Clear: drop all three keys together.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) repo(db dbx.DBTX) kv.Repository {
	return kv.NewSQLiteRepository(db)
}

// SaveLogin persists the user record and both tokens, replacing any prior
// session. All three keys are written in one transaction so a login never
// leaves a half-replaced session behind.
func (s *Store) SaveLogin(ctx context.Context, user *models.User, accessToken, refreshToken string) error {
	data, err := models.EncodeUser(user)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		if err := repo.Set(ctx, common.KeyAuthToken, []byte(accessToken)); err != nil {
			return err
		}
		if err := repo.Set(ctx, common.KeyRefreshToken, []byte(refreshToken)); err != nil {
			return err
		}
		return repo.Set(ctx, common.KeyCurrentUser, data)
	})
}

// SaveAccessToken overwrites only the access token. The refresh token and
// the stored user are untouched.
func (s *Store) SaveAccessToken(ctx context.Context, token string) error {
	return s.repo(s.db).Set(ctx, common.KeyAuthToken, []byte(token))
}

// User returns the stored user record, or nil when no user is stored.
// Undecodable bytes are reported as an error; the caller decides whether
// that is fatal.
func (s *Store) User(ctx context.Context) (*models.User, error) {
	data, err := s.repo(s.db).Get(ctx, common.KeyCurrentUser)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}
	u, err := models.DecodeUser(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode stored user: %w", err)
	}
	return u, nil
}

// AccessToken returns the stored access token, or "" when none is stored.
func (s *Store) AccessToken(ctx context.Context) (string, error) {
	return s.token(ctx, common.KeyAuthToken)
}

// RefreshToken returns the stored refresh token, or "" when none is stored.
func (s *Store) RefreshToken(ctx context.Context) (string, error) {
	return s.token(ctx, common.KeyRefreshToken)
}

func (s *Store) token(ctx context.Context, key string) (string, error) {
	data, err := s.repo(s.db).Get(ctx, key)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Load assembles the persisted session. Fields missing from storage stay
// zero-valued.
func (s *Store) Load(ctx context.Context) (*Session, error) {
	user, err := s.User(ctx)
	if err != nil {
		return nil, err
	}
	access, err := s.AccessToken(ctx)
	if err != nil {
		return nil, err
	}
	refresh, err := s.RefreshToken(ctx)
	if err != nil {
		return nil, err
	}
	return &Session{User: user, AccessToken: access, RefreshToken: refresh}, nil
}

// Clear removes the whole session. Used on logout; no server call is made.
func (s *Store) Clear(ctx context.Context) error {
	return s.repo(s.db).Clear(ctx)
}
