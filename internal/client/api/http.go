package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/pbishop/crispychat/internal/client/models"
	"github.com/pbishop/crispychat/internal/client/session"
	"github.com/pbishop/crispychat/internal/common"
	"github.com/pbishop/crispychat/internal/logging"
)

// Config carries everything an HTTPClient needs; nothing is read from
// process-wide globals.
type Config struct {
	// BaseURL is the service origin, e.g. "http://localhost:8080".
	BaseURL string
	// Timeout bounds each request. Zero means no client-side timeout.
	Timeout time.Duration
	// Store is where tokens and the user record are persisted.
	Store *session.Store
	// Logger is optional; slog's default is used when nil.
	Logger logging.Logger
}

// HTTPClient is the concrete Client talking JSON over HTTP.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	store   *session.Store
	log     logging.Logger
}

var _ Client = (*HTTPClient)(nil)

func NewHTTPClient(cfg Config) *HTTPClient {
	log := cfg.Logger
	if log == nil {
		log = logging.NewSlogLogger(slog.Default())
	}
	return &HTTPClient{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
		store:   cfg.Store,
		log:     log,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message      string      `json:"message"`
	RefreshToken string      `json:"refreshToken"`
	Token        string      `json:"token"`
	User         models.User `json:"user"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type refreshResponse struct {
	AccessToken string `json:"access_token"`
}

// updateUserRequest is the exact wire shape the deployed server expects:
// id carries the email and there is no updated field. The server keys the
// update on both, so neither can be "fixed" client-side.
type updateUserRequest struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Online   bool     `json:"online"`
	Channels []string `json:"channels"`
	Created  float64  `json:"created"`
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	return req, nil
}

// do sends the request and enforces the expected success status. The caller
// owns closing the body of a returned response.
func (c *HTTPClient) do(op string, req *http.Request, wantStatus int) (*http.Response, error) {
	c.log.Debug(req.Context(), "request sent",
		"op", op, "method", req.Method, "url", req.URL.String(),
		"request_id", req.Header.Get("X-Request-Id"))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}

	c.log.Debug(req.Context(), "response received",
		"op", op, "status", resp.StatusCode,
		"request_id", req.Header.Get("X-Request-Id"))

	if resp.StatusCode != wantStatus {
		resp.Body.Close()
		return nil, &StatusError{Code: resp.StatusCode}
	}
	return resp, nil
}

// bearerToken loads the stored access token, failing fast when none exists.
func (c *HTTPClient) bearerToken(ctx context.Context) (string, error) {
	token, err := c.store.AccessToken(ctx)
	if err != nil {
		return "", err
	}
	if token == "" {
		return "", common.ErrAuthRequired
	}
	return token, nil
}

// Register creates an account. Only 201 counts as success; any other status
// is surfaced with its code.
func (c *HTTPClient) Register(ctx context.Context, name, email, password string) error {
	req, err := c.newRequest(ctx, http.MethodPost, "/register", registerRequest{
		Name:     name,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return err
	}

	resp, err := c.do("register", req, http.StatusCreated)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// Login authenticates and, only after the response envelope decodes fully,
// replaces the stored session with the returned user and tokens. A failed
// login leaves whatever session was stored before untouched.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (*session.Session, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/login", loginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	resp, err := c.do("login", req, http.StatusOK)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var lr loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return nil, &DecodeError{Op: "login", Err: err}
	}

	if err := c.store.SaveLogin(ctx, &lr.User, lr.Token, lr.RefreshToken); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	return &session.Session{
		User:         &lr.User,
		AccessToken:  lr.Token,
		RefreshToken: lr.RefreshToken,
	}, nil
}

// Refresh exchanges the stored refresh token for a new access token and
// overwrites only the access token in storage. With no stored refresh token
// it fails immediately without a network call.
func (c *HTTPClient) Refresh(ctx context.Context) (string, error) {
	refreshToken, err := c.store.RefreshToken(ctx)
	if err != nil {
		return "", err
	}
	if refreshToken == "" {
		return "", common.ErrAuthRequired
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/refresh", refreshRequest{
		RefreshToken: refreshToken,
	})
	if err != nil {
		return "", err
	}

	resp, err := c.do("refresh", req, http.StatusOK)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var rr refreshResponse
	if err := json.NewDecoder(resp.Body).Decode(&rr); err != nil {
		return "", &DecodeError{Op: "refresh", Err: err}
	}

	if err := c.store.SaveAccessToken(ctx, rr.AccessToken); err != nil {
		return "", fmt.Errorf("failed to persist access token: %w", err)
	}

	return rr.AccessToken, nil
}

// ListUsers fetches the whole user directory.
func (c *HTTPClient) ListUsers(ctx context.Context) ([]models.User, error) {
	token, err := c.bearerToken(ctx)
	if err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodGet, "/api/users", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.do("list users", req, http.StatusOK)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var users []models.User
	if err := json.NewDecoder(resp.Body).Decode(&users); err != nil {
		return nil, &DecodeError{Op: "list users", Err: err}
	}
	return users, nil
}

// GetUser fetches a single user by id.
func (c *HTTPClient) GetUser(ctx context.Context, id string) (*models.User, error) {
	token, err := c.bearerToken(ctx)
	if err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodGet, "/api/users/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.do("get user", req, http.StatusOK)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var user models.User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, &DecodeError{Op: "get user", Err: err}
	}
	return &user, nil
}

// UpdateUser pushes a user record to the directory.
func (c *HTTPClient) UpdateUser(ctx context.Context, user *models.User) error {
	token, err := c.bearerToken(ctx)
	if err != nil {
		return err
	}

	channels := user.Channels
	if channels == nil {
		channels = []string{}
	}

	req, err := c.newRequest(ctx, http.MethodPut, "/api/users", updateUserRequest{
		ID:       user.Email,
		Name:     user.Name,
		Email:    user.Email,
		Password: user.Password,
		Online:   user.Online,
		Channels: channels,
		Created:  user.Created,
	})
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.do("update user", req, http.StatusOK)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// Ping checks server liveness via the health endpoint.
func (c *HTTPClient) Ping(ctx context.Context) error {
	req, err := c.newRequest(ctx, http.MethodGet, "/health", nil)
	if err != nil {
		return err
	}

	resp, err := c.do("ping", req, http.StatusOK)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}
