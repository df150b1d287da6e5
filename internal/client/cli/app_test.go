package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbishop/crispychat/internal/client/models"
	"github.com/pbishop/crispychat/internal/client/services"
)

// fakeSession implements services.SessionService for command tests.
type fakeSession struct {
	state   services.State
	current *models.User
	users   []models.User

	loginErr    error
	registerErr error
	refreshErr  error
	logoutErr   error
	listErr     error
	presenceErr error

	loginCalls    int
	registerCalls int
	logoutCalls   int
	listCalls     int

	lastEmail    string
	lastPassword string
	lastName     string
}

var _ services.SessionService = (*fakeSession)(nil)

func (f *fakeSession) Hydrate(ctx context.Context) error { return nil }

func (f *fakeSession) Login(ctx context.Context, email, password string) error {
	f.loginCalls++
	f.lastEmail, f.lastPassword = email, password
	if f.loginErr != nil {
		f.state = services.StateUnauthenticated
		return f.loginErr
	}
	f.state = services.StateAuthenticated
	return nil
}

func (f *fakeSession) Register(ctx context.Context, name, email, password string) error {
	f.registerCalls++
	f.lastName, f.lastEmail, f.lastPassword = name, email, password
	return f.registerErr
}

func (f *fakeSession) Refresh(ctx context.Context) error { return f.refreshErr }

func (f *fakeSession) Logout(ctx context.Context) error {
	f.logoutCalls++
	if f.logoutErr == nil {
		f.state = services.StateUnauthenticated
		f.current = nil
	}
	return f.logoutErr
}

func (f *fakeSession) RefreshDirectory(ctx context.Context) error {
	f.listCalls++
	return f.listErr
}

func (f *fakeSession) Ping(ctx context.Context) error { return nil }

func (f *fakeSession) State() services.State { return f.state }

func (f *fakeSession) CurrentUser() *models.User {
	if f.current == nil {
		return nil
	}
	u := *f.current
	return &u
}

func (f *fakeSession) Users() []models.User  { return f.users }
func (f *fakeSession) LastPresenceErr() error { return f.presenceErr }

func newTestApp(fs *fakeSession, input string) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	return &App{
		session: fs,
		reader:  bufio.NewReader(strings.NewReader(input)),
		out:     &out,
	}, &out
}

func stubInput(t *testing.T, lines []string, password string) {
	t.Helper()
	oldText, oldPw := getSimpleText, getPassword
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(lines) {
			return "", io.EOF
		}
		line := lines[i]
		i++
		return line, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) { return []byte(password), nil }
	t.Cleanup(func() { getSimpleText, getPassword = oldText, oldPw })
}

func TestLoginCommand_PassesCredentials(t *testing.T) {
	stubInput(t, []string{"ann@x.com"}, "pw123")
	fs := &fakeSession{state: services.StateUnauthenticated}
	app, out := newTestApp(fs, "")

	require.NoError(t, app.Login(context.Background()))

	assert.Equal(t, 1, fs.loginCalls)
	assert.Equal(t, "ann@x.com", fs.lastEmail)
	assert.Equal(t, "pw123", fs.lastPassword)
	assert.Equal(t, 1, fs.listCalls, "login should refresh the directory")
	assert.Contains(t, out.String(), "Signed in.")
}

func TestLoginCommand_SurfacesFailure(t *testing.T) {
	stubInput(t, []string{"ann@x.com"}, "wrong")
	fs := &fakeSession{loginErr: errors.New("server responded with status code 401")}
	app, _ := newTestApp(fs, "")

	err := app.Login(context.Background())
	require.Error(t, err)
	assert.Equal(t, 0, fs.listCalls)
}

func TestLoginCommand_ReportsPresenceFailure(t *testing.T) {
	stubInput(t, []string{"ann@x.com"}, "pw123")
	fs := &fakeSession{presenceErr: errors.New("server responded with status code 502")}
	app, out := newTestApp(fs, "")

	require.NoError(t, app.Login(context.Background()))
	assert.Contains(t, out.String(), "presence update failed")
}

func TestRegisterCommand_PassesFields(t *testing.T) {
	stubInput(t, []string{"Ann", "ann@x.com"}, "pw123")
	fs := &fakeSession{}
	app, out := newTestApp(fs, "")

	require.NoError(t, app.Register(context.Background()))
	assert.Equal(t, "Ann", fs.lastName)
	assert.Equal(t, "ann@x.com", fs.lastEmail)
	assert.Equal(t, "pw123", fs.lastPassword)
	assert.Contains(t, out.String(), "Account created")
}

func TestUsersCommand_SkipsCurrentUser(t *testing.T) {
	fs := &fakeSession{
		state:   services.StateAuthenticated,
		current: &models.User{ID: "u1", Name: "Ann"},
		users: []models.User{
			{ID: "u1", Name: "Ann", Email: "ann@x.com", Online: true},
			{ID: "u2", Name: "Bob", Email: "bob@x.com", Online: true},
			{ID: "u3", Name: "Cid", Email: "cid@x.com"},
		},
	}
	app, out := newTestApp(fs, "")

	require.NoError(t, app.Users(context.Background()))

	s := out.String()
	assert.NotContains(t, s, "Ann")
	assert.Contains(t, s, "* Bob <bob@x.com>")
	assert.Contains(t, s, "  Cid <cid@x.com>")
}

func TestWhoamiCommand(t *testing.T) {
	fs := &fakeSession{current: &models.User{ID: "u1", Name: "Ann", Email: "ann@x.com"}}
	app, out := newTestApp(fs, "")

	require.NoError(t, app.Whoami(context.Background()))
	assert.Contains(t, out.String(), "Ann <ann@x.com> (id u1)")

	fs.current = nil
	out.Reset()
	require.NoError(t, app.Whoami(context.Background()))
	assert.Contains(t, out.String(), "Not signed in.")
}

func TestRoot_DispatchesCommandsUntilExit(t *testing.T) {
	fs := &fakeSession{current: &models.User{ID: "u1", Name: "Ann", Email: "ann@x.com"}}
	app, out := newTestApp(fs, "whoami\nbogus\nexit\n")

	app.Root(context.Background())

	s := out.String()
	assert.Contains(t, s, "Ann <ann@x.com>")
	assert.Contains(t, s, "Unknown command")
}

func TestRoot_PrintsCommandErrors(t *testing.T) {
	fs := &fakeSession{logoutErr: errors.New("disk full")}
	app, out := newTestApp(fs, "logout\nexit\n")

	app.Root(context.Background())
	assert.Contains(t, out.String(), "Error: disk full")
}

func TestGetStatus(t *testing.T) {
	fs := &fakeSession{}
	app, _ := newTestApp(fs, "")
	assert.Equal(t, "", app.getStatus())

	fs.current = &models.User{Name: "Ann"}
	app.mode = ModeOnline
	assert.Equal(t, "(Ann online)", app.getStatus())
}
