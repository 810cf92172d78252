package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vitahealth/credvault/internal/client/models"
	"github.com/vitahealth/credvault/internal/client/services"
	"github.com/vitahealth/credvault/internal/common"
	"github.com/vitahealth/credvault/internal/logging"
)

// ---- fake service ----

// fakeAuthService implements services.AuthService for App handler tests.
type fakeAuthService struct {
	RegisterRet *models.PublicAccount
	RegisterErr error
	LoginRet    *models.PublicAccount
	LoginErr    error
	LogoutErr   error
	SessionRet  *models.PublicAccount
	SessionErr  error

	LastRegister services.RegisterParams
	LastLogin    string
	LogoutCalled bool
}

func (f *fakeAuthService) Register(ctx context.Context, p services.RegisterParams) (*models.PublicAccount, error) {
	f.LastRegister = p
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeAuthService) Login(ctx context.Context, email string, password []byte) (*models.PublicAccount, error) {
	f.LastLogin = email
	return f.LoginRet, f.LoginErr
}

func (f *fakeAuthService) Logout(ctx context.Context) error {
	f.LogoutCalled = true
	return f.LogoutErr
}

func (f *fakeAuthService) CurrentSession(ctx context.Context) (*models.PublicAccount, error) {
	return f.SessionRet, f.SessionErr
}

func (f *fakeAuthService) ValidateSession(ctx context.Context) error { return nil }

func (f *fakeAuthService) SeedDemoAccounts(ctx context.Context) error { return nil }

// ---- helpers ----

func newTestApp(fs *fakeAuthService) *App {
	discard := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return &App{
		authService: fs,
		reader:      bufio.NewReader(strings.NewReader("")),
		log:         discard,
	}
}

func stubInputs(t *testing.T, texts []string, password []byte) {
	t.Helper()

	origText := getSimpleText
	origPw := getPassword
	t.Cleanup(func() {
		getSimpleText = origText
		getPassword = origPw
	})

	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		v := texts[i]
		i++
		return v, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) {
		return append([]byte(nil), password...), nil
	}
}

// ---- TESTS ----

func TestAppRegister_PassesInputToService(t *testing.T) {
	stubInputs(t, []string{"Mary", "mary@x.com", "patient"}, []byte("pw123"))

	pub := &models.PublicAccount{Id: "1", Name: "Mary", Email: "mary@x.com", Role: models.RolePatient}
	fs := &fakeAuthService{RegisterRet: pub}
	app := newTestApp(fs)

	require.NoError(t, app.Register(context.Background()))

	require.Equal(t, "Mary", fs.LastRegister.Name)
	require.Equal(t, "mary@x.com", fs.LastRegister.Email)
	require.Equal(t, models.RolePatient, fs.LastRegister.Role)
	require.Equal(t, []byte("pw123"), fs.LastRegister.Password)
	require.Equal(t, pub, app.session)
}

func TestAppRegister_DuplicateEmailRenderedInline(t *testing.T) {
	stubInputs(t, []string{"Mary", "mary@x.com", "patient"}, []byte("pw123"))

	fs := &fakeAuthService{RegisterErr: common.ErrDuplicateEmail}
	app := newTestApp(fs)

	// expected failures are rendered, not returned
	require.NoError(t, app.Register(context.Background()))
	require.Nil(t, app.session)
}

func TestAppRegister_InvalidRoleRejectedBeforeService(t *testing.T) {
	stubInputs(t, []string{"Mary", "mary@x.com", "admin"}, []byte("pw123"))

	fs := &fakeAuthService{}
	app := newTestApp(fs)

	require.NoError(t, app.Register(context.Background()))
	require.Empty(t, fs.LastRegister.Email, "service must not be called for a bad role")
}

func TestAppLogin_SetsSession(t *testing.T) {
	stubInputs(t, []string{"mary@x.com"}, []byte("pw123"))

	pub := &models.PublicAccount{Id: "1", Email: "mary@x.com", Role: models.RolePatient}
	fs := &fakeAuthService{LoginRet: pub}
	app := newTestApp(fs)

	require.NoError(t, app.Login(context.Background()))
	require.Equal(t, "mary@x.com", fs.LastLogin)
	require.Equal(t, pub, app.session)
	require.True(t, app.isLoggedIn())
}

func TestAppLogin_InvalidCredentialsRenderedInline(t *testing.T) {
	stubInputs(t, []string{"mary@x.com"}, []byte("wrong"))

	fs := &fakeAuthService{LoginErr: common.ErrInvalidCredentials}
	app := newTestApp(fs)

	require.NoError(t, app.Login(context.Background()))
	require.Nil(t, app.session)
	require.False(t, app.isLoggedIn())
}

func TestAppLogout_ClearsSession(t *testing.T) {
	fs := &fakeAuthService{}
	app := newTestApp(fs)
	app.session = &models.PublicAccount{Id: "1"}

	require.NoError(t, app.Logout(context.Background()))
	require.True(t, fs.LogoutCalled)
	require.Nil(t, app.session)
}

func TestAppWhoAmI_NoSession(t *testing.T) {
	fs := &fakeAuthService{}
	app := newTestApp(fs)

	require.NoError(t, app.WhoAmI(context.Background()))
}

func TestGetStatus(t *testing.T) {
	app := newTestApp(&fakeAuthService{})
	require.Equal(t, "", app.getStatus())

	app.session = &models.PublicAccount{Email: "mary@x.com", Role: models.RolePatient}
	require.Equal(t, "(mary@x.com patient)", app.getStatus())
}
