package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/vitrina/internal/auth"
	authdomain "github.com/smallbiznis/vitrina/internal/auth/domain"
	"github.com/smallbiznis/vitrina/internal/backend"
	"github.com/smallbiznis/vitrina/internal/config"
	"github.com/smallbiznis/vitrina/internal/metrics"
	"github.com/smallbiznis/vitrina/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeAuthService scripts the auth layer for handler tests. CurrentUser
// doubles as the bootstrap probe.
type fakeAuthService struct {
	user *authdomain.User

	loginErr    error
	loginToken  string
	registerErr error

	probeCalls int
}

func (f *fakeAuthService) CurrentUser(ctx context.Context, token, locale string) *authdomain.User {
	f.probeCalls++
	return f.user
}

func (f *fakeAuthService) Register(ctx context.Context, req auth.RegisterRequest) error {
	return f.registerErr
}

func (f *fakeAuthService) Login(ctx context.Context, sess *session.Session, req auth.LoginRequest) error {
	if f.loginErr != nil {
		return f.loginErr
	}
	sess.Cookies.SetToken(f.loginToken)
	sess.Store.Dispatch(session.LoginUser{Token: f.loginToken})
	return nil
}

func (f *fakeAuthService) Verify(ctx context.Context, sess *session.Session, req auth.VerifyRequest) error {
	return nil
}

func (f *fakeAuthService) Logout(sess *session.Session) {
	sess.Cookies.ClearToken()
	sess.Store.Dispatch(session.Logout{})
}

func (f *fakeAuthService) UpdateProfile(ctx context.Context, req auth.UpdateProfileRequest) error {
	return nil
}

func (f *fakeAuthService) ChangePassword(ctx context.Context, req auth.ChangePasswordRequest) error {
	return nil
}

func (f *fakeAuthService) DeleteAccount(ctx context.Context, sess *session.Session, token string) error {
	return nil
}

func (f *fakeAuthService) CreateResetPasswordToken(ctx context.Context, req auth.ResetTokenRequest) error {
	return nil
}

func (f *fakeAuthService) CheckResetPasswordToken(ctx context.Context, req auth.CheckResetTokenRequest) error {
	return nil
}

func (f *fakeAuthService) ResetPassword(ctx context.Context, sess *session.Session, req auth.ResetPasswordRequest) error {
	return nil
}

func newTestEngine(t *testing.T, authsvc auth.Service) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{DefaultLocale: "en"}
	srv := NewServer(ServerParams{
		Config:    cfg,
		UI:        config.StaticUIConfigHolder(config.DefaultUIConfig()),
		Log:       zap.NewNop(),
		Metrics:   metrics.New(),
		Auth:      authsvc,
		Sessions:  session.NewManager(cfg),
		Bootstrap: session.NewBootstrapper(authsvc, zap.NewNop()),
	})

	r := gin.New()
	r.Use(ErrorHandlingMiddleware())
	registerRoutes(r, srv)
	return r
}

func perform(r *gin.Engine, method, target, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouteGuard_RedirectsAnonymousVisitor(t *testing.T) {
	svc := &fakeAuthService{}
	r := newTestEngine(t, svc)

	w := perform(r, http.MethodGet, "/dashboard", "")

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/auth", w.Header().Get("Location"))
	assert.Zero(t, svc.probeCalls)
}

func TestRouteGuard_DiscardsRejectedToken(t *testing.T) {
	svc := &fakeAuthService{user: nil}
	r := newTestEngine(t, svc)

	w := perform(r, http.MethodGet, "/dashboard", "",
		&http.Cookie{Name: session.TokenCookieName, Value: "stale"})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/auth", w.Header().Get("Location"))
	assert.Equal(t, 1, svc.probeCalls)

	var cleared bool
	for _, ck := range w.Result().Cookies() {
		if ck.Name == session.TokenCookieName && ck.Value == "" && ck.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared, "stale token cookie should be expired")
}

func TestRouteGuard_AdmitsAuthenticatedVisitor(t *testing.T) {
	svc := &fakeAuthService{user: &authdomain.User{ID: 1, Name: "Jana", Role: authdomain.RoleUser}}
	r := newTestEngine(t, svc)

	w := perform(r, http.MethodGet, "/dashboard", "",
		&http.Cookie{Name: session.TokenCookieName, Value: "live"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Jana")
}

func TestAuthPage_RendersWithoutBootstrap(t *testing.T) {
	svc := &fakeAuthService{}
	r := newTestEngine(t, svc)

	w := perform(r, http.MethodGet, "/auth", "",
		&http.Cookie{Name: session.TokenCookieName, Value: "whatever"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, svc.probeCalls, "auth entry page must not probe")
}

func TestLogin_RedirectsByRole(t *testing.T) {
	tests := []struct {
		name     string
		user     *authdomain.User
		redirect string
	}{
		{"regular user", &authdomain.User{ID: 1, Role: authdomain.RoleUser}, "/dashboard"},
		{"admin", &authdomain.User{ID: 2, Role: authdomain.RoleAdmin}, "/admin"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeAuthService{user: tt.user, loginToken: "minted"}
			r := newTestEngine(t, svc)

			w := perform(r, http.MethodPost, "/api/auth/login",
				`{"email":"jana@example.com","password":"secret"}`)

			require.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, `{"redirect":"`+tt.redirect+`"}`, w.Body.String())

			var tokenSet bool
			for _, ck := range w.Result().Cookies() {
				if ck.Name == session.TokenCookieName && ck.Value == "minted" {
					tokenSet = true
					assert.True(t, ck.HttpOnly)
				}
			}
			assert.True(t, tokenSet, "token cookie should be written")
		})
	}
}

func TestLogin_FailureSurfacesMessage(t *testing.T) {
	svc := &fakeAuthService{loginErr: &backend.Failure{Message: "wrong credentials"}}
	r := newTestEngine(t, svc)

	w := perform(r, http.MethodPost, "/api/auth/login",
		`{"email":"jana@example.com","password":"nope"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "wrong credentials")
}

func TestLogin_RejectsMalformedBody(t *testing.T) {
	r := newTestEngine(t, &fakeAuthService{})

	w := perform(r, http.MethodPost, "/api/auth/login", `{"email":"only"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_request")
}

func TestSessionState_AnonymousVisitor(t *testing.T) {
	r := newTestEngine(t, &fakeAuthService{})

	w := perform(r, http.MethodGet, "/api/session", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"isInit":true,"authenticated":false,"user":null,"theme":"light"}`, w.Body.String())
}

func TestSetThemeMode_PersistsDarkCookie(t *testing.T) {
	r := newTestEngine(t, &fakeAuthService{})

	w := perform(r, http.MethodPost, "/api/theme", `{"mode":"dark"}`)

	require.Equal(t, http.StatusNoContent, w.Code)
	var persisted bool
	for _, ck := range w.Result().Cookies() {
		if ck.Name == session.ThemeCookieName && ck.Value == "ON" {
			persisted = true
		}
	}
	assert.True(t, persisted)
}

func TestSetThemeMode_RejectsUnknownMode(t *testing.T) {
	r := newTestEngine(t, &fakeAuthService{})

	w := perform(r, http.MethodPost, "/api/theme", `{"mode":"sepia"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateProfile_RequiresToken(t *testing.T) {
	r := newTestEngine(t, &fakeAuthService{})

	w := perform(r, http.MethodPut, "/api/profile", `{"name":"Jana"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHomePage_RendersForEveryone(t *testing.T) {
	r := newTestEngine(t, &fakeAuthService{})

	w := perform(r, http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, w.Code)
}
