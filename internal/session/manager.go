package session

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/vitrina/internal/config"
)

const (
	TokenCookieName  = "token"
	ThemeCookieName  = "darkMode"
	LocaleCookieName = "NEXT_LOCALE"

	// darkModeOn is the cookie value marking the dark theme.
	darkModeOn = "ON"

	// TokenTTL matches the backend token lifetime.
	TokenTTL = 365 * 24 * time.Hour
)

// CookieStore is the persistence capability behind the session: token,
// locale and theme, injected so actions and the bootstrap can be tested
// without a real request.
type CookieStore interface {
	Token() (string, bool)
	SetToken(token string)
	ClearToken()
	Locale() string
	DarkMode() bool
}

// Manager builds per-request cookie stores.
type Manager struct {
	secure        bool
	defaultLocale string
}

func NewManager(cfg config.Config) *Manager {
	return &Manager{
		secure:        cfg.AuthCookieSecure,
		defaultLocale: cfg.DefaultLocale,
	}
}

// ForRequest binds the manager to one request/response pair.
func (m *Manager) ForRequest(c *gin.Context) CookieStore {
	return &ginCookies{ctx: c, secure: m.secure, defaultLocale: m.defaultLocale}
}

type ginCookies struct {
	ctx           *gin.Context
	secure        bool
	defaultLocale string
}

func (g *ginCookies) Token() (string, bool) {
	token, err := g.ctx.Cookie(TokenCookieName)
	if err != nil || strings.TrimSpace(token) == "" {
		return "", false
	}
	return token, true
}

func (g *ginCookies) SetToken(token string) {
	g.ctx.SetSameSite(http.SameSiteLaxMode)
	g.ctx.SetCookie(TokenCookieName, token, int(TokenTTL.Seconds()), "/", "", g.secure, true)
}

func (g *ginCookies) ClearToken() {
	g.ctx.SetSameSite(http.SameSiteLaxMode)
	g.ctx.SetCookie(TokenCookieName, "", -1, "/", "", g.secure, true)
}

func (g *ginCookies) Locale() string {
	locale, err := g.ctx.Cookie(LocaleCookieName)
	if err != nil || strings.TrimSpace(locale) == "" {
		return g.defaultLocale
	}
	return locale
}

func (g *ginCookies) DarkMode() bool {
	mode, err := g.ctx.Cookie(ThemeCookieName)
	return err == nil && mode == darkModeOn
}
