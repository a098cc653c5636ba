package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/vitrina/internal/session"
	"go.uber.org/zap"
)

const contextSessionKey = "session"

// WithSession attaches a fresh per-request session (cookie store plus
// state store seeded with the persisted theme) to the request.
func (s *Server) WithSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookies := s.sessions.ForRequest(c)

		theme := session.ThemeLight
		if cookies.DarkMode() {
			theme = session.ThemeDark
		}

		c.Set(contextSessionKey, &session.Session{
			Cookies: cookies,
			Store:   session.NewStore(theme),
		})
		c.Next()
	}
}

// Bootstrap resolves the session once, before the page renders. The
// auth entry page is exempt: it renders the same for everyone and must
// stay reachable when the probe is what failed.
func (s *Server) Bootstrap() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == s.ui.Get().AuthEntryPath {
			c.Next()
			return
		}

		sess := s.session(c)
		status := s.bootstrap.Run(c.Request.Context(), sess)
		c.Set("bootstrap_status", int(status))
		c.Next()
	}
}

// RouteGuard redirects unauthenticated requests away from protected
// routes before any page work happens.
func (s *Server) RouteGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if !s.ui.IsProtected(path) {
			c.Next()
			return
		}

		sess := s.session(c)
		if !sess.Store.Snapshot().Auth.Authenticated() {
			s.mc.RecordGuardRedirect()
			s.log.Info("route guard redirect",
				zap.String("path", path),
				zap.String("to", s.ui.Get().AuthEntryPath),
			)
			c.Redirect(http.StatusFound, s.ui.Get().AuthEntryPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

func (s *Server) session(c *gin.Context) *session.Session {
	v, ok := c.Get(contextSessionKey)
	if !ok {
		// WithSession always runs first on these routes.
		cookies := s.sessions.ForRequest(c)
		sess := &session.Session{Cookies: cookies, Store: session.NewStore(session.ThemeLight)}
		c.Set(contextSessionKey, sess)
		return sess
	}
	return v.(*session.Session)
}
