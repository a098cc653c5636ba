package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/vitrina/internal/auth"
	authdomain "github.com/smallbiznis/vitrina/internal/auth/domain"
	"github.com/smallbiznis/vitrina/internal/session"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (s *Server) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	sess := s.session(c)
	err := s.authsvc.Login(c.Request.Context(), sess, auth.LoginRequest{
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"redirect": s.postLoginRedirect(c, sess)})
}

// postLoginRedirect resolves the landing page for a fresh login. Admins
// go to the administration area, everyone else to the dashboard.
func (s *Server) postLoginRedirect(c *gin.Context, sess *session.Session) string {
	token := sess.Store.Snapshot().Auth.Token
	user := s.authsvc.CurrentUser(c.Request.Context(), token, sess.Cookies.Locale())
	if user != nil && user.Role == authdomain.RoleAdmin {
		return "/admin"
	}
	return "/dashboard"
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (s *Server) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	sess := s.session(c)
	err := s.authsvc.Register(c.Request.Context(), auth.RegisterRequest{
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
		Locale:   sess.Cookies.Locale(),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"redirect": "/check_email"})
}

func (s *Server) Logout(c *gin.Context) {
	s.authsvc.Logout(s.session(c))
	c.JSON(http.StatusOK, gin.H{"redirect": "/"})
}

type VerifyRequest struct {
	Email           string `json:"email" binding:"required"`
	ActivationToken string `json:"activationToken" binding:"required"`
}

func (s *Server) Verify(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	err := s.authsvc.Verify(c.Request.Context(), s.session(c), auth.VerifyRequest{
		Email:           strings.TrimSpace(req.Email),
		ActivationToken: req.ActivationToken,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"redirect": "/dashboard"})
}

type UpdateProfileRequest struct {
	Name string `json:"name" binding:"required"`
}

func (s *Server) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	sess := s.session(c)
	token, ok := sess.Cookies.Token()
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	err := s.authsvc.UpdateProfile(c.Request.Context(), auth.UpdateProfileRequest{
		Token:  token,
		Name:   strings.TrimSpace(req.Name),
		Locale: sess.Cookies.Locale(),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

type ChangePasswordRequest struct {
	Password    string `json:"password" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

func (s *Server) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	sess := s.session(c)
	token, ok := sess.Cookies.Token()
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	err := s.authsvc.ChangePassword(c.Request.Context(), auth.ChangePasswordRequest{
		Token:       token,
		Password:    req.Password,
		NewPassword: req.NewPassword,
		Locale:      sess.Cookies.Locale(),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) DeleteAccount(c *gin.Context) {
	sess := s.session(c)
	token, ok := sess.Cookies.Token()
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	if err := s.authsvc.DeleteAccount(c.Request.Context(), sess, token); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"redirect": "/"})
}

type ResetTokenRequest struct {
	Email string `json:"email" binding:"required"`
}

func (s *Server) CreateResetPasswordToken(c *gin.Context) {
	var req ResetTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	err := s.authsvc.CreateResetPasswordToken(c.Request.Context(), auth.ResetTokenRequest{
		Email:  strings.TrimSpace(req.Email),
		Locale: s.session(c).Cookies.Locale(),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"redirect": "/check_email"})
}

type CheckResetTokenRequest struct {
	Email              string `json:"email" binding:"required"`
	ResetPasswordToken string `json:"resetPasswordToken" binding:"required"`
}

func (s *Server) CheckResetPasswordToken(c *gin.Context) {
	var req CheckResetTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	err := s.authsvc.CheckResetPasswordToken(c.Request.Context(), auth.CheckResetTokenRequest{
		Email:              strings.TrimSpace(req.Email),
		ResetPasswordToken: req.ResetPasswordToken,
		Locale:             s.session(c).Cookies.Locale(),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

type ResetPasswordRequest struct {
	Email              string `json:"email" binding:"required"`
	ResetPasswordToken string `json:"resetPasswordToken" binding:"required"`
	Password           string `json:"password" binding:"required"`
}

func (s *Server) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	err := s.authsvc.ResetPassword(c.Request.Context(), s.session(c), auth.ResetPasswordRequest{
		Email:              strings.TrimSpace(req.Email),
		ResetPasswordToken: req.ResetPasswordToken,
		Password:           req.Password,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"redirect": "/dashboard"})
}

// SessionState exposes the resolved session for client-side hydration.
func (s *Server) SessionState(c *gin.Context) {
	sess := s.session(c)
	status := s.bootstrap.Run(c.Request.Context(), sess)
	snap := sess.Store.Snapshot()

	c.JSON(http.StatusOK, gin.H{
		"isInit":        snap.Auth.IsInit,
		"authenticated": status == session.ResolvedAuthenticated,
		"user":          snap.Auth.User,
		"theme":         snap.Theme,
	})
}

type SetThemeRequest struct {
	Mode string `json:"mode" binding:"required"`
}

func (s *Server) SetThemeMode(c *gin.Context) {
	var req SetThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	mode := session.ThemeMode(req.Mode)
	if mode != session.ThemeLight && mode != session.ThemeDark {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	value := ""
	if mode == session.ThemeDark {
		value = "ON"
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(session.ThemeCookieName, value, int(session.TokenTTL.Seconds()), "/", "", s.cfg.AuthCookieSecure, false)

	sess := s.session(c)
	sess.Store.Dispatch(session.SetTheme{Mode: mode})
	c.Status(http.StatusNoContent)
}
