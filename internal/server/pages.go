package server

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	authdomain "github.com/smallbiznis/vitrina/internal/auth/domain"
	companydomain "github.com/smallbiznis/vitrina/internal/company/domain"
	itemdomain "github.com/smallbiznis/vitrina/internal/item/domain"
	"github.com/smallbiznis/vitrina/internal/session"
	"go.uber.org/zap"
)

// pageData is what every template receives.
type pageData struct {
	Title string
	Theme session.ThemeMode
	User  *authdomain.User

	Companies *companydomain.CompanyList
	Company   *companydomain.Company
	Items     *itemdomain.ItemList
}

func (s *Server) renderPage(c *gin.Context, status int, name, title string, build func(*pageData)) {
	sess := s.session(c)
	snap := sess.Store.Snapshot()

	data := pageData{
		Title: title,
		Theme: snap.Theme,
		User:  snap.Auth.User,
	}
	if build != nil {
		build(&data)
	}

	c.Status(status)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplates.ExecuteTemplate(c.Writer, name, data); err != nil {
		s.log.Error("page render failed", zap.String("page", name), zap.Error(err))
	}
}

func (s *Server) HomePage(c *gin.Context) {
	s.renderPage(c, http.StatusOK, "home", "Marketplace", nil)
}

func (s *Server) AuthPage(c *gin.Context) {
	s.renderPage(c, http.StatusOK, "auth", "Sign in", nil)
}

func (s *Server) DashboardPage(c *gin.Context) {
	s.renderPage(c, http.StatusOK, "dashboard", "Dashboard", nil)
}

func (s *Server) CompaniesPage(c *gin.Context) {
	query := listQuery(c)
	list, err := s.companysvc.List(c.Request.Context(), query)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	s.renderPage(c, http.StatusOK, "companies", "Companies", func(d *pageData) {
		d.Companies = list
	})
}

func (s *Server) CompanyPage(c *gin.Context) {
	id := c.Param("id")

	found, err := s.companysvc.Get(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, ErrNotFound)
		return
	}

	query := listQuery(c)
	query.Set("company", id)
	items, err := s.itemsvc.List(c.Request.Context(), query)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.renderPage(c, http.StatusOK, "company", found.Name, func(d *pageData) {
		d.Company = found
		d.Items = items
	})
}

func (s *Server) VerificationPage(c *gin.Context) {
	s.renderPage(c, http.StatusOK, "verification", "Verify your account", nil)
}

func (s *Server) ResetPasswordPage(c *gin.Context) {
	s.renderPage(c, http.StatusOK, "reset_password", "Reset password", nil)
}

func (s *Server) SetNewPasswordPage(c *gin.Context) {
	s.renderPage(c, http.StatusOK, "set_new_password", "Set a new password", nil)
}

func (s *Server) CheckEmailPage(c *gin.Context) {
	s.renderPage(c, http.StatusOK, "check_email", "Check your email", nil)
}

// listQuery forwards the pagination parameters the backend understands.
func listQuery(c *gin.Context) url.Values {
	query := url.Values{}
	for _, key := range []string{"page", "limit"} {
		if value := c.Query(key); value != "" {
			query.Set(key, value)
		}
	}
	return query
}
