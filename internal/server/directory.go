package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/vitrina/internal/company"
	companydomain "github.com/smallbiznis/vitrina/internal/company/domain"
	"github.com/smallbiznis/vitrina/internal/item"
)

type CreateCompanyRequest struct {
	Name        string                        `json:"name" binding:"required"`
	TIN         string                        `json:"tin"`
	Type        string                        `json:"type" binding:"required"`
	LogoURL     string                        `json:"logo_url"`
	Description string                        `json:"description"`
	Contacts    companydomain.CompanyContacts `json:"contacts"`
	Socials     companydomain.CompanySocials  `json:"socials"`
}

func (s *Server) CreateCompany(c *gin.Context) {
	var req CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	companyType := companydomain.CompanyType(req.Type)
	if companyType != companydomain.CompanyTypePhysical && companyType != companydomain.CompanyTypeEntity {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	sess := s.session(c)
	token, ok := sess.Cookies.Token()
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	created, err := s.companysvc.Create(c.Request.Context(), token, sess.Cookies.Locale(), company.CreateRequest{
		Name:        req.Name,
		TIN:         req.TIN,
		Type:        companyType,
		LogoURL:     req.LogoURL,
		Description: req.Description,
		Contacts:    req.Contacts,
		Socials:     req.Socials,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

type ImportItemsRequest struct {
	CompanyID int64             `json:"company_id" binding:"required"`
	Items     []item.ImportItem `json:"items" binding:"required"`
}

// ImportItems posts rows extracted from an uploaded spreadsheet to the
// backend in one bulk call.
func (s *Server) ImportItems(c *gin.Context) {
	var req ImportItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}
	if len(req.Items) == 0 {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	sess := s.session(c)
	token, ok := sess.Cookies.Token()
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	created, err := s.itemsvc.Import(c.Request.Context(), token, sess.Cookies.Locale(), req.CompanyID, req.Items)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}
