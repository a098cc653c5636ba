// Package company is the thin client for the public company directory.
package company

import (
	"context"
	"net/url"

	"github.com/smallbiznis/vitrina/internal/backend"
	"github.com/smallbiznis/vitrina/internal/company/domain"
	"go.uber.org/zap"
)

const pathCompanies = "/api/companies"

type Service interface {
	List(ctx context.Context, query url.Values) (*domain.CompanyList, error)
	Get(ctx context.Context, id string) (*domain.Company, error)
	Create(ctx context.Context, token, locale string, req CreateRequest) (*domain.Company, error)
}

// CreateRequest carries the company form the owner submits.
type CreateRequest struct {
	Name        string                 `json:"name"`
	TIN         string                 `json:"tin"`
	Type        domain.CompanyType     `json:"type"`
	LogoURL     string                 `json:"logo_url"`
	Description string                 `json:"description"`
	Contacts    domain.CompanyContacts `json:"contacts"`
	Socials     domain.CompanySocials  `json:"socials"`
}

type service struct {
	api *backend.Client
	log *zap.Logger
}

func NewService(api *backend.Client, log *zap.Logger) Service {
	return &service{api: api, log: log}
}

func (s *service) List(ctx context.Context, query url.Values) (*domain.CompanyList, error) {
	var list domain.CompanyList
	err := s.api.Get(ctx, pathCompanies, backend.RequestOptions{Query: query}, &list)
	if err != nil {
		return nil, backend.Classify(err)
	}
	return &list, nil
}

func (s *service) Get(ctx context.Context, id string) (*domain.Company, error) {
	var company domain.Company
	err := s.api.Get(ctx, pathCompanies+"/"+url.PathEscape(id), backend.RequestOptions{}, &company)
	if err != nil {
		return nil, backend.Classify(err)
	}
	return &company, nil
}

func (s *service) Create(ctx context.Context, token, locale string, req CreateRequest) (*domain.Company, error) {
	var company domain.Company
	err := s.api.Post(ctx, pathCompanies, backend.RequestOptions{
		Token:  token,
		Locale: locale,
		Body:   req,
	}, &company)
	if err != nil {
		return nil, backend.Classify(err)
	}
	return &company, nil
}
