// Package item is the thin client for inventory items, including the
// bulk import behind the spreadsheet wizard. Parsing the spreadsheet is
// the caller's concern; this layer only posts the extracted rows.
package item

import (
	"context"
	"net/url"

	"github.com/smallbiznis/vitrina/internal/backend"
	"github.com/smallbiznis/vitrina/internal/item/domain"
	"go.uber.org/zap"
)

const pathItems = "/api/items"

type Service interface {
	List(ctx context.Context, query url.Values) (*domain.ItemList, error)
	Import(ctx context.Context, token, locale string, companyID int64, items []ImportItem) ([]domain.Item, error)
}

// ImportItem is one row of a bulk import.
type ImportItem struct {
	ExternalID    string  `json:"external_id"`
	Name          string  `json:"name"`
	Number        string  `json:"number"`
	IsService     bool    `json:"is_service"`
	IsAvailable   bool    `json:"is_available"`
	SellPrice     float64 `json:"sell_price"`
	PurchasePrice float64 `json:"purchase_price"`
}

type service struct {
	api *backend.Client
	log *zap.Logger
}

func NewService(api *backend.Client, log *zap.Logger) Service {
	return &service{api: api, log: log}
}

func (s *service) List(ctx context.Context, query url.Values) (*domain.ItemList, error) {
	var list domain.ItemList
	err := s.api.Get(ctx, pathItems, backend.RequestOptions{Query: query}, &list)
	if err != nil {
		return nil, backend.Classify(err)
	}
	return &list, nil
}

func (s *service) Import(ctx context.Context, token, locale string, companyID int64, items []ImportItem) ([]domain.Item, error) {
	var created []domain.Item
	err := s.api.Post(ctx, pathItems, backend.RequestOptions{
		Token:  token,
		Locale: locale,
		Body: map[string]any{
			"company_id": companyID,
			"items":      items,
		},
	}, &created)
	if err != nil {
		return nil, backend.Classify(err)
	}
	return created, nil
}
