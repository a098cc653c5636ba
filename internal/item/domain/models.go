// Package domain contains the inventory item types as the backend
// serves them.
package domain

import "time"

type Item struct {
	ID            int64     `json:"id"`
	ExternalID    string    `json:"external_id"`
	Name          string    `json:"name"`
	Number        string    `json:"number"`
	IsService     bool      `json:"is_service"`
	IsAvailable   bool      `json:"is_available"`
	SellPrice     float64   `json:"sell_price"`
	PurchasePrice float64   `json:"purchase_price"`
	Images        []string  `json:"images"`
	Company       int64     `json:"company"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type Pagination struct {
	Skipped int `json:"skipped"`
	Current int `json:"current"`
	Total   int `json:"total"`
}

type ItemList struct {
	Result     []Item     `json:"result"`
	Pagination Pagination `json:"pagination"`
}
