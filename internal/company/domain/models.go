// Package domain contains the marketplace directory types as the
// backend serves them.
package domain

import "time"

// CompanyType distinguishes sole traders from legal entities.
type CompanyType string

const (
	CompanyTypePhysical CompanyType = "physical"
	CompanyTypeEntity   CompanyType = "entity"
)

type CompanyContacts struct {
	Phone   []string `json:"phone"`
	Email   []string `json:"email"`
	Address []string `json:"address"`
	Website []string `json:"website"`
}

// CompanySocials mirrors the backend payload, including its historical
// "instragram" field spelling.
type CompanySocials struct {
	Facebook  string `json:"facebook"`
	Instagram string `json:"instragram"`
	Youtube   string `json:"youtube"`
}

type Company struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	TIN         string          `json:"tin"`
	Type        CompanyType     `json:"type"`
	LogoURL     string          `json:"logo_url"`
	Description string          `json:"description"`
	Contacts    CompanyContacts `json:"contacts"`
	Socials     CompanySocials  `json:"socials"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Pagination describes the window the backend returned for a list call.
type Pagination struct {
	Skipped int `json:"skipped"`
	Current int `json:"current"`
	Total   int `json:"total"`
}

type CompanyList struct {
	Result     []Company  `json:"result"`
	Pagination Pagination `json:"pagination"`
}
