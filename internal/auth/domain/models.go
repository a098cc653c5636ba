// Package domain contains core types for the auth layer.
package domain

import (
	"time"

	companydomain "github.com/smallbiznis/vitrina/internal/company/domain"
)

// Role tags returned by the backend. RoleAdmin drives the post-login
// redirect to the administration area.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is the resolved profile behind a bearer token. The activation
// and reset token fields are owned by the backend and only echoed here.
type User struct {
	ID                     int64                   `json:"id"`
	Name                   string                  `json:"name"`
	Email                  string                  `json:"email"`
	Role                   string                  `json:"role"`
	IsActive               bool                    `json:"is_active"`
	ActivationToken        string                  `json:"activation_token,omitempty"`
	ActivationTokenExpires *time.Time              `json:"activation_token_expires,omitempty"`
	ResetPasswordToken     string                  `json:"reset_password_token,omitempty"`
	AvatarURL              string                  `json:"avatar_url"`
	Companies              []companydomain.Company `json:"companies"`
	CreatedAt              time.Time               `json:"created_at"`
	UpdatedAt              time.Time               `json:"updated_at"`
}

// AuthContext is the in-memory record of the current visitor's
// authentication status. Token empty means anonymous; User is set only
// after a successful probe; IsInit flips to true exactly once, after
// the first bootstrap attempt, and never reverts.
type AuthContext struct {
	Token  string
	User   *User
	IsInit bool
}

// Authenticated reports whether a resolved user is present.
func (a AuthContext) Authenticated() bool {
	return a.User != nil
}
