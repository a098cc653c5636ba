// Package session holds the per-request session state machine: a
// reducer-driven store seeded by the bootstrap, and the cookie-backed
// persistence behind it.
package session

import authdomain "github.com/smallbiznis/vitrina/internal/auth/domain"

// ThemeMode is the persisted presentation preference, independent of
// the auth state.
type ThemeMode string

const (
	ThemeLight ThemeMode = "light"
	ThemeDark  ThemeMode = "dark"
)

// Action is the closed set of messages the store accepts. All session
// mutation flows through Dispatch with one of these.
type Action interface {
	isAction()
}

// LoadUser replaces the entire auth state with its payload. It is the
// terminal message of every bootstrap, successful or not.
type LoadUser struct {
	Payload authdomain.AuthContext
}

// LoginUser merges a fresh token into the auth state, preserving the
// other fields.
type LoginUser struct {
	Token string
}

// VerifyUser carries the token minted by account verification or a
// completed password reset. Same merge semantics as LoginUser.
type VerifyUser struct {
	Token string
}

// Logout clears token and user, preserving IsInit.
type Logout struct{}

// DeleteUser clears token and user after account deletion.
type DeleteUser struct{}

// SetTheme replaces the theme mode.
type SetTheme struct {
	Mode ThemeMode
}

func (LoadUser) isAction()   {}
func (LoginUser) isAction()  {}
func (VerifyUser) isAction() {}
func (Logout) isAction()     {}
func (DeleteUser) isAction() {}
func (SetTheme) isAction()   {}

// ReduceAuth is the pure auth transition function. Same (state, action)
// always yields the same next state.
func ReduceAuth(state authdomain.AuthContext, action Action) authdomain.AuthContext {
	switch a := action.(type) {
	case LoadUser:
		return a.Payload
	case LoginUser:
		state.Token = a.Token
		return state
	case VerifyUser:
		state.Token = a.Token
		return state
	case Logout, DeleteUser:
		state.Token = ""
		state.User = nil
		return state
	default:
		return state
	}
}

// ReduceTheme is the pure theme transition function.
func ReduceTheme(state ThemeMode, action Action) ThemeMode {
	if a, ok := action.(SetTheme); ok {
		return a.Mode
	}
	return state
}
