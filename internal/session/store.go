package session

import (
	"sync"

	authdomain "github.com/smallbiznis/vitrina/internal/auth/domain"
)

// State is everything the store holds: auth context plus theme.
type State struct {
	Auth  authdomain.AuthContext
	Theme ThemeMode
}

// Store is the single writer over the session state for the lifetime of
// one request. Mutation happens only through Dispatch; readers take
// value snapshots.
type Store struct {
	mu    sync.Mutex
	state State
}

// NewStore creates a store in the unresolved state: IsInit false, theme
// as given.
func NewStore(theme ThemeMode) *Store {
	if theme == "" {
		theme = ThemeLight
	}
	return &Store{state: State{Theme: theme}}
}

// Dispatch reduces the current state with the action.
func (s *Store) Dispatch(action Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = State{
		Auth:  ReduceAuth(s.state.Auth, action),
		Theme: ReduceTheme(s.state.Theme, action),
	}
}

// Snapshot returns the current state by value.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Session ties the per-request cookie store and state store together so
// actions can keep both consistent within one call.
type Session struct {
	Cookies CookieStore
	Store   *Store
}
