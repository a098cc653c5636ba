package session

import (
	"testing"

	authdomain "github.com/smallbiznis/vitrina/internal/auth/domain"
	"github.com/stretchr/testify/assert"
)

func TestReduceAuth_LoadUserReplacesState(t *testing.T) {
	user := &authdomain.User{ID: 1, Name: "Ann", Email: "ann@example.com"}
	prev := authdomain.AuthContext{Token: "stale", IsInit: true}

	next := ReduceAuth(prev, LoadUser{Payload: authdomain.AuthContext{
		Token:  "fresh",
		User:   user,
		IsInit: true,
	}})

	assert.Equal(t, "fresh", next.Token)
	assert.Equal(t, user, next.User)
	assert.True(t, next.IsInit)
}

func TestReduceAuth_LoginMergesToken(t *testing.T) {
	user := &authdomain.User{ID: 7}
	prev := authdomain.AuthContext{User: user, IsInit: true}

	next := ReduceAuth(prev, LoginUser{Token: "tok-1"})

	assert.Equal(t, "tok-1", next.Token)
	assert.Equal(t, user, next.User, "login must preserve the rest of the state")
	assert.True(t, next.IsInit)
}

func TestReduceAuth_VerifyMergesToken(t *testing.T) {
	prev := authdomain.AuthContext{IsInit: true}

	next := ReduceAuth(prev, VerifyUser{Token: "tok-2"})

	assert.Equal(t, "tok-2", next.Token)
	assert.True(t, next.IsInit)
}

func TestReduceAuth_LogoutClearsTokenAndUser(t *testing.T) {
	prev := authdomain.AuthContext{
		Token:  "tok",
		User:   &authdomain.User{ID: 3},
		IsInit: true,
	}

	for _, action := range []Action{Logout{}, DeleteUser{}} {
		next := ReduceAuth(prev, action)
		assert.Empty(t, next.Token)
		assert.Nil(t, next.User)
		assert.True(t, next.IsInit, "IsInit survives logout")
	}
}

func TestReduceAuth_IsInitIsMonotonic(t *testing.T) {
	state := authdomain.AuthContext{IsInit: true}

	actions := []Action{
		LoginUser{Token: "a"},
		VerifyUser{Token: "b"},
		Logout{},
		DeleteUser{},
		SetTheme{Mode: ThemeDark},
	}
	for _, action := range actions {
		state = ReduceAuth(state, action)
		assert.True(t, state.IsInit)
	}
}

func TestReduceAuth_Deterministic(t *testing.T) {
	prev := authdomain.AuthContext{Token: "t", IsInit: true}
	action := LoginUser{Token: "next"}

	first := ReduceAuth(prev, action)
	second := ReduceAuth(prev, action)

	assert.Equal(t, first, second)
}

func TestReduceTheme(t *testing.T) {
	assert.Equal(t, ThemeDark, ReduceTheme(ThemeLight, SetTheme{Mode: ThemeDark}))
	assert.Equal(t, ThemeLight, ReduceTheme(ThemeLight, LoginUser{Token: "t"}))
}

func TestStore_DispatchAndSnapshot(t *testing.T) {
	store := NewStore(ThemeDark)

	snap := store.Snapshot()
	assert.False(t, snap.Auth.IsInit)
	assert.Equal(t, ThemeDark, snap.Theme)

	store.Dispatch(LoadUser{Payload: authdomain.AuthContext{
		Token:  "tok",
		User:   &authdomain.User{ID: 9},
		IsInit: true,
	}})
	store.Dispatch(SetTheme{Mode: ThemeLight})

	snap = store.Snapshot()
	assert.True(t, snap.Auth.IsInit)
	assert.Equal(t, "tok", snap.Auth.Token)
	assert.Equal(t, ThemeLight, snap.Theme)
}
