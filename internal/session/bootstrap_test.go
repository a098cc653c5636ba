package session

import (
	"context"
	"testing"

	authdomain "github.com/smallbiznis/vitrina/internal/auth/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeCookies struct {
	token      string
	locale     string
	dark       bool
	clearCalls int
	setValues  []string
}

func (f *fakeCookies) Token() (string, bool) {
	return f.token, f.token != ""
}

func (f *fakeCookies) SetToken(token string) {
	f.token = token
	f.setValues = append(f.setValues, token)
}

func (f *fakeCookies) ClearToken() {
	f.token = ""
	f.clearCalls++
}

func (f *fakeCookies) Locale() string {
	if f.locale == "" {
		return "en"
	}
	return f.locale
}

func (f *fakeCookies) DarkMode() bool { return f.dark }

type fakeProber struct {
	user   *authdomain.User
	calls  int
	tokens []string
}

func (f *fakeProber) CurrentUser(ctx context.Context, token, locale string) *authdomain.User {
	_ = ctx
	_ = locale
	f.calls++
	f.tokens = append(f.tokens, token)
	return f.user
}

func newTestSession(cookies CookieStore) *Session {
	return &Session{Cookies: cookies, Store: NewStore(ThemeLight)}
}

func TestBootstrap_NoTokenResolvesAnonymous(t *testing.T) {
	probe := &fakeProber{}
	b := NewBootstrapper(probe, zap.NewNop())
	sess := newTestSession(&fakeCookies{})

	status := b.Run(context.Background(), sess)

	assert.Equal(t, ResolvedAnonymous, status)
	assert.Zero(t, probe.calls, "no probe without a token")

	snap := sess.Store.Snapshot()
	assert.True(t, snap.Auth.IsInit)
	assert.Empty(t, snap.Auth.Token)
	assert.Nil(t, snap.Auth.User)
}

func TestBootstrap_RejectedTokenIsDiscarded(t *testing.T) {
	probe := &fakeProber{user: nil}
	b := NewBootstrapper(probe, zap.NewNop())
	cookies := &fakeCookies{token: "bad-token"}
	sess := newTestSession(cookies)

	status := b.Run(context.Background(), sess)

	assert.Equal(t, ResolvedAnonymous, status)
	assert.Equal(t, 1, probe.calls)
	assert.Equal(t, 1, cookies.clearCalls, "rejected token must be removed")

	snap := sess.Store.Snapshot()
	assert.True(t, snap.Auth.IsInit)
	assert.Empty(t, snap.Auth.Token)
	assert.Nil(t, snap.Auth.User)
}

func TestBootstrap_ValidTokenResolvesAuthenticated(t *testing.T) {
	user := &authdomain.User{ID: 4, Name: "Boris"}
	probe := &fakeProber{user: user}
	b := NewBootstrapper(probe, zap.NewNop())
	cookies := &fakeCookies{token: "good-token", locale: "lv"}
	sess := newTestSession(cookies)

	status := b.Run(context.Background(), sess)

	assert.Equal(t, ResolvedAuthenticated, status)
	assert.Equal(t, []string{"good-token"}, probe.tokens)
	assert.Zero(t, cookies.clearCalls)

	snap := sess.Store.Snapshot()
	assert.True(t, snap.Auth.IsInit)
	assert.Equal(t, "good-token", snap.Auth.Token)
	assert.Equal(t, user, snap.Auth.User)
}

func TestStatus_Resolved(t *testing.T) {
	assert.False(t, Unresolved.Resolved())
	assert.False(t, Resolving.Resolved())
	assert.True(t, ResolvedAnonymous.Resolved())
	assert.True(t, ResolvedAuthenticated.Resolved())
}
