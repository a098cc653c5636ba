package session

import (
	"context"

	authdomain "github.com/smallbiznis/vitrina/internal/auth/domain"
	"go.uber.org/zap"
)

// Status is the bootstrap state machine. It advances strictly forward
// within one request: Unresolved -> Resolving -> Resolved.
type Status int

const (
	Unresolved Status = iota
	Resolving
	ResolvedAnonymous
	ResolvedAuthenticated
)

func (s Status) Resolved() bool {
	return s == ResolvedAnonymous || s == ResolvedAuthenticated
}

// Prober validates a token against the backend and hydrates the user
// profile. It never reports an error: a nil user means the token did
// not resolve.
type Prober interface {
	CurrentUser(ctx context.Context, token, locale string) *authdomain.User
}

// Bootstrapper resolves the session at the start of a request. It runs
// once per request; the resolved state is terminal until the next one.
type Bootstrapper struct {
	probe Prober
	log   *zap.Logger
}

func NewBootstrapper(probe Prober, log *zap.Logger) *Bootstrapper {
	return &Bootstrapper{probe: probe, log: log}
}

// Run seeds the store from the persisted token. No token resolves to
// anonymous immediately; a token that the probe rejects is discarded
// from the cookie before the store is seeded. Either way the store ends
// initialized, and Run never fails.
func (b *Bootstrapper) Run(ctx context.Context, sess *Session) Status {
	token, ok := sess.Cookies.Token()
	if !ok {
		sess.Store.Dispatch(LoadUser{Payload: authdomain.AuthContext{IsInit: true}})
		return ResolvedAnonymous
	}

	user := b.probe.CurrentUser(ctx, token, sess.Cookies.Locale())
	if user == nil {
		sess.Cookies.ClearToken()
		sess.Store.Dispatch(LoadUser{Payload: authdomain.AuthContext{IsInit: true}})
		b.log.Debug("session bootstrap discarded rejected token")
		return ResolvedAnonymous
	}

	sess.Store.Dispatch(LoadUser{Payload: authdomain.AuthContext{
		Token:  token,
		User:   user,
		IsInit: true,
	}})
	return ResolvedAuthenticated
}
