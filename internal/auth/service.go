// Package auth implements the account operations of the frontend. Every
// operation is one backend call; operations that change server-side auth
// state also keep the token cookie and the in-memory session consistent
// within the same call, writing the cookie before dispatching.
package auth

import (
	"context"

	authdomain "github.com/smallbiznis/vitrina/internal/auth/domain"
	"github.com/smallbiznis/vitrina/internal/backend"
	"github.com/smallbiznis/vitrina/internal/session"
	"go.uber.org/zap"
)

const (
	pathAuth                     = "/api/auth"
	pathUsers                    = "/api/users"
	pathChangePassword           = "/api/users/change_password"
	pathVerification             = "/api/auth/verification"
	pathCreateResetPasswordToken = "/api/auth/create_reset_password_token"
	pathCheckResetPasswordToken  = "/api/auth/check_reset_password_token"
	pathResetPassword            = "/api/auth/reset_password"
)

type Service interface {
	// CurrentUser is the authenticated probe. It never fails: any error
	// degrades to a nil user.
	CurrentUser(ctx context.Context, token, locale string) *authdomain.User

	Register(ctx context.Context, req RegisterRequest) error
	Login(ctx context.Context, sess *session.Session, req LoginRequest) error
	Verify(ctx context.Context, sess *session.Session, req VerifyRequest) error
	Logout(sess *session.Session)
	UpdateProfile(ctx context.Context, req UpdateProfileRequest) error
	ChangePassword(ctx context.Context, req ChangePasswordRequest) error
	DeleteAccount(ctx context.Context, sess *session.Session, token string) error
	CreateResetPasswordToken(ctx context.Context, req ResetTokenRequest) error
	CheckResetPasswordToken(ctx context.Context, req CheckResetTokenRequest) error
	ResetPassword(ctx context.Context, sess *session.Session, req ResetPasswordRequest) error
}

type RegisterRequest struct {
	Name     string
	Email    string
	Password string
	Locale   string
}

type LoginRequest struct {
	Email    string
	Password string
}

type VerifyRequest struct {
	Email           string
	ActivationToken string
}

type UpdateProfileRequest struct {
	Token  string
	Name   string
	Locale string
}

type ChangePasswordRequest struct {
	Token       string
	Password    string
	NewPassword string
	Locale      string
}

type ResetTokenRequest struct {
	Email  string
	Locale string
}

type CheckResetTokenRequest struct {
	Email              string
	ResetPasswordToken string
	Locale             string
}

type ResetPasswordRequest struct {
	Email              string
	ResetPasswordToken string
	Password           string
}

type tokenResponse struct {
	Token string `json:"token"`
}

type service struct {
	api *backend.Client
	log *zap.Logger
}

func NewService(api *backend.Client, log *zap.Logger) Service {
	return &service{api: api, log: log}
}

func (s *service) CurrentUser(ctx context.Context, token, locale string) *authdomain.User {
	var user authdomain.User
	err := s.api.Get(ctx, pathAuth, backend.RequestOptions{Token: token, Locale: locale}, &user)
	if err != nil {
		s.log.Debug("auth probe rejected", zap.Error(err))
		return nil
	}
	return &user
}

func (s *service) Register(ctx context.Context, req RegisterRequest) error {
	err := s.api.Post(ctx, pathUsers, backend.RequestOptions{
		Locale: req.Locale,
		Body: map[string]string{
			"name":     req.Name,
			"email":    req.Email,
			"password": req.Password,
		},
	}, nil)
	return backend.Classify(err)
}

func (s *service) Login(ctx context.Context, sess *session.Session, req LoginRequest) error {
	var resp tokenResponse
	err := s.api.Post(ctx, pathAuth, backend.RequestOptions{
		Locale: sess.Cookies.Locale(),
		Body: map[string]string{
			"email":    req.Email,
			"password": req.Password,
		},
	}, &resp)
	if err != nil {
		return backend.Classify(err)
	}

	sess.Cookies.SetToken(resp.Token)
	sess.Store.Dispatch(session.LoginUser{Token: resp.Token})
	return nil
}

func (s *service) Verify(ctx context.Context, sess *session.Session, req VerifyRequest) error {
	var resp tokenResponse
	err := s.api.Post(ctx, pathVerification, backend.RequestOptions{
		Locale: sess.Cookies.Locale(),
		Body: map[string]string{
			"email":           req.Email,
			"activationToken": req.ActivationToken,
		},
	}, &resp)
	if err != nil {
		return backend.Classify(err)
	}

	sess.Cookies.SetToken(resp.Token)
	sess.Store.Dispatch(session.VerifyUser{Token: resp.Token})
	return nil
}

// Logout is local only: the backend holds no session to revoke.
func (s *service) Logout(sess *session.Session) {
	sess.Cookies.ClearToken()
	sess.Store.Dispatch(session.Logout{})
}

func (s *service) UpdateProfile(ctx context.Context, req UpdateProfileRequest) error {
	err := s.api.Put(ctx, pathUsers, backend.RequestOptions{
		Token:  req.Token,
		Locale: req.Locale,
		Body:   map[string]string{"name": req.Name},
	}, nil)
	return backend.Classify(err)
}

func (s *service) ChangePassword(ctx context.Context, req ChangePasswordRequest) error {
	err := s.api.Put(ctx, pathChangePassword, backend.RequestOptions{
		Token:  req.Token,
		Locale: req.Locale,
		Body: map[string]string{
			"password":    req.Password,
			"newPassword": req.NewPassword,
		},
	}, nil)
	return backend.Classify(err)
}

func (s *service) DeleteAccount(ctx context.Context, sess *session.Session, token string) error {
	err := s.api.Delete(ctx, pathUsers, backend.RequestOptions{
		Token:  token,
		Locale: sess.Cookies.Locale(),
	}, nil)
	if err != nil {
		return backend.Classify(err)
	}

	sess.Cookies.ClearToken()
	sess.Store.Dispatch(session.DeleteUser{})
	return nil
}

func (s *service) CreateResetPasswordToken(ctx context.Context, req ResetTokenRequest) error {
	err := s.api.Post(ctx, pathCreateResetPasswordToken, backend.RequestOptions{
		Locale: req.Locale,
		Body:   map[string]string{"email": req.Email},
	}, nil)
	return backend.Classify(err)
}

func (s *service) CheckResetPasswordToken(ctx context.Context, req CheckResetTokenRequest) error {
	err := s.api.Post(ctx, pathCheckResetPasswordToken, backend.RequestOptions{
		Locale: req.Locale,
		Body: map[string]string{
			"email":              req.Email,
			"resetPasswordToken": req.ResetPasswordToken,
		},
	}, nil)
	return backend.Classify(err)
}

// ResetPassword completes the reset flow. The backend mints a fresh
// token, so a successful reset signs the visitor in through the same
// message kind as account verification.
func (s *service) ResetPassword(ctx context.Context, sess *session.Session, req ResetPasswordRequest) error {
	var resp tokenResponse
	err := s.api.Post(ctx, pathResetPassword, backend.RequestOptions{
		Locale: sess.Cookies.Locale(),
		Body: map[string]string{
			"email":              req.Email,
			"resetPasswordToken": req.ResetPasswordToken,
			"password":           req.Password,
		},
	}, &resp)
	if err != nil {
		return backend.Classify(err)
	}

	sess.Cookies.SetToken(resp.Token)
	sess.Store.Dispatch(session.VerifyUser{Token: resp.Token})
	return nil
}
