// Package server assembles the HTTP surface of the frontend: page
// rendering, the session-aware middleware chain, and the form endpoints
// that drive the auth and directory services.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/vitrina/internal/auth"
	"github.com/smallbiznis/vitrina/internal/company"
	"github.com/smallbiznis/vitrina/internal/config"
	"github.com/smallbiznis/vitrina/internal/item"
	"github.com/smallbiznis/vitrina/internal/metrics"
	"github.com/smallbiznis/vitrina/internal/observability"
	"github.com/smallbiznis/vitrina/internal/session"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	fx.Provide(
		NewEngine,
		NewServer,
	),
	fx.Invoke(registerRoutes),
	fx.Invoke(run),
)

type Server struct {
	cfg     config.Config
	ui      *config.UIConfigHolder
	log     *zap.Logger
	mc      *metrics.Collector
	authsvc auth.Service

	companysvc company.Service
	itemsvc    item.Service

	sessions  *session.Manager
	bootstrap *session.Bootstrapper
}

type ServerParams struct {
	fx.In

	Config    config.Config
	UI        *config.UIConfigHolder
	Log       *zap.Logger
	Metrics   *metrics.Collector
	Auth      auth.Service
	Companies company.Service
	Items     item.Service
	Sessions  *session.Manager
	Bootstrap *session.Bootstrapper
}

func NewServer(p ServerParams) *Server {
	return &Server{
		cfg:        p.Config,
		ui:         p.UI,
		log:        p.Log,
		mc:         p.Metrics,
		authsvc:    p.Auth,
		companysvc: p.Companies,
		itemsvc:    p.Items,
		sessions:   p.Sessions,
		bootstrap:  p.Bootstrap,
	}
}

func NewEngine(cfg config.Config, mc *metrics.Collector, log *zap.Logger) *gin.Engine {
	if !cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(observability.LoggingMiddleware(log))
	r.Use(observability.TracingMiddleware())
	r.Use(metrics.GinMiddleware(mc))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(mc.Handler()))

	return r
}

func registerRoutes(r *gin.Engine, s *Server) {
	pages := r.Group("/", s.WithSession(), s.Bootstrap(), s.RouteGuard())
	{
		pages.GET("/", s.HomePage)
		pages.GET("/auth", s.AuthPage)
		pages.GET("/dashboard", s.DashboardPage)
		pages.GET("/companies", s.CompaniesPage)
		pages.GET("/companies/:id", s.CompanyPage)
		pages.GET("/verification", s.VerificationPage)
		pages.GET("/reset_password", s.ResetPasswordPage)
		pages.GET("/set_new_password", s.SetNewPasswordPage)
		pages.GET("/check_email", s.CheckEmailPage)
	}

	api := r.Group("/", s.WithSession())
	{
		api.GET("/api/session", s.SessionState)
		api.POST("/api/theme", s.SetThemeMode)

		api.POST("/api/auth/login", s.Login)
		api.POST("/api/auth/register", s.Register)
		api.POST("/api/auth/logout", s.Logout)
		api.POST("/api/auth/verification", s.Verify)
		api.POST("/api/auth/create_reset_password_token", s.CreateResetPasswordToken)
		api.POST("/api/auth/check_reset_password_token", s.CheckResetPasswordToken)
		api.POST("/api/auth/reset_password", s.ResetPassword)

		api.PUT("/api/profile", s.UpdateProfile)
		api.PUT("/api/profile/password", s.ChangePassword)
		api.DELETE("/api/profile", s.DeleteAccount)

		api.POST("/api/companies", s.CreateCompany)
		api.POST("/api/items/import", s.ImportItems)
	}
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			_ = ctx
			go func() {
				log.Info("http server listening", zap.String("addr", cfg.ListenAddr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}
