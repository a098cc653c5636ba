package main

import (
	"github.com/smallbiznis/vitrina/internal/auth"
	"github.com/smallbiznis/vitrina/internal/backend"
	"github.com/smallbiznis/vitrina/internal/company"
	"github.com/smallbiznis/vitrina/internal/config"
	"github.com/smallbiznis/vitrina/internal/item"
	"github.com/smallbiznis/vitrina/internal/logger"
	"github.com/smallbiznis/vitrina/internal/metrics"
	"github.com/smallbiznis/vitrina/internal/observability"
	"github.com/smallbiznis/vitrina/internal/server"
	"github.com/smallbiznis/vitrina/internal/session"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		logger.Module,
		observability.Module,
		metrics.Module,
		backend.Module,

		// Functional domains
		auth.Module,
		session.Module,
		company.Module,
		item.Module,

		server.Module,
	)
	app.Run()
}
