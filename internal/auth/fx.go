package auth

import (
	"github.com/smallbiznis/vitrina/internal/session"
	"go.uber.org/fx"
)

var Module = fx.Module("auth",
	fx.Provide(
		NewService,
		func(s Service) session.Prober { return s },
	),
)
