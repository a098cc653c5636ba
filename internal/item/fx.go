package item

import "go.uber.org/fx"

var Module = fx.Module("item",
	fx.Provide(NewService),
)
