package components

import (
	"washbay/internal/handler"
	"washbay/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewNoShowJobHandler,
		api.NewBookingHandler,
	),
	fx.Invoke(handler.NewRouter),
)
