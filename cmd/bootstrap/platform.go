package bootstrap

import (
	"washbay/internal/infra/platform"
	"washbay/internal/pkg/config"
	"washbay/internal/usecase/commands"
	"washbay/internal/usecase/queries"

	"go.uber.org/fx"
)

// PlatformModule provides the external platform client once and binds it to
// every port it serves.
var PlatformModule = fx.Module("platform",
	fx.Provide(
		NewPlatformClient,
		fx.Annotate(
			func(c *platform.Client) *platform.Client { return c },
			fx.As(new(commands.BookingSource)),
			fx.As(new(commands.BookingAnnotator)),
			fx.As(new(commands.CatalogSource)),
			fx.As(new(commands.PaymentGateway)),
			fx.As(new(queries.BookingReader)),
		),
	),
)

func NewPlatformClient(cfg config.Config) *platform.Client {
	return platform.NewClient(cfg.Platform)
}
