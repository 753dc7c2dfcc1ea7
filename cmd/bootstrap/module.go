package bootstrap

import (
	"washbay/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	PlatformModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
