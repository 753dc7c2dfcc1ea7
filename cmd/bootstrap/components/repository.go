package components

import (
	repo_impl "washbay/internal/infra/repository"
	"washbay/internal/usecase/commands"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewBillingRepository,
			fx.As(new(commands.ChargeRecorder)),
		),
	),
)
