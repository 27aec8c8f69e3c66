package components

import (
	"context"

	"parcel-registry/internal/pkg/clock"
	"parcel-registry/internal/pkg/config"
	"parcel-registry/internal/pkg/metrics"
	"parcel-registry/internal/usecase/commands"
	"parcel-registry/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
	sweeperModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(clk clock.Clock, m *metrics.Metrics, cfg config.Config) *commands.Allocator {
		return commands.NewAllocator(clk, m, cfg.Allocation.AlertAttempts)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAvailabilityUseCase,
		commands.NewMutationUseCase,
		commands.NewOwnershipUseCase,
		commands.NewAlertUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAvailabilityQueries,
		queries.NewMutationQueries,
		queries.NewOwnershipQueries,
		queries.NewAlertQueries,
	),
)

var sweeperModule = fx.Module("usecase/sweeper",
	fx.Provide(
		func(availability commands.AvailabilityCommands, cfg config.Config) *commands.Sweeper {
			return commands.NewSweeper(availability, cfg.Allocation.SweepInterval)
		},
	),
	fx.Invoke(registerSweeper),
)

func registerSweeper(lc fx.Lifecycle, s *commands.Sweeper) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return s.Stop(ctx)
		},
	})
}
