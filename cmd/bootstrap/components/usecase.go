package components

import (
	"log/slog"

	"studiobook/internal/pkg/clock"
	"studiobook/internal/pkg/config"
	"studiobook/internal/usecase"
	"studiobook/internal/usecase/commands"
	"studiobook/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewIntegrityGuard,
)

func NewIntegrityGuard(provider usecase.ReferenceProvider, clk clock.Clock, cfg config.GuardConfig, logger *slog.Logger) *usecase.IntegrityGuard {
	return usecase.NewIntegrityGuard(provider, clk, cfg.CacheTTL, logger)
}

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewMaintenanceCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewStudioQueries,
	),
)
