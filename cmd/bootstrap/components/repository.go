package components

import (
	repo_impl "studiobook/internal/infra/repository"
	"studiobook/internal/usecase"
	"studiobook/internal/usecase/commands"
	"studiobook/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewRequestRepository,
			fx.As(new(commands.RequestRepository)),
			fx.As(new(queries.RequestReader)),
		),
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
			fx.As(new(queries.BookingReader)),
		),
		fx.Annotate(
			repo_impl.NewDirectoryRepository,
			fx.As(new(commands.DirectoryRepository)),
			fx.As(new(queries.DirectoryReader)),
			fx.As(new(usecase.ReferenceProvider)),
		),
	),
)
