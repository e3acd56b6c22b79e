package components

import (
	repo_impl "shareit/internal/infra/repository"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDB,
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(commands.UserRepository), new(commands.UserReader)),
		),
		fx.Annotate(
			repo_impl.NewUserReadRepository,
			fx.As(new(queries.UserReadStore), new(queries.UserExistsReader)),
		),
		fx.Annotate(
			repo_impl.NewItemRepository,
			fx.As(new(commands.ItemRepository), new(commands.ItemReader)),
		),
		fx.Annotate(
			repo_impl.NewItemReadRepository,
			fx.As(new(queries.ItemReadStore)),
		),
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(commands.BookingRepository), new(queries.BookingReadStore)),
		),
		fx.Annotate(
			repo_impl.NewCommentRepository,
			fx.As(new(commands.CommentRepository), new(queries.CommentReadStore)),
		),
		fx.Annotate(
			repo_impl.NewRequestRepository,
			fx.As(new(commands.RequestRepository)),
		),
		fx.Annotate(
			repo_impl.NewRequestReadRepository,
			fx.As(new(queries.RequestReadStore)),
		),
	),
)

func NewDB(pool *pgxpool.Pool) repo_impl.DB {
	return pool
}
