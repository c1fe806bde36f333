package components

import (
	"swim-academy-api/internal/infra"
	"swim-academy-api/internal/infra/readstore"
	"swim-academy-api/internal/infra/repository"
	"swim-academy-api/internal/infra/uow"
	"swim-academy-api/internal/usecase"
	"swim-academy-api/internal/usecase/queries"
	"swim-academy-api/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// UnitOfWork
		uow.NewPostgresUoW,
		// Pool-bound write repos used outside transactions
		fx.Annotate(
			repository.NewLockerRepository,
			fx.As(new(shared.LockerRepository)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(usecase.UserFinder)),
		),
		// Read-side store backing both enrollment and refund queries
		fx.Annotate(
			readstore.NewEnrollmentReadStore,
			fx.As(new(queries.EnrollmentViewRepo)),
			fx.As(new(queries.RefundFactsRepo)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) infra.DBTX {
	return pool
}
