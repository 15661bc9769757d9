package components

import (
	"parkease/internal/domain/booking"
	"parkease/internal/infra/confirmation"
	"parkease/internal/infra/db"
	"parkease/internal/infra/readstore"
	"parkease/internal/infra/repository"
	"parkease/internal/infra/uow"
	"parkease/internal/pkg/config"
	"parkease/internal/usecase/queries"
	"parkease/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	writeModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewBookingRequestReadStore,
			fx.As(new(queries.BookingRequestViewRepo)),
		),
		fx.Annotate(
			readstore.NewLocationReadStore,
			fx.As(new(queries.AvailabilityReadRepo)),
			fx.As(new(queries.LocationReader)),
		),
		fx.Annotate(
			repository.NewActorRepository,
			fx.As(new(queries.ActorReader)),
		),
	),
)

var writeModule = fx.Module("persistence/write",
	fx.Provide(
		NewUnitOfWork,
		fx.Annotate(
			confirmation.NewGenerator,
			fx.As(new(booking.CodeGenerator)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewUnitOfWork(pool *pgxpool.Pool, cfg config.Config) shared.UnitOfWork {
	return uow.NewPostgresUoW(pool, cfg.DB.TxMaxRetries)
}
