package readstore

import (
	"context"

	"parkease/internal/domain/availability"
	"parkease/internal/infra"
	"parkease/internal/infra/db"
	"parkease/internal/infra/repository"
	"parkease/internal/pkg/pgconv"
	"parkease/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type locationViewRow struct {
	ID             uuid.UUID `db:"id"`
	OwnerID        uuid.UUID `db:"owner_id"`
	Name           string    `db:"name"`
	TotalSpots     int       `db:"total_spots"`
	AvailableSpots int       `db:"available_spots"`
}

type LocationReadStore struct {
	db db.DBTX
}

func NewLocationReadStore(dbtx db.DBTX) *LocationReadStore {
	return &LocationReadStore{db: dbtx}
}

func (r *LocationReadStore) FindLocation(ctx context.Context, id uuid.UUID) (*queries.LocationCapacityView, error) {
	q, args, err := qb.Select("id", "owner_id", "name", "total_spots", "available_spots").
		From("parking_locations").
		Where(sq.Eq{"id": id.String()}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build location view query", err)
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get location view", err)
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[locationViewRow])
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("location not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan location view", err)
	}
	return &queries.LocationCapacityView{
		ID:             row.ID,
		OwnerID:        row.OwnerID,
		Name:           row.Name,
		TotalSpots:     row.TotalSpots,
		AvailableSpots: row.AvailableSpots,
	}, nil
}

func (r *LocationReadStore) ListOccupancies(ctx context.Context, locationID uuid.UUID, w availability.Window) ([]availability.Occupancy, error) {
	return repository.ListOccupancies(ctx, r.db, locationID, w)
}
