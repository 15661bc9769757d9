package repository

import (
	"context"

	"parkease/internal/domain/location"
	"parkease/internal/infra"
	"parkease/internal/infra/db"
	"parkease/internal/pkg/pgconv"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type locationRow struct {
	ID             uuid.UUID `db:"id"`
	OwnerID        uuid.UUID `db:"owner_id"`
	Name           string    `db:"name"`
	TotalSpots     int       `db:"total_spots"`
	AvailableSpots int       `db:"available_spots"`
}

type LocationRepository struct {
	dbtx db.DBTX
}

func NewLocationRepository(dbtx db.DBTX) *LocationRepository {
	return &LocationRepository{dbtx: dbtx}
}

func (r *LocationRepository) FindByID(ctx context.Context, id uuid.UUID) (*location.Location, error) {
	return r.find(ctx, id, false)
}

func (r *LocationRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*location.Location, error) {
	return r.find(ctx, id, true)
}

func (r *LocationRepository) find(ctx context.Context, id uuid.UUID, lock bool) (*location.Location, error) {
	b := qb.Select("id", "owner_id", "name", "total_spots", "available_spots").
		From(parkingLocationsTable).
		Where(sq.Eq{"id": id.String()})
	if lock {
		b = b.Suffix("FOR UPDATE")
	}
	q, args, err := b.ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build location select", err)
	}

	rows, err := r.dbtx.Query(ctx, q, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query location", err)
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[locationRow])
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("location not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan location", err)
	}

	loc, err := location.Reconstruct(row.ID, row.OwnerID, row.Name, row.TotalSpots, row.AvailableSpots)
	if err != nil {
		return nil, infra.WrapRepoErr("stored location violates capacity bounds", err)
	}
	return loc, nil
}

// ClaimSpot writes the counter value derived by the domain. The bounds
// guard mirrors the table's check constraint so an out of range value
// updates no row instead of aborting the transaction.
func (r *LocationRepository) ClaimSpot(ctx context.Context, id uuid.UUID, next int) (int, error) {
	q, args, err := qb.Update(parkingLocationsTable).
		Set("available_spots", next).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id.String()}).
		Where(sq.Expr("?::int BETWEEN 0 AND total_spots", next)).
		Suffix("RETURNING available_spots").
		ToSql()
	if err != nil {
		return 0, infra.WrapRepoErr("failed to build capacity update", err)
	}

	var available int
	if err := r.dbtx.QueryRow(ctx, q, args...).Scan(&available); err != nil {
		if pgconv.IsNoRows(err) {
			return 0, infra.WrapRepoErr("no spot left at location", err, infra.KindCapacity)
		}
		return 0, infra.WrapRepoErr("failed to update available spots", err)
	}
	return available, nil
}
