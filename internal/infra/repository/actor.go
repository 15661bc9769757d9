package repository

import (
	"context"

	"parkease/internal/domain/user"
	"parkease/internal/infra"
	"parkease/internal/infra/db"
	"parkease/internal/pkg/pgconv"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type actorRow struct {
	ID              uuid.UUID   `db:"id"`
	Role            string      `db:"role"`
	OwnerProfileID  pgtype.UUID `db:"owner_profile_id"`
	EmployerOwnerID pgtype.UUID `db:"employer_owner_id"`
}

type ActorRepository struct {
	dbtx db.DBTX
}

func NewActorRepository(dbtx db.DBTX) *ActorRepository {
	return &ActorRepository{dbtx: dbtx}
}

// FindByID resolves the user's role together with the owner profile they
// hold or work for.
func (r *ActorRepository) FindByID(ctx context.Context, id uuid.UUID) (user.Actor, error) {
	q, args, err := qb.Select("u.id", "u.role", "op.id AS owner_profile_id", "w.owner_id AS employer_owner_id").
		From("users u").
		LeftJoin("owner_profiles op ON op.user_id = u.id").
		LeftJoin("watchmen w ON w.user_id = u.id").
		Where(sq.Eq{"u.id": id.String()}).
		ToSql()
	if err != nil {
		return user.Actor{}, infra.WrapRepoErr("failed to build actor select", err)
	}

	rows, err := r.dbtx.Query(ctx, q, args...)
	if err != nil {
		return user.Actor{}, infra.WrapRepoErr("failed to query actor", err)
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[actorRow])
	if err != nil {
		if pgconv.IsNoRows(err) {
			return user.Actor{}, infra.WrapRepoErr("actor not found", err, infra.KindNotFound)
		}
		return user.Actor{}, infra.WrapRepoErr("failed to scan actor", err)
	}

	role, err := user.NewRole(row.Role)
	if err != nil {
		return user.Actor{}, infra.WrapRepoErr("stored user has an unknown role", err)
	}
	return user.Actor{
		ID:              row.ID,
		Role:            role,
		OwnerProfileID:  pgconv.UUIDPtrFromPgtype(row.OwnerProfileID),
		EmployerOwnerID: pgconv.UUIDPtrFromPgtype(row.EmployerOwnerID),
	}, nil
}
