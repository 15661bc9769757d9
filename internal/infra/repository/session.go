package repository

import (
	"context"

	"parkease/internal/domain/session"
	"parkease/internal/infra"
	"parkease/internal/infra/db"
	"parkease/internal/pkg/pgconv"
)

type SessionRepository struct {
	dbtx db.DBTX
}

func NewSessionRepository(dbtx db.DBTX) *SessionRepository {
	return &SessionRepository{dbtx: dbtx}
}

func (r *SessionRepository) Create(ctx context.Context, s *session.Session) error {
	q, args, err := qb.Insert(parkingSessionsTable).
		Columns("id", "booking_id", "location_id", "status", "check_in_at", "check_out_at", "created_at").
		Values(
			s.ID(), s.BookingID(), s.LocationID(), s.Status().String(),
			pgconv.TimeToPgtype(s.CheckInAt()), pgconv.TimeToPgtype(s.CheckOutAt()),
			s.CreatedAt(),
		).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build parking session insert", err)
	}
	if _, err := r.dbtx.Exec(ctx, q, args...); err != nil {
		return infra.WrapRepoErr("failed to create parking session", err)
	}
	return nil
}
