package repository

import (
	"context"
	"time"

	"parkease/internal/domain/availability"
	"parkease/internal/domain/booking"
	"parkease/internal/infra"
	"parkease/internal/infra/db"
	"parkease/internal/pkg/pgconv"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingRepository struct {
	dbtx db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{dbtx: dbtx}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	g, v, p, w := b.Guest(), b.Vehicle(), b.Pricing(), b.Window()
	q, args, err := qb.Insert(bookingsTable).
		Columns(
			"id", "location_id", "source_request_id", "check_in", "check_out",
			"guest_first_name", "guest_last_name", "guest_email", "guest_phone",
			"vehicle_plate", "vehicle_type", "vehicle_make", "vehicle_model", "vehicle_color",
			"base_price_cents", "tax_cents", "fee_cents", "total_cents",
			"status", "confirmation_code", "created_at",
		).
		Values(
			b.ID(), b.LocationID(), pgconv.UUIDToPgtype(b.SourceRequestID()), w.Start(), w.End(),
			g.FirstName, g.LastName, g.Email, g.Phone,
			v.Plate, v.Type, v.Make, v.Model, v.Color,
			p.BaseCents, p.TaxCents, p.FeeCents, p.TotalCents,
			b.Status().String(), b.ConfirmationCode(), b.CreatedAt(),
		).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build booking insert", err)
	}
	if _, err := r.dbtx.Exec(ctx, q, args...); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) ExistsForRequest(ctx context.Context, requestID uuid.UUID) (bool, error) {
	q, args, err := qb.Select("1").
		From(bookingsTable).
		Where(sq.Eq{"source_request_id": requestID.String()}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, infra.WrapRepoErr("failed to build booking exists query", err)
	}

	var exists bool
	if err := r.dbtx.QueryRow(ctx, q, args...).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check booking for request", err)
	}
	return exists, nil
}

type occupancyRow struct {
	CheckIn  time.Time `db:"check_in"`
	CheckOut time.Time `db:"check_out"`
	Status   string    `db:"status"`
}

// ListOccupying uses the same strict overlap test as availability.Window.
func (r *BookingRepository) ListOccupying(ctx context.Context, locationID uuid.UUID, w availability.Window) ([]availability.Occupancy, error) {
	return listOccupancies(ctx, r.dbtx, locationID, w)
}

func listOccupancies(ctx context.Context, dbtx db.DBTX, locationID uuid.UUID, w availability.Window) ([]availability.Occupancy, error) {
	statuses := make([]string, 0, 2)
	for _, s := range booking.CapacityHoldingStatuses() {
		statuses = append(statuses, s.String())
	}

	q, args, err := qb.Select("check_in", "check_out", "status").
		From(bookingsTable).
		Where(sq.Eq{"location_id": locationID.String(), "status": statuses}).
		Where(sq.Lt{"check_in": w.End()}).
		Where(sq.Gt{"check_out": w.Start()}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build occupancy query", err)
	}

	rows, err := dbtx.Query(ctx, q, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query occupying bookings", err)
	}
	found, err := pgx.CollectRows(rows, pgx.RowToStructByName[occupancyRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan occupying bookings", err)
	}

	out := make([]availability.Occupancy, 0, len(found))
	for _, row := range found {
		window, werr := availability.NewWindow(row.CheckIn.UTC(), row.CheckOut.UTC())
		if werr != nil {
			return nil, infra.WrapRepoErr("stored booking has an invalid window", werr)
		}
		out = append(out, availability.Occupancy{
			Window:        window,
			HoldsCapacity: booking.Status(row.Status).HoldsCapacity(),
		})
	}
	return out, nil
}

// ListOccupancies is the non-transactional variant used by read-side checks.
func ListOccupancies(ctx context.Context, dbtx db.DBTX, locationID uuid.UUID, w availability.Window) ([]availability.Occupancy, error) {
	return listOccupancies(ctx, dbtx, locationID, w)
}

// ConfirmationCodeExists reports whether code is already taken.
func ConfirmationCodeExists(ctx context.Context, dbtx db.DBTX, code string) (bool, error) {
	q, args, err := qb.Select("1").
		From(bookingsTable).
		Where(sq.Eq{"confirmation_code": code}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, infra.WrapRepoErr("failed to build confirmation code query", err)
	}
	var exists bool
	if err := dbtx.QueryRow(ctx, q, args...).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check confirmation code", err)
	}
	return exists, nil
}
