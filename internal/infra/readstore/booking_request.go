package readstore

import (
	"context"
	"time"

	"parkease/internal/infra"
	"parkease/internal/infra/db"
	"parkease/internal/pkg/pgconv"
	"parkease/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type bookingRequestViewRow struct {
	ID               uuid.UUID          `db:"id"`
	LocationID       uuid.UUID          `db:"location_id"`
	LocationName     string             `db:"location_name"`
	CustomerName     string             `db:"customer_name"`
	CustomerEmail    string             `db:"customer_email"`
	CustomerPhone    string             `db:"customer_phone"`
	VehiclePlate     string             `db:"vehicle_plate"`
	VehicleType      string             `db:"vehicle_type"`
	VehicleMake      string             `db:"vehicle_make"`
	VehicleModel     string             `db:"vehicle_model"`
	VehicleColor     string             `db:"vehicle_color"`
	RequestedStart   time.Time          `db:"requested_start"`
	RequestedEnd     time.Time          `db:"requested_end"`
	Kind             string             `db:"kind"`
	EstimatedCents   int64              `db:"estimated_cents"`
	Notes            string             `db:"notes"`
	Priority         string             `db:"priority"`
	Status           string             `db:"status"`
	RequestedBy      uuid.UUID          `db:"requested_by"`
	RequestedAt      time.Time          `db:"requested_at"`
	ProcessedBy      pgtype.UUID        `db:"processed_by"`
	ProcessedAt      pgtype.Timestamptz `db:"processed_at"`
	RejectionReason  pgtype.Text        `db:"rejection_reason"`
	BookingID        pgtype.UUID        `db:"booking_id"`
	ConfirmationCode pgtype.Text        `db:"confirmation_code"`
}

type BookingRequestReadStore struct {
	db db.DBTX
}

func NewBookingRequestReadStore(dbtx db.DBTX) *BookingRequestReadStore {
	return &BookingRequestReadStore{db: dbtx}
}

func (r *BookingRequestReadStore) baseQuery() sq.SelectBuilder {
	return qb.Select(
		"br.id", "br.location_id", "pl.name AS location_name",
		"br.customer_name", "br.customer_email", "br.customer_phone",
		"br.vehicle_plate", "br.vehicle_type", "br.vehicle_make", "br.vehicle_model", "br.vehicle_color",
		"br.requested_start", "br.requested_end",
		"br.kind", "br.estimated_cents", "br.notes", "br.priority", "br.status",
		"br.requested_by", "br.requested_at", "br.processed_by", "br.processed_at", "br.rejection_reason",
		"b.id AS booking_id", "b.confirmation_code",
	).
		From("booking_requests br").
		Join("parking_locations pl ON pl.id = br.location_id").
		LeftJoin("bookings b ON b.source_request_id = br.id")
}

func (r *BookingRequestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingRequestView, error) {
	q, args, err := r.baseQuery().Where(sq.Eq{"br.id": id.String()}).ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking request view query", err)
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get booking request view by id", err)
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[bookingRequestViewRow])
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan booking request view", err)
	}
	return row.toView(), nil
}

func (r *BookingRequestReadStore) FindByLocation(ctx context.Context, locationID uuid.UUID, status *string, limit, offset int) ([]*queries.BookingRequestView, error) {
	b := r.baseQuery().Where(sq.Eq{"br.location_id": locationID.String()})
	if status != nil {
		b = b.Where(sq.Eq{"br.status": *status})
	}
	q, args, err := b.OrderBy("br.requested_at DESC", "br.id").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking request list query", err)
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking requests by location", err)
	}
	found, err := pgx.CollectRows(rows, pgx.RowToStructByName[bookingRequestViewRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan booking request list", err)
	}

	views := make([]*queries.BookingRequestView, 0, len(found))
	for _, row := range found {
		views = append(views, row.toView())
	}
	return views, nil
}

func (row bookingRequestViewRow) toView() *queries.BookingRequestView {
	return &queries.BookingRequestView{
		ID:               row.ID,
		LocationID:       row.LocationID,
		LocationName:     row.LocationName,
		CustomerName:     row.CustomerName,
		CustomerEmail:    row.CustomerEmail,
		CustomerPhone:    row.CustomerPhone,
		VehiclePlate:     row.VehiclePlate,
		VehicleType:      row.VehicleType,
		VehicleMake:      row.VehicleMake,
		VehicleModel:     row.VehicleModel,
		VehicleColor:     row.VehicleColor,
		RequestedStart:   row.RequestedStart.UTC(),
		RequestedEnd:     row.RequestedEnd.UTC(),
		Kind:             row.Kind,
		EstimatedCents:   row.EstimatedCents,
		Notes:            row.Notes,
		Priority:         row.Priority,
		Status:           row.Status,
		RequestedBy:      row.RequestedBy,
		RequestedAt:      row.RequestedAt.UTC(),
		ProcessedBy:      pgconv.UUIDPtrFromPgtype(row.ProcessedBy),
		ProcessedAt:      pgconv.TimePtrFromPgtype(row.ProcessedAt),
		RejectionReason:  pgconv.StringPtrFromPgtype(row.RejectionReason),
		BookingID:        pgconv.UUIDPtrFromPgtype(row.BookingID),
		ConfirmationCode: pgconv.StringPtrFromPgtype(row.ConfirmationCode),
	}
}
