package repository

import (
	"context"
	"time"

	"parkease/internal/domain/availability"
	"parkease/internal/domain/bookingrequest"
	"parkease/internal/infra"
	"parkease/internal/infra/db"
	"parkease/internal/pkg/pgconv"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var bookingRequestColumns = []string{
	"id", "location_id",
	"customer_name", "customer_email", "customer_phone",
	"vehicle_plate", "vehicle_type", "vehicle_make", "vehicle_model", "vehicle_color",
	"requested_start", "requested_end",
	"kind", "estimated_cents", "notes", "priority", "status",
	"requested_by", "requested_at", "processed_by", "processed_at", "rejection_reason",
}

type bookingRequestRow struct {
	ID              uuid.UUID          `db:"id"`
	LocationID      uuid.UUID          `db:"location_id"`
	CustomerName    string             `db:"customer_name"`
	CustomerEmail   string             `db:"customer_email"`
	CustomerPhone   string             `db:"customer_phone"`
	VehiclePlate    string             `db:"vehicle_plate"`
	VehicleType     string             `db:"vehicle_type"`
	VehicleMake     string             `db:"vehicle_make"`
	VehicleModel    string             `db:"vehicle_model"`
	VehicleColor    string             `db:"vehicle_color"`
	RequestedStart  time.Time          `db:"requested_start"`
	RequestedEnd    time.Time          `db:"requested_end"`
	Kind            string             `db:"kind"`
	EstimatedCents  int64              `db:"estimated_cents"`
	Notes           string             `db:"notes"`
	Priority        string             `db:"priority"`
	Status          string             `db:"status"`
	RequestedBy     uuid.UUID          `db:"requested_by"`
	RequestedAt     time.Time          `db:"requested_at"`
	ProcessedBy     pgtype.UUID        `db:"processed_by"`
	ProcessedAt     pgtype.Timestamptz `db:"processed_at"`
	RejectionReason pgtype.Text        `db:"rejection_reason"`
}

type BookingRequestRepository struct {
	dbtx db.DBTX
}

func NewBookingRequestRepository(dbtx db.DBTX) *BookingRequestRepository {
	return &BookingRequestRepository{dbtx: dbtx}
}

func (r *BookingRequestRepository) Create(ctx context.Context, req *bookingrequest.Request) error {
	c, v, w := req.Customer(), req.Vehicle(), req.Window()
	q, args, err := qb.Insert(bookingRequestsTable).
		Columns(bookingRequestColumns...).
		Values(
			req.ID(), req.LocationID(),
			c.Name, c.Email, c.Phone,
			v.Plate, v.Type, v.Make, v.Model, v.Color,
			w.Start(), w.End(),
			req.Kind().String(), req.Estimated().Cents(), req.Notes().Value(), req.Priority().String(), req.Status().String(),
			req.RequestedBy(), req.RequestedAt(),
			pgconv.UUIDToPgtype(req.ProcessedBy()),
			pgconv.TimeToPgtype(req.ProcessedAt()),
			pgconv.StringToPgtype(req.RejectionReason()),
		).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build booking request insert", err)
	}
	if _, err := r.dbtx.Exec(ctx, q, args...); err != nil {
		return infra.WrapRepoErr("failed to create booking request", err)
	}
	return nil
}

func (r *BookingRequestRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*bookingrequest.Request, error) {
	q, args, err := qb.Select(bookingRequestColumns...).
		From(bookingRequestsTable).
		Where(sq.Eq{"id": id.String()}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking request select", err)
	}

	rows, err := r.dbtx.Query(ctx, q, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query booking request", err)
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[bookingRequestRow])
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan booking request", err)
	}
	return row.toDomain()
}

// SaveTransition only touches rows that are still PENDING.
func (r *BookingRequestRepository) SaveTransition(ctx context.Context, req *bookingrequest.Request) error {
	q, args, err := qb.Update(bookingRequestsTable).
		Set("status", req.Status().String()).
		Set("processed_by", pgconv.UUIDToPgtype(req.ProcessedBy())).
		Set("processed_at", pgconv.TimeToPgtype(req.ProcessedAt())).
		Set("rejection_reason", pgconv.StringToPgtype(req.RejectionReason())).
		Where(sq.Eq{"id": req.ID().String(), "status": bookingrequest.StatusPending.String()}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build booking request update", err)
	}

	tag, err := r.dbtx.Exec(ctx, q, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking request status", err)
	}
	if tag.RowsAffected() == 0 {
		return bookingrequest.ErrAlreadyProcessed
	}
	return nil
}

func (r *BookingRequestRepository) Delete(ctx context.Context, id uuid.UUID) error {
	q, args, err := qb.Delete(bookingRequestsTable).Where(sq.Eq{"id": id.String()}).ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build booking request delete", err)
	}
	tag, err := r.dbtx.Exec(ctx, q, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking request", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking request not found", nil, infra.KindNotFound)
	}
	return nil
}

func (row bookingRequestRow) toDomain() (*bookingrequest.Request, error) {
	window, err := availability.NewWindow(row.RequestedStart.UTC(), row.RequestedEnd.UTC())
	if err != nil {
		return nil, infra.WrapRepoErr("stored booking request has an invalid window", err)
	}
	amount, err := bookingrequest.NewMoney(row.EstimatedCents)
	if err != nil {
		return nil, infra.WrapRepoErr("stored booking request has a negative amount", err)
	}
	notes, err := bookingrequest.NewNotes(row.Notes)
	if err != nil {
		return nil, infra.WrapRepoErr("stored booking request has invalid notes", err)
	}

	return bookingrequest.Reconstruct(bookingrequest.ReconstructParams{
		NewParams: bookingrequest.NewParams{
			LocationID: row.LocationID,
			Customer: bookingrequest.Customer{
				Name:  row.CustomerName,
				Email: row.CustomerEmail,
				Phone: row.CustomerPhone,
			},
			Vehicle: bookingrequest.Vehicle{
				Plate: row.VehiclePlate,
				Type:  row.VehicleType,
				Make:  row.VehicleMake,
				Model: row.VehicleModel,
				Color: row.VehicleColor,
			},
			Window:    window,
			Kind:      bookingrequest.Kind(row.Kind),
			Estimated: amount,
			Notes:     notes,
			Priority:  bookingrequest.Priority(row.Priority),
		},
		ID:              row.ID,
		Status:          bookingrequest.Status(row.Status),
		RequestedBy:     row.RequestedBy,
		RequestedAt:     row.RequestedAt.UTC(),
		ProcessedBy:     pgconv.UUIDPtrFromPgtype(row.ProcessedBy),
		ProcessedAt:     pgconv.TimePtrFromPgtype(row.ProcessedAt),
		RejectionReason: pgconv.StringPtrFromPgtype(row.RejectionReason),
	}), nil
}
