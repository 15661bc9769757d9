package queries

import (
	"context"
	"errors"

	"parkease/internal/domain/user"
	"parkease/internal/pkg/errs"
	"parkease/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

var (
	ErrBookingRequestNotFound = errs.New("booking request not found in read model")
	ErrForbidden              = errs.New("caller may not read booking requests of this location")
)

//go:generate mockgen -destination=../../../tests/mock/queries/booking_request_queries.go -package=queriesmock parkease/internal/usecase/queries BookingRequestQueries

type BookingRequestQueries interface {
	GetByID(ctx context.Context, id, callerID uuid.UUID) (*BookingRequestView, error)
	ListByLocation(ctx context.Context, locationID, callerID uuid.UUID, filter ListFilter) ([]*BookingRequestView, error)
}

type BookingRequestViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingRequestView, error)
	FindByLocation(ctx context.Context, locationID uuid.UUID, status *string, limit, offset int) ([]*BookingRequestView, error)
}

// ActorReader reloads the caller; tokens only carry a role hint.
type ActorReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (user.Actor, error)
}

type LocationReader interface {
	FindLocation(ctx context.Context, id uuid.UUID) (*LocationCapacityView, error)
}

type bookingRequestQueriesImpl struct {
	repo      BookingRequestViewRepo
	locations LocationReader
	actors    ActorReader
}

func NewBookingRequestQueries(repo BookingRequestViewRepo, locations LocationReader, actors ActorReader) BookingRequestQueries {
	return &bookingRequestQueriesImpl{repo: repo, locations: locations, actors: actors}
}

// GetByID answers not found to callers outside the location's tenant, so
// ids of other tenants cannot be enumerated.
func (q *bookingRequestQueriesImpl) GetByID(ctx context.Context, id, callerID uuid.UUID) (*BookingRequestView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if errors.Is(err, shared.ErrNotFound) {
		return nil, ErrBookingRequestNotFound
	}
	if err != nil {
		return nil, err
	}

	err = q.authorize(ctx, view.LocationID, callerID)
	if errors.Is(err, ErrForbidden) || errors.Is(err, ErrLocationNotFound) {
		return nil, ErrBookingRequestNotFound
	}
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *bookingRequestQueriesImpl) ListByLocation(ctx context.Context, locationID, callerID uuid.UUID, filter ListFilter) ([]*BookingRequestView, error) {
	if err := q.authorize(ctx, locationID, callerID); err != nil {
		return nil, err
	}

	limit, offset := filter.Effective()
	rows, err := q.repo.FindByLocation(ctx, locationID, filter.Status, limit, offset)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []*BookingRequestView{}
	}
	return rows, nil
}

// authorize lets staff of the owning tenant read; an unknown caller is
// treated as forbidden.
func (q *bookingRequestQueriesImpl) authorize(ctx context.Context, locationID, callerID uuid.UUID) error {
	loc, err := q.locations.FindLocation(ctx, locationID)
	if errors.Is(err, shared.ErrNotFound) {
		return ErrLocationNotFound
	}
	if err != nil {
		return err
	}

	actor, err := q.actors.FindByID(ctx, callerID)
	if errors.Is(err, shared.ErrNotFound) {
		return ErrForbidden
	}
	if err != nil {
		return err
	}
	if !actor.CanSubmit(loc.OwnerID) {
		return ErrForbidden
	}
	return nil
}
