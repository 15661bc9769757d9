package shared

import (
	"context"

	"parkease/internal/domain/availability"
	"parkease/internal/domain/booking"
	"parkease/internal/domain/bookingrequest"
	"parkease/internal/domain/location"
	"parkease/internal/domain/session"
	"parkease/internal/domain/user"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: one read-committed transaction; fn's error rolls everything back
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes repositories bound to a single transaction.
type Tx interface {
	BookingRequests() BookingRequestRepository
	Bookings() BookingRepository
	Sessions() SessionRepository
	Locations() LocationRepository
	Actors() ActorRepository
}

type BookingRequestRepository interface {
	Create(ctx context.Context, req *bookingrequest.Request) error
	// FindForUpdate locks the row until the transaction ends.
	FindForUpdate(ctx context.Context, id uuid.UUID) (*bookingrequest.Request, error)
	// SaveTransition persists a terminal status only if the stored row is
	// still PENDING, otherwise returns bookingrequest.ErrAlreadyProcessed.
	SaveTransition(ctx context.Context, req *bookingrequest.Request) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	ExistsForRequest(ctx context.Context, requestID uuid.UUID) (bool, error)
	// ListOccupying returns capacity-holding bookings overlapping w.
	ListOccupying(ctx context.Context, locationID uuid.UUID, w availability.Window) ([]availability.Occupancy, error)
}

type SessionRepository interface {
	Create(ctx context.Context, s *session.Session) error
}

type LocationRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*location.Location, error)
	FindForUpdate(ctx context.Context, id uuid.UUID) (*location.Location, error)
	// ClaimSpot stores next, as computed by Location.CounterAfterBooking,
	// and returns ErrCapacityExhausted when it falls outside 0..total spots.
	ClaimSpot(ctx context.Context, id uuid.UUID, next int) (int, error)
}

type ActorRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (user.Actor, error)
}
