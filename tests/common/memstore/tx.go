//go:build unit

package memstore

import (
	"context"

	"parkease/internal/domain/availability"
	"parkease/internal/domain/booking"
	"parkease/internal/domain/bookingrequest"
	"parkease/internal/domain/location"
	"parkease/internal/domain/session"
	"parkease/internal/domain/user"
	"parkease/internal/usecase/shared"

	"github.com/google/uuid"
)

// memTx runs inside Store.Within, so the store lock is already held.
type memTx struct {
	s *Store
}

func (t *memTx) BookingRequests() shared.BookingRequestRepository { return requestRepo{t.s} }
func (t *memTx) Bookings() shared.BookingRepository               { return bookingRepo{t.s} }
func (t *memTx) Sessions() shared.SessionRepository               { return sessionRepo{t.s} }
func (t *memTx) Locations() shared.LocationRepository             { return locationRepo{t.s} }
func (t *memTx) Actors() shared.ActorRepository                   { return actorRepo{t.s} }

type requestRepo struct{ s *Store }

func (r requestRepo) Create(_ context.Context, req *bookingrequest.Request) error {
	if _, ok := r.s.st.requests[req.ID()]; ok {
		return shared.ErrDuplicate
	}
	r.s.st.requests[req.ID()] = *req
	return nil
}

// FindForUpdate hands out a copy so that unsaved transitions never leak
// into the store.
func (r requestRepo) FindForUpdate(_ context.Context, id uuid.UUID) (*bookingrequest.Request, error) {
	req, ok := r.s.st.requests[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return &req, nil
}

func (r requestRepo) SaveTransition(_ context.Context, req *bookingrequest.Request) error {
	if r.s.FailSaveTransition != nil {
		return r.s.FailSaveTransition
	}
	stored, ok := r.s.st.requests[req.ID()]
	if !ok {
		return shared.ErrNotFound
	}
	if stored.Status() != bookingrequest.StatusPending {
		return bookingrequest.ErrAlreadyProcessed
	}
	r.s.st.requests[req.ID()] = *req
	return nil
}

func (r requestRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.s.st.requests[id]; !ok {
		return shared.ErrNotFound
	}
	delete(r.s.st.requests, id)
	return nil
}

type bookingRepo struct{ s *Store }

func (r bookingRepo) Create(_ context.Context, b *booking.Booking) error {
	if r.s.FailBookingCreate != nil {
		return r.s.FailBookingCreate
	}
	for _, existing := range r.s.st.bookings {
		if existing.ConfirmationCode() == b.ConfirmationCode() {
			return shared.ErrDuplicate
		}
		if src := b.SourceRequestID(); src != nil && existing.SourceRequestID() != nil && *existing.SourceRequestID() == *src {
			return shared.ErrDuplicate
		}
	}
	r.s.st.bookings[b.ID()] = b
	return nil
}

func (r bookingRepo) ExistsForRequest(_ context.Context, requestID uuid.UUID) (bool, error) {
	for _, b := range r.s.st.bookings {
		if src := b.SourceRequestID(); src != nil && *src == requestID {
			return true, nil
		}
	}
	return false, nil
}

func (r bookingRepo) ListOccupying(_ context.Context, locationID uuid.UUID, w availability.Window) ([]availability.Occupancy, error) {
	var out []availability.Occupancy
	for _, b := range r.s.st.bookings {
		if b.LocationID() != locationID || !b.Status().HoldsCapacity() || !b.Window().Overlaps(w) {
			continue
		}
		out = append(out, b.Occupancy())
	}
	return out, nil
}

type sessionRepo struct{ s *Store }

func (r sessionRepo) Create(_ context.Context, sess *session.Session) error {
	if r.s.FailSessionCreate != nil {
		return r.s.FailSessionCreate
	}
	for _, existing := range r.s.st.sessions {
		if existing.BookingID() == sess.BookingID() {
			return shared.ErrDuplicate
		}
	}
	r.s.st.sessions[sess.ID()] = sess
	return nil
}

type locationRepo struct{ s *Store }

func (r locationRepo) FindByID(_ context.Context, id uuid.UUID) (*location.Location, error) {
	loc, ok := r.s.st.locations[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return loc, nil
}

func (r locationRepo) FindForUpdate(ctx context.Context, id uuid.UUID) (*location.Location, error) {
	return r.FindByID(ctx, id)
}

func (r locationRepo) ClaimSpot(_ context.Context, id uuid.UUID, next int) (int, error) {
	if r.s.FailClaimSpot != nil {
		return 0, r.s.FailClaimSpot
	}
	loc, ok := r.s.st.locations[id]
	if !ok {
		return 0, shared.ErrNotFound
	}
	updated, err := location.Reconstruct(loc.ID(), loc.OwnerID(), loc.Name(), loc.TotalSpots(), next)
	if err != nil {
		return 0, shared.ErrCapacityExhausted
	}
	r.s.st.locations[id] = updated
	return next, nil
}

type actorRepo struct{ s *Store }

func (r actorRepo) FindByID(_ context.Context, id uuid.UUID) (user.Actor, error) {
	a, ok := r.s.st.actors[id]
	if !ok {
		return user.Actor{}, shared.ErrNotFound
	}
	return a, nil
}
