//go:build unit

// Package memstore is an in-memory shared.UnitOfWork for lifecycle tests.
// Transactions run one at a time, which stands in for the row locks the
// Postgres implementation takes, and a failed transaction leaves no trace.
package memstore

import (
	"context"
	"maps"
	"sync"

	"parkease/internal/domain/booking"
	"parkease/internal/domain/bookingrequest"
	"parkease/internal/domain/location"
	"parkease/internal/domain/session"
	"parkease/internal/domain/user"
	"parkease/internal/usecase/shared"

	"github.com/google/uuid"
)

type state struct {
	requests  map[uuid.UUID]bookingrequest.Request
	bookings  map[uuid.UUID]*booking.Booking
	sessions  map[uuid.UUID]*session.Session
	locations map[uuid.UUID]*location.Location
	actors    map[uuid.UUID]user.Actor
}

func (s state) clone() state {
	return state{
		requests:  maps.Clone(s.requests),
		bookings:  maps.Clone(s.bookings),
		sessions:  maps.Clone(s.sessions),
		locations: maps.Clone(s.locations),
		actors:    maps.Clone(s.actors),
	}
}

type Store struct {
	mu sync.Mutex
	st state

	// Injected failures, returned by the matching repository call.
	FailClaimSpot      error
	FailSessionCreate  error
	FailBookingCreate  error
	FailSaveTransition error

	commits   int
	rollbacks int
}

var _ shared.UnitOfWork = (*Store)(nil)

func New() *Store {
	return &Store{st: state{
		requests:  map[uuid.UUID]bookingrequest.Request{},
		bookings:  map[uuid.UUID]*booking.Booking{},
		sessions:  map[uuid.UUID]*session.Session{},
		locations: map[uuid.UUID]*location.Location{},
		actors:    map[uuid.UUID]user.Actor{},
	}}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.st.clone()
	if err := fn(ctx, &memTx{s: s}); err != nil {
		s.st = snapshot
		s.rollbacks++
		return err
	}
	s.commits++
	return nil
}

// Seeding and inspection helpers. They take the same lock as transactions.

func (s *Store) AddActor(a user.Actor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.actors[a.ID] = a
}

func (s *Store) AddLocation(l *location.Location) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.locations[l.ID()] = l
}

func (s *Store) AddRequest(r *bookingrequest.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.requests[r.ID()] = *r
}

func (s *Store) AddBooking(b *booking.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.bookings[b.ID()] = b
}

func (s *Store) Request(id uuid.UUID) (*bookingrequest.Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.st.requests[id]
	return &r, ok
}

func (s *Store) Location(id uuid.UUID) *location.Location {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.locations[id]
}

func (s *Store) Bookings() []*booking.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return collect(s.st.bookings)
}

func (s *Store) Sessions() []*session.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return collect(s.st.sessions)
}

func (s *Store) Commits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commits
}

func (s *Store) Rollbacks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rollbacks
}

func collect[T any](m map[uuid.UUID]T) []T {
	out := make([]T, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	return out
}
