package session

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusReserved   Status = "RESERVED"
	StatusCheckedIn  Status = "CHECKED_IN"
	StatusCheckedOut Status = "CHECKED_OUT"
	StatusOverstay   Status = "OVERSTAY"
)

func (s Status) String() string {
	return string(s)
}

// Session tracks on-site check-in and check-out for exactly one booking.
type Session struct {
	id         uuid.UUID
	bookingID  uuid.UUID
	locationID uuid.UUID
	status     Status
	checkInAt  *time.Time
	checkOutAt *time.Time
	createdAt  time.Time
}

func NewReserved(bookingID, locationID uuid.UUID, now time.Time) *Session {
	return &Session{
		id:         uuid.New(),
		bookingID:  bookingID,
		locationID: locationID,
		status:     StatusReserved,
		createdAt:  now,
	}
}

func Reconstruct(id, bookingID, locationID uuid.UUID, status Status, checkInAt, checkOutAt *time.Time, createdAt time.Time) *Session {
	return &Session{
		id:         id,
		bookingID:  bookingID,
		locationID: locationID,
		status:     status,
		checkInAt:  checkInAt,
		checkOutAt: checkOutAt,
		createdAt:  createdAt,
	}
}

func (s *Session) ID() uuid.UUID          { return s.id }
func (s *Session) BookingID() uuid.UUID   { return s.bookingID }
func (s *Session) LocationID() uuid.UUID  { return s.locationID }
func (s *Session) Status() Status         { return s.status }
func (s *Session) CheckInAt() *time.Time  { return s.checkInAt }
func (s *Session) CheckOutAt() *time.Time { return s.checkOutAt }
func (s *Session) CreatedAt() time.Time   { return s.createdAt }
