package location

import (
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidCapacity = errors.New("available spots must be between 0 and total spots")

type Location struct {
	id             uuid.UUID
	ownerID        uuid.UUID
	name           string
	totalSpots     int
	availableSpots int
}

func Reconstruct(id, ownerID uuid.UUID, name string, totalSpots, availableSpots int) (*Location, error) {
	if totalSpots < 0 || availableSpots < 0 || availableSpots > totalSpots {
		return nil, ErrInvalidCapacity
	}
	return &Location{
		id:             id,
		ownerID:        ownerID,
		name:           name,
		totalSpots:     totalSpots,
		availableSpots: availableSpots,
	}, nil
}

// CounterAfterBooking is the value the available-spots counter takes once
// a booking is added to a window with the given remaining capacity. The
// counter follows the window check and is clamped to total spots. ok is
// false when no spot is left.
func (l *Location) CounterAfterBooking(remaining int) (next int, ok bool) {
	free := min(remaining, l.totalSpots)
	if free <= 0 {
		return 0, false
	}
	return free - 1, true
}

func (l *Location) ID() uuid.UUID       { return l.id }
func (l *Location) OwnerID() uuid.UUID  { return l.ownerID }
func (l *Location) Name() string        { return l.name }
func (l *Location) TotalSpots() int     { return l.totalSpots }
func (l *Location) AvailableSpots() int { return l.availableSpots }
