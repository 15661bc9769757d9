package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingRequestView struct {
	ID               uuid.UUID  `json:"id"`
	LocationID       uuid.UUID  `json:"location_id"`
	LocationName     string     `json:"location_name"`
	CustomerName     string     `json:"customer_name"`
	CustomerEmail    string     `json:"customer_email"`
	CustomerPhone    string     `json:"customer_phone"`
	VehiclePlate     string     `json:"vehicle_plate"`
	VehicleType      string     `json:"vehicle_type"`
	VehicleMake      string     `json:"vehicle_make"`
	VehicleModel     string     `json:"vehicle_model"`
	VehicleColor     string     `json:"vehicle_color"`
	RequestedStart   time.Time  `json:"requested_start"`
	RequestedEnd     time.Time  `json:"requested_end"`
	Kind             string     `json:"kind"`
	EstimatedCents   int64      `json:"estimated_cents"`
	Notes            string     `json:"notes"`
	Priority         string     `json:"priority"`
	Status           string     `json:"status"`
	RequestedBy      uuid.UUID  `json:"requested_by"`
	RequestedAt      time.Time  `json:"requested_at"`
	ProcessedBy      *uuid.UUID `json:"processed_by"`
	ProcessedAt      *time.Time `json:"processed_at"`
	RejectionReason  *string    `json:"rejection_reason"`
	BookingID        *uuid.UUID `json:"booking_id"`
	ConfirmationCode *string    `json:"confirmation_code"`
}

type LocationCapacityView struct {
	ID             uuid.UUID `json:"id"`
	OwnerID        uuid.UUID `json:"owner_id"`
	Name           string    `json:"name"`
	TotalSpots     int       `json:"total_spots"`
	AvailableSpots int       `json:"available_spots"`
}

type AvailabilityView struct {
	LocationID  uuid.UUID `json:"location_id"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	TotalSpots  int       `json:"total_spots"`
	Overlapping int       `json:"overlapping"`
	Remaining   int       `json:"remaining"`
	Available   bool      `json:"available"`
}

type ListFilter struct {
	Status *string
	Limit  int
	Offset int
}

// Effective returns the limit and offset actually applied: limit defaults
// to 50 and is capped at 200, offset is never negative.
func (f ListFilter) Effective() (limit, offset int) {
	limit = f.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	return min(limit, maxListLimit), max(f.Offset, 0)
}
