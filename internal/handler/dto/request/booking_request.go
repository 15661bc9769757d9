package request

import (
	"strings"
	"time"

	"parkease/internal/pkg/patch"
	"parkease/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	LocationID     uuid.UUID `json:"location_id" binding:"required"`
	CustomerName   string    `json:"customer_name" binding:"required,max=200"`
	CustomerEmail  *string   `json:"customer_email" binding:"omitempty,email,max=254"`
	CustomerPhone  *string   `json:"customer_phone" binding:"omitempty,max=32"`
	VehiclePlate   string    `json:"vehicle_plate" binding:"required,plate"`
	VehicleType    *string   `json:"vehicle_type" binding:"omitempty,oneof=CAR MOTORCYCLE VAN TRUCK"`
	VehicleMake    *string   `json:"vehicle_make" binding:"omitempty,max=64"`
	VehicleModel   *string   `json:"vehicle_model" binding:"omitempty,max=64"`
	VehicleColor   *string   `json:"vehicle_color" binding:"omitempty,max=32"`
	Start          time.Time `json:"start" binding:"required"`
	End            time.Time `json:"end" binding:"required,gtfield=Start"`
	Kind           *string   `json:"kind" binding:"omitempty,oneof=NEW EXTENSION MODIFICATION"`
	EstimatedCents int64     `json:"estimated_cents" binding:"min=0"`
	Notes          *string   `json:"notes" binding:"omitempty,max=2000"`
	Priority       *string   `json:"priority" binding:"omitempty,oneof=LOW NORMAL HIGH URGENT"`
}

func (r CreateBookingRequest) ToInput() commands.CreateBookingRequestInput {
	return commands.CreateBookingRequestInput{
		LocationID:     r.LocationID,
		CustomerName:   strings.TrimSpace(r.CustomerName),
		CustomerEmail:  strings.TrimSpace(patch.Coalesce(r.CustomerEmail, "")),
		CustomerPhone:  strings.TrimSpace(patch.Coalesce(r.CustomerPhone, "")),
		VehiclePlate:   r.VehiclePlate,
		VehicleType:    patch.Coalesce(r.VehicleType, ""),
		VehicleMake:    patch.Coalesce(r.VehicleMake, ""),
		VehicleModel:   patch.Coalesce(r.VehicleModel, ""),
		VehicleColor:   patch.Coalesce(r.VehicleColor, ""),
		Start:          r.Start,
		End:            r.End,
		Kind:           patch.Coalesce(r.Kind, ""),
		EstimatedCents: r.EstimatedCents,
		Notes:          strings.TrimSpace(patch.Coalesce(r.Notes, "")),
		Priority:       patch.Coalesce(r.Priority, ""),
	}
}

// Reason is not required at binding time; the lifecycle rejects a blank
// reason with its own error so the client sees one consistent message.
type RejectBookingRequest struct {
	Reason string `json:"reason" binding:"max=1000"`
}

type AvailabilityQuery struct {
	Start time.Time `form:"start" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	End   time.Time `form:"end" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
}

type ListBookingRequestsQuery struct {
	Status *string `form:"status" binding:"omitempty,oneof=PENDING APPROVED REJECTED CANCELLED"`
	Limit  int     `form:"limit" binding:"omitempty,min=1,max=200"`
	Offset int     `form:"offset" binding:"omitempty,min=0"`
}
