package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"parkease/internal/domain/availability"
	"parkease/internal/domain/bookingrequest"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

var (
	ErrRequestNotApproved    = errors.New("booking can only be created from an approved request")
	ErrEmptyConfirmationCode = errors.New("confirmation code is required")
	ErrInvalidStatus         = errors.New("invalid booking status")
)

const (
	defaultFirstName = "Guest"
	defaultLastName  = "User"
)

// CodeGenerator issues confirmation codes that are unique with
// overwhelming probability; collisions are the generator's concern.
type CodeGenerator interface {
	Generate(ctx context.Context) (string, error)
}

type Guest struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// VehicleSnapshot is copied from the request at approval time.
type VehicleSnapshot struct {
	Plate string
	Type  string
	Make  string
	Model string
	Color string
}

type Booking struct {
	id               uuid.UUID
	locationID       uuid.UUID
	sourceRequestID  *uuid.UUID
	window           availability.Window
	guest            Guest
	vehicle          VehicleSnapshot
	pricing          Pricing
	status           Status
	confirmationCode string
	createdAt        time.Time
}

// SplitName takes the first token as first name and the rest as last name.
func SplitName(full string) (first, last string) {
	parts := strings.Fields(full)
	first, last = defaultFirstName, defaultLastName
	if len(parts) > 0 {
		first = parts[0]
	}
	if len(parts) > 1 {
		last = strings.Join(parts[1:], " ")
	}
	return first, last
}

func FromApprovedRequest(req *bookingrequest.Request, code string, policy PricingPolicy, now time.Time) (*Booking, error) {
	if req.Status() != bookingrequest.StatusApproved {
		return nil, ErrRequestNotApproved
	}
	if strings.TrimSpace(code) == "" {
		return nil, ErrEmptyConfirmationCode
	}

	var vehicle VehicleSnapshot
	if err := copier.Copy(&vehicle, req.Vehicle()); err != nil {
		return nil, err
	}

	customer := req.Customer()
	first, last := SplitName(customer.Name)
	sourceID := req.ID()

	return &Booking{
		id:              uuid.New(),
		locationID:      req.LocationID(),
		sourceRequestID: &sourceID,
		window:          req.Window(),
		guest: Guest{
			FirstName: first,
			LastName:  last,
			Email:     customer.Email,
			Phone:     customer.Phone,
		},
		vehicle:          vehicle,
		pricing:          policy.Price(req.Estimated()),
		status:           StatusConfirmed,
		confirmationCode: code,
		createdAt:        now,
	}, nil
}

type ReconstructParams struct {
	ID               uuid.UUID
	LocationID       uuid.UUID
	SourceRequestID  *uuid.UUID
	Window           availability.Window
	Guest            Guest
	Vehicle          VehicleSnapshot
	Pricing          Pricing
	Status           Status
	ConfirmationCode string
	CreatedAt        time.Time
}

func Reconstruct(p ReconstructParams) *Booking {
	return &Booking{
		id:               p.ID,
		locationID:       p.LocationID,
		sourceRequestID:  p.SourceRequestID,
		window:           p.Window,
		guest:            p.Guest,
		vehicle:          p.Vehicle,
		pricing:          p.Pricing,
		status:           p.Status,
		confirmationCode: p.ConfirmationCode,
		createdAt:        p.CreatedAt,
	}
}

func (b *Booking) Occupancy() availability.Occupancy {
	return availability.Occupancy{Window: b.window, HoldsCapacity: b.status.HoldsCapacity()}
}

func (b *Booking) ID() uuid.UUID               { return b.id }
func (b *Booking) LocationID() uuid.UUID       { return b.locationID }
func (b *Booking) SourceRequestID() *uuid.UUID { return b.sourceRequestID }
func (b *Booking) Window() availability.Window { return b.window }
func (b *Booking) Guest() Guest                { return b.guest }
func (b *Booking) Vehicle() VehicleSnapshot    { return b.vehicle }
func (b *Booking) Pricing() Pricing            { return b.pricing }
func (b *Booking) Status() Status              { return b.status }
func (b *Booking) ConfirmationCode() string    { return b.confirmationCode }
func (b *Booking) CreatedAt() time.Time        { return b.createdAt }
