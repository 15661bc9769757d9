//go:build unit || e2e

package builder

import (
	"strings"
	"time"

	"parkease/internal/domain/availability"
	"parkease/internal/domain/bookingrequest"
	reqdto "parkease/internal/handler/dto/request"
	"parkease/internal/usecase/commands"
	"parkease/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingRequestBuilder struct {
	LocationID     uuid.UUID
	CustomerName   string
	CustomerEmail  string
	CustomerPhone  string
	Plate          string
	VehicleType    string
	VehicleMake    string
	VehicleModel   string
	VehicleColor   string
	Start          time.Time
	End            time.Time
	Kind           string
	EstimatedCents int64
	Notes          string
	Priority       string
	RequestedBy    uuid.UUID
	RequestedAt    time.Time
}

func NewBookingRequestBuilder() *BookingRequestBuilder {
	start := time.Date(2030, 1, 15, 9, 0, 0, 0, time.UTC)
	return &BookingRequestBuilder{
		LocationID:     uuid.New(),
		CustomerName:   "Jane Q Public",
		CustomerEmail:  "jane@example.com",
		CustomerPhone:  "+15550100",
		Plate:          "abc 123",
		VehicleType:    "car",
		VehicleMake:    "Toyota",
		VehicleModel:   "Corolla",
		VehicleColor:   "Blue",
		Start:          start,
		End:            start.Add(2 * time.Hour),
		Kind:           "NEW",
		EstimatedCents: 2000,
		Notes:          "walk-in",
		Priority:       "NORMAL",
		RequestedBy:    uuid.New(),
		RequestedAt:    start.Add(-24 * time.Hour),
	}
}

func (b *BookingRequestBuilder) With(mutate func(*BookingRequestBuilder)) *BookingRequestBuilder {
	mutate(b)
	return b
}

func (b *BookingRequestBuilder) BuildParams() (bookingrequest.NewParams, error) {
	customer, err := bookingrequest.NewCustomer(b.CustomerName, b.CustomerEmail, b.CustomerPhone)
	if err != nil {
		return bookingrequest.NewParams{}, err
	}
	vehicle, err := bookingrequest.NewVehicle(b.Plate, b.VehicleType, b.VehicleMake, b.VehicleModel, b.VehicleColor)
	if err != nil {
		return bookingrequest.NewParams{}, err
	}
	window, err := availability.NewWindow(b.Start, b.End)
	if err != nil {
		return bookingrequest.NewParams{}, err
	}
	kind, err := bookingrequest.NewKind(b.Kind)
	if err != nil {
		return bookingrequest.NewParams{}, err
	}
	priority, err := bookingrequest.NewPriority(b.Priority)
	if err != nil {
		return bookingrequest.NewParams{}, err
	}
	amount, err := bookingrequest.NewMoney(b.EstimatedCents)
	if err != nil {
		return bookingrequest.NewParams{}, err
	}
	notes, err := bookingrequest.NewNotes(b.Notes)
	if err != nil {
		return bookingrequest.NewParams{}, err
	}
	return bookingrequest.NewParams{
		LocationID: b.LocationID,
		Customer:   customer,
		Vehicle:    vehicle,
		Window:     window,
		Kind:       kind,
		Estimated:  amount,
		Notes:      notes,
		Priority:   priority,
	}, nil
}

func (b *BookingRequestBuilder) BuildDomain() (*bookingrequest.Request, error) {
	params, err := b.BuildParams()
	if err != nil {
		return nil, err
	}
	return bookingrequest.NewRequest(params, b.RequestedBy, b.RequestedAt), nil
}

// Fluent builder methods
func (b *BookingRequestBuilder) WithLocation(id uuid.UUID) *BookingRequestBuilder {
	b.LocationID = id
	return b
}

func (b *BookingRequestBuilder) WithWindow(start, end time.Time) *BookingRequestBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *BookingRequestBuilder) WithCustomerName(name string) *BookingRequestBuilder {
	b.CustomerName = name
	return b
}

func (b *BookingRequestBuilder) WithEstimatedCents(cents int64) *BookingRequestBuilder {
	b.EstimatedCents = cents
	return b
}

func (b *BookingRequestBuilder) WithRequestedBy(id uuid.UUID) *BookingRequestBuilder {
	b.RequestedBy = id
	return b
}

func (b *BookingRequestBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		LocationID:     b.LocationID,
		CustomerName:   b.CustomerName,
		CustomerEmail:  &b.CustomerEmail,
		CustomerPhone:  &b.CustomerPhone,
		VehiclePlate:   b.Plate,
		VehicleType:    ptr(strings.ToUpper(b.VehicleType)),
		VehicleMake:    &b.VehicleMake,
		VehicleModel:   &b.VehicleModel,
		VehicleColor:   &b.VehicleColor,
		Start:          b.Start,
		End:            b.End,
		Kind:           &b.Kind,
		EstimatedCents: b.EstimatedCents,
		Notes:          &b.Notes,
		Priority:       &b.Priority,
	}
}

func (b *BookingRequestBuilder) BuildInput() commands.CreateBookingRequestInput {
	return b.BuildCreateRequestDTO().ToInput()
}

// BuildView mirrors what the read store returns for a pending request.
func (b *BookingRequestBuilder) BuildView() *queries.BookingRequestView {
	return &queries.BookingRequestView{
		ID:             uuid.New(),
		LocationID:     b.LocationID,
		LocationName:   "Harbor Lot",
		CustomerName:   b.CustomerName,
		CustomerEmail:  b.CustomerEmail,
		CustomerPhone:  b.CustomerPhone,
		VehiclePlate:   strings.ToUpper(b.Plate),
		VehicleType:    strings.ToUpper(b.VehicleType),
		VehicleMake:    b.VehicleMake,
		VehicleModel:   b.VehicleModel,
		VehicleColor:   b.VehicleColor,
		RequestedStart: b.Start,
		RequestedEnd:   b.End,
		Kind:           b.Kind,
		EstimatedCents: b.EstimatedCents,
		Notes:          b.Notes,
		Priority:       b.Priority,
		Status:         "PENDING",
		RequestedBy:    b.RequestedBy,
		RequestedAt:    b.RequestedAt,
	}
}

func ptr[T any](v T) *T { return &v }
