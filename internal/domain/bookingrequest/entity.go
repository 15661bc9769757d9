package bookingrequest

import (
	"strings"
	"time"

	"parkease/internal/domain/availability"

	"github.com/google/uuid"
)

type Request struct {
	id              uuid.UUID
	locationID      uuid.UUID
	customer        Customer
	vehicle         Vehicle
	window          availability.Window
	kind            Kind
	estimated       Money
	notes           Notes
	priority        Priority
	status          Status
	requestedBy     uuid.UUID
	requestedAt     time.Time
	processedBy     *uuid.UUID
	processedAt     *time.Time
	rejectionReason *string
}

type NewParams struct {
	LocationID uuid.UUID
	Customer   Customer
	Vehicle    Vehicle
	Window     availability.Window
	Kind       Kind
	Estimated  Money
	Notes      Notes
	Priority   Priority
}

func NewRequest(p NewParams, requestedBy uuid.UUID, now time.Time) *Request {
	kind := p.Kind
	if kind == "" {
		kind = KindNew
	}
	priority := p.Priority
	if priority == "" {
		priority = PriorityNormal
	}
	return &Request{
		id:          uuid.New(),
		locationID:  p.LocationID,
		customer:    p.Customer,
		vehicle:     p.Vehicle,
		window:      p.Window,
		kind:        kind,
		estimated:   p.Estimated,
		notes:       p.Notes,
		priority:    priority,
		status:      StatusPending,
		requestedBy: requestedBy,
		requestedAt: now,
	}
}

type ReconstructParams struct {
	NewParams
	ID              uuid.UUID
	Status          Status
	RequestedBy     uuid.UUID
	RequestedAt     time.Time
	ProcessedBy     *uuid.UUID
	ProcessedAt     *time.Time
	RejectionReason *string
}

func Reconstruct(p ReconstructParams) *Request {
	return &Request{
		id:              p.ID,
		locationID:      p.LocationID,
		customer:        p.Customer,
		vehicle:         p.Vehicle,
		window:          p.Window,
		kind:            p.Kind,
		estimated:       p.Estimated,
		notes:           p.Notes,
		priority:        p.Priority,
		status:          p.Status,
		requestedBy:     p.RequestedBy,
		requestedAt:     p.RequestedAt,
		processedBy:     p.ProcessedBy,
		processedAt:     p.ProcessedAt,
		rejectionReason: p.RejectionReason,
	}
}

func (r *Request) Approve(actorID uuid.UUID, now time.Time) error {
	if err := r.ensurePending(); err != nil {
		return err
	}
	r.finish(StatusApproved, actorID, now)
	return nil
}

// Reject checks the reason before the status so a blank reason never
// reaches storage.
func (r *Request) Reject(actorID uuid.UUID, reason string, now time.Time) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrMissingReason
	}
	if err := r.ensurePending(); err != nil {
		return err
	}
	r.finish(StatusRejected, actorID, now)
	r.rejectionReason = &reason
	return nil
}

func (r *Request) Cancel(actorID uuid.UUID, now time.Time) error {
	if err := r.ensurePending(); err != nil {
		return err
	}
	r.finish(StatusCancelled, actorID, now)
	return nil
}

func (r *Request) ensurePending() error {
	if r.status != StatusPending {
		return ErrAlreadyProcessed
	}
	return nil
}

func (r *Request) finish(status Status, actorID uuid.UUID, now time.Time) {
	r.status = status
	r.processedBy = &actorID
	r.processedAt = &now
}

func (r *Request) IsPending() bool { return r.status == StatusPending }

func (r *Request) ID() uuid.UUID               { return r.id }
func (r *Request) LocationID() uuid.UUID       { return r.locationID }
func (r *Request) Customer() Customer          { return r.customer }
func (r *Request) Vehicle() Vehicle            { return r.vehicle }
func (r *Request) Window() availability.Window { return r.window }
func (r *Request) Kind() Kind                  { return r.kind }
func (r *Request) Estimated() Money            { return r.estimated }
func (r *Request) Notes() Notes                { return r.notes }
func (r *Request) Priority() Priority          { return r.priority }
func (r *Request) Status() Status              { return r.status }
func (r *Request) RequestedBy() uuid.UUID      { return r.requestedBy }
func (r *Request) RequestedAt() time.Time      { return r.requestedAt }
func (r *Request) ProcessedBy() *uuid.UUID     { return r.processedBy }
func (r *Request) ProcessedAt() *time.Time     { return r.processedAt }
func (r *Request) RejectionReason() *string    { return r.rejectionReason }
