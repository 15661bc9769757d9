package commands

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"parkease/internal/domain/availability"
	"parkease/internal/domain/booking"
	"parkease/internal/domain/bookingrequest"
	"parkease/internal/domain/location"
	"parkease/internal/domain/session"
	"parkease/internal/domain/user"
	"parkease/internal/pkg/clock"
	"parkease/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=../../../tests/mock/commands/booking_request_commands.go -package=commandsmock parkease/internal/usecase/commands BookingRequestCommands

type BookingRequestCommands interface {
	Create(ctx context.Context, input CreateBookingRequestInput, actorID uuid.UUID) (*CreateBookingRequestResult, error)
	Approve(ctx context.Context, requestID, approverID uuid.UUID) (*ApproveResult, error)
	Reject(ctx context.Context, requestID, approverID uuid.UUID, reason string) error
	Cancel(ctx context.Context, requestID, actorID uuid.UUID) error
	Delete(ctx context.Context, requestID, actorID uuid.UUID) error
}

type CreateBookingRequestInput struct {
	LocationID     uuid.UUID
	CustomerName   string
	CustomerEmail  string
	CustomerPhone  string
	VehiclePlate   string
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
}

type CreateBookingRequestResult struct {
	RequestID uuid.UUID
	Status    bookingrequest.Status
}

type ApproveResult struct {
	RequestID        uuid.UUID
	BookingID        uuid.UUID
	SessionID        uuid.UUID
	ConfirmationCode string
	AvailableSpots   int
}

type Deps struct {
	UoW           shared.UnitOfWork
	Codes         booking.CodeGenerator
	Notifier      shared.Notifier
	Clock         clock.Clock
	Pricing       booking.PricingPolicy
	NotifyTimeout time.Duration
}

type bookingRequestUseCaseImpl struct {
	uow           shared.UnitOfWork
	codes         booking.CodeGenerator
	notifier      shared.Notifier
	clock         clock.Clock
	pricing       booking.PricingPolicy
	notifyTimeout time.Duration
}

func NewBookingRequestUseCase(d Deps) BookingRequestCommands {
	timeout := d.NotifyTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &bookingRequestUseCaseImpl{
		uow:           d.UoW,
		codes:         d.Codes,
		notifier:      d.Notifier,
		clock:         d.Clock,
		pricing:       d.Pricing,
		notifyTimeout: timeout,
	}
}

func (uc *bookingRequestUseCaseImpl) Create(ctx context.Context, input CreateBookingRequestInput, actorID uuid.UUID) (*CreateBookingRequestResult, error) {
	params, err := input.toParams()
	if err != nil {
		return nil, err
	}

	var created *bookingrequest.Request
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		actor, loc, derr := loadActorAndLocation(ctx, tx, actorID, params.LocationID, false)
		if derr != nil {
			return derr
		}
		if !actor.CanSubmit(loc.OwnerID()) {
			return ErrForbidden
		}

		created = bookingrequest.NewRequest(params, actor.ID, uc.clock.Now())
		return tx.BookingRequests().Create(ctx, created)
	})
	if err != nil {
		return nil, classify(err)
	}

	slog.Info("booking request created",
		"request_id", created.ID().String(),
		"location_id", created.LocationID().String(),
		"requested_by", actorID.String())
	return &CreateBookingRequestResult{RequestID: created.ID(), Status: created.Status()}, nil
}

// Approve runs the availability check, the transition, booking and session
// creation and the counter update in one transaction. The request and
// location rows stay locked until commit, so concurrent approvals for the
// same location are serialized.
func (uc *bookingRequestUseCaseImpl) Approve(ctx context.Context, requestID, approverID uuid.UUID) (*ApproveResult, error) {
	var (
		req    *bookingrequest.Request
		loc    *location.Location
		result ApproveResult
	)

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		req, loc, derr = uc.loadForProcessing(ctx, tx, requestID, approverID)
		if derr != nil {
			return derr
		}

		occupancies, derr := tx.Bookings().ListOccupying(ctx, loc.ID(), req.Window())
		if derr != nil {
			return derr
		}
		check := availability.Evaluate(loc.TotalSpots(), req.Window(), occupancies)
		next, ok := loc.CounterAfterBooking(check.Remaining)
		if !check.Available() || !ok {
			return ErrCapacityExceeded
		}

		now := uc.clock.Now()
		if derr = req.Approve(approverID, now); derr != nil {
			return derr
		}
		if derr = tx.BookingRequests().SaveTransition(ctx, req); derr != nil {
			return derr
		}

		exists, derr := tx.Bookings().ExistsForRequest(ctx, req.ID())
		if derr != nil {
			return derr
		}
		if exists {
			return ErrAlreadyProcessed
		}

		code, derr := uc.codes.Generate(ctx)
		if derr != nil {
			return derr
		}
		b, derr := booking.FromApprovedRequest(req, code, uc.pricing, now)
		if derr != nil {
			return derr
		}
		if derr = tx.Bookings().Create(ctx, b); derr != nil {
			return derr
		}

		s := session.NewReserved(b.ID(), loc.ID(), now)
		if derr = tx.Sessions().Create(ctx, s); derr != nil {
			return derr
		}

		available, derr := tx.Locations().ClaimSpot(ctx, loc.ID(), next)
		if errors.Is(derr, shared.ErrCapacityExhausted) {
			return ErrCapacityExceeded
		}
		if derr != nil {
			return derr
		}

		result = ApproveResult{
			RequestID:        req.ID(),
			BookingID:        b.ID(),
			SessionID:        s.ID(),
			ConfirmationCode: b.ConfirmationCode(),
			AvailableSpots:   available,
		}
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}

	slog.Info("booking request approved",
		"request_id", requestID.String(),
		"booking_id", result.BookingID.String(),
		"confirmation_code", result.ConfirmationCode,
		"approved_by", approverID.String())

	uc.dispatch(ctx, req, loc, shared.NotificationApproved, func(d *shared.NotificationData) {
		d.ConfirmationCode = result.ConfirmationCode
	})
	return &result, nil
}

func (uc *bookingRequestUseCaseImpl) Reject(ctx context.Context, requestID, approverID uuid.UUID, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return ErrMissingReason
	}

	var (
		req *bookingrequest.Request
		loc *location.Location
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		req, loc, derr = uc.loadForProcessing(ctx, tx, requestID, approverID)
		if derr != nil {
			return derr
		}
		if derr = req.Reject(approverID, reason, uc.clock.Now()); derr != nil {
			return derr
		}
		return tx.BookingRequests().SaveTransition(ctx, req)
	})
	if err != nil {
		return classify(err)
	}

	slog.Info("booking request rejected",
		"request_id", requestID.String(),
		"rejected_by", approverID.String())

	uc.dispatch(ctx, req, loc, shared.NotificationRejected, func(d *shared.NotificationData) {
		d.Reason = *req.RejectionReason()
	})
	return nil
}

// Cancel is open to the requester as well as approvers; it has no booking
// side effects and sends no notification.
func (uc *bookingRequestUseCaseImpl) Cancel(ctx context.Context, requestID, actorID uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, derr := tx.BookingRequests().FindForUpdate(ctx, requestID)
		if derr != nil {
			return notFoundAs(derr, ErrRequestNotFound)
		}
		actor, loc, derr := loadActorAndLocation(ctx, tx, actorID, req.LocationID(), false)
		if derr != nil {
			return derr
		}
		if actor.ID != req.RequestedBy() && !actor.CanProcess(loc.OwnerID()) {
			return ErrForbidden
		}
		if derr = req.Cancel(actorID, uc.clock.Now()); derr != nil {
			return derr
		}
		return tx.BookingRequests().SaveTransition(ctx, req)
	})
	if err != nil {
		return classify(err)
	}

	slog.Info("booking request cancelled",
		"request_id", requestID.String(),
		"cancelled_by", actorID.String())
	return nil
}

// Delete removes the request in any state. A booking created from it is
// kept and loses its back reference.
func (uc *bookingRequestUseCaseImpl) Delete(ctx context.Context, requestID, actorID uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, derr := tx.BookingRequests().FindForUpdate(ctx, requestID)
		if derr != nil {
			return notFoundAs(derr, ErrRequestNotFound)
		}
		actor, loc, derr := loadActorAndLocation(ctx, tx, actorID, req.LocationID(), false)
		if derr != nil {
			return derr
		}
		if !actor.CanProcess(loc.OwnerID()) {
			return ErrForbidden
		}
		return notFoundAs(tx.BookingRequests().Delete(ctx, requestID), ErrRequestNotFound)
	})
	if err != nil {
		return classify(err)
	}

	slog.Info("booking request deleted",
		"request_id", requestID.String(),
		"deleted_by", actorID.String())
	return nil
}

// loadForProcessing locks the request and its location, then checks the
// approver before the status so outsiders learn nothing about the request.
func (uc *bookingRequestUseCaseImpl) loadForProcessing(ctx context.Context, tx shared.Tx, requestID, approverID uuid.UUID) (*bookingrequest.Request, *location.Location, error) {
	req, err := tx.BookingRequests().FindForUpdate(ctx, requestID)
	if err != nil {
		return nil, nil, notFoundAs(err, ErrRequestNotFound)
	}
	actor, loc, err := loadActorAndLocation(ctx, tx, approverID, req.LocationID(), true)
	if err != nil {
		return nil, nil, err
	}
	if !actor.CanProcess(loc.OwnerID()) {
		return nil, nil, ErrForbidden
	}
	if !req.IsPending() {
		return nil, nil, ErrAlreadyProcessed
	}
	return req, loc, nil
}

// loadActorAndLocation reloads the caller from storage; an unknown caller
// is treated as unauthorized.
func loadActorAndLocation(ctx context.Context, tx shared.Tx, actorID, locationID uuid.UUID, lock bool) (user.Actor, *location.Location, error) {
	actor, err := tx.Actors().FindByID(ctx, actorID)
	if err != nil {
		return user.Actor{}, nil, notFoundAs(err, ErrForbidden)
	}

	var loc *location.Location
	if lock {
		loc, err = tx.Locations().FindForUpdate(ctx, locationID)
	} else {
		loc, err = tx.Locations().FindByID(ctx, locationID)
	}
	if err != nil {
		return user.Actor{}, nil, notFoundAs(err, ErrLocationNotFound)
	}
	return actor, loc, nil
}

// dispatch runs after commit. Failures are logged and never returned.
func (uc *bookingRequestUseCaseImpl) dispatch(ctx context.Context, req *bookingrequest.Request, loc *location.Location, kind shared.NotificationKind, fill func(*shared.NotificationData)) {
	customer := req.Customer()
	if customer.Email == "" {
		slog.Debug("notification skipped, customer has no email",
			"request_id", req.ID().String(),
			"kind", kind.String())
		return
	}

	data := shared.NotificationData{
		RequestID:    req.ID(),
		LocationID:   loc.ID(),
		LocationName: loc.Name(),
		Start:        req.Window().Start(),
		End:          req.Window().End(),
		Plate:        req.Vehicle().Plate,
		TotalCents:   req.Estimated().Cents(),
	}
	fill(&data)

	nctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), uc.notifyTimeout)
	defer cancel()

	err := uc.notifier.Notify(nctx, shared.Notification{
		Kind:           kind,
		RecipientEmail: customer.Email,
		RecipientName:  customer.Name,
		Data:           data,
	})
	if err != nil {
		slog.Warn("customer notification failed",
			"request_id", req.ID().String(),
			"kind", kind.String(),
			"error", err.Error())
	}
}

func (in CreateBookingRequestInput) toParams() (bookingrequest.NewParams, error) {
	window, err := availability.NewWindow(in.Start, in.End)
	if err != nil {
		return bookingrequest.NewParams{}, err
	}
	customer, err := bookingrequest.NewCustomer(in.CustomerName, in.CustomerEmail, in.CustomerPhone)
	if err != nil {
		return bookingrequest.NewParams{}, err
	}
	vehicle, err := bookingrequest.NewVehicle(in.VehiclePlate, in.VehicleType, in.VehicleMake, in.VehicleModel, in.VehicleColor)
	if err != nil {
		return bookingrequest.NewParams{}, err
	}
	amount, err := bookingrequest.NewMoney(in.EstimatedCents)
	if err != nil {
		return bookingrequest.NewParams{}, err
	}
	notes, err := bookingrequest.NewNotes(in.Notes)
	if err != nil {
		return bookingrequest.NewParams{}, err
	}

	params := bookingrequest.NewParams{
		LocationID: in.LocationID,
		Customer:   customer,
		Vehicle:    vehicle,
		Window:     window,
		Estimated:  amount,
		Notes:      notes,
	}
	if in.Kind != "" {
		if params.Kind, err = bookingrequest.NewKind(in.Kind); err != nil {
			return bookingrequest.NewParams{}, err
		}
	}
	if in.Priority != "" {
		if params.Priority, err = bookingrequest.NewPriority(in.Priority); err != nil {
			return bookingrequest.NewParams{}, err
		}
	}
	return params, nil
}
