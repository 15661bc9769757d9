package notify

import (
	"context"
	"errors"

	"parkease/internal/infra/events"
	"parkease/internal/pkg/clock"
	"parkease/internal/pkg/errs"
	"parkease/internal/usecase/shared"

	"golang.org/x/sync/errgroup"
)

// Dispatcher emails the customer and publishes the matching domain event.
// Both run concurrently and neither cancels the other.
type Dispatcher struct {
	mailer    Mailer
	publisher events.Publisher
	clock     clock.Clock
}

func NewDispatcher(mailer Mailer, publisher events.Publisher, clk clock.Clock) *Dispatcher {
	return &Dispatcher{mailer: mailer, publisher: publisher, clock: clk}
}

func (d *Dispatcher) Notify(ctx context.Context, n shared.Notification) error {
	msg, err := Render(n)
	if err != nil {
		return err
	}

	// a plain Group: a failed send must not cancel the publish
	var g errgroup.Group
	failures := make([]error, 2)
	g.Go(func() error {
		failures[0] = errs.Wrap(d.mailer.Send(ctx, msg), "send notification mail")
		return failures[0]
	})
	g.Go(func() error {
		failures[1] = errs.Wrap(d.publisher.Publish(ctx, subjectFor(n.Kind), d.event(n)), "publish notification event")
		return failures[1]
	})
	if err := g.Wait(); err == nil {
		return nil
	}
	// Wait keeps only the first failure
	return errors.Join(failures...)
}

func (d *Dispatcher) event(n shared.Notification) events.BookingRequestEvent {
	return events.BookingRequestEvent{
		RequestID:        n.Data.RequestID,
		LocationID:       n.Data.LocationID,
		Status:           n.Kind.String(),
		ConfirmationCode: n.Data.ConfirmationCode,
		Reason:           n.Data.Reason,
		OccurredAt:       d.clock.Now(),
	}
}

func subjectFor(kind shared.NotificationKind) string {
	if kind == shared.NotificationRejected {
		return events.SubjectBookingRequestRejected
	}
	return events.SubjectBookingRequestApproved
}
