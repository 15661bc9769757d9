package events

import (
	"context"
	"fmt"
	"time"

	"parkease/internal/pkg/config"

	"github.com/google/uuid"
)

const (
	SubjectBookingRequestApproved = "booking_request.approved"
	SubjectBookingRequestRejected = "booking_request.rejected"
)

// Publisher delivers JSON payloads to a broker subject, topic or routing key.
type Publisher interface {
	Publish(ctx context.Context, subject string, payload any) error
	Close() error
}

type BookingRequestEvent struct {
	RequestID        uuid.UUID `json:"request_id"`
	LocationID       uuid.UUID `json:"location_id"`
	Status           string    `json:"status"`
	ConfirmationCode string    `json:"confirmation_code,omitempty"`
	Reason           string    `json:"reason,omitempty"`
	OccurredAt       time.Time `json:"occurred_at"`
}

// New picks the broker configured by EVENTS_DRIVER.
func New(cfg config.EventsConfig) (Publisher, error) {
	switch cfg.Driver {
	case "", "none":
		return NopPublisher{}, nil
	case "nats":
		return NewNATSPublisher(cfg.NATSURL)
	case "amqp":
		return NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange)
	case "kafka":
		return NewKafkaPublisher(cfg.KafkaBrokers)
	default:
		return nil, fmt.Errorf("unknown events driver %q", cfg.Driver)
	}
}

type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, any) error { return nil }
func (NopPublisher) Close() error                               { return nil }
