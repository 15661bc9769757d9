package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/nats-io/nats.go"
)

type NATSPublisher struct {
	conn *nats.Conn
}

func NewNATSPublisher(url string) (*NATSPublisher, error) {
	conn, err := nats.Connect(url, nats.Name("parkease"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return &NATSPublisher{conn: conn}, nil
}

func (n *NATSPublisher) Publish(ctx context.Context, subject string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event data: %w", err)
	}
	slog.DebugContext(ctx, "publishing event", "driver", "nats", "subject", subject)
	if err := n.conn.Publish(subject, data); err != nil {
		return err
	}
	return n.conn.FlushWithContext(ctx)
}

func (n *NATSPublisher) Close() error {
	return n.conn.Drain()
}
