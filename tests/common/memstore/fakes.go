//go:build unit

package memstore

import (
	"context"
	"fmt"
	"sync"

	"parkease/internal/usecase/shared"
)

// Notifier records every notification and fails with Err when set.
type Notifier struct {
	mu   sync.Mutex
	Err  error
	sent []shared.Notification
}

func (n *Notifier) Notify(ctx context.Context, msg shared.Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, msg)
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return n.Err
}

func (n *Notifier) Sent() []shared.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]shared.Notification(nil), n.sent...)
}

// Codes hands out PE-00000001, PE-00000002, and so on.
type Codes struct {
	mu   sync.Mutex
	next int
	Err  error
}

func (c *Codes) Generate(context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return "", c.Err
	}
	c.next++
	return fmt.Sprintf("PE-%08d", c.next), nil
}
