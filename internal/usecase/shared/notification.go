package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type NotificationKind string

const (
	NotificationApproved NotificationKind = "APPROVED"
	NotificationRejected NotificationKind = "REJECTED"
)

func (k NotificationKind) String() string {
	return string(k)
}

type Notification struct {
	Kind           NotificationKind
	RecipientEmail string
	RecipientName  string
	Data           NotificationData
}

type NotificationData struct {
	RequestID        uuid.UUID
	LocationID       uuid.UUID
	LocationName     string
	Start            time.Time
	End              time.Time
	Plate            string
	ConfirmationCode string
	TotalCents       int64
	Reason           string
}

// Notifier delivers customer notifications. Callers treat failures as
// non-fatal.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}
