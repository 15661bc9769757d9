package booking

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
	StatusRejected  Status = "REJECTED"
	StatusExpired   Status = "EXPIRED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusRejected, StatusExpired:
		return true
	default:
		return false
	}
}

// HoldsCapacity reports whether a booking in this status occupies a spot.
func (s Status) HoldsCapacity() bool {
	return s == StatusConfirmed || s == StatusPending
}

// CapacityHoldingStatuses lists the statuses counted by availability checks.
func CapacityHoldingStatuses() []Status {
	return []Status{StatusConfirmed, StatusPending}
}
