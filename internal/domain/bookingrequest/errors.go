package bookingrequest

import (
	"errors"
	"fmt"
)

var (
	ErrAlreadyProcessed = errors.New("booking request already processed")
	ErrMissingReason    = errors.New("rejection reason is required")
	ErrInvalidStatus    = errors.New("invalid booking request status")

	// ErrValidation groups the input errors below.
	ErrValidation           = errors.New("invalid booking request")
	ErrInvalidCustomerName  = fmt.Errorf("%w: customer name is required", ErrValidation)
	ErrInvalidCustomerEmail = fmt.Errorf("%w: customer email is malformed", ErrValidation)
	ErrInvalidPlate         = fmt.Errorf("%w: vehicle plate is required", ErrValidation)
	ErrNegativeAmount       = fmt.Errorf("%w: estimated amount cannot be negative", ErrValidation)
	ErrNotesTooLong         = fmt.Errorf("%w: notes are too long", ErrValidation)
	ErrInvalidKind          = fmt.Errorf("%w: unknown request kind", ErrValidation)
	ErrInvalidPriority      = fmt.Errorf("%w: unknown priority", ErrValidation)
)
