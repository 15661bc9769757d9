package commands

import (
	"errors"

	"parkease/internal/domain/availability"
	"parkease/internal/domain/bookingrequest"
	"parkease/internal/pkg/errs"
	"parkease/internal/usecase/shared"
)

var (
	ErrRequestNotFound    = errs.New("booking request not found")
	ErrLocationNotFound   = errs.New("parking location not found")
	ErrForbidden          = errs.New("actor is not allowed to act on this booking request")
	ErrCapacityExceeded   = errs.New("no parking spot available for the requested window")
	ErrPersistenceFailure = errs.New("persistence failure")

	ErrAlreadyProcessed = bookingrequest.ErrAlreadyProcessed
	ErrMissingReason    = bookingrequest.ErrMissingReason
	ErrInvalidWindow    = availability.ErrInvalidWindow
	ErrDomainValidation = bookingrequest.ErrValidation
)

var typedErrors = []error{
	ErrRequestNotFound,
	ErrLocationNotFound,
	ErrForbidden,
	ErrCapacityExceeded,
	ErrAlreadyProcessed,
	ErrMissingReason,
	ErrInvalidWindow,
	ErrDomainValidation,
}

// classify passes lifecycle errors through and marks everything else,
// which can only come from storage or its collaborators, as a persistence
// failure. Marked errors are matched with errs.Is.
func classify(err error) error {
	if err == nil {
		return nil
	}
	for _, known := range typedErrors {
		if errors.Is(err, known) {
			return err
		}
	}
	return errs.Mark(err, ErrPersistenceFailure)
}

// notFoundAs swaps the repository's not-found signal for a lifecycle error.
func notFoundAs(err, target error) error {
	if errors.Is(err, shared.ErrNotFound) {
		return target
	}
	return err
}
