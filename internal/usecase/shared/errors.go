package shared

import "errors"

// Repositories report these conditions so use cases can branch without
// depending on storage details.
var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicate         = errors.New("record already exists")
	ErrCapacityExhausted = errors.New("location capacity exhausted")
)
