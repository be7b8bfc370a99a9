package services

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a partner-scoped lookup matches nothing.
var ErrNotFound = errors.New("record not found")

// ValidationError marks missing or malformed input. No mutation has been
// attempted when it is returned.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationf(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ConflictError marks a duplicate name or a referential block. Count carries
// the number of blocking records where applicable.
type ConflictError struct {
	Message string
	Count   int
}

func (e *ConflictError) Error() string {
	return e.Message
}

// QuotaExceededError rejects a transition into the privileged room status
// once the partner's quota is full.
type QuotaExceededError struct {
	Current int
	Max     int
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("privileged room quota is full (%d of %d)", e.Current, e.Max)
}
