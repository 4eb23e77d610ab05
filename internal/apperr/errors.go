package apperr

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned when the input fails domain validation.
var ErrInvalid = errors.New("invalid input")

// ErrNotFound indicates that the requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ErrInvalidTransition is returned when a state machine guard fails. State is left unchanged.
var ErrInvalidTransition = errors.New("invalid state transition")

// ErrNoCandidate indicates that matching found no eligible rider.
var ErrNoCandidate = errors.New("no candidate found")

// ErrConflict indicates a lost race on a conditional write or a uniqueness conflict.
var ErrConflict = errors.New("conflict")

var (
	// ErrActiveAssignment is returned when the order already has an active assignment.
	ErrActiveAssignment = fmt.Errorf("%w: order already has an active assignment", ErrConflict)
	// ErrRiderUnavailable is returned when the chosen rider was taken by a concurrent dispatch.
	ErrRiderUnavailable = fmt.Errorf("%w: rider is not available", ErrConflict)
	// ErrNotOwner is returned when the acting rider does not hold the assignment.
	ErrNotOwner = fmt.Errorf("%w: assignment belongs to another rider", ErrInvalidTransition)
	// ErrOrderNotDispatchable is returned when the order status does not allow a new assignment.
	ErrOrderNotDispatchable = fmt.Errorf("%w: order cannot be dispatched", ErrInvalidTransition)
)

// Client reports whether err is caused by the caller rather than by infrastructure.
func Client(err error) bool {
	return errors.Is(err, ErrInvalid) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrInvalidTransition) ||
		errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrNoCandidate)
}
