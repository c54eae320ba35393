package domain

import (
	"errors"
	"fmt"
)

// ErrRejected is the sentinel wrapped by every RejectionError.
var ErrRejected = errors.New("transition rejected")

// ErrUnknownOp is returned when an operation symbol is outside the closed set.
var ErrUnknownOp = errors.New("unknown operation")

// ErrMachineNotFound is returned when a machine ID cannot be found in a store.
var ErrMachineNotFound = errors.New("machine not found")

// ErrBadSnapshot is returned when a persisted snapshot cannot be restored.
var ErrBadSnapshot = errors.New("invalid snapshot")

// RejectionError reports that an operation is not legal from the current
// state. It is an expected outcome, not a fault: the dispatcher returns it
// together with the caller's original, unmodified state so nothing is lost.
type RejectionError struct {
	From string // name of the state the machine stayed in
	Op   Op     // the operation that was requested
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("operation %q is not legal from state %q", e.Op, e.From)
}

func (e *RejectionError) Unwrap() error {
	return ErrRejected
}
