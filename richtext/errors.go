package richtext

import (
	"errors"
	"fmt"
)

// Errors returned by value operations.
var (
	ErrOffsetOutOfRange = errors.New("offset out of range")
	ErrRangeInvalid     = errors.New("invalid range")
	ErrLengthMismatch   = errors.New("formats and text length mismatch")
)

// InvariantError reports a malformed value or an out-of-range offset.
// It always indicates a caller bug: values produced by this package never
// violate their invariants. The failing operation aborts; nothing is
// partially applied.
type InvariantError struct {
	// Op is the operation that detected the violation.
	Op string
	// Err is the underlying sentinel error.
	Err error
}

// Error returns the error message.
func (e *InvariantError) Error() string {
	return fmt.Sprintf("richtext: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying sentinel error.
func (e *InvariantError) Unwrap() error {
	return e.Err
}

// invariant wraps a sentinel error with the operation that detected it.
func invariant(op string, err error) error {
	return &InvariantError{Op: op, Err: err}
}
