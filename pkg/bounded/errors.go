package bounded

import (
	"errors"
	"fmt"
)

// Common errors that can be matched with errors.Is.
var (
	// ErrOutOfRange is returned when a raw value falls outside its domain.
	ErrOutOfRange = errors.New("value out of range")

	// ErrInvalidBounds is returned when a domain is declared with min greater than max.
	ErrInvalidBounds = errors.New("invalid bounds: min greater than max")
)

// RangeError reports a rejected value together with the bounds that rejected it.
// It wraps ErrOutOfRange, so both errors.Is and errors.As work:
//
//	if errors.Is(err, bounded.ErrOutOfRange) { ... }
//
//	var rangeErr *bounded.RangeError
//	if errors.As(err, &rangeErr) {
//	    fmt.Println(rangeErr.Value, rangeErr.Min, rangeErr.Max)
//	}
type RangeError struct {
	Value int64
	Min   int64
	Max   int64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("value %d out of range [%d, %d]", e.Value, e.Min, e.Max)
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

func newRangeError[T Signed](value, min, max T) *RangeError {
	return &RangeError{
		Value: int64(value),
		Min:   int64(min),
		Max:   int64(max),
	}
}

// IsRangeError reports whether err carries range details extractable with errors.As.
func IsRangeError(err error) bool {
	var e *RangeError
	return errors.As(err, &e)
}
