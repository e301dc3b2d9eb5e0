package bounded

import (
	"fmt"
	"math"
)

// Domain is a reusable inclusive range [min, max] acting as a factory for
// Values. Declare a domain once and use it everywhere the same range applies,
// instead of repeating the bounds at every construction site.
type Domain[T Signed] struct {
	min T
	max T
}

// NewDomain returns a Domain over the inclusive range [min, max].
// It returns ErrInvalidBounds if min > max.
func NewDomain[T Signed](min, max T) (Domain[T], error) {
	if min > max {
		return Domain[T]{}, fmt.Errorf("%w: [%d, %d]", ErrInvalidBounds, int64(min), int64(max))
	}
	return Domain[T]{min: min, max: max}, nil
}

// MustDomain works like NewDomain but panics on invalid bounds. Use it for
// domains declared as package-level variables with fixed bounds.
func MustDomain[T Signed](min, max T) Domain[T] {
	d, err := NewDomain(min, max)
	if err != nil {
		panic(fmt.Sprintf("bounded: %v", err))
	}
	return d
}

// New validates raw against the domain and returns a Value wrapping it.
// It returns a *RangeError (wrapping ErrOutOfRange) if raw falls outside
// the domain.
func (d Domain[T]) New(raw T) (Value[T], error) {
	if raw < d.min || raw > d.max {
		return Value[T]{}, newRangeError(raw, d.min, d.max)
	}
	return Value[T]{value: raw, min: d.min, max: d.max}, nil
}

// Contains reports whether raw lies within the domain.
func (d Domain[T]) Contains(raw T) bool {
	return raw >= d.min && raw <= d.max
}

// Clamp constrains raw to the domain and returns the resulting Value.
// Values below min saturate to min, values above max saturate to max.
// Unlike New, Clamp never fails.
func (d Domain[T]) Clamp(raw T) Value[T] {
	switch {
	case raw < d.min:
		raw = d.min
	case raw > d.max:
		raw = d.max
	}
	return Value[T]{value: raw, min: d.min, max: d.max}
}

// Min returns the inclusive lower bound of the domain.
func (d Domain[T]) Min() T { return d.min }

// Max returns the inclusive upper bound of the domain.
func (d Domain[T]) Max() T { return d.max }

// Size returns the number of distinct values the domain admits. The span is
// computed in uint64, so domains wider than int64 are counted exactly; only
// the full int64 range, whose count does not fit in uint64, saturates to
// math.MaxUint64.
func (d Domain[T]) Size() uint64 {
	span := uint64(int64(d.max)) - uint64(int64(d.min))
	if span == math.MaxUint64 {
		return math.MaxUint64
	}
	return span + 1
}

// String implements fmt.Stringer.
func (d Domain[T]) String() string {
	return fmt.Sprintf("[%d, %d]", int64(d.min), int64(d.max))
}
