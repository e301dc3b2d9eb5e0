package bounded

import (
	"fmt"
	"strconv"
)

// Signed constrains the value types a bounded value can wrap.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Value is a signed integer guaranteed to lie within its declared bounds.
// The zero Value is usable but carries the degenerate domain [0, 0]; meaningful
// instances are created through New, MustNew or a Domain.
//
// Value is immutable and safe for concurrent use. There is no mutator and no
// public raw constructor, so any Value in circulation satisfies min <= value <= max
// and consumers never need to re-check the range.
type Value[T Signed] struct {
	value T
	min   T
	max   T
}

// New validates raw against the inclusive range [min, max] and returns a Value
// wrapping it. It returns ErrInvalidBounds if min > max, or a *RangeError
// (wrapping ErrOutOfRange) if raw falls outside the range.
func New[T Signed](raw, min, max T) (Value[T], error) {
	if min > max {
		return Value[T]{}, fmt.Errorf("%w: [%d, %d]", ErrInvalidBounds, int64(min), int64(max))
	}
	if raw < min || raw > max {
		return Value[T]{}, newRangeError(raw, min, max)
	}
	return Value[T]{value: raw, min: min, max: max}, nil
}

// MustNew works like New but panics if validation fails. Use it for values
// known at compile time, where an out-of-range input is a programmer error.
func MustNew[T Signed](raw, min, max T) Value[T] {
	v, err := New(raw, min, max)
	if err != nil {
		panic(fmt.Sprintf("bounded: %v", err))
	}
	return v
}

// Value returns the wrapped value. It always succeeds and always returns the
// same value for the same instance.
func (v Value[T]) Value() T { return v.value }

// Min returns the inclusive lower bound the value was validated against.
func (v Value[T]) Min() T { return v.min }

// Max returns the inclusive upper bound the value was validated against.
func (v Value[T]) Max() T { return v.max }

// String implements fmt.Stringer.
func (v Value[T]) String() string {
	return strconv.FormatInt(int64(v.value), 10)
}

// MarshalText implements encoding.TextMarshaler.
func (v Value[T]) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// MarshalJSON encodes the wrapped value as a bare JSON number. There is
// deliberately no UnmarshalJSON counterpart: decoding would bypass the
// validating constructor. Decode into the raw integer type and call New.
func (v Value[T]) MarshalJSON() ([]byte, error) {
	return []byte(v.String()), nil
}
