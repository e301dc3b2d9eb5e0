// Package bounded provides validated integer values with inclusive range bounds.
//
// The package implements the smart constructor pattern for numeric domains:
// the only way to obtain a Value is through a validating constructor, so any
// Value in circulation is guaranteed to satisfy min <= value <= max. Functions
// accepting a Value in their signature can use it without re-checking the
// range, which removes redundant validation from every layer below the input
// boundary.
//
// # Architecture
//
// Two types cover the common cases:
//
//   - Value - an immutable validated integer carrying its bounds
//   - Domain - a reusable [min, max] range acting as a Value factory
//
// Construction either yields a valid instance or an error; there is no
// partially-constructed or invalid live state. Values are immutable, so
// instances are safe to share across goroutines without coordination.
//
// # Usage
//
// One-off validation:
//
//	percent, err := bounded.New(raw, 0, 100)
//	if err != nil {
//	    var rangeErr *bounded.RangeError
//	    if errors.As(err, &rangeErr) {
//	        // rangeErr.Value, rangeErr.Min, rangeErr.Max
//	    }
//	    return err
//	}
//	apply(percent.Value())
//
// Reusable domain:
//
//	var Percentage = bounded.MustDomain[int](0, 100)
//
//	func SetVolume(raw int) error {
//	    v, err := Percentage.New(raw)
//	    if err != nil {
//	        return err
//	    }
//	    mixer.setLevel(v)
//	    return nil
//	}
//
// Saturating construction when rejection is not an option:
//
//	v := Percentage.Clamp(raw) // never fails, out-of-range inputs stick to the edge
//
// # Error Handling
//
// Out-of-range construction fails with *RangeError, which carries the
// offending value and both bounds and unwraps to ErrOutOfRange. Declaring a
// range with min > max fails with ErrInvalidBounds. Errors are always
// surfaced to the caller; the package never recovers or retries internally.
package bounded
