// Package boundkit provides validated bounded integer values for Go applications.
//
// BoundKit implements the parse-don't-validate approach for numeric ranges:
// values are checked once, at a type boundary, and every instance past that
// boundary is valid by construction. Downstream code accepts validated types
// in its signatures instead of re-checking ranges defensively.
//
// The module is organized as independent packages:
//
//   - pkg/bounded - validated integer values and reusable range domains
//   - pkg/domains - registry of named domains loaded from YAML or memory
//   - pkg/guess - number-guessing game built on validated guesses
//   - pkg/config - environment-based configuration loading
//
// Basic usage:
//
//	percentage := bounded.MustDomain[int](0, 100)
//
//	v, err := percentage.New(input)
//	if err != nil {
//	    // *bounded.RangeError carries the value and both bounds
//	    return err
//	}
//	apply(v.Value()) // guaranteed 0 <= value <= 100
//
// See each package's documentation for details.
package boundkit
