// SPDX-License-Identifier: MIT

// errors.go — sentinel errors and the configuration error type.
//
// Error policy:
//   - Sampling never fails and never panics.
//   - Constructors and With* builder methods validate eagerly and panic with
//     *ConfigurationError on meaningless input. Build converts those panics
//     into ordinary error values for callers that prefer them.
//   - Callers branch with errors.Is on the sentinels below, or on
//     ErrConfiguration for the whole class.

package noise

import (
	"errors"
	"fmt"
)

// ErrConfiguration matches every *ConfigurationError.
var ErrConfiguration = errors.New("noise: invalid configuration")

// ErrOctaves indicates an octave count (or turbulence roughness) outside
// [1, MaxOctaves].
var ErrOctaves = errors.New("noise: octave count out of range")

// ErrBounds indicates an inverted or negative-width interval (Clamp, Select)
// or a negative falloff.
var ErrBounds = errors.New("noise: invalid bounds")

// ErrControlPoints indicates too few control points for Terrace or Curve.
var ErrControlPoints = errors.New("noise: not enough control points")

// ErrDuplicatePoint indicates a control point whose input already exists.
var ErrDuplicatePoint = errors.New("noise: duplicate control point")

// ErrTooManyAxes indicates more per-axis values (or a higher axis index) than
// the point type has dimensions.
var ErrTooManyAxes = errors.New("noise: axis out of range for point dimension")

// ErrNilSource indicates a nil Source passed where one is required.
var ErrNilSource = errors.New("noise: nil source")

// ErrNonFinite indicates a NaN or infinite configuration value.
var ErrNonFinite = errors.New("noise: non-finite parameter")

// ErrUnknownMode indicates an undefined enum value, such as a Worley metric.
var ErrUnknownMode = errors.New("noise: unknown mode")

// ConfigurationError reports an invalid parameter passed to a node builder.
// Err carries one of the sentinels above, possibly wrapped with detail.
type ConfigurationError struct {
	Node string
	Err  error
}

// Error implements error.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Node, e.Err)
}

// Unwrap exposes the underlying sentinel.
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrConfiguration) true for every configuration error.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// configPanic aborts a builder with a *ConfigurationError.
func configPanic(node string, err error) {
	panic(&ConfigurationError{Node: node, Err: err})
}

// configPanicf wraps sentinel with formatted detail before panicking.
func configPanicf(node string, sentinel error, format string, args ...interface{}) {
	configPanic(node, fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...)))
}

// Build runs fn and converts a *ConfigurationError panic raised inside it
// into a returned error. Any other panic is re-raised.
//
//	n, err := noise.Build(func() noise.Fbm[noise.Point3] {
//		return noise.NewFbm[noise.Point3](seed).WithOctaves(userOctaves)
//	})
func Build[T any](fn func() T) (out T, err error) {
	defer func() {
		if r := recover(); r != nil {
			ce, ok := r.(*ConfigurationError)
			if !ok {
				panic(r)
			}
			err = ce
		}
	}()

	return fn(), nil
}
