// SPDX-License-Identifier: MIT
// Package tank: sentinel error set.
// Validation returns these sentinels wrapped with the offending field so that
// callers can match them via errors.Is while still reading a precise message.

package tank

import (
	"errors"
	"fmt"
)

var (
	// ErrNoComponents is returned when a request tracks zero chemicals.
	ErrNoComponents = errors.New("tank: request has no components")

	// ErrLengthMismatch signals that the concentration vector and the component
	// list differ in length.
	ErrLengthMismatch = errors.New("tank: concentrations and components differ in length")

	// ErrNegativeVolume is returned for a negative current volume.
	ErrNegativeVolume = errors.New("tank: volume must be non-negative")

	// ErrNegativeCapacity is returned for a negative tank capacity.
	ErrNegativeCapacity = errors.New("tank: capacity must be non-negative")

	// ErrCapacityBelowVolume is returned when the tank already holds more than it can.
	ErrCapacityBelowVolume = errors.New("tank: capacity is below current volume")

	// ErrNegativeConcentration is returned for a negative measured, target or makeup value.
	ErrNegativeConcentration = errors.New("tank: concentration must be non-negative")

	// ErrNegativeEpsilon is returned for a negative tolerance.
	ErrNegativeEpsilon = errors.New("tank: epsilon must be non-negative")

	// ErrNaNInf signals a NaN or ±Inf value anywhere in the request.
	ErrNaNInf = errors.New("tank: NaN or Inf encountered")

	// ErrNotApplicable marks a correction stage whose preconditions do not hold
	// for the request at hand. It is a branch condition, never a user-facing error.
	ErrNotApplicable = errors.New("tank: stage not applicable")
)

// fieldErrorf wraps err with the name of the field that triggered it.
func fieldErrorf(field string, err error) error {
	return fmt.Errorf("%s: %w", field, err)
}

// NotApplicable wraps ErrNotApplicable with a human-readable reason.
func NotApplicable(stage, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", stage, ErrNotApplicable, fmt.Sprintf(format, args...))
}
