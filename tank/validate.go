// SPDX-License-Identifier: MIT

package tank

import "fmt"

// Validate checks the structural soundness of r before any computation.
//
// Checks run in a fixed order and the first violation is returned:
//
//	epsilon → shape → volume → capacity → per-component values.
//
// Every error wraps one of the package sentinels.
func Validate(r Request) error {
	if isNonFinite(r.Epsilon) {
		return fieldErrorf("epsilon", ErrNaNInf)
	}
	if r.Epsilon < 0 {
		return fieldErrorf("epsilon", ErrNegativeEpsilon)
	}

	n := len(r.Components)
	if n == 0 {
		return ErrNoComponents
	}
	if len(r.State.Concentrations) != n {
		return fmt.Errorf("%d concentrations for %d components: %w",
			len(r.State.Concentrations), n, ErrLengthMismatch)
	}

	if isNonFinite(r.State.Volume) {
		return fieldErrorf("volume", ErrNaNInf)
	}
	if r.State.Volume < 0 {
		return fieldErrorf("volume", ErrNegativeVolume)
	}
	if isNonFinite(r.Capacity) {
		return fieldErrorf("capacity", ErrNaNInf)
	}
	if r.Capacity < 0 {
		return fieldErrorf("capacity", ErrNegativeCapacity)
	}
	if r.Capacity < r.State.Volume {
		return fmt.Errorf("capacity %g < volume %g: %w", r.Capacity, r.State.Volume, ErrCapacityBelowVolume)
	}

	for i, c := range r.Components {
		name := componentLabel(c, i)
		if err := checkConcentration(name+" measured", r.State.Concentrations[i]); err != nil {
			return err
		}
		if err := checkConcentration(name+" target", c.Target); err != nil {
			return err
		}
		if err := checkConcentration(name+" makeup", c.Makeup); err != nil {
			return err
		}
	}

	return nil
}

func checkConcentration(field string, v float64) error {
	if isNonFinite(v) {
		return fieldErrorf(field, ErrNaNInf)
	}
	if v < 0 {
		return fieldErrorf(field, ErrNegativeConcentration)
	}

	return nil
}

// componentLabel prefers the ID, then the display name, then the index.
func componentLabel(c Component, i int) string {
	switch {
	case c.ID != "":
		return c.ID
	case c.Name != "":
		return c.Name
	default:
		return fmt.Sprintf("component[%d]", i)
	}
}
