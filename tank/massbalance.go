// SPDX-License-Identifier: MIT

package tank

import "math"

// AvailableSpace returns max(0, capacity − volume).
func AvailableSpace(r Request) float64 {
	return math.Max(0, r.Capacity-r.State.Volume)
}

// Finalize applies a water/makeup addition to s and returns the resulting
// volume and concentrations. composition must have the same length as
// s.Concentrations. A zero final volume yields all-zero concentrations.
//
// Complexity: O(N) time, one allocation.
func Finalize(s State, water, makeup float64, composition []float64) (float64, []float64) {
	volume := s.Volume + water + makeup
	out := make([]float64, len(s.Concentrations))
	if volume <= 0 {
		return volume, out
	}
	for i, c := range s.Concentrations {
		out[i] = (s.Volume*c + makeup*composition[i]) / volume
	}

	return volume, out
}

// Objective returns Σ(final_i − t_i)² for the addition (water, makeup) to r.
// It is +Inf when the final volume is zero, so an empty result never wins a
// comparison against a real one.
func Objective(r Request, water, makeup float64) float64 {
	volume := r.State.Volume + water + makeup
	if volume <= 0 {
		return math.Inf(1)
	}
	var sum float64
	for i, c := range r.State.Concentrations {
		comp := r.Components[i]
		d := (r.State.Volume*c+makeup*comp.Makeup)/volume - comp.Target
		sum += d * d
	}

	return sum
}

// Residual returns Σ(c_i − t_i)² for the untouched tank.
func Residual(r Request) float64 {
	var sum float64
	for i, c := range r.State.Concentrations {
		d := c - r.Components[i].Target
		sum += d * d
	}

	return sum
}
