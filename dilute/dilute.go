// SPDX-License-Identifier: MIT

package dilute

import (
	"github.com/katalvlaran/tankmix/tank"
	"github.com/katalvlaran/tankmix/vecmath"
)

const stage = "dilute"

// Applicable reports whether every measured concentration of r is at or above
// its target, the precondition of a water-only correction. A concentration
// within ε of its target counts as on target.
func Applicable(r tank.Request) bool {
	eps := r.Eps()
	for i, c := range r.State.Concentrations {
		t := r.Components[i].Target
		if c < t && !tank.IsClose(c, t, eps) {
			return false
		}
	}

	return true
}

// Scale returns the least-squares dilution factor s* = (c·t)/(c·c) of r.
func Scale(r tank.Request) (float64, error) {
	return vecmath.Project(r.State.Concentrations, r.Targets())
}

// Solve returns the optimal water-only recipe for r, or an error wrapping
// tank.ErrNotApplicable.
//
// r must already satisfy tank.Validate.
//
// Behavior:
//   - Not applicable unless every c_i ≥ t_i and V > 0.
//   - Not applicable when s* ≤ 0 or s* ≥ 1 (within ε counts as 1).
//   - The water volume is clamped to the available space; a binding clamp
//     yields StatusBestPossibleCorrection, otherwise StatusOptimalDilution.
//   - Makeup is always 0.
//
// Complexity: O(N).
func Solve(r tank.Request) (tank.Recipe, error) {
	if !Applicable(r) {
		return tank.Recipe{}, tank.NotApplicable(stage, "some component is below target")
	}
	v := r.State.Volume
	if v <= 0 {
		return tank.Recipe{}, tank.NotApplicable(stage, "tank is empty")
	}

	eps := r.Eps()
	s, err := Scale(r)
	if err != nil {
		return tank.Recipe{}, tank.NotApplicable(stage, "no projection: %v", err)
	}
	if s <= 0 {
		return tank.Recipe{}, tank.NotApplicable(stage, "scale factor %.6g is not positive", s)
	}
	if s >= 1 || tank.IsClose(s, 1, eps) {
		return tank.Recipe{}, tank.NotApplicable(stage, "scale factor %.6g gives no useful dilution", s)
	}

	w := v * (1/s - 1)
	space := tank.AvailableSpace(r)
	if w > space {
		return tank.Recipe{Water: space, Status: tank.StatusBestPossibleCorrection}, nil
	}

	return tank.Recipe{Water: w, Status: tank.StatusOptimalDilution}, nil
}
