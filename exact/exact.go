// SPDX-License-Identifier: MIT

package exact

import (
	"errors"

	"github.com/katalvlaran/tankmix/tank"
	"github.com/katalvlaran/tankmix/vecmath"
)

const stage = "exact"

// Solve returns the exact water/makeup blend for r, or an error wrapping
// tank.ErrNotApplicable when no such blend exists or fits.
//
// r must already satisfy tank.Validate.
//
// Stages:
//  1. Preconditions: N = 2, V > 0, makeup not parallel to target.
//  2. Cramer solve of the 2×2 mass-balance system for (k, w).
//  3. Acceptance: w ≥ −ε, k ≥ −ε, w + k ≤ space + ε; noise within ε clamps to 0.
//
// Complexity: O(1).
func Solve(r tank.Request) (tank.Recipe, error) {
	if n := len(r.Components); n != 2 {
		return tank.Recipe{}, tank.NotApplicable(stage, "needs exactly 2 components, have %d", n)
	}
	v := r.State.Volume
	if v <= 0 {
		return tank.Recipe{}, tank.NotApplicable(stage, "tank is empty")
	}

	eps := r.Eps()
	c := r.State.Concentrations
	t1, t2 := r.Components[0].Target, r.Components[1].Target
	m1, m2 := r.Components[0].Makeup, r.Components[1].Makeup

	if tank.IsClose(t1*m2, m1*t2, eps) {
		return tank.Recipe{}, tank.NotApplicable(stage, "makeup composition is parallel to the target profile")
	}

	k, w, err := vecmath.Solve2(
		m1-t1, -t1,
		m2-t2, -t2,
		v*(t1-c[0]), v*(t2-c[1]),
		eps,
	)
	if err != nil {
		if errors.Is(err, vecmath.ErrSingular) || errors.Is(err, vecmath.ErrNaNInf) {
			return tank.Recipe{}, tank.NotApplicable(stage, "degenerate system: %v", err)
		}

		return tank.Recipe{}, err
	}

	if w < -eps || k < -eps {
		return tank.Recipe{}, tank.NotApplicable(stage, "blend needs negative additions (water %.6g, makeup %.6g)", w, k)
	}
	w, k = tank.ClampNonNegative(w, eps), tank.ClampNonNegative(k, eps)

	space := tank.AvailableSpace(r)
	if w+k > space+eps {
		return tank.Recipe{}, tank.NotApplicable(stage, "blend needs %.6g L, only %.6g L available", w+k, space)
	}

	return tank.Recipe{Water: w, Makeup: k, Status: tank.StatusExactCorrection}, nil
}
