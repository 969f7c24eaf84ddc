// SPDX-License-Identifier: MIT

package engine

import (
	"math"

	"github.com/katalvlaran/tankmix/tank"
)

// legacyRecipe reproduces the historical fallback used before the optimizing
// tiers existed:
//
//   - every off-target component high: add water for the worst offender,
//     max_i V·(c_i/t_i − 1), capped by the available space;
//   - any component low (alone or mixed with high ones): fill the available
//     space with makeup.
//
// The result is always StatusBestPossibleCorrection.
func legacyRecipe(r tank.Request, space, eps float64) tank.Recipe {
	var high, low bool
	for i, c := range r.State.Concentrations {
		t := r.Components[i].Target
		if tank.IsClose(c, t, eps) {
			continue
		}
		if c > t {
			high = true
		} else {
			low = true
		}
	}
	if !high || low {
		return tank.Recipe{Makeup: space, Status: tank.StatusBestPossibleCorrection}
	}

	v := r.State.Volume
	water := 0.0
	for i, c := range r.State.Concentrations {
		t := r.Components[i].Target
		if c <= t {
			continue
		}
		if t <= 0 {
			// no amount of water reaches a zero target
			water = math.Inf(1)
			break
		}
		water = math.Max(water, v*(c/t-1))
	}

	return tank.Recipe{Water: math.Min(water, space), Status: tank.StatusBestPossibleCorrection}
}
