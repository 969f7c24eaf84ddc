// SPDX-License-Identifier: MIT

package constrained_test

import (
	"testing"

	"github.com/katalvlaran/tankmix/constrained"
	"github.com/katalvlaran/tankmix/tank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func request(v float64, c, t, m []float64, capacity float64) tank.Request {
	comps := make([]tank.Component, len(t))
	for i := range t {
		comps[i] = tank.Component{ID: string(rune('A' + i)), Target: t[i], Makeup: m[i]}
	}

	return tank.Request{State: tank.State{Volume: v, Concentrations: c}, Components: comps, Capacity: capacity}
}

// assertFeasible checks the capacity and sign constraints of a solution.
func assertFeasible(t *testing.T, r tank.Request, sol constrained.Solution) {
	t.Helper()
	eps := r.Eps()
	assert.GreaterOrEqual(t, sol.Recipe.Water, 0.0)
	assert.GreaterOrEqual(t, sol.Recipe.Makeup, 0.0)
	assert.LessOrEqual(t, sol.Recipe.Water+sol.Recipe.Makeup, tank.AvailableSpace(r)+eps)
}

// TestSolve_InteriorBlend: the stationary point α = 0.7, β = 0.2 lies strictly
// inside the triangle, so both water and makeup are added.
//
//	V = 100, c = (100, 0, 0), m = (0, 100, 0), t = (70, 20, 5), capacity 200
//	total = V/α = 1000/7, makeup = β·total = 200/7, water = 100/7
func TestSolve_InteriorBlend(t *testing.T) {
	r := request(100, []float64{100, 0, 0}, []float64{70, 20, 5}, []float64{0, 100, 0}, 200)

	sol := constrained.Solve(r)
	assertFeasible(t, r, sol)
	assert.Equal(t, constrained.CandidateInterior, sol.Chosen)
	assert.Equal(t, tank.StatusBestPossibleCorrection, sol.Recipe.Status)
	assert.InDelta(t, 100.0/7, sol.Recipe.Water, 1e-9)
	assert.InDelta(t, 200.0/7, sol.Recipe.Makeup, 1e-9)
	assert.InDelta(t, 25.0, sol.Objective, 1e-9, "only the untracked third species is off")
}

// TestSolve_ExactWithThreeComponents: when the target is reachable the tier
// reports an exact correction even though no closed-form tier applied.
func TestSolve_ExactWithThreeComponents(t *testing.T) {
	r := request(100, []float64{100, 0, 0}, []float64{70, 20, 0}, []float64{0, 100, 0}, 200)

	sol := constrained.Solve(r)
	assertFeasible(t, r, sol)
	assert.Equal(t, tank.StatusExactCorrection, sol.Recipe.Status)
	assert.InDelta(t, 0.0, sol.Objective, 1e-9)
}

// TestSolve_ParallelMakeupBlend: makeup equal to target, one component high
// and one low. The optimum fills the tank with a water/makeup blend.
//
//	α_min = 5/12, β* = m·(t − α_min·c)/m·m = 8462.5/16900, makeup = 240·β*
func TestSolve_ParallelMakeupBlend(t *testing.T) {
	r := request(100, []float64{150, 45}, []float64{120, 50}, []float64{120, 50}, 240)

	sol := constrained.Solve(r)
	assertFeasible(t, r, sol)
	assert.Equal(t, constrained.CandidateFill, sol.Chosen)
	wantMakeup := 240 * 8462.5 / 16900
	assert.InDelta(t, wantMakeup, sol.Recipe.Makeup, 1e-9)
	assert.InDelta(t, 140-wantMakeup, sol.Recipe.Water, 1e-9)
	assert.InDelta(t, 19.82, sol.Recipe.Water, 0.01)
	assert.InDelta(t, 120.18, sol.Recipe.Makeup, 0.01)
	assert.Less(t, sol.Objective, tank.Objective(r, 0, 140), "improves on the makeup-only baseline")
}

// TestSolve_FortifyEdge: the optimum sits on the no-water edge.
//
//	u* = (t−c)·(m−c)/|m−c|² = 875/1825, makeup = V·u/(1−u)
func TestSolve_FortifyEdge(t *testing.T) {
	r := request(100, []float64{80, 55}, []float64{100, 50}, []float64{120, 40}, 200)

	sol := constrained.Solve(r)
	assertFeasible(t, r, sol)
	assert.Equal(t, constrained.CandidateFortify, sol.Chosen)
	u := 875.0 / 1825
	assert.InDelta(t, 0.0, sol.Recipe.Water, 1e-12)
	assert.InDelta(t, 100*u/(1-u), sol.Recipe.Makeup, 1e-9)
	assert.Less(t, sol.Objective, tank.Objective(r, 0, 100))
}

// TestSolve_BaselineWinsTies: a weak bath fortified with everything that fits;
// the fortify edge clamps onto the baseline corner and the baseline is kept.
func TestSolve_BaselineWinsTies(t *testing.T) {
	r := request(100, []float64{50, 20}, []float64{120, 50}, []float64{200, 80}, 150)

	sol := constrained.Solve(r)
	assert.Equal(t, constrained.CandidateBaseline, sol.Chosen)
	assert.Equal(t, 0.0, sol.Recipe.Water)
	assert.Equal(t, 50.0, sol.Recipe.Makeup)
}

// TestSolve_NoCandidateBeatsChosen checks the winner against a coarse grid
// over the feasible triangle.
func TestSolve_NoCandidateBeatsChosen(t *testing.T) {
	reqs := []tank.Request{
		request(100, []float64{80, 55}, []float64{100, 50}, []float64{120, 40}, 200),
		request(100, []float64{150, 45}, []float64{120, 50}, []float64{120, 50}, 240),
		request(60, []float64{12, 30, 4}, []float64{20, 25, 5}, []float64{40, 10, 9}, 150),
	}
	for _, r := range reqs {
		sol := constrained.Solve(r)
		space := tank.AvailableSpace(r)
		const steps = 60
		for i := 0; i <= steps; i++ {
			for j := 0; i+j <= steps; j++ {
				w := space * float64(i) / steps
				k := space * float64(j) / steps
				assert.LessOrEqual(t, sol.Objective, tank.Objective(r, w, k)+1e-9)
			}
		}
	}
}

func TestSolve_Deterministic(t *testing.T) {
	r := request(60, []float64{12, 30, 4}, []float64{20, 25, 5}, []float64{40, 10, 9}, 150)
	first := constrained.Solve(r)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, constrained.Solve(r))
	}
}

// TestSolve_Scratch: an empty tank is mixed from scratch to capacity.
// m·t/m·m = 0.5 ⇒ half makeup, half water, exactly on target.
func TestSolve_Scratch(t *testing.T) {
	r := request(0, []float64{0, 0}, []float64{60, 25}, []float64{120, 50}, 200)

	sol := constrained.Solve(r)
	assert.Equal(t, constrained.CandidateScratch, sol.Chosen)
	assert.InDelta(t, 100.0, sol.Recipe.Water, 1e-9)
	assert.InDelta(t, 100.0, sol.Recipe.Makeup, 1e-9)
	assert.Equal(t, tank.StatusExactCorrection, sol.Recipe.Status)
}

func TestSolve_CandidatesStayFeasible(t *testing.T) {
	r := request(100, []float64{150, 45}, []float64{120, 50}, []float64{120, 50}, 240)
	sol := constrained.Solve(r)
	require.NotEmpty(t, sol.Candidates)
	assert.Equal(t, constrained.CandidateBaseline, sol.Candidates[0].Name)
	for _, c := range sol.Candidates {
		assert.GreaterOrEqual(t, c.Water, 0.0, c.Name)
		assert.GreaterOrEqual(t, c.Makeup, 0.0, c.Name)
		assert.LessOrEqual(t, c.Water+c.Makeup, 140+1e-9, c.Name)
	}
}
