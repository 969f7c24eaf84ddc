// SPDX-License-Identifier: MIT

package dilute_test

import (
	"testing"

	"github.com/katalvlaran/tankmix/dilute"
	"github.com/katalvlaran/tankmix/tank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func request(v float64, c, t []float64, capacity float64) tank.Request {
	comps := make([]tank.Component, len(t))
	for i := range t {
		comps[i] = tank.Component{ID: string(rune('A' + i)), Target: t[i], Makeup: t[i]}
	}

	return tank.Request{State: tank.State{Volume: v, Concentrations: c}, Components: comps, Capacity: capacity}
}

// TestSolve_TwoComponentsHigh: 120 L at 130/58 toward 120/50.
// s* = 18500/20264 ⇒ w = 120·(20264/18500 − 1) ≈ 11.44 L.
func TestSolve_TwoComponentsHigh(t *testing.T) {
	r := request(120, []float64{130, 58}, []float64{120, 50}, 260)

	rec, err := dilute.Solve(r)
	require.NoError(t, err)
	assert.Equal(t, tank.StatusOptimalDilution, rec.Status)
	assert.InDelta(t, 120*(20264.0/18500-1), rec.Water, 1e-9)
	assert.InDelta(t, 11.44, rec.Water, 0.01)
	assert.Zero(t, rec.Makeup)
}

// TestSolve_ThreeComponentsHigh mirrors a conditioner/copper/peroxide bath
// sitting slightly above its targets.
func TestSolve_ThreeComponentsHigh(t *testing.T) {
	r := request(180, []float64{190, 22, 7.5}, []float64{180, 20, 7}, 260)

	rec, err := dilute.Solve(r)
	require.NoError(t, err)
	assert.Equal(t, tank.StatusOptimalDilution, rec.Status)
	assert.Greater(t, rec.Water, 0.0)
	assert.Less(t, rec.Water, 80.0)
	assert.Zero(t, rec.Makeup)
}

// TestSolve_ProjectionIsOptimal checks that nudging the water volume either way
// never lowers the residual.
func TestSolve_ProjectionIsOptimal(t *testing.T) {
	r := request(150, []float64{110, 55}, []float64{100, 50}, 250)

	rec, err := dilute.Solve(r)
	require.NoError(t, err)
	best := tank.Objective(r, rec.Water, 0)
	assert.LessOrEqual(t, best, tank.Objective(r, rec.Water+0.5, 0))
	assert.LessOrEqual(t, best, tank.Objective(r, rec.Water-0.5, 0))
}

func TestSolve_ClampedToSpace(t *testing.T) {
	// needs 100 L of water, only 20 L of room
	r := request(100, []float64{200, 100}, []float64{100, 50}, 120)

	rec, err := dilute.Solve(r)
	require.NoError(t, err)
	assert.Equal(t, tank.StatusBestPossibleCorrection, rec.Status)
	assert.Equal(t, 20.0, rec.Water)
}

func TestSolve_NotApplicable(t *testing.T) {
	cases := []struct {
		name string
		req  tank.Request
	}{
		{"component below target", request(100, []float64{80, 55}, []float64{100, 50}, 200)},
		{"already at target", request(100, []float64{100, 50}, []float64{100, 50}, 200)},
		{"empty tank", request(0, []float64{10, 10}, []float64{5, 5}, 200)},
		{"zero targets", request(100, []float64{10, 10}, []float64{0, 0}, 200)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := dilute.Solve(tc.req)
			assert.ErrorIs(t, err, tank.ErrNotApplicable)
		})
	}
}

func TestApplicable(t *testing.T) {
	assert.True(t, dilute.Applicable(request(1, []float64{5, 5}, []float64{5, 4}, 2)))
	assert.False(t, dilute.Applicable(request(1, []float64{5, 3}, []float64{5, 4}, 2)))

	// a hair below target is on target within ε
	assert.True(t, dilute.Applicable(request(100, []float64{130, 50 - 1e-12}, []float64{120, 50}, 260)))
	assert.False(t, dilute.Applicable(request(100, []float64{130, 50 - 1e-3}, []float64{120, 50}, 260)))
}

// TestSolve_TargetWithinEpsilon: 100 L at 130/50⁻ toward 120/50 dilutes as if
// B sat exactly on target. s* = 18100/19400 ⇒ w = 100·(19400/18100 − 1).
func TestSolve_TargetWithinEpsilon(t *testing.T) {
	r := request(100, []float64{130, 50 - 1e-12}, []float64{120, 50}, 260)

	rec, err := dilute.Solve(r)
	require.NoError(t, err)
	assert.Equal(t, tank.StatusOptimalDilution, rec.Status)
	assert.InDelta(t, 100*(19400.0/18100-1), rec.Water, 1e-9)
}
