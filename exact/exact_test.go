// SPDX-License-Identifier: MIT

package exact_test

import (
	"testing"

	"github.com/katalvlaran/tankmix/exact"
	"github.com/katalvlaran/tankmix/tank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func request(v float64, c, t, m []float64, capacity float64) tank.Request {
	comps := make([]tank.Component, len(t))
	for i := range t {
		comps[i] = tank.Component{ID: string(rune('A' + i)), Unit: "ml/L", Target: t[i], Makeup: m[i]}
	}

	return tank.Request{State: tank.State{Volume: v, Concentrations: c}, Components: comps, Capacity: capacity}
}

// TestSolve_DistinctMakeup checks a fortification whose makeup differs from target:
// 100 L at 150/45, target 120/50, makeup 100/60 ⇒ w = 200/22, k = 2100/22.
func TestSolve_DistinctMakeup(t *testing.T) {
	r := request(100, []float64{150, 45}, []float64{120, 50}, []float64{100, 60}, 240)

	rec, err := exact.Solve(r)
	require.NoError(t, err)
	assert.Equal(t, tank.StatusExactCorrection, rec.Status)
	assert.InDelta(t, 200.0/22, rec.Water, 1e-9)
	assert.InDelta(t, 2100.0/22, rec.Makeup, 1e-9)

	vol, conc := tank.Finalize(r.State, rec.Water, rec.Makeup, r.Makeup())
	assert.InDelta(t, 100+2300.0/22, vol, 1e-9)
	assert.InDelta(t, 120.0, conc[0], 1e-9)
	assert.InDelta(t, 50.0, conc[1], 1e-9)
}

func TestSolve_NotApplicable(t *testing.T) {
	cases := []struct {
		name string
		req  tank.Request
	}{
		{
			name: "three components",
			req:  request(100, []float64{1, 2, 3}, []float64{1, 1, 1}, []float64{2, 2, 2}, 200),
		},
		{
			name: "makeup parallel to target",
			req:  request(100, []float64{150, 45}, []float64{120, 50}, []float64{120, 50}, 240),
		},
		{
			name: "makeup proportional to target",
			req:  request(100, []float64{150, 45}, []float64{120, 50}, []float64{240, 100}, 240),
		},
		{
			name: "negative water",
			req:  request(100, []float64{80, 55}, []float64{100, 50}, []float64{120, 40}, 200),
		},
		{
			name: "exceeds capacity",
			req:  request(100, []float64{150, 45}, []float64{120, 50}, []float64{100, 60}, 150),
		},
		{
			name: "empty tank",
			req:  request(0, []float64{0, 0}, []float64{120, 50}, []float64{100, 60}, 150),
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := exact.Solve(tc.req)
			assert.ErrorIs(t, err, tank.ErrNotApplicable)
		})
	}
}

// TestSolve_ClampsNoise ensures a blend that needs no water at all, computed
// with rounding noise, reports exactly zero water.
func TestSolve_ClampsNoise(t *testing.T) {
	// 100 L at 60/20 plus 100 L of 180/80 gives exactly 120/50 with no water.
	r := request(100, []float64{60, 20}, []float64{120, 50}, []float64{180, 80}, 200)

	rec, err := exact.Solve(r)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, rec.Water, 0.0)
	assert.InDelta(t, 0.0, rec.Water, 1e-9)
	assert.InDelta(t, 100.0, rec.Makeup, 1e-9)
}
