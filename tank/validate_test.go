// SPDX-License-Identifier: MIT

package tank_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/tankmix/tank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoComponent builds a well-formed 2-chemical request used as a base for mutations.
func twoComponent() tank.Request {
	return tank.Request{
		State: tank.State{Volume: 100, Concentrations: []float64{150, 45}},
		Components: []tank.Component{
			{ID: "A", Name: "Acid", Unit: "ml/L", Target: 120, Makeup: 120},
			{ID: "B", Name: "Brightener", Unit: "ml/L", Target: 50, Makeup: 50},
		},
		Capacity: 240,
	}
}

func TestValidate_WellFormed(t *testing.T) {
	require.NoError(t, tank.Validate(twoComponent()))
}

func TestValidate_Violations(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(r *tank.Request)
		want   error
	}{
		{"negative epsilon", func(r *tank.Request) { r.Epsilon = -1 }, tank.ErrNegativeEpsilon},
		{"NaN epsilon", func(r *tank.Request) { r.Epsilon = math.NaN() }, tank.ErrNaNInf},
		{"no components", func(r *tank.Request) { r.Components = nil; r.State.Concentrations = nil }, tank.ErrNoComponents},
		{"length mismatch", func(r *tank.Request) { r.State.Concentrations = []float64{1} }, tank.ErrLengthMismatch},
		{"negative volume", func(r *tank.Request) { r.State.Volume = -1 }, tank.ErrNegativeVolume},
		{"Inf volume", func(r *tank.Request) { r.State.Volume = math.Inf(1) }, tank.ErrNaNInf},
		{"negative capacity", func(r *tank.Request) { r.Capacity = -5; r.State.Volume = 0 }, tank.ErrNegativeCapacity},
		{"capacity below volume", func(r *tank.Request) { r.Capacity = 99 }, tank.ErrCapacityBelowVolume},
		{"negative measured", func(r *tank.Request) { r.State.Concentrations[1] = -0.1 }, tank.ErrNegativeConcentration},
		{"negative target", func(r *tank.Request) { r.Components[0].Target = -1 }, tank.ErrNegativeConcentration},
		{"NaN makeup", func(r *tank.Request) { r.Components[1].Makeup = math.NaN() }, tank.ErrNaNInf},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := twoComponent()
			tc.mutate(&r)
			err := tank.Validate(r)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestValidate_MessageNamesComponent(t *testing.T) {
	r := twoComponent()
	r.Components[1].Target = -3
	err := tank.Validate(r)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "B target")
}

func TestValidate_CapacityEqualVolumeIsValid(t *testing.T) {
	r := twoComponent()
	r.Capacity = r.State.Volume
	assert.NoError(t, tank.Validate(r))
}
