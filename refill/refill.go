// SPDX-License-Identifier: MIT

package refill

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/tankmix/simulate"
	"github.com/katalvlaran/tankmix/tank"
)

var (
	// ErrOverTarget: a component already holds more chemical than the recipe allows.
	ErrOverTarget = errors.New("refill: component above target")

	// ErrInsufficientSpace: the chemicals to add do not fit in the tank.
	ErrInsufficientSpace = errors.New("refill: not enough space for the additions")
)

// Plan is a pure-chemical recipe and the tank it produces.
type Plan struct {
	// Doses holds one addition per component, in the amount unit of that
	// component (ml for ml/L, g for g/L, L for L/L).
	Doses []float64

	// Water is the liters of water to add.
	Water float64

	// Outcome is the tank after the additions.
	Outcome simulate.Outcome
}

// Refill returns the doses and water that fill r to capacity at the target
// profile. Makeup compositions in r are ignored.
func Refill(r tank.Request) (Plan, error) {
	const op = "Refill"
	vpu, err := prepare(op, r)
	if err != nil {
		return Plan{}, err
	}

	eps := r.Eps()
	v := r.State.Volume
	doses := make([]float64, len(r.Components))
	liquid := 0.0
	for i, comp := range r.Components {
		have, want := v*r.State.Concentrations[i], r.Capacity*comp.Target
		if have > want && !tank.IsClose(have, want, eps) {
			return Plan{}, fmt.Errorf("%s: %s holds %.2f, full tank needs %.2f: %w",
				op, label(comp), have, want, ErrOverTarget)
		}
		doses[i] = math.Max(0, want-have)
		liquid += doses[i] * vpu[i]
	}

	space := tank.AvailableSpace(r)
	water := space - liquid
	if water < 0 && !tank.IsClose(liquid, space, eps) {
		return Plan{}, fmt.Errorf("%s: chemicals need %.2f L, %.2f L available: %w",
			op, liquid, space, ErrInsufficientSpace)
	}
	water = math.Max(0, water)

	return finish(op, r, water, doses, vpu)
}

// Fortify returns the doses that raise every low component of r to target
// at the current volume. It fails with ErrOverTarget when any component is
// above target, since doses cannot lower a concentration.
func Fortify(r tank.Request) (Plan, error) {
	const op = "Fortify"
	vpu, err := prepare(op, r)
	if err != nil {
		return Plan{}, err
	}

	eps := r.Eps()
	v := r.State.Volume
	doses := make([]float64, len(r.Components))
	liquid := 0.0
	for i, comp := range r.Components {
		c := r.State.Concentrations[i]
		if c > comp.Target && !tank.IsClose(c, comp.Target, eps) {
			return Plan{}, fmt.Errorf("%s: %s at %.2f, target %.2f: %w",
				op, label(comp), c, comp.Target, ErrOverTarget)
		}
		doses[i] = math.Max(0, (comp.Target-c)*v)
		liquid += doses[i] * vpu[i]
	}

	space := tank.AvailableSpace(r)
	if liquid > space && !tank.IsClose(liquid, space, eps) {
		return Plan{}, fmt.Errorf("%s: doses need %.2f L, %.2f L available: %w",
			op, liquid, space, ErrInsufficientSpace)
	}

	return finish(op, r, 0, doses, vpu)
}

// prepare validates r and resolves the per-unit liquid volume of every component.
func prepare(op string, r tank.Request) ([]float64, error) {
	if err := tank.Validate(r); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	vpu := make([]float64, len(r.Components))
	for i, comp := range r.Components {
		u, err := tank.VolumePerUnit(comp.Unit)
		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", op, label(comp), err)
		}
		vpu[i] = u
	}

	return vpu, nil
}

func finish(op string, r tank.Request, water float64, doses, vpu []float64) (Plan, error) {
	out, err := simulate.Doses(r.State, water, doses, vpu)
	if err != nil {
		return Plan{}, fmt.Errorf("%s: %w", op, err)
	}

	return Plan{Doses: doses, Water: water, Outcome: out}, nil
}

func label(c tank.Component) string {
	if c.Name != "" {
		return c.Name
	}

	return c.ID
}
