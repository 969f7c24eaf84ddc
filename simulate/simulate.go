// SPDX-License-Identifier: MIT

package simulate

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/tankmix/tank"
)

// ErrNegativeAddition is returned when an addition is below zero.
var ErrNegativeAddition = errors.New("simulate: additions must be non-negative")

// Outcome is the tank after an addition.
type Outcome struct {
	Volume         float64
	Concentrations []float64
}

// String renders the outcome as "V L [c1 c2 ...]".
func (o Outcome) String() string {
	parts := make([]string, len(o.Concentrations))
	for i, c := range o.Concentrations {
		parts[i] = fmt.Sprintf("%.2f", c)
	}

	return fmt.Sprintf("%.2f L [%s]", o.Volume, strings.Join(parts, " "))
}

// Blend adds water and makeup liters of a solution with the given composition
// to s.
func Blend(s tank.State, water, makeup float64, composition []float64) (Outcome, error) {
	if err := check(s, len(composition), water, makeup); err != nil {
		return Outcome{}, fmt.Errorf("Blend: %w", err)
	}
	for _, m := range composition {
		if math.IsNaN(m) || math.IsInf(m, 0) {
			return Outcome{}, fmt.Errorf("Blend: composition: %w", tank.ErrNaNInf)
		}
	}

	added := make([]float64, len(composition))
	for i, m := range composition {
		added[i] = makeup * m
	}

	return mix(s, s.Volume+water+makeup, added), nil
}

// Doses adds water liters and one dose per component to s. doses[i] is in the
// amount unit of component i and occupies volumePerUnit[i] liters per unit.
func Doses(s tank.State, water float64, doses, volumePerUnit []float64) (Outcome, error) {
	if len(volumePerUnit) != len(doses) {
		return Outcome{}, fmt.Errorf("Doses: %d doses, %d unit volumes: %w",
			len(doses), len(volumePerUnit), tank.ErrLengthMismatch)
	}
	if err := check(s, len(doses), append([]float64{water}, doses...)...); err != nil {
		return Outcome{}, fmt.Errorf("Doses: %w", err)
	}

	volume := s.Volume + water
	for i, d := range doses {
		volume += d * volumePerUnit[i]
	}

	return mix(s, volume, doses), nil
}

// check validates the tank state and the additions.
func check(s tank.State, n int, additions ...float64) error {
	if len(s.Concentrations) != n {
		return fmt.Errorf("%d concentrations, %d added components: %w",
			len(s.Concentrations), n, tank.ErrLengthMismatch)
	}
	if math.IsNaN(s.Volume) || math.IsInf(s.Volume, 0) {
		return tank.ErrNaNInf
	}
	if s.Volume < 0 {
		return tank.ErrNegativeVolume
	}
	for _, v := range additions {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return tank.ErrNaNInf
		}
		if v < 0 {
			return ErrNegativeAddition
		}
	}

	return nil
}

// mix divides the combined amounts by volume.
func mix(s tank.State, volume float64, added []float64) Outcome {
	out := Outcome{Concentrations: make([]float64, len(added))}
	if volume < tank.DefaultEpsilon {
		return out
	}
	out.Volume = volume
	for i, c := range s.Concentrations {
		out.Concentrations[i] = (s.Volume*c + added[i]) / volume
	}

	return out
}
