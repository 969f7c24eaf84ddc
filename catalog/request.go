// SPDX-License-Identifier: MIT

package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/tankmix/tank"
)

var (
	// ErrUnknownModule is returned for a reading that names no catalog module.
	ErrUnknownModule = errors.New("catalog: unknown module")

	// ErrMissingConcentration is returned when a reading lacks a chemical of its module.
	ErrMissingConcentration = errors.New("catalog: missing concentration")

	// ErrUnknownChemical is returned when a reading carries a chemical its module does not track.
	ErrUnknownChemical = errors.New("catalog: unknown chemical")
)

// Components returns the tank components of m in catalog order. Dosing and
// refill modules use their target profile as the makeup composition.
func (m Module) Components() []tank.Component {
	out := make([]tank.Component, len(m.Chemicals))
	for i, ch := range m.Chemicals {
		makeup := ch.Makeup
		if m.Type != KindCorrector {
			makeup = ch.Target
		}
		out[i] = tank.Component{ID: ch.ID, Name: ch.Name, Unit: ch.Unit, Target: ch.Target, Makeup: makeup}
	}

	return out
}

// Request builds the reconciliation request of m for reading r.
// eps is copied into the request; zero selects the engine default.
func (m Module) Request(r Reading, eps float64) (tank.Request, error) {
	if r.Module != m.Name {
		return tank.Request{}, fmt.Errorf("reading for %q applied to %q: %w", r.Module, m.Name, ErrUnknownModule)
	}

	conc := make([]float64, len(m.Chemicals))
	known := make(map[string]struct{}, len(m.Chemicals))
	for i, ch := range m.Chemicals {
		c, ok := r.Concentrations[ch.ID]
		if !ok {
			return tank.Request{}, fmt.Errorf("%s: %s: %w", m.Name, ch.ID, ErrMissingConcentration)
		}
		conc[i] = c
		known[ch.ID] = struct{}{}
	}

	var extra []string
	for id := range r.Concentrations {
		if _, ok := known[id]; !ok {
			extra = append(extra, id)
		}
	}
	if len(extra) > 0 {
		sort.Strings(extra)

		return tank.Request{}, fmt.Errorf("%s: %s: %w", m.Name, strings.Join(extra, ", "), ErrUnknownChemical)
	}

	return tank.Request{
		State:      tank.State{Volume: r.Volume, Concentrations: conc},
		Components: m.Components(),
		Capacity:   m.Capacity,
		Epsilon:    eps,
	}, nil
}

// Pair is a module with one of its readings.
type Pair struct {
	Module  Module
	Reading Reading
}

// Match pairs every reading with its module, in reading order.
func (c *Catalog) Match(rs *Readings) ([]Pair, error) {
	out := make([]Pair, 0, len(rs.Readings))
	for _, r := range rs.Readings {
		m, ok := c.Module(r.Module)
		if !ok {
			return nil, fmt.Errorf("%q: %w", r.Module, ErrUnknownModule)
		}
		out = append(out, Pair{Module: m, Reading: r})
	}

	return out, nil
}
