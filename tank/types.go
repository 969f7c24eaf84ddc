// SPDX-License-Identifier: MIT

package tank

import "fmt"

// Component is one tracked chemical species of a tank.
//
// Target is the desired concentration; Makeup is the concentration of the same
// species in the concentrate (makeup solution) used to fortify the tank.
// Unit is informational for the engine and drives VolumePerUnit for pure-chemical
// calculators.
type Component struct {
	ID     string
	Name   string
	Unit   string
	Target float64
	Makeup float64
}

// State is a single measurement snapshot of a tank.
type State struct {
	// Volume is the liquid volume currently in the tank, in liters.
	Volume float64

	// Concentrations holds one measured value per Component, in component order.
	Concentrations []float64
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	c := make([]float64, len(s.Concentrations))
	copy(c, s.Concentrations)

	return State{Volume: s.Volume, Concentrations: c}
}

// Request is the complete, immutable input of one reconciliation.
type Request struct {
	State      State
	Components []Component

	// Capacity is the total volume the tank can hold, in liters.
	Capacity float64

	// Epsilon is the equality tolerance. Zero selects DefaultEpsilon.
	Epsilon float64
}

// Eps returns the effective tolerance of r.
func (r Request) Eps() float64 {
	if r.Epsilon == 0 {
		return DefaultEpsilon
	}

	return r.Epsilon
}

// Targets returns the target profile t in component order.
func (r Request) Targets() []float64 {
	out := make([]float64, len(r.Components))
	for i, c := range r.Components {
		out[i] = c.Target
	}

	return out
}

// Makeup returns the makeup composition m in component order.
func (r Request) Makeup() []float64 {
	out := make([]float64, len(r.Components))
	for i, c := range r.Components {
		out[i] = c.Makeup
	}

	return out
}

// Status classifies a correction outcome.
type Status int

const (
	// StatusInvalidRequest: the request failed validation; no stage ran.
	StatusInvalidRequest Status = iota

	// StatusPerfect: every concentration already matches its target.
	StatusPerfect

	// StatusExactCorrection: the recipe reaches the target profile exactly.
	StatusExactCorrection

	// StatusOptimalDilution: water alone gives the least-squares optimum.
	StatusOptimalDilution

	// StatusBestPossibleCorrection: the closest reachable profile within capacity.
	StatusBestPossibleCorrection

	// StatusInfeasible: no space is left and the tank is off target.
	StatusInfeasible
)

var statusNames = [...]string{
	StatusInvalidRequest:         "INVALID_REQUEST",
	StatusPerfect:                "PERFECT",
	StatusExactCorrection:        "EXACT_CORRECTION",
	StatusOptimalDilution:        "OPTIMAL_DILUTION",
	StatusBestPossibleCorrection: "BEST_POSSIBLE_CORRECTION",
	StatusInfeasible:             "INFEASIBLE",
}

// String implements fmt.Stringer.
func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return fmt.Sprintf("Status(%d)", int(s))
	}

	return statusNames[s]
}

// MarshalText renders the status name so reports encode readably.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Tier names the stage of the engine that produced a Result.
type Tier int

const (
	TierNone Tier = iota
	TierValidation
	TierPerfect
	TierCapacity
	TierExact
	TierDilution
	TierConstrained
	TierLegacy
)

var tierNames = [...]string{
	TierNone:        "none",
	TierValidation:  "validation",
	TierPerfect:     "perfect",
	TierCapacity:    "capacity",
	TierExact:       "exact",
	TierDilution:    "dilution",
	TierConstrained: "constrained",
	TierLegacy:      "legacy",
}

// String implements fmt.Stringer.
func (t Tier) String() string {
	if t < 0 || int(t) >= len(tierNames) {
		return fmt.Sprintf("Tier(%d)", int(t))
	}

	return tierNames[t]
}

// Recipe is what a correction stage proposes: liters of water and makeup to add.
type Recipe struct {
	Water  float64
	Makeup float64
	Status Status
}

// Attempt records a stage the engine tried and why it did not decide the result.
type Attempt struct {
	Tier   Tier
	Reason string
}

// Result is the complete answer of one reconciliation.
type Result struct {
	Status Status

	WaterToAdd  float64
	MakeupToAdd float64

	FinalVolume         float64
	FinalConcentrations []float64

	// Message explains InvalidRequest and Infeasible outcomes.
	Message string

	// Tier is the stage that decided the result.
	Tier Tier

	// Objective is Σ(final_i − t_i)² at the final state.
	Objective float64

	// Trace lists the stages skipped before Tier, in order.
	Trace []Attempt
}
