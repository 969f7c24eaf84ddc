// SPDX-License-Identifier: MIT

package constrained

import (
	"math"

	"github.com/katalvlaran/tankmix/tank"
	"github.com/katalvlaran/tankmix/vecmath"
)

// Candidate names, in evaluation order.
const (
	CandidateBaseline = "baseline"
	CandidateInterior = "interior"
	CandidateDilution = "edge:water-only"
	CandidateFortify  = "edge:makeup-only"
	CandidateFill     = "edge:fill"
	CandidateOrigin   = "origin"
	CandidateScratch  = "scratch"
)

// Candidate is one evaluated point of the feasible triangle.
type Candidate struct {
	Name      string
	Water     float64
	Makeup    float64
	Objective float64
}

// Solution is the outcome of Solve.
type Solution struct {
	Recipe    tank.Recipe
	Objective float64

	// Chosen is the name of the winning candidate.
	Chosen string

	// Candidates lists every feasible candidate in evaluation order.
	Candidates []Candidate
}

// solver carries the per-request quantities shared by the candidates.
type solver struct {
	req   tank.Request
	v     float64
	space float64
	eps   float64
	cands []Candidate
}

// Solve returns the best reachable water/makeup recipe for r. It always
// produces a recipe; r must already satisfy tank.Validate.
//
// Stages:
//  1. Empty tank (V = 0): mix from scratch, see scratch.
//  2. Evaluate baseline, interior, the three edges and the origin.
//  3. Keep the lowest objective; ties within ε keep the earlier candidate,
//     so the baseline stands unless something improves on it.
//  4. Status: ExactCorrection when the objective ≤ ε, else BestPossibleCorrection.
//
// Complexity: O(N) time, O(1) candidates.
func Solve(r tank.Request) Solution {
	s := &solver{
		req:   r,
		v:     r.State.Volume,
		space: tank.AvailableSpace(r),
		eps:   r.Eps(),
		cands: make([]Candidate, 0, 6),
	}
	if s.v <= 0 {
		return s.scratch()
	}

	c := r.State.Concentrations
	m := r.Makeup()
	t := r.Targets()
	alphaMin := s.v / (s.v + s.space)

	// Dot products are over equal-length vectors of a validated request.
	cc := vecmath.SumSq(c)
	mm := vecmath.SumSq(m)
	cm, _ := vecmath.Dot(c, m)
	ct, _ := vecmath.Dot(c, t)
	mt, _ := vecmath.Dot(m, t)

	s.add(CandidateBaseline, 0, s.space)

	// interior stationary point: [cc cm; cm mm]·[α β]ᵀ = [ct mt]ᵀ
	if alpha, beta, err := vecmath.Solve2(cc, cm, cm, mm, ct, mt, s.eps); err == nil {
		if alpha > alphaMin && beta > 0 && alpha+beta < 1 {
			total := s.v / alpha
			k := beta * total
			s.add(CandidateInterior, total-s.v-k, k)
		}
	}

	// k = 0: final = α·c, α ∈ [α_min, 1]
	alpha := 1.0
	if cc > 0 {
		alpha = vecmath.Clamp(ct/cc, alphaMin, 1)
	}
	s.add(CandidateDilution, s.v/alpha-s.v, 0)

	// w = 0: final = c + u·(m − c), u = k/(V+k) ∈ [0, 1 − α_min]
	d, _ := vecmath.Sub(m, c)
	gap, _ := vecmath.Sub(t, c)
	u := 0.0
	if dd := vecmath.SumSq(d); dd > 0 {
		num, _ := vecmath.Dot(gap, d)
		u = vecmath.Clamp(num/dd, 0, 1-alphaMin)
	}
	s.add(CandidateFortify, 0, s.v*u/(1-u))

	// w + k = space: final = α_min·c + β·m, β ∈ [0, 1 − α_min]
	beta := 0.0
	if mm > 0 {
		rest := make([]float64, len(t))
		for i := range t {
			rest[i] = t[i] - alphaMin*c[i]
		}
		num, _ := vecmath.Dot(m, rest)
		beta = vecmath.Clamp(num/mm, 0, 1-alphaMin)
	}
	k := beta * (s.v + s.space)
	s.add(CandidateFill, math.Max(0, s.space-k), k)

	s.add(CandidateOrigin, 0, 0)

	return s.pick()
}

// scratch handles an empty tank: the final profile is β·m for any total
// volume, so β* = clamp(m·t/m·m, 0, 1) and the batch is mixed to capacity.
func (s *solver) scratch() Solution {
	m := s.req.Makeup()
	beta := 0.0
	if mm := vecmath.SumSq(m); mm > 0 {
		mt, _ := vecmath.Dot(m, s.req.Targets())
		beta = vecmath.Clamp(mt/mm, 0, 1)
	}
	k := beta * s.space
	s.add(CandidateScratch, s.space-k, k)

	return s.pick()
}

// add evaluates a candidate and keeps it when feasible and finite.
func (s *solver) add(name string, w, k float64) {
	w, k = tank.ClampNonNegative(w, s.eps), tank.ClampNonNegative(k, s.eps)
	if w < 0 || k < 0 || w+k > s.space+s.eps {
		return
	}
	obj := tank.Objective(s.req, w, k)
	if !vecmath.AllFinite(w, k, obj) {
		return
	}
	s.cands = append(s.cands, Candidate{Name: name, Water: w, Makeup: k, Objective: obj})
}

// pick selects the strictly lowest objective, falling back to the baseline
// when no candidate survived.
func (s *solver) pick() Solution {
	if len(s.cands) == 0 {
		base := Candidate{Name: CandidateBaseline, Makeup: s.space, Objective: tank.Objective(s.req, 0, s.space)}
		s.cands = append(s.cands, base)
	}
	best := s.cands[0]
	for _, c := range s.cands[1:] {
		// improvements within ε are rounding noise, not improvements
		if c.Objective < best.Objective && !tank.IsClose(c.Objective, best.Objective, s.eps) {
			best = c
		}
	}

	status := tank.StatusBestPossibleCorrection
	if best.Objective <= s.eps {
		status = tank.StatusExactCorrection
	}

	return Solution{
		Recipe:     tank.Recipe{Water: best.Water, Makeup: best.Makeup, Status: status},
		Objective:  best.Objective,
		Chosen:     best.Name,
		Candidates: s.cands,
	}
}
