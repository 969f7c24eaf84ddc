// SPDX-License-Identifier: MIT

// Package constrained implements the third correction tier: the general
// water + makeup optimum inside the tank's remaining capacity.
//
// Constrained Blend — Tier 3
//
// Description:
//
//	minimize_{w,k}  Σ_i ( (V·c_i + k·m_i)/(V + w + k) − t_i )²
//	subject to      w ≥ 0,  k ≥ 0,  w + k ≤ space
//
//	The feasible region is a right triangle with legs of length space on
//	both axes. The objective is rational in (w, k) and not convex there.
//
// Change of variables:
//
//	Let D = V + w + k be the final volume and
//
//	  α = V/D      β = k/D
//
//	Then (V·c_i + k·m_i)/D = α·c_i + β·m_i, linear in (α, β). The inverse
//	map is D = V/α, k = β·D, w = D − V − k, so for V > 0 the map is a
//	bijection and each constraint translates directly:
//
//	  k ≥ 0            ⇔  β ≥ 0
//	  w ≥ 0            ⇔  α + β ≤ 1
//	  w + k ≤ space    ⇔  D ≤ V + space  ⇔  α ≥ α_min = V/(V + space)
//
//	The task becomes min ‖α·c + β·m − t‖² over another triangle, a convex
//	quadratic. Its unconstrained minimum solves the 2×2 normal equations
//
//	  | c·c  c·m | |α|   |c·t|
//	  | c·m  m·m | |β| = |m·t|
//
//	and when that point leaves the triangle the minimum lies on an edge,
//	each edge being a one-dimensional least-squares fit clamped to its
//	segment:
//
//	  edge k = 0         (β = 0)          α = clamp(c·t/c·c, α_min, 1)
//	  edge w = 0         (α + β = 1)      u = clamp((t−c)·(m−c)/‖m−c‖², 0, 1−α_min)
//	  edge w + k = space (α = α_min)      β = clamp(m·(t − α_min·c)/m·m, 0, 1−α_min)
//
// Algorithm Outline:
//  1. Empty tank (V = 0): the profile is β·m for any volume, so
//     β = clamp(m·t/m·m, 0, 1) and the batch is mixed to capacity.
//  2. Evaluate the baseline (w = 0, k = space).
//  3. Evaluate the interior stationary point when it lies strictly inside.
//  4. Evaluate the three edge minima and the origin.
//  5. Drop infeasible or non-finite candidates; keep the lowest objective,
//     where an improvement within ε does not displace an earlier candidate.
//  6. Report StatusExactCorrection when the objective is ≤ ε, otherwise
//     StatusBestPossibleCorrection.
//
// No iteration and no randomness: identical input always yields identical
// output.
//
// Complexity:
//
//	Time   = O(N)
//	Memory = O(N) (one scratch vector for the fill edge)
//
// Errors:
//   - None. Solve always returns a recipe; the baseline stands when no
//     candidate improves on it.
package constrained
