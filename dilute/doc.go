// SPDX-License-Identifier: MIT

// Package dilute implements the second correction tier: the least-squares
// optimal water-only correction for a tank whose every chemical sits at or
// above target.
//
// Optimal Dilution — Tier 2
//
// Description:
//
//	Adding w liters of water scales every concentration by the same factor
//
//	  f = V / (V + w)
//
//	because no species is removed selectively. The N-dimensional problem
//	therefore collapses to one parameter: pick the scalar s minimizing
//	‖s·c − t‖². Setting the derivative 2·c·(s·c − t) to zero gives the
//	projection of t onto c,
//
//	  s* = (c·t) / (c·c)
//
//	and w = V·(1/s* − 1) converts it back to liters. Only 0 < s* < 1
//	describes a useful dilution.
//
// Algorithm Outline:
//  1. Require every c_i ≥ t_i; a reading within ε below its target counts
//     as on target.
//  2. Reject an empty tank.
//  3. Compute s* by projection; reject s* ≤ 0 and s* ≥ 1 (within ε of 1
//     counts as 1).
//  4. w = V·(1/s* − 1). When w exceeds the available space, add the space
//     and report StatusBestPossibleCorrection; otherwise report
//     StatusOptimalDilution.
//
// Complexity:
//
//	Time   = O(N)
//	Memory = O(1)
//
// Errors:
//   - tank.ErrNotApplicable wraps every rejection above; control passes to
//     the constrained tier.
package dilute
