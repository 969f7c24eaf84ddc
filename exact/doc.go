// SPDX-License-Identifier: MIT

// Package exact implements the first correction tier: an exact blend of water
// and makeup that lands a two-chemical tank precisely on its target profile.
//
// Exact Blend — Tier 1
//
// Description:
//
//	A tank holding V liters at concentrations c receives w liters of water
//	and k liters of makeup at concentrations m. When exactly two chemicals
//	are tracked, the pair (w, k) that hits the target profile t is fixed by
//	the two mass-balance equations and can be computed in closed form.
//
// Derivation:
//
//	V·c_i + k·m_i = (V + w + k)·t_i
//	⇔ k·(m_i − t_i) − w·t_i = V·(t_i − c_i)        i = 1, 2
//
//	The coefficient matrix is
//
//	  | m₁ − t₁   −t₁ |
//	  | m₂ − t₂   −t₂ |
//
//	and its determinant reduces to t₁·m₂ − m₁·t₂. It vanishes exactly when
//	the makeup composition is parallel to the target profile; in that case
//	no unique blend exists and the tier is not applicable.
//
// Algorithm Outline:
//  1. Reject N ≠ 2 (over- or under-determined) and an empty tank.
//  2. Reject a makeup parallel to the target (t₁·m₂ ≈ m₁·t₂ within ε).
//  3. Solve the 2×2 system for (k, w) by Cramer's rule.
//  4. Reject negative additions beyond ε; clamp smaller noise to 0.
//  5. Reject a blend whose total w + k exceeds the available space.
//  6. Return the recipe with StatusExactCorrection.
//
// Complexity:
//
//	Time   = O(1)
//	Memory = O(1)
//
// Errors:
//   - tank.ErrNotApplicable wraps every rejection above; the constrained
//     tier handles those requests.
package exact
