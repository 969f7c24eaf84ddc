// SPDX-License-Identifier: MIT

package vecmath

import "math"

// Solve2 solves the 2×2 linear system
//
//	| a11 a12 | |x|   |b1|
//	| a21 a22 | |y| = |b2|
//
// by Cramer's rule.
//
// The system is declared singular when the two products of the determinant
// agree within eps relative to their magnitude:
//
//	|a11·a22 − a12·a21| ≤ eps · max(1, |a11·a22|, |a12·a21|)
//
// which keeps the test meaningful whatever the units of the coefficients.
//
// Errors:
//   - ErrSingular when the determinant vanishes within eps.
//   - ErrNaNInf when an input or the solution is not finite.
//
// Complexity: O(1).
func Solve2(a11, a12, a21, a22, b1, b2, eps float64) (x, y float64, err error) {
	if !AllFinite(a11, a12, a21, a22, b1, b2) {
		return 0, 0, opErrorf(opSolve2, ErrNaNInf)
	}
	p, q := a11*a22, a12*a21
	det := p - q
	scale := math.Max(1, math.Max(math.Abs(p), math.Abs(q)))
	if math.Abs(det) <= eps*scale {
		return 0, 0, opErrorf(opSolve2, ErrSingular)
	}

	x = (b1*a22 - a12*b2) / det
	y = (a11*b2 - b1*a21) / det
	if !AllFinite(x, y) {
		return 0, 0, opErrorf(opSolve2, ErrNaNInf)
	}

	return x, y, nil
}
