// SPDX-License-Identifier: MIT

// Package vecmath holds the small dense-vector kernels the correction tiers are
// built from: dot products, scalar least-squares projection, a 2×2 Cramer
// solve and interval clamping.
//
// Every kernel is deterministic (fixed 0..n−1 accumulation order), allocation
// free unless it returns a vector, and reports shape problems through the
// sentinels in errors.go instead of panicking.
//
//	s, err := vecmath.Project(c, t) // s* = (c·t)/(c·c)
//	x, y, err := vecmath.Solve2(a11, a12, a21, a22, b1, b2, 1e-9)
package vecmath
