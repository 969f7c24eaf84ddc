// SPDX-License-Identifier: MIT
// Package vecmath: sentinel error set.
// Kernels return these sentinels wrapped with an operation tag via opErrorf;
// callers match them with errors.Is.

package vecmath

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates operands of different lengths.
	ErrDimensionMismatch = errors.New("vecmath: dimension mismatch")

	// ErrZeroVector indicates a projection onto a vector of zero norm.
	ErrZeroVector = errors.New("vecmath: zero vector")

	// ErrSingular indicates a 2×2 system whose determinant vanishes within tolerance.
	ErrSingular = errors.New("vecmath: singular system")

	// ErrNaNInf signals a NaN or ±Inf operand or result.
	ErrNaNInf = errors.New("vecmath: NaN or Inf encountered")
)

// Operation tags for uniform wrapping.
const (
	opDot     = "Dot"
	opSub     = "Sub"
	opProject = "Project"
	opSolve2  = "Solve2"
)

// opErrorf wraps err with an operation tag, preserving it for errors.Is.
// Only call with a non-nil err.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
