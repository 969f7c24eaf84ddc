// SPDX-License-Identifier: MIT

package vecmath

import "math"

// Dot returns Σ a_i·b_i.
//
// Errors:
//   - ErrDimensionMismatch if len(a) != len(b).
//
// Complexity: O(n).
func Dot(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, opErrorf(opDot, ErrDimensionMismatch)
	}
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum, nil
}

// SumSq returns Σ a_i², the squared Euclidean norm.
func SumSq(a []float64) float64 {
	var sum float64
	for _, v := range a {
		sum += v * v
	}

	return sum
}

// Sub returns a freshly allocated a − b.
func Sub(a, b []float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, opErrorf(opSub, ErrDimensionMismatch)
	}
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}

	return out, nil
}

// Project returns the scalar s minimizing ‖s·onto − v‖², i.e.
//
//	s* = (onto·v) / (onto·onto)
//
// the ordinary least-squares coefficient of v regressed on onto.
//
// Errors:
//   - ErrDimensionMismatch for different lengths.
//   - ErrZeroVector when onto has zero norm.
func Project(onto, v []float64) (float64, error) {
	num, err := Dot(onto, v)
	if err != nil {
		return 0, opErrorf(opProject, err)
	}
	den := SumSq(onto)
	if den == 0 {
		return 0, opErrorf(opProject, ErrZeroVector)
	}

	return num / den, nil
}

// Clamp limits x to [lo, hi]. lo must not exceed hi.
func Clamp(x, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, x))
}

// AllFinite reports whether no element of a is NaN or ±Inf.
func AllFinite(a ...float64) bool {
	for _, v := range a {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
