// SPDX-License-Identifier: MIT

package tank

import "math"

// DefaultEpsilon is the equality tolerance used when a request leaves Epsilon at 0.
const DefaultEpsilon = 1e-9

// IsClose reports whether a and b agree within eps.
//
// The comparison is absolute for magnitudes below 1 and relative above:
//
//	|a − b| ≤ eps · max(1, |a|, |b|)
//
// so that 120 ml/L and 120.0000000001 ml/L compare equal while two volumes
// near zero are not declared equal just because both are small.
// NaN is never close to anything.
func IsClose(a, b, eps float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	if a == b {
		return true
	}
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))

	return math.Abs(a-b) <= eps*scale
}

// ClampNonNegative maps values in [−eps, 0) to 0 and leaves the rest untouched.
// Values below −eps are returned unchanged so callers can still reject them.
func ClampNonNegative(v, eps float64) float64 {
	if v < 0 && v >= -eps {
		return 0
	}

	return v
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
