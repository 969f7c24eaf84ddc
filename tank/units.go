// SPDX-License-Identifier: MIT

package tank

import (
	"errors"
	"strings"
)

// ErrUnknownUnit is returned by VolumePerUnit for an unrecognized unit.
var ErrUnknownUnit = errors.New("tank: unknown concentration unit")

// VolumePerUnit returns the liters of pure chemical that one unit of amount
// occupies, for a concentration expressed in unit.
//
//	ml/L → amount is in ml  → 0.001 L per ml
//	L/L  → amount is in L   → 1 L per L
//	g/L, mg/L, kg/L → solids, volume taken as negligible → 0
//
// An empty unit is treated as ml/L, the unit every tank in the field reports.
func VolumePerUnit(unit string) (float64, error) {
	switch strings.ToLower(strings.ReplaceAll(strings.TrimSpace(unit), " ", "")) {
	case "", "ml/l":
		return 1e-3, nil
	case "l/l":
		return 1, nil
	case "g/l", "mg/l", "kg/l":
		return 0, nil
	default:
		return 0, fieldErrorf(unit, ErrUnknownUnit)
	}
}
