// SPDX-License-Identifier: MIT

// Package simulate applies operator-chosen additions to a tank and reports
// the resulting volume and concentrations. Nothing is optimized here; it is
// the sandbox an operator uses to try a recipe before dosing.
//
// Two kinds of addition are supported:
//
//   - Blend: water plus a makeup solution of known composition, in liters.
//   - Doses: water plus pure chemicals, each in its own amount unit
//     (ml, g, L) with a per-unit liquid volume (see tank.VolumePerUnit).
//
// Both use the same mass balance: amount_i = V·c_i + added_i, and the new
// concentration is amount_i divided by the new volume. A new volume below
// tank.DefaultEpsilon yields an all-zero Outcome.
package simulate
