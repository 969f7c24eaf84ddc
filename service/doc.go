// SPDX-License-Identifier: MIT

// Package service evaluates catalog modules against operator readings and
// produces correction reports. It is the only layer that logs, emits
// lifecycle signals, or runs concurrently; the numeric packages stay pure.
//
// Dispatch by module type:
//   - corrector: engine.Reconcile with the module's makeup composition.
//   - dosing: refill.Fortify when no component is above target and the
//     doses fit; otherwise engine.Reconcile with makeup equal to target.
//   - refill: refill.Refill up to full capacity.
//
// EvaluateAll fans readings out over a bounded errgroup and returns reports
// in reading order. Watch re-runs EvaluateAll every time the readings file
// changes.
//
// Signals (capitan): tankmix.report.ready, tankmix.report.failed,
// tankmix.readings.reloaded.
package service
