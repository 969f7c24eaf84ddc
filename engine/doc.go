// SPDX-License-Identifier: MIT

// Package engine orchestrates the correction tiers into a single pure
// function from a tank.Request to a tank.Result.
//
// State machine (deterministic, stateless per request):
//
//	Validate ─▶ CheckPerfect ─▶ CheckSpace ─▶ TryExact ─▶ TryDilution ─▶ TryConstrained
//	   │             │              │            │             │               │
//	   ▼             ▼              ▼            └──────┬──────┴───────────────┘
//	Invalid       Perfect       Infeasible              ▼
//	                                                Finalize ─▶ Done
//
//   - TryExact runs only for exactly two components.
//   - TryDilution runs only when every component is at or above target.
//   - TryConstrained always produces a recipe.
//
// A stage that does not apply records its reason in Result.Trace and hands
// over to the next one; numerical degeneracies never surface as errors.
//
// With WithLegacyFallback the dilution and constrained tiers are replaced by
// the historical rule set: dilute by the worst offender when everything is
// high, otherwise fill the remaining space with makeup.
// Use it to reproduce recipes issued before the optimizing tiers existed:
// a tank at 150/45 toward 120/50 with makeup equal to target and 140 L free
// gets the historical 140 L of makeup instead of the 19.82 L water plus
// 120.18 L makeup blend that minimizes the residual.
//
// An *Engine is immutable after New and safe for concurrent use.
package engine
