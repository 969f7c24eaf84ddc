// Package tankmix reconciles process-tank chemistry: given what a tank holds
// now, what it should hold, and how much room is left, it says how many
// liters of water and makeup solution to add.
//
// What is in the box?
//
//	tank/        — request/result types, validation, tolerance, mass balance, units
//	vecmath/     — small dense vector helpers and a 2×2 linear solver
//	exact/       — tier 1: exact two-component water+makeup blend (Cramer's rule)
//	dilute/      — tier 2: least-squares water-only dilution
//	constrained/ — tier 3: bounded water+makeup search over the feasible triangle
//	engine/      — the tiered state machine, plus the legacy high/low fallback
//	simulate/    — sandbox: apply a blend or pure doses and see the result
//	refill/      — pure-chemical refill to capacity and dose-by-dose fortification
//	catalog/     — plant modules and readings from TOML or YAML
//	service/     — concurrent evaluation, reports, lifecycle signals, file watching
//	logging/     — zerolog setup with environment overrides
//	watch/       — fsnotify file watcher
//	cmd/tankctl  — command-line front end
//
// The numeric packages (tank through refill) are pure: no I/O, no logging,
// no shared state. Everything that talks to disk, logs, or runs goroutines
// lives in catalog, service, watch and cmd.
//
// Quick example:
//
//	120 L at A = 130, B = 58 ml/L, targets 120 / 50, capacity 260 L
//	    → add 11.44 L of water (OPTIMAL_DILUTION)
//
//	go install github.com/katalvlaran/tankmix/cmd/tankctl@latest
package tankmix
