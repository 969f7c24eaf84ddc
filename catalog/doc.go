// SPDX-License-Identifier: MIT

// Package catalog loads the plant description (which tanks exist, what they
// hold, and what each chemical should be at) and the operator's readings,
// and turns a module plus a reading into a tank.Request.
//
// Files are TOML or YAML, chosen by extension (.toml, .yaml, .yml). Unknown
// keys are rejected in both formats so a typo never silently drops a target.
//
// Catalog, TOML:
//
//	[[module]]
//	name = "Module 3"
//	type = "corrector"
//	capacity = 240.0
//	  [[module.chemical]]
//	  id = "A"
//	  unit = "ml/L"
//	  target = 120.0
//	  makeup = 120.0
//
// Catalog, YAML:
//
//	modules:
//	  - name: Module 3
//	    type: corrector
//	    capacity: 240
//	    chemicals:
//	      - {id: A, unit: ml/L, target: 120, makeup: 120}
//
// Readings use [[reading]] (TOML) or readings: (YAML), each naming a module,
// its volume, and a concentration per chemical id.
//
// Module types:
//   - corrector: premixed makeup solution, reconciled by the engine.
//   - dosing: pure chemicals; fortified dose by dose when nothing is above
//     target, otherwise reconciled with makeup equal to target.
//   - refill: pure chemicals plus water up to full capacity.
//
// Decoded files are checked with go-playground/validator tags.
package catalog
