// SPDX-License-Identifier: MIT

// Package refill computes pure-chemical recipes: doses of each chemical in
// its own amount unit plus water, as opposed to the premixed makeup blends
// handled by the engine.
//
// Refill brings a tank to full capacity at its target profile:
//
//	add_i = capacity·t_i − V·c_i          (amount units)
//	water = (capacity − V) − Σ add_i·vpu_i (liters)
//
// Fortify tops up a tank whose components are all at or below target
// without adding water:
//
//	add_i = max(0, (t_i − c_i)·V)
//
// vpu_i is the liquid volume of one amount unit (tank.VolumePerUnit), so
// solids dosed in g/L take no space. Both return the true final state,
// computed through simulate.Doses.
package refill
