// SPDX-License-Identifier: MIT

// Package tank defines the value types shared by every correction stage:
// a tank snapshot (State), the chemicals it tracks (Component), the one-shot
// Request handed to the engine and the Result it returns.
//
// 🚀 What lives here?
//
//	• Request validation with package sentinels (Validate).
//	• The tolerance comparator used by every tier (IsClose).
//	• Mass balance helpers shared by the engine and the simulator
//	  (AvailableSpace, Finalize, Objective).
//	• Unit volume factors for pure-chemical additions (VolumePerUnit).
//
// Mass balance:
//
//	amount_i = volume × concentration_i
//
//	Adding w liters of water and k liters of makeup (composition m) to a tank
//	holding V liters at concentrations c yields
//
//	  final_volume = V + w + k
//	  final_i      = (V·c_i + k·m_i) / final_volume
//
//	Water never removes chemical mass; it only enlarges the denominator.
//
// Nothing in this package allocates shared state; every function is pure.
package tank
