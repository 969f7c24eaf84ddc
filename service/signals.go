// SPDX-License-Identifier: MIT

package service

import "github.com/zoobzio/capitan"

// Report lifecycle signals.
var (
	// ReportReady is emitted when a module has been evaluated.
	ReportReady = capitan.NewSignal(
		"tankmix.report.ready",
		"Correction report ready",
	)

	// ReportFailed is emitted when a module could not be evaluated.
	ReportFailed = capitan.NewSignal(
		"tankmix.report.failed",
		"Correction report failed",
	)

	// ReadingsReloaded is emitted when a watched readings file was parsed.
	ReadingsReloaded = capitan.NewSignal(
		"tankmix.readings.reloaded",
		"Readings file reloaded",
	)
)

// Field keys for report events.
var (
	// KeyReportID is the report identifier.
	KeyReportID = capitan.NewStringKey("report_id")

	// KeyModule is the module name.
	KeyModule = capitan.NewStringKey("module")

	// KeyAction is the correction action taken.
	KeyAction = capitan.NewStringKey("action")

	// KeyStatus is the correction status.
	KeyStatus = capitan.NewStringKey("status")

	// KeyError is the error message when an evaluation fails.
	KeyError = capitan.NewStringKey("error")

	// KeyPath is the watched readings path.
	KeyPath = capitan.NewStringKey("path")

	// KeyReadings is the number of readings in a reloaded file.
	KeyReadings = capitan.NewIntKey("readings")
)
