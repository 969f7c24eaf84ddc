// SPDX-License-Identifier: MIT

// Package logging builds the zerolog loggers used by the service and the
// tankctl command. The numeric packages never log.
//
// Defaults depend on the profile (runtime: info with timestamps, tests: debug
// without) and can be overridden through the environment:
//
//	TANKMIX_LOG_LEVEL      trace|debug|info|warn|error|off
//	TANKMIX_LOG_TIMESTAMP  true|false
//	TANKMIX_LOG_NOCOLOR    true|false
package logging
