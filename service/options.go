// SPDX-License-Identifier: MIT

package service

import (
	"math"
	"runtime"
)

const (
	panicWorkersInvalid = "service: WithWorkers: n must be ≥ 1"
	panicEpsilonInvalid = "service: WithEpsilon: eps must be finite, ≥ 0"
)

// Option configures a Dispatcher.
type Option func(*options)

type options struct {
	workers int
	eps     float64
}

// DefaultWorkers bounds EvaluateAll when WithWorkers is not given.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// WithWorkers bounds the number of modules evaluated concurrently.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *options) { o.workers = n }
}

// WithEpsilon sets the tolerance copied into every request. Zero leaves the
// engine default in charge.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *options) { o.eps = eps }
}
