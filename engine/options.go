// SPDX-License-Identifier: MIT

package engine

import (
	"math"

	"github.com/katalvlaran/tankmix/tank"
)

// DefaultLegacyFallback keeps the optimizing tiers enabled.
const DefaultLegacyFallback = false

const panicEpsilonInvalid = "engine: WithEpsilon: eps must be finite, positive"

// Option mutates engine options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options is the effective engine configuration.
type Options struct {
	eps    float64 // applied to requests that leave Epsilon at 0
	legacy bool
}

// WithEpsilon sets the tolerance used for requests whose Epsilon is zero.
// A request carrying its own Epsilon keeps it.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithLegacyFallback replaces the dilution and constrained tiers with the
// historical high/low rule set. The exact tier still runs first.
func WithLegacyFallback() Option {
	return func(o *Options) { o.legacy = true }
}

func gatherOptions(opts ...Option) Options {
	o := Options{eps: tank.DefaultEpsilon, legacy: DefaultLegacyFallback}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
