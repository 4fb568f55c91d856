// SPDX-License-Identifier: MIT

package poly

import "math"

// DefaultEpsilon is the off-axis ratio below which Pound snaps a root.
const DefaultEpsilon = 2.5e-15

const panicEpsilonInvalid = "poly: WithEpsilon: eps must be finite and >= 0"

// Option configures root clean-up for the closed-form solvers.
type Option func(*Options)

// Options is the resolved clean-up policy.
type Options struct {
	adjust    bool
	forceReal bool
	eps       float64
}

// DefaultOptions returns adjust=true, forceReal=false, eps=DefaultEpsilon.
func DefaultOptions() Options {
	return Options{adjust: true, eps: DefaultEpsilon}
}

// WithAdjust turns snapping of nearly-real / nearly-imaginary roots on or off.
func WithAdjust(on bool) Option {
	return func(o *Options) { o.adjust = on }
}

// WithForceReal discards imaginary parts of every root.
func WithForceReal() Option {
	return func(o *Options) { o.forceReal = true }
}

// WithEpsilon sets the snapping threshold used by Pound.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

func (o Options) finish(x complex128) complex128 {
	if o.forceReal {
		return complex(real(x), 0)
	}

	return Pound(x, o.adjust, o.eps)
}
