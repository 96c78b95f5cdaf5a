// Package distribution implements continuous probability distributions
// used across the simulation experiments. Distributions are immutable
// values constructed through validating constructors; all analytic
// methods are pure and safe for concurrent use.
package distribution

import "errors"

// ErrBadParams is returned by distribution constructors when a
// parameter is NaN or outside its valid range.
var ErrBadParams = errors.New("distribution: bad parameters")

// Source supplies the raw randomness for samplers: uniform draws in
// [0,1) and standard normal draws. *math/rand.Rand satisfies it, as
// does common.RNG. A Source is not assumed to be goroutine-safe; a
// sampler needs exclusive access to it for the duration of one call.
type Source interface {
	Float64() float64
	NormFloat64() float64
}

// Continuous is a distribution with a density.
type Continuous interface {
	Prob(x float64) float64
	LogProb(x float64) float64
}

// Cumulative is a distribution with a cumulative distribution function.
type Cumulative interface {
	CDF(x float64) float64
}

// Moments exposes the closed-form moments of a distribution.
type Moments interface {
	Mean() float64
	Variance() float64
	StdDev() float64
	Skewness() float64
}

// Support reports the domain bounds of a distribution.
type Support interface {
	Min() float64
	Max() float64
}

// Sampler draws one variate using the given entropy source.
type Sampler interface {
	Sample(src Source) float64
}
