// Package regress provides tunable options and error definitions for the
// synthetic generator and the PLS fit.
package regress

import (
	"errors"
	"fmt"
)

// Sentinel errors for regress execution.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("regress: invalid option supplied")

	// ErrTooFewSamples is returned when the sample count cannot support
	// the requested fit (rows ≤ cols for OLS, rows < 2 anywhere).
	ErrTooFewSamples = errors.New("regress: too few samples")

	// ErrNoVariance is returned when NIPALS cannot extract another
	// component because the remaining covariance is (numerically) zero.
	ErrNoVariance = errors.New("regress: no extractable variance left")

	// ErrBadShape is returned when X and y disagree on the sample count.
	ErrBadShape = errors.New("regress: X rows and len(y) differ")
)

// Default knobs (named, no magic numbers).
const (
	defaultLatent     = 2
	defaultNoiseSigma = 0.1
	defaultComponents = 2
	defaultTolerance  = 1e-12
	defaultMaxIter    = 100
)

// Option configures Synthetic, FitPLS, and Compare via functional
// arguments. Invalid options are recorded internally and surfaced as
// ErrOptionViolation when the receiving function runs.
type Option func(*options)

// options holds every knob; each consumer reads only the fields it owns.
type options struct {
	// Synthetic knobs.
	seed   int64
	latent int
	noise  float64

	// PLS knobs.
	components int
	tolerance  float64
	maxIter    int

	// internal error recorded during option parsing
	err error
}

// defaultOptions returns options with deterministic defaults:
//   - seed 0 (fixed default RNG seed)
//   - 2 latent components, noise sigma 0.1
//   - 2 PLS components, tolerance 1e-12, 100 iterations max.
func defaultOptions() options {
	return options{
		seed:       0,
		latent:     defaultLatent,
		noise:      defaultNoiseSigma,
		components: defaultComponents,
		tolerance:  defaultTolerance,
		maxIter:    defaultMaxIter,
		err:        nil,
	}
}

// resolveOptions applies opts over the defaults in call order.
func resolveOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithSeed sets the generator seed. Seed 0 selects the fixed default
// seed, so results are reproducible even when callers pass nothing.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithLatent sets how many latent components drive the synthetic data.
//
//	k ≥ 1: use k components
//	k < 1: invalid option → ErrOptionViolation
func WithLatent(k int) Option {
	return func(o *options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: Latent must be ≥ 1 (%d)", ErrOptionViolation, k)
			return
		}
		o.latent = k
	}
}

// WithNoise sets the noise standard deviation for the synthetic data.
//
//	sigma ≥ 0: valid (0 means noiseless)
//	sigma < 0: invalid option → ErrOptionViolation
func WithNoise(sigma float64) Option {
	return func(o *options) {
		if sigma < 0 {
			o.err = fmt.Errorf("%w: Noise cannot be negative (%g)", ErrOptionViolation, sigma)
			return
		}
		o.noise = sigma
	}
}

// WithComponents sets how many PLS components to extract. The fit clamps
// this to what the data can support (min(rows-1, cols)); the Model
// records the count actually used.
//
//	k ≥ 1: extract up to k components
//	k < 1: invalid option → ErrOptionViolation
func WithComponents(k int) Option {
	return func(o *options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: Components must be ≥ 1 (%d)", ErrOptionViolation, k)
			return
		}
		o.components = k
	}
}

// WithTolerance sets the NIPALS convergence/variance threshold.
//
//	eps > 0: valid
//	eps ≤ 0: invalid option → ErrOptionViolation
func WithTolerance(eps float64) Option {
	return func(o *options) {
		if eps <= 0 {
			o.err = fmt.Errorf("%w: Tolerance must be > 0 (%g)", ErrOptionViolation, eps)
			return
		}
		o.tolerance = eps
	}
}

// WithMaxIter caps the NIPALS inner iteration per component.
//
//	n ≥ 1: valid
//	n < 1: invalid option → ErrOptionViolation
func WithMaxIter(n int) Option {
	return func(o *options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxIter must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.maxIter = n
	}
}
