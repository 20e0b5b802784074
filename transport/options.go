package transport

// Default tuning values used by DefaultOptions.
const (
	// DefaultEpsilon is the numerical tolerance that separates "zero" flow
	// from basic flow and filters floating-point noise out of reduced profits.
	DefaultEpsilon = 0.001

	// DefaultMaxIterations caps the improvement loop; reaching it terminates
	// the solve with Optimal=false rather than erroring.
	DefaultMaxIterations = 20

	// DefaultDualPasses bounds the fixed-point derivation of dual variables.
	// Potentials still unknown after the budget default to zero.
	DefaultDualPasses = 50
)

// Options configures a solve. All fields must be strictly positive; see the
// sentinel errors in types.go for the failure modes.
type Options struct {
	// Epsilon is the numerical tolerance: basic-cell threshold,
	// reduced-profit threshold and stagnation comparison.
	Epsilon float64

	// MaxIterations is the hard cap on improvement iterations.
	MaxIterations int

	// DualPasses bounds the dual-variable derivation passes.
	DualPasses int
}

// Option is a functional option for configuring Solve.
type Option func(*Options)

// WithEpsilon overrides the numerical tolerance.
// Non-positive values cause Solve to fail with ErrBadEpsilon.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		o.Epsilon = eps
	}
}

// WithMaxIterations overrides the improvement-iteration cap.
// Non-positive values cause Solve to fail with ErrBadMaxIterations.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		o.MaxIterations = n
	}
}

// WithDualPasses overrides the dual-derivation pass budget. Raising it helps
// strongly degenerate plans resolve more potentials before the zero default
// kicks in. Non-positive values cause Solve to fail with ErrBadDualPasses.
func WithDualPasses(n int) Option {
	return func(o *Options) {
		o.DualPasses = n
	}
}

// DefaultOptions returns the Options every solve starts from:
//   - Epsilon:       0.001
//   - MaxIterations: 20
//   - DualPasses:    50
func DefaultOptions() Options {
	return Options{
		Epsilon:       DefaultEpsilon,
		MaxIterations: DefaultMaxIterations,
		DualPasses:    DefaultDualPasses,
	}
}

// validateOptions checks internal consistency of Options without referencing
// the problem. Complexity: O(1).
func validateOptions(o Options) error {
	if o.Epsilon <= 0 {
		return ErrBadEpsilon
	}
	if o.MaxIterations <= 0 {
		return ErrBadMaxIterations
	}
	if o.DualPasses <= 0 {
		return ErrBadDualPasses
	}

	return nil
}
