// SPDX-License-Identifier: MIT

package jacobi

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spkmeans/matrix"
)

// Defaults for the rotation loop.
const (
	DefaultMaxRotations = 100
	DefaultTolerance    = 1e-15
)

// Option configures Solve.
type Option func(*options)

type options struct {
	maxRotations int
	tolerance    float64
	symmetryTol  float64
}

func gatherOptions(opts []Option) options {
	o := options{
		maxRotations: DefaultMaxRotations,
		tolerance:    DefaultTolerance,
		symmetryTol:  matrix.DefaultEpsilon,
	}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// WithMaxRotations caps the number of rotations. Panics if n < 1.
func WithMaxRotations(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("jacobi: WithMaxRotations(%d): must be >= 1", n))
	}

	return func(o *options) { o.maxRotations = n }
}

// WithTolerance sets the convergence threshold on off(A) − off(A').
// Panics on negative, NaN or infinite values.
func WithTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(fmt.Sprintf("jacobi: WithTolerance(%g): must be finite and >= 0", tol))
	}

	return func(o *options) { o.tolerance = tol }
}

// WithSymmetryTolerance sets the |a[i][j] − a[j][i]| bound accepted by input validation.
func WithSymmetryTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(fmt.Sprintf("jacobi: WithSymmetryTolerance(%g): must be finite and >= 0", tol))
	}

	return func(o *options) { o.symmetryTol = tol }
}
