// SPDX-License-Identifier: MIT

package spkmeans

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/katalvlaran/spkmeans/jacobi"
	"github.com/katalvlaran/spkmeans/kmeans"
	"github.com/katalvlaran/spkmeans/matrix"
	"github.com/katalvlaran/spkmeans/pointset"
	"go.uber.org/zap"
)

// Params are the per-run knobs.
type Params struct {
	Goal         Goal
	K            int     // 0 lets spk choose k by the eigengap
	MaxIter      int     // k-means cycle cap
	MaxRotations int     // Jacobi rotation cap
	Tolerance    float64 // Jacobi convergence threshold
	Workers      int     // 0 = GOMAXPROCS, 1 = sequential
}

// DefaultParams returns Params for goal and k with the standard caps.
func DefaultParams(goal Goal, k int) Params {
	return Params{
		Goal:         goal,
		K:            k,
		MaxIter:      kmeans.DefaultMaxIter,
		MaxRotations: jacobi.DefaultMaxRotations,
		Tolerance:    jacobi.DefaultTolerance,
	}
}

// Option configures a Context.
type Option func(*Context)

// WithLogger sets the logger for stage events. nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Context) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithRunID overrides the generated run identifier.
func WithRunID(id string) Option {
	return func(c *Context) { c.runID = id }
}

// Context owns the working point set of one invocation. Stages read the
// working set and hand back new matrices; Adopt swaps the working set.
type Context struct {
	params  Params
	working *matrix.Dense
	dim     int
	logger  *zap.Logger
	runID   string
}

// NewContext validates p against set and takes a private copy of the points.
//
// Errors (all KindInput):
//   - ErrUnknownGoal for an unsupported goal;
//   - ErrInvalidK when k < 0, k >= n for goals that use k, or k == 0 for kmeans;
//   - ErrNotSquare when the jacobi goal gets a non-square input.
func NewContext(set *pointset.Set, p Params, opts ...Option) (*Context, error) {
	const op = "NewContext"
	if set == nil {
		return nil, genericError(op, matrix.ErrNilMatrix)
	}
	goal, err := ParseGoal(string(p.Goal))
	if err != nil {
		return nil, err
	}
	p.Goal = goal
	if err = p.validate(set.Len()); err != nil {
		return nil, inputError(op, err)
	}
	if p.Goal == GoalJacobi && !set.IsSquare() {
		return nil, inputError(op, fmt.Errorf("%d×%d: %w", set.Len(), set.Dim(), ErrNotSquare))
	}

	c := &Context{
		params:  p,
		working: set.Matrix(),
		dim:     set.Dim(),
		logger:  zap.NewNop(),
		runID:   uuid.NewString(),
	}
	for _, fn := range opts {
		fn(c)
	}
	c.logger = c.logger.With(zap.String("run_id", c.runID), zap.String("goal", string(p.Goal)))

	return c, nil
}

func (p Params) validate(n int) error {
	switch {
	case p.K < 0:
		return fmt.Errorf("k=%d: %w", p.K, ErrInvalidK)
	case p.Goal.UsesK() && p.K >= n:
		return fmt.Errorf("k=%d, n=%d: %w", p.K, n, ErrInvalidK)
	case p.Goal == GoalKMeans && p.K == 0:
		return fmt.Errorf("k=0 needs goal spk: %w", ErrInvalidK)
	case p.MaxIter < 1 || p.MaxRotations < 1:
		return fmt.Errorf("max_iter=%d, max_rotations=%d: %w", p.MaxIter, p.MaxRotations, ErrInvalidParams)
	case p.Tolerance < 0 || p.Workers < 0:
		return fmt.Errorf("tolerance=%g, workers=%d: %w", p.Tolerance, p.Workers, ErrInvalidParams)
	}

	return nil
}

// RunID identifies this invocation in logs and reports.
func (c *Context) RunID() string { return c.runID }

// Params returns the validated parameters.
func (c *Context) Params() Params { return c.params }

// Working returns the current working set; callers must not mutate it.
func (c *Context) Working() *matrix.Dense { return c.working }

// Dim is the column count of the current working set.
func (c *Context) Dim() int { return c.dim }

// Adopt makes m the working set and releases the previous one. The point
// count is unchanged; the dimension follows m.
func (c *Context) Adopt(m *matrix.Dense) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return genericError("Adopt", err)
	}
	if m.Rows() != c.working.Rows() {
		return genericError("Adopt", fmt.Errorf("%d rows, want %d: %w", m.Rows(), c.working.Rows(), matrix.ErrDimensionMismatch))
	}
	c.working = m
	c.dim = m.Cols()

	return nil
}
