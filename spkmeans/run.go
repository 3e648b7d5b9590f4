// SPDX-License-Identifier: MIT

package spkmeans

import (
	"errors"

	"github.com/katalvlaran/spkmeans/embed"
	"github.com/katalvlaran/spkmeans/jacobi"
	"github.com/katalvlaran/spkmeans/kmeans"
	"github.com/katalvlaran/spkmeans/matrix"
	"github.com/katalvlaran/spkmeans/pointset"
	"github.com/katalvlaran/spkmeans/simgraph"
	"go.uber.org/zap"
)

// Result is what a goal produced.
//
// Matrix holds, per goal: wam/ddg/lnorm the n×n matrix; jacobi the n×n
// eigenvector matrix (column c pairs with Values[c]); spk/kmeans the k×dim
// centroids.
type Result struct {
	Goal   Goal
	RunID  string
	Matrix *matrix.Dense
	Values []float64 // jacobi eigenvalues in diagonal order

	K          int // clusters used (spk, kmeans)
	HeuristicK int // eigengap choice (spk)

	Rotations       int  // jacobi and spk
	JacobiConverged bool // jacobi and spk

	Iterations int   // k-means cycles
	Converged  bool  // k-means convergence
	Assignment []int // k-means labels
	Sizes      []int // k-means cluster sizes
}

// Run validates p against set and executes the goal.
func Run(set *pointset.Set, p Params, opts ...Option) (*Result, error) {
	c, err := NewContext(set, p, opts...)
	if err != nil {
		return nil, err
	}

	return c.Run()
}

// Run executes the configured goal on the working set.
func (c *Context) Run() (*Result, error) {
	res := &Result{Goal: c.params.Goal, RunID: c.runID}
	c.logger.Debug("run start", zap.Int("n", c.working.Rows()), zap.Int("dim", c.dim))

	var err error
	switch c.params.Goal {
	case GoalWAM:
		res.Matrix, err = c.adjacency()
	case GoalDDG:
		err = c.degree(res)
	case GoalLnorm:
		err = c.laplacian(res)
	case GoalJacobi:
		err = c.eigen(res)
	case GoalSPK:
		err = c.spectral(res)
	case GoalKMeans:
		err = c.cluster(res, c.params.K)
	default:
		err = inputError("Run", ErrUnknownGoal)
	}
	if err != nil {
		c.logger.Debug("run failed", zap.Error(err))
		return nil, err
	}
	c.logger.Debug("run done")

	return res, nil
}

func (c *Context) graphOpts() []simgraph.Option {
	return []simgraph.Option{simgraph.WithWorkers(c.params.Workers)}
}

func (c *Context) adjacency() (*matrix.Dense, error) {
	w, err := simgraph.WeightedAdjacency(c.working, c.graphOpts()...)
	if err != nil {
		return nil, genericError("wam", err)
	}
	c.logger.Debug("wam built", zap.Int("n", w.Rows()))

	return w, nil
}

func (c *Context) degree(res *Result) error {
	w, err := c.adjacency()
	if err != nil {
		return err
	}
	if res.Matrix, err = simgraph.Degree(w, simgraph.DegreeRaw); err != nil {
		return genericError("ddg", err)
	}

	return nil
}

func (c *Context) normalized() (*matrix.Dense, error) {
	g, err := simgraph.NormalizedLaplacian(c.working, c.graphOpts()...)
	if err != nil {
		return nil, genericError("lnorm", err)
	}
	c.logger.Debug("laplacian built", zap.Int("n", g.L.Rows()))

	return g.L, nil
}

func (c *Context) laplacian(res *Result) error {
	l, err := c.normalized()
	if err != nil {
		return err
	}
	res.Matrix = l

	return nil
}

func (c *Context) solve(a matrix.Matrix, res *Result) (*jacobi.Decomposition, error) {
	d, err := jacobi.Solve(a,
		jacobi.WithMaxRotations(c.params.MaxRotations),
		jacobi.WithTolerance(c.params.Tolerance),
	)
	if err != nil {
		if errors.Is(err, matrix.ErrAsymmetry) {
			return nil, inputError("jacobi", err)
		}

		return nil, genericError("jacobi", err)
	}
	res.Rotations = d.Rotations
	res.JacobiConverged = d.Converged
	c.logger.Debug("jacobi done",
		zap.Int("rotations", d.Rotations),
		zap.Bool("converged", d.Converged),
	)
	if !d.Converged {
		c.logger.Warn("jacobi stopped at rotation cap", zap.Int("max_rotations", c.params.MaxRotations))
	}

	return d, nil
}

func (c *Context) eigen(res *Result) error {
	d, err := c.solve(c.working, res)
	if err != nil {
		return err
	}
	res.Values = d.Values
	res.Matrix = d.Vectors

	return nil
}

func (c *Context) spectral(res *Result) error {
	l, err := c.normalized()
	if err != nil {
		return err
	}
	d, err := c.solve(l, res)
	if err != nil {
		return err
	}
	e, err := embed.Embed(d, c.params.K)
	if err != nil {
		return inputError("embed", err)
	}
	res.HeuristicK = e.HeuristicK
	c.logger.Debug("embedding built", zap.Int("k", e.K), zap.Int("eigengap_k", e.HeuristicK))

	if err = c.Adopt(e.U); err != nil {
		return err
	}

	return c.cluster(res, e.K)
}

func (c *Context) cluster(res *Result, k int) error {
	r, err := kmeans.New(c.working, k,
		kmeans.WithMaxIter(c.params.MaxIter),
		kmeans.WithWorkers(c.params.Workers),
	)
	if err != nil {
		return inputError("kmeans", err)
	}
	out, err := r.Run()
	if err != nil {
		return genericError("kmeans", err)
	}
	res.K = k
	res.Matrix = out.Centroids
	res.Iterations = out.Iterations
	res.Converged = out.Converged
	res.Assignment = out.Assignment
	res.Sizes = out.Sizes
	c.logger.Debug("kmeans done",
		zap.Int("k", k),
		zap.Int("iterations", out.Iterations),
		zap.Bool("converged", out.Converged),
	)

	return nil
}
