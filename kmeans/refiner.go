// SPDX-License-Identifier: MIT

package kmeans

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/spkmeans/internal/parallel"
	"github.com/katalvlaran/spkmeans/matrix"
)

// ErrInvalidK reports k outside [1, n).
var ErrInvalidK = errors.New("kmeans: k must satisfy 1 <= k < n")

// State is the refiner's position in the Lloyd loop.
type State int

// Refiner states.
const (
	Initialized State = iota
	Assigning
	Updating
	Converged
)

func (s State) String() string {
	switch s {
	case Initialized:
		return "initialized"
	case Assigning:
		return "assigning"
	case Updating:
		return "updating"
	case Converged:
		return "converged"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Result is the final partition.
type Result struct {
	Centroids  *matrix.Dense // k×dim
	Assignment []int         // len n, values in [0, k)
	Sizes      []int         // members per cluster
	Iterations int           // completed assign/update cycles
	Converged  bool          // false when the cap stopped the loop
}

// Refiner runs Lloyd iterations over a fixed point matrix.
type Refiner struct {
	points     [][]float64
	k          int
	centroids  [][]float64
	assignment []int
	state      State
	iterations int
	opts       options
}

// New prepares a Refiner over the rows of points with the first k rows as
// initial centroids. points is copied.
func New(points matrix.Matrix, k int, opts ...Option) (*Refiner, error) {
	if err := matrix.ValidateNotNil(points); err != nil {
		return nil, fmt.Errorf("kmeans.New: %w", err)
	}
	n := points.Rows()
	if k < 1 || k >= n {
		return nil, fmt.Errorf("kmeans.New: k=%d, n=%d: %w", k, n, ErrInvalidK)
	}
	d, ok := points.Clone().(*matrix.Dense)
	if !ok {
		rows, err := matrix.RowViews(points)
		if err != nil {
			return nil, fmt.Errorf("kmeans.New: %w", err)
		}
		if d, err = matrix.NewDenseFrom(rows); err != nil {
			return nil, fmt.Errorf("kmeans.New: %w", err)
		}
	}
	rows, err := matrix.RowViews(d)
	if err != nil {
		return nil, fmt.Errorf("kmeans.New: %w", err)
	}

	centroids := make([][]float64, k)
	for c := range centroids {
		centroids[c] = append([]float64(nil), rows[c]...)
	}

	return &Refiner{
		points:     rows,
		k:          k,
		centroids:  centroids,
		assignment: make([]int, n),
		state:      Initialized,
		opts:       gatherOptions(opts),
	}, nil
}

// State reports where the refiner is in the loop.
func (r *Refiner) State() State { return r.state }

// Iterations is the number of completed cycles.
func (r *Refiner) Iterations() int { return r.iterations }

// Centroids returns a copy of the current centroids.
func (r *Refiner) Centroids() *matrix.Dense {
	d, _ := matrix.NewDenseFrom(r.centroids)

	return d
}

// Assign labels every point with its nearest current centroid without
// changing the refiner.
func (r *Refiner) Assign() ([]int, error) {
	labels := make([]int, len(r.points))
	if err := r.assignInto(labels); err != nil {
		return nil, err
	}

	return labels, nil
}

// Step runs one assign/update cycle and returns the number of centroid
// coordinates that changed. A converged refiner is left untouched.
func (r *Refiner) Step() (int, error) {
	if r.state == Converged {
		return 0, nil
	}

	r.state = Assigning
	if err := r.assignInto(r.assignment); err != nil {
		return 0, err
	}

	r.state = Updating
	changes := r.update()
	r.iterations++
	if changes == 0 {
		r.state = Converged
	}

	return changes, nil
}

// Run steps until convergence or the iteration cap.
func (r *Refiner) Run() (*Result, error) {
	for r.state != Converged && r.iterations < r.opts.maxIter {
		if _, err := r.Step(); err != nil {
			return nil, err
		}
	}

	sizes := make([]int, r.k)
	for _, c := range r.assignment {
		sizes[c]++
	}

	return &Result{
		Centroids:  r.Centroids(),
		Assignment: append([]int(nil), r.assignment...),
		Sizes:      sizes,
		Iterations: r.iterations,
		Converged:  r.state == Converged,
	}, nil
}

func (r *Refiner) assignInto(labels []int) error {
	return parallel.ForEach(len(r.points), r.opts.workers, func(i int) error {
		labels[i] = nearest(r.points[i], r.centroids)
		return nil
	})
}

// update recomputes centroids from the current assignment in point order.
func (r *Refiner) update() int {
	dim := len(r.centroids[0])
	sums := make([][]float64, r.k)
	counts := make([]int, r.k)
	for c := range sums {
		sums[c] = make([]float64, dim)
	}
	for i, c := range r.assignment {
		counts[c]++
		for j, v := range r.points[i] {
			sums[c][j] += v
		}
	}

	changes := 0
	var mean float64
	for c := range sums {
		if counts[c] == 0 {
			continue // empty cluster keeps its centroid
		}
		for j := range sums[c] {
			mean = sums[c][j] / float64(counts[c])
			if mean != r.centroids[c][j] {
				changes++
				r.centroids[c][j] = mean
			}
		}
	}

	return changes
}

// nearest returns the index of the closest centroid; ties go to the lowest index.
func nearest(p []float64, centroids [][]float64) int {
	best, bestDist := 0, sqDist(p, centroids[0])
	var d float64
	for c := 1; c < len(centroids); c++ {
		if d = sqDist(p, centroids[c]); d < bestDist {
			best, bestDist = c, d
		}
	}

	return best
}

func sqDist(a, b []float64) float64 {
	var sum, diff float64
	for k := range a {
		diff = a[k] - b[k]
		sum += diff * diff
	}

	return sum
}
