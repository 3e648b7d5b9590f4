// SPDX-License-Identifier: MIT

package spkmeans

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Goal names the requested output.
type Goal string

// Supported goals.
const (
	GoalWAM    Goal = "wam"    // weighted adjacency matrix
	GoalDDG    Goal = "ddg"    // diagonal degree matrix
	GoalLnorm  Goal = "lnorm"  // normalized graph Laplacian
	GoalJacobi Goal = "jacobi" // eigendecomposition of the input matrix
	GoalSPK    Goal = "spk"    // full spectral clustering
	GoalKMeans Goal = "kmeans" // Lloyd directly on the input points
)

// Goals lists every goal in display order.
var Goals = []Goal{GoalWAM, GoalDDG, GoalLnorm, GoalJacobi, GoalSPK, GoalKMeans}

// ParseGoal accepts a goal name, case-insensitively.
func ParseGoal(s string) (Goal, error) {
	g := Goal(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Goals {
		if g == known {
			return g, nil
		}
	}

	return "", inputError("ParseGoal", fmt.Errorf("%q: %w", s, ErrUnknownGoal))
}

// UsesK reports whether the goal consumes the cluster count.
func (g Goal) UsesK() bool { return g == GoalSPK || g == GoalKMeans }

// ParseK reads k as a decimal number that must be a non-negative integer;
// "3" and "3.0" are both 3.
func ParseK(s string) (int, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 || f != math.Trunc(f) || f > math.MaxInt32 {
		return 0, inputError("ParseK", fmt.Errorf("%q: %w", s, ErrInvalidK))
	}

	return int(f), nil
}
