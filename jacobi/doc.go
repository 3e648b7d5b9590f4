// SPDX-License-Identifier: MIT

// Package jacobi computes the full eigendecomposition of a real symmetric
// matrix with cyclic-by-largest-pivot Jacobi rotations.
//
// Each rotation zeroes the largest upper-triangular off-diagonal entry and
// accumulates the rotation into the eigenvector matrix (V ← V·P). The loop
// stops when the pivot is exactly zero (already diagonal), when the drop in
// off-diagonal mass falls to the tolerance, or when the rotation cap is hit.
// Reaching the cap is reported through Decomposition.Converged, not an error.
//
// Eigenvalues are returned in diagonal order; sorting is the caller's job
// (see package embed). Column c of Vectors pairs with Values[c].
//
// The rotation sequence is strictly sequential.
package jacobi
