// SPDX-License-Identifier: MIT

// Package simgraph builds the similarity graph matrices of a point set:
//
//	W  weighted adjacency   w[i][j] = exp(-‖p_i − p_j‖₂ / 2), w[i][i] = 0
//	D  diagonal degree      d[i][i] = Σ_j w[i][j]            (DegreeRaw)
//	                        d[i][i] = 1 / sqrt(Σ_j w[i][j])  (DegreeInvSqrt)
//	L  normalized Laplacian I − D^{-1/2}·W·D^{-1/2}
//
// All functions are pure: inputs are never mutated and every result is a
// fresh *matrix.Dense. Row work for W and the row sums may be spread over
// several goroutines (WithWorkers); each goroutine writes disjoint cells so
// results do not depend on the worker count.
package simgraph
