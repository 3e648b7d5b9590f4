// SPDX-License-Identifier: MIT

// Package spkmeans runs the normalized spectral clustering pipeline and its
// intermediate goals over a point set.
//
// Goals:
//
//	wam     weighted adjacency matrix W
//	ddg     diagonal degree matrix D (raw row sums)
//	lnorm   normalized Laplacian I − D^{-1/2}·W·D^{-1/2}
//	jacobi  eigenvalues and eigenvectors of the input read as a symmetric matrix
//	spk     lnorm → jacobi → eigengap/embedding → k-means on the embedding
//	kmeans  k-means directly on the input points
//
// A Context owns the working point set for one invocation. For spk the
// embedding U replaces the input points wholesale (Context.Adopt) before
// k-means runs on it.
//
// Every returned error is an *Error whose Kind selects one of two fixed
// user-facing messages (Kind.Message); Classify maps arbitrary errors the
// same way.
package spkmeans
