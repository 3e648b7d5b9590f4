// SPDX-License-Identifier: MIT

// Package kmeans refines a partition of points with Lloyd's algorithm.
//
// A Refiner moves through four states:
//
//	Initialized → Assigning ⇄ Updating → Converged
//
// Centroids start as the first k points. Each cycle assigns every point to
// its nearest centroid (squared Euclidean distance, lowest index wins ties)
// and then replaces each centroid with the mean of its members. A cluster
// left without members keeps its previous centroid. The run converges when an
// update changes no centroid coordinate, or stops after the iteration cap.
//
// The assignment step may be spread over goroutines (WithWorkers); each
// goroutine writes only its own points' labels, so results are identical
// for any worker count. Updates are sequential in point order.
package kmeans
