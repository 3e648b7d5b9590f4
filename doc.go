// Package spkmeans is a normalized spectral clustering toolkit: from raw
// points to a similarity graph, its normalized Laplacian, a Jacobi
// eigendecomposition, an eigengap-chosen embedding and a k-means partition.
//
// 🚀 What is inside?
//
//	• Dense matrix kernels: row-major storage, Mul, Transpose, I − M, row norms
//	• Similarity graph: weighted adjacency, degree and normalized Laplacian
//	• Jacobi eigensolver: largest-pivot rotations with accumulated eigenvectors
//	• Embedding: stable eigenpair order, eigengap heuristic, row-normalized U
//	• K-means: Lloyd refinement with an explicit state machine
//
// Everything is organized under these subpackages:
//
//	matrix/       Dense type, validators and linear-algebra kernels
//	pointset/     Vector Set and delimited-text ingestion
//	simgraph/     W, D and L = I − D^{-1/2}·W·D^{-1/2}
//	jacobi/       symmetric eigendecomposition
//	embed/        eigenpair sorting, eigengap and the U matrix
//	kmeans/       Lloyd iterations
//	spkmeans/     goals, pipeline context and the two error kinds
//	report/       4-decimal text and YAML renderers
//	config/       defaults, file, SPKMEANS_* env and flags via viper
//	logging/      zap logger construction
//	cmd/spkmeans/ the command-line entry point
//
// Quick example:
//
//	0,0  0,1        10,0  10,1
//	 └─pair─┘         └─pair─┘
//
//	spkmeans 0 spk points.txt   # eigengap picks k=2, one cluster per pair
//
//	go install github.com/katalvlaran/spkmeans/cmd/spkmeans@latest
package spkmeans
