// Package matrix provides the dense linear-algebra primitives used by the
// spectral clustering pipeline.
//
// What & Why:
//
//	Every stage of the pipeline works on small-to-medium dense n×n matrices:
//	the weighted adjacency, the degree matrix, the normalized Laplacian, the
//	Jacobi eigenvector accumulator and the n×k embedding. Dense keeps them in
//	a single row-major slice (offset = i*cols + j) and the kernels in this
//	package (Mul, Transpose, IdentityMinus, NormalizeRowsL2, RowSums) walk
//	that slice directly when both operands are *Dense.
//
// Safety:
//
//	At/Set never panic; they return ErrOutOfRange or ErrNaNInf. Kernels
//	validate through the central validators (validators.go) and wrap the
//	sentinel with an operation tag, so callers match with errors.Is.
//
// Complexity:
//
//	Rows/Cols/At/Set are O(1); Clone, Transpose and the element-wise kernels
//	are O(r*c); Mul is O(r*n*c).
package matrix
