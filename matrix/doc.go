// Package matrix offers dense numeric matrices and deterministic kernels.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and a
//     minimal Matrix interface for alternative storages.
//   - Canonical kernels (Add, Sub, Hadamard, Mul, Transpose, Scale, MatVec,
//     Trace) with flat-slice fast paths and interface fallbacks.
//   - Eigen, a Jacobi eigen-decomposition for symmetric matrices, plus the
//     EigenSym facade with option-resolved tolerances.
//   - Column statistics (CenterColumns, StandardizeColumns, Covariance,
//     Correlation) composed from the same kernels.
//
// Every operation validates first and fails fast with package sentinels;
// results are always freshly allocated and inputs are never mutated. Loop
// orders are fixed, so identical inputs produce bitwise-identical outputs.
//
// Dense matrices are best for small-to-medium numeric workloads (statistics,
// spectral analysis) where O(r*c) memory is acceptable.
//
// See the examples in this package and pca for usage patterns.
package matrix
