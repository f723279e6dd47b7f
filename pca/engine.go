// SPDX-License-Identifier: MIT

// Package pca: the eigensolver seam. FitTransform factorizes the covariance
// through an Engine, so the numeric core can be swapped without touching the
// pipeline: JacobiEngine (this file) is the canonical default, GonumEngine
// (engine_gonum.go) is the cross-check collaborator. Both feed the same
// ranking stage, which absorbs their ordering differences.

package pca

import (
	"github.com/katalvlaran/lvlpca/matrix"
)

// Engine factorizes a symmetric covariance matrix into eigenvalues and
// eigenvectors.
//
// Contract:
//   - cov is square, symmetric, finite; the pipeline guarantees this.
//   - On success: len(vals) == d and vecs is d×d with eigenvector COLUMNS,
//     column j pairing with vals[j]. Any eigenvalue order is acceptable;
//     the pipeline ranks the pairs afterward. Column signs are arbitrary.
//   - On failure: a non-nil error; the pipeline wraps it under the
//     ErrNumericFailure class.
//   - tol and maxIter are advisory precision/budget knobs; engines that
//     factorize by other means may ignore them.
type Engine interface {
	Factorize(cov matrix.Matrix, tol float64, maxIter int) (vals []float64, vecs matrix.Matrix, err error)
}

// JacobiEngine is the default Engine: the classical Jacobi rotation kernel
// from the matrix package, run with the caller's tolerance and rotation
// budget. Eigenvalues come back in diagonal order.
//
// The zero value is ready to use.
type JacobiEngine struct{}

// Factorize delegates to matrix.Eigen.
// Implementation:
//   - Stage 1: hand cov, tol and maxIter to the kernel unchanged; its
//     validation (nil, square, symmetry, tolerance sanity) applies as-is.
//
// Returns:
//   - vals: eigenvalues in diagonal order (unsorted).
//   - vecs: orthonormal eigenvector columns.
//
// Errors:
//   - matrix.ErrMatrixEigenFailed when the rotation budget runs out; the
//     matrix validation sentinels for malformed input.
//
// Complexity:
//   - Time O(maxIter·d²), Space O(d²).
func (JacobiEngine) Factorize(cov matrix.Matrix, tol float64, maxIter int) ([]float64, matrix.Matrix, error) {
	return matrix.Eigen(cov, tol, maxIter)
}
