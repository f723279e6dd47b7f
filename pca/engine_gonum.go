// SPDX-License-Identifier: MIT

// Package pca: gonum-backed eigensolver. GonumEngine adapts
// gonum.org/v1/gonum/mat.EigenSym to the Engine seam, giving an independent
// LAPACK-grade factorization to cross-check the Jacobi kernel against. It is
// a first-class engine, not a test fixture: any fit may select it via
// WithEngine(GonumEngine{}).

package pca

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlpca/matrix"
)

// GonumEngine factorizes through mat.EigenSym.
//
// The zero value is ready to use.
type GonumEngine struct{}

// Factorize runs gonum's symmetric eigendecomposition on cov.
// Implementation:
//   - Stage 1: validate cov (nil, positive square order).
//   - Stage 2: copy the upper triangle into a mat.SymDense; SetSym mirrors
//     each entry, so the symmetric profile is preserved exactly.
//   - Stage 3: eig.Factorize(sym, true); a false return is the engine's
//     convergence failure.
//   - Stage 4: read eigenvalues (gonum reports them in ascending order) and
//     eigenvector columns back into a matrix.Dense.
//
// Behavior highlights:
//   - Eigenvalues surface in gonum's ascending order; the pipeline's ranking
//     stage reorders them, so the Engine contract is honored as-is.
//   - tol and maxIter are ignored: LAPACK iterates to machine precision with
//     its own internal limits.
//
// Inputs:
//   - cov: symmetric d×d matrix (the pipeline guarantees symmetry).
//   - tol, maxIter: accepted for the Engine seam; unused here.
//
// Returns:
//   - []float64: eigenvalues, ascending.
//   - matrix.Matrix: d×d eigenvector columns, column j pairing with vals[j].
//
// Errors:
//   - matrix.ErrNilMatrix / matrix.ErrInvalidDimensions / matrix.ErrNonSquare
//     for malformed input.
//   - matrix.ErrMatrixEigenFailed when gonum reports a failed factorization,
//     so both engines expose the same failure sentinel.
//
// Determinism:
//   - LAPACK's tridiagonalization is deterministic for identical inputs.
//
// Complexity:
//   - Time O(d³), Space O(d²).
func (GonumEngine) Factorize(cov matrix.Matrix, tol float64, maxIter int) ([]float64, matrix.Matrix, error) {
	// Stage 1: structural validation with the shared matrix sentinels.
	if cov == nil {
		return nil, nil, matrix.ErrNilMatrix
	}
	n := cov.Rows()
	if n < 1 {
		return nil, nil, matrix.ErrInvalidDimensions
	}
	if n != cov.Cols() {
		return nil, nil, matrix.ErrNonSquare
	}

	// Stage 2: upper triangle into SymDense (the mirror half is implied).
	sym := mat.NewSymDense(n, nil)
	var i, j int // loop iterators (deterministic order)
	var v float64
	var err error
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			if v, err = cov.At(i, j); err != nil {
				return nil, nil, err
			}
			sym.SetSym(i, j, v)
		}
	}

	// Stage 3: factorize with eigenvectors requested.
	var eig mat.EigenSym
	if ok := eig.Factorize(sym, true); !ok {
		return nil, nil, matrix.ErrMatrixEigenFailed
	}

	// Stage 4: surface gonum's ascending spectrum through the shared types.
	vals := eig.Values(nil)
	var V mat.Dense
	eig.VectorsTo(&V)

	vecs, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, err
	}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if err = vecs.Set(i, j, V.At(i, j)); err != nil {
				return nil, nil, err
			}
		}
	}

	return vals, vecs, nil
}
