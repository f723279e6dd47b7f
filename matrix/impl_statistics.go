// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide common statistical transforms (centering, standardization, covariance, correlation)
//     as deterministic compositions over canonical kernels (Mul/Transpose/Scale) and ew* micro-kernels.
//   - Keep tight loops centralized in ew* where it improves reuse and consistency.
//
// Exposed API (via api.go facades):
//   - CenterColumns(X)      -> (Xc, means)        // subtract per-column mean
//   - StandardizeColumns(X) -> (Z, means, stds)   // z-score columns; degenerate std=0 → zeroed column
//   - Covariance(X)         -> (Cov, means)       // sample covariance of columns: (Xcᵀ Xc)/(r-1)
//   - Correlation(X)        -> (Corr, means, stds) // Pearson corr = covariance of the z-scored data
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Dense fast-paths avoid At/Set and operate on row-major flat buffers.
//   - Zero-size matrices (0×N or N×0) are treated as no-ops for centering.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock flat-slice fast paths.
//   - Standardization and correlation share one kernel; reuse the returned means/stds downstream.

package matrix

import "math"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opCenterColumns      = "CenterColumns"
	opStandardizeColumns = "StandardizeColumns"
	opCovariance         = "Covariance"
	opCorrelation        = "Correlation"
)

// centerColumns subtracts the per-column mean from every element (column-wise centering).
// Implementation:
//   - Stage 1: Validate X (non-nil) and handle zero-size as a strict no-op.
//   - Stage 2: Compute column means in a deterministic pass (Dense fast-path; At fallback).
//   - Stage 3: Apply ewBroadcastSubCols to produce a centered copy.
//
// Behavior highlights:
//   - Zero-size (0×N or N×0): returns (X, zeroMeans, nil) without allocations.
//   - Deterministic i→j traversal; stable results.
//
// Inputs:
//   - X: input matrix (r×c).
//
// Returns:
//   - Matrix: centered copy (r×c) for r>0 && c>0; otherwise X itself (no-op).
//   - []float64: column means (len=c).
//
// Errors:
//   - ErrNilMatrix from validation.
//   - Wrapped At/NewDense/Set errors from fallback paths.
//
// Determinism:
//   - Fixed loop order; no randomness.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for output (+ O(c) means).
//
// Notes:
//   - Means are Σ_i X[i,j] / r for r>0.
//
// AI-Hints:
//   - For repeated centering, reuse the returned means to un-center later.
func centerColumns(X Matrix) (Matrix, []float64, error) {
	// Stage 1 (Validate): ensure X is present.
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	// Stage 1 (Zero-size policy): centering is a no-op when there are no elements.
	r, c := X.Rows(), X.Cols()
	means := make([]float64, c) // always return correct length for callers
	if r == 0 || c == 0 {
		return X, means, nil
	}

	// Stage 2 (Prepare): accumulate sums into means, then convert to averages.
	// We keep a single slice to avoid an extra allocation for "sums".
	var i, j int
	var v float64

	// Stage 2 (Execute): Dense fast-path uses the row-major flat buffer directly.
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ { // deterministic row order
			base := i * c           // cache row base offset
			for j = 0; j < c; j++ { // deterministic column order
				means[j] += d.data[base+j] // accumulate sum for column j
			}
		}
	} else {
		// Stage 2 (Execute fallback): use At(i,j) with full error propagation.
		var err error
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				v, err = X.At(i, j)
				if err != nil {
					return nil, nil, matrixErrorf(opCenterColumns, err)
				}
				means[j] += v
			}
		}
	}

	// Stage 3 (Finalize means): divide sums by r to obtain means.
	invR := 1.0 / float64(r)
	for j = 0; j < c; j++ {
		means[j] *= invR
	}

	// Stage 3 (Apply): broadcast-subtract the means over rows to build the centered copy.
	Xc, err := ewBroadcastSubCols(X, means)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	// Return centered matrix and means.
	return Xc, means, nil
}

// standardizeColumns z-scores every column: Z = (X − mean) * diag(1/std).
// Degenerate columns (std==0) become all-zero columns rather than NaN columns.
// Implementation:
//   - Stage 1: Validate X; reject c==0 and r<2 (sample std needs two observations).
//   - Stage 2: Center columns via the canonical kernel (means come for free).
//   - Stage 3: Accumulate squared sums per column; std[j] = sqrt(Σ Xc[i,j]² / (r-1)).
//   - Stage 4: Build invStd (0 for degenerate columns) and apply ewScaleCols.
//
// Behavior highlights:
//   - Shared by Correlation and by feature-standardization pipelines, so the
//     degenerate-column policy stays identical everywhere.
//
// Inputs:
//   - X: Matrix (r×c), r>=2, c>=1.
//
// Returns:
//   - Matrix: z-scored copy Z (r×c).
//   - []float64: column means (len=c).
//   - []float64: column sample stds (len=c).
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (c==0), ErrDimensionMismatch (r<2),
//     wrapped alloc/At/Set errors.
//
// Determinism:
//   - Fixed accumulation order; stable output.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) (+ O(c) auxiliary slices).
//
// Notes:
//   - Sample std uses the (r-1) denominator, matching Covariance.
//
// AI-Hints:
//   - Reuse the returned means/stds to un-standardize reconstructions later.
func standardizeColumns(X Matrix) (Matrix, []float64, []float64, error) {
	// Stage 1 (Validate): ensure X is present.
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, nil, matrixErrorf(opStandardizeColumns, err)
	}

	// Stage 1 (Validate shape): a feature-less matrix cannot be standardized,
	// and the sample denominator needs at least two observations.
	r, c := X.Rows(), X.Cols()
	if c == 0 {
		return nil, nil, nil, matrixErrorf(opStandardizeColumns, ErrInvalidDimensions)
	}
	if r < 2 {
		return nil, nil, nil, matrixErrorf(opStandardizeColumns, ErrDimensionMismatch)
	}

	// Stage 2 (Center): subtract column means.
	Xc, means, err := centerColumns(X)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opStandardizeColumns, err)
	}

	// Stage 3 (Compute std): std[j] = sqrt( Σ_i Xc[i,j]^2 / (r-1) ).
	stds := make([]float64, c)
	sumsq := make([]float64, c) // accumulate squared sums deterministically
	inv := 1.0 / float64(r-1)

	var i, j int
	var v float64

	if d, ok := Xc.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				v = d.data[base+j]
				sumsq[j] += v * v
			}
		}
	} else {
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				v, err = Xc.At(i, j)
				if err != nil {
					return nil, nil, nil, matrixErrorf(opStandardizeColumns, err)
				}
				sumsq[j] += v * v
			}
		}
	}

	for j = 0; j < c; j++ {
		stds[j] = math.Sqrt(sumsq[j] * inv)
	}

	// Stage 4 (Build invStd): degenerate std==0 => invStd=0 (zero-out the column).
	invStd := make([]float64, c)
	for j = 0; j < c; j++ {
		if stds[j] > 0 {
			invStd[j] = 1.0 / stds[j]
		} else {
			invStd[j] = 0.0
		}
	}

	// Stage 4 (Z-score): Z = Xc * diag(invStd) via ewScaleCols.
	Z, err := ewScaleCols(Xc, invStd)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opStandardizeColumns, err)
	}

	// Return z-scored matrix, means, stds.
	return Z, means, stds, nil
}

// covariance computes sample covariance of columns: Cov = (Xcᵀ * Xc)/(r-1).
// Implementation:
//   - Stage 1: Validate X; reject c==0 and r<2 (sample denominator).
//   - Stage 2: Center columns once via the canonical kernel.
//   - Stage 3: Cov = Transpose → Mul → Scale over the centered copy.
//
// Behavior highlights:
//   - Symmetric output; diagonal equals per-column sample variances.
//
// Inputs:
//   - X: Matrix (r×c), r>=2, c>=1.
//
// Returns:
//   - Matrix: Covariance (c×c).
//   - []float64: column means used for centering.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (c==0), ErrDimensionMismatch (r<2),
//     wrapped alloc/At/Set errors.
//
// Determinism:
//   - Fixed composition of deterministic kernels; stable output.
//
// Complexity:
//   - Time O(r*c + r*c^2), Space O(c^2).
//
// Notes:
//   - Composes the canonical Transpose/Mul/Scale kernels, so the Dense fast-path
//     applies end to end.
//   - Result is positive semi-definite on well-formed data (modulo numeric noise).
//
// AI-Hints:
//   - Reuse means with downstream reconstruction or correlation.
//   - For very large c, consider block accumulation outside this package.
func covariance(X Matrix) (Matrix, []float64, error) {
	// Stage 1 (Validate): ensure X is present.
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}

	// Stage 1 (Validate shape): need c>0 and r>=2 for a meaningful sample covariance.
	r, c := X.Rows(), X.Cols()
	if c == 0 {
		return nil, nil, matrixErrorf(opCovariance, ErrInvalidDimensions)
	}
	if r < 2 {
		return nil, nil, matrixErrorf(opCovariance, ErrDimensionMismatch)
	}

	// Stage 2 (Center): reuse the canonical centering implementation.
	Xc, means, err := centerColumns(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}

	// Stage 3 (Compute): Cov = (Xcᵀ Xc)/(r-1) via canonical kernels.
	Xct, err := Transpose(Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	G, err := Mul(Xct, Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	Cov, err := Scale(G, 1.0/float64(r-1))
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}

	return Cov, means, nil
}

// correlation computes Pearson correlation of columns: Corr = (Zᵀ Z)/(r-1),
// where Z is the z-scored copy from standardizeColumns. Degenerate std==0 →
// that column (and its Corr row/column) becomes all zeros.
// Implementation:
//   - Stage 1: z-score via standardizeColumns (validation included).
//   - Stage 2: Corr = Transpose → Mul → Scale over Z.
//
// Behavior highlights:
//   - Symmetric; diagonal is 1 for non-degenerate columns, 0 for degenerate (std==0).
//   - Correlation of X equals covariance of the z-scored X, so the two transforms
//     stay numerically consistent by construction.
//
// Inputs:
//   - X: Matrix (r×c), r>=2, c>=1.
//
// Returns:
//   - Matrix: Correlation (c×c).
//   - []float64: column means.
//   - []float64: column stds (sample).
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (c==0), ErrDimensionMismatch (r<2),
//     wrapped alloc/At/Set errors.
//
// Determinism:
//   - Fixed accumulation order; stable output.
//
// Complexity:
//   - Time O(r*c + r*c^2), Space O(c^2).
//
// Notes:
//   - Scale-invariant: correlation(α*X) == correlation(X) for α>0.
//
// AI-Hints:
//   - Degenerate columns (std==0) become zero columns/rows in Corr by construction.
func correlation(X Matrix) (Matrix, []float64, []float64, error) {
	// Stage 1 (Z-score): standardizeColumns validates shape and handles degenerates.
	Z, means, stds, err := standardizeColumns(X)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}

	// Stage 2 (Corr): Corr = (Zᵀ Z)/(r-1).
	Zt, err := Transpose(Z)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}
	G, err := Mul(Zt, Z)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}
	Corr, err := Scale(G, 1.0/float64(X.Rows()-1))
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}

	// Return correlation matrix, means, stds.
	return Corr, means, stds, nil
}
