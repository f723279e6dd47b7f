// SPDX-License-Identifier: MIT
// Package: pca
//
// Purpose:
//   - Implement the fit pipeline behind FitTransform as a deterministic
//     composition over the matrix package: validate -> ingest -> center (or
//     z-score) -> covariance (or correlation) -> engine factorization ->
//     rank/clamp -> basis -> projection.
//   - Keep every stage a small named function so properties (ranking
//     stability, clamping, ingestion) stay testable in isolation.
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - One Dense ingestion; statistics facades and kernels reuse it.
//   - The finite-value scan runs once here; the facades are told to skip
//     theirs (matrix.WithNoValidateNaNInf).
//
// AI-Hints:
//   - fitTransform takes a resolved Options value; construct one with
//     NewPCAOptions when exercising the pipeline directly in tests.

package pca

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvlpca/matrix"
)

// validateData checks the raw observation rows: at least one row, a positive
// common width, and finite entries everywhere.
// Implementation:
//   - Stage 1: reject an empty data set and width-zero rows.
//   - Stage 2: single pass over rows; each must match the width of row 0 and
//     carry only finite values.
//
// Returns:
//   - n, d: observation count and feature width on success.
//
// Errors:
//   - ErrNoRows / ErrNoColumns / ErrRaggedRows / ErrNotFinite, each wrapping
//     ErrInvalidInput; ragged and non-finite failures carry coordinates.
//
// Complexity:
//   - Time O(n·d), Space O(1).
func validateData(data [][]float64) (int, int, error) {
	// Stage 1: outer shape.
	n := len(data)
	if n == 0 {
		return 0, 0, ErrNoRows
	}
	d := len(data[0])
	if d == 0 {
		return 0, 0, ErrNoColumns
	}

	// Stage 2: per-row width and finiteness.
	var i, j int // loop iterators (deterministic order)
	for i = 0; i < n; i++ {
		if len(data[i]) != d {
			return 0, 0, fmt.Errorf("%w: row %d has %d columns, want %d", ErrRaggedRows, i, len(data[i]), d)
		}
		for j = 0; j < d; j++ {
			if isNonFinite(data[i][j]) {
				return 0, 0, fmt.Errorf("%w: at row %d, column %d", ErrNotFinite, i, j)
			}
		}
	}

	return n, d, nil
}

// ingest copies validated rows into a fresh n×d Dense. The copy decouples
// the fit from the caller's slices; later mutation of data cannot reach the
// Result. Complexity: Time O(n·d), Space O(n·d).
func ingest(data [][]float64, n, d int) (*matrix.Dense, error) {
	X, err := matrix.NewDense(n, d)
	if err != nil {
		return nil, err
	}

	var i, j int // loop iterators (deterministic order)
	for i = 0; i < n; i++ {
		for j = 0; j < d; j++ {
			if err = X.Set(i, j, data[i][j]); err != nil {
				return nil, err
			}
		}
	}

	return X, nil
}

// toDense materializes any Matrix as a concrete *matrix.Dense. All matrix
// kernels allocate Dense, so the type assertion is the common path; the
// element-wise fallback covers foreign implementations handed in through
// the Engine seam. Complexity: O(1) on the assertion path, O(r·c) otherwise.
func toDense(m matrix.Matrix) (*matrix.Dense, error) {
	if m == nil {
		return nil, matrix.ErrNilMatrix
	}
	if D, ok := m.(*matrix.Dense); ok {
		return D, nil
	}

	r, c := m.Rows(), m.Cols()
	out, err := matrix.NewDense(r, c)
	if err != nil {
		return nil, err
	}
	var i, j int // loop iterators (deterministic order)
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			if err = out.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// seq returns the index sequence [0, 1, ..., n-1]. Complexity: O(n).
func seq(n int) []int {
	idx := make([]int, n)
	var i int
	for i = 0; i < n; i++ {
		idx[i] = i
	}

	return idx
}

// tieWithin reports the relative tie predicate |a-b| <= tol·max(|a|,|b|).
// Equal values (including two zeros) always tie. Complexity: O(1).
func tieWithin(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol*math.Max(math.Abs(a), math.Abs(b))
}

// rankEigenPairs returns the permutation that ranks vals descending.
// Implementation:
//   - Stage 1: start from the identity permutation (solver order).
//   - Stage 2: sort.SliceStable with a comparator that treats near-equal
//     values (tieWithin) as equal; stability then keeps tied pairs in
//     solver order.
//
// Behavior highlights:
//   - Degenerate spectra (repeated eigenvalues) map to a stable component
//     layout instead of an arbitrary one.
//
// Complexity:
//   - Time O(d·log d), Space O(d).
func rankEigenPairs(vals []float64, tieTol float64) []int {
	order := seq(len(vals))
	sort.SliceStable(order, func(a, b int) bool {
		va, vb := vals[order[a]], vals[order[b]]
		if tieWithin(va, vb, tieTol) {
			return false // tied: solver order stands
		}

		return va > vb
	})

	return order
}

// clampSpectrum zeroes tiny negative eigenvalues in place. A sample
// covariance is positive semi-definite, so negatives at rounding scale are
// float noise; the threshold is relative to the dominant eigenvalue with a
// unit floor. Larger negatives are left untouched for the caller to see.
// Complexity: O(d).
func clampSpectrum(sorted []float64, tieTol float64) {
	if len(sorted) == 0 {
		return
	}

	limit := tieTol * math.Max(math.Abs(sorted[0]), 1.0)
	var i int
	for i = 0; i < len(sorted); i++ {
		if sorted[i] < 0 && -sorted[i] <= limit {
			sorted[i] = 0
		}
	}
}

// shiftScaleColumns returns a fresh copy of X with column j mapped through
// (v - shift[j]) · scale[j]: the forward frame map (centering, z-scoring).
// A nil scale means factor 1; shift is required with length Cols. The
// operation order matches the statistics kernels (subtract, then scale), so
// re-applying a fit's frame to its own rows is bitwise identical.
// Complexity: Time O(r·c), Space O(r·c).
func shiftScaleColumns(X matrix.Matrix, shift, scale []float64) (*matrix.Dense, error) {
	if X == nil {
		return nil, matrix.ErrNilMatrix
	}
	r, c := X.Rows(), X.Cols()
	if len(shift) != c {
		return nil, matrix.ErrDimensionMismatch
	}
	if scale != nil && len(scale) != c {
		return nil, matrix.ErrDimensionMismatch
	}

	out, err := matrix.NewDense(r, c)
	if err != nil {
		return nil, err
	}
	var i, j int // loop iterators (deterministic order)
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, err
			}
			v -= shift[j]
			if scale != nil {
				v *= scale[j]
			}
			if err = out.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// scaleShiftColumns returns a fresh copy of X with column j mapped through
// v·scale[j] + shift[j]: the inverse frame map (un-z-scoring, un-centering).
// A nil scale means factor 1; shift is required with length Cols.
// Complexity: Time O(r·c), Space O(r·c).
func scaleShiftColumns(X matrix.Matrix, scale, shift []float64) (*matrix.Dense, error) {
	if X == nil {
		return nil, matrix.ErrNilMatrix
	}
	r, c := X.Rows(), X.Cols()
	if len(shift) != c {
		return nil, matrix.ErrDimensionMismatch
	}
	if scale != nil && len(scale) != c {
		return nil, matrix.ErrDimensionMismatch
	}

	out, err := matrix.NewDense(r, c)
	if err != nil {
		return nil, err
	}
	var i, j int // loop iterators (deterministic order)
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, err
			}
			if scale != nil {
				v *= scale[j]
			}
			v += shift[j]
			if err = out.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// fitTransform runs the full fit on validated options.
// Implementation:
//   - Stage 1: validateData — shape and finiteness with coordinates.
//   - Stage 2: parameter gates — k in [1, d], then n >= 2.
//   - Stage 3: ingest the rows into one Dense.
//   - Stage 4: move to the fitted frame. Plain fits center; standardized
//     fits z-score. The factorized matrix is the covariance of that frame
//     (the correlation matrix when standardizing). The facades skip their
//     finite scan; Stage 1 already ran it.
//   - Stage 5: resolve the engine and rotation budget; factorize.
//   - Stage 6: guard the engine contract (value count, vector shape).
//   - Stage 7: rank eigen-pairs stable-descending and clamp PSD noise.
//   - Stage 8: reorder eigenvector columns; slice the leading k as basis.
//   - Stage 9: project the fitted frame and assemble the Result.
//
// Behavior highlights:
//   - Eigenvector sign is arbitrary per column; callers comparing spectra
//     must compare up to sign.
//   - Pure: data is never mutated; identical inputs and options give
//     identical Results.
//
// Errors:
//   - Detail sentinels under ErrInvalidInput / ErrDegenerateInput from the
//     gates; ErrEigenDiverged (wrapping the engine error) or a direct
//     ErrNumericFailure contract violation from the factorization stages.
//
// Complexity:
//   - Time O(n·d² + E) with E the engine cost (O(budget·d²) for Jacobi);
//     Space O(n·d + d²).
func fitTransform(data [][]float64, k int, o Options) (*Result, error) {
	// Stage 1: shape and finiteness.
	n, d, err := validateData(data)
	if err != nil {
		return nil, err
	}

	// Stage 2: parameter gates. Component bounds first, observation count
	// second (documented error priority).
	if k < 1 || k > d {
		return nil, fmt.Errorf("%w: k=%d, want 1..%d", ErrBadComponents, k, d)
	}
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewRows, n)
	}

	// Stage 3: one Dense ingestion for all downstream stages.
	X, err := ingest(data, n, d)
	if err != nil {
		return nil, err
	}

	// Stage 4: fitted frame + its covariance.
	var (
		frame matrix.Matrix // centered (or z-scored) observations
		covM  matrix.Matrix // covariance (or correlation) of the frame
		means []float64
		stds  []float64
	)
	if o.standardize {
		if frame, means, stds, err = matrix.StandardizeColumns(X, matrix.WithNoValidateNaNInf()); err != nil {
			return nil, err
		}
		if covM, _, _, err = matrix.Correlation(X, matrix.WithNoValidateNaNInf()); err != nil {
			return nil, err
		}
	} else {
		if frame, means, err = matrix.CenterColumns(X, matrix.WithNoValidateNaNInf()); err != nil {
			return nil, err
		}
		if covM, _, err = matrix.Covariance(X, matrix.WithNoValidateNaNInf()); err != nil {
			return nil, err
		}
	}

	// Stage 5: engine resolution and factorization.
	eng := o.engine
	if eng == nil {
		eng = JacobiEngine{}
	}
	budget := o.eigenMaxIter
	if budget == AutoEigenMaxIter {
		budget = eigenIterBudget(d)
	}
	rawVals, rawVecs, err := eng.Factorize(covM, o.eigenTol, budget)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEigenDiverged, err)
	}

	// Stage 6: engine contract guards (matters for user-supplied engines).
	if len(rawVals) != d {
		return nil, fmt.Errorf("%w: engine returned %d eigenvalues for a %d-column fit", ErrNumericFailure, len(rawVals), d)
	}
	if rawVecs == nil {
		return nil, fmt.Errorf("%w: engine returned no eigenvectors", ErrNumericFailure)
	}
	V, err := toDense(rawVecs)
	if err != nil {
		return nil, err
	}
	if V.Rows() != d || V.Cols() != d {
		return nil, fmt.Errorf("%w: engine returned %dx%d eigenvectors, want %dx%d", ErrNumericFailure, V.Rows(), V.Cols(), d, d)
	}

	// Stage 7: rank descending (ties keep solver order), clamp PSD noise.
	order := rankEigenPairs(rawVals, o.tieTol)
	vals := make([]float64, d)
	var i int
	for i = 0; i < d; i++ {
		vals[i] = rawVals[order[i]]
	}
	clampSpectrum(vals, o.tieTol)

	// Stage 8: ranked component columns; leading k form the basis.
	allRows := seq(d)
	comps, err := V.Induced(allRows, order)
	if err != nil {
		return nil, err
	}
	basis, err := comps.Induced(allRows, seq(k))
	if err != nil {
		return nil, err
	}

	// Stage 9: projection and assembly.
	projM, err := matrix.Mul(frame, basis)
	if err != nil {
		return nil, err
	}
	proj, err := toDense(projM)
	if err != nil {
		return nil, err
	}
	covD, err := toDense(covM)
	if err != nil {
		return nil, err
	}

	return &Result{
		Means:       means,
		Stds:        stds,
		Covariance:  covD,
		Eigenvalues: vals,
		Components:  comps,
		Projected:   proj,
		K:           k,
	}, nil
}
