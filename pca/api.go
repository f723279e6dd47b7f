// SPDX-License-Identifier: MIT

// Package pca: public entry point. FitTransform is the one-call fit: it
// resolves functional options, runs the pipeline (impl_pipeline.go), and
// tags any error with the operation name. Derived views (variance profile,
// projection of new data, reconstruction) live on the returned Result.

package pca

// FitTransform fits a principal component analysis on data and projects it
// onto the leading k components.
//
// Implementation:
//   - Stage 1: resolve ...Option against documented defaults (gatherOptions).
//   - Stage 2: run the pipeline: validate -> ingest -> center (or z-score)
//     -> covariance (or correlation) -> engine factorization -> stable
//     descending ranking with tie handling -> PSD clamping -> leading-k
//     basis -> projection.
//   - Stage 3: op-tag any pipeline error; assemble the Result otherwise.
//
// Behavior highlights:
//   - The covariance uses the sample normalization 1/(n-1).
//   - Eigen-pairs are ranked descending; near-equal eigenvalues (relative
//     DefaultTieTol) keep the engine's order, so degenerate spectra have a
//     stable component layout.
//   - Eigenvector sign is arbitrary per column: v and -v describe the same
//     axis. Compare projections up to per-column sign.
//   - Pure: data is never mutated and never aliased by the Result.
//
// Inputs:
//   - data: n observation rows × d feature columns, rectangular, finite.
//   - k: number of components to keep, 1 <= k <= d.
//   - opts: WithStandardize, WithEngine, WithEigenTol, WithEigenMaxIter,
//     WithTieTol (see options.go).
//
// Returns:
//   - *Result: frame parameters, covariance, ranked spectrum, components,
//     and the n×k projection.
//
// Errors:
//   - ErrInvalidInput class (ErrNoRows, ErrNoColumns, ErrRaggedRows,
//     ErrNotFinite, ErrBadComponents) for malformed input.
//   - ErrDegenerateInput class (ErrTooFewRows) when n < 2.
//   - ErrNumericFailure class (ErrEigenDiverged) when the engine fails.
//
// Determinism:
//   - Identical data, k, and options give identical Results, bit for bit.
//
// Complexity:
//   - Time O(n·d² + E) with E the engine cost (O(budget·d²) for the default
//     Jacobi engine); Space O(n·d + d²).
//
// AI-Hints:
//   - Fit with k=d once to inspect ExplainedVarianceRatio, then pick k via
//     ComponentsFor(0.95); the spectrum is k-independent.
//   - Standardize when feature scales are incommensurate; the factorized
//     matrix is then the correlation matrix.
func FitTransform(data [][]float64, k int, opts ...Option) (*Result, error) {
	// Stage 1: resolve the numeric policy once.
	o := gatherOptions(opts...)

	// Stage 2: run the pipeline on the resolved options.
	res, err := fitTransform(data, k, o)
	if err != nil {
		// Stage 3: one op tag at the boundary; the sentinel chain stays
		// visible to errors.Is.
		return nil, pcaErrorf(opFitTransform, err)
	}

	return res, nil
}
