// SPDX-License-Identifier: MIT

// Package pca: the fitted model. Result carries everything FitTransform
// learned (frame parameters, spectrum, components, projection) and exposes
// the derived views: variance profiles, component selection, projection of
// new data, and back-projection with reconstruction error.

package pca

import (
	"fmt"

	"github.com/katalvlaran/lvlpca/matrix"
)

// Result is the output of FitTransform. Fields are exported for direct
// inspection; treat them as read-only, the methods below share their
// backing storage.
type Result struct {
	// Means holds the per-column sample means subtracted during the fit.
	Means []float64

	// Stds holds the per-column sample standard deviations used by a
	// standardized fit; nil when the fit used plain centering. A zero entry
	// marks a constant column (its z-scores were zeroed).
	Stds []float64

	// Covariance is the factorized d×d matrix: the sample covariance of the
	// centered data, or the correlation matrix for a standardized fit.
	Covariance *matrix.Dense

	// Eigenvalues holds all d eigenvalues in descending order (ties keep
	// solver order); tiny negatives are already clamped to zero.
	Eigenvalues []float64

	// Components is the d×d matrix whose COLUMNS are unit eigenvectors,
	// column j pairing with Eigenvalues[j]. Column signs are arbitrary.
	Components *matrix.Dense

	// Projected is the n×k projection of the fitted frame onto the leading
	// K components.
	Projected *matrix.Dense

	// K is the number of components kept by the fit.
	K int
}

// dim returns the fitted feature width d. Complexity: O(1).
func (r *Result) dim() int {
	return len(r.Means)
}

// basis materializes the leading K component columns as a d×K matrix.
// Complexity: Time O(d·K), Space O(d·K).
func (r *Result) basis() (*matrix.Dense, error) {
	return r.Components.Induced(seq(r.dim()), seq(r.K))
}

// invStds returns the per-column reciprocal stds of a standardized fit
// (zero for constant columns, matching the fit's convention), or nil for
// plain fits. Complexity: O(d).
func (r *Result) invStds() []float64 {
	if r.Stds == nil {
		return nil
	}

	inv := make([]float64, len(r.Stds))
	var j int
	for j = 0; j < len(r.Stds); j++ {
		if r.Stds[j] > 0 {
			inv[j] = 1.0 / r.Stds[j]
		} else {
			inv[j] = 0.0
		}
	}

	return inv
}

// ExplainedVariance returns a copy of the eigenvalue spectrum, one variance
// per component in ranked order. Complexity: O(d).
func (r *Result) ExplainedVariance() []float64 {
	return append([]float64(nil), r.Eigenvalues...)
}

// TotalVariance returns the eigenvalue sum, which matches the trace of
// Covariance up to solver precision. Complexity: O(d).
func (r *Result) TotalVariance() float64 {
	var total float64
	var i int
	for i = 0; i < len(r.Eigenvalues); i++ {
		total += r.Eigenvalues[i]
	}

	return total
}

// ExplainedVarianceRatio returns each component's share of the total
// variance. A zero total (all-constant data) yields all zeros rather than
// NaNs. Complexity: O(d).
func (r *Result) ExplainedVarianceRatio() []float64 {
	ratios := make([]float64, len(r.Eigenvalues))
	total := r.TotalVariance()
	if total <= 0 {
		return ratios
	}

	var i int
	for i = 0; i < len(r.Eigenvalues); i++ {
		ratios[i] = r.Eigenvalues[i] / total
	}

	return ratios
}

// ComponentsFor returns the smallest component count whose cumulative
// explained-variance ratio reaches minRatio.
// Implementation:
//   - Stage 1: accumulate ExplainedVarianceRatio in ranked order.
//   - Stage 2: first index where the running sum >= minRatio wins.
//
// Behavior highlights:
//   - minRatio <= 0 answers 1; minRatio above the reachable total (e.g.
//     > 1) answers d. The answer is always a valid k for this fit's data.
//
// Complexity:
//   - Time O(d), Space O(d).
//
// AI-Hints:
//   - Fit once with k=d, pick k=ComponentsFor(0.95), then slice Projected
//     or refit; the spectrum does not change with k.
func (r *Result) ComponentsFor(minRatio float64) int {
	ratios := r.ExplainedVarianceRatio()
	var cum float64
	var i int
	for i = 0; i < len(ratios); i++ {
		cum += ratios[i]
		if cum >= minRatio {
			return i + 1
		}
	}

	return len(ratios)
}

// transform is the untagged core behind Transform. Errors come back raw for
// the facade (or ReconstructionError) to tag.
func (r *Result) transform(data [][]float64) (*matrix.Dense, error) {
	// Stage 1: the fit's row gates, then the width must match the fit.
	n, d, err := validateData(data)
	if err != nil {
		return nil, err
	}
	if d != r.dim() {
		return nil, fmt.Errorf("%w: rows have %d columns, fit used %d", ErrInvalidInput, d, r.dim())
	}

	// Stage 2: ingest and move into the fitted frame. Subtract-then-scale
	// matches the fit's kernels, so training rows reproduce Projected
	// bitwise.
	X, err := ingest(data, n, d)
	if err != nil {
		return nil, err
	}
	Xf, err := shiftScaleColumns(X, r.Means, r.invStds())
	if err != nil {
		return nil, err
	}

	// Stage 3: project onto the fitted basis.
	B, err := r.basis()
	if err != nil {
		return nil, err
	}
	projM, err := matrix.Mul(Xf, B)
	if err != nil {
		return nil, err
	}

	return toDense(projM)
}

// Transform projects new observation rows with the fitted frame and basis.
// Implementation:
//   - Stage 1: validate rows exactly like FitTransform (shape, finiteness),
//     plus the width must equal the fitted d. A single row is fine; the
//     n >= 2 rule binds fitting only.
//   - Stage 2: apply the stored means (and stds) — NOT fresh statistics of
//     data — so new rows land in the same frame the basis was fit in.
//   - Stage 3: multiply by the leading-K basis.
//
// Inputs:
//   - data: n×d rows, d equal to the fitted width.
//
// Returns:
//   - *matrix.Dense: n×K projection.
//
// Errors:
//   - Detail sentinels under ErrInvalidInput (op-tagged "Transform: ...").
//
// Determinism:
//   - Identical rows give identical projections, equal to the fit's
//     Projected when data repeats the training rows.
//
// Complexity:
//   - Time O(n·d·K), Space O(n·d).
func (r *Result) Transform(data [][]float64) (*matrix.Dense, error) {
	out, err := r.transform(data)
	if err != nil {
		return nil, pcaErrorf(opTransform, err)
	}

	return out, nil
}

// inverseTransform is the untagged core behind InverseTransform.
func (r *Result) inverseTransform(proj matrix.Matrix) (*matrix.Dense, error) {
	// Stage 1: projection gates; width must match the kept components.
	if proj == nil {
		return nil, fmt.Errorf("%w: nil projection", ErrInvalidInput)
	}
	if proj.Cols() != r.K {
		return nil, fmt.Errorf("%w: projection has %d columns, fit kept %d", ErrInvalidInput, proj.Cols(), r.K)
	}
	if err := matrix.ValidateFinite(proj); err != nil {
		return nil, fmt.Errorf("%w: in projection", ErrNotFinite)
	}

	// Stage 2: back-project into the fitted frame: Z = P·Bᵀ.
	B, err := r.basis()
	if err != nil {
		return nil, err
	}
	Bt, err := matrix.Transpose(B)
	if err != nil {
		return nil, err
	}
	reconM, err := matrix.Mul(proj, Bt)
	if err != nil {
		return nil, err
	}

	// Stage 3: leave the fitted frame (undo z-scoring, re-add means).
	return scaleShiftColumns(reconM, r.Stds, r.Means)
}

// InverseTransform back-projects component-space rows to the original
// feature space.
// Implementation:
//   - Stage 1: validate the projection (non-nil, finite, width K).
//   - Stage 2: multiply by the transposed basis.
//   - Stage 3: undo the frame map (scale by stds when standardized, add
//     the means back).
//
// Behavior highlights:
//   - With K = d the round trip Transform -> InverseTransform reproduces
//     the rows up to float noise; with K < d it lands on the best
//     rank-K approximation in the fitted frame.
//   - Constant columns always come back as their mean.
//
// Inputs:
//   - proj: n×K matrix, e.g. Projected or a Transform output.
//
// Returns:
//   - *matrix.Dense: n×d rows in the original feature space.
//
// Errors:
//   - Detail sentinels under ErrInvalidInput (op-tagged
//     "InverseTransform: ...").
//
// Complexity:
//   - Time O(n·d·K), Space O(n·d).
func (r *Result) InverseTransform(proj matrix.Matrix) (*matrix.Dense, error) {
	out, err := r.inverseTransform(proj)
	if err != nil {
		return nil, pcaErrorf(opInverseTransform, err)
	}

	return out, nil
}

// ReconstructionError reports the mean squared error between data and its
// projection round trip, averaged over all n·d entries.
// Implementation:
//   - Stage 1: transform data (validation included), back-project it.
//   - Stage 2: accumulate squared entry differences in fixed i→j order.
//
// Behavior highlights:
//   - Zero (up to float noise) when K = d; otherwise the mass of the
//     trailing d-K eigenvalues leaks in, so the error shrinks as K grows.
//
// Inputs:
//   - data: n×d rows, d equal to the fitted width.
//
// Returns:
//   - float64: mean squared reconstruction error.
//
// Errors:
//   - Detail sentinels under ErrInvalidInput (op-tagged
//     "ReconstructionError: ...").
//
// Complexity:
//   - Time O(n·d·K), Space O(n·d).
func (r *Result) ReconstructionError(data [][]float64) (float64, error) {
	proj, err := r.transform(data)
	if err != nil {
		return 0, pcaErrorf(opReconstructionError, err)
	}
	recon, err := r.inverseTransform(proj)
	if err != nil {
		return 0, pcaErrorf(opReconstructionError, err)
	}

	n := len(data)
	d := r.dim()
	var sum, v, diff float64
	var i, j int // loop iterators (deterministic order)
	for i = 0; i < n; i++ {
		for j = 0; j < d; j++ {
			if v, err = recon.At(i, j); err != nil {
				return 0, pcaErrorf(opReconstructionError, err)
			}
			diff = data[i][j] - v
			sum += diff * diff
		}
	}

	return sum / float64(n*d), nil
}
