// SPDX-License-Identifier: MIT
// Package pca: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the pca
// package. The pipeline MUST return these sentinels and tests MUST check them
// via errors.Is. No pipeline stage panics on user-triggered error conditions.
// Panics are reserved for programmer errors in option constructors.

package pca

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "pca: ..." for consistency and to allow easy
// grepping across logs. The taxonomy is two-level: three CLASS sentinels name
// the failure family, and each DETAIL sentinel wraps its class with %w, so
// errors.Is matches both levels on one returned error:
//
//	errors.Is(err, pca.ErrRaggedRows)   // the precise defect
//	errors.Is(err, pca.ErrInvalidInput) // the family
//
// ERROR PRIORITY (documented, enforced in tests):
// shape defects (rows, columns, raggedness) -> non-finite values
// -> component bounds -> observation count -> convergence failures.

// Class sentinels. Every error returned by the package wraps exactly one.
var (
	// ErrInvalidInput indicates malformed data or parameters: an empty data
	// set, ragged rows, non-finite entries, or a component count outside
	// [1, d]. The caller can always prevent it by fixing the input.
	ErrInvalidInput = errors.New("pca: invalid input")

	// ErrDegenerateInput indicates data that is well-formed but statistically
	// unusable: fewer than 2 observations leave the sample covariance
	// undefined (the 1/(n-1) normalization divides by zero).
	ErrDegenerateInput = errors.New("pca: degenerate input")

	// ErrNumericFailure indicates that the eigensolver did not produce a
	// usable factorization under the configured tolerance and budget.
	ErrNumericFailure = errors.New("pca: numeric failure")
)

// Detail sentinels. Each wraps its class so both levels match via errors.Is.
var (
	// ErrNoRows: the data set has no observation rows.
	ErrNoRows = fmt.Errorf("%w: no observation rows", ErrInvalidInput)

	// ErrNoColumns: the rows carry no features (width zero).
	ErrNoColumns = fmt.Errorf("%w: rows have no columns", ErrInvalidInput)

	// ErrRaggedRows: at least one row differs in width from the first row.
	ErrRaggedRows = fmt.Errorf("%w: ragged rows", ErrInvalidInput)

	// ErrNotFinite: a NaN or ±Inf entry was found during ingestion.
	ErrNotFinite = fmt.Errorf("%w: non-finite value", ErrInvalidInput)

	// ErrBadComponents: the requested component count k is outside [1, d].
	ErrBadComponents = fmt.Errorf("%w: component count out of range", ErrInvalidInput)

	// ErrTooFewRows: fewer than 2 observations; covariance needs n >= 2.
	ErrTooFewRows = fmt.Errorf("%w: need at least 2 observation rows", ErrDegenerateInput)

	// ErrEigenDiverged: the engine reported a factorization failure, usually
	// an exhausted rotation budget on the Jacobi path.
	ErrEigenDiverged = fmt.Errorf("%w: eigendecomposition diverged", ErrNumericFailure)
)

// Operation tags used by pcaErrorf (keep names equal to exported API names).
const (
	opFitTransform        = "FitTransform"
	opTransform           = "Transform"
	opInverseTransform    = "InverseTransform"
	opReconstructionError = "ReconstructionError"
)

// pcaErrorf wraps err with an operation tag: "FitTransform: pca: ...".
// Callers gate with `if err != nil { return nil, pcaErrorf(tag, err) }`;
// the sentinel chain below the tag stays visible to errors.Is.
// Complexity: O(1).
func pcaErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
