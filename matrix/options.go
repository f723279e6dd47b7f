// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy shared by
// facades and kernels. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves setters against defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported (internal); public APIs consume ...Option.
//
// Notes:
//   - Kernels (Eigen, covariance, ...) take explicit parameters; facades
//     (EigenSym, Covariance, ...) resolve ...Option and pass values down.
//     This keeps kernels testable in isolation and defaults in one place.
//   - Numeric policy is orthogonal and explicit:
//   - eps drives structural checks (symmetry validation before spectral work).
//   - eigenTol/eigenMaxIter drive Jacobi convergence.
//   - validateNaNInf controls whether statistics facades reject NaN/Inf input
//     up front; kernels may then assume finite data.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

// Numeric policy.
const (
	// DefaultEpsilon defines the non-negative tolerance used by structural checks.
	DefaultEpsilon = 1e-9

	// DefaultEigenTol is the Jacobi convergence threshold: iteration stops when
	// the maximum absolute off-diagonal entry drops below this value.
	DefaultEigenTol = 1e-10

	// DefaultEigenMaxIter caps Jacobi rotations (one pivot elimination per
	// iteration); exceeding it surfaces ErrMatrixEigenFailed rather than
	// silently returning a partial result.
	DefaultEigenMaxIter = 200

	// DefaultValidateNaNInf toggles strict finite-value validation on the
	// statistics facades (CenterColumns/Covariance/Correlation).
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid      = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicEigenTolInvalid     = "matrix: WithEigenTol: tol must be finite, positive"
	panicEigenMaxIterInvalid = "matrix: WithEigenMaxIter: maxIter must be >= 1"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// It is intentionally unexported to prevent external mutation; public entry
// points accept `...Option` and internally resolve them via gatherOptions.
type Options struct {
	// numeric policy
	eps            float64 // >= 0; DefaultEpsilon
	eigenTol       float64 // > 0; DefaultEigenTol
	eigenMaxIter   int     // >= 1; DefaultEigenMaxIter
	validateNaNInf bool    // DefaultValidateNaNInf
}

// ---------- Constructors (WithX) ----------

// WithEpsilon sets the numeric tolerance eps used by structural checks.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Behavior highlights:
//   - Strict validation in constructor; panics on nonsensical values.
//
// Inputs:
//   - eps: non-negative finite tolerance.
//
// Returns:
//   - Option: functional setter.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Applies to structural numeric checks (symmetry validation before Eigen).
//     Larger eps relaxes equality checks; use judiciously.
//
// AI-Hints:
//   - Prefer small positive eps (e.g., 1e-9) for double-precision data or unless dealing with noisy data.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	// Assign validated epsilon
	return func(o *Options) { o.eps = eps }
}

// WithEigenTol sets the Jacobi convergence threshold.
// Implementation:
//   - Stage 1: validate tol is finite and > 0.
//   - Stage 2: return a setter that writes eigenTol into Options.
//
// Behavior highlights:
//   - Tighter tolerance raises accuracy at the cost of extra sweeps.
//
// Inputs:
//   - tol: positive finite convergence threshold.
//
// Returns:
//   - Option: functional setter.
//
// Errors:
//   - Panics with a stable message when tol is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Interacts with WithEigenMaxIter: a very tight tol may need a higher cap.
//
// AI-Hints:
//   - 1e-10 suits n≤128 symmetric inputs; relax to 1e-8 for large noisy data.
func WithEigenTol(tol float64) Option {
	if isNonFinite(tol) || tol <= 0 {
		panic(panicEigenTolInvalid)
	}

	return func(o *Options) { o.eigenTol = tol }
}

// WithEigenMaxIter caps the number of Jacobi rotations.
// Implementation:
//   - Stage 1: validate maxIter ≥ 1.
//   - Stage 2: return a setter that writes eigenMaxIter into Options.
//
// Behavior highlights:
//   - Exceeding the cap is surfaced as ErrMatrixEigenFailed, never silent.
//
// Inputs:
//   - maxIter: rotation cap, at least 1.
//
// Returns:
//   - Option: functional setter.
//
// Errors:
//   - Panics with a stable message when maxIter < 1.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - The budget counts single rotations, not sweeps: one full sweep of an
//     n×n matrix is n(n−1)/2 pivots, so scale the cap quadratically with n.
func WithEigenMaxIter(maxIter int) Option {
	if maxIter < 1 {
		panic(panicEigenMaxIterInvalid)
	}

	return func(o *Options) { o.eigenMaxIter = maxIter }
}

// WithValidateNaNInf enables strict finite-value validation (default).
// Implementation:
//   - Stage 1: set validateNaNInf=true.
//
// Behavior highlights:
//   - Statistics facades reject NaN/±Inf entries before any accumulation.
//
// Returns:
//   - Option: functional setter.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - This is the default; use WithNoValidateNaNInf to relax.
//
// AI-Hints:
//   - Keep this enabled in data-clean pipelines; disable only when ingesting
//     data already validated upstream and the O(r*c) pre-scan matters.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (use with care).
// Implementation:
//   - Stage 1: set validateNaNInf=false.
//
// Behavior highlights:
//   - Non-finite entries flow into means/covariances and poison the result.
//
// Returns:
//   - Option: functional setter.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Only skip validation when the caller has already scanned the data.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// --------------------------- Option Resolution ---------------------------

// NewMatrixOptions resolves option setters against documented defaults.
// Implementation:
//   - Stage 1: start from defaultOptions() (single source of truth).
//   - Stage 2: apply opt in order; last-writer-wins semantics.
//   - Stage 3: return the internal Options value.
//
// Behavior highlights:
//   - Pure function; no side effects beyond producing a value.
//
// Inputs:
//   - opts: zero or more functional setters.
//
// Returns:
//   - Options: internal struct with effective configuration.
//
// Determinism:
//   - Stable for a given sequence of opts.
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(opts).
//
// Notes:
//   - Most public entry points accept ...Option and call gatherOptions.
//
// AI-Hints:
//   - Compose options close to the facade call-site for clarity.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// defaultOptions returns the documented defaults (single source of truth).
// Implementation:
//   - Stage 1: fill fields from Default* constants.
//
// Behavior highlights:
//   - Ensures defaults and comments never diverge.
//
// Returns:
//   - Options: defaults snapshot.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Keep this in sync with constants above.
//
// AI-Hints:
//   - Use NewMatrixOptions() to override selectively.
func defaultOptions() Options {
	return Options{
		eps:            DefaultEpsilon,
		eigenTol:       DefaultEigenTol,
		eigenMaxIter:   DefaultEigenMaxIter,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry in api/impl layers.
// Implementation:
//   - Stage 1: start from defaultOptions().
//   - Stage 2: apply setters in order (last-writer-wins).
//
// Behavior highlights:
//   - Centralized defaulting prevents drift across call sites.
//
// Inputs:
//   - user: sequence of Option setters.
//
// Returns:
//   - Options: fully resolved configuration.
//
// Determinism:
//   - Stable for a given sequence of setters.
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(user).
//
// AI-Hints:
//   - Prefer gatherOptions(...) over ad-hoc defaulting in callers.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}

// isNonFinite reports whether v is NaN or ±Inf.
// Shared guard for option constructors and kernels. Complexity: O(1).
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
