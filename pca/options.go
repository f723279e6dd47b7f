// SPDX-License-Identifier: MIT

// Package pca: functional configuration for the fit pipeline. This file
// defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves setters against defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - The pipeline (fitTransform) takes a resolved Options value; the facade
//     (FitTransform) resolves ...Option and passes it down. This keeps the
//     pipeline testable in isolation and defaults in one place.
//   - eigenTol/eigenMaxIter drive the engine; tieTol drives eigen-pair
//     ranking; standardize switches the centering stage to z-scoring.
package pca

import "math"

// ---------- Defaults (single source of truth) ----------

// Numeric policy.
const (
	// DefaultEigenTol is the engine convergence threshold: the Jacobi kernel
	// stops when the maximum absolute off-diagonal entry drops below it.
	DefaultEigenTol = 1e-10

	// DefaultTieTol is the relative tolerance under which two eigenvalues
	// count as tied during ranking; tied pairs keep the solver's order.
	DefaultTieTol = 1e-12

	// DefaultStandardize keeps FitTransform on plain centering; standardized
	// (z-scored) fits are opt-in via WithStandardize.
	DefaultStandardize = false

	// AutoEigenMaxIter asks FitTransform to derive the rotation budget from
	// the covariance order d at fit time (see eigenIterBudget). The Jacobi
	// kernel counts single rotations, not sweeps, so no flat cap suits every
	// d; auto is the default and WithEigenMaxIter overrides it.
	AutoEigenMaxIter = 0
)

// Auto-budget coefficients: the strict upper triangle holds d*(d-1)/2 pivot
// pairs and classical Jacobi revisits each a bounded number of times, so the
// budget grows with d² while the floor keeps tiny systems from starving.
const (
	autoIterQuad  = 60
	autoIterFloor = 200
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEigenTolInvalid     = "pca: WithEigenTol: tol must be finite, positive"
	panicEigenMaxIterInvalid = "pca: WithEigenMaxIter: maxIter must be >= 1"
	panicTieTolInvalid       = "pca: WithTieTol: tol must be finite, non-negative"
	panicEngineNil           = "pca: WithEngine: engine must be non-nil"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// It is intentionally unexported to prevent external mutation; public entry
// points accept `...Option` and internally resolve them via gatherOptions.
type Options struct {
	eigenTol     float64 // > 0; DefaultEigenTol
	eigenMaxIter int     // >= 1, or AutoEigenMaxIter for the derived budget
	tieTol       float64 // >= 0; DefaultTieTol
	standardize  bool    // DefaultStandardize
	engine       Engine  // nil resolves to JacobiEngine at fit time
}

// ---------- Constructors (WithX) ----------

// WithEigenTol sets the engine convergence threshold.
// Implementation:
//   - Stage 1: validate tol is finite and > 0.
//   - Stage 2: return a setter that writes eigenTol into Options.
//
// Behavior highlights:
//   - Tighter tolerance raises spectral accuracy at the cost of rotations.
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
//   - The GonumEngine factorizes to machine precision and ignores tol; the
//     knob binds the Jacobi path.
//
// AI-Hints:
//   - 1e-10 suits covariance matrices of double-precision data; relax to
//     1e-8 when the inputs themselves are noisy.
func WithEigenTol(tol float64) Option {
	if isNonFinite(tol) || tol <= 0 {
		panic(panicEigenTolInvalid)
	}

	return func(o *Options) { o.eigenTol = tol }
}

// WithEigenMaxIter caps the engine iteration budget (Jacobi rotations).
// Implementation:
//   - Stage 1: validate maxIter >= 1.
//   - Stage 2: return a setter that writes eigenMaxIter into Options.
//
// Behavior highlights:
//   - Overrides the auto budget; exceeding the cap surfaces the
//     ErrNumericFailure class, never a silent partial spectrum.
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
//   - Leave on auto unless an experiment needs a reproducible starved or
//     inflated budget; the derived 60·d²+200 is generous for d ≤ ~300.
func WithEigenMaxIter(maxIter int) Option {
	if maxIter < 1 {
		panic(panicEigenMaxIterInvalid)
	}

	return func(o *Options) { o.eigenMaxIter = maxIter }
}

// WithTieTol sets the relative tolerance for eigenvalue ties during ranking.
// Implementation:
//   - Stage 1: validate tol is finite and >= 0.
//   - Stage 2: return a setter that writes tieTol into Options.
//
// Behavior highlights:
//   - Two eigenvalues a, b are tied when |a-b| <= tol·max(|a|,|b|); tied
//     pairs keep the solver's order, which pins the component layout of
//     symmetric spectra across runs.
//
// Inputs:
//   - tol: non-negative finite relative tolerance (0 disables tie handling).
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
// AI-Hints:
//   - Raise toward 1e-9 when comparing spectra produced by different
//     engines; their last digits legitimately disagree.
func WithTieTol(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicTieTolInvalid)
	}

	return func(o *Options) { o.tieTol = tol }
}

// WithStandardize switches the fit to z-scored data (correlation PCA).
// Implementation:
//   - Stage 1: set standardize=true.
//
// Behavior highlights:
//   - Columns are centered and divided by their sample standard deviation,
//     so every feature contributes unit variance regardless of its scale;
//     the factorized matrix is the correlation matrix.
//   - Zero-variance columns become zero columns (their std is reported 0).
//
// Returns:
//   - Option: functional setter.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Standardize when features live on incommensurate scales (meters next
//     to milliseconds); keep plain centering when scales are meaningful.
func WithStandardize() Option {
	return func(o *Options) { o.standardize = true }
}

// WithNoStandardize keeps the fit on plain centering (the default).
// Implementation:
//   - Stage 1: set standardize=false.
//
// Returns:
//   - Option: functional setter.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Useful to neutralize an upstream WithStandardize in shared option
//     slices; last writer wins.
func WithNoStandardize() Option {
	return func(o *Options) { o.standardize = false }
}

// WithEngine selects the eigensolver implementation.
// Implementation:
//   - Stage 1: validate the engine is non-nil.
//   - Stage 2: return a setter that writes engine into Options.
//
// Behavior highlights:
//   - The default (nil field) resolves to JacobiEngine at fit time; pass
//     GonumEngine{} to factorize through gonum/mat instead.
//
// Inputs:
//   - e: a non-nil Engine.
//
// Returns:
//   - Option: functional setter.
//
// Errors:
//   - Panics with a stable message when e is nil.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Swap engines in tests to cross-check a spectrum; production fits
//     rarely need anything beyond the default.
func WithEngine(e Engine) Option {
	if e == nil {
		panic(panicEngineNil)
	}

	return func(o *Options) { o.engine = e }
}

// --------------------------- Option Resolution ---------------------------

// NewPCAOptions resolves option setters against documented defaults.
// Implementation:
//   - Stage 1: start from defaultOptions() (single source of truth).
//   - Stage 2: apply opts in order; last-writer-wins semantics.
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
// AI-Hints:
//   - Compose options close to the FitTransform call-site for clarity.
func NewPCAOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// defaultOptions returns the documented defaults (single source of truth).
// Keep this in sync with the constants above. Complexity: O(1).
func defaultOptions() Options {
	return Options{
		eigenTol:     DefaultEigenTol,
		eigenMaxIter: AutoEigenMaxIter,
		tieTol:       DefaultTieTol,
		standardize:  DefaultStandardize,
		engine:       nil, // resolved to JacobiEngine by the pipeline
	}
}

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry in the api/impl layers.
// Complexity: Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}

// eigenIterBudget derives the rotation budget for a d×d covariance when the
// eigenMaxIter option is left on AutoEigenMaxIter. Complexity: O(1).
func eigenIterBudget(d int) int {
	if d < 1 {
		return autoIterFloor
	}

	return autoIterQuad*d*d + autoIterFloor
}

// isNonFinite reports whether v is NaN or ±Inf.
// Shared guard for option constructors and ingestion. Complexity: O(1).
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
