// SPDX-License-Identifier: MIT

package pca

// Test-Bridge (White-Box) for Pipeline Stages and Options Snapshot
//
// Purpose:
//   - Expose the UNEXPORTED ranking/clamping stages and an internal options
//     snapshot to pca_test ONLY.
//   - Enable white-box verification of tie handling and PSD clamping without
//     widening the prod API.
//
// Build Policy:
//   - The file compiles with the package (no build tag) so external tests run
//     without extra flags; the _TestOnly suffix marks the surface as
//     off-limits for production callers.
//
// Risks & Maintenance:
//   - Keep OptionsSnapshot in sync with internal Options fields. If Options
//     changes, update snapshotOf(...) accordingly (tests will catch drift).

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicEigenTolInvalid_TestOnly     = panicEigenTolInvalid
	PanicEigenMaxIterInvalid_TestOnly = panicEigenMaxIterInvalid
	PanicTieTolInvalid_TestOnly       = panicTieTolInvalid
	PanicEngineNil_TestOnly           = panicEngineNil
)

// --- pipeline stage bridges ---------------------------------------------------

// RankEigenPairs_TestOnly forwards to the private ranking stage.
func RankEigenPairs_TestOnly(vals []float64, tieTol float64) []int {
	return rankEigenPairs(vals, tieTol)
}

// ClampSpectrum_TestOnly forwards to the private clamping stage (in place).
func ClampSpectrum_TestOnly(sorted []float64, tieTol float64) {
	clampSpectrum(sorted, tieTol)
}

// TieWithin_TestOnly forwards to the relative tie predicate.
func TieWithin_TestOnly(a, b, tol float64) bool {
	return tieWithin(a, b, tol)
}

// EigenIterBudget_TestOnly forwards to the auto rotation-budget derivation.
func EigenIterBudget_TestOnly(d int) int {
	return eigenIterBudget(d)
}

// --- options snapshot bridge --------------------------------------------------

// OptionsSnapshot is a stable, test-facing copy of internal Options fields.
// EngineSet reports whether an engine was selected (the field itself is an
// interface and stays internal).
type OptionsSnapshot struct {
	EigenTol     float64
	EigenMaxIter int
	TieTol       float64
	Standardize  bool
	EngineSet    bool
}

// NewPCAOptionsSnapshot_TestOnly builds Options via public Option funcs and
// returns a snapshot.
func NewPCAOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := NewPCAOptions(opts...)

	return snapshotOf(o)
}

// GatherOptionsSnapshot_TestOnly returns a snapshot after internal derivation.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return snapshotOf(o)
}

// snapshotOf copies internal fields to a public struct. Keep in sync with
// the Options layout.
func snapshotOf(o Options) OptionsSnapshot {
	return OptionsSnapshot{
		EigenTol:     o.eigenTol,
		EigenMaxIter: o.eigenMaxIter,
		TieTol:       o.tieTol,
		Standardize:  o.standardize,
		EngineSet:    o.engine != nil,
	}
}
