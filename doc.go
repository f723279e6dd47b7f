// Package lvlpca is a deterministic principal component analysis toolkit:
// a dense-matrix core with explicit numeric policies, and a PCA layer that
// fits, projects, and reconstructs tabular data.
//
// 🚀 What is lvlpca?
//
//	A small, reproducibility-first library that brings together:
//		• Dense matrices: construction, element ops, multiplication, transpose
//		• Column statistics: means, centering, z-scoring, covariance, correlation
//		• A symmetric eigensolver: classical Jacobi rotations, budgeted and tolerant
//		• PCA: fit, project, inverse-project, explained-variance accounting
//		• A pluggable engine seam with a gonum (LAPACK) adapter for cross-checks
//
// ✨ Why choose lvlpca?
//
//   - Deterministic – identical inputs give identical results, bit for bit
//   - Explicit errors – sentinel taxonomy; errors.Is works at every level
//   - Tunable – functional options for tolerances, budgets and scaling
//   - Testable – every numeric stage is exposed to tests in isolation
//
// Under the hood, everything is organized under two subpackages:
//
//	matrix/ — Dense type, validators, kernels, statistics & the Jacobi eigensolver
//	pca/    — FitTransform pipeline, Result projections & the engine seam
//
// Quick sketch of a fit:
//
//	data ──center──▶ Xc ──(Xcᵀ·Xc)/(n−1)──▶ Cov ──Jacobi──▶ (λ, Q) ──top-k──▶ scores
//
// Dive into examples/ for runnable walkthroughs: a variance profile, a
// feature-scaling comparison, and an engine cross-check.
//
//	go get github.com/katalvlaran/lvlpca
package lvlpca
