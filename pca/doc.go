// Package pca computes principal component analysis over float64 rows:
// covariance, eigendecomposition, variance profile, and projection.
//
// 🚀 What is PCA?
//
//	PCA rotates a data set onto the orthogonal axes along which it varies
//	most, so a handful of components can stand in for many raw features.
//	It’s widely used in:
//	  • Dimensionality reduction before clustering or regression
//	  • Noise filtering (drop the low-variance tail)
//	  • Exploratory analysis of feature correlation
//	  • Visualization of high-dimensional data in 2–3 axes
//
// ✨ Key features:
//   - one-call FitTransform: center → covariance → eigen → project
//   - exact sample covariance (1/(n−1)), optional z-scoring (WithStandardize)
//   - deterministic ranking: descending eigenvalues, ties keep solver order
//   - swappable eigensolver: Jacobi kernel by default, gonum via WithEngine
//   - Result methods: explained-variance profile, ComponentsFor(ratio),
//     Transform / InverseTransform / ReconstructionError for new rows
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlpca/pca"
//
//	data := [][]float64{
//	  {2, 4, 6, 8},
//	  {1, 3, 5, 7},
//	  {3, 5, 7, 9},
//	  {2, 6, 8, 10},
//	}
//
//	// fit and project onto the two dominant components
//	res, err := pca.FitTransform(data, 2)
//	if err != nil { ... }
//
//	fmt.Println(res.Eigenvalues)             // descending spectrum
//	fmt.Println(res.ExplainedVarianceRatio()) // per-component share
//	fmt.Println(res.Projected)                // 4×2 scores
//
// Performance:
//
//   - Time:   O(n·d²) for statistics + the engine cost (Jacobi: O(budget·d²))
//   - Memory: O(n·d + d²)
//
// Eigenvector signs are arbitrary: a component and its negation span the
// same axis, so compare projections up to per-column sign. See
// example_test.go and examples/ for complete walkthroughs.
package pca
