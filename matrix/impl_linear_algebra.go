// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation,
// including element-wise addition, subtraction and multiplication, matrix
// multiplication, transpose, scalar scaling, trace and the Jacobi
// eigen-decomposition. All functions perform strict fail-fast validation and
// return clear errors on dimension mismatches.
//
// Purpose:
//   - Declare canonical linear-algebra kernels (signatures) used across the package.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - Kernels keep a *Dense fast path (flat row-major loops) and a Matrix-interface fallback.
//   - All kernels use central validators and wrap failures via matrixErrorf with their op tag.

package matrix

import (
	"fmt"
	"math"
)

// NormZero is the additive identity for norm and accumulation operations.
const NormZero = 0.0

// ZeroSum is the initial sum value for accumulator loops in fallback paths.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opHadamard  = "Hadamard"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opMatVec    = "MatVec"
	opTrace     = "Trace"
	opEigen     = "Eigen"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across facades.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Implementation:
//   - Stage 1: Wrap using fmt.Errorf("%s: %w", tag, err) to enable errors.Is/As.
//
// Behavior highlights:
//   - Preserves the underlying sentinel/type for errors.Is/errors.As.
//   - Keeps human-readable operation prefixes (e.g., "Add|Sub", "Eigen").
//
// Inputs:
//   - tag: operation name/label (use package-level op* constants; no magic strings).
//   - err: underlying non-nil error to wrap.
//
// Returns:
//   - error: a non-nil error that formats as "<tag>: <underlying>" and still matches Is/As.
//
// Errors:
//   - None produced here; this function assumes err != nil. Caller responsibility.
//
// Determinism:
//   - Fully deterministic formatting; no data-dependent branches.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Wrapping nil with %w yields a non-nil error that wraps a nil cause; do not do this.
//   - Centralizes formatting so all kernels expose uniform error surfaces.
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
//   - Keep `tag` to the canonical constants to simplify log/search pipelines.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are not mutated.
// Internal helper for Add/Sub to share validation, allocation, and fast-path.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At/Set with fixed i→j order.
//
// Behavior highlights:
//   - Deterministic loop orders (flat in fast-path; i→j in fallback).
//   - Single result allocation; no inner-loop temps beyond scalars.
//   - Inputs remain immutable.
//
// Inputs:
//   - a, b: conformable matrices (non-nil; same rows/cols).
//   - sign: +1 for Add, −1 for Sub (callers must enforce).
//   - opTag: opAdd for Add, opSub for Sub (for error wrapping).
//
// Returns:
//   - Matrix: newly allocated Dense with the result.
//   - error : validation/allocation failures wrapped with opAdd/opSub.
//
// Errors:
//   - ErrNilMatrix          (from ValidateBinarySameShape when a or b is nil).
//   - ErrDimensionMismatch  (from ValidateBinarySameShape when shapes differ).
//   - Allocation errors     (from NewDense).
//
// Determinism:
//   - Fast-path: single flat slice walk 0..(r*c−1).
//   - Fallback: fixed nested loops i=0..r−1, j=0..c−1.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
//
// Notes:
//   - Keeping `sign` as a float avoids an extra branch inside the hot loop.
//   - The function is unexported by design; invariants are enforced by Add/Sub.
//
// AI-Hints:
//   - To trigger fast-path, pass concrete *Dense operands (avoid interface wrappers).
//   - If you need in-place add/sub, implement a dedicated kernel; do not modify inputs here.
func addSub(a, b Matrix, sign float64, opTag string) (Matrix, error) {
	// Validate shapes match
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Allocate result Dense
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// direct element-wise combination on backing slices
			length := rows * cols
			for idx := 0; idx < length; idx++ { // deterministic 0..n-1
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int       // loop iterators (deterministic order)
	var av, bv float64 // element temporaries
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			// Read a(i,j).
			av, err = a.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			// Read b(i,j).
			bv, err = b.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			// Write result(i,j).
			if err = res.Set(i, j, av+sign*bv); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	// Return result
	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Implementation:
//   - Stage 1: Validate both operands are non-nil and have identical shapes.
//   - Stage 2: If both are *Dense, run a single flat loop; otherwise fall back to i→j.
//
// Behavior highlights:
//   - Deterministic loop order; no hidden aliasing; one allocation for the result.
//
// Inputs:
//   - A: left matrix operand (any Matrix).
//   - B: right matrix operand (any Matrix) with the same shape as A.
//
// Returns:
//   - Matrix: a new Dense with C[i,j] = A[i,j] + B[i,j].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Determinism:
//   - Flat 0..n-1 for *Dense; i→j for the generic path.
//
// Complexity:
//   - Time O(r*c), Space O(r*c). The fast path is bandwidth-bound.
//
// Notes:
//   - Inputs are never mutated; result is always a freshly allocated Dense.
//
// AI-Hints:
//   - Prefer *Dense inputs for tight loops and contiguous data; hide concrete types
//     (e.g., via wrappers) to force the fallback path in tests or when needed.
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
// Implementation:
//   - Stage 1: Validate both operands are non-nil and have identical shapes.
//   - Stage 2: If both are *Dense, run a single flat loop; otherwise fall back to i→j.
//
// Behavior highlights:
//   - Deterministic loop order; no hidden aliasing; one allocation for the result.
//
// Inputs:
//   - A: left matrix operand (any Matrix).
//   - B: right matrix operand (any Matrix) with the same shape as A.
//
// Returns:
//   - Matrix: a new Dense with C[i,j] = A[i,j] - B[i,j].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Determinism:
//   - Flat 0..n-1 for *Dense; i→j for the generic path.
//
// Complexity:
//   - Time O(r*c), Space O(r*c). The fast path is bandwidth-bound.
//
// Notes:
//   - Inputs are never mutated; result is always a freshly allocated Dense.
//
// AI-Hints:
//   - Prefer *Dense inputs for tight loops and contiguous data; hide concrete types
//     (e.g., via wrappers) to force the fallback path in tests or when needed.
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// Hadamard computes the element-wise product C = A ⊙ B and returns a fresh Dense result.
// Implementation:
//   - Stage 1: Validate both operands are non-nil and have identical shapes.
//   - Stage 2: If both are *Dense, run a single flat multiply loop; otherwise fall back to i→j.
//
// Behavior highlights:
//   - Squaring a matrix element-wise (Hadamard(D, D)) turns residuals into squared
//     residuals; pair with RowSums to obtain Frobenius-style sums.
//
// Inputs:
//   - A: left matrix operand (any Matrix).
//   - B: right matrix operand (any Matrix) with the same shape as A.
//
// Returns:
//   - Matrix: a new Dense with C[i,j] = A[i,j] * B[i,j].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Determinism:
//   - Flat 0..n-1 for *Dense; i→j for the generic path.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - Inputs are never mutated; result is always a freshly allocated Dense.
//
// AI-Hints:
//   - Prefer *Dense operands; the flat loop is a single bandwidth-bound pass.
func Hadamard(a, b Matrix) (Matrix, error) {
	// Validate shapes match
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	// Allocate result Dense
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			length := rows * cols
			for idx := 0; idx < length; idx++ { // deterministic 0..n-1
				res.data[idx] = da.data[idx] * db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int       // loop iterators (deterministic order)
	var av, bv float64 // element temporaries
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			// Read a(i,j).
			av, err = a.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opHadamard, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			// Read b(i,j).
			bv, err = b.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opHadamard, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			// Write result(i,j).
			if err = res.Set(i, j, av*bv); err != nil {
				return nil, matrixErrorf(opHadamard, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	// Return result
	return res, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides and skip zeros;
//     otherwise use i→j→k with a fixed order.
//
// Behavior highlights:
//   - Deterministic triple loops; no temporary tiles; one allocation for C.
//   - The i→k→j order streams rows of B sequentially (cache-friendly for row-major data).
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - Matrix: new Dense C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - Fixed loop orders (i→k→j for fast path, i→j→k for fallback).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c). Skipping zero A[i,k] avoids useless multiplies.
//
// Notes:
//   - For extremely sparse workloads consider dedicated sparse kernels outside this package.
//
// AI-Hints:
//   - Gram matrices (XᵀX) stay entirely on the fast path when X is a *Dense.
func Mul(a, b Matrix) (Matrix, error) {
	// Validate inner dimensions (includes nil checks).
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Allocate result Dense of shape (r × c).
	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Fast path: *Dense with *Dense → i→k→j with row-major strides.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var i, k, j int                            // loop iterators (deterministic order)
			var rowOffsetA, rowOffsetB, rowOffsetR int // flat row bases
			var av float64                             // pivot element of A
			for i = 0; i < rows; i++ {
				rowOffsetA = i * inner
				rowOffsetR = i * cols
				for k = 0; k < inner; k++ {
					// Skip zero contributions (saves a full j-sweep).
					av = da.data[rowOffsetA+k]
					if av == NormZero {
						continue
					}
					rowOffsetB = k * cols
					for j = 0; j < cols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j→k order.
	var i, j, k int          // loop iterators (deterministic order)
	var av, bv, acc float64  // element temporaries and accumulator
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			acc = ZeroSum
			for k = 0; k < inner; k++ {
				// Read a(i,k).
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				// Read b(k,j).
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				acc += av * bv
			}
			// Write result(i,j).
			if err = res.Set(i, j, acc); err != nil {
				return nil, matrixErrorf(opMul, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	// Return result
	return res, nil
}

// Transpose returns a new matrix T where T[j,i] = M[i,j].
// Implementation:
//   - Stage 1: ValidateNotNil(m). Allocate result Dense(cols, rows).
//   - Stage 2: Fast-path for *Dense — direct flat-index writes; otherwise At/Set.
//
// Behavior highlights:
//   - One allocation; the source is never mutated.
//
// Inputs:
//   - M: matrix with shape (r × c), non-nil.
//
// Returns:
//   - Matrix: new Dense with shape (c × r).
//
// Errors:
//   - ErrNilMatrix (nil input).
//
// Determinism:
//   - Fixed i→j order over the source.
//
// Complexity:
//   - Time O(r*c), Space O(r*c). Writes stride by `rows` in the fast path.
//
// AI-Hints:
//   - Transposing twice is a structural copy; use Clone when that is the intent.
func Transpose(m Matrix) (Matrix, error) {
	// Validate input
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Allocate result Dense with swapped dimensions.
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Fast path: *Dense → flat-index transposition.
	if dm, ok := m.(*Dense); ok {
		var i, j, baseSrc int // loop iterators and source row base
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int   // loop iterators (deterministic order)
	var v float64  // element temporary
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			// Read m(i,j).
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			// Write result(j,i).
			if err = res.Set(j, i, v); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("Set(%d,%d): %w", j, i, err))
			}
		}
	}

	// Return result
	return res, nil
}

// Scale multiplies every element by alpha and returns a fresh Dense result.
// Implementation:
//   - Stage 1: ValidateNotNil(m). Allocate result of the same shape.
//   - Stage 2: Fast-path flat loop for *Dense; At/Set fallback otherwise.
//
// Behavior highlights:
//   - alpha is applied as-is; no finiteness policy here (validate upstream if needed).
//
// Inputs:
//   - M: matrix with shape (r × c), non-nil.
//   - alpha: scalar multiplier.
//
// Returns:
//   - Matrix: new Dense with C[i,j] = alpha * M[i,j].
//
// Errors:
//   - ErrNilMatrix (nil input).
//
// Determinism:
//   - Flat 0..n-1 for *Dense; i→j for the generic path.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Scale(…, 1/(n-1)) is the canonical finishing step for Gram→covariance.
func Scale(m Matrix, alpha float64) (Matrix, error) {
	// Validate input
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	// Allocate result Dense
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	// Fast path: *Dense → single flat loop.
	if dm, ok := m.(*Dense); ok {
		length := rows * cols
		for idx := 0; idx < length; idx++ { // deterministic 0..n-1
			res.data[idx] = dm.data[idx] * alpha
		}

		return res, nil
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int   // loop iterators (deterministic order)
	var v float64  // element temporary
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			// Read m(i,j).
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opScale, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			// Write result(i,j).
			if err = res.Set(i, j, v*alpha); err != nil {
				return nil, matrixErrorf(opScale, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	// Return result
	return res, nil
}

// MatVec computes the matrix-vector product y = M·x.
// Implementation:
//   - Stage 1: ValidateNotNil(m) and ValidateVecLen(x, m.Cols()).
//   - Stage 2: Fast-path per-row flat accumulation for *Dense with zero-skip on x;
//     At-based accumulation otherwise.
//
// Behavior highlights:
//   - Zero entries of x skip the multiply entirely (useful for selector vectors).
//
// Inputs:
//   - M: matrix with shape (r × c), non-nil.
//   - x: vector of length c.
//
// Returns:
//   - []float64: vector y of length r with y[i] = Σ_j M[i,j]·x[j].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (len(x) != c).
//
// Determinism:
//   - Fixed i→j order; per-row accumulators seeded with ZeroSum.
//
// Complexity:
//   - Time O(r*c), Space O(r).
//
// AI-Hints:
//   - MatVec(m, ones(c)) yields row sums without a dedicated kernel; see RowSums.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	// Validate input and vector length.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	// Fast path: *Dense → per-row flat accumulation with zero-skip on x.
	if dm, ok := m.(*Dense); ok {
		var i, j, base int   // loop iterators and flat row base
		var xv, acc float64  // vector temporary and per-row accumulator
		for i = 0; i < rows; i++ {
			base = i * cols
			acc = ZeroSum
			for j = 0; j < cols; j++ {
				// Skip zero vector entries (saves a multiply).
				xv = x[j]
				if xv == NormZero {
					continue
				}
				acc += dm.data[base+j] * xv
			}
			y[i] = acc
		}

		return y, nil
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int        // loop iterators (deterministic order)
	var v, acc float64  // element temporary and per-row accumulator
	var err error       // At error staging
	for i = 0; i < rows; i++ {
		acc = ZeroSum
		for j = 0; j < cols; j++ {
			// Read m(i,j).
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			acc += v * x[j]
		}
		y[i] = acc
	}

	// Return result vector
	return y, nil
}

// Trace returns the diagonal sum Σ_i M[i,i] of a square matrix.
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m).
//   - Stage 2: Fast-path stride-(n+1) walk for *Dense; At fallback otherwise.
//
// Behavior highlights:
//   - For a covariance matrix the trace equals the total variance, which matches
//     the sum of all eigenvalues up to numeric tolerance.
//
// Inputs:
//   - M: square matrix (n × n), non-nil.
//
// Returns:
//   - float64: Σ_i M[i,i].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrNonSquare (rows != cols).
//
// Determinism:
//   - Fixed i order over the diagonal.
//
// Complexity:
//   - Time O(n), Space O(1).
//
// AI-Hints:
//   - Use Trace(Cov) against the summed spectrum as a cheap eigen sanity check.
func Trace(m Matrix) (float64, error) {
	// Validate input (square implies non-nil here).
	if err := ValidateSquareNonNil(m); err != nil {
		return NormZero, matrixErrorf(opTrace, err)
	}

	n := m.Rows()
	acc := ZeroSum

	// Fast path: *Dense → stride n+1 over the flat slice.
	if dm, ok := m.(*Dense); ok {
		for i := 0; i < n; i++ { // deterministic diagonal walk
			acc += dm.data[i*n+i]
		}

		return acc, nil
	}

	// Fallback: interface path over the diagonal.
	var i int      // loop iterator
	var v float64  // element temporary
	var err error  // At error staging
	for i = 0; i < n; i++ {
		// Read m(i,i).
		v, err = m.At(i, i)
		if err != nil {
			return NormZero, matrixErrorf(opTrace, fmt.Errorf("At(%d,%d): %w", i, i, err))
		}
		acc += v
	}

	// Return diagonal sum
	return acc, nil
}

// Eigen computes the full eigen-decomposition of a symmetric matrix using the
// classical Jacobi rotation method with a largest-off-diagonal pivot strategy.
//
// Implementation:
//   - Stage 1: ValidateSymmetric(m, tol) — covers nil, non-square, NaN tolerance
//     and asymmetry beyond tol.
//   - Stage 2: Clone m into the working matrix A; build Q = I (rotation accumulator).
//   - Stage 3: Sweep: scan the strict upper triangle for the element of largest
//     magnitude; stop when it drops below tol.
//   - Stage 4: Rotate: compute the Jacobi angle from (app, aqq, apq); update rows
//     and columns p,q of A symmetrically; annihilate A[p,q]; accumulate into Q.
//   - Stage 5: Re-check convergence after the loop; extract the diagonal of A as
//     the eigenvalues; return (eigs, Q).
//
// Behavior highlights:
//   - Eigenvalues come back in diagonal order, NOT sorted; callers rank them.
//   - Eigenvectors are the COLUMNS of Q, orthonormal on success: A ≈ Q·diag(eigs)·Qᵀ.
//   - The sign of every eigenvector column is arbitrary; both orientations span
//     the same subspace.
//
// Inputs:
//   - m: symmetric matrix (n × n), non-nil.
//   - tol: non-negative convergence threshold for off-diagonal magnitudes.
//   - maxIter: maximum number of rotations before reporting failure.
//
// Returns:
//   - []float64: eigenvalues (length n, diagonal order).
//   - Matrix: n×n matrix whose columns are the corresponding eigenvectors.
//
// Errors:
//   - ErrNilMatrix / ErrNonSquare / ErrNaNInf / ErrAsymmetry (from validation).
//   - ErrMatrixEigenFailed when maxIter rotations leave an off-diagonal ≥ tol.
//
// Determinism:
//   - Pivot scans and rotation updates run in fixed order; identical inputs give
//     bitwise-identical spectra and rotation products.
//
// Complexity:
//   - Time O(maxIter·n²) dominated by pivot scans; Space O(n²) for A and Q.
//
// Notes:
//   - Jacobi trades asymptotic speed for transparency and robustness; it is the
//     right tool for small symmetric systems such as covariance matrices.
//
// AI-Hints:
//   - Raise maxIter (not tol) first when a large well-conditioned matrix fails
//     to converge; tol trades accuracy, maxIter trades time.
func Eigen(m Matrix, tol float64, maxIter int) ([]float64, Matrix, error) {
	// Stage 1: symmetry validation (nil, square, tol sanity included).
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	n := m.Rows()

	// Stage 2: working copies — A starts as a clone of m, Q as the identity.
	aRaw := m.Clone()
	qRaw, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	var i, j int // loop iterators (deterministic order)
	for i = 0; i < n; i++ {
		qRaw.data[i*n+i] = 1.0 // identity diagonal
	}

	// Clone of *Dense is *Dense, so the fast path survives cloning.
	Adense, useFast := aRaw.(*Dense)

	var (
		iter           int     // rotation counter
		base           int     // flat row base for pivot scans
		p, q           int     // pivot coordinates (strict upper triangle)
		maxOff, off    float64 // pivot magnitude tracking
		app, aqq, apq  float64 // pivot-block elements
		aip, aiq       float64 // row/column temporaries during rotation
		qip, qiq       float64 // eigenvector temporaries during accumulation
		newIP, newIQ   float64 // rotated values
		theta, t, c, s float64 // Jacobi angle terms
	)

	for iter = 0; iter < maxIter; iter++ {
		// Stage 3: pivot scan — largest |A[i,j]| over the strict upper triangle.
		maxOff, p, q = NormZero, 0, 1
		if useFast {
			for i = 0; i < n; i++ {
				base = i * n
				for j = i + 1; j < n; j++ {
					off = math.Abs(Adense.data[base+j])
					if off > maxOff {
						maxOff, p, q = off, i, j
					}
				}
			}
		} else {
			for i = 0; i < n; i++ {
				for j = i + 1; j < n; j++ {
					if apq, err = aRaw.At(i, j); err != nil {
						return nil, nil, matrixErrorf(opEigen, fmt.Errorf("At(%d,%d): %w", i, j, err))
					}
					off = math.Abs(apq)
					if off > maxOff {
						maxOff, p, q = off, i, j
					}
				}
			}
		}
		// Converged: every off-diagonal magnitude is below tolerance.
		if maxOff < tol {
			break
		}

		// Stage 4: read the pivot block (app, aqq, apq).
		if useFast {
			app = Adense.data[p*n+p]
			aqq = Adense.data[q*n+q]
			apq = Adense.data[p*n+q]
		} else {
			if app, err = aRaw.At(p, p); err != nil {
				return nil, nil, matrixErrorf(opEigen, fmt.Errorf("At(%d,%d): %w", p, p, err))
			}
			if aqq, err = aRaw.At(q, q); err != nil {
				return nil, nil, matrixErrorf(opEigen, fmt.Errorf("At(%d,%d): %w", q, q, err))
			}
			if apq, err = aRaw.At(p, q); err != nil {
				return nil, nil, matrixErrorf(opEigen, fmt.Errorf("At(%d,%d): %w", p, q, err))
			}
		}
		// A negligible pivot would make the rotation a numeric no-op.
		if math.Abs(apq) <= tol {
			continue
		}

		// Jacobi angle: theta → t (tan) → c (cos) → s (sin).
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		// Rotate rows/columns p and q of A symmetrically (skip the pivot block).
		for i = 0; i < n; i++ {
			if i == p || i == q {
				continue
			}
			if useFast {
				aip = Adense.data[i*n+p]
				aiq = Adense.data[i*n+q]
				newIP = c*aip - s*aiq
				newIQ = s*aip + c*aiq
				Adense.data[i*n+p] = newIP
				Adense.data[p*n+i] = newIP
				Adense.data[i*n+q] = newIQ
				Adense.data[q*n+i] = newIQ
			} else {
				if aip, err = aRaw.At(i, p); err != nil {
					return nil, nil, matrixErrorf(opEigen, fmt.Errorf("At(%d,%d): %w", i, p, err))
				}
				if aiq, err = aRaw.At(i, q); err != nil {
					return nil, nil, matrixErrorf(opEigen, fmt.Errorf("At(%d,%d): %w", i, q, err))
				}
				newIP = c*aip - s*aiq
				newIQ = s*aip + c*aiq
				if err = aRaw.Set(i, p, newIP); err != nil {
					return nil, nil, matrixErrorf(opEigen, fmt.Errorf("Set(%d,%d): %w", i, p, err))
				}
				if err = aRaw.Set(p, i, newIP); err != nil {
					return nil, nil, matrixErrorf(opEigen, fmt.Errorf("Set(%d,%d): %w", p, i, err))
				}
				if err = aRaw.Set(i, q, newIQ); err != nil {
					return nil, nil, matrixErrorf(opEigen, fmt.Errorf("Set(%d,%d): %w", i, q, err))
				}
				if err = aRaw.Set(q, i, newIQ); err != nil {
					return nil, nil, matrixErrorf(opEigen, fmt.Errorf("Set(%d,%d): %w", q, i, err))
				}
			}
		}

		// Update the pivot block: diagonals move, A[p,q] = A[q,p] = 0.
		if useFast {
			Adense.data[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
			Adense.data[q*n+q] = s*s*app + 2*c*s*apq + c*c*aqq
			Adense.data[p*n+q] = NormZero
			Adense.data[q*n+p] = NormZero
		} else {
			if err = aRaw.Set(p, p, c*c*app-2*c*s*apq+s*s*aqq); err != nil {
				return nil, nil, matrixErrorf(opEigen, fmt.Errorf("Set(%d,%d): %w", p, p, err))
			}
			if err = aRaw.Set(q, q, s*s*app+2*c*s*apq+c*c*aqq); err != nil {
				return nil, nil, matrixErrorf(opEigen, fmt.Errorf("Set(%d,%d): %w", q, q, err))
			}
			if err = aRaw.Set(p, q, NormZero); err != nil {
				return nil, nil, matrixErrorf(opEigen, fmt.Errorf("Set(%d,%d): %w", p, q, err))
			}
			if err = aRaw.Set(q, p, NormZero); err != nil {
				return nil, nil, matrixErrorf(opEigen, fmt.Errorf("Set(%d,%d): %w", q, p, err))
			}
		}

		// Accumulate the rotation into Q (always dense; direct flat writes).
		for i = 0; i < n; i++ {
			qip = qRaw.data[i*n+p]
			qiq = qRaw.data[i*n+q]
			qRaw.data[i*n+p] = c*qip - s*qiq
			qRaw.data[i*n+q] = s*qip + c*qiq
		}
	}

	// Stage 5: final convergence check — a surviving off-diagonal ≥ tol is a failure.
	maxOff = NormZero
	if useFast {
		for i = 0; i < n; i++ {
			base = i * n
			for j = i + 1; j < n; j++ {
				off = math.Abs(Adense.data[base+j])
				if off > maxOff {
					maxOff = off
				}
			}
		}
	} else {
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if apq, err = aRaw.At(i, j); err != nil {
					return nil, nil, matrixErrorf(opEigen, fmt.Errorf("At(%d,%d): %w", i, j, err))
				}
				off = math.Abs(apq)
				if off > maxOff {
					maxOff = off
				}
			}
		}
	}
	if n > 1 && maxOff >= tol {
		return nil, nil, matrixErrorf(opEigen, ErrMatrixEigenFailed)
	}

	// Extract eigenvalues from the (now nearly diagonal) working matrix.
	eigs := make([]float64, n)
	if useFast {
		for i = 0; i < n; i++ {
			eigs[i] = Adense.data[i*n+i]
		}
	} else {
		var v float64 // element temporary
		for i = 0; i < n; i++ {
			if v, err = aRaw.At(i, i); err != nil {
				return nil, nil, matrixErrorf(opEigen, fmt.Errorf("At(%d,%d): %w", i, i, err))
			}
			eigs[i] = v
		}
	}

	// Return spectrum and accumulated rotations.
	return eigs, qRaw, nil
}
