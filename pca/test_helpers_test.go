// SPDX-License-Identifier: MIT
// Package pca_test contains shared fixtures and assertions for the fit
// pipeline, the engines and the Result surface.
//
// Purpose:
//   • One canonical data set (scenarioRows) with a hand-derived spectrum.
//   • Sign-tolerant comparisons: eigenvector columns are defined up to ±1.
//   • Deterministic random rows for round-trip and cross-engine checks.

package pca_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlpca/matrix"
	"github.com/katalvlaran/lvlpca/pca"
)

// Shared tolerances for the suite.
const (
	epsTight = 1e-12 // element-wise exact-ish comparisons
	epsLoose = 1e-9  // spectral and accumulated-error comparisons
)

// scenarioRows returns a fresh copy of the canonical 4×4 data set: rank 2,
// covariance (1/3)·[[2,2,2,2],[2,5,5,5],[2,5,5,5],[2,5,5,5]], spectrum
// (17±√217)/6 plus two zeros. A fresh copy per call keeps mutation tests
// honest.
func scenarioRows() [][]float64 {
	return [][]float64{
		{2, 4, 6, 8},
		{1, 3, 5, 7},
		{3, 5, 7, 9},
		{2, 6, 8, 10},
	}
}

// scenarioLambdas returns the two non-zero covariance eigenvalues of the
// scenario data, largest first, from the analytic form (17±√217)/6.
func scenarioLambdas() (float64, float64) {
	root := math.Sqrt(217)

	return (17 + root) / 6, (17 - root) / 6
}

// randRows builds n×d rows with deterministic U(-1,1) entries by seed.
func randRows(n, d int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	var i, j int // loop iterators
	for i = 0; i < n; i++ {
		rows[i] = make([]float64, d)
		for j = 0; j < d; j++ {
			rows[i][j] = rng.Float64()*2 - 1
		}
	}

	return rows
}

// copyRows deep-copies observation rows.
func copyRows(rows [][]float64) [][]float64 {
	out := make([][]float64, len(rows))
	for i := range rows {
		out[i] = append([]float64(nil), rows[i]...)
	}

	return out
}

// MustFit runs FitTransform and fails the test on error.
func MustFit(t *testing.T, data [][]float64, k int, opts ...pca.Option) *pca.Result {
	t.Helper()
	res, err := pca.FitTransform(data, k, opts...)
	if err != nil {
		t.Fatalf("FitTransform(k=%d): %v", k, err)
	}

	return res
}

// NewFilledDense builds an r×c *Dense from a row-major flat slice.
func NewFilledDense(t *testing.T, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	if len(vals) != r*c {
		t.Fatalf("NewFilledDense: want %d values, got %d", r*c, len(vals))
	}
	d, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}
	var i, j int // loop iterators
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if err = d.Set(i, j, vals[i*c+j]); err != nil {
				t.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}

	return d
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustDims asserts m has exactly r rows and c columns.
func MustDims(t *testing.T, m matrix.Matrix, r, c int) {
	t.Helper()
	if m.Rows() != r || m.Cols() != c {
		t.Fatalf("dims = %d×%d; want %d×%d", m.Rows(), m.Cols(), r, c)
	}
}

// CompareClose asserts AllClose(a,b) under (rtol, atol); (0,0) is exact.
func CompareClose(t *testing.T, a, b matrix.Matrix, rtol, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(a, b, rtol, atol)
	if err != nil {
		t.Fatalf("AllClose err: %v", err)
	}
	if !ok {
		t.Fatalf("AllClose=false (rtol=%g, atol=%g)", rtol, atol)
	}
}

// sliceClose asserts |a[i]-b[i]| ≤ atol + rtol*|b[i]| element-wise.
func sliceClose(t *testing.T, a, b []float64, rtol, atol float64) {
	t.Helper()
	if len(a) != len(b) {
		t.Fatalf("slice lengths: %d vs %d", len(a), len(b))
	}
	var diff, absb float64
	for i := range a {
		diff = math.Abs(a[i] - b[i])
		absb = math.Abs(b[i])
		if diff > (atol + rtol*absb) {
			t.Fatalf("sliceClose idx=%d: got=%g want=%g (rtol=%g atol=%g)", i, a[i], b[i], rtol, atol)
		}
	}
}

// AlmostEqualSlice checks |a[i]-b[i]| ≤ eps for all i (boolean, not fatal).
func AlmostEqualSlice(a, b []float64, eps float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > eps {
			return false
		}
	}

	return true
}

// negated returns -v as a fresh slice.
func negated(v []float64) []float64 {
	out := make([]float64, len(v))
	for i := range v {
		out[i] = -v[i]
	}

	return out
}

// SignClose reports whether a matches b or -b element-wise within eps.
// Eigenvector columns and their projections are defined up to sign.
func SignClose(a, b []float64, eps float64) bool {
	return AlmostEqualSlice(a, b, eps) || AlmostEqualSlice(negated(a), b, eps)
}

// ColOf returns column j of m as a fresh slice.
func ColOf(t *testing.T, m matrix.Matrix, j int) []float64 {
	t.Helper()
	out := make([]float64, m.Rows())
	for i := range out {
		out[i] = MustAt(t, m, i, j)
	}

	return out
}

// ColumnsMatchUpToSign asserts every column of got matches the same column
// of the row-major want (each column independently up to sign) within eps.
func ColumnsMatchUpToSign(t *testing.T, got matrix.Matrix, want [][]float64, eps float64) {
	t.Helper()
	MustDims(t, got, len(want), len(want[0]))
	var i, j int // loop iterators
	wantCol := make([]float64, len(want))
	for j = 0; j < len(want[0]); j++ {
		for i = 0; i < len(want); i++ {
			wantCol[i] = want[i][j]
		}
		if !SignClose(ColOf(t, got, j), wantCol, eps) {
			t.Fatalf("column %d: got %v; want ±%v", j, ColOf(t, got, j), wantCol)
		}
	}
}

// assertOrthonormalColumns asserts QᵀQ ≈ I within delta.
func assertOrthonormalColumns(t *testing.T, Q matrix.Matrix, delta float64) {
	t.Helper()
	Qt, err := matrix.Transpose(Q)
	if err != nil {
		t.Fatalf("Transpose: %v", err)
	}
	QtQ, err := matrix.Mul(Qt, Q)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}
	n := QtQ.Rows()
	var i, j int // loop iterators
	var v, want float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v = MustAt(t, QtQ, i, j)
			want = 0.0
			if i == j {
				want = 1.0
			}
			if !InDelta(t, v, want, delta) {
				t.Fatalf("QᵀQ[%d,%d]=%g; want %g ± %g", i, j, v, want, delta)
			}
		}
	}
}

// DenseOf builds a Dense from observation rows.
func DenseOf(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDense(len(rows), len(rows[0]))
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", len(rows), len(rows[0]), err)
	}
	var i, j int // loop iterators
	for i = 0; i < len(rows); i++ {
		for j = 0; j < len(rows[i]); j++ {
			if err = d.Set(i, j, rows[i][j]); err != nil {
				t.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}

	return d
}

// RowsOf copies m into fresh row slices.
func RowsOf(t *testing.T, m matrix.Matrix) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	var i, j int // loop iterators
	for i = 0; i < m.Rows(); i++ {
		out[i] = make([]float64, m.Cols())
		for j = 0; j < m.Cols(); j++ {
			out[i][j] = MustAt(t, m, i, j)
		}
	}

	return out
}

// symmetricDense returns a random symmetric n×n Dense, (A+Aᵀ)/2 by seed.
func symmetricDense(t *testing.T, n int, seed int64) *matrix.Dense {
	t.Helper()
	raw, err := matrix.NewDense(n, n)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", n, n, err)
	}
	rng := rand.New(rand.NewSource(seed))
	var i, j int // loop iterators
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if err = raw.Set(i, j, rng.Float64()*2-1); err != nil {
				t.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}
	S, err := matrix.Symmetrize(raw)
	if err != nil {
		t.Fatalf("Symmetrize: %v", err)
	}
	D, ok := S.(*matrix.Dense)
	if !ok {
		t.Fatalf("Symmetrize: want *Dense, got %T", S)
	}

	return D
}

// InDelta returns whether |a-b| ≤ delta (boolean, non-fatal).
func InDelta(t *testing.T, a, b float64, delta float64) bool {
	t.Helper()
	diff := a - b
	if diff < -delta || diff > delta {
		return false
	}

	return true
}

// AssertErrorIs wraps errors.Is with consistent failure text.
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v; got %v", target, err)
	}
}

// ExpectPanicMessage asserts that fn() panics with exactly wantMsg.
func ExpectPanicMessage(t *testing.T, wantMsg string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic %q, got nil", wantMsg)
		}
		if got, ok := r.(string); !ok || got != wantMsg {
			t.Fatalf("panic message: got %v, want %q", r, wantMsg)
		}
	}()
	fn()
}
