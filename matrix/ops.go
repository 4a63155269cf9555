// SPDX-License-Identifier: MIT
// Package: lvltree/matrix
//
// ops.go — canonical linear-algebra kernels over Dense.
//
// Purpose:
//   - Element-wise addition/subtraction, matrix product, transpose,
//     scalar scaling, matrix-vector product, and LU-based Solve.
//
// Notes:
//   - All kernels use the central validators and return errors wrapped
//     via matrixErrorf with op-tag constants (no magic strings).
//   - Operands are never mutated; results are freshly allocated.
//   - Fixed i→j(→k) loop order everywhere for bit-for-bit determinism.

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opMatVec    = "MatVec"
	opSolve     = "Solve"
)

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Keeping sign as a float avoids a branch inside the hot loop.
func addSub(a, b *Dense, sign float64, tag string) (*Dense, error) {
	if err := validateSameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	out := a.Clone()
	for i := range out.data {
		out.data[i] += sign * b.data[i]
	}

	return out, nil
}

// Add returns a + b elementwise. Shapes must match.
// Complexity: O(r*c).
func Add(a, b *Dense) (*Dense, error) { return addSub(a, b, 1, opAdd) }

// Sub returns a - b elementwise. Shapes must match.
// Complexity: O(r*c).
func Sub(a, b *Dense) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul returns the matrix product a·b (a is r×k, b is k×c).
// Complexity: O(r*k*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := validateMulShape(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	out := &Dense{r: a.r, c: b.c, data: make([]float64, a.r*b.c)}
	// ikj order walks both operands row-major.
	for i := 0; i < a.r; i++ {
		for k := 0; k < a.c; k++ {
			aik := a.data[i*a.c+k]
			if aik == 0 {
				continue
			}
			for j := 0; j < b.c; j++ {
				out.data[i*out.c+j] += aik * b.data[k*b.c+j]
			}
		}
	}

	return out, nil
}

// Transpose returns aᵀ.
// Complexity: O(r*c).
func Transpose(a *Dense) (*Dense, error) {
	if err := validateNotNil(a); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out := &Dense{r: a.c, c: a.r, data: make([]float64, len(a.data))}
	for i := 0; i < a.r; i++ {
		for j := 0; j < a.c; j++ {
			out.data[j*out.c+i] = a.data[i*a.c+j]
		}
	}

	return out, nil
}

// Scale returns alpha·a.
// Complexity: O(r*c).
func Scale(a *Dense, alpha float64) (*Dense, error) {
	if err := validateNotNil(a); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	out := a.Clone()
	for i := range out.data {
		out.data[i] *= alpha
	}

	return out, nil
}

// MatVec returns the product a·x as a fresh slice of length a.Rows.
// Complexity: O(r*c).
func MatVec(a *Dense, x []float64) ([]float64, error) {
	if err := validateVecLen(a, x); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	out := make([]float64, a.r)
	for i := 0; i < a.r; i++ {
		sum := 0.0
		row := a.data[i*a.c : (i+1)*a.c]
		for j, v := range row {
			sum += v * x[j]
		}
		out[i] = sum
	}

	return out, nil
}

// Solve returns x with a·x = b for square a, via LU factorization with
// partial pivoting. Returns ErrSingular (wrapped) when a pivot column is
// entirely zero.
// Complexity: O(n³) time, O(n²) space for the working copy.
func Solve(a *Dense, b []float64) ([]float64, error) {
	if err := validateSquare(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	n := a.r
	if len(b) != n {
		return nil, matrixErrorf(opSolve, fmt.Errorf("rhs len=%d want %d: %w", len(b), n, ErrDimensionMismatch))
	}

	lu := a.Clone()
	rhs := make([]float64, n)
	copy(rhs, b)

	// Forward elimination with partial pivoting.
	for col := 0; col < n; col++ {
		// Pick the largest magnitude pivot in this column.
		pivot, pivotAbs := col, math.Abs(lu.data[col*n+col])
		for row := col + 1; row < n; row++ {
			if abs := math.Abs(lu.data[row*n+col]); abs > pivotAbs {
				pivot, pivotAbs = row, abs
			}
		}
		if pivotAbs == 0 {
			return nil, matrixErrorf(opSolve, fmt.Errorf("zero pivot at column %d: %w", col, ErrSingular))
		}
		if pivot != col {
			swapRows(lu, col, pivot)
			rhs[col], rhs[pivot] = rhs[pivot], rhs[col]
		}

		inv := 1.0 / lu.data[col*n+col]
		for row := col + 1; row < n; row++ {
			factor := lu.data[row*n+col] * inv
			if factor == 0 {
				continue
			}
			lu.data[row*n+col] = 0
			for j := col + 1; j < n; j++ {
				lu.data[row*n+j] -= factor * lu.data[col*n+j]
			}
			rhs[row] -= factor * rhs[col]
		}
	}

	// Back substitution.
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := rhs[i]
		for j := i + 1; j < n; j++ {
			sum -= lu.data[i*n+j] * x[j]
		}
		x[i] = sum / lu.data[i*n+i]
	}

	return x, nil
}

// swapRows exchanges rows i and j of m in place.
func swapRows(m *Dense, i, j int) {
	ri := m.data[i*m.c : (i+1)*m.c]
	rj := m.data[j*m.c : (j+1)*m.c]
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}
}
