// SPDX-License-Identifier: MIT
// Package: lvltree/matrix
//
// validators.go — central fail-fast validation shared by all kernels.
//
// Policy:
//   • Validators return plain sentinels; kernels add the operation tag
//     via matrixErrorf so every error reads "<Op>: <cause>".
//   • No kernel performs its own shape arithmetic inline; all conformance
//     checks route through this file.

package matrix

import (
	"errors"
	"fmt"
)

// ErrNilMatrix indicates a nil *Dense operand.
var ErrNilMatrix = errors.New("matrix: nil matrix")

// ErrDimensionMismatch indicates operand shapes that do not conform.
var ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

// ErrSingular indicates Solve met a zero pivot column (no unique solution).
var ErrSingular = errors.New("matrix: singular system")

// matrixErrorf wraps err with an operation tag, preserving the original
// error via %w so callers can branch with errors.Is. Call only with a
// non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateNotNil rejects nil operands.
func validateNotNil(ms ...*Dense) error {
	for _, m := range ms {
		if m == nil {
			return ErrNilMatrix
		}
	}

	return nil
}

// validateSameShape requires a and b to be non-nil with equal dimensions.
func validateSameShape(a, b *Dense) error {
	if err := validateNotNil(a, b); err != nil {
		return err
	}
	if a.r != b.r || a.c != b.c {
		return fmt.Errorf("%dx%d vs %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}

	return nil
}

// validateMulShape requires non-nil operands with a.Cols == b.Rows.
func validateMulShape(a, b *Dense) error {
	if err := validateNotNil(a, b); err != nil {
		return err
	}
	if a.c != b.r {
		return fmt.Errorf("%dx%d · %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}

	return nil
}

// validateVecLen requires a non-nil matrix and len(x) == m.Cols.
func validateVecLen(m *Dense, x []float64) error {
	if err := validateNotNil(m); err != nil {
		return err
	}
	if len(x) != m.c {
		return fmt.Errorf("vec len=%d want %d: %w", len(x), m.c, ErrDimensionMismatch)
	}

	return nil
}

// validateSquare requires a non-nil square matrix.
func validateSquare(m *Dense) error {
	if err := validateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return fmt.Errorf("%dx%d not square: %w", m.r, m.c, ErrDimensionMismatch)
	}

	return nil
}
