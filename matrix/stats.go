// SPDX-License-Identifier: MIT
// Package: lvltree/matrix
//
// stats.go — column statistics used by regression.
//
// Purpose:
//   - Column means and column centering as deterministic passes over the
//     flat backing slice; MeanOf for plain vectors.
//
// Determinism & Performance:
//   - Fixed i→j traversal; single result allocation; operands untouched.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opColumnMeans   = "ColumnMeans"
	opCenterColumns = "CenterColumns"
)

// ColumnMeans returns the per-column mean of X (length X.Cols).
// Complexity: O(r*c).
func ColumnMeans(x *Dense) ([]float64, error) {
	if err := validateNotNil(x); err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}
	means := make([]float64, x.c)
	for i := 0; i < x.r; i++ {
		row := x.data[i*x.c : (i+1)*x.c]
		for j, v := range row {
			means[j] += v
		}
	}
	inv := 1.0 / float64(x.r)
	for j := range means {
		means[j] *= inv
	}

	return means, nil
}

// CenterColumns subtracts the per-column mean from every element and
// returns the centered copy together with the means, so callers can
// un-center predictions later.
// Complexity: O(r*c) time and space.
func CenterColumns(x *Dense) (*Dense, []float64, error) {
	means, err := ColumnMeans(x)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, fmt.Errorf("means: %w", err))
	}
	out := x.Clone()
	for i := 0; i < out.r; i++ {
		row := out.data[i*out.c : (i+1)*out.c]
		for j := range row {
			row[j] -= means[j]
		}
	}

	return out, means, nil
}

// MeanOf returns the arithmetic mean of v, or 0 for an empty slice.
// Complexity: O(len(v)).
func MeanOf(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range v {
		sum += x
	}

	return sum / float64(len(v))
}
