// Package regress - ordinary least squares over matrix kernels.
package regress

import (
	"fmt"

	"github.com/katalvlaran/lvltree/matrix"
)

// FitOLS fits ordinary least squares by solving the normal equations
// (XcᵀXc)·β = Xcᵀyc over column-centered data; the intercept absorbs
// the means afterwards.
//
// Requires strictly more samples than features (rows > cols), else
// ErrTooFewSamples; a rank-deficient X surfaces as a wrapped
// matrix.ErrSingular from the solver.
//
// Complexity: O(r·c² + c³).
func FitOLS(x *matrix.Dense, y []float64) (*Model, error) {
	if x == nil {
		return nil, fmt.Errorf("FitOLS: %w", matrix.ErrNilMatrix)
	}
	if x.Rows() != len(y) {
		return nil, fmt.Errorf("FitOLS: rows=%d len(y)=%d: %w", x.Rows(), len(y), ErrBadShape)
	}
	if x.Rows() <= x.Cols() {
		return nil, fmt.Errorf("FitOLS: rows=%d cols=%d: %w", x.Rows(), x.Cols(), ErrTooFewSamples)
	}

	xc, xMeans, err := matrix.CenterColumns(x)
	if err != nil {
		return nil, fmt.Errorf("FitOLS: %w", err)
	}
	yMean := matrix.MeanOf(y)
	yc := make([]float64, len(y))
	for i, v := range y {
		yc[i] = v - yMean
	}

	xt, err := matrix.Transpose(xc)
	if err != nil {
		return nil, fmt.Errorf("FitOLS: %w", err)
	}
	gram, err := matrix.Mul(xt, xc) // XcᵀXc, c×c
	if err != nil {
		return nil, fmt.Errorf("FitOLS: %w", err)
	}
	moment, err := matrix.MatVec(xt, yc) // Xcᵀyc, length c
	if err != nil {
		return nil, fmt.Errorf("FitOLS: %w", err)
	}

	beta, err := matrix.Solve(gram, moment)
	if err != nil {
		return nil, fmt.Errorf("FitOLS: %w", err)
	}

	intercept := yMean
	for j, b := range beta {
		intercept -= xMeans[j] * b
	}

	return &Model{Method: "OLS", Coefficients: beta, Intercept: intercept}, nil
}
