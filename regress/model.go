// Package regress - fitted model representation and metrics.
package regress

import (
	"fmt"

	"github.com/katalvlaran/lvltree/matrix"
)

// Model is a fitted linear predictor ŷ = X·β + β₀, produced by FitOLS or
// FitPLS. Coefficients live in the original (uncentered) feature space.
type Model struct {
	// Method names the fitting procedure: "OLS" or "PLSR".
	Method string

	// Coefficients β, one per feature column of the training X.
	Coefficients []float64

	// Intercept β₀.
	Intercept float64

	// Components is the latent component count actually used
	// (0 for OLS, which has no latent structure).
	Components int
}

// Predict returns ŷ = X·β + β₀ for each row of x.
// x must have as many columns as the model has coefficients.
func (m *Model) Predict(x *matrix.Dense) ([]float64, error) {
	yhat, err := matrix.MatVec(x, m.Coefficients)
	if err != nil {
		return nil, fmt.Errorf("regress: %s predict: %w", m.Method, err)
	}
	for i := range yhat {
		yhat[i] += m.Intercept
	}

	return yhat, nil
}

// meanSquaredError returns Σ(y-ŷ)²/n. Lengths must already agree.
func meanSquaredError(y, yhat []float64) float64 {
	sum := 0.0
	for i := range y {
		d := y[i] - yhat[i]
		sum += d * d
	}

	return sum / float64(len(y))
}

// rSquared returns 1 - SSres/SStot, the fraction of response variance
// the model explains. A constant y yields 0 by convention.
func rSquared(y, yhat []float64) float64 {
	mean := matrix.MeanOf(y)
	ssTot, ssRes := 0.0, 0.0
	for i := range y {
		dt := y[i] - mean
		dr := y[i] - yhat[i]
		ssTot += dt * dt
		ssRes += dr * dr
	}
	if ssTot == 0 {
		return 0
	}

	return 1 - ssRes/ssTot
}
