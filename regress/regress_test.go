package regress_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvltree/matrix"
	"github.com/katalvlaran/lvltree/regress"
)

// exactLine builds noiseless data y = 3 + 2·x over a single feature.
func exactLine(t *testing.T) (*matrix.Dense, []float64) {
	t.Helper()
	xs := []float64{1, 2, 3, 4, 5, 6}
	x, err := matrix.NewDenseFrom(len(xs), 1, xs)
	require.NoError(t, err)
	y := make([]float64, len(xs))
	for i, v := range xs {
		y[i] = 3 + 2*v
	}

	return x, y
}

func TestSynthetic_DeterministicPerSeed(t *testing.T) {
	xa, ya, err := regress.Synthetic(50, 6, regress.WithSeed(7))
	require.NoError(t, err)
	xb, yb, err := regress.Synthetic(50, 6, regress.WithSeed(7))
	require.NoError(t, err)

	assert.Equal(t, 50, xa.Rows())
	assert.Equal(t, 6, xa.Cols())
	assert.Equal(t, ya, yb)
	for i := 0; i < xa.Rows(); i++ {
		for j := 0; j < xa.Cols(); j++ {
			va, _ := xa.At(i, j)
			vb, _ := xb.At(i, j)
			assert.Equal(t, va, vb, "at (%d,%d)", i, j)
		}
	}

	// A different seed must change the data.
	xc, yc, err := regress.Synthetic(50, 6, regress.WithSeed(8))
	require.NoError(t, err)
	v7, _ := xa.At(0, 0)
	v8, _ := xc.At(0, 0)
	assert.NotEqual(t, v7, v8)
	assert.NotEqual(t, ya[0], yc[0])
}

func TestSynthetic_Validation(t *testing.T) {
	_, _, err := regress.Synthetic(1, 3)
	assert.ErrorIs(t, err, regress.ErrTooFewSamples)

	_, _, err = regress.Synthetic(10, 3, regress.WithLatent(0))
	assert.ErrorIs(t, err, regress.ErrOptionViolation)

	_, _, err = regress.Synthetic(10, 3, regress.WithNoise(-0.5))
	assert.ErrorIs(t, err, regress.ErrOptionViolation)
}

func TestFitOLS_RecoversExactLine(t *testing.T) {
	x, y := exactLine(t)
	m, err := regress.FitOLS(x, y)
	require.NoError(t, err)

	assert.Equal(t, "OLS", m.Method)
	require.Len(t, m.Coefficients, 1)
	assert.InDelta(t, 2.0, m.Coefficients[0], 1e-9)
	assert.InDelta(t, 3.0, m.Intercept, 1e-9)

	yhat, err := m.Predict(x)
	require.NoError(t, err)
	for i := range y {
		assert.InDelta(t, y[i], yhat[i], 1e-9)
	}
}

func TestFitOLS_Errors(t *testing.T) {
	x, y := exactLine(t)

	_, err := regress.FitOLS(nil, y)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = regress.FitOLS(x, y[:3])
	assert.ErrorIs(t, err, regress.ErrBadShape)

	// rows ≤ cols is rejected up front.
	wide, werr := matrix.NewDenseFrom(2, 3, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, werr)
	_, err = regress.FitOLS(wide, []float64{1, 2})
	assert.ErrorIs(t, err, regress.ErrTooFewSamples)

	// A constant duplicate column makes XᵀX singular.
	dup, derr := matrix.NewDenseFrom(4, 2, []float64{
		1, 1,
		2, 2,
		3, 3,
		4, 4,
	})
	require.NoError(t, derr)
	_, err = regress.FitOLS(dup, []float64{1, 2, 3, 4})
	assert.ErrorIs(t, err, matrix.ErrSingular)
}

func TestFitPLS_RecoversExactLine(t *testing.T) {
	x, y := exactLine(t)
	m, err := regress.FitPLS(x, y, regress.WithComponents(1))
	require.NoError(t, err)

	assert.Equal(t, "PLSR", m.Method)
	assert.Equal(t, 1, m.Components)
	require.Len(t, m.Coefficients, 1)
	assert.InDelta(t, 2.0, m.Coefficients[0], 1e-9)
	assert.InDelta(t, 3.0, m.Intercept, 1e-9)
}

func TestFitPLS_ComponentClamping(t *testing.T) {
	// 1 feature can support only 1 component no matter what was asked.
	x, y := exactLine(t)
	m, err := regress.FitPLS(x, y, regress.WithComponents(5))
	require.NoError(t, err)
	assert.Equal(t, 1, m.Components)
}

func TestFitPLS_NoVariance(t *testing.T) {
	// An all-zero X has no covariance with y at all.
	x, err := matrix.NewDense(4, 2)
	require.NoError(t, err)
	_, err = regress.FitPLS(x, []float64{1, 2, 3, 4})
	assert.ErrorIs(t, err, regress.ErrNoVariance)
}

func TestFitPLS_OptionViolations(t *testing.T) {
	x, y := exactLine(t)
	for _, opt := range []regress.Option{
		regress.WithComponents(0),
		regress.WithTolerance(0),
		regress.WithMaxIter(0),
	} {
		_, err := regress.FitPLS(x, y, opt)
		assert.ErrorIs(t, err, regress.ErrOptionViolation)
	}
}

// TestFitPLS_MatchesOLSOnFullRank checks the textbook identity: with as
// many components as features on well-conditioned data, PLSR reproduces
// the OLS solution.
func TestFitPLS_MatchesOLSOnFullRank(t *testing.T) {
	x, y, err := regress.Synthetic(80, 3, regress.WithSeed(11), regress.WithLatent(3), regress.WithNoise(0.2))
	require.NoError(t, err)

	ols, err := regress.FitOLS(x, y)
	require.NoError(t, err)
	pls, err := regress.FitPLS(x, y, regress.WithComponents(3))
	require.NoError(t, err)

	require.Len(t, pls.Coefficients, len(ols.Coefficients))
	for j := range ols.Coefficients {
		assert.InDelta(t, ols.Coefficients[j], pls.Coefficients[j], 1e-6, "coefficient %d", j)
	}
	assert.InDelta(t, ols.Intercept, pls.Intercept, 1e-6)
}

func TestCompare_SyntheticLatentData(t *testing.T) {
	x, y, err := regress.Synthetic(200, 10, regress.WithSeed(7), regress.WithLatent(2), regress.WithNoise(0.1))
	require.NoError(t, err)

	report, err := regress.Compare(x, y, regress.WithComponents(2))
	require.NoError(t, err)

	// Two latent factors drive ten noisy columns: both models should
	// explain the bulk of the variance, and PLSR must get there with
	// only the two requested components.
	assert.Equal(t, 0, report.OLS.Components)
	assert.Equal(t, 2, report.PLSR.Components)
	assert.Greater(t, report.OLS.R2, 0.9)
	assert.Greater(t, report.PLSR.R2, 0.9)
	assert.Less(t, report.PLSR.MSE, 2*report.OLS.MSE,
		"two PLS components should track the OLS fit on rank-2 data")

	// Rendered table carries one row per method.
	s := report.String()
	assert.Contains(t, s, "OLS")
	assert.Contains(t, s, "PLSR")
}

func TestPredict_ShapeMismatch(t *testing.T) {
	x, y := exactLine(t)
	m, err := regress.FitOLS(x, y)
	require.NoError(t, err)

	wide, werr := matrix.NewDense(3, 2)
	require.NoError(t, werr)
	_, err = m.Predict(wide)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMetrics_Finite(t *testing.T) {
	x, y, err := regress.Synthetic(60, 4)
	require.NoError(t, err)
	report, err := regress.Compare(x, y)
	require.NoError(t, err)

	for _, m := range []regress.Metrics{report.OLS, report.PLSR} {
		assert.False(t, math.IsNaN(m.MSE) || math.IsInf(m.MSE, 0), "%s MSE", m.Method)
		assert.False(t, math.IsNaN(m.R2) || math.IsInf(m.R2, 0), "%s R2", m.Method)
	}
}
