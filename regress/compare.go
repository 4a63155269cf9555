// Package regress - side-by-side OLS vs PLSR comparison.
package regress

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvltree/matrix"
)

// Metrics holds goodness-of-fit numbers for one fitted model.
type Metrics struct {
	// Method names the model: "OLS" or "PLSR".
	Method string

	// MSE is the mean squared training error.
	MSE float64

	// R2 is the coefficient of determination on the training data.
	R2 float64

	// Components is the latent component count (0 for OLS).
	Components int
}

// Report pairs the two fits over the same data.
type Report struct {
	OLS  Metrics
	PLSR Metrics
}

// String renders the comparison as the classic two-row notebook table.
func (r *Report) String() string {
	var sb strings.Builder
	sb.WriteString("method  components       mse        r2\n")
	fmt.Fprintf(&sb, "%-6s  %10d  %8.4f  %8.4f\n", r.OLS.Method, r.OLS.Components, r.OLS.MSE, r.OLS.R2)
	fmt.Fprintf(&sb, "%-6s  %10d  %8.4f  %8.4f", r.PLSR.Method, r.PLSR.Components, r.PLSR.MSE, r.PLSR.R2)

	return sb.String()
}

// Compare fits both OLS and PLSR on (X, y) and reports MSE and R² for
// each. PLS options (WithComponents, WithTolerance, WithMaxIter) are
// forwarded to FitPLS; OLS takes none.
func Compare(x *matrix.Dense, y []float64, opts ...Option) (*Report, error) {
	ols, err := FitOLS(x, y)
	if err != nil {
		return nil, fmt.Errorf("Compare: %w", err)
	}
	pls, err := FitPLS(x, y, opts...)
	if err != nil {
		return nil, fmt.Errorf("Compare: %w", err)
	}

	report := &Report{}
	for _, m := range []*Model{ols, pls} {
		yhat, perr := m.Predict(x)
		if perr != nil {
			return nil, fmt.Errorf("Compare: %w", perr)
		}
		metrics := Metrics{
			Method:     m.Method,
			MSE:        meanSquaredError(y, yhat),
			R2:         rSquared(y, yhat),
			Components: m.Components,
		}
		if m.Method == "OLS" {
			report.OLS = metrics
		} else {
			report.PLSR = metrics
		}
	}

	return report, nil
}
