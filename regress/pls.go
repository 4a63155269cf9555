// Package regress - partial least squares regression via NIPALS.
package regress

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvltree/matrix"
)

// FitPLS fits partial least squares regression with the NIPALS
// algorithm: each component extracts the direction of X most covariant
// with the (deflated) response, then deflates both sides and repeats.
//
// The requested component count (WithComponents) is clamped to what the
// data can support, min(rows-1, cols); Model.Components records the
// count actually extracted. Extraction stops early — without error — if
// the remaining covariance is exhausted after at least one component;
// ErrNoVariance is returned only when not even the first component can
// be extracted.
//
// Complexity: O(k·r·c) per the k extracted components.
func FitPLS(x *matrix.Dense, y []float64, opts ...Option) (*Model, error) {
	if x == nil {
		return nil, fmt.Errorf("FitPLS: %w", matrix.ErrNilMatrix)
	}
	if x.Rows() != len(y) {
		return nil, fmt.Errorf("FitPLS: rows=%d len(y)=%d: %w", x.Rows(), len(y), ErrBadShape)
	}
	if x.Rows() < 2 {
		return nil, fmt.Errorf("FitPLS: rows=%d: %w", x.Rows(), ErrTooFewSamples)
	}
	o := resolveOptions(opts)
	if o.err != nil {
		return nil, o.err
	}

	rows, cols := x.Rows(), x.Cols()
	maxComp := rows - 1
	if cols < maxComp {
		maxComp = cols
	}
	k := o.components
	if k > maxComp {
		k = maxComp
	}

	// Center both sides; deflation operates on the centered copies.
	e, xMeans, err := matrix.CenterColumns(x)
	if err != nil {
		return nil, fmt.Errorf("FitPLS: %w", err)
	}
	yMean := matrix.MeanOf(y)
	f := make([]float64, len(y))
	for i, v := range y {
		f[i] = v - yMean
	}

	weights := make([][]float64, 0, k)  // W columns (length cols)
	loadings := make([][]float64, 0, k) // P columns (length cols)
	responses := make([]float64, 0, k)  // c scalars

	for comp := 0; comp < k; comp++ {
		w, t, p, c, ok, cerr := extractComponent(e, f, o)
		if cerr != nil {
			return nil, fmt.Errorf("FitPLS: component %d: %w", comp+1, cerr)
		}
		if !ok {
			// Covariance exhausted: keep what we have, if anything.
			break
		}

		// Deflate: E ← E − t·pᵀ, f ← f − c·t.
		deflate(e, t, p)
		for i := range f {
			f[i] -= c * t[i]
		}

		weights = append(weights, w)
		loadings = append(loadings, p)
		responses = append(responses, c)
	}

	extracted := len(weights)
	if extracted == 0 {
		return nil, fmt.Errorf("FitPLS: %w", ErrNoVariance)
	}

	beta, err := coefficientsFrom(weights, loadings, responses, cols)
	if err != nil {
		return nil, fmt.Errorf("FitPLS: %w", err)
	}

	intercept := yMean
	for j, b := range beta {
		intercept -= xMeans[j] * b
	}

	return &Model{
		Method:       "PLSR",
		Coefficients: beta,
		Intercept:    intercept,
		Components:   extracted,
	}, nil
}

// extractComponent runs the NIPALS inner loop on the current deflated
// (e, f) pair. For a univariate response the loop stabilizes after one
// pass; the iteration cap and tolerance still bound it. ok=false means
// the remaining covariance is below tolerance (not an error by itself).
func extractComponent(e *matrix.Dense, f []float64, o options) (w, t, p []float64, c float64, ok bool, err error) {
	et, err := matrix.Transpose(e)
	if err != nil {
		return nil, nil, nil, 0, false, err
	}

	u := f
	var wPrev []float64
	var tt float64
	for iter := 0; iter < o.maxIter; iter++ {
		// Weight direction: w = Eᵀu, normalized.
		w, err = matrix.MatVec(et, u)
		if err != nil {
			return nil, nil, nil, 0, false, err
		}
		n := norm(w)
		if n <= o.tolerance {
			return nil, nil, nil, 0, false, nil
		}
		for j := range w {
			w[j] /= n
		}

		// Scores: t = E·w.
		t, err = matrix.MatVec(e, w)
		if err != nil {
			return nil, nil, nil, 0, false, err
		}
		tt = dot(t, t)
		if tt <= o.tolerance {
			return nil, nil, nil, 0, false, nil
		}

		// Response loading: c = fᵀt / tᵀt.
		c = dot(f, t) / tt

		if wPrev != nil && vecDelta(w, wPrev) < o.tolerance {
			break
		}
		wPrev = w

		// With a univariate response the score of f is f itself, so u
		// stays put and the next pass reproduces w exactly (delta 0).
		u = f
	}

	// X loadings: p = Eᵀt / tᵀt.
	p, err = matrix.MatVec(et, t)
	if err != nil {
		return nil, nil, nil, 0, false, err
	}
	for j := range p {
		p[j] /= tt
	}

	return w, t, p, c, true, nil
}

// coefficientsFrom folds the extracted components into original-space
// coefficients: β = W·(PᵀW)⁻¹·c.
func coefficientsFrom(weights, loadings [][]float64, responses []float64, cols int) ([]float64, error) {
	wm, err := columnsToDense(weights, cols) // cols×k
	if err != nil {
		return nil, err
	}
	pm, err := columnsToDense(loadings, cols) // cols×k
	if err != nil {
		return nil, err
	}
	pt, err := matrix.Transpose(pm) // k×cols
	if err != nil {
		return nil, err
	}
	ptw, err := matrix.Mul(pt, wm) // k×k
	if err != nil {
		return nil, err
	}
	z, err := matrix.Solve(ptw, responses)
	if err != nil {
		return nil, err
	}

	return matrix.MatVec(wm, z)
}

// columnsToDense assembles column vectors (each length rows) into a
// rows×len(cols) Dense.
func columnsToDense(columns [][]float64, rows int) (*matrix.Dense, error) {
	k := len(columns)
	flat := make([]float64, rows*k)
	for j, col := range columns {
		for i, v := range col {
			flat[i*k+j] = v
		}
	}

	return matrix.NewDenseFrom(rows, k, flat)
}

// deflate subtracts the rank-one update t·pᵀ from e in place.
func deflate(e *matrix.Dense, t, p []float64) {
	for i := 0; i < e.Rows(); i++ {
		for j := 0; j < e.Cols(); j++ {
			v, _ := e.At(i, j)
			_ = e.Set(i, j, v-t[i]*p[j])
		}
	}
}

// dot returns the inner product of equal-length vectors.
func dot(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum
}

// norm returns the Euclidean norm of v.
func norm(v []float64) float64 {
	return math.Sqrt(dot(v, v))
}

// vecDelta returns the Euclidean distance between successive weight
// vectors, the NIPALS convergence measure.
func vecDelta(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}

	return math.Sqrt(sum)
}
