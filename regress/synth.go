// Package regress - synthetic latent-factor data generation.
package regress

import (
	"fmt"

	"github.com/katalvlaran/lvltree/matrix"
)

// Synthetic generates a samples×features predictor matrix X and a
// response vector y, both driven by a small set of latent components:
//
//	T ~ N(0,1)            (samples×latent scores)
//	P ~ N(0,1)            (features×latent loadings)
//	X = T·Pᵀ + σ·Ex       (correlated columns + noise)
//	y = T·q  + σ·ey       (response from the same scores)
//
// Columns of X are therefore collinear by construction — the regime
// where PLSR outperforms plain OLS. Seeding policy: seed 0 uses the
// fixed default; scores, loadings, and the two noise sources draw from
// independently derived streams.
//
// Returns ErrOptionViolation for bad options and ErrTooFewSamples when
// samples < 2 or features < 1.
//
// Complexity: O(samples·features·latent).
func Synthetic(samples, features int, opts ...Option) (*matrix.Dense, []float64, error) {
	o := resolveOptions(opts)
	if o.err != nil {
		return nil, nil, o.err
	}
	if samples < 2 || features < 1 {
		return nil, nil, fmt.Errorf("Synthetic: %dx%d: %w", samples, features, ErrTooFewSamples)
	}

	scoresRNG := deriveRNG(o.seed, streamScores)
	loadRNG := deriveRNG(o.seed, streamLoadings)
	noiseXRNG := deriveRNG(o.seed, streamNoiseX)
	noiseYRNG := deriveRNG(o.seed, streamNoiseY)

	// Latent scores T (samples×latent), row-major draw order.
	scores := make([][]float64, samples)
	for i := range scores {
		row := make([]float64, o.latent)
		for k := range row {
			row[k] = scoresRNG.NormFloat64()
		}
		scores[i] = row
	}

	// Loadings P (features×latent) and response weights q (latent).
	loadings := make([][]float64, features)
	for j := range loadings {
		row := make([]float64, o.latent)
		for k := range row {
			row[k] = loadRNG.NormFloat64()
		}
		loadings[j] = row
	}
	weights := make([]float64, o.latent)
	for k := range weights {
		weights[k] = loadRNG.NormFloat64()
	}

	// X = T·Pᵀ + σ·Ex, assembled row-major.
	flat := make([]float64, samples*features)
	for i := 0; i < samples; i++ {
		for j := 0; j < features; j++ {
			v := 0.0
			for k := 0; k < o.latent; k++ {
				v += scores[i][k] * loadings[j][k]
			}
			flat[i*features+j] = v + o.noise*noiseXRNG.NormFloat64()
		}
	}
	x, err := matrix.NewDenseFrom(samples, features, flat)
	if err != nil {
		return nil, nil, fmt.Errorf("Synthetic: %w", err)
	}

	// y = T·q + σ·ey.
	y := make([]float64, samples)
	for i := 0; i < samples; i++ {
		v := 0.0
		for k := 0; k < o.latent; k++ {
			v += scores[i][k] * weights[k]
		}
		y[i] = v + o.noise*noiseYRNG.NormFloat64()
	}

	return x, y, nil
}
