// SPDX-License-Identifier: MIT
// Package: lvltree/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • valueFn = ordinalValue (node index 0 → value 1, index 1 → value 2, ...)
//   • rng     = nil          (pure/deterministic unless seeded)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Value strategy: zero-based node index -> value (deterministic).
	valueFn func(int) int64

	// RNG for stochastic choices; nil means "no randomness available".
	rng *rand.Rand
}

// ordinalValue is the default value scheme: 1-based node ordinal, so a
// tree built in creation order carries values 1..n.
func ordinalValue(idx int) int64 {
	return int64(idx) + 1
}

// newBuilderConfig resolves functional options into a builderConfig,
// applying defaults first and options in call order.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		valueFn: ordinalValue,
		rng:     nil,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
