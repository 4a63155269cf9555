// SPDX-License-Identifier: MIT
// Package: lvltree/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations attach context via `%w` wrapping.
//   • Constructors MUST NOT panic at runtime; validation panics are
//     confined to option constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewNodes indicates that a size parameter (levels, n, len(values))
// is smaller than the allowed minimum for the requested constructor.
// Usage: if errors.Is(err, ErrTooFewNodes) { /* report invalid size */ }.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrUnknownSide indicates a Path side other than Left or Right.
// Usage: if errors.Is(err, ErrUnknownSide) { /* fix the Side value */ }.
var ErrUnknownSide = errors.New("builder: unknown path side")

// ErrNeedRandSource indicates a stochastic constructor was run without a
// non-nil *rand.Rand in the resolved config (set WithSeed or WithRand).
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seeded RNG */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrNilConstructor indicates Build was handed a nil Constructor closure
// (programmer error caught at the API boundary instead of a panic).
var ErrNilConstructor = errors.New("builder: nil constructor")
