// Package lvltree is your in-memory playground for building, walking,
// and analyzing binary trees — plus a small numeric annex for comparing
// regression models on synthetic data.
//
// 🌳 What is lvltree?
//
//	A compact, dependency-light companion to lvlath that brings together:
//		• Core primitives: construct nodes, wire children, count & clone trees
//		• Level-order traversal: heights, per-level scans, breadth-first layering
//		• Builders: perfect trees, one-sided paths, heap-order wiring, seeded shapes
//		• Matrix kernels: dense float64 matrices with solve & statistics helpers
//		• Regression: OLS vs PLSR (NIPALS) side-by-side on synthetic latent data
//
// ✨ Why choose lvltree?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – same inputs and seeds ⇒ identical trees, levels, fits
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – hooks (OnVisit, OnLevel…) for custom logic during traversal
//
// Under the hood, everything is organized under five subpackages:
//
//	tree/       — the Node entity: values, owned children, clone/count/validate
//	levelorder/ — height and breadth-first layering, rescan or queue strategy
//	builder/    — deterministic tree constructors behind functional options
//	matrix/     — row-major Dense matrices, kernels, LU solve, centering
//	regress/    — synthetic data, OLS and PLSR fits, comparison reports
//
// Quick ASCII example:
//
//	        1
//	      /   \
//	     2     3
//	    / \   / \
//	   4   5 6   7
//
//	prints level by level as: [1], [2 3], [4 5 6 7].
//
// Dive into each package's doc.go for contracts, complexity notes, and
// runnable examples.
//
//	go get github.com/katalvlaran/lvltree
package lvltree
