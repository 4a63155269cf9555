// Package matrix provides the dense linear-algebra kernels used by the
// regress package: a row-major float64 matrix with elementwise,
// product, transpose, scaling, and solve operations, plus the column
// statistics regression needs.
//
// What
//
//   - Dense: row-major r×c float64 matrix with bounds-checked At/Set.
//   - Kernels: Add, Sub, Mul, Transpose, Scale, MatVec.
//   - Solve: LU factorization with partial pivoting for square systems.
//   - Statistics: ColumnMeans, CenterColumns, MeanOf.
//
// Why
//
//   - OLS normal equations and NIPALS deflation decompose entirely into
//     these kernels; keeping them in one package keeps regress readable.
//
// Determinism & Performance
//
//   - Fixed i→j traversal for all loops; identical inputs ⇒ identical
//     outputs bit-for-bit.
//   - Kernels operate on the flat backing slice; no At/Set in hot loops.
//   - Operands are never mutated; every kernel allocates its result.
//
// Errors
//
//	All functions perform strict fail-fast validation and wrap sentinel
//	errors with an operation tag ("Mul: ...", "Solve: ..."):
//
//   - ErrNilMatrix          if an operand is nil.
//   - ErrInvalidDimensions  if requested dimensions are non-positive.
//   - ErrIndexOutOfBounds   if a row/column index is out of range.
//   - ErrDimensionMismatch  if operand shapes do not conform.
//   - ErrSingular           if Solve meets a zero pivot column.
package matrix
