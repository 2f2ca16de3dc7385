// Package linalg provides dense matrices and vectors of arbitrary-precision
// decimal.Dec values, plus the linear-algebra primitives the affine,
// transform, and verification packages build on: element access, arithmetic,
// transpose, and (in the linalg/ops subpackage) LU decomposition with
// partial pivoting, determinant, inverse, solve, QR decomposition, and
// matrix exponential.
//
// Dense is a concrete, row-major Matrix implementation storing elements in a
// flat slice, mirroring the teacher's array-backed dense matrix layout but
// over decimal.Dec instead of float64 so that results stay exact up to a
// single controlled rounding per operation (§3 of the specification).
//
// Square-matrix operations fail with ErrNotSquare when rows != cols and
// ErrSingular when a pivot cannot be found, per §3's invariants. Matrix and
// Vector values are logically immutable: every operation returns a new
// value; callers that want in-place mutation use Set explicitly.
package linalg
