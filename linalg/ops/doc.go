// Package ops provides the advanced, square-matrix algorithms layered on
// top of linalg.Matrix: LU decomposition with partial pivoting and
// determinant, Gauss-Jordan inverse, forward/back-substitution solve, QR
// decomposition via Householder reflections, and matrix exponential by
// scaling-and-squaring with a Taylor series.
//
// Every kernel here follows the teacher's matrix/ops convention: validate
// shape first, prepare working storage, execute the numbered stages of the
// algorithm, then return. All kernels fail with linalg.ErrNotSquare or
// linalg.ErrSingular rather than panicking; a zero pivot during elimination
// is always reported as linalg.ErrSingular, never silently skipped.
package ops
