package linalg

import "errors"

// Sentinel errors for the linalg package. Algorithms in linalg/ops return
// these (wrapped with fmt.Errorf("Op: %w", err) for context) rather than
// panicking on user-triggered conditions.
var (
	// ErrInvalidDimensions indicates requested matrix/vector dimensions are
	// non-positive.
	ErrInvalidDimensions = errors.New("linalg: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates a row/column/element index is outside
	// valid range.
	ErrIndexOutOfBounds = errors.New("linalg: index out of bounds")

	// ErrDimensionMismatch indicates two operands have incompatible shapes
	// for the requested operation (e.g. Add of different shapes, Mul where
	// a.Cols != b.Rows).
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrNotSquare signals that a square matrix was required but rows != cols.
	ErrNotSquare = errors.New("linalg: matrix is not square")

	// ErrSingular is returned when a zero pivot is encountered during LU,
	// inverse, or solve.
	ErrSingular = errors.New("linalg: singular matrix")

	// ErrZeroVector is returned by Normalize and AngleBetween when asked to
	// operate on the zero vector.
	ErrZeroVector = errors.New("linalg: zero vector")

	// ErrBadVectorLength signals an operation (Cross) restricted to a fixed
	// vector length received an operand of the wrong length.
	ErrBadVectorLength = errors.New("linalg: vector has wrong length for this operation")
)
