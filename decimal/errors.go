package decimal

import "errors"

// Sentinel errors for the decimal kernel. Every algorithm in this package
// returns one of these rather than panicking on a user-triggered condition;
// panics are reserved for programmer errors (e.g. a nil Context reaching an
// internal helper that assumes non-nil).
var (
	// ErrDivisionByZero is returned by Div when the divisor is exactly zero.
	ErrDivisionByZero = errors.New("decimal: division by zero")

	// ErrNegativeRoot is returned by Sqrt when the operand is negative.
	ErrNegativeRoot = errors.New("decimal: square root of negative number")

	// ErrDomain is returned by Acos when the operand falls outside [-1, 1].
	ErrDomain = errors.New("decimal: argument outside function domain")
)
