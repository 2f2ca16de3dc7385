// Package decimal provides the arbitrary-precision numeric kernel that every
// other package in this module builds on: addition, subtraction,
// multiplication, division, square root, the trigonometric family (sin, cos,
// tan, atan2, acos), power, absolute value, negation, sign, and tolerance-free
// comparisons.
//
// Decimal values are immutable. Every operation returns a new Decimal rounded
// to the working precision carried by a Context; it never mutates its
// operands. Rounding is round-half-to-even, applied once per operation so
// that error does not compound faster than the requested precision allows.
//
// A Context fixes the working precision P (default 80, see
// DefaultPrecision). Results are rounded to P digits after the decimal
// point, not to P significant digits: the number of significant digits a
// result keeps grows with its magnitude, and a result smaller in magnitude
// than half of 10^-P rounds to zero. The zero Context is not usable; build one with
// NewContext or use Default(). Per Design Notes §9 of the specification,
// precision is never a global: every call that needs it takes a *Context
// explicitly.
//
// Transcendental functions (sin, cos, tan, acos, atan2) are computed by
// bridging through the standard library's IEEE-754 math package and
// converting the float64 result back to Decimal at the working precision.
// This is a deliberate, documented loss of precision (Design Notes §9,
// Open Question (b) of the specification): a decimal library in this
// ecosystem does not ship native arbitrary-precision transcendentals, and
// reimplementing Taylor/CORDIC series to 80 digits is out of scope for this
// kernel. Callers needing geometry-grade accuracy (affine composition,
// matrix inversion, polygon area) never route through a trig function for
// their exactness guarantees; only rotate()/skew() constructors and the arc
// rotation bake (transform package) consume trig, and both already carry a
// much looser verification tolerance than the decimal-exact operations.
package decimal

import "github.com/shopspring/decimal"

// DefaultPrecision is the default working precision: the number of digits
// kept after the decimal point.
const DefaultPrecision = 80

// Dec is the immutable arbitrary-precision decimal value used throughout
// this module. It is a thin alias over decimal.Decimal so that every package
// can pass values around without importing the shopspring/decimal package
// directly; all rounding/precision policy is applied by Context, not by Dec
// itself.
type Dec = decimal.Decimal

// Context carries the working precision and rounding policy for a pipeline
// run. Build one with NewContext; Default returns a shared Context at
// DefaultPrecision for convenience (tests, examples, and callers that do not
// need a custom precision).
type Context struct {
	// precision is the number of digits after the decimal point results
	// are rounded to after each operation.
	precision int32
}

// NewContext builds a Context with the given working precision in digits
// after the decimal point. Precision must be positive; non-positive values fall
// back to DefaultPrecision rather than producing an unusable Context, since
// a pipeline must always be able to make numeric progress.
func NewContext(precision int) *Context {
	if precision <= 0 {
		precision = DefaultPrecision
	}
	return &Context{precision: int32(precision)}
}

// Default returns a Context at DefaultPrecision (80 decimal places).
func Default() *Context {
	return NewContext(DefaultPrecision)
}

// Precision reports the working precision in digits after the decimal
// point.
func (c *Context) Precision() int {
	if c == nil {
		return DefaultPrecision
	}
	return int(c.precision)
}

// round applies round-half-to-even at the Context's working precision. The
// shopspring/decimal package rounds half-away-from-zero by default for
// DivRound/RoundBank is the half-to-even variant; we always route through
// RoundBank to honor the specification's round-half-to-even requirement.
func (c *Context) round(d Dec) Dec {
	return d.RoundBank(c.precision)
}

// Zero and One are precision-independent constants, exposed for callers that
// need a neutral element without threading a Context (e.g. default-valued
// struct fields).
var (
	Zero = decimal.Zero
	One  = decimal.NewFromInt(1)
)

// FromInt builds an exact Dec from an int64.
func FromInt(v int64) Dec { return decimal.NewFromInt(v) }

// FromFloat builds a Dec from a float64. This is a boundary conversion used
// only when ingesting numbers parsed from SVG text (which is itself
// IEEE-754-shaped, being plain decimal text) or when crossing into the
// bounded-precision trig bridge; arithmetic thereafter stays in Dec.
func FromFloat(v float64) Dec { return decimal.NewFromFloat(v) }

// MustParse parses a decimal literal (as found in SVG attribute text) into a
// Dec. It panics on malformed input; callers parsing untrusted SVG text must
// use Parse instead and propagate InvalidPath/InvalidTransform as specified.
func MustParse(s string) Dec {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Parse parses a decimal literal into a Dec, returning an error for
// malformed input instead of panicking.
func Parse(s string) (Dec, error) {
	return decimal.NewFromString(s)
}
