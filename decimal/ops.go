package decimal

import (
	"fmt"
	"strings"
)

// Plus returns a+b rounded to the Context's working precision.
func (c *Context) Plus(a, b Dec) Dec {
	return c.round(a.Add(b))
}

// Minus returns a-b rounded to the Context's working precision.
func (c *Context) Minus(a, b Dec) Dec {
	return c.round(a.Sub(b))
}

// Times returns a*b rounded to the Context's working precision.
func (c *Context) Times(a, b Dec) Dec {
	return c.round(a.Mul(b))
}

// Div returns a/b rounded to the Context's working precision.
// Fails with ErrDivisionByZero when b is exactly zero.
func (c *Context) Div(a, b Dec) (Dec, error) {
	if b.IsZero() {
		return Dec{}, ErrDivisionByZero
	}
	return a.DivRound(b, c.precision+8).RoundBank(c.precision), nil
}

// Sqrt returns sqrt(a) rounded to the Context's working precision.
// Fails with ErrNegativeRoot when a is negative.
//
// The result is obtained by Newton-Raphson iteration in full decimal
// arithmetic (not via a float64 bridge), so callers that depend on
// round-trip identity for e.g. matrix norms keep decimal-exact guarantees.
func (c *Context) Sqrt(a Dec) (Dec, error) {
	if a.IsNegative() {
		return Dec{}, ErrNegativeRoot
	}
	if a.IsZero() {
		return Zero, nil
	}

	workPrec := c.precision + 10
	x := FromFloat(mustFloat(a))
	if x.IsZero() || x.IsNegative() {
		x = One
	}
	two := FromInt(2)
	for i := 0; i < 64; i++ {
		// x_{n+1} = (x_n + a/x_n) / 2
		quot := a.DivRound(x, workPrec)
		next := x.Add(quot).DivRound(two, workPrec)
		if next.Sub(x).Abs().LessThan(epsilonFor(workPrec)) {
			x = next
			break
		}
		x = next
	}
	return x.RoundBank(c.precision), nil
}

// Pow returns a**b rounded to the Context's working precision. Integer
// exponents are computed by repeated decimal multiplication (exact up to
// rounding); non-integer exponents bridge through float64 via exp(b*ln(a)),
// matching the documented transcendental policy in doc.go.
func (c *Context) Pow(a, b Dec) Dec {
	if b.IsInteger() && b.Abs().LessThanOrEqual(FromInt(4096)) {
		n := b.IntPart()
		neg := n < 0
		if neg {
			n = -n
		}
		result := One
		base := a
		for n > 0 {
			if n&1 == 1 {
				result = c.round(result.Mul(base))
			}
			base = c.round(base.Mul(base))
			n >>= 1
		}
		if neg {
			if result.IsZero() {
				return Zero
			}
			result, _ = c.Div(One, result)
		}
		return result
	}
	fa, fb := mustFloat(a), mustFloat(b)
	return c.round(FromFloat(pow(fa, fb)))
}

// Abs returns |a|, exact (no rounding is needed for a sign flip/no-op).
func (c *Context) Abs(a Dec) Dec { return a.Abs() }

// Negate returns -a, exact.
func (c *Context) Negate(a Dec) Dec { return a.Neg() }

// Sign returns -1, 0, or 1 according to the sign of a.
func (c *Context) Sign(a Dec) int { return a.Sign() }

// Equals reports exact equality (no tolerance). Use EqualsWithin for
// tolerance-based comparisons, as mandated by §3 ("equality under tolerance
// is a separate predicate").
func (c *Context) Equals(a, b Dec) bool { return a.Equal(b) }

// EqualsWithin reports whether |a-b| <= tol.
func (c *Context) EqualsWithin(a, b, tol Dec) bool {
	return a.Sub(b).Abs().LessThanOrEqual(tol)
}

// LessThan reports a < b exactly.
func (c *Context) LessThan(a, b Dec) bool { return a.LessThan(b) }

// GreaterThan reports a > b exactly.
func (c *Context) GreaterThan(a, b Dec) bool { return a.GreaterThan(b) }

// IsZero reports whether a is exactly zero.
func (c *Context) IsZero(a Dec) bool { return a.IsZero() }

// ToFixed formats a with exactly n digits after the decimal point.
func (c *Context) ToFixed(a Dec, n int32) string {
	return a.StringFixed(n)
}

// ToExponential formats a in scientific notation ("d.ddde±XX") with n
// digits of mantissa precision after the decimal point, per §4.1's
// toExponential operation. Rounding of the dropped digits is
// round-half-to-even, matching every other rounding point in this package.
func (c *Context) ToExponential(a Dec, n int32) string {
	if n < 0 {
		n = 0
	}
	if a.IsZero() {
		mantissa := "0"
		if n > 0 {
			mantissa += "." + strings.Repeat("0", int(n))
		}
		return mantissa + "e+00"
	}

	neg := a.IsNegative()
	abs := a.Abs()
	digits := abs.Coefficient().String()
	exp := int(abs.Exponent())

	// abs = digits (as an integer) * 10^exp; the first significant digit
	// sits at decimal exponent len(digits)-1+exp in scientific form.
	sciExp := len(digits) - 1 + exp

	kept, carried := roundDigitString(digits, int(n)+1)
	if carried {
		sciExp++
	}

	var mantissa string
	if n == 0 {
		mantissa = kept
	} else {
		mantissa = kept[:1] + "." + kept[1:]
	}

	sign := "+"
	if sciExp < 0 {
		sign = "-"
		sciExp = -sciExp
	}
	out := fmt.Sprintf("%se%s%02d", mantissa, sign, sciExp)
	if neg {
		out = "-" + out
	}
	return out
}

// roundDigitString rounds the unsigned decimal digit string digits to keep
// significant digits (round-half-to-even on the boundary digit), returning
// the rounded digit string and whether rounding overflowed into an extra
// leading digit (e.g. "999" rounded to 2 digits carries to "10", reported
// as kept="10"[:2]="10" with carried=true so the caller can bump its
// exponent by one).
func roundDigitString(digits string, keep int) (string, bool) {
	if keep < 1 {
		keep = 1
	}
	if len(digits) < keep {
		return digits + strings.Repeat("0", keep-len(digits)), false
	}
	kept := []byte(digits[:keep])
	rest := digits[keep:]

	roundUp := false
	if len(rest) > 0 {
		switch {
		case rest[0] > '5':
			roundUp = true
		case rest[0] == '5':
			if strings.Trim(rest[1:], "0") != "" {
				roundUp = true
			} else {
				roundUp = (kept[len(kept)-1]-'0')%2 == 1
			}
		}
	}
	if !roundUp {
		return string(kept), false
	}

	carry := true
	for i := len(kept) - 1; i >= 0 && carry; i-- {
		if kept[i] == '9' {
			kept[i] = '0'
		} else {
			kept[i]++
			carry = false
		}
	}
	if carry {
		return "1" + string(kept[:len(kept)-1]), true
	}
	return string(kept), false
}

func epsilonFor(precision int32) Dec {
	// 10^-(precision-2): tight enough to converge Newton-Raphson without
	// looping past the point where further iteration cannot improve the
	// rounded result.
	exp := -(precision - 2)
	return One.Shift(int32(exp))
}

func mustFloat(d Dec) float64 {
	f, _ := d.Float64()
	return f
}
