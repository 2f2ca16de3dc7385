package decimal

import "math"

// pow bridges to math.Pow for the non-integer-exponent case documented in
// doc.go and ops.go.
func pow(a, b float64) float64 { return math.Pow(a, b) }

// Sin returns sin(a radians), rounded to the Context's working precision via
// the documented float64 bridge.
func (c *Context) Sin(a Dec) Dec { return c.fromFloatFn(a, math.Sin) }

// Cos returns cos(a radians) via the documented float64 bridge.
func (c *Context) Cos(a Dec) Dec { return c.fromFloatFn(a, math.Cos) }

// Tan returns tan(a radians) via the documented float64 bridge.
func (c *Context) Tan(a Dec) Dec { return c.fromFloatFn(a, math.Tan) }

// Acos returns acos(a) in radians. Fails with ErrDomain when a is outside
// [-1, 1].
func (c *Context) Acos(a Dec) (Dec, error) {
	f := mustFloat(a)
	if f < -1 || f > 1 {
		return Dec{}, ErrDomain
	}
	return c.round(FromFloat(math.Acos(f))), nil
}

// Atan2 returns atan2(y, x) in radians via the documented float64 bridge.
func (c *Context) Atan2(y, x Dec) Dec {
	return c.round(FromFloat(math.Atan2(mustFloat(y), mustFloat(x))))
}

func (c *Context) fromFloatFn(a Dec, fn func(float64) float64) Dec {
	return c.round(FromFloat(fn(mustFloat(a))))
}
