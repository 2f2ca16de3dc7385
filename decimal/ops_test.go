package decimal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vectorflat/svgflatten/decimal"
)

func TestArithmetic(t *testing.T) {
	c := decimal.Default()

	a := decimal.MustParse("1.5")
	b := decimal.MustParse("2.25")

	assert.True(t, c.Equals(c.Plus(a, b), decimal.MustParse("3.75")))
	assert.True(t, c.Equals(c.Minus(b, a), decimal.MustParse("0.75")))
	assert.True(t, c.Equals(c.Times(a, b), decimal.MustParse("3.375")))

	q, err := c.Div(b, a)
	require.NoError(t, err)
	assert.True(t, c.Equals(q, decimal.MustParse("1.5")))
}

func TestDivisionByZero(t *testing.T) {
	c := decimal.Default()
	_, err := c.Div(decimal.One, decimal.Zero)
	require.ErrorIs(t, err, decimal.ErrDivisionByZero)
}

func TestSqrt(t *testing.T) {
	c := decimal.Default()
	r, err := c.Sqrt(decimal.FromInt(4))
	require.NoError(t, err)
	assert.True(t, c.EqualsWithin(r, decimal.FromInt(2), decimal.MustParse("1e-70")))

	_, err = c.Sqrt(decimal.FromInt(-1))
	require.ErrorIs(t, err, decimal.ErrNegativeRoot)
}

func TestSqrtTightTolerance(t *testing.T) {
	c := decimal.Default()
	r, err := c.Sqrt(decimal.FromInt(2))
	require.NoError(t, err)
	squared := c.Times(r, r)
	tol := decimal.MustParse("1e-70")
	assert.True(t, c.EqualsWithin(squared, decimal.FromInt(2), tol))
}

func TestPowIntegerExponent(t *testing.T) {
	c := decimal.Default()
	r := c.Pow(decimal.FromInt(2), decimal.FromInt(10))
	assert.True(t, c.Equals(r, decimal.FromInt(1024)))

	r = c.Pow(decimal.FromInt(2), decimal.FromInt(-2))
	assert.True(t, c.Equals(r, decimal.MustParse("0.25")))
}

func TestComparisons(t *testing.T) {
	c := decimal.Default()
	a, b := decimal.FromInt(1), decimal.FromInt(2)
	assert.True(t, c.LessThan(a, b))
	assert.True(t, c.GreaterThan(b, a))
	assert.True(t, c.IsZero(decimal.Zero))
	assert.False(t, c.IsZero(a))
}

func TestToFixed(t *testing.T) {
	c := decimal.Default()
	s := c.ToFixed(decimal.MustParse("1.2000"), 2)
	assert.Equal(t, "1.20", s)
}

func TestToExponential(t *testing.T) {
	c := decimal.Default()

	assert.Equal(t, "1.23e+02", c.ToExponential(decimal.MustParse("123.456"), 2))
	assert.Equal(t, "5e+00", c.ToExponential(decimal.FromInt(5), 0))
	assert.Equal(t, "-3.14e+00", c.ToExponential(decimal.MustParse("-3.14159"), 2))
	assert.Equal(t, "1.000e-04", c.ToExponential(decimal.MustParse("0.0001"), 3))
	assert.Equal(t, "0.00e+00", c.ToExponential(decimal.Zero, 2))
}

func TestToExponentialRoundsUpAcrossDigits(t *testing.T) {
	c := decimal.Default()
	// 9.995 rounded to 2 mantissa digits rounds up through the carry chain
	// into an extra leading digit, bumping the exponent by one.
	assert.Equal(t, "1.00e+01", c.ToExponential(decimal.MustParse("9.995"), 2))
}
