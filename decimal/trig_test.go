package decimal_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vectorflat/svgflatten/decimal"
)

func TestTrig(t *testing.T) {
	c := decimal.Default()
	halfPi := decimal.FromFloat(math.Pi / 2)

	assert.InDelta(t, 1.0, toF(c.Sin(halfPi)), 1e-9)
	assert.InDelta(t, 0.0, toF(c.Cos(halfPi)), 1e-9)

	r := c.Atan2(decimal.FromInt(1), decimal.FromInt(1))
	assert.InDelta(t, math.Pi/4, toF(r), 1e-9)
}

func TestAcosDomain(t *testing.T) {
	c := decimal.Default()
	_, err := c.Acos(decimal.FromInt(2))
	require.ErrorIs(t, err, decimal.ErrDomain)

	v, err := c.Acos(decimal.FromInt(1))
	require.NoError(t, err)
	assert.InDelta(t, 0.0, toF(v), 1e-9)
}

func toF(d decimal.Dec) float64 {
	f, _ := d.Float64()
	return f
}
