package linalg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vectorflat/svgflatten/decimal"
	"github.com/vectorflat/svgflatten/linalg"
)

func TestVectorDotCross(t *testing.T) {
	ctx := decimal.Default()
	a := linalg.NewVector(d(1), d(0), d(0))
	b := linalg.NewVector(d(0), d(1), d(0))

	dot, err := a.Dot(ctx, b)
	require.NoError(t, err)
	assert.True(t, ctx.IsZero(dot))

	cross, err := a.Cross(ctx, b)
	require.NoError(t, err)
	assert.True(t, cross.Equals(ctx, linalg.NewVector(d(0), d(0), d(1)), decimal.Zero))
}

func TestVectorCrossWrongLength(t *testing.T) {
	ctx := decimal.Default()
	a := linalg.NewVector(d(1), d(0))
	_, err := a.Cross(ctx, a)
	require.ErrorIs(t, err, linalg.ErrBadVectorLength)
}

func TestVectorNormalizeZero(t *testing.T) {
	ctx := decimal.Default()
	zero := linalg.NewVector(decimal.Zero, decimal.Zero)
	_, err := zero.Normalize(ctx)
	require.ErrorIs(t, err, linalg.ErrZeroVector)
}

func TestVectorOrthogonal2D(t *testing.T) {
	ctx := decimal.Default()
	v := linalg.NewVector(d(3), d(4))
	o, err := v.Orthogonal(ctx)
	require.NoError(t, err)
	dot, err := v.Dot(ctx, o)
	require.NoError(t, err)
	assert.True(t, ctx.IsZero(dot))
}
