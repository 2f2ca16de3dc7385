package affine_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vectorflat/svgflatten/affine"
	"github.com/vectorflat/svgflatten/decimal"
	"github.com/vectorflat/svgflatten/linalg"
	"github.com/vectorflat/svgflatten/linalg/ops"
)

func TestTranslationApply(t *testing.T) {
	ctx := decimal.Default()
	m := affine.Translation2D(decimal.FromInt(10), decimal.FromInt(20))
	x, y, err := affine.ApplyPoint2D(ctx, m, decimal.FromInt(1), decimal.FromInt(2))
	require.NoError(t, err)
	assert.True(t, ctx.Equals(x, decimal.FromInt(11)))
	assert.True(t, ctx.Equals(y, decimal.FromInt(22)))
}

func TestRotateAroundPointIdentityOnCenter(t *testing.T) {
	ctx := decimal.Default()
	m, err := affine.RotateAroundPoint2D(ctx, decimal.FromFloat(math.Pi/2), decimal.FromInt(5), decimal.FromInt(5))
	require.NoError(t, err)
	x, y, err := affine.ApplyPoint2D(ctx, m, decimal.FromInt(5), decimal.FromInt(5))
	require.NoError(t, err)
	tol := decimal.MustParse("1e-9")
	assert.True(t, ctx.EqualsWithin(x, decimal.FromInt(5), tol))
	assert.True(t, ctx.EqualsWithin(y, decimal.FromInt(5), tol))
}

func TestRotateAroundAxisZeroAxis(t *testing.T) {
	ctx := decimal.Default()
	_, err := affine.RotateAroundAxis3D(ctx, decimal.FromInt(1), decimal.Zero, decimal.Zero, decimal.Zero)
	require.ErrorIs(t, err, affine.ErrZeroAxis)
}

func TestScaleDeterminant(t *testing.T) {
	ctx := decimal.Default()
	m := affine.Scale2D(decimal.FromInt(2), decimal.FromInt(3))
	lin, err := linalg.NewDense(2, 2)
	require.NoError(t, err)
	a, b, c, dd, err := affine.LinearPart2D(m)
	require.NoError(t, err)
	_ = lin.Set(0, 0, a)
	_ = lin.Set(0, 1, b)
	_ = lin.Set(1, 0, c)
	_ = lin.Set(1, 1, dd)
	assert.True(t, ctx.Equals(a, decimal.FromInt(2)))
	assert.True(t, ctx.Equals(dd, decimal.FromInt(3)))

	det, err := ops.Det(ctx, lin)
	require.NoError(t, err)
	assert.True(t, ctx.Equals(det, decimal.FromInt(6)))
}
