package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vectorflat/svgflatten/decimal"
	"github.com/vectorflat/svgflatten/pathdata"
	"github.com/vectorflat/svgflatten/transform"
)

func TestParseTranslateScaleComposesLeftToRight(t *testing.T) {
	ctx := decimal.Default()
	m, err := transform.Parse(ctx, "translate(10,20) scale(2)")
	require.NoError(t, err)

	p, err := pathdata.Parse("M5 5")
	require.NoError(t, err)
	abs, err := pathdata.ToAbsolute(ctx, p)
	require.NoError(t, err)

	baked, err := transform.Bake(ctx, m, abs)
	require.NoError(t, err)
	// translate(10,20) scale(2) composes as T*S; applied to a point this
	// scales first then translates: (5,5) -> (10,10) -> (20,30).
	assert.True(t, ctx.Equals(baked[0].Args[0], decimal.FromInt(20)))
	assert.True(t, ctx.Equals(baked[0].Args[1], decimal.FromInt(30)))
}

func TestParseNestedGroupExample3(t *testing.T) {
	// Example 3: <g transform="translate(10,0)"><path transform="scale(2)"
	// d="M0 0 L10 0"/></g> -> M 10 0 L 30 0.
	ctx := decimal.Default()
	groupM, err := transform.Parse(ctx, "translate(10,0)")
	require.NoError(t, err)
	elemM, err := transform.Parse(ctx, "scale(2)")
	require.NoError(t, err)

	ctm, err := transform.BuildCTM(ctx, []transform.Node{
		{Transform: groupM},
		{Transform: elemM},
	})
	require.NoError(t, err)

	p, err := pathdata.Parse("M0 0 L10 0")
	require.NoError(t, err)
	abs, err := pathdata.ToAbsolute(ctx, p)
	require.NoError(t, err)

	baked, err := transform.Bake(ctx, ctm, abs)
	require.NoError(t, err)
	require.Len(t, baked, 2)
	assert.True(t, ctx.Equals(baked[0].Args[0], decimal.FromInt(10)))
	assert.True(t, ctx.Equals(baked[0].Args[1], decimal.Zero))
	assert.True(t, ctx.Equals(baked[1].Args[0], decimal.FromInt(30)))
	assert.True(t, ctx.Equals(baked[1].Args[1], decimal.Zero))
}

func TestParseRotateWithCenter(t *testing.T) {
	ctx := decimal.Default()
	_, err := transform.Parse(ctx, "rotate(90,5,5)")
	require.NoError(t, err)
}

func TestParseMatrixFunction(t *testing.T) {
	ctx := decimal.Default()
	m, err := transform.Parse(ctx, "matrix(1,0,0,1,5,5)")
	require.NoError(t, err)
	a, _, _, d, err := matrixLinearPart(m)
	require.NoError(t, err)
	assert.True(t, ctx.Equals(a, decimal.One))
	assert.True(t, ctx.Equals(d, decimal.One))
}

func TestParseInvalidTransform(t *testing.T) {
	ctx := decimal.Default()
	_, err := transform.Parse(ctx, "bogus(1,2,3)")
	require.ErrorIs(t, err, transform.ErrInvalidTransform)
}

func TestParseViewBoxRejectsNonPositive(t *testing.T) {
	_, err := transform.ParseViewBox("0 0 0 100")
	require.ErrorIs(t, err, transform.ErrInvalidViewBox)
}

func TestViewBoxMatrixNoneAlign(t *testing.T) {
	ctx := decimal.Default()
	vb, err := transform.ParseViewBox("0 0 100 100")
	require.NoError(t, err)
	par := transform.ParsePreserveAspectRatio("none")
	m, err := transform.ViewBoxMatrix(ctx, vb, par, decimal.FromInt(200), decimal.FromInt(50))
	require.NoError(t, err)

	p, err := pathdata.Parse("M100 100")
	require.NoError(t, err)
	abs, err := pathdata.ToAbsolute(ctx, p)
	require.NoError(t, err)
	baked, err := transform.Bake(ctx, m, abs)
	require.NoError(t, err)
	assert.True(t, ctx.Equals(baked[0].Args[0], decimal.FromInt(200)))
	assert.True(t, ctx.Equals(baked[0].Args[1], decimal.FromInt(50)))
}

func TestBakeArcUnderMirror(t *testing.T) {
	// Example 6: A 50 30 0 0 1 100 0 baked by scale(-1,1): sweep 1 -> 0,
	// endpoint (-100,0), rx~=50, ry~=30, rotation 180.
	ctx := decimal.Default()
	m, err := transform.Parse(ctx, "scale(-1,1)")
	require.NoError(t, err)

	p, err := pathdata.Parse("M0 0 A50 30 0 0 1 100 0")
	require.NoError(t, err)
	abs, err := pathdata.ToAbsolute(ctx, p)
	require.NoError(t, err)

	baked, err := transform.Bake(ctx, m, abs)
	require.NoError(t, err)
	require.Len(t, baked, 2)
	require.Equal(t, pathdata.KindArc, baked[1].Kind)

	tol := decimal.MustParse("1e-6")
	assert.True(t, ctx.Equals(baked[1].Args[4], decimal.Zero)) // sweep flips to 0
	assert.True(t, ctx.EqualsWithin(baked[1].Args[5], decimal.FromInt(-100), tol))
	assert.True(t, ctx.EqualsWithin(baked[1].Args[0], decimal.FromInt(50), tol))
	assert.True(t, ctx.EqualsWithin(baked[1].Args[1], decimal.FromInt(30), tol))
}

func matrixLinearPart(m interface{ At(int, int) (decimal.Dec, error) }) (a, b, c, d decimal.Dec, err error) {
	if a, err = m.At(0, 0); err != nil {
		return
	}
	if b, err = m.At(0, 1); err != nil {
		return
	}
	if c, err = m.At(1, 0); err != nil {
		return
	}
	if d, err = m.At(1, 1); err != nil {
		return
	}
	return
}
