package shapes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vectorflat/svgflatten/decimal"
	"github.com/vectorflat/svgflatten/pathdata"
	"github.com/vectorflat/svgflatten/shapes"
)

func TestRectSharpFourVertexClosed(t *testing.T) {
	ctx := decimal.Default()
	p, err := shapes.Rect(ctx, decimal.Zero, decimal.Zero, decimal.FromInt(100), decimal.FromInt(50), decimal.Zero, decimal.Zero, false)
	require.NoError(t, err)
	require.Len(t, p, 5)
	assert.Equal(t, pathdata.KindMove, p[0].Kind)
	assert.Equal(t, pathdata.KindClose, p[4].Kind)
}

func TestRectRoundedClampsRadii(t *testing.T) {
	// Example 2: rect(0,0,100,50,rx=60,ry=30) clamps rx->50, ry->25, path
	// starts at (50,0).
	ctx := decimal.Default()
	p, err := shapes.Rect(ctx, decimal.Zero, decimal.Zero, decimal.FromInt(100), decimal.FromInt(50), decimal.FromInt(60), decimal.FromInt(30), false)
	require.NoError(t, err)
	require.Equal(t, pathdata.KindMove, p[0].Kind)
	assert.True(t, ctx.Equals(p[0].Args[0], decimal.FromInt(50)))
	assert.True(t, ctx.Equals(p[0].Args[1], decimal.Zero))

	cubics := 0
	for _, c := range p {
		if c.Kind == pathdata.KindCubic {
			cubics++
		}
	}
	assert.Equal(t, 4, cubics)
}

func TestRectRoundedUseArcsEmitsArcs(t *testing.T) {
	ctx := decimal.Default()
	p, err := shapes.Rect(ctx, decimal.Zero, decimal.Zero, decimal.FromInt(100), decimal.FromInt(50), decimal.FromInt(10), decimal.FromInt(10), true)
	require.NoError(t, err)
	arcs := 0
	for _, c := range p {
		if c.Kind == pathdata.KindArc {
			arcs++
		}
	}
	assert.Equal(t, 4, arcs)
}

func TestCircleLegacyCardinalPoints(t *testing.T) {
	ctx := decimal.Default()
	cx, cy, r := decimal.FromInt(100), decimal.FromInt(100), decimal.FromInt(50)
	p, err := shapes.CircleLegacy(ctx, cx, cy, r)
	require.NoError(t, err)
	require.Len(t, p, 6) // M + 4 cubics + Z

	assert.True(t, ctx.Equals(p[0].Args[0], decimal.FromInt(150)))
	assert.True(t, ctx.Equals(p[0].Args[1], decimal.FromInt(100)))

	// Endpoint of first cubic is the bottom cardinal point (cx, cy+r).
	assert.True(t, ctx.Equals(p[1].Args[4], decimal.FromInt(100)))
	assert.True(t, ctx.Equals(p[1].Args[5], decimal.FromInt(150)))
}

func TestCircleNArcRoundsUpToMultipleOf4(t *testing.T) {
	ctx := decimal.Default()
	p, err := shapes.CircleNArc(ctx, decimal.Zero, decimal.Zero, decimal.FromInt(10), 5)
	require.NoError(t, err)
	// n=5 rounds up to 8; path is M + 8 cubics + Z.
	require.Len(t, p, 10)
}

func TestCircleNArcCardinalPointsWithinTolerance(t *testing.T) {
	ctx := decimal.Default()
	cx, cy, r := decimal.FromInt(100), decimal.FromInt(100), decimal.FromInt(50)
	p, err := shapes.CircleNArc(ctx, cx, cy, r, 8)
	require.NoError(t, err)

	tol := decimal.MustParse("1e-9")
	assert.True(t, ctx.EqualsWithin(p[0].Args[0], decimal.FromInt(150), tol))
	assert.True(t, ctx.EqualsWithin(p[0].Args[1], decimal.FromInt(100), tol))
}

func TestLineTwoCommands(t *testing.T) {
	p := shapes.Line(decimal.Zero, decimal.Zero, decimal.FromInt(10), decimal.FromInt(10))
	require.Len(t, p, 2)
	assert.Equal(t, pathdata.KindMove, p[0].Kind)
	assert.Equal(t, pathdata.KindLine, p[1].Kind)
}

func TestPolygonClosesWithZ(t *testing.T) {
	pts := []shapes.Point2D{
		{X: decimal.Zero, Y: decimal.Zero},
		{X: decimal.FromInt(10), Y: decimal.Zero},
		{X: decimal.FromInt(10), Y: decimal.FromInt(10)},
	}
	p, err := shapes.Polygon(pts)
	require.NoError(t, err)
	require.Len(t, p, 4)
	assert.Equal(t, pathdata.KindClose, p[3].Kind)
}

func TestPolylineRequiresTwoPoints(t *testing.T) {
	_, err := shapes.Polyline([]shapes.Point2D{{X: decimal.Zero, Y: decimal.Zero}})
	require.ErrorIs(t, err, shapes.ErrDegenerateShape)
}
