package polygon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vectorflat/svgflatten/decimal"
	"github.com/vectorflat/svgflatten/pathdata"
	"github.com/vectorflat/svgflatten/polygon"
)

func square(x1, y1, x2, y2 decimal.Dec) polygon.Polygon {
	return polygon.Polygon{{X: x1, Y: y1}, {X: x2, Y: y1}, {X: x2, Y: y2}, {X: x1, Y: y2}}
}

func TestAreaOfTenByTenSquare(t *testing.T) {
	ctx := decimal.Default()
	p := square(decimal.Zero, decimal.Zero, decimal.FromInt(10), decimal.FromInt(10))
	area, err := polygon.Area(ctx, p)
	require.NoError(t, err)
	assert.True(t, ctx.Equals(area, decimal.FromInt(100)))
}

func TestPointInPolygonInsideAndOutside(t *testing.T) {
	ctx := decimal.Default()
	p := square(decimal.Zero, decimal.Zero, decimal.FromInt(10), decimal.FromInt(10))
	tol := decimal.MustParse("1e-9")

	assert.True(t, polygon.PointInPolygon(ctx, p, polygon.Point{X: decimal.FromInt(5), Y: decimal.FromInt(5)}, tol))
	assert.False(t, polygon.PointInPolygon(ctx, p, polygon.Point{X: decimal.FromInt(20), Y: decimal.FromInt(20)}, tol))
}

func TestIntersectionOfOverlappingSquares(t *testing.T) {
	// Example 5: subject (0,0)-(10,10), clip (5,5)-(15,15) -> area 25.
	ctx := decimal.Default()
	subject := square(decimal.Zero, decimal.Zero, decimal.FromInt(10), decimal.FromInt(10))
	clip := square(decimal.FromInt(5), decimal.FromInt(5), decimal.FromInt(15), decimal.FromInt(15))

	inter, err := polygon.Intersection(ctx, subject, clip)
	require.NoError(t, err)

	area, err := polygon.Area(ctx, inter)
	require.NoError(t, err)
	tol := decimal.MustParse("1e-10")
	assert.True(t, ctx.EqualsWithin(area, decimal.FromInt(25), tol))
}

func TestIntersectionDegenerateWhenDisjoint(t *testing.T) {
	ctx := decimal.Default()
	subject := square(decimal.Zero, decimal.Zero, decimal.FromInt(1), decimal.FromInt(1))
	clip := square(decimal.FromInt(100), decimal.FromInt(100), decimal.FromInt(101), decimal.FromInt(101))
	_, err := polygon.Intersection(ctx, subject, clip)
	require.ErrorIs(t, err, polygon.ErrDegenerateIntersection)
}

func TestMinDistanceToPolygonEdgeOnEdgeIsZero(t *testing.T) {
	ctx := decimal.Default()
	p := square(decimal.Zero, decimal.Zero, decimal.FromInt(10), decimal.FromInt(10))
	d := polygon.MinDistanceToPolygonEdge(ctx, p, polygon.Point{X: decimal.FromInt(5), Y: decimal.Zero})
	tol := decimal.MustParse("1e-9")
	assert.True(t, ctx.EqualsWithin(d, decimal.Zero, tol))
}

func TestSampleLineSegment(t *testing.T) {
	ctx := decimal.Default()
	p, err := pathdata.Parse("M0 0 L10 0")
	require.NoError(t, err)
	abs, err := pathdata.ToAbsolute(ctx, p)
	require.NoError(t, err)

	poly, err := polygon.Sample(ctx, abs, 4)
	require.NoError(t, err)
	require.Len(t, poly, 2)
	assert.True(t, ctx.Equals(poly[1].X, decimal.FromInt(10)))
}

func TestSampleCubicProducesSegmentsPlusOnePoints(t *testing.T) {
	ctx := decimal.Default()
	p, err := pathdata.Parse("M0 0 C0 10 10 10 10 0")
	require.NoError(t, err)
	abs, err := pathdata.ToAbsolute(ctx, p)
	require.NoError(t, err)

	poly, err := polygon.Sample(ctx, abs, 8)
	require.NoError(t, err)
	require.Len(t, poly, 9) // M + 8 sampled cubic points
}

func TestDifferenceReturnsFragmentsOutsideClipEdges(t *testing.T) {
	ctx := decimal.Default()
	subject := square(decimal.Zero, decimal.Zero, decimal.FromInt(10), decimal.FromInt(10))
	clip := square(decimal.FromInt(5), decimal.FromInt(5), decimal.FromInt(15), decimal.FromInt(15))
	frags := polygon.Difference(ctx, subject, clip)
	assert.NotEmpty(t, frags)
}
