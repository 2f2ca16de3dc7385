package pathdata_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vectorflat/svgflatten/decimal"
	"github.com/vectorflat/svgflatten/pathdata"
)

func TestToAbsoluteRelativeLine(t *testing.T) {
	ctx := decimal.Default()
	p, err := pathdata.Parse("M10,10 l5,5")
	require.NoError(t, err)

	abs, err := pathdata.ToAbsolute(ctx, p)
	require.NoError(t, err)
	require.Len(t, abs, 2)

	assert.True(t, abs[1].Abs)
	assert.True(t, ctx.Equals(abs[1].Args[0], decimal.FromInt(15)))
	assert.True(t, ctx.Equals(abs[1].Args[1], decimal.FromInt(15)))
}

func TestToAbsoluteHorizontalVertical(t *testing.T) {
	ctx := decimal.Default()
	p, err := pathdata.Parse("M0,0 H10 V20")
	require.NoError(t, err)

	abs, err := pathdata.ToAbsolute(ctx, p)
	require.NoError(t, err)
	require.Len(t, abs, 3)

	assert.Equal(t, pathdata.KindLine, abs[1].Kind)
	assert.True(t, ctx.Equals(abs[1].Args[0], decimal.FromInt(10)))
	assert.True(t, ctx.Equals(abs[1].Args[1], decimal.Zero))

	assert.Equal(t, pathdata.KindLine, abs[2].Kind)
	assert.True(t, ctx.Equals(abs[2].Args[0], decimal.FromInt(10)))
	assert.True(t, ctx.Equals(abs[2].Args[1], decimal.FromInt(20)))
}

func TestToAbsoluteSmoothCubicReflection(t *testing.T) {
	ctx := decimal.Default()
	p, err := pathdata.Parse("M0,0 C0,10 10,10 10,0 S20,-10 20,0")
	require.NoError(t, err)

	abs, err := pathdata.ToAbsolute(ctx, p)
	require.NoError(t, err)
	require.Len(t, abs, 3)

	// S's implicit first control is the reflection of C's second control
	// (10,10) through the current point (10,0): (10, -10).
	assert.Equal(t, pathdata.KindCubic, abs[2].Kind)
	assert.True(t, ctx.Equals(abs[2].Args[0], decimal.FromInt(10)))
	assert.True(t, ctx.Equals(abs[2].Args[1], decimal.FromInt(-10)))
}

func TestToAbsoluteSmoothQuadraticNoChainDegeneratesToCurrent(t *testing.T) {
	ctx := decimal.Default()
	p, err := pathdata.Parse("M0,0 L10,0 T20,0")
	require.NoError(t, err)

	abs, err := pathdata.ToAbsolute(ctx, p)
	require.NoError(t, err)
	require.Len(t, abs, 3)

	assert.Equal(t, pathdata.KindQuadratic, abs[2].Kind)
	assert.True(t, ctx.Equals(abs[2].Args[0], decimal.FromInt(10)))
	assert.True(t, ctx.Equals(abs[2].Args[1], decimal.Zero))
}

func TestToAbsoluteCloseRestoresSubpathStart(t *testing.T) {
	ctx := decimal.Default()
	p, err := pathdata.Parse("M5,5 L10,10 Z l1,1")
	require.NoError(t, err)

	abs, err := pathdata.ToAbsolute(ctx, p)
	require.NoError(t, err)
	require.Len(t, abs, 4)

	// The l after Z is relative to the restored subpath start (5,5).
	assert.True(t, ctx.Equals(abs[3].Args[0], decimal.FromInt(6)))
}

func TestToAbsoluteArcPreservesFlags(t *testing.T) {
	ctx := decimal.Default()
	p, err := pathdata.Parse("M0,0 a5,5 0 1 0 10,0")
	require.NoError(t, err)

	abs, err := pathdata.ToAbsolute(ctx, p)
	require.NoError(t, err)
	require.Len(t, abs, 2)
	require.Equal(t, pathdata.KindArc, abs[1].Kind)
	assert.True(t, ctx.Equals(abs[1].Args[3], decimal.FromInt(1)))
	assert.True(t, ctx.Equals(abs[1].Args[4], decimal.Zero))
	assert.True(t, ctx.Equals(abs[1].Args[5], decimal.FromInt(10)))
	assert.True(t, ctx.Equals(abs[1].Args[6], decimal.Zero))
}

func TestToCubicsUpgradesLineAndQuadratic(t *testing.T) {
	ctx := decimal.Default()
	p, err := pathdata.Parse("M0,0 L9,0 Q9,9 0,9")
	require.NoError(t, err)

	abs, err := pathdata.ToAbsolute(ctx, p)
	require.NoError(t, err)

	cubics, err := pathdata.ToCubics(ctx, abs)
	require.NoError(t, err)
	require.Len(t, cubics, 3)

	assert.Equal(t, pathdata.KindMove, cubics[0].Kind)
	assert.Equal(t, pathdata.KindCubic, cubics[1].Kind)
	assert.Equal(t, pathdata.KindCubic, cubics[2].Kind)

	// The line's endpoint must be preserved exactly.
	assert.True(t, ctx.Equals(cubics[1].Args[4], decimal.FromInt(9)))
	assert.True(t, ctx.Equals(cubics[1].Args[5], decimal.Zero))
}

func TestToCubicsLeavesArcUntouched(t *testing.T) {
	ctx := decimal.Default()
	p, err := pathdata.Parse("M0,0 A5 5 0 1 0 10 0")
	require.NoError(t, err)

	abs, err := pathdata.ToAbsolute(ctx, p)
	require.NoError(t, err)

	cubics, err := pathdata.ToCubics(ctx, abs)
	require.NoError(t, err)
	require.Len(t, cubics, 2)
	assert.Equal(t, pathdata.KindArc, cubics[1].Kind)
}

// ToAbsolute is a fixed point on an already-absolute path: running it a
// second time must reproduce the exact same command sequence, not merely
// an equivalent one. cmp.Diff gives a command-by-command diff on failure
// instead of a single opaque "not equal".
func TestToAbsoluteIsIdempotent(t *testing.T) {
	ctx := decimal.Default()
	p, err := pathdata.Parse("M5,5 L10,10 C10,20 20,20 20,10 Q25,5 30,10 Z")
	require.NoError(t, err)

	once, err := pathdata.ToAbsolute(ctx, p)
	require.NoError(t, err)
	twice, err := pathdata.ToAbsolute(ctx, once)
	require.NoError(t, err)

	if diff := cmp.Diff(once, twice); diff != "" {
		t.Fatalf("ToAbsolute not idempotent (-once +twice):\n%s", diff)
	}
}
