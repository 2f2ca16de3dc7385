package pathdata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vectorflat/svgflatten/decimal"
	"github.com/vectorflat/svgflatten/pathdata"
)

func TestParseImplicitNegativeSeparator(t *testing.T) {
	// "M0.8-2.9 10 20" -> M(0.8,-2.9) then implicit L(10,20).
	p, err := pathdata.Parse("M0.8-2.9 10 20")
	require.NoError(t, err)
	require.Len(t, p, 2)

	assert.Equal(t, pathdata.KindMove, p[0].Kind)
	assert.True(t, p[0].Abs)
	ctx := decimal.Default()
	assert.True(t, ctx.Equals(p[0].Args[0], decimal.MustParse("0.8")))
	assert.True(t, ctx.Equals(p[0].Args[1], decimal.MustParse("-2.9")))

	assert.Equal(t, pathdata.KindLine, p[1].Kind)
	assert.True(t, ctx.Equals(p[1].Args[0], decimal.FromInt(10)))
	assert.True(t, ctx.Equals(p[1].Args[1], decimal.FromInt(20)))
}

func TestParseCommaAndWhitespaceSeparators(t *testing.T) {
	p, err := pathdata.Parse("M10,20 L30 40")
	require.NoError(t, err)
	require.Len(t, p, 2)
	ctx := decimal.Default()
	assert.True(t, ctx.Equals(p[1].Args[0], decimal.FromInt(30)))
	assert.True(t, ctx.Equals(p[1].Args[1], decimal.FromInt(40)))
}

func TestParseRelativeCommands(t *testing.T) {
	p, err := pathdata.Parse("m10,10 l5,5")
	require.NoError(t, err)
	require.Len(t, p, 2)
	assert.False(t, p[0].Abs)
	assert.False(t, p[1].Abs)
}

func TestParseClosePathNoArgs(t *testing.T) {
	p, err := pathdata.Parse("M0 0 L10 10 Z")
	require.NoError(t, err)
	require.Len(t, p, 3)
	assert.Equal(t, pathdata.KindClose, p[2].Kind)
	assert.Empty(t, p[2].Args)
}

func TestParseIncompleteTrailingGroupDropped(t *testing.T) {
	// A trailing "10" after a full L group cannot form another L pair and
	// is silently dropped rather than erroring (§4.4).
	p, err := pathdata.Parse("M0 0 L10 10 20")
	require.NoError(t, err)
	require.Len(t, p, 2)
}

func TestParseExponentNotation(t *testing.T) {
	p, err := pathdata.Parse("M1e2 2E-1")
	require.NoError(t, err)
	require.Len(t, p, 1)
	ctx := decimal.Default()
	assert.True(t, ctx.Equals(p[0].Args[0], decimal.MustParse("100")))
	assert.True(t, ctx.Equals(p[0].Args[1], decimal.MustParse("0.2")))
}

func TestParseImplicitLineAfterMove(t *testing.T) {
	p, err := pathdata.Parse("M0 0 1 1 2 2")
	require.NoError(t, err)
	require.Len(t, p, 3)
	assert.Equal(t, pathdata.KindMove, p[0].Kind)
	assert.Equal(t, pathdata.KindLine, p[1].Kind)
	assert.Equal(t, pathdata.KindLine, p[2].Kind)
}

func TestParseArcFlags(t *testing.T) {
	p, err := pathdata.Parse("M0 0 A5 5 0 1 0 10 0")
	require.NoError(t, err)
	require.Len(t, p, 2)
	require.Equal(t, pathdata.KindArc, p[1].Kind)
	require.Len(t, p[1].Args, 7)
}

func TestParseInvalidLeadingToken(t *testing.T) {
	_, err := pathdata.Parse("10 20")
	require.ErrorIs(t, err, pathdata.ErrInvalidPath)
}
