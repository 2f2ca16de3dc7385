package svgflatten_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	svgflatten "github.com/vectorflat/svgflatten"
)

func TestFlattenCircleBake(t *testing.T) {
	src := `<svg><circle cx="100" cy="100" r="50" transform="translate(10,20) scale(2)"/></svg>`
	out, stats, err := svgflatten.Flatten(context.Background(), src, svgflatten.Config{})
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TransformsBaked)
	assert.Contains(t, out, `<path`)
	assert.NotContains(t, out, "transform=")
	assert.Contains(t, out, "M 310 220")
}

func TestFlattenNestedGroupTransforms(t *testing.T) {
	src := `<svg><g transform="translate(10,0)"><path d="M0 0 L10 0" transform="scale(2)"/></g></svg>`
	out, _, err := svgflatten.Flatten(context.Background(), src, svgflatten.Config{})
	require.NoError(t, err)
	assert.Contains(t, out, "M 10 0 L 30 0")
	assert.NotContains(t, out, "transform=")
}

func TestFlattenClipPathIntersection(t *testing.T) {
	src := `<svg>
		<defs><clipPath id="c"><rect x="5" y="5" width="10" height="10"/></clipPath></defs>
		<rect x="0" y="0" width="10" height="10" clip-path="url(#c)"/>
	</svg>`
	out, stats, err := svgflatten.Flatten(context.Background(), src, svgflatten.Config{})
	require.NoError(t, err)
	assert.Equal(t, 1, stats.ClipsApplied)
	assert.Contains(t, out, "<path")
}

func TestFlattenUnresolvedUseIsSkippedWithWarning(t *testing.T) {
	src := `<svg><use href="#missing"/></svg>`
	_, stats, err := svgflatten.Flatten(context.Background(), src, svgflatten.Config{})
	require.NoError(t, err)
	require.NotEmpty(t, stats.Warnings)
	assert.True(t, strings.Contains(stats.Warnings[0], "use"))
}

func TestFlattenUseCycleIsReportedNotInfinite(t *testing.T) {
	src := `<svg><g id="loop"><use href="#loop"/></g></svg>`
	_, stats, err := svgflatten.Flatten(context.Background(), src, svgflatten.Config{})
	require.NoError(t, err)
	require.NotEmpty(t, stats.Warnings)
	found := false
	for _, w := range stats.Warnings {
		if strings.Contains(w, "cycle") {
			found = true
		}
	}
	assert.True(t, found, "expected a reference-cycle warning, got %v", stats.Warnings)
}

func TestFlattenRadialGradientRadiusUsesColumnNorm(t *testing.T) {
	// gradientTransform="matrix(2,0,1,1,0,0)" is a shear, not an
	// axis-aligned scale: its row norms (sqrt(a²+b²), sqrt(c²+d²)) and
	// column norms (sqrt(a²+c²), sqrt(b²+d²)) differ, so this
	// distinguishes the corrected column-norm scaling (§4.8.6) from the
	// row-norm bug. Average column norm here is (2+sqrt(2))/2, so the
	// baked r is 1*that ≈ 1.707107.
	src := `<svg><defs><radialGradient id="g" cx="0" cy="0" r="1" gradientTransform="matrix(2,0,1,1,0,0)"/></defs>
		<rect x="0" y="0" width="1" height="1" fill="url(#g)"/></svg>`
	out, stats, err := svgflatten.Flatten(context.Background(), src, svgflatten.Config{})
	require.NoError(t, err)
	assert.Equal(t, 1, stats.GradientsBaked)
	assert.Contains(t, out, `r="1.707107"`)
	assert.NotContains(t, out, "gradientTransform=")
}

func TestFlattenRemovesUnusedDefs(t *testing.T) {
	src := `<svg><defs><linearGradient id="unused"/></defs><rect x="0" y="0" width="1" height="1"/></svg>`
	_, stats, err := svgflatten.Flatten(context.Background(), src, svgflatten.Config{})
	require.NoError(t, err)
	assert.Equal(t, 1, stats.DefsRemoved)
}
