package xmlio_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vectorflat/svgflatten/domxml/xmlio"
)

func TestParseBuildsTreeWithAttributesAndChildren(t *testing.T) {
	src := `<svg width="100" height="100"><rect x="0" y="0" width="10" height="10"/></svg>`
	root, err := xmlio.Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, "svg", root.Tag)
	w, _ := root.Attr("width")
	assert.Equal(t, "100", w)
	require.Len(t, root.Children, 1)
	assert.Equal(t, "rect", root.Children[0].Tag)
}

func TestParseResolvesDefaultNamespaceToBareTagNames(t *testing.T) {
	src := `<svg xmlns="http://www.w3.org/2000/svg"><circle cx="0" cy="0" r="1"/></svg>`
	root, err := xmlio.Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, "svg", root.Tag)
	require.Len(t, root.Children, 1)
	assert.Equal(t, "circle", root.Children[0].Tag)
}

func TestParsePreservesVendorNamespacePrefix(t *testing.T) {
	src := `<svg xmlns:inkscape="http://www.inkscape.org/namespaces/inkscape"><g inkscape:label="Layer 1"/></svg>`
	root, err := xmlio.Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, root.Children, 1)
	v, ok := root.Children[0].Attr("inkscape:label")
	require.True(t, ok)
	assert.Equal(t, "Layer 1", v)
}

func TestWriteEscapesAttributeValues(t *testing.T) {
	src := `<rect label="a &amp; b &lt;c&gt; &quot;d&quot;"/>`
	root, err := xmlio.Parse(strings.NewReader(src))
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, xmlio.Write(&sb, root))
	out := sb.String()
	assert.Contains(t, out, `&amp;`)
	assert.Contains(t, out, `&lt;c&gt;`)
	assert.Contains(t, out, `&quot;d&quot;`)
}

func TestWriteSelfClosesLeafElements(t *testing.T) {
	src := `<svg><rect x="0"/></svg>`
	root, err := xmlio.Parse(strings.NewReader(src))
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, xmlio.Write(&sb, root))
	assert.Contains(t, sb.String(), `<rect x="0"/>`)
}

func TestRoundTripPreservesAttributeOrder(t *testing.T) {
	src := `<rect z="1" a="2" m="3"/>`
	root, err := xmlio.Parse(strings.NewReader(src))
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, xmlio.Write(&sb, root))

	zIdx := strings.Index(sb.String(), "z=")
	aIdx := strings.Index(sb.String(), "a=")
	mIdx := strings.Index(sb.String(), "m=")
	assert.True(t, zIdx < aIdx)
	assert.True(t, aIdx < mIdx)
}
