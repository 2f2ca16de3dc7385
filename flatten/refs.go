package flatten

import (
	"strings"

	"github.com/vectorflat/svgflatten/domxml"
)

// parseURLRef extracts the id from a "url(#id)" reference, as used by
// fill, stroke, clip-path, mask, and marker-* attributes.
func parseURLRef(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "url(") || !strings.HasSuffix(s, ")") {
		return "", false
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(s, "url("), ")")
	inner = strings.TrimSpace(inner)
	inner = strings.Trim(inner, `'"`)
	return parseFragment(inner)
}

// parseFragment extracts the id from a bare "#id" fragment reference, as
// used by href/xlink:href.
func parseFragment(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		return "", false
	}
	id := strings.TrimPrefix(s, "#")
	if id == "" {
		return "", false
	}
	return id, true
}

// hrefAttr reads an element's href, falling back to the legacy
// xlink:href spelling still emitted by most SVG authoring tools.
func hrefAttr(n *domxml.Node) (string, bool) {
	if v, ok := n.Attr("href"); ok {
		return v, ok
	}
	return n.Attr("xlink:href")
}
