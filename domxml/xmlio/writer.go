package xmlio

import (
	"io"
	"strings"

	"github.com/vectorflat/svgflatten/domxml"
)

// Write serializes n and its subtree as XML text, in document order. Each
// element's attributes are emitted in the node's own Attrs order — DOM
// iteration order — not sorted or namespace-grouped (§4.10). Attribute
// values are escaped for '<', '>', '&', and double quotes.
func Write(w io.Writer, n *domxml.Node) error {
	var sb strings.Builder
	writeNode(&sb, n)
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeNode(sb *strings.Builder, n *domxml.Node) {
	sb.WriteByte('<')
	sb.WriteString(n.Tag)
	for _, a := range n.Attrs {
		sb.WriteByte(' ')
		sb.WriteString(a.Name)
		sb.WriteString(`="`)
		sb.WriteString(escapeAttr(a.Value))
		sb.WriteByte('"')
	}

	if len(n.Children) == 0 && n.Text == "" {
		sb.WriteString("/>")
		return
	}

	sb.WriteByte('>')
	if n.Text != "" {
		sb.WriteString(escapeText(n.Text))
	}
	for _, c := range n.Children {
		writeNode(sb, c)
	}
	sb.WriteString("</")
	sb.WriteString(n.Tag)
	sb.WriteByte('>')
}

func escapeAttr(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
	)
	return r.Replace(s)
}

func escapeText(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
	)
	return r.Replace(s)
}
