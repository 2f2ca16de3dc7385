package serialize

import (
	"io"

	"github.com/vectorflat/svgflatten/domxml"
	"github.com/vectorflat/svgflatten/domxml/xmlio"
)

// Write re-emits root as XML text. This is a thin pass-through to
// domxml/xmlio.Write: by the time a document reaches serialize, every
// numeric attribute (d, x1/y1/..., r, etc.) has already been written as a
// precision-formatted string by the flatten stages via FormatNumber/
// PathToD, so the XML writer itself needs no numeric awareness.
func Write(w io.Writer, root *domxml.Node) error {
	return xmlio.Write(w, root)
}
