package transform

import (
	"github.com/vectorflat/svgflatten/decimal"
	"github.com/vectorflat/svgflatten/linalg"
)

// Node is one ancestor in the CTM-building walk (§4.6, "CTM build: walks
// an ancestry list"). A node that establishes a viewport sets HasViewport
// and the associated ViewBox/PreserveAspectRatio/viewport size; every node
// may additionally carry a parsed element transform.
type Node struct {
	HasViewport bool
	ViewBox     ViewBox
	PAR         PreserveAspectRatio
	ViewportW   decimal.Dec
	ViewportH   decimal.Dec

	Transform linalg.Matrix // nil if the element has no transform attribute
}

// BuildCTM composes the current transform matrix for an element given its
// ancestry, outermost first. At each viewport node it multiplies in the
// viewBox*preserveAspectRatio matrix; at every node it multiplies in the
// parsed element transform, if present.
func BuildCTM(ctx *decimal.Context, ancestry []Node) (linalg.Matrix, error) {
	ctm, err := linalg.Identity(3)
	if err != nil {
		return nil, err
	}
	var cur linalg.Matrix = ctm

	for _, n := range ancestry {
		if n.HasViewport {
			vbm, err := ViewBoxMatrix(ctx, n.ViewBox, n.PAR, n.ViewportW, n.ViewportH)
			if err != nil {
				return nil, err
			}
			cur, err = linalg.Mul(ctx, cur, vbm)
			if err != nil {
				return nil, err
			}
		}
		if n.Transform != nil {
			next, err := linalg.Mul(ctx, cur, n.Transform)
			if err != nil {
				return nil, err
			}
			cur = next
		}
	}

	return cur, nil
}
