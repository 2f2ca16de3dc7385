package flatten

import (
	"context"

	"github.com/vectorflat/svgflatten/decimal"
	"github.com/vectorflat/svgflatten/domxml"
	"github.com/vectorflat/svgflatten/linalg"
	"github.com/vectorflat/svgflatten/pathdata"
	"github.com/vectorflat/svgflatten/serialize"
	"github.com/vectorflat/svgflatten/transform"
	"github.com/vectorflat/svgflatten/verify"
)

var shapeAttrNames = []string{
	"x", "y", "width", "height", "rx", "ry",
	"cx", "cy", "r", "x1", "y1", "x2", "y2", "points",
}

// flattenTransforms implements stage 7 (§4.6, §4.8.7): the CTM is
// accumulated down the tree (viewBox*preserveAspectRatio at every node
// that establishes a viewport, the node's own parsed transform at every
// node), every geometry-bearing element is rewritten as an absolute
// <path> with that CTM baked into its coordinates, and the transform
// attribute is stripped from every element regardless of whether it
// carried geometry.
//
// A transform attribute that fails to parse is treated as absent for
// that element (the element and its descendants proceed with the
// ancestry CTM they would have had otherwise) and a warning is recorded.
// A failure while baking one element's geometry is likewise recorded as a
// warning and that element is left unbaked (in strict mode a failed
// verification aborts the stage); only a failure inside BuildCTM itself
// bubbles out.
func (r *run) flattenTransforms(goCtx context.Context, root *domxml.Node) error {
	if !r.cfg.flattenTransform {
		return nil
	}
	return r.walkTransforms(goCtx, root, nil)
}

func (r *run) walkTransforms(goCtx context.Context, n *domxml.Node, ancestry []transform.Node) error {
	if err := checkCancel(goCtx); err != nil {
		return err
	}

	node := transform.Node{}
	if n.Tag == "svg" {
		if vb, ok := n.Attr("viewBox"); ok {
			parsed, err := transform.ParseViewBox(vb)
			if err != nil {
				r.stats.warn("transforms: " + err.Error())
				r.log.Warn().Str("stage", "flattenTransforms").Err(err).Msg("ignoring malformed viewBox")
			} else {
				node.HasViewport = true
				node.ViewBox = parsed
				node.PAR = transform.ParsePreserveAspectRatio(n.AttrOr("preserveAspectRatio", ""))
				node.ViewportW = numAttr(n, "width", parsed.Width)
				node.ViewportH = numAttr(n, "height", parsed.Height)
			}
		}
	}
	if t, ok := n.Attr("transform"); ok {
		m, err := parseTransformAttr(r.ctx, t)
		if err != nil {
			r.stats.warn("transforms: " + err.Error())
			r.log.Warn().Str("stage", "flattenTransforms").Err(err).Msg("treating unparsable transform as identity")
		} else {
			node.Transform = m
		}
	}

	extended := make([]transform.Node, len(ancestry)+1)
	copy(extended, ancestry)
	extended[len(ancestry)] = node

	ctm, err := transform.BuildCTM(r.ctx, extended)
	if err != nil {
		return err
	}

	if isGeometryElement(n) {
		if err := r.bakeElement(n, ctm); err != nil {
			if err == ErrVerificationFailed {
				return err
			}
			r.stats.warn("transforms: " + err.Error())
			r.log.Warn().Str("stage", "flattenTransforms").Str("tag", n.Tag).Err(err).Msg("skipping element, leaving geometry unbaked")
		} else {
			r.stats.TransformsBaked++
		}
	}

	n.RemoveAttr("transform")

	children := append([]*domxml.Node(nil), n.Children...)
	for _, c := range children {
		if err := r.walkTransforms(goCtx, c, extended); err != nil {
			return err
		}
	}
	return nil
}

func isGeometryElement(n *domxml.Node) bool {
	switch n.Tag {
	case "rect", "circle", "ellipse", "line", "polyline", "polygon", "path":
		return true
	}
	return false
}

// bakeElement rewrites n in place as a <path> whose `d` is n's own
// geometry with ctm baked in.
func (r *run) bakeElement(n *domxml.Node, ctm linalg.Matrix) error {
	p, err := r.pathOf(n)
	if err != nil {
		return err
	}
	abs, err := pathdata.ToAbsolute(r.ctx, p)
	if err != nil {
		return err
	}

	tol := verify.DefaultTolerance(int32(r.cfg.workingPrecision))
	switch n.Tag {
	case "circle":
		cx, cy, rr := numAttr(n, "cx", decimal.Zero), numAttr(n, "cy", decimal.Zero), numAttr(n, "r", decimal.Zero)
		res := verify.CheckCircleCardinalPoints(r.ctx, abs, cx, cy, rr, tol)
		if err := r.recordVerification("shape", res); err != nil {
			return err
		}
	case "rect":
		x, y := numAttr(n, "x", decimal.Zero), numAttr(n, "y", decimal.Zero)
		w, h := numAttr(n, "width", decimal.Zero), numAttr(n, "height", decimal.Zero)
		if r.ctx.IsZero(numAttr(n, "rx", decimal.Zero)) && r.ctx.IsZero(numAttr(n, "ry", decimal.Zero)) {
			res := verify.CheckRectCorners(r.ctx, abs, x, y, w, h, tol)
			if err := r.recordVerification("shape", res); err != nil {
				return err
			}
		}
	}

	baked, err := transform.Bake(r.ctx, ctm, abs)
	if err != nil {
		return err
	}

	n.Tag = "path"
	for _, name := range shapeAttrNames {
		n.RemoveAttr(name)
	}
	n.SetAttr("d", serialize.PathToD(r.ctx, baked, r.cfg.precision))
	return nil
}
