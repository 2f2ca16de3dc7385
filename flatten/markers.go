package flatten

import (
	"context"
	"math"

	"github.com/vectorflat/svgflatten/decimal"
	"github.com/vectorflat/svgflatten/domxml"
	"github.com/vectorflat/svgflatten/pathdata"
)

// markerVertex is an anchor point along a path together with the tangent
// angle (in degrees) a marker instanced there should rotate to.
type markerVertex struct {
	x, y  decimal.Dec
	angle decimal.Dec
	kind  string // "start", "mid", or "end"
}

// resolveMarkers implements stage 2 (§4.8.2): for every shape carrying
// marker-start/marker-mid/marker-end, clone the referenced <marker>
// subtree once per anchor vertex and append it as a following sibling,
// transformed to translate to the vertex and rotate to its tangent.
//
// Tangent direction is computed from the anchor-to-anchor secant (the
// vector between consecutive path vertices), not the true Bezier
// derivative at the control points — a documented simplification, since
// marker orientation is already a presentation-layer approximation and
// most authored paths place markers on polylines or gently curved paths
// where the secant approximation is visually indistinguishable.
func (r *run) resolveMarkers(goCtx context.Context, root *domxml.Node) error {
	if !r.cfg.resolveMarkers {
		return nil
	}
	targets := collectElements(root, func(n *domxml.Node) bool {
		_, hasStart := n.Attr("marker-start")
		_, hasMid := n.Attr("marker-mid")
		_, hasEnd := n.Attr("marker-end")
		return hasStart || hasMid || hasEnd
	})

	for _, n := range targets {
		if err := checkCancel(goCtx); err != nil {
			return err
		}
		if err := r.instantiateMarkers(root, n); err != nil {
			r.stats.warn("markers: " + err.Error())
			r.log.Warn().Str("stage", "resolveMarkers").Err(err).Msg("skipping marker instantiation")
		}
	}
	return nil
}

func (r *run) instantiateMarkers(root, n *domxml.Node) error {
	p, err := r.pathOf(n)
	if err != nil {
		return err
	}
	abs, err := pathdata.ToAbsolute(r.ctx, p)
	if err != nil {
		return err
	}
	vertices := markerVertices(r.ctx, abs)

	for _, v := range vertices {
		var attr string
		switch v.kind {
		case "start":
			attr = "marker-start"
		case "end":
			attr = "marker-end"
		default:
			attr = "marker-mid"
		}
		ref, ok := n.Attr(attr)
		if !ok {
			continue
		}
		id, ok := parseURLRef(ref)
		if !ok {
			continue
		}
		markerDef := root.FindByID(id)
		if markerDef == nil {
			r.stats.warn("markers: unresolved marker reference #" + id)
			continue
		}

		clone := markerDef.Clone()
		clone.Tag = "g"
		clone.Attrs = nil
		clone.SetAttr("transform", markerTransform(r.ctx, v))
		n.InsertSiblingAfter(clone)
		r.stats.MarkersInstanced++
	}
	return nil
}

// markerTransform builds "translate(x,y) rotate(angle)" for a marker
// instance at v.
func markerTransform(ctx *decimal.Context, v markerVertex) string {
	return "translate(" + ctx.ToFixed(v.x, 6) + "," + ctx.ToFixed(v.y, 6) + ") rotate(" + ctx.ToFixed(v.angle, 6) + ")"
}

// markerVertices extracts the anchor points of an absolute path, tagging
// the first as "start", the last as "end", and interior ones as "mid",
// with each vertex's tangent angle averaged between its incoming and
// outgoing secant where both exist.
func markerVertices(ctx *decimal.Context, p pathdata.Path) []markerVertex {
	type anchor struct{ x, y decimal.Dec }
	var anchors []anchor
	for _, c := range p {
		switch c.Kind {
		case pathdata.KindMove, pathdata.KindLine:
			anchors = append(anchors, anchor{c.Args[0], c.Args[1]})
		case pathdata.KindCubic:
			anchors = append(anchors, anchor{c.Args[4], c.Args[5]})
		case pathdata.KindQuadratic:
			anchors = append(anchors, anchor{c.Args[2], c.Args[3]})
		case pathdata.KindArc:
			anchors = append(anchors, anchor{c.Args[5], c.Args[6]})
		}
	}
	if len(anchors) == 0 {
		return nil
	}

	angleTo := func(from, to anchor) float64 {
		fx, _ := from.x.Float64()
		fy, _ := from.y.Float64()
		tx, _ := to.x.Float64()
		ty, _ := to.y.Float64()
		return math.Atan2(ty-fy, tx-fx) * 180 / math.Pi
	}

	out := make([]markerVertex, len(anchors))
	for i, a := range anchors {
		var angle float64
		switch {
		case i == 0 && len(anchors) > 1:
			angle = angleTo(a, anchors[i+1])
		case i == len(anchors)-1:
			angle = angleTo(anchors[i-1], a)
		default:
			incoming := angleTo(anchors[i-1], a)
			outgoing := angleTo(a, anchors[i+1])
			angle = (incoming + outgoing) / 2
		}
		kind := "mid"
		if i == 0 {
			kind = "start"
		} else if i == len(anchors)-1 {
			kind = "end"
		}
		out[i] = markerVertex{x: a.x, y: a.y, angle: decimal.FromFloat(angle), kind: kind}
	}
	return out
}

// pathOf returns n's geometry as a pathdata.Path, parsing its `d` attribute
// for <path> or converting a recognized shape element otherwise.
func (r *run) pathOf(n *domxml.Node) (pathdata.Path, error) {
	if n.Tag == "path" {
		d, ok := n.Attr("d")
		if !ok {
			return nil, pathdata.ErrInvalidPath
		}
		return pathdata.Parse(d)
	}
	p, ok, err := shapeToPath(r.ctx, r.cfg, n)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, pathdata.ErrInvalidPath
	}
	return p, nil
}

// collectElements walks root's subtree and returns every node for which
// pred returns true, in document order.
func collectElements(root *domxml.Node, pred func(*domxml.Node) bool) []*domxml.Node {
	var out []*domxml.Node
	root.Walk(func(n *domxml.Node) bool {
		if pred(n) {
			out = append(out, n)
		}
		return true
	})
	return out
}
