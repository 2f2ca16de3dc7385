package flatten

import (
	"strings"

	"github.com/vectorflat/svgflatten/decimal"
	"github.com/vectorflat/svgflatten/domxml"
	"github.com/vectorflat/svgflatten/pathdata"
	"github.com/vectorflat/svgflatten/polygon"
	"github.com/vectorflat/svgflatten/serialize"
	"github.com/vectorflat/svgflatten/shapes"
)

// polygonToD renders a sampled polygon as a closed "d" path: one M to the
// first vertex, an L per remaining vertex, and a trailing Z. This is the
// form stage 5 (applyClipPaths) emits for a clipped element, per §4.8.5 —
// the clip result is a polyline tracing the intersection, not a re-fit
// curve.
func polygonToD(ctx *decimal.Context, p polygon.Polygon, precision int32) string {
	if len(p) == 0 {
		return ""
	}
	var tokens []string
	tokens = append(tokens, "M", serialize.FormatNumber(ctx, p[0].X, precision), serialize.FormatNumber(ctx, p[0].Y, precision))
	for _, v := range p[1:] {
		tokens = append(tokens, "L", serialize.FormatNumber(ctx, v.X, precision), serialize.FormatNumber(ctx, v.Y, precision))
	}
	tokens = append(tokens, "Z")
	return strings.Join(tokens, " ")
}

// numAttr parses the named attribute as a Dec, falling back to def when the
// attribute is absent or malformed. Most SVG presentation attributes (x, y,
// rx, cx...) are optional with a documented zero-ish default, so a parse
// failure here is treated the same as absence rather than propagated — the
// geometry stages that need a hard failure (path `d` itself) parse it
// separately via pathdata.Parse.
func numAttr(n *domxml.Node, name string, def decimal.Dec) decimal.Dec {
	v, ok := n.Attr(name)
	if !ok {
		return def
	}
	d, err := decimal.Parse(v)
	if err != nil {
		return def
	}
	return d
}

// shapeToPath converts a recognized shape element (rect, circle, ellipse,
// line, polyline, polygon) into a pathdata.Path, per C5. It returns
// (nil, false) for elements this function does not know how to convert
// (including <path> itself, which already carries a `d`).
func shapeToPath(ctx *decimal.Context, cfg *config, n *domxml.Node) (pathdata.Path, bool, error) {
	zero := decimal.Zero
	switch n.Tag {
	case "rect":
		x := numAttr(n, "x", zero)
		y := numAttr(n, "y", zero)
		w := numAttr(n, "width", zero)
		h := numAttr(n, "height", zero)
		rx := numAttr(n, "rx", zero)
		ry := numAttr(n, "ry", zero)
		if ctx.IsZero(rx) && !ctx.IsZero(ry) {
			rx = ry
		}
		if ctx.IsZero(ry) && !ctx.IsZero(rx) {
			ry = rx
		}
		p, err := shapes.Rect(ctx, x, y, w, h, rx, ry, false)
		return p, true, err

	case "circle":
		cx := numAttr(n, "cx", zero)
		cy := numAttr(n, "cy", zero)
		r := numAttr(n, "r", zero)
		p, err := shapes.CircleNArc(ctx, cx, cy, r, cfg.bezierArcs)
		return p, true, err

	case "ellipse":
		cx := numAttr(n, "cx", zero)
		cy := numAttr(n, "cy", zero)
		rx := numAttr(n, "rx", zero)
		ry := numAttr(n, "ry", zero)
		p, err := shapes.EllipseNArc(ctx, cx, cy, rx, ry, cfg.bezierArcs)
		return p, true, err

	case "line":
		x1 := numAttr(n, "x1", zero)
		y1 := numAttr(n, "y1", zero)
		x2 := numAttr(n, "x2", zero)
		y2 := numAttr(n, "y2", zero)
		return shapes.Line(x1, y1, x2, y2), true, nil

	case "polyline", "polygon":
		pts, err := parsePointsAttr(n.AttrOr("points", ""))
		if err != nil {
			return nil, true, err
		}
		if n.Tag == "polygon" {
			p, err := shapes.Polygon(pts)
			return p, true, err
		}
		p, err := shapes.Polyline(pts)
		return p, true, err
	}
	return nil, false, nil
}

// parsePointsAttr parses a "points" attribute ("x1,y1 x2,y2 ...") into
// shapes.Point2D values, tolerating both comma and whitespace separators
// as SVG's points grammar allows.
func parsePointsAttr(s string) ([]shapes.Point2D, error) {
	var nums []decimal.Dec
	start := -1
	flush := func(end int) error {
		if start < 0 {
			return nil
		}
		d, err := decimal.Parse(s[start:end])
		if err != nil {
			return pathdata.ErrInvalidPath
		}
		nums = append(nums, d)
		start = -1
		return nil
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		isSep := c == ',' || c == ' ' || c == '\t' || c == '\n' || c == '\r'
		if isSep {
			if err := flush(i); err != nil {
				return nil, err
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if err := flush(len(s)); err != nil {
		return nil, err
	}
	if len(nums)%2 != 0 {
		nums = nums[:len(nums)-1]
	}
	pts := make([]shapes.Point2D, 0, len(nums)/2)
	for i := 0; i+1 < len(nums); i += 2 {
		pts = append(pts, shapes.Point2D{X: nums[i], Y: nums[i+1]})
	}
	return pts, nil
}
