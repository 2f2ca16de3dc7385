package verify

import (
	"github.com/vectorflat/svgflatten/decimal"
	"github.com/vectorflat/svgflatten/pathdata"
	"github.com/vectorflat/svgflatten/polygon"
)

// CheckCircleCardinalPoints verifies that the path generated for a
// circle (cx,cy,r) passes through its four cardinal points within tol
// (§4.9 "Shape-to-path", §8 circle test).
func CheckCircleCardinalPoints(ctx *decimal.Context, p pathdata.Path, cx, cy, r, tol decimal.Dec) Result {
	want := []polygon.Point{
		{X: ctx.Plus(cx, r), Y: cy},
		{X: cx, Y: ctx.Plus(cy, r)},
		{X: ctx.Minus(cx, r), Y: cy},
		{X: cx, Y: ctx.Minus(cy, r)},
	}
	return checkCardinalPoints(ctx, p, want, tol)
}

// CheckRectCorners verifies that the path generated for an axis-aligned
// rect (x,y,w,h) passes through its four corners within tol.
func CheckRectCorners(ctx *decimal.Context, p pathdata.Path, x, y, w, h, tol decimal.Dec) Result {
	want := []polygon.Point{
		{X: x, Y: y},
		{X: ctx.Plus(x, w), Y: y},
		{X: ctx.Plus(x, w), Y: ctx.Plus(y, h)},
		{X: x, Y: ctx.Plus(y, h)},
	}
	return checkCardinalPoints(ctx, p, want, tol)
}

func checkCardinalPoints(ctx *decimal.Context, p pathdata.Path, want []polygon.Point, tol decimal.Dec) Result {
	abs, err := pathdata.ToAbsolute(ctx, p)
	if err != nil {
		return fail(tol, err, "path could not be canonicalized for cardinal-point check", nil)
	}
	verts := pathVertices(abs)
	for _, w := range want {
		if !anyWithin(ctx, verts, w, tol) {
			return fail(tol, nil, "generated path does not pass through an expected cardinal point", map[string]string{
				"x": ctx.ToFixed(w.X, 10), "y": ctx.ToFixed(w.Y, 10),
			})
		}
	}
	return ok(tol, "generated path passes through all expected cardinal points", nil)
}

func pathVertices(p pathdata.Path) []polygon.Point {
	var out []polygon.Point
	for _, cmd := range p {
		switch cmd.Kind {
		case pathdata.KindMove, pathdata.KindLine:
			out = append(out, polygon.Point{X: cmd.Args[0], Y: cmd.Args[1]})
		case pathdata.KindCubic:
			out = append(out, polygon.Point{X: cmd.Args[4], Y: cmd.Args[5]})
		case pathdata.KindQuadratic:
			out = append(out, polygon.Point{X: cmd.Args[2], Y: cmd.Args[3]})
		case pathdata.KindArc:
			out = append(out, polygon.Point{X: cmd.Args[5], Y: cmd.Args[6]})
		}
	}
	return out
}

func anyWithin(ctx *decimal.Context, verts []polygon.Point, want polygon.Point, tol decimal.Dec) bool {
	for _, v := range verts {
		if ctx.EqualsWithin(v.X, want.X, tol) && ctx.EqualsWithin(v.Y, want.Y, tol) {
			return true
		}
	}
	return false
}
