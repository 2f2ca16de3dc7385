package shapes

import (
	"math"

	"github.com/vectorflat/svgflatten/decimal"
	"github.com/vectorflat/svgflatten/pathdata"
)

// EllipseLegacy approximates an ellipse centered at (cx,cy) with radii
// (rx,ry) using the classic four-cubic quarter approximation, kappa =
// 4/3*(sqrt(2)-1) (§4.5). The path starts at the rightmost cardinal point
// and winds clockwise as drawn in SVG's y-down coordinate system (right,
// bottom, left, top).
func EllipseLegacy(ctx *decimal.Context, cx, cy, rx, ry decimal.Dec) (pathdata.Path, error) {
	if ctx.LessThan(rx, decimal.Zero) || ctx.LessThan(ry, decimal.Zero) {
		return nil, ErrDegenerateShape
	}
	k := legacyKappa(ctx)
	krx := ctx.Times(k, rx)
	kry := ctx.Times(k, ry)

	right := point2{ctx.Plus(cx, rx), cy}
	bottom := point2{cx, ctx.Plus(cy, ry)}
	left := point2{ctx.Minus(cx, rx), cy}
	top := point2{cx, ctx.Minus(cy, ry)}

	cubic := func(from, to point2, c1, c2 point2) pathdata.Command {
		return pathdata.Command{
			Kind: pathdata.KindCubic, Abs: true,
			Args: []decimal.Dec{c1.x, c1.y, c2.x, c2.y, to.x, to.y},
		}
	}

	return pathdata.Path{
		{Kind: pathdata.KindMove, Abs: true, Args: []decimal.Dec{right.x, right.y}},
		cubic(right, bottom,
			point2{right.x, ctx.Plus(right.y, kry)},
			point2{ctx.Plus(bottom.x, krx), bottom.y}),
		cubic(bottom, left,
			point2{ctx.Minus(bottom.x, krx), bottom.y},
			point2{left.x, ctx.Plus(left.y, kry)}),
		cubic(left, top,
			point2{left.x, ctx.Minus(left.y, kry)},
			point2{ctx.Minus(top.x, krx), top.y}),
		cubic(top, right,
			point2{ctx.Plus(top.x, krx), top.y},
			point2{right.x, ctx.Minus(right.y, kry)}),
		{Kind: pathdata.KindClose},
	}, nil
}

// EllipseNArc approximates an ellipse using n cubic Beziers, n rounded up
// to the nearest multiple of 4 (§4.5, "high-precision"). Per-arc angle
// theta = 2*pi/n, and the control-point distance is the optimal
// L = (4/3)*tan(theta/4), giving a radial error that scales as
// ~theta^4/1440.
func EllipseNArc(ctx *decimal.Context, cx, cy, rx, ry decimal.Dec, n int) (pathdata.Path, error) {
	if ctx.LessThan(rx, decimal.Zero) || ctx.LessThan(ry, decimal.Zero) {
		return nil, ErrDegenerateShape
	}
	if n < 4 {
		n = 4
	}
	n = ((n + 3) / 4) * 4

	twoPi := decimal.FromFloat(2 * math.Pi)
	thetaD, err := ctx.Div(twoPi, decimal.FromInt(int64(n)))
	if err != nil {
		return nil, err
	}
	L := arcControlDistance(ctx, thetaD)

	pointAt := func(i int) point2 {
		angle := ctx.Times(decimal.FromInt(int64(i)), thetaD)
		return point2{
			x: ctx.Plus(cx, ctx.Times(rx, ctx.Cos(angle))),
			y: ctx.Plus(cy, ctx.Times(ry, ctx.Sin(angle))),
		}
	}
	tangentAt := func(i int) (dx, dy decimal.Dec) {
		angle := ctx.Times(decimal.FromInt(int64(i)), thetaD)
		return ctx.Times(ctx.Negate(rx), ctx.Sin(angle)), ctx.Times(ry, ctx.Cos(angle))
	}

	start := pointAt(0)
	path := pathdata.Path{{Kind: pathdata.KindMove, Abs: true, Args: []decimal.Dec{start.x, start.y}}}

	prev := start
	for i := 1; i <= n; i++ {
		cur := pointAt(i)
		dx0, dy0 := tangentAt(i - 1)
		dx1, dy1 := tangentAt(i)
		c1 := point2{ctx.Plus(prev.x, ctx.Times(L, dx0)), ctx.Plus(prev.y, ctx.Times(L, dy0))}
		c2 := point2{ctx.Minus(cur.x, ctx.Times(L, dx1)), ctx.Minus(cur.y, ctx.Times(L, dy1))}
		path = append(path, pathdata.Command{
			Kind: pathdata.KindCubic, Abs: true,
			Args: []decimal.Dec{c1.x, c1.y, c2.x, c2.y, cur.x, cur.y},
		})
		prev = cur
	}
	path = append(path, pathdata.Command{Kind: pathdata.KindClose})

	return path, nil
}

type point2 struct {
	x, y decimal.Dec
}
