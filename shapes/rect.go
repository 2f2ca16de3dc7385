package shapes

import (
	"github.com/vectorflat/svgflatten/decimal"
	"github.com/vectorflat/svgflatten/pathdata"
)

// Rect converts an SVG rect(x,y,w,h,rx,ry) to a Path, per §4.5. When rx=ry=0
// the result is a 4-vertex polyline closed with Z. Otherwise corner radii
// are clamped to half-width/half-height, and corners are emitted as A
// commands when useArcs is true, or as cubic Beziers otherwise.
func Rect(ctx *decimal.Context, x, y, w, h, rx, ry decimal.Dec, useArcs bool) (pathdata.Path, error) {
	if ctx.LessThan(w, decimal.Zero) || ctx.LessThan(h, decimal.Zero) {
		return nil, ErrDegenerateShape
	}

	halfW := div2(ctx, w)
	halfH := div2(ctx, h)
	if ctx.GreaterThan(rx, halfW) {
		rx = halfW
	}
	if ctx.GreaterThan(ry, halfH) {
		ry = halfH
	}
	if ctx.IsZero(rx) || ctx.IsZero(ry) {
		return sharpRect(ctx, x, y, w, h), nil
	}

	x2 := ctx.Plus(x, w)
	y2 := ctx.Plus(y, h)

	p := pathdata.Path{
		{Kind: pathdata.KindMove, Abs: true, Args: []decimal.Dec{ctx.Plus(x, rx), y}},
		{Kind: pathdata.KindLine, Abs: true, Args: []decimal.Dec{ctx.Minus(x2, rx), y}},
	}

	corner := func(cx, cy, toX, toY decimal.Dec, quadrant int) pathdata.Command {
		if useArcs {
			return pathdata.Command{
				Kind: pathdata.KindArc, Abs: true,
				Args: []decimal.Dec{rx, ry, decimal.Zero, decimal.Zero, decimal.One, toX, toY},
			}
		}
		return cubicCorner(ctx, cx, cy, rx, ry, toX, toY, quadrant)
	}

	p = append(p, corner(x2, y, x2, ctx.Plus(y, ry), 0))
	p = append(p, pathdata.Command{Kind: pathdata.KindLine, Abs: true, Args: []decimal.Dec{x2, ctx.Minus(y2, ry)}})
	p = append(p, corner(x2, y2, ctx.Minus(x2, rx), y2, 1))
	p = append(p, pathdata.Command{Kind: pathdata.KindLine, Abs: true, Args: []decimal.Dec{ctx.Plus(x, rx), y2}})
	p = append(p, corner(x, y2, x, ctx.Minus(y2, ry), 2))
	p = append(p, pathdata.Command{Kind: pathdata.KindLine, Abs: true, Args: []decimal.Dec{x, ctx.Plus(y, ry)}})
	p = append(p, corner(x, y, ctx.Plus(x, rx), y, 3))
	p = append(p, pathdata.Command{Kind: pathdata.KindClose})

	return p, nil
}

// cubicCorner approximates a quarter-ellipse corner turning from the
// current point toward (toX,toY), rounding off the rectangle's sharp corner
// (cx,cy), using the classic kappa = 4/3*(sqrt(2)-1) quarter-circle control
// distance (§4.5 legacy rule applies equally to rounded-rect corners).
func cubicCorner(ctx *decimal.Context, cx, cy, rx, ry, toX, toY decimal.Dec, quadrant int) pathdata.Command {
	k := legacyKappa(ctx)
	krx := ctx.Times(k, rx)
	kry := ctx.Times(k, ry)

	var c1x, c1y, c2x, c2y decimal.Dec
	switch quadrant {
	case 0: // top-right: from (cx-rx, cy) to (cx, cy+ry)
		c1x, c1y = ctx.Minus(cx, ctx.Minus(rx, krx)), cy
		c2x, c2y = cx, ctx.Plus(cy, ctx.Minus(ry, kry))
	case 1: // bottom-right: from (cx, cy-ry) to (cx-rx, cy)
		c1x, c1y = cx, ctx.Minus(cy, ctx.Minus(ry, kry))
		c2x, c2y = ctx.Minus(cx, ctx.Minus(rx, krx)), cy
	case 2: // bottom-left: from (cx+rx, cy) to (cx, cy-ry)
		c1x, c1y = ctx.Plus(cx, ctx.Minus(rx, krx)), cy
		c2x, c2y = cx, ctx.Minus(cy, ctx.Minus(ry, kry))
	default: // 3, top-left: from (cx, cy+ry) to (cx+rx, cy)
		c1x, c1y = cx, ctx.Plus(cy, ctx.Minus(ry, kry))
		c2x, c2y = ctx.Plus(cx, ctx.Minus(rx, krx)), cy
	}

	return pathdata.Command{
		Kind: pathdata.KindCubic, Abs: true,
		Args: []decimal.Dec{c1x, c1y, c2x, c2y, toX, toY},
	}
}

func sharpRect(ctx *decimal.Context, x, y, w, h decimal.Dec) pathdata.Path {
	x2, y2 := ctx.Plus(x, w), ctx.Plus(y, h)
	return pathdata.Path{
		{Kind: pathdata.KindMove, Abs: true, Args: []decimal.Dec{x, y}},
		{Kind: pathdata.KindLine, Abs: true, Args: []decimal.Dec{x2, y}},
		{Kind: pathdata.KindLine, Abs: true, Args: []decimal.Dec{x2, y2}},
		{Kind: pathdata.KindLine, Abs: true, Args: []decimal.Dec{x, y2}},
		{Kind: pathdata.KindClose},
	}
}
