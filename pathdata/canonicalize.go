package pathdata

import "github.com/vectorflat/svgflatten/decimal"

// point is a 2D coordinate pair used only internally while walking a Path.
type point struct {
	x, y decimal.Dec
}

// ToAbsolute canonicalizes p into an equivalent Path using only absolute
// {M, L, C, Q, A, Z} commands (§4.4). H and V are rewritten to L; S and T
// are expanded to their reflected control points and rewritten to C and Q
// respectively. Arc commands keep their seven arguments untouched beyond
// the relative-to-absolute offset of the endpoint.
func ToAbsolute(ctx *decimal.Context, p Path) (Path, error) {
	if len(p) == 0 {
		return Path{}, nil
	}

	var (
		cur          point
		subpathStart point
		lastCtrl     point
		lastKind     Kind
		haveCur      bool
	)

	out := make(Path, 0, len(p))

	abs2 := func(c Command, idx int) decimal.Dec {
		v := c.Args[idx]
		if c.Abs {
			return v
		}
		if idx%2 == 0 {
			return ctx.Plus(cur.x, v)
		}
		return ctx.Plus(cur.y, v)
	}

	for _, c := range p {
		switch c.Kind {
		case KindMove:
			if len(c.Args) != 2 {
				return nil, ErrInvalidPath
			}
			np := point{abs2(c, 0), abs2(c, 1)}
			out = append(out, Command{Kind: KindMove, Abs: true, Args: []decimal.Dec{np.x, np.y}})
			cur, subpathStart = np, np
			lastCtrl = np
			lastKind = KindMove
			haveCur = true

		case KindLine:
			if !haveCur || len(c.Args) != 2 {
				return nil, ErrInvalidPath
			}
			np := point{abs2(c, 0), abs2(c, 1)}
			out = append(out, Command{Kind: KindLine, Abs: true, Args: []decimal.Dec{np.x, np.y}})
			cur = np
			lastCtrl = np
			lastKind = KindLine

		case KindHorizontal:
			if !haveCur || len(c.Args) != 1 {
				return nil, ErrInvalidPath
			}
			nx := c.Args[0]
			if !c.Abs {
				nx = ctx.Plus(cur.x, nx)
			}
			np := point{nx, cur.y}
			out = append(out, Command{Kind: KindLine, Abs: true, Args: []decimal.Dec{np.x, np.y}})
			cur = np
			lastCtrl = np
			lastKind = KindHorizontal

		case KindVertical:
			if !haveCur || len(c.Args) != 1 {
				return nil, ErrInvalidPath
			}
			ny := c.Args[0]
			if !c.Abs {
				ny = ctx.Plus(cur.y, ny)
			}
			np := point{cur.x, ny}
			out = append(out, Command{Kind: KindLine, Abs: true, Args: []decimal.Dec{np.x, np.y}})
			cur = np
			lastCtrl = np
			lastKind = KindVertical

		case KindCubic:
			if !haveCur || len(c.Args) != 6 {
				return nil, ErrInvalidPath
			}
			c1 := point{abs2(c, 0), abs2(c, 1)}
			c2 := point{abs2(c, 2), abs2(c, 3)}
			np := point{abs2(c, 4), abs2(c, 5)}
			out = append(out, Command{Kind: KindCubic, Abs: true, Args: []decimal.Dec{c1.x, c1.y, c2.x, c2.y, np.x, np.y}})
			cur = np
			lastCtrl = c2
			lastKind = KindCubic

		case KindSmoothCubic:
			if !haveCur || len(c.Args) != 4 {
				return nil, ErrInvalidPath
			}
			c1 := reflect(ctx, cur, lastCtrl, lastKind == KindCubic || lastKind == KindSmoothCubic)
			c2 := point{abs2(c, 0), abs2(c, 1)}
			np := point{abs2(c, 2), abs2(c, 3)}
			out = append(out, Command{Kind: KindCubic, Abs: true, Args: []decimal.Dec{c1.x, c1.y, c2.x, c2.y, np.x, np.y}})
			cur = np
			lastCtrl = c2
			lastKind = KindSmoothCubic

		case KindQuadratic:
			if !haveCur || len(c.Args) != 4 {
				return nil, ErrInvalidPath
			}
			c1 := point{abs2(c, 0), abs2(c, 1)}
			np := point{abs2(c, 2), abs2(c, 3)}
			out = append(out, Command{Kind: KindQuadratic, Abs: true, Args: []decimal.Dec{c1.x, c1.y, np.x, np.y}})
			cur = np
			lastCtrl = c1
			lastKind = KindQuadratic

		case KindSmoothQuadratic:
			if !haveCur || len(c.Args) != 2 {
				return nil, ErrInvalidPath
			}
			c1 := reflect(ctx, cur, lastCtrl, lastKind == KindQuadratic || lastKind == KindSmoothQuadratic)
			np := point{abs2(c, 0), abs2(c, 1)}
			out = append(out, Command{Kind: KindQuadratic, Abs: true, Args: []decimal.Dec{c1.x, c1.y, np.x, np.y}})
			cur = np
			lastCtrl = c1
			lastKind = KindSmoothQuadratic

		case KindArc:
			if !haveCur || len(c.Args) != 7 {
				return nil, ErrInvalidPath
			}
			rx, ry, xrot, large, sweep := c.Args[0], c.Args[1], c.Args[2], c.Args[3], c.Args[4]
			np := point{c.Args[5], c.Args[6]}
			if !c.Abs {
				np = point{ctx.Plus(cur.x, np.x), ctx.Plus(cur.y, np.y)}
			}
			out = append(out, Command{Kind: KindArc, Abs: true, Args: []decimal.Dec{rx, ry, xrot, large, sweep, np.x, np.y}})
			cur = np
			lastCtrl = np
			lastKind = KindArc

		case KindClose:
			out = append(out, Command{Kind: KindClose, Abs: true})
			cur = subpathStart
			lastCtrl = cur
			lastKind = KindClose

		default:
			return nil, ErrInvalidPath
		}
	}

	return out, nil
}

// reflect computes the reflection of lastCtrl through cur, used by S and T
// to derive their implicit leading control point. When the previous command
// was not a cubic/quadratic of the matching family, the reflected point
// degenerates to cur itself (§4.4).
func reflect(ctx *decimal.Context, cur, lastCtrl point, chain bool) point {
	if !chain {
		return cur
	}
	two := decimal.FromInt(2)
	return point{
		x: ctx.Minus(ctx.Times(two, cur.x), lastCtrl.x),
		y: ctx.Minus(ctx.Times(two, cur.y), lastCtrl.y),
	}
}

// ToCubics upgrades every L and Q command in an absolute Path (as produced
// by ToAbsolute) into an equivalent C command, leaving M, A, C, and Z
// untouched. Arc commands are never discretized by this package (§4.4).
func ToCubics(ctx *decimal.Context, p Path) (Path, error) {
	out := make(Path, 0, len(p))
	var cur point
	haveCur := false

	third := decimal.MustParse("0.3333333333333333333333333333333333333333333333333333333333333333333333333333")
	twoThirds := decimal.MustParse("0.6666666666666666666666666666666666666666666666666666666666666666666666666667")

	for _, c := range p {
		if !c.Abs {
			return nil, ErrInvalidPath
		}
		switch c.Kind {
		case KindMove:
			cur = point{c.Args[0], c.Args[1]}
			haveCur = true
			out = append(out, c)

		case KindLine:
			if !haveCur {
				return nil, ErrInvalidPath
			}
			np := point{c.Args[0], c.Args[1]}
			c1 := point{
				ctx.Plus(cur.x, ctx.Times(third, ctx.Minus(np.x, cur.x))),
				ctx.Plus(cur.y, ctx.Times(third, ctx.Minus(np.y, cur.y))),
			}
			c2 := point{
				ctx.Plus(cur.x, ctx.Times(twoThirds, ctx.Minus(np.x, cur.x))),
				ctx.Plus(cur.y, ctx.Times(twoThirds, ctx.Minus(np.y, cur.y))),
			}
			out = append(out, Command{Kind: KindCubic, Abs: true, Args: []decimal.Dec{c1.x, c1.y, c2.x, c2.y, np.x, np.y}})
			cur = np

		case KindQuadratic:
			if !haveCur {
				return nil, ErrInvalidPath
			}
			q1 := point{c.Args[0], c.Args[1]}
			np := point{c.Args[2], c.Args[3]}
			// Degree elevation: C1 = Q0 + 2/3*(Q1-Q0), C2 = Q2 + 2/3*(Q1-Q2).
			c1 := point{
				ctx.Plus(cur.x, ctx.Times(twoThirds, ctx.Minus(q1.x, cur.x))),
				ctx.Plus(cur.y, ctx.Times(twoThirds, ctx.Minus(q1.y, cur.y))),
			}
			c2 := point{
				ctx.Plus(np.x, ctx.Times(twoThirds, ctx.Minus(q1.x, np.x))),
				ctx.Plus(np.y, ctx.Times(twoThirds, ctx.Minus(q1.y, np.y))),
			}
			out = append(out, Command{Kind: KindCubic, Abs: true, Args: []decimal.Dec{c1.x, c1.y, c2.x, c2.y, np.x, np.y}})
			cur = np

		case KindCubic:
			cur = point{c.Args[4], c.Args[5]}
			out = append(out, c)

		case KindArc:
			cur = point{c.Args[5], c.Args[6]}
			out = append(out, c)

		case KindClose:
			out = append(out, c)

		default:
			return nil, ErrInvalidPath
		}
	}

	return out, nil
}
