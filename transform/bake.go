package transform

import (
	"math"

	"github.com/vectorflat/svgflatten/affine"
	"github.com/vectorflat/svgflatten/decimal"
	"github.com/vectorflat/svgflatten/linalg"
	"github.com/vectorflat/svgflatten/pathdata"
)

// Bake transforms every coordinate in an absolute Path (as produced by
// pathdata.ToAbsolute) by the homogeneous 3x3 matrix m, per §4.6.
//
// M, L, Q, C commands transform each (x,y) pair as a point. H and V are
// rewritten to L using the current point before transforming (ToAbsolute
// already performs this rewrite, but Bake tolerates a path where it has
// not). A commands keep their command kind: the endpoint transforms as a
// point, and rx, ry, and the rotation angle are recomputed from the
// transformed principal ellipse vectors; the sweep flag flips iff the
// linear part's determinant is negative. The large-arc flag is preserved.
func Bake(ctx *decimal.Context, m linalg.Matrix, p pathdata.Path) (pathdata.Path, error) {
	a, b, c, d, err := affine.LinearPart2D(m)
	if err != nil {
		return nil, err
	}
	det := ctx.Minus(ctx.Times(a, d), ctx.Times(b, c))
	flipsSweep := ctx.LessThan(det, decimal.Zero)

	out := make(pathdata.Path, 0, len(p))
	// cur and start track the untransformed current point and subpath
	// start, which H and V need.
	var cur, start struct{ x, y decimal.Dec }

	transformPoint := func(x, y decimal.Dec) (decimal.Dec, decimal.Dec, error) {
		return affine.ApplyPoint2D(ctx, m, x, y)
	}

	for _, cmd := range p {
		if !cmd.Abs {
			return nil, pathdata.ErrInvalidPath
		}
		switch cmd.Kind {
		case pathdata.KindMove, pathdata.KindLine:
			nx, ny, err := transformPoint(cmd.Args[0], cmd.Args[1])
			if err != nil {
				return nil, err
			}
			out = append(out, pathdata.Command{Kind: cmd.Kind, Abs: true, Args: []decimal.Dec{nx, ny}})
			cur.x, cur.y = cmd.Args[0], cmd.Args[1]
			if cmd.Kind == pathdata.KindMove {
				start = cur
			}

		case pathdata.KindHorizontal:
			nx, ny, err := transformPoint(cmd.Args[0], cur.y)
			if err != nil {
				return nil, err
			}
			out = append(out, pathdata.Command{Kind: pathdata.KindLine, Abs: true, Args: []decimal.Dec{nx, ny}})
			cur.x = cmd.Args[0]

		case pathdata.KindVertical:
			nx, ny, err := transformPoint(cur.x, cmd.Args[0])
			if err != nil {
				return nil, err
			}
			out = append(out, pathdata.Command{Kind: pathdata.KindLine, Abs: true, Args: []decimal.Dec{nx, ny}})
			cur.y = cmd.Args[0]

		case pathdata.KindQuadratic:
			c1x, c1y, err := transformPoint(cmd.Args[0], cmd.Args[1])
			if err != nil {
				return nil, err
			}
			nx, ny, err := transformPoint(cmd.Args[2], cmd.Args[3])
			if err != nil {
				return nil, err
			}
			out = append(out, pathdata.Command{Kind: pathdata.KindQuadratic, Abs: true, Args: []decimal.Dec{c1x, c1y, nx, ny}})
			cur.x, cur.y = cmd.Args[2], cmd.Args[3]

		case pathdata.KindCubic:
			c1x, c1y, err := transformPoint(cmd.Args[0], cmd.Args[1])
			if err != nil {
				return nil, err
			}
			c2x, c2y, err := transformPoint(cmd.Args[2], cmd.Args[3])
			if err != nil {
				return nil, err
			}
			nx, ny, err := transformPoint(cmd.Args[4], cmd.Args[5])
			if err != nil {
				return nil, err
			}
			out = append(out, pathdata.Command{Kind: pathdata.KindCubic, Abs: true, Args: []decimal.Dec{c1x, c1y, c2x, c2y, nx, ny}})
			cur.x, cur.y = cmd.Args[4], cmd.Args[5]

		case pathdata.KindArc:
			newCmd, _, _, err := bakeArc(ctx, m, a, b, c, d, flipsSweep, cmd)
			if err != nil {
				return nil, err
			}
			out = append(out, newCmd)
			cur.x, cur.y = cmd.Args[5], cmd.Args[6]

		case pathdata.KindClose:
			out = append(out, cmd)
			cur = start

		default:
			return nil, pathdata.ErrInvalidPath
		}
	}

	return out, nil
}

func bakeArc(ctx *decimal.Context, m linalg.Matrix, a, b, c, d decimal.Dec, flipsSweep bool, cmd pathdata.Command) (pathdata.Command, decimal.Dec, decimal.Dec, error) {
	rx, ry, xrotDeg, large, sweep := cmd.Args[0], cmd.Args[1], cmd.Args[2], cmd.Args[3], cmd.Args[4]
	ex, ey := cmd.Args[5], cmd.Args[6]

	phi := mustFloat(xrotDeg) * math.Pi / 180
	rxF, ryF := mustFloat(rx), mustFloat(ry)

	u1x, u1y := rxF*math.Cos(phi), rxF*math.Sin(phi)
	u2x, u2y := -ryF*math.Sin(phi), ryF*math.Cos(phi)

	aF, bF, cF, dF := mustFloat(a), mustFloat(b), mustFloat(c), mustFloat(d)
	u1xp := aF*u1x + bF*u1y
	u1yp := cF*u1x + dF*u1y
	u2xp := aF*u2x + bF*u2y
	u2yp := cF*u2x + dF*u2y

	newRx := math.Hypot(u1xp, u1yp)
	newRy := math.Hypot(u2xp, u2yp)
	newRotDeg := math.Atan2(u1yp, u1xp) * 180 / math.Pi

	newSweep := sweep
	if flipsSweep {
		if ctx.IsZero(sweep) {
			newSweep = decimal.One
		} else {
			newSweep = decimal.Zero
		}
	}

	nx, ny, err := affine.ApplyPoint2D(ctx, m, ex, ey)
	if err != nil {
		return pathdata.Command{}, decimal.Dec{}, decimal.Dec{}, err
	}

	newCmd := pathdata.Command{
		Kind: pathdata.KindArc, Abs: true,
		Args: []decimal.Dec{
			decimal.FromFloat(newRx), decimal.FromFloat(newRy), decimal.FromFloat(newRotDeg),
			large, newSweep, nx, ny,
		},
	}
	return newCmd, nx, ny, nil
}

func mustFloat(d decimal.Dec) float64 {
	f, _ := d.Float64()
	return f
}
