package polygon

import "github.com/vectorflat/svgflatten/decimal"

// Point is a 2D Decimal-valued coordinate.
type Point struct {
	X, Y decimal.Dec
}

// Polygon is an ordered, simple (non-self-intersecting) ring of vertices.
// The last vertex is implicitly connected back to the first.
type Polygon []Point

// Area returns the polygon's area via the shoelace formula, always
// non-negative regardless of winding order (§4.7).
func Area(ctx *decimal.Context, p Polygon) (decimal.Dec, error) {
	if len(p) < 3 {
		return decimal.Dec{}, ErrTooFewVertices
	}
	sum := decimal.Zero
	n := len(p)
	for i := 0; i < n; i++ {
		a, b := p[i], p[(i+1)%n]
		sum = ctx.Plus(sum, ctx.Minus(ctx.Times(a.X, b.Y), ctx.Times(b.X, a.Y)))
	}
	half, _ := ctx.Div(sum, decimal.FromInt(2))
	return ctx.Abs(half), nil
}

// PointInPolygon reports whether pt lies inside p, using a +x ray cast. A
// point lying on an edge within tol is treated as inside (§4.7).
func PointInPolygon(ctx *decimal.Context, p Polygon, pt Point, tol decimal.Dec) bool {
	n := len(p)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		a, b := p[i], p[(i+1)%n]
		if !ctx.GreaterThan(distanceToSegment(ctx, pt, a, b), tol) {
			return true
		}
	}

	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := p[i], p[j]
		yCrosses := ctx.LessThan(a.Y, pt.Y) != ctx.LessThan(b.Y, pt.Y)
		if !yCrosses {
			continue
		}
		// x-intersection of edge (a,b) with the horizontal ray at pt.Y.
		num := ctx.Times(ctx.Minus(b.X, a.X), ctx.Minus(pt.Y, a.Y))
		denom := ctx.Minus(b.Y, a.Y)
		if ctx.IsZero(denom) {
			continue
		}
		ratio, err := ctx.Div(num, denom)
		if err != nil {
			continue
		}
		xIntersect := ctx.Plus(a.X, ratio)
		if ctx.LessThan(pt.X, xIntersect) {
			inside = !inside
		}
	}
	return inside
}

// Intersection clips subject against convexClip using Sutherland-Hodgman
// (§4.7). convexClip is assumed convex and vertex-ordered consistently
// (either winding). Returns ErrDegenerateIntersection when the result is
// empty.
func Intersection(ctx *decimal.Context, subject, convexClip Polygon) (Polygon, error) {
	if len(subject) < 3 || len(convexClip) < 3 {
		return nil, ErrTooFewVertices
	}

	// insideEdge keeps points left of each edge, which holds for a clip with
	// a positive shoelace sum; a clip wound the other way is reversed.
	sum := decimal.Zero
	for i := range convexClip {
		a, b := convexClip[i], convexClip[(i+1)%len(convexClip)]
		sum = ctx.Plus(sum, ctx.Minus(ctx.Times(a.X, b.Y), ctx.Times(b.X, a.Y)))
	}
	if ctx.LessThan(sum, decimal.Zero) {
		rev := make(Polygon, len(convexClip))
		for i, p := range convexClip {
			rev[len(convexClip)-1-i] = p
		}
		convexClip = rev
	}

	output := subject
	n := len(convexClip)
	for i := 0; i < n; i++ {
		clipA, clipB := convexClip[i], convexClip[(i+1)%n]
		if len(output) == 0 {
			break
		}
		input := output
		output = nil
		m := len(input)
		for j := 0; j < m; j++ {
			cur := input[j]
			prev := input[(j+m-1)%m]
			curIn := insideEdge(ctx, clipA, clipB, cur)
			prevIn := insideEdge(ctx, clipA, clipB, prev)
			if curIn {
				if !prevIn {
					output = append(output, segmentIntersect(ctx, prev, cur, clipA, clipB))
				}
				output = append(output, cur)
			} else if prevIn {
				output = append(output, segmentIntersect(ctx, prev, cur, clipA, clipB))
			}
		}
	}

	if len(output) < 3 {
		return nil, ErrDegenerateIntersection
	}
	return output, nil
}

func insideEdge(ctx *decimal.Context, a, b, p Point) bool {
	cross := ctx.Minus(
		ctx.Times(ctx.Minus(b.X, a.X), ctx.Minus(p.Y, a.Y)),
		ctx.Times(ctx.Minus(b.Y, a.Y), ctx.Minus(p.X, a.X)),
	)
	return !ctx.LessThan(cross, decimal.Zero)
}

func segmentIntersect(ctx *decimal.Context, p1, p2, clipA, clipB Point) Point {
	x1, y1, x2, y2 := p1.X, p1.Y, p2.X, p2.Y
	x3, y3, x4, y4 := clipA.X, clipA.Y, clipB.X, clipB.Y

	denom := ctx.Minus(
		ctx.Times(ctx.Minus(x1, x2), ctx.Minus(y3, y4)),
		ctx.Times(ctx.Minus(y1, y2), ctx.Minus(x3, x4)),
	)
	if ctx.IsZero(denom) {
		return p2
	}

	a := ctx.Minus(ctx.Times(x1, y2), ctx.Times(y1, x2))
	b := ctx.Minus(ctx.Times(x3, y4), ctx.Times(y3, x4))

	numX := ctx.Minus(ctx.Times(a, ctx.Minus(x3, x4)), ctx.Times(ctx.Minus(x1, x2), b))
	numY := ctx.Minus(ctx.Times(a, ctx.Minus(y3, y4)), ctx.Times(ctx.Minus(y1, y2), b))

	px, _ := ctx.Div(numX, denom)
	py, _ := ctx.Div(numY, denom)
	return Point{X: px, Y: py}
}

// Difference returns, for each edge of clip, the subset of subject's
// vertices that lie strictly outside that edge. Fragments are not
// guaranteed to be a topologically unioned polygon; this operation is used
// only for verification (§4.7).
func Difference(ctx *decimal.Context, subject, clip Polygon) []Polygon {
	var fragments []Polygon
	n := len(clip)
	for i := 0; i < n; i++ {
		a, b := clip[i], clip[(i+1)%n]
		var frag Polygon
		for _, p := range subject {
			if !insideEdge(ctx, a, b, p) {
				frag = append(frag, p)
			}
		}
		if len(frag) > 0 {
			fragments = append(fragments, frag)
		}
	}
	return fragments
}

// MinDistanceToPolygonEdge returns the exact Decimal distance from pt to
// the closest edge of p (§4.7), used by the containment verifier to permit
// curve-sampling vertices up to a configurable distance outside the clip.
func MinDistanceToPolygonEdge(ctx *decimal.Context, p Polygon, pt Point) decimal.Dec {
	n := len(p)
	best := decimal.Dec{}
	haveBest := false
	for i := 0; i < n; i++ {
		a, b := p[i], p[(i+1)%n]
		d := distanceToSegment(ctx, pt, a, b)
		if !haveBest || ctx.LessThan(d, best) {
			best, haveBest = d, true
		}
	}
	return best
}

func distanceToSegment(ctx *decimal.Context, pt, a, b Point) decimal.Dec {
	abx, aby := ctx.Minus(b.X, a.X), ctx.Minus(b.Y, a.Y)
	apx, apy := ctx.Minus(pt.X, a.X), ctx.Minus(pt.Y, a.Y)

	abLenSq := ctx.Plus(ctx.Times(abx, abx), ctx.Times(aby, aby))
	if ctx.IsZero(abLenSq) {
		return distance(ctx, pt, a)
	}

	t, _ := ctx.Div(ctx.Plus(ctx.Times(apx, abx), ctx.Times(apy, aby)), abLenSq)
	if ctx.LessThan(t, decimal.Zero) {
		t = decimal.Zero
	}
	if ctx.GreaterThan(t, decimal.One) {
		t = decimal.One
	}
	closest := Point{
		X: ctx.Plus(a.X, ctx.Times(t, abx)),
		Y: ctx.Plus(a.Y, ctx.Times(t, aby)),
	}
	return distance(ctx, pt, closest)
}

func distance(ctx *decimal.Context, a, b Point) decimal.Dec {
	dx := ctx.Minus(b.X, a.X)
	dy := ctx.Minus(b.Y, a.Y)
	sq := ctx.Plus(ctx.Times(dx, dx), ctx.Times(dy, dy))
	d, _ := ctx.Sqrt(sq)
	return d
}
