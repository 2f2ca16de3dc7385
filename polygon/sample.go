package polygon

import (
	"math"

	"github.com/vectorflat/svgflatten/decimal"
	"github.com/vectorflat/svgflatten/pathdata"
)

// Sample converts an absolute Path (as produced by pathdata.ToAbsolute) to
// a Polygon, per §4.7. A line command contributes its endpoint only; each
// quadratic and cubic Bezier contributes segments points at uniformly
// spaced parameter values. Arc commands are sampled the same way via their
// center parameterization. A new subpath (M after the first) starts a fresh
// polygon; only the first subpath is returned, matching this package's use
// as a clip/mask region sampler, which operates on one simple region at a
// time.
func Sample(ctx *decimal.Context, p pathdata.Path, segments int) (Polygon, error) {
	if segments < 1 {
		segments = 1
	}
	var out Polygon
	var cur, subpathStart Point
	started := false

	for _, cmd := range p {
		if !cmd.Abs {
			return nil, pathdata.ErrInvalidPath
		}
		switch cmd.Kind {
		case pathdata.KindMove:
			pt := Point{cmd.Args[0], cmd.Args[1]}
			if started {
				// A second M starts a new subpath; stop sampling here.
				return out, nil
			}
			out = append(out, pt)
			cur, subpathStart = pt, pt
			started = true

		case pathdata.KindLine:
			pt := Point{cmd.Args[0], cmd.Args[1]}
			out = append(out, pt)
			cur = pt

		case pathdata.KindCubic:
			c1 := Point{cmd.Args[0], cmd.Args[1]}
			c2 := Point{cmd.Args[2], cmd.Args[3]}
			end := Point{cmd.Args[4], cmd.Args[5]}
			for i := 1; i <= segments; i++ {
				t := float64(i) / float64(segments)
				out = append(out, cubicAt(ctx, cur, c1, c2, end, t))
			}
			cur = end

		case pathdata.KindQuadratic:
			q1 := Point{cmd.Args[0], cmd.Args[1]}
			end := Point{cmd.Args[2], cmd.Args[3]}
			for i := 1; i <= segments; i++ {
				t := float64(i) / float64(segments)
				a, b, d := (1-t)*(1-t), 2*(1-t)*t, t*t
				out = append(out, Point{
					X: decimal.FromFloat(a*toFloat(cur.X) + b*toFloat(q1.X) + d*toFloat(end.X)),
					Y: decimal.FromFloat(a*toFloat(cur.Y) + b*toFloat(q1.Y) + d*toFloat(end.Y)),
				})
			}
			cur = end

		case pathdata.KindArc:
			pts := sampleArc(ctx, cur, cmd, segments)
			out = append(out, pts...)
			cur = Point{cmd.Args[5], cmd.Args[6]}

		case pathdata.KindClose:
			out = append(out, subpathStart)
			cur = subpathStart
		}
	}

	return out, nil
}

func cubicAt(ctx *decimal.Context, p0, p1, p2, p3 Point, t float64) Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return Point{
		X: decimal.FromFloat(a*toFloat(p0.X) + b*toFloat(p1.X) + c*toFloat(p2.X) + d*toFloat(p3.X)),
		Y: decimal.FromFloat(a*toFloat(p0.Y) + b*toFloat(p1.Y) + c*toFloat(p2.Y) + d*toFloat(p3.Y)),
	}
}

// sampleArc converts the SVG endpoint arc parameterization to the center
// parameterization (per the W3C implementation notes) and samples
// `segments` points along it.
func sampleArc(ctx *decimal.Context, start Point, cmd pathdata.Command, segments int) []Point {
	rx := math.Abs(toFloat(cmd.Args[0]))
	ry := math.Abs(toFloat(cmd.Args[1]))
	phi := toFloat(cmd.Args[2]) * math.Pi / 180
	large := toFloat(cmd.Args[3]) != 0
	sweep := toFloat(cmd.Args[4]) != 0
	x1, y1 := toFloat(start.X), toFloat(start.Y)
	x2, y2 := toFloat(cmd.Args[5]), toFloat(cmd.Args[6])

	if rx == 0 || ry == 0 {
		return []Point{{cmd.Args[5], cmd.Args[6]}}
	}

	cosPhi, sinPhi := math.Cos(phi), math.Sin(phi)
	dx2, dy2 := (x1-x2)/2, (y1-y2)/2
	x1p := cosPhi*dx2 + sinPhi*dy2
	y1p := -sinPhi*dx2 + cosPhi*dy2

	lambda := (x1p*x1p)/(rx*rx) + (y1p*y1p)/(ry*ry)
	if lambda > 1 {
		scale := math.Sqrt(lambda)
		rx *= scale
		ry *= scale
	}

	sign := 1.0
	if large == sweep {
		sign = -1.0
	}
	num := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	den := rx*rx*y1p*y1p + ry*ry*x1p*x1p
	coef := 0.0
	if den != 0 && num > 0 {
		coef = sign * math.Sqrt(num/den)
	}
	cxp := coef * (rx * y1p / ry)
	cyp := coef * -(ry * x1p / rx)

	cx := cosPhi*cxp - sinPhi*cyp + (x1+x2)/2
	cy := sinPhi*cxp + cosPhi*cyp + (y1+y2)/2

	angle := func(ux, uy, vx, vy float64) float64 {
		dot := ux*vx + uy*vy
		lenProd := math.Hypot(ux, uy) * math.Hypot(vx, vy)
		a := math.Acos(clamp(dot/lenProd, -1, 1))
		if ux*vy-uy*vx < 0 {
			a = -a
		}
		return a
	}

	theta1 := angle(1, 0, (x1p-cxp)/rx, (y1p-cyp)/ry)
	deltaTheta := angle((x1p-cxp)/rx, (y1p-cyp)/ry, (-x1p-cxp)/rx, (-y1p-cyp)/ry)
	if !sweep && deltaTheta > 0 {
		deltaTheta -= 2 * math.Pi
	} else if sweep && deltaTheta < 0 {
		deltaTheta += 2 * math.Pi
	}

	pts := make([]Point, 0, segments)
	for i := 1; i <= segments; i++ {
		t := float64(i) / float64(segments)
		theta := theta1 + t*deltaTheta
		px := cx + rx*math.Cos(theta)*cosPhi - ry*math.Sin(theta)*sinPhi
		py := cy + rx*math.Cos(theta)*sinPhi + ry*math.Sin(theta)*cosPhi
		pts = append(pts, Point{X: decimal.FromFloat(px), Y: decimal.FromFloat(py)})
	}
	return pts
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func toFloat(d decimal.Dec) float64 {
	f, _ := d.Float64()
	return f
}
