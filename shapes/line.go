package shapes

import (
	"github.com/vectorflat/svgflatten/decimal"
	"github.com/vectorflat/svgflatten/pathdata"
)

// Point2D is a caller-facing (x,y) pair, used by Polyline and Polygon.
type Point2D struct {
	X, Y decimal.Dec
}

// Line converts a line(x1,y1,x2,y2) to an open two-command Path (§4.5).
func Line(x1, y1, x2, y2 decimal.Dec) pathdata.Path {
	return pathdata.Path{
		{Kind: pathdata.KindMove, Abs: true, Args: []decimal.Dec{x1, y1}},
		{Kind: pathdata.KindLine, Abs: true, Args: []decimal.Dec{x2, y2}},
	}
}

// Polyline converts an ordered list of points to an open straight-line
// chain (§4.5). Returns ErrDegenerateShape when fewer than two points are
// given.
func Polyline(points []Point2D) (pathdata.Path, error) {
	if len(points) < 2 {
		return nil, ErrDegenerateShape
	}
	p := make(pathdata.Path, 0, len(points))
	p = append(p, pathdata.Command{Kind: pathdata.KindMove, Abs: true, Args: []decimal.Dec{points[0].X, points[0].Y}})
	for _, pt := range points[1:] {
		p = append(p, pathdata.Command{Kind: pathdata.KindLine, Abs: true, Args: []decimal.Dec{pt.X, pt.Y}})
	}
	return p, nil
}

// Polygon converts an ordered list of points to a straight-line chain
// closed with Z (§4.5).
func Polygon(points []Point2D) (pathdata.Path, error) {
	p, err := Polyline(points)
	if err != nil {
		return nil, err
	}
	return append(p, pathdata.Command{Kind: pathdata.KindClose}), nil
}
