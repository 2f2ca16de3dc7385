package shapes

import (
	"github.com/vectorflat/svgflatten/decimal"
	"github.com/vectorflat/svgflatten/pathdata"
)

// CircleLegacy approximates a circle as a degenerate ellipse (rx=ry=r)
// using the classic four-cubic kappa approximation (§4.5).
func CircleLegacy(ctx *decimal.Context, cx, cy, r decimal.Dec) (pathdata.Path, error) {
	return EllipseLegacy(ctx, cx, cy, r, r)
}

// CircleNArc approximates a circle as a degenerate ellipse (rx=ry=r) using
// n cubic Beziers, n rounded up to a multiple of 4 (§4.5).
func CircleNArc(ctx *decimal.Context, cx, cy, r decimal.Dec, n int) (pathdata.Path, error) {
	return EllipseNArc(ctx, cx, cy, r, r, n)
}
