package shapes

import "github.com/vectorflat/svgflatten/decimal"

// div2 returns a/2. The divisor is never zero, so the error return from
// Div is always nil here.
func div2(ctx *decimal.Context, a decimal.Dec) decimal.Dec {
	half, _ := ctx.Div(a, decimal.FromInt(2))
	return half
}

// legacyKappa returns 4/3*(sqrt(2)-1), the classic quarter-circle cubic
// control-point distance (§4.5, "circle/ellipse (legacy)").
func legacyKappa(ctx *decimal.Context) decimal.Dec {
	two := decimal.FromInt(2)
	sqrt2, _ := ctx.Sqrt(two)
	fourThirds, _ := ctx.Div(decimal.FromInt(4), decimal.FromInt(3))
	return ctx.Times(fourThirds, ctx.Minus(sqrt2, decimal.One))
}

// arcControlDistance returns the optimal cubic-Bezier control-point
// distance for an arc spanning angle theta (radians):
// L = (4/3)*tan(theta/4) (§4.5, "circle/ellipse (high-precision)").
func arcControlDistance(ctx *decimal.Context, theta decimal.Dec) decimal.Dec {
	quarterAngle, _ := ctx.Div(theta, decimal.FromInt(4))
	fourThirds, _ := ctx.Div(decimal.FromInt(4), decimal.FromInt(3))
	return ctx.Times(fourThirds, ctx.Tan(quarterAngle))
}
