package verify

import (
	"github.com/vectorflat/svgflatten/affine"
	"github.com/vectorflat/svgflatten/decimal"
	"github.com/vectorflat/svgflatten/linalg"
)

// CheckLinearGradientBake verifies that transforming the gradient's
// original endpoints under m reproduces the endpoints bakeGradients
// wrote, within tol (§4.9 "Linear gradient").
func CheckLinearGradientBake(ctx *decimal.Context, m linalg.Matrix, origX1, origY1, origX2, origY2, bakedX1, bakedY1, bakedX2, bakedY2, tol decimal.Dec) Result {
	wx1, wy1, err := affine.ApplyPoint2D(ctx, m, origX1, origY1)
	if err != nil {
		return fail(tol, err, "transforming original x1,y1 failed", nil)
	}
	wx2, wy2, err := affine.ApplyPoint2D(ctx, m, origX2, origY2)
	if err != nil {
		return fail(tol, err, "transforming original x2,y2 failed", nil)
	}
	if !ctx.EqualsWithin(wx1, bakedX1, tol) || !ctx.EqualsWithin(wy1, bakedY1, tol) ||
		!ctx.EqualsWithin(wx2, bakedX2, tol) || !ctx.EqualsWithin(wy2, bakedY2, tol) {
		return fail(tol, nil, "baked gradient endpoints do not match the transformed originals", map[string]string{
			"wantX1": ctx.ToFixed(wx1, 10), "gotX1": ctx.ToFixed(bakedX1, 10),
			"wantY1": ctx.ToFixed(wy1, 10), "gotY1": ctx.ToFixed(bakedY1, 10),
			"wantX2": ctx.ToFixed(wx2, 10), "gotX2": ctx.ToFixed(bakedX2, 10),
			"wantY2": ctx.ToFixed(wy2, 10), "gotY2": ctx.ToFixed(bakedY2, 10),
		})
	}
	return ok(tol, "baked gradient endpoints match the transformed originals", nil)
}
