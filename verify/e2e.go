package verify

import "github.com/vectorflat/svgflatten/decimal"

// CheckAreaConservation verifies clippedArea <= originalArea and
// outsideArea = originalArea - clippedArea >= 0, within tol (§4.9 "E2E",
// §8 clipPath intersection scenario).
func CheckAreaConservation(ctx *decimal.Context, originalArea, clippedArea, outsideArea, tol decimal.Dec) Result {
	negTol := ctx.Negate(tol)
	if ctx.GreaterThan(ctx.Minus(clippedArea, originalArea), tol) {
		return fail(tol, nil, "clipped area exceeds original area beyond tolerance", map[string]string{
			"originalArea": ctx.ToFixed(originalArea, 10), "clippedArea": ctx.ToFixed(clippedArea, 10),
		})
	}
	expectedOutside := ctx.Minus(originalArea, clippedArea)
	if ctx.LessThan(outsideArea, negTol) {
		return fail(tol, nil, "outside area is negative beyond tolerance", map[string]string{
			"outsideArea": ctx.ToFixed(outsideArea, 10),
		})
	}
	if !ctx.EqualsWithin(outsideArea, expectedOutside, tol) {
		return fail(tol, nil, "outside area does not equal originalArea - clippedArea within tolerance", map[string]string{
			"outsideArea": ctx.ToFixed(outsideArea, 10), "expected": ctx.ToFixed(expectedOutside, 10),
		})
	}
	return ok(tol, "area conservation holds within tolerance", nil)
}
