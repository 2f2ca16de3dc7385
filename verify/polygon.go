package verify

import (
	"github.com/vectorflat/svgflatten/decimal"
	"github.com/vectorflat/svgflatten/polygon"
)

// CheckContainment verifies that every vertex of inner lies within
// distanceTol of outer, treating a vertex within tolerance of an edge as
// contained (§4.9 "Polygon containment"). This is the predicate used to
// tolerate curve-sampling error rather than requiring exact containment.
func CheckContainment(ctx *decimal.Context, inner, outer polygon.Polygon, distanceTol decimal.Dec) Result {
	for _, v := range inner {
		if polygon.PointInPolygon(ctx, outer, v, distanceTol) {
			continue
		}
		d := polygon.MinDistanceToPolygonEdge(ctx, outer, v)
		if ctx.GreaterThan(d, distanceTol) {
			return fail(distanceTol, nil, "inner polygon vertex lies outside outer beyond distance tolerance", map[string]string{
				"x": ctx.ToFixed(v.X, 10), "y": ctx.ToFixed(v.Y, 10), "distance": ctx.ToFixed(d, 10),
			})
		}
	}
	return ok(distanceTol, "inner polygon contained within outer, within distance tolerance", nil)
}

// CheckIntersectionBounds verifies intersection ⊆ subject, intersection
// ⊆ clip, and area(intersection) ≤ min(area(subject), area(clip))
// (§4.9 "Polygon intersection").
func CheckIntersectionBounds(ctx *decimal.Context, subject, clip, intersection polygon.Polygon, distanceTol decimal.Dec) Result {
	if r := CheckContainment(ctx, intersection, subject, distanceTol); !r.Valid {
		return fail(distanceTol, r.Error, "intersection is not contained in subject", r.Details)
	}
	if r := CheckContainment(ctx, intersection, clip, distanceTol); !r.Valid {
		return fail(distanceTol, r.Error, "intersection is not contained in clip", r.Details)
	}

	subjectArea, err := polygon.Area(ctx, subject)
	if err != nil {
		return fail(distanceTol, err, "subject area computation failed", nil)
	}
	clipArea, err := polygon.Area(ctx, clip)
	if err != nil {
		return fail(distanceTol, err, "clip area computation failed", nil)
	}
	interArea, err := polygon.Area(ctx, intersection)
	if err != nil {
		return fail(distanceTol, err, "intersection area computation failed", nil)
	}
	minArea := subjectArea
	if ctx.LessThan(clipArea, minArea) {
		minArea = clipArea
	}
	if ctx.GreaterThan(interArea, minArea) {
		return fail(distanceTol, nil, "intersection area exceeds min(area(subject), area(clip))", map[string]string{
			"intersectionArea": ctx.ToFixed(interArea, 10), "minArea": ctx.ToFixed(minArea, 10),
		})
	}
	return ok(distanceTol, "intersection is bounded by subject and clip", nil)
}
