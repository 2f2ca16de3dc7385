package verify

import (
	"github.com/vectorflat/svgflatten/affine"
	"github.com/vectorflat/svgflatten/decimal"
	"github.com/vectorflat/svgflatten/linalg"
	"github.com/vectorflat/svgflatten/linalg/ops"
)

// CheckInversion verifies M*inv(M) ≈ I within tol (§4.9 "Inversion").
func CheckInversion(ctx *decimal.Context, m linalg.Matrix, tol decimal.Dec) Result {
	inv, err := ops.Inverse(ctx, m)
	if err != nil {
		return fail(tol, err, "matrix is not invertible", nil)
	}
	prod, err := linalg.Mul(ctx, m, inv)
	if err != nil {
		return fail(tol, err, "M*inv(M) multiplication failed", nil)
	}
	ident, err := linalg.Identity(m.Rows())
	if err != nil {
		return fail(tol, err, "identity construction failed", nil)
	}
	if !linalg.Equal(ctx, prod, ident, tol) {
		return fail(tol, nil, "M*inv(M) deviates from identity beyond tolerance", nil)
	}
	return ok(tol, "M*inv(M) == I within tolerance", nil)
}

// CheckAssociativity verifies (A*B)*C == A*(B*C) within tol (§4.9
// "Associativity").
func CheckAssociativity(ctx *decimal.Context, a, b, c linalg.Matrix, tol decimal.Dec) Result {
	ab, err := linalg.Mul(ctx, a, b)
	if err != nil {
		return fail(tol, err, "A*B failed", nil)
	}
	abc1, err := linalg.Mul(ctx, ab, c)
	if err != nil {
		return fail(tol, err, "(A*B)*C failed", nil)
	}
	bc, err := linalg.Mul(ctx, b, c)
	if err != nil {
		return fail(tol, err, "B*C failed", nil)
	}
	abc2, err := linalg.Mul(ctx, a, bc)
	if err != nil {
		return fail(tol, err, "A*(B*C) failed", nil)
	}
	if !linalg.Equal(ctx, abc1, abc2, tol) {
		return fail(tol, nil, "(A*B)*C != A*(B*C) beyond tolerance", nil)
	}
	return ok(tol, "multiplication is associative within tolerance", nil)
}

// CheckRoundTrip verifies inv(M)*(M*p) == p within tol (§4.9
// "Round-trip"), for a 2D point p under a 3x3 homogeneous matrix m.
func CheckRoundTrip(ctx *decimal.Context, m linalg.Matrix, px, py, tol decimal.Dec) Result {
	inv, err := ops.Inverse(ctx, m)
	if err != nil {
		return fail(tol, err, "matrix is not invertible", nil)
	}
	tx, ty, err := affine.ApplyPoint2D(ctx, m, px, py)
	if err != nil {
		return fail(tol, err, "forward transform failed", nil)
	}
	rx, ry, err := affine.ApplyPoint2D(ctx, inv, tx, ty)
	if err != nil {
		return fail(tol, err, "inverse transform failed", nil)
	}
	if !ctx.EqualsWithin(rx, px, tol) || !ctx.EqualsWithin(ry, py, tol) {
		return fail(tol, nil, "round trip did not recover the original point", map[string]string{
			"px": ctx.ToFixed(px, 10), "py": ctx.ToFixed(py, 10),
			"rx": ctx.ToFixed(rx, 10), "ry": ctx.ToFixed(ry, 10),
		})
	}
	return ok(tol, "round trip recovered the original point", nil)
}

// CheckGeometryPreservation verifies that, under affine M, the area of
// triangle (p0,p1,p2) scales by |det M| (§4.9 "Geometry preservation").
func CheckGeometryPreservation(ctx *decimal.Context, m linalg.Matrix, p0x, p0y, p1x, p1y, p2x, p2y, tol decimal.Dec) Result {
	triangleArea := func(ax, ay, bx, by, cx, cy decimal.Dec) decimal.Dec {
		t1 := ctx.Times(ctx.Minus(bx, ax), ctx.Minus(cy, ay))
		t2 := ctx.Times(ctx.Minus(cx, ax), ctx.Minus(by, ay))
		half, _ := ctx.Div(ctx.Minus(t1, t2), decimal.FromInt(2))
		return ctx.Abs(half)
	}
	before := triangleArea(p0x, p0y, p1x, p1y, p2x, p2y)

	q0x, q0y, err := affine.ApplyPoint2D(ctx, m, p0x, p0y)
	if err != nil {
		return fail(tol, err, "transforming p0 failed", nil)
	}
	q1x, q1y, err := affine.ApplyPoint2D(ctx, m, p1x, p1y)
	if err != nil {
		return fail(tol, err, "transforming p1 failed", nil)
	}
	q2x, q2y, err := affine.ApplyPoint2D(ctx, m, p2x, p2y)
	if err != nil {
		return fail(tol, err, "transforming p2 failed", nil)
	}
	after := triangleArea(q0x, q0y, q1x, q1y, q2x, q2y)

	a, b, c, d, err := affine.LinearPart2D(m)
	if err != nil {
		return fail(tol, err, "extracting linear part failed", nil)
	}
	det := ctx.Abs(ctx.Minus(ctx.Times(a, d), ctx.Times(b, c)))
	expected := ctx.Times(det, before)

	if !ctx.EqualsWithin(after, expected, tol) {
		return fail(tol, nil, "transformed area does not scale by |det M|", map[string]string{
			"before": ctx.ToFixed(before, 10), "after": ctx.ToFixed(after, 10),
			"expected": ctx.ToFixed(expected, 10),
		})
	}
	return ok(tol, "triangle area scaled by |det M| within tolerance", nil)
}
