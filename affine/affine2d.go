package affine

import (
	"github.com/vectorflat/svgflatten/decimal"
	"github.com/vectorflat/svgflatten/linalg"
)

func build3(rows [3][3]decimal.Dec) linalg.Matrix {
	m, _ := linalg.NewDense(3, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			_ = m.Set(i, j, rows[i][j])
		}
	}
	return m
}

// Translation2D returns the homogeneous 3x3 matrix translating by (tx, ty).
func Translation2D(tx, ty decimal.Dec) linalg.Matrix {
	return build3([3][3]decimal.Dec{
		{decimal.One, decimal.Zero, tx},
		{decimal.Zero, decimal.One, ty},
		{decimal.Zero, decimal.Zero, decimal.One},
	})
}

// Scale2D returns the homogeneous 3x3 matrix scaling by (sx, sy).
func Scale2D(sx, sy decimal.Dec) linalg.Matrix {
	return build3([3][3]decimal.Dec{
		{sx, decimal.Zero, decimal.Zero},
		{decimal.Zero, sy, decimal.Zero},
		{decimal.Zero, decimal.Zero, decimal.One},
	})
}

// Rotate2D returns the homogeneous 3x3 matrix rotating by theta radians
// about the origin.
func Rotate2D(ctx *decimal.Context, theta decimal.Dec) linalg.Matrix {
	c := ctx.Cos(theta)
	s := ctx.Sin(theta)
	return build3([3][3]decimal.Dec{
		{c, ctx.Negate(s), decimal.Zero},
		{s, c, decimal.Zero},
		{decimal.Zero, decimal.Zero, decimal.One},
	})
}

// RotateAroundPoint2D returns T(p)*R(theta)*T(-p): rotation by theta about
// the point (px, py).
func RotateAroundPoint2D(ctx *decimal.Context, theta, px, py decimal.Dec) (linalg.Matrix, error) {
	t := Translation2D(px, py)
	r := Rotate2D(ctx, theta)
	tInv := Translation2D(ctx.Negate(px), ctx.Negate(py))
	tr, err := linalg.Mul(ctx, t, r)
	if err != nil {
		return nil, err
	}
	return linalg.Mul(ctx, tr, tInv)
}

// Skew2D returns the homogeneous 3x3 matrix skewing by ax radians along X
// and ay radians along Y (§4.3: the transform grammar's skewX/skewY
// compose through this single constructor).
func Skew2D(ctx *decimal.Context, ax, ay decimal.Dec) linalg.Matrix {
	return build3([3][3]decimal.Dec{
		{decimal.One, ctx.Tan(ax), decimal.Zero},
		{ctx.Tan(ay), decimal.One, decimal.Zero},
		{decimal.Zero, decimal.Zero, decimal.One},
	})
}

// StretchAlongAxis2D returns I + (k-1)*u*uT padded to 3x3, stretching by
// factor k along the unit axis (ux, uy). The caller is responsible for
// normalizing (ux, uy); this constructor does not fail on non-unit input,
// it simply stretches along the given (possibly non-unit) direction.
func StretchAlongAxis2D(ctx *decimal.Context, ux, uy, k decimal.Dec) linalg.Matrix {
	kMinus1 := ctx.Minus(k, decimal.One)
	return build3([3][3]decimal.Dec{
		{ctx.Plus(decimal.One, ctx.Times(kMinus1, ctx.Times(ux, ux))), ctx.Times(kMinus1, ctx.Times(ux, uy)), decimal.Zero},
		{ctx.Times(kMinus1, ctx.Times(uy, ux)), ctx.Plus(decimal.One, ctx.Times(kMinus1, ctx.Times(uy, uy))), decimal.Zero},
		{decimal.Zero, decimal.Zero, decimal.One},
	})
}

// ReflectX2D returns the homogeneous 3x3 matrix reflecting across the X
// axis (y -> -y).
func ReflectX2D() linalg.Matrix {
	return build3([3][3]decimal.Dec{
		{decimal.One, decimal.Zero, decimal.Zero},
		{decimal.Zero, decimal.One.Neg(), decimal.Zero},
		{decimal.Zero, decimal.Zero, decimal.One},
	})
}

// ReflectY2D returns the homogeneous 3x3 matrix reflecting across the Y
// axis (x -> -x).
func ReflectY2D() linalg.Matrix {
	return build3([3][3]decimal.Dec{
		{decimal.One.Neg(), decimal.Zero, decimal.Zero},
		{decimal.Zero, decimal.One, decimal.Zero},
		{decimal.Zero, decimal.Zero, decimal.One},
	})
}

// ReflectOrigin2D returns the homogeneous 3x3 matrix reflecting through the
// origin (x -> -x, y -> -y).
func ReflectOrigin2D() linalg.Matrix {
	return build3([3][3]decimal.Dec{
		{decimal.One.Neg(), decimal.Zero, decimal.Zero},
		{decimal.Zero, decimal.One.Neg(), decimal.Zero},
		{decimal.Zero, decimal.Zero, decimal.One},
	})
}

// ApplyPoint2D transforms the point (x, y) by the homogeneous 3x3 matrix m:
// homogenize to [x y 1], multiply, divide by w (affine transforms always
// carry w=1, but the division is performed explicitly so a caller that
// builds a projective matrix still gets correct results).
func ApplyPoint2D(ctx *decimal.Context, m linalg.Matrix, x, y decimal.Dec) (decimal.Dec, decimal.Dec, error) {
	v, err := linalg.MatVec(ctx, m, []decimal.Dec{x, y, decimal.One})
	if err != nil {
		return decimal.Dec{}, decimal.Dec{}, err
	}
	w := v[2]
	if ctx.IsZero(w) {
		w = decimal.One
	}
	rx, _ := ctx.Div(v[0], w)
	ry, _ := ctx.Div(v[1], w)
	return rx, ry, nil
}

// LinearPart2D returns the 2x2 upper-left linear part of a 3x3 homogeneous
// matrix (the part that acts on vectors, ignoring translation) — used by
// the transform package to recompute ellipse radii/rotation under a CTM
// (§4.6).
func LinearPart2D(m linalg.Matrix) (a, b, c, dd decimal.Dec, err error) {
	if a, err = getAt(m, 0, 0); err != nil {
		return
	}
	if b, err = getAt(m, 0, 1); err != nil {
		return
	}
	if c, err = getAt(m, 1, 0); err != nil {
		return
	}
	if dd, err = getAt(m, 1, 1); err != nil {
		return
	}
	return
}

func getAt(m linalg.Matrix, i, j int) (decimal.Dec, error) {
	return m.At(i, j)
}
