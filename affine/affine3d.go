package affine

import (
	"github.com/vectorflat/svgflatten/decimal"
	"github.com/vectorflat/svgflatten/linalg"
)

func build4(rows [4][4]decimal.Dec) linalg.Matrix {
	m, _ := linalg.NewDense(4, 4)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			_ = m.Set(i, j, rows[i][j])
		}
	}
	return m
}

// Translation3D returns the homogeneous 4x4 translation matrix.
func Translation3D(tx, ty, tz decimal.Dec) linalg.Matrix {
	return build4([4][4]decimal.Dec{
		{decimal.One, decimal.Zero, decimal.Zero, tx},
		{decimal.Zero, decimal.One, decimal.Zero, ty},
		{decimal.Zero, decimal.Zero, decimal.One, tz},
		{decimal.Zero, decimal.Zero, decimal.Zero, decimal.One},
	})
}

// Scale3D returns the homogeneous 4x4 scale matrix.
func Scale3D(sx, sy, sz decimal.Dec) linalg.Matrix {
	return build4([4][4]decimal.Dec{
		{sx, decimal.Zero, decimal.Zero, decimal.Zero},
		{decimal.Zero, sy, decimal.Zero, decimal.Zero},
		{decimal.Zero, decimal.Zero, sz, decimal.Zero},
		{decimal.Zero, decimal.Zero, decimal.Zero, decimal.One},
	})
}

// RotateX3D returns the homogeneous 4x4 matrix rotating by theta radians
// about the X axis.
func RotateX3D(ctx *decimal.Context, theta decimal.Dec) linalg.Matrix {
	c, s := ctx.Cos(theta), ctx.Sin(theta)
	return build4([4][4]decimal.Dec{
		{decimal.One, decimal.Zero, decimal.Zero, decimal.Zero},
		{decimal.Zero, c, ctx.Negate(s), decimal.Zero},
		{decimal.Zero, s, c, decimal.Zero},
		{decimal.Zero, decimal.Zero, decimal.Zero, decimal.One},
	})
}

// RotateY3D returns the homogeneous 4x4 matrix rotating by theta radians
// about the Y axis.
func RotateY3D(ctx *decimal.Context, theta decimal.Dec) linalg.Matrix {
	c, s := ctx.Cos(theta), ctx.Sin(theta)
	return build4([4][4]decimal.Dec{
		{c, decimal.Zero, s, decimal.Zero},
		{decimal.Zero, decimal.One, decimal.Zero, decimal.Zero},
		{ctx.Negate(s), decimal.Zero, c, decimal.Zero},
		{decimal.Zero, decimal.Zero, decimal.Zero, decimal.One},
	})
}

// RotateZ3D returns the homogeneous 4x4 matrix rotating by theta radians
// about the Z axis.
func RotateZ3D(ctx *decimal.Context, theta decimal.Dec) linalg.Matrix {
	c, s := ctx.Cos(theta), ctx.Sin(theta)
	return build4([4][4]decimal.Dec{
		{c, ctx.Negate(s), decimal.Zero, decimal.Zero},
		{s, c, decimal.Zero, decimal.Zero},
		{decimal.Zero, decimal.Zero, decimal.One, decimal.Zero},
		{decimal.Zero, decimal.Zero, decimal.Zero, decimal.One},
	})
}

// RotateAroundAxis3D returns the Rodrigues rotation matrix by theta radians
// about the axis (ax, ay, az), which is normalized automatically. Fails
// with ErrZeroAxis when the axis is the zero vector (§4.3).
func RotateAroundAxis3D(ctx *decimal.Context, theta, ax, ay, az decimal.Dec) (linalg.Matrix, error) {
	axis := linalg.NewVector(ax, ay, az)
	unit, err := axis.Normalize(ctx)
	if err != nil {
		return nil, ErrZeroAxis
	}
	x, y, z := unit[0], unit[1], unit[2]
	c, s := ctx.Cos(theta), ctx.Sin(theta)
	oneMinusC := ctx.Minus(decimal.One, c)

	xx := ctx.Times(x, x)
	yy := ctx.Times(y, y)
	zz := ctx.Times(z, z)
	xy := ctx.Times(x, y)
	xz := ctx.Times(x, z)
	yz := ctx.Times(y, z)

	r00 := ctx.Plus(c, ctx.Times(xx, oneMinusC))
	r01 := ctx.Minus(ctx.Times(xy, oneMinusC), ctx.Times(z, s))
	r02 := ctx.Plus(ctx.Times(xz, oneMinusC), ctx.Times(y, s))

	r10 := ctx.Plus(ctx.Times(xy, oneMinusC), ctx.Times(z, s))
	r11 := ctx.Plus(c, ctx.Times(yy, oneMinusC))
	r12 := ctx.Minus(ctx.Times(yz, oneMinusC), ctx.Times(x, s))

	r20 := ctx.Minus(ctx.Times(xz, oneMinusC), ctx.Times(y, s))
	r21 := ctx.Plus(ctx.Times(yz, oneMinusC), ctx.Times(x, s))
	r22 := ctx.Plus(c, ctx.Times(zz, oneMinusC))

	return build4([4][4]decimal.Dec{
		{r00, r01, r02, decimal.Zero},
		{r10, r11, r12, decimal.Zero},
		{r20, r21, r22, decimal.Zero},
		{decimal.Zero, decimal.Zero, decimal.Zero, decimal.One},
	}), nil
}

// RotateAroundPoint3D returns T(p)*R*T(-p), conjugating rotation r by
// translation to the point (px, py, pz).
func RotateAroundPoint3D(ctx *decimal.Context, r linalg.Matrix, px, py, pz decimal.Dec) (linalg.Matrix, error) {
	t := Translation3D(px, py, pz)
	tInv := Translation3D(ctx.Negate(px), ctx.Negate(py), ctx.Negate(pz))
	tr, err := linalg.Mul(ctx, t, r)
	if err != nil {
		return nil, err
	}
	return linalg.Mul(ctx, tr, tInv)
}

// ReflectXY3D reflects through the XY plane (z -> -z).
func ReflectXY3D() linalg.Matrix {
	return build4([4][4]decimal.Dec{
		{decimal.One, decimal.Zero, decimal.Zero, decimal.Zero},
		{decimal.Zero, decimal.One, decimal.Zero, decimal.Zero},
		{decimal.Zero, decimal.Zero, decimal.One.Neg(), decimal.Zero},
		{decimal.Zero, decimal.Zero, decimal.Zero, decimal.One},
	})
}

// ReflectXZ3D reflects through the XZ plane (y -> -y).
func ReflectXZ3D() linalg.Matrix {
	return build4([4][4]decimal.Dec{
		{decimal.One, decimal.Zero, decimal.Zero, decimal.Zero},
		{decimal.Zero, decimal.One.Neg(), decimal.Zero, decimal.Zero},
		{decimal.Zero, decimal.Zero, decimal.One, decimal.Zero},
		{decimal.Zero, decimal.Zero, decimal.Zero, decimal.One},
	})
}

// ReflectYZ3D reflects through the YZ plane (x -> -x).
func ReflectYZ3D() linalg.Matrix {
	return build4([4][4]decimal.Dec{
		{decimal.One.Neg(), decimal.Zero, decimal.Zero, decimal.Zero},
		{decimal.Zero, decimal.One, decimal.Zero, decimal.Zero},
		{decimal.Zero, decimal.Zero, decimal.One, decimal.Zero},
		{decimal.Zero, decimal.Zero, decimal.Zero, decimal.One},
	})
}

// ReflectOrigin3D reflects through the origin (x,y,z -> -x,-y,-z).
func ReflectOrigin3D() linalg.Matrix {
	return build4([4][4]decimal.Dec{
		{decimal.One.Neg(), decimal.Zero, decimal.Zero, decimal.Zero},
		{decimal.Zero, decimal.One.Neg(), decimal.Zero, decimal.Zero},
		{decimal.Zero, decimal.Zero, decimal.One.Neg(), decimal.Zero},
		{decimal.Zero, decimal.Zero, decimal.Zero, decimal.One},
	})
}
