package linalg

import "github.com/vectorflat/svgflatten/decimal"

// Vector is a sequence of decimal.Dec values. Cross is restricted to length
// 3 (§3); Normalize and AngleBetween fail with ErrZeroVector on the zero
// vector.
type Vector []decimal.Dec

// NewVector builds a Vector from individual components.
func NewVector(components ...decimal.Dec) Vector {
	v := make(Vector, len(components))
	copy(v, components)
	return v
}

// Add returns a+b element-wise. Fails with ErrDimensionMismatch on length
// mismatch.
func (a Vector) Add(ctx *decimal.Context, b Vector) (Vector, error) {
	return a.zip(ctx, b, ctx.Plus)
}

// Sub returns a-b element-wise.
func (a Vector) Sub(ctx *decimal.Context, b Vector) (Vector, error) {
	return a.zip(ctx, b, ctx.Minus)
}

func (a Vector) zip(ctx *decimal.Context, b Vector, op func(decimal.Dec, decimal.Dec) decimal.Dec) (Vector, error) {
	if len(a) != len(b) {
		return nil, ErrDimensionMismatch
	}
	out := make(Vector, len(a))
	for i := range a {
		out[i] = op(a[i], b[i])
	}
	return out, nil
}

// Dot returns the dot product of a and b.
func (a Vector) Dot(ctx *decimal.Context, b Vector) (decimal.Dec, error) {
	if len(a) != len(b) {
		return decimal.Dec{}, ErrDimensionMismatch
	}
	sum := decimal.Zero
	for i := range a {
		sum = ctx.Plus(sum, ctx.Times(a[i], b[i]))
	}
	return sum, nil
}

// Cross returns the 3D cross product a×b. Fails with ErrBadVectorLength
// unless both operands have length 3.
func (a Vector) Cross(ctx *decimal.Context, b Vector) (Vector, error) {
	if len(a) != 3 || len(b) != 3 {
		return nil, ErrBadVectorLength
	}
	return Vector{
		ctx.Minus(ctx.Times(a[1], b[2]), ctx.Times(a[2], b[1])),
		ctx.Minus(ctx.Times(a[2], b[0]), ctx.Times(a[0], b[2])),
		ctx.Minus(ctx.Times(a[0], b[1]), ctx.Times(a[1], b[0])),
	}, nil
}

// Outer returns the outer product a⊗b as a Matrix of shape len(a)×len(b).
func (a Vector) Outer(ctx *decimal.Context, b Vector) (Matrix, error) {
	m, err := NewDense(len(a), len(b))
	if err != nil {
		return nil, err
	}
	for i := range a {
		for j := range b {
			_ = m.Set(i, j, ctx.Times(a[i], b[j]))
		}
	}
	return m, nil
}

// Norm returns the Euclidean (L2) norm of a.
func (a Vector) Norm(ctx *decimal.Context) (decimal.Dec, error) {
	sum := decimal.Zero
	for _, v := range a {
		sum = ctx.Plus(sum, ctx.Times(v, v))
	}
	return ctx.Sqrt(sum)
}

// Normalize returns a/|a|. Fails with ErrZeroVector when a is the zero
// vector.
func (a Vector) Normalize(ctx *decimal.Context) (Vector, error) {
	n, err := a.Norm(ctx)
	if err != nil {
		return nil, err
	}
	if ctx.IsZero(n) {
		return nil, ErrZeroVector
	}
	out := make(Vector, len(a))
	for i, v := range a {
		out[i], _ = ctx.Div(v, n)
	}
	return out, nil
}

// AngleBetween returns the angle in radians between a and b. Fails with
// ErrZeroVector if either operand is the zero vector.
func (a Vector) AngleBetween(ctx *decimal.Context, b Vector) (decimal.Dec, error) {
	dot, err := a.Dot(ctx, b)
	if err != nil {
		return decimal.Dec{}, err
	}
	na, err := a.Norm(ctx)
	if err != nil {
		return decimal.Dec{}, err
	}
	nb, err := b.Norm(ctx)
	if err != nil {
		return decimal.Dec{}, err
	}
	if ctx.IsZero(na) || ctx.IsZero(nb) {
		return decimal.Dec{}, ErrZeroVector
	}
	denom := ctx.Times(na, nb)
	cosTheta, _ := ctx.Div(dot, denom)
	return ctx.Acos(clampUnit(cosTheta))
}

func clampUnit(d decimal.Dec) decimal.Dec {
	if d.GreaterThan(decimal.One) {
		return decimal.One
	}
	negOne := decimal.One.Neg()
	if d.LessThan(negOne) {
		return negOne
	}
	return d
}

// ProjectOnto returns the projection of a onto b: ((a·b)/(b·b)) * b.
func (a Vector) ProjectOnto(ctx *decimal.Context, b Vector) (Vector, error) {
	dot, err := a.Dot(ctx, b)
	if err != nil {
		return nil, err
	}
	bb, err := b.Dot(ctx, b)
	if err != nil {
		return nil, err
	}
	if ctx.IsZero(bb) {
		return nil, ErrZeroVector
	}
	scale, _ := ctx.Div(dot, bb)
	out := make(Vector, len(b))
	for i, v := range b {
		out[i] = ctx.Times(scale, v)
	}
	return out, nil
}

// Orthogonal returns a vector orthogonal to a. For length 2 it returns
// (-y, x). For length > 2 it applies Gram-Schmidt against the standard
// basis vectors in order, returning the first basis vector that is not
// parallel to a, made orthogonal. Fails with ErrZeroVector if a degenerates
// against every standard basis vector (only possible for the zero vector).
func (a Vector) Orthogonal(ctx *decimal.Context) (Vector, error) {
	if len(a) == 2 {
		return Vector{ctx.Negate(a[1]), a[0]}, nil
	}
	for k := 0; k < len(a); k++ {
		e := make(Vector, len(a))
		e[k] = decimal.One
		proj, err := e.ProjectOnto(ctx, a)
		if err == ErrZeroVector {
			continue
		}
		if err != nil {
			return nil, err
		}
		diff, err := e.Sub(ctx, proj)
		if err != nil {
			return nil, err
		}
		if n, _ := diff.Norm(ctx); !ctx.IsZero(n) {
			return diff, nil
		}
	}
	return nil, ErrZeroVector
}

// Distance returns the Euclidean distance between a and b.
func (a Vector) Distance(ctx *decimal.Context, b Vector) (decimal.Dec, error) {
	diff, err := a.Sub(ctx, b)
	if err != nil {
		return decimal.Dec{}, err
	}
	return diff.Norm(ctx)
}

// Equals reports whether a and b are equal within tol (§3).
func (a Vector) Equals(ctx *decimal.Context, b Vector, tol decimal.Dec) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !ctx.EqualsWithin(a[i], b[i], tol) {
			return false
		}
	}
	return true
}
