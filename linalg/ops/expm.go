package ops

import (
	"fmt"

	"github.com/vectorflat/svgflatten/decimal"
	"github.com/vectorflat/svgflatten/linalg"
)

// Expm computes the matrix exponential of the square matrix a by
// scaling-and-squaring: a is scaled down by a power of two until its entries
// are small, the Taylor series is summed until the next term's entries all
// fall below a tolerance derived from the working precision, and the result
// is squared back up s times (§4.2).
func Expm(ctx *decimal.Context, a linalg.Matrix) (linalg.Matrix, error) {
	n := a.Rows()
	if n != a.Cols() {
		return nil, fmt.Errorf("Expm: %w", linalg.ErrNotSquare)
	}

	// Stage 1: choose a scaling power s (at most 64) so that the largest
	// |entry| of A/2^s is at most 1.
	maxAbs := decimal.Zero
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, _ := a.At(i, j)
			if v.Abs().GreaterThan(maxAbs) {
				maxAbs = v.Abs()
			}
		}
	}
	s := 0
	scaled := a
	two := decimal.FromInt(2)
	for maxAbs.GreaterThan(decimal.One) && s < 64 {
		maxAbs, _ = ctx.Div(maxAbs, two)
		s++
	}
	if s > 0 {
		factor, _ := ctx.Div(decimal.One, ctx.Pow(two, decimal.FromInt(int64(s))))
		scaled, _ = linalg.Scale(ctx, a, factor)
	}

	// Stage 2: sum the Taylor series term_k = A^k / k! until the next term's
	// max-abs entry drops below the tolerance derived from the working
	// precision.
	tol := decimal.One.Shift(int32(-(ctx.Precision() - 4)))
	result, err := linalg.Identity(n)
	if err != nil {
		return nil, err
	}
	term, err := linalg.Identity(n)
	if err != nil {
		return nil, err
	}
	for k := 1; k < 200; k++ {
		term64, err := linalg.Mul(ctx, term, scaled)
		if err != nil {
			return nil, err
		}
		kDec := decimal.FromInt(int64(k))
		term, err = linalg.Scale(ctx, term64, reciprocal(ctx, kDec))
		if err != nil {
			return nil, err
		}
		result, err = linalg.Add(ctx, result, term)
		if err != nil {
			return nil, err
		}
		if maxAbsOf(term).LessThan(tol) {
			break
		}
	}

	// Stage 3: square the result s times to undo the initial scaling.
	for i := 0; i < s; i++ {
		result, err = linalg.Mul(ctx, result, result)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

func reciprocal(ctx *decimal.Context, d decimal.Dec) decimal.Dec {
	r, _ := ctx.Div(decimal.One, d)
	return r
}

func maxAbsOf(m linalg.Matrix) decimal.Dec {
	max := decimal.Zero
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, _ := m.At(i, j)
			if v.Abs().GreaterThan(max) {
				max = v.Abs()
			}
		}
	}
	return max
}
