package ops

import (
	"fmt"

	"github.com/vectorflat/svgflatten/decimal"
	"github.com/vectorflat/svgflatten/linalg"
)

// QR decomposes the m×n matrix a (m>=n) into an orthogonal Q and upper
// triangular R via Householder reflections, as specified in §4.2. QR is
// used only where explicitly invoked by callers (§4.2); neither the
// flatten pipeline nor the verify package calls it.
func QR(ctx *decimal.Context, a linalg.Matrix) (q, r linalg.Matrix, err error) {
	m, n := a.Rows(), a.Cols()
	if m < n {
		return nil, nil, fmt.Errorf("QR: %w", linalg.ErrDimensionMismatch)
	}

	// Stage 1: copy A into R's working storage; Q starts as the identity.
	rWork := make([][]decimal.Dec, m)
	for i := 0; i < m; i++ {
		rWork[i] = make([]decimal.Dec, n)
		for j := 0; j < n; j++ {
			rWork[i][j], _ = a.At(i, j)
		}
	}
	qWork, err := linalg.Identity(m)
	if err != nil {
		return nil, nil, err
	}

	// Stage 2: apply a Householder reflector per column to zero the
	// sub-diagonal entries.
	for k := 0; k < n && k < m-1; k++ {
		var normX decimal.Dec
		sum := decimal.Zero
		for i := k; i < m; i++ {
			sum = ctx.Plus(sum, ctx.Times(rWork[i][k], rWork[i][k]))
		}
		normX, _ = ctx.Sqrt(sum)
		if normX.IsZero() {
			continue
		}
		if rWork[k][k].Sign() > 0 {
			normX = ctx.Negate(normX)
		}

		v := make([]decimal.Dec, m)
		v[k] = ctx.Minus(rWork[k][k], normX)
		for i := k + 1; i < m; i++ {
			v[i] = rWork[i][k]
		}
		vNormSq := decimal.Zero
		for i := k; i < m; i++ {
			vNormSq = ctx.Plus(vNormSq, ctx.Times(v[i], v[i]))
		}
		if vNormSq.IsZero() {
			continue
		}

		// Apply H = I - 2vv^T/(v^Tv) to R (from the left) and accumulate
		// into Q (from the right), column by column.
		applyHouseholderLeft(ctx, rWork, v, vNormSq, k, m, n)
		applyHouseholderRight(ctx, qWork, v, vNormSq, k, m)
	}

	rMat, err := linalg.NewDense(m, n)
	if err != nil {
		return nil, nil, err
	}
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			if i <= j {
				_ = rMat.Set(i, j, rWork[i][j])
			}
		}
	}
	return qWork, rMat, nil
}

func applyHouseholderLeft(ctx *decimal.Context, r [][]decimal.Dec, v []decimal.Dec, vNormSq decimal.Dec, k, m, n int) {
	for j := k; j < n; j++ {
		dot := decimal.Zero
		for i := k; i < m; i++ {
			dot = ctx.Plus(dot, ctx.Times(v[i], r[i][j]))
		}
		factor, _ := ctx.Div(ctx.Times(decimal.FromInt(2), dot), vNormSq)
		for i := k; i < m; i++ {
			r[i][j] = ctx.Minus(r[i][j], ctx.Times(factor, v[i]))
		}
	}
}

func applyHouseholderRight(ctx *decimal.Context, q linalg.Matrix, v []decimal.Dec, vNormSq decimal.Dec, k, m int) {
	for i := 0; i < m; i++ {
		dot := decimal.Zero
		for j := k; j < m; j++ {
			qv, _ := q.At(i, j)
			dot = ctx.Plus(dot, ctx.Times(qv, v[j]))
		}
		factor, _ := ctx.Div(ctx.Times(decimal.FromInt(2), dot), vNormSq)
		for j := k; j < m; j++ {
			qv, _ := q.At(i, j)
			_ = q.Set(i, j, ctx.Minus(qv, ctx.Times(factor, v[j])))
		}
	}
}
