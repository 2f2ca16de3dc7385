package ops

import (
	"fmt"

	"github.com/vectorflat/svgflatten/decimal"
	"github.com/vectorflat/svgflatten/linalg"
)

// Inverse returns A^-1 via Gauss-Jordan elimination on the augmented
// [A | I] matrix, with partial pivoting. Fails with linalg.ErrNotSquare if A
// is not square and linalg.ErrSingular on a zero pivot (§4.2).
//
// Time complexity: O(n^3).
func Inverse(ctx *decimal.Context, a linalg.Matrix) (linalg.Matrix, error) {
	n := a.Rows()
	if n != a.Cols() {
		return nil, fmt.Errorf("Inverse: %w", linalg.ErrNotSquare)
	}

	// Stage 1: build the augmented [A | I] working copy.
	aug := make([][]decimal.Dec, n)
	for i := 0; i < n; i++ {
		aug[i] = make([]decimal.Dec, 2*n)
		for j := 0; j < n; j++ {
			aug[i][j], _ = a.At(i, j)
		}
		aug[i][n+i] = decimal.One
	}

	// Stage 2: forward elimination with partial pivoting, normalizing each
	// pivot row, then Stage 3: back-eliminate above the pivot.
	for k := 0; k < n; k++ {
		pivotRow := k
		pivotVal := aug[k][k].Abs()
		for i := k + 1; i < n; i++ {
			if aug[i][k].Abs().GreaterThan(pivotVal) {
				pivotRow, pivotVal = i, aug[i][k].Abs()
			}
		}
		if pivotVal.IsZero() {
			return nil, fmt.Errorf("Inverse: %w", linalg.ErrSingular)
		}
		aug[k], aug[pivotRow] = aug[pivotRow], aug[k]

		pivot := aug[k][k]
		for j := 0; j < 2*n; j++ {
			aug[k][j], _ = ctx.Div(aug[k][j], pivot)
		}
		for i := 0; i < n; i++ {
			if i == k {
				continue
			}
			factor := aug[i][k]
			if factor.IsZero() {
				continue
			}
			for j := 0; j < 2*n; j++ {
				aug[i][j] = ctx.Minus(aug[i][j], ctx.Times(factor, aug[k][j]))
			}
		}
	}

	// Stage 4: extract the right half as the inverse.
	inv, err := linalg.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			_ = inv.Set(i, j, aug[i][n+j])
		}
	}
	return inv, nil
}
