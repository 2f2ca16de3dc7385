package ops

import (
	"fmt"

	"github.com/vectorflat/svgflatten/decimal"
	"github.com/vectorflat/svgflatten/linalg"
)

// Solve returns x such that A*x = b, via forward elimination with partial
// pivoting followed by back-substitution. Fails with linalg.ErrNotSquare if
// A is not square, linalg.ErrDimensionMismatch if len(b) != A.Rows(), and
// linalg.ErrSingular on a zero pivot.
func Solve(ctx *decimal.Context, a linalg.Matrix, b []decimal.Dec) ([]decimal.Dec, error) {
	n := a.Rows()
	if n != a.Cols() {
		return nil, fmt.Errorf("Solve: %w", linalg.ErrNotSquare)
	}
	if len(b) != n {
		return nil, fmt.Errorf("Solve: %w", linalg.ErrDimensionMismatch)
	}

	// Stage 1: prepare an augmented working copy [A | b].
	aug := make([][]decimal.Dec, n)
	for i := 0; i < n; i++ {
		aug[i] = make([]decimal.Dec, n+1)
		for j := 0; j < n; j++ {
			aug[i][j], _ = a.At(i, j)
		}
		aug[i][n] = b[i]
	}

	// Stage 2: forward-eliminate with partial pivoting.
	for k := 0; k < n; k++ {
		pivotRow := k
		pivotVal := aug[k][k].Abs()
		for i := k + 1; i < n; i++ {
			if aug[i][k].Abs().GreaterThan(pivotVal) {
				pivotRow, pivotVal = i, aug[i][k].Abs()
			}
		}
		if pivotVal.IsZero() {
			return nil, fmt.Errorf("Solve: %w", linalg.ErrSingular)
		}
		aug[k], aug[pivotRow] = aug[pivotRow], aug[k]
		for i := k + 1; i < n; i++ {
			factor, _ := ctx.Div(aug[i][k], aug[k][k])
			for j := k; j <= n; j++ {
				aug[i][j] = ctx.Minus(aug[i][j], ctx.Times(factor, aug[k][j]))
			}
		}
	}

	// Stage 3: back-substitute.
	x := make([]decimal.Dec, n)
	for i := n - 1; i >= 0; i-- {
		sum := aug[i][n]
		for j := i + 1; j < n; j++ {
			sum = ctx.Minus(sum, ctx.Times(aug[i][j], x[j]))
		}
		x[i], _ = ctx.Div(sum, aug[i][i])
	}
	return x, nil
}
