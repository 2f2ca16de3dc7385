package ops

import (
	"errors"
	"fmt"

	"github.com/vectorflat/svgflatten/decimal"
	"github.com/vectorflat/svgflatten/linalg"
)

// LU performs LU decomposition with partial pivoting on the square matrix m.
// At column k, the row with the largest |A[i,k]| among i>=k is chosen as
// pivot; if every candidate pivot is exactly zero, LU fails with
// linalg.ErrSingular (§4.2). It returns L (unit lower triangular), U (upper
// triangular), the row permutation applied to reach them (perm[i] is the
// original row now in position i), and the sign of that permutation (used by
// Det to fix the determinant's sign).
//
// Time complexity: O(n^3). Space: O(n^2) for L and U.
func LU(ctx *decimal.Context, m linalg.Matrix) (l, u linalg.Matrix, perm []int, sign int, err error) {
	// Stage 1: validate square.
	n := m.Rows()
	if n != m.Cols() {
		return nil, nil, nil, 0, fmt.Errorf("LU: %w", linalg.ErrNotSquare)
	}

	// Stage 2: prepare working copy of A and the permutation.
	a := make([][]decimal.Dec, n)
	for i := 0; i < n; i++ {
		a[i] = make([]decimal.Dec, n)
		for j := 0; j < n; j++ {
			a[i][j], _ = m.At(i, j)
		}
	}
	perm = make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sign = 1

	lMat, err := linalg.NewDense(n, n)
	if err != nil {
		return nil, nil, nil, 0, err
	}

	// Stage 3: execute Doolittle elimination with partial pivoting.
	for k := 0; k < n; k++ {
		pivotRow := k
		pivotVal := a[k][k].Abs()
		for i := k + 1; i < n; i++ {
			if a[i][k].Abs().GreaterThan(pivotVal) {
				pivotRow, pivotVal = i, a[i][k].Abs()
			}
		}
		if pivotVal.IsZero() {
			return nil, nil, nil, 0, fmt.Errorf("LU: %w", linalg.ErrSingular)
		}
		if pivotRow != k {
			a[k], a[pivotRow] = a[pivotRow], a[k]
			perm[k], perm[pivotRow] = perm[pivotRow], perm[k]
			sign = -sign
			for j := 0; j < k; j++ {
				v, _ := lMat.At(k, j)
				w, _ := lMat.At(pivotRow, j)
				_ = lMat.Set(k, j, w)
				_ = lMat.Set(pivotRow, j, v)
			}
		}
		_ = lMat.Set(k, k, decimal.One)
		for i := k + 1; i < n; i++ {
			factor, _ := ctx.Div(a[i][k], a[k][k])
			_ = lMat.Set(i, k, factor)
			for j := k; j < n; j++ {
				a[i][j] = ctx.Minus(a[i][j], ctx.Times(factor, a[k][j]))
			}
		}
	}

	// Stage 4: finalize U from the reduced working copy.
	uMat, err := linalg.NewDense(n, n)
	if err != nil {
		return nil, nil, nil, 0, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j >= i {
				_ = uMat.Set(i, j, a[i][j])
			}
		}
	}

	return lMat, uMat, perm, sign, nil
}

// Det returns the determinant of the square matrix m, computed as the
// product of U's diagonal times the permutation sign from LU (§4.2).
// Singular matrices (pivot exactly zero) yield a determinant of zero rather
// than an error, matching the mathematical definition.
func Det(ctx *decimal.Context, m linalg.Matrix) (decimal.Dec, error) {
	n := m.Rows()
	if n != m.Cols() {
		return decimal.Dec{}, fmt.Errorf("Det: %w", linalg.ErrNotSquare)
	}
	_, u, _, sign, err := LU(ctx, m)
	if err != nil {
		if errors.Is(err, linalg.ErrSingular) {
			return decimal.Zero, nil
		}
		return decimal.Dec{}, err
	}
	det := decimal.One
	for i := 0; i < n; i++ {
		d, _ := u.At(i, i)
		det = ctx.Times(det, d)
	}
	if sign < 0 {
		det = ctx.Negate(det)
	}
	return det, nil
}
