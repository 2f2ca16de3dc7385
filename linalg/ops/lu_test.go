package ops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vectorflat/svgflatten/decimal"
	"github.com/vectorflat/svgflatten/linalg"
	"github.com/vectorflat/svgflatten/linalg/ops"
)

func dd(v int64) decimal.Dec { return decimal.FromInt(v) }

func TestLUReconstructsMatrix(t *testing.T) {
	ctx := decimal.Default()
	a, err := linalg.NewDenseFromRows([][]decimal.Dec{
		{dd(4), dd(3)},
		{dd(6), dd(3)},
	})
	require.NoError(t, err)

	l, u, perm, _, err := ops.LU(ctx, a)
	require.NoError(t, err)

	lu, err := linalg.Mul(ctx, l, u)
	require.NoError(t, err)

	// Apply the inverse permutation to compare against the original rows.
	permuted, err := linalg.NewDense(2, 2)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v, _ := a.At(perm[i], j)
			_ = permuted.Set(i, j, v)
		}
	}
	assert.True(t, linalg.Equal(ctx, lu, permuted, decimal.MustParse("1e-70")))
}

func TestLUSingular(t *testing.T) {
	ctx := decimal.Default()
	a, err := linalg.NewDenseFromRows([][]decimal.Dec{
		{dd(1), dd(2)},
		{dd(2), dd(4)},
	})
	require.NoError(t, err)

	_, _, _, _, err = ops.LU(ctx, a)
	require.ErrorIs(t, err, linalg.ErrSingular)
}

func TestDetSingular(t *testing.T) {
	ctx := decimal.Default()
	a, err := linalg.NewDenseFromRows([][]decimal.Dec{
		{dd(1), dd(2)},
		{dd(2), dd(4)},
	})
	require.NoError(t, err)

	det, err := ops.Det(ctx, a)
	require.NoError(t, err)
	assert.True(t, ctx.IsZero(det))
}

func TestDetNonSquare(t *testing.T) {
	ctx := decimal.Default()
	a, err := linalg.NewDenseFromRows([][]decimal.Dec{{dd(1), dd(2), dd(3)}})
	require.NoError(t, err)
	_, err = ops.Det(ctx, a)
	require.ErrorIs(t, err, linalg.ErrNotSquare)
}
