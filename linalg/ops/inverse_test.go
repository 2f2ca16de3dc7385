package ops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vectorflat/svgflatten/decimal"
	"github.com/vectorflat/svgflatten/linalg"
	"github.com/vectorflat/svgflatten/linalg/ops"
)

func TestInverseRoundTrip(t *testing.T) {
	ctx := decimal.Default()
	a, err := linalg.NewDenseFromRows([][]decimal.Dec{
		{dd(4), dd(7)},
		{dd(2), dd(6)},
	})
	require.NoError(t, err)

	inv, err := ops.Inverse(ctx, a)
	require.NoError(t, err)

	product, err := linalg.Mul(ctx, a, inv)
	require.NoError(t, err)

	id, err := linalg.Identity(2)
	require.NoError(t, err)

	tol := decimal.MustParse("1e-70")
	assert.True(t, linalg.Equal(ctx, product, id, tol))
}

func TestInverseSingular(t *testing.T) {
	ctx := decimal.Default()
	a, err := linalg.NewDenseFromRows([][]decimal.Dec{
		{dd(1), dd(2)},
		{dd(2), dd(4)},
	})
	require.NoError(t, err)
	_, err = ops.Inverse(ctx, a)
	require.ErrorIs(t, err, linalg.ErrSingular)
}

func TestSolve(t *testing.T) {
	ctx := decimal.Default()
	a, err := linalg.NewDenseFromRows([][]decimal.Dec{
		{dd(3), dd(2)},
		{dd(1), dd(4)},
	})
	require.NoError(t, err)
	b := []decimal.Dec{dd(5), dd(6)}

	x, err := ops.Solve(ctx, a, b)
	require.NoError(t, err)

	got, err := linalg.MatVec(ctx, a, x)
	require.NoError(t, err)
	for i := range got {
		assert.True(t, ctx.EqualsWithin(got[i], b[i], decimal.MustParse("1e-70")))
	}
}
