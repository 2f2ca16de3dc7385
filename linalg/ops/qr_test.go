package ops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vectorflat/svgflatten/decimal"
	"github.com/vectorflat/svgflatten/linalg"
	"github.com/vectorflat/svgflatten/linalg/ops"
)

func TestQRReconstructsMatrix(t *testing.T) {
	ctx := decimal.Default()
	a, err := linalg.NewDenseFromRows([][]decimal.Dec{
		{dd(12), dd(-51)},
		{dd(6), dd(167)},
		{dd(-4), dd(24)},
	})
	require.NoError(t, err)

	q, r, err := ops.QR(ctx, a)
	require.NoError(t, err)

	qr, err := linalg.Mul(ctx, q, r)
	require.NoError(t, err)

	assert.True(t, linalg.Equal(ctx, qr, a, decimal.MustParse("1e-60")))
}

func TestQROrthogonal(t *testing.T) {
	ctx := decimal.Default()
	a, err := linalg.NewDenseFromRows([][]decimal.Dec{
		{dd(1), dd(0)},
		{dd(0), dd(1)},
	})
	require.NoError(t, err)

	q, _, err := ops.QR(ctx, a)
	require.NoError(t, err)

	qT, err := linalg.Transpose(q)
	require.NoError(t, err)
	prod, err := linalg.Mul(ctx, qT, q)
	require.NoError(t, err)

	id, err := linalg.Identity(2)
	require.NoError(t, err)
	assert.True(t, linalg.Equal(ctx, prod, id, decimal.MustParse("1e-60")))
}
