package ops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vectorflat/svgflatten/decimal"
	"github.com/vectorflat/svgflatten/linalg"
	"github.com/vectorflat/svgflatten/linalg/ops"
)

func TestExpmZeroIsIdentity(t *testing.T) {
	ctx := decimal.Default()
	zero, err := linalg.NewDense(2, 2)
	require.NoError(t, err)

	result, err := ops.Expm(ctx, zero)
	require.NoError(t, err)

	id, err := linalg.Identity(2)
	require.NoError(t, err)
	assert.True(t, linalg.Equal(ctx, result, id, decimal.MustParse("1e-40")))
}

func TestExpmNonSquare(t *testing.T) {
	ctx := decimal.Default()
	a, err := linalg.NewDenseFromRows([][]decimal.Dec{{dd(1), dd(2), dd(3)}})
	require.NoError(t, err)
	_, err = ops.Expm(ctx, a)
	require.ErrorIs(t, err, linalg.ErrNotSquare)
}
