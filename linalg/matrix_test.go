package linalg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vectorflat/svgflatten/decimal"
	"github.com/vectorflat/svgflatten/linalg"
)

func mustMatrix(t *testing.T, rows [][]decimal.Dec) linalg.Matrix {
	t.Helper()
	m, err := linalg.NewDenseFromRows(rows)
	require.NoError(t, err)
	return m
}

func d(v int64) decimal.Dec { return decimal.FromInt(v) }

func TestMulIdentity(t *testing.T) {
	ctx := decimal.Default()
	a := mustMatrix(t, [][]decimal.Dec{{d(1), d(2)}, {d(3), d(4)}})
	id, err := linalg.Identity(2)
	require.NoError(t, err)

	got, err := linalg.Mul(ctx, a, id)
	require.NoError(t, err)
	assert.True(t, linalg.Equal(ctx, got, a, decimal.Zero))
}

func TestMulDimensionMismatch(t *testing.T) {
	ctx := decimal.Default()
	a := mustMatrix(t, [][]decimal.Dec{{d(1), d(2)}})
	b := mustMatrix(t, [][]decimal.Dec{{d(1), d(2)}})
	_, err := linalg.Mul(ctx, a, b)
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)
}

func TestMulAssociativity(t *testing.T) {
	ctx := decimal.Default()
	a := mustMatrix(t, [][]decimal.Dec{{d(1), d(2), d(3)}, {d(4), d(5), d(6)}})
	b := mustMatrix(t, [][]decimal.Dec{{d(1), d(0)}, {d(0), d(1)}, {d(1), d(1)}})
	c := mustMatrix(t, [][]decimal.Dec{{d(2), d(0)}, {d(0), d(2)}})

	ab, err := linalg.Mul(ctx, a, b)
	require.NoError(t, err)
	abc, err := linalg.Mul(ctx, ab, c)
	require.NoError(t, err)

	bc, err := linalg.Mul(ctx, b, c)
	require.NoError(t, err)
	aBc, err := linalg.Mul(ctx, a, bc)
	require.NoError(t, err)

	assert.True(t, linalg.Equal(ctx, abc, aBc, decimal.Zero))
}
