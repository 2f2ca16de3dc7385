package linalg

import "github.com/vectorflat/svgflatten/decimal"

// Matrix represents a two-dimensional array of decimal.Dec values. Every
// implementation enforces bounds checking and returns ErrIndexOutOfBounds on
// misuse rather than panicking. Dense is the only implementation shipped by
// this package; the interface exists so algorithms in linalg/ops can be
// exercised against alternative storage layouts in tests.
type Matrix interface {
	// Rows returns the number of rows. Complexity: O(1).
	Rows() int

	// Cols returns the number of columns. Complexity: O(1).
	Cols() int

	// At retrieves the element at (row, col). Complexity: O(1).
	At(row, col int) (decimal.Dec, error)

	// Set assigns v at (row, col). Complexity: O(1).
	Set(row, col int, v decimal.Dec) error

	// Clone returns a deep, independent copy. Complexity: O(rows*cols).
	Clone() Matrix
}

// denseErrorf wraps an underlying error with method/position context.
func denseErrorf(method string, row, col int, err error) error {
	return &matrixOpError{method: method, row: row, col: col, err: err}
}

type matrixOpError struct {
	method   string
	row, col int
	err      error
}

func (e *matrixOpError) Error() string {
	return "Dense." + e.method + ": " + e.err.Error()
}

func (e *matrixOpError) Unwrap() error { return e.err }

// Dense is a row-major matrix of decimal.Dec values, stored in a flat slice
// for cache-friendly access, mirroring the teacher's array-backed matrix
// layout.
type Dense struct {
	r, c int
	data []decimal.Dec
}

// NewDense creates an r×c Dense matrix of zeros.
// Stage 1 (Validate): ensure rows and cols are positive.
// Stage 2 (Prepare): allocate the flat backing slice, filled with Zero.
// Stage 3 (Finalize): return the new Dense.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	data := make([]decimal.Dec, rows*cols)
	for i := range data {
		data[i] = decimal.Zero
	}
	return &Dense{r: rows, c: cols, data: data}, nil
}

// NewDenseFromRows builds a Dense from a 2D literal; every row must have the
// same length (§3: "every row has length C").
func NewDenseFromRows(rows [][]decimal.Dec) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	for i := 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, ErrDimensionMismatch
		}
		for j := 0; j < c; j++ {
			_ = m.Set(i, j, rows[i][j])
		}
	}
	return m, nil
}

// Identity returns the n×n identity matrix.
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		_ = m.Set(i, i, decimal.One)
	}
	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf("indexOf", row, col, ErrIndexOutOfBounds)
	}
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
func (m *Dense) At(row, col int) (decimal.Dec, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return decimal.Dec{}, err
	}
	return m.data[idx], nil
}

// Set assigns v at (row, col).
func (m *Dense) Set(row, col int, v decimal.Dec) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v
	return nil
}

// Clone returns a deep, independent copy of m.
func (m *Dense) Clone() Matrix {
	data := make([]decimal.Dec, len(m.data))
	copy(data, m.data)
	return &Dense{r: m.r, c: m.c, data: data}
}

// Add returns a+b element-wise. Fails with ErrDimensionMismatch on shape
// mismatch.
func Add(ctx *decimal.Context, a, b Matrix) (Matrix, error) {
	return elementwise(ctx, a, b, ctx.Plus)
}

// Sub returns a-b element-wise.
func Sub(ctx *decimal.Context, a, b Matrix) (Matrix, error) {
	return elementwise(ctx, a, b, ctx.Minus)
}

func elementwise(ctx *decimal.Context, a, b Matrix, op func(decimal.Dec, decimal.Dec) decimal.Dec) (Matrix, error) {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return nil, ErrDimensionMismatch
	}
	out, err := NewDense(a.Rows(), a.Cols())
	if err != nil {
		return nil, err
	}
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, _ := a.At(i, j)
			bv, _ := b.At(i, j)
			_ = out.Set(i, j, op(av, bv))
		}
	}
	return out, nil
}

// Mul returns the matrix product a*b. Fails with ErrDimensionMismatch when
// a.Cols() != b.Rows().
func Mul(ctx *decimal.Context, a, b Matrix) (Matrix, error) {
	if a.Cols() != b.Rows() {
		return nil, ErrDimensionMismatch
	}
	out, err := NewDense(a.Rows(), b.Cols())
	if err != nil {
		return nil, err
	}
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < b.Cols(); j++ {
			sum := decimal.Zero
			for k := 0; k < a.Cols(); k++ {
				av, _ := a.At(i, k)
				bv, _ := b.At(k, j)
				sum = ctx.Plus(sum, ctx.Times(av, bv))
			}
			_ = out.Set(i, j, sum)
		}
	}
	return out, nil
}

// Scale returns alpha*m element-wise.
func Scale(ctx *decimal.Context, m Matrix, alpha decimal.Dec) (Matrix, error) {
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, _ := m.At(i, j)
			_ = out.Set(i, j, ctx.Times(v, alpha))
		}
	}
	return out, nil
}

// Transpose returns mᵀ.
func Transpose(m Matrix) (Matrix, error) {
	out, err := NewDense(m.Cols(), m.Rows())
	if err != nil {
		return nil, err
	}
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, _ := m.At(i, j)
			_ = out.Set(j, i, v)
		}
	}
	return out, nil
}

// MatVec returns y = m*x for a column vector x of length m.Cols().
func MatVec(ctx *decimal.Context, m Matrix, x []decimal.Dec) ([]decimal.Dec, error) {
	if m.Cols() != len(x) {
		return nil, ErrDimensionMismatch
	}
	y := make([]decimal.Dec, m.Rows())
	for i := 0; i < m.Rows(); i++ {
		sum := decimal.Zero
		for j := 0; j < m.Cols(); j++ {
			v, _ := m.At(i, j)
			sum = ctx.Plus(sum, ctx.Times(v, x[j]))
		}
		y[i] = sum
	}
	return y, nil
}

// Equal reports whether a and b have the same shape and every entry matches
// within tol.
func Equal(ctx *decimal.Context, a, b Matrix, tol decimal.Dec) bool {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, _ := a.At(i, j)
			bv, _ := b.At(i, j)
			if !ctx.EqualsWithin(av, bv, tol) {
				return false
			}
		}
	}
	return true
}
