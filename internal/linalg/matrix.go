package linalg

import (
	"fmt"
	"iter"
	"math"
	"strings"
)

// Matrix is a rows x cols grid of float64 stored row by row.
// len(data) == rows and every row holds cols values after any mutation.
type Matrix struct {
	rows, cols int
	data       [][]float64
}

// Index addresses a single cell.
type Index struct {
	Row, Col int
}

// NewMatrix returns a zero-filled rows x cols matrix.
func NewMatrix(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewMatrix(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	return newZero(rows, cols), nil
}

// FromTable copies a rectangular table into a new matrix.
func FromTable(table [][]float64) (*Matrix, error) {
	if len(table) == 0 || len(table[0]) == 0 {
		return nil, fmt.Errorf("FromTable: %w", ErrInvalidDimensions)
	}
	m := newZero(len(table), len(table[0]))
	if err := m.SetTable(table); err != nil {
		return nil, err
	}
	return m, nil
}

// Identity returns the n x n identity matrix.
func Identity(n int) (*Matrix, error) {
	m, err := NewMatrix(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i][i] = 1
	}
	return m, nil
}

func newZero(rows, cols int) *Matrix {
	data := make([][]float64, rows)
	for i := range data {
		data[i] = make([]float64, cols)
	}
	return &Matrix{rows: rows, cols: cols, data: data}
}

func (m *Matrix) Rows() int { return m.rows }
func (m *Matrix) Cols() int { return m.cols }

func (m *Matrix) inBounds(row, col int) bool {
	return row >= 0 && row < m.rows && col >= 0 && col < m.cols
}

// Get returns the value at (row, col).
func (m *Matrix) Get(row, col int) (float64, error) {
	if !m.inBounds(row, col) {
		return 0, indexErrorf("Get", row, col)
	}
	return m.data[row][col], nil
}

// Set stores v at (row, col).
func (m *Matrix) Set(row, col int, v float64) error {
	if !m.inBounds(row, col) {
		return indexErrorf("Set", row, col)
	}
	m.data[row][col] = v
	return nil
}

// Row returns a copy of the given row.
func (m *Matrix) Row(row int) ([]float64, error) {
	if row < 0 || row >= m.rows {
		return nil, indexErrorf("Row", row, 0)
	}
	out := make([]float64, m.cols)
	copy(out, m.data[row])
	return out, nil
}

// Col returns a copy of the given column.
func (m *Matrix) Col(col int) ([]float64, error) {
	if col < 0 || col >= m.cols {
		return nil, indexErrorf("Col", 0, col)
	}
	out := make([]float64, m.rows)
	for i := range m.data {
		out[i] = m.data[i][col]
	}
	return out, nil
}

// SetRow replaces a row. vals must hold exactly Cols() values.
func (m *Matrix) SetRow(row int, vals []float64) error {
	if row < 0 || row >= m.rows {
		return indexErrorf("SetRow", row, 0)
	}
	if len(vals) != m.cols {
		return shapeErrorf("SetRow", 1, m.cols, 1, len(vals))
	}
	copy(m.data[row], vals)
	return nil
}

// SetCol replaces a column. vals must hold exactly Rows() values.
func (m *Matrix) SetCol(col int, vals []float64) error {
	if col < 0 || col >= m.cols {
		return indexErrorf("SetCol", 0, col)
	}
	if len(vals) != m.rows {
		return shapeErrorf("SetCol", m.rows, 1, len(vals), 1)
	}
	for i, v := range vals {
		m.data[i][col] = v
	}
	return nil
}

// SetTable replaces every value. The table must match the current shape and
// is copied, so the caller keeps ownership of it.
func (m *Matrix) SetTable(table [][]float64) error {
	if len(table) != m.rows {
		return shapeErrorf("SetTable", m.rows, m.cols, len(table), 0)
	}
	for _, row := range table {
		if len(row) != m.cols {
			return shapeErrorf("SetTable", m.rows, m.cols, len(table), len(row))
		}
	}
	for i, row := range table {
		copy(m.data[i], row)
	}
	return nil
}

// ForEach visits every cell in row-major order.
func (m *Matrix) ForEach(fn func(v float64, row, col int)) {
	for i, r := range m.data {
		for j, v := range r {
			fn(v, i, j)
		}
	}
}

// All yields every cell in row-major order.
func (m *Matrix) All() iter.Seq2[Index, float64] {
	return func(yield func(Index, float64) bool) {
		for i, r := range m.data {
			for j, v := range r {
				if !yield(Index{i, j}, v) {
					return
				}
			}
		}
	}
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	out := newZero(m.rows, m.cols)
	for i, r := range m.data {
		copy(out.data[i], r)
	}
	return out
}

// Transpose returns a new cols x rows matrix.
func (m *Matrix) Transpose() *Matrix {
	out := newZero(m.cols, m.rows)
	m.ForEach(func(v float64, i, j int) {
		out.data[j][i] = v
	})
	return out
}

// TransposeInPlace transposes the receiver, including its shape, and returns
// the transposed matrix.
func (m *Matrix) TransposeInPlace() *Matrix {
	t := m.Transpose()
	m.commit(t)
	return t
}

// IsEqualSize reports whether both matrices have the same shape.
func (m *Matrix) IsEqualSize(o *Matrix) bool {
	return m.rows == o.rows && m.cols == o.cols
}

func (m *Matrix) commit(src *Matrix) {
	m.rows, m.cols = src.rows, src.cols
	m.data = src.Clone().data
}

func (m *Matrix) mapScalar(fn func(v float64) float64) *Matrix {
	out := newZero(m.rows, m.cols)
	m.ForEach(func(v float64, i, j int) {
		out.data[i][j] = fn(v)
	})
	return out
}

func (m *Matrix) zip(method string, o *Matrix, fn func(a, b float64) float64) (*Matrix, error) {
	if !m.IsEqualSize(o) {
		return nil, shapeErrorf(method, m.rows, m.cols, o.rows, o.cols)
	}
	out := newZero(m.rows, m.cols)
	m.ForEach(func(v float64, i, j int) {
		out.data[i][j] = fn(v, o.data[i][j])
	})
	return out, nil
}

// AddScalar returns m with s added to every cell.
func (m *Matrix) AddScalar(s float64) *Matrix {
	return m.mapScalar(func(v float64) float64 { return v + s })
}

// SubScalar returns m with s subtracted from every cell.
func (m *Matrix) SubScalar(s float64) *Matrix {
	return m.mapScalar(func(v float64) float64 { return v - s })
}

// Scale returns m with every cell multiplied by s.
func (m *Matrix) Scale(s float64) *Matrix {
	return m.mapScalar(func(v float64) float64 { return v * s })
}

// Add returns the elementwise sum. Shapes must match.
func (m *Matrix) Add(o *Matrix) (*Matrix, error) {
	return m.zip("Add", o, func(a, b float64) float64 { return a + b })
}

// Sub returns the elementwise difference. Shapes must match.
func (m *Matrix) Sub(o *Matrix) (*Matrix, error) {
	return m.zip("Sub", o, func(a, b float64) float64 { return a - b })
}

// Mul returns the matrix product m x o. m.Cols() must equal o.Rows(); the
// result is m.Rows() x o.Cols().
func (m *Matrix) Mul(o *Matrix) (*Matrix, error) {
	if m.cols != o.rows {
		return nil, shapeErrorf("Mul", m.rows, m.cols, o.rows, o.cols)
	}
	out := newZero(m.rows, o.cols)
	for i := 0; i < m.rows; i++ {
		for k := 0; k < o.cols; k++ {
			sum := 0.0
			for j := 0; j < m.cols; j++ {
				sum += m.data[i][j] * o.data[j][k]
			}
			out.data[i][k] = sum
		}
	}
	return out, nil
}

func (m *Matrix) AddScalarInPlace(s float64) { m.commit(m.AddScalar(s)) }
func (m *Matrix) SubScalarInPlace(s float64) { m.commit(m.SubScalar(s)) }
func (m *Matrix) ScaleInPlace(s float64)     { m.commit(m.Scale(s)) }

// AddInPlace adds o to the receiver. The receiver is untouched on error.
func (m *Matrix) AddInPlace(o *Matrix) error {
	r, err := m.Add(o)
	if err != nil {
		return err
	}
	m.commit(r)
	return nil
}

// SubInPlace subtracts o from the receiver. The receiver is untouched on error.
func (m *Matrix) SubInPlace(o *Matrix) error {
	r, err := m.Sub(o)
	if err != nil {
		return err
	}
	m.commit(r)
	return nil
}

// MulInPlace replaces the receiver with m x o, shape included.
func (m *Matrix) MulInPlace(o *Matrix) error {
	r, err := m.Mul(o)
	if err != nil {
		return err
	}
	m.commit(r)
	return nil
}

// Equal reports whether both matrices have the same shape and every pair of
// cells differs by at most tol.
func (m *Matrix) Equal(o *Matrix, tol float64) bool {
	if o == nil || !m.IsEqualSize(o) {
		return false
	}
	for i, r := range m.data {
		for j, v := range r {
			if math.Abs(v-o.data[i][j]) > tol {
				return false
			}
		}
	}
	return true
}

func (m *Matrix) String() string {
	var b strings.Builder
	for _, r := range m.data {
		b.WriteString("[")
		for j, v := range r {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", v)
		}
		b.WriteString("]\n")
	}
	return b.String()
}
