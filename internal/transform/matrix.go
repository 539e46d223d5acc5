package transform

import (
	"fmt"

	"github.com/san-kum/wirecube/internal/linalg"
)

const size = 3

// Matrix is a 3x3 grid of lazy cells.
type Matrix struct {
	cells [size][size]Cell
}

// New builds a matrix from a 3x3 table of numbers and functions (see CellOf).
func New(table [][]any) (*Matrix, error) {
	m := Identity()
	if err := m.SetTable(table); err != nil {
		return nil, err
	}
	return m, nil
}

// FromCells builds a matrix from already normalized cells.
func FromCells(cells [size][size]Cell) *Matrix {
	return &Matrix{cells: cells}
}

// Identity returns the constant identity matrix.
func Identity() *Matrix {
	m := &Matrix{}
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			v := 0.0
			if i == j {
				v = 1
			}
			m.cells[i][j] = Const(v)
		}
	}
	return m
}

func inBounds(row, col int) bool {
	return row >= 0 && row < size && col >= 0 && col < size
}

// Get evaluates the cell at (row, col) for time t.
func (m *Matrix) Get(row, col int, t float64) (float64, error) {
	if !inBounds(row, col) {
		return 0, fmt.Errorf("transform.Matrix.Get(%d,%d): %w", row, col, linalg.ErrIndexOutOfBounds)
	}
	return m.cells[row][col].Eval(t), nil
}

// Set replaces one cell. v is normalized with CellOf.
func (m *Matrix) Set(row, col int, v any) error {
	if !inBounds(row, col) {
		return fmt.Errorf("transform.Matrix.Set(%d,%d): %w", row, col, linalg.ErrIndexOutOfBounds)
	}
	c, err := CellOf(v)
	if err != nil {
		return fmt.Errorf("transform.Matrix.Set(%d,%d): %w", row, col, err)
	}
	m.cells[row][col] = c
	return nil
}

// SetTable replaces every cell. The matrix is left unchanged on error.
func (m *Matrix) SetTable(table [][]any) error {
	if len(table) != size {
		return fmt.Errorf("transform.Matrix.SetTable: %d rows: %w", len(table), linalg.ErrDimensionMismatch)
	}
	var cells [size][size]Cell
	for i, row := range table {
		if len(row) != size {
			return fmt.Errorf("transform.Matrix.SetTable: row %d has %d cols: %w", i, len(row), linalg.ErrDimensionMismatch)
		}
		for j, v := range row {
			c, err := CellOf(v)
			if err != nil {
				return fmt.Errorf("transform.Matrix.SetTable(%d,%d): %w", i, j, err)
			}
			cells[i][j] = c
		}
	}
	m.cells = cells
	return nil
}

// Eval snapshots every cell at time t.
func (m *Matrix) Eval(t float64) *linalg.Matrix {
	out, _ := linalg.NewMatrix(size, size)
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			_ = out.Set(i, j, m.cells[i][j].Eval(t))
		}
	}
	return out
}

// Transform applies the matrix to v at time t using the row-vector
// convention: result[k] = Σ_i v[i] * M[i][k].
func (m *Matrix) Transform(v linalg.Vector3, t float64) linalg.Vector3 {
	in := v.Components()
	var out [size]float64
	for k := 0; k < size; k++ {
		for i := 0; i < size; i++ {
			out[k] += in[i] * m.cells[i][k].Eval(t)
		}
	}
	return linalg.NewVector3(out[0], out[1], out[2])
}
