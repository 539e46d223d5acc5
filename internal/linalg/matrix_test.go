package linalg_test

import (
	"math/rand"
	"testing"

	"github.com/san-kum/wirecube/internal/linalg"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

func mustTable(t *testing.T, table [][]float64) *linalg.Matrix {
	t.Helper()
	m, err := linalg.FromTable(table)
	require.NoError(t, err)
	return m
}

func randomMatrix(t *testing.T, r *rand.Rand, rows, cols int) *linalg.Matrix {
	t.Helper()
	m, err := linalg.NewMatrix(rows, cols)
	require.NoError(t, err)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			require.NoError(t, m.Set(i, j, r.Float64()*200-100))
		}
	}
	return m
}

func TestNewMatrixInvalidDimensions(t *testing.T) {
	_, err := linalg.NewMatrix(0, 3)
	require.ErrorIs(t, err, linalg.ErrInvalidDimensions)

	_, err = linalg.NewMatrix(3, -1)
	require.ErrorIs(t, err, linalg.ErrInvalidDimensions)

	_, err = linalg.FromTable(nil)
	require.ErrorIs(t, err, linalg.ErrInvalidDimensions)
}

func TestFromTableRagged(t *testing.T) {
	_, err := linalg.FromTable([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)
}

func TestGetSetBounds(t *testing.T) {
	m, err := linalg.NewMatrix(2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	require.NoError(t, m.Set(1, 2, 7.5))
	v, err := m.Get(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.5, v)

	_, err = m.Get(2, 0)
	require.ErrorIs(t, err, linalg.ErrIndexOutOfBounds)
	_, err = m.Get(0, -1)
	require.ErrorIs(t, err, linalg.ErrIndexOutOfBounds)
	require.ErrorIs(t, m.Set(-1, 0, 1), linalg.ErrIndexOutOfBounds)
	require.ErrorIs(t, m.Set(0, 3, 1), linalg.ErrIndexOutOfBounds)
}

func TestRowColAccess(t *testing.T) {
	m := mustTable(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 5, 6}, row)

	col, err := m.Col(2)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 6}, col)

	// returned slices are copies
	row[0] = 99
	v, _ := m.Get(1, 0)
	require.Equal(t, 4.0, v)

	_, err = m.Row(2)
	require.ErrorIs(t, err, linalg.ErrIndexOutOfBounds)
	_, err = m.Col(3)
	require.ErrorIs(t, err, linalg.ErrIndexOutOfBounds)
}

func TestBulkSetters(t *testing.T) {
	m, err := linalg.NewMatrix(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.SetRow(0, []float64{1, 2}))
	require.NoError(t, m.SetCol(1, []float64{8, 9}))
	require.True(t, m.Equal(mustTable(t, [][]float64{{1, 8}, {0, 9}}), tol))

	require.ErrorIs(t, m.SetRow(0, []float64{1, 2, 3}), linalg.ErrDimensionMismatch)
	require.ErrorIs(t, m.SetCol(0, []float64{1}), linalg.ErrDimensionMismatch)
	require.ErrorIs(t, m.SetRow(5, []float64{1, 2}), linalg.ErrIndexOutOfBounds)
	require.ErrorIs(t, m.SetCol(-1, []float64{1, 2}), linalg.ErrIndexOutOfBounds)

	require.ErrorIs(t, m.SetTable([][]float64{{1, 2}}), linalg.ErrDimensionMismatch)
	require.ErrorIs(t, m.SetTable([][]float64{{1, 2}, {3}}), linalg.ErrDimensionMismatch)

	table := [][]float64{{5, 6}, {7, 8}}
	require.NoError(t, m.SetTable(table))
	table[0][0] = 0
	v, _ := m.Get(0, 0)
	require.Equal(t, 5.0, v, "SetTable must copy its input")
}

func TestForEachRowMajor(t *testing.T) {
	m := mustTable(t, [][]float64{{1, 2}, {3, 4}})

	var seen []float64
	var idx []linalg.Index
	m.ForEach(func(v float64, row, col int) {
		seen = append(seen, v)
		idx = append(idx, linalg.Index{Row: row, Col: col})
	})
	require.Equal(t, []float64{1, 2, 3, 4}, seen)
	require.Equal(t, []linalg.Index{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, idx)

	var lazy []float64
	for _, v := range m.All() {
		lazy = append(lazy, v)
		if len(lazy) == 3 {
			break
		}
	}
	require.Equal(t, []float64{1, 2, 3}, lazy)
}

func TestTranspose(t *testing.T) {
	m := mustTable(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	tr := m.Transpose()
	require.Equal(t, 3, tr.Rows())
	require.Equal(t, 2, tr.Cols())
	require.True(t, tr.Equal(mustTable(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}), tol))
	require.Equal(t, 2, m.Rows(), "Transpose must not touch the receiver")

	m.TransposeInPlace()
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 2, m.Cols())
	require.True(t, m.Equal(tr, tol))

	// the committed data must not alias the returned matrix
	require.NoError(t, tr.Set(0, 0, 42))
	v, _ := m.Get(0, 0)
	require.Equal(t, 1.0, v)
}

func TestTransposeTwiceIsIdentity(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		m := randomMatrix(t, r, 1+r.Intn(5), 1+r.Intn(5))
		require.True(t, m.Transpose().Transpose().Equal(m, 0))
	}
}

func TestAddSubScalarRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for i := 0; i < 50; i++ {
		m := randomMatrix(t, r, 1+r.Intn(4), 1+r.Intn(4))
		s := r.Float64()*10 - 5
		require.True(t, m.AddScalar(s).SubScalar(s).Equal(m, 1e-9))
	}
}

func TestElementwiseOps(t *testing.T) {
	a := mustTable(t, [][]float64{{1, 2}, {3, 4}})
	b := mustTable(t, [][]float64{{10, 20}, {30, 40}})

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.True(t, sum.Equal(mustTable(t, [][]float64{{11, 22}, {33, 44}}), tol))

	diff, err := b.Sub(a)
	require.NoError(t, err)
	require.True(t, diff.Equal(mustTable(t, [][]float64{{9, 18}, {27, 36}}), tol))

	require.True(t, a.Scale(2).Equal(mustTable(t, [][]float64{{2, 4}, {6, 8}}), tol))

	wide := mustTable(t, [][]float64{{1, 2, 3}})
	_, err = a.Add(wide)
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)
	_, err = a.Sub(wide)
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)
}

func TestInPlaceVariants(t *testing.T) {
	a := mustTable(t, [][]float64{{1, 2}, {3, 4}})
	b := mustTable(t, [][]float64{{1, 1}, {1, 1}})

	require.NoError(t, a.AddInPlace(b))
	require.True(t, a.Equal(mustTable(t, [][]float64{{2, 3}, {4, 5}}), tol))

	require.NoError(t, a.SubInPlace(b))
	a.AddScalarInPlace(1)
	a.SubScalarInPlace(1)
	a.ScaleInPlace(3)
	require.True(t, a.Equal(mustTable(t, [][]float64{{3, 6}, {9, 12}}), tol))

	before := a.Clone()
	require.ErrorIs(t, a.AddInPlace(mustTable(t, [][]float64{{1}})), linalg.ErrDimensionMismatch)
	require.True(t, a.Equal(before, 0), "failed in-place op must leave the receiver untouched")
}

func TestMul(t *testing.T) {
	a := mustTable(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := mustTable(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})

	p, err := a.Mul(b)
	require.NoError(t, err)
	require.Equal(t, 2, p.Rows())
	require.Equal(t, 2, p.Cols())
	require.True(t, p.Equal(mustTable(t, [][]float64{{58, 64}, {139, 154}}), tol))

	_, err = a.Mul(a)
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)

	require.NoError(t, a.MulInPlace(b))
	require.True(t, a.Equal(p, tol))
}

func TestMulMatchesDefinition(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for n := 0; n < 30; n++ {
		rows, inner, cols := 1+r.Intn(4), 1+r.Intn(4), 1+r.Intn(4)
		a := randomMatrix(t, r, rows, inner)
		b := randomMatrix(t, r, inner, cols)

		p, err := a.Mul(b)
		require.NoError(t, err)
		require.Equal(t, rows, p.Rows())
		require.Equal(t, cols, p.Cols())

		for i := 0; i < rows; i++ {
			ar, _ := a.Row(i)
			for k := 0; k < cols; k++ {
				bc, _ := b.Col(k)
				want := 0.0
				for j := range ar {
					want += ar[j] * bc[j]
				}
				got, _ := p.Get(i, k)
				require.InDelta(t, want, got, 1e-9)
			}
		}
	}
}

func TestIdentityMul(t *testing.T) {
	id, err := linalg.Identity(3)
	require.NoError(t, err)
	m := mustTable(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	p, err := m.Mul(id)
	require.NoError(t, err)
	require.True(t, p.Equal(m, 0))
}

func TestString(t *testing.T) {
	m := mustTable(t, [][]float64{{1, 2}, {3, 4.5}})
	require.Equal(t, "[1, 2]\n[3, 4.5]\n", m.String())
}
