// Package adjacency: square relation matrices in dense and sparse form.
// Both encodings carry the same relation; conversion is lossless.
package adjacency

import "errors"

var (
	// ErrBadDimension is returned when a matrix dimension is negative.
	ErrBadDimension = errors.New("adjacency: invalid matrix dimension")

	// ErrOutOfRange is returned when a row or column index is outside the
	// matrix bounds. Public indexers return it; they never panic.
	ErrOutOfRange = errors.New("adjacency: index out of range")

	// ErrSparseEntry is returned when a sparse triple references a cell
	// outside the declared dimension or stores an explicit zero.
	ErrSparseEntry = errors.New("adjacency: invalid sparse entry")
)

// Matrix is a square integer matrix in dense row-major form.
type Matrix struct {
	n     int
	cells []int
}

// SparseEntry is one nonzero cell of a sparse matrix encoding:
// a ((row, col), value) triple. Zero cells are omitted entirely.
type SparseEntry struct {
	Row, Col, Val int
}

// NewMatrix allocates an n×n zero matrix.
func NewMatrix(n int) (*Matrix, error) {
	if n < 0 {
		return nil, ErrBadDimension
	}

	return &Matrix{n: n, cells: make([]int, n*n)}, nil
}

// Rows reports the dimension n of the matrix.
func (m *Matrix) Rows() int { return m.n }

// At returns the cell (i, j), or ErrOutOfRange.
func (m *Matrix) At(i, j int) (int, error) {
	if i < 0 || j < 0 || i >= m.n || j >= m.n {
		return 0, ErrOutOfRange
	}

	return m.cells[i*m.n+j], nil
}

// Set writes the cell (i, j), or returns ErrOutOfRange.
func (m *Matrix) Set(i, j, v int) error {
	if i < 0 || j < 0 || i >= m.n || j >= m.n {
		return ErrOutOfRange
	}
	m.cells[i*m.n+j] = v

	return nil
}

// Positive reports whether cell (i, j) is strictly positive; out-of-range
// indices report false. Convenient for graph-style neighbor scans.
func (m *Matrix) Positive(i, j int) bool {
	if i < 0 || j < 0 || i >= m.n || j >= m.n {
		return false
	}

	return m.cells[i*m.n+j] > 0
}

// Clone returns an independent copy of m.
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{n: m.n, cells: make([]int, len(m.cells))}
	copy(out.cells, m.cells)

	return out
}

// Equal reports cell-wise equality of two matrices of the same dimension.
func (m *Matrix) Equal(other *Matrix) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.n != other.n {
		return false
	}
	for i, v := range m.cells {
		if other.cells[i] != v {
			return false
		}
	}

	return true
}

// ToSparse lists the nonzero cells in row-major order.
func (m *Matrix) ToSparse() []SparseEntry {
	out := make([]SparseEntry, 0)
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			if v := m.cells[i*m.n+j]; v != 0 {
				out = append(out, SparseEntry{Row: i, Col: j, Val: v})
			}
		}
	}

	return out
}

// NewMatrixFromSparse rebuilds a dense n×n matrix from its sparse entries.
// dense(sparse(M)) == M for every matrix M.
func NewMatrixFromSparse(n int, entries []SparseEntry) (*Matrix, error) {
	m, err := NewMatrix(n)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if e.Row < 0 || e.Col < 0 || e.Row >= n || e.Col >= n || e.Val == 0 {
			return nil, ErrSparseEntry
		}
		m.cells[e.Row*n+e.Col] = e.Val
	}

	return m, nil
}
