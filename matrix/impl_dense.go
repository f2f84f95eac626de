// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep fixed loop orders so every kernel is deterministic.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Diagonal: O(min(r,c)).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// Dense is a row-major int64 matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c (offset = i*c + j).
type Dense struct {
	r, c int
	data []int64
}

var _ fmt.Stringer = (*Dense)(nil)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// NewDense creates an r×c zero matrix.
//
// Errors: ErrInvalidDimensions if rows <= 0, cols <= 0, or rows*cols overflows int.
// Complexity: Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, err
	}

	return newDense(rows, cols), nil
}

// NewSquare creates a dim×dim zero matrix.
func NewSquare(dim int) (*Dense, error) {
	return NewDense(dim, dim)
}

// validateShape rejects non-positive shapes and shapes whose element count
// does not fit in an int.
func validateShape(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return ErrInvalidDimensions
	}
	if rows > math.MaxInt/cols {
		return fmt.Errorf("%d×%d overflows int: %w", rows, cols, ErrInvalidDimensions)
	}

	return nil
}

// newDense is the unchecked internal constructor used by kernels whose shapes
// are already validated.
func newDense(rows, cols int) *Dense {
	return &Dense{r: rows, c: cols, data: make([]int64, rows*cols)}
}

// FromRows copies a rectangular [][]int64 into a new Dense.
//
// Errors: ErrInvalidDimensions for empty input, ErrBadShape for ragged rows.
func FromRows(rows [][]int64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opFromRows, ErrInvalidDimensions)
	}
	m := newDense(len(rows), len(rows[0]))
	for i, row := range rows {
		if len(row) != m.c {
			return nil, matrixErrorf(opFromRows, fmt.Errorf("row %d has %d values, want %d: %w", i, len(row), m.c, ErrBadShape))
		}
		copy(m.data[i*m.c:(i+1)*m.c], row)
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// At returns the element at (row, col), or ErrOutOfRange.
func (m *Dense) At(row, col int) (int64, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(opAt, row, col, ErrOutOfRange)
	}

	return m.data[row*m.c+col], nil
}

// Set assigns v at (row, col), or returns ErrOutOfRange.
func (m *Dense) Set(row, col int, v int64) error {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return denseErrorf(opSet, row, col, ErrOutOfRange)
	}
	m.data[row*m.c+col] = v

	return nil
}

// Clone returns a deep copy.
func (m *Dense) Clone() *Dense {
	out := newDense(m.r, m.c)
	copy(out.data, m.data)

	return out
}

// Equal reports whether m and o have the same shape and entries.
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i, v := range m.data {
		if o.data[i] != v {
			return false
		}
	}

	return true
}

// Diagonal returns the main diagonal m[i][i] for i < min(rows, cols).
func (m *Dense) Diagonal() []int64 {
	n := min(m.r, m.c)
	diag := make([]int64, n)
	for i := 0; i < n; i++ {
		diag[i] = m.data[i*m.c+i]
	}

	return diag
}

// RowsCopy returns the matrix as freshly allocated [][]int64.
func (m *Dense) RowsCopy() [][]int64 {
	out := make([][]int64, m.r)
	for i := range out {
		out[i] = append([]int64(nil), m.data[i*m.c:(i+1)*m.c]...)
	}

	return out
}

// zero resets every entry to 0 so a buffer can be reused.
func (m *Dense) zero() {
	clear(m.data)
}

// String renders one bracketed row per line, e.g. "[1, 2]\n[3, 4]\n".
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString("[")
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%d", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
