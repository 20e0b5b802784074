// SPDX-License-Identifier: MIT

// Package matrix provides a small row-major dense float64 matrix used as the
// working storage of tableau-style optimization algorithms (profit matrices,
// transportation plans). Elements live in a flat slice for cache friendliness
// with the explicit index formula i*cols + j.
//
// Design principles:
//   - Safety at the public surface: At/Set/Add return errors instead of panicking.
//   - Deterministic iteration: fixed row-major loop orders, no map iteration.
//   - No hidden allocations in accessors; Clone/EqualWithin are the only O(r*c) ops.
package matrix

import (
	"fmt"
	"strings"
)

// denseErrorf wraps an underlying sentinel with method context and the
// offending coordinates for diagnostics.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrBadShape.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	// Allocate flat slice and return initialized Dense
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c // return stored column count
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	// Validate column index
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	// Compute flat offset
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Add accumulates delta into the element at (row, col).
// Equivalent to Set(row, col, At(row,col)+delta) without the double bounds check.
// Complexity: O(1).
func (m *Dense) Add(row, col int, delta float64) error {
	idx, err := m.indexOf("Add", row, col)
	if err != nil {
		return err
	}
	m.data[idx] += delta

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() *Dense {
	copyData := make([]float64, len(m.data))
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// EqualWithin reports whether m and o have identical shape and all elements
// differ by at most eps in absolute value. A nil operand yields ErrNilMatrix;
// a shape mismatch yields ErrDimensionMismatch.
// Complexity: O(r*c).
func (m *Dense) EqualWithin(o *Dense, eps float64) (bool, error) {
	if m == nil || o == nil {
		return false, ErrNilMatrix
	}
	if m.r != o.r || m.c != o.c {
		return false, ErrDimensionMismatch
	}

	var (
		k    int     // flat index over both backing slices
		diff float64 // element-wise difference
	)
	for k = 0; k < len(m.data); k++ {
		diff = m.data[k] - o.data[k]
		if diff < 0 {
			diff = -diff // |m[k] - o[k]| without math.Abs call
		}
		if diff > eps {
			return false, nil
		}
	}

	return true, nil
}

// RowSum returns the sum of all elements in the given row.
// Complexity: O(c).
func (m *Dense) RowSum(row int) (float64, error) {
	if row < 0 || row >= m.r {
		return 0, denseErrorf("RowSum", row, 0, ErrOutOfRange)
	}

	var (
		sum float64 // accumulated row total
		j   int     // column iterator
	)
	base := row * m.c // flat offset of the row start
	for j = 0; j < m.c; j++ {
		sum += m.data[base+j]
	}

	return sum, nil
}

// ColSum returns the sum of all elements in the given column.
// Complexity: O(r).
func (m *Dense) ColSum(col int) (float64, error) {
	if col < 0 || col >= m.c {
		return 0, denseErrorf("ColSum", 0, col, ErrOutOfRange)
	}

	var (
		sum float64 // accumulated column total
		i   int     // row iterator
	)
	for i = 0; i < m.r; i++ {
		sum += m.data[i*m.c+col]
	}

	return sum, nil
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var (
		sb   strings.Builder
		i, j int
	)
	for i = 0; i < m.r; i++ { // iterate over rows
		sb.WriteString("[")       // open row
		for j = 0; j < m.c; j++ { // iterate over columns
			// compute flat index directly for performance
			sb.WriteString(fmt.Sprintf("%g", m.data[i*m.c+j]))
			if j < m.c-1 {
				sb.WriteString(", ") // separate values with comma
			}
		}
		sb.WriteString("]\n") // close row
	}

	return sb.String()
}
