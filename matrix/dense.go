// Package matrix provides the row-major float64 matrix that backs Markov
// transition tables: one row per state, one column per symbol.
//
// Dense stores elements in a flat slice. All indexers bounds-check and
// return ErrOutOfRange instead of panicking; Set and AddAt reject NaN, ±Inf
// and negative values, since every matrix in this module holds counts or
// probabilities.
package matrix

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Dense is a row-major matrix of non-negative float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Returns ErrInvalidDimensions unless rows > 0 and cols > 0.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

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
// Returns ErrOutOfRange, ErrNaNInf or ErrNegative; the matrix is unchanged on error.
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	if err = checkValue("Set", row, col, v); err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// AddAt adds delta to the element at (row, col). The result must stay
// finite and non-negative.
func (m *Dense) AddAt(row, col int, delta float64) error {
	idx, err := m.indexOf("AddAt", row, col)
	if err != nil {
		return err
	}
	v := m.data[idx] + delta
	if err = checkValue("AddAt", row, col, v); err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf("Row", i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// RowSum returns the sum of row i.
func (m *Dense) RowSum(i int) (float64, error) {
	if i < 0 || i >= m.r {
		return 0, denseErrorf("RowSum", i, 0, ErrOutOfRange)
	}

	return floats.Sum(m.data[i*m.c : (i+1)*m.c]), nil
}

// NormalizeRows returns a copy of m where every row with a positive sum is
// scaled to sum to 1. All-zero rows stay zero.
// Complexity: O(r*c).
func (m *Dense) NormalizeRows() *Dense {
	out := m.Clone()
	var row []float64
	for i := 0; i < out.r; i++ {
		row = out.data[i*out.c : (i+1)*out.c]
		if sum := floats.Sum(row); sum > 0 {
			floats.Scale(1/sum, row)
		}
	}

	return out
}

// Clone returns a deep copy of the Dense matrix.
func (m *Dense) Clone() *Dense {
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return &Dense{r: m.r, c: m.c, data: data}
}

// String renders one bracketed row per line, e.g. "[0.5, 0.5]\n".
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", m.data[i*m.c+j])
		}
		b.WriteString("]\n")
	}

	return b.String()
}

func checkValue(method string, row, col int, v float64) error {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return denseErrorf(method, row, col, ErrNaNInf)
	case v < 0:
		return denseErrorf(method, row, col, ErrNegative)
	}

	return nil
}
