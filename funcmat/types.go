// Package funcmat: the FunctionMatrix value and its introspection
// surface. Bulk numeric storage and arithmetic are supplied by
// gorgonia.org/tensor; this package only constrains the entries to the
// one-hot/totality invariants and interprets rows/columns semantically.

package funcmat

import (
	"fmt"
	"strings"

	"gorgonia.org/tensor"

	"github.com/matricity/matricity/onehot"
)

// activeEntry is the single nonzero value of the exact (non-stochastic)
// encoding; every other entry is the float64 zero value.
const activeEntry = 1.0

// backingData reads a matrix's row-major backing slice. Data() returns
// a bare scalar for scalar-shaped tensors, so both forms are
// normalized here.
func (m *Matrix[S, T]) backingData() []float64 {
	switch data := m.dense.Data().(type) {
	case []float64:
		return data
	case float64:
		return []float64{data}
	default:
		return nil // unreachable for float64-backed tensors
	}
}

// Matrix is an n×m 0/1 matrix (n = |target|, m = |source|) whose every
// column is a one-hot vector: column j is the encoding of f(x_j) where
// x_j is the source element at index j. The one-hot-column shape makes
// totality and single-valuedness of the represented function structural
// invariants rather than runtime conditions.
//
// A Matrix is immutable after construction. Compose never mutates its
// operands; concurrent readers may share Matrix values freely.
type Matrix[S, T comparable] struct {
	source *onehot.Domain[S] // column space index
	target *onehot.Domain[T] // row space index
	dense  *tensor.Dense     // (n×m) float64 backing, entries in {0,1}
}

// Source returns the matrix's source domain (its column space).
// Complexity: O(1).
func (m *Matrix[S, T]) Source() *onehot.Domain[S] {
	return m.source
}

// Target returns the matrix's target domain (its row space).
// Complexity: O(1).
func (m *Matrix[S, T]) Target() *onehot.Domain[T] {
	return m.target
}

// Rows returns the number of rows, |target|.
// Complexity: O(1).
func (m *Matrix[S, T]) Rows() int {
	return m.target.Size()
}

// Cols returns the number of columns, |source|.
// Complexity: O(1).
func (m *Matrix[S, T]) Cols() int {
	return m.source.Size()
}

// Column returns column j as a fresh 0/1 slice of length Rows() — the
// one-hot encoding of the image of the source element at index j.
// Returns ErrIndexOutOfRange if j is outside [0, Cols()).
// Complexity: O(n).
func (m *Matrix[S, T]) Column(j int) ([]float64, error) {
	if err := validateMatrix(m); err != nil {
		return nil, opErrorf(opColumn, err)
	}
	if j < 0 || j >= m.Cols() {
		return nil, opErrorf(opColumn, fmt.Errorf("column %d of %d: %w", j, m.Cols(), ErrIndexOutOfRange))
	}

	// Read the column out of the row-major backing slice.
	rows, cols := m.Rows(), m.Cols()
	data := m.backingData()
	out := make([]float64, rows)
	for i := 0; i < rows; i++ {
		out[i] = data[i*cols+j]
	}

	return out, nil
}

// Dense returns a deep copy of the underlying dense tensor for interop
// with external linear-algebra facilities. Mutating the copy cannot
// affect the Matrix. Complexity: O(n·m).
func (m *Matrix[S, T]) Dense() *tensor.Dense {
	return m.dense.Clone().(*tensor.Dense)
}

// Table returns the represented function as an explicit mapping from
// every source element to its image. The map is fresh per call.
// Complexity: O(n·m).
func (m *Matrix[S, T]) Table() map[S]T {
	rows, cols := m.Rows(), m.Cols()
	data := m.backingData()
	out := make(map[S]T, cols)
	for j := 0; j < cols; j++ {
		// Locate the single active row of column j. Structural
		// invariants guarantee exactly one exists.
		for i := 0; i < rows; i++ {
			if data[i*cols+j] == activeEntry {
				x, _ := m.source.ElementAt(j) // j < cols by loop bound
				y, _ := m.target.ElementAt(i) // i < rows by loop bound
				out[x] = y

				break
			}
		}
	}

	return out
}

// String implements fmt.Stringer for easy debugging: one bracketed row
// per line, matching the dense row-major layout.
// Complexity: O(n·m) for string construction.
func (m *Matrix[S, T]) String() string {
	rows, cols := m.Rows(), m.Cols()
	data := m.backingData()
	var b strings.Builder
	for i := 0; i < rows; i++ {
		b.WriteString("[")
		for j := 0; j < cols; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", data[i*cols+j])
		}
		b.WriteString("]\n")
	}

	return b.String()
}
