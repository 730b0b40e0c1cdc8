// Package funcmat: the matrix encoder — lifting a function definition
// (explicit table or Go func evaluated pointwise) into a Matrix.
//
// Design rationale: totality and single-valuedness of the represented
// function are structural invariants of Matrix (every column is exactly
// one-hot), so an encoder's whole job is to validate and materialize
// those invariants from whichever definition style the caller uses.

package funcmat

import (
	"fmt"

	"gorgonia.org/tensor"

	"github.com/matricity/matricity/onehot"
)

// newMatrix assembles a Matrix around a freshly built row-major backing
// slice. Internal; callers guarantee data is (rows×cols) with one-hot
// columns.
func newMatrix[S, T comparable](source *onehot.Domain[S], target *onehot.Domain[T], data []float64) *Matrix[S, T] {
	dense := tensor.New(
		tensor.WithShape(target.Size(), source.Size()),
		tensor.WithBacking(data),
	)

	return &Matrix[S, T]{source: source, target: target, dense: dense}
}

// FromTable builds the Matrix of the function described by an explicit
// (input, output) table.
// Stage 1 (Validate): domains non-nil; every table key a member of
// source; every table value a member of target; every source element
// covered (totality).
// Stage 2 (Execute): write a 1 into row target.IndexOf(table[x]) of
// column source.IndexOf(x) for every x.
//
// Errors:
//   - ErrNilDomain         — source or target is nil.
//   - ErrUnknownElement    — a table key outside source, or a mapped
//     output outside target.
//   - ErrIncompleteMapping — some source element lacks an entry.
//
// Complexity: O(|source|·|target|) time and memory (matrix
// materialization dominates).
func FromTable[S, T comparable](source *onehot.Domain[S], target *onehot.Domain[T], table map[S]T) (*Matrix[S, T], error) {
	if err := validateDomains(source, target); err != nil {
		return nil, opErrorf(opFromTable, err)
	}

	// Reject keys outside the declared source domain so the table is an
	// exact description of the function, not a superset of it.
	for x := range table {
		if !source.Contains(x) {
			return nil, opErrorf(opFromTable, fmt.Errorf("key %v: %w", x, ErrUnknownElement))
		}
	}

	// Enforce totality, then write each column's single active entry.
	rows, cols := target.Size(), source.Size()
	data := make([]float64, rows*cols)
	for j, x := range source.Elements() {
		y, ok := table[x]
		if !ok {
			return nil, opErrorf(opFromTable, fmt.Errorf("no entry for %v: %w", x, ErrIncompleteMapping))
		}
		i, err := target.IndexOf(y)
		if err != nil {
			return nil, opErrorf(opFromTable, fmt.Errorf("output %v for %v: %w", y, x, ErrUnknownElement))
		}
		data[i*cols+j] = activeEntry
	}

	return newMatrix(source, target, data), nil
}

// FromFunc builds the Matrix of an implicit rule by evaluating f at
// every source element in index order (explicit enumeration — domains
// are finite and declared upfront, so no dispatch or reflection is
// involved).
// Stage 1 (Validate): domains non-nil; f non-nil.
// Stage 2 (Execute): for each source element x encode f(x) as the
// corresponding column.
//
// Errors:
//   - ErrNilDomain       — source or target is nil.
//   - ErrNilFunc         — f is nil.
//   - ErrRangeViolation  — some f(x) is not a member of target.
//
// Complexity: O(|source|·|target|) plus |source| evaluations of f.
func FromFunc[S, T comparable](source *onehot.Domain[S], target *onehot.Domain[T], f func(S) T) (*Matrix[S, T], error) {
	if err := validateDomains(source, target); err != nil {
		return nil, opErrorf(opFromFunc, err)
	}
	if f == nil {
		return nil, opErrorf(opFromFunc, ErrNilFunc)
	}

	// Pointwise enumeration in index order (deterministic).
	rows, cols := target.Size(), source.Size()
	data := make([]float64, rows*cols)
	for j, x := range source.Elements() {
		y := f(x)
		i, err := target.IndexOf(y)
		if err != nil {
			return nil, opErrorf(opFromFunc, fmt.Errorf("f(%v) = %v: %w", x, y, ErrRangeViolation))
		}
		data[i*cols+j] = activeEntry
	}

	return newMatrix(source, target, data), nil
}

// Identity builds the |d|×|d| identity permutation matrix — the
// encoding of the identity function on d: column i is the one-hot
// vector for element i.
// Returns ErrNilDomain if d is nil.
// Complexity: O(n²) time and memory.
func Identity[E comparable](d *onehot.Domain[E]) (*Matrix[E, E], error) {
	if d == nil {
		return nil, opErrorf(opIdentity, ErrNilDomain)
	}

	n := d.Size()

	return &Matrix[E, E]{
		source: d,
		target: d,
		dense:  tensor.I(tensor.Float64, n, n, 0),
	}, nil
}
