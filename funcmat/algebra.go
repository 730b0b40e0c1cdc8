// Package funcmat: the matrix algebra — Compose, Apply and Equal,
// preserving the homomorphism matrix(f ∘ g) == matrix(f) * matrix(g).
// The numeric products are delegated to gorgonia.org/tensor; this file
// contributes only the domain bookkeeping and the fail-fast guards.

package funcmat

import (
	"gorgonia.org/tensor"

	"github.com/matricity/matricity/onehot"
)

// Compose combines two matrices into the matrix of the composed
// function outer ∘ inner ("inner first").
// Stage 1 (Validate): both operands usable; inner's target domain
// element-wise equal to outer's source domain.
// Stage 2 (Execute): numeric product outer × inner via tensor.MatMul.
//
// The result's columns stay one-hot without re-checking: each column of
// the product selects exactly one column of outer, so the one-hot
// invariant is preserved algebraically. The result's source domain is
// inner's source, its target domain is outer's target. Operands are
// never mutated.
//
// Errors:
//   - ErrNilMatrix      — either operand is nil or unbuilt.
//   - ErrDomainMismatch — inner.Target() differs from outer.Source().
//
// Complexity: O(|T|·|M|·|S|) time, O(|T|·|S|) memory.
func Compose[S, M, T comparable](outer *Matrix[M, T], inner *Matrix[S, M]) (*Matrix[S, T], error) {
	// Validate operands before touching their domains.
	if err := validateMatrix(outer); err != nil {
		return nil, opErrorf(opCompose, err)
	}
	if err := validateMatrix(inner); err != nil {
		return nil, opErrorf(opCompose, err)
	}
	if err := validateComposable(outer, inner); err != nil {
		return nil, opErrorf(opCompose, err)
	}

	// Delegate the product to the tensor kernel.
	prod, err := tensor.MatMul(outer.dense, inner.dense)
	if err != nil {
		return nil, opErrorf(opCompose, err)
	}

	return &Matrix[S, T]{
		source: inner.source,
		target: outer.target,
		dense:  prod.(*tensor.Dense),
	}, nil
}

// Apply evaluates the represented function at element e: encode e via
// the source domain, multiply by the matrix via tensor.MatVecMul,
// decode the resulting one-hot vector via the target domain.
//
// Errors:
//   - ErrNilMatrix               — m is nil or unbuilt.
//   - onehot.ErrElementNotFound  — e is not in the source domain.
//
// Complexity: O(|T|·|S|) for the matrix-vector product.
func (m *Matrix[S, T]) Apply(e S) (T, error) {
	var zero T
	if err := validateMatrix(m); err != nil {
		return zero, opErrorf(opApply, err)
	}

	// Encode the argument as a one-hot column vector.
	v, err := onehot.Encode(m.source, e)
	if err != nil {
		return zero, opErrorf(opApply, err)
	}
	x := tensor.New(
		tensor.WithShape(m.Cols()),
		tensor.WithBacking(v.Entries()),
	)

	// y = M · x is the one-hot encoding of the image.
	y, err := tensor.MatVecMul(m.dense, x)
	if err != nil {
		return zero, opErrorf(opApply, err)
	}

	// Decode through the target domain. Structural invariants guarantee
	// y is a valid one-hot vector, so a decode failure would indicate
	// corrupted storage and still surfaces as an error, never a panic.
	out, err := onehot.Decode(m.target, vectorData(y))
	if err != nil {
		return zero, opErrorf(opApply, err)
	}

	return out, nil
}

// vectorData reads a tensor product result as a []float64. Data()
// returns a bare scalar for length-1 vectors (tensor treats shape (1)
// as scalar-shaped), so both forms are normalized here.
func vectorData(t tensor.Tensor) []float64 {
	switch data := t.Data().(type) {
	case []float64:
		return data
	case float64:
		return []float64{data}
	default:
		return nil // unreachable for float64-backed tensors
	}
}

// Equal reports whether a and b represent the same function: their
// domains match element-wise and every column is identical. This is the
// defining equivalence of the representation (and of the tests).
// Nil matrices are equal only to nil.
// Complexity: O(n·m).
func Equal[S, T comparable](a, b *Matrix[S, T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if !a.source.Equal(b.source) || !a.target.Equal(b.target) {
		return false
	}

	// Shapes agree once the domains do; compare backing data entrywise.
	ad := a.backingData()
	bd := b.backingData()
	if len(ad) != len(bd) {
		return false
	}
	for i := range ad {
		if ad[i] != bd[i] {
			return false
		}
	}

	return true
}
