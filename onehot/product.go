// Package onehot: Cartesian product of domains.
// A product domain enumerates pairs in row-major order (left component
// major, right component minor), so the index of (x, y) in a × b is
// a.IndexOf(x)*b.Size() + b.IndexOf(y). Products nest for higher
// arities; the operation is associative up to Pair nesting.

package onehot

// Pair is one coordinate pair of a product domain. It is comparable
// whenever A and B are, so product domains work with every Domain
// operation unchanged (IndexOf, Encode, further Products, ...).
type Pair[A, B comparable] struct {
	Left  A // coordinate drawn from the left operand
	Right B // coordinate drawn from the right operand
}

// Product combines two domains using the Cartesian product operation.
// Stage 1 (Validate): both operands must be constructed (non-nil).
// Stage 2 (Execute): enumerate pairs left-major into a fresh Domain.
//
// The enumeration order makes index arithmetic compositional:
//
//	ab := Product(a, b)               // |ab| = |a|·|b|
//	ab.IndexOf(Pair{x, y})            // = a.IndexOf(x)*b.Size() + b.IndexOf(y)
//
// Returns ErrNilDomain if either operand is nil. Both operands being
// non-empty by construction, the product is non-empty too, so NewDomain
// cannot fail here (pair distinctness follows from operand
// distinctness).
// Complexity: O(|a|·|b|) time and memory.
func Product[A, B comparable](a *Domain[A], b *Domain[B]) (*Domain[Pair[A, B]], error) {
	// Validate both operands exist.
	if a == nil || b == nil {
		return nil, ErrNilDomain
	}

	// Enumerate pairs left-major: the right coordinate varies fastest.
	pairs := make([]Pair[A, B], 0, len(a.elements)*len(b.elements))
	for _, x := range a.elements {
		for _, y := range b.elements {
			pairs = append(pairs, Pair[A, B]{Left: x, Right: y})
		}
	}

	return NewDomain(pairs...)
}
