// Package onehot: Domain — an ordered, immutable, deduplicated universe
// of elements with a stable element ↔ index bijection.

package onehot

import "fmt"

// Domain is an ordered, finite, deduplicated sequence of distinct
// elements. The element at position i is assigned basis index i, so the
// input order fixes the one-hot basis once and for all.
//
// A Domain is immutable after construction: any structural change means
// constructing a new Domain. Because nothing mutates, a Domain may be
// shared across goroutines without synchronization.
type Domain[E comparable] struct {
	elements []E       // index → element, in declaration order
	index    map[E]int // element → index, inverse of elements
}

// NewDomain constructs a Domain from the given elements.
// Stage 1 (Validate): reject an empty element list and any repeated element.
// Stage 2 (Prepare): build the element → index inverse table.
// Stage 3 (Finalize): return the immutable Domain.
// Complexity: O(n) time and memory.
func NewDomain[E comparable](elements ...E) (*Domain[E], error) {
	// Reject the empty universe: no basis position could exist.
	if len(elements) == 0 {
		return nil, ErrEmptyDomain
	}

	// Copy the input so later caller mutations cannot reach the Domain.
	ordered := make([]E, len(elements))
	copy(ordered, elements)

	// Build the inverse table, detecting duplicates as we go.
	index := make(map[E]int, len(ordered))
	for i, e := range ordered {
		if _, seen := index[e]; seen {
			return nil, fmt.Errorf("NewDomain: element %v at position %d: %w", e, i, ErrDuplicateElement)
		}
		index[e] = i
	}

	return &Domain[E]{elements: ordered, index: index}, nil
}

// MustDomain is like NewDomain but panics on error.
// Intended for domain literals in tests and examples where the element
// list is statically known to be valid.
func MustDomain[E comparable](elements ...E) *Domain[E] {
	d, err := NewDomain(elements...)
	if err != nil {
		panic(err)
	}

	return d
}

// Size returns the number of elements in the domain.
// Complexity: O(1).
func (d *Domain[E]) Size() int {
	return len(d.elements)
}

// IndexOf returns the basis index assigned to element e.
// Returns ErrElementNotFound if e is not a member of the domain.
// Complexity: O(1).
func (d *Domain[E]) IndexOf(e E) (int, error) {
	i, ok := d.index[e]
	if !ok {
		return 0, fmt.Errorf("IndexOf: element %v: %w", e, ErrElementNotFound)
	}

	return i, nil
}

// ElementAt returns the element assigned to basis index i.
// Returns ErrIndexOutOfRange if i is outside [0, Size()).
// Complexity: O(1).
func (d *Domain[E]) ElementAt(i int) (E, error) {
	if i < 0 || i >= len(d.elements) {
		var zero E
		return zero, fmt.Errorf("ElementAt(%d): size %d: %w", i, len(d.elements), ErrIndexOutOfRange)
	}

	return d.elements[i], nil
}

// Contains reports whether e is a member of the domain.
// Complexity: O(1).
func (d *Domain[E]) Contains(e E) bool {
	_, ok := d.index[e]

	return ok
}

// Elements returns the domain elements in index order.
// The returned slice is a fresh copy; mutating it cannot affect the
// Domain. Complexity: O(n).
func (d *Domain[E]) Elements() []E {
	out := make([]E, len(d.elements))
	copy(out, d.elements)

	return out
}

// Equal reports whether d and other contain the same elements in the
// same order — the compatibility notion used by matrix composition.
// Two independently constructed but element-wise equal domains are
// interchangeable everywhere. Complexity: O(n).
func (d *Domain[E]) Equal(other *Domain[E]) bool {
	// A nil domain equals only another nil domain.
	if d == nil || other == nil {
		return d == other
	}
	if len(d.elements) != len(other.elements) {
		return false
	}
	for i, e := range d.elements {
		if other.elements[i] != e {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(n) for string construction.
func (d *Domain[E]) String() string {
	s := "onehot.Domain["
	for i, e := range d.elements {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%v", e)
	}
	s += "]"

	return s
}
