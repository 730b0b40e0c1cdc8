// Package onehot: the vector codec — bidirectional conversion between a
// domain element and its one-hot vector.
// Encode and Decode are pure functions and exact inverses of each other
// for every well-formed input: Decode(d, Encode(d, x).Entries()) == x.

package onehot

import "fmt"

// entry values of a well-formed one-hot vector. Kept as named constants
// so the 0/1 policy is stated once.
const (
	inactiveEntry = 0.0
	activeEntry   = 1.0
)

// Vector is an immutable one-hot vector: exactly one entry equal to 1
// (the "active" entry) and all others 0. Only the active index and the
// basis size are stored; full entries are materialized on demand.
type Vector struct {
	index int // position of the sole 1 entry
	size  int // total vector length == |Domain|
}

// Index returns the position of the sole 1 entry.
// Complexity: O(1).
func (v Vector) Index() int {
	return v.index
}

// Size returns the vector length (the dimension of the basis).
// Complexity: O(1).
func (v Vector) Size() int {
	return v.size
}

// Entries materializes the vector as a 0/1 float64 slice of length
// Size(). The returned slice is fresh per call; mutating it cannot
// affect the Vector. Complexity: O(n).
func (v Vector) Entries() []float64 {
	out := make([]float64, v.size)
	// The zero Vector has no positions; every Encode-produced Vector
	// has 0 ≤ index < size.
	if v.size > 0 {
		out[v.index] = activeEntry
	}

	return out
}

// Encode returns the one-hot vector representing element e in domain d.
// Stage 1 (Validate): the domain must be constructed (non-nil).
// Stage 2 (Execute): look up the index and wrap it into a Vector.
// Returns ErrNilDomain or ErrElementNotFound.
// Complexity: O(1).
func Encode[E comparable](d *Domain[E], e E) (Vector, error) {
	if d == nil {
		return Vector{}, fmt.Errorf("Encode: %w", ErrNilDomain)
	}
	i, err := d.IndexOf(e)
	if err != nil {
		return Vector{}, fmt.Errorf("Encode: %w", err)
	}

	return Vector{index: i, size: d.Size()}, nil
}

// Decode returns the domain element encoded by the given raw entries.
// Stage 1 (Validate): d non-nil; len(entries) == d.Size(); every entry
// in {0,1}; exactly one entry equal to 1.
// Stage 2 (Execute): return the element at the active index.
//
// Raw entries (rather than a Vector) are accepted so results of
// external matrix-vector arithmetic can be decoded directly.
// Returns ErrNilDomain or ErrInvalidOneHot.
// Complexity: O(n).
func Decode[E comparable](d *Domain[E], entries []float64) (E, error) {
	var zero E
	if d == nil {
		return zero, fmt.Errorf("Decode: %w", ErrNilDomain)
	}
	// Length must match the basis dimension exactly.
	if len(entries) != d.Size() {
		return zero, fmt.Errorf("Decode: length %d, domain size %d: %w", len(entries), d.Size(), ErrInvalidOneHot)
	}

	// Single pass: verify the 0/1 policy and locate the active entry.
	active := -1
	for i, x := range entries {
		switch x {
		case inactiveEntry:
			// nothing to do
		case activeEntry:
			if active >= 0 {
				return zero, fmt.Errorf("Decode: second 1 entry at %d (first at %d): %w", i, active, ErrInvalidOneHot)
			}
			active = i
		default:
			return zero, fmt.Errorf("Decode: entry %g at %d outside {0,1}: %w", x, i, ErrInvalidOneHot)
		}
	}
	if active < 0 {
		return zero, fmt.Errorf("Decode: no 1 entry: %w", ErrInvalidOneHot)
	}

	// ElementAt cannot fail here: 0 ≤ active < d.Size() by construction.
	return d.ElementAt(active)
}

// DecodeVector returns the domain element encoded by Vector v.
// Returns ErrNilDomain, or ErrInvalidOneHot when v's size does not
// match the domain (including the zero Vector). Complexity: O(1).
func DecodeVector[E comparable](d *Domain[E], v Vector) (E, error) {
	var zero E
	if d == nil {
		return zero, fmt.Errorf("DecodeVector: %w", ErrNilDomain)
	}
	if v.size != d.Size() {
		return zero, fmt.Errorf("DecodeVector: vector size %d, domain size %d: %w", v.size, d.Size(), ErrInvalidOneHot)
	}

	return d.ElementAt(v.index)
}
