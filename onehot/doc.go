// Package onehot provides finite domains and the one-hot vector codec.
//
// 🚀 What is a one-hot encoding?
//
//	A domain of n distinct elements is mapped onto the standard basis of
//	an n-dimensional space: the element at index i becomes the vector
//	e_i with a single 1 at position i. This gives every finite universe
//	(enum values, small integer ranges, labels) an exact linear-algebra
//	representation.
//
// ✨ Key features:
//   - Domain — ordered, deduplicated, immutable; input order fixes the
//     basis index assignment
//   - Product — Cartesian combination of domains with row-major index
//     arithmetic (left component major)
//   - Vector — compact one-hot value (active index + size); entries are
//     materialized on demand
//   - Encode / Decode — total, validated, and exact inverses of each
//     other for every well-formed input
//
// ⚙️ Usage:
//
//	d, err := onehot.NewDomain("a", "b", "c")
//	v, err := onehot.Encode(d, "b")   // ⟨0 1 0⟩
//	x, err := onehot.Decode(d, v.Entries()) // "b"
//
// All values are immutable after construction; concurrent readers need
// no synchronization. Every failure mode is a package sentinel matched
// via errors.Is.
package onehot
