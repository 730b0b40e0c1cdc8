// Package matricity encodes functions over finite domains as matrices
// that act on one-hot vectors — turning function application into
// matrix-vector multiplication and function composition into matrix
// multiplication.
//
// 🚀 What is matricity?
//
//	A small, pure-value library that brings together:
//		• Domains: ordered, deduplicated finite universes with stable indices
//		• One-hot codec: element ↔ basis-vector conversion, both directions
//		• Function matrices: lift explicit tables or Go funcs into 0/1 matrices
//		• Algebra: Compose, Apply, Identity — obeying matrix(f∘g) = matrix(f)·matrix(g)
//
// ✨ Why choose matricity?
//
//   - Fail-fast – every malformed domain, partial table or incompatible
//     composition is rejected with a sentinel error before any matrix exists
//   - Immutable values – Domains and Matrices never mutate; share them
//     freely across goroutines without locks
//   - Typed – element types are explicit comparable type parameters,
//     checked at compile time, not duck-typed at runtime
//   - Interop – the underlying dense storage is a gorgonia tensor,
//     exportable to any linear-algebra pipeline
//
// Everything is organized under two subpackages:
//
//	onehot/  — Domain, Product, Vector, Encode/Decode
//	funcmat/ — Matrix, FromTable, FromFunc, Identity, Compose, Apply, Equal
//
// Quick example:
//
//	spin := onehot.MustDomain("up", "down")
//	flip, _ := funcmat.FromFunc(spin, spin, func(s string) string {
//	    if s == "up" {
//	        return "down"
//	    }
//	    return "up"
//	})
//	twice, _ := funcmat.Compose(flip, flip) // flip ∘ flip
//	out, _ := twice.Apply("up")             // "up" — an involution
//
// See the examples in each package for usage patterns.
package matricity
