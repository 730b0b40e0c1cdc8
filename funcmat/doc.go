// Package funcmat lifts total functions between finite domains into
// 0/1 matrices acting on one-hot vectors, and combines them with a
// small algebra that mirrors function composition exactly.
//
// 🚀 What is a function matrix?
//
//	For f: S → T with |S| = m and |T| = n, the matrix of f is the n×m
//	matrix whose column j is the one-hot encoding of f(x_j). Then
//	applying f is a matrix-vector product and composing functions is a
//	matrix product:
//
//	  matrix(f ∘ g) == matrix(f) · matrix(g)
//
// ✨ Key features:
//   - FromTable — explicit encoding from a literal (input, output) table,
//     with totality enforced up front
//   - FromFunc — implicit encoding: a Go func evaluated pointwise over
//     the declared source domain
//   - Identity / Compose / Apply / Equal — the full algebra, each
//     operation validated against domain compatibility before any
//     arithmetic happens
//   - Interop — bulk storage and products are gorgonia tensors; Dense()
//     exports a deep copy for external pipelines
//
// ⚙️ Usage:
//
//	bit := onehot.MustDomain(0, 1)
//	not, _ := funcmat.FromFunc(bit, bit, func(x int) int { return 1 - x })
//	idn, _ := funcmat.Identity(bit)
//	twice, _ := funcmat.Compose(not, not)
//	funcmat.Equal(twice, idn) // true: ¬∘¬ = id
//
// Every operation is a pure transformation over immutable values; there
// is no session state and no locking discipline. Failure modes are
// package sentinels matched via errors.Is — all of them caller
// programming errors detected fail-fast, never retried or recovered.
package funcmat
