// Package funcmat: canonical validators.
//
// Purpose:
//   - Provide a single source of truth for the guard checks shared by the
//     encoder and algebra facades.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap
//     uniformly with their operation tag.
//
// All checks are pure, deterministic and allocate nothing.

package funcmat

import (
	"fmt"

	"github.com/matricity/matricity/onehot"
)

// opErrorf wraps err with an operation tag, preserving the original
// error via %w so errors.Is/As keep working. Call only with a non-nil
// err; wrapping a nil cause yields a bogus non-nil error.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Operation name constants for unified error wrapping.
const (
	opFromTable = "FromTable"
	opFromFunc  = "FromFunc"
	opIdentity  = "Identity"
	opCompose   = "Compose"
	opApply     = "Apply"
	opColumn    = "Column"
)

// validateDomains ensures both encoder domains are constructed.
// Returns ErrNilDomain. Complexity: O(1).
func validateDomains[S, T comparable](source *onehot.Domain[S], target *onehot.Domain[T]) error {
	if source == nil || target == nil {
		return ErrNilDomain
	}

	return nil
}

// validateMatrix ensures a matrix value is usable: non-nil and carrying
// its backing storage. Returns ErrNilMatrix. Complexity: O(1).
func validateMatrix[S, T comparable](m *Matrix[S, T]) error {
	if m == nil || m.dense == nil {
		return ErrNilMatrix
	}

	return nil
}

// validateComposable ensures inner's target domain is element-wise
// equal to outer's source domain — the compatibility required for the
// matrix product to mean function composition.
// Assumes both matrices already passed validateMatrix.
// Returns ErrDomainMismatch. Complexity: O(n).
func validateComposable[S, M, T comparable](outer *Matrix[M, T], inner *Matrix[S, M]) error {
	if !inner.target.Equal(outer.source) {
		return ErrDomainMismatch
	}

	return nil
}
