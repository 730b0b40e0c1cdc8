// Package funcmat: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// funcmat package. All constructors and algebra operations MUST return
// these sentinels (or sentinels of package onehot, which propagate
// unchanged) and tests MUST check them via errors.Is. No operation
// panics on user-triggered error conditions.

package funcmat

import "errors"

// Every message is prefixed with "funcmat: ..." for consistency and to
// allow easy grepping across logs. Facades wrap sentinels with an
// operation tag via fmt.Errorf("Op: %w", ...); callers still match with
// errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil inputs -> table-key membership -> per-element totality/range
// violations in source index order -> domain compatibility -> index
// bounds.

var (
	// ErrNilDomain indicates that a nil *onehot.Domain was passed to an
	// encoder (FromTable, FromFunc, Identity).
	ErrNilDomain = errors.New("funcmat: domain is nil")

	// ErrNilFunc indicates that a nil function rule was passed to
	// FromFunc.
	ErrNilFunc = errors.New("funcmat: function is nil")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument)
	// was used in an algebra operation.
	ErrNilMatrix = errors.New("funcmat: matrix is nil")

	// ErrIncompleteMapping is returned by FromTable when some source
	// element has no table entry. Totality is mandatory: every matrix
	// column must be exactly one-hot.
	ErrIncompleteMapping = errors.New("funcmat: mapping does not cover every source element")

	// ErrUnknownElement is returned by FromTable when a table key is not
	// a member of the source domain or a mapped output is not a member
	// of the target domain.
	ErrUnknownElement = errors.New("funcmat: element outside declared domain")

	// ErrRangeViolation is returned by FromFunc when the rule evaluates,
	// at some source element, to a value outside the target domain.
	ErrRangeViolation = errors.New("funcmat: function value outside target domain")

	// ErrDomainMismatch is returned by Compose when the inner matrix's
	// target domain is not element-wise equal to the outer matrix's
	// source domain.
	ErrDomainMismatch = errors.New("funcmat: incompatible domains for composition")

	// ErrIndexOutOfRange indicates a column index outside valid bounds
	// (Column).
	ErrIndexOutOfRange = errors.New("funcmat: index out of range")
)
