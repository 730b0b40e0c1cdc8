// Package onehot: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// onehot package. All constructors and codecs MUST return these
// sentinels and tests MUST check them via errors.Is. No function panics
// on user-triggered error conditions; panics are reserved for the Must*
// convenience wrappers.

package onehot

import "errors"

// Every message is prefixed with "onehot: ..." for consistency and to
// allow easy grepping across logs. Wrap with fmt.Errorf("ctx: %w", ErrX)
// at outer boundaries when context is essential; callers still match
// with errors.Is.

var (
	// ErrDuplicateElement is returned by NewDomain when two supplied
	// elements compare equal. A one-hot basis requires distinct elements.
	ErrDuplicateElement = errors.New("onehot: duplicate element in domain")

	// ErrEmptyDomain is returned by NewDomain when no elements are
	// supplied. A one-hot basis needs at least one position.
	ErrEmptyDomain = errors.New("onehot: domain must not be empty")

	// ErrElementNotFound indicates a lookup of an element that is not a
	// member of the domain (IndexOf, Encode).
	ErrElementNotFound = errors.New("onehot: element not found in domain")

	// ErrIndexOutOfRange indicates an index outside [0, Size())
	// (ElementAt).
	ErrIndexOutOfRange = errors.New("onehot: index out of range")

	// ErrInvalidOneHot indicates that a decode target is not a valid
	// one-hot vector: wrong length, an entry outside {0,1}, or a number
	// of ones different from exactly one.
	ErrInvalidOneHot = errors.New("onehot: not a valid one-hot vector")

	// ErrNilDomain indicates that a nil *Domain was passed where a
	// constructed domain is required (Product, Encode, Decode).
	ErrNilDomain = errors.New("onehot: domain is nil")
)
