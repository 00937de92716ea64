package rrbvector

import "errors"

// ErrOutOfRange is reported when an index lies outside [0, Len()) of a
// Vector. Slice clamps its bounds instead and never reports it.
var ErrOutOfRange = errors.New("rrbvector: index out of range")

// ErrEmpty is raised by Peek and Pop on an empty Vector.
var ErrEmpty = errors.New("rrbvector: vector is empty")

// ErrMisusedTransient is raised when a Transient is used after it has been
// frozen. Use from a goroutine other than the one that created it is not
// detected.
var ErrMisusedTransient = errors.New("rrbvector: misused transient")

// ErrInvariantViolated is returned (never panicked) by Validate when a
// Vector fails a structural consistency check. It should never occur for a
// Vector produced solely by this package's own operations.
var ErrInvariantViolated = errors.New("rrbvector: invariant violated")
