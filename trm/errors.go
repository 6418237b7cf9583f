package trm

import "errors"

var (
	// ErrInvariant signals corrupted internal map structure, detected by Check.
	ErrInvariant = errors.New("trm: invariant violation")
)
