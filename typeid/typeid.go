package typeid

import (
	"fmt"
	"reflect"
)

// ID is a fingerprint for a Go type: a stable, total-order-comparable and
// hashable identity derived from the type's reflective representation.
//
// Two IDs are equal if and only if they identify the same type. IDs admit a
// consistent strict ordering (by hash, tie-broken by canonical name), which
// makes them usable for sorting and binary search. The ordering is stable
// within a process; it is not meaningful across processes.
//
// The zero ID identifies no type at all and sorts before every proper ID.
type ID struct {
	hash uint64
	name string
	typ  reflect.Type
}

// Of returns the fingerprint for type K.
//
// K may be any type, including interface types; Of distinguishes an interface
// type from the types satisfying it.
func Of[K any]() ID {
	return For(reflect.TypeOf((*K)(nil)).Elem())
}

// For returns the fingerprint for a reflected type.
// For(nil) returns the zero ID.
func For(t reflect.Type) ID {
	if t == nil {
		return ID{}
	}
	return intern(t)
}

// IsNone reports whether id is the zero ID, i.e. identifies no type.
func (id ID) IsNone() bool {
	return id.typ == nil
}

// Hash returns the 64-bit fingerprint hash.
func (id ID) Hash() uint64 {
	return id.hash
}

// Name returns the canonical, fully package-path-qualified type name.
func (id ID) Name() string {
	return id.name
}

// Type returns the reflected type identified by id, or nil for the zero ID.
func (id ID) Type() reflect.Type {
	return id.typ
}

// Compare orders two fingerprints. It returns a negative number when id sorts
// before other, zero when both identify the same type, and a positive number
// otherwise.
func (id ID) Compare(other ID) int {
	switch {
	case id.hash < other.hash:
		return -1
	case id.hash > other.hash:
		return 1
	}
	switch {
	case id.name < other.name:
		return -1
	case id.name > other.name:
		return 1
	}
	return 0
}

// Less reports whether id sorts strictly before other.
func (id ID) Less(other ID) bool {
	return id.Compare(other) < 0
}

// String returns a short human-readable type notation, suitable for debugging
// output. Use Name for the canonical unique representation.
func (id ID) String() string {
	if id.typ == nil {
		return "<none>"
	}
	return id.typ.String()
}

// GoString makes fingerprints print with their hash in %#v output.
func (id ID) GoString() string {
	if id.typ == nil {
		return "typeid.ID{}"
	}
	return fmt.Sprintf("typeid.ID{%016x %s}", id.hash, id.name)
}
