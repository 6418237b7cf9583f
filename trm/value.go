package trm

import "github.com/treeowl/typerep-map/typeid"

// Value pairs a key-type fingerprint with an opaque payload.
//
// It is the existential shape of a single map entry: the payload's static
// type is erased, but the fingerprint keeps the key identity recoverable, so
// a payload can be reinterpreted with As after a fingerprint check.
type Value struct {
	id  typeid.ID
	val any
}

// NewValue wraps v for storage under key type K.
func NewValue[K any, V any](v V) Value {
	return Value{id: typeid.Of[K](), val: v}
}

// ID returns the key-type fingerprint of the wrapped value.
func (v Value) ID() typeid.ID {
	return v.id
}

// Unwrap returns the opaque payload.
func (v Value) Unwrap() any {
	return v.val
}

// As reinterprets the payload as type V.
//
// The boolean result reports whether the payload's dynamic type matches; a
// false result leaves the caller with the zero V.
func As[V any](v Value) (V, bool) {
	out, ok := v.val.(V)
	return out, ok
}
