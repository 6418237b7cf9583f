package tmap

/*
BSD 3-Clause License

Copyright (c) the typerep-map authors

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/treeowl/typerep-map/trm"
	"github.com/treeowl/typerep-map/typeid"
)

// TMap is an immutable map from key types to bare values of those types.
//
// A map created by
//
//	TMap{}
//
// is a valid object and behaves like the empty map. Every update operation
// returns a new TMap; previously held maps stay valid and unchanged.
//
// TMap is a thin veneer over the engine in package trm with the stored value
// type fixed to the key type; it adds no representation of its own.
type TMap struct {
	rep trm.Map
}

// Empty returns the map with no entries.
func Empty() TMap {
	return TMap{}
}

// One returns a map holding the single value v under key type K.
func One[K any](v K) TMap {
	return TMap{rep: trm.One[K, K](v)}
}

// Lookup returns the value stored under key type K, if present. Absence is a
// normal outcome, not an error.
func Lookup[K any](m TMap) (K, bool) {
	return trm.Lookup[K, K](m.rep)
}

// Member reports whether the map holds an entry for key type K.
func Member[K any](m TMap) bool {
	return trm.Member[K](m.rep)
}

// Insert returns a new map with v stored under key type K, replacing any
// prior K entry. The type argument is usually inferred from v.
func Insert[K any](m TMap, v K) TMap {
	return TMap{rep: trm.Insert[K, K](m.rep, v)}
}

// Delete returns a map without an entry for key type K. Deleting an absent
// key type is a no-op.
func Delete[K any](m TMap) TMap {
	return TMap{rep: trm.Delete[K](m.rep)}
}

// Adjust applies f to the K entry, if present; a missing K is a no-op.
func Adjust[K any](m TMap, f func(K) K) TMap {
	return TMap{rep: trm.Adjust[K, K](m.rep, f)}
}

// Alter is the general insert/update/delete primitive; see trm.Alter.
func Alter[K any](m TMap, f func(v K, present bool) (K, bool)) TMap {
	return TMap{rep: trm.Alter[K, K](m.rep, f)}
}

// Union merges two maps, preferring m1's value for key types present in both.
func Union(m1, m2 TMap) TMap {
	return TMap{rep: trm.Union(m1.rep, m2.rep)}
}

// UnionWith merges two maps, combining the two values of a shared key type
// with f. The combining function receives two values of the same key type and
// must return a value of that type again.
func UnionWith(f func(a, b any) any, m1, m2 TMap) TMap {
	return TMap{rep: trm.UnionWith(f, m1.rep, m2.rep)}
}

// IntersectionWith restricts to key types present in both maps, combining
// the two values per key type with f; see UnionWith for the combiner
// contract.
func IntersectionWith(f func(a, b any) any, m1, m2 TMap) TMap {
	return TMap{rep: trm.IntersectionWith(f, m1.rep, m2.rep)}
}

// Intersection restricts to key types present in both maps, keeping m1's
// values.
func Intersection(m1, m2 TMap) TMap {
	return TMap{rep: trm.Intersection(m1.rep, m2.rep)}
}

// KeysWith returns all keys mapped through a uniform wrapper, in fingerprint
// order.
func KeysWith[R any](m TMap, wrap func(typeid.ID) R) []R {
	return trm.KeysWith(m.rep, wrap)
}

// ToListWith returns all values mapped through a uniform wrapper into a
// homogeneous slice, in fingerprint order.
func ToListWith[R any](m TMap, wrap func(any) R) []R {
	return trm.ToListWith(m.rep, wrap)
}

// MapValues transforms every entry's value with a uniform, type-preserving
// function: f receives each entry's fingerprint and bare value and must
// return a value of the very same type. Violating type preservation corrupts
// the map's contract and is treated as a programming error (panic).
func MapValues(m TMap, f func(id typeid.ID, v any) any) TMap {
	T().Debugf("tmap: mapping values of %d entries", m.Size())
	rep := trm.HoistWithKey(m.rep, func(id typeid.ID, v any) any {
		out := f(id, v)
		assert(conformsTo(id, out),
			"MapValues transformer changed the type of the "+id.Name()+" entry")
		return out
	})
	return TMap{rep: rep}
}

// Size returns the number of entries.
func (m TMap) Size() int {
	return m.rep.Size()
}

// IsEmpty reports whether the map has no entries.
func (m TMap) IsEmpty() bool {
	return m.rep.IsEmpty()
}

// Keys returns the fingerprints of all entries, in fingerprint order.
func (m TMap) Keys() []typeid.ID {
	return m.rep.Keys()
}

// All returns an iterator over all entries in fingerprint order.
func (m TMap) All() iter.Seq2[typeid.ID, any] {
	return m.rep.All()
}

// Each visits all entries in fingerprint order; see trm.Map.Each.
func (m TMap) Each(f func(id typeid.ID, v any) error) error {
	return m.rep.Each(f)
}

// String renders the key types of the map.
func (m TMap) String() string {
	return m.rep.String()
}

// Check validates map invariants, including the identity interpretation:
// every stored value must have exactly the type of its fingerprint. It is
// meant for tests; a non-nil result indicates a defect, not an input error.
func (m TMap) Check() error {
	if err := m.rep.Check(); err != nil {
		return err
	}
	return m.rep.Each(func(id typeid.ID, v any) error {
		if !conformsTo(id, v) {
			return fmt.Errorf("%w: %s entry holds a %T value", trm.ErrInvariant, id, v)
		}
		return nil
	})
}

// conformsTo reports whether a bare value may legally live under a key-type
// fingerprint in the identity interpretation. Interface key types hold values
// of any implementing type (or a nil interface); concrete key types hold
// exactly their own type.
func conformsTo(id typeid.ID, v any) bool {
	kt := id.Type()
	if v == nil {
		return kt.Kind() == reflect.Interface
	}
	vt := reflect.TypeOf(v)
	if vt == kt {
		return true
	}
	return kt.Kind() == reflect.Interface && vt.Implements(kt)
}
