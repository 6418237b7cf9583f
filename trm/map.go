package trm

import (
	"slices"
	"strings"

	"github.com/treeowl/typerep-map/typeid"
)

// Map is an immutable map from key types to values.
//
// A map created by
//
//	Map{}
//
// is a valid object and behaves like the empty map. Maps are value types:
// operations that change content return a new Map and leave the receiver and
// all other previously obtained maps untouched.
//
// Performance characteristics:
//
//	Operation         |  Map
//	------------------+-----------
//	Lookup, Member    |  O(log n)
//	Insert, Delete    |  O(n)
//	Union, Intersect  |  O(n+m)
//	Iterate           |  O(n)
type Map struct {
	entries []entry // sorted by entry.id, fingerprints pairwise distinct
}

type entry struct {
	id  typeid.ID
	val any
}

// Empty returns the map with no entries.
func Empty() Map {
	return Map{}
}

// One returns a map holding a single entry: v stored under key type K.
func One[K any, V any](v V) Map {
	return Map{entries: []entry{{id: typeid.Of[K](), val: v}}}
}

// FromValues builds a map from pre-wrapped values.
//
// Duplicate key types are resolved like sequential insertion: the last value
// for a key type wins.
func FromValues(vs ...Value) Map {
	if len(vs) == 0 {
		return Map{}
	}
	entries := make([]entry, 0, len(vs))
	for _, v := range vs {
		assert(!v.id.IsNone(), "FromValues: value without key type")
		entries = append(entries, entry{id: v.id, val: v.val})
	}
	slices.SortStableFunc(entries, func(a, b entry) int {
		return a.id.Compare(b.id)
	})
	deduped := entries[:0]
	for _, e := range entries {
		if n := len(deduped); n > 0 && deduped[n-1].id == e.id {
			deduped[n-1] = e
			continue
		}
		deduped = append(deduped, e)
	}
	return Map{entries: slices.Clip(deduped)}
}

// Size returns the number of entries.
func (m Map) Size() int {
	return len(m.entries)
}

// IsEmpty reports whether the map has no entries.
func (m Map) IsEmpty() bool {
	return len(m.entries) == 0
}

// Keys returns the fingerprints of all entries, in fingerprint order.
func (m Map) Keys() []typeid.ID {
	keys := make([]typeid.ID, len(m.entries))
	for i, e := range m.entries {
		keys[i] = e.id
	}
	return keys
}

// KeysWith returns all keys mapped through a uniform wrapper, in fingerprint
// order. It is the projection of choice when the key identities themselves
// must escape into a homogeneous collection.
func KeysWith[R any](m Map, wrap func(typeid.ID) R) []R {
	out := make([]R, len(m.entries))
	for i, e := range m.entries {
		out[i] = wrap(e.id)
	}
	return out
}

// ToListWith returns all values mapped through a uniform wrapper, in
// fingerprint order. This is the standard escape hatch from the heterogeneous
// representation into an ordinary homogeneous slice.
func ToListWith[R any](m Map, wrap func(any) R) []R {
	out := make([]R, len(m.entries))
	for i, e := range m.entries {
		out[i] = wrap(e.val)
	}
	return out
}

// String renders the key types of the map, mirroring the entry order.
func (m Map) String() string {
	var sb strings.Builder
	sb.WriteString("TypeRepMap [")
	for i, e := range m.entries {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.id.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// search locates the slot for a fingerprint in the sorted entry slice.
func (m Map) search(id typeid.ID) (slot int, found bool) {
	return slices.BinarySearchFunc(m.entries, id, func(e entry, target typeid.ID) int {
		return e.id.Compare(target)
	})
}
