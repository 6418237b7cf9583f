package trm

import (
	"slices"

	"github.com/treeowl/typerep-map/typeid"
)

// entryValue reinterprets a stored payload as V after the fingerprint already
// matched. A dynamic type mismatch at this point means the caller mixed value
// types under one key type, which breaks the interpretation contract; that is
// a programming error, not a runtime condition.
func entryValue[V any](e entry) V {
	if e.val == nil {
		var zero V
		return zero
	}
	v, ok := e.val.(V)
	assert(ok, "entry for "+e.id.Name()+" does not hold the requested value type")
	return v
}

// Lookup returns the value stored under key type K, if present.
//
// Absence is a normal outcome, reported through the boolean result.
func Lookup[K any, V any](m Map) (V, bool) {
	slot, found := m.search(typeid.Of[K]())
	if !found {
		var zero V
		return zero, false
	}
	return entryValue[V](m.entries[slot]), true
}

// Member reports whether an entry for key type K exists.
func Member[K any](m Map) bool {
	_, found := m.search(typeid.Of[K]())
	return found
}

// Insert returns a new map with v stored under key type K, replacing any
// prior entry for K.
func Insert[K any, V any](m Map, v V) Map {
	id := typeid.Of[K]()
	slot, found := m.search(id)
	if found {
		entries := slices.Clone(m.entries)
		entries[slot].val = v
		return Map{entries: entries}
	}
	return m.withInsertedAt(slot, entry{id: id, val: v})
}

// Delete returns a map without an entry for key type K.
//
// When K is absent the binary-search probe short-circuits and m is returned
// unchanged, without rebuilding the backing slice.
func Delete[K any](m Map) Map {
	slot, found := m.search(typeid.Of[K]())
	if !found {
		return m
	}
	return m.withRemovedAt(slot)
}

// Adjust applies f to the entry for key type K, if present. A missing K is a
// no-op. Other entries are never touched.
func Adjust[K any, V any](m Map, f func(V) V) Map {
	slot, found := m.search(typeid.Of[K]())
	if !found {
		return m
	}
	entries := slices.Clone(m.entries)
	entries[slot].val = f(entryValue[V](entries[slot]))
	return Map{entries: entries}
}

// Alter is the general insert/update/delete primitive.
//
// f receives the current value for key type K together with a presence flag,
// mirroring Lookup. When f reports true, its value becomes (or replaces) the
// entry; when it reports false, the entry is removed if it existed. Insert,
// Delete and Adjust are special cases of Alter.
func Alter[K any, V any](m Map, f func(v V, present bool) (V, bool)) Map {
	id := typeid.Of[K]()
	slot, found := m.search(id)
	if found {
		next, keep := f(entryValue[V](m.entries[slot]), true)
		if !keep {
			return m.withRemovedAt(slot)
		}
		entries := slices.Clone(m.entries)
		entries[slot].val = next
		return Map{entries: entries}
	}
	var zero V
	next, keep := f(zero, false)
	if !keep {
		return m
	}
	return m.withInsertedAt(slot, entry{id: id, val: next})
}

func (m Map) withInsertedAt(slot int, e entry) Map {
	entries := make([]entry, 0, len(m.entries)+1)
	entries = append(entries, m.entries[:slot]...)
	entries = append(entries, e)
	entries = append(entries, m.entries[slot:]...)
	return Map{entries: entries}
}

func (m Map) withRemovedAt(slot int) Map {
	if len(m.entries) == 1 {
		return Map{}
	}
	entries := make([]entry, 0, len(m.entries)-1)
	entries = append(entries, m.entries[:slot]...)
	entries = append(entries, m.entries[slot+1:]...)
	return Map{entries: entries}
}
