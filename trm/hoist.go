package trm

import "github.com/treeowl/typerep-map/typeid"

// Hoist re-interprets every entry through a uniform transformer, producing a
// map with the same key types. The transformer must work for any entry
// payload; for every key type K it receives the payload stored under K and
// returns the payload to store under K in the result.
func Hoist(m Map, f func(v any) any) Map {
	return HoistWithKey(m, func(_ typeid.ID, v any) any { return f(v) })
}

// HoistWithKey is Hoist with the key-type fingerprint passed alongside each
// payload, so a transformer can special-case entries by key identity without
// probing the payloads themselves.
func HoistWithKey(m Map, f func(id typeid.ID, v any) any) Map {
	if m.IsEmpty() {
		return m
	}
	entries := make([]entry, len(m.entries))
	for i, e := range m.entries {
		entries[i] = entry{id: e.id, val: f(e.id, e.val)}
	}
	return Map{entries: entries}
}

// HoistA is the effectful variant of HoistWithKey. Entries are transformed
// one by one in fingerprint order; the first transformer error aborts the
// walk and is returned with an empty map. On success the fully transformed
// map is returned.
func HoistA(m Map, f func(id typeid.ID, v any) (any, error)) (Map, error) {
	if m.IsEmpty() {
		return m, nil
	}
	entries := make([]entry, len(m.entries))
	for i, e := range m.entries {
		val, err := f(e.id, e.val)
		if err != nil {
			return Map{}, err
		}
		entries[i] = entry{id: e.id, val: val}
	}
	return Map{entries: entries}, nil
}
