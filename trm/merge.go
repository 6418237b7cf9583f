package trm

// UnionWith merges two maps. For a key type present in both maps, f combines
// the two values; a key type present in only one map keeps its value
// unchanged. The merge walks both sorted entry slices once, O(n+m).
//
// The combining function must treat its arguments uniformly: for every key
// type it receives two payloads of that key's value type and must return a
// payload of the same value type.
func UnionWith(f func(a, b any) any, m1, m2 Map) Map {
	if m1.IsEmpty() {
		return m2
	}
	if m2.IsEmpty() {
		return m1
	}
	entries := make([]entry, 0, len(m1.entries)+len(m2.entries))
	i, j := 0, 0
	for i < len(m1.entries) && j < len(m2.entries) {
		a, b := m1.entries[i], m2.entries[j]
		switch cmp := a.id.Compare(b.id); {
		case cmp < 0:
			entries = append(entries, a)
			i++
		case cmp > 0:
			entries = append(entries, b)
			j++
		default:
			entries = append(entries, entry{id: a.id, val: f(a.val, b.val)})
			i++
			j++
		}
	}
	entries = append(entries, m1.entries[i:]...)
	entries = append(entries, m2.entries[j:]...)
	return Map{entries: entries}
}

// Union merges two maps, preferring m1's value for key types present in both.
func Union(m1, m2 Map) Map {
	return UnionWith(func(a, _ any) any { return a }, m1, m2)
}

// IntersectionWith restricts to key types present in both maps, combining the
// two values per key type with f. O(n+m).
func IntersectionWith(f func(a, b any) any, m1, m2 Map) Map {
	if m1.IsEmpty() || m2.IsEmpty() {
		return Map{}
	}
	var entries []entry
	i, j := 0, 0
	for i < len(m1.entries) && j < len(m2.entries) {
		a, b := m1.entries[i], m2.entries[j]
		switch cmp := a.id.Compare(b.id); {
		case cmp < 0:
			i++
		case cmp > 0:
			j++
		default:
			entries = append(entries, entry{id: a.id, val: f(a.val, b.val)})
			i++
			j++
		}
	}
	return Map{entries: entries}
}

// Intersection restricts to key types present in both maps, keeping m1's
// values.
func Intersection(m1, m2 Map) Map {
	return IntersectionWith(func(a, _ any) any { return a }, m1, m2)
}
