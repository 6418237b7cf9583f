package trm

import "testing"

func twoMaps() (Map, Map) {
	m1 := Insert[keyB, keyB](One[keyA, keyA](1), "left")
	m2 := Insert[keyC, keyC](One[keyB, keyB]("right"), keyC{x: 5})
	return m1, m2
}

func TestUnionIsLeftBiased(t *testing.T) {
	m1, m2 := twoMaps()
	u := Union(m1, m2)
	mustCheck(t, u)
	if u.Size() != 3 {
		t.Fatalf("union size = %d, want 3", u.Size())
	}
	b, _ := Lookup[keyB, keyB](u)
	if b != "left" {
		t.Errorf("union kept %q for the shared key type, want left value", b)
	}
	if !Member[keyA](u) || !Member[keyC](u) {
		t.Errorf("union lost a one-sided entry")
	}
}

func TestUnionEqualsUnionWithConstFirst(t *testing.T) {
	m1, m2 := twoMaps()
	equalMaps(t, Union(m1, m2), UnionWith(func(a, _ any) any { return a }, m1, m2))
}

func TestUnionWithCombinesSharedEntries(t *testing.T) {
	m1, m2 := twoMaps()
	u := UnionWith(func(a, b any) any {
		return a.(keyB) + "+" + b.(keyB)
	}, m1, m2)
	b, _ := Lookup[keyB, keyB](u)
	if b != "left+right" {
		t.Errorf("combined value = %q", b)
	}
}

func TestUnionWithEmpty(t *testing.T) {
	m1, _ := twoMaps()
	equalMaps(t, Union(m1, Empty()), m1)
	equalMaps(t, Union(Empty(), m1), m1)
}

func TestIntersection(t *testing.T) {
	m1, m2 := twoMaps()
	in := Intersection(m1, m2)
	mustCheck(t, in)
	if in.Size() != 1 {
		t.Fatalf("intersection size = %d, want 1", in.Size())
	}
	if Member[keyA](in) || Member[keyC](in) {
		t.Errorf("intersection kept a one-sided entry")
	}
	b, ok := Lookup[keyB, keyB](in)
	if !ok || b != "left" {
		t.Errorf("intersection value = (%q, %v), want m1's value", b, ok)
	}
}

func TestIntersectionWith(t *testing.T) {
	m1, m2 := twoMaps()
	in := IntersectionWith(func(a, b any) any {
		return b.(keyB) + "/" + a.(keyB)
	}, m1, m2)
	b, _ := Lookup[keyB, keyB](in)
	if b != "right/left" {
		t.Errorf("combined value = %q", b)
	}
	if !Intersection(m1, Empty()).IsEmpty() {
		t.Errorf("intersection with empty map is not empty")
	}
}
