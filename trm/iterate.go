package trm

import (
	"iter"

	"github.com/treeowl/typerep-map/typeid"
)

// All returns an iterator over all entries in fingerprint order.
func (m Map) All() iter.Seq2[typeid.ID, any] {
	return func(yield func(typeid.ID, any) bool) {
		for _, e := range m.entries {
			if !yield(e.id, e.val) {
				return
			}
		}
	}
}

// Each visits all entries in fingerprint order.
//
// Iteration stops at the first callback error and returns that error to the
// caller.
func (m Map) Each(f func(id typeid.ID, v any) error) error {
	for _, e := range m.entries {
		if err := f(e.id, e.val); err != nil {
			return err
		}
	}
	return nil
}
