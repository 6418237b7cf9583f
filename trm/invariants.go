package trm

import "fmt"

// Check validates structural map invariants.
//
// This checker is intentionally strict and meant for tests: entries must be
// strictly ordered by fingerprint (which implies pairwise-distinct key types)
// and every fingerprint must be a proper type identity. A violation indicates
// a bug in this package, never an input error.
func (m Map) Check() error {
	for i, e := range m.entries {
		if e.id.IsNone() {
			return fmt.Errorf("%w: entry %d has no key type", ErrInvariant, i)
		}
		if i == 0 {
			continue
		}
		prev := m.entries[i-1]
		if !prev.id.Less(e.id) {
			return fmt.Errorf("%w: entries %d and %d out of order (%s !< %s)",
				ErrInvariant, i-1, i, prev.id, e.id)
		}
	}
	return nil
}
