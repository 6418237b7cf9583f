package typeid

import (
	"hash/maphash"
	"reflect"
	"sync"
)

// Fingerprints are interned: each distinct reflect.Type is canonicalized and
// hashed exactly once per process, then served from the registry. The hash
// seed is drawn once at startup, so hashes are stable for the lifetime of the
// process but differ between runs.
var (
	registry sync.Map // reflect.Type -> ID
	seed     = maphash.MakeSeed()
)

func intern(t reflect.Type) ID {
	if cached, ok := registry.Load(t); ok {
		return cached.(ID)
	}
	name := canonicalName(t)
	id := ID{
		hash: maphash.String(seed, name),
		name: name,
		typ:  t,
	}
	cached, _ := registry.LoadOrStore(t, id)
	return cached.(ID)
}
