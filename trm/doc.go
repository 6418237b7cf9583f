/*
Package trm implements a persistent map keyed by Go types.

The map associates at most one value per key type. Keys are type fingerprints
(see package typeid), values are opaque payloads whose concrete type is bound
at each call site: every typed operation takes the key type K as an explicit
type argument, together with the type V of the value stored under K. Clients
fixing one interpretation (for the common case V = K see the root package
tmap) get checked, type-safe retrieval without runtime tag juggling beyond
fingerprint comparison.

Storage is a single entry slice sorted by fingerprint. Lookup and membership
are binary searches (O(log n)); structural updates rebuild the backing slice
(O(n)) and never touch the input map, so any previously held map value stays
valid and may be read concurrently without synchronization. Merges of two
maps run in O(n+m) over the sorted slices. The trade-off is deliberate: reads
are cheap, writes are linear, which fits build-once/read-many workloads such
as capability registries and extensible record sets.

# BSD License

Please refer to the License file in the repository root.
*/
package trm

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
