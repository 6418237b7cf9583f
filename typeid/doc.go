/*
Package typeid derives orderable fingerprints for Go types.

A fingerprint (type ID) is the identity of a Go type, reduced to plain data:
a canonical fully qualified name, a 64-bit hash of that name, and the
reflected type itself. IDs are immutable, copyable, usable as map keys, and
admit a strict total order, which makes them suitable as sort keys for
type-indexed containers.

Fingerprints are interned in a process-wide registry, so deriving the ID of a
type repeatedly is cheap after the first derivation.

# BSD License

Please refer to the License file in the repository root.
*/
package typeid
