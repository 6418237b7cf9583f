/*
Package tmap offers a map whose keys are Go types rather than ordinary values.

TMap

A TMap stores at most one value per key type: an int entry, a string entry,
a client-defined struct entry, and so on, all in one container, with the key
type selected explicitly at every call site via a type argument. Retrieval is
type-safe: a value stored under key type K is only ever handed back as a K.

	m := tmap.Empty()
	m = tmap.Insert(m, 42)
	m = tmap.Insert(m, "deadline exceeded")
	n, ok := tmap.Lookup[int](m)     // 42, true
	s, ok := tmap.Lookup[string](m)  // "deadline exceeded", true

TMaps are immutable values: every update returns a new map and leaves all
previously held maps intact, so maps may be shared between goroutines without
synchronization.

This package fixes the stored value type to the key type itself. When entries
should hold a wrapping of the key type instead (an optional K, a slice of K,
a handler for K), use the engine package trm directly, which keeps the stored
value type a per-call-site parameter.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) the typerep-map authors

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package tmap

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
