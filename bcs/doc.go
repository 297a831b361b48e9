// Copyright 2026 Movers HQ
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package bcs implements Binary Canonical Serialization: a deterministic,
// schema-driven codec in which every value has exactly one valid byte
// encoding under a given schema, and every byte buffer decodes to at most
// one value or fails deterministically.
//
// # Schemas
//
// A Schema is plain declared data describing a value's shape. Primitives
// (Bool, U8..U128, Str, FixedBytes) compose into Vector, FixedArray,
// Option, StructOf, and EnumOf. Ref names a schema resolved through a
// Registry when traversed, which is how recursive and mutually-recursive
// types are expressed:
//
//	node := bcs.StructOf(
//	    bcs.Field{Name: "value", Schema: bcs.U64},
//	    bcs.Field{Name: "next", Schema: bcs.Option(bcs.Ref("Node"))},
//	)
//	bcs.MustRegister("Node", node)
//
// # Values
//
// Decode produces and Encode consumes a Value: a tagged runtime
// representation over a closed set of Go types (see Value). A Value is only
// meaningful against the schema it is paired with.
//
// # Strictness
//
// The decoder is an adversarial-input boundary. It rejects non-minimal
// ULEB128 varints, out-of-range enum indices, invalid boolean and option
// presence bytes, invalid UTF-8, truncated input, and unconsumed trailing
// bytes, and it validates length prefixes against the remaining buffer
// before allocating. Container nesting is bounded at MaxContainerDepth on
// both codec paths, so a recursive schema cannot be driven into stack
// exhaustion by wire input or by a cyclic value. Re-encoding a decoded
// value always reproduces the original bytes.
//
// # Registry lifecycle
//
// Register schemas during a single-threaded setup phase (package init is a
// natural place); afterwards the registry may be read concurrently from any
// number of goroutines. Registering a name twice with a different
// definition is ErrSchemaConflict.
package bcs
