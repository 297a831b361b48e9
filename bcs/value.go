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

package bcs

// Value is the runtime representation produced by Decode and consumed by
// Encode. It is one of a closed set of Go types, selected by the schema it
// is paired with:
//
//	bool                       Bool
//	uint8/uint16/uint32/uint64 U8/U16/U32/U64
//	Uint128                    U128
//	[]byte                     FixedBytes
//	string                     Str
//	[]Value                    Vector, FixedArray
//	StructValue                Struct
//	Some / untyped nil         Option present / absent
//	EnumValue                  Enum
//
// A Value is only meaningful relative to the schema it was produced or will
// be consumed against; the codec never infers a schema from a value alone.
type Value = any

// StructValue holds struct fields by name. Field order on the wire comes
// from the schema, never from the map.
type StructValue map[string]Value

// Some marks an option value as present. An absent option is a nil Value,
// so a present-but-empty nested option is Some{Value: nil}.
type Some struct {
	Value Value
}

// EnumValue pairs a variant index with its payload. Value is nil for unit
// variants.
type EnumValue struct {
	Variant uint32
	Value   Value
}
