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

import (
	"fmt"
	"strings"
)

// SchemaKind discriminates the closed set of schema shapes.
type SchemaKind uint8

const (
	KindBool SchemaKind = iota
	KindU8
	KindU16
	KindU32
	KindU64
	KindU128
	KindFixedBytes
	KindString
	KindVector
	KindFixedArray
	KindOption
	KindStruct
	KindEnum
	KindRef
)

// Field is a named struct member. Field order is part of the wire format;
// names never appear on the wire.
type Field struct {
	Name   string
	Schema Schema
}

// Variant is a named enum alternative. Variant order defines the on-wire
// index, so adding, removing, or reordering variants is a breaking change.
// A nil Payload marks a unit variant.
type Variant struct {
	Name    string
	Payload *Schema
}

// Schema describes the structural shape of a value and drives both encode
// and decode. Schemas are plain declared data: build them with the
// constructors below, share them freely, and never mutate them after
// registration.
type Schema struct {
	Kind     SchemaKind
	Len      int       // FixedBytes, FixedArray
	Elem     *Schema   // Vector, FixedArray, Option
	Fields   []Field   // Struct
	Variants []Variant // Enum
	Name     string    // Ref
}

// Primitive schemas.
var (
	Bool = Schema{Kind: KindBool}
	U8   = Schema{Kind: KindU8}
	U16  = Schema{Kind: KindU16}
	U32  = Schema{Kind: KindU32}
	U64  = Schema{Kind: KindU64}
	U128 = Schema{Kind: KindU128}
	Str  = Schema{Kind: KindString}
)

// FixedBytes describes exactly n raw bytes with no length prefix.
func FixedBytes(n int) Schema {
	return Schema{Kind: KindFixedBytes, Len: n}
}

// Vector describes a variable-length homogeneous sequence with a ULEB128
// element-count prefix.
func Vector(elem Schema) Schema {
	return Schema{Kind: KindVector, Elem: &elem}
}

// FixedArray describes exactly n elements with no count prefix.
func FixedArray(elem Schema, n int) Schema {
	return Schema{Kind: KindFixedArray, Elem: &elem, Len: n}
}

// Option describes a present/absent wrapper around inner.
func Option(inner Schema) Schema {
	return Schema{Kind: KindOption, Elem: &inner}
}

// StructOf describes a struct whose fields are encoded by concatenation in
// the given order.
func StructOf(fields ...Field) Schema {
	return Schema{Kind: KindStruct, Fields: fields}
}

// EnumOf describes a tagged union over the given variants.
func EnumOf(variants ...Variant) Schema {
	return Schema{Kind: KindEnum, Variants: variants}
}

// Ref names a schema to be resolved through a Registry when the reference
// is traversed during encode or decode. This is the indirection that makes
// recursive and mutually-recursive type graphs expressible.
func Ref(name string) Schema {
	return Schema{Kind: KindRef, Name: name}
}

// UnitVariant declares an enum variant with no payload.
func UnitVariant(name string) Variant {
	return Variant{Name: name}
}

// PayloadVariant declares an enum variant carrying a payload.
func PayloadVariant(name string, payload Schema) Variant {
	return Variant{Name: name, Payload: &payload}
}

// String renders the schema in a compact human-readable form for error
// messages and debugging. It does not chase Refs.
func (s Schema) String() string {
	switch s.Kind {
	case KindBool:
		return "bool"
	case KindU8:
		return "u8"
	case KindU16:
		return "u16"
	case KindU32:
		return "u32"
	case KindU64:
		return "u64"
	case KindU128:
		return "u128"
	case KindFixedBytes:
		return fmt.Sprintf("bytes[%d]", s.Len)
	case KindString:
		return "string"
	case KindVector:
		return fmt.Sprintf("vector<%s>", s.Elem)
	case KindFixedArray:
		return fmt.Sprintf("array<%s, %d>", s.Elem, s.Len)
	case KindOption:
		return fmt.Sprintf("option<%s>", s.Elem)
	case KindStruct:
		names := make([]string, len(s.Fields))
		for i, f := range s.Fields {
			names[i] = f.Name
		}
		return fmt.Sprintf("struct{%s}", strings.Join(names, ", "))
	case KindEnum:
		names := make([]string, len(s.Variants))
		for i, v := range s.Variants {
			names[i] = v.Name
		}
		return fmt.Sprintf("enum{%s}", strings.Join(names, " | "))
	case KindRef:
		return fmt.Sprintf("ref(%s)", s.Name)
	default:
		return fmt.Sprintf("unknown(%d)", s.Kind)
	}
}

// minEncodedSize returns the smallest number of bytes any value of the
// schema can occupy on the wire. It is used to reject hostile length
// prefixes before allocating. A Ref counts as a single byte so the
// computation stays total over recursive schema graphs.
func minEncodedSize(s Schema) int {
	switch s.Kind {
	case KindBool, KindU8:
		return 1
	case KindU16:
		return 2
	case KindU32:
		return 4
	case KindU64:
		return 8
	case KindU128:
		return 16
	case KindFixedBytes:
		return s.Len
	case KindString, KindVector:
		// Empty value is a single zero-length prefix byte
		return 1
	case KindFixedArray:
		return s.Len * minEncodedSize(*s.Elem)
	case KindOption:
		return 1
	case KindStruct:
		total := 0
		for _, f := range s.Fields {
			total += minEncodedSize(f.Schema)
		}
		return total
	case KindEnum:
		// Index prefix plus the cheapest payload
		smallest := 0
		for i, v := range s.Variants {
			size := 0
			if v.Payload != nil {
				size = minEncodedSize(*v.Payload)
			}
			if i == 0 || size < smallest {
				smallest = size
			}
		}
		return 1 + smallest
	case KindRef:
		return 1
	default:
		return 1
	}
}
