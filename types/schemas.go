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

package types

import (
	"github.com/movershq/sui/bcs"
)

// Registered schema names. These are the stable identifiers other packages
// use with bcs.Ref.
const (
	TypeNameAddress         = "Address"
	TypeNameObjectID        = "ObjectID"
	TypeNameDigest          = "Digest"
	TypeNameSequenceNumber  = "SequenceNumber"
	TypeNameObjectRef       = "ObjectRef"
	TypeNameTypeTag         = "TypeTag"
	TypeNameStructTag       = "StructTag"
	TypeNameTransactionKind = "TransactionKind"
	TypeNameTransactionData = "TransactionData"
)

// TypeTag variant indices. Variant order is the wire format; do not reorder.
const (
	TypeTagBool uint32 = iota
	TypeTagU8
	TypeTagU64
	TypeTagU128
	TypeTagAddress
	TypeTagSigner
	TypeTagVector
	TypeTagStruct
)

// TransactionKind variant indices.
const (
	KindTransferObject uint32 = iota
	KindPublish
	KindMoveCall
)

func init() {
	bcs.MustRegister(TypeNameAddress, bcs.FixedBytes(AddressLength))
	bcs.MustRegister(TypeNameObjectID, bcs.FixedBytes(AddressLength))
	bcs.MustRegister(TypeNameDigest, bcs.FixedBytes(DigestLength))
	bcs.MustRegister(TypeNameSequenceNumber, bcs.U64)
	bcs.MustRegister(TypeNameObjectRef, bcs.StructOf(
		bcs.Field{Name: "objectId", Schema: bcs.Ref(TypeNameObjectID)},
		bcs.Field{Name: "version", Schema: bcs.Ref(TypeNameSequenceNumber)},
		bcs.Field{Name: "digest", Schema: bcs.Ref(TypeNameDigest)},
	))
	// TypeTag and StructTag reference each other; lazy Ref resolution makes
	// the registration order irrelevant
	bcs.MustRegister(TypeNameTypeTag, bcs.EnumOf(
		bcs.UnitVariant("bool"),
		bcs.UnitVariant("u8"),
		bcs.UnitVariant("u64"),
		bcs.UnitVariant("u128"),
		bcs.UnitVariant("address"),
		bcs.UnitVariant("signer"),
		bcs.PayloadVariant("vector", bcs.Ref(TypeNameTypeTag)),
		bcs.PayloadVariant("struct", bcs.Ref(TypeNameStructTag)),
	))
	bcs.MustRegister(TypeNameStructTag, bcs.StructOf(
		bcs.Field{Name: "address", Schema: bcs.Ref(TypeNameAddress)},
		bcs.Field{Name: "module", Schema: bcs.Str},
		bcs.Field{Name: "name", Schema: bcs.Str},
		bcs.Field{Name: "typeParams", Schema: bcs.Vector(bcs.Ref(TypeNameTypeTag))},
	))
	bcs.MustRegister(TypeNameTransactionKind, bcs.EnumOf(
		bcs.PayloadVariant("TransferObject", bcs.StructOf(
			bcs.Field{Name: "recipient", Schema: bcs.Ref(TypeNameAddress)},
			bcs.Field{Name: "objectRef", Schema: bcs.Ref(TypeNameObjectRef)},
		)),
		bcs.PayloadVariant("Publish", bcs.StructOf(
			bcs.Field{Name: "modules", Schema: bcs.Vector(bcs.Vector(bcs.U8))},
		)),
		bcs.PayloadVariant("MoveCall", bcs.StructOf(
			bcs.Field{Name: "package", Schema: bcs.Ref(TypeNameObjectRef)},
			bcs.Field{Name: "module", Schema: bcs.Str},
			bcs.Field{Name: "function", Schema: bcs.Str},
			bcs.Field{Name: "typeArguments", Schema: bcs.Vector(bcs.Ref(TypeNameTypeTag))},
			bcs.Field{Name: "arguments", Schema: bcs.Vector(bcs.Vector(bcs.U8))},
		)),
	))
	bcs.MustRegister(TypeNameTransactionData, bcs.StructOf(
		bcs.Field{Name: "kind", Schema: bcs.Ref(TypeNameTransactionKind)},
		bcs.Field{Name: "sender", Schema: bcs.Ref(TypeNameAddress)},
		bcs.Field{Name: "gasPayment", Schema: bcs.Ref(TypeNameObjectRef)},
		bcs.Field{Name: "gasPrice", Schema: bcs.U64},
		bcs.Field{Name: "gasBudget", Schema: bcs.U64},
	))
}

// UnitTypeTag builds a payload-free TypeTag value (bool, u8, u64, u128,
// address, signer).
func UnitTypeTag(variant uint32) bcs.Value {
	return bcs.EnumValue{Variant: variant}
}

// VectorTypeTag builds the TypeTag for a vector of elem.
func VectorTypeTag(elem bcs.Value) bcs.Value {
	return bcs.EnumValue{Variant: TypeTagVector, Value: elem}
}

// StructTypeTag builds the TypeTag for a named struct type.
func StructTypeTag(address Address, module, name string, typeParams ...bcs.Value) bcs.Value {
	params := make([]bcs.Value, 0, len(typeParams))
	params = append(params, typeParams...)
	return bcs.EnumValue{
		Variant: TypeTagStruct,
		Value: bcs.StructValue{
			"address":    address.Value(),
			"module":     module,
			"name":       name,
			"typeParams": params,
		},
	}
}
