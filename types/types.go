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
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/movershq/sui/bcs"
)

const (
	AddressLength = 32
	DigestLength  = 32
)

// Address is a 32-byte account address. On the wire it is a fixed-length
// byte run with no prefix.
type Address [AddressLength]byte

// NewAddress returns an Address parsed from its hex form, with or without
// the leading 0x. Short input is left-padded with zero bytes, matching how
// reserved addresses like 0x2 are written.
func NewAddress(addr string) (Address, error) {
	addr = strings.TrimPrefix(addr, "0x")
	if len(addr)%2 != 0 {
		addr = "0" + addr
	}
	decoded, err := hex.DecodeString(addr)
	if err != nil {
		return Address{}, fmt.Errorf("decode address hex: %w", err)
	}
	if len(decoded) > AddressLength {
		return Address{}, fmt.Errorf(
			"address is %d bytes, expected at most %d",
			len(decoded),
			AddressLength,
		)
	}
	a := Address{}
	copy(a[AddressLength-len(decoded):], decoded)
	return a, nil
}

func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

func (a Address) Bytes() []byte {
	return a[:]
}

// Value returns the address as a codec value for its FixedBytes schema.
func (a Address) Value() bcs.Value {
	return a.Bytes()
}

// ObjectID identifies an object; it shares the address format.
type ObjectID = Address

// Digest is a 32-byte object or transaction digest, rendered base58 like
// the RPC surface does.
type Digest [DigestLength]byte

func NewDigest(data []byte) Digest {
	d := Digest{}
	copy(d[:], data)
	return d
}

// NewDigestFromBase58 parses the base58 rendering of a digest.
func NewDigestFromBase58(encoded string) (Digest, error) {
	decoded := base58.Decode(encoded)
	if len(decoded) != DigestLength {
		return Digest{}, fmt.Errorf(
			"digest is %d bytes, expected %d",
			len(decoded),
			DigestLength,
		)
	}
	return NewDigest(decoded), nil
}

func (d Digest) String() string {
	return base58.Encode(d[:])
}

func (d Digest) Bytes() []byte {
	return d[:]
}

// Value returns the digest as a codec value for its FixedBytes schema.
func (d Digest) Value() bcs.Value {
	return d.Bytes()
}

// ObjectRef points at a specific version of an object.
type ObjectRef struct {
	ObjectID ObjectID
	Version  uint64
	Digest   Digest
}

// Value returns the reference as a codec value for the ObjectRef schema.
func (r ObjectRef) Value() bcs.Value {
	return bcs.StructValue{
		"objectId": r.ObjectID.Value(),
		"version":  r.Version,
		"digest":   r.Digest.Value(),
	}
}

// objectRefFromValue rebuilds an ObjectRef from a decoded codec value.
func objectRefFromValue(v bcs.Value) (ObjectRef, error) {
	sv, ok := v.(bcs.StructValue)
	if !ok {
		return ObjectRef{}, fmt.Errorf("object ref value is %T, expected struct", v)
	}
	ref := ObjectRef{}
	id, ok := sv["objectId"].([]byte)
	if !ok || len(id) != AddressLength {
		return ObjectRef{}, fmt.Errorf("object ref has invalid objectId field")
	}
	copy(ref.ObjectID[:], id)
	version, ok := sv["version"].(uint64)
	if !ok {
		return ObjectRef{}, fmt.Errorf("object ref has invalid version field")
	}
	ref.Version = version
	digest, ok := sv["digest"].([]byte)
	if !ok || len(digest) != DigestLength {
		return ObjectRef{}, fmt.Errorf("object ref has invalid digest field")
	}
	copy(ref.Digest[:], digest)
	return ref, nil
}

// addressFromValue rebuilds an Address from a decoded codec value.
func addressFromValue(v bcs.Value) (Address, error) {
	b, ok := v.([]byte)
	if !ok || len(b) != AddressLength {
		return Address{}, fmt.Errorf("address value is %T, expected %d bytes", v, AddressLength)
	}
	a := Address{}
	copy(a[:], b)
	return a, nil
}
