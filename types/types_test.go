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

package types_test

import (
	"bytes"
	"testing"

	"github.com/movershq/sui/bcs"
	"github.com/movershq/sui/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	// Short form is left-padded, like the reserved framework addresses
	addr, err := types.NewAddress("0x2")
	require.NoError(t, err)
	assert.Equal(t,
		"0x0000000000000000000000000000000000000000000000000000000000000002",
		addr.String(),
	)

	full, err := types.NewAddress(addr.String())
	require.NoError(t, err)
	assert.Equal(t, addr, full)

	_, err = types.NewAddress("0xzz")
	assert.Error(t, err)

	tooLong := "0x" + string(bytes.Repeat([]byte{'a'}, 2*types.AddressLength+2))
	_, err = types.NewAddress(tooLong)
	assert.Error(t, err)
}

func TestDigestBase58(t *testing.T) {
	digest := types.NewDigest(bytes.Repeat([]byte{0xab}, types.DigestLength))
	parsed, err := types.NewDigestFromBase58(digest.String())
	require.NoError(t, err)
	assert.Equal(t, digest, parsed)

	_, err = types.NewDigestFromBase58("notadigest")
	assert.Error(t, err)
}

func TestBlake2b256Hash(t *testing.T) {
	hash := types.Blake2b256Hash([]byte("sui"))
	assert.Equal(t,
		"8c853392f9c0ee84e22fa46b51366112f7860ddc56d2724f4b55f3b0185142d0",
		hash.String(),
	)
}

func TestObjectRefSchemaRoundTrip(t *testing.T) {
	ref := types.ObjectRef{
		ObjectID: mustAddress(t, "0xcc"),
		Version:  7,
		Digest:   types.NewDigest(bytes.Repeat([]byte{0x11}, types.DigestLength)),
	}
	encoded, err := bcs.Encode(ref.Value(), bcs.Ref(types.TypeNameObjectRef))
	require.NoError(t, err)
	// 32-byte id + 8-byte version + 32-byte digest
	assert.Len(t, encoded, 72)
	decoded, err := bcs.Decode(encoded, bcs.Ref(types.TypeNameObjectRef))
	require.NoError(t, err)
	assert.Equal(t, ref.Value(), decoded)
}

func TestTypeTagRoundTrip(t *testing.T) {
	tag := types.StructTypeTag(
		mustAddress(t, "0x2"),
		"coin",
		"Coin",
		types.VectorTypeTag(types.UnitTypeTag(types.TypeTagU8)),
	)
	encoded, err := bcs.Encode(tag, bcs.Ref(types.TypeNameTypeTag))
	require.NoError(t, err)
	decoded, err := bcs.Decode(encoded, bcs.Ref(types.TypeNameTypeTag))
	require.NoError(t, err)
	assert.Equal(t, tag, decoded)
}

func mustAddress(t *testing.T, addr string) types.Address {
	t.Helper()
	a, err := types.NewAddress(addr)
	require.NoError(t, err)
	return a
}
