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

package bcs_test

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/movershq/sui/bcs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestRegistryRegisterResolve(t *testing.T) {
	reg := bcs.NewRegistry()
	schema := bcs.StructOf(
		bcs.Field{Name: "id", Schema: bcs.U64},
	)
	require.NoError(t, reg.Register("Thing", schema))
	resolved, err := reg.Resolve("Thing")
	require.NoError(t, err)
	assert.Equal(t, schema, resolved)
}

func TestRegistryConflict(t *testing.T) {
	reg := bcs.NewRegistry()
	require.NoError(t, reg.Register("Thing", bcs.U64))
	// Identical re-registration is a no-op
	assert.NoError(t, reg.Register("Thing", bcs.U64))
	// A different definition under the same name is a caller error
	err := reg.Register("Thing", bcs.U32)
	assert.ErrorIs(t, err, bcs.ErrSchemaConflict)
}

func TestRegistryNotFound(t *testing.T) {
	reg := bcs.NewRegistry()
	_, err := reg.Resolve("Missing")
	assert.ErrorIs(t, err, bcs.ErrSchemaNotFound)
}

// A self-referential type goes through Ref and resolves lazily on traversal.
func TestRecursiveSchema(t *testing.T) {
	reg := bcs.NewRegistry()
	node := bcs.StructOf(
		bcs.Field{Name: "value", Schema: bcs.U64},
		bcs.Field{Name: "next", Schema: bcs.Option(bcs.Ref("Node"))},
	)
	require.NoError(t, reg.Register("Node", node))

	list := bcs.StructValue{
		"value": uint64(1),
		"next": bcs.Some{Value: bcs.StructValue{
			"value": uint64(2),
			"next":  nil,
		}},
	}
	encoded, err := bcs.EncodeWith(reg, list, bcs.Ref("Node"))
	require.NoError(t, err)
	assert.Equal(t,
		[]byte{
			0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
			0x01,
			0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
			0x00,
		},
		encoded,
	)
	decoded, err := bcs.DecodeWith(reg, encoded, bcs.Ref("Node"))
	require.NoError(t, err)
	assert.Equal(t, bcs.Value(list), decoded)
}

// Mutually recursive types may be registered in either order; resolution is
// deferred until a value is actually traversed.
func TestMutuallyRecursiveSchemas(t *testing.T) {
	reg := bcs.NewRegistry()
	// B is registered first and references A, which does not exist yet
	require.NoError(t, reg.Register("B", bcs.StructOf(
		bcs.Field{Name: "a", Schema: bcs.Option(bcs.Ref("A"))},
	)))
	require.NoError(t, reg.Register("A", bcs.StructOf(
		bcs.Field{Name: "b", Schema: bcs.Option(bcs.Ref("B"))},
	)))

	value := bcs.StructValue{
		"b": bcs.Some{Value: bcs.StructValue{
			"a": nil,
		}},
	}
	encoded, err := bcs.EncodeWith(reg, value, bcs.Ref("A"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x00}, encoded)
	decoded, err := bcs.DecodeWith(reg, encoded, bcs.Ref("A"))
	require.NoError(t, err)
	assert.Equal(t, bcs.Value(value), decoded)
}

// A recursive schema makes nesting depth an input-controlled quantity: each
// payload-variant byte on the wire drives one more decode descent. The
// decoder bounds that descent with a typed error; overrunning the goroutine
// stack would be fatal rather than recoverable.
func TestDecodeDepthLimit(t *testing.T) {
	reg := bcs.NewRegistry()
	reg.MustRegister("Chain", bcs.EnumOf(
		bcs.PayloadVariant("link", bcs.Ref("Chain")),
		bcs.UnitVariant("end"),
	))

	// Moderate nesting stays inside the bound
	shallow := append(bytes.Repeat([]byte{0x00}, 100), 0x01)
	_, err := bcs.DecodeWith(reg, shallow, bcs.Ref("Chain"))
	require.NoError(t, err)

	// A long run of payload-variant bytes fails instead of recursing
	hostile := append(bytes.Repeat([]byte{0x00}, 1<<20), 0x01)
	_, err = bcs.DecodeWith(reg, hostile, bcs.Ref("Chain"))
	assert.ErrorIs(t, err, bcs.ErrDepthExceeded)
	var decodeErr *bcs.DecodeError
	assert.True(t, errors.As(err, &decodeErr))
}

// The encoder carries the same bound, so a caller-supplied value nested past
// the limit is rejected rather than walked off the stack.
func TestEncodeDepthLimit(t *testing.T) {
	reg := bcs.NewRegistry()
	reg.MustRegister("Chain", bcs.EnumOf(
		bcs.PayloadVariant("link", bcs.Ref("Chain")),
		bcs.UnitVariant("end"),
	))

	value := bcs.Value(bcs.EnumValue{Variant: 1})
	for i := 0; i < 1000; i++ {
		value = bcs.EnumValue{Variant: 0, Value: value}
	}
	_, err := bcs.EncodeWith(reg, value, bcs.Ref("Chain"))
	assert.ErrorIs(t, err, bcs.ErrDepthExceeded)
}

func TestEncodeUnresolvableRef(t *testing.T) {
	reg := bcs.NewRegistry()
	_, err := bcs.EncodeWith(reg, uint64(1), bcs.Ref("Missing"))
	assert.ErrorIs(t, err, bcs.ErrSchemaNotFound)
}

// Once populated, a registry serves concurrent encode/decode traffic from
// many goroutines.
func TestRegistryConcurrentReads(t *testing.T) {
	defer goleak.VerifyNone(t)

	reg := bcs.NewRegistry()
	reg.MustRegister("Node", bcs.StructOf(
		bcs.Field{Name: "value", Schema: bcs.U64},
		bcs.Field{Name: "next", Schema: bcs.Option(bcs.Ref("Node"))},
	))
	value := bcs.StructValue{
		"value": uint64(42),
		"next":  nil,
	}
	encoded, err := bcs.EncodeWith(reg, value, bcs.Ref("Node"))
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if _, err := reg.Resolve("Node"); err != nil {
					errs <- err
					return
				}
				decoded, err := bcs.DecodeWith(reg, encoded, bcs.Ref("Node"))
				if err != nil {
					errs <- err
					return
				}
				reencoded, err := bcs.EncodeWith(reg, decoded, bcs.Ref("Node"))
				if err != nil {
					errs <- err
					return
				}
				if len(reencoded) != len(encoded) {
					errs <- errors.New("re-encoded length mismatch")
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent registry use failed: %s", err)
	}
}
