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

import "fmt"

// MaxContainerDepth bounds the nesting of container values (vectors, arrays,
// options, structs, enum payloads, and Ref indirections) on both codec
// paths. Recursive schemas make nesting depth an input-controlled quantity,
// and unbounded recursion over a hostile buffer would exhaust the goroutine
// stack, which is not a recoverable failure. Exceeding the bound fails with
// ErrDepthExceeded instead.
const MaxContainerDepth = 500

// Encode serializes v against schema into canonical bytes, resolving Refs
// through the DefaultRegistry. It never fails for a value that structurally
// matches its schema; a shape disagreement is reported as ErrSchemaMismatch.
func Encode(v Value, schema Schema) ([]byte, error) {
	return EncodeWith(DefaultRegistry, v, schema)
}

// EncodeWith is Encode with an explicit registry for Ref resolution.
func EncodeWith(reg *Registry, v Value, schema Schema) ([]byte, error) {
	e := encoder{reg: reg}
	if err := e.encode(v, schema, "$"); err != nil {
		return nil, err
	}
	return e.buf, nil
}

// Decode strictly deserializes data against schema, resolving Refs through
// the DefaultRegistry. Malformed, truncated, or non-canonical input fails
// with a DecodeError wrapping the specific kind, and the buffer must be
// consumed exactly: any leftover byte after a structurally complete value
// is ErrTrailingBytes.
func Decode(data []byte, schema Schema) (Value, error) {
	return DecodeWith(DefaultRegistry, data, schema)
}

// DecodeWith is Decode with an explicit registry for Ref resolution.
func DecodeWith(reg *Registry, data []byte, schema Schema) (Value, error) {
	d := decoder{data: data, reg: reg}
	v, err := d.decode(schema)
	if err != nil {
		return nil, err
	}
	if d.pos != len(d.data) {
		return nil, &DecodeError{
			Offset: d.pos,
			Err: fmt.Errorf(
				"%w: %d bytes unconsumed",
				ErrTrailingBytes, len(d.data)-d.pos,
			),
		}
	}
	return v, nil
}
