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
	"encoding/binary"
	"fmt"
	"math"
	"unicode/utf8"
)

type decoder struct {
	data  []byte
	pos   int
	depth int
	reg   *Registry
}

func (d *decoder) failAt(offset int, err error) error {
	return &DecodeError{Offset: offset, Err: err}
}

func (d *decoder) remaining() int {
	return len(d.data) - d.pos
}

// readBytes consumes exactly n bytes. The returned slice aliases the input
// buffer; callers that hand bytes to the caller must copy.
func (d *decoder) readBytes(n int) ([]byte, error) {
	if d.remaining() < n {
		return nil, d.failAt(d.pos, fmt.Errorf(
			"%w: need %d bytes, have %d",
			ErrBufferTooShort, n, d.remaining(),
		))
	}
	b := d.data[d.pos : d.pos+n]
	d.pos += n
	return b, nil
}

// decode bounds container nesting before dispatching, so a recursive schema
// cannot be driven into stack exhaustion by a hostile buffer.
func (d *decoder) decode(s Schema) (Value, error) {
	switch s.Kind {
	case KindVector, KindFixedArray, KindOption, KindStruct, KindEnum, KindRef:
		if d.depth >= MaxContainerDepth {
			return nil, d.failAt(d.pos, fmt.Errorf(
				"%w: exceeds %d levels", ErrDepthExceeded, MaxContainerDepth,
			))
		}
		d.depth++
		defer func() { d.depth-- }()
	}
	return d.decodeValue(s)
}

func (d *decoder) decodeValue(s Schema) (Value, error) {
	switch s.Kind {
	case KindBool:
		b, err := d.readBytes(1)
		if err != nil {
			return nil, err
		}
		switch b[0] {
		case 0x00:
			return false, nil
		case 0x01:
			return true, nil
		default:
			return nil, d.failAt(d.pos-1, fmt.Errorf(
				"%w: 0x%02x", ErrInvalidBoolean, b[0],
			))
		}
	case KindU8:
		b, err := d.readBytes(1)
		if err != nil {
			return nil, err
		}
		return b[0], nil
	case KindU16:
		b, err := d.readBytes(2)
		if err != nil {
			return nil, err
		}
		return binary.LittleEndian.Uint16(b), nil
	case KindU32:
		b, err := d.readBytes(4)
		if err != nil {
			return nil, err
		}
		return binary.LittleEndian.Uint32(b), nil
	case KindU64:
		b, err := d.readBytes(8)
		if err != nil {
			return nil, err
		}
		return binary.LittleEndian.Uint64(b), nil
	case KindU128:
		b, err := d.readBytes(16)
		if err != nil {
			return nil, err
		}
		return Uint128{
			Lo: binary.LittleEndian.Uint64(b[:8]),
			Hi: binary.LittleEndian.Uint64(b[8:]),
		}, nil
	case KindFixedBytes:
		b, err := d.readBytes(s.Len)
		if err != nil {
			return nil, err
		}
		// Copy so the value outlives the caller's input buffer
		return append([]byte(nil), b...), nil
	case KindString:
		start := d.pos
		length, err := d.readUleb128(math.MaxUint32)
		if err != nil {
			return nil, err
		}
		b, err := d.readBytes(int(length))
		if err != nil {
			return nil, err
		}
		if !utf8.Valid(b) {
			return nil, d.failAt(start, ErrInvalidUTF8)
		}
		return string(b), nil
	case KindVector:
		start := d.pos
		count, err := d.readUleb128(math.MaxUint32)
		if err != nil {
			return nil, err
		}
		// Bound the allocation by what the buffer could possibly hold
		// before trusting the declared count
		capacity := count
		if minSize := minEncodedSize(*s.Elem); minSize > 0 {
			if count > uint64(d.remaining())/uint64(minSize) {
				return nil, d.failAt(start, fmt.Errorf(
					"%w: declared %d elements of at least %d bytes, %d bytes remain",
					ErrBufferTooShort, count, minSize, d.remaining(),
				))
			}
		} else {
			// Zero-size element type: the count cannot be checked against
			// the remaining bytes, so grow incrementally instead
			capacity = 0
		}
		items := make([]Value, 0, capacity)
		for i := uint64(0); i < count; i++ {
			item, err := d.decode(*s.Elem)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return items, nil
	case KindFixedArray:
		items := make([]Value, 0, s.Len)
		for i := 0; i < s.Len; i++ {
			item, err := d.decode(*s.Elem)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return items, nil
	case KindOption:
		b, err := d.readBytes(1)
		if err != nil {
			return nil, err
		}
		switch b[0] {
		case 0x00:
			return nil, nil
		case 0x01:
			inner, err := d.decode(*s.Elem)
			if err != nil {
				return nil, err
			}
			return Some{Value: inner}, nil
		default:
			return nil, d.failAt(d.pos-1, fmt.Errorf(
				"%w: option presence byte 0x%02x",
				ErrInvalidBoolean, b[0],
			))
		}
	case KindStruct:
		sv := make(StructValue, len(s.Fields))
		for _, field := range s.Fields {
			fv, err := d.decode(field.Schema)
			if err != nil {
				return nil, err
			}
			sv[field.Name] = fv
		}
		return sv, nil
	case KindEnum:
		start := d.pos
		index, err := d.readUleb128(math.MaxUint32)
		if err != nil {
			return nil, err
		}
		if index >= uint64(len(s.Variants)) {
			return nil, d.failAt(start, fmt.Errorf(
				"%w: index %d, enum has %d variants",
				ErrUnknownVariant, index, len(s.Variants),
			))
		}
		variant := s.Variants[index]
		if variant.Payload == nil {
			return EnumValue{Variant: uint32(index)}, nil
		}
		payload, err := d.decode(*variant.Payload)
		if err != nil {
			return nil, err
		}
		return EnumValue{Variant: uint32(index), Value: payload}, nil
	case KindRef:
		resolved, err := d.reg.Resolve(s.Name)
		if err != nil {
			return nil, d.failAt(d.pos, err)
		}
		return d.decode(resolved)
	default:
		return nil, d.failAt(d.pos, fmt.Errorf(
			"%w: unknown schema kind %d", ErrSchemaMismatch, s.Kind,
		))
	}
}
