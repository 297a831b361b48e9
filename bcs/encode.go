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
)

type encoder struct {
	buf   []byte
	depth int
	reg   *Registry
}

// mismatch reports a value/schema shape disagreement. Encoding is total for
// structurally valid input, so every encode failure is a caller error of
// this kind (or an unresolvable Ref).
func (e *encoder) mismatch(path string, s Schema, v Value) error {
	return fmt.Errorf(
		"%w: %s: schema %s cannot encode value of type %T",
		ErrSchemaMismatch, path, s, v,
	)
}

// encode bounds container nesting before dispatching, mirroring decode: a
// caller-supplied value nested past MaxContainerDepth (or a cyclic one)
// fails with ErrDepthExceeded instead of exhausting the stack.
func (e *encoder) encode(v Value, s Schema, path string) error {
	switch s.Kind {
	case KindVector, KindFixedArray, KindOption, KindStruct, KindEnum, KindRef:
		if e.depth >= MaxContainerDepth {
			return fmt.Errorf(
				"%w: %s: exceeds %d levels",
				ErrDepthExceeded, path, MaxContainerDepth,
			)
		}
		e.depth++
		defer func() { e.depth-- }()
	}
	return e.encodeValue(v, s, path)
}

func (e *encoder) encodeValue(v Value, s Schema, path string) error {
	switch s.Kind {
	case KindBool:
		b, ok := v.(bool)
		if !ok {
			return e.mismatch(path, s, v)
		}
		if b {
			e.buf = append(e.buf, 0x01)
		} else {
			e.buf = append(e.buf, 0x00)
		}
	case KindU8:
		n, ok := v.(uint8)
		if !ok {
			return e.mismatch(path, s, v)
		}
		e.buf = append(e.buf, n)
	case KindU16:
		n, ok := v.(uint16)
		if !ok {
			return e.mismatch(path, s, v)
		}
		e.buf = binary.LittleEndian.AppendUint16(e.buf, n)
	case KindU32:
		n, ok := v.(uint32)
		if !ok {
			return e.mismatch(path, s, v)
		}
		e.buf = binary.LittleEndian.AppendUint32(e.buf, n)
	case KindU64:
		n, ok := v.(uint64)
		if !ok {
			return e.mismatch(path, s, v)
		}
		e.buf = binary.LittleEndian.AppendUint64(e.buf, n)
	case KindU128:
		n, ok := v.(Uint128)
		if !ok {
			return e.mismatch(path, s, v)
		}
		e.buf = binary.LittleEndian.AppendUint64(e.buf, n.Lo)
		e.buf = binary.LittleEndian.AppendUint64(e.buf, n.Hi)
	case KindFixedBytes:
		b, ok := v.([]byte)
		if !ok || len(b) != s.Len {
			return e.mismatch(path, s, v)
		}
		e.buf = append(e.buf, b...)
	case KindString:
		// The string is taken as already-valid UTF-8; only decode validates
		str, ok := v.(string)
		if !ok {
			return e.mismatch(path, s, v)
		}
		e.buf = appendUleb128(e.buf, uint64(len(str)))
		e.buf = append(e.buf, str...)
	case KindVector:
		items, ok := v.([]Value)
		if !ok {
			return e.mismatch(path, s, v)
		}
		e.buf = appendUleb128(e.buf, uint64(len(items)))
		for i, item := range items {
			itemPath := fmt.Sprintf("%s[%d]", path, i)
			if err := e.encode(item, *s.Elem, itemPath); err != nil {
				return err
			}
		}
	case KindFixedArray:
		items, ok := v.([]Value)
		if !ok || len(items) != s.Len {
			return e.mismatch(path, s, v)
		}
		for i, item := range items {
			itemPath := fmt.Sprintf("%s[%d]", path, i)
			if err := e.encode(item, *s.Elem, itemPath); err != nil {
				return err
			}
		}
	case KindOption:
		if v == nil {
			e.buf = append(e.buf, 0x00)
			return nil
		}
		some, ok := v.(Some)
		if !ok {
			return e.mismatch(path, s, v)
		}
		e.buf = append(e.buf, 0x01)
		return e.encode(some.Value, *s.Elem, path)
	case KindStruct:
		sv, ok := v.(StructValue)
		if !ok {
			return e.mismatch(path, s, v)
		}
		for _, field := range s.Fields {
			fieldPath := path + "." + field.Name
			fv, ok := sv[field.Name]
			if !ok {
				return fmt.Errorf(
					"%w: %s: missing struct field",
					ErrSchemaMismatch, fieldPath,
				)
			}
			if err := e.encode(fv, field.Schema, fieldPath); err != nil {
				return err
			}
		}
	case KindEnum:
		ev, ok := v.(EnumValue)
		if !ok {
			return e.mismatch(path, s, v)
		}
		if int(ev.Variant) >= len(s.Variants) {
			return fmt.Errorf(
				"%w: %s: variant index %d out of range for %s",
				ErrSchemaMismatch, path, ev.Variant, s,
			)
		}
		e.buf = appendUleb128(e.buf, uint64(ev.Variant))
		variant := s.Variants[ev.Variant]
		if variant.Payload == nil {
			if ev.Value != nil {
				return fmt.Errorf(
					"%w: %s: unit variant %q carries a payload",
					ErrSchemaMismatch, path, variant.Name,
				)
			}
			return nil
		}
		variantPath := path + "." + variant.Name
		return e.encode(ev.Value, *variant.Payload, variantPath)
	case KindRef:
		resolved, err := e.reg.Resolve(s.Name)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return e.encode(v, resolved, path)
	default:
		return fmt.Errorf(
			"%w: %s: unknown schema kind %d",
			ErrSchemaMismatch, path, s.Kind,
		)
	}
	return nil
}
