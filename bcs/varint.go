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
	"math"
)

// appendUleb128 appends v in ULEB128 form: 7-bit groups, least significant
// first, with the high bit set on every group except the last. The encoder
// is minimal by construction, so zero encodes as the single byte 0x00.
func appendUleb128(buf []byte, v uint64) []byte {
	for v >= 0x80 {
		buf = append(buf, byte(v)|0x80)
		v >>= 7
	}
	return append(buf, byte(v))
}

// readUleb128 consumes one ULEB128 value, enforcing the canonical rule that
// the encoding uses the fewest groups possible. max bounds the accepted
// range: length prefixes and enum variant indices are capped at
// math.MaxUint32.
func (d *decoder) readUleb128(max uint64) (uint64, error) {
	start := d.pos
	var value uint64
	var shift uint
	for {
		if d.pos >= len(d.data) {
			return 0, d.failAt(start, fmt.Errorf(
				"%w: truncated ULEB128", ErrBufferTooShort,
			))
		}
		b := d.data[d.pos]
		d.pos++
		group := uint64(b & 0x7f)
		if shift > 63 || (shift > 0 && group > math.MaxUint64>>shift) {
			return 0, d.failAt(start, fmt.Errorf(
				"%w: ULEB128 exceeds 64 bits", ErrOverflow,
			))
		}
		value |= group << shift
		if b&0x80 == 0 {
			if group == 0 && shift > 0 {
				return 0, d.failAt(start, fmt.Errorf(
					"%w: trailing zero group", ErrNonCanonicalVarint,
				))
			}
			break
		}
		shift += 7
	}
	if value > max {
		return 0, d.failAt(start, fmt.Errorf(
			"%w: ULEB128 value %d exceeds maximum %d",
			ErrOverflow, value, max,
		))
	}
	return value, nil
}
