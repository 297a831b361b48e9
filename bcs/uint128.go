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
	"math/big"
)

var lo64Mask = new(big.Int).SetUint64(math.MaxUint64)

// Uint128 is an unsigned 128-bit integer held as two 64-bit halves. On the
// wire it occupies 16 bytes, little-endian (Lo first).
type Uint128 struct {
	Lo uint64
	Hi uint64
}

// NewUint128 builds a Uint128 from its high and low 64-bit halves.
func NewUint128(hi, lo uint64) Uint128 {
	return Uint128{Lo: lo, Hi: hi}
}

// NewUint128FromBig converts i, failing if it is negative or wider than
// 128 bits.
func NewUint128FromBig(i *big.Int) (Uint128, error) {
	if i.Sign() < 0 || i.BitLen() > 128 {
		return Uint128{}, fmt.Errorf(
			"%w: %s does not fit in 128 bits",
			ErrOverflow,
			i,
		)
	}
	// Uint64 is only defined for values that fit in 64 bits, so mask the
	// low half out explicitly before converting
	return Uint128{
		Lo: new(big.Int).And(i, lo64Mask).Uint64(),
		Hi: new(big.Int).Rsh(i, 64).Uint64(),
	}, nil
}

// Big returns the value as a big.Int.
func (u Uint128) Big() *big.Int {
	ret := new(big.Int).SetUint64(u.Hi)
	ret.Lsh(ret, 64)
	return ret.Or(ret, new(big.Int).SetUint64(u.Lo))
}

func (u Uint128) String() string {
	return u.Big().String()
}
