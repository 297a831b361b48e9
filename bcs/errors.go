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
	"errors"
	"fmt"
)

// Sentinel error kinds returned by the codec. Failures on the decode path
// are wrapped in a DecodeError carrying the byte offset; match kinds with
// errors.Is.
var (
	ErrOverflow           = errors.New("integer overflow")
	ErrNonCanonicalVarint = errors.New("non-canonical ULEB128 encoding")
	ErrInvalidBoolean     = errors.New("invalid boolean byte")
	ErrInvalidUTF8        = errors.New("invalid UTF-8 in string")
	ErrUnknownVariant     = errors.New("unknown enum variant")
	ErrBufferTooShort     = errors.New("buffer too short")
	ErrDepthExceeded      = errors.New("container nesting too deep")
	ErrTrailingBytes      = errors.New("trailing bytes after value")
	ErrSchemaNotFound     = errors.New("schema not found")
	ErrSchemaConflict     = errors.New("schema conflict")
	ErrSchemaMismatch     = errors.New("value does not match schema")
)

// DecodeError records the input offset at which a decode failure occurred.
type DecodeError struct {
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("offset %d: %s", e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
