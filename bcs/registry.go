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
	"reflect"
	"sync"
)

// Registry maps type names to schemas, enabling recursive and mutually
// referential named types to be encoded and decoded through Ref schemas.
// The intended lifecycle is write-once-then-read: populate it during
// application setup, then share it across goroutines for concurrent
// encode/decode calls. Refs are resolved lazily when traversed, so mutually
// recursive types may be registered in any order as long as all of them are
// present before the first value involving them is encoded or decoded.
type Registry struct {
	mu      sync.RWMutex
	schemas map[string]Schema
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		schemas: map[string]Schema{},
	}
}

// Register adds a named schema. Registering the same name again with an
// identical definition is a no-op; a different definition returns
// ErrSchemaConflict.
func (r *Registry) Register(name string, schema Schema) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.schemas[name]; ok {
		if !reflect.DeepEqual(existing, schema) {
			return fmt.Errorf(
				"%w: %q already registered with a different definition",
				ErrSchemaConflict,
				name,
			)
		}
		return nil
	}
	r.schemas[name] = schema
	return nil
}

// MustRegister is Register for setup-time use: a conflict is a programming
// error, so it panics rather than returning it.
func (r *Registry) MustRegister(name string, schema Schema) {
	if err := r.Register(name, schema); err != nil {
		panic(fmt.Sprintf("bcs: %s", err))
	}
}

// Resolve returns the schema registered under name.
func (r *Registry) Resolve(name string) (Schema, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	schema, ok := r.schemas[name]
	if !ok {
		return Schema{}, fmt.Errorf("%w: %q", ErrSchemaNotFound, name)
	}
	return schema, nil
}

// DefaultRegistry is the process-wide registry used by Encode and Decode.
var DefaultRegistry = NewRegistry()

// Register adds a named schema to the DefaultRegistry.
func Register(name string, schema Schema) error {
	return DefaultRegistry.Register(name, schema)
}

// MustRegister adds a named schema to the DefaultRegistry, panicking on
// conflict.
func MustRegister(name string, schema Schema) {
	DefaultRegistry.MustRegister(name, schema)
}

// Resolve looks up a named schema in the DefaultRegistry.
func Resolve(name string) (Schema, error) {
	return DefaultRegistry.Resolve(name)
}
