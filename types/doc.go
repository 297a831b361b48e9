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

// Package types declares the canonical schemas for the core transaction
// data model (addresses, object references, Move type tags, transaction
// kinds) and registers them with the codec's default registry at package
// init. It also provides value builders for composing transactions and
// digest derivation over the canonical bytes.
//
// Importing this package is enough to make names like "TransactionData"
// resolvable through bcs.Ref.
package types
