// Copyright 2025 Poiesic Systems
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


// Package catalog normalizes raw game-content records into immutable,
// queryable indices.
//
// The Indexer classifies records in batches on a worker pool: name
// validation, category/slot/element/tier lookup against constant tables, tag
// derivation, and a token search index. Its output is an Index snapshot that
// is never mutated after construction, so concurrent queries read it without
// locking.
//
// The Cache memoizes Index snapshots keyed by catalog version and item
// count. A version change is always a rebuild; stale snapshots are replaced
// wholesale and evicted LRU.
package catalog
