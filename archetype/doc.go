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


// Package archetype holds the static registry of build patterns.
//
// An archetype's keyword list is only a cheap pre-filter deciding whether the
// pattern is considered for a query; the synergy tags drive the actual item
// scan in the synergy package. The registry performs no ranking and is never
// mutated at runtime.
package archetype
