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


package recommend

import "errors"

var (
	// ErrCacheRequired is returned when a recommender is created without an index cache.
	ErrCacheRequired = errors.New("index cache required")

	// ErrMatcherRequired is returned when a nil matcher is supplied.
	ErrMatcherRequired = errors.New("matcher required")

	// ErrNoArchetypes is returned when an empty archetype registry is supplied.
	ErrNoArchetypes = errors.New("at least one archetype required")
)
