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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidRawItem indicates a RawItemRecord failed validation.
	ErrInvalidRawItem = errors.New("invalid raw item record")

	// ErrInvalidBuild indicates a CandidateBuild failed validation.
	ErrInvalidBuild = errors.New("invalid candidate build")

	// ErrInvalidSavedBuild indicates a SavedBuild failed validation.
	ErrInvalidSavedBuild = errors.New("invalid saved build")

	// ErrZeroHash indicates an item record with hash 0.
	ErrZeroHash = errors.New("item hash cannot be zero")

	// ErrEmptyName indicates a required name field is empty.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrEmptyQuery indicates the query text field is empty.
	ErrEmptyQuery = errors.New("query cannot be empty")

	// ErrScoreOutOfRange indicates a synergy score outside [0,100].
	ErrScoreOutOfRange = errors.New("score must be within [0,100]")

	// ErrIncompleteGuide indicates a build guide with an unpopulated slot.
	ErrIncompleteGuide = errors.New("build guide slot is empty")

	// ErrInvalidTimestamp indicates a timestamp is in the future.
	ErrInvalidTimestamp = errors.New("timestamp cannot be in the future")
)
