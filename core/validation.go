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

import (
	"fmt"
	"time"
)

// ValidateRawItemRecord validates a RawItemRecord at the indexing boundary.
//
// Validation rules:
//   - Hash must not be zero
//
// NOT validated here (indexing policy, not a precondition):
//   - Name content (blank, redacted and placeholder names are a skip
//     decision made by the indexer, not a caller error)
//   - Classification codes (unrecognized codes classify as CategoryOther)
func ValidateRawItemRecord(record *RawItemRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidRawItem)
	}

	if record.Hash == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidRawItem, ErrZeroHash)
	}

	return nil
}

// ValidateCandidateBuild validates a CandidateBuild according to domain rules.
//
// Validation rules:
//   - Name must not be empty
//   - Score must be within [0,100]
//   - Every guide slot must be a non-empty string or non-empty list
func ValidateCandidateBuild(build *CandidateBuild) error {
	if build == nil {
		return fmt.Errorf("%w: build is nil", ErrInvalidBuild)
	}

	if build.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidBuild, ErrEmptyName)
	}

	if build.Score < 0 || build.Score > 100 {
		return fmt.Errorf("%w: %w: %d", ErrInvalidBuild, ErrScoreOutOfRange, build.Score)
	}

	if err := ValidateBuildGuide(&build.Guide); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBuild, err)
	}

	return nil
}

// ValidateBuildGuide checks that every guide slot is populated.
func ValidateBuildGuide(guide *BuildGuide) error {
	strSlots := map[string]string{
		"super":         guide.Super,
		"class ability": guide.ClassAbility,
		"movement":      guide.Movement,
		"melee":         guide.Melee,
		"kinetic":       guide.Weapons.Kinetic,
		"energy":        guide.Weapons.Energy,
		"power":         guide.Weapons.Power,
		"helmet":        guide.Armor.Helmet,
		"arms":          guide.Armor.Arms,
		"chest":         guide.Armor.Chest,
		"legs":          guide.Armor.Legs,
		"class item":    guide.Armor.ClassItem,
	}
	for slot, value := range strSlots {
		if value == "" {
			return fmt.Errorf("%w: %s", ErrIncompleteGuide, slot)
		}
	}

	listSlots := map[string][]string{
		"aspects":       guide.Aspects,
		"fragments":     guide.Fragments,
		"mods":          guide.Mods.Essential,
		"stat priority": guide.StatPriority,
		"rotation":      guide.Rotation,
		"tips":          guide.Tips,
	}
	for slot, values := range listSlots {
		if len(values) == 0 {
			return fmt.Errorf("%w: %s", ErrIncompleteGuide, slot)
		}
	}

	return nil
}

// ValidateSavedBuild validates a SavedBuild according to domain rules.
//
// Validation rules:
//   - Query must not be empty
//   - Embedded build must pass ValidateCandidateBuild
//   - Timestamps must not be in the future
//
// NOT validated (populated by storage):
//   - ID (0 is valid before a database sequence assigns one)
func ValidateSavedBuild(saved *SavedBuild) error {
	if saved == nil {
		return fmt.Errorf("%w: saved build is nil", ErrInvalidSavedBuild)
	}

	if saved.Query == "" {
		return fmt.Errorf("%w: %w", ErrInvalidSavedBuild, ErrEmptyQuery)
	}

	if err := ValidateCandidateBuild(&saved.Build); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSavedBuild, err)
	}

	if !IsValidTimestamp(saved.InsertedAt) || !IsValidTimestamp(saved.UpdatedAt) {
		return fmt.Errorf("%w: %w", ErrInvalidSavedBuild, ErrInvalidTimestamp)
	}

	return nil
}

// IsValidTimestamp checks if a timestamp is valid (not in the future).
func IsValidTimestamp(ts time.Time) bool {
	return !ts.After(time.Now())
}
