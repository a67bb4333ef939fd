package core

import (
	"errors"
	"testing"
	"time"
)

// completeBuild returns a CandidateBuild with every guide slot populated.
func completeBuild() CandidateBuild {
	return CandidateBuild{
		Name:        "Armamentarium Grenade Build",
		Description: "Cycle grenade energy as fast as it can be spent.",
		Score:       88,
		Focus:       "grenade",
		Class:       ClassTitan,
		Guide: BuildGuide{
			Super:        "Roaming super",
			ClassAbility: "Rally Barricade",
			Movement:     "Catapult Lift",
			Melee:        "Powered melee",
			Aspects:      []string{"Touch of Thunder"},
			Fragments:    []string{"Spark of Shock"},
			Weapons: WeaponSlots{
				Kinetic: "Fatebringer",
				Energy:  "Funnelweb",
				Power:   "Gjallarhorn",
			},
			Armor: ArmorSlots{
				Helmet:    "High-stat helmet",
				Arms:      "High-stat gauntlets",
				Chest:     "Armamentarium",
				Legs:      "High-stat leg armor",
				ClassItem: "Any class item",
			},
			Mods: ModSlots{
				Essential:   []string{"Firepower"},
				Recommended: []string{"Bomber"},
				Optional:    []string{"Stat mods"},
			},
			StatPriority: []string{"discipline", "resilience"},
			Rotation:     []string{"Open with your grenade"},
			Tips:         []string{"Max Discipline first"},
		},
		SourceItemCount: 7,
	}
}

func TestValidateRawItemRecord(t *testing.T) {
	tests := []struct {
		name    string
		record  *RawItemRecord
		wantErr error
	}{
		{
			name:    "valid record",
			record:  &RawItemRecord{Hash: 212971158, Name: "Armamentarium"},
			wantErr: nil,
		},
		{
			name:    "blank name is not a validation error",
			record:  &RawItemRecord{Hash: 999000001},
			wantErr: nil,
		},
		{
			name:    "unrecognized codes are not a validation error",
			record:  &RawItemRecord{Hash: 42, Name: "Oddity", TypeCode: 99, TierCode: 99},
			wantErr: nil,
		},
		{
			name:    "nil record",
			record:  nil,
			wantErr: ErrInvalidRawItem,
		},
		{
			name:    "zero hash",
			record:  &RawItemRecord{Name: "Nameless"},
			wantErr: ErrZeroHash,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRawItemRecord(tt.record)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateRawItemRecord() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateRawItemRecord() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateCandidateBuild(t *testing.T) {
	t.Run("complete build", func(t *testing.T) {
		build := completeBuild()
		if err := ValidateCandidateBuild(&build); err != nil {
			t.Errorf("ValidateCandidateBuild() = %v, want nil", err)
		}
	})

	t.Run("nil build", func(t *testing.T) {
		if err := ValidateCandidateBuild(nil); !errors.Is(err, ErrInvalidBuild) {
			t.Errorf("ValidateCandidateBuild(nil) = %v, want ErrInvalidBuild", err)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		build := completeBuild()
		build.Name = ""
		if err := ValidateCandidateBuild(&build); !errors.Is(err, ErrEmptyName) {
			t.Errorf("ValidateCandidateBuild() = %v, want ErrEmptyName", err)
		}
	})

	t.Run("score above range", func(t *testing.T) {
		build := completeBuild()
		build.Score = 101
		if err := ValidateCandidateBuild(&build); !errors.Is(err, ErrScoreOutOfRange) {
			t.Errorf("ValidateCandidateBuild() = %v, want ErrScoreOutOfRange", err)
		}
	})

	t.Run("negative score", func(t *testing.T) {
		build := completeBuild()
		build.Score = -1
		if err := ValidateCandidateBuild(&build); !errors.Is(err, ErrScoreOutOfRange) {
			t.Errorf("ValidateCandidateBuild() = %v, want ErrScoreOutOfRange", err)
		}
	})

	t.Run("empty weapon slot", func(t *testing.T) {
		build := completeBuild()
		build.Guide.Weapons.Power = ""
		if err := ValidateCandidateBuild(&build); !errors.Is(err, ErrIncompleteGuide) {
			t.Errorf("ValidateCandidateBuild() = %v, want ErrIncompleteGuide", err)
		}
	})

	t.Run("empty rotation", func(t *testing.T) {
		build := completeBuild()
		build.Guide.Rotation = nil
		if err := ValidateCandidateBuild(&build); !errors.Is(err, ErrIncompleteGuide) {
			t.Errorf("ValidateCandidateBuild() = %v, want ErrIncompleteGuide", err)
		}
	})
}

func TestValidateSavedBuild(t *testing.T) {
	validTime := time.Now().Add(-1 * time.Hour)
	futureTime := time.Now().Add(1 * time.Hour)

	valid := func() SavedBuild {
		return SavedBuild{
			Id:         1,
			Query:      "grenade spam titan",
			Build:      completeBuild(),
			InsertedAt: validTime,
			UpdatedAt:  validTime,
		}
	}

	t.Run("valid saved build", func(t *testing.T) {
		saved := valid()
		if err := ValidateSavedBuild(&saved); err != nil {
			t.Errorf("ValidateSavedBuild() = %v, want nil", err)
		}
	})

	t.Run("zero ID is valid before storage assigns one", func(t *testing.T) {
		saved := valid()
		saved.Id = 0
		if err := ValidateSavedBuild(&saved); err != nil {
			t.Errorf("ValidateSavedBuild() = %v, want nil", err)
		}
	})

	t.Run("nil saved build", func(t *testing.T) {
		if err := ValidateSavedBuild(nil); !errors.Is(err, ErrInvalidSavedBuild) {
			t.Errorf("ValidateSavedBuild(nil) = %v, want ErrInvalidSavedBuild", err)
		}
	})

	t.Run("empty query", func(t *testing.T) {
		saved := valid()
		saved.Query = ""
		if err := ValidateSavedBuild(&saved); !errors.Is(err, ErrEmptyQuery) {
			t.Errorf("ValidateSavedBuild() = %v, want ErrEmptyQuery", err)
		}
	})

	t.Run("invalid embedded build", func(t *testing.T) {
		saved := valid()
		saved.Build.Name = ""
		if err := ValidateSavedBuild(&saved); !errors.Is(err, ErrInvalidBuild) {
			t.Errorf("ValidateSavedBuild() = %v, want ErrInvalidBuild", err)
		}
	})

	t.Run("future timestamp", func(t *testing.T) {
		saved := valid()
		saved.UpdatedAt = futureTime
		if err := ValidateSavedBuild(&saved); !errors.Is(err, ErrInvalidTimestamp) {
			t.Errorf("ValidateSavedBuild() = %v, want ErrInvalidTimestamp", err)
		}
	})
}

func TestIsValidTimestamp(t *testing.T) {
	if !IsValidTimestamp(time.Now().Add(-time.Minute)) {
		t.Error("IsValidTimestamp() rejected a past timestamp")
	}
	if IsValidTimestamp(time.Now().Add(time.Minute)) {
		t.Error("IsValidTimestamp() accepted a future timestamp")
	}
}
