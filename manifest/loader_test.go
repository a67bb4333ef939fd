package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/poiesic/loadsmith/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDocument = `{
  "version": "2024.06.1",
  "inventoryItems": {
    "212971158": {
      "displayProperties": {
        "name": "Armamentarium",
        "description": "Gain an additional grenade charge."
      },
      "itemType": 2,
      "itemTypeDisplayName": "Chest Armor",
      "inventory": {"bucketTypeHash": 14239492, "tierType": 6},
      "classType": 0,
      "defaultDamageType": 0,
      "stats": {
        "stats": {
          "1735777505": {"value": 20}
        }
      }
    },
    "1363886209": {
      "displayProperties": {
        "name": "Gjallarhorn",
        "description": "Wolfpack Rounds track targets after detonation."
      },
      "itemType": 3,
      "itemTypeDisplayName": "Rocket Launcher",
      "inventory": {"bucketTypeHash": 953998645, "tierType": 6},
      "classType": 3,
      "defaultDamageType": 3
    },
    "999000002": {
      "displayProperties": {"name": "Classified Plate", "description": ""},
      "itemType": 2,
      "redacted": true
    }
  }
}`

func TestRead(t *testing.T) {
	records, version, err := Read(strings.NewReader(sampleDocument))
	require.NoError(t, err)

	assert.Equal(t, "2024.06.1", version)
	require.Len(t, records, 3)

	byHash := make(map[core.ItemHash]core.RawItemRecord)
	for _, record := range records {
		byHash[record.Hash] = record
	}

	armamentarium := byHash[212971158]
	assert.Equal(t, "Armamentarium", armamentarium.Name)
	assert.Equal(t, 2, armamentarium.TypeCode)
	assert.Equal(t, "Chest Armor", armamentarium.TypeDisplayName)
	assert.Equal(t, uint32(14239492), armamentarium.BucketHash)
	assert.Equal(t, 6, armamentarium.TierCode)
	assert.Equal(t, 0, armamentarium.ClassCode)
	assert.Equal(t, map[uint32]int{1735777505: 20}, armamentarium.Stats)

	gjallarhorn := byHash[1363886209]
	assert.Equal(t, 3, gjallarhorn.DamageCode)
	assert.Nil(t, gjallarhorn.Stats, "absent stats block stays nil")

	redacted := byHash[999000002]
	assert.True(t, redacted.Redacted, "redacted flag is carried through, skipping is the indexer's call")
}

func TestRead_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:    "malformed JSON",
			input:   "{not json",
			wantErr: ErrMalformedManifest,
		},
		{
			name:    "missing version",
			input:   `{"inventoryItems": {"1": {"displayProperties": {"name": "x"}}}}`,
			wantErr: ErrMissingVersion,
		},
		{
			name:    "no items",
			input:   `{"version": "2024.06.1", "inventoryItems": {}}`,
			wantErr: ErrNoItems,
		},
		{
			name:    "non-numeric item key",
			input:   `{"version": "2024.06.1", "inventoryItems": {"abc": {"displayProperties": {"name": "x"}}}}`,
			wantErr: ErrMalformedManifest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Read(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleDocument), 0o644))

	records, version, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "2024.06.1", version)
	assert.Len(t, records, 3)
}

func TestLoad_MissingFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "does-not-exist.json"))
	assert.ErrorIs(t, err, ErrManifestUnreadable)
}
