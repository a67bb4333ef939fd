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


package manifest

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/poiesic/loadsmith/core"
)

// document is the on-disk manifest shape: a catalog version string plus a
// map of item hash to item definition, mirroring the upstream inventory
// item component.
type document struct {
	Version        string                    `json:"version"`
	InventoryItems map[string]itemDefinition `json:"inventoryItems"`
}

type itemDefinition struct {
	DisplayProperties displayProperties `json:"displayProperties"`
	ItemType          int               `json:"itemType"`
	ItemTypeDisplay   string            `json:"itemTypeDisplayName"`
	Inventory         inventoryBlock    `json:"inventory"`
	ClassType         int               `json:"classType"`
	DefaultDamageType int               `json:"defaultDamageType"`
	Redacted          bool              `json:"redacted"`
	Stats             *statsBlock       `json:"stats"`
}

type displayProperties struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type inventoryBlock struct {
	BucketTypeHash uint32 `json:"bucketTypeHash"`
	TierType       int    `json:"tierType"`
}

type statsBlock struct {
	Stats map[string]statEntry `json:"stats"`
}

type statEntry struct {
	Value int `json:"value"`
}

// Load reads a manifest document from a file and converts it to raw item
// records. The second return value is the document's catalog version.
func Load(path string) ([]core.RawItemRecord, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrManifestUnreadable, err)
	}
	defer f.Close()

	return Read(f)
}

// Read parses a manifest document from a reader.
func Read(r io.Reader) ([]core.RawItemRecord, string, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrMalformedManifest, err)
	}

	if doc.Version == "" {
		return nil, "", ErrMissingVersion
	}
	if len(doc.InventoryItems) == 0 {
		return nil, "", ErrNoItems
	}

	records := make([]core.RawItemRecord, 0, len(doc.InventoryItems))
	for hashStr, def := range doc.InventoryItems {
		hash, err := strconv.ParseUint(hashStr, 10, 32)
		if err != nil {
			return nil, "", fmt.Errorf("%w: item key %q", ErrMalformedManifest, hashStr)
		}
		records = append(records, toRecord(core.ItemHash(hash), def))
	}

	return records, doc.Version, nil
}

func toRecord(hash core.ItemHash, def itemDefinition) core.RawItemRecord {
	rec := core.RawItemRecord{
		Hash:            hash,
		Name:            def.DisplayProperties.Name,
		Description:     def.DisplayProperties.Description,
		TypeCode:        def.ItemType,
		TypeDisplayName: def.ItemTypeDisplay,
		BucketHash:      def.Inventory.BucketTypeHash,
		ClassCode:       def.ClassType,
		DamageCode:      def.DefaultDamageType,
		TierCode:        def.Inventory.TierType,
		Redacted:        def.Redacted,
	}

	if def.Stats != nil && len(def.Stats.Stats) > 0 {
		rec.Stats = make(map[uint32]int, len(def.Stats.Stats))
		for statStr, entry := range def.Stats.Stats {
			statHash, err := strconv.ParseUint(statStr, 10, 32)
			if err != nil {
				// Unparseable stat keys are dropped rather than failing
				// the whole item.
				continue
			}
			rec.Stats[uint32(statHash)] = entry.Value
		}
	}

	return rec
}
