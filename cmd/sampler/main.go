// Generates a sample catalog manifest for trying out the loadsmith CLI
// without a real manifest export.
package main

import (
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"strconv"

	"github.com/poiesic/loadsmith/catalog"
	"github.com/poiesic/loadsmith/core"
)

var outFileName = flag.String("out", "manifest.json", "output manifest path")

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

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
	Stats             *statsBlock       `json:"stats,omitempty"`
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

func main() {
	records := catalog.SampleRawRecords()

	doc := document{
		Version:        catalog.SampleVersion,
		InventoryItems: make(map[string]itemDefinition, len(records)),
	}

	for _, rec := range records {
		doc.InventoryItems[strconv.FormatUint(uint64(rec.Hash), 10)] = toDefinition(rec)
	}

	f, err := os.Create(*outFileName)
	if err != nil {
		slog.Error("unable to create output file", "path", *outFileName, "err", err)
		os.Exit(1)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&doc); err != nil {
		slog.Error("unable to write manifest", "path", *outFileName, "err", err)
		os.Exit(1)
	}

	slog.Info("sample manifest written",
		"path", *outFileName,
		"version", doc.Version,
		"items", len(doc.InventoryItems))
}

func toDefinition(rec core.RawItemRecord) itemDefinition {
	def := itemDefinition{
		DisplayProperties: displayProperties{
			Name:        rec.Name,
			Description: rec.Description,
		},
		ItemType:        rec.TypeCode,
		ItemTypeDisplay: rec.TypeDisplayName,
		Inventory: inventoryBlock{
			BucketTypeHash: rec.BucketHash,
			TierType:       rec.TierCode,
		},
		ClassType:         rec.ClassCode,
		DefaultDamageType: rec.DamageCode,
		Redacted:          rec.Redacted,
	}

	if len(rec.Stats) > 0 {
		def.Stats = &statsBlock{Stats: make(map[string]statEntry, len(rec.Stats))}
		for hash, value := range rec.Stats {
			def.Stats.Stats[strconv.FormatUint(uint64(hash), 10)] = statEntry{Value: value}
		}
	}

	return def
}
