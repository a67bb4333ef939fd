package core

import (
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "same content produces same ID", content: "grenade spam titan"},
		{name: "empty string", content: ""},
		{name: "long content", content: "This is a much longer query that should still hash consistently across calls"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)

			if id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %d vs %d", id1, id2)
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	id1 := IDFromContent("content1")
	id2 := IDFromContent("content2")

	if id1 == id2 {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}

func TestVersionKey(t *testing.T) {
	key1 := VersionKey("2024.1", 100)
	key2 := VersionKey("2024.1", 100)
	if key1 != key2 {
		t.Errorf("VersionKey() not deterministic: %d vs %d", key1, key2)
	}

	if VersionKey("2024.1", 100) == VersionKey("2024.2", 100) {
		t.Error("VersionKey() collided across versions")
	}
	if VersionKey("2024.1", 100) == VersionKey("2024.1", 101) {
		t.Error("VersionKey() collided across item counts")
	}
}

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"titan", ClassTitan.String(), "titan"},
		{"any class", ClassAny.String(), "any"},
		{"solar", ElementSolar.String(), "solar"},
		{"no element", ElementNone.String(), "any"},
		{"exotic", TierExotic.String(), "exotic"},
		{"legendary", TierLegendary.String(), "legendary"},
		{"weapon", CategoryWeapon.String(), "weapon"},
		{"mod", CategoryMod.String(), "mod"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("String() = %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestCatalogItem_HasTag(t *testing.T) {
	item := CatalogItem{Tags: []string{"exotic", "grenade", "solar"}}

	if !item.HasTag("grenade") {
		t.Error("HasTag() missed a present tag")
	}
	if item.HasTag("void") {
		t.Error("HasTag() reported an absent tag")
	}
}

func TestMatchedItems_Counts(t *testing.T) {
	items := MatchedItems{
		ExoticArmor:   []CatalogItem{{Name: "Armamentarium"}, {Name: "Heart of Inmost Light"}},
		ExoticWeapons: []CatalogItem{{Name: "Gjallarhorn"}},
		Mods:          []CatalogItem{{Name: "Firepower"}, {Name: "Bomber"}, {Name: "Innervation"}},
		Fragments:     []CatalogItem{{Name: "Spark of Shock"}},
	}

	if got := items.Total(); got != 7 {
		t.Errorf("Total() = %d, want 7", got)
	}
	if got := items.Exotics(); got != 3 {
		t.Errorf("Exotics() = %d, want 3", got)
	}
	if got := items.Categories(); got != 4 {
		t.Errorf("Categories() = %d, want 4", got)
	}
}

func TestMatchedItems_Empty(t *testing.T) {
	var items MatchedItems

	if got := items.Total(); got != 0 {
		t.Errorf("Total() = %d, want 0", got)
	}
	if got := items.Exotics(); got != 0 {
		t.Errorf("Exotics() = %d, want 0", got)
	}
	if got := items.Categories(); got != 0 {
		t.Errorf("Categories() = %d, want 0", got)
	}
}
