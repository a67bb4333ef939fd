package guide

import (
	"testing"

	"github.com/poiesic/loadsmith/archetype"
	"github.com/poiesic/loadsmith/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func grenadeArchetype(t *testing.T) core.BuildArchetype {
	t.Helper()
	for _, arch := range archetype.Default() {
		if arch.ID == "grenade_spam" {
			return arch
		}
	}
	t.Fatal("grenade_spam archetype missing from registry")
	return core.BuildArchetype{}
}

func grenadeMatch(t *testing.T) core.CandidateMatch {
	return core.CandidateMatch{
		Archetype: grenadeArchetype(t),
		Items: core.MatchedItems{
			ExoticArmor: []core.CatalogItem{
				{Hash: 212971158, Name: "Armamentarium", Slot: core.SlotChest, Tier: core.TierExotic, Category: core.CategoryArmor},
				{Hash: 3531075476, Name: "Heart of Inmost Light", Slot: core.SlotChest, Tier: core.TierExotic, Category: core.CategoryArmor},
			},
			ExoticWeapons: []core.CatalogItem{
				{Hash: 1363886209, Name: "Gjallarhorn", Slot: core.SlotPower, Tier: core.TierExotic, Category: core.CategoryWeapon},
			},
			Mods: []core.CatalogItem{
				{Hash: 1484685887, Name: "Firepower", Category: core.CategoryMod},
				{Hash: 3185435908, Name: "Bomber", Category: core.CategoryMod},
			},
			Aspects: []core.CatalogItem{
				{Hash: 2321824287, Name: "Touch of Thunder", Category: core.CategorySubclass},
			},
		},
		Score: 100,
	}
}

func TestAssemble_CompleteGuide(t *testing.T) {
	build := Assemble(grenadeMatch(t))

	assert.NoError(t, core.ValidateCandidateBuild(&build), "assembled build must pass domain validation")
	assert.Equal(t, 100, build.Score)
	assert.Equal(t, "grenade", build.Focus)
	assert.Equal(t, 6, build.SourceItemCount)
}

func TestAssemble_NameFromTopExotic(t *testing.T) {
	t.Run("exotic armor anchors the name", func(t *testing.T) {
		build := Assemble(grenadeMatch(t))
		assert.Equal(t, "Armamentarium Grenade Build", build.Name)
	})

	t.Run("exotic weapon anchors when no armor matched", func(t *testing.T) {
		match := grenadeMatch(t)
		match.Items.ExoticArmor = nil
		build := Assemble(match)
		assert.Equal(t, "Gjallarhorn Grenade Build", build.Name)
	})

	t.Run("archetype name when nothing exotic matched", func(t *testing.T) {
		match := grenadeMatch(t)
		match.Items.ExoticArmor = nil
		match.Items.ExoticWeapons = nil
		build := Assemble(match)
		assert.Equal(t, "Grenade Spam", build.Name)
	})
}

func TestAssemble_MatchedItemsFillSlots(t *testing.T) {
	match := grenadeMatch(t)
	build := Assemble(match)

	assert.Equal(t, "Armamentarium", build.Guide.Armor.Chest, "matched exotic fills its armor slot")
	assert.Equal(t, "Gjallarhorn", build.Guide.Weapons.Power, "matched exotic weapon fills its slot")
	assert.Equal(t, []string{"Touch of Thunder"}, build.Guide.Aspects)
	assert.Equal(t, []string{"Firepower", "Bomber"}, build.Guide.Mods.Essential)
}

func TestAssemble_TemplateFallbacks(t *testing.T) {
	arch := grenadeArchetype(t)
	match := core.CandidateMatch{
		Archetype: arch,
		Items: core.MatchedItems{
			Mods: []core.CatalogItem{
				{Hash: 1484685887, Name: "Firepower", Category: core.CategoryMod},
				{Hash: 3185435908, Name: "Bomber", Category: core.CategoryMod},
			},
		},
		Score: 51,
	}

	build := Assemble(match)
	require.NoError(t, core.ValidateCandidateBuild(&build))

	assert.Equal(t, arch.Template.Kinetic, build.Guide.Weapons.Kinetic, "unmatched slots fall back to the template")
	assert.Equal(t, arch.Template.Aspects, build.Guide.Aspects)
	assert.Equal(t, "High-stat chest armor", build.Guide.Armor.Chest)
}

func TestAssemble_Components(t *testing.T) {
	build := Assemble(grenadeMatch(t))

	assert.Equal(t, []core.ItemRef{
		{Hash: 212971158, Name: "Armamentarium"},
		{Hash: 3531075476, Name: "Heart of Inmost Light"},
	}, build.Components.ExoticArmor)
	assert.Len(t, build.Components.Mods, 2)
	assert.Empty(t, build.Components.Fragments)
}

func TestAssemble_Playstyle(t *testing.T) {
	t.Run("focus descriptor with exotic bonus", func(t *testing.T) {
		build := Assemble(grenadeMatch(t))
		assert.Contains(t, build.Playstyle.Strengths, exoticStrength)
		assert.NotEmpty(t, build.Playstyle.Weaknesses)
		assert.NotEmpty(t, build.Playstyle.BestActivities)
	})

	t.Run("no exotic bonus without exotics", func(t *testing.T) {
		match := grenadeMatch(t)
		match.Items.ExoticArmor = nil
		match.Items.ExoticWeapons = nil
		build := Assemble(match)
		assert.NotContains(t, build.Playstyle.Strengths, exoticStrength)
	})

	t.Run("unknown focus uses the default descriptor", func(t *testing.T) {
		match := grenadeMatch(t)
		match.Archetype.Focus = "experimental"
		build := Assemble(match)
		assert.Equal(t, defaultPlaystyle.Weaknesses, build.Playstyle.Weaknesses)
	})
}
