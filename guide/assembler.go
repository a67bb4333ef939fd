package guide

import (
	"fmt"

	"github.com/poiesic/loadsmith/core"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// Assemble turns one candidate match into a complete build. It performs no
// scoring and no filtering: the match is already decided, this is pure
// presentation assembly. Every guide slot ends up populated — a real matched
// item name where one exists, the archetype template suggestion otherwise.
func Assemble(match core.CandidateMatch) core.CandidateBuild {
	arch := match.Archetype
	items := match.Items

	build := core.CandidateBuild{
		Name:            buildName(&match),
		Description:     buildDescription(&match),
		Score:           match.Score,
		Focus:           arch.Focus,
		Class:           arch.Class,
		Element:         arch.Element,
		Components:      components(&items),
		Guide:           assembleGuide(&arch.Template, &items),
		Playstyle:       playstyleFor(arch.Focus, items.Exotics() > 0),
		SourceItemCount: items.Total(),
	}

	return build
}

// buildName is "<top exotic> <Focus> Build" when an exotic matched, else the
// archetype's default name.
func buildName(match *core.CandidateMatch) string {
	exotic := topExotic(&match.Items)
	if exotic == "" {
		return match.Archetype.Name
	}
	return fmt.Sprintf("%s %s Build", exotic, titleCaser.String(match.Archetype.Focus))
}

func buildDescription(match *core.CandidateMatch) string {
	return fmt.Sprintf("%s Assembled from %d matching items in your catalog.",
		match.Archetype.Description, match.Items.Total())
}

// topExotic prefers exotic armor over exotic weapons; within a category the
// matched order (hash order) is already deterministic.
func topExotic(items *core.MatchedItems) string {
	if len(items.ExoticArmor) > 0 {
		return items.ExoticArmor[0].Name
	}
	if len(items.ExoticWeapons) > 0 {
		return items.ExoticWeapons[0].Name
	}
	return ""
}

func refs(items []core.CatalogItem) []core.ItemRef {
	out := make([]core.ItemRef, 0, len(items))
	for _, item := range items {
		out = append(out, core.ItemRef{Hash: item.Hash, Name: item.Name})
	}
	return out
}

func components(items *core.MatchedItems) core.BuildComponents {
	return core.BuildComponents{
		ExoticArmor:      refs(items.ExoticArmor),
		ExoticWeapons:    refs(items.ExoticWeapons),
		LegendaryWeapons: refs(items.LegendaryWeapons),
		Mods:             refs(items.Mods),
		Aspects:          refs(items.Aspects),
		Fragments:        refs(items.Fragments),
		Abilities:        refs(items.Abilities),
	}
}

func assembleGuide(tpl *core.BuildTemplate, items *core.MatchedItems) core.BuildGuide {
	guide := core.BuildGuide{
		Super:        tpl.Super,
		ClassAbility: tpl.ClassAbility,
		Movement:     tpl.Movement,
		Melee:        tpl.Melee,
		Aspects:      names(items.Aspects, tpl.Aspects),
		Fragments:    names(items.Fragments, tpl.Fragments),
		Weapons: core.WeaponSlots{
			Kinetic: weaponFor(items, core.SlotKinetic, tpl.Kinetic),
			Energy:  weaponFor(items, core.SlotEnergy, tpl.Energy),
			Power:   weaponFor(items, core.SlotPower, tpl.Power),
		},
		Armor: core.ArmorSlots{
			Helmet:    armorFor(items, core.SlotHelmet, "High-stat helmet"),
			Arms:      armorFor(items, core.SlotArms, "High-stat gauntlets"),
			Chest:     armorFor(items, core.SlotChest, "High-stat chest armor"),
			Legs:      armorFor(items, core.SlotLegs, "High-stat leg armor"),
			ClassItem: armorFor(items, core.SlotClassItem, "Any class item"),
		},
		Mods: core.ModSlots{
			Essential:   names(items.Mods, tpl.Mods),
			Recommended: append([]string{}, tpl.Mods...),
			Optional:    []string{"Stat mods toward your priority spread"},
		},
		StatPriority: append([]string{}, tpl.StatPriority...),
		Rotation:     append([]string{}, tpl.Rotation...),
		Tips:         append([]string{}, tpl.Tips...),
	}

	return guide
}

// names returns the matched item names, or the template fallback when
// nothing matched.
func names(items []core.CatalogItem, fallback []string) []string {
	if len(items) == 0 {
		return append([]string{}, fallback...)
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Name)
	}
	return out
}

// weaponFor returns the first matched weapon occupying the slot, preferring
// exotics, falling back to the template suggestion.
func weaponFor(items *core.MatchedItems, slot core.Slot, fallback string) string {
	for _, group := range [][]core.CatalogItem{items.ExoticWeapons, items.LegendaryWeapons} {
		for _, item := range group {
			if item.Slot == slot {
				return item.Name
			}
		}
	}
	return fallback
}

// armorFor returns the first matched exotic armor piece occupying the slot,
// falling back to a generic suggestion.
func armorFor(items *core.MatchedItems, slot core.Slot, fallback string) string {
	for _, item := range items.ExoticArmor {
		if item.Slot == slot {
			return item.Name
		}
	}
	return fallback
}
