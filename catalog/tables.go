package catalog

import "github.com/poiesic/loadsmith/core"

// Classification tables for raw catalog records. These mirror the upstream
// content database codes and are fixed per catalog generation; the indexer
// owns them so a future catalog version can swap them wholesale.

// bucketSlots maps upstream inventory bucket hashes to equipment slots.
var bucketSlots = map[uint32]core.Slot{
	1498876634: core.SlotKinetic,
	2465295065: core.SlotEnergy,
	953998645:  core.SlotPower,
	3448274439: core.SlotHelmet,
	3551918588: core.SlotArms,
	14239492:   core.SlotChest,
	20886954:   core.SlotLegs,
	1585787867: core.SlotClassItem,
	3284755031: core.SlotSubclass,
}

// typeCategories maps upstream item type codes to categories.
// Unlisted codes classify as CategoryOther.
var typeCategories = map[int]core.Category{
	2:  core.CategoryArmor,
	3:  core.CategoryWeapon,
	16: core.CategorySubclass,
	19: core.CategoryMod,
}

// damageElements maps upstream damage type codes to elements.
var damageElements = map[int]core.Element{
	1: core.ElementKinetic,
	2: core.ElementArc,
	3: core.ElementSolar,
	4: core.ElementVoid,
	6: core.ElementStasis,
	7: core.ElementStrand,
}

// tierRarities maps upstream tier type codes to rarity tiers.
var tierRarities = map[int]core.Tier{
	2: core.TierCommon,
	3: core.TierUncommon,
	4: core.TierRare,
	5: core.TierLegendary,
	6: core.TierExotic,
}

// classRestrictions maps upstream class codes to guardian classes.
// Code 3 means unrestricted.
var classRestrictions = map[int]core.GuardianClass{
	0: core.ClassTitan,
	1: core.ClassHunter,
	2: core.ClassWarlock,
}

// Named armor stat hashes, used to derive a role tag from the dominant stat.
var statNames = map[uint32]string{
	2996146975: "mobility",
	392767087:  "resilience",
	1943323491: "recovery",
	1735777505: "discipline",
	144602215:  "intellect",
	4244567218: "strength",
}

// activityTags is the curated substring dictionary for activity-fit tags.
// A substring match in the lower-cased name or description adds the tag.
var activityTags = map[string]string{
	"nightfall":   "nightfall",
	"grandmaster": "nightfall",
	"champion":    "nightfall",
	"raid":        "raid",
	"dungeon":     "dungeon",
	"crucible":    "pvp",
	"trials":      "pvp",
	"guardians":   "pvp",
	"gambit":      "gambit",
	"boss":        "dps",
}
