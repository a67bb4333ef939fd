package query

import "github.com/poiesic/loadsmith/core"

// Alias tables for entity resolution. These are engine configuration, not
// catalog data: they fold the vocabulary players actually type onto the
// canonical entity names the matcher understands.

var classNames = map[string]core.GuardianClass{
	"titan":   core.ClassTitan,
	"hunter":  core.ClassHunter,
	"warlock": core.ClassWarlock,
}

var elementNames = map[string]core.Element{
	"kinetic":   core.ElementKinetic,
	"arc":       core.ElementArc,
	"lightning": core.ElementArc,
	"solar":     core.ElementSolar,
	"fire":      core.ElementSolar,
	"void":      core.ElementVoid,
	"stasis":    core.ElementStasis,
	"strand":    core.ElementStrand,
}

// activityNames folds aliases onto canonical activity names.
var activityNames = map[string]string{
	"nightfall":   "nightfall",
	"grandmaster": "nightfall",
	"gm":          "nightfall",
	"ordeal":      "nightfall",
	"raid":        "raid",
	"dungeon":     "dungeon",
	"pvp":         "pvp",
	"crucible":    "pvp",
	"trials":      "pvp",
	"gambit":      "gambit",
	"general":     "general",
}

// playstyleNames are direct playstyle keywords.
var playstyleNames = map[string]bool{
	"aggressive": true,
	"defensive":  true,
	"balanced":   true,
	"support":    true,
}

// playstyleHints infer a playstyle from co-occurring words when no direct
// keyword is present.
var playstyleHints = map[string]string{
	"survive":       "defensive",
	"survivability": "defensive",
	"tank":          "defensive",
	"tanky":         "defensive",
	"dps":           "aggressive",
	"damage":        "aggressive",
	"offense":       "aggressive",
	"heal":          "support",
	"healing":       "support",
	"team":          "support",
	"allies":        "support",
}

// statAliases folds stat vocabulary onto canonical stat names.
var statAliases = map[string]string{
	"mobility":   "mobility",
	"speed":      "mobility",
	"agility":    "mobility",
	"resilience": "resilience",
	"recovery":   "recovery",
	"health":     "recovery",
	"regen":      "recovery",
	"discipline": "discipline",
	"grenade":    "discipline",
	"grenades":   "discipline",
	"intellect":  "intellect",
	"super":      "intellect",
	"strength":   "strength",
	"melee":      "strength",
}

// weaponTypePhrases are matched as whole phrases before single-token
// resolution so "hand cannon" never resolves "cannon" alone.
var weaponTypePhrases = []string{
	"auto rifle",
	"hand cannon",
	"pulse rifle",
	"scout rifle",
	"sidearm",
	"submachine gun",
	"bow",
	"fusion rifle",
	"sniper rifle",
	"shotgun",
	"trace rifle",
	"glaive",
	"grenade launcher",
	"linear fusion rifle",
	"machine gun",
	"rocket launcher",
	"sword",
}
