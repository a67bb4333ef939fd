package archetype

import "github.com/poiesic/loadsmith/core"

// Default returns the built-in archetype registry in registration order.
// Registration order is the tiebreak for equal synergy scores, so reordering
// entries changes presentation. The slice is freshly allocated per call;
// archetype data itself is never mutated at runtime.
func Default() []core.BuildArchetype {
	return []core.BuildArchetype{
		grenadeSpam,
		wellSupport,
		voidInvisibility,
		meleeBrawler,
		stasisControl,
		bossDamage,
	}
}

var grenadeSpam = core.BuildArchetype{
	ID:          "grenade_spam",
	Name:        "Grenade Spam",
	Description: "Cycle grenade energy as fast as it can be spent.",
	Focus:       "grenade",
	Class:       core.ClassAny,
	Element:     core.ElementNone,
	Keywords:    []string{"grenade", "grenades", "nade", "ability spam", "discipline"},
	SynergyTags: []string{"grenade", "discipline", "ability energy", "orbs of power"},
	ExoticNames: []string{"Heart of Inmost Light", "Armamentarium", "Sunbracers", "Contraverse Hold", "Shinobu's Vow"},
	ModNames:    []string{"Firepower", "Bomber", "Innervation", "Grenade Kickstart"},
	MinItems:    2,
	Template: core.BuildTemplate{
		Super:        "Highest-uptime roaming super for your subclass",
		ClassAbility: "Class ability that feeds ability energy",
		Movement:     "Preferred movement mode",
		Melee:        "Melee that returns grenade energy",
		Aspects:      []string{"Aspect that improves your grenade", "Aspect that spawns elemental pickups"},
		Fragments:    []string{"Fragment granting grenade energy on kills", "Fragment boosting Discipline"},
		Kinetic:      "Add-clear primary you are comfortable with",
		Energy:       "Special weapon matching your subclass element",
		Power:        "Heavy for champions and bosses",
		Mods:         []string{"Firepower", "Bomber", "Innervation"},
		StatPriority: []string{"discipline", "resilience", "recovery"},
		Rotation: []string{
			"Open with your grenade on grouped targets",
			"Use your class ability to refund grenade energy",
			"Collect Orbs of Power to shortcut the cooldown",
			"Repeat — the loop should never leave you without a charge",
		},
		Tips: []string{
			"Max Discipline before any other stat",
			"Armor Charge mods keep the loop running in longer fights",
		},
	},
}

var wellSupport = core.BuildArchetype{
	ID:          "well_support",
	Name:        "Solar Support",
	Description: "Keep the team alive with restoration and damage buffs.",
	Focus:       "support",
	Class:       core.ClassWarlock,
	Element:     core.ElementSolar,
	Keywords:    []string{"support", "heal", "healing", "well", "restoration", "team"},
	SynergyTags: []string{"solar", "restoration", "healing", "cure", "orbs of power"},
	ExoticNames: []string{"Boots of the Assembler", "Phoenix Protocol", "Lunafaction Boots", "Speaker's Sight"},
	ModNames:    []string{"Recuperation", "Better Already", "Powerful Friends"},
	MinItems:    2,
	Template: core.BuildTemplate{
		Super:        "Well of Radiance",
		ClassAbility: "Healing Rift",
		Movement:     "Heat Rises or Burst Glide",
		Melee:        "Incinerator Snap",
		Aspects:      []string{"Touch of Flame", "Icarus Dash"},
		Fragments:    []string{"Ember of Benevolence", "Ember of Solace"},
		Kinetic:      "Primary with overflow or reconstruction",
		Energy:       "Solar special that triggers restoration",
		Power:        "Stand-and-deliver heavy for damage phases",
		Mods:         []string{"Recuperation", "Better Already"},
		StatPriority: []string{"recovery", "discipline", "resilience"},
		Rotation: []string{
			"Place your rift on the team before a damage phase",
			"Keep restoration rolling with solar ability kills",
			"Hold your super for wipe mechanics or boss damage",
		},
		Tips: []string{
			"Position the well where the team actually stands, not where the boss is",
			"Benevolence makes teammate interaction refund your abilities",
		},
	},
}

var voidInvisibility = core.BuildArchetype{
	ID:          "void_invisibility",
	Name:        "Void Invisibility",
	Description: "Chain invisibility for safety and revives in endgame content.",
	Focus:       "stealth",
	Class:       core.ClassHunter,
	Element:     core.ElementVoid,
	Keywords:    []string{"invis", "invisible", "invisibility", "stealth", "smoke"},
	SynergyTags: []string{"void", "invisible", "invisibility", "smoke", "weaken"},
	ExoticNames: []string{"Graviton Forfeit", "Omnioculus", "Gyrfalcon's Hauberk"},
	ModNames:    []string{"Reaper", "Utility Kickstart", "Dynamo"},
	MinItems:    2,
	Template: core.BuildTemplate{
		Super:        "Shadowshot: Deadfall",
		ClassAbility: "Gambler's Dodge",
		Movement:     "Triple Jump",
		Melee:        "Snare Bomb",
		Aspects:      []string{"Vanishing Step", "Stylish Executioner"},
		Fragments:    []string{"Echo of Persistence", "Echo of Obscurity"},
		Kinetic:      "Quiet primary for add clear while invisible",
		Energy:       "Void weapon to proc volatile",
		Power:        "Heavy you can fire from stealth openers",
		Mods:         []string{"Reaper", "Utility Kickstart"},
		StatPriority: []string{"mobility", "resilience", "strength"},
		Rotation: []string{
			"Dodge near a target to refresh smoke",
			"Smoke to go invisible before a risky push or revive",
			"Finish a weakened target to chain invisibility",
		},
		Tips: []string{
			"Invisibility drops aggro but not splash damage — keep moving",
			"Save a smoke charge for revives in grandmaster content",
		},
	},
}

var meleeBrawler = core.BuildArchetype{
	ID:          "melee_brawler",
	Name:        "Melee Brawler",
	Description: "Close the gap and keep swinging; kills feed the next punch.",
	Focus:       "melee",
	Class:       core.ClassTitan,
	Element:     core.ElementNone,
	Keywords:    []string{"melee", "punch", "brawler", "fist", "strength"},
	SynergyTags: []string{"melee", "strength", "glaive", "sword"},
	ExoticNames: []string{"Synthoceps", "Wormgod Caress", "Winter's Guile", "Karnstein Armlets"},
	ModNames:    []string{"Heavy Handed", "Melee Kickstart", "Invigoration"},
	MinItems:    2,
	Template: core.BuildTemplate{
		Super:        "Roaming super that extends the brawl",
		ClassAbility: "Barricade placed as a reset button",
		Movement:     "Lift or jump that closes distance",
		Melee:        "Your subclass powered melee",
		Aspects:      []string{"Aspect that buffs melee damage", "Aspect granting overshield on kills"},
		Fragments:    []string{"Fragment refunding melee energy", "Fragment boosting Strength"},
		Kinetic:      "Close-range primary for priming targets",
		Energy:       "Shotgun or fusion for the gap you cannot punch",
		Power:        "Sword to stay in the rhythm",
		Mods:         []string{"Heavy Handed", "Melee Kickstart"},
		StatPriority: []string{"strength", "resilience", "recovery"},
		Rotation: []string{
			"Soften a pack with your primary, then commit",
			"Chain powered melee kills to keep the buff window open",
			"Barricade when the chain breaks, then re-engage",
		},
		Tips: []string{
			"Pick your engagements — punching a boss is not a build",
			"Overshield uptime is your real health bar",
		},
	},
}

var stasisControl = core.BuildArchetype{
	ID:          "stasis_control",
	Name:        "Stasis Control",
	Description: "Freeze and shatter whole packs before they can act.",
	Focus:       "control",
	Class:       core.ClassAny,
	Element:     core.ElementStasis,
	Keywords:    []string{"stasis", "freeze", "slow", "shatter", "crowd control"},
	SynergyTags: []string{"stasis", "freeze", "slow", "shatter", "crystal"},
	ExoticNames: []string{"Osmiomancy Gloves", "Mask of Bakris", "Hoarfrost-Z", "Cadmus Ridge Lancecap"},
	ModNames:    []string{"Grenade Kickstart", "Bomber", "Elemental Charge"},
	MinItems:    2,
	Template: core.BuildTemplate{
		Super:        "Stasis super with the widest freeze",
		ClassAbility: "Class ability that recharges your grenade",
		Movement:     "Preferred movement mode",
		Melee:        "Stasis melee that slows",
		Aspects:      []string{"Aspect spawning stasis crystals", "Aspect improving shatter damage"},
		Fragments:    []string{"Whisper of Fissures", "Whisper of Chains"},
		Kinetic:      "Stasis sidearm or bow for slow stacks",
		Energy:       "Add-clear primary of your choice",
		Power:        "Heavy for frozen high-value targets",
		Mods:         []string{"Grenade Kickstart", "Bomber"},
		StatPriority: []string{"discipline", "resilience", "intellect"},
		Rotation: []string{
			"Open on a pack with your freezing grenade",
			"Shatter the frozen group with a melee or crystal",
			"Use slow to keep stragglers out of the fight",
		},
		Tips: []string{
			"Frozen champions cannot use their champion abilities",
			"Chains near crystals is a permanent damage resist in dense rooms",
		},
	},
}

var bossDamage = core.BuildArchetype{
	ID:          "boss_damage",
	Name:        "Boss Damage",
	Description: "Maximize single-target burst for damage phases.",
	Focus:       "dps",
	Class:       core.ClassAny,
	Element:     core.ElementNone,
	Keywords:    []string{"boss", "dps", "damage", "burst", "raid boss"},
	SynergyTags: []string{"dps", "raid", "boss", "rocket launcher", "linear fusion rifle", "machine gun"},
	ExoticNames: []string{"Gjallarhorn", "Izanagi's Burden", "Whisper of the Worm", "Cuirass of the Falling Star"},
	ModNames:    []string{"Surge", "Weapon Surge", "Font of Might"},
	MinItems:    2,
	Template: core.BuildTemplate{
		Super:        "One-shot burst super",
		ClassAbility: "Class ability that buffs weapon damage",
		Movement:     "Preferred movement mode",
		Melee:        "Any — melee is not part of this rotation",
		Aspects:      []string{"Aspect that amplifies super or weapon damage"},
		Fragments:    []string{"Fragment extending your damage buff window"},
		Kinetic:      "Sniper or slug shotgun with a damage perk",
		Energy:       "Special that weaves between heavy shots",
		Power:        "Rocket launcher or linear fusion rifle",
		Mods:         []string{"Weapon Surge x3", "Font of Might"},
		StatPriority: []string{"intellect", "resilience", "discipline"},
		Rotation: []string{
			"Pre-place your damage buff before the phase starts",
			"Dump heavy first, weave special between reloads",
			"Super either opens or closes the phase, never mid-phase",
		},
		Tips: []string{
			"Match your surge mods to the weapon that does the real damage",
			"A phase you survive beats a phase you almost finished",
		},
	},
}
