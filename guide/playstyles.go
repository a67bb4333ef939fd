package guide

import "github.com/poiesic/loadsmith/core"

// playstyles is the fixed per-focus descriptor table. Focuses without an
// entry fall back to defaultPlaystyle.
var playstyles = map[string]core.Playstyle{
	"grenade": {
		Strengths:      []string{"Constant ability pressure", "Excellent add clear"},
		Weaknesses:     []string{"Weak single-target burst", "Falls off when cooldowns stall"},
		BestActivities: []string{"strikes", "seasonal activities", "gambit"},
	},
	"support": {
		Strengths:      []string{"Keeps the fireteam alive", "Strong buff uptime"},
		Weaknesses:     []string{"Low personal damage", "Dependent on team positioning"},
		BestActivities: []string{"raids", "dungeons", "grandmaster nightfalls"},
	},
	"stealth": {
		Strengths:      []string{"Safe revives", "Controls engagement range"},
		Weaknesses:     []string{"Low add clear while invisible", "Timing-sensitive loop"},
		BestActivities: []string{"grandmaster nightfalls", "legend lost sectors"},
	},
	"melee": {
		Strengths:      []string{"High burst up close", "Self-sustain through kills"},
		Weaknesses:     []string{"Risky in endgame content", "Struggles at range"},
		BestActivities: []string{"strikes", "crucible", "gambit"},
	},
	"control": {
		Strengths:      []string{"Shuts down whole packs", "Strong against champions"},
		Weaknesses:     []string{"Lower raw damage", "Freeze immunity on some bosses"},
		BestActivities: []string{"grandmaster nightfalls", "master raids"},
	},
	"dps": {
		Strengths:      []string{"Top-tier damage phases", "Simple, repeatable rotation"},
		Weaknesses:     []string{"Thin defensive options", "Heavy ammo dependent"},
		BestActivities: []string{"raids", "dungeons"},
	},
}

var defaultPlaystyle = core.Playstyle{
	Strengths:      []string{"Flexible across content"},
	Weaknesses:     []string{"No standout specialty"},
	BestActivities: []string{"general PvE"},
}

// exoticStrength is appended to the strengths list when a build anchors on
// any exotic item.
const exoticStrength = "Exotic synergy amplifies the core loop"

// playstyleFor returns the descriptor for a focus, with the exotic bonus
// strength appended when hasExotic is set. The returned value is a copy.
func playstyleFor(focus string, hasExotic bool) core.Playstyle {
	style, ok := playstyles[focus]
	if !ok {
		style = defaultPlaystyle
	}

	out := core.Playstyle{
		Strengths:      append([]string{}, style.Strengths...),
		Weaknesses:     append([]string{}, style.Weaknesses...),
		BestActivities: append([]string{}, style.BestActivities...),
	}
	if hasExotic {
		out.Strengths = append(out.Strengths, exoticStrength)
	}
	return out
}
