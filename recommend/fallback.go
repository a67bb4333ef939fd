package recommend

import (
	"sort"
	"strings"

	"github.com/poiesic/loadsmith/core"
	"github.com/poiesic/loadsmith/query"
)

const fallbackLimit = 10

// rankFallback ranks candidate items by overlap with the query tokens: tag
// hits weigh double, name/description hits single. Items with no overlap are
// dropped, so an unrecognizable query yields an empty list.
func rankFallback(parsed core.ParsedQuery, items []core.CatalogItem) []RankedItem {
	ranked := make([]RankedItem, 0, len(items))

	for _, item := range items {
		score := overlapScore(&item, parsed.Tokens)
		if score == 0 {
			continue
		}
		ranked = append(ranked, RankedItem{
			Item:  core.ItemRef{Hash: item.Hash, Name: item.Name},
			Score: score,
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Item.Hash < ranked[j].Item.Hash
	})

	if len(ranked) > fallbackLimit {
		ranked = ranked[:fallbackLimit]
	}
	return ranked
}

func overlapScore(item *core.CatalogItem, tokens []string) int {
	text := strings.ToLower(item.Name + " " + item.Description)
	score := 0
	for _, token := range tokens {
		switch {
		case item.HasTag(token):
			score += 2
		case strings.Contains(text, token):
			score++
		}
	}
	return score
}

// broadeningSuggestions names the entities the parse failed to resolve, so
// the caller can tell the player how to sharpen or broaden the query.
func broadeningSuggestions(parsed *core.ParsedQuery) []string {
	suggestions := []string{}

	if parsed.Confidence < query.LowConfidence {
		suggestions = append(suggestions,
			`Describe what the build should do, for example "grenade spam titan build"`)
	}
	if parsed.Class == core.ClassAny {
		suggestions = append(suggestions, "Name a class: titan, hunter, or warlock")
	}
	if parsed.Element == core.ElementNone {
		suggestions = append(suggestions, "Add an element such as solar, void, or arc")
	}
	if len(parsed.FocusStats) == 0 && len(parsed.StatTargets) == 0 {
		suggestions = append(suggestions, "Mention an ability focus, like grenades or melee")
	}
	if len(suggestions) == 0 {
		suggestions = append(suggestions,
			"Try fewer constraints — build patterns trigger on playstyle keywords")
	}

	return suggestions
}
