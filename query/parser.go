package query

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/poiesic/loadsmith/catalog"
	"github.com/poiesic/loadsmith/core"
)

// Confidence scoring constants. Parse is deterministic: identical text and
// index state always produce identical output, including confidence.
const (
	confidenceBase      = 0.4
	confidenceEntity    = 0.1  // per resolved class/element/activity/playstyle
	confidenceDetail    = 0.05 // any stat focus resolved; any exotic reference
	confidenceLength    = 0.05 // >4 words, again >7 words
	confidencePenalty   = 0.1  // very short input
	shortWordThreshold  = 2
	shortCharThreshold  = 6
	mediumWordThreshold = 4
	longWordThreshold   = 7

	// LowConfidence is the documented threshold below which a parse is
	// considered too vague to have resolved meaningful intent.
	LowConfidence = 0.45
)

var (
	tierTargetRe    = regexp.MustCompile(`\btier\s+(\d+)\s+([a-z]+)`)
	percentTargetRe = regexp.MustCompile(`\b(\d+)%\s*([a-z]+)`)
)

// Parser resolves free query text into a structured ParsedQuery using the
// alias tables and the exotic-name set of a catalog index. A Parser is
// immutable and safe for concurrent use.
type Parser struct {
	index *catalog.Index
}

// NewParser creates a parser bound to one catalog index. Exotic references
// resolve against that index, so parsing tracks the loaded catalog version.
func NewParser(index *catalog.Index) (*Parser, error) {
	if index == nil {
		return nil, ErrIndexRequired
	}
	return &Parser{index: index}, nil
}

// Parse resolves text into a ParsedQuery. Any non-empty string yields a
// valid, default-filled result; unresolved entities carry explicit defaults.
// Empty or whitespace-only text yields the defaults with zero confidence —
// rejecting such input is the caller's job, not the parser's.
func (p *Parser) Parse(text string) core.ParsedQuery {
	normalized := normalize(text)
	tokens := strings.Fields(normalized)

	parsed := core.ParsedQuery{
		Text:        text,
		Tokens:      tokens,
		Class:       core.ClassAny,
		Element:     core.ElementNone,
		Activity:    "general",
		Playstyle:   "balanced",
		FocusStats:  []string{},
		WeaponTypes: []string{},
		ExoticNames: []string{},
		StatTargets: map[string]int{},
	}
	if len(tokens) == 0 {
		return parsed
	}

	// Multi-word phrases first, longest first, and each matched span is
	// consumed so its words are never re-resolved as single tokens and a
	// phrase never shadows a longer phrase containing it.
	remaining := " " + normalized + " "
	for _, phrase := range byLengthDesc(weaponTypePhrases) {
		if probe := " " + phrase + " "; strings.Contains(remaining, probe) {
			parsed.WeaponTypes = append(parsed.WeaponTypes, phrase)
			remaining = consume(remaining, probe)
		}
	}
	for _, name := range byLengthDesc(p.index.ExoticNames()) {
		if probe := " " + name + " "; strings.Contains(remaining, probe) {
			parsed.ExoticNames = append(parsed.ExoticNames, name)
			remaining = consume(remaining, probe)
		}
	}
	leftover := strings.Fields(remaining)

	for _, token := range leftover {
		if parsed.Class == core.ClassAny {
			if class, ok := classNames[token]; ok {
				parsed.Class = class
			}
		}
		if parsed.Element == core.ElementNone {
			if element, ok := elementNames[token]; ok {
				parsed.Element = element
			}
		}
		if parsed.Activity == "general" {
			if activity, ok := activityNames[token]; ok {
				parsed.Activity = activity
			}
		}
		if stat, ok := statAliases[token]; ok {
			parsed.FocusStats = appendUnique(parsed.FocusStats, stat)
		}
	}

	parsed.Playstyle = resolvePlaystyle(leftover)
	parsed.StatTargets = resolveStatTargets(normalized)
	parsed.Confidence = confidence(&parsed, normalized)

	return parsed
}

// normalize lower-cases, trims, and collapses whitespace.
func normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(text))), " ")
}

// consume blanks every occurrence of probe, preserving positions so the
// surrounding tokens keep their delimiters. Back-to-back occurrences share a
// delimiter space, so replacement repeats until none remain.
func consume(s, probe string) string {
	blank := strings.Repeat(" ", len(probe))
	for strings.Contains(s, probe) {
		s = strings.ReplaceAll(s, probe, blank)
	}
	return s
}

// byLengthDesc returns a copy sorted longest first; ties keep input order.
func byLengthDesc(phrases []string) []string {
	out := make([]string, len(phrases))
	copy(out, phrases)
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i]) > len(out[j])
	})
	return out
}

func appendUnique(list []string, value string) []string {
	for _, v := range list {
		if v == value {
			return list
		}
	}
	return append(list, value)
}

// resolvePlaystyle prefers a direct playstyle keyword, then an inferred hint,
// then the balanced default.
func resolvePlaystyle(tokens []string) string {
	for _, token := range tokens {
		if playstyleNames[token] {
			return token
		}
	}
	for _, token := range tokens {
		if style, ok := playstyleHints[token]; ok {
			return style
		}
	}
	return "balanced"
}

// resolveStatTargets extracts numeric stat targets: "tier N stat" maps to
// N*10, "N% stat" maps to N directly. Out-of-range values are discarded.
func resolveStatTargets(normalized string) map[string]int {
	targets := make(map[string]int)

	for _, m := range tierTargetRe.FindAllStringSubmatch(normalized, -1) {
		tier, err := strconv.Atoi(m[1])
		if err != nil || tier < 1 || tier > 10 {
			continue
		}
		if stat, ok := statAliases[m[2]]; ok {
			targets[stat] = tier * 10
		}
	}

	for _, m := range percentTargetRe.FindAllStringSubmatch(normalized, -1) {
		pct, err := strconv.Atoi(m[1])
		if err != nil || pct < 0 || pct > 100 {
			continue
		}
		if stat, ok := statAliases[m[2]]; ok {
			targets[stat] = pct
		}
	}

	return targets
}

// confidence scores how much structured intent was resolved, clamped to [0,1].
func confidence(parsed *core.ParsedQuery, normalized string) float64 {
	score := confidenceBase

	if parsed.Class != core.ClassAny {
		score += confidenceEntity
	}
	if parsed.Element != core.ElementNone {
		score += confidenceEntity
	}
	if parsed.Activity != "general" {
		score += confidenceEntity
	}
	if parsed.Playstyle != "balanced" {
		score += confidenceEntity
	}
	if len(parsed.FocusStats) > 0 || len(parsed.StatTargets) > 0 {
		score += confidenceDetail
	}
	if len(parsed.ExoticNames) > 0 {
		score += confidenceDetail
	}

	words := len(parsed.Tokens)
	if words > mediumWordThreshold {
		score += confidenceLength
	}
	if words > longWordThreshold {
		score += confidenceLength
	}
	if words < shortWordThreshold || len(normalized) < shortCharThreshold {
		score -= confidencePenalty
	}

	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// SortedStatTargets returns the stat target keys in stable order, a helper
// for presentation layers that render targets deterministically.
func SortedStatTargets(targets map[string]int) []string {
	keys := make([]string, 0, len(targets))
	for k := range targets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
