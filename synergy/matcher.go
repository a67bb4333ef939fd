package synergy

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/poiesic/loadsmith/core"
)

// Weights is the synergy scoring parameter set. The shape of the formula is
// fixed — bounded, monotone in each term, capped — while the tuning values
// are configuration:
//
//	score = Base
//	      + min(matchedItems × SynergyWeight, SynergyCap)
//	      + min(exoticItems  × ExoticWeight,  ExoticCap)
//	      + min(categories   × DiversityWeight, DiversityCap)
//
// clamped to [0,100].
type Weights struct {
	Base            int
	SynergyWeight   int
	SynergyCap      int
	ExoticWeight    int
	ExoticCap       int
	DiversityWeight int
	DiversityCap    int
}

// DefaultWeights returns the documented default scoring constants.
func DefaultWeights() Weights {
	return Weights{
		Base:            35,
		SynergyWeight:   8,
		SynergyCap:      40,
		ExoticWeight:    15,
		ExoticCap:       30,
		DiversityWeight: 5,
		DiversityCap:    20,
	}
}

// Score computes the synergy score for one matched item set.
func (w Weights) Score(items *core.MatchedItems) int {
	score := w.Base
	score += capped(items.Total()*w.SynergyWeight, w.SynergyCap)
	score += capped(items.Exotics()*w.ExoticWeight, w.ExoticCap)
	score += capped(items.Categories()*w.DiversityWeight, w.DiversityCap)

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func capped(value, cap int) int {
	if value > cap {
		return cap
	}
	return value
}

// Matcher matches candidate items against build archetypes and scores the
// results. It is agnostic to where the candidate set comes from: the full
// build-relevant catalog subset or a caller-restricted set behave the same.
type Matcher struct {
	weights Weights
	logger  *slog.Logger
}

// Option configures a Matcher.
type Option func(*Matcher) error

// WithWeights sets the scoring parameter set.
// Default is DefaultWeights().
func WithWeights(weights Weights) Option {
	return func(m *Matcher) error {
		if weights.SynergyWeight < 0 || weights.ExoticWeight < 0 || weights.DiversityWeight < 0 {
			return ErrInvalidWeights
		}
		m.weights = weights
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(m *Matcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		m.logger = logger
		return nil
	}
}

// NewMatcher creates a new synergy matcher.
func NewMatcher(opts ...Option) (*Matcher, error) {
	m := &Matcher{
		weights: DefaultWeights(),
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Match runs the three matching stages for every archetype: keyword
// pre-filter against the query text, item scan against synergy tags and
// named exotics/mods, and the minimum-item threshold gate. Survivors are
// scored and returned in descending score order; ties keep archetype
// registration order. An empty result is a normal outcome, not an error.
func (m *Matcher) Match(parsed core.ParsedQuery, items []core.CatalogItem, archetypes []core.BuildArchetype) []core.CandidateMatch {
	return m.MatchWithMonitor(parsed, items, archetypes, nil)
}

// MatchWithMonitor is Match with observation hooks for each stage.
func (m *Matcher) MatchWithMonitor(parsed core.ParsedQuery, items []core.CatalogItem, archetypes []core.BuildArchetype, monitor MatchMonitor) []core.CandidateMatch {
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(parsed)
	padded := " " + strings.Join(parsed.Tokens, " ") + " "

	matches := make([]core.CandidateMatch, 0, len(archetypes))
	for _, arch := range archetypes {
		if !keywordHit(padded, arch.Keywords) {
			continue
		}
		monitor.ArchetypeConsidered(arch.ID)

		matched := scanItems(&arch, items)
		if matched.Total() < arch.MinItems {
			m.logger.Debug("archetype below item threshold",
				"archetype", arch.ID, "matched", matched.Total(), "min", arch.MinItems)
			monitor.ArchetypeBelowThreshold(arch.ID, matched.Total(), arch.MinItems)
			continue
		}

		score := m.weights.Score(&matched)
		monitor.ArchetypeScored(arch.ID, score, matched.Total())

		matches = append(matches, core.CandidateMatch{
			Archetype: arch,
			Items:     matched,
			Score:     score,
		})
	}

	// Stable sort keeps registration order for equal scores.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	monitor.Finish(matches)
	return matches
}

// keywordHit reports whether any archetype keyword or phrase appears in the
// normalized, space-padded query text.
func keywordHit(padded string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(padded, " "+keyword+" ") {
			return true
		}
	}
	return false
}

// scanItems collects the candidate items supporting an archetype, partitioned
// by the component category they would fill. An item matches when its tags or
// description contain a required synergy tag, or when it is one of the
// archetype's named exotics or mods. A matching item that fills no build
// component (legendary armor, CategoryOther) is excluded from the partition:
// it cannot be placed in a guide, so it counts toward neither the item
// threshold nor the score.
func scanItems(arch *core.BuildArchetype, items []core.CatalogItem) core.MatchedItems {
	var matched core.MatchedItems

	for _, item := range items {
		if !itemMatches(arch, &item) {
			continue
		}

		switch {
		case item.Tier == core.TierExotic && item.Category == core.CategoryArmor:
			matched.ExoticArmor = append(matched.ExoticArmor, item)
		case item.Tier == core.TierExotic && item.Category == core.CategoryWeapon:
			matched.ExoticWeapons = append(matched.ExoticWeapons, item)
		case item.Tier == core.TierLegendary && item.Category == core.CategoryWeapon:
			matched.LegendaryWeapons = append(matched.LegendaryWeapons, item)
		case item.Category == core.CategoryMod:
			matched.Mods = append(matched.Mods, item)
		case item.HasTag("aspect"):
			matched.Aspects = append(matched.Aspects, item)
		case item.HasTag("fragment"):
			matched.Fragments = append(matched.Fragments, item)
		case item.Category == core.CategorySubclass:
			matched.Abilities = append(matched.Abilities, item)
		}
	}

	return matched
}

func itemMatches(arch *core.BuildArchetype, item *core.CatalogItem) bool {
	description := strings.ToLower(item.Description)
	for _, tag := range arch.SynergyTags {
		if item.HasTag(tag) || strings.Contains(description, tag) {
			return true
		}
	}

	switch {
	case item.Tier == core.TierExotic:
		return nameListed(item.Name, arch.ExoticNames)
	case item.Category == core.CategoryMod:
		return nameListed(item.Name, arch.ModNames)
	}
	return false
}

func nameListed(name string, names []string) bool {
	for _, n := range names {
		if strings.EqualFold(name, n) {
			return true
		}
	}
	return false
}
