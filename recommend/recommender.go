package recommend

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/poiesic/loadsmith/archetype"
	"github.com/poiesic/loadsmith/catalog"
	"github.com/poiesic/loadsmith/core"
	"github.com/poiesic/loadsmith/guide"
	"github.com/poiesic/loadsmith/query"
	"github.com/poiesic/loadsmith/synergy"
)

const defaultMaxBuilds = 5

// Recommender orchestrates the full query path: cached catalog index, query
// parsing, archetype matching, and build assembly. When no archetype passes
// its threshold it degrades to a ranked item-level fallback rather than an
// error.
type Recommender struct {
	cache      *catalog.Cache
	matcher    *synergy.Matcher
	archetypes []core.BuildArchetype
	maxBuilds  int
	logger     *slog.Logger
}

// Option configures a Recommender.
type Option func(*Recommender) error

// WithArchetypes replaces the default archetype registry.
func WithArchetypes(archetypes []core.BuildArchetype) Option {
	return func(r *Recommender) error {
		if len(archetypes) == 0 {
			return ErrNoArchetypes
		}
		r.archetypes = archetypes
		return nil
	}
}

// WithMatcher sets a custom synergy matcher.
// Default is synergy.NewMatcher() with default weights.
func WithMatcher(matcher *synergy.Matcher) Option {
	return func(r *Recommender) error {
		if matcher == nil {
			return ErrMatcherRequired
		}
		r.matcher = matcher
		return nil
	}
}

// WithMaxBuilds caps how many builds a query returns.
// Default is 5.
func WithMaxBuilds(max int) Option {
	return func(r *Recommender) error {
		if max < 1 {
			max = 1
		}
		r.maxBuilds = max
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Recommender) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// NewRecommender creates a recommender around an index cache.
func NewRecommender(cache *catalog.Cache, opts ...Option) (*Recommender, error) {
	if cache == nil {
		return nil, ErrCacheRequired
	}

	matcher, err := synergy.NewMatcher()
	if err != nil {
		return nil, err
	}

	r := &Recommender{
		cache:      cache,
		matcher:    matcher,
		archetypes: archetype.Default(),
		maxBuilds:  defaultMaxBuilds,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// QueryOptions restricts and filters one recommendation request.
type QueryOptions struct {
	// Class keeps only items usable by the given class. ClassAny keeps all.
	Class core.GuardianClass
	// Element keeps only items of the given element (element-less items
	// such as mods always pass). ElementNone keeps all.
	Element core.Element
	// CandidateItems replaces the catalog's build-relevant subset as the
	// matching candidate set, e.g. only items the caller owns.
	CandidateItems []core.CatalogItem
}

// RankedItem is one item-level fallback hit.
type RankedItem struct {
	Item  core.ItemRef
	Score int
}

// Result is the outcome of one recommendation query. Either Builds is
// populated, or FallbackItems and Suggestions describe the closest
// item-level hits and how to broaden the query. All fields are plain data
// with no references back into the catalog index.
type Result struct {
	Query         core.ParsedQuery
	Builds        []core.CandidateBuild
	FallbackItems []RankedItem
	Suggestions   []string
}

// Recommend answers one free-text loadout query against the given catalog
// snapshot. Empty query text fails fast; an empty result set does not.
func (r *Recommender) Recommend(ctx context.Context, text string, records []core.RawItemRecord, version string, opts *QueryOptions) (*Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: query text is blank", core.ErrEmptyQuery)
	}
	if opts == nil {
		opts = &QueryOptions{}
	}

	index, err := r.cache.GetOrBuild(ctx, records, version)
	if err != nil {
		return nil, err
	}

	parser, err := query.NewParser(index)
	if err != nil {
		return nil, err
	}
	parsed := parser.Parse(text)

	candidates := opts.CandidateItems
	if candidates == nil {
		candidates = index.BuildRelevant()
	}
	candidates = filterItems(candidates, opts.Class, opts.Element)

	matches := r.matcher.Match(parsed, candidates, r.archetypes)

	result := &Result{Query: parsed}
	if len(matches) > 0 {
		if len(matches) > r.maxBuilds {
			matches = matches[:r.maxBuilds]
		}
		for _, match := range matches {
			result.Builds = append(result.Builds, guide.Assemble(match))
		}
		r.logger.Debug("recommendation produced builds",
			"query", text, "builds", len(result.Builds), "confidence", parsed.Confidence)
		return result, nil
	}

	result.FallbackItems = rankFallback(parsed, candidates)
	result.Suggestions = broadeningSuggestions(&parsed)
	r.logger.Debug("no archetype passed threshold, item-level fallback",
		"query", text, "items", len(result.FallbackItems))
	return result, nil
}

// filterItems applies the optional class and element filters. Class-agnostic
// and element-less items always pass their respective filter.
func filterItems(items []core.CatalogItem, class core.GuardianClass, element core.Element) []core.CatalogItem {
	if class == core.ClassAny && element == core.ElementNone {
		return items
	}

	filtered := make([]core.CatalogItem, 0, len(items))
	for _, item := range items {
		if class != core.ClassAny && item.Class != core.ClassAny && item.Class != class {
			continue
		}
		if element != core.ElementNone && item.Element != core.ElementNone && item.Element != element {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}
