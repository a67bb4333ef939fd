package catalog

import (
	"context"
	"log/slog"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/loadsmith/core"
)

const defaultBatchSize = 1000

// Indexer normalizes raw catalog records into an immutable Index.
// Classification happens in batches on a worker pool so indexing a large
// catalog does not monopolize the calling goroutine.
type Indexer struct {
	pool      *ants.Pool
	batchSize int
	logger    *slog.Logger
}

// Option configures an Indexer.
type Option func(*Indexer) error

// WithPoolSize sets the worker pool size for batch classification.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(ix *Indexer) error {
		if size < 1 {
			size = 1
		}

		if ix.pool != nil {
			ix.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		ix.pool = pool
		return nil
	}
}

// WithBatchSize sets the number of records classified per batch.
// Default is 1000.
func WithBatchSize(size int) Option {
	return func(ix *Indexer) error {
		if size < 1 {
			size = 1
		}
		ix.batchSize = size
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(ix *Indexer) error {
		if logger == nil {
			logger = slog.Default()
		}
		ix.logger = logger
		return nil
	}
}

// NewIndexer creates a new catalog indexer.
func NewIndexer(opts ...Option) (*Indexer, error) {
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	ix := &Indexer{
		pool:      pool,
		batchSize: defaultBatchSize,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(ix); err != nil {
			ix.Release()
			return nil, err
		}
	}

	return ix, nil
}

// Release releases the worker pool.
// The indexer should not be used after calling Release.
func (ix *Indexer) Release() {
	if ix.pool != nil {
		ix.pool.Release()
	}
}

// classified is the classification result for one accepted record.
type classified struct {
	item   core.CatalogItem
	tokens []string
}

// skipped is one rejected record with the reason it was dropped.
type skipped struct {
	hash   core.ItemHash
	reason string
}

// batchResult holds the outcome of classifying one batch.
type batchResult struct {
	accepted []classified
	skipped  []skipped
}

// Build indexes the given raw records into an immutable snapshot for the
// given catalog version.
func (ix *Indexer) Build(ctx context.Context, records []core.RawItemRecord, version string) (*Index, error) {
	return ix.BuildWithMonitor(ctx, records, version, nil)
}

// BuildWithMonitor indexes raw records with progress monitoring.
//
// Duplicate hashes keep the last-seen record. A malformed or rejected record
// is skipped and logged; it never aborts the pass. The returned index is
// deterministic for a given record set regardless of input order.
func (ix *Indexer) BuildWithMonitor(ctx context.Context, records []core.RawItemRecord, version string, monitor IndexMonitor) (*Index, error) {
	if version == "" {
		return nil, ErrEmptyVersion
	}
	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	// Deduplicate by hash, last-seen wins, then order by hash so batching
	// and bucket contents do not depend on input order.
	byHash := make(map[core.ItemHash]core.RawItemRecord, len(records))
	for _, record := range records {
		byHash[record.Hash] = record
	}
	hashes := make([]core.ItemHash, 0, len(byHash))
	for hash := range byHash {
		hashes = append(hashes, hash)
	}
	sort.Slice(hashes, func(i, j int) bool { return hashes[i] < hashes[j] })

	monitor.Start(version, len(hashes))

	// Classify in batches on the worker pool.
	batches := (len(hashes) + ix.batchSize - 1) / ix.batchSize
	results := make([]batchResult, batches)
	var wg sync.WaitGroup

	for b := 0; b < batches; b++ {
		start := b * ix.batchSize
		end := start + ix.batchSize
		if end > len(hashes) {
			end = len(hashes)
		}
		b, start, end := b, start, end

		wg.Add(1)
		err := ix.pool.Submit(func() {
			defer wg.Done()
			results[b] = classifyBatch(byHash, hashes[start:end])
		})
		if err != nil {
			wg.Done()
			return nil, err
		}
	}
	wg.Wait()

	// Merge batch results in order.
	index := newIndex(version)
	processed := 0
	for _, result := range results {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		for _, s := range result.skipped {
			ix.logger.Debug("skipping catalog record", "hash", uint32(s.hash), "reason", s.reason)
			monitor.RecordSkipped(uint32(s.hash), s.reason)
		}
		for _, c := range result.accepted {
			index.insert(c.item, c.tokens)
			if c.item.Tier == core.TierExotic {
				index.exoticNames = append(index.exoticNames, strings.ToLower(c.item.Name))
			}
		}

		processed += len(result.accepted) + len(result.skipped)
		monitor.BatchDone(processed, len(hashes))
	}

	index.sortHashes()

	ix.logger.Info("catalog index built",
		"version", version,
		"records", len(hashes),
		"accepted", index.Len(),
		"exotics", len(index.exotics),
		"mods", len(index.mods),
		"buildRelevant", len(index.relevant))

	monitor.Finish(index)
	return index, nil
}

// classifyBatch classifies one ordered slice of hashes.
func classifyBatch(byHash map[core.ItemHash]core.RawItemRecord, hashes []core.ItemHash) batchResult {
	var result batchResult
	for _, hash := range hashes {
		record := byHash[hash]
		item, tokens, reason := classify(&record)
		if reason != "" {
			result.skipped = append(result.skipped, skipped{hash: hash, reason: reason})
			continue
		}
		result.accepted = append(result.accepted, classified{item: item, tokens: tokens})
	}
	return result
}

// classify normalizes one raw record into a CatalogItem.
// A non-empty reason means the record is rejected.
func classify(record *core.RawItemRecord) (core.CatalogItem, []string, string) {
	if err := core.ValidateRawItemRecord(record); err != nil {
		return core.CatalogItem{}, nil, err.Error()
	}

	name := strings.TrimSpace(record.Name)
	if name == "" {
		return core.CatalogItem{}, nil, "blank name"
	}
	if record.Redacted {
		return core.CatalogItem{}, nil, "redacted"
	}
	lowerName := strings.ToLower(name)
	if strings.Contains(lowerName, "redacted") || strings.Contains(lowerName, "deprecated") ||
		containsWord(lowerName, "test") {
		return core.CatalogItem{}, nil, "placeholder name"
	}

	item := core.CatalogItem{
		Hash:            record.Hash,
		Name:            name,
		Description:     record.Description,
		Category:        typeCategories[record.TypeCode],
		Slot:            bucketSlots[record.BucketHash],
		Class:           classRestrictions[record.ClassCode],
		Element:         damageElements[record.DamageCode],
		Tier:            tierRarities[record.TierCode],
		TypeDisplayName: record.TypeDisplayName,
		Stats:           record.Stats,
	}

	item.Tags = deriveTags(&item)
	item.BuildRelevant = isBuildRelevant(&item)

	return item, searchTokens(&item), ""
}

// deriveTags unions the rarity, element, activity, role and category tags
// for an item. The result is sorted and deduplicated.
func deriveTags(item *core.CatalogItem) []string {
	tags := make(map[string]bool)

	if item.Tier == core.TierExotic || item.Tier == core.TierLegendary {
		tags[item.Tier.String()] = true
	}
	if item.Element != core.ElementNone && item.Element != core.ElementKinetic {
		tags[item.Element.String()] = true
	}

	text := strings.ToLower(item.Name + " " + item.Description)
	for substring, tag := range activityTags {
		if strings.Contains(text, substring) {
			tags[tag] = true
		}
	}

	switch item.Category {
	case core.CategoryArmor:
		if role := dominantStat(item.Stats); role != "" {
			tags[role] = true
		}
	case core.CategoryWeapon:
		if sub := strings.ToLower(item.TypeDisplayName); sub != "" {
			tags[sub] = true
		}
	}

	if strings.Contains(text, "aspect") {
		tags["aspect"] = true
	}
	if strings.Contains(text, "fragment") {
		tags["fragment"] = true
	}

	tags[item.Category.String()] = true

	sorted := make([]string, 0, len(tags))
	for tag := range tags {
		sorted = append(sorted, tag)
	}
	sort.Strings(sorted)
	return sorted
}

// dominantStat returns the name of the highest named stat, or "" when no
// named stat is present. Ties break on stat hash order for determinism.
func dominantStat(stats map[uint32]int) string {
	var bestHash uint32
	bestValue := -1
	for hash, value := range stats {
		name := statNames[hash]
		if name == "" {
			continue
		}
		if value > bestValue || (value == bestValue && hash < bestHash) {
			bestHash = hash
			bestValue = value
		}
	}
	if bestValue < 0 {
		return ""
	}
	return statNames[bestHash]
}

// isBuildRelevant reports whether an item can contribute to a build:
// exotics, subclass components, mods, and aspect/fragment items.
func isBuildRelevant(item *core.CatalogItem) bool {
	if item.Tier == core.TierExotic {
		return true
	}
	if item.Category == core.CategorySubclass || item.Category == core.CategoryMod {
		return true
	}
	return item.HasTag("aspect") || item.HasTag("fragment")
}

// searchTokens returns the sorted, deduplicated token set of an item's name,
// description and tags.
func searchTokens(item *core.CatalogItem) []string {
	set := make(map[string]bool)
	for _, token := range tokenize(item.Name + " " + item.Description) {
		set[token] = true
	}
	for _, tag := range item.Tags {
		for _, token := range tokenize(tag) {
			set[token] = true
		}
	}

	tokens := make([]string, 0, len(set))
	for token := range set {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	return tokens
}
