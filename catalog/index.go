package catalog

import (
	"sort"

	"github.com/poiesic/loadsmith/core"
)

// Index is an immutable snapshot of one catalog version: classified items,
// category buckets, and a token search index. An Index is built once by the
// Indexer and never mutated, so concurrent readers need no locking; a new
// catalog version produces a whole new Index that supersedes this one.
type Index struct {
	version   string
	items     map[core.ItemHash]core.CatalogItem
	bySlot    map[core.Slot][]core.ItemHash
	byClass   map[core.GuardianClass][]core.ItemHash
	byElement map[core.Element][]core.ItemHash
	byTier    map[core.Tier][]core.ItemHash
	exotics   []core.ItemHash
	mods      []core.ItemHash
	relevant  []core.ItemHash
	search    map[string][]core.ItemHash
	// Sorted lower-cased exotic names, consumed by the query parser so
	// exotic references track whatever catalog version is loaded.
	exoticNames []string
}

// Version returns the catalog version this index was built from.
func (x *Index) Version() string {
	return x.version
}

// Len returns the number of accepted items in the index.
func (x *Index) Len() int {
	return len(x.items)
}

// Item returns the item with the given hash, if present.
func (x *Index) Item(hash core.ItemHash) (core.CatalogItem, bool) {
	item, ok := x.items[hash]
	return item, ok
}

func (x *Index) materialize(hashes []core.ItemHash) []core.CatalogItem {
	items := make([]core.CatalogItem, 0, len(hashes))
	for _, hash := range hashes {
		items = append(items, x.items[hash])
	}
	return items
}

// BySlot returns the items occupying the given slot, ordered by hash.
func (x *Index) BySlot(slot core.Slot) []core.CatalogItem {
	return x.materialize(x.bySlot[slot])
}

// ByClass returns the items restricted to the given class, ordered by hash.
// ClassAny returns the class-agnostic bucket, not the union.
func (x *Index) ByClass(class core.GuardianClass) []core.CatalogItem {
	return x.materialize(x.byClass[class])
}

// ByElement returns the items of the given element, ordered by hash.
func (x *Index) ByElement(element core.Element) []core.CatalogItem {
	return x.materialize(x.byElement[element])
}

// ByTier returns the items of the given rarity tier, ordered by hash.
func (x *Index) ByTier(tier core.Tier) []core.CatalogItem {
	return x.materialize(x.byTier[tier])
}

// Exotics returns all exotic items, ordered by hash.
func (x *Index) Exotics() []core.CatalogItem {
	return x.materialize(x.exotics)
}

// Mods returns all mod items, ordered by hash.
func (x *Index) Mods() []core.CatalogItem {
	return x.materialize(x.mods)
}

// BuildRelevant returns the build-relevant subset, ordered by hash. This is
// the default candidate set for archetype matching.
func (x *Index) BuildRelevant() []core.CatalogItem {
	return x.materialize(x.relevant)
}

// SearchToken returns the items whose name, description or tags contain the
// given lower-cased token, ordered by hash.
func (x *Index) SearchToken(token string) []core.CatalogItem {
	return x.materialize(x.search[token])
}

// ExoticNames returns the sorted lower-cased names of all exotic items.
func (x *Index) ExoticNames() []string {
	return x.exoticNames
}

// sortHashes orders every bucket by hash so all index accessors are
// deterministic regardless of input order.
func (x *Index) sortHashes() {
	buckets := make([][]core.ItemHash, 0, 8)
	for _, b := range x.bySlot {
		buckets = append(buckets, b)
	}
	for _, b := range x.byClass {
		buckets = append(buckets, b)
	}
	for _, b := range x.byElement {
		buckets = append(buckets, b)
	}
	for _, b := range x.byTier {
		buckets = append(buckets, b)
	}
	for _, b := range x.search {
		buckets = append(buckets, b)
	}
	buckets = append(buckets, x.exotics, x.mods, x.relevant)

	for _, bucket := range buckets {
		sort.Slice(bucket, func(i, j int) bool { return bucket[i] < bucket[j] })
	}
	sort.Strings(x.exoticNames)
}

func newIndex(version string) *Index {
	return &Index{
		version:   version,
		items:     make(map[core.ItemHash]core.CatalogItem),
		bySlot:    make(map[core.Slot][]core.ItemHash),
		byClass:   make(map[core.GuardianClass][]core.ItemHash),
		byElement: make(map[core.Element][]core.ItemHash),
		byTier:    make(map[core.Tier][]core.ItemHash),
		search:    make(map[string][]core.ItemHash),
	}
}

// insert places a classified item into every bucket it belongs to.
// The caller guarantees the hash is not already present.
func (x *Index) insert(item core.CatalogItem, tokens []string) {
	x.items[item.Hash] = item

	if item.Slot != core.SlotNone {
		x.bySlot[item.Slot] = append(x.bySlot[item.Slot], item.Hash)
	}
	x.byClass[item.Class] = append(x.byClass[item.Class], item.Hash)
	if item.Element != core.ElementNone {
		x.byElement[item.Element] = append(x.byElement[item.Element], item.Hash)
	}
	x.byTier[item.Tier] = append(x.byTier[item.Tier], item.Hash)

	if item.Tier == core.TierExotic {
		x.exotics = append(x.exotics, item.Hash)
	}
	if item.Category == core.CategoryMod {
		x.mods = append(x.mods, item.Hash)
	}
	if item.BuildRelevant {
		x.relevant = append(x.relevant, item.Hash)
	}

	for _, token := range tokens {
		x.search[token] = append(x.search[token], item.Hash)
	}
}
