package catalog

import (
	"context"
	"log/slog"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/poiesic/loadsmith/core"
)

const defaultCacheSize = 4

// Cache memoizes indexer output keyed by catalog version and item count.
// Entries are replaced wholesale: a version mismatch is always a miss that
// triggers a rebuild, never a partial patch, so in-flight readers of a prior
// snapshot stay consistent while a newer rebuild supersedes it.
type Cache struct {
	indexer *Indexer
	entries *lru.Cache[core.ID, *Index]
	mu      sync.Mutex // serializes rebuilds, not reads
	logger  *slog.Logger
}

// CacheOption configures a Cache.
type CacheOption func(*Cache) error

// WithCacheSize sets how many catalog versions are retained.
// Default is 4.
func WithCacheSize(size int) CacheOption {
	return func(c *Cache) error {
		if size < 1 {
			size = 1
		}
		entries, err := lru.New[core.ID, *Index](size)
		if err != nil {
			return err
		}
		c.entries = entries
		return nil
	}
}

// WithCacheLogger sets a custom logger.
// Default is slog.Default().
func WithCacheLogger(logger *slog.Logger) CacheOption {
	return func(c *Cache) error {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
		return nil
	}
}

// NewCache creates a new index cache around the given indexer.
func NewCache(indexer *Indexer, opts ...CacheOption) (*Cache, error) {
	if indexer == nil {
		return nil, ErrIndexerRequired
	}

	entries, err := lru.New[core.ID, *Index](defaultCacheSize)
	if err != nil {
		return nil, err
	}

	c := &Cache{
		indexer: indexer,
		entries: entries,
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// GetOrBuild returns the cached index for the given catalog version, building
// it on a miss. The key covers version and item count, so a changed record
// set under the same nominal version still rebuilds.
func (c *Cache) GetOrBuild(ctx context.Context, records []core.RawItemRecord, version string) (*Index, error) {
	key := core.VersionKey(version, len(records))

	if index, ok := c.entries.Get(key); ok && index.Version() == version {
		return index, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Re-check under the lock: a concurrent caller may have just built it.
	if index, ok := c.entries.Get(key); ok && index.Version() == version {
		return index, nil
	}

	c.logger.Info("index cache miss, rebuilding", "version", version, "records", len(records))
	index, err := c.indexer.Build(ctx, records, version)
	if err != nil {
		return nil, err
	}

	c.entries.Add(key, index)
	return index, nil
}

// Invalidate clears all cached entries.
func (c *Cache) Invalidate() {
	c.entries.Purge()
}

// Len returns the number of cached catalog versions.
func (c *Cache) Len() int {
	return c.entries.Len()
}
