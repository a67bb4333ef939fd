package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, opts ...CacheOption) *Cache {
	t.Helper()

	indexer, err := NewIndexer()
	require.NoError(t, err)
	t.Cleanup(indexer.Release)

	cache, err := NewCache(indexer, opts...)
	require.NoError(t, err)
	return cache
}

func TestNewCache(t *testing.T) {
	t.Run("nil indexer", func(t *testing.T) {
		_, err := NewCache(nil)
		assert.ErrorIs(t, err, ErrIndexerRequired)
	})

	t.Run("valid configuration", func(t *testing.T) {
		cache := newTestCache(t, WithCacheSize(2))
		assert.NotNil(t, cache)
		assert.Equal(t, 0, cache.Len())
	})
}

func TestGetOrBuild_ReturnsSameInstance(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()
	records := SampleRawRecords()

	first, err := cache.GetOrBuild(ctx, records, SampleVersion)
	require.NoError(t, err)

	second, err := cache.GetOrBuild(ctx, records, SampleVersion)
	require.NoError(t, err)

	assert.Same(t, first, second, "repeat lookups must hit the cache")
	assert.Equal(t, 1, cache.Len())
}

func TestGetOrBuild_NewVersionRebuilds(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()
	records := SampleRawRecords()

	first, err := cache.GetOrBuild(ctx, records, "season.1")
	require.NoError(t, err)

	second, err := cache.GetOrBuild(ctx, records, "season.2")
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.Equal(t, "season.1", first.Version())
	assert.Equal(t, "season.2", second.Version())
	assert.Equal(t, 2, cache.Len())
}

func TestGetOrBuild_ChangedRecordSetRebuilds(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()
	records := SampleRawRecords()

	first, err := cache.GetOrBuild(ctx, records, SampleVersion)
	require.NoError(t, err)

	// Same nominal version, fewer records: the key covers item count, so
	// this is a miss.
	second, err := cache.GetOrBuild(ctx, records[:5], SampleVersion)
	require.NoError(t, err)

	assert.NotSame(t, first, second)
}

func TestGetOrBuild_PropagatesBuildErrors(t *testing.T) {
	cache := newTestCache(t)

	_, err := cache.GetOrBuild(context.Background(), nil, SampleVersion)
	assert.ErrorIs(t, err, ErrNoRecords)
	assert.Equal(t, 0, cache.Len())
}

func TestInvalidate(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()
	records := SampleRawRecords()

	first, err := cache.GetOrBuild(ctx, records, SampleVersion)
	require.NoError(t, err)
	require.Equal(t, 1, cache.Len())

	cache.Invalidate()
	assert.Equal(t, 0, cache.Len())

	second, err := cache.GetOrBuild(ctx, records, SampleVersion)
	require.NoError(t, err)
	assert.NotSame(t, first, second, "invalidation must force a rebuild")
}

func TestCache_EvictsOldestVersion(t *testing.T) {
	cache := newTestCache(t, WithCacheSize(2))
	ctx := context.Background()
	records := SampleRawRecords()

	_, err := cache.GetOrBuild(ctx, records, "v1")
	require.NoError(t, err)
	_, err = cache.GetOrBuild(ctx, records, "v2")
	require.NoError(t, err)
	_, err = cache.GetOrBuild(ctx, records, "v3")
	require.NoError(t, err)

	assert.Equal(t, 2, cache.Len())
}
