package recommend

import (
	"context"
	"testing"

	"github.com/poiesic/loadsmith/catalog"
	"github.com/poiesic/loadsmith/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecommender(t *testing.T, opts ...Option) *Recommender {
	t.Helper()

	indexer, err := catalog.NewIndexer()
	require.NoError(t, err)
	t.Cleanup(indexer.Release)

	cache, err := catalog.NewCache(indexer)
	require.NoError(t, err)

	recommender, err := NewRecommender(cache, opts...)
	require.NoError(t, err)
	return recommender
}

func TestNewRecommender(t *testing.T) {
	t.Run("nil cache", func(t *testing.T) {
		_, err := NewRecommender(nil)
		assert.ErrorIs(t, err, ErrCacheRequired)
	})

	t.Run("empty archetype list", func(t *testing.T) {
		indexer, err := catalog.NewIndexer()
		require.NoError(t, err)
		defer indexer.Release()
		cache, err := catalog.NewCache(indexer)
		require.NoError(t, err)

		_, err = NewRecommender(cache, WithArchetypes(nil))
		assert.ErrorIs(t, err, ErrNoArchetypes)
	})

	t.Run("nil matcher", func(t *testing.T) {
		indexer, err := catalog.NewIndexer()
		require.NoError(t, err)
		defer indexer.Release()
		cache, err := catalog.NewCache(indexer)
		require.NoError(t, err)

		_, err = NewRecommender(cache, WithMatcher(nil))
		assert.ErrorIs(t, err, ErrMatcherRequired)
	})
}

func TestRecommend_EmptyQuery(t *testing.T) {
	recommender := newTestRecommender(t)

	for _, text := range []string{"", "   ", "\n"} {
		_, err := recommender.Recommend(context.Background(), text, catalog.SampleRawRecords(), catalog.SampleVersion, nil)
		assert.ErrorIs(t, err, core.ErrEmptyQuery)
	}
}

func TestRecommend_GrenadeScenario(t *testing.T) {
	recommender := newTestRecommender(t)

	result, err := recommender.Recommend(context.Background(),
		"grenade spam titan build", catalog.SampleRawRecords(), catalog.SampleVersion, nil)
	require.NoError(t, err)

	assert.Equal(t, core.ClassTitan, result.Query.Class)
	require.NotEmpty(t, result.Builds)
	assert.Empty(t, result.FallbackItems)
	assert.Empty(t, result.Suggestions)

	top := result.Builds[0]
	assert.Equal(t, "Armamentarium Grenade Build", top.Name)
	assert.Equal(t, 100, top.Score)
	assert.Equal(t, "grenade", top.Focus)
	assert.NoError(t, core.ValidateCandidateBuild(&top))

	// The build is plain data: exotic armor is carried as refs, and every
	// guide slot is filled.
	assert.Len(t, top.Components.ExoticArmor, 2)
	assert.Equal(t, "Armamentarium", top.Guide.Armor.Chest)
	assert.Equal(t, "Gjallarhorn", top.Guide.Weapons.Power)
}

func TestRecommend_ClassFilter(t *testing.T) {
	recommender := newTestRecommender(t)
	ctx := context.Background()

	result, err := recommender.Recommend(ctx, "grenade spam build",
		catalog.SampleRawRecords(), catalog.SampleVersion,
		&QueryOptions{Class: core.ClassWarlock})
	require.NoError(t, err)
	require.NotEmpty(t, result.Builds)

	// The titan-locked exotics are filtered out, so the build anchors on
	// the archetype name and scores without the exotic term.
	top := result.Builds[0]
	assert.Equal(t, "Grenade Spam", top.Name)
	assert.Empty(t, top.Components.ExoticArmor)
	assert.Less(t, top.Score, 100)
}

func TestRecommend_ElementFilter(t *testing.T) {
	recommender := newTestRecommender(t)

	result, err := recommender.Recommend(context.Background(), "grenade build",
		catalog.SampleRawRecords(), catalog.SampleVersion,
		&QueryOptions{Element: core.ElementSolar})
	require.NoError(t, err)
	require.NotEmpty(t, result.Builds)

	// The arc aspect and fragment are excluded; element-less mods pass.
	top := result.Builds[0]
	assert.Empty(t, top.Components.Aspects)
	assert.Empty(t, top.Components.Fragments)
	assert.NotEmpty(t, top.Components.Mods)
}

func TestRecommend_CandidateItemsOverride(t *testing.T) {
	recommender := newTestRecommender(t)

	// An explicitly empty candidate set means nothing can match.
	result, err := recommender.Recommend(context.Background(), "grenade build",
		catalog.SampleRawRecords(), catalog.SampleVersion,
		&QueryOptions{CandidateItems: []core.CatalogItem{}})
	require.NoError(t, err)
	assert.Empty(t, result.Builds)
}

func TestRecommend_MaxBuilds(t *testing.T) {
	shared := core.BuildArchetype{
		Keywords:    []string{"grenade"},
		SynergyTags: []string{"grenade"},
		MinItems:    1,
		Focus:       "grenade",
		Template:    completeTemplate(),
	}
	first, second := shared, shared
	first.ID, first.Name = "first", "First"
	second.ID, second.Name = "second", "Second"

	recommender := newTestRecommender(t,
		WithArchetypes([]core.BuildArchetype{first, second}),
		WithMaxBuilds(1))

	result, err := recommender.Recommend(context.Background(), "grenade build",
		catalog.SampleRawRecords(), catalog.SampleVersion, nil)
	require.NoError(t, err)
	assert.Len(t, result.Builds, 1)
}

func TestRecommend_FallbackRanking(t *testing.T) {
	recommender := newTestRecommender(t)

	// No archetype keyword present, but the words overlap fixture items:
	// the result degrades to ranked item hits instead of builds.
	result, err := recommender.Recommend(context.Background(), "jolt arc targets",
		catalog.SampleRawRecords(), catalog.SampleVersion, nil)
	require.NoError(t, err)

	assert.Empty(t, result.Builds)
	require.NotEmpty(t, result.FallbackItems)
	assert.Equal(t, "Spark of Shock", result.FallbackItems[0].Item.Name)
	assert.NotEmpty(t, result.Suggestions)

	for i := 1; i < len(result.FallbackItems); i++ {
		assert.GreaterOrEqual(t, result.FallbackItems[i-1].Score, result.FallbackItems[i].Score)
	}
}

func TestRecommend_UnrecognizableQuery(t *testing.T) {
	recommender := newTestRecommender(t)

	result, err := recommender.Recommend(context.Background(), "xyz123",
		catalog.SampleRawRecords(), catalog.SampleVersion, nil)
	require.NoError(t, err)

	assert.Empty(t, result.Builds)
	assert.Empty(t, result.FallbackItems, "no token overlap means no fallback hits")
	require.NotEmpty(t, result.Suggestions)
	assert.Contains(t, result.Suggestions[0], "Describe what the build should do")
}

func completeTemplate() core.BuildTemplate {
	return core.BuildTemplate{
		Super:        "Any super",
		ClassAbility: "Any class ability",
		Movement:     "Any movement",
		Melee:        "Any melee",
		Aspects:      []string{"Any aspect"},
		Fragments:    []string{"Any fragment"},
		Kinetic:      "Any kinetic",
		Energy:       "Any energy",
		Power:        "Any heavy",
		Mods:         []string{"Any mod"},
		StatPriority: []string{"discipline"},
		Rotation:     []string{"Use abilities"},
		Tips:         []string{"Keep the loop running"},
	}
}
