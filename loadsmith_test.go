// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package loadsmith

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/poiesic/loadsmith/catalog"
	"github.com/poiesic/loadsmith/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLibrary(t *testing.T) {
	t.Run("creates library with valid path", func(t *testing.T) {
		lib, err := NewLibrary(t.TempDir())
		require.NoError(t, err)
		require.NotNil(t, lib)
		defer lib.Close()

		assert.NotNil(t, lib.BuildRepository())
		assert.NotNil(t, lib.Cache())
		assert.NotNil(t, lib.Indexer())
	})

	t.Run("empty path opens in-memory", func(t *testing.T) {
		lib, err := NewLibrary("")
		require.NoError(t, err)
		require.NotNil(t, lib)
		defer lib.Close()
	})

	t.Run("error with invalid path", func(t *testing.T) {
		tmpFile := filepath.Join(t.TempDir(), "not_a_dir")
		err := os.WriteFile(tmpFile, []byte("x"), 0644)
		require.NoError(t, err)

		lib, err := NewLibrary(tmpFile)
		assert.Error(t, err)
		assert.Nil(t, lib)
	})
}

func TestLibrary_Close(t *testing.T) {
	lib, err := NewLibrary(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, lib.Close())
}

func TestLibrary_RecommendAndSave(t *testing.T) {
	lib, err := NewLibrary("")
	require.NoError(t, err)
	defer lib.Close()

	recommender, err := lib.NewRecommender()
	require.NoError(t, err)

	ctx := context.Background()
	result, err := recommender.Recommend(ctx, "grenade spam titan build",
		catalog.SampleRawRecords(), catalog.SampleVersion, nil)
	require.NoError(t, err)
	require.NotEmpty(t, result.Builds)

	saved := &core.SavedBuild{
		Query: "grenade spam titan build",
		Build: result.Builds[0],
	}
	added, err := lib.BuildRepository().AddBuilds(ctx, saved)
	require.NoError(t, err)
	require.Len(t, added, 1)

	loaded, err := lib.BuildRepository().GetBuild(ctx, added[0].Id)
	require.NoError(t, err)
	assert.Equal(t, result.Builds[0].Name, loaded.Build.Name)
	assert.Equal(t, result.Builds[0].Guide, loaded.Build.Guide)
}

func TestLibrary_FactoryMethods(t *testing.T) {
	lib, err := NewLibrary("", WithCacheSize(2), WithPoolSize(2))
	require.NoError(t, err)
	defer lib.Close()

	t.Run("can create recommender", func(t *testing.T) {
		recommender, err := lib.NewRecommender()
		require.NoError(t, err)
		require.NotNil(t, recommender)
	})

	t.Run("can create matcher", func(t *testing.T) {
		matcher, err := lib.NewMatcher()
		require.NoError(t, err)
		require.NotNil(t, matcher)
	})
}
