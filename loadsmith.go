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
	"log/slog"

	"github.com/poiesic/loadsmith/catalog"
	"github.com/poiesic/loadsmith/recommend"
	"github.com/poiesic/loadsmith/storage"
	"github.com/poiesic/loadsmith/storage/badger"
	"github.com/poiesic/loadsmith/synergy"
)

// Library bundles the catalog cache, the recommender, and saved-build
// storage behind a single handle.
type Library struct {
	backend   *badger.Backend
	buildRepo storage.BuildRepository
	indexer   *catalog.Indexer
	cache     *catalog.Cache
	logger    *slog.Logger
}

// LibraryOption configures a Library.
type LibraryOption func(*libraryOptions)

type libraryOptions struct {
	cacheSize int
	poolSize  int
}

// WithCacheSize sets how many catalog index versions are kept in memory.
func WithCacheSize(size int) LibraryOption {
	return func(o *libraryOptions) {
		o.cacheSize = size
	}
}

// WithPoolSize sets the indexer worker pool size.
func WithPoolSize(size int) LibraryOption {
	return func(o *libraryOptions) {
		o.poolSize = size
	}
}

// NewLibrary opens a library backed by the given storage path. An empty
// path opens an in-memory library.
func NewLibrary(filePath string, opts ...LibraryOption) (*Library, error) {
	options := &libraryOptions{}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, filePath == "")
	if err != nil {
		return nil, err
	}

	buildRepo, err := badger.NewBuildRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	var indexerOpts []catalog.Option
	if options.poolSize > 0 {
		indexerOpts = append(indexerOpts, catalog.WithPoolSize(options.poolSize))
	}
	indexer, err := catalog.NewIndexer(indexerOpts...)
	if err != nil {
		buildRepo.Close()
		backend.Close()
		return nil, err
	}

	var cacheOpts []catalog.CacheOption
	if options.cacheSize > 0 {
		cacheOpts = append(cacheOpts, catalog.WithCacheSize(options.cacheSize))
	}
	cache, err := catalog.NewCache(indexer, cacheOpts...)
	if err != nil {
		indexer.Release()
		buildRepo.Close()
		backend.Close()
		return nil, err
	}

	return &Library{
		backend:   backend,
		buildRepo: buildRepo,
		indexer:   indexer,
		cache:     cache,
		logger:    slog.Default(),
	}, nil
}

func (lib *Library) Close() error {
	lib.indexer.Release()

	if err := lib.buildRepo.Close(); err != nil {
		lib.logger.Error("error closing build repository", "err", err)
		return err
	}

	if err := lib.backend.Close(); err != nil {
		lib.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (lib *Library) BuildRepository() storage.BuildRepository {
	return lib.buildRepo
}

func (lib *Library) Cache() *catalog.Cache {
	return lib.cache
}

func (lib *Library) Indexer() *catalog.Indexer {
	return lib.indexer
}

func (lib *Library) NewRecommender(opts ...recommend.Option) (*recommend.Recommender, error) {
	return recommend.NewRecommender(lib.cache, opts...)
}

func (lib *Library) NewMatcher(opts ...synergy.Option) (*synergy.Matcher, error) {
	return synergy.NewMatcher(opts...)
}
