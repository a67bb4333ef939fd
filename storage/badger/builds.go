package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/loadsmith/core"
	"github.com/poiesic/loadsmith/storage"
)

// BuildRepository implements storage.BuildRepository for BadgerDB.
type BuildRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.BuildRepository = (*BuildRepository)(nil)

// NewBuildRepository creates a new BuildRepository.
func NewBuildRepository(backend *Backend) (*BuildRepository, error) {
	idSeq, err := backend.GetSequence(buildIDSeq)
	if err != nil {
		return nil, err
	}

	return &BuildRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *BuildRepository) Close() error {
	return r.idSeq.Release()
}

// WithTransaction delegates to the backend.
func (r *BuildRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddBuilds adds one or more saved builds to storage.
// Builds are validated before anything is written.
func (r *BuildRepository) AddBuilds(ctx context.Context, builds ...*core.SavedBuild) ([]*core.SavedBuild, error) {
	for _, build := range builds {
		if err := core.ValidateSavedBuild(build); err != nil {
			return nil, err
		}
	}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, build := range builds {
			nextID, err := r.idSeq.Next()
			if err != nil {
				return err
			}
			// BadgerDB sequences can return 0 on first call, so we skip it
			if nextID == 0 {
				nextID, err = r.idSeq.Next()
				if err != nil {
					return err
				}
			}
			build.Id = core.ID(nextID)

			build.InsertedAt = time.Now().UTC()
			build.UpdatedAt = build.InsertedAt

			key := makeBuildKey(build.Id)
			if err := tx.Set(key, storage.MarshalSavedBuild(build)); err != nil {
				return err
			}

			dateKey := makeBuildDateKey(build.InsertedAt, build.Id)
			if err := tx.Set(dateKey, storage.MarshalID(build.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return builds, err
}

// UpdateBuilds updates existing saved builds.
func (r *BuildRepository) UpdateBuilds(ctx context.Context, builds ...*core.SavedBuild) ([]*core.SavedBuild, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, build := range builds {
			key := makeBuildKey(build.Id)

			old, err := readBuild(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return storage.ErrNotFound
			}

			build.InsertedAt = old.InsertedAt
			build.UpdatedAt = time.Now().UTC()

			if err := tx.Set(key, storage.MarshalSavedBuild(build)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return builds, err
}

// DeleteBuilds removes saved builds by their IDs.
func (r *BuildRepository) DeleteBuilds(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeBuildKey(id)

			build, err := readBuild(tx, key)
			if err != nil {
				return err
			}
			if build == nil {
				return storage.ErrNotFound
			}

			if err := tx.Delete(key); err != nil {
				return err
			}
			if err := tx.Delete(makeBuildDateKey(build.InsertedAt, build.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetBuild retrieves a single saved build by ID.
func (r *BuildRepository) GetBuild(ctx context.Context, id core.ID) (*core.SavedBuild, error) {
	var result *core.SavedBuild
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		build, err := readBuild(tx, makeBuildKey(id))
		if err != nil {
			return err
		}
		if build == nil {
			return storage.ErrNotFound
		}
		result = build
		return nil
	}, false)
	return result, err
}

// GetBuilds retrieves multiple saved builds by their IDs.
// Missing builds are skipped without error.
func (r *BuildRepository) GetBuilds(ctx context.Context, ids ...core.ID) ([]*core.SavedBuild, error) {
	results := make([]*core.SavedBuild, 0, len(ids))
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			build, err := readBuild(tx, makeBuildKey(id))
			if err != nil {
				return err
			}
			if build != nil {
				results = append(results, build)
			}
		}
		return nil
	}, false)
	return results, err
}

// GetRecentBuilds retrieves the N most recently saved builds, most recent
// first, walking the date index backwards.
func (r *BuildRepository) GetRecentBuilds(ctx context.Context, limit int) ([]*core.SavedBuild, error) {
	if limit <= 0 {
		return []*core.SavedBuild{}, nil
	}

	results := make([]*core.SavedBuild, 0, limit)
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(buildDatePrefix + ":")
		opts.Reverse = true
		iter := tx.NewIterator(opts)
		defer iter.Close()

		// Reverse iteration needs a seek key past the end of the prefix range.
		seek := append([]byte(buildDatePrefix+":"), 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff)

		for iter.Seek(seek); iter.Valid() && len(results) < limit; iter.Next() {
			var id core.ID
			err := iter.Item().Value(func(val []byte) error {
				var err error
				id, err = storage.UnmarshalID(val)
				return err
			})
			if err != nil {
				return err
			}

			build, err := readBuild(tx, makeBuildKey(id))
			if err != nil {
				return err
			}
			if build != nil {
				results = append(results, build)
			}
		}
		return nil
	}, false)

	return results, err
}

// readBuild reads a saved build from the transaction.
// Returns nil without error when the key does not exist.
func readBuild(tx *badger.Txn, key []byte) (*core.SavedBuild, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var build *core.SavedBuild
	err = item.Value(func(val []byte) error {
		var err error
		build, err = storage.UnmarshalSavedBuild(val)
		return err
	})
	return build, err
}
