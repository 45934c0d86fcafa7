// Copyright 2025 Econolens
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


package badger

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
	"github.com/go-crypt/x/blake2b"

	"github.com/econolens/newsflow/blob"
)

const defaultListPageSize = 1000

// Ensure Store implements the interface.
var _ blob.Store = (*Store)(nil)

// Store is a BadgerDB-backed blob.Store. Buckets are key namespaces inside
// a single database; object bodies and their descriptors are stored under
// separate key prefixes so listings never read bodies.
type Store struct {
	db     *badger.DB
	logger *slog.Logger
}

// badgerLoggerAdapter adapts slog.Logger to badger.Logger interface.
type badgerLoggerAdapter struct {
	logger *slog.Logger
}

var _ badger.Logger = (*badgerLoggerAdapter)(nil)

func (bl *badgerLoggerAdapter) Errorf(msg string, items ...any) {
	bl.logger.Error(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Warningf(msg string, items ...any) {
	bl.logger.Warn(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Infof(msg string, items ...any) {
	bl.logger.Info(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Debugf(msg string, items ...any) {
	bl.logger.Debug(fmt.Sprintf(msg, items...))
}

// Open opens a BadgerDB-backed store at the specified path.
// Creates the directory if it doesn't exist.
func Open(filePath string, inMemory bool) (*Store, error) {
	var opts badger.Options

	if inMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		// Ensure directory exists
		info, err := os.Stat(filePath)
		if err != nil {
			if os.IsNotExist(err) {
				if err := os.MkdirAll(filePath, 0755); err != nil {
					return nil, err
				}
				info, err = os.Stat(filePath)
				if err != nil {
					return nil, err
				}
			} else {
				return nil, err
			}
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("%s is not a directory", filePath)
		}
		opts = badger.DefaultOptions(filePath)
	}

	opts.Logger = &badgerLoggerAdapter{logger: slog.Default()}
	opts.Compression = options.None

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Store{
		db:     db,
		logger: slog.Default().With("component", "badger-store"),
	}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// IsClosed returns true if the database is closed.
func (s *Store) IsClosed() bool {
	return s.db.IsClosed()
}

// List returns one page of object descriptors under prefix, in
// lexicographic key order. The continuation token is the first key of the
// following page.
func (s *Store) List(ctx context.Context, bucket, prefix string, opts blob.ListOptions) (*blob.ListPage, error) {
	if bucket == "" {
		return nil, blob.ErrEmptyKey
	}
	if s.db.IsClosed() {
		return nil, blob.ErrStoreClosed
	}
	if opts.PageToken != "" && !strings.HasPrefix(opts.PageToken, prefix) {
		return nil, fmt.Errorf("%w: %q outside prefix %q", blob.ErrInvalidPageToken, opts.PageToken, prefix)
	}

	size := opts.PageSize
	if size < 1 {
		size = defaultListPageSize
	}

	page := &blob.ListPage{}
	err := s.db.View(func(tx *badger.Txn) error {
		iterOpts := badger.DefaultIteratorOptions
		iterOpts.Prefix = makeMetaPrefix(bucket, prefix)
		iter := tx.NewIterator(iterOpts)
		defer iter.Close()

		if opts.PageToken != "" {
			iter.Seek(makeMetaKey(bucket, opts.PageToken))
		} else {
			iter.Rewind()
		}

		for ; iter.Valid(); iter.Next() {
			item := iter.Item()
			key := objectKeyFromMetaKey(bucket, item.KeyCopy(nil))

			if len(page.Objects) == size {
				page.NextToken = key
				return nil
			}

			var meta *objectMeta
			err := item.Value(func(val []byte) error {
				var err error
				meta, err = unmarshalObjectMeta(val)
				return err
			})
			if err != nil {
				return fmt.Errorf("decoding descriptor for %s: %w", key, err)
			}

			page.Objects = append(page.Objects, blob.ObjectInfo{
				Key:     key,
				Size:    meta.Size,
				ETag:    meta.ETag,
				ModTime: time.UnixMicro(meta.ModTimeMicro).UTC(),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return page, nil
}

// Get retrieves an object body.
func (s *Store) Get(ctx context.Context, bucket, key string) ([]byte, error) {
	if bucket == "" || key == "" {
		return nil, blob.ErrEmptyKey
	}
	if s.db.IsClosed() {
		return nil, blob.ErrStoreClosed
	}

	var body []byte
	err := s.db.View(func(tx *badger.Txn) error {
		item, err := tx.Get(makeDataKey(bucket, key))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("%s/%s: %w", bucket, key, blob.ErrNotFound)
			}
			return err
		}
		body, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, err
	}
	return body, nil
}

// Put stores an object body together with its descriptor in one
// transaction. Existing objects are overwritten.
func (s *Store) Put(ctx context.Context, bucket, key string, body []byte, contentType string) error {
	if bucket == "" || key == "" {
		return blob.ErrEmptyKey
	}
	if s.db.IsClosed() {
		return blob.ErrStoreClosed
	}

	meta := &objectMeta{
		ContentType:  contentType,
		ETag:         computeETag(body),
		Size:         int64(len(body)),
		ModTimeMicro: time.Now().UTC().UnixMicro(),
	}

	return s.db.Update(func(tx *badger.Txn) error {
		if err := tx.Set(makeDataKey(bucket, key), body); err != nil {
			return err
		}
		return tx.Set(makeMetaKey(bucket, key), marshalObjectMeta(meta))
	})
}

// computeETag returns a hex BLAKE2b digest of the body.
func computeETag(body []byte) string {
	h, _ := blake2b.New(16, nil)
	h.Write(body)
	return hex.EncodeToString(h.Sum(nil))
}
