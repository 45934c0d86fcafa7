package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/econolens/newsflow/blob"
)

// Ensure Store implements the interface.
var _ blob.Store = (*Store)(nil)

const defaultPageSize = 1000

type entry struct {
	body        []byte
	contentType string
	modTime     time.Time
}

// Store is an in-memory implementation of blob.Store for tests.
// It allows failure injection via function fields, in the same style as the
// ai/mock package.
type Store struct {
	mu      sync.RWMutex
	buckets map[string]map[string]entry

	// GetErr is consulted by Get if set; a non-nil return is surfaced
	// to the caller instead of the stored object.
	GetErr func(bucket, key string) error

	// PutErr is consulted by Put if set; a non-nil return fails the write
	// and leaves the store unchanged.
	PutErr func(bucket, key string) error

	// ListErr is returned by List if non-nil. Listing failures are fatal
	// for a pipeline run, so tests set this to exercise that path.
	ListErr error

	getCalls  int
	putCalls  int
	listCalls int
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		buckets: make(map[string]map[string]entry),
	}
}

// List returns one lexicographically ordered page of objects under prefix.
func (s *Store) List(_ context.Context, bucket, prefix string, opts blob.ListOptions) (*blob.ListPage, error) {
	s.mu.Lock()
	s.listCalls++
	s.mu.Unlock()

	if s.ListErr != nil {
		return nil, s.ListErr
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var keys []string
	for key := range s.buckets[bucket] {
		if strings.HasPrefix(key, prefix) && key >= opts.PageToken {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	size := opts.PageSize
	if size < 1 {
		size = defaultPageSize
	}

	page := &blob.ListPage{}
	for i, key := range keys {
		if i == size {
			page.NextToken = key
			break
		}
		e := s.buckets[bucket][key]
		page.Objects = append(page.Objects, blob.ObjectInfo{
			Key:     key,
			Size:    int64(len(e.body)),
			ModTime: e.modTime,
		})
	}
	return page, nil
}

// Get retrieves an object body.
func (s *Store) Get(_ context.Context, bucket, key string) ([]byte, error) {
	s.mu.Lock()
	s.getCalls++
	s.mu.Unlock()

	if s.GetErr != nil {
		if err := s.GetErr(bucket, key); err != nil {
			return nil, err
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.buckets[bucket][key]
	if !ok {
		return nil, blob.ErrNotFound
	}
	body := make([]byte, len(e.body))
	copy(body, e.body)
	return body, nil
}

// Put stores or overwrites an object.
func (s *Store) Put(_ context.Context, bucket, key string, body []byte, contentType string) error {
	if bucket == "" || key == "" {
		return blob.ErrEmptyKey
	}

	s.mu.Lock()
	s.putCalls++
	s.mu.Unlock()

	if s.PutErr != nil {
		if err := s.PutErr(bucket, key); err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.buckets[bucket] == nil {
		s.buckets[bucket] = make(map[string]entry)
	}
	stored := make([]byte, len(body))
	copy(stored, body)
	s.buckets[bucket][key] = entry{
		body:        stored,
		contentType: contentType,
		modTime:     time.Now().UTC(),
	}
	return nil
}

// Close is a no-op for the in-memory store.
func (s *Store) Close() error {
	return nil
}

// Object returns the stored body and content type for test assertions.
// The second return is false if the object doesn't exist.
func (s *Store) Object(bucket, key string) ([]byte, string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.buckets[bucket][key]
	if !ok {
		return nil, "", false
	}
	return e.body, e.contentType, true
}

// Keys returns all keys in a bucket, sorted, for test assertions.
func (s *Store) Keys(bucket string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var keys []string
	for key := range s.buckets[bucket] {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// GetCalls returns the number of Get invocations.
func (s *Store) GetCalls() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getCalls
}

// PutCalls returns the number of Put invocations.
func (s *Store) PutCalls() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.putCalls
}
