package ingest

import "errors"

var (
	// ErrStoreRequired is returned when an ingester is built without a store.
	ErrStoreRequired = errors.New("blob store required")

	// ErrSearcherRequired is returned when an ingester is built without a
	// search client.
	ErrSearcherRequired = errors.New("searcher required")

	// ErrBucketRequired is returned when no staging bucket is configured.
	ErrBucketRequired = errors.New("staging bucket required")

	// ErrNoTopics indicates an empty topic registry.
	ErrNoTopics = errors.New("no topics configured")

	// ErrEmptyQuery indicates a topic with an empty keyword query.
	ErrEmptyQuery = errors.New("empty keyword query")
)
