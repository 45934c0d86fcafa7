package blob

import "context"

// Lister enumerates objects under a key prefix, one page at a time.
// Implementations must be thread-safe.
type Lister interface {
	// List returns one page of objects in bucket whose keys start with
	// prefix, in lexicographic key order. A non-empty opts.PageToken resumes
	// from a previous page's NextToken. A page with an empty NextToken is
	// the last one.
	List(ctx context.Context, bucket, prefix string, opts ListOptions) (*ListPage, error)
}

// Store provides the blob operations the pipeline depends on.
// Implementations must be thread-safe and support concurrent access.
type Store interface {
	Lister

	// Get retrieves the body of the object at key.
	// Returns ErrNotFound if the object doesn't exist.
	Get(ctx context.Context, bucket, key string) ([]byte, error)

	// Put stores body at key with the given content type, overwriting any
	// existing object. Overwrites with identical bytes are how re-runs stay
	// idempotent.
	Put(ctx context.Context, bucket, key string, body []byte, contentType string) error

	// Close closes the store and releases resources.
	Close() error
}
