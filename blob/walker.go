package blob

import (
	"context"
	"fmt"
)

const (
	// DefaultWalkPageSize is the page size requested per listing call.
	DefaultWalkPageSize = 1000
)

// Walker exhaustively enumerates all objects under a prefix across multiple
// result pages. It is restartable from scratch only; no resume token is
// persisted between runs.
type Walker struct {
	lister   Lister
	pageSize int
}

// WalkerOption configures a Walker.
type WalkerOption func(*Walker)

// WithPageSize sets the page size requested from the underlying lister.
// Values < 1 keep the default.
func WithPageSize(size int) WalkerOption {
	return func(w *Walker) {
		if size >= 1 {
			w.pageSize = size
		}
	}
}

// NewWalker creates a walker over the given lister.
func NewWalker(lister Lister, opts ...WalkerOption) (*Walker, error) {
	if lister == nil {
		return nil, ErrListerRequired
	}

	w := &Walker{
		lister:   lister,
		pageSize: DefaultWalkPageSize,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Walk calls fn once for every object in bucket whose key starts with
// prefix, following continuation tokens until the listing is exhausted.
// No object is skipped or visited twice across page boundaries.
//
// A listing failure is returned as-is and aborts the walk; it is fatal for
// the caller's whole run. An error from fn also aborts the walk and is
// returned. Context cancellation is checked between pages.
func (w *Walker) Walk(ctx context.Context, bucket, prefix string, fn func(ObjectInfo) error) error {
	var token string
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		page, err := w.lister.List(ctx, bucket, prefix, ListOptions{
			PageToken: token,
			PageSize:  w.pageSize,
		})
		if err != nil {
			return fmt.Errorf("listing %s/%s: %w", bucket, prefix, err)
		}

		for _, obj := range page.Objects {
			if err := fn(obj); err != nil {
				return err
			}
		}

		token = page.NextToken
		if token == "" {
			return nil
		}
	}
}
