package blob

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pagedLister serves a fixed key set in lexicographic order, pageSize keys
// per page, using the next key as the continuation token.
type pagedLister struct {
	keys     []string
	listErr  error
	listCall int
}

func newPagedLister(keys ...string) *pagedLister {
	sorted := append([]string(nil), keys...)
	sort.Strings(sorted)
	return &pagedLister{keys: sorted}
}

func (l *pagedLister) List(_ context.Context, _, prefix string, opts ListOptions) (*ListPage, error) {
	l.listCall++
	if l.listErr != nil {
		return nil, l.listErr
	}

	var matched []string
	for _, k := range l.keys {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix && k >= opts.PageToken {
			matched = append(matched, k)
		}
	}

	size := opts.PageSize
	if size < 1 || size > len(matched) {
		size = len(matched)
	}

	page := &ListPage{}
	for _, k := range matched[:size] {
		page.Objects = append(page.Objects, ObjectInfo{Key: k, Size: int64(len(k))})
	}
	if len(matched) > size {
		page.NextToken = matched[size]
	}
	return page, nil
}

func TestWalkerVisitsEveryObjectAcrossPages(t *testing.T) {
	const total = 17
	keys := make([]string, 0, total)
	for i := 0; i < total; i++ {
		keys = append(keys, fmt.Sprintf("2025-09-01/topic/article_%02d.json", i))
	}
	lister := newPagedLister(keys...)

	// Page size 3 forces six pages for 17 objects.
	walker, err := NewWalker(lister, WithPageSize(3))
	require.NoError(t, err)

	seen := make(map[string]int)
	err = walker.Walk(context.Background(), "staging", "2025-09-01/", func(obj ObjectInfo) error {
		seen[obj.Key]++
		return nil
	})
	require.NoError(t, err)

	assert.Len(t, seen, total)
	for _, key := range keys {
		assert.Equal(t, 1, seen[key], "key %s visited exactly once", key)
	}
	assert.Greater(t, lister.listCall, 1, "walk must span multiple pages")
}

func TestWalkerPrefixScoping(t *testing.T) {
	lister := newPagedLister(
		"2025-09-01/inflation/a.json",
		"2025-09-01/inflation/b.json",
		"2025-09-02/inflation/c.json",
	)

	walker, err := NewWalker(lister)
	require.NoError(t, err)

	var keys []string
	err = walker.Walk(context.Background(), "staging", "2025-09-01/", func(obj ObjectInfo) error {
		keys = append(keys, obj.Key)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"2025-09-01/inflation/a.json", "2025-09-01/inflation/b.json"}, keys)
}

func TestWalkerEmptyPrefix(t *testing.T) {
	walker, err := NewWalker(newPagedLister())
	require.NoError(t, err)

	calls := 0
	err = walker.Walk(context.Background(), "staging", "2025-09-01/", func(ObjectInfo) error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Zero(t, calls)
}

func TestWalkerListErrorIsFatal(t *testing.T) {
	lister := newPagedLister("2025-09-01/inflation/a.json")
	lister.listErr = errors.New("listing unavailable")

	walker, err := NewWalker(lister)
	require.NoError(t, err)

	err = walker.Walk(context.Background(), "staging", "2025-09-01/", func(ObjectInfo) error {
		t.Fatal("fn must not be called when listing fails")
		return nil
	})
	assert.ErrorContains(t, err, "listing unavailable")
}

func TestWalkerCallbackErrorAborts(t *testing.T) {
	lister := newPagedLister(
		"2025-09-01/inflation/a.json",
		"2025-09-01/inflation/b.json",
	)

	walker, err := NewWalker(lister, WithPageSize(1))
	require.NoError(t, err)

	wantErr := errors.New("stop here")
	calls := 0
	err = walker.Walk(context.Background(), "staging", "2025-09-01/", func(ObjectInfo) error {
		calls++
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, 1, calls)
}

func TestWalkerContextCancellation(t *testing.T) {
	lister := newPagedLister("2025-09-01/inflation/a.json")

	walker, err := NewWalker(lister)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = walker.Walk(ctx, "staging", "2025-09-01/", func(ObjectInfo) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewWalkerRequiresLister(t *testing.T) {
	_, err := NewWalker(nil)
	assert.ErrorIs(t, err, ErrListerRequired)
}
