package badger

import (
	"context"
	"fmt"
	"testing"

	"github.com/econolens/newsflow/blob"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewMemoryStore()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestPutGetRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	body := []byte(`{"title":"Fed raises rates"}`)
	require.NoError(t, store.Put(ctx, "staging", "2025-09-01/inflation/fed_hike.json", body, blob.ContentTypeJSON))

	got, err := store.Get(ctx, "staging", "2025-09-01/inflation/fed_hike.json")
	require.NoError(t, err)
	assert.Equal(t, body, got)
}

func TestGetMissingObject(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get(context.Background(), "staging", "missing.json")
	assert.ErrorIs(t, err, blob.ErrNotFound)
}

func TestPutEmptyKeyRejected(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	assert.ErrorIs(t, store.Put(ctx, "", "k", []byte("x"), blob.ContentTypeText), blob.ErrEmptyKey)
	assert.ErrorIs(t, store.Put(ctx, "b", "", []byte("x"), blob.ContentTypeText), blob.ErrEmptyKey)
}

func TestPutOverwriteIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	body := []byte("extracted article text")
	require.NoError(t, store.Put(ctx, "enriched", "2025-09-01/original/inflation/a.txt", body, blob.ContentTypeText))

	first, err := store.List(ctx, "enriched", "2025-09-01/", blob.ListOptions{})
	require.NoError(t, err)
	require.Len(t, first.Objects, 1)

	require.NoError(t, store.Put(ctx, "enriched", "2025-09-01/original/inflation/a.txt", body, blob.ContentTypeText))

	second, err := store.List(ctx, "enriched", "2025-09-01/", blob.ListOptions{})
	require.NoError(t, err)
	require.Len(t, second.Objects, 1)

	// Same bytes, same ETag.
	assert.Equal(t, first.Objects[0].ETag, second.Objects[0].ETag)
	assert.Equal(t, first.Objects[0].Size, second.Objects[0].Size)
}

func TestListPaginationCoversAllObjects(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	const total = 13
	want := make([]string, 0, total)
	for i := 0; i < total; i++ {
		key := fmt.Sprintf("2025-09-01/topic/article_%02d.json", i)
		want = append(want, key)
		require.NoError(t, store.Put(ctx, "staging", key, []byte("body"), blob.ContentTypeJSON))
	}
	// An object outside the prefix must not appear.
	require.NoError(t, store.Put(ctx, "staging", "2025-09-02/topic/other.json", []byte("body"), blob.ContentTypeJSON))

	var got []string
	var token string
	pages := 0
	for {
		page, err := store.List(ctx, "staging", "2025-09-01/", blob.ListOptions{PageToken: token, PageSize: 5})
		require.NoError(t, err)
		pages++
		for _, obj := range page.Objects {
			got = append(got, obj.Key)
			assert.Equal(t, int64(4), obj.Size)
			assert.NotEmpty(t, obj.ETag)
		}
		token = page.NextToken
		if token == "" {
			break
		}
	}

	assert.Equal(t, want, got)
	assert.Equal(t, 3, pages)
}

func TestListBucketIsolation(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "staging", "2025-09-01/a.json", []byte("x"), blob.ContentTypeJSON))
	require.NoError(t, store.Put(ctx, "enriched", "2025-09-01/b.json", []byte("y"), blob.ContentTypeJSON))

	page, err := store.List(ctx, "staging", "", blob.ListOptions{})
	require.NoError(t, err)
	require.Len(t, page.Objects, 1)
	assert.Equal(t, "2025-09-01/a.json", page.Objects[0].Key)
}

func TestListInvalidPageToken(t *testing.T) {
	store := newTestStore(t)

	_, err := store.List(context.Background(), "staging", "2025-09-01/", blob.ListOptions{
		PageToken: "2025-10-01/outside.json",
	})
	assert.ErrorIs(t, err, blob.ErrInvalidPageToken)
}

func TestWalkerOverBadgerStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	const total = 7
	for i := 0; i < total; i++ {
		key := fmt.Sprintf("2025-09-01/corporate/m_%d.json", i)
		require.NoError(t, store.Put(ctx, "staging", key, []byte("body"), blob.ContentTypeJSON))
	}

	walker, err := blob.NewWalker(store, blob.WithPageSize(3))
	require.NoError(t, err)

	seen := make(map[string]bool)
	err = walker.Walk(ctx, "staging", "2025-09-01/", func(obj blob.ObjectInfo) error {
		require.False(t, seen[obj.Key], "duplicate key %s", obj.Key)
		seen[obj.Key] = true
		return nil
	})
	require.NoError(t, err)
	assert.Len(t, seen, total)
}

func TestObjectMetaRoundTrip(t *testing.T) {
	meta := &objectMeta{
		ContentType:  blob.ContentTypeText,
		ETag:         "abcdef0123456789",
		Size:         1024,
		ModTimeMicro: 1756684800000000,
	}

	decoded, err := unmarshalObjectMeta(marshalObjectMeta(meta))
	require.NoError(t, err)
	assert.Equal(t, meta, decoded)
}

func TestComputeETagDeterministic(t *testing.T) {
	a := computeETag([]byte("same bytes"))
	b := computeETag([]byte("same bytes"))
	c := computeETag([]byte("other bytes"))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 32)
}
