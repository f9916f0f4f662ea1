package summarycache

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/yanqian/news-summarizer/internal/domain/summarizer"
)

func TestMemoryCacheRoundTrip(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()
	resp := summarizer.Response{ID: uuid.New(), Summary: "Kept sentence."}

	require.NoError(t, cache.Set(ctx, "abc", resp, 0))

	got, ok, err := cache.Get(ctx, "abc")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, resp, got)

	_, ok, err = cache.Get(ctx, "missing")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMemoryCacheExpires(t *testing.T) {
	cache := NewMemoryCache()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "abc", summarizer.Response{Summary: "x"}, time.Minute))
	_, ok, _ := cache.Get(ctx, "abc")
	require.True(t, ok)

	now = now.Add(2 * time.Minute)
	_, ok, err := cache.Get(ctx, "abc")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestValkeyCacheKeys(t *testing.T) {
	require.Equal(t, "news-summarizer:summary:abc", NewValkeyCache(nil, "").entryKey("abc"))
	require.Equal(t, "digest:summary:abc", NewValkeyCache(nil, "digest").entryKey("abc"))
}
