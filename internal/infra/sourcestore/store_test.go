package sourcestore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	data := []byte("Original article text.")

	require.NoError(t, store.Put(ctx, "sources/a.txt", data))
	data[0] = 'X'

	got, ok, err := store.Get(ctx, "sources/a.txt")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "Original article text.", string(got))

	_, ok, err = store.Get(ctx, "sources/missing.txt")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSanitizeEndpoint(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "https://account.r2.cloudflarestorage.com/bucket", want: "account.r2.cloudflarestorage.com"},
		{in: "http://localhost:9000", want: "localhost:9000"},
		{in: " minio:9000 ", want: "minio:9000"},
		{in: "", want: ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, sanitizeEndpoint(tt.in))
		})
	}
}
