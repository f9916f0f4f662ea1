package summarizer

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Cache keeps recent responses keyed by the digest of their input.
type Cache interface {
	Get(ctx context.Context, digest string) (Response, bool, error)
	Set(ctx context.Context, digest string, resp Response, ttl time.Duration) error
}

// Repository persists generated summaries.
type Repository interface {
	Save(ctx context.Context, record Record) error
	Find(ctx context.Context, id uuid.UUID) (Record, bool, error)
	Recent(ctx context.Context, limit int) ([]Record, error)
}

// SourceStore archives the original text a summary was built from.
type SourceStore interface {
	Put(ctx context.Context, key string, data []byte) error
	Get(ctx context.Context, key string) ([]byte, bool, error)
}
