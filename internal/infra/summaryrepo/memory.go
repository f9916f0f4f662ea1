package summaryrepo

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/yanqian/news-summarizer/internal/domain/summarizer"
)

// MemoryRepository is an in-memory Repository used for tests/dev.
type MemoryRepository struct {
	mu      sync.RWMutex
	records map[uuid.UUID]summarizer.Record
}

// NewMemoryRepository constructs a repo backed by memory.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{records: make(map[uuid.UUID]summarizer.Record)}
}

// Save implements summarizer.Repository.
func (r *MemoryRepository) Save(_ context.Context, record summarizer.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[record.ID] = record
	return nil
}

// Find implements summarizer.Repository.
func (r *MemoryRepository) Find(_ context.Context, id uuid.UUID) (summarizer.Record, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	record, ok := r.records[id]
	return record, ok, nil
}

// Recent returns the newest records first.
func (r *MemoryRepository) Recent(_ context.Context, limit int) ([]summarizer.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	items := make([]summarizer.Record, 0, len(r.records))
	for _, record := range r.records {
		items = append(items, record)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].ID.String() < items[j].ID.String()
		}
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

var _ summarizer.Repository = (*MemoryRepository)(nil)
