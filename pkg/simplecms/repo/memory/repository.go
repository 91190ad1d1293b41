// Package memory provides an in-memory simplecms.Repository, suitable for
// tests and single-process hosts.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/tendant/simple-cms/pkg/simplecms"
)

// Repository implements simplecms.Repository using in-memory storage.
//
// The map is guarded by a RWMutex, but the stored VersionedContent records
// remain single-writer resources: callers must serialize updates to the same
// record, as the service layer does.
type Repository[T simplecms.Content[T]] struct {
	mu      sync.RWMutex
	records map[string]*simplecms.VersionedContent[T]
}

// New creates a new in-memory repository
func New[T simplecms.Content[T]]() *Repository[T] {
	return &Repository[T]{
		records: make(map[string]*simplecms.VersionedContent[T]),
	}
}

// Save stores or replaces the record under the managed content's ID.
func (r *Repository[T]) Save(ctx context.Context, content *simplecms.VersionedContent[T]) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[content.ID()] = content
	return nil
}

// Get returns the record for id, or simplecms.ErrContentNotFound.
func (r *Repository[T]) Get(ctx context.Context, id string) (*simplecms.VersionedContent[T], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, exists := r.records[id]
	if !exists {
		return nil, simplecms.ErrContentNotFound
	}
	return record, nil
}

// Delete removes the record for id.
func (r *Repository[T]) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[id]; !exists {
		return simplecms.ErrContentNotFound
	}
	delete(r.records, id)
	return nil
}

// List returns all records, newest first.
func (r *Repository[T]) List(ctx context.Context) ([]*simplecms.VersionedContent[T], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*simplecms.VersionedContent[T], 0, len(r.records))
	for _, record := range r.records {
		result = append(result, record)
	}

	// Sort by created_at descending
	sort.Slice(result, func(i, j int) bool {
		return result[i].Content().Meta().CreatedAt.After(result[j].Content().Meta().CreatedAt)
	})

	return result, nil
}
