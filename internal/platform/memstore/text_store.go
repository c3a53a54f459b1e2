// Package memstore provides an in-memory, LRU-bounded implementation of the
// store.TextStore interface. Entries live for the process lifetime at most;
// the least recently used entry is evicted once the store is full, which
// keeps the cache from growing without bound.
package memstore

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/studysnap/studysnap-api/internal/domain"
	"github.com/studysnap/studysnap-api/internal/store"
)

// DefaultCapacity is used when the configured capacity is not positive.
const DefaultCapacity = 1024

// TextStore is an LRU-bounded in-memory content store. The underlying cache
// is safe for concurrent use, so Put and Get need no extra locking.
type TextStore struct {
	cache *lru.Cache[domain.ContentKey, string]
}

// compile-time interface check
var _ store.TextStore = (*TextStore)(nil)

// NewTextStore creates an in-memory text store bounded to capacity entries.
func NewTextStore(capacity int) (*TextStore, error) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	cache, err := lru.New[domain.ContentKey, string](capacity)
	if err != nil {
		return nil, fmt.Errorf("failed to create LRU cache: %w", err)
	}

	return &TextStore{cache: cache}, nil
}

// Put computes the content key for text and inserts the pair if absent.
// Re-deriving the same text from a different image yields the same key and
// leaves the store unchanged.
func (s *TextStore) Put(ctx context.Context, text string) (domain.ContentKey, error) {
	if text == "" {
		return "", store.ErrEmptyText
	}

	key := domain.NewContentKey(text)
	s.cache.ContainsOrAdd(key, text)
	return key, nil
}

// Get returns the text stored under key, marking the entry as recently used.
func (s *TextStore) Get(ctx context.Context, key domain.ContentKey) (string, error) {
	text, ok := s.cache.Get(key)
	if !ok {
		return "", store.ErrTextNotFound
	}
	return text, nil
}

// Len reports the number of entries currently cached.
func (s *TextStore) Len() int {
	return s.cache.Len()
}
