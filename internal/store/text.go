package store

import (
	"context"

	"github.com/studysnap/studysnap-api/internal/domain"
)

// TextStore is the content-addressed cache of extracted text. Keys are
// derived from the text itself, so Put is idempotent: storing the same text
// twice (even from different images) yields the same key and a single entry.
// Implementations must be safe for concurrent use; extraction writes while
// every downstream stage reads.
type TextStore interface {
	// Put computes the content key for text, inserts the pair if absent,
	// and returns the key. Returns ErrEmptyText for empty input.
	Put(ctx context.Context, text string) (domain.ContentKey, error)

	// Get returns the text stored under key.
	// Returns ErrTextNotFound if the key is absent.
	Get(ctx context.Context, key domain.ContentKey) (string, error)
}
