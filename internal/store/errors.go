package store

import "errors"

// Common store errors used across all store implementations.
var (
	// ErrTextNotFound is returned when the requested content key is absent
	// from the store. Callers holding a stale key should reprocess the image.
	ErrTextNotFound = errors.New("extracted text not found")

	// ErrEmptyText is returned when an empty text is offered for storage.
	ErrEmptyText = errors.New("extracted text cannot be empty")
)
