package domain

import (
	"crypto/sha256"
	"encoding/hex"
)

// ContentKey is the deterministic digest of a piece of extracted text. It
// doubles as the cache key and as the opaque text_id handed to API clients.
// Two distinct texts hashing to the same key is treated as unreachable; the
// full SHA-256 hex digest keeps that assumption cryptographically negligible.
type ContentKey string

// NewContentKey computes the content key for the given text.
func NewContentKey(text string) ContentKey {
	sum := sha256.Sum256([]byte(text))
	return ContentKey(hex.EncodeToString(sum[:]))
}

// String returns the key as a plain string.
func (k ContentKey) String() string {
	return string(k)
}

// ExtractedText pairs a piece of extracted teaching text with its content
// key. Created once per successful extraction and never mutated afterwards.
type ExtractedText struct {
	Key  ContentKey `json:"key"`
	Text string     `json:"text"`
}

// NewExtractedText derives the content key for text and returns the pair.
// Returns ErrEmptyContent if text is empty.
func NewExtractedText(text string) (*ExtractedText, error) {
	if text == "" {
		return nil, ErrEmptyContent
	}

	return &ExtractedText{
		Key:  NewContentKey(text),
		Text: text,
	}, nil
}
