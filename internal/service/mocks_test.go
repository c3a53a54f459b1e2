package service

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/studysnap/studysnap-api/internal/domain"
	"github.com/studysnap/studysnap-api/internal/generation"
	"github.com/studysnap/studysnap-api/internal/store"
)

// mockGenerator implements generation.Generator with injectable behavior.
type mockGenerator struct {
	extractFn  func(ctx context.Context, image []byte, mimeType string) (*generation.ExtractionOutcome, error)
	generateFn func(ctx context.Context, prompt string, schema *generation.Schema) (json.RawMessage, error)
}

func (m *mockGenerator) ExtractText(
	ctx context.Context,
	image []byte,
	mimeType string,
) (*generation.ExtractionOutcome, error) {
	return m.extractFn(ctx, image, mimeType)
}

func (m *mockGenerator) GenerateJSON(
	ctx context.Context,
	prompt string,
	schema *generation.Schema,
) (json.RawMessage, error) {
	return m.generateFn(ctx, prompt, schema)
}

// fakeTextStore is a map-backed TextStore for service tests.
type fakeTextStore struct {
	mu    sync.Mutex
	texts map[domain.ContentKey]string
}

func newFakeTextStore() *fakeTextStore {
	return &fakeTextStore{texts: make(map[domain.ContentKey]string)}
}

func (f *fakeTextStore) Put(ctx context.Context, text string) (domain.ContentKey, error) {
	if text == "" {
		return "", store.ErrEmptyText
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	key := domain.NewContentKey(text)
	f.texts[key] = text
	return key, nil
}

func (f *fakeTextStore) Get(ctx context.Context, key domain.ContentKey) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	text, ok := f.texts[key]
	if !ok {
		return "", store.ErrTextNotFound
	}
	return text, nil
}

func (f *fakeTextStore) len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.texts)
}
