package memstore

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studysnap/studysnap-api/internal/domain"
	"github.com/studysnap/studysnap-api/internal/store"
)

func TestPutAndGet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s, err := NewTextStore(10)
	require.NoError(t, err)

	text := "The French Revolution began in 1789."
	key, err := s.Put(ctx, text)
	require.NoError(t, err)
	assert.Equal(t, domain.NewContentKey(text), key, "Key should be the content digest")

	got, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, text, got)
}

func TestPutIsIdempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s, err := NewTextStore(10)
	require.NoError(t, err)

	text := "Same text extracted from two different photos."

	key1, err := s.Put(ctx, text)
	require.NoError(t, err)
	key2, err := s.Put(ctx, text)
	require.NoError(t, err)

	assert.Equal(t, key1, key2, "Identical text should yield identical keys")
	assert.Equal(t, 1, s.Len(), "Re-storing identical text should not add an entry")
}

func TestPutRejectsEmptyText(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s, err := NewTextStore(10)
	require.NoError(t, err)

	_, err = s.Put(ctx, "")
	assert.ErrorIs(t, err, store.ErrEmptyText)
}

func TestGetUnknownKey(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s, err := NewTextStore(10)
	require.NoError(t, err)

	_, err = s.Get(ctx, domain.NewContentKey("never stored"))
	assert.ErrorIs(t, err, store.ErrTextNotFound)
}

func TestCapacityEviction(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s, err := NewTextStore(3)
	require.NoError(t, err)

	keys := make([]domain.ContentKey, 0, 4)
	for i := 0; i < 4; i++ {
		key, err := s.Put(ctx, fmt.Sprintf("text number %d", i))
		require.NoError(t, err)
		keys = append(keys, key)
	}

	assert.Equal(t, 3, s.Len(), "Store should stay at capacity")

	// The oldest entry is evicted; the newest survives.
	_, err = s.Get(ctx, keys[0])
	assert.ErrorIs(t, err, store.ErrTextNotFound)
	_, err = s.Get(ctx, keys[3])
	assert.NoError(t, err)
}

func TestConcurrentPutSameText(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s, err := NewTextStore(100)
	require.NoError(t, err)

	text := "Concurrent uploads of the same worksheet."
	expected := domain.NewContentKey(text)

	const goroutines = 100
	var wg sync.WaitGroup
	errs := make(chan error, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			key, err := s.Put(ctx, text)
			if err != nil {
				errs <- err
				return
			}
			if key != expected {
				errs <- fmt.Errorf("unexpected key %s", key)
			}
		}()
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("Concurrent Put failed: %v", err)
	}

	assert.Equal(t, 1, s.Len(), "Concurrent identical Puts should produce a single entry")
}
