// Package postgres provides a Postgres-backed implementation of the
// store.TextStore interface for deployments that want extracted text to
// survive process restarts. Uses the pgx stdlib driver through database/sql.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/studysnap/studysnap-api/internal/domain"
	"github.com/studysnap/studysnap-api/internal/store"
)

// TextStore persists extracted text in the extracted_texts table. Inserts
// use ON CONFLICT DO NOTHING so concurrent extractions of identical text
// race harmlessly to a single row.
type TextStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// compile-time interface check
var _ store.TextStore = (*TextStore)(nil)

// NewTextStore creates a Postgres-backed text store.
func NewTextStore(db *sql.DB, logger *slog.Logger) *TextStore {
	return &TextStore{
		db:     db,
		logger: logger,
	}
}

// Put computes the content key for text and inserts the pair if absent.
func (s *TextStore) Put(ctx context.Context, text string) (domain.ContentKey, error) {
	if text == "" {
		return "", store.ErrEmptyText
	}

	key := domain.NewContentKey(text)

	query := `
		INSERT INTO extracted_texts (key, text, created_at, last_accessed)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT (key) DO NOTHING
	`
	if _, err := s.db.ExecContext(ctx, query, key.String(), text); err != nil {
		return "", fmt.Errorf("failed to store extracted text: %w", err)
	}

	s.logger.DebugContext(ctx, "stored extracted text",
		"key", key.String(),
		"text_length", len(text))

	return key, nil
}

// Get returns the text stored under key and touches its last-accessed time
// so a TTL-based cleanup job can target cold entries.
func (s *TextStore) Get(ctx context.Context, key domain.ContentKey) (string, error) {
	query := `
		UPDATE extracted_texts
		SET last_accessed = NOW()
		WHERE key = $1
		RETURNING text
	`

	var text string
	err := s.db.QueryRowContext(ctx, query, key.String()).Scan(&text)
	if errors.Is(err, sql.ErrNoRows) {
		return "", store.ErrTextNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to load extracted text: %w", err)
	}

	return text, nil
}
