package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/studysnap/studysnap-api/internal/domain"
	"github.com/studysnap/studysnap-api/internal/domain/quizformat"
	"github.com/studysnap/studysnap-api/internal/generation"
	"github.com/studysnap/studysnap-api/internal/store"
)

// ProcessImageResult is the outcome of a successful image processing run:
// the generated summary plus the content key for later stage invocations.
type ProcessImageResult struct {
	Summary string
	Key     domain.ContentKey
}

// NotesResult tags a generated notes artifact with the content key it was
// derived from.
type NotesResult struct {
	Key   domain.ContentKey
	Notes *domain.Notes
}

// StudyService provides the study artifact generation operations. Extraction
// is the only operation that writes to the content store; the remaining
// stages are independent, repeatable reads of a previously stored text and
// may run concurrently against the same key.
type StudyService interface {
	// ProcessImage extracts teaching text from an image, stores it, and
	// returns a summary together with the content key. Returns
	// *ImageUnprocessableError (storing nothing) when the capability
	// rejects the image, or *StageError on any generation fault.
	ProcessImage(ctx context.Context, image []byte, mimeType string) (*ProcessImageResult, error)

	// GenerateExplanations generates concept explanations, study tips, and
	// learning approaches for a previously extracted text.
	// Returns ErrTextNotFound if the key is unknown.
	GenerateExplanations(ctx context.Context, key domain.ContentKey) (*domain.Explanations, error)

	// GenerateQuiz generates the canonical quiz for a previously extracted
	// text and derives all three display formats from it. A formatting
	// fault is reported as a StageError for the "quiz-format" stage,
	// distinct from generation faults.
	GenerateQuiz(ctx context.Context, key domain.ContentKey) (*quizformat.AllFormats, error)

	// GenerateNotes generates structured study notes for a previously
	// extracted text, tagged with its content key.
	GenerateNotes(ctx context.Context, key domain.ContentKey) (*NotesResult, error)
}

// studyServiceImpl implements the StudyService interface.
type studyServiceImpl struct {
	textStore store.TextStore
	generator generation.Generator
	logger    *slog.Logger
}

// NewStudyService creates a new StudyService with the given dependencies.
func NewStudyService(
	textStore store.TextStore,
	generator generation.Generator,
	logger *slog.Logger,
) (StudyService, error) {
	if textStore == nil {
		return nil, errors.New("text store cannot be nil")
	}
	if generator == nil {
		return nil, errors.New("generator cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &studyServiceImpl{
		textStore: textStore,
		generator: generator,
		logger:    logger.With("component", "study_service"),
	}, nil
}

// ProcessImage runs extraction and, on success, stores the text and
// generates the summary. On a sentinel rejection nothing is stored and the
// typed unprocessable error is returned.
func (s *studyServiceImpl) ProcessImage(
	ctx context.Context,
	image []byte,
	mimeType string,
) (*ProcessImageResult, error) {
	outcome, err := s.generator.ExtractText(ctx, image, mimeType)
	if err != nil {
		reason := ReasonCapability
		if errors.Is(err, context.DeadlineExceeded) {
			reason = ReasonTimeout
		}

		s.logger.ErrorContext(ctx, "image extraction failed",
			"stage", StageExtract,
			"reason", reason,
			"error", err)
		return nil, &StageError{Stage: StageExtract, Reason: reason, Err: err}
	}

	if outcome.Unprocessable {
		s.logger.InfoContext(ctx, "image rejected as unprocessable")
		return nil, &ImageUnprocessableError{Message: outcome.Message}
	}

	key, err := s.textStore.Put(ctx, outcome.Text)
	if err != nil {
		return nil, fmt.Errorf("failed to store extracted text: %w", err)
	}

	s.logger.InfoContext(ctx, "extracted text stored",
		"key", key.String(),
		"text_length", len(outcome.Text))

	var summary domain.Summary
	prompt := summaryPrompt + "\n\nHere is the extracted text:\n" + outcome.Text
	if err := runStage(ctx, s.generator, s.logger, StageSummary, prompt, summarySchema, &summary); err != nil {
		return nil, err
	}

	return &ProcessImageResult{
		Summary: summary.Summary,
		Key:     key,
	}, nil
}

// GenerateExplanations generates the explanations artifact for a stored text.
func (s *studyServiceImpl) GenerateExplanations(
	ctx context.Context,
	key domain.ContentKey,
) (*domain.Explanations, error) {
	text, err := s.loadText(ctx, key)
	if err != nil {
		return nil, err
	}

	var explanations domain.Explanations
	prompt := withSourceText(explanationsPrompt, text)
	if err := runStage(ctx, s.generator, s.logger, StageExplanations, prompt, explanationsSchema, &explanations); err != nil {
		return nil, err
	}

	return &explanations, nil
}

// GenerateQuiz generates the canonical quiz for a stored text and transforms
// it into the three display formats.
func (s *studyServiceImpl) GenerateQuiz(
	ctx context.Context,
	key domain.ContentKey,
) (*quizformat.AllFormats, error) {
	text, err := s.loadText(ctx, key)
	if err != nil {
		return nil, err
	}

	var quiz domain.Quiz
	prompt := withSourceText(quizPrompt, text)
	if err := runStage(ctx, s.generator, s.logger, StageQuiz, prompt, quizSchema, &quiz); err != nil {
		return nil, err
	}

	formats, err := quizformat.Transform(&quiz)
	if err != nil {
		s.logger.ErrorContext(ctx, "quiz format conversion failed",
			"stage", StageQuizFormat,
			"error", err)
		return nil, &StageError{Stage: StageQuizFormat, Reason: ReasonFormat, Err: err}
	}

	return formats, nil
}

// GenerateNotes generates the notes artifact for a stored text.
func (s *studyServiceImpl) GenerateNotes(
	ctx context.Context,
	key domain.ContentKey,
) (*NotesResult, error) {
	text, err := s.loadText(ctx, key)
	if err != nil {
		return nil, err
	}

	var notes domain.Notes
	prompt := withSourceText(notesPrompt, text)
	if err := runStage(ctx, s.generator, s.logger, StageNotes, prompt, notesSchema, &notes); err != nil {
		return nil, err
	}

	return &NotesResult{
		Key:   key,
		Notes: &notes,
	}, nil
}

// loadText fetches the stored text for key, mapping the store's not-found
// error onto the service-level sentinel.
func (s *studyServiceImpl) loadText(ctx context.Context, key domain.ContentKey) (string, error) {
	text, err := s.textStore.Get(ctx, key)
	if errors.Is(err, store.ErrTextNotFound) {
		return "", ErrTextNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to load extracted text: %w", err)
	}
	return text, nil
}
