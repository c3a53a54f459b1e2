package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studysnap/studysnap-api/internal/domain"
	"github.com/studysnap/studysnap-api/internal/generation"
)

// testLogger returns a logger that discards all output.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// successfulExtraction returns an extractFn that yields the given text.
func successfulExtraction(text string) func(context.Context, []byte, string) (*generation.ExtractionOutcome, error) {
	return func(ctx context.Context, image []byte, mimeType string) (*generation.ExtractionOutcome, error) {
		return &generation.ExtractionOutcome{Text: text}, nil
	}
}

// fixedJSON returns a generateFn that yields the marshaled value.
func fixedJSON(t *testing.T, value interface{}) func(context.Context, string, *generation.Schema) (json.RawMessage, error) {
	t.Helper()
	raw, err := json.Marshal(value)
	require.NoError(t, err)
	return func(ctx context.Context, prompt string, schema *generation.Schema) (json.RawMessage, error) {
		return raw, nil
	}
}

// validQuizValue builds a quiz document that passes validation.
func validQuizValue() domain.Quiz {
	questions := make([]domain.QuizQuestion, 0, domain.QuizQuestionCount)
	for i := 1; i <= domain.QuizQuestionCount; i++ {
		questions = append(questions, domain.QuizQuestion{
			ID:          i,
			Question:    fmt.Sprintf("What is concept number %d?", i),
			Answer:      fmt.Sprintf("Answer %d", i),
			Explanation: fmt.Sprintf("Explanation for concept %d.", i),
			IncorrectAnswers: []string{
				fmt.Sprintf("Wrong %d-a", i),
				fmt.Sprintf("Wrong %d-b", i),
				fmt.Sprintf("Wrong %d-c", i),
			},
			OtherCorrectOptions: []string{
				fmt.Sprintf("Alternate %d-a", i),
				fmt.Sprintf("Alternate %d-b", i),
				fmt.Sprintf("Alternate %d-c", i),
			},
		})
	}
	return domain.Quiz{Questions: questions}
}

// validNotesValue builds a notes document that passes validation.
func validNotesValue() domain.Notes {
	note := domain.Note{
		Title:         "Cell Respiration",
		Subject:       "Biology",
		Description:   "How cells convert glucose into usable energy.",
		Content:       "Respiration happens in three stages.",
		KeyPoints:     []string{"Glycolysis", "Krebs cycle", "Electron transport chain"},
		Difficulty:    domain.DifficultyIntermediate,
		EstimatedTime: "15 minutes",
		LastUpdated:   "2026-08-31",
	}
	return domain.Notes{Notes: []domain.Note{note, note}}
}

// validExplanationsValue builds an explanations document that passes validation.
func validExplanationsValue() domain.Explanations {
	return domain.Explanations{
		Explanations: []domain.ConceptExplanation{
			{Concept: "Osmosis", Explanation: "Water moving across a membrane."},
		},
		StudyTips:          []string{"a", "b", "c", "d"},
		LearningApproaches: []string{"a", "b", "c", "d"},
	}
}

func TestNewStudyService(t *testing.T) {
	textStore := newFakeTextStore()
	gen := &mockGenerator{}
	logger := testLogger()

	tests := []struct {
		name        string
		textStore   *fakeTextStore
		generator   *mockGenerator
		logger      *slog.Logger
		expectError string
	}{
		{
			name:        "nil text store",
			generator:   gen,
			logger:      logger,
			expectError: "text store",
		},
		{
			name:        "nil generator",
			textStore:   textStore,
			logger:      logger,
			expectError: "generator",
		},
		{
			name:        "nil logger",
			textStore:   textStore,
			generator:   gen,
			expectError: "logger",
		},
		{
			name:      "all dependencies provided",
			textStore: textStore,
			generator: gen,
			logger:    logger,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := newServiceForTest(tt.textStore, tt.generator, tt.logger)
			if tt.expectError != "" {
				assert.Error(t, err)
				assert.Nil(t, svc)
				assert.Contains(t, err.Error(), tt.expectError)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, svc)
			}
		})
	}
}

// newServiceForTest converts typed nils into interface nils before calling
// the constructor.
func newServiceForTest(ts *fakeTextStore, g *mockGenerator, logger *slog.Logger) (StudyService, error) {
	if ts == nil {
		return NewStudyService(nil, g, logger)
	}
	if g == nil {
		return NewStudyService(ts, nil, logger)
	}
	return NewStudyService(ts, g, logger)
}

func TestProcessImageSuccess(t *testing.T) {
	t.Parallel()
	extracted := "Photosynthesis converts light energy into chemical energy."

	textStore := newFakeTextStore()
	gen := &mockGenerator{
		extractFn:  successfulExtraction(extracted),
		generateFn: fixedJSON(t, domain.Summary{Summary: "Plants make food from light."}),
	}

	svc, err := NewStudyService(textStore, gen, testLogger())
	require.NoError(t, err)

	result, err := svc.ProcessImage(context.Background(), []byte("fake-png"), "image/png")
	require.NoError(t, err)

	assert.Equal(t, "Plants make food from light.", result.Summary)
	assert.Equal(t, domain.NewContentKey(extracted), result.Key)

	stored, err := textStore.Get(context.Background(), result.Key)
	require.NoError(t, err)
	assert.Equal(t, extracted, stored, "Extracted text should be stored under its key")
}

func TestProcessImageUnprocessable(t *testing.T) {
	t.Parallel()
	textStore := newFakeTextStore()
	gen := &mockGenerator{
		extractFn: func(ctx context.Context, image []byte, mimeType string) (*generation.ExtractionOutcome, error) {
			return &generation.ExtractionOutcome{
				Unprocessable: true,
				Message:       "The image is too blurry to read.",
			}, nil
		},
	}

	svc, err := NewStudyService(textStore, gen, testLogger())
	require.NoError(t, err)

	result, err := svc.ProcessImage(context.Background(), []byte("fake-png"), "image/png")
	assert.Nil(t, result)

	var unprocessable *ImageUnprocessableError
	require.ErrorAs(t, err, &unprocessable)
	assert.Equal(t, "The image is too blurry to read.", unprocessable.Message)

	// Nothing is cached for a rejected image.
	assert.Equal(t, 0, textStore.len())
}

func TestProcessImageExtractionFault(t *testing.T) {
	t.Parallel()
	textStore := newFakeTextStore()
	gen := &mockGenerator{
		extractFn: func(ctx context.Context, image []byte, mimeType string) (*generation.ExtractionOutcome, error) {
			return nil, errors.New("transport failure")
		},
	}

	svc, err := NewStudyService(textStore, gen, testLogger())
	require.NoError(t, err)

	_, err = svc.ProcessImage(context.Background(), []byte("fake-png"), "image/png")

	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, StageExtract, stageErr.Stage)
	assert.Equal(t, ReasonCapability, stageErr.Reason)
}

func TestProcessImageTimeout(t *testing.T) {
	t.Parallel()
	textStore := newFakeTextStore()
	gen := &mockGenerator{
		extractFn: func(ctx context.Context, image []byte, mimeType string) (*generation.ExtractionOutcome, error) {
			return nil, fmt.Errorf("extraction call: %w", context.DeadlineExceeded)
		},
	}

	svc, err := NewStudyService(textStore, gen, testLogger())
	require.NoError(t, err)

	_, err = svc.ProcessImage(context.Background(), []byte("fake-png"), "image/png")

	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, StageExtract, stageErr.Stage)
	assert.Equal(t, ReasonTimeout, stageErr.Reason)
}

func TestProcessImageSummaryStageFault(t *testing.T) {
	t.Parallel()
	textStore := newFakeTextStore()
	gen := &mockGenerator{
		extractFn: successfulExtraction("Some study text."),
		generateFn: func(ctx context.Context, prompt string, schema *generation.Schema) (json.RawMessage, error) {
			return json.RawMessage(`{"summary": `), nil
		},
	}

	svc, err := NewStudyService(textStore, gen, testLogger())
	require.NoError(t, err)

	_, err = svc.ProcessImage(context.Background(), []byte("fake-png"), "image/png")

	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, StageSummary, stageErr.Stage)
	assert.Equal(t, ReasonBadJSON, stageErr.Reason)
}

func TestGenerateExplanations(t *testing.T) {
	t.Parallel()
	textStore := newFakeTextStore()
	key, err := textStore.Put(context.Background(), "Osmosis and diffusion notes.")
	require.NoError(t, err)

	gen := &mockGenerator{
		generateFn: fixedJSON(t, validExplanationsValue()),
	}

	svc, err := NewStudyService(textStore, gen, testLogger())
	require.NoError(t, err)

	explanations, err := svc.GenerateExplanations(context.Background(), key)
	require.NoError(t, err)
	assert.Len(t, explanations.Explanations, 1)
	assert.Len(t, explanations.StudyTips, domain.StudyTipCount)
	assert.Len(t, explanations.LearningApproaches, domain.LearningApproachCount)
}

func TestGenerateExplanationsUnknownKey(t *testing.T) {
	t.Parallel()
	textStore := newFakeTextStore()
	gen := &mockGenerator{}

	svc, err := NewStudyService(textStore, gen, testLogger())
	require.NoError(t, err)

	_, err = svc.GenerateExplanations(context.Background(), domain.NewContentKey("never stored"))
	assert.ErrorIs(t, err, ErrTextNotFound)
}

func TestGenerateQuiz(t *testing.T) {
	t.Parallel()
	textStore := newFakeTextStore()
	key, err := textStore.Put(context.Background(), "History of the French Revolution.")
	require.NoError(t, err)

	gen := &mockGenerator{
		generateFn: fixedJSON(t, validQuizValue()),
	}

	svc, err := NewStudyService(textStore, gen, testLogger())
	require.NoError(t, err)

	formats, err := svc.GenerateQuiz(context.Background(), key)
	require.NoError(t, err)
	assert.Len(t, formats.MCQ, domain.QuizQuestionCount)
	assert.Len(t, formats.QuickQA, domain.QuizQuestionCount)
	assert.Len(t, formats.Flashcards, domain.QuizQuestionCount)
}

func TestGenerateQuizSchemaViolation(t *testing.T) {
	t.Parallel()
	textStore := newFakeTextStore()
	key, err := textStore.Put(context.Background(), "Some study text.")
	require.NoError(t, err)

	// Nine questions instead of ten.
	quiz := validQuizValue()
	quiz.Questions = quiz.Questions[:9]

	gen := &mockGenerator{
		generateFn: fixedJSON(t, quiz),
	}

	svc, err := NewStudyService(textStore, gen, testLogger())
	require.NoError(t, err)

	_, err = svc.GenerateQuiz(context.Background(), key)

	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, StageQuiz, stageErr.Stage)
	assert.Equal(t, ReasonSchema, stageErr.Reason)
}

func TestGenerateQuizFormatFault(t *testing.T) {
	t.Parallel()
	textStore := newFakeTextStore()
	key, err := textStore.Put(context.Background(), "Some study text.")
	require.NoError(t, err)

	// Duplicate distractors pass quiz validation but cannot form four
	// distinct multiple-choice options.
	quiz := validQuizValue()
	quiz.Questions[3].IncorrectAnswers[1] = quiz.Questions[3].IncorrectAnswers[0]

	gen := &mockGenerator{
		generateFn: fixedJSON(t, quiz),
	}

	svc, err := NewStudyService(textStore, gen, testLogger())
	require.NoError(t, err)

	_, err = svc.GenerateQuiz(context.Background(), key)

	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, StageQuizFormat, stageErr.Stage)
	assert.Equal(t, ReasonFormat, stageErr.Reason)
}

func TestGenerateNotes(t *testing.T) {
	t.Parallel()
	textStore := newFakeTextStore()
	key, err := textStore.Put(context.Background(), "Cell respiration notes.")
	require.NoError(t, err)

	gen := &mockGenerator{
		generateFn: fixedJSON(t, validNotesValue()),
	}

	svc, err := NewStudyService(textStore, gen, testLogger())
	require.NoError(t, err)

	result, err := svc.GenerateNotes(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, key, result.Key, "Notes should be tagged with the source key")
	assert.Len(t, result.Notes.Notes, domain.NoteCount)
}

func TestGenerateNotesSchemaViolation(t *testing.T) {
	t.Parallel()
	textStore := newFakeTextStore()
	key, err := textStore.Put(context.Background(), "Some study text.")
	require.NoError(t, err)

	// One note instead of two.
	notes := validNotesValue()
	notes.Notes = notes.Notes[:1]

	gen := &mockGenerator{
		generateFn: fixedJSON(t, notes),
	}

	svc, err := NewStudyService(textStore, gen, testLogger())
	require.NoError(t, err)

	_, err = svc.GenerateNotes(context.Background(), key)

	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, StageNotes, stageErr.Stage)
	assert.Equal(t, ReasonSchema, stageErr.Reason)
}

func TestProcessImageConcurrent(t *testing.T) {
	t.Parallel()
	extracted := "Shared worksheet text."

	textStore := newFakeTextStore()
	gen := &mockGenerator{
		extractFn:  successfulExtraction(extracted),
		generateFn: fixedJSON(t, domain.Summary{Summary: "A shared worksheet."}),
	}

	svc, err := NewStudyService(textStore, gen, testLogger())
	require.NoError(t, err)

	const goroutines = 100
	expected := domain.NewContentKey(extracted)

	var wg sync.WaitGroup
	errs := make(chan error, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := svc.ProcessImage(context.Background(), []byte("fake-png"), "image/png")
			if err != nil {
				errs <- err
				return
			}
			if result.Key != expected {
				errs <- fmt.Errorf("unexpected key %s", result.Key)
			}
		}()
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("Concurrent ProcessImage failed: %v", err)
	}

	assert.Equal(t, 1, textStore.len(), "Identical images should collapse to one entry")
}
