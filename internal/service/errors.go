package service

import (
	"errors"
	"fmt"
)

// Stage names used in failure reporting.
const (
	StageExtract      = "extract"
	StageSummary      = "summary"
	StageExplanations = "explanations"
	StageQuiz         = "quiz"
	StageQuizFormat   = "quiz-format"
	StageNotes        = "notes"
)

// Failure reasons attached to StageError.
const (
	ReasonCapability = "capability fault"
	ReasonTimeout    = "timeout"
	ReasonBadJSON    = "malformed JSON"
	ReasonSchema     = "schema violation"
	ReasonFormat     = "format conversion"
)

// Common sentinel errors for the study service.
var (
	// ErrTextNotFound indicates the supplied content key is absent from the
	// store. The caller should reprocess the image.
	ErrTextNotFound = errors.New("extracted text not found")
)

// StageError reports that a generation stage failed. It carries the stage
// name and a coarse reason for diagnosis; the wrapped error holds the
// details, which are logged but never shown to API clients.
type StageError struct {
	// Stage is the pipeline stage that failed (e.g. "quiz", "quiz-format").
	Stage string
	// Reason is the failure category (capability fault, malformed JSON,
	// schema violation, timeout, format conversion).
	Reason string
	// Err is the underlying error that caused the failure.
	Err error
}

// Error implements the error interface for StageError.
func (e *StageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("generation stage %q failed (%s): %v", e.Stage, e.Reason, e.Err)
	}
	return fmt.Sprintf("generation stage %q failed (%s)", e.Stage, e.Reason)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StageError) Unwrap() error {
	return e.Err
}

// ImageUnprocessableError reports that the capability itself rejected the
// uploaded image as unreadable or not study material. User-correctable;
// nothing is cached when this occurs.
type ImageUnprocessableError struct {
	// Message is the capability's user-facing reason.
	Message string
}

// Error implements the error interface for ImageUnprocessableError.
func (e *ImageUnprocessableError) Error() string {
	return "image cannot be processed: " + e.Message
}
