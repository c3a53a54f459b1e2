package domain

import (
	"errors"
	"fmt"
)

// Difficulty classifies a note for the student.
type Difficulty string

// Possible difficulty values.
const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// Bounds for the notes artifact.
const (
	NoteCount    = 2
	MinKeyPoints = 3
	MaxKeyPoints = 6
)

// Validation errors for Note and Notes.
var (
	ErrNoteIncomplete    = errors.New("note is missing required fields")
	ErrNoteKeyPointCount = errors.New("note must have between 3 and 6 key points")
	ErrNoteDifficulty    = errors.New("invalid note difficulty")
	ErrNoteCountInvalid  = errors.New("notes must contain exactly 2 notes")
)

// Note is a single structured study note.
type Note struct {
	Title         string     `json:"title"`
	Subject       string     `json:"subject"`
	Description   string     `json:"description"`
	Content       string     `json:"content"`
	KeyPoints     []string   `json:"keyPoints"`
	Difficulty    Difficulty `json:"difficulty"`
	EstimatedTime string     `json:"estimatedTime"`
	LastUpdated   string     `json:"lastUpdated"`
}

// Validate checks a single note against the artifact bounds.
func (n *Note) Validate() error {
	if n.Title == "" || n.Subject == "" || n.Description == "" || n.Content == "" {
		return ErrNoteIncomplete
	}

	if len(n.KeyPoints) < MinKeyPoints || len(n.KeyPoints) > MaxKeyPoints {
		return ErrNoteKeyPointCount
	}

	if !isValidDifficulty(n.Difficulty) {
		return ErrNoteDifficulty
	}

	return nil
}

// Notes is the structured notes artifact generated from extracted text.
type Notes struct {
	Notes []Note `json:"notes"`
}

// Validate checks the note count and each note in order.
func (n *Notes) Validate() error {
	if len(n.Notes) != NoteCount {
		return ErrNoteCountInvalid
	}

	for i, note := range n.Notes {
		if err := note.Validate(); err != nil {
			return fmt.Errorf("note %d: %w", i+1, err)
		}
	}

	return nil
}

// isValidDifficulty checks if the given value is a valid Difficulty.
func isValidDifficulty(d Difficulty) bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	default:
		return false
	}
}
