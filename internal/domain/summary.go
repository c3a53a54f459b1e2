package domain

import (
	"errors"
	"strings"
)

// MaxSummaryWords is the upper bound on the length of a generated summary.
const MaxSummaryWords = 100

// Validation errors for Summary.
var (
	ErrSummaryEmpty   = errors.New("summary cannot be empty")
	ErrSummaryTooLong = errors.New("summary exceeds maximum word count")
)

// Summary is the plain-text study guide produced from extracted text.
type Summary struct {
	Summary string `json:"summary"`
}

// Validate checks that the summary is present and within the word budget.
func (s *Summary) Validate() error {
	if strings.TrimSpace(s.Summary) == "" {
		return ErrSummaryEmpty
	}

	if len(strings.Fields(s.Summary)) > MaxSummaryWords {
		return ErrSummaryTooLong
	}

	return nil
}
