package domain

import "errors"

// Bounds for the explanations artifact.
const (
	MinExplanationConcepts = 1
	MaxExplanationConcepts = 5
	StudyTipCount          = 4
	LearningApproachCount  = 4
)

// Validation errors for Explanations.
var (
	ErrExplanationConceptEmpty = errors.New("concept and explanation cannot be empty")
	ErrExplanationCountInvalid = errors.New("explanations must contain between 1 and 5 concepts")
	ErrStudyTipCountInvalid    = errors.New("study tips must contain exactly 4 entries")
	ErrApproachCountInvalid    = errors.New("learning approaches must contain exactly 4 entries")
)

// ConceptExplanation is a single key concept with its simplified explanation.
type ConceptExplanation struct {
	Concept     string `json:"concept"`
	Explanation string `json:"explanation"`
}

// Explanations bundles concept explanations with study tips and learning
// approaches generated for one piece of extracted text.
type Explanations struct {
	Explanations       []ConceptExplanation `json:"explanations"`
	StudyTips          []string             `json:"studyTips"`
	LearningApproaches []string             `json:"learningApproaches"`
}

// Validate checks the collection bounds and required fields.
func (e *Explanations) Validate() error {
	if len(e.Explanations) < MinExplanationConcepts || len(e.Explanations) > MaxExplanationConcepts {
		return ErrExplanationCountInvalid
	}

	for _, ce := range e.Explanations {
		if ce.Concept == "" || ce.Explanation == "" {
			return ErrExplanationConceptEmpty
		}
	}

	if len(e.StudyTips) != StudyTipCount {
		return ErrStudyTipCountInvalid
	}

	if len(e.LearningApproaches) != LearningApproachCount {
		return ErrApproachCountInvalid
	}

	return nil
}
