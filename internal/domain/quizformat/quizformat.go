// Package quizformat derives the three quiz display formats (multiple
// choice, quick answer, flashcard) from a canonical quiz. The transformation
// is a pure function: it makes no external calls and either converts all
// questions or fails without producing a partial result.
package quizformat

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/studysnap/studysnap-api/internal/domain"
)

// MCQOptionCount is the number of answer options in a multiple-choice
// question: the correct answer plus the three distractors.
const MCQOptionCount = 4

// Transformation errors.
var (
	// ErrDuplicateOptions is returned when the correct answer and the
	// distractors do not form four distinct options.
	ErrDuplicateOptions = errors.New("answer options are not distinct")
)

// MCQOption is one answer option of a multiple-choice question.
type MCQOption struct {
	Answer  string `json:"answer"`
	Correct bool   `json:"correct"`
}

// MCQQuestion is the multiple-choice rendering of a quiz question. Option
// order is randomized so the correct answer's position is not predictable.
type MCQQuestion struct {
	Question    string      `json:"question"`
	Answers     []MCQOption `json:"answers"`
	Explanation string      `json:"explanation"`
}

// QuickQAQuestion is the quick-answer rendering: the question with its
// canonical answer and the accepted alternative phrasings.
type QuickQAQuestion struct {
	Question            string   `json:"question"`
	CorrectAnswer       string   `json:"correctAnswer"`
	Explanation         string   `json:"explanation"`
	OtherCorrectOptions []string `json:"otherCorrectOptions"`
}

// FlashcardQuestion is the flashcard rendering: question, answer and
// explanation only.
type FlashcardQuestion struct {
	Question      string `json:"question"`
	CorrectAnswer string `json:"correctAnswer"`
	Explanation   string `json:"explanation"`
}

// AllFormats holds the three derived display formats for one quiz. Entries
// at the same index across the three slices refer to the same source
// question.
type AllFormats struct {
	MCQ        []MCQQuestion
	QuickQA    []QuickQAQuestion
	Flashcards []FlashcardQuestion
}

// Transform derives all three display formats from a validated quiz. It
// processes the questions in order and fails atomically: if any question
// cannot be converted, no formats are returned.
func Transform(quiz *domain.Quiz) (*AllFormats, error) {
	if quiz == nil {
		return nil, errors.New("quiz cannot be nil")
	}

	if err := quiz.Validate(); err != nil {
		return nil, err
	}

	formats := &AllFormats{
		MCQ:        make([]MCQQuestion, 0, len(quiz.Questions)),
		QuickQA:    make([]QuickQAQuestion, 0, len(quiz.Questions)),
		Flashcards: make([]FlashcardQuestion, 0, len(quiz.Questions)),
	}

	for i, question := range quiz.Questions {
		mcq, err := toMCQ(&question)
		if err != nil {
			return nil, fmt.Errorf("question %d: %w", i+1, err)
		}

		formats.MCQ = append(formats.MCQ, *mcq)
		formats.QuickQA = append(formats.QuickQA, QuickQAQuestion{
			Question:            question.Question,
			CorrectAnswer:       question.Answer,
			Explanation:         question.Explanation,
			OtherCorrectOptions: question.OtherCorrectOptions,
		})
		formats.Flashcards = append(formats.Flashcards, FlashcardQuestion{
			Question:      question.Question,
			CorrectAnswer: question.Answer,
			Explanation:   question.Explanation,
		})
	}

	return formats, nil
}

// toMCQ builds the four-option multiple-choice rendering of a question.
// The options are the correct answer plus the three distractors, in a
// uniformly random order.
func toMCQ(q *domain.QuizQuestion) (*MCQQuestion, error) {
	options := make([]MCQOption, 0, MCQOptionCount)
	options = append(options, MCQOption{Answer: q.Answer, Correct: true})
	for _, incorrect := range q.IncorrectAnswers {
		options = append(options, MCQOption{Answer: incorrect, Correct: false})
	}

	seen := make(map[string]struct{}, len(options))
	for _, opt := range options {
		seen[opt.Answer] = struct{}{}
	}
	if len(seen) != MCQOptionCount {
		return nil, ErrDuplicateOptions
	}

	shuffled := make([]MCQOption, MCQOptionCount)
	for dst, src := range rand.Perm(MCQOptionCount) {
		shuffled[dst] = options[src]
	}

	return &MCQQuestion{
		Question:    q.Question,
		Answers:     shuffled,
		Explanation: q.Explanation,
	}, nil
}
