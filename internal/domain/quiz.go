package domain

import (
	"errors"
	"fmt"
)

// Bounds for the quiz artifact.
const (
	QuizQuestionCount       = 10
	IncorrectAnswerCount    = 3
	OtherCorrectOptionCount = 3
)

// Validation errors for Quiz.
var (
	ErrQuizQuestionCountInvalid = errors.New("quiz must contain exactly 10 questions")
	ErrQuizQuestionIDInvalid    = errors.New("quiz question ID must be between 1 and 10")
	ErrQuizQuestionIncomplete   = errors.New("quiz question is missing required fields")
	ErrIncorrectAnswerCount     = errors.New("quiz question must have exactly 3 incorrect answers")
	ErrOtherCorrectOptionCount  = errors.New("quiz question must have exactly 3 other correct options")
	ErrAnswerAmongIncorrect     = errors.New("correct answer must not appear among incorrect answers")
)

// QuizQuestion is the canonical form of a single quiz question. The three
// display formats (multiple choice, quick answer, flashcard) are all derived
// from it and never stored independently.
type QuizQuestion struct {
	ID                  int      `json:"id"`
	Question            string   `json:"question"`
	Answer              string   `json:"answer"`
	Explanation         string   `json:"explanation"`
	IncorrectAnswers    []string `json:"incorrectAnswers"`
	OtherCorrectOptions []string `json:"otherCorrectOptions"`
}

// Validate checks a single question against the canonical bounds.
func (q *QuizQuestion) Validate() error {
	if q.ID < 1 || q.ID > QuizQuestionCount {
		return ErrQuizQuestionIDInvalid
	}

	if q.Question == "" || q.Answer == "" || q.Explanation == "" {
		return ErrQuizQuestionIncomplete
	}

	if len(q.IncorrectAnswers) != IncorrectAnswerCount {
		return ErrIncorrectAnswerCount
	}

	if len(q.OtherCorrectOptions) != OtherCorrectOptionCount {
		return ErrOtherCorrectOptionCount
	}

	for _, incorrect := range q.IncorrectAnswers {
		if incorrect == q.Answer {
			return ErrAnswerAmongIncorrect
		}
	}

	return nil
}

// Quiz is the canonical quiz artifact generated from extracted text.
type Quiz struct {
	Questions []QuizQuestion `json:"questions"`
}

// Validate checks the question count and each question in order.
func (q *Quiz) Validate() error {
	if len(q.Questions) != QuizQuestionCount {
		return ErrQuizQuestionCountInvalid
	}

	for i, question := range q.Questions {
		if err := question.Validate(); err != nil {
			return fmt.Errorf("question %d: %w", i+1, err)
		}
	}

	return nil
}
