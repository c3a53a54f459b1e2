package domain

import (
	"errors"
	"fmt"
	"testing"
)

// validQuizQuestion builds a question with the given ID that passes validation.
func validQuizQuestion(id int) QuizQuestion {
	return QuizQuestion{
		ID:          id,
		Question:    fmt.Sprintf("What is concept number %d?", id),
		Answer:      fmt.Sprintf("Answer %d", id),
		Explanation: fmt.Sprintf("Explanation for concept %d.", id),
		IncorrectAnswers: []string{
			fmt.Sprintf("Wrong %d-a", id),
			fmt.Sprintf("Wrong %d-b", id),
			fmt.Sprintf("Wrong %d-c", id),
		},
		OtherCorrectOptions: []string{
			fmt.Sprintf("Alternate %d-a", id),
			fmt.Sprintf("Alternate %d-b", id),
			fmt.Sprintf("Alternate %d-c", id),
		},
	}
}

// validQuiz builds a full ten-question quiz that passes validation.
func validQuiz() Quiz {
	questions := make([]QuizQuestion, 0, QuizQuestionCount)
	for i := 1; i <= QuizQuestionCount; i++ {
		questions = append(questions, validQuizQuestion(i))
	}
	return Quiz{Questions: questions}
}

func TestQuizQuestionValidate(t *testing.T) {
	t.Parallel() // Enable parallel execution

	// Test valid question
	valid := validQuizQuestion(1)
	if err := valid.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	// Test ID below range
	invalid := validQuizQuestion(1)
	invalid.ID = 0
	if err := invalid.Validate(); err != ErrQuizQuestionIDInvalid {
		t.Errorf("Expected error %v, got %v", ErrQuizQuestionIDInvalid, err)
	}

	// Test ID above range
	invalid = validQuizQuestion(1)
	invalid.ID = QuizQuestionCount + 1
	if err := invalid.Validate(); err != ErrQuizQuestionIDInvalid {
		t.Errorf("Expected error %v, got %v", ErrQuizQuestionIDInvalid, err)
	}

	// Test missing question text
	invalid = validQuizQuestion(1)
	invalid.Question = ""
	if err := invalid.Validate(); err != ErrQuizQuestionIncomplete {
		t.Errorf("Expected error %v, got %v", ErrQuizQuestionIncomplete, err)
	}

	// Test missing answer
	invalid = validQuizQuestion(1)
	invalid.Answer = ""
	if err := invalid.Validate(); err != ErrQuizQuestionIncomplete {
		t.Errorf("Expected error %v, got %v", ErrQuizQuestionIncomplete, err)
	}

	// Test missing explanation
	invalid = validQuizQuestion(1)
	invalid.Explanation = ""
	if err := invalid.Validate(); err != ErrQuizQuestionIncomplete {
		t.Errorf("Expected error %v, got %v", ErrQuizQuestionIncomplete, err)
	}

	// Test wrong incorrect answer count
	invalid = validQuizQuestion(1)
	invalid.IncorrectAnswers = invalid.IncorrectAnswers[:2]
	if err := invalid.Validate(); err != ErrIncorrectAnswerCount {
		t.Errorf("Expected error %v, got %v", ErrIncorrectAnswerCount, err)
	}

	// Test wrong other correct option count
	invalid = validQuizQuestion(1)
	invalid.OtherCorrectOptions = append(invalid.OtherCorrectOptions, "Extra")
	if err := invalid.Validate(); err != ErrOtherCorrectOptionCount {
		t.Errorf("Expected error %v, got %v", ErrOtherCorrectOptionCount, err)
	}

	// Test correct answer appearing among incorrect answers
	invalid = validQuizQuestion(1)
	invalid.IncorrectAnswers[2] = invalid.Answer
	if err := invalid.Validate(); err != ErrAnswerAmongIncorrect {
		t.Errorf("Expected error %v, got %v", ErrAnswerAmongIncorrect, err)
	}
}

func TestQuizValidate(t *testing.T) {
	t.Parallel() // Enable parallel execution

	// Test valid quiz
	valid := validQuiz()
	if err := valid.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	// Test too few questions
	short := validQuiz()
	short.Questions = short.Questions[:QuizQuestionCount-1]
	if err := short.Validate(); err != ErrQuizQuestionCountInvalid {
		t.Errorf("Expected error %v, got %v", ErrQuizQuestionCountInvalid, err)
	}

	// Test too many questions
	long := validQuiz()
	long.Questions = append(long.Questions, validQuizQuestion(1))
	if err := long.Validate(); err != ErrQuizQuestionCountInvalid {
		t.Errorf("Expected error %v, got %v", ErrQuizQuestionCountInvalid, err)
	}

	// Test that a bad question surfaces with its position
	bad := validQuiz()
	bad.Questions[4].Answer = ""
	err := bad.Validate()
	if !errors.Is(err, ErrQuizQuestionIncomplete) {
		t.Errorf("Expected wrapped error %v, got %v", ErrQuizQuestionIncomplete, err)
	}
	if err == nil || err.Error() != "question 5: "+ErrQuizQuestionIncomplete.Error() {
		t.Errorf("Expected question position in error, got %v", err)
	}
}
