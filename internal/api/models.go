package api

import (
	"github.com/studysnap/studysnap-api/internal/domain"
	"github.com/studysnap/studysnap-api/internal/domain/quizformat"
	"github.com/studysnap/studysnap-api/internal/service"
)

// GenerateRequest is the request body shared by the explanations, quiz, and
// notes endpoints. TextID is the opaque content key returned by the
// process-image endpoint.
type GenerateRequest struct {
	TextID string `json:"text_id" validate:"required,min=1"`
}

// ProcessImageResponse wraps the generated summary with the text ID clients
// use for follow-up generations.
type ProcessImageResponse struct {
	Summary string `json:"summary"`
	TextID  string `json:"text_id"`
}

// ConceptExplanationDTO is a single concept/explanation pair.
type ConceptExplanationDTO struct {
	Concept     string `json:"concept"`
	Explanation string `json:"explanation"`
}

// ExplanationsResponse is the response body for the explanations endpoint.
type ExplanationsResponse struct {
	Explanations       []ConceptExplanationDTO `json:"explanations"`
	StudyTips          []string                `json:"studyTips"`
	LearningApproaches []string                `json:"learningApproaches"`
}

// MCQOptionDTO is one answer option of a multiple-choice question.
type MCQOptionDTO struct {
	Answer  string `json:"answer"`
	Correct bool   `json:"correct"`
}

// MCQQuestionDTO is one multiple-choice question.
type MCQQuestionDTO struct {
	Question    string         `json:"question"`
	Answers     []MCQOptionDTO `json:"answers"`
	Explanation string         `json:"explanation"`
}

// QuickQAQuestionDTO is one quick-answer question.
type QuickQAQuestionDTO struct {
	Question            string   `json:"question"`
	CorrectAnswer       string   `json:"correctAnswer"`
	Explanation         string   `json:"explanation"`
	OtherCorrectOptions []string `json:"otherCorrectOptions"`
}

// FlashcardQuestionDTO is one flashcard.
type FlashcardQuestionDTO struct {
	Question      string `json:"question"`
	CorrectAnswer string `json:"correctAnswer"`
	Explanation   string `json:"explanation"`
}

// QuizResponse carries all three quiz display formats.
type QuizResponse struct {
	MCQ        []MCQQuestionDTO       `json:"MCQ"`
	QuickQA    []QuickQAQuestionDTO   `json:"QuickQA"`
	Flashcards []FlashcardQuestionDTO `json:"Flashcards"`
}

// NoteDTO is a single structured study note.
type NoteDTO struct {
	Title         string   `json:"title"`
	Subject       string   `json:"subject"`
	Description   string   `json:"description"`
	Content       string   `json:"content"`
	KeyPoints     []string `json:"keyPoints"`
	Difficulty    string   `json:"difficulty"`
	EstimatedTime string   `json:"estimatedTime"`
	LastUpdated   string   `json:"lastUpdated"`
}

// NotesResponse is the response body for the notes endpoint. ID echoes the
// text ID the notes were generated from.
type NotesResponse struct {
	ID    string    `json:"id"`
	Notes []NoteDTO `json:"notes"`
}

// explanationsToResponse converts the domain artifact to its response DTO.
func explanationsToResponse(e *domain.Explanations) ExplanationsResponse {
	explanations := make([]ConceptExplanationDTO, 0, len(e.Explanations))
	for _, ce := range e.Explanations {
		explanations = append(explanations, ConceptExplanationDTO{
			Concept:     ce.Concept,
			Explanation: ce.Explanation,
		})
	}

	return ExplanationsResponse{
		Explanations:       explanations,
		StudyTips:          e.StudyTips,
		LearningApproaches: e.LearningApproaches,
	}
}

// quizToResponse converts the derived quiz formats to their response DTO.
func quizToResponse(f *quizformat.AllFormats) QuizResponse {
	mcq := make([]MCQQuestionDTO, 0, len(f.MCQ))
	for _, q := range f.MCQ {
		answers := make([]MCQOptionDTO, 0, len(q.Answers))
		for _, opt := range q.Answers {
			answers = append(answers, MCQOptionDTO{Answer: opt.Answer, Correct: opt.Correct})
		}
		mcq = append(mcq, MCQQuestionDTO{
			Question:    q.Question,
			Answers:     answers,
			Explanation: q.Explanation,
		})
	}

	quickQA := make([]QuickQAQuestionDTO, 0, len(f.QuickQA))
	for _, q := range f.QuickQA {
		quickQA = append(quickQA, QuickQAQuestionDTO{
			Question:            q.Question,
			CorrectAnswer:       q.CorrectAnswer,
			Explanation:         q.Explanation,
			OtherCorrectOptions: q.OtherCorrectOptions,
		})
	}

	flashcards := make([]FlashcardQuestionDTO, 0, len(f.Flashcards))
	for _, q := range f.Flashcards {
		flashcards = append(flashcards, FlashcardQuestionDTO{
			Question:      q.Question,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
		})
	}

	return QuizResponse{MCQ: mcq, QuickQA: quickQA, Flashcards: flashcards}
}

// notesToResponse converts the tagged notes artifact to its response DTO.
func notesToResponse(result *service.NotesResult) NotesResponse {
	notes := make([]NoteDTO, 0, len(result.Notes.Notes))
	for _, n := range result.Notes.Notes {
		notes = append(notes, NoteDTO{
			Title:         n.Title,
			Subject:       n.Subject,
			Description:   n.Description,
			Content:       n.Content,
			KeyPoints:     n.KeyPoints,
			Difficulty:    string(n.Difficulty),
			EstimatedTime: n.EstimatedTime,
			LastUpdated:   n.LastUpdated,
		})
	}

	return NotesResponse{
		ID:    result.Key.String(),
		Notes: notes,
	}
}
