package service

import "github.com/studysnap/studysnap-api/internal/generation"

// Target schemas for each generation stage. Descriptions double as model
// guidance the way the original prompt schemas did; the numeric bounds they
// mention are enforced after parsing by the domain validators.

var summarySchema = generation.Object(
	"A study guide summary generated from extracted study material.",
	map[string]*generation.Schema{
		"summary": {
			Type: generation.TypeString,
			Description: "Act as a teacher and fully explain the content of the text in clear, " +
				"simple language, step by step, preserving all technical details. " +
				"Keep the output to a maximum of 100 words. Plain text only - no LaTeX, no markdown.",
		},
	},
)

var explanationsSchema = generation.Object(
	"Concept explanations, study tips, and learning approaches for study material.",
	map[string]*generation.Schema{
		"explanations": {
			Type:        generation.TypeArray,
			Description: "Between 1 and 5 key concepts with simple explanations. Plain text only.",
			Items: generation.Object(
				"A single key concept and its simplified explanation.",
				map[string]*generation.Schema{
					"concept": {
						Type:        generation.TypeString,
						Description: "The key concept being explained, e.g. 'Photosynthesis'.",
					},
					"explanation": {
						Type:        generation.TypeString,
						Description: "Simple explanation of the concept in easy-to-understand language.",
					},
				},
			),
		},
		"studyTips": {
			Type:        generation.TypeArray,
			Description: "Exactly 4 practical study techniques specific to the content, up to 4 words each.",
			Items:       &generation.Schema{Type: generation.TypeString},
		},
		"learningApproaches": {
			Type:        generation.TypeArray,
			Description: "Exactly 4 learning approaches for different learning styles, up to 4 words each.",
			Items:       &generation.Schema{Type: generation.TypeString},
		},
	},
)

var quizSchema = generation.Object(
	"A pool of quiz questions covering the key concepts of the text.",
	map[string]*generation.Schema{
		"questions": {
			Type:        generation.TypeArray,
			Description: "Exactly 10 questions numbered 1 through 10.",
			Items: generation.Object(
				"A single quiz question with its answer, distractors, and alternatives.",
				map[string]*generation.Schema{
					"id": {
						Type:        generation.TypeInteger,
						Description: "Question number from 1 to 10.",
					},
					"question": {
						Type:        generation.TypeString,
						Description: "The question text.",
					},
					"answer": {
						Type:        generation.TypeString,
						Description: "The single best correct answer.",
					},
					"explanation": {
						Type:        generation.TypeString,
						Description: "Why the answer is correct, grounded in the text.",
					},
					"incorrectAnswers": {
						Type:        generation.TypeArray,
						Description: "Exactly 3 plausible but incorrect answers, none equal to the answer.",
						Items:       &generation.Schema{Type: generation.TypeString},
					},
					"otherCorrectOptions": {
						Type:        generation.TypeArray,
						Description: "Exactly 3 alternative phrasings that would also be accepted as correct.",
						Items:       &generation.Schema{Type: generation.TypeString},
					},
				},
			),
		},
	},
)

var notesSchema = generation.Object(
	"Structured study notes covering the key concepts of the text.",
	map[string]*generation.Schema{
		"notes": {
			Type:        generation.TypeArray,
			Description: "Exactly 2 study notes.",
			Items: generation.Object(
				"A single structured study note.",
				map[string]*generation.Schema{
					"title": {
						Type:        generation.TypeString,
						Description: "Short title of the note.",
					},
					"subject": {
						Type:        generation.TypeString,
						Description: "Subject area the note belongs to.",
					},
					"description": {
						Type:        generation.TypeString,
						Description: "One-sentence description of what the note covers.",
					},
					"content": {
						Type:        generation.TypeString,
						Description: "The full note content in plain text.",
					},
					"keyPoints": {
						Type:        generation.TypeArray,
						Description: "Between 3 and 6 key points for quick review.",
						Items:       &generation.Schema{Type: generation.TypeString},
					},
					"difficulty": {
						Type:        generation.TypeString,
						Description: "Difficulty level of the material.",
						Enum:        []string{"Beginner", "Intermediate", "Advanced"},
					},
					"estimatedTime": {
						Type:        generation.TypeString,
						Description: "Estimated review time, e.g. '10 minutes'.",
					},
					"lastUpdated": {
						Type:        generation.TypeString,
						Description: "Human-readable date the note was generated.",
					},
				},
			),
		},
	},
)
