package exercise

import "github.com/example/lingua/internal/llm"

// ExerciseSchema defines the JSON schema for LLM exercise generation
// responses.
var ExerciseSchema = &llm.Schema{
	Name:        "language-exercise",
	Description: "A single language practice exercise with answer and explanation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Short heading for the exercise",
			},
			"instruction": map[string]any{
				"type":        "string",
				"description": "Tells the learner how to answer, e.g. answer in one line",
			},
			"question": map[string]any{
				"type":        "string",
				"description": "The task text shown to the learner",
			},
			"correct_answer": map[string]any{
				"type":        "string",
				"description": "The correct answer as plain text",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Brief note on why the answer is correct",
			},
			"tips": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Up to 3 short hints the learner can reveal",
			},
		},
		"required":             []any{"title", "instruction", "question", "correct_answer", "explanation", "tips"},
		"additionalProperties": false,
	},
}
