package exercise

import (
	"context"
	"encoding/json"

	"github.com/example/lingua/internal/llm"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// exerciseOutput is the raw LLM response shape.
type exerciseOutput struct {
	Title       string   `json:"title"`
	Instruction string   `json:"instruction"`
	Question    string   `json:"question"`
	Answer      string   `json:"correct_answer"`
	Explanation string   `json:"explanation"`
	Tips        []string `json:"tips"`
}

// Generate produces a single exercise for the given input context. On any
// provider or parse failure it falls back to a canned exercise instead of
// returning an error, so callers always have something to show.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (*Exercise, error) {
	ctx = llm.WithPurpose(ctx, "exercise-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input)},
		},
		Schema:      ExerciseSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return fallbackExercise(input), nil
	}

	var raw exerciseOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return fallbackExercise(input), nil
	}

	// Schema validation upstream guarantees the required fields, but the
	// answer is what the session hinges on, so an empty one still falls
	// back.
	if raw.Question == "" || raw.Answer == "" {
		return fallbackExercise(input), nil
	}

	return &Exercise{
		Title:       raw.Title,
		Instruction: raw.Instruction,
		Question:    raw.Question,
		Answer:      raw.Answer,
		Explanation: raw.Explanation,
		Tips:        raw.Tips,
		Type:        input.Type,
		Topic:       input.Topic,
	}, nil
}
