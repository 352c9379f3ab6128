package exercise

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/example/lingua/internal/leveling"
	"github.com/example/lingua/internal/llm"
)

func validExerciseJSON() json.RawMessage {
	return json.RawMessage(`{
		"title": "Present Simple",
		"instruction": "Fill in the gap. Answer in one line.",
		"question": "He ____ football on Sundays. (play)",
		"correct_answer": "plays",
		"explanation": "Third person singular takes -s.",
		"tips": ["he/she/it adds -s"]
	}`)
}

func TestGenerateParsesResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validExerciseJSON()})
	gen := New(mock, DefaultConfig())

	ex, err := gen.Generate(context.Background(), GenerateInput{
		Type:       TypeGrammar,
		Topic:      "Present Simple",
		Level:      leveling.Beginner,
		Difficulty: 0.3,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if ex.Answer != "plays" {
		t.Errorf("Answer = %q, want plays", ex.Answer)
	}
	if ex.Type != TypeGrammar {
		t.Errorf("Type = %q, want grammar", ex.Type)
	}
	if ex.Topic != "Present Simple" {
		t.Errorf("Topic = %q, want Present Simple", ex.Topic)
	}
	if ex.Fallback {
		t.Error("Fallback = true for a successful generation")
	}
	if len(ex.Tips) != 1 {
		t.Errorf("Tips = %v, want one tip", ex.Tips)
	}

	// The request must carry the structured-output schema.
	if len(mock.Calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "language-exercise" {
		t.Errorf("Schema = %v, want language-exercise", req.Schema)
	}
	if req.System == "" {
		t.Error("System prompt is empty")
	}
}

func TestGenerateFallsBackOnProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("connection refused")})
	gen := New(mock, DefaultConfig())

	ex, err := gen.Generate(context.Background(), GenerateInput{
		Type:  TypeTranslate,
		Topic: "Present Simple",
		Level: leveling.Beginner,
	})
	if err != nil {
		t.Fatalf("Generate must not fail, got %v", err)
	}
	if !ex.Fallback {
		t.Error("Fallback = false, want true")
	}
	if ex.Type != TypeTranslate {
		t.Errorf("Type = %q, want translate", ex.Type)
	}
	if ex.Answer == "" {
		t.Error("fallback exercise has no answer")
	}
}

func TestGenerateFallsBackOnEmptyAnswer(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"title": "t", "instruction": "i", "question": "q",
		"correct_answer": "", "explanation": "", "tips": []
	}`)})
	gen := New(mock, DefaultConfig())

	ex, err := gen.Generate(context.Background(), GenerateInput{Type: TypeVocab})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !ex.Fallback {
		t.Error("Fallback = false, want true")
	}
}

func TestFallbackPerType(t *testing.T) {
	tests := []struct {
		typ        Type
		wantAnswer string
	}{
		{TypeTranslate, "I study English every day because I want to speak fluently."},
		{TypeVocab, "B"},
		{TypeGrammar, "goes"},
		{Type("unknown"), "goes"},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			ex := fallbackExercise(GenerateInput{Type: tt.typ, Topic: "Articles"})
			if ex.Answer != tt.wantAnswer {
				t.Errorf("Answer = %q, want %q", ex.Answer, tt.wantAnswer)
			}
			if !ex.Fallback {
				t.Error("Fallback = false, want true")
			}
			if ex.Topic != "Articles" {
				t.Errorf("Topic = %q, want Articles", ex.Topic)
			}
		})
	}
}
