package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "validate-test-exercise",
		Description: "minimal exercise shape",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question":       map[string]any{"type": "string"},
				"correct_answer": map[string]any{"type": "string"},
			},
			"required":             []any{"question", "correct_answer"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{
			name: "conforming document",
			raw:  `{"question": "Translate: cat", "correct_answer": "кот"}`,
		},
		{
			name:    "missing required field",
			raw:     `{"question": "Translate: cat"}`,
			wantErr: true,
		},
		{
			name:    "wrong type",
			raw:     `{"question": 42, "correct_answer": "кот"}`,
			wantErr: true,
		},
		{
			name:    "extra field rejected",
			raw:     `{"question": "q", "correct_answer": "a", "hint": "no"}`,
			wantErr: true,
		},
		{
			name:    "not JSON at all",
			raw:     `Sure! Here is your exercise:`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(testSchema(), json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("validateResponse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var inv *ErrInvalidResponse
				if !errors.As(err, &inv) {
					t.Errorf("error type = %T, want *ErrInvalidResponse", err)
				}
			}
		})
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`anything goes`)); err != nil {
		t.Errorf("nil schema should skip validation, got %v", err)
	}
}
