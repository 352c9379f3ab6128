package exercise

import (
	"strings"
	"testing"

	"github.com/example/lingua/internal/leveling"
)

func TestBuildUserMessage(t *testing.T) {
	msg := buildUserMessage(GenerateInput{
		Type:       TypeVocab,
		Topic:      "Prepositions of place",
		Level:      leveling.Intermediate,
		Difficulty: 0.55,
		WeakTopics: []string{"Articles", "Past Simple"},
	})

	for _, want := range []string{
		"vocabulary multiple-choice",
		"Topic: Prepositions of place",
		"Level: intermediate",
		"Difficulty: 0.55",
		"Articles, Past Simple",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
}

func TestBuildUserMessageClampsDifficulty(t *testing.T) {
	msg := buildUserMessage(GenerateInput{Type: TypeGrammar, Difficulty: 3.0})
	if !strings.Contains(msg, "Difficulty: 1.00") {
		t.Errorf("difficulty not clamped to 1.0:\n%s", msg)
	}

	msg = buildUserMessage(GenerateInput{Type: TypeGrammar, Difficulty: -1.0})
	if !strings.Contains(msg, "Difficulty: 0.00") {
		t.Errorf("difficulty not clamped to 0.0:\n%s", msg)
	}
}

func TestBuildUserMessageOmitsEmptyWeakTopics(t *testing.T) {
	msg := buildUserMessage(GenerateInput{Type: TypeTranslate, Topic: "To be"})
	if strings.Contains(msg, "struggles") {
		t.Errorf("weak topics line present without weak topics:\n%s", msg)
	}
}
