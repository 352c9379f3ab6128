package exercise

import "github.com/example/lingua/internal/leveling"

// Exercise represents a generated language exercise ready for display.
type Exercise struct {
	// Title is a short heading, e.g. "Translation RU→EN".
	Title string

	// Instruction tells the learner how to answer, e.g. "Translate into
	// English. Answer in one line."
	Instruction string

	// Question is the task text shown to the learner.
	Question string

	// Answer is the canonical correct answer as plain text.
	Answer string

	// Explanation is a brief note on why the answer is correct. May be
	// empty when the model omits it.
	Explanation string

	// Tips are optional short hints the learner can reveal.
	Tips []string

	// Type is the exercise type this was generated for.
	Type Type

	// Topic is the grammar or vocabulary topic this was generated for.
	Topic string

	// Fallback reports whether this is a canned exercise served because
	// generation failed.
	Fallback bool
}

// Type describes the kind of exercise.
type Type string

const (
	// TypeGrammar is a fill-the-gap grammar drill.
	TypeGrammar Type = "grammar"

	// TypeVocab is a vocabulary multiple-choice question.
	TypeVocab Type = "vocab"

	// TypeTranslate is a translation task into the target language.
	TypeTranslate Type = "translate"
)

// Valid reports whether t is a known exercise type.
func (t Type) Valid() bool {
	switch t {
	case TypeGrammar, TypeVocab, TypeTranslate:
		return true
	}
	return false
}

// GenerateInput holds all context needed to generate an exercise.
type GenerateInput struct {
	// Type is the kind of exercise to generate.
	Type Type

	// Topic is the target topic, e.g. "Present Simple".
	Topic string

	// Level is the learner's proficiency level.
	Level leveling.Level

	// Difficulty is the calibrated difficulty in [0,1]. Values outside
	// the range are clamped.
	Difficulty float64

	// WeakTopics are topics the learner has recently missed. Included
	// in the prompt so the exercise can touch on them.
	WeakTopics []string
}
