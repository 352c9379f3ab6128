package exercise

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an English teacher creating practice exercises for learners.

Rules:
- Generate a single exercise for the given type, topic, level, and difficulty.
- The question text must be clear and self-contained.
- The correct answer must be a single unambiguous line of plain text.
- For "grammar": a fill-the-gap sentence with the base form in parentheses, e.g. "She ____ to school every day. (go)".
- For "vocab": a multiple-choice question with options labeled A/B/C; the correct answer is the letter.
- For "translate": a sentence to translate into English; the correct answer is the full English sentence.
- The explanation should briefly state the rule behind the answer.
- Provide up to 3 short tips that nudge the learner without giving the answer away.
- Match the complexity to the difficulty value: 0.2 is very easy, 0.9 is challenging.`

// typeLabels maps exercise types to their prompt descriptions.
var typeLabels = map[Type]string{
	TypeGrammar:   "a grammar fill-the-gap exercise",
	TypeVocab:     "a vocabulary multiple-choice exercise",
	TypeTranslate: "a translation exercise into English",
}

// buildUserMessage constructs the user message from GenerateInput.
func buildUserMessage(input GenerateInput) string {
	label, ok := typeLabels[input.Type]
	if !ok {
		label = "a language exercise"
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Create %s.\n\n", label)
	fmt.Fprintf(&b, "Topic: %s\n", input.Topic)
	fmt.Fprintf(&b, "Level: %s\n", input.Level)
	fmt.Fprintf(&b, "Difficulty: %.2f out of 1.0\n", clamp01(input.Difficulty))

	if len(input.WeakTopics) > 0 {
		fmt.Fprintf(&b, "The learner struggles with: %s. Work one of these in if it fits the topic.\n",
			strings.Join(input.WeakTopics, ", "))
	}

	return b.String()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
