package tutor

import (
	"context"
	"fmt"

	"github.com/example/lingua/internal/llm"
)

const chatSystemPrompt = `You are a friendly, professional English tutor.

Rules:
- Answer in plain text, no markup.
- Keep answers focused and practical.
- Give short rules and concrete examples.`

const reviewSystemPrompt = `You are a strict but supportive English teacher.`

const reviewPromptTemplate = `Review the following English text and give feedback.

Structure:
1) OVERALL SCORE (0-10)
2) ERRORS AND CORRECTIONS (Grammar/Vocabulary/Punctuation/Style)
3) IMPROVED VERSION
4) RECOMMENDATIONS (3-5 points)

Text to review:
%s`

// Tutor answers free-form learner questions and reviews written text.
type Tutor struct {
	provider llm.Provider
}

// New creates a Tutor backed by the given provider.
func New(provider llm.Provider) *Tutor {
	return &Tutor{provider: provider}
}

// NewConversation starts a chat session with the tutor's system prompt.
func (t *Tutor) NewConversation() *Conversation {
	return NewConversation(chatSystemPrompt)
}

// Ask appends the question to the conversation, asks the model, and
// records the answer. On failure the question is not recorded, so the
// caller can retry without polluting the history.
func (t *Tutor) Ask(ctx context.Context, conv *Conversation, question string) (string, error) {
	ctx = llm.WithPurpose(ctx, "tutor-chat")

	messages := append(conv.History(), llm.Message{Role: llm.RoleUser, Content: question})

	resp, err := t.provider.Generate(ctx, llm.Request{
		System:      conv.system,
		Messages:    messages,
		MaxTokens:   900,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("tutor ask: %w", err)
	}

	answer := resp.Text()
	conv.append(llm.RoleUser, question)
	conv.append(llm.RoleAssistant, answer)
	return answer, nil
}

// ReviewWriting runs a single-shot review of the learner's text. It is
// stateless; each text gets a fresh review.
func (t *Tutor) ReviewWriting(ctx context.Context, text string) (string, error) {
	ctx = llm.WithPurpose(ctx, "writing-review")

	resp, err := t.provider.Generate(ctx, llm.Request{
		System: reviewSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: fmt.Sprintf(reviewPromptTemplate, text)},
		},
		MaxTokens:   1400,
		Temperature: 0.3,
	})
	if err != nil {
		return "", fmt.Errorf("writing review: %w", err)
	}

	return resp.Text(), nil
}
