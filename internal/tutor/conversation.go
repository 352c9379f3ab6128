package tutor

import (
	"github.com/google/uuid"

	"github.com/example/lingua/internal/llm"
)

// maxHistory bounds how many turns a conversation keeps. Older turns are
// dropped from the front; the system prompt is pinned and never trimmed.
const maxHistory = 10

// Conversation is a single tutoring chat session. It is an explicit
// per-session object, not shared process state; callers own its lifetime.
// Not safe for concurrent use.
type Conversation struct {
	// ID uniquely identifies this session for logging and persistence.
	ID string

	system  string
	history []llm.Message
}

// NewConversation creates a Conversation with the given pinned system
// prompt.
func NewConversation(system string) *Conversation {
	return &Conversation{
		ID:     uuid.NewString(),
		system: system,
	}
}

// History returns a copy of the conversation turns, oldest first.
func (c *Conversation) History() []llm.Message {
	out := make([]llm.Message, len(c.history))
	copy(out, c.history)
	return out
}

// Reset clears the history but keeps the session ID and system prompt.
func (c *Conversation) Reset() {
	c.history = nil
}

// append records a turn and trims the history to the last maxHistory
// messages.
func (c *Conversation) append(role llm.Role, content string) {
	c.history = append(c.history, llm.Message{Role: role, Content: content})
	if len(c.history) > maxHistory {
		c.history = c.history[len(c.history)-maxHistory:]
	}
}
