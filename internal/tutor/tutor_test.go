package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/example/lingua/internal/llm"
)

func textResponse(s string) llm.MockResponse {
	b, _ := json.Marshal(s)
	return llm.MockResponse{Content: json.RawMessage(b)}
}

func TestAskAppendsHistory(t *testing.T) {
	mock := llm.NewMockProvider(
		textResponse("The Present Simple describes habits."),
		textResponse("Yes, add -s for he/she/it."),
	)
	tut := New(mock)
	conv := tut.NewConversation()

	a1, err := tut.Ask(context.Background(), conv, "What is the Present Simple?")
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if a1 != "The Present Simple describes habits." {
		t.Errorf("answer = %q", a1)
	}

	if _, err := tut.Ask(context.Background(), conv, "Does the verb change?"); err != nil {
		t.Fatalf("Ask: %v", err)
	}

	hist := conv.History()
	if len(hist) != 4 {
		t.Fatalf("history len = %d, want 4", len(hist))
	}
	if hist[0].Role != llm.RoleUser || hist[1].Role != llm.RoleAssistant {
		t.Errorf("history roles = %v %v, want user then assistant", hist[0].Role, hist[1].Role)
	}

	// The second request must carry the first exchange.
	second := mock.Calls[1]
	if len(second.Messages) != 3 {
		t.Errorf("second request messages = %d, want 3", len(second.Messages))
	}
}

func TestAskFailureLeavesHistoryClean(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("boom")})
	tut := New(mock)
	conv := tut.NewConversation()

	if _, err := tut.Ask(context.Background(), conv, "hello?"); err == nil {
		t.Fatal("expected error")
	}
	if len(conv.History()) != 0 {
		t.Errorf("history len = %d after failure, want 0", len(conv.History()))
	}
}

func TestConversationHistoryBounded(t *testing.T) {
	mock := llm.NewMockProvider()
	for i := 0; i < 8; i++ {
		mock.AddResponse(textResponse(fmt.Sprintf("answer %d", i)))
	}
	tut := New(mock)
	conv := tut.NewConversation()

	for i := 0; i < 8; i++ {
		if _, err := tut.Ask(context.Background(), conv, fmt.Sprintf("question %d", i)); err != nil {
			t.Fatalf("Ask %d: %v", i, err)
		}
	}

	hist := conv.History()
	if len(hist) != maxHistory {
		t.Fatalf("history len = %d, want %d", len(hist), maxHistory)
	}
	// Oldest surviving turn is question 3 (16 turns total, last 10 kept).
	if hist[0].Content != "question 3" {
		t.Errorf("oldest turn = %q, want question 3", hist[0].Content)
	}
	if hist[len(hist)-1].Content != "answer 7" {
		t.Errorf("newest turn = %q, want answer 7", hist[len(hist)-1].Content)
	}
}

func TestConversationReset(t *testing.T) {
	mock := llm.NewMockProvider(textResponse("hi"))
	tut := New(mock)
	conv := tut.NewConversation()
	id := conv.ID

	if _, err := tut.Ask(context.Background(), conv, "hello"); err != nil {
		t.Fatalf("Ask: %v", err)
	}

	conv.Reset()
	if len(conv.History()) != 0 {
		t.Error("history not cleared by Reset")
	}
	if conv.ID != id {
		t.Error("Reset changed the session ID")
	}
}

func TestReviewWriting(t *testing.T) {
	mock := llm.NewMockProvider(textResponse("OVERALL SCORE: 7/10"))
	tut := New(mock)

	out, err := tut.ReviewWriting(context.Background(), "I has a cat.")
	if err != nil {
		t.Fatalf("ReviewWriting: %v", err)
	}
	if out != "OVERALL SCORE: 7/10" {
		t.Errorf("review = %q", out)
	}

	req := mock.Calls[0]
	if len(req.Messages) != 1 {
		t.Fatalf("messages = %d, want 1", len(req.Messages))
	}
	if !strings.Contains(req.Messages[0].Content, "I has a cat.") {
		t.Error("review prompt does not include the learner's text")
	}
	if req.Schema != nil {
		t.Error("review request must be schema-less")
	}
}
