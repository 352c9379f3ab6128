package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/example/lingua/internal/store"
)

type fakeEventRepo struct {
	events  []store.LLMEventData
	failLog bool
}

func (f *fakeEventRepo) AppendLLMRequest(_ context.Context, data store.LLMEventData) error {
	if f.failLog {
		return errors.New("event log unavailable")
	}
	f.events = append(f.events, data)
	return nil
}

func (f *fakeEventRepo) RecentLLMRequests(_ context.Context, limit int) ([]*store.LLMEvent, error) {
	return nil, nil
}

func TestLoggingProviderRecordsSuccess(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`"hello"`),
		Usage:   Usage{InputTokens: 12, OutputTokens: 7, TotalTokens: 19},
	})
	repo := &fakeEventRepo{}
	p := WithLogging(mock, repo)

	ctx := WithPurpose(context.Background(), "tutor-chat")
	if _, err := p.Generate(ctx, Request{}); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("events logged = %d, want 1", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Purpose != "tutor-chat" {
		t.Errorf("Purpose = %q, want tutor-chat", ev.Purpose)
	}
	if !ev.Success {
		t.Error("Success = false, want true")
	}
	if ev.InputTokens != 12 || ev.OutputTokens != 7 {
		t.Errorf("tokens = %d/%d, want 12/7", ev.InputTokens, ev.OutputTokens)
	}
}

func TestLoggingProviderRecordsFailure(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{}})
	repo := &fakeEventRepo{}
	p := WithLogging(mock, repo)

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}

	if len(repo.events) != 1 {
		t.Fatalf("events logged = %d, want 1", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Success {
		t.Error("Success = true, want false")
	}
	if ev.ErrorMessage == "" {
		t.Error("ErrorMessage empty, want the provider error text")
	}
	if ev.Purpose != "unknown" {
		t.Errorf("Purpose = %q, want unknown", ev.Purpose)
	}
}

func TestLoggingProviderToleratesLogFailure(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`"hello"`)})
	p := WithLogging(mock, &fakeEventRepo{failLog: true})

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("Generate should succeed despite log failure: %v", err)
	}
	if resp.Text() != "hello" {
		t.Errorf("content = %q, want hello", resp.Text())
	}
}
