package store

import (
	"context"
	"reflect"
	"testing"

	"github.com/example/lingua/internal/leveling"
	"github.com/example/lingua/internal/progress"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestGetProgressUnknownLearner(t *testing.T) {
	s := openTestStore(t)

	got, err := s.Learners().GetProgress(context.Background(), 404)
	if err != nil {
		t.Fatalf("GetProgress: %v", err)
	}
	if got != nil {
		t.Errorf("GetProgress for unknown learner = %+v, want nil", got)
	}
}

func TestApplyCreatesAndUpdates(t *testing.T) {
	s := openTestStore(t)
	repo := s.Learners()
	ctx := context.Background()

	prog := &progress.UserProgress{
		UserKey:          42,
		Level:            leveling.Beginner,
		TotalExercises:   1,
		CorrectAnswers:   1,
		Accuracy:         1.0,
		StreakDays:       1,
		LastExerciseDate: "2026-08-29",
	}
	rec := &progress.ExerciseRecord{
		UserKey:       42,
		ExerciseType:  "grammar",
		Topic:         "Articles (a/an/the)",
		Question:      "___ apple a day",
		UserAnswer:    "an",
		CorrectAnswer: "an",
		Correct:       true,
		Difficulty:    0.3,
		TimeSpentSec:  9,
	}

	if err := repo.Apply(ctx, prog, rec); err != nil {
		t.Fatalf("Apply (create): %v", err)
	}

	got, err := repo.GetProgress(ctx, 42)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got.TotalExercises != 1 || got.StreakDays != 1 {
		t.Fatalf("round-tripped progress = %+v", got)
	}

	// Second apply updates the same row instead of creating another.
	prog.Username = "dima"
	prog.TotalExercises = 2
	prog.Accuracy = 0.5
	prog.WeakTopics = []string{"Past Simple"}
	if err := repo.Apply(ctx, prog, rec); err != nil {
		t.Fatalf("Apply (update): %v", err)
	}

	got, err = repo.GetProgress(ctx, 42)
	if err != nil {
		t.Fatal(err)
	}
	if got.TotalExercises != 2 || got.Accuracy != 0.5 {
		t.Errorf("updated progress = %+v", got)
	}
	if got.Username != "dima" {
		t.Errorf("username = %q, want dima", got.Username)
	}
	if !reflect.DeepEqual(got.WeakTopics, []string{"Past Simple"}) {
		t.Errorf("weak topics = %v", got.WeakTopics)
	}

	history, err := repo.History(ctx, 42, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(history) != 2 {
		t.Errorf("history length = %d, want 2", len(history))
	}
}

func TestAverageStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.Learners()
	ctx := context.Background()

	prog := progress.NewUserProgress(7)
	for i, d := range []float64{0.2, 0.4, 0.6} {
		rec := &progress.ExerciseRecord{
			UserKey:      7,
			Correct:      true,
			Difficulty:   d,
			TimeSpentSec: (i + 1) * 10,
		}
		prog.TotalExercises++
		if err := repo.Apply(ctx, prog, rec); err != nil {
			t.Fatal(err)
		}
	}

	stats, err := repo.AverageStats(ctx, 7)
	if err != nil {
		t.Fatalf("AverageStats: %v", err)
	}
	if stats.Attempts != 3 {
		t.Errorf("attempts = %d, want 3", stats.Attempts)
	}
	if stats.AvgDifficulty < 0.39 || stats.AvgDifficulty > 0.41 {
		t.Errorf("avg difficulty = %v, want ~0.4", stats.AvgDifficulty)
	}
	if stats.AvgTimeSec < 19.9 || stats.AvgTimeSec > 20.1 {
		t.Errorf("avg time = %v, want ~20", stats.AvgTimeSec)
	}

	// Unknown learner aggregates to zero, not an error.
	stats, err = repo.AverageStats(ctx, 999)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Attempts != 0 || stats.AvgDifficulty != 0 {
		t.Errorf("stats for unknown learner = %+v, want zeros", stats)
	}
}

func TestLLMEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.Events()
	ctx := context.Background()

	data := LLMEventData{
		Provider:    "openai",
		Model:       "gpt-4o-mini",
		Purpose:     "exercise-gen",
		InputTokens: 120,
		LatencyMs:   250,
		Success:     true,
	}
	if err := repo.AppendLLMRequest(ctx, data); err != nil {
		t.Fatalf("AppendLLMRequest: %v", err)
	}

	events, err := repo.RecentLLMRequests(ctx, 10)
	if err != nil {
		t.Fatalf("RecentLLMRequests: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Purpose != "exercise-gen" || !events[0].Success {
		t.Errorf("event = %+v", events[0])
	}
}
