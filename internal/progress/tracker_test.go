package progress

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/example/lingua/internal/leveling"
)

// fakeStore is an in-memory Store for Tracker tests.
type fakeStore struct {
	mu       sync.Mutex
	learners map[int64]*UserProgress
	records  []*ExerciseRecord
	failNext error
}

func newFakeStore() *fakeStore {
	return &fakeStore{learners: make(map[int64]*UserProgress)}
}

func (s *fakeStore) GetProgress(_ context.Context, userKey int64) (*UserProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.learners[userKey]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (s *fakeStore) Apply(_ context.Context, prog *UserProgress, rec *ExerciseRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failNext != nil {
		err := s.failNext
		s.failNext = nil
		return err
	}
	cp := *prog
	s.learners[prog.UserKey] = &cp
	s.records = append(s.records, rec)
	return nil
}

func newTestTracker(store Store, now time.Time) *Tracker {
	tr := NewTracker(store)
	tr.now = func() time.Time { return now }
	return tr
}

func correctInput(userKey int64, topic string) RecordInput {
	return RecordInput{
		UserKey:       userKey,
		ExerciseType:  "grammar",
		Topic:         topic,
		Question:      "She ____ to school every day. (go)",
		UserAnswer:    "goes",
		CorrectAnswer: "goes",
		IsCorrect:     true,
		Difficulty:    0.5,
		TimeSpentSec:  12,
	}
}

func TestRecordFirstExercise(t *testing.T) {
	store := newFakeStore()
	tr := newTestTracker(store, noon)

	got, err := tr.Record(context.Background(), correctInput(42, "Articles (a/an/the)"))
	if err != nil {
		t.Fatalf("Record: %v", err)
	}

	if got.TotalExercises != 1 || got.CorrectAnswers != 1 {
		t.Errorf("counters = %d/%d, want 1/1", got.CorrectAnswers, got.TotalExercises)
	}
	if got.Accuracy != 1.0 {
		t.Errorf("accuracy = %v, want 1.0", got.Accuracy)
	}
	if got.StreakDays != 1 {
		t.Errorf("streak = %d, want 1", got.StreakDays)
	}
	if len(got.WeakTopics) != 0 {
		t.Errorf("weak topics = %v, want empty after a correct answer", got.WeakTopics)
	}
	if got.LastExerciseDate != "2026-08-29" {
		t.Errorf("last exercise date = %q, want today", got.LastExerciseDate)
	}
	if got.Level != leveling.Beginner {
		t.Errorf("level = %v, want beginner", got.Level)
	}
	if len(store.records) != 1 {
		t.Fatalf("appended %d records, want 1", len(store.records))
	}
}

func TestRecordAggregates(t *testing.T) {
	store := newFakeStore()
	tr := newTestTracker(store, noon)
	ctx := context.Background()

	results := []bool{true, true, false, true}
	for _, ok := range results {
		in := correctInput(7, "Past Simple")
		in.IsCorrect = ok
		if _, err := tr.Record(ctx, in); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	got, err := store.GetProgress(ctx, 7)
	if err != nil {
		t.Fatal(err)
	}
	if got.TotalExercises != 4 || got.CorrectAnswers != 3 {
		t.Errorf("counters = %d/%d, want 3/4", got.CorrectAnswers, got.TotalExercises)
	}
	if got.Accuracy != 0.75 {
		t.Errorf("accuracy = %v, want 0.75", got.Accuracy)
	}
	// Same-day practice keeps the streak at one.
	if got.StreakDays != 1 {
		t.Errorf("streak = %d, want 1", got.StreakDays)
	}
}

func TestRecordWeakTopicEviction(t *testing.T) {
	store := newFakeStore()
	tr := newTestTracker(store, noon)
	ctx := context.Background()

	for i := 1; i <= 6; i++ {
		in := correctInput(3, fmt.Sprintf("topic-%d", i))
		in.IsCorrect = false
		if _, err := tr.Record(ctx, in); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	got, _ := store.GetProgress(ctx, 3)
	want := []string{"topic-2", "topic-3", "topic-4", "topic-5", "topic-6"}
	if !reflect.DeepEqual(got.WeakTopics, want) {
		t.Errorf("weak topics = %v, want %v (oldest evicted)", got.WeakTopics, want)
	}
}

func TestRecordWeakTopicDeduplication(t *testing.T) {
	store := newFakeStore()
	tr := newTestTracker(store, noon)
	ctx := context.Background()

	in := correctInput(3, "Conditionals")
	in.IsCorrect = false
	for range 3 {
		if _, err := tr.Record(ctx, in); err != nil {
			t.Fatal(err)
		}
	}

	got, _ := store.GetProgress(ctx, 3)
	if !reflect.DeepEqual(got.WeakTopics, []string{"Conditionals"}) {
		t.Errorf("weak topics = %v, want a single deduplicated entry", got.WeakTopics)
	}
}

func TestRecordMissWithoutTopic(t *testing.T) {
	store := newFakeStore()
	tr := newTestTracker(store, noon)

	in := correctInput(3, "")
	in.IsCorrect = false
	got, err := tr.Record(context.Background(), in)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.WeakTopics) != 0 {
		t.Errorf("weak topics = %v, want empty when no topic was given", got.WeakTopics)
	}
}

func TestRecordStreakAcrossDays(t *testing.T) {
	store := newFakeStore()
	ctx := context.Background()

	// Three consecutive days, then a two-day gap.
	days := []struct {
		offset int
		want   int
	}{
		{0, 1}, {1, 2}, {2, 3}, {5, 1},
	}
	for _, d := range days {
		tr := newTestTracker(store, noon.AddDate(0, 0, d.offset))
		got, err := tr.Record(ctx, correctInput(11, "To be"))
		if err != nil {
			t.Fatal(err)
		}
		if got.StreakDays != d.want {
			t.Errorf("day +%d: streak = %d, want %d", d.offset, got.StreakDays, d.want)
		}
	}
}

func TestRecordLevelOverride(t *testing.T) {
	store := newFakeStore()
	tr := newTestTracker(store, noon)
	ctx := context.Background()

	// Without NewLevel the stored level stays put.
	got, err := tr.Record(ctx, correctInput(9, "Modal verbs"))
	if err != nil {
		t.Fatal(err)
	}
	if got.Level != leveling.Beginner {
		t.Errorf("level = %v, want untouched beginner", got.Level)
	}

	in := correctInput(9, "Modal verbs")
	in.NewLevel = leveling.Intermediate
	got, err = tr.Record(ctx, in)
	if err != nil {
		t.Fatal(err)
	}
	if got.Level != leveling.Intermediate {
		t.Errorf("level = %v, want the caller-supplied override", got.Level)
	}
}

func TestRecordUsername(t *testing.T) {
	store := newFakeStore()
	tr := newTestTracker(store, noon)
	ctx := context.Background()

	in := correctInput(11, "Articles (a/an/the)")
	in.Username = "masha"
	got, err := tr.Record(ctx, in)
	if err != nil {
		t.Fatal(err)
	}
	if got.Username != "masha" {
		t.Errorf("username = %q, want masha", got.Username)
	}

	// A later record without a name keeps the stored one.
	got, err = tr.Record(ctx, correctInput(11, "Articles (a/an/the)"))
	if err != nil {
		t.Fatal(err)
	}
	if got.Username != "masha" {
		t.Errorf("username = %q after nameless record, want masha kept", got.Username)
	}

	// A new name overwrites.
	in = correctInput(11, "Articles (a/an/the)")
	in.Username = "maria"
	got, err = tr.Record(ctx, in)
	if err != nil {
		t.Fatal(err)
	}
	if got.Username != "maria" {
		t.Errorf("username = %q, want maria", got.Username)
	}
}

func TestRecordClampsInvalidInputs(t *testing.T) {
	store := newFakeStore()
	tr := newTestTracker(store, noon)

	in := correctInput(5, "Articles (a/an/the)")
	in.Difficulty = 3.5
	in.TimeSpentSec = -20
	if _, err := tr.Record(context.Background(), in); err != nil {
		t.Fatal(err)
	}

	rec := store.records[0]
	if rec.Difficulty != 1.0 {
		t.Errorf("record difficulty = %v, want clamped to 1.0", rec.Difficulty)
	}
	if rec.TimeSpentSec != 0 {
		t.Errorf("record time spent = %d, want clamped to 0", rec.TimeSpentSec)
	}
}

func TestRecordStoreFailure(t *testing.T) {
	store := newFakeStore()
	tr := newTestTracker(store, noon)
	ctx := context.Background()

	wantErr := errors.New("disk full")
	store.failNext = wantErr

	if _, err := tr.Record(ctx, correctInput(8, "To be")); !errors.Is(err, wantErr) {
		t.Fatalf("Record error = %v, want wrapped store failure", err)
	}

	// Nothing may have been persisted.
	got, _ := store.GetProgress(ctx, 8)
	if got != nil {
		t.Error("progress persisted despite store failure")
	}
	if len(store.records) != 0 {
		t.Error("record appended despite store failure")
	}

	// The next attempt starts from the untouched prior state.
	after, err := tr.Record(ctx, correctInput(8, "To be"))
	if err != nil {
		t.Fatal(err)
	}
	if after.TotalExercises != 1 {
		t.Errorf("total after recovery = %d, want 1", after.TotalExercises)
	}
}

func TestRecordConcurrentSameUser(t *testing.T) {
	store := newFakeStore()
	tr := newTestTracker(store, noon)
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			in := correctInput(1, "Present Simple")
			in.IsCorrect = i%2 == 0
			if _, err := tr.Record(ctx, in); err != nil {
				t.Errorf("Record: %v", err)
			}
		}()
	}
	wg.Wait()

	got, _ := store.GetProgress(ctx, 1)
	if got.TotalExercises != n {
		t.Errorf("total = %d, want %d (lost updates under concurrency)", got.TotalExercises, n)
	}
	if got.CorrectAnswers != n/2 {
		t.Errorf("correct = %d, want %d", got.CorrectAnswers, n/2)
	}
}

func TestEncourage(t *testing.T) {
	tests := []struct {
		streak   int
		accuracy float64
		want     Encouragement
	}{
		{15, 0.2, EncourageStreakTwoWeeks},
		{14, 0.99, EncourageStreakTwoWeeks},
		{7, 0.5, EncourageStreakWeek},
		{3, 0.5, EncourageStreakBuilding},
		{2, 0.95, EncourageAccuracyStellar},
		{0, 0.75, EncourageAccuracySolid},
		{0, 0.3, EncourageKeepGoing},
	}
	for _, tt := range tests {
		if got := Encourage(tt.streak, tt.accuracy); got != tt.want {
			t.Errorf("Encourage(%d, %v) = %v, want %v", tt.streak, tt.accuracy, got, tt.want)
		}
	}
}
