package progress

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/example/lingua/internal/leveling"
)

// Store is the persistence boundary the Tracker writes through. The keys
// are stable external account ids, not storage row ids.
type Store interface {
	// GetProgress loads a learner's state, or (nil, nil) when the learner
	// has no state yet.
	GetProgress(ctx context.Context, userKey int64) (*UserProgress, error)

	// Apply persists the updated progress and appends the exercise record
	// as a single all-or-nothing transaction.
	Apply(ctx context.Context, prog *UserProgress, rec *ExerciseRecord) error
}

// RecordInput carries one graded exercise result into the Tracker.
type RecordInput struct {
	UserKey int64

	// Username, when non-empty, is stored on the learner. Empty input
	// keeps whatever name is already on record.
	Username string

	ExerciseType  string
	Topic         string
	Question      string
	UserAnswer    string
	CorrectAnswer string
	IsCorrect     bool
	Difficulty    float64
	TimeSpentSec  int

	// NewLevel, when non-empty, overwrites the stored level. Callers
	// typically pass the classifier's output for the updated stats; the
	// Tracker itself never reclassifies.
	NewLevel leveling.Level
}

// lockStripes is the size of the per-user mutex table. Calls for different
// users land on different stripes (modulo collisions) and never block each
// other; calls for the same user always serialize.
const lockStripes = 64

// Tracker owns all mutation of learner progress. One Record call reads the
// prior state, derives the new aggregates and streak, and persists both
// the state and the history row transactionally.
type Tracker struct {
	store Store
	locks [lockStripes]sync.Mutex
	now   func() time.Time
}

// NewTracker creates a Tracker backed by the given store.
func NewTracker(store Store) *Tracker {
	return &Tracker{store: store, now: time.Now}
}

// Record applies one exercise result and returns the updated state.
// Concurrent calls for the same user are serialized; the store write is a
// single transaction, so a failure leaves nothing partially persisted.
func (t *Tracker) Record(ctx context.Context, in RecordInput) (*UserProgress, error) {
	mu := &t.locks[uint64(in.UserKey)%lockStripes]
	mu.Lock()
	defer mu.Unlock()

	prior, err := t.store.GetProgress(ctx, in.UserKey)
	if err != nil {
		return nil, fmt.Errorf("load progress for user %d: %w", in.UserKey, err)
	}
	if prior == nil {
		prior = NewUserProgress(in.UserKey)
	}

	updated := applyResult(prior, in, t.now())
	rec := &ExerciseRecord{
		UserKey:       in.UserKey,
		ExerciseType:  in.ExerciseType,
		Topic:         in.Topic,
		Question:      in.Question,
		UserAnswer:    in.UserAnswer,
		CorrectAnswer: in.CorrectAnswer,
		Correct:       in.IsCorrect,
		Difficulty:    clampDifficulty(in.Difficulty),
		TimeSpentSec:  max(in.TimeSpentSec, 0),
	}

	if err := t.store.Apply(ctx, updated, rec); err != nil {
		return nil, fmt.Errorf("persist exercise result for user %d: %w", in.UserKey, err)
	}
	return updated, nil
}

// applyResult derives the post-exercise state without mutating prior.
func applyResult(prior *UserProgress, in RecordInput, now time.Time) *UserProgress {
	next := *prior
	next.WeakTopics = append([]string(nil), prior.WeakTopics...)

	if in.Username != "" {
		next.Username = in.Username
	}

	next.TotalExercises++
	if in.IsCorrect {
		next.CorrectAnswers++
	}
	next.Accuracy = float64(next.CorrectAnswers) / float64(next.TotalExercises)

	if !in.IsCorrect && in.Topic != "" && !containsTopic(next.WeakTopics, in.Topic) {
		next.WeakTopics = append(next.WeakTopics, in.Topic)
		if len(next.WeakTopics) > WeakTopicWindow {
			next.WeakTopics = next.WeakTopics[len(next.WeakTopics)-WeakTopicWindow:]
		}
	}

	next.StreakDays, next.LastExerciseDate = NextStreak(prior.StreakDays, prior.LastExerciseDate, now)

	if in.NewLevel != "" {
		next.Level = in.NewLevel
	}

	return &next
}

func containsTopic(topics []string, topic string) bool {
	for _, t := range topics {
		if t == topic {
			return true
		}
	}
	return false
}

func clampDifficulty(d float64) float64 {
	if d < 0 {
		return 0
	}
	if d > 1 {
		return 1
	}
	return d
}
