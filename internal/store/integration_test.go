package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/lingua/internal/answers"
	"github.com/example/lingua/internal/leveling"
	"github.com/example/lingua/internal/progress"
)

// Exercises the full recording path: evaluate an answer, run it through
// the Tracker, and read the persisted state back through the repo.
func TestTrackerOverStore(t *testing.T) {
	s := openTestStore(t)
	repo := s.Learners()
	tracker := progress.NewTracker(repo)
	eval := answers.New()
	ctx := context.Background()

	const userKey = int64(1001)

	attempts := []struct {
		topic      string
		userAnswer string
		correct    string
	}{
		{"Present Simple", "She goes to school", "She goes to school"},
		{"Articles (a/an/the)", "a apple", "an apple"},
		{"Present Simple", "I don't know", "I don't know"},
	}

	var last *progress.UserProgress
	for _, a := range attempts {
		res := eval.Evaluate(a.userAnswer, a.correct)

		var err error
		last, err = tracker.Record(ctx, progress.RecordInput{
			UserKey:       userKey,
			ExerciseType:  "grammar",
			Topic:         a.topic,
			Question:      "q",
			UserAnswer:    a.userAnswer,
			CorrectAnswer: a.correct,
			IsCorrect:     res.Correct,
			Difficulty:    0.3,
			TimeSpentSec:  12,
		})
		require.NoError(t, err)
	}

	require.NotNil(t, last)
	assert.Equal(t, 3, last.TotalExercises)
	assert.Equal(t, 2, last.CorrectAnswers)
	assert.InDelta(t, 2.0/3.0, last.Accuracy, 1e-9)
	assert.Equal(t, []string{"Articles (a/an/the)"}, last.WeakTopics)
	assert.Equal(t, 1, last.StreakDays)
	assert.Equal(t, time.Now().UTC().Format(progress.DateLayout), last.LastExerciseDate)
	assert.Equal(t, leveling.Beginner, last.Level)

	// The same state must come back from a fresh read.
	stored, err := repo.GetProgress(ctx, userKey)
	require.NoError(t, err)
	assert.Equal(t, last, stored)

	history, err := repo.History(ctx, userKey, 0)
	require.NoError(t, err)
	assert.Len(t, history, 3)

	stats, err := repo.AverageStats(ctx, userKey)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Attempts)
	assert.InDelta(t, 0.3, stats.AvgDifficulty, 1e-9)
}

func TestResetRemovesLearnerAndHistory(t *testing.T) {
	s := openTestStore(t)
	repo := s.Learners()
	ctx := context.Background()

	const userKey = int64(2002)

	prog := progress.NewUserProgress(userKey)
	prog.TotalExercises = 1
	rec := &progress.ExerciseRecord{UserKey: userKey, Correct: true}
	require.NoError(t, repo.Apply(ctx, prog, rec))

	require.NoError(t, repo.Reset(ctx, userKey))

	got, err := repo.GetProgress(ctx, userKey)
	require.NoError(t, err)
	assert.Nil(t, got)

	history, err := repo.History(ctx, userKey, 0)
	require.NoError(t, err)
	assert.Empty(t, history)

	// Resetting a learner that does not exist is a no-op.
	assert.NoError(t, repo.Reset(ctx, 9999))
}
