package progress

import (
	"github.com/example/lingua/internal/leveling"
)

// WeakTopicWindow bounds the weak-topic recency list. When a sixth topic
// arrives, the oldest entry is evicted.
const WeakTopicWindow = 5

// UserProgress is the per-learner performance state. It is owned by the
// store and mutated only through Tracker.Record.
type UserProgress struct {
	UserKey        int64
	Username       string
	Level          leveling.Level
	TotalExercises int
	CorrectAnswers int
	Accuracy       float64
	WeakTopics     []string
	StreakDays     int

	// LastExerciseDate is the calendar date (UTC, "2006-01-02") of the most
	// recent recorded exercise. Empty until the first exercise. Used only
	// for streak transitions.
	LastExerciseDate string
}

// NewUserProgress returns the state a learner starts with on first contact.
func NewUserProgress(userKey int64) *UserProgress {
	return &UserProgress{
		UserKey: userKey,
		Level:   leveling.Beginner,
	}
}

// ExerciseRecord is one graded attempt, appended to the learner's history.
// Immutable after creation.
type ExerciseRecord struct {
	UserKey       int64
	ExerciseType  string
	Topic         string
	Question      string
	UserAnswer    string
	CorrectAnswer string
	Correct       bool
	Difficulty    float64
	TimeSpentSec  int
}
