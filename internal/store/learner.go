package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/lingua/ent"
	"github.com/example/lingua/ent/exerciserecord"
	"github.com/example/lingua/ent/learner"
	"github.com/example/lingua/internal/leveling"
	"github.com/example/lingua/internal/progress"
)

// LearnerStats aggregates a learner's exercise history.
type LearnerStats struct {
	Attempts      int
	AvgDifficulty float64
	AvgTimeSec    float64
}

// LearnerRepo persists learner progress and exercise history. It satisfies
// progress.Store; Get returns (nil, nil) for an unknown learner and Apply
// runs as one transaction.
type LearnerRepo interface {
	GetProgress(ctx context.Context, userKey int64) (*progress.UserProgress, error)
	Apply(ctx context.Context, prog *progress.UserProgress, rec *progress.ExerciseRecord) error

	// History returns the most recent exercise records, newest first.
	History(ctx context.Context, userKey int64, limit int) ([]*progress.ExerciseRecord, error)

	// AverageStats aggregates difficulty and time spent over the history.
	AverageStats(ctx context.Context, userKey int64) (*LearnerStats, error)

	// Reset removes the learner row and all exercise records in one
	// transaction. Resetting an unknown learner is a no-op.
	Reset(ctx context.Context, userKey int64) error
}

// learnerRepo implements LearnerRepo using the ent client.
type learnerRepo struct {
	client *ent.Client
	db     *sql.DB
}

func (r *learnerRepo) GetProgress(ctx context.Context, userKey int64) (*progress.UserProgress, error) {
	l, err := r.client.Learner.Query().
		Where(learner.UserKeyEQ(userKey)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query learner %d: %w", userKey, err)
	}
	return entLearnerToProgress(l), nil
}

func (r *learnerRepo) Apply(ctx context.Context, prog *progress.UserProgress, rec *progress.ExerciseRecord) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err := applyInTx(ctx, tx, prog, rec); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w (rollback: %v)", err, rerr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit exercise result: %w", err)
	}
	return nil
}

func applyInTx(ctx context.Context, tx *ent.Tx, prog *progress.UserProgress, rec *progress.ExerciseRecord) error {
	existing, err := tx.Learner.Query().
		Where(learner.UserKeyEQ(prog.UserKey)).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		_, err = tx.Learner.Create().
			SetUserKey(prog.UserKey).
			SetUsername(prog.Username).
			SetLevel(string(prog.Level)).
			SetTotalExercises(prog.TotalExercises).
			SetCorrectAnswers(prog.CorrectAnswers).
			SetAccuracy(prog.Accuracy).
			SetWeakTopics(prog.WeakTopics).
			SetStreakDays(prog.StreakDays).
			SetLastExerciseDate(prog.LastExerciseDate).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create learner %d: %w", prog.UserKey, err)
		}
	case err != nil:
		return fmt.Errorf("query learner %d: %w", prog.UserKey, err)
	default:
		_, err = existing.Update().
			SetUsername(prog.Username).
			SetLevel(string(prog.Level)).
			SetTotalExercises(prog.TotalExercises).
			SetCorrectAnswers(prog.CorrectAnswers).
			SetAccuracy(prog.Accuracy).
			SetWeakTopics(prog.WeakTopics).
			SetStreakDays(prog.StreakDays).
			SetLastExerciseDate(prog.LastExerciseDate).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update learner %d: %w", prog.UserKey, err)
		}
	}

	if rec != nil {
		_, err = tx.ExerciseRecord.Create().
			SetUserKey(rec.UserKey).
			SetExerciseType(rec.ExerciseType).
			SetTopic(rec.Topic).
			SetQuestion(rec.Question).
			SetUserAnswer(rec.UserAnswer).
			SetCorrectAnswer(rec.CorrectAnswer).
			SetCorrect(rec.Correct).
			SetDifficulty(rec.Difficulty).
			SetTimeSpentSec(rec.TimeSpentSec).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("append exercise record: %w", err)
		}
	}

	return nil
}

func (r *learnerRepo) History(ctx context.Context, userKey int64, limit int) ([]*progress.ExerciseRecord, error) {
	q := r.client.ExerciseRecord.Query().
		Where(exerciserecord.UserKeyEQ(userKey)).
		Order(ent.Desc(exerciserecord.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query history for %d: %w", userKey, err)
	}

	out := make([]*progress.ExerciseRecord, len(rows))
	for i, row := range rows {
		out[i] = &progress.ExerciseRecord{
			UserKey:       row.UserKey,
			ExerciseType:  row.ExerciseType,
			Topic:         row.Topic,
			Question:      row.Question,
			UserAnswer:    row.UserAnswer,
			CorrectAnswer: row.CorrectAnswer,
			Correct:       row.Correct,
			Difficulty:    row.Difficulty,
			TimeSpentSec:  row.TimeSpentSec,
		}
	}
	return out, nil
}

// AverageStats uses raw SQL: ent's typed API has no multi-column
// aggregation over the same query.
func (r *learnerRepo) AverageStats(ctx context.Context, userKey int64) (*LearnerStats, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(AVG(difficulty), 0),
		       COALESCE(AVG(time_spent_sec), 0)
		FROM exercise_records
		WHERE user_key = ?`, userKey)

	var stats LearnerStats
	if err := row.Scan(&stats.Attempts, &stats.AvgDifficulty, &stats.AvgTimeSec); err != nil {
		return nil, fmt.Errorf("aggregate history for %d: %w", userKey, err)
	}
	return &stats, nil
}

func (r *learnerRepo) Reset(ctx context.Context, userKey int64) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if _, err := tx.Learner.Delete().Where(learner.UserKeyEQ(userKey)).Exec(ctx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("delete learner %d: %w (rollback: %v)", userKey, err, rerr)
		}
		return fmt.Errorf("delete learner %d: %w", userKey, err)
	}
	if _, err := tx.ExerciseRecord.Delete().Where(exerciserecord.UserKeyEQ(userKey)).Exec(ctx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("delete records for %d: %w (rollback: %v)", userKey, err, rerr)
		}
		return fmt.Errorf("delete records for %d: %w", userKey, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit reset: %w", err)
	}
	return nil
}

func entLearnerToProgress(l *ent.Learner) *progress.UserProgress {
	return &progress.UserProgress{
		UserKey:          l.UserKey,
		Username:         l.Username,
		Level:            leveling.Level(l.Level),
		TotalExercises:   l.TotalExercises,
		CorrectAnswers:   l.CorrectAnswers,
		Accuracy:         l.Accuracy,
		WeakTopics:       l.WeakTopics,
		StreakDays:       l.StreakDays,
		LastExerciseDate: l.LastExerciseDate,
	}
}
