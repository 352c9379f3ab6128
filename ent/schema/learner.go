package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Learner holds the per-user performance state: counters, accuracy, the
// weak-topic window, and the practice streak. One row per learner, keyed
// by the external account id.
type Learner struct {
	ent.Schema
}

func (Learner) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("user_key").
			Unique().
			Comment("Stable external account id, e.g. a chat user id"),
		field.String("username").
			Optional().
			Default(""),
		field.String("level").
			Default("beginner"),
		field.Int("total_exercises").
			Default(0).
			NonNegative(),
		field.Int("correct_answers").
			Default(0).
			NonNegative(),
		field.Float("accuracy").
			Default(0),
		field.JSON("weak_topics", []string{}).
			Optional().
			Comment("Most-recent-kept window of missed topics, max 5"),
		field.Int("streak_days").
			Default(0).
			NonNegative(),
		field.String("last_exercise_date").
			Optional().
			Default("").
			Comment("UTC calendar date (2006-01-02) of the last exercise"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Learner) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_key").Unique(),
	}
}
