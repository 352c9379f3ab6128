package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExerciseRecord is one graded attempt in a learner's history. Rows are
// append-only and never updated.
type ExerciseRecord struct {
	ent.Schema
}

func (ExerciseRecord) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("user_key").
			Immutable(),
		field.String("exercise_type").
			Optional().
			Default("").
			Immutable(),
		field.String("topic").
			Optional().
			Default("").
			Immutable(),
		field.Text("question").
			Optional().
			Default("").
			Immutable(),
		field.Text("user_answer").
			Optional().
			Default("").
			Immutable(),
		field.Text("correct_answer").
			Optional().
			Default("").
			Immutable(),
		field.Bool("correct").
			Immutable(),
		field.Float("difficulty").
			Immutable().
			Comment("Difficulty at the time of the attempt, in [0,1]"),
		field.Int("time_spent_sec").
			Default(0).
			NonNegative().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (ExerciseRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_key"),
		index.Fields("created_at"),
	}
}
