// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ExerciseRecordsColumns holds the columns for the "exercise_records" table.
	ExerciseRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_key", Type: field.TypeInt64},
		{Name: "exercise_type", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "topic", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "question", Type: field.TypeString, Nullable: true, Size: 2147483647, Default: ""},
		{Name: "user_answer", Type: field.TypeString, Nullable: true, Size: 2147483647, Default: ""},
		{Name: "correct_answer", Type: field.TypeString, Nullable: true, Size: 2147483647, Default: ""},
		{Name: "correct", Type: field.TypeBool},
		{Name: "difficulty", Type: field.TypeFloat64},
		{Name: "time_spent_sec", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ExerciseRecordsTable holds the schema information for the "exercise_records" table.
	ExerciseRecordsTable = &schema.Table{
		Name:       "exercise_records",
		Columns:    ExerciseRecordsColumns,
		PrimaryKey: []*schema.Column{ExerciseRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "exerciserecord_user_key",
				Unique:  false,
				Columns: []*schema.Column{ExerciseRecordsColumns[1]},
			},
			{
				Name:    "exerciserecord_created_at",
				Unique:  false,
				Columns: []*schema.Column{ExerciseRecordsColumns[10]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_created_at",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// LearnersColumns holds the columns for the "learners" table.
	LearnersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_key", Type: field.TypeInt64, Unique: true},
		{Name: "username", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "level", Type: field.TypeString, Default: "beginner"},
		{Name: "total_exercises", Type: field.TypeInt, Default: 0},
		{Name: "correct_answers", Type: field.TypeInt, Default: 0},
		{Name: "accuracy", Type: field.TypeFloat64, Default: 0},
		{Name: "weak_topics", Type: field.TypeJSON, Nullable: true},
		{Name: "streak_days", Type: field.TypeInt, Default: 0},
		{Name: "last_exercise_date", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// LearnersTable holds the schema information for the "learners" table.
	LearnersTable = &schema.Table{
		Name:       "learners",
		Columns:    LearnersColumns,
		PrimaryKey: []*schema.Column{LearnersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "learner_user_key",
				Unique:  true,
				Columns: []*schema.Column{LearnersColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ExerciseRecordsTable,
		LlmRequestEventsTable,
		LearnersTable,
	}
)

func init() {
}
