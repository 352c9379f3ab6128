// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/example/lingua/ent/exerciserecord"
)

// ExerciseRecord is the model entity for the ExerciseRecord schema.
type ExerciseRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserKey holds the value of the "user_key" field.
	UserKey int64 `json:"user_key,omitempty"`
	// ExerciseType holds the value of the "exercise_type" field.
	ExerciseType string `json:"exercise_type,omitempty"`
	// Topic holds the value of the "topic" field.
	Topic string `json:"topic,omitempty"`
	// Question holds the value of the "question" field.
	Question string `json:"question,omitempty"`
	// UserAnswer holds the value of the "user_answer" field.
	UserAnswer string `json:"user_answer,omitempty"`
	// CorrectAnswer holds the value of the "correct_answer" field.
	CorrectAnswer string `json:"correct_answer,omitempty"`
	// Correct holds the value of the "correct" field.
	Correct bool `json:"correct,omitempty"`
	// Difficulty at the time of the attempt, in [0,1]
	Difficulty float64 `json:"difficulty,omitempty"`
	// TimeSpentSec holds the value of the "time_spent_sec" field.
	TimeSpentSec int `json:"time_spent_sec,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExerciseRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case exerciserecord.FieldCorrect:
			values[i] = new(sql.NullBool)
		case exerciserecord.FieldDifficulty:
			values[i] = new(sql.NullFloat64)
		case exerciserecord.FieldID, exerciserecord.FieldUserKey, exerciserecord.FieldTimeSpentSec:
			values[i] = new(sql.NullInt64)
		case exerciserecord.FieldExerciseType, exerciserecord.FieldTopic, exerciserecord.FieldQuestion, exerciserecord.FieldUserAnswer, exerciserecord.FieldCorrectAnswer:
			values[i] = new(sql.NullString)
		case exerciserecord.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExerciseRecord fields.
func (_m *ExerciseRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case exerciserecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case exerciserecord.FieldUserKey:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_key", values[i])
			} else if value.Valid {
				_m.UserKey = value.Int64
			}
		case exerciserecord.FieldExerciseType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field exercise_type", values[i])
			} else if value.Valid {
				_m.ExerciseType = value.String
			}
		case exerciserecord.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case exerciserecord.FieldQuestion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question", values[i])
			} else if value.Valid {
				_m.Question = value.String
			}
		case exerciserecord.FieldUserAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_answer", values[i])
			} else if value.Valid {
				_m.UserAnswer = value.String
			}
		case exerciserecord.FieldCorrectAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field correct_answer", values[i])
			} else if value.Valid {
				_m.CorrectAnswer = value.String
			}
		case exerciserecord.FieldCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				_m.Correct = value.Bool
			}
		case exerciserecord.FieldDifficulty:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = value.Float64
			}
		case exerciserecord.FieldTimeSpentSec:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_spent_sec", values[i])
			} else if value.Valid {
				_m.TimeSpentSec = int(value.Int64)
			}
		case exerciserecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExerciseRecord.
// This includes values selected through modifiers, order, etc.
func (_m *ExerciseRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ExerciseRecord.
// Note that you need to call ExerciseRecord.Unwrap() before calling this method if this ExerciseRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExerciseRecord) Update() *ExerciseRecordUpdateOne {
	return NewExerciseRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExerciseRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExerciseRecord) Unwrap() *ExerciseRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExerciseRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExerciseRecord) String() string {
	var builder strings.Builder
	builder.WriteString("ExerciseRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_key=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserKey))
	builder.WriteString(", ")
	builder.WriteString("exercise_type=")
	builder.WriteString(_m.ExerciseType)
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("question=")
	builder.WriteString(_m.Question)
	builder.WriteString(", ")
	builder.WriteString("user_answer=")
	builder.WriteString(_m.UserAnswer)
	builder.WriteString(", ")
	builder.WriteString("correct_answer=")
	builder.WriteString(_m.CorrectAnswer)
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.Correct))
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(fmt.Sprintf("%v", _m.Difficulty))
	builder.WriteString(", ")
	builder.WriteString("time_spent_sec=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeSpentSec))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ExerciseRecords is a parsable slice of ExerciseRecord.
type ExerciseRecords []*ExerciseRecord
