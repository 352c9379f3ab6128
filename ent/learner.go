// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/example/lingua/ent/learner"
)

// Learner is the model entity for the Learner schema.
type Learner struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Stable external account id, e.g. a chat user id
	UserKey int64 `json:"user_key,omitempty"`
	// Username holds the value of the "username" field.
	Username string `json:"username,omitempty"`
	// Level holds the value of the "level" field.
	Level string `json:"level,omitempty"`
	// TotalExercises holds the value of the "total_exercises" field.
	TotalExercises int `json:"total_exercises,omitempty"`
	// CorrectAnswers holds the value of the "correct_answers" field.
	CorrectAnswers int `json:"correct_answers,omitempty"`
	// Accuracy holds the value of the "accuracy" field.
	Accuracy float64 `json:"accuracy,omitempty"`
	// Most-recent-kept window of missed topics, max 5
	WeakTopics []string `json:"weak_topics,omitempty"`
	// StreakDays holds the value of the "streak_days" field.
	StreakDays int `json:"streak_days,omitempty"`
	// UTC calendar date (2006-01-02) of the last exercise
	LastExerciseDate string `json:"last_exercise_date,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Learner) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case learner.FieldWeakTopics:
			values[i] = new([]byte)
		case learner.FieldAccuracy:
			values[i] = new(sql.NullFloat64)
		case learner.FieldID, learner.FieldUserKey, learner.FieldTotalExercises, learner.FieldCorrectAnswers, learner.FieldStreakDays:
			values[i] = new(sql.NullInt64)
		case learner.FieldUsername, learner.FieldLevel, learner.FieldLastExerciseDate:
			values[i] = new(sql.NullString)
		case learner.FieldCreatedAt, learner.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Learner fields.
func (_m *Learner) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case learner.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case learner.FieldUserKey:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_key", values[i])
			} else if value.Valid {
				_m.UserKey = value.Int64
			}
		case learner.FieldUsername:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field username", values[i])
			} else if value.Valid {
				_m.Username = value.String
			}
		case learner.FieldLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field level", values[i])
			} else if value.Valid {
				_m.Level = value.String
			}
		case learner.FieldTotalExercises:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_exercises", values[i])
			} else if value.Valid {
				_m.TotalExercises = int(value.Int64)
			}
		case learner.FieldCorrectAnswers:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_answers", values[i])
			} else if value.Valid {
				_m.CorrectAnswers = int(value.Int64)
			}
		case learner.FieldAccuracy:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field accuracy", values[i])
			} else if value.Valid {
				_m.Accuracy = value.Float64
			}
		case learner.FieldWeakTopics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field weak_topics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.WeakTopics); err != nil {
					return fmt.Errorf("unmarshal field weak_topics: %w", err)
				}
			}
		case learner.FieldStreakDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field streak_days", values[i])
			} else if value.Valid {
				_m.StreakDays = int(value.Int64)
			}
		case learner.FieldLastExerciseDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_exercise_date", values[i])
			} else if value.Valid {
				_m.LastExerciseDate = value.String
			}
		case learner.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case learner.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Learner.
// This includes values selected through modifiers, order, etc.
func (_m *Learner) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Learner.
// Note that you need to call Learner.Unwrap() before calling this method if this Learner
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Learner) Update() *LearnerUpdateOne {
	return NewLearnerClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Learner entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Learner) Unwrap() *Learner {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Learner is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Learner) String() string {
	var builder strings.Builder
	builder.WriteString("Learner(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_key=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserKey))
	builder.WriteString(", ")
	builder.WriteString("username=")
	builder.WriteString(_m.Username)
	builder.WriteString(", ")
	builder.WriteString("level=")
	builder.WriteString(_m.Level)
	builder.WriteString(", ")
	builder.WriteString("total_exercises=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalExercises))
	builder.WriteString(", ")
	builder.WriteString("correct_answers=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectAnswers))
	builder.WriteString(", ")
	builder.WriteString("accuracy=")
	builder.WriteString(fmt.Sprintf("%v", _m.Accuracy))
	builder.WriteString(", ")
	builder.WriteString("weak_topics=")
	builder.WriteString(fmt.Sprintf("%v", _m.WeakTopics))
	builder.WriteString(", ")
	builder.WriteString("streak_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.StreakDays))
	builder.WriteString(", ")
	builder.WriteString("last_exercise_date=")
	builder.WriteString(_m.LastExerciseDate)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Learners is a parsable slice of Learner.
type Learners []*Learner
