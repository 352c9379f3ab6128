// Code generated by ent, DO NOT EDIT.

package learner

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the learner type in the database.
	Label = "learner"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserKey holds the string denoting the user_key field in the database.
	FieldUserKey = "user_key"
	// FieldUsername holds the string denoting the username field in the database.
	FieldUsername = "username"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// FieldTotalExercises holds the string denoting the total_exercises field in the database.
	FieldTotalExercises = "total_exercises"
	// FieldCorrectAnswers holds the string denoting the correct_answers field in the database.
	FieldCorrectAnswers = "correct_answers"
	// FieldAccuracy holds the string denoting the accuracy field in the database.
	FieldAccuracy = "accuracy"
	// FieldWeakTopics holds the string denoting the weak_topics field in the database.
	FieldWeakTopics = "weak_topics"
	// FieldStreakDays holds the string denoting the streak_days field in the database.
	FieldStreakDays = "streak_days"
	// FieldLastExerciseDate holds the string denoting the last_exercise_date field in the database.
	FieldLastExerciseDate = "last_exercise_date"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the learner in the database.
	Table = "learners"
)

// Columns holds all SQL columns for learner fields.
var Columns = []string{
	FieldID,
	FieldUserKey,
	FieldUsername,
	FieldLevel,
	FieldTotalExercises,
	FieldCorrectAnswers,
	FieldAccuracy,
	FieldWeakTopics,
	FieldStreakDays,
	FieldLastExerciseDate,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultUsername holds the default value on creation for the "username" field.
	DefaultUsername string
	// DefaultLevel holds the default value on creation for the "level" field.
	DefaultLevel string
	// DefaultTotalExercises holds the default value on creation for the "total_exercises" field.
	DefaultTotalExercises int
	// TotalExercisesValidator is a validator for the "total_exercises" field. It is called by the builders before save.
	TotalExercisesValidator func(int) error
	// DefaultCorrectAnswers holds the default value on creation for the "correct_answers" field.
	DefaultCorrectAnswers int
	// CorrectAnswersValidator is a validator for the "correct_answers" field. It is called by the builders before save.
	CorrectAnswersValidator func(int) error
	// DefaultAccuracy holds the default value on creation for the "accuracy" field.
	DefaultAccuracy float64
	// DefaultStreakDays holds the default value on creation for the "streak_days" field.
	DefaultStreakDays int
	// StreakDaysValidator is a validator for the "streak_days" field. It is called by the builders before save.
	StreakDaysValidator func(int) error
	// DefaultLastExerciseDate holds the default value on creation for the "last_exercise_date" field.
	DefaultLastExerciseDate string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Learner queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserKey orders the results by the user_key field.
func ByUserKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserKey, opts...).ToFunc()
}

// ByUsername orders the results by the username field.
func ByUsername(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUsername, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}

// ByTotalExercises orders the results by the total_exercises field.
func ByTotalExercises(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalExercises, opts...).ToFunc()
}

// ByCorrectAnswers orders the results by the correct_answers field.
func ByCorrectAnswers(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectAnswers, opts...).ToFunc()
}

// ByAccuracy orders the results by the accuracy field.
func ByAccuracy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccuracy, opts...).ToFunc()
}

// ByStreakDays orders the results by the streak_days field.
func ByStreakDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreakDays, opts...).ToFunc()
}

// ByLastExerciseDate orders the results by the last_exercise_date field.
func ByLastExerciseDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastExerciseDate, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
