// Code generated by ent, DO NOT EDIT.

package exerciserecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the exerciserecord type in the database.
	Label = "exercise_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserKey holds the string denoting the user_key field in the database.
	FieldUserKey = "user_key"
	// FieldExerciseType holds the string denoting the exercise_type field in the database.
	FieldExerciseType = "exercise_type"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldQuestion holds the string denoting the question field in the database.
	FieldQuestion = "question"
	// FieldUserAnswer holds the string denoting the user_answer field in the database.
	FieldUserAnswer = "user_answer"
	// FieldCorrectAnswer holds the string denoting the correct_answer field in the database.
	FieldCorrectAnswer = "correct_answer"
	// FieldCorrect holds the string denoting the correct field in the database.
	FieldCorrect = "correct"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldTimeSpentSec holds the string denoting the time_spent_sec field in the database.
	FieldTimeSpentSec = "time_spent_sec"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the exerciserecord in the database.
	Table = "exercise_records"
)

// Columns holds all SQL columns for exerciserecord fields.
var Columns = []string{
	FieldID,
	FieldUserKey,
	FieldExerciseType,
	FieldTopic,
	FieldQuestion,
	FieldUserAnswer,
	FieldCorrectAnswer,
	FieldCorrect,
	FieldDifficulty,
	FieldTimeSpentSec,
	FieldCreatedAt,
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
	// DefaultExerciseType holds the default value on creation for the "exercise_type" field.
	DefaultExerciseType string
	// DefaultTopic holds the default value on creation for the "topic" field.
	DefaultTopic string
	// DefaultQuestion holds the default value on creation for the "question" field.
	DefaultQuestion string
	// DefaultUserAnswer holds the default value on creation for the "user_answer" field.
	DefaultUserAnswer string
	// DefaultCorrectAnswer holds the default value on creation for the "correct_answer" field.
	DefaultCorrectAnswer string
	// DefaultTimeSpentSec holds the default value on creation for the "time_spent_sec" field.
	DefaultTimeSpentSec int
	// TimeSpentSecValidator is a validator for the "time_spent_sec" field. It is called by the builders before save.
	TimeSpentSecValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the ExerciseRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserKey orders the results by the user_key field.
func ByUserKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserKey, opts...).ToFunc()
}

// ByExerciseType orders the results by the exercise_type field.
func ByExerciseType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExerciseType, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// ByQuestion orders the results by the question field.
func ByQuestion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestion, opts...).ToFunc()
}

// ByUserAnswer orders the results by the user_answer field.
func ByUserAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserAnswer, opts...).ToFunc()
}

// ByCorrectAnswer orders the results by the correct_answer field.
func ByCorrectAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectAnswer, opts...).ToFunc()
}

// ByCorrect orders the results by the correct field.
func ByCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrect, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByTimeSpentSec orders the results by the time_spent_sec field.
func ByTimeSpentSec(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeSpentSec, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
