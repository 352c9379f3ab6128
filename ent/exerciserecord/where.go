// Code generated by ent, DO NOT EDIT.

package exerciserecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/example/lingua/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldLTE(FieldID, id))
}

// UserKey applies equality check predicate on the "user_key" field. It's identical to UserKeyEQ.
func UserKey(v int64) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldEQ(FieldUserKey, v))
}

// ExerciseType applies equality check predicate on the "exercise_type" field. It's identical to ExerciseTypeEQ.
func ExerciseType(v string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldEQ(FieldExerciseType, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldEQ(FieldTopic, v))
}

// Question applies equality check predicate on the "question" field. It's identical to QuestionEQ.
func Question(v string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldEQ(FieldQuestion, v))
}

// UserAnswer applies equality check predicate on the "user_answer" field. It's identical to UserAnswerEQ.
func UserAnswer(v string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldEQ(FieldUserAnswer, v))
}

// CorrectAnswer applies equality check predicate on the "correct_answer" field. It's identical to CorrectAnswerEQ.
func CorrectAnswer(v string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldEQ(FieldCorrectAnswer, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v bool) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldEQ(FieldCorrect, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v float64) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldEQ(FieldDifficulty, v))
}

// TimeSpentSec applies equality check predicate on the "time_spent_sec" field. It's identical to TimeSpentSecEQ.
func TimeSpentSec(v int) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldEQ(FieldTimeSpentSec, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// UserKeyEQ applies the EQ predicate on the "user_key" field.
func UserKeyEQ(v int64) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldEQ(FieldUserKey, v))
}

// UserKeyNEQ applies the NEQ predicate on the "user_key" field.
func UserKeyNEQ(v int64) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldNEQ(FieldUserKey, v))
}

// UserKeyIn applies the In predicate on the "user_key" field.
func UserKeyIn(vs ...int64) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldIn(FieldUserKey, vs...))
}

// UserKeyNotIn applies the NotIn predicate on the "user_key" field.
func UserKeyNotIn(vs ...int64) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldNotIn(FieldUserKey, vs...))
}

// UserKeyGT applies the GT predicate on the "user_key" field.
func UserKeyGT(v int64) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldGT(FieldUserKey, v))
}

// UserKeyGTE applies the GTE predicate on the "user_key" field.
func UserKeyGTE(v int64) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldGTE(FieldUserKey, v))
}

// UserKeyLT applies the LT predicate on the "user_key" field.
func UserKeyLT(v int64) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldLT(FieldUserKey, v))
}

// UserKeyLTE applies the LTE predicate on the "user_key" field.
func UserKeyLTE(v int64) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldLTE(FieldUserKey, v))
}

// ExerciseTypeEQ applies the EQ predicate on the "exercise_type" field.
func ExerciseTypeEQ(v string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldEQ(FieldExerciseType, v))
}

// ExerciseTypeNEQ applies the NEQ predicate on the "exercise_type" field.
func ExerciseTypeNEQ(v string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldNEQ(FieldExerciseType, v))
}

// ExerciseTypeIn applies the In predicate on the "exercise_type" field.
func ExerciseTypeIn(vs ...string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldIn(FieldExerciseType, vs...))
}

// ExerciseTypeNotIn applies the NotIn predicate on the "exercise_type" field.
func ExerciseTypeNotIn(vs ...string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldNotIn(FieldExerciseType, vs...))
}

// ExerciseTypeGT applies the GT predicate on the "exercise_type" field.
func ExerciseTypeGT(v string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldGT(FieldExerciseType, v))
}

// ExerciseTypeGTE applies the GTE predicate on the "exercise_type" field.
func ExerciseTypeGTE(v string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldGTE(FieldExerciseType, v))
}

// ExerciseTypeLT applies the LT predicate on the "exercise_type" field.
func ExerciseTypeLT(v string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldLT(FieldExerciseType, v))
}

// ExerciseTypeLTE applies the LTE predicate on the "exercise_type" field.
func ExerciseTypeLTE(v string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldLTE(FieldExerciseType, v))
}

// ExerciseTypeContains applies the Contains predicate on the "exercise_type" field.
func ExerciseTypeContains(v string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldContains(FieldExerciseType, v))
}

// ExerciseTypeHasPrefix applies the HasPrefix predicate on the "exercise_type" field.
func ExerciseTypeHasPrefix(v string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldHasPrefix(FieldExerciseType, v))
}

// ExerciseTypeHasSuffix applies the HasSuffix predicate on the "exercise_type" field.
func ExerciseTypeHasSuffix(v string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldHasSuffix(FieldExerciseType, v))
}

// ExerciseTypeIsNil applies the IsNil predicate on the "exercise_type" field.
func ExerciseTypeIsNil() predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldIsNull(FieldExerciseType))
}

// ExerciseTypeNotNil applies the NotNil predicate on the "exercise_type" field.
func ExerciseTypeNotNil() predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldNotNull(FieldExerciseType))
}

// ExerciseTypeEqualFold applies the EqualFold predicate on the "exercise_type" field.
func ExerciseTypeEqualFold(v string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldEqualFold(FieldExerciseType, v))
}

// ExerciseTypeContainsFold applies the ContainsFold predicate on the "exercise_type" field.
func ExerciseTypeContainsFold(v string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldContainsFold(FieldExerciseType, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicIsNil applies the IsNil predicate on the "topic" field.
func TopicIsNil() predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldIsNull(FieldTopic))
}

// TopicNotNil applies the NotNil predicate on the "topic" field.
func TopicNotNil() predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldNotNull(FieldTopic))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldContainsFold(FieldTopic, v))
}

// QuestionEQ applies the EQ predicate on the "question" field.
func QuestionEQ(v string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldEQ(FieldQuestion, v))
}

// QuestionNEQ applies the NEQ predicate on the "question" field.
func QuestionNEQ(v string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldNEQ(FieldQuestion, v))
}

// QuestionIn applies the In predicate on the "question" field.
func QuestionIn(vs ...string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldIn(FieldQuestion, vs...))
}

// QuestionNotIn applies the NotIn predicate on the "question" field.
func QuestionNotIn(vs ...string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldNotIn(FieldQuestion, vs...))
}

// QuestionGT applies the GT predicate on the "question" field.
func QuestionGT(v string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldGT(FieldQuestion, v))
}

// QuestionGTE applies the GTE predicate on the "question" field.
func QuestionGTE(v string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldGTE(FieldQuestion, v))
}

// QuestionLT applies the LT predicate on the "question" field.
func QuestionLT(v string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldLT(FieldQuestion, v))
}

// QuestionLTE applies the LTE predicate on the "question" field.
func QuestionLTE(v string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldLTE(FieldQuestion, v))
}

// QuestionContains applies the Contains predicate on the "question" field.
func QuestionContains(v string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldContains(FieldQuestion, v))
}

// QuestionHasPrefix applies the HasPrefix predicate on the "question" field.
func QuestionHasPrefix(v string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldHasPrefix(FieldQuestion, v))
}

// QuestionHasSuffix applies the HasSuffix predicate on the "question" field.
func QuestionHasSuffix(v string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldHasSuffix(FieldQuestion, v))
}

// QuestionIsNil applies the IsNil predicate on the "question" field.
func QuestionIsNil() predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldIsNull(FieldQuestion))
}

// QuestionNotNil applies the NotNil predicate on the "question" field.
func QuestionNotNil() predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldNotNull(FieldQuestion))
}

// QuestionEqualFold applies the EqualFold predicate on the "question" field.
func QuestionEqualFold(v string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldEqualFold(FieldQuestion, v))
}

// QuestionContainsFold applies the ContainsFold predicate on the "question" field.
func QuestionContainsFold(v string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldContainsFold(FieldQuestion, v))
}

// UserAnswerEQ applies the EQ predicate on the "user_answer" field.
func UserAnswerEQ(v string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldEQ(FieldUserAnswer, v))
}

// UserAnswerNEQ applies the NEQ predicate on the "user_answer" field.
func UserAnswerNEQ(v string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldNEQ(FieldUserAnswer, v))
}

// UserAnswerIn applies the In predicate on the "user_answer" field.
func UserAnswerIn(vs ...string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldIn(FieldUserAnswer, vs...))
}

// UserAnswerNotIn applies the NotIn predicate on the "user_answer" field.
func UserAnswerNotIn(vs ...string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldNotIn(FieldUserAnswer, vs...))
}

// UserAnswerGT applies the GT predicate on the "user_answer" field.
func UserAnswerGT(v string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldGT(FieldUserAnswer, v))
}

// UserAnswerGTE applies the GTE predicate on the "user_answer" field.
func UserAnswerGTE(v string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldGTE(FieldUserAnswer, v))
}

// UserAnswerLT applies the LT predicate on the "user_answer" field.
func UserAnswerLT(v string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldLT(FieldUserAnswer, v))
}

// UserAnswerLTE applies the LTE predicate on the "user_answer" field.
func UserAnswerLTE(v string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldLTE(FieldUserAnswer, v))
}

// UserAnswerContains applies the Contains predicate on the "user_answer" field.
func UserAnswerContains(v string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldContains(FieldUserAnswer, v))
}

// UserAnswerHasPrefix applies the HasPrefix predicate on the "user_answer" field.
func UserAnswerHasPrefix(v string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldHasPrefix(FieldUserAnswer, v))
}

// UserAnswerHasSuffix applies the HasSuffix predicate on the "user_answer" field.
func UserAnswerHasSuffix(v string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldHasSuffix(FieldUserAnswer, v))
}

// UserAnswerIsNil applies the IsNil predicate on the "user_answer" field.
func UserAnswerIsNil() predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldIsNull(FieldUserAnswer))
}

// UserAnswerNotNil applies the NotNil predicate on the "user_answer" field.
func UserAnswerNotNil() predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldNotNull(FieldUserAnswer))
}

// UserAnswerEqualFold applies the EqualFold predicate on the "user_answer" field.
func UserAnswerEqualFold(v string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldEqualFold(FieldUserAnswer, v))
}

// UserAnswerContainsFold applies the ContainsFold predicate on the "user_answer" field.
func UserAnswerContainsFold(v string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldContainsFold(FieldUserAnswer, v))
}

// CorrectAnswerEQ applies the EQ predicate on the "correct_answer" field.
func CorrectAnswerEQ(v string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldEQ(FieldCorrectAnswer, v))
}

// CorrectAnswerNEQ applies the NEQ predicate on the "correct_answer" field.
func CorrectAnswerNEQ(v string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldNEQ(FieldCorrectAnswer, v))
}

// CorrectAnswerIn applies the In predicate on the "correct_answer" field.
func CorrectAnswerIn(vs ...string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldIn(FieldCorrectAnswer, vs...))
}

// CorrectAnswerNotIn applies the NotIn predicate on the "correct_answer" field.
func CorrectAnswerNotIn(vs ...string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldNotIn(FieldCorrectAnswer, vs...))
}

// CorrectAnswerGT applies the GT predicate on the "correct_answer" field.
func CorrectAnswerGT(v string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldGT(FieldCorrectAnswer, v))
}

// CorrectAnswerGTE applies the GTE predicate on the "correct_answer" field.
func CorrectAnswerGTE(v string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldGTE(FieldCorrectAnswer, v))
}

// CorrectAnswerLT applies the LT predicate on the "correct_answer" field.
func CorrectAnswerLT(v string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldLT(FieldCorrectAnswer, v))
}

// CorrectAnswerLTE applies the LTE predicate on the "correct_answer" field.
func CorrectAnswerLTE(v string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldLTE(FieldCorrectAnswer, v))
}

// CorrectAnswerContains applies the Contains predicate on the "correct_answer" field.
func CorrectAnswerContains(v string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldContains(FieldCorrectAnswer, v))
}

// CorrectAnswerHasPrefix applies the HasPrefix predicate on the "correct_answer" field.
func CorrectAnswerHasPrefix(v string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldHasPrefix(FieldCorrectAnswer, v))
}

// CorrectAnswerHasSuffix applies the HasSuffix predicate on the "correct_answer" field.
func CorrectAnswerHasSuffix(v string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldHasSuffix(FieldCorrectAnswer, v))
}

// CorrectAnswerIsNil applies the IsNil predicate on the "correct_answer" field.
func CorrectAnswerIsNil() predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldIsNull(FieldCorrectAnswer))
}

// CorrectAnswerNotNil applies the NotNil predicate on the "correct_answer" field.
func CorrectAnswerNotNil() predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldNotNull(FieldCorrectAnswer))
}

// CorrectAnswerEqualFold applies the EqualFold predicate on the "correct_answer" field.
func CorrectAnswerEqualFold(v string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldEqualFold(FieldCorrectAnswer, v))
}

// CorrectAnswerContainsFold applies the ContainsFold predicate on the "correct_answer" field.
func CorrectAnswerContainsFold(v string) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldContainsFold(FieldCorrectAnswer, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v bool) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v bool) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldNEQ(FieldCorrect, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v float64) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v float64) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...float64) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...float64) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v float64) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v float64) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v float64) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v float64) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldLTE(FieldDifficulty, v))
}

// TimeSpentSecEQ applies the EQ predicate on the "time_spent_sec" field.
func TimeSpentSecEQ(v int) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldEQ(FieldTimeSpentSec, v))
}

// TimeSpentSecNEQ applies the NEQ predicate on the "time_spent_sec" field.
func TimeSpentSecNEQ(v int) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldNEQ(FieldTimeSpentSec, v))
}

// TimeSpentSecIn applies the In predicate on the "time_spent_sec" field.
func TimeSpentSecIn(vs ...int) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldIn(FieldTimeSpentSec, vs...))
}

// TimeSpentSecNotIn applies the NotIn predicate on the "time_spent_sec" field.
func TimeSpentSecNotIn(vs ...int) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldNotIn(FieldTimeSpentSec, vs...))
}

// TimeSpentSecGT applies the GT predicate on the "time_spent_sec" field.
func TimeSpentSecGT(v int) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldGT(FieldTimeSpentSec, v))
}

// TimeSpentSecGTE applies the GTE predicate on the "time_spent_sec" field.
func TimeSpentSecGTE(v int) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldGTE(FieldTimeSpentSec, v))
}

// TimeSpentSecLT applies the LT predicate on the "time_spent_sec" field.
func TimeSpentSecLT(v int) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldLT(FieldTimeSpentSec, v))
}

// TimeSpentSecLTE applies the LTE predicate on the "time_spent_sec" field.
func TimeSpentSecLTE(v int) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldLTE(FieldTimeSpentSec, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExerciseRecord) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExerciseRecord) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExerciseRecord) predicate.ExerciseRecord {
	return predicate.ExerciseRecord(sql.NotPredicates(p))
}
