// Code generated by ent, DO NOT EDIT.

package learner

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/example/lingua/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Learner {
	return predicate.Learner(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Learner {
	return predicate.Learner(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Learner {
	return predicate.Learner(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Learner {
	return predicate.Learner(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Learner {
	return predicate.Learner(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Learner {
	return predicate.Learner(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Learner {
	return predicate.Learner(sql.FieldLTE(FieldID, id))
}

// UserKey applies equality check predicate on the "user_key" field. It's identical to UserKeyEQ.
func UserKey(v int64) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldUserKey, v))
}

// Username applies equality check predicate on the "username" field. It's identical to UsernameEQ.
func Username(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldUsername, v))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldLevel, v))
}

// TotalExercises applies equality check predicate on the "total_exercises" field. It's identical to TotalExercisesEQ.
func TotalExercises(v int) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldTotalExercises, v))
}

// CorrectAnswers applies equality check predicate on the "correct_answers" field. It's identical to CorrectAnswersEQ.
func CorrectAnswers(v int) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldCorrectAnswers, v))
}

// Accuracy applies equality check predicate on the "accuracy" field. It's identical to AccuracyEQ.
func Accuracy(v float64) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldAccuracy, v))
}

// StreakDays applies equality check predicate on the "streak_days" field. It's identical to StreakDaysEQ.
func StreakDays(v int) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldStreakDays, v))
}

// LastExerciseDate applies equality check predicate on the "last_exercise_date" field. It's identical to LastExerciseDateEQ.
func LastExerciseDate(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldLastExerciseDate, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserKeyEQ applies the EQ predicate on the "user_key" field.
func UserKeyEQ(v int64) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldUserKey, v))
}

// UserKeyNEQ applies the NEQ predicate on the "user_key" field.
func UserKeyNEQ(v int64) predicate.Learner {
	return predicate.Learner(sql.FieldNEQ(FieldUserKey, v))
}

// UserKeyIn applies the In predicate on the "user_key" field.
func UserKeyIn(vs ...int64) predicate.Learner {
	return predicate.Learner(sql.FieldIn(FieldUserKey, vs...))
}

// UserKeyNotIn applies the NotIn predicate on the "user_key" field.
func UserKeyNotIn(vs ...int64) predicate.Learner {
	return predicate.Learner(sql.FieldNotIn(FieldUserKey, vs...))
}

// UserKeyGT applies the GT predicate on the "user_key" field.
func UserKeyGT(v int64) predicate.Learner {
	return predicate.Learner(sql.FieldGT(FieldUserKey, v))
}

// UserKeyGTE applies the GTE predicate on the "user_key" field.
func UserKeyGTE(v int64) predicate.Learner {
	return predicate.Learner(sql.FieldGTE(FieldUserKey, v))
}

// UserKeyLT applies the LT predicate on the "user_key" field.
func UserKeyLT(v int64) predicate.Learner {
	return predicate.Learner(sql.FieldLT(FieldUserKey, v))
}

// UserKeyLTE applies the LTE predicate on the "user_key" field.
func UserKeyLTE(v int64) predicate.Learner {
	return predicate.Learner(sql.FieldLTE(FieldUserKey, v))
}

// UsernameEQ applies the EQ predicate on the "username" field.
func UsernameEQ(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldUsername, v))
}

// UsernameNEQ applies the NEQ predicate on the "username" field.
func UsernameNEQ(v string) predicate.Learner {
	return predicate.Learner(sql.FieldNEQ(FieldUsername, v))
}

// UsernameIn applies the In predicate on the "username" field.
func UsernameIn(vs ...string) predicate.Learner {
	return predicate.Learner(sql.FieldIn(FieldUsername, vs...))
}

// UsernameNotIn applies the NotIn predicate on the "username" field.
func UsernameNotIn(vs ...string) predicate.Learner {
	return predicate.Learner(sql.FieldNotIn(FieldUsername, vs...))
}

// UsernameGT applies the GT predicate on the "username" field.
func UsernameGT(v string) predicate.Learner {
	return predicate.Learner(sql.FieldGT(FieldUsername, v))
}

// UsernameGTE applies the GTE predicate on the "username" field.
func UsernameGTE(v string) predicate.Learner {
	return predicate.Learner(sql.FieldGTE(FieldUsername, v))
}

// UsernameLT applies the LT predicate on the "username" field.
func UsernameLT(v string) predicate.Learner {
	return predicate.Learner(sql.FieldLT(FieldUsername, v))
}

// UsernameLTE applies the LTE predicate on the "username" field.
func UsernameLTE(v string) predicate.Learner {
	return predicate.Learner(sql.FieldLTE(FieldUsername, v))
}

// UsernameContains applies the Contains predicate on the "username" field.
func UsernameContains(v string) predicate.Learner {
	return predicate.Learner(sql.FieldContains(FieldUsername, v))
}

// UsernameHasPrefix applies the HasPrefix predicate on the "username" field.
func UsernameHasPrefix(v string) predicate.Learner {
	return predicate.Learner(sql.FieldHasPrefix(FieldUsername, v))
}

// UsernameHasSuffix applies the HasSuffix predicate on the "username" field.
func UsernameHasSuffix(v string) predicate.Learner {
	return predicate.Learner(sql.FieldHasSuffix(FieldUsername, v))
}

// UsernameIsNil applies the IsNil predicate on the "username" field.
func UsernameIsNil() predicate.Learner {
	return predicate.Learner(sql.FieldIsNull(FieldUsername))
}

// UsernameNotNil applies the NotNil predicate on the "username" field.
func UsernameNotNil() predicate.Learner {
	return predicate.Learner(sql.FieldNotNull(FieldUsername))
}

// UsernameEqualFold applies the EqualFold predicate on the "username" field.
func UsernameEqualFold(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEqualFold(FieldUsername, v))
}

// UsernameContainsFold applies the ContainsFold predicate on the "username" field.
func UsernameContainsFold(v string) predicate.Learner {
	return predicate.Learner(sql.FieldContainsFold(FieldUsername, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v string) predicate.Learner {
	return predicate.Learner(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...string) predicate.Learner {
	return predicate.Learner(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...string) predicate.Learner {
	return predicate.Learner(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v string) predicate.Learner {
	return predicate.Learner(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v string) predicate.Learner {
	return predicate.Learner(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v string) predicate.Learner {
	return predicate.Learner(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v string) predicate.Learner {
	return predicate.Learner(sql.FieldLTE(FieldLevel, v))
}

// LevelContains applies the Contains predicate on the "level" field.
func LevelContains(v string) predicate.Learner {
	return predicate.Learner(sql.FieldContains(FieldLevel, v))
}

// LevelHasPrefix applies the HasPrefix predicate on the "level" field.
func LevelHasPrefix(v string) predicate.Learner {
	return predicate.Learner(sql.FieldHasPrefix(FieldLevel, v))
}

// LevelHasSuffix applies the HasSuffix predicate on the "level" field.
func LevelHasSuffix(v string) predicate.Learner {
	return predicate.Learner(sql.FieldHasSuffix(FieldLevel, v))
}

// LevelEqualFold applies the EqualFold predicate on the "level" field.
func LevelEqualFold(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEqualFold(FieldLevel, v))
}

// LevelContainsFold applies the ContainsFold predicate on the "level" field.
func LevelContainsFold(v string) predicate.Learner {
	return predicate.Learner(sql.FieldContainsFold(FieldLevel, v))
}

// TotalExercisesEQ applies the EQ predicate on the "total_exercises" field.
func TotalExercisesEQ(v int) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldTotalExercises, v))
}

// TotalExercisesNEQ applies the NEQ predicate on the "total_exercises" field.
func TotalExercisesNEQ(v int) predicate.Learner {
	return predicate.Learner(sql.FieldNEQ(FieldTotalExercises, v))
}

// TotalExercisesIn applies the In predicate on the "total_exercises" field.
func TotalExercisesIn(vs ...int) predicate.Learner {
	return predicate.Learner(sql.FieldIn(FieldTotalExercises, vs...))
}

// TotalExercisesNotIn applies the NotIn predicate on the "total_exercises" field.
func TotalExercisesNotIn(vs ...int) predicate.Learner {
	return predicate.Learner(sql.FieldNotIn(FieldTotalExercises, vs...))
}

// TotalExercisesGT applies the GT predicate on the "total_exercises" field.
func TotalExercisesGT(v int) predicate.Learner {
	return predicate.Learner(sql.FieldGT(FieldTotalExercises, v))
}

// TotalExercisesGTE applies the GTE predicate on the "total_exercises" field.
func TotalExercisesGTE(v int) predicate.Learner {
	return predicate.Learner(sql.FieldGTE(FieldTotalExercises, v))
}

// TotalExercisesLT applies the LT predicate on the "total_exercises" field.
func TotalExercisesLT(v int) predicate.Learner {
	return predicate.Learner(sql.FieldLT(FieldTotalExercises, v))
}

// TotalExercisesLTE applies the LTE predicate on the "total_exercises" field.
func TotalExercisesLTE(v int) predicate.Learner {
	return predicate.Learner(sql.FieldLTE(FieldTotalExercises, v))
}

// CorrectAnswersEQ applies the EQ predicate on the "correct_answers" field.
func CorrectAnswersEQ(v int) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldCorrectAnswers, v))
}

// CorrectAnswersNEQ applies the NEQ predicate on the "correct_answers" field.
func CorrectAnswersNEQ(v int) predicate.Learner {
	return predicate.Learner(sql.FieldNEQ(FieldCorrectAnswers, v))
}

// CorrectAnswersIn applies the In predicate on the "correct_answers" field.
func CorrectAnswersIn(vs ...int) predicate.Learner {
	return predicate.Learner(sql.FieldIn(FieldCorrectAnswers, vs...))
}

// CorrectAnswersNotIn applies the NotIn predicate on the "correct_answers" field.
func CorrectAnswersNotIn(vs ...int) predicate.Learner {
	return predicate.Learner(sql.FieldNotIn(FieldCorrectAnswers, vs...))
}

// CorrectAnswersGT applies the GT predicate on the "correct_answers" field.
func CorrectAnswersGT(v int) predicate.Learner {
	return predicate.Learner(sql.FieldGT(FieldCorrectAnswers, v))
}

// CorrectAnswersGTE applies the GTE predicate on the "correct_answers" field.
func CorrectAnswersGTE(v int) predicate.Learner {
	return predicate.Learner(sql.FieldGTE(FieldCorrectAnswers, v))
}

// CorrectAnswersLT applies the LT predicate on the "correct_answers" field.
func CorrectAnswersLT(v int) predicate.Learner {
	return predicate.Learner(sql.FieldLT(FieldCorrectAnswers, v))
}

// CorrectAnswersLTE applies the LTE predicate on the "correct_answers" field.
func CorrectAnswersLTE(v int) predicate.Learner {
	return predicate.Learner(sql.FieldLTE(FieldCorrectAnswers, v))
}

// AccuracyEQ applies the EQ predicate on the "accuracy" field.
func AccuracyEQ(v float64) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldAccuracy, v))
}

// AccuracyNEQ applies the NEQ predicate on the "accuracy" field.
func AccuracyNEQ(v float64) predicate.Learner {
	return predicate.Learner(sql.FieldNEQ(FieldAccuracy, v))
}

// AccuracyIn applies the In predicate on the "accuracy" field.
func AccuracyIn(vs ...float64) predicate.Learner {
	return predicate.Learner(sql.FieldIn(FieldAccuracy, vs...))
}

// AccuracyNotIn applies the NotIn predicate on the "accuracy" field.
func AccuracyNotIn(vs ...float64) predicate.Learner {
	return predicate.Learner(sql.FieldNotIn(FieldAccuracy, vs...))
}

// AccuracyGT applies the GT predicate on the "accuracy" field.
func AccuracyGT(v float64) predicate.Learner {
	return predicate.Learner(sql.FieldGT(FieldAccuracy, v))
}

// AccuracyGTE applies the GTE predicate on the "accuracy" field.
func AccuracyGTE(v float64) predicate.Learner {
	return predicate.Learner(sql.FieldGTE(FieldAccuracy, v))
}

// AccuracyLT applies the LT predicate on the "accuracy" field.
func AccuracyLT(v float64) predicate.Learner {
	return predicate.Learner(sql.FieldLT(FieldAccuracy, v))
}

// AccuracyLTE applies the LTE predicate on the "accuracy" field.
func AccuracyLTE(v float64) predicate.Learner {
	return predicate.Learner(sql.FieldLTE(FieldAccuracy, v))
}

// WeakTopicsIsNil applies the IsNil predicate on the "weak_topics" field.
func WeakTopicsIsNil() predicate.Learner {
	return predicate.Learner(sql.FieldIsNull(FieldWeakTopics))
}

// WeakTopicsNotNil applies the NotNil predicate on the "weak_topics" field.
func WeakTopicsNotNil() predicate.Learner {
	return predicate.Learner(sql.FieldNotNull(FieldWeakTopics))
}

// StreakDaysEQ applies the EQ predicate on the "streak_days" field.
func StreakDaysEQ(v int) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldStreakDays, v))
}

// StreakDaysNEQ applies the NEQ predicate on the "streak_days" field.
func StreakDaysNEQ(v int) predicate.Learner {
	return predicate.Learner(sql.FieldNEQ(FieldStreakDays, v))
}

// StreakDaysIn applies the In predicate on the "streak_days" field.
func StreakDaysIn(vs ...int) predicate.Learner {
	return predicate.Learner(sql.FieldIn(FieldStreakDays, vs...))
}

// StreakDaysNotIn applies the NotIn predicate on the "streak_days" field.
func StreakDaysNotIn(vs ...int) predicate.Learner {
	return predicate.Learner(sql.FieldNotIn(FieldStreakDays, vs...))
}

// StreakDaysGT applies the GT predicate on the "streak_days" field.
func StreakDaysGT(v int) predicate.Learner {
	return predicate.Learner(sql.FieldGT(FieldStreakDays, v))
}

// StreakDaysGTE applies the GTE predicate on the "streak_days" field.
func StreakDaysGTE(v int) predicate.Learner {
	return predicate.Learner(sql.FieldGTE(FieldStreakDays, v))
}

// StreakDaysLT applies the LT predicate on the "streak_days" field.
func StreakDaysLT(v int) predicate.Learner {
	return predicate.Learner(sql.FieldLT(FieldStreakDays, v))
}

// StreakDaysLTE applies the LTE predicate on the "streak_days" field.
func StreakDaysLTE(v int) predicate.Learner {
	return predicate.Learner(sql.FieldLTE(FieldStreakDays, v))
}

// LastExerciseDateEQ applies the EQ predicate on the "last_exercise_date" field.
func LastExerciseDateEQ(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldLastExerciseDate, v))
}

// LastExerciseDateNEQ applies the NEQ predicate on the "last_exercise_date" field.
func LastExerciseDateNEQ(v string) predicate.Learner {
	return predicate.Learner(sql.FieldNEQ(FieldLastExerciseDate, v))
}

// LastExerciseDateIn applies the In predicate on the "last_exercise_date" field.
func LastExerciseDateIn(vs ...string) predicate.Learner {
	return predicate.Learner(sql.FieldIn(FieldLastExerciseDate, vs...))
}

// LastExerciseDateNotIn applies the NotIn predicate on the "last_exercise_date" field.
func LastExerciseDateNotIn(vs ...string) predicate.Learner {
	return predicate.Learner(sql.FieldNotIn(FieldLastExerciseDate, vs...))
}

// LastExerciseDateGT applies the GT predicate on the "last_exercise_date" field.
func LastExerciseDateGT(v string) predicate.Learner {
	return predicate.Learner(sql.FieldGT(FieldLastExerciseDate, v))
}

// LastExerciseDateGTE applies the GTE predicate on the "last_exercise_date" field.
func LastExerciseDateGTE(v string) predicate.Learner {
	return predicate.Learner(sql.FieldGTE(FieldLastExerciseDate, v))
}

// LastExerciseDateLT applies the LT predicate on the "last_exercise_date" field.
func LastExerciseDateLT(v string) predicate.Learner {
	return predicate.Learner(sql.FieldLT(FieldLastExerciseDate, v))
}

// LastExerciseDateLTE applies the LTE predicate on the "last_exercise_date" field.
func LastExerciseDateLTE(v string) predicate.Learner {
	return predicate.Learner(sql.FieldLTE(FieldLastExerciseDate, v))
}

// LastExerciseDateContains applies the Contains predicate on the "last_exercise_date" field.
func LastExerciseDateContains(v string) predicate.Learner {
	return predicate.Learner(sql.FieldContains(FieldLastExerciseDate, v))
}

// LastExerciseDateHasPrefix applies the HasPrefix predicate on the "last_exercise_date" field.
func LastExerciseDateHasPrefix(v string) predicate.Learner {
	return predicate.Learner(sql.FieldHasPrefix(FieldLastExerciseDate, v))
}

// LastExerciseDateHasSuffix applies the HasSuffix predicate on the "last_exercise_date" field.
func LastExerciseDateHasSuffix(v string) predicate.Learner {
	return predicate.Learner(sql.FieldHasSuffix(FieldLastExerciseDate, v))
}

// LastExerciseDateIsNil applies the IsNil predicate on the "last_exercise_date" field.
func LastExerciseDateIsNil() predicate.Learner {
	return predicate.Learner(sql.FieldIsNull(FieldLastExerciseDate))
}

// LastExerciseDateNotNil applies the NotNil predicate on the "last_exercise_date" field.
func LastExerciseDateNotNil() predicate.Learner {
	return predicate.Learner(sql.FieldNotNull(FieldLastExerciseDate))
}

// LastExerciseDateEqualFold applies the EqualFold predicate on the "last_exercise_date" field.
func LastExerciseDateEqualFold(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEqualFold(FieldLastExerciseDate, v))
}

// LastExerciseDateContainsFold applies the ContainsFold predicate on the "last_exercise_date" field.
func LastExerciseDateContainsFold(v string) predicate.Learner {
	return predicate.Learner(sql.FieldContainsFold(FieldLastExerciseDate, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Learner {
	return predicate.Learner(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Learner {
	return predicate.Learner(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Learner {
	return predicate.Learner(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Learner {
	return predicate.Learner(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Learner {
	return predicate.Learner(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Learner {
	return predicate.Learner(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Learner {
	return predicate.Learner(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Learner {
	return predicate.Learner(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Learner {
	return predicate.Learner(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Learner {
	return predicate.Learner(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Learner {
	return predicate.Learner(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Learner {
	return predicate.Learner(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Learner {
	return predicate.Learner(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Learner {
	return predicate.Learner(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Learner) predicate.Learner {
	return predicate.Learner(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Learner) predicate.Learner {
	return predicate.Learner(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Learner) predicate.Learner {
	return predicate.Learner(sql.NotPredicates(p))
}
