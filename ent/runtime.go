// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/example/lingua/ent/exerciserecord"
	"github.com/example/lingua/ent/learner"
	"github.com/example/lingua/ent/llmrequestevent"
	"github.com/example/lingua/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	exerciserecordFields := schema.ExerciseRecord{}.Fields()
	_ = exerciserecordFields
	// exerciserecordDescExerciseType is the schema descriptor for exercise_type field.
	exerciserecordDescExerciseType := exerciserecordFields[1].Descriptor()
	// exerciserecord.DefaultExerciseType holds the default value on creation for the exercise_type field.
	exerciserecord.DefaultExerciseType = exerciserecordDescExerciseType.Default.(string)
	// exerciserecordDescTopic is the schema descriptor for topic field.
	exerciserecordDescTopic := exerciserecordFields[2].Descriptor()
	// exerciserecord.DefaultTopic holds the default value on creation for the topic field.
	exerciserecord.DefaultTopic = exerciserecordDescTopic.Default.(string)
	// exerciserecordDescQuestion is the schema descriptor for question field.
	exerciserecordDescQuestion := exerciserecordFields[3].Descriptor()
	// exerciserecord.DefaultQuestion holds the default value on creation for the question field.
	exerciserecord.DefaultQuestion = exerciserecordDescQuestion.Default.(string)
	// exerciserecordDescUserAnswer is the schema descriptor for user_answer field.
	exerciserecordDescUserAnswer := exerciserecordFields[4].Descriptor()
	// exerciserecord.DefaultUserAnswer holds the default value on creation for the user_answer field.
	exerciserecord.DefaultUserAnswer = exerciserecordDescUserAnswer.Default.(string)
	// exerciserecordDescCorrectAnswer is the schema descriptor for correct_answer field.
	exerciserecordDescCorrectAnswer := exerciserecordFields[5].Descriptor()
	// exerciserecord.DefaultCorrectAnswer holds the default value on creation for the correct_answer field.
	exerciserecord.DefaultCorrectAnswer = exerciserecordDescCorrectAnswer.Default.(string)
	// exerciserecordDescTimeSpentSec is the schema descriptor for time_spent_sec field.
	exerciserecordDescTimeSpentSec := exerciserecordFields[8].Descriptor()
	// exerciserecord.DefaultTimeSpentSec holds the default value on creation for the time_spent_sec field.
	exerciserecord.DefaultTimeSpentSec = exerciserecordDescTimeSpentSec.Default.(int)
	// exerciserecord.TimeSpentSecValidator is a validator for the "time_spent_sec" field. It is called by the builders before save.
	exerciserecord.TimeSpentSecValidator = exerciserecordDescTimeSpentSec.Validators[0].(func(int) error)
	// exerciserecordDescCreatedAt is the schema descriptor for created_at field.
	exerciserecordDescCreatedAt := exerciserecordFields[9].Descriptor()
	// exerciserecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	exerciserecord.DefaultCreatedAt = exerciserecordDescCreatedAt.Default.(func() time.Time)
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescProvider is the schema descriptor for provider field.
	llmrequesteventDescProvider := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	llmrequestevent.ProviderValidator = llmrequesteventDescProvider.Validators[0].(func(string) error)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescCreatedAt is the schema descriptor for created_at field.
	llmrequesteventDescCreatedAt := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	llmrequestevent.DefaultCreatedAt = llmrequesteventDescCreatedAt.Default.(func() time.Time)
	learnerFields := schema.Learner{}.Fields()
	_ = learnerFields
	// learnerDescUsername is the schema descriptor for username field.
	learnerDescUsername := learnerFields[1].Descriptor()
	// learner.DefaultUsername holds the default value on creation for the username field.
	learner.DefaultUsername = learnerDescUsername.Default.(string)
	// learnerDescLevel is the schema descriptor for level field.
	learnerDescLevel := learnerFields[2].Descriptor()
	// learner.DefaultLevel holds the default value on creation for the level field.
	learner.DefaultLevel = learnerDescLevel.Default.(string)
	// learnerDescTotalExercises is the schema descriptor for total_exercises field.
	learnerDescTotalExercises := learnerFields[3].Descriptor()
	// learner.DefaultTotalExercises holds the default value on creation for the total_exercises field.
	learner.DefaultTotalExercises = learnerDescTotalExercises.Default.(int)
	// learner.TotalExercisesValidator is a validator for the "total_exercises" field. It is called by the builders before save.
	learner.TotalExercisesValidator = learnerDescTotalExercises.Validators[0].(func(int) error)
	// learnerDescCorrectAnswers is the schema descriptor for correct_answers field.
	learnerDescCorrectAnswers := learnerFields[4].Descriptor()
	// learner.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	learner.DefaultCorrectAnswers = learnerDescCorrectAnswers.Default.(int)
	// learner.CorrectAnswersValidator is a validator for the "correct_answers" field. It is called by the builders before save.
	learner.CorrectAnswersValidator = learnerDescCorrectAnswers.Validators[0].(func(int) error)
	// learnerDescAccuracy is the schema descriptor for accuracy field.
	learnerDescAccuracy := learnerFields[5].Descriptor()
	// learner.DefaultAccuracy holds the default value on creation for the accuracy field.
	learner.DefaultAccuracy = learnerDescAccuracy.Default.(float64)
	// learnerDescStreakDays is the schema descriptor for streak_days field.
	learnerDescStreakDays := learnerFields[7].Descriptor()
	// learner.DefaultStreakDays holds the default value on creation for the streak_days field.
	learner.DefaultStreakDays = learnerDescStreakDays.Default.(int)
	// learner.StreakDaysValidator is a validator for the "streak_days" field. It is called by the builders before save.
	learner.StreakDaysValidator = learnerDescStreakDays.Validators[0].(func(int) error)
	// learnerDescLastExerciseDate is the schema descriptor for last_exercise_date field.
	learnerDescLastExerciseDate := learnerFields[8].Descriptor()
	// learner.DefaultLastExerciseDate holds the default value on creation for the last_exercise_date field.
	learner.DefaultLastExerciseDate = learnerDescLastExerciseDate.Default.(string)
	// learnerDescCreatedAt is the schema descriptor for created_at field.
	learnerDescCreatedAt := learnerFields[9].Descriptor()
	// learner.DefaultCreatedAt holds the default value on creation for the created_at field.
	learner.DefaultCreatedAt = learnerDescCreatedAt.Default.(func() time.Time)
	// learnerDescUpdatedAt is the schema descriptor for updated_at field.
	learnerDescUpdatedAt := learnerFields[10].Descriptor()
	// learner.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	learner.DefaultUpdatedAt = learnerDescUpdatedAt.Default.(func() time.Time)
	// learner.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	learner.UpdateDefaultUpdatedAt = learnerDescUpdatedAt.UpdateDefault.(func() time.Time)
}
