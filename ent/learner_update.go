// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/example/lingua/ent/learner"
	"github.com/example/lingua/ent/predicate"
)

// LearnerUpdate is the builder for updating Learner entities.
type LearnerUpdate struct {
	config
	hooks    []Hook
	mutation *LearnerMutation
}

// Where appends a list predicates to the LearnerUpdate builder.
func (_u *LearnerUpdate) Where(ps ...predicate.Learner) *LearnerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserKey sets the "user_key" field.
func (_u *LearnerUpdate) SetUserKey(v int64) *LearnerUpdate {
	_u.mutation.ResetUserKey()
	_u.mutation.SetUserKey(v)
	return _u
}

// SetNillableUserKey sets the "user_key" field if the given value is not nil.
func (_u *LearnerUpdate) SetNillableUserKey(v *int64) *LearnerUpdate {
	if v != nil {
		_u.SetUserKey(*v)
	}
	return _u
}

// AddUserKey adds value to the "user_key" field.
func (_u *LearnerUpdate) AddUserKey(v int64) *LearnerUpdate {
	_u.mutation.AddUserKey(v)
	return _u
}

// SetUsername sets the "username" field.
func (_u *LearnerUpdate) SetUsername(v string) *LearnerUpdate {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *LearnerUpdate) SetNillableUsername(v *string) *LearnerUpdate {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// ClearUsername clears the value of the "username" field.
func (_u *LearnerUpdate) ClearUsername() *LearnerUpdate {
	_u.mutation.ClearUsername()
	return _u
}

// SetLevel sets the "level" field.
func (_u *LearnerUpdate) SetLevel(v string) *LearnerUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *LearnerUpdate) SetNillableLevel(v *string) *LearnerUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetTotalExercises sets the "total_exercises" field.
func (_u *LearnerUpdate) SetTotalExercises(v int) *LearnerUpdate {
	_u.mutation.ResetTotalExercises()
	_u.mutation.SetTotalExercises(v)
	return _u
}

// SetNillableTotalExercises sets the "total_exercises" field if the given value is not nil.
func (_u *LearnerUpdate) SetNillableTotalExercises(v *int) *LearnerUpdate {
	if v != nil {
		_u.SetTotalExercises(*v)
	}
	return _u
}

// AddTotalExercises adds value to the "total_exercises" field.
func (_u *LearnerUpdate) AddTotalExercises(v int) *LearnerUpdate {
	_u.mutation.AddTotalExercises(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *LearnerUpdate) SetCorrectAnswers(v int) *LearnerUpdate {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *LearnerUpdate) SetNillableCorrectAnswers(v *int) *LearnerUpdate {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *LearnerUpdate) AddCorrectAnswers(v int) *LearnerUpdate {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *LearnerUpdate) SetAccuracy(v float64) *LearnerUpdate {
	_u.mutation.ResetAccuracy()
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *LearnerUpdate) SetNillableAccuracy(v *float64) *LearnerUpdate {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// AddAccuracy adds value to the "accuracy" field.
func (_u *LearnerUpdate) AddAccuracy(v float64) *LearnerUpdate {
	_u.mutation.AddAccuracy(v)
	return _u
}

// SetWeakTopics sets the "weak_topics" field.
func (_u *LearnerUpdate) SetWeakTopics(v []string) *LearnerUpdate {
	_u.mutation.SetWeakTopics(v)
	return _u
}

// AppendWeakTopics appends value to the "weak_topics" field.
func (_u *LearnerUpdate) AppendWeakTopics(v []string) *LearnerUpdate {
	_u.mutation.AppendWeakTopics(v)
	return _u
}

// ClearWeakTopics clears the value of the "weak_topics" field.
func (_u *LearnerUpdate) ClearWeakTopics() *LearnerUpdate {
	_u.mutation.ClearWeakTopics()
	return _u
}

// SetStreakDays sets the "streak_days" field.
func (_u *LearnerUpdate) SetStreakDays(v int) *LearnerUpdate {
	_u.mutation.ResetStreakDays()
	_u.mutation.SetStreakDays(v)
	return _u
}

// SetNillableStreakDays sets the "streak_days" field if the given value is not nil.
func (_u *LearnerUpdate) SetNillableStreakDays(v *int) *LearnerUpdate {
	if v != nil {
		_u.SetStreakDays(*v)
	}
	return _u
}

// AddStreakDays adds value to the "streak_days" field.
func (_u *LearnerUpdate) AddStreakDays(v int) *LearnerUpdate {
	_u.mutation.AddStreakDays(v)
	return _u
}

// SetLastExerciseDate sets the "last_exercise_date" field.
func (_u *LearnerUpdate) SetLastExerciseDate(v string) *LearnerUpdate {
	_u.mutation.SetLastExerciseDate(v)
	return _u
}

// SetNillableLastExerciseDate sets the "last_exercise_date" field if the given value is not nil.
func (_u *LearnerUpdate) SetNillableLastExerciseDate(v *string) *LearnerUpdate {
	if v != nil {
		_u.SetLastExerciseDate(*v)
	}
	return _u
}

// ClearLastExerciseDate clears the value of the "last_exercise_date" field.
func (_u *LearnerUpdate) ClearLastExerciseDate() *LearnerUpdate {
	_u.mutation.ClearLastExerciseDate()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LearnerUpdate) SetUpdatedAt(v time.Time) *LearnerUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LearnerMutation object of the builder.
func (_u *LearnerUpdate) Mutation() *LearnerMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LearnerUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearnerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LearnerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearnerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LearnerUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := learner.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearnerUpdate) check() error {
	if v, ok := _u.mutation.TotalExercises(); ok {
		if err := learner.TotalExercisesValidator(v); err != nil {
			return &ValidationError{Name: "total_exercises", err: fmt.Errorf(`ent: validator failed for field "Learner.total_exercises": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectAnswers(); ok {
		if err := learner.CorrectAnswersValidator(v); err != nil {
			return &ValidationError{Name: "correct_answers", err: fmt.Errorf(`ent: validator failed for field "Learner.correct_answers": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StreakDays(); ok {
		if err := learner.StreakDaysValidator(v); err != nil {
			return &ValidationError{Name: "streak_days", err: fmt.Errorf(`ent: validator failed for field "Learner.streak_days": %w`, err)}
		}
	}
	return nil
}

func (_u *LearnerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learner.Table, learner.Columns, sqlgraph.NewFieldSpec(learner.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserKey(); ok {
		_spec.SetField(learner.FieldUserKey, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUserKey(); ok {
		_spec.AddField(learner.FieldUserKey, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(learner.FieldUsername, field.TypeString, value)
	}
	if _u.mutation.UsernameCleared() {
		_spec.ClearField(learner.FieldUsername, field.TypeString)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(learner.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalExercises(); ok {
		_spec.SetField(learner.FieldTotalExercises, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalExercises(); ok {
		_spec.AddField(learner.FieldTotalExercises, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(learner.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(learner.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(learner.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccuracy(); ok {
		_spec.AddField(learner.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.WeakTopics(); ok {
		_spec.SetField(learner.FieldWeakTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWeakTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learner.FieldWeakTopics, value)
		})
	}
	if _u.mutation.WeakTopicsCleared() {
		_spec.ClearField(learner.FieldWeakTopics, field.TypeJSON)
	}
	if value, ok := _u.mutation.StreakDays(); ok {
		_spec.SetField(learner.FieldStreakDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreakDays(); ok {
		_spec.AddField(learner.FieldStreakDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastExerciseDate(); ok {
		_spec.SetField(learner.FieldLastExerciseDate, field.TypeString, value)
	}
	if _u.mutation.LastExerciseDateCleared() {
		_spec.ClearField(learner.FieldLastExerciseDate, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(learner.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learner.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LearnerUpdateOne is the builder for updating a single Learner entity.
type LearnerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LearnerMutation
}

// SetUserKey sets the "user_key" field.
func (_u *LearnerUpdateOne) SetUserKey(v int64) *LearnerUpdateOne {
	_u.mutation.ResetUserKey()
	_u.mutation.SetUserKey(v)
	return _u
}

// SetNillableUserKey sets the "user_key" field if the given value is not nil.
func (_u *LearnerUpdateOne) SetNillableUserKey(v *int64) *LearnerUpdateOne {
	if v != nil {
		_u.SetUserKey(*v)
	}
	return _u
}

// AddUserKey adds value to the "user_key" field.
func (_u *LearnerUpdateOne) AddUserKey(v int64) *LearnerUpdateOne {
	_u.mutation.AddUserKey(v)
	return _u
}

// SetUsername sets the "username" field.
func (_u *LearnerUpdateOne) SetUsername(v string) *LearnerUpdateOne {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *LearnerUpdateOne) SetNillableUsername(v *string) *LearnerUpdateOne {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// ClearUsername clears the value of the "username" field.
func (_u *LearnerUpdateOne) ClearUsername() *LearnerUpdateOne {
	_u.mutation.ClearUsername()
	return _u
}

// SetLevel sets the "level" field.
func (_u *LearnerUpdateOne) SetLevel(v string) *LearnerUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *LearnerUpdateOne) SetNillableLevel(v *string) *LearnerUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetTotalExercises sets the "total_exercises" field.
func (_u *LearnerUpdateOne) SetTotalExercises(v int) *LearnerUpdateOne {
	_u.mutation.ResetTotalExercises()
	_u.mutation.SetTotalExercises(v)
	return _u
}

// SetNillableTotalExercises sets the "total_exercises" field if the given value is not nil.
func (_u *LearnerUpdateOne) SetNillableTotalExercises(v *int) *LearnerUpdateOne {
	if v != nil {
		_u.SetTotalExercises(*v)
	}
	return _u
}

// AddTotalExercises adds value to the "total_exercises" field.
func (_u *LearnerUpdateOne) AddTotalExercises(v int) *LearnerUpdateOne {
	_u.mutation.AddTotalExercises(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *LearnerUpdateOne) SetCorrectAnswers(v int) *LearnerUpdateOne {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *LearnerUpdateOne) SetNillableCorrectAnswers(v *int) *LearnerUpdateOne {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *LearnerUpdateOne) AddCorrectAnswers(v int) *LearnerUpdateOne {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *LearnerUpdateOne) SetAccuracy(v float64) *LearnerUpdateOne {
	_u.mutation.ResetAccuracy()
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *LearnerUpdateOne) SetNillableAccuracy(v *float64) *LearnerUpdateOne {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// AddAccuracy adds value to the "accuracy" field.
func (_u *LearnerUpdateOne) AddAccuracy(v float64) *LearnerUpdateOne {
	_u.mutation.AddAccuracy(v)
	return _u
}

// SetWeakTopics sets the "weak_topics" field.
func (_u *LearnerUpdateOne) SetWeakTopics(v []string) *LearnerUpdateOne {
	_u.mutation.SetWeakTopics(v)
	return _u
}

// AppendWeakTopics appends value to the "weak_topics" field.
func (_u *LearnerUpdateOne) AppendWeakTopics(v []string) *LearnerUpdateOne {
	_u.mutation.AppendWeakTopics(v)
	return _u
}

// ClearWeakTopics clears the value of the "weak_topics" field.
func (_u *LearnerUpdateOne) ClearWeakTopics() *LearnerUpdateOne {
	_u.mutation.ClearWeakTopics()
	return _u
}

// SetStreakDays sets the "streak_days" field.
func (_u *LearnerUpdateOne) SetStreakDays(v int) *LearnerUpdateOne {
	_u.mutation.ResetStreakDays()
	_u.mutation.SetStreakDays(v)
	return _u
}

// SetNillableStreakDays sets the "streak_days" field if the given value is not nil.
func (_u *LearnerUpdateOne) SetNillableStreakDays(v *int) *LearnerUpdateOne {
	if v != nil {
		_u.SetStreakDays(*v)
	}
	return _u
}

// AddStreakDays adds value to the "streak_days" field.
func (_u *LearnerUpdateOne) AddStreakDays(v int) *LearnerUpdateOne {
	_u.mutation.AddStreakDays(v)
	return _u
}

// SetLastExerciseDate sets the "last_exercise_date" field.
func (_u *LearnerUpdateOne) SetLastExerciseDate(v string) *LearnerUpdateOne {
	_u.mutation.SetLastExerciseDate(v)
	return _u
}

// SetNillableLastExerciseDate sets the "last_exercise_date" field if the given value is not nil.
func (_u *LearnerUpdateOne) SetNillableLastExerciseDate(v *string) *LearnerUpdateOne {
	if v != nil {
		_u.SetLastExerciseDate(*v)
	}
	return _u
}

// ClearLastExerciseDate clears the value of the "last_exercise_date" field.
func (_u *LearnerUpdateOne) ClearLastExerciseDate() *LearnerUpdateOne {
	_u.mutation.ClearLastExerciseDate()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LearnerUpdateOne) SetUpdatedAt(v time.Time) *LearnerUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LearnerMutation object of the builder.
func (_u *LearnerUpdateOne) Mutation() *LearnerMutation {
	return _u.mutation
}

// Where appends a list predicates to the LearnerUpdate builder.
func (_u *LearnerUpdateOne) Where(ps ...predicate.Learner) *LearnerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LearnerUpdateOne) Select(field string, fields ...string) *LearnerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Learner entity.
func (_u *LearnerUpdateOne) Save(ctx context.Context) (*Learner, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearnerUpdateOne) SaveX(ctx context.Context) *Learner {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LearnerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearnerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LearnerUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := learner.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearnerUpdateOne) check() error {
	if v, ok := _u.mutation.TotalExercises(); ok {
		if err := learner.TotalExercisesValidator(v); err != nil {
			return &ValidationError{Name: "total_exercises", err: fmt.Errorf(`ent: validator failed for field "Learner.total_exercises": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectAnswers(); ok {
		if err := learner.CorrectAnswersValidator(v); err != nil {
			return &ValidationError{Name: "correct_answers", err: fmt.Errorf(`ent: validator failed for field "Learner.correct_answers": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StreakDays(); ok {
		if err := learner.StreakDaysValidator(v); err != nil {
			return &ValidationError{Name: "streak_days", err: fmt.Errorf(`ent: validator failed for field "Learner.streak_days": %w`, err)}
		}
	}
	return nil
}

func (_u *LearnerUpdateOne) sqlSave(ctx context.Context) (_node *Learner, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learner.Table, learner.Columns, sqlgraph.NewFieldSpec(learner.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Learner.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, learner.FieldID)
		for _, f := range fields {
			if !learner.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != learner.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserKey(); ok {
		_spec.SetField(learner.FieldUserKey, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUserKey(); ok {
		_spec.AddField(learner.FieldUserKey, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(learner.FieldUsername, field.TypeString, value)
	}
	if _u.mutation.UsernameCleared() {
		_spec.ClearField(learner.FieldUsername, field.TypeString)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(learner.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalExercises(); ok {
		_spec.SetField(learner.FieldTotalExercises, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalExercises(); ok {
		_spec.AddField(learner.FieldTotalExercises, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(learner.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(learner.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(learner.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccuracy(); ok {
		_spec.AddField(learner.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.WeakTopics(); ok {
		_spec.SetField(learner.FieldWeakTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWeakTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learner.FieldWeakTopics, value)
		})
	}
	if _u.mutation.WeakTopicsCleared() {
		_spec.ClearField(learner.FieldWeakTopics, field.TypeJSON)
	}
	if value, ok := _u.mutation.StreakDays(); ok {
		_spec.SetField(learner.FieldStreakDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreakDays(); ok {
		_spec.AddField(learner.FieldStreakDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastExerciseDate(); ok {
		_spec.SetField(learner.FieldLastExerciseDate, field.TypeString, value)
	}
	if _u.mutation.LastExerciseDateCleared() {
		_spec.ClearField(learner.FieldLastExerciseDate, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(learner.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Learner{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learner.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
