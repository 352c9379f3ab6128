// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/example/lingua/ent/learner"
)

// LearnerCreate is the builder for creating a Learner entity.
type LearnerCreate struct {
	config
	mutation *LearnerMutation
	hooks    []Hook
}

// SetUserKey sets the "user_key" field.
func (_c *LearnerCreate) SetUserKey(v int64) *LearnerCreate {
	_c.mutation.SetUserKey(v)
	return _c
}

// SetUsername sets the "username" field.
func (_c *LearnerCreate) SetUsername(v string) *LearnerCreate {
	_c.mutation.SetUsername(v)
	return _c
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_c *LearnerCreate) SetNillableUsername(v *string) *LearnerCreate {
	if v != nil {
		_c.SetUsername(*v)
	}
	return _c
}

// SetLevel sets the "level" field.
func (_c *LearnerCreate) SetLevel(v string) *LearnerCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_c *LearnerCreate) SetNillableLevel(v *string) *LearnerCreate {
	if v != nil {
		_c.SetLevel(*v)
	}
	return _c
}

// SetTotalExercises sets the "total_exercises" field.
func (_c *LearnerCreate) SetTotalExercises(v int) *LearnerCreate {
	_c.mutation.SetTotalExercises(v)
	return _c
}

// SetNillableTotalExercises sets the "total_exercises" field if the given value is not nil.
func (_c *LearnerCreate) SetNillableTotalExercises(v *int) *LearnerCreate {
	if v != nil {
		_c.SetTotalExercises(*v)
	}
	return _c
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_c *LearnerCreate) SetCorrectAnswers(v int) *LearnerCreate {
	_c.mutation.SetCorrectAnswers(v)
	return _c
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_c *LearnerCreate) SetNillableCorrectAnswers(v *int) *LearnerCreate {
	if v != nil {
		_c.SetCorrectAnswers(*v)
	}
	return _c
}

// SetAccuracy sets the "accuracy" field.
func (_c *LearnerCreate) SetAccuracy(v float64) *LearnerCreate {
	_c.mutation.SetAccuracy(v)
	return _c
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_c *LearnerCreate) SetNillableAccuracy(v *float64) *LearnerCreate {
	if v != nil {
		_c.SetAccuracy(*v)
	}
	return _c
}

// SetWeakTopics sets the "weak_topics" field.
func (_c *LearnerCreate) SetWeakTopics(v []string) *LearnerCreate {
	_c.mutation.SetWeakTopics(v)
	return _c
}

// SetStreakDays sets the "streak_days" field.
func (_c *LearnerCreate) SetStreakDays(v int) *LearnerCreate {
	_c.mutation.SetStreakDays(v)
	return _c
}

// SetNillableStreakDays sets the "streak_days" field if the given value is not nil.
func (_c *LearnerCreate) SetNillableStreakDays(v *int) *LearnerCreate {
	if v != nil {
		_c.SetStreakDays(*v)
	}
	return _c
}

// SetLastExerciseDate sets the "last_exercise_date" field.
func (_c *LearnerCreate) SetLastExerciseDate(v string) *LearnerCreate {
	_c.mutation.SetLastExerciseDate(v)
	return _c
}

// SetNillableLastExerciseDate sets the "last_exercise_date" field if the given value is not nil.
func (_c *LearnerCreate) SetNillableLastExerciseDate(v *string) *LearnerCreate {
	if v != nil {
		_c.SetLastExerciseDate(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LearnerCreate) SetCreatedAt(v time.Time) *LearnerCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LearnerCreate) SetNillableCreatedAt(v *time.Time) *LearnerCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LearnerCreate) SetUpdatedAt(v time.Time) *LearnerCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LearnerCreate) SetNillableUpdatedAt(v *time.Time) *LearnerCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the LearnerMutation object of the builder.
func (_c *LearnerCreate) Mutation() *LearnerMutation {
	return _c.mutation
}

// Save creates the Learner in the database.
func (_c *LearnerCreate) Save(ctx context.Context) (*Learner, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LearnerCreate) SaveX(ctx context.Context) *Learner {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearnerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearnerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LearnerCreate) defaults() {
	if _, ok := _c.mutation.Username(); !ok {
		v := learner.DefaultUsername
		_c.mutation.SetUsername(v)
	}
	if _, ok := _c.mutation.Level(); !ok {
		v := learner.DefaultLevel
		_c.mutation.SetLevel(v)
	}
	if _, ok := _c.mutation.TotalExercises(); !ok {
		v := learner.DefaultTotalExercises
		_c.mutation.SetTotalExercises(v)
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		v := learner.DefaultCorrectAnswers
		_c.mutation.SetCorrectAnswers(v)
	}
	if _, ok := _c.mutation.Accuracy(); !ok {
		v := learner.DefaultAccuracy
		_c.mutation.SetAccuracy(v)
	}
	if _, ok := _c.mutation.StreakDays(); !ok {
		v := learner.DefaultStreakDays
		_c.mutation.SetStreakDays(v)
	}
	if _, ok := _c.mutation.LastExerciseDate(); !ok {
		v := learner.DefaultLastExerciseDate
		_c.mutation.SetLastExerciseDate(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := learner.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := learner.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LearnerCreate) check() error {
	if _, ok := _c.mutation.UserKey(); !ok {
		return &ValidationError{Name: "user_key", err: errors.New(`ent: missing required field "Learner.user_key"`)}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "Learner.level"`)}
	}
	if _, ok := _c.mutation.TotalExercises(); !ok {
		return &ValidationError{Name: "total_exercises", err: errors.New(`ent: missing required field "Learner.total_exercises"`)}
	}
	if v, ok := _c.mutation.TotalExercises(); ok {
		if err := learner.TotalExercisesValidator(v); err != nil {
			return &ValidationError{Name: "total_exercises", err: fmt.Errorf(`ent: validator failed for field "Learner.total_exercises": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		return &ValidationError{Name: "correct_answers", err: errors.New(`ent: missing required field "Learner.correct_answers"`)}
	}
	if v, ok := _c.mutation.CorrectAnswers(); ok {
		if err := learner.CorrectAnswersValidator(v); err != nil {
			return &ValidationError{Name: "correct_answers", err: fmt.Errorf(`ent: validator failed for field "Learner.correct_answers": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Accuracy(); !ok {
		return &ValidationError{Name: "accuracy", err: errors.New(`ent: missing required field "Learner.accuracy"`)}
	}
	if _, ok := _c.mutation.StreakDays(); !ok {
		return &ValidationError{Name: "streak_days", err: errors.New(`ent: missing required field "Learner.streak_days"`)}
	}
	if v, ok := _c.mutation.StreakDays(); ok {
		if err := learner.StreakDaysValidator(v); err != nil {
			return &ValidationError{Name: "streak_days", err: fmt.Errorf(`ent: validator failed for field "Learner.streak_days": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Learner.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Learner.updated_at"`)}
	}
	return nil
}

func (_c *LearnerCreate) sqlSave(ctx context.Context) (*Learner, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LearnerCreate) createSpec() (*Learner, *sqlgraph.CreateSpec) {
	var (
		_node = &Learner{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(learner.Table, sqlgraph.NewFieldSpec(learner.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserKey(); ok {
		_spec.SetField(learner.FieldUserKey, field.TypeInt64, value)
		_node.UserKey = value
	}
	if value, ok := _c.mutation.Username(); ok {
		_spec.SetField(learner.FieldUsername, field.TypeString, value)
		_node.Username = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(learner.FieldLevel, field.TypeString, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.TotalExercises(); ok {
		_spec.SetField(learner.FieldTotalExercises, field.TypeInt, value)
		_node.TotalExercises = value
	}
	if value, ok := _c.mutation.CorrectAnswers(); ok {
		_spec.SetField(learner.FieldCorrectAnswers, field.TypeInt, value)
		_node.CorrectAnswers = value
	}
	if value, ok := _c.mutation.Accuracy(); ok {
		_spec.SetField(learner.FieldAccuracy, field.TypeFloat64, value)
		_node.Accuracy = value
	}
	if value, ok := _c.mutation.WeakTopics(); ok {
		_spec.SetField(learner.FieldWeakTopics, field.TypeJSON, value)
		_node.WeakTopics = value
	}
	if value, ok := _c.mutation.StreakDays(); ok {
		_spec.SetField(learner.FieldStreakDays, field.TypeInt, value)
		_node.StreakDays = value
	}
	if value, ok := _c.mutation.LastExerciseDate(); ok {
		_spec.SetField(learner.FieldLastExerciseDate, field.TypeString, value)
		_node.LastExerciseDate = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(learner.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(learner.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// LearnerCreateBulk is the builder for creating many Learner entities in bulk.
type LearnerCreateBulk struct {
	config
	err      error
	builders []*LearnerCreate
}

// Save creates the Learner entities in the database.
func (_c *LearnerCreateBulk) Save(ctx context.Context) ([]*Learner, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Learner, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LearnerMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *LearnerCreateBulk) SaveX(ctx context.Context) []*Learner {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearnerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearnerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
