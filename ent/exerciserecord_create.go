// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/example/lingua/ent/exerciserecord"
)

// ExerciseRecordCreate is the builder for creating a ExerciseRecord entity.
type ExerciseRecordCreate struct {
	config
	mutation *ExerciseRecordMutation
	hooks    []Hook
}

// SetUserKey sets the "user_key" field.
func (_c *ExerciseRecordCreate) SetUserKey(v int64) *ExerciseRecordCreate {
	_c.mutation.SetUserKey(v)
	return _c
}

// SetExerciseType sets the "exercise_type" field.
func (_c *ExerciseRecordCreate) SetExerciseType(v string) *ExerciseRecordCreate {
	_c.mutation.SetExerciseType(v)
	return _c
}

// SetNillableExerciseType sets the "exercise_type" field if the given value is not nil.
func (_c *ExerciseRecordCreate) SetNillableExerciseType(v *string) *ExerciseRecordCreate {
	if v != nil {
		_c.SetExerciseType(*v)
	}
	return _c
}

// SetTopic sets the "topic" field.
func (_c *ExerciseRecordCreate) SetTopic(v string) *ExerciseRecordCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_c *ExerciseRecordCreate) SetNillableTopic(v *string) *ExerciseRecordCreate {
	if v != nil {
		_c.SetTopic(*v)
	}
	return _c
}

// SetQuestion sets the "question" field.
func (_c *ExerciseRecordCreate) SetQuestion(v string) *ExerciseRecordCreate {
	_c.mutation.SetQuestion(v)
	return _c
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_c *ExerciseRecordCreate) SetNillableQuestion(v *string) *ExerciseRecordCreate {
	if v != nil {
		_c.SetQuestion(*v)
	}
	return _c
}

// SetUserAnswer sets the "user_answer" field.
func (_c *ExerciseRecordCreate) SetUserAnswer(v string) *ExerciseRecordCreate {
	_c.mutation.SetUserAnswer(v)
	return _c
}

// SetNillableUserAnswer sets the "user_answer" field if the given value is not nil.
func (_c *ExerciseRecordCreate) SetNillableUserAnswer(v *string) *ExerciseRecordCreate {
	if v != nil {
		_c.SetUserAnswer(*v)
	}
	return _c
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_c *ExerciseRecordCreate) SetCorrectAnswer(v string) *ExerciseRecordCreate {
	_c.mutation.SetCorrectAnswer(v)
	return _c
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_c *ExerciseRecordCreate) SetNillableCorrectAnswer(v *string) *ExerciseRecordCreate {
	if v != nil {
		_c.SetCorrectAnswer(*v)
	}
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *ExerciseRecordCreate) SetCorrect(v bool) *ExerciseRecordCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *ExerciseRecordCreate) SetDifficulty(v float64) *ExerciseRecordCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetTimeSpentSec sets the "time_spent_sec" field.
func (_c *ExerciseRecordCreate) SetTimeSpentSec(v int) *ExerciseRecordCreate {
	_c.mutation.SetTimeSpentSec(v)
	return _c
}

// SetNillableTimeSpentSec sets the "time_spent_sec" field if the given value is not nil.
func (_c *ExerciseRecordCreate) SetNillableTimeSpentSec(v *int) *ExerciseRecordCreate {
	if v != nil {
		_c.SetTimeSpentSec(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExerciseRecordCreate) SetCreatedAt(v time.Time) *ExerciseRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExerciseRecordCreate) SetNillableCreatedAt(v *time.Time) *ExerciseRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the ExerciseRecordMutation object of the builder.
func (_c *ExerciseRecordCreate) Mutation() *ExerciseRecordMutation {
	return _c.mutation
}

// Save creates the ExerciseRecord in the database.
func (_c *ExerciseRecordCreate) Save(ctx context.Context) (*ExerciseRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExerciseRecordCreate) SaveX(ctx context.Context) *ExerciseRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExerciseRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExerciseRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExerciseRecordCreate) defaults() {
	if _, ok := _c.mutation.ExerciseType(); !ok {
		v := exerciserecord.DefaultExerciseType
		_c.mutation.SetExerciseType(v)
	}
	if _, ok := _c.mutation.Topic(); !ok {
		v := exerciserecord.DefaultTopic
		_c.mutation.SetTopic(v)
	}
	if _, ok := _c.mutation.Question(); !ok {
		v := exerciserecord.DefaultQuestion
		_c.mutation.SetQuestion(v)
	}
	if _, ok := _c.mutation.UserAnswer(); !ok {
		v := exerciserecord.DefaultUserAnswer
		_c.mutation.SetUserAnswer(v)
	}
	if _, ok := _c.mutation.CorrectAnswer(); !ok {
		v := exerciserecord.DefaultCorrectAnswer
		_c.mutation.SetCorrectAnswer(v)
	}
	if _, ok := _c.mutation.TimeSpentSec(); !ok {
		v := exerciserecord.DefaultTimeSpentSec
		_c.mutation.SetTimeSpentSec(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := exerciserecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExerciseRecordCreate) check() error {
	if _, ok := _c.mutation.UserKey(); !ok {
		return &ValidationError{Name: "user_key", err: errors.New(`ent: missing required field "ExerciseRecord.user_key"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "ExerciseRecord.correct"`)}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "ExerciseRecord.difficulty"`)}
	}
	if _, ok := _c.mutation.TimeSpentSec(); !ok {
		return &ValidationError{Name: "time_spent_sec", err: errors.New(`ent: missing required field "ExerciseRecord.time_spent_sec"`)}
	}
	if v, ok := _c.mutation.TimeSpentSec(); ok {
		if err := exerciserecord.TimeSpentSecValidator(v); err != nil {
			return &ValidationError{Name: "time_spent_sec", err: fmt.Errorf(`ent: validator failed for field "ExerciseRecord.time_spent_sec": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExerciseRecord.created_at"`)}
	}
	return nil
}

func (_c *ExerciseRecordCreate) sqlSave(ctx context.Context) (*ExerciseRecord, error) {
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

func (_c *ExerciseRecordCreate) createSpec() (*ExerciseRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &ExerciseRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(exerciserecord.Table, sqlgraph.NewFieldSpec(exerciserecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserKey(); ok {
		_spec.SetField(exerciserecord.FieldUserKey, field.TypeInt64, value)
		_node.UserKey = value
	}
	if value, ok := _c.mutation.ExerciseType(); ok {
		_spec.SetField(exerciserecord.FieldExerciseType, field.TypeString, value)
		_node.ExerciseType = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(exerciserecord.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Question(); ok {
		_spec.SetField(exerciserecord.FieldQuestion, field.TypeString, value)
		_node.Question = value
	}
	if value, ok := _c.mutation.UserAnswer(); ok {
		_spec.SetField(exerciserecord.FieldUserAnswer, field.TypeString, value)
		_node.UserAnswer = value
	}
	if value, ok := _c.mutation.CorrectAnswer(); ok {
		_spec.SetField(exerciserecord.FieldCorrectAnswer, field.TypeString, value)
		_node.CorrectAnswer = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(exerciserecord.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(exerciserecord.FieldDifficulty, field.TypeFloat64, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.TimeSpentSec(); ok {
		_spec.SetField(exerciserecord.FieldTimeSpentSec, field.TypeInt, value)
		_node.TimeSpentSec = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(exerciserecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ExerciseRecordCreateBulk is the builder for creating many ExerciseRecord entities in bulk.
type ExerciseRecordCreateBulk struct {
	config
	err      error
	builders []*ExerciseRecordCreate
}

// Save creates the ExerciseRecord entities in the database.
func (_c *ExerciseRecordCreateBulk) Save(ctx context.Context) ([]*ExerciseRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExerciseRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExerciseRecordMutation)
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
func (_c *ExerciseRecordCreateBulk) SaveX(ctx context.Context) []*ExerciseRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExerciseRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExerciseRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
