// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/example/lingua/ent/exerciserecord"
	"github.com/example/lingua/ent/predicate"
)

// ExerciseRecordUpdate is the builder for updating ExerciseRecord entities.
type ExerciseRecordUpdate struct {
	config
	hooks    []Hook
	mutation *ExerciseRecordMutation
}

// Where appends a list predicates to the ExerciseRecordUpdate builder.
func (_u *ExerciseRecordUpdate) Where(ps ...predicate.ExerciseRecord) *ExerciseRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the ExerciseRecordMutation object of the builder.
func (_u *ExerciseRecordUpdate) Mutation() *ExerciseRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExerciseRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExerciseRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExerciseRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExerciseRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ExerciseRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(exerciserecord.Table, exerciserecord.Columns, sqlgraph.NewFieldSpec(exerciserecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ExerciseTypeCleared() {
		_spec.ClearField(exerciserecord.FieldExerciseType, field.TypeString)
	}
	if _u.mutation.TopicCleared() {
		_spec.ClearField(exerciserecord.FieldTopic, field.TypeString)
	}
	if _u.mutation.QuestionCleared() {
		_spec.ClearField(exerciserecord.FieldQuestion, field.TypeString)
	}
	if _u.mutation.UserAnswerCleared() {
		_spec.ClearField(exerciserecord.FieldUserAnswer, field.TypeString)
	}
	if _u.mutation.CorrectAnswerCleared() {
		_spec.ClearField(exerciserecord.FieldCorrectAnswer, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{exerciserecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExerciseRecordUpdateOne is the builder for updating a single ExerciseRecord entity.
type ExerciseRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExerciseRecordMutation
}

// Mutation returns the ExerciseRecordMutation object of the builder.
func (_u *ExerciseRecordUpdateOne) Mutation() *ExerciseRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExerciseRecordUpdate builder.
func (_u *ExerciseRecordUpdateOne) Where(ps ...predicate.ExerciseRecord) *ExerciseRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExerciseRecordUpdateOne) Select(field string, fields ...string) *ExerciseRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExerciseRecord entity.
func (_u *ExerciseRecordUpdateOne) Save(ctx context.Context) (*ExerciseRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExerciseRecordUpdateOne) SaveX(ctx context.Context) *ExerciseRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExerciseRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExerciseRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ExerciseRecordUpdateOne) sqlSave(ctx context.Context) (_node *ExerciseRecord, err error) {
	_spec := sqlgraph.NewUpdateSpec(exerciserecord.Table, exerciserecord.Columns, sqlgraph.NewFieldSpec(exerciserecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExerciseRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, exerciserecord.FieldID)
		for _, f := range fields {
			if !exerciserecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != exerciserecord.FieldID {
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
	if _u.mutation.ExerciseTypeCleared() {
		_spec.ClearField(exerciserecord.FieldExerciseType, field.TypeString)
	}
	if _u.mutation.TopicCleared() {
		_spec.ClearField(exerciserecord.FieldTopic, field.TypeString)
	}
	if _u.mutation.QuestionCleared() {
		_spec.ClearField(exerciserecord.FieldQuestion, field.TypeString)
	}
	if _u.mutation.UserAnswerCleared() {
		_spec.ClearField(exerciserecord.FieldUserAnswer, field.TypeString)
	}
	if _u.mutation.CorrectAnswerCleared() {
		_spec.ClearField(exerciserecord.FieldCorrectAnswer, field.TypeString)
	}
	_node = &ExerciseRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{exerciserecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
