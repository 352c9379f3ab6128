// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/example/lingua/ent/exerciserecord"
	"github.com/example/lingua/ent/predicate"
)

// ExerciseRecordDelete is the builder for deleting a ExerciseRecord entity.
type ExerciseRecordDelete struct {
	config
	hooks    []Hook
	mutation *ExerciseRecordMutation
}

// Where appends a list predicates to the ExerciseRecordDelete builder.
func (_d *ExerciseRecordDelete) Where(ps ...predicate.ExerciseRecord) *ExerciseRecordDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ExerciseRecordDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExerciseRecordDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ExerciseRecordDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(exerciserecord.Table, sqlgraph.NewFieldSpec(exerciserecord.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ExerciseRecordDeleteOne is the builder for deleting a single ExerciseRecord entity.
type ExerciseRecordDeleteOne struct {
	_d *ExerciseRecordDelete
}

// Where appends a list predicates to the ExerciseRecordDelete builder.
func (_d *ExerciseRecordDeleteOne) Where(ps ...predicate.ExerciseRecord) *ExerciseRecordDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ExerciseRecordDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{exerciserecord.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExerciseRecordDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
