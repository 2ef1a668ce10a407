// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/memograph/memograph/ent/activityclosure"
	"github.com/memograph/memograph/ent/predicate"
)

// ActivityClosureDelete is the builder for deleting a ActivityClosure entity.
type ActivityClosureDelete struct {
	config
	hooks    []Hook
	mutation *ActivityClosureMutation
}

// Where appends a list predicates to the ActivityClosureDelete builder.
func (_d *ActivityClosureDelete) Where(ps ...predicate.ActivityClosure) *ActivityClosureDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ActivityClosureDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ActivityClosureDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ActivityClosureDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(activityclosure.Table, sqlgraph.NewFieldSpec(activityclosure.FieldID, field.TypeString))
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

// ActivityClosureDeleteOne is the builder for deleting a single ActivityClosure entity.
type ActivityClosureDeleteOne struct {
	_d *ActivityClosureDelete
}

// Where appends a list predicates to the ActivityClosureDelete builder.
func (_d *ActivityClosureDeleteOne) Where(ps ...predicate.ActivityClosure) *ActivityClosureDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ActivityClosureDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{activityclosure.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ActivityClosureDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
