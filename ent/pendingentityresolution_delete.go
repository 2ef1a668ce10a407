// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/memograph/memograph/ent/pendingentityresolution"
	"github.com/memograph/memograph/ent/predicate"
)

// PendingEntityResolutionDelete is the builder for deleting a PendingEntityResolution entity.
type PendingEntityResolutionDelete struct {
	config
	hooks    []Hook
	mutation *PendingEntityResolutionMutation
}

// Where appends a list predicates to the PendingEntityResolutionDelete builder.
func (_d *PendingEntityResolutionDelete) Where(ps ...predicate.PendingEntityResolution) *PendingEntityResolutionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *PendingEntityResolutionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PendingEntityResolutionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *PendingEntityResolutionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(pendingentityresolution.Table, sqlgraph.NewFieldSpec(pendingentityresolution.FieldID, field.TypeString))
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

// PendingEntityResolutionDeleteOne is the builder for deleting a single PendingEntityResolution entity.
type PendingEntityResolutionDeleteOne struct {
	_d *PendingEntityResolutionDelete
}

// Where appends a list predicates to the PendingEntityResolutionDelete builder.
func (_d *PendingEntityResolutionDeleteOne) Where(ps ...predicate.PendingEntityResolution) *PendingEntityResolutionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *PendingEntityResolutionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{pendingentityresolution.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PendingEntityResolutionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
