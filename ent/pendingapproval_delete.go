// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/memograph/memograph/ent/pendingapproval"
	"github.com/memograph/memograph/ent/predicate"
)

// PendingApprovalDelete is the builder for deleting a PendingApproval entity.
type PendingApprovalDelete struct {
	config
	hooks    []Hook
	mutation *PendingApprovalMutation
}

// Where appends a list predicates to the PendingApprovalDelete builder.
func (_d *PendingApprovalDelete) Where(ps ...predicate.PendingApproval) *PendingApprovalDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *PendingApprovalDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PendingApprovalDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *PendingApprovalDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(pendingapproval.Table, sqlgraph.NewFieldSpec(pendingapproval.FieldID, field.TypeString))
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

// PendingApprovalDeleteOne is the builder for deleting a single PendingApproval entity.
type PendingApprovalDeleteOne struct {
	_d *PendingApprovalDelete
}

// Where appends a list predicates to the PendingApprovalDelete builder.
func (_d *PendingApprovalDeleteOne) Where(ps ...predicate.PendingApproval) *PendingApprovalDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *PendingApprovalDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{pendingapproval.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PendingApprovalDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
