// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/memograph/memograph/ent/entityidentifier"
	"github.com/memograph/memograph/ent/predicate"
)

// EntityIdentifierDelete is the builder for deleting a EntityIdentifier entity.
type EntityIdentifierDelete struct {
	config
	hooks    []Hook
	mutation *EntityIdentifierMutation
}

// Where appends a list predicates to the EntityIdentifierDelete builder.
func (_d *EntityIdentifierDelete) Where(ps ...predicate.EntityIdentifier) *EntityIdentifierDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *EntityIdentifierDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EntityIdentifierDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *EntityIdentifierDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(entityidentifier.Table, sqlgraph.NewFieldSpec(entityidentifier.FieldID, field.TypeString))
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

// EntityIdentifierDeleteOne is the builder for deleting a single EntityIdentifier entity.
type EntityIdentifierDeleteOne struct {
	_d *EntityIdentifierDelete
}

// Where appends a list predicates to the EntityIdentifierDelete builder.
func (_d *EntityIdentifierDeleteOne) Where(ps ...predicate.EntityIdentifier) *EntityIdentifierDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *EntityIdentifierDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{entityidentifier.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EntityIdentifierDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
