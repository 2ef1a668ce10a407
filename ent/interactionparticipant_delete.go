// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/memograph/memograph/ent/interactionparticipant"
	"github.com/memograph/memograph/ent/predicate"
)

// InteractionParticipantDelete is the builder for deleting a InteractionParticipant entity.
type InteractionParticipantDelete struct {
	config
	hooks    []Hook
	mutation *InteractionParticipantMutation
}

// Where appends a list predicates to the InteractionParticipantDelete builder.
func (_d *InteractionParticipantDelete) Where(ps ...predicate.InteractionParticipant) *InteractionParticipantDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *InteractionParticipantDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *InteractionParticipantDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *InteractionParticipantDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(interactionparticipant.Table, sqlgraph.NewFieldSpec(interactionparticipant.FieldID, field.TypeString))
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

// InteractionParticipantDeleteOne is the builder for deleting a single InteractionParticipant entity.
type InteractionParticipantDeleteOne struct {
	_d *InteractionParticipantDelete
}

// Where appends a list predicates to the InteractionParticipantDelete builder.
func (_d *InteractionParticipantDeleteOne) Where(ps ...predicate.InteractionParticipant) *InteractionParticipantDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *InteractionParticipantDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{interactionparticipant.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *InteractionParticipantDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
