// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/memograph/memograph/ent/embeddingjob"
	"github.com/memograph/memograph/ent/predicate"
)

// EmbeddingJobDelete is the builder for deleting a EmbeddingJob entity.
type EmbeddingJobDelete struct {
	config
	hooks    []Hook
	mutation *EmbeddingJobMutation
}

// Where appends a list predicates to the EmbeddingJobDelete builder.
func (_d *EmbeddingJobDelete) Where(ps ...predicate.EmbeddingJob) *EmbeddingJobDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *EmbeddingJobDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EmbeddingJobDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *EmbeddingJobDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(embeddingjob.Table, sqlgraph.NewFieldSpec(embeddingjob.FieldID, field.TypeString))
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

// EmbeddingJobDeleteOne is the builder for deleting a single EmbeddingJob entity.
type EmbeddingJobDeleteOne struct {
	_d *EmbeddingJobDelete
}

// Where appends a list predicates to the EmbeddingJobDelete builder.
func (_d *EmbeddingJobDeleteOne) Where(ps ...predicate.EmbeddingJob) *EmbeddingJobDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *EmbeddingJobDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{embeddingjob.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EmbeddingJobDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
