// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/memograph/memograph/ent/dataqualityreport"
	"github.com/memograph/memograph/ent/predicate"
)

// DataQualityReportDelete is the builder for deleting a DataQualityReport entity.
type DataQualityReportDelete struct {
	config
	hooks    []Hook
	mutation *DataQualityReportMutation
}

// Where appends a list predicates to the DataQualityReportDelete builder.
func (_d *DataQualityReportDelete) Where(ps ...predicate.DataQualityReport) *DataQualityReportDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DataQualityReportDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DataQualityReportDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DataQualityReportDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(dataqualityreport.Table, sqlgraph.NewFieldSpec(dataqualityreport.FieldID, field.TypeString))
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

// DataQualityReportDeleteOne is the builder for deleting a single DataQualityReport entity.
type DataQualityReportDeleteOne struct {
	_d *DataQualityReportDelete
}

// Where appends a list predicates to the DataQualityReportDelete builder.
func (_d *DataQualityReportDeleteOne) Where(ps ...predicate.DataQualityReport) *DataQualityReportDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DataQualityReportDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{dataqualityreport.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DataQualityReportDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
