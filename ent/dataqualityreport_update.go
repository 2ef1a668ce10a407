// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/memograph/memograph/ent/dataqualityreport"
	"github.com/memograph/memograph/ent/predicate"
)

// DataQualityReportUpdate is the builder for updating DataQualityReport entities.
type DataQualityReportUpdate struct {
	config
	hooks    []Hook
	mutation *DataQualityReportMutation
}

// Where appends a list predicates to the DataQualityReportUpdate builder.
func (_u *DataQualityReportUpdate) Where(ps ...predicate.DataQualityReport) *DataQualityReportUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTriggeredBy sets the "triggered_by" field.
func (_u *DataQualityReportUpdate) SetTriggeredBy(v dataqualityreport.TriggeredBy) *DataQualityReportUpdate {
	_u.mutation.SetTriggeredBy(v)
	return _u
}

// SetNillableTriggeredBy sets the "triggered_by" field if the given value is not nil.
func (_u *DataQualityReportUpdate) SetNillableTriggeredBy(v *dataqualityreport.TriggeredBy) *DataQualityReportUpdate {
	if v != nil {
		_u.SetTriggeredBy(*v)
	}
	return _u
}

// SetMetrics sets the "metrics" field.
func (_u *DataQualityReportUpdate) SetMetrics(v map[string]interface{}) *DataQualityReportUpdate {
	_u.mutation.SetMetrics(v)
	return _u
}

// ClearMetrics clears the value of the "metrics" field.
func (_u *DataQualityReportUpdate) ClearMetrics() *DataQualityReportUpdate {
	_u.mutation.ClearMetrics()
	return _u
}

// SetIssues sets the "issues" field.
func (_u *DataQualityReportUpdate) SetIssues(v []map[string]interface{}) *DataQualityReportUpdate {
	_u.mutation.SetIssues(v)
	return _u
}

// AppendIssues appends value to the "issues" field.
func (_u *DataQualityReportUpdate) AppendIssues(v []map[string]interface{}) *DataQualityReportUpdate {
	_u.mutation.AppendIssues(v)
	return _u
}

// ClearIssues clears the value of the "issues" field.
func (_u *DataQualityReportUpdate) ClearIssues() *DataQualityReportUpdate {
	_u.mutation.ClearIssues()
	return _u
}

// SetResolutions sets the "resolutions" field.
func (_u *DataQualityReportUpdate) SetResolutions(v []map[string]interface{}) *DataQualityReportUpdate {
	_u.mutation.SetResolutions(v)
	return _u
}

// AppendResolutions appends value to the "resolutions" field.
func (_u *DataQualityReportUpdate) AppendResolutions(v []map[string]interface{}) *DataQualityReportUpdate {
	_u.mutation.AppendResolutions(v)
	return _u
}

// ClearResolutions clears the value of the "resolutions" field.
func (_u *DataQualityReportUpdate) ClearResolutions() *DataQualityReportUpdate {
	_u.mutation.ClearResolutions()
	return _u
}

// Mutation returns the DataQualityReportMutation object of the builder.
func (_u *DataQualityReportUpdate) Mutation() *DataQualityReportMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DataQualityReportUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DataQualityReportUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DataQualityReportUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DataQualityReportUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DataQualityReportUpdate) check() error {
	if v, ok := _u.mutation.TriggeredBy(); ok {
		if err := dataqualityreport.TriggeredByValidator(v); err != nil {
			return &ValidationError{Name: "triggered_by", err: fmt.Errorf(`ent: validator failed for field "DataQualityReport.triggered_by": %w`, err)}
		}
	}
	return nil
}

func (_u *DataQualityReportUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dataqualityreport.Table, dataqualityreport.Columns, sqlgraph.NewFieldSpec(dataqualityreport.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TriggeredBy(); ok {
		_spec.SetField(dataqualityreport.FieldTriggeredBy, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Metrics(); ok {
		_spec.SetField(dataqualityreport.FieldMetrics, field.TypeJSON, value)
	}
	if _u.mutation.MetricsCleared() {
		_spec.ClearField(dataqualityreport.FieldMetrics, field.TypeJSON)
	}
	if value, ok := _u.mutation.Issues(); ok {
		_spec.SetField(dataqualityreport.FieldIssues, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedIssues(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, dataqualityreport.FieldIssues, value)
		})
	}
	if _u.mutation.IssuesCleared() {
		_spec.ClearField(dataqualityreport.FieldIssues, field.TypeJSON)
	}
	if value, ok := _u.mutation.Resolutions(); ok {
		_spec.SetField(dataqualityreport.FieldResolutions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResolutions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, dataqualityreport.FieldResolutions, value)
		})
	}
	if _u.mutation.ResolutionsCleared() {
		_spec.ClearField(dataqualityreport.FieldResolutions, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dataqualityreport.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DataQualityReportUpdateOne is the builder for updating a single DataQualityReport entity.
type DataQualityReportUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DataQualityReportMutation
}

// SetTriggeredBy sets the "triggered_by" field.
func (_u *DataQualityReportUpdateOne) SetTriggeredBy(v dataqualityreport.TriggeredBy) *DataQualityReportUpdateOne {
	_u.mutation.SetTriggeredBy(v)
	return _u
}

// SetNillableTriggeredBy sets the "triggered_by" field if the given value is not nil.
func (_u *DataQualityReportUpdateOne) SetNillableTriggeredBy(v *dataqualityreport.TriggeredBy) *DataQualityReportUpdateOne {
	if v != nil {
		_u.SetTriggeredBy(*v)
	}
	return _u
}

// SetMetrics sets the "metrics" field.
func (_u *DataQualityReportUpdateOne) SetMetrics(v map[string]interface{}) *DataQualityReportUpdateOne {
	_u.mutation.SetMetrics(v)
	return _u
}

// ClearMetrics clears the value of the "metrics" field.
func (_u *DataQualityReportUpdateOne) ClearMetrics() *DataQualityReportUpdateOne {
	_u.mutation.ClearMetrics()
	return _u
}

// SetIssues sets the "issues" field.
func (_u *DataQualityReportUpdateOne) SetIssues(v []map[string]interface{}) *DataQualityReportUpdateOne {
	_u.mutation.SetIssues(v)
	return _u
}

// AppendIssues appends value to the "issues" field.
func (_u *DataQualityReportUpdateOne) AppendIssues(v []map[string]interface{}) *DataQualityReportUpdateOne {
	_u.mutation.AppendIssues(v)
	return _u
}

// ClearIssues clears the value of the "issues" field.
func (_u *DataQualityReportUpdateOne) ClearIssues() *DataQualityReportUpdateOne {
	_u.mutation.ClearIssues()
	return _u
}

// SetResolutions sets the "resolutions" field.
func (_u *DataQualityReportUpdateOne) SetResolutions(v []map[string]interface{}) *DataQualityReportUpdateOne {
	_u.mutation.SetResolutions(v)
	return _u
}

// AppendResolutions appends value to the "resolutions" field.
func (_u *DataQualityReportUpdateOne) AppendResolutions(v []map[string]interface{}) *DataQualityReportUpdateOne {
	_u.mutation.AppendResolutions(v)
	return _u
}

// ClearResolutions clears the value of the "resolutions" field.
func (_u *DataQualityReportUpdateOne) ClearResolutions() *DataQualityReportUpdateOne {
	_u.mutation.ClearResolutions()
	return _u
}

// Mutation returns the DataQualityReportMutation object of the builder.
func (_u *DataQualityReportUpdateOne) Mutation() *DataQualityReportMutation {
	return _u.mutation
}

// Where appends a list predicates to the DataQualityReportUpdate builder.
func (_u *DataQualityReportUpdateOne) Where(ps ...predicate.DataQualityReport) *DataQualityReportUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DataQualityReportUpdateOne) Select(field string, fields ...string) *DataQualityReportUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DataQualityReport entity.
func (_u *DataQualityReportUpdateOne) Save(ctx context.Context) (*DataQualityReport, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DataQualityReportUpdateOne) SaveX(ctx context.Context) *DataQualityReport {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DataQualityReportUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DataQualityReportUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DataQualityReportUpdateOne) check() error {
	if v, ok := _u.mutation.TriggeredBy(); ok {
		if err := dataqualityreport.TriggeredByValidator(v); err != nil {
			return &ValidationError{Name: "triggered_by", err: fmt.Errorf(`ent: validator failed for field "DataQualityReport.triggered_by": %w`, err)}
		}
	}
	return nil
}

func (_u *DataQualityReportUpdateOne) sqlSave(ctx context.Context) (_node *DataQualityReport, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dataqualityreport.Table, dataqualityreport.Columns, sqlgraph.NewFieldSpec(dataqualityreport.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DataQualityReport.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dataqualityreport.FieldID)
		for _, f := range fields {
			if !dataqualityreport.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != dataqualityreport.FieldID {
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
	if value, ok := _u.mutation.TriggeredBy(); ok {
		_spec.SetField(dataqualityreport.FieldTriggeredBy, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Metrics(); ok {
		_spec.SetField(dataqualityreport.FieldMetrics, field.TypeJSON, value)
	}
	if _u.mutation.MetricsCleared() {
		_spec.ClearField(dataqualityreport.FieldMetrics, field.TypeJSON)
	}
	if value, ok := _u.mutation.Issues(); ok {
		_spec.SetField(dataqualityreport.FieldIssues, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedIssues(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, dataqualityreport.FieldIssues, value)
		})
	}
	if _u.mutation.IssuesCleared() {
		_spec.ClearField(dataqualityreport.FieldIssues, field.TypeJSON)
	}
	if value, ok := _u.mutation.Resolutions(); ok {
		_spec.SetField(dataqualityreport.FieldResolutions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResolutions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, dataqualityreport.FieldResolutions, value)
		})
	}
	if _u.mutation.ResolutionsCleared() {
		_spec.ClearField(dataqualityreport.FieldResolutions, field.TypeJSON)
	}
	_node = &DataQualityReport{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dataqualityreport.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
