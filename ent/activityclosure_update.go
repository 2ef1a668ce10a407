// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/memograph/memograph/ent/activityclosure"
	"github.com/memograph/memograph/ent/predicate"
)

// ActivityClosureUpdate is the builder for updating ActivityClosure entities.
type ActivityClosureUpdate struct {
	config
	hooks    []Hook
	mutation *ActivityClosureMutation
}

// Where appends a list predicates to the ActivityClosureUpdate builder.
func (_u *ActivityClosureUpdate) Where(ps ...predicate.ActivityClosure) *ActivityClosureUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAncestorID sets the "ancestor_id" field.
func (_u *ActivityClosureUpdate) SetAncestorID(v string) *ActivityClosureUpdate {
	_u.mutation.SetAncestorID(v)
	return _u
}

// SetNillableAncestorID sets the "ancestor_id" field if the given value is not nil.
func (_u *ActivityClosureUpdate) SetNillableAncestorID(v *string) *ActivityClosureUpdate {
	if v != nil {
		_u.SetAncestorID(*v)
	}
	return _u
}

// SetDescendantID sets the "descendant_id" field.
func (_u *ActivityClosureUpdate) SetDescendantID(v string) *ActivityClosureUpdate {
	_u.mutation.SetDescendantID(v)
	return _u
}

// SetNillableDescendantID sets the "descendant_id" field if the given value is not nil.
func (_u *ActivityClosureUpdate) SetNillableDescendantID(v *string) *ActivityClosureUpdate {
	if v != nil {
		_u.SetDescendantID(*v)
	}
	return _u
}

// SetDepth sets the "depth" field.
func (_u *ActivityClosureUpdate) SetDepth(v int) *ActivityClosureUpdate {
	_u.mutation.ResetDepth()
	_u.mutation.SetDepth(v)
	return _u
}

// SetNillableDepth sets the "depth" field if the given value is not nil.
func (_u *ActivityClosureUpdate) SetNillableDepth(v *int) *ActivityClosureUpdate {
	if v != nil {
		_u.SetDepth(*v)
	}
	return _u
}

// AddDepth adds value to the "depth" field.
func (_u *ActivityClosureUpdate) AddDepth(v int) *ActivityClosureUpdate {
	_u.mutation.AddDepth(v)
	return _u
}

// Mutation returns the ActivityClosureMutation object of the builder.
func (_u *ActivityClosureUpdate) Mutation() *ActivityClosureMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ActivityClosureUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActivityClosureUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ActivityClosureUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActivityClosureUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ActivityClosureUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(activityclosure.Table, activityclosure.Columns, sqlgraph.NewFieldSpec(activityclosure.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AncestorID(); ok {
		_spec.SetField(activityclosure.FieldAncestorID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DescendantID(); ok {
		_spec.SetField(activityclosure.FieldDescendantID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Depth(); ok {
		_spec.SetField(activityclosure.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDepth(); ok {
		_spec.AddField(activityclosure.FieldDepth, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activityclosure.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ActivityClosureUpdateOne is the builder for updating a single ActivityClosure entity.
type ActivityClosureUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ActivityClosureMutation
}

// SetAncestorID sets the "ancestor_id" field.
func (_u *ActivityClosureUpdateOne) SetAncestorID(v string) *ActivityClosureUpdateOne {
	_u.mutation.SetAncestorID(v)
	return _u
}

// SetNillableAncestorID sets the "ancestor_id" field if the given value is not nil.
func (_u *ActivityClosureUpdateOne) SetNillableAncestorID(v *string) *ActivityClosureUpdateOne {
	if v != nil {
		_u.SetAncestorID(*v)
	}
	return _u
}

// SetDescendantID sets the "descendant_id" field.
func (_u *ActivityClosureUpdateOne) SetDescendantID(v string) *ActivityClosureUpdateOne {
	_u.mutation.SetDescendantID(v)
	return _u
}

// SetNillableDescendantID sets the "descendant_id" field if the given value is not nil.
func (_u *ActivityClosureUpdateOne) SetNillableDescendantID(v *string) *ActivityClosureUpdateOne {
	if v != nil {
		_u.SetDescendantID(*v)
	}
	return _u
}

// SetDepth sets the "depth" field.
func (_u *ActivityClosureUpdateOne) SetDepth(v int) *ActivityClosureUpdateOne {
	_u.mutation.ResetDepth()
	_u.mutation.SetDepth(v)
	return _u
}

// SetNillableDepth sets the "depth" field if the given value is not nil.
func (_u *ActivityClosureUpdateOne) SetNillableDepth(v *int) *ActivityClosureUpdateOne {
	if v != nil {
		_u.SetDepth(*v)
	}
	return _u
}

// AddDepth adds value to the "depth" field.
func (_u *ActivityClosureUpdateOne) AddDepth(v int) *ActivityClosureUpdateOne {
	_u.mutation.AddDepth(v)
	return _u
}

// Mutation returns the ActivityClosureMutation object of the builder.
func (_u *ActivityClosureUpdateOne) Mutation() *ActivityClosureMutation {
	return _u.mutation
}

// Where appends a list predicates to the ActivityClosureUpdate builder.
func (_u *ActivityClosureUpdateOne) Where(ps ...predicate.ActivityClosure) *ActivityClosureUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ActivityClosureUpdateOne) Select(field string, fields ...string) *ActivityClosureUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ActivityClosure entity.
func (_u *ActivityClosureUpdateOne) Save(ctx context.Context) (*ActivityClosure, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActivityClosureUpdateOne) SaveX(ctx context.Context) *ActivityClosure {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ActivityClosureUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActivityClosureUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ActivityClosureUpdateOne) sqlSave(ctx context.Context) (_node *ActivityClosure, err error) {
	_spec := sqlgraph.NewUpdateSpec(activityclosure.Table, activityclosure.Columns, sqlgraph.NewFieldSpec(activityclosure.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ActivityClosure.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, activityclosure.FieldID)
		for _, f := range fields {
			if !activityclosure.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != activityclosure.FieldID {
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
	if value, ok := _u.mutation.AncestorID(); ok {
		_spec.SetField(activityclosure.FieldAncestorID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DescendantID(); ok {
		_spec.SetField(activityclosure.FieldDescendantID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Depth(); ok {
		_spec.SetField(activityclosure.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDepth(); ok {
		_spec.AddField(activityclosure.FieldDepth, field.TypeInt, value)
	}
	_node = &ActivityClosure{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activityclosure.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
