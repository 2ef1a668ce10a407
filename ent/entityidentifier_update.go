// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/memograph/memograph/ent/entity"
	"github.com/memograph/memograph/ent/entityidentifier"
	"github.com/memograph/memograph/ent/predicate"
)

// EntityIdentifierUpdate is the builder for updating EntityIdentifier entities.
type EntityIdentifierUpdate struct {
	config
	hooks    []Hook
	mutation *EntityIdentifierMutation
}

// Where appends a list predicates to the EntityIdentifierUpdate builder.
func (_u *EntityIdentifierUpdate) Where(ps ...predicate.EntityIdentifier) *EntityIdentifierUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEntityID sets the "entity_id" field.
func (_u *EntityIdentifierUpdate) SetEntityID(v string) *EntityIdentifierUpdate {
	_u.mutation.SetEntityID(v)
	return _u
}

// SetNillableEntityID sets the "entity_id" field if the given value is not nil.
func (_u *EntityIdentifierUpdate) SetNillableEntityID(v *string) *EntityIdentifierUpdate {
	if v != nil {
		_u.SetEntityID(*v)
	}
	return _u
}

// SetIdentifierType sets the "identifier_type" field.
func (_u *EntityIdentifierUpdate) SetIdentifierType(v string) *EntityIdentifierUpdate {
	_u.mutation.SetIdentifierType(v)
	return _u
}

// SetNillableIdentifierType sets the "identifier_type" field if the given value is not nil.
func (_u *EntityIdentifierUpdate) SetNillableIdentifierType(v *string) *EntityIdentifierUpdate {
	if v != nil {
		_u.SetIdentifierType(*v)
	}
	return _u
}

// SetIdentifierValue sets the "identifier_value" field.
func (_u *EntityIdentifierUpdate) SetIdentifierValue(v string) *EntityIdentifierUpdate {
	_u.mutation.SetIdentifierValue(v)
	return _u
}

// SetNillableIdentifierValue sets the "identifier_value" field if the given value is not nil.
func (_u *EntityIdentifierUpdate) SetNillableIdentifierValue(v *string) *EntityIdentifierUpdate {
	if v != nil {
		_u.SetIdentifierValue(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *EntityIdentifierUpdate) SetMetadata(v map[string]interface{}) *EntityIdentifierUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *EntityIdentifierUpdate) ClearMetadata() *EntityIdentifierUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetEntity sets the "entity" edge to the Entity entity.
func (_u *EntityIdentifierUpdate) SetEntity(v *Entity) *EntityIdentifierUpdate {
	return _u.SetEntityID(v.ID)
}

// Mutation returns the EntityIdentifierMutation object of the builder.
func (_u *EntityIdentifierUpdate) Mutation() *EntityIdentifierMutation {
	return _u.mutation
}

// ClearEntity clears the "entity" edge to the Entity entity.
func (_u *EntityIdentifierUpdate) ClearEntity() *EntityIdentifierUpdate {
	_u.mutation.ClearEntity()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EntityIdentifierUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EntityIdentifierUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EntityIdentifierUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EntityIdentifierUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EntityIdentifierUpdate) check() error {
	if _u.mutation.EntityCleared() && len(_u.mutation.EntityIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EntityIdentifier.entity"`)
	}
	return nil
}

func (_u *EntityIdentifierUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(entityidentifier.Table, entityidentifier.Columns, sqlgraph.NewFieldSpec(entityidentifier.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.IdentifierType(); ok {
		_spec.SetField(entityidentifier.FieldIdentifierType, field.TypeString, value)
	}
	if value, ok := _u.mutation.IdentifierValue(); ok {
		_spec.SetField(entityidentifier.FieldIdentifierValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(entityidentifier.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(entityidentifier.FieldMetadata, field.TypeJSON)
	}
	if _u.mutation.EntityCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   entityidentifier.EntityTable,
			Columns: []string{entityidentifier.EntityColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entity.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EntityIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   entityidentifier.EntityTable,
			Columns: []string{entityidentifier.EntityColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entity.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entityidentifier.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EntityIdentifierUpdateOne is the builder for updating a single EntityIdentifier entity.
type EntityIdentifierUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EntityIdentifierMutation
}

// SetEntityID sets the "entity_id" field.
func (_u *EntityIdentifierUpdateOne) SetEntityID(v string) *EntityIdentifierUpdateOne {
	_u.mutation.SetEntityID(v)
	return _u
}

// SetNillableEntityID sets the "entity_id" field if the given value is not nil.
func (_u *EntityIdentifierUpdateOne) SetNillableEntityID(v *string) *EntityIdentifierUpdateOne {
	if v != nil {
		_u.SetEntityID(*v)
	}
	return _u
}

// SetIdentifierType sets the "identifier_type" field.
func (_u *EntityIdentifierUpdateOne) SetIdentifierType(v string) *EntityIdentifierUpdateOne {
	_u.mutation.SetIdentifierType(v)
	return _u
}

// SetNillableIdentifierType sets the "identifier_type" field if the given value is not nil.
func (_u *EntityIdentifierUpdateOne) SetNillableIdentifierType(v *string) *EntityIdentifierUpdateOne {
	if v != nil {
		_u.SetIdentifierType(*v)
	}
	return _u
}

// SetIdentifierValue sets the "identifier_value" field.
func (_u *EntityIdentifierUpdateOne) SetIdentifierValue(v string) *EntityIdentifierUpdateOne {
	_u.mutation.SetIdentifierValue(v)
	return _u
}

// SetNillableIdentifierValue sets the "identifier_value" field if the given value is not nil.
func (_u *EntityIdentifierUpdateOne) SetNillableIdentifierValue(v *string) *EntityIdentifierUpdateOne {
	if v != nil {
		_u.SetIdentifierValue(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *EntityIdentifierUpdateOne) SetMetadata(v map[string]interface{}) *EntityIdentifierUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *EntityIdentifierUpdateOne) ClearMetadata() *EntityIdentifierUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetEntity sets the "entity" edge to the Entity entity.
func (_u *EntityIdentifierUpdateOne) SetEntity(v *Entity) *EntityIdentifierUpdateOne {
	return _u.SetEntityID(v.ID)
}

// Mutation returns the EntityIdentifierMutation object of the builder.
func (_u *EntityIdentifierUpdateOne) Mutation() *EntityIdentifierMutation {
	return _u.mutation
}

// ClearEntity clears the "entity" edge to the Entity entity.
func (_u *EntityIdentifierUpdateOne) ClearEntity() *EntityIdentifierUpdateOne {
	_u.mutation.ClearEntity()
	return _u
}

// Where appends a list predicates to the EntityIdentifierUpdate builder.
func (_u *EntityIdentifierUpdateOne) Where(ps ...predicate.EntityIdentifier) *EntityIdentifierUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EntityIdentifierUpdateOne) Select(field string, fields ...string) *EntityIdentifierUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EntityIdentifier entity.
func (_u *EntityIdentifierUpdateOne) Save(ctx context.Context) (*EntityIdentifier, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EntityIdentifierUpdateOne) SaveX(ctx context.Context) *EntityIdentifier {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EntityIdentifierUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EntityIdentifierUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EntityIdentifierUpdateOne) check() error {
	if _u.mutation.EntityCleared() && len(_u.mutation.EntityIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EntityIdentifier.entity"`)
	}
	return nil
}

func (_u *EntityIdentifierUpdateOne) sqlSave(ctx context.Context) (_node *EntityIdentifier, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(entityidentifier.Table, entityidentifier.Columns, sqlgraph.NewFieldSpec(entityidentifier.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EntityIdentifier.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, entityidentifier.FieldID)
		for _, f := range fields {
			if !entityidentifier.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != entityidentifier.FieldID {
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
	if value, ok := _u.mutation.IdentifierType(); ok {
		_spec.SetField(entityidentifier.FieldIdentifierType, field.TypeString, value)
	}
	if value, ok := _u.mutation.IdentifierValue(); ok {
		_spec.SetField(entityidentifier.FieldIdentifierValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(entityidentifier.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(entityidentifier.FieldMetadata, field.TypeJSON)
	}
	if _u.mutation.EntityCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   entityidentifier.EntityTable,
			Columns: []string{entityidentifier.EntityColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entity.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EntityIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   entityidentifier.EntityTable,
			Columns: []string{entityidentifier.EntityColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entity.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &EntityIdentifier{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entityidentifier.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
