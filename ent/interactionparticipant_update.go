// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/memograph/memograph/ent/interactionparticipant"
	"github.com/memograph/memograph/ent/predicate"
)

// InteractionParticipantUpdate is the builder for updating InteractionParticipant entities.
type InteractionParticipantUpdate struct {
	config
	hooks    []Hook
	mutation *InteractionParticipantMutation
}

// Where appends a list predicates to the InteractionParticipantUpdate builder.
func (_u *InteractionParticipantUpdate) Where(ps ...predicate.InteractionParticipant) *InteractionParticipantUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEntityID sets the "entity_id" field.
func (_u *InteractionParticipantUpdate) SetEntityID(v string) *InteractionParticipantUpdate {
	_u.mutation.SetEntityID(v)
	return _u
}

// SetNillableEntityID sets the "entity_id" field if the given value is not nil.
func (_u *InteractionParticipantUpdate) SetNillableEntityID(v *string) *InteractionParticipantUpdate {
	if v != nil {
		_u.SetEntityID(*v)
	}
	return _u
}

// ClearEntityID clears the value of the "entity_id" field.
func (_u *InteractionParticipantUpdate) ClearEntityID() *InteractionParticipantUpdate {
	_u.mutation.ClearEntityID()
	return _u
}

// SetRole sets the "role" field.
func (_u *InteractionParticipantUpdate) SetRole(v interactionparticipant.Role) *InteractionParticipantUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *InteractionParticipantUpdate) SetNillableRole(v *interactionparticipant.Role) *InteractionParticipantUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetIdentifierType sets the "identifier_type" field.
func (_u *InteractionParticipantUpdate) SetIdentifierType(v string) *InteractionParticipantUpdate {
	_u.mutation.SetIdentifierType(v)
	return _u
}

// SetNillableIdentifierType sets the "identifier_type" field if the given value is not nil.
func (_u *InteractionParticipantUpdate) SetNillableIdentifierType(v *string) *InteractionParticipantUpdate {
	if v != nil {
		_u.SetIdentifierType(*v)
	}
	return _u
}

// SetIdentifierValue sets the "identifier_value" field.
func (_u *InteractionParticipantUpdate) SetIdentifierValue(v string) *InteractionParticipantUpdate {
	_u.mutation.SetIdentifierValue(v)
	return _u
}

// SetNillableIdentifierValue sets the "identifier_value" field if the given value is not nil.
func (_u *InteractionParticipantUpdate) SetNillableIdentifierValue(v *string) *InteractionParticipantUpdate {
	if v != nil {
		_u.SetIdentifierValue(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *InteractionParticipantUpdate) SetDisplayName(v string) *InteractionParticipantUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *InteractionParticipantUpdate) SetNillableDisplayName(v *string) *InteractionParticipantUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// ClearDisplayName clears the value of the "display_name" field.
func (_u *InteractionParticipantUpdate) ClearDisplayName() *InteractionParticipantUpdate {
	_u.mutation.ClearDisplayName()
	return _u
}

// Mutation returns the InteractionParticipantMutation object of the builder.
func (_u *InteractionParticipantUpdate) Mutation() *InteractionParticipantMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InteractionParticipantUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InteractionParticipantUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InteractionParticipantUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InteractionParticipantUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InteractionParticipantUpdate) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := interactionparticipant.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "InteractionParticipant.role": %w`, err)}
		}
	}
	if _u.mutation.InteractionCleared() && len(_u.mutation.InteractionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "InteractionParticipant.interaction"`)
	}
	return nil
}

func (_u *InteractionParticipantUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interactionparticipant.Table, interactionparticipant.Columns, sqlgraph.NewFieldSpec(interactionparticipant.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EntityID(); ok {
		_spec.SetField(interactionparticipant.FieldEntityID, field.TypeString, value)
	}
	if _u.mutation.EntityIDCleared() {
		_spec.ClearField(interactionparticipant.FieldEntityID, field.TypeString)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(interactionparticipant.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IdentifierType(); ok {
		_spec.SetField(interactionparticipant.FieldIdentifierType, field.TypeString, value)
	}
	if value, ok := _u.mutation.IdentifierValue(); ok {
		_spec.SetField(interactionparticipant.FieldIdentifierValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(interactionparticipant.FieldDisplayName, field.TypeString, value)
	}
	if _u.mutation.DisplayNameCleared() {
		_spec.ClearField(interactionparticipant.FieldDisplayName, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interactionparticipant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InteractionParticipantUpdateOne is the builder for updating a single InteractionParticipant entity.
type InteractionParticipantUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InteractionParticipantMutation
}

// SetEntityID sets the "entity_id" field.
func (_u *InteractionParticipantUpdateOne) SetEntityID(v string) *InteractionParticipantUpdateOne {
	_u.mutation.SetEntityID(v)
	return _u
}

// SetNillableEntityID sets the "entity_id" field if the given value is not nil.
func (_u *InteractionParticipantUpdateOne) SetNillableEntityID(v *string) *InteractionParticipantUpdateOne {
	if v != nil {
		_u.SetEntityID(*v)
	}
	return _u
}

// ClearEntityID clears the value of the "entity_id" field.
func (_u *InteractionParticipantUpdateOne) ClearEntityID() *InteractionParticipantUpdateOne {
	_u.mutation.ClearEntityID()
	return _u
}

// SetRole sets the "role" field.
func (_u *InteractionParticipantUpdateOne) SetRole(v interactionparticipant.Role) *InteractionParticipantUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *InteractionParticipantUpdateOne) SetNillableRole(v *interactionparticipant.Role) *InteractionParticipantUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetIdentifierType sets the "identifier_type" field.
func (_u *InteractionParticipantUpdateOne) SetIdentifierType(v string) *InteractionParticipantUpdateOne {
	_u.mutation.SetIdentifierType(v)
	return _u
}

// SetNillableIdentifierType sets the "identifier_type" field if the given value is not nil.
func (_u *InteractionParticipantUpdateOne) SetNillableIdentifierType(v *string) *InteractionParticipantUpdateOne {
	if v != nil {
		_u.SetIdentifierType(*v)
	}
	return _u
}

// SetIdentifierValue sets the "identifier_value" field.
func (_u *InteractionParticipantUpdateOne) SetIdentifierValue(v string) *InteractionParticipantUpdateOne {
	_u.mutation.SetIdentifierValue(v)
	return _u
}

// SetNillableIdentifierValue sets the "identifier_value" field if the given value is not nil.
func (_u *InteractionParticipantUpdateOne) SetNillableIdentifierValue(v *string) *InteractionParticipantUpdateOne {
	if v != nil {
		_u.SetIdentifierValue(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *InteractionParticipantUpdateOne) SetDisplayName(v string) *InteractionParticipantUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *InteractionParticipantUpdateOne) SetNillableDisplayName(v *string) *InteractionParticipantUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// ClearDisplayName clears the value of the "display_name" field.
func (_u *InteractionParticipantUpdateOne) ClearDisplayName() *InteractionParticipantUpdateOne {
	_u.mutation.ClearDisplayName()
	return _u
}

// Mutation returns the InteractionParticipantMutation object of the builder.
func (_u *InteractionParticipantUpdateOne) Mutation() *InteractionParticipantMutation {
	return _u.mutation
}

// Where appends a list predicates to the InteractionParticipantUpdate builder.
func (_u *InteractionParticipantUpdateOne) Where(ps ...predicate.InteractionParticipant) *InteractionParticipantUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InteractionParticipantUpdateOne) Select(field string, fields ...string) *InteractionParticipantUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InteractionParticipant entity.
func (_u *InteractionParticipantUpdateOne) Save(ctx context.Context) (*InteractionParticipant, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InteractionParticipantUpdateOne) SaveX(ctx context.Context) *InteractionParticipant {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InteractionParticipantUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InteractionParticipantUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InteractionParticipantUpdateOne) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := interactionparticipant.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "InteractionParticipant.role": %w`, err)}
		}
	}
	if _u.mutation.InteractionCleared() && len(_u.mutation.InteractionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "InteractionParticipant.interaction"`)
	}
	return nil
}

func (_u *InteractionParticipantUpdateOne) sqlSave(ctx context.Context) (_node *InteractionParticipant, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interactionparticipant.Table, interactionparticipant.Columns, sqlgraph.NewFieldSpec(interactionparticipant.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InteractionParticipant.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, interactionparticipant.FieldID)
		for _, f := range fields {
			if !interactionparticipant.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != interactionparticipant.FieldID {
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
	if value, ok := _u.mutation.EntityID(); ok {
		_spec.SetField(interactionparticipant.FieldEntityID, field.TypeString, value)
	}
	if _u.mutation.EntityIDCleared() {
		_spec.ClearField(interactionparticipant.FieldEntityID, field.TypeString)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(interactionparticipant.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IdentifierType(); ok {
		_spec.SetField(interactionparticipant.FieldIdentifierType, field.TypeString, value)
	}
	if value, ok := _u.mutation.IdentifierValue(); ok {
		_spec.SetField(interactionparticipant.FieldIdentifierValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(interactionparticipant.FieldDisplayName, field.TypeString, value)
	}
	if _u.mutation.DisplayNameCleared() {
		_spec.ClearField(interactionparticipant.FieldDisplayName, field.TypeString)
	}
	_node = &InteractionParticipant{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interactionparticipant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
