// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/memograph/memograph/ent/entity"
	"github.com/memograph/memograph/ent/entityfact"
	"github.com/memograph/memograph/ent/entityidentifier"
	"github.com/memograph/memograph/ent/predicate"
)

// EntityUpdate is the builder for updating Entity entities.
type EntityUpdate struct {
	config
	hooks    []Hook
	mutation *EntityMutation
}

// Where appends a list predicates to the EntityUpdate builder.
func (_u *EntityUpdate) Where(ps ...predicate.Entity) *EntityUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetType sets the "type" field.
func (_u *EntityUpdate) SetType(v entity.Type) *EntityUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *EntityUpdate) SetNillableType(v *entity.Type) *EntityUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *EntityUpdate) SetName(v string) *EntityUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *EntityUpdate) SetNillableName(v *string) *EntityUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetOrganizationID sets the "organization_id" field.
func (_u *EntityUpdate) SetOrganizationID(v string) *EntityUpdate {
	_u.mutation.SetOrganizationID(v)
	return _u
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (_u *EntityUpdate) SetNillableOrganizationID(v *string) *EntityUpdate {
	if v != nil {
		_u.SetOrganizationID(*v)
	}
	return _u
}

// ClearOrganizationID clears the value of the "organization_id" field.
func (_u *EntityUpdate) ClearOrganizationID() *EntityUpdate {
	_u.mutation.ClearOrganizationID()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *EntityUpdate) SetNotes(v string) *EntityUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *EntityUpdate) SetNillableNotes(v *string) *EntityUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *EntityUpdate) ClearNotes() *EntityUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetIsOwner sets the "is_owner" field.
func (_u *EntityUpdate) SetIsOwner(v bool) *EntityUpdate {
	_u.mutation.SetIsOwner(v)
	return _u
}

// SetNillableIsOwner sets the "is_owner" field if the given value is not nil.
func (_u *EntityUpdate) SetNillableIsOwner(v *bool) *EntityUpdate {
	if v != nil {
		_u.SetIsOwner(*v)
	}
	return _u
}

// SetIsBot sets the "is_bot" field.
func (_u *EntityUpdate) SetIsBot(v bool) *EntityUpdate {
	_u.mutation.SetIsBot(v)
	return _u
}

// SetNillableIsBot sets the "is_bot" field if the given value is not nil.
func (_u *EntityUpdate) SetNillableIsBot(v *bool) *EntityUpdate {
	if v != nil {
		_u.SetIsBot(*v)
	}
	return _u
}

// SetCreationSource sets the "creation_source" field.
func (_u *EntityUpdate) SetCreationSource(v entity.CreationSource) *EntityUpdate {
	_u.mutation.SetCreationSource(v)
	return _u
}

// SetNillableCreationSource sets the "creation_source" field if the given value is not nil.
func (_u *EntityUpdate) SetNillableCreationSource(v *entity.CreationSource) *EntityUpdate {
	if v != nil {
		_u.SetCreationSource(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EntityUpdate) SetUpdatedAt(v time.Time) *EntityUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *EntityUpdate) SetDeletedAt(v time.Time) *EntityUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *EntityUpdate) SetNillableDeletedAt(v *time.Time) *EntityUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *EntityUpdate) ClearDeletedAt() *EntityUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddIdentifierIDs adds the "identifiers" edge to the EntityIdentifier entity by IDs.
func (_u *EntityUpdate) AddIdentifierIDs(ids ...string) *EntityUpdate {
	_u.mutation.AddIdentifierIDs(ids...)
	return _u
}

// AddIdentifiers adds the "identifiers" edges to the EntityIdentifier entity.
func (_u *EntityUpdate) AddIdentifiers(v ...*EntityIdentifier) *EntityUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddIdentifierIDs(ids...)
}

// AddFactIDs adds the "facts" edge to the EntityFact entity by IDs.
func (_u *EntityUpdate) AddFactIDs(ids ...string) *EntityUpdate {
	_u.mutation.AddFactIDs(ids...)
	return _u
}

// AddFacts adds the "facts" edges to the EntityFact entity.
func (_u *EntityUpdate) AddFacts(v ...*EntityFact) *EntityUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFactIDs(ids...)
}

// SetOrganization sets the "organization" edge to the Entity entity.
func (_u *EntityUpdate) SetOrganization(v *Entity) *EntityUpdate {
	return _u.SetOrganizationID(v.ID)
}

// AddMemberIDs adds the "members" edge to the Entity entity by IDs.
func (_u *EntityUpdate) AddMemberIDs(ids ...string) *EntityUpdate {
	_u.mutation.AddMemberIDs(ids...)
	return _u
}

// AddMembers adds the "members" edges to the Entity entity.
func (_u *EntityUpdate) AddMembers(v ...*Entity) *EntityUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMemberIDs(ids...)
}

// Mutation returns the EntityMutation object of the builder.
func (_u *EntityUpdate) Mutation() *EntityMutation {
	return _u.mutation
}

// ClearIdentifiers clears all "identifiers" edges to the EntityIdentifier entity.
func (_u *EntityUpdate) ClearIdentifiers() *EntityUpdate {
	_u.mutation.ClearIdentifiers()
	return _u
}

// RemoveIdentifierIDs removes the "identifiers" edge to EntityIdentifier entities by IDs.
func (_u *EntityUpdate) RemoveIdentifierIDs(ids ...string) *EntityUpdate {
	_u.mutation.RemoveIdentifierIDs(ids...)
	return _u
}

// RemoveIdentifiers removes "identifiers" edges to EntityIdentifier entities.
func (_u *EntityUpdate) RemoveIdentifiers(v ...*EntityIdentifier) *EntityUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveIdentifierIDs(ids...)
}

// ClearFacts clears all "facts" edges to the EntityFact entity.
func (_u *EntityUpdate) ClearFacts() *EntityUpdate {
	_u.mutation.ClearFacts()
	return _u
}

// RemoveFactIDs removes the "facts" edge to EntityFact entities by IDs.
func (_u *EntityUpdate) RemoveFactIDs(ids ...string) *EntityUpdate {
	_u.mutation.RemoveFactIDs(ids...)
	return _u
}

// RemoveFacts removes "facts" edges to EntityFact entities.
func (_u *EntityUpdate) RemoveFacts(v ...*EntityFact) *EntityUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFactIDs(ids...)
}

// ClearOrganization clears the "organization" edge to the Entity entity.
func (_u *EntityUpdate) ClearOrganization() *EntityUpdate {
	_u.mutation.ClearOrganization()
	return _u
}

// ClearMembers clears all "members" edges to the Entity entity.
func (_u *EntityUpdate) ClearMembers() *EntityUpdate {
	_u.mutation.ClearMembers()
	return _u
}

// RemoveMemberIDs removes the "members" edge to Entity entities by IDs.
func (_u *EntityUpdate) RemoveMemberIDs(ids ...string) *EntityUpdate {
	_u.mutation.RemoveMemberIDs(ids...)
	return _u
}

// RemoveMembers removes "members" edges to Entity entities.
func (_u *EntityUpdate) RemoveMembers(v ...*Entity) *EntityUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMemberIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EntityUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EntityUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EntityUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EntityUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EntityUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := entity.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EntityUpdate) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := entity.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Entity.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CreationSource(); ok {
		if err := entity.CreationSourceValidator(v); err != nil {
			return &ValidationError{Name: "creation_source", err: fmt.Errorf(`ent: validator failed for field "Entity.creation_source": %w`, err)}
		}
	}
	return nil
}

func (_u *EntityUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(entity.Table, entity.Columns, sqlgraph.NewFieldSpec(entity.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(entity.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(entity.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(entity.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(entity.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.IsOwner(); ok {
		_spec.SetField(entity.FieldIsOwner, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsBot(); ok {
		_spec.SetField(entity.FieldIsBot, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreationSource(); ok {
		_spec.SetField(entity.FieldCreationSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(entity.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(entity.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(entity.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.IdentifiersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   entity.IdentifiersTable,
			Columns: []string{entity.IdentifiersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entityidentifier.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedIdentifiersIDs(); len(nodes) > 0 && !_u.mutation.IdentifiersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   entity.IdentifiersTable,
			Columns: []string{entity.IdentifiersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entityidentifier.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IdentifiersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   entity.IdentifiersTable,
			Columns: []string{entity.IdentifiersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entityidentifier.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FactsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   entity.FactsTable,
			Columns: []string{entity.FactsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entityfact.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFactsIDs(); len(nodes) > 0 && !_u.mutation.FactsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   entity.FactsTable,
			Columns: []string{entity.FactsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entityfact.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FactsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   entity.FactsTable,
			Columns: []string{entity.FactsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entityfact.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OrganizationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   entity.OrganizationTable,
			Columns: []string{entity.OrganizationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entity.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OrganizationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   entity.OrganizationTable,
			Columns: []string{entity.OrganizationColumn},
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
	if _u.mutation.MembersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   entity.MembersTable,
			Columns: []string{entity.MembersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entity.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMembersIDs(); len(nodes) > 0 && !_u.mutation.MembersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   entity.MembersTable,
			Columns: []string{entity.MembersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entity.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MembersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   entity.MembersTable,
			Columns: []string{entity.MembersColumn},
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
			err = &NotFoundError{entity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EntityUpdateOne is the builder for updating a single Entity entity.
type EntityUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EntityMutation
}

// SetType sets the "type" field.
func (_u *EntityUpdateOne) SetType(v entity.Type) *EntityUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *EntityUpdateOne) SetNillableType(v *entity.Type) *EntityUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *EntityUpdateOne) SetName(v string) *EntityUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *EntityUpdateOne) SetNillableName(v *string) *EntityUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetOrganizationID sets the "organization_id" field.
func (_u *EntityUpdateOne) SetOrganizationID(v string) *EntityUpdateOne {
	_u.mutation.SetOrganizationID(v)
	return _u
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (_u *EntityUpdateOne) SetNillableOrganizationID(v *string) *EntityUpdateOne {
	if v != nil {
		_u.SetOrganizationID(*v)
	}
	return _u
}

// ClearOrganizationID clears the value of the "organization_id" field.
func (_u *EntityUpdateOne) ClearOrganizationID() *EntityUpdateOne {
	_u.mutation.ClearOrganizationID()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *EntityUpdateOne) SetNotes(v string) *EntityUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *EntityUpdateOne) SetNillableNotes(v *string) *EntityUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *EntityUpdateOne) ClearNotes() *EntityUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetIsOwner sets the "is_owner" field.
func (_u *EntityUpdateOne) SetIsOwner(v bool) *EntityUpdateOne {
	_u.mutation.SetIsOwner(v)
	return _u
}

// SetNillableIsOwner sets the "is_owner" field if the given value is not nil.
func (_u *EntityUpdateOne) SetNillableIsOwner(v *bool) *EntityUpdateOne {
	if v != nil {
		_u.SetIsOwner(*v)
	}
	return _u
}

// SetIsBot sets the "is_bot" field.
func (_u *EntityUpdateOne) SetIsBot(v bool) *EntityUpdateOne {
	_u.mutation.SetIsBot(v)
	return _u
}

// SetNillableIsBot sets the "is_bot" field if the given value is not nil.
func (_u *EntityUpdateOne) SetNillableIsBot(v *bool) *EntityUpdateOne {
	if v != nil {
		_u.SetIsBot(*v)
	}
	return _u
}

// SetCreationSource sets the "creation_source" field.
func (_u *EntityUpdateOne) SetCreationSource(v entity.CreationSource) *EntityUpdateOne {
	_u.mutation.SetCreationSource(v)
	return _u
}

// SetNillableCreationSource sets the "creation_source" field if the given value is not nil.
func (_u *EntityUpdateOne) SetNillableCreationSource(v *entity.CreationSource) *EntityUpdateOne {
	if v != nil {
		_u.SetCreationSource(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EntityUpdateOne) SetUpdatedAt(v time.Time) *EntityUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *EntityUpdateOne) SetDeletedAt(v time.Time) *EntityUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *EntityUpdateOne) SetNillableDeletedAt(v *time.Time) *EntityUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *EntityUpdateOne) ClearDeletedAt() *EntityUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddIdentifierIDs adds the "identifiers" edge to the EntityIdentifier entity by IDs.
func (_u *EntityUpdateOne) AddIdentifierIDs(ids ...string) *EntityUpdateOne {
	_u.mutation.AddIdentifierIDs(ids...)
	return _u
}

// AddIdentifiers adds the "identifiers" edges to the EntityIdentifier entity.
func (_u *EntityUpdateOne) AddIdentifiers(v ...*EntityIdentifier) *EntityUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddIdentifierIDs(ids...)
}

// AddFactIDs adds the "facts" edge to the EntityFact entity by IDs.
func (_u *EntityUpdateOne) AddFactIDs(ids ...string) *EntityUpdateOne {
	_u.mutation.AddFactIDs(ids...)
	return _u
}

// AddFacts adds the "facts" edges to the EntityFact entity.
func (_u *EntityUpdateOne) AddFacts(v ...*EntityFact) *EntityUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFactIDs(ids...)
}

// SetOrganization sets the "organization" edge to the Entity entity.
func (_u *EntityUpdateOne) SetOrganization(v *Entity) *EntityUpdateOne {
	return _u.SetOrganizationID(v.ID)
}

// AddMemberIDs adds the "members" edge to the Entity entity by IDs.
func (_u *EntityUpdateOne) AddMemberIDs(ids ...string) *EntityUpdateOne {
	_u.mutation.AddMemberIDs(ids...)
	return _u
}

// AddMembers adds the "members" edges to the Entity entity.
func (_u *EntityUpdateOne) AddMembers(v ...*Entity) *EntityUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMemberIDs(ids...)
}

// Mutation returns the EntityMutation object of the builder.
func (_u *EntityUpdateOne) Mutation() *EntityMutation {
	return _u.mutation
}

// ClearIdentifiers clears all "identifiers" edges to the EntityIdentifier entity.
func (_u *EntityUpdateOne) ClearIdentifiers() *EntityUpdateOne {
	_u.mutation.ClearIdentifiers()
	return _u
}

// RemoveIdentifierIDs removes the "identifiers" edge to EntityIdentifier entities by IDs.
func (_u *EntityUpdateOne) RemoveIdentifierIDs(ids ...string) *EntityUpdateOne {
	_u.mutation.RemoveIdentifierIDs(ids...)
	return _u
}

// RemoveIdentifiers removes "identifiers" edges to EntityIdentifier entities.
func (_u *EntityUpdateOne) RemoveIdentifiers(v ...*EntityIdentifier) *EntityUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveIdentifierIDs(ids...)
}

// ClearFacts clears all "facts" edges to the EntityFact entity.
func (_u *EntityUpdateOne) ClearFacts() *EntityUpdateOne {
	_u.mutation.ClearFacts()
	return _u
}

// RemoveFactIDs removes the "facts" edge to EntityFact entities by IDs.
func (_u *EntityUpdateOne) RemoveFactIDs(ids ...string) *EntityUpdateOne {
	_u.mutation.RemoveFactIDs(ids...)
	return _u
}

// RemoveFacts removes "facts" edges to EntityFact entities.
func (_u *EntityUpdateOne) RemoveFacts(v ...*EntityFact) *EntityUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFactIDs(ids...)
}

// ClearOrganization clears the "organization" edge to the Entity entity.
func (_u *EntityUpdateOne) ClearOrganization() *EntityUpdateOne {
	_u.mutation.ClearOrganization()
	return _u
}

// ClearMembers clears all "members" edges to the Entity entity.
func (_u *EntityUpdateOne) ClearMembers() *EntityUpdateOne {
	_u.mutation.ClearMembers()
	return _u
}

// RemoveMemberIDs removes the "members" edge to Entity entities by IDs.
func (_u *EntityUpdateOne) RemoveMemberIDs(ids ...string) *EntityUpdateOne {
	_u.mutation.RemoveMemberIDs(ids...)
	return _u
}

// RemoveMembers removes "members" edges to Entity entities.
func (_u *EntityUpdateOne) RemoveMembers(v ...*Entity) *EntityUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMemberIDs(ids...)
}

// Where appends a list predicates to the EntityUpdate builder.
func (_u *EntityUpdateOne) Where(ps ...predicate.Entity) *EntityUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EntityUpdateOne) Select(field string, fields ...string) *EntityUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Entity entity.
func (_u *EntityUpdateOne) Save(ctx context.Context) (*Entity, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EntityUpdateOne) SaveX(ctx context.Context) *Entity {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EntityUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EntityUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EntityUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := entity.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EntityUpdateOne) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := entity.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Entity.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CreationSource(); ok {
		if err := entity.CreationSourceValidator(v); err != nil {
			return &ValidationError{Name: "creation_source", err: fmt.Errorf(`ent: validator failed for field "Entity.creation_source": %w`, err)}
		}
	}
	return nil
}

func (_u *EntityUpdateOne) sqlSave(ctx context.Context) (_node *Entity, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(entity.Table, entity.Columns, sqlgraph.NewFieldSpec(entity.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Entity.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, entity.FieldID)
		for _, f := range fields {
			if !entity.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != entity.FieldID {
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
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(entity.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(entity.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(entity.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(entity.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.IsOwner(); ok {
		_spec.SetField(entity.FieldIsOwner, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsBot(); ok {
		_spec.SetField(entity.FieldIsBot, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreationSource(); ok {
		_spec.SetField(entity.FieldCreationSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(entity.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(entity.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(entity.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.IdentifiersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   entity.IdentifiersTable,
			Columns: []string{entity.IdentifiersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entityidentifier.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedIdentifiersIDs(); len(nodes) > 0 && !_u.mutation.IdentifiersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   entity.IdentifiersTable,
			Columns: []string{entity.IdentifiersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entityidentifier.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IdentifiersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   entity.IdentifiersTable,
			Columns: []string{entity.IdentifiersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entityidentifier.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FactsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   entity.FactsTable,
			Columns: []string{entity.FactsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entityfact.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFactsIDs(); len(nodes) > 0 && !_u.mutation.FactsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   entity.FactsTable,
			Columns: []string{entity.FactsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entityfact.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FactsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   entity.FactsTable,
			Columns: []string{entity.FactsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entityfact.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OrganizationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   entity.OrganizationTable,
			Columns: []string{entity.OrganizationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entity.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OrganizationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   entity.OrganizationTable,
			Columns: []string{entity.OrganizationColumn},
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
	if _u.mutation.MembersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   entity.MembersTable,
			Columns: []string{entity.MembersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entity.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMembersIDs(); len(nodes) > 0 && !_u.mutation.MembersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   entity.MembersTable,
			Columns: []string{entity.MembersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entity.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MembersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   entity.MembersTable,
			Columns: []string{entity.MembersColumn},
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
	_node = &Entity{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
