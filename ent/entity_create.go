// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/memograph/memograph/ent/entity"
	"github.com/memograph/memograph/ent/entityfact"
	"github.com/memograph/memograph/ent/entityidentifier"
)

// EntityCreate is the builder for creating a Entity entity.
type EntityCreate struct {
	config
	mutation *EntityMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetType sets the "type" field.
func (_c *EntityCreate) SetType(v entity.Type) *EntityCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetName sets the "name" field.
func (_c *EntityCreate) SetName(v string) *EntityCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetOrganizationID sets the "organization_id" field.
func (_c *EntityCreate) SetOrganizationID(v string) *EntityCreate {
	_c.mutation.SetOrganizationID(v)
	return _c
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (_c *EntityCreate) SetNillableOrganizationID(v *string) *EntityCreate {
	if v != nil {
		_c.SetOrganizationID(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *EntityCreate) SetNotes(v string) *EntityCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *EntityCreate) SetNillableNotes(v *string) *EntityCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetIsOwner sets the "is_owner" field.
func (_c *EntityCreate) SetIsOwner(v bool) *EntityCreate {
	_c.mutation.SetIsOwner(v)
	return _c
}

// SetNillableIsOwner sets the "is_owner" field if the given value is not nil.
func (_c *EntityCreate) SetNillableIsOwner(v *bool) *EntityCreate {
	if v != nil {
		_c.SetIsOwner(*v)
	}
	return _c
}

// SetIsBot sets the "is_bot" field.
func (_c *EntityCreate) SetIsBot(v bool) *EntityCreate {
	_c.mutation.SetIsBot(v)
	return _c
}

// SetNillableIsBot sets the "is_bot" field if the given value is not nil.
func (_c *EntityCreate) SetNillableIsBot(v *bool) *EntityCreate {
	if v != nil {
		_c.SetIsBot(*v)
	}
	return _c
}

// SetCreationSource sets the "creation_source" field.
func (_c *EntityCreate) SetCreationSource(v entity.CreationSource) *EntityCreate {
	_c.mutation.SetCreationSource(v)
	return _c
}

// SetNillableCreationSource sets the "creation_source" field if the given value is not nil.
func (_c *EntityCreate) SetNillableCreationSource(v *entity.CreationSource) *EntityCreate {
	if v != nil {
		_c.SetCreationSource(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EntityCreate) SetCreatedAt(v time.Time) *EntityCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EntityCreate) SetNillableCreatedAt(v *time.Time) *EntityCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *EntityCreate) SetUpdatedAt(v time.Time) *EntityCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *EntityCreate) SetNillableUpdatedAt(v *time.Time) *EntityCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *EntityCreate) SetDeletedAt(v time.Time) *EntityCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *EntityCreate) SetNillableDeletedAt(v *time.Time) *EntityCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EntityCreate) SetID(v string) *EntityCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddIdentifierIDs adds the "identifiers" edge to the EntityIdentifier entity by IDs.
func (_c *EntityCreate) AddIdentifierIDs(ids ...string) *EntityCreate {
	_c.mutation.AddIdentifierIDs(ids...)
	return _c
}

// AddIdentifiers adds the "identifiers" edges to the EntityIdentifier entity.
func (_c *EntityCreate) AddIdentifiers(v ...*EntityIdentifier) *EntityCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddIdentifierIDs(ids...)
}

// AddFactIDs adds the "facts" edge to the EntityFact entity by IDs.
func (_c *EntityCreate) AddFactIDs(ids ...string) *EntityCreate {
	_c.mutation.AddFactIDs(ids...)
	return _c
}

// AddFacts adds the "facts" edges to the EntityFact entity.
func (_c *EntityCreate) AddFacts(v ...*EntityFact) *EntityCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFactIDs(ids...)
}

// SetOrganization sets the "organization" edge to the Entity entity.
func (_c *EntityCreate) SetOrganization(v *Entity) *EntityCreate {
	return _c.SetOrganizationID(v.ID)
}

// AddMemberIDs adds the "members" edge to the Entity entity by IDs.
func (_c *EntityCreate) AddMemberIDs(ids ...string) *EntityCreate {
	_c.mutation.AddMemberIDs(ids...)
	return _c
}

// AddMembers adds the "members" edges to the Entity entity.
func (_c *EntityCreate) AddMembers(v ...*Entity) *EntityCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMemberIDs(ids...)
}

// Mutation returns the EntityMutation object of the builder.
func (_c *EntityCreate) Mutation() *EntityMutation {
	return _c.mutation
}

// Save creates the Entity in the database.
func (_c *EntityCreate) Save(ctx context.Context) (*Entity, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EntityCreate) SaveX(ctx context.Context) *Entity {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EntityCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EntityCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EntityCreate) defaults() {
	if _, ok := _c.mutation.IsOwner(); !ok {
		v := entity.DefaultIsOwner
		_c.mutation.SetIsOwner(v)
	}
	if _, ok := _c.mutation.IsBot(); !ok {
		v := entity.DefaultIsBot
		_c.mutation.SetIsBot(v)
	}
	if _, ok := _c.mutation.CreationSource(); !ok {
		v := entity.DefaultCreationSource
		_c.mutation.SetCreationSource(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := entity.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := entity.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EntityCreate) check() error {
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "Entity.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := entity.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Entity.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Entity.name"`)}
	}
	if _, ok := _c.mutation.IsOwner(); !ok {
		return &ValidationError{Name: "is_owner", err: errors.New(`ent: missing required field "Entity.is_owner"`)}
	}
	if _, ok := _c.mutation.IsBot(); !ok {
		return &ValidationError{Name: "is_bot", err: errors.New(`ent: missing required field "Entity.is_bot"`)}
	}
	if _, ok := _c.mutation.CreationSource(); !ok {
		return &ValidationError{Name: "creation_source", err: errors.New(`ent: missing required field "Entity.creation_source"`)}
	}
	if v, ok := _c.mutation.CreationSource(); ok {
		if err := entity.CreationSourceValidator(v); err != nil {
			return &ValidationError{Name: "creation_source", err: fmt.Errorf(`ent: validator failed for field "Entity.creation_source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Entity.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Entity.updated_at"`)}
	}
	return nil
}

func (_c *EntityCreate) sqlSave(ctx context.Context) (*Entity, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Entity.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EntityCreate) createSpec() (*Entity, *sqlgraph.CreateSpec) {
	var (
		_node = &Entity{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(entity.Table, sqlgraph.NewFieldSpec(entity.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(entity.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(entity.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(entity.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	if value, ok := _c.mutation.IsOwner(); ok {
		_spec.SetField(entity.FieldIsOwner, field.TypeBool, value)
		_node.IsOwner = value
	}
	if value, ok := _c.mutation.IsBot(); ok {
		_spec.SetField(entity.FieldIsBot, field.TypeBool, value)
		_node.IsBot = value
	}
	if value, ok := _c.mutation.CreationSource(); ok {
		_spec.SetField(entity.FieldCreationSource, field.TypeEnum, value)
		_node.CreationSource = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(entity.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(entity.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(entity.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if nodes := _c.mutation.IdentifiersIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FactsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.OrganizationIDs(); len(nodes) > 0 {
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
		_node.OrganizationID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MembersIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Entity.Create().
//		SetType(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EntityUpsert) {
//			SetType(v+v).
//		}).
//		Exec(ctx)
func (_c *EntityCreate) OnConflict(opts ...sql.ConflictOption) *EntityUpsertOne {
	_c.conflict = opts
	return &EntityUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Entity.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EntityCreate) OnConflictColumns(columns ...string) *EntityUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EntityUpsertOne{
		create: _c,
	}
}

type (
	// EntityUpsertOne is the builder for "upsert"-ing
	//  one Entity node.
	EntityUpsertOne struct {
		create *EntityCreate
	}

	// EntityUpsert is the "OnConflict" setter.
	EntityUpsert struct {
		*sql.UpdateSet
	}
)

// SetType sets the "type" field.
func (u *EntityUpsert) SetType(v entity.Type) *EntityUpsert {
	u.Set(entity.FieldType, v)
	return u
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *EntityUpsert) UpdateType() *EntityUpsert {
	u.SetExcluded(entity.FieldType)
	return u
}

// SetName sets the "name" field.
func (u *EntityUpsert) SetName(v string) *EntityUpsert {
	u.Set(entity.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *EntityUpsert) UpdateName() *EntityUpsert {
	u.SetExcluded(entity.FieldName)
	return u
}

// SetOrganizationID sets the "organization_id" field.
func (u *EntityUpsert) SetOrganizationID(v string) *EntityUpsert {
	u.Set(entity.FieldOrganizationID, v)
	return u
}

// UpdateOrganizationID sets the "organization_id" field to the value that was provided on create.
func (u *EntityUpsert) UpdateOrganizationID() *EntityUpsert {
	u.SetExcluded(entity.FieldOrganizationID)
	return u
}

// ClearOrganizationID clears the value of the "organization_id" field.
func (u *EntityUpsert) ClearOrganizationID() *EntityUpsert {
	u.SetNull(entity.FieldOrganizationID)
	return u
}

// SetNotes sets the "notes" field.
func (u *EntityUpsert) SetNotes(v string) *EntityUpsert {
	u.Set(entity.FieldNotes, v)
	return u
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *EntityUpsert) UpdateNotes() *EntityUpsert {
	u.SetExcluded(entity.FieldNotes)
	return u
}

// ClearNotes clears the value of the "notes" field.
func (u *EntityUpsert) ClearNotes() *EntityUpsert {
	u.SetNull(entity.FieldNotes)
	return u
}

// SetIsOwner sets the "is_owner" field.
func (u *EntityUpsert) SetIsOwner(v bool) *EntityUpsert {
	u.Set(entity.FieldIsOwner, v)
	return u
}

// UpdateIsOwner sets the "is_owner" field to the value that was provided on create.
func (u *EntityUpsert) UpdateIsOwner() *EntityUpsert {
	u.SetExcluded(entity.FieldIsOwner)
	return u
}

// SetIsBot sets the "is_bot" field.
func (u *EntityUpsert) SetIsBot(v bool) *EntityUpsert {
	u.Set(entity.FieldIsBot, v)
	return u
}

// UpdateIsBot sets the "is_bot" field to the value that was provided on create.
func (u *EntityUpsert) UpdateIsBot() *EntityUpsert {
	u.SetExcluded(entity.FieldIsBot)
	return u
}

// SetCreationSource sets the "creation_source" field.
func (u *EntityUpsert) SetCreationSource(v entity.CreationSource) *EntityUpsert {
	u.Set(entity.FieldCreationSource, v)
	return u
}

// UpdateCreationSource sets the "creation_source" field to the value that was provided on create.
func (u *EntityUpsert) UpdateCreationSource() *EntityUpsert {
	u.SetExcluded(entity.FieldCreationSource)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EntityUpsert) SetUpdatedAt(v time.Time) *EntityUpsert {
	u.Set(entity.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EntityUpsert) UpdateUpdatedAt() *EntityUpsert {
	u.SetExcluded(entity.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *EntityUpsert) SetDeletedAt(v time.Time) *EntityUpsert {
	u.Set(entity.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *EntityUpsert) UpdateDeletedAt() *EntityUpsert {
	u.SetExcluded(entity.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *EntityUpsert) ClearDeletedAt() *EntityUpsert {
	u.SetNull(entity.FieldDeletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Entity.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(entity.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EntityUpsertOne) UpdateNewValues() *EntityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(entity.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(entity.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Entity.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EntityUpsertOne) Ignore() *EntityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EntityUpsertOne) DoNothing() *EntityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EntityCreate.OnConflict
// documentation for more info.
func (u *EntityUpsertOne) Update(set func(*EntityUpsert)) *EntityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EntityUpsert{UpdateSet: update})
	}))
	return u
}

// SetType sets the "type" field.
func (u *EntityUpsertOne) SetType(v entity.Type) *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *EntityUpsertOne) UpdateType() *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.UpdateType()
	})
}

// SetName sets the "name" field.
func (u *EntityUpsertOne) SetName(v string) *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *EntityUpsertOne) UpdateName() *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.UpdateName()
	})
}

// SetOrganizationID sets the "organization_id" field.
func (u *EntityUpsertOne) SetOrganizationID(v string) *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.SetOrganizationID(v)
	})
}

// UpdateOrganizationID sets the "organization_id" field to the value that was provided on create.
func (u *EntityUpsertOne) UpdateOrganizationID() *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.UpdateOrganizationID()
	})
}

// ClearOrganizationID clears the value of the "organization_id" field.
func (u *EntityUpsertOne) ClearOrganizationID() *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.ClearOrganizationID()
	})
}

// SetNotes sets the "notes" field.
func (u *EntityUpsertOne) SetNotes(v string) *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *EntityUpsertOne) UpdateNotes() *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *EntityUpsertOne) ClearNotes() *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.ClearNotes()
	})
}

// SetIsOwner sets the "is_owner" field.
func (u *EntityUpsertOne) SetIsOwner(v bool) *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.SetIsOwner(v)
	})
}

// UpdateIsOwner sets the "is_owner" field to the value that was provided on create.
func (u *EntityUpsertOne) UpdateIsOwner() *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.UpdateIsOwner()
	})
}

// SetIsBot sets the "is_bot" field.
func (u *EntityUpsertOne) SetIsBot(v bool) *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.SetIsBot(v)
	})
}

// UpdateIsBot sets the "is_bot" field to the value that was provided on create.
func (u *EntityUpsertOne) UpdateIsBot() *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.UpdateIsBot()
	})
}

// SetCreationSource sets the "creation_source" field.
func (u *EntityUpsertOne) SetCreationSource(v entity.CreationSource) *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.SetCreationSource(v)
	})
}

// UpdateCreationSource sets the "creation_source" field to the value that was provided on create.
func (u *EntityUpsertOne) UpdateCreationSource() *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.UpdateCreationSource()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EntityUpsertOne) SetUpdatedAt(v time.Time) *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EntityUpsertOne) UpdateUpdatedAt() *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *EntityUpsertOne) SetDeletedAt(v time.Time) *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *EntityUpsertOne) UpdateDeletedAt() *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *EntityUpsertOne) ClearDeletedAt() *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.ClearDeletedAt()
	})
}

// Exec executes the query.
func (u *EntityUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EntityCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EntityUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EntityUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: EntityUpsertOne.ID is not supported by MySQL driver. Use EntityUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EntityUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EntityCreateBulk is the builder for creating many Entity entities in bulk.
type EntityCreateBulk struct {
	config
	err      error
	builders []*EntityCreate
	conflict []sql.ConflictOption
}

// Save creates the Entity entities in the database.
func (_c *EntityCreateBulk) Save(ctx context.Context) ([]*Entity, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Entity, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EntityMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *EntityCreateBulk) SaveX(ctx context.Context) []*Entity {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EntityCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EntityCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Entity.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EntityUpsert) {
//			SetType(v+v).
//		}).
//		Exec(ctx)
func (_c *EntityCreateBulk) OnConflict(opts ...sql.ConflictOption) *EntityUpsertBulk {
	_c.conflict = opts
	return &EntityUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Entity.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EntityCreateBulk) OnConflictColumns(columns ...string) *EntityUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EntityUpsertBulk{
		create: _c,
	}
}

// EntityUpsertBulk is the builder for "upsert"-ing
// a bulk of Entity nodes.
type EntityUpsertBulk struct {
	create *EntityCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Entity.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(entity.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EntityUpsertBulk) UpdateNewValues() *EntityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(entity.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(entity.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Entity.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EntityUpsertBulk) Ignore() *EntityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EntityUpsertBulk) DoNothing() *EntityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EntityCreateBulk.OnConflict
// documentation for more info.
func (u *EntityUpsertBulk) Update(set func(*EntityUpsert)) *EntityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EntityUpsert{UpdateSet: update})
	}))
	return u
}

// SetType sets the "type" field.
func (u *EntityUpsertBulk) SetType(v entity.Type) *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *EntityUpsertBulk) UpdateType() *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.UpdateType()
	})
}

// SetName sets the "name" field.
func (u *EntityUpsertBulk) SetName(v string) *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *EntityUpsertBulk) UpdateName() *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.UpdateName()
	})
}

// SetOrganizationID sets the "organization_id" field.
func (u *EntityUpsertBulk) SetOrganizationID(v string) *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.SetOrganizationID(v)
	})
}

// UpdateOrganizationID sets the "organization_id" field to the value that was provided on create.
func (u *EntityUpsertBulk) UpdateOrganizationID() *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.UpdateOrganizationID()
	})
}

// ClearOrganizationID clears the value of the "organization_id" field.
func (u *EntityUpsertBulk) ClearOrganizationID() *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.ClearOrganizationID()
	})
}

// SetNotes sets the "notes" field.
func (u *EntityUpsertBulk) SetNotes(v string) *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *EntityUpsertBulk) UpdateNotes() *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *EntityUpsertBulk) ClearNotes() *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.ClearNotes()
	})
}

// SetIsOwner sets the "is_owner" field.
func (u *EntityUpsertBulk) SetIsOwner(v bool) *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.SetIsOwner(v)
	})
}

// UpdateIsOwner sets the "is_owner" field to the value that was provided on create.
func (u *EntityUpsertBulk) UpdateIsOwner() *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.UpdateIsOwner()
	})
}

// SetIsBot sets the "is_bot" field.
func (u *EntityUpsertBulk) SetIsBot(v bool) *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.SetIsBot(v)
	})
}

// UpdateIsBot sets the "is_bot" field to the value that was provided on create.
func (u *EntityUpsertBulk) UpdateIsBot() *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.UpdateIsBot()
	})
}

// SetCreationSource sets the "creation_source" field.
func (u *EntityUpsertBulk) SetCreationSource(v entity.CreationSource) *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.SetCreationSource(v)
	})
}

// UpdateCreationSource sets the "creation_source" field to the value that was provided on create.
func (u *EntityUpsertBulk) UpdateCreationSource() *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.UpdateCreationSource()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EntityUpsertBulk) SetUpdatedAt(v time.Time) *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EntityUpsertBulk) UpdateUpdatedAt() *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *EntityUpsertBulk) SetDeletedAt(v time.Time) *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *EntityUpsertBulk) UpdateDeletedAt() *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *EntityUpsertBulk) ClearDeletedAt() *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.ClearDeletedAt()
	})
}

// Exec executes the query.
func (u *EntityUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EntityCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EntityCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EntityUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
