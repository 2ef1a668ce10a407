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
	"github.com/memograph/memograph/ent/interaction"
	"github.com/memograph/memograph/ent/interactionparticipant"
)

// InteractionParticipantCreate is the builder for creating a InteractionParticipant entity.
type InteractionParticipantCreate struct {
	config
	mutation *InteractionParticipantMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetInteractionID sets the "interaction_id" field.
func (_c *InteractionParticipantCreate) SetInteractionID(v string) *InteractionParticipantCreate {
	_c.mutation.SetInteractionID(v)
	return _c
}

// SetEntityID sets the "entity_id" field.
func (_c *InteractionParticipantCreate) SetEntityID(v string) *InteractionParticipantCreate {
	_c.mutation.SetEntityID(v)
	return _c
}

// SetNillableEntityID sets the "entity_id" field if the given value is not nil.
func (_c *InteractionParticipantCreate) SetNillableEntityID(v *string) *InteractionParticipantCreate {
	if v != nil {
		_c.SetEntityID(*v)
	}
	return _c
}

// SetRole sets the "role" field.
func (_c *InteractionParticipantCreate) SetRole(v interactionparticipant.Role) *InteractionParticipantCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_c *InteractionParticipantCreate) SetNillableRole(v *interactionparticipant.Role) *InteractionParticipantCreate {
	if v != nil {
		_c.SetRole(*v)
	}
	return _c
}

// SetIdentifierType sets the "identifier_type" field.
func (_c *InteractionParticipantCreate) SetIdentifierType(v string) *InteractionParticipantCreate {
	_c.mutation.SetIdentifierType(v)
	return _c
}

// SetIdentifierValue sets the "identifier_value" field.
func (_c *InteractionParticipantCreate) SetIdentifierValue(v string) *InteractionParticipantCreate {
	_c.mutation.SetIdentifierValue(v)
	return _c
}

// SetDisplayName sets the "display_name" field.
func (_c *InteractionParticipantCreate) SetDisplayName(v string) *InteractionParticipantCreate {
	_c.mutation.SetDisplayName(v)
	return _c
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_c *InteractionParticipantCreate) SetNillableDisplayName(v *string) *InteractionParticipantCreate {
	if v != nil {
		_c.SetDisplayName(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InteractionParticipantCreate) SetCreatedAt(v time.Time) *InteractionParticipantCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InteractionParticipantCreate) SetNillableCreatedAt(v *time.Time) *InteractionParticipantCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InteractionParticipantCreate) SetID(v string) *InteractionParticipantCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetInteraction sets the "interaction" edge to the Interaction entity.
func (_c *InteractionParticipantCreate) SetInteraction(v *Interaction) *InteractionParticipantCreate {
	return _c.SetInteractionID(v.ID)
}

// Mutation returns the InteractionParticipantMutation object of the builder.
func (_c *InteractionParticipantCreate) Mutation() *InteractionParticipantMutation {
	return _c.mutation
}

// Save creates the InteractionParticipant in the database.
func (_c *InteractionParticipantCreate) Save(ctx context.Context) (*InteractionParticipant, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InteractionParticipantCreate) SaveX(ctx context.Context) *InteractionParticipant {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InteractionParticipantCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InteractionParticipantCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InteractionParticipantCreate) defaults() {
	if _, ok := _c.mutation.Role(); !ok {
		v := interactionparticipant.DefaultRole
		_c.mutation.SetRole(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := interactionparticipant.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InteractionParticipantCreate) check() error {
	if _, ok := _c.mutation.InteractionID(); !ok {
		return &ValidationError{Name: "interaction_id", err: errors.New(`ent: missing required field "InteractionParticipant.interaction_id"`)}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "InteractionParticipant.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := interactionparticipant.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "InteractionParticipant.role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IdentifierType(); !ok {
		return &ValidationError{Name: "identifier_type", err: errors.New(`ent: missing required field "InteractionParticipant.identifier_type"`)}
	}
	if _, ok := _c.mutation.IdentifierValue(); !ok {
		return &ValidationError{Name: "identifier_value", err: errors.New(`ent: missing required field "InteractionParticipant.identifier_value"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "InteractionParticipant.created_at"`)}
	}
	if len(_c.mutation.InteractionIDs()) == 0 {
		return &ValidationError{Name: "interaction", err: errors.New(`ent: missing required edge "InteractionParticipant.interaction"`)}
	}
	return nil
}

func (_c *InteractionParticipantCreate) sqlSave(ctx context.Context) (*InteractionParticipant, error) {
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
			return nil, fmt.Errorf("unexpected InteractionParticipant.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InteractionParticipantCreate) createSpec() (*InteractionParticipant, *sqlgraph.CreateSpec) {
	var (
		_node = &InteractionParticipant{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(interactionparticipant.Table, sqlgraph.NewFieldSpec(interactionparticipant.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.EntityID(); ok {
		_spec.SetField(interactionparticipant.FieldEntityID, field.TypeString, value)
		_node.EntityID = &value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(interactionparticipant.FieldRole, field.TypeEnum, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.IdentifierType(); ok {
		_spec.SetField(interactionparticipant.FieldIdentifierType, field.TypeString, value)
		_node.IdentifierType = value
	}
	if value, ok := _c.mutation.IdentifierValue(); ok {
		_spec.SetField(interactionparticipant.FieldIdentifierValue, field.TypeString, value)
		_node.IdentifierValue = value
	}
	if value, ok := _c.mutation.DisplayName(); ok {
		_spec.SetField(interactionparticipant.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(interactionparticipant.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.InteractionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   interactionparticipant.InteractionTable,
			Columns: []string{interactionparticipant.InteractionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(interaction.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.InteractionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.InteractionParticipant.Create().
//		SetInteractionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InteractionParticipantUpsert) {
//			SetInteractionID(v+v).
//		}).
//		Exec(ctx)
func (_c *InteractionParticipantCreate) OnConflict(opts ...sql.ConflictOption) *InteractionParticipantUpsertOne {
	_c.conflict = opts
	return &InteractionParticipantUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.InteractionParticipant.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InteractionParticipantCreate) OnConflictColumns(columns ...string) *InteractionParticipantUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InteractionParticipantUpsertOne{
		create: _c,
	}
}

type (
	// InteractionParticipantUpsertOne is the builder for "upsert"-ing
	//  one InteractionParticipant node.
	InteractionParticipantUpsertOne struct {
		create *InteractionParticipantCreate
	}

	// InteractionParticipantUpsert is the "OnConflict" setter.
	InteractionParticipantUpsert struct {
		*sql.UpdateSet
	}
)

// SetEntityID sets the "entity_id" field.
func (u *InteractionParticipantUpsert) SetEntityID(v string) *InteractionParticipantUpsert {
	u.Set(interactionparticipant.FieldEntityID, v)
	return u
}

// UpdateEntityID sets the "entity_id" field to the value that was provided on create.
func (u *InteractionParticipantUpsert) UpdateEntityID() *InteractionParticipantUpsert {
	u.SetExcluded(interactionparticipant.FieldEntityID)
	return u
}

// ClearEntityID clears the value of the "entity_id" field.
func (u *InteractionParticipantUpsert) ClearEntityID() *InteractionParticipantUpsert {
	u.SetNull(interactionparticipant.FieldEntityID)
	return u
}

// SetRole sets the "role" field.
func (u *InteractionParticipantUpsert) SetRole(v interactionparticipant.Role) *InteractionParticipantUpsert {
	u.Set(interactionparticipant.FieldRole, v)
	return u
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *InteractionParticipantUpsert) UpdateRole() *InteractionParticipantUpsert {
	u.SetExcluded(interactionparticipant.FieldRole)
	return u
}

// SetIdentifierType sets the "identifier_type" field.
func (u *InteractionParticipantUpsert) SetIdentifierType(v string) *InteractionParticipantUpsert {
	u.Set(interactionparticipant.FieldIdentifierType, v)
	return u
}

// UpdateIdentifierType sets the "identifier_type" field to the value that was provided on create.
func (u *InteractionParticipantUpsert) UpdateIdentifierType() *InteractionParticipantUpsert {
	u.SetExcluded(interactionparticipant.FieldIdentifierType)
	return u
}

// SetIdentifierValue sets the "identifier_value" field.
func (u *InteractionParticipantUpsert) SetIdentifierValue(v string) *InteractionParticipantUpsert {
	u.Set(interactionparticipant.FieldIdentifierValue, v)
	return u
}

// UpdateIdentifierValue sets the "identifier_value" field to the value that was provided on create.
func (u *InteractionParticipantUpsert) UpdateIdentifierValue() *InteractionParticipantUpsert {
	u.SetExcluded(interactionparticipant.FieldIdentifierValue)
	return u
}

// SetDisplayName sets the "display_name" field.
func (u *InteractionParticipantUpsert) SetDisplayName(v string) *InteractionParticipantUpsert {
	u.Set(interactionparticipant.FieldDisplayName, v)
	return u
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *InteractionParticipantUpsert) UpdateDisplayName() *InteractionParticipantUpsert {
	u.SetExcluded(interactionparticipant.FieldDisplayName)
	return u
}

// ClearDisplayName clears the value of the "display_name" field.
func (u *InteractionParticipantUpsert) ClearDisplayName() *InteractionParticipantUpsert {
	u.SetNull(interactionparticipant.FieldDisplayName)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.InteractionParticipant.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(interactionparticipant.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InteractionParticipantUpsertOne) UpdateNewValues() *InteractionParticipantUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(interactionparticipant.FieldID)
		}
		if _, exists := u.create.mutation.InteractionID(); exists {
			s.SetIgnore(interactionparticipant.FieldInteractionID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(interactionparticipant.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.InteractionParticipant.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *InteractionParticipantUpsertOne) Ignore() *InteractionParticipantUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InteractionParticipantUpsertOne) DoNothing() *InteractionParticipantUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InteractionParticipantCreate.OnConflict
// documentation for more info.
func (u *InteractionParticipantUpsertOne) Update(set func(*InteractionParticipantUpsert)) *InteractionParticipantUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InteractionParticipantUpsert{UpdateSet: update})
	}))
	return u
}

// SetEntityID sets the "entity_id" field.
func (u *InteractionParticipantUpsertOne) SetEntityID(v string) *InteractionParticipantUpsertOne {
	return u.Update(func(s *InteractionParticipantUpsert) {
		s.SetEntityID(v)
	})
}

// UpdateEntityID sets the "entity_id" field to the value that was provided on create.
func (u *InteractionParticipantUpsertOne) UpdateEntityID() *InteractionParticipantUpsertOne {
	return u.Update(func(s *InteractionParticipantUpsert) {
		s.UpdateEntityID()
	})
}

// ClearEntityID clears the value of the "entity_id" field.
func (u *InteractionParticipantUpsertOne) ClearEntityID() *InteractionParticipantUpsertOne {
	return u.Update(func(s *InteractionParticipantUpsert) {
		s.ClearEntityID()
	})
}

// SetRole sets the "role" field.
func (u *InteractionParticipantUpsertOne) SetRole(v interactionparticipant.Role) *InteractionParticipantUpsertOne {
	return u.Update(func(s *InteractionParticipantUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *InteractionParticipantUpsertOne) UpdateRole() *InteractionParticipantUpsertOne {
	return u.Update(func(s *InteractionParticipantUpsert) {
		s.UpdateRole()
	})
}

// SetIdentifierType sets the "identifier_type" field.
func (u *InteractionParticipantUpsertOne) SetIdentifierType(v string) *InteractionParticipantUpsertOne {
	return u.Update(func(s *InteractionParticipantUpsert) {
		s.SetIdentifierType(v)
	})
}

// UpdateIdentifierType sets the "identifier_type" field to the value that was provided on create.
func (u *InteractionParticipantUpsertOne) UpdateIdentifierType() *InteractionParticipantUpsertOne {
	return u.Update(func(s *InteractionParticipantUpsert) {
		s.UpdateIdentifierType()
	})
}

// SetIdentifierValue sets the "identifier_value" field.
func (u *InteractionParticipantUpsertOne) SetIdentifierValue(v string) *InteractionParticipantUpsertOne {
	return u.Update(func(s *InteractionParticipantUpsert) {
		s.SetIdentifierValue(v)
	})
}

// UpdateIdentifierValue sets the "identifier_value" field to the value that was provided on create.
func (u *InteractionParticipantUpsertOne) UpdateIdentifierValue() *InteractionParticipantUpsertOne {
	return u.Update(func(s *InteractionParticipantUpsert) {
		s.UpdateIdentifierValue()
	})
}

// SetDisplayName sets the "display_name" field.
func (u *InteractionParticipantUpsertOne) SetDisplayName(v string) *InteractionParticipantUpsertOne {
	return u.Update(func(s *InteractionParticipantUpsert) {
		s.SetDisplayName(v)
	})
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *InteractionParticipantUpsertOne) UpdateDisplayName() *InteractionParticipantUpsertOne {
	return u.Update(func(s *InteractionParticipantUpsert) {
		s.UpdateDisplayName()
	})
}

// ClearDisplayName clears the value of the "display_name" field.
func (u *InteractionParticipantUpsertOne) ClearDisplayName() *InteractionParticipantUpsertOne {
	return u.Update(func(s *InteractionParticipantUpsert) {
		s.ClearDisplayName()
	})
}

// Exec executes the query.
func (u *InteractionParticipantUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for InteractionParticipantCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InteractionParticipantUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *InteractionParticipantUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: InteractionParticipantUpsertOne.ID is not supported by MySQL driver. Use InteractionParticipantUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *InteractionParticipantUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// InteractionParticipantCreateBulk is the builder for creating many InteractionParticipant entities in bulk.
type InteractionParticipantCreateBulk struct {
	config
	err      error
	builders []*InteractionParticipantCreate
	conflict []sql.ConflictOption
}

// Save creates the InteractionParticipant entities in the database.
func (_c *InteractionParticipantCreateBulk) Save(ctx context.Context) ([]*InteractionParticipant, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InteractionParticipant, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InteractionParticipantMutation)
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
func (_c *InteractionParticipantCreateBulk) SaveX(ctx context.Context) []*InteractionParticipant {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InteractionParticipantCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InteractionParticipantCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.InteractionParticipant.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InteractionParticipantUpsert) {
//			SetInteractionID(v+v).
//		}).
//		Exec(ctx)
func (_c *InteractionParticipantCreateBulk) OnConflict(opts ...sql.ConflictOption) *InteractionParticipantUpsertBulk {
	_c.conflict = opts
	return &InteractionParticipantUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.InteractionParticipant.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InteractionParticipantCreateBulk) OnConflictColumns(columns ...string) *InteractionParticipantUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InteractionParticipantUpsertBulk{
		create: _c,
	}
}

// InteractionParticipantUpsertBulk is the builder for "upsert"-ing
// a bulk of InteractionParticipant nodes.
type InteractionParticipantUpsertBulk struct {
	create *InteractionParticipantCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.InteractionParticipant.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(interactionparticipant.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InteractionParticipantUpsertBulk) UpdateNewValues() *InteractionParticipantUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(interactionparticipant.FieldID)
			}
			if _, exists := b.mutation.InteractionID(); exists {
				s.SetIgnore(interactionparticipant.FieldInteractionID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(interactionparticipant.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.InteractionParticipant.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *InteractionParticipantUpsertBulk) Ignore() *InteractionParticipantUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InteractionParticipantUpsertBulk) DoNothing() *InteractionParticipantUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InteractionParticipantCreateBulk.OnConflict
// documentation for more info.
func (u *InteractionParticipantUpsertBulk) Update(set func(*InteractionParticipantUpsert)) *InteractionParticipantUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InteractionParticipantUpsert{UpdateSet: update})
	}))
	return u
}

// SetEntityID sets the "entity_id" field.
func (u *InteractionParticipantUpsertBulk) SetEntityID(v string) *InteractionParticipantUpsertBulk {
	return u.Update(func(s *InteractionParticipantUpsert) {
		s.SetEntityID(v)
	})
}

// UpdateEntityID sets the "entity_id" field to the value that was provided on create.
func (u *InteractionParticipantUpsertBulk) UpdateEntityID() *InteractionParticipantUpsertBulk {
	return u.Update(func(s *InteractionParticipantUpsert) {
		s.UpdateEntityID()
	})
}

// ClearEntityID clears the value of the "entity_id" field.
func (u *InteractionParticipantUpsertBulk) ClearEntityID() *InteractionParticipantUpsertBulk {
	return u.Update(func(s *InteractionParticipantUpsert) {
		s.ClearEntityID()
	})
}

// SetRole sets the "role" field.
func (u *InteractionParticipantUpsertBulk) SetRole(v interactionparticipant.Role) *InteractionParticipantUpsertBulk {
	return u.Update(func(s *InteractionParticipantUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *InteractionParticipantUpsertBulk) UpdateRole() *InteractionParticipantUpsertBulk {
	return u.Update(func(s *InteractionParticipantUpsert) {
		s.UpdateRole()
	})
}

// SetIdentifierType sets the "identifier_type" field.
func (u *InteractionParticipantUpsertBulk) SetIdentifierType(v string) *InteractionParticipantUpsertBulk {
	return u.Update(func(s *InteractionParticipantUpsert) {
		s.SetIdentifierType(v)
	})
}

// UpdateIdentifierType sets the "identifier_type" field to the value that was provided on create.
func (u *InteractionParticipantUpsertBulk) UpdateIdentifierType() *InteractionParticipantUpsertBulk {
	return u.Update(func(s *InteractionParticipantUpsert) {
		s.UpdateIdentifierType()
	})
}

// SetIdentifierValue sets the "identifier_value" field.
func (u *InteractionParticipantUpsertBulk) SetIdentifierValue(v string) *InteractionParticipantUpsertBulk {
	return u.Update(func(s *InteractionParticipantUpsert) {
		s.SetIdentifierValue(v)
	})
}

// UpdateIdentifierValue sets the "identifier_value" field to the value that was provided on create.
func (u *InteractionParticipantUpsertBulk) UpdateIdentifierValue() *InteractionParticipantUpsertBulk {
	return u.Update(func(s *InteractionParticipantUpsert) {
		s.UpdateIdentifierValue()
	})
}

// SetDisplayName sets the "display_name" field.
func (u *InteractionParticipantUpsertBulk) SetDisplayName(v string) *InteractionParticipantUpsertBulk {
	return u.Update(func(s *InteractionParticipantUpsert) {
		s.SetDisplayName(v)
	})
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *InteractionParticipantUpsertBulk) UpdateDisplayName() *InteractionParticipantUpsertBulk {
	return u.Update(func(s *InteractionParticipantUpsert) {
		s.UpdateDisplayName()
	})
}

// ClearDisplayName clears the value of the "display_name" field.
func (u *InteractionParticipantUpsertBulk) ClearDisplayName() *InteractionParticipantUpsertBulk {
	return u.Update(func(s *InteractionParticipantUpsert) {
		s.ClearDisplayName()
	})
}

// Exec executes the query.
func (u *InteractionParticipantUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the InteractionParticipantCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for InteractionParticipantCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InteractionParticipantUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
