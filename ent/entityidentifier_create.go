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
	"github.com/memograph/memograph/ent/entityidentifier"
)

// EntityIdentifierCreate is the builder for creating a EntityIdentifier entity.
type EntityIdentifierCreate struct {
	config
	mutation *EntityIdentifierMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetEntityID sets the "entity_id" field.
func (_c *EntityIdentifierCreate) SetEntityID(v string) *EntityIdentifierCreate {
	_c.mutation.SetEntityID(v)
	return _c
}

// SetIdentifierType sets the "identifier_type" field.
func (_c *EntityIdentifierCreate) SetIdentifierType(v string) *EntityIdentifierCreate {
	_c.mutation.SetIdentifierType(v)
	return _c
}

// SetIdentifierValue sets the "identifier_value" field.
func (_c *EntityIdentifierCreate) SetIdentifierValue(v string) *EntityIdentifierCreate {
	_c.mutation.SetIdentifierValue(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *EntityIdentifierCreate) SetMetadata(v map[string]interface{}) *EntityIdentifierCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EntityIdentifierCreate) SetCreatedAt(v time.Time) *EntityIdentifierCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EntityIdentifierCreate) SetNillableCreatedAt(v *time.Time) *EntityIdentifierCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EntityIdentifierCreate) SetID(v string) *EntityIdentifierCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetEntity sets the "entity" edge to the Entity entity.
func (_c *EntityIdentifierCreate) SetEntity(v *Entity) *EntityIdentifierCreate {
	return _c.SetEntityID(v.ID)
}

// Mutation returns the EntityIdentifierMutation object of the builder.
func (_c *EntityIdentifierCreate) Mutation() *EntityIdentifierMutation {
	return _c.mutation
}

// Save creates the EntityIdentifier in the database.
func (_c *EntityIdentifierCreate) Save(ctx context.Context) (*EntityIdentifier, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EntityIdentifierCreate) SaveX(ctx context.Context) *EntityIdentifier {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EntityIdentifierCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EntityIdentifierCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EntityIdentifierCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := entityidentifier.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EntityIdentifierCreate) check() error {
	if _, ok := _c.mutation.EntityID(); !ok {
		return &ValidationError{Name: "entity_id", err: errors.New(`ent: missing required field "EntityIdentifier.entity_id"`)}
	}
	if _, ok := _c.mutation.IdentifierType(); !ok {
		return &ValidationError{Name: "identifier_type", err: errors.New(`ent: missing required field "EntityIdentifier.identifier_type"`)}
	}
	if _, ok := _c.mutation.IdentifierValue(); !ok {
		return &ValidationError{Name: "identifier_value", err: errors.New(`ent: missing required field "EntityIdentifier.identifier_value"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EntityIdentifier.created_at"`)}
	}
	if len(_c.mutation.EntityIDs()) == 0 {
		return &ValidationError{Name: "entity", err: errors.New(`ent: missing required edge "EntityIdentifier.entity"`)}
	}
	return nil
}

func (_c *EntityIdentifierCreate) sqlSave(ctx context.Context) (*EntityIdentifier, error) {
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
			return nil, fmt.Errorf("unexpected EntityIdentifier.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EntityIdentifierCreate) createSpec() (*EntityIdentifier, *sqlgraph.CreateSpec) {
	var (
		_node = &EntityIdentifier{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(entityidentifier.Table, sqlgraph.NewFieldSpec(entityidentifier.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.IdentifierType(); ok {
		_spec.SetField(entityidentifier.FieldIdentifierType, field.TypeString, value)
		_node.IdentifierType = value
	}
	if value, ok := _c.mutation.IdentifierValue(); ok {
		_spec.SetField(entityidentifier.FieldIdentifierValue, field.TypeString, value)
		_node.IdentifierValue = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(entityidentifier.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(entityidentifier.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.EntityIDs(); len(nodes) > 0 {
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
		_node.EntityID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EntityIdentifier.Create().
//		SetEntityID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EntityIdentifierUpsert) {
//			SetEntityID(v+v).
//		}).
//		Exec(ctx)
func (_c *EntityIdentifierCreate) OnConflict(opts ...sql.ConflictOption) *EntityIdentifierUpsertOne {
	_c.conflict = opts
	return &EntityIdentifierUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EntityIdentifier.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EntityIdentifierCreate) OnConflictColumns(columns ...string) *EntityIdentifierUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EntityIdentifierUpsertOne{
		create: _c,
	}
}

type (
	// EntityIdentifierUpsertOne is the builder for "upsert"-ing
	//  one EntityIdentifier node.
	EntityIdentifierUpsertOne struct {
		create *EntityIdentifierCreate
	}

	// EntityIdentifierUpsert is the "OnConflict" setter.
	EntityIdentifierUpsert struct {
		*sql.UpdateSet
	}
)

// SetEntityID sets the "entity_id" field.
func (u *EntityIdentifierUpsert) SetEntityID(v string) *EntityIdentifierUpsert {
	u.Set(entityidentifier.FieldEntityID, v)
	return u
}

// UpdateEntityID sets the "entity_id" field to the value that was provided on create.
func (u *EntityIdentifierUpsert) UpdateEntityID() *EntityIdentifierUpsert {
	u.SetExcluded(entityidentifier.FieldEntityID)
	return u
}

// SetIdentifierType sets the "identifier_type" field.
func (u *EntityIdentifierUpsert) SetIdentifierType(v string) *EntityIdentifierUpsert {
	u.Set(entityidentifier.FieldIdentifierType, v)
	return u
}

// UpdateIdentifierType sets the "identifier_type" field to the value that was provided on create.
func (u *EntityIdentifierUpsert) UpdateIdentifierType() *EntityIdentifierUpsert {
	u.SetExcluded(entityidentifier.FieldIdentifierType)
	return u
}

// SetIdentifierValue sets the "identifier_value" field.
func (u *EntityIdentifierUpsert) SetIdentifierValue(v string) *EntityIdentifierUpsert {
	u.Set(entityidentifier.FieldIdentifierValue, v)
	return u
}

// UpdateIdentifierValue sets the "identifier_value" field to the value that was provided on create.
func (u *EntityIdentifierUpsert) UpdateIdentifierValue() *EntityIdentifierUpsert {
	u.SetExcluded(entityidentifier.FieldIdentifierValue)
	return u
}

// SetMetadata sets the "metadata" field.
func (u *EntityIdentifierUpsert) SetMetadata(v map[string]interface{}) *EntityIdentifierUpsert {
	u.Set(entityidentifier.FieldMetadata, v)
	return u
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *EntityIdentifierUpsert) UpdateMetadata() *EntityIdentifierUpsert {
	u.SetExcluded(entityidentifier.FieldMetadata)
	return u
}

// ClearMetadata clears the value of the "metadata" field.
func (u *EntityIdentifierUpsert) ClearMetadata() *EntityIdentifierUpsert {
	u.SetNull(entityidentifier.FieldMetadata)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.EntityIdentifier.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(entityidentifier.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EntityIdentifierUpsertOne) UpdateNewValues() *EntityIdentifierUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(entityidentifier.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(entityidentifier.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EntityIdentifier.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EntityIdentifierUpsertOne) Ignore() *EntityIdentifierUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EntityIdentifierUpsertOne) DoNothing() *EntityIdentifierUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EntityIdentifierCreate.OnConflict
// documentation for more info.
func (u *EntityIdentifierUpsertOne) Update(set func(*EntityIdentifierUpsert)) *EntityIdentifierUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EntityIdentifierUpsert{UpdateSet: update})
	}))
	return u
}

// SetEntityID sets the "entity_id" field.
func (u *EntityIdentifierUpsertOne) SetEntityID(v string) *EntityIdentifierUpsertOne {
	return u.Update(func(s *EntityIdentifierUpsert) {
		s.SetEntityID(v)
	})
}

// UpdateEntityID sets the "entity_id" field to the value that was provided on create.
func (u *EntityIdentifierUpsertOne) UpdateEntityID() *EntityIdentifierUpsertOne {
	return u.Update(func(s *EntityIdentifierUpsert) {
		s.UpdateEntityID()
	})
}

// SetIdentifierType sets the "identifier_type" field.
func (u *EntityIdentifierUpsertOne) SetIdentifierType(v string) *EntityIdentifierUpsertOne {
	return u.Update(func(s *EntityIdentifierUpsert) {
		s.SetIdentifierType(v)
	})
}

// UpdateIdentifierType sets the "identifier_type" field to the value that was provided on create.
func (u *EntityIdentifierUpsertOne) UpdateIdentifierType() *EntityIdentifierUpsertOne {
	return u.Update(func(s *EntityIdentifierUpsert) {
		s.UpdateIdentifierType()
	})
}

// SetIdentifierValue sets the "identifier_value" field.
func (u *EntityIdentifierUpsertOne) SetIdentifierValue(v string) *EntityIdentifierUpsertOne {
	return u.Update(func(s *EntityIdentifierUpsert) {
		s.SetIdentifierValue(v)
	})
}

// UpdateIdentifierValue sets the "identifier_value" field to the value that was provided on create.
func (u *EntityIdentifierUpsertOne) UpdateIdentifierValue() *EntityIdentifierUpsertOne {
	return u.Update(func(s *EntityIdentifierUpsert) {
		s.UpdateIdentifierValue()
	})
}

// SetMetadata sets the "metadata" field.
func (u *EntityIdentifierUpsertOne) SetMetadata(v map[string]interface{}) *EntityIdentifierUpsertOne {
	return u.Update(func(s *EntityIdentifierUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *EntityIdentifierUpsertOne) UpdateMetadata() *EntityIdentifierUpsertOne {
	return u.Update(func(s *EntityIdentifierUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *EntityIdentifierUpsertOne) ClearMetadata() *EntityIdentifierUpsertOne {
	return u.Update(func(s *EntityIdentifierUpsert) {
		s.ClearMetadata()
	})
}

// Exec executes the query.
func (u *EntityIdentifierUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EntityIdentifierCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EntityIdentifierUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EntityIdentifierUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: EntityIdentifierUpsertOne.ID is not supported by MySQL driver. Use EntityIdentifierUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EntityIdentifierUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EntityIdentifierCreateBulk is the builder for creating many EntityIdentifier entities in bulk.
type EntityIdentifierCreateBulk struct {
	config
	err      error
	builders []*EntityIdentifierCreate
	conflict []sql.ConflictOption
}

// Save creates the EntityIdentifier entities in the database.
func (_c *EntityIdentifierCreateBulk) Save(ctx context.Context) ([]*EntityIdentifier, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EntityIdentifier, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EntityIdentifierMutation)
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
func (_c *EntityIdentifierCreateBulk) SaveX(ctx context.Context) []*EntityIdentifier {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EntityIdentifierCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EntityIdentifierCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EntityIdentifier.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EntityIdentifierUpsert) {
//			SetEntityID(v+v).
//		}).
//		Exec(ctx)
func (_c *EntityIdentifierCreateBulk) OnConflict(opts ...sql.ConflictOption) *EntityIdentifierUpsertBulk {
	_c.conflict = opts
	return &EntityIdentifierUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EntityIdentifier.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EntityIdentifierCreateBulk) OnConflictColumns(columns ...string) *EntityIdentifierUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EntityIdentifierUpsertBulk{
		create: _c,
	}
}

// EntityIdentifierUpsertBulk is the builder for "upsert"-ing
// a bulk of EntityIdentifier nodes.
type EntityIdentifierUpsertBulk struct {
	create *EntityIdentifierCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.EntityIdentifier.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(entityidentifier.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EntityIdentifierUpsertBulk) UpdateNewValues() *EntityIdentifierUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(entityidentifier.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(entityidentifier.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EntityIdentifier.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EntityIdentifierUpsertBulk) Ignore() *EntityIdentifierUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EntityIdentifierUpsertBulk) DoNothing() *EntityIdentifierUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EntityIdentifierCreateBulk.OnConflict
// documentation for more info.
func (u *EntityIdentifierUpsertBulk) Update(set func(*EntityIdentifierUpsert)) *EntityIdentifierUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EntityIdentifierUpsert{UpdateSet: update})
	}))
	return u
}

// SetEntityID sets the "entity_id" field.
func (u *EntityIdentifierUpsertBulk) SetEntityID(v string) *EntityIdentifierUpsertBulk {
	return u.Update(func(s *EntityIdentifierUpsert) {
		s.SetEntityID(v)
	})
}

// UpdateEntityID sets the "entity_id" field to the value that was provided on create.
func (u *EntityIdentifierUpsertBulk) UpdateEntityID() *EntityIdentifierUpsertBulk {
	return u.Update(func(s *EntityIdentifierUpsert) {
		s.UpdateEntityID()
	})
}

// SetIdentifierType sets the "identifier_type" field.
func (u *EntityIdentifierUpsertBulk) SetIdentifierType(v string) *EntityIdentifierUpsertBulk {
	return u.Update(func(s *EntityIdentifierUpsert) {
		s.SetIdentifierType(v)
	})
}

// UpdateIdentifierType sets the "identifier_type" field to the value that was provided on create.
func (u *EntityIdentifierUpsertBulk) UpdateIdentifierType() *EntityIdentifierUpsertBulk {
	return u.Update(func(s *EntityIdentifierUpsert) {
		s.UpdateIdentifierType()
	})
}

// SetIdentifierValue sets the "identifier_value" field.
func (u *EntityIdentifierUpsertBulk) SetIdentifierValue(v string) *EntityIdentifierUpsertBulk {
	return u.Update(func(s *EntityIdentifierUpsert) {
		s.SetIdentifierValue(v)
	})
}

// UpdateIdentifierValue sets the "identifier_value" field to the value that was provided on create.
func (u *EntityIdentifierUpsertBulk) UpdateIdentifierValue() *EntityIdentifierUpsertBulk {
	return u.Update(func(s *EntityIdentifierUpsert) {
		s.UpdateIdentifierValue()
	})
}

// SetMetadata sets the "metadata" field.
func (u *EntityIdentifierUpsertBulk) SetMetadata(v map[string]interface{}) *EntityIdentifierUpsertBulk {
	return u.Update(func(s *EntityIdentifierUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *EntityIdentifierUpsertBulk) UpdateMetadata() *EntityIdentifierUpsertBulk {
	return u.Update(func(s *EntityIdentifierUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *EntityIdentifierUpsertBulk) ClearMetadata() *EntityIdentifierUpsertBulk {
	return u.Update(func(s *EntityIdentifierUpsert) {
		s.ClearMetadata()
	})
}

// Exec executes the query.
func (u *EntityIdentifierUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EntityIdentifierCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EntityIdentifierCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EntityIdentifierUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
