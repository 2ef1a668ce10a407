// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/memograph/memograph/ent/activityclosure"
)

// ActivityClosureCreate is the builder for creating a ActivityClosure entity.
type ActivityClosureCreate struct {
	config
	mutation *ActivityClosureMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAncestorID sets the "ancestor_id" field.
func (_c *ActivityClosureCreate) SetAncestorID(v string) *ActivityClosureCreate {
	_c.mutation.SetAncestorID(v)
	return _c
}

// SetDescendantID sets the "descendant_id" field.
func (_c *ActivityClosureCreate) SetDescendantID(v string) *ActivityClosureCreate {
	_c.mutation.SetDescendantID(v)
	return _c
}

// SetDepth sets the "depth" field.
func (_c *ActivityClosureCreate) SetDepth(v int) *ActivityClosureCreate {
	_c.mutation.SetDepth(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ActivityClosureCreate) SetID(v string) *ActivityClosureCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ActivityClosureMutation object of the builder.
func (_c *ActivityClosureCreate) Mutation() *ActivityClosureMutation {
	return _c.mutation
}

// Save creates the ActivityClosure in the database.
func (_c *ActivityClosureCreate) Save(ctx context.Context) (*ActivityClosure, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ActivityClosureCreate) SaveX(ctx context.Context) *ActivityClosure {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActivityClosureCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActivityClosureCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ActivityClosureCreate) check() error {
	if _, ok := _c.mutation.AncestorID(); !ok {
		return &ValidationError{Name: "ancestor_id", err: errors.New(`ent: missing required field "ActivityClosure.ancestor_id"`)}
	}
	if _, ok := _c.mutation.DescendantID(); !ok {
		return &ValidationError{Name: "descendant_id", err: errors.New(`ent: missing required field "ActivityClosure.descendant_id"`)}
	}
	if _, ok := _c.mutation.Depth(); !ok {
		return &ValidationError{Name: "depth", err: errors.New(`ent: missing required field "ActivityClosure.depth"`)}
	}
	return nil
}

func (_c *ActivityClosureCreate) sqlSave(ctx context.Context) (*ActivityClosure, error) {
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
			return nil, fmt.Errorf("unexpected ActivityClosure.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ActivityClosureCreate) createSpec() (*ActivityClosure, *sqlgraph.CreateSpec) {
	var (
		_node = &ActivityClosure{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(activityclosure.Table, sqlgraph.NewFieldSpec(activityclosure.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AncestorID(); ok {
		_spec.SetField(activityclosure.FieldAncestorID, field.TypeString, value)
		_node.AncestorID = value
	}
	if value, ok := _c.mutation.DescendantID(); ok {
		_spec.SetField(activityclosure.FieldDescendantID, field.TypeString, value)
		_node.DescendantID = value
	}
	if value, ok := _c.mutation.Depth(); ok {
		_spec.SetField(activityclosure.FieldDepth, field.TypeInt, value)
		_node.Depth = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ActivityClosure.Create().
//		SetAncestorID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ActivityClosureUpsert) {
//			SetAncestorID(v+v).
//		}).
//		Exec(ctx)
func (_c *ActivityClosureCreate) OnConflict(opts ...sql.ConflictOption) *ActivityClosureUpsertOne {
	_c.conflict = opts
	return &ActivityClosureUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ActivityClosure.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ActivityClosureCreate) OnConflictColumns(columns ...string) *ActivityClosureUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ActivityClosureUpsertOne{
		create: _c,
	}
}

type (
	// ActivityClosureUpsertOne is the builder for "upsert"-ing
	//  one ActivityClosure node.
	ActivityClosureUpsertOne struct {
		create *ActivityClosureCreate
	}

	// ActivityClosureUpsert is the "OnConflict" setter.
	ActivityClosureUpsert struct {
		*sql.UpdateSet
	}
)

// SetAncestorID sets the "ancestor_id" field.
func (u *ActivityClosureUpsert) SetAncestorID(v string) *ActivityClosureUpsert {
	u.Set(activityclosure.FieldAncestorID, v)
	return u
}

// UpdateAncestorID sets the "ancestor_id" field to the value that was provided on create.
func (u *ActivityClosureUpsert) UpdateAncestorID() *ActivityClosureUpsert {
	u.SetExcluded(activityclosure.FieldAncestorID)
	return u
}

// SetDescendantID sets the "descendant_id" field.
func (u *ActivityClosureUpsert) SetDescendantID(v string) *ActivityClosureUpsert {
	u.Set(activityclosure.FieldDescendantID, v)
	return u
}

// UpdateDescendantID sets the "descendant_id" field to the value that was provided on create.
func (u *ActivityClosureUpsert) UpdateDescendantID() *ActivityClosureUpsert {
	u.SetExcluded(activityclosure.FieldDescendantID)
	return u
}

// SetDepth sets the "depth" field.
func (u *ActivityClosureUpsert) SetDepth(v int) *ActivityClosureUpsert {
	u.Set(activityclosure.FieldDepth, v)
	return u
}

// UpdateDepth sets the "depth" field to the value that was provided on create.
func (u *ActivityClosureUpsert) UpdateDepth() *ActivityClosureUpsert {
	u.SetExcluded(activityclosure.FieldDepth)
	return u
}

// AddDepth adds v to the "depth" field.
func (u *ActivityClosureUpsert) AddDepth(v int) *ActivityClosureUpsert {
	u.Add(activityclosure.FieldDepth, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ActivityClosure.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(activityclosure.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ActivityClosureUpsertOne) UpdateNewValues() *ActivityClosureUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(activityclosure.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ActivityClosure.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ActivityClosureUpsertOne) Ignore() *ActivityClosureUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ActivityClosureUpsertOne) DoNothing() *ActivityClosureUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ActivityClosureCreate.OnConflict
// documentation for more info.
func (u *ActivityClosureUpsertOne) Update(set func(*ActivityClosureUpsert)) *ActivityClosureUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ActivityClosureUpsert{UpdateSet: update})
	}))
	return u
}

// SetAncestorID sets the "ancestor_id" field.
func (u *ActivityClosureUpsertOne) SetAncestorID(v string) *ActivityClosureUpsertOne {
	return u.Update(func(s *ActivityClosureUpsert) {
		s.SetAncestorID(v)
	})
}

// UpdateAncestorID sets the "ancestor_id" field to the value that was provided on create.
func (u *ActivityClosureUpsertOne) UpdateAncestorID() *ActivityClosureUpsertOne {
	return u.Update(func(s *ActivityClosureUpsert) {
		s.UpdateAncestorID()
	})
}

// SetDescendantID sets the "descendant_id" field.
func (u *ActivityClosureUpsertOne) SetDescendantID(v string) *ActivityClosureUpsertOne {
	return u.Update(func(s *ActivityClosureUpsert) {
		s.SetDescendantID(v)
	})
}

// UpdateDescendantID sets the "descendant_id" field to the value that was provided on create.
func (u *ActivityClosureUpsertOne) UpdateDescendantID() *ActivityClosureUpsertOne {
	return u.Update(func(s *ActivityClosureUpsert) {
		s.UpdateDescendantID()
	})
}

// SetDepth sets the "depth" field.
func (u *ActivityClosureUpsertOne) SetDepth(v int) *ActivityClosureUpsertOne {
	return u.Update(func(s *ActivityClosureUpsert) {
		s.SetDepth(v)
	})
}

// AddDepth adds v to the "depth" field.
func (u *ActivityClosureUpsertOne) AddDepth(v int) *ActivityClosureUpsertOne {
	return u.Update(func(s *ActivityClosureUpsert) {
		s.AddDepth(v)
	})
}

// UpdateDepth sets the "depth" field to the value that was provided on create.
func (u *ActivityClosureUpsertOne) UpdateDepth() *ActivityClosureUpsertOne {
	return u.Update(func(s *ActivityClosureUpsert) {
		s.UpdateDepth()
	})
}

// Exec executes the query.
func (u *ActivityClosureUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ActivityClosureCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ActivityClosureUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ActivityClosureUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ActivityClosureUpsertOne.ID is not supported by MySQL driver. Use ActivityClosureUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ActivityClosureUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ActivityClosureCreateBulk is the builder for creating many ActivityClosure entities in bulk.
type ActivityClosureCreateBulk struct {
	config
	err      error
	builders []*ActivityClosureCreate
	conflict []sql.ConflictOption
}

// Save creates the ActivityClosure entities in the database.
func (_c *ActivityClosureCreateBulk) Save(ctx context.Context) ([]*ActivityClosure, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ActivityClosure, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ActivityClosureMutation)
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
func (_c *ActivityClosureCreateBulk) SaveX(ctx context.Context) []*ActivityClosure {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActivityClosureCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActivityClosureCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ActivityClosure.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ActivityClosureUpsert) {
//			SetAncestorID(v+v).
//		}).
//		Exec(ctx)
func (_c *ActivityClosureCreateBulk) OnConflict(opts ...sql.ConflictOption) *ActivityClosureUpsertBulk {
	_c.conflict = opts
	return &ActivityClosureUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ActivityClosure.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ActivityClosureCreateBulk) OnConflictColumns(columns ...string) *ActivityClosureUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ActivityClosureUpsertBulk{
		create: _c,
	}
}

// ActivityClosureUpsertBulk is the builder for "upsert"-ing
// a bulk of ActivityClosure nodes.
type ActivityClosureUpsertBulk struct {
	create *ActivityClosureCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ActivityClosure.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(activityclosure.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ActivityClosureUpsertBulk) UpdateNewValues() *ActivityClosureUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(activityclosure.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ActivityClosure.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ActivityClosureUpsertBulk) Ignore() *ActivityClosureUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ActivityClosureUpsertBulk) DoNothing() *ActivityClosureUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ActivityClosureCreateBulk.OnConflict
// documentation for more info.
func (u *ActivityClosureUpsertBulk) Update(set func(*ActivityClosureUpsert)) *ActivityClosureUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ActivityClosureUpsert{UpdateSet: update})
	}))
	return u
}

// SetAncestorID sets the "ancestor_id" field.
func (u *ActivityClosureUpsertBulk) SetAncestorID(v string) *ActivityClosureUpsertBulk {
	return u.Update(func(s *ActivityClosureUpsert) {
		s.SetAncestorID(v)
	})
}

// UpdateAncestorID sets the "ancestor_id" field to the value that was provided on create.
func (u *ActivityClosureUpsertBulk) UpdateAncestorID() *ActivityClosureUpsertBulk {
	return u.Update(func(s *ActivityClosureUpsert) {
		s.UpdateAncestorID()
	})
}

// SetDescendantID sets the "descendant_id" field.
func (u *ActivityClosureUpsertBulk) SetDescendantID(v string) *ActivityClosureUpsertBulk {
	return u.Update(func(s *ActivityClosureUpsert) {
		s.SetDescendantID(v)
	})
}

// UpdateDescendantID sets the "descendant_id" field to the value that was provided on create.
func (u *ActivityClosureUpsertBulk) UpdateDescendantID() *ActivityClosureUpsertBulk {
	return u.Update(func(s *ActivityClosureUpsert) {
		s.UpdateDescendantID()
	})
}

// SetDepth sets the "depth" field.
func (u *ActivityClosureUpsertBulk) SetDepth(v int) *ActivityClosureUpsertBulk {
	return u.Update(func(s *ActivityClosureUpsert) {
		s.SetDepth(v)
	})
}

// AddDepth adds v to the "depth" field.
func (u *ActivityClosureUpsertBulk) AddDepth(v int) *ActivityClosureUpsertBulk {
	return u.Update(func(s *ActivityClosureUpsert) {
		s.AddDepth(v)
	})
}

// UpdateDepth sets the "depth" field to the value that was provided on create.
func (u *ActivityClosureUpsertBulk) UpdateDepth() *ActivityClosureUpsertBulk {
	return u.Update(func(s *ActivityClosureUpsert) {
		s.UpdateDepth()
	})
}

// Exec executes the query.
func (u *ActivityClosureUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ActivityClosureCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ActivityClosureCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ActivityClosureUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
