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
	"github.com/memograph/memograph/ent/dataqualityreport"
)

// DataQualityReportCreate is the builder for creating a DataQualityReport entity.
type DataQualityReportCreate struct {
	config
	mutation *DataQualityReportMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTriggeredBy sets the "triggered_by" field.
func (_c *DataQualityReportCreate) SetTriggeredBy(v dataqualityreport.TriggeredBy) *DataQualityReportCreate {
	_c.mutation.SetTriggeredBy(v)
	return _c
}

// SetNillableTriggeredBy sets the "triggered_by" field if the given value is not nil.
func (_c *DataQualityReportCreate) SetNillableTriggeredBy(v *dataqualityreport.TriggeredBy) *DataQualityReportCreate {
	if v != nil {
		_c.SetTriggeredBy(*v)
	}
	return _c
}

// SetMetrics sets the "metrics" field.
func (_c *DataQualityReportCreate) SetMetrics(v map[string]interface{}) *DataQualityReportCreate {
	_c.mutation.SetMetrics(v)
	return _c
}

// SetIssues sets the "issues" field.
func (_c *DataQualityReportCreate) SetIssues(v []map[string]interface{}) *DataQualityReportCreate {
	_c.mutation.SetIssues(v)
	return _c
}

// SetResolutions sets the "resolutions" field.
func (_c *DataQualityReportCreate) SetResolutions(v []map[string]interface{}) *DataQualityReportCreate {
	_c.mutation.SetResolutions(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DataQualityReportCreate) SetCreatedAt(v time.Time) *DataQualityReportCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DataQualityReportCreate) SetNillableCreatedAt(v *time.Time) *DataQualityReportCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DataQualityReportCreate) SetID(v string) *DataQualityReportCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the DataQualityReportMutation object of the builder.
func (_c *DataQualityReportCreate) Mutation() *DataQualityReportMutation {
	return _c.mutation
}

// Save creates the DataQualityReport in the database.
func (_c *DataQualityReportCreate) Save(ctx context.Context) (*DataQualityReport, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DataQualityReportCreate) SaveX(ctx context.Context) *DataQualityReport {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DataQualityReportCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DataQualityReportCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DataQualityReportCreate) defaults() {
	if _, ok := _c.mutation.TriggeredBy(); !ok {
		v := dataqualityreport.DefaultTriggeredBy
		_c.mutation.SetTriggeredBy(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := dataqualityreport.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DataQualityReportCreate) check() error {
	if _, ok := _c.mutation.TriggeredBy(); !ok {
		return &ValidationError{Name: "triggered_by", err: errors.New(`ent: missing required field "DataQualityReport.triggered_by"`)}
	}
	if v, ok := _c.mutation.TriggeredBy(); ok {
		if err := dataqualityreport.TriggeredByValidator(v); err != nil {
			return &ValidationError{Name: "triggered_by", err: fmt.Errorf(`ent: validator failed for field "DataQualityReport.triggered_by": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DataQualityReport.created_at"`)}
	}
	return nil
}

func (_c *DataQualityReportCreate) sqlSave(ctx context.Context) (*DataQualityReport, error) {
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
			return nil, fmt.Errorf("unexpected DataQualityReport.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DataQualityReportCreate) createSpec() (*DataQualityReport, *sqlgraph.CreateSpec) {
	var (
		_node = &DataQualityReport{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(dataqualityreport.Table, sqlgraph.NewFieldSpec(dataqualityreport.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TriggeredBy(); ok {
		_spec.SetField(dataqualityreport.FieldTriggeredBy, field.TypeEnum, value)
		_node.TriggeredBy = value
	}
	if value, ok := _c.mutation.Metrics(); ok {
		_spec.SetField(dataqualityreport.FieldMetrics, field.TypeJSON, value)
		_node.Metrics = value
	}
	if value, ok := _c.mutation.Issues(); ok {
		_spec.SetField(dataqualityreport.FieldIssues, field.TypeJSON, value)
		_node.Issues = value
	}
	if value, ok := _c.mutation.Resolutions(); ok {
		_spec.SetField(dataqualityreport.FieldResolutions, field.TypeJSON, value)
		_node.Resolutions = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(dataqualityreport.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DataQualityReport.Create().
//		SetTriggeredBy(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DataQualityReportUpsert) {
//			SetTriggeredBy(v+v).
//		}).
//		Exec(ctx)
func (_c *DataQualityReportCreate) OnConflict(opts ...sql.ConflictOption) *DataQualityReportUpsertOne {
	_c.conflict = opts
	return &DataQualityReportUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DataQualityReport.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DataQualityReportCreate) OnConflictColumns(columns ...string) *DataQualityReportUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DataQualityReportUpsertOne{
		create: _c,
	}
}

type (
	// DataQualityReportUpsertOne is the builder for "upsert"-ing
	//  one DataQualityReport node.
	DataQualityReportUpsertOne struct {
		create *DataQualityReportCreate
	}

	// DataQualityReportUpsert is the "OnConflict" setter.
	DataQualityReportUpsert struct {
		*sql.UpdateSet
	}
)

// SetTriggeredBy sets the "triggered_by" field.
func (u *DataQualityReportUpsert) SetTriggeredBy(v dataqualityreport.TriggeredBy) *DataQualityReportUpsert {
	u.Set(dataqualityreport.FieldTriggeredBy, v)
	return u
}

// UpdateTriggeredBy sets the "triggered_by" field to the value that was provided on create.
func (u *DataQualityReportUpsert) UpdateTriggeredBy() *DataQualityReportUpsert {
	u.SetExcluded(dataqualityreport.FieldTriggeredBy)
	return u
}

// SetMetrics sets the "metrics" field.
func (u *DataQualityReportUpsert) SetMetrics(v map[string]interface{}) *DataQualityReportUpsert {
	u.Set(dataqualityreport.FieldMetrics, v)
	return u
}

// UpdateMetrics sets the "metrics" field to the value that was provided on create.
func (u *DataQualityReportUpsert) UpdateMetrics() *DataQualityReportUpsert {
	u.SetExcluded(dataqualityreport.FieldMetrics)
	return u
}

// ClearMetrics clears the value of the "metrics" field.
func (u *DataQualityReportUpsert) ClearMetrics() *DataQualityReportUpsert {
	u.SetNull(dataqualityreport.FieldMetrics)
	return u
}

// SetIssues sets the "issues" field.
func (u *DataQualityReportUpsert) SetIssues(v []map[string]interface{}) *DataQualityReportUpsert {
	u.Set(dataqualityreport.FieldIssues, v)
	return u
}

// UpdateIssues sets the "issues" field to the value that was provided on create.
func (u *DataQualityReportUpsert) UpdateIssues() *DataQualityReportUpsert {
	u.SetExcluded(dataqualityreport.FieldIssues)
	return u
}

// ClearIssues clears the value of the "issues" field.
func (u *DataQualityReportUpsert) ClearIssues() *DataQualityReportUpsert {
	u.SetNull(dataqualityreport.FieldIssues)
	return u
}

// SetResolutions sets the "resolutions" field.
func (u *DataQualityReportUpsert) SetResolutions(v []map[string]interface{}) *DataQualityReportUpsert {
	u.Set(dataqualityreport.FieldResolutions, v)
	return u
}

// UpdateResolutions sets the "resolutions" field to the value that was provided on create.
func (u *DataQualityReportUpsert) UpdateResolutions() *DataQualityReportUpsert {
	u.SetExcluded(dataqualityreport.FieldResolutions)
	return u
}

// ClearResolutions clears the value of the "resolutions" field.
func (u *DataQualityReportUpsert) ClearResolutions() *DataQualityReportUpsert {
	u.SetNull(dataqualityreport.FieldResolutions)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.DataQualityReport.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(dataqualityreport.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DataQualityReportUpsertOne) UpdateNewValues() *DataQualityReportUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(dataqualityreport.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(dataqualityreport.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DataQualityReport.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DataQualityReportUpsertOne) Ignore() *DataQualityReportUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DataQualityReportUpsertOne) DoNothing() *DataQualityReportUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DataQualityReportCreate.OnConflict
// documentation for more info.
func (u *DataQualityReportUpsertOne) Update(set func(*DataQualityReportUpsert)) *DataQualityReportUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DataQualityReportUpsert{UpdateSet: update})
	}))
	return u
}

// SetTriggeredBy sets the "triggered_by" field.
func (u *DataQualityReportUpsertOne) SetTriggeredBy(v dataqualityreport.TriggeredBy) *DataQualityReportUpsertOne {
	return u.Update(func(s *DataQualityReportUpsert) {
		s.SetTriggeredBy(v)
	})
}

// UpdateTriggeredBy sets the "triggered_by" field to the value that was provided on create.
func (u *DataQualityReportUpsertOne) UpdateTriggeredBy() *DataQualityReportUpsertOne {
	return u.Update(func(s *DataQualityReportUpsert) {
		s.UpdateTriggeredBy()
	})
}

// SetMetrics sets the "metrics" field.
func (u *DataQualityReportUpsertOne) SetMetrics(v map[string]interface{}) *DataQualityReportUpsertOne {
	return u.Update(func(s *DataQualityReportUpsert) {
		s.SetMetrics(v)
	})
}

// UpdateMetrics sets the "metrics" field to the value that was provided on create.
func (u *DataQualityReportUpsertOne) UpdateMetrics() *DataQualityReportUpsertOne {
	return u.Update(func(s *DataQualityReportUpsert) {
		s.UpdateMetrics()
	})
}

// ClearMetrics clears the value of the "metrics" field.
func (u *DataQualityReportUpsertOne) ClearMetrics() *DataQualityReportUpsertOne {
	return u.Update(func(s *DataQualityReportUpsert) {
		s.ClearMetrics()
	})
}

// SetIssues sets the "issues" field.
func (u *DataQualityReportUpsertOne) SetIssues(v []map[string]interface{}) *DataQualityReportUpsertOne {
	return u.Update(func(s *DataQualityReportUpsert) {
		s.SetIssues(v)
	})
}

// UpdateIssues sets the "issues" field to the value that was provided on create.
func (u *DataQualityReportUpsertOne) UpdateIssues() *DataQualityReportUpsertOne {
	return u.Update(func(s *DataQualityReportUpsert) {
		s.UpdateIssues()
	})
}

// ClearIssues clears the value of the "issues" field.
func (u *DataQualityReportUpsertOne) ClearIssues() *DataQualityReportUpsertOne {
	return u.Update(func(s *DataQualityReportUpsert) {
		s.ClearIssues()
	})
}

// SetResolutions sets the "resolutions" field.
func (u *DataQualityReportUpsertOne) SetResolutions(v []map[string]interface{}) *DataQualityReportUpsertOne {
	return u.Update(func(s *DataQualityReportUpsert) {
		s.SetResolutions(v)
	})
}

// UpdateResolutions sets the "resolutions" field to the value that was provided on create.
func (u *DataQualityReportUpsertOne) UpdateResolutions() *DataQualityReportUpsertOne {
	return u.Update(func(s *DataQualityReportUpsert) {
		s.UpdateResolutions()
	})
}

// ClearResolutions clears the value of the "resolutions" field.
func (u *DataQualityReportUpsertOne) ClearResolutions() *DataQualityReportUpsertOne {
	return u.Update(func(s *DataQualityReportUpsert) {
		s.ClearResolutions()
	})
}

// Exec executes the query.
func (u *DataQualityReportUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DataQualityReportCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DataQualityReportUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DataQualityReportUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: DataQualityReportUpsertOne.ID is not supported by MySQL driver. Use DataQualityReportUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DataQualityReportUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DataQualityReportCreateBulk is the builder for creating many DataQualityReport entities in bulk.
type DataQualityReportCreateBulk struct {
	config
	err      error
	builders []*DataQualityReportCreate
	conflict []sql.ConflictOption
}

// Save creates the DataQualityReport entities in the database.
func (_c *DataQualityReportCreateBulk) Save(ctx context.Context) ([]*DataQualityReport, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DataQualityReport, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DataQualityReportMutation)
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
func (_c *DataQualityReportCreateBulk) SaveX(ctx context.Context) []*DataQualityReport {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DataQualityReportCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DataQualityReportCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DataQualityReport.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DataQualityReportUpsert) {
//			SetTriggeredBy(v+v).
//		}).
//		Exec(ctx)
func (_c *DataQualityReportCreateBulk) OnConflict(opts ...sql.ConflictOption) *DataQualityReportUpsertBulk {
	_c.conflict = opts
	return &DataQualityReportUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DataQualityReport.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DataQualityReportCreateBulk) OnConflictColumns(columns ...string) *DataQualityReportUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DataQualityReportUpsertBulk{
		create: _c,
	}
}

// DataQualityReportUpsertBulk is the builder for "upsert"-ing
// a bulk of DataQualityReport nodes.
type DataQualityReportUpsertBulk struct {
	create *DataQualityReportCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.DataQualityReport.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(dataqualityreport.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DataQualityReportUpsertBulk) UpdateNewValues() *DataQualityReportUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(dataqualityreport.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(dataqualityreport.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DataQualityReport.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DataQualityReportUpsertBulk) Ignore() *DataQualityReportUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DataQualityReportUpsertBulk) DoNothing() *DataQualityReportUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DataQualityReportCreateBulk.OnConflict
// documentation for more info.
func (u *DataQualityReportUpsertBulk) Update(set func(*DataQualityReportUpsert)) *DataQualityReportUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DataQualityReportUpsert{UpdateSet: update})
	}))
	return u
}

// SetTriggeredBy sets the "triggered_by" field.
func (u *DataQualityReportUpsertBulk) SetTriggeredBy(v dataqualityreport.TriggeredBy) *DataQualityReportUpsertBulk {
	return u.Update(func(s *DataQualityReportUpsert) {
		s.SetTriggeredBy(v)
	})
}

// UpdateTriggeredBy sets the "triggered_by" field to the value that was provided on create.
func (u *DataQualityReportUpsertBulk) UpdateTriggeredBy() *DataQualityReportUpsertBulk {
	return u.Update(func(s *DataQualityReportUpsert) {
		s.UpdateTriggeredBy()
	})
}

// SetMetrics sets the "metrics" field.
func (u *DataQualityReportUpsertBulk) SetMetrics(v map[string]interface{}) *DataQualityReportUpsertBulk {
	return u.Update(func(s *DataQualityReportUpsert) {
		s.SetMetrics(v)
	})
}

// UpdateMetrics sets the "metrics" field to the value that was provided on create.
func (u *DataQualityReportUpsertBulk) UpdateMetrics() *DataQualityReportUpsertBulk {
	return u.Update(func(s *DataQualityReportUpsert) {
		s.UpdateMetrics()
	})
}

// ClearMetrics clears the value of the "metrics" field.
func (u *DataQualityReportUpsertBulk) ClearMetrics() *DataQualityReportUpsertBulk {
	return u.Update(func(s *DataQualityReportUpsert) {
		s.ClearMetrics()
	})
}

// SetIssues sets the "issues" field.
func (u *DataQualityReportUpsertBulk) SetIssues(v []map[string]interface{}) *DataQualityReportUpsertBulk {
	return u.Update(func(s *DataQualityReportUpsert) {
		s.SetIssues(v)
	})
}

// UpdateIssues sets the "issues" field to the value that was provided on create.
func (u *DataQualityReportUpsertBulk) UpdateIssues() *DataQualityReportUpsertBulk {
	return u.Update(func(s *DataQualityReportUpsert) {
		s.UpdateIssues()
	})
}

// ClearIssues clears the value of the "issues" field.
func (u *DataQualityReportUpsertBulk) ClearIssues() *DataQualityReportUpsertBulk {
	return u.Update(func(s *DataQualityReportUpsert) {
		s.ClearIssues()
	})
}

// SetResolutions sets the "resolutions" field.
func (u *DataQualityReportUpsertBulk) SetResolutions(v []map[string]interface{}) *DataQualityReportUpsertBulk {
	return u.Update(func(s *DataQualityReportUpsert) {
		s.SetResolutions(v)
	})
}

// UpdateResolutions sets the "resolutions" field to the value that was provided on create.
func (u *DataQualityReportUpsertBulk) UpdateResolutions() *DataQualityReportUpsertBulk {
	return u.Update(func(s *DataQualityReportUpsert) {
		s.UpdateResolutions()
	})
}

// ClearResolutions clears the value of the "resolutions" field.
func (u *DataQualityReportUpsertBulk) ClearResolutions() *DataQualityReportUpsertBulk {
	return u.Update(func(s *DataQualityReportUpsert) {
		s.ClearResolutions()
	})
}

// Exec executes the query.
func (u *DataQualityReportUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the DataQualityReportCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DataQualityReportCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DataQualityReportUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
