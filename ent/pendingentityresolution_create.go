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
	"github.com/memograph/memograph/ent/pendingentityresolution"
)

// PendingEntityResolutionCreate is the builder for creating a PendingEntityResolution entity.
type PendingEntityResolutionCreate struct {
	config
	mutation *PendingEntityResolutionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetIdentifierType sets the "identifier_type" field.
func (_c *PendingEntityResolutionCreate) SetIdentifierType(v string) *PendingEntityResolutionCreate {
	_c.mutation.SetIdentifierType(v)
	return _c
}

// SetIdentifierValue sets the "identifier_value" field.
func (_c *PendingEntityResolutionCreate) SetIdentifierValue(v string) *PendingEntityResolutionCreate {
	_c.mutation.SetIdentifierValue(v)
	return _c
}

// SetDisplayName sets the "display_name" field.
func (_c *PendingEntityResolutionCreate) SetDisplayName(v string) *PendingEntityResolutionCreate {
	_c.mutation.SetDisplayName(v)
	return _c
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_c *PendingEntityResolutionCreate) SetNillableDisplayName(v *string) *PendingEntityResolutionCreate {
	if v != nil {
		_c.SetDisplayName(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *PendingEntityResolutionCreate) SetStatus(v pendingentityresolution.Status) *PendingEntityResolutionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PendingEntityResolutionCreate) SetNillableStatus(v *pendingentityresolution.Status) *PendingEntityResolutionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetResolution sets the "resolution" field.
func (_c *PendingEntityResolutionCreate) SetResolution(v pendingentityresolution.Resolution) *PendingEntityResolutionCreate {
	_c.mutation.SetResolution(v)
	return _c
}

// SetNillableResolution sets the "resolution" field if the given value is not nil.
func (_c *PendingEntityResolutionCreate) SetNillableResolution(v *pendingentityresolution.Resolution) *PendingEntityResolutionCreate {
	if v != nil {
		_c.SetResolution(*v)
	}
	return _c
}

// SetResolvedEntityID sets the "resolved_entity_id" field.
func (_c *PendingEntityResolutionCreate) SetResolvedEntityID(v string) *PendingEntityResolutionCreate {
	_c.mutation.SetResolvedEntityID(v)
	return _c
}

// SetNillableResolvedEntityID sets the "resolved_entity_id" field if the given value is not nil.
func (_c *PendingEntityResolutionCreate) SetNillableResolvedEntityID(v *string) *PendingEntityResolutionCreate {
	if v != nil {
		_c.SetResolvedEntityID(*v)
	}
	return _c
}

// SetSuggestions sets the "suggestions" field.
func (_c *PendingEntityResolutionCreate) SetSuggestions(v []map[string]interface{}) *PendingEntityResolutionCreate {
	_c.mutation.SetSuggestions(v)
	return _c
}

// SetSampleMessageIds sets the "sample_message_ids" field.
func (_c *PendingEntityResolutionCreate) SetSampleMessageIds(v []string) *PendingEntityResolutionCreate {
	_c.mutation.SetSampleMessageIds(v)
	return _c
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (_c *PendingEntityResolutionCreate) SetFirstSeenAt(v time.Time) *PendingEntityResolutionCreate {
	_c.mutation.SetFirstSeenAt(v)
	return _c
}

// SetNillableFirstSeenAt sets the "first_seen_at" field if the given value is not nil.
func (_c *PendingEntityResolutionCreate) SetNillableFirstSeenAt(v *time.Time) *PendingEntityResolutionCreate {
	if v != nil {
		_c.SetFirstSeenAt(*v)
	}
	return _c
}

// SetResolvedAt sets the "resolved_at" field.
func (_c *PendingEntityResolutionCreate) SetResolvedAt(v time.Time) *PendingEntityResolutionCreate {
	_c.mutation.SetResolvedAt(v)
	return _c
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_c *PendingEntityResolutionCreate) SetNillableResolvedAt(v *time.Time) *PendingEntityResolutionCreate {
	if v != nil {
		_c.SetResolvedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PendingEntityResolutionCreate) SetID(v string) *PendingEntityResolutionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PendingEntityResolutionMutation object of the builder.
func (_c *PendingEntityResolutionCreate) Mutation() *PendingEntityResolutionMutation {
	return _c.mutation
}

// Save creates the PendingEntityResolution in the database.
func (_c *PendingEntityResolutionCreate) Save(ctx context.Context) (*PendingEntityResolution, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PendingEntityResolutionCreate) SaveX(ctx context.Context) *PendingEntityResolution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PendingEntityResolutionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PendingEntityResolutionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PendingEntityResolutionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := pendingentityresolution.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.FirstSeenAt(); !ok {
		v := pendingentityresolution.DefaultFirstSeenAt()
		_c.mutation.SetFirstSeenAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PendingEntityResolutionCreate) check() error {
	if _, ok := _c.mutation.IdentifierType(); !ok {
		return &ValidationError{Name: "identifier_type", err: errors.New(`ent: missing required field "PendingEntityResolution.identifier_type"`)}
	}
	if _, ok := _c.mutation.IdentifierValue(); !ok {
		return &ValidationError{Name: "identifier_value", err: errors.New(`ent: missing required field "PendingEntityResolution.identifier_value"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PendingEntityResolution.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := pendingentityresolution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PendingEntityResolution.status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Resolution(); ok {
		if err := pendingentityresolution.ResolutionValidator(v); err != nil {
			return &ValidationError{Name: "resolution", err: fmt.Errorf(`ent: validator failed for field "PendingEntityResolution.resolution": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FirstSeenAt(); !ok {
		return &ValidationError{Name: "first_seen_at", err: errors.New(`ent: missing required field "PendingEntityResolution.first_seen_at"`)}
	}
	return nil
}

func (_c *PendingEntityResolutionCreate) sqlSave(ctx context.Context) (*PendingEntityResolution, error) {
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
			return nil, fmt.Errorf("unexpected PendingEntityResolution.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PendingEntityResolutionCreate) createSpec() (*PendingEntityResolution, *sqlgraph.CreateSpec) {
	var (
		_node = &PendingEntityResolution{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pendingentityresolution.Table, sqlgraph.NewFieldSpec(pendingentityresolution.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.IdentifierType(); ok {
		_spec.SetField(pendingentityresolution.FieldIdentifierType, field.TypeString, value)
		_node.IdentifierType = value
	}
	if value, ok := _c.mutation.IdentifierValue(); ok {
		_spec.SetField(pendingentityresolution.FieldIdentifierValue, field.TypeString, value)
		_node.IdentifierValue = value
	}
	if value, ok := _c.mutation.DisplayName(); ok {
		_spec.SetField(pendingentityresolution.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(pendingentityresolution.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Resolution(); ok {
		_spec.SetField(pendingentityresolution.FieldResolution, field.TypeEnum, value)
		_node.Resolution = &value
	}
	if value, ok := _c.mutation.ResolvedEntityID(); ok {
		_spec.SetField(pendingentityresolution.FieldResolvedEntityID, field.TypeString, value)
		_node.ResolvedEntityID = &value
	}
	if value, ok := _c.mutation.Suggestions(); ok {
		_spec.SetField(pendingentityresolution.FieldSuggestions, field.TypeJSON, value)
		_node.Suggestions = value
	}
	if value, ok := _c.mutation.SampleMessageIds(); ok {
		_spec.SetField(pendingentityresolution.FieldSampleMessageIds, field.TypeJSON, value)
		_node.SampleMessageIds = value
	}
	if value, ok := _c.mutation.FirstSeenAt(); ok {
		_spec.SetField(pendingentityresolution.FieldFirstSeenAt, field.TypeTime, value)
		_node.FirstSeenAt = value
	}
	if value, ok := _c.mutation.ResolvedAt(); ok {
		_spec.SetField(pendingentityresolution.FieldResolvedAt, field.TypeTime, value)
		_node.ResolvedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PendingEntityResolution.Create().
//		SetIdentifierType(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PendingEntityResolutionUpsert) {
//			SetIdentifierType(v+v).
//		}).
//		Exec(ctx)
func (_c *PendingEntityResolutionCreate) OnConflict(opts ...sql.ConflictOption) *PendingEntityResolutionUpsertOne {
	_c.conflict = opts
	return &PendingEntityResolutionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PendingEntityResolution.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PendingEntityResolutionCreate) OnConflictColumns(columns ...string) *PendingEntityResolutionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PendingEntityResolutionUpsertOne{
		create: _c,
	}
}

type (
	// PendingEntityResolutionUpsertOne is the builder for "upsert"-ing
	//  one PendingEntityResolution node.
	PendingEntityResolutionUpsertOne struct {
		create *PendingEntityResolutionCreate
	}

	// PendingEntityResolutionUpsert is the "OnConflict" setter.
	PendingEntityResolutionUpsert struct {
		*sql.UpdateSet
	}
)

// SetIdentifierType sets the "identifier_type" field.
func (u *PendingEntityResolutionUpsert) SetIdentifierType(v string) *PendingEntityResolutionUpsert {
	u.Set(pendingentityresolution.FieldIdentifierType, v)
	return u
}

// UpdateIdentifierType sets the "identifier_type" field to the value that was provided on create.
func (u *PendingEntityResolutionUpsert) UpdateIdentifierType() *PendingEntityResolutionUpsert {
	u.SetExcluded(pendingentityresolution.FieldIdentifierType)
	return u
}

// SetIdentifierValue sets the "identifier_value" field.
func (u *PendingEntityResolutionUpsert) SetIdentifierValue(v string) *PendingEntityResolutionUpsert {
	u.Set(pendingentityresolution.FieldIdentifierValue, v)
	return u
}

// UpdateIdentifierValue sets the "identifier_value" field to the value that was provided on create.
func (u *PendingEntityResolutionUpsert) UpdateIdentifierValue() *PendingEntityResolutionUpsert {
	u.SetExcluded(pendingentityresolution.FieldIdentifierValue)
	return u
}

// SetDisplayName sets the "display_name" field.
func (u *PendingEntityResolutionUpsert) SetDisplayName(v string) *PendingEntityResolutionUpsert {
	u.Set(pendingentityresolution.FieldDisplayName, v)
	return u
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *PendingEntityResolutionUpsert) UpdateDisplayName() *PendingEntityResolutionUpsert {
	u.SetExcluded(pendingentityresolution.FieldDisplayName)
	return u
}

// ClearDisplayName clears the value of the "display_name" field.
func (u *PendingEntityResolutionUpsert) ClearDisplayName() *PendingEntityResolutionUpsert {
	u.SetNull(pendingentityresolution.FieldDisplayName)
	return u
}

// SetStatus sets the "status" field.
func (u *PendingEntityResolutionUpsert) SetStatus(v pendingentityresolution.Status) *PendingEntityResolutionUpsert {
	u.Set(pendingentityresolution.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PendingEntityResolutionUpsert) UpdateStatus() *PendingEntityResolutionUpsert {
	u.SetExcluded(pendingentityresolution.FieldStatus)
	return u
}

// SetResolution sets the "resolution" field.
func (u *PendingEntityResolutionUpsert) SetResolution(v pendingentityresolution.Resolution) *PendingEntityResolutionUpsert {
	u.Set(pendingentityresolution.FieldResolution, v)
	return u
}

// UpdateResolution sets the "resolution" field to the value that was provided on create.
func (u *PendingEntityResolutionUpsert) UpdateResolution() *PendingEntityResolutionUpsert {
	u.SetExcluded(pendingentityresolution.FieldResolution)
	return u
}

// ClearResolution clears the value of the "resolution" field.
func (u *PendingEntityResolutionUpsert) ClearResolution() *PendingEntityResolutionUpsert {
	u.SetNull(pendingentityresolution.FieldResolution)
	return u
}

// SetResolvedEntityID sets the "resolved_entity_id" field.
func (u *PendingEntityResolutionUpsert) SetResolvedEntityID(v string) *PendingEntityResolutionUpsert {
	u.Set(pendingentityresolution.FieldResolvedEntityID, v)
	return u
}

// UpdateResolvedEntityID sets the "resolved_entity_id" field to the value that was provided on create.
func (u *PendingEntityResolutionUpsert) UpdateResolvedEntityID() *PendingEntityResolutionUpsert {
	u.SetExcluded(pendingentityresolution.FieldResolvedEntityID)
	return u
}

// ClearResolvedEntityID clears the value of the "resolved_entity_id" field.
func (u *PendingEntityResolutionUpsert) ClearResolvedEntityID() *PendingEntityResolutionUpsert {
	u.SetNull(pendingentityresolution.FieldResolvedEntityID)
	return u
}

// SetSuggestions sets the "suggestions" field.
func (u *PendingEntityResolutionUpsert) SetSuggestions(v []map[string]interface{}) *PendingEntityResolutionUpsert {
	u.Set(pendingentityresolution.FieldSuggestions, v)
	return u
}

// UpdateSuggestions sets the "suggestions" field to the value that was provided on create.
func (u *PendingEntityResolutionUpsert) UpdateSuggestions() *PendingEntityResolutionUpsert {
	u.SetExcluded(pendingentityresolution.FieldSuggestions)
	return u
}

// ClearSuggestions clears the value of the "suggestions" field.
func (u *PendingEntityResolutionUpsert) ClearSuggestions() *PendingEntityResolutionUpsert {
	u.SetNull(pendingentityresolution.FieldSuggestions)
	return u
}

// SetSampleMessageIds sets the "sample_message_ids" field.
func (u *PendingEntityResolutionUpsert) SetSampleMessageIds(v []string) *PendingEntityResolutionUpsert {
	u.Set(pendingentityresolution.FieldSampleMessageIds, v)
	return u
}

// UpdateSampleMessageIds sets the "sample_message_ids" field to the value that was provided on create.
func (u *PendingEntityResolutionUpsert) UpdateSampleMessageIds() *PendingEntityResolutionUpsert {
	u.SetExcluded(pendingentityresolution.FieldSampleMessageIds)
	return u
}

// ClearSampleMessageIds clears the value of the "sample_message_ids" field.
func (u *PendingEntityResolutionUpsert) ClearSampleMessageIds() *PendingEntityResolutionUpsert {
	u.SetNull(pendingentityresolution.FieldSampleMessageIds)
	return u
}

// SetResolvedAt sets the "resolved_at" field.
func (u *PendingEntityResolutionUpsert) SetResolvedAt(v time.Time) *PendingEntityResolutionUpsert {
	u.Set(pendingentityresolution.FieldResolvedAt, v)
	return u
}

// UpdateResolvedAt sets the "resolved_at" field to the value that was provided on create.
func (u *PendingEntityResolutionUpsert) UpdateResolvedAt() *PendingEntityResolutionUpsert {
	u.SetExcluded(pendingentityresolution.FieldResolvedAt)
	return u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (u *PendingEntityResolutionUpsert) ClearResolvedAt() *PendingEntityResolutionUpsert {
	u.SetNull(pendingentityresolution.FieldResolvedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PendingEntityResolution.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(pendingentityresolution.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PendingEntityResolutionUpsertOne) UpdateNewValues() *PendingEntityResolutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(pendingentityresolution.FieldID)
		}
		if _, exists := u.create.mutation.FirstSeenAt(); exists {
			s.SetIgnore(pendingentityresolution.FieldFirstSeenAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PendingEntityResolution.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PendingEntityResolutionUpsertOne) Ignore() *PendingEntityResolutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PendingEntityResolutionUpsertOne) DoNothing() *PendingEntityResolutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PendingEntityResolutionCreate.OnConflict
// documentation for more info.
func (u *PendingEntityResolutionUpsertOne) Update(set func(*PendingEntityResolutionUpsert)) *PendingEntityResolutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PendingEntityResolutionUpsert{UpdateSet: update})
	}))
	return u
}

// SetIdentifierType sets the "identifier_type" field.
func (u *PendingEntityResolutionUpsertOne) SetIdentifierType(v string) *PendingEntityResolutionUpsertOne {
	return u.Update(func(s *PendingEntityResolutionUpsert) {
		s.SetIdentifierType(v)
	})
}

// UpdateIdentifierType sets the "identifier_type" field to the value that was provided on create.
func (u *PendingEntityResolutionUpsertOne) UpdateIdentifierType() *PendingEntityResolutionUpsertOne {
	return u.Update(func(s *PendingEntityResolutionUpsert) {
		s.UpdateIdentifierType()
	})
}

// SetIdentifierValue sets the "identifier_value" field.
func (u *PendingEntityResolutionUpsertOne) SetIdentifierValue(v string) *PendingEntityResolutionUpsertOne {
	return u.Update(func(s *PendingEntityResolutionUpsert) {
		s.SetIdentifierValue(v)
	})
}

// UpdateIdentifierValue sets the "identifier_value" field to the value that was provided on create.
func (u *PendingEntityResolutionUpsertOne) UpdateIdentifierValue() *PendingEntityResolutionUpsertOne {
	return u.Update(func(s *PendingEntityResolutionUpsert) {
		s.UpdateIdentifierValue()
	})
}

// SetDisplayName sets the "display_name" field.
func (u *PendingEntityResolutionUpsertOne) SetDisplayName(v string) *PendingEntityResolutionUpsertOne {
	return u.Update(func(s *PendingEntityResolutionUpsert) {
		s.SetDisplayName(v)
	})
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *PendingEntityResolutionUpsertOne) UpdateDisplayName() *PendingEntityResolutionUpsertOne {
	return u.Update(func(s *PendingEntityResolutionUpsert) {
		s.UpdateDisplayName()
	})
}

// ClearDisplayName clears the value of the "display_name" field.
func (u *PendingEntityResolutionUpsertOne) ClearDisplayName() *PendingEntityResolutionUpsertOne {
	return u.Update(func(s *PendingEntityResolutionUpsert) {
		s.ClearDisplayName()
	})
}

// SetStatus sets the "status" field.
func (u *PendingEntityResolutionUpsertOne) SetStatus(v pendingentityresolution.Status) *PendingEntityResolutionUpsertOne {
	return u.Update(func(s *PendingEntityResolutionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PendingEntityResolutionUpsertOne) UpdateStatus() *PendingEntityResolutionUpsertOne {
	return u.Update(func(s *PendingEntityResolutionUpsert) {
		s.UpdateStatus()
	})
}

// SetResolution sets the "resolution" field.
func (u *PendingEntityResolutionUpsertOne) SetResolution(v pendingentityresolution.Resolution) *PendingEntityResolutionUpsertOne {
	return u.Update(func(s *PendingEntityResolutionUpsert) {
		s.SetResolution(v)
	})
}

// UpdateResolution sets the "resolution" field to the value that was provided on create.
func (u *PendingEntityResolutionUpsertOne) UpdateResolution() *PendingEntityResolutionUpsertOne {
	return u.Update(func(s *PendingEntityResolutionUpsert) {
		s.UpdateResolution()
	})
}

// ClearResolution clears the value of the "resolution" field.
func (u *PendingEntityResolutionUpsertOne) ClearResolution() *PendingEntityResolutionUpsertOne {
	return u.Update(func(s *PendingEntityResolutionUpsert) {
		s.ClearResolution()
	})
}

// SetResolvedEntityID sets the "resolved_entity_id" field.
func (u *PendingEntityResolutionUpsertOne) SetResolvedEntityID(v string) *PendingEntityResolutionUpsertOne {
	return u.Update(func(s *PendingEntityResolutionUpsert) {
		s.SetResolvedEntityID(v)
	})
}

// UpdateResolvedEntityID sets the "resolved_entity_id" field to the value that was provided on create.
func (u *PendingEntityResolutionUpsertOne) UpdateResolvedEntityID() *PendingEntityResolutionUpsertOne {
	return u.Update(func(s *PendingEntityResolutionUpsert) {
		s.UpdateResolvedEntityID()
	})
}

// ClearResolvedEntityID clears the value of the "resolved_entity_id" field.
func (u *PendingEntityResolutionUpsertOne) ClearResolvedEntityID() *PendingEntityResolutionUpsertOne {
	return u.Update(func(s *PendingEntityResolutionUpsert) {
		s.ClearResolvedEntityID()
	})
}

// SetSuggestions sets the "suggestions" field.
func (u *PendingEntityResolutionUpsertOne) SetSuggestions(v []map[string]interface{}) *PendingEntityResolutionUpsertOne {
	return u.Update(func(s *PendingEntityResolutionUpsert) {
		s.SetSuggestions(v)
	})
}

// UpdateSuggestions sets the "suggestions" field to the value that was provided on create.
func (u *PendingEntityResolutionUpsertOne) UpdateSuggestions() *PendingEntityResolutionUpsertOne {
	return u.Update(func(s *PendingEntityResolutionUpsert) {
		s.UpdateSuggestions()
	})
}

// ClearSuggestions clears the value of the "suggestions" field.
func (u *PendingEntityResolutionUpsertOne) ClearSuggestions() *PendingEntityResolutionUpsertOne {
	return u.Update(func(s *PendingEntityResolutionUpsert) {
		s.ClearSuggestions()
	})
}

// SetSampleMessageIds sets the "sample_message_ids" field.
func (u *PendingEntityResolutionUpsertOne) SetSampleMessageIds(v []string) *PendingEntityResolutionUpsertOne {
	return u.Update(func(s *PendingEntityResolutionUpsert) {
		s.SetSampleMessageIds(v)
	})
}

// UpdateSampleMessageIds sets the "sample_message_ids" field to the value that was provided on create.
func (u *PendingEntityResolutionUpsertOne) UpdateSampleMessageIds() *PendingEntityResolutionUpsertOne {
	return u.Update(func(s *PendingEntityResolutionUpsert) {
		s.UpdateSampleMessageIds()
	})
}

// ClearSampleMessageIds clears the value of the "sample_message_ids" field.
func (u *PendingEntityResolutionUpsertOne) ClearSampleMessageIds() *PendingEntityResolutionUpsertOne {
	return u.Update(func(s *PendingEntityResolutionUpsert) {
		s.ClearSampleMessageIds()
	})
}

// SetResolvedAt sets the "resolved_at" field.
func (u *PendingEntityResolutionUpsertOne) SetResolvedAt(v time.Time) *PendingEntityResolutionUpsertOne {
	return u.Update(func(s *PendingEntityResolutionUpsert) {
		s.SetResolvedAt(v)
	})
}

// UpdateResolvedAt sets the "resolved_at" field to the value that was provided on create.
func (u *PendingEntityResolutionUpsertOne) UpdateResolvedAt() *PendingEntityResolutionUpsertOne {
	return u.Update(func(s *PendingEntityResolutionUpsert) {
		s.UpdateResolvedAt()
	})
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (u *PendingEntityResolutionUpsertOne) ClearResolvedAt() *PendingEntityResolutionUpsertOne {
	return u.Update(func(s *PendingEntityResolutionUpsert) {
		s.ClearResolvedAt()
	})
}

// Exec executes the query.
func (u *PendingEntityResolutionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PendingEntityResolutionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PendingEntityResolutionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PendingEntityResolutionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PendingEntityResolutionUpsertOne.ID is not supported by MySQL driver. Use PendingEntityResolutionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PendingEntityResolutionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PendingEntityResolutionCreateBulk is the builder for creating many PendingEntityResolution entities in bulk.
type PendingEntityResolutionCreateBulk struct {
	config
	err      error
	builders []*PendingEntityResolutionCreate
	conflict []sql.ConflictOption
}

// Save creates the PendingEntityResolution entities in the database.
func (_c *PendingEntityResolutionCreateBulk) Save(ctx context.Context) ([]*PendingEntityResolution, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PendingEntityResolution, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PendingEntityResolutionMutation)
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
func (_c *PendingEntityResolutionCreateBulk) SaveX(ctx context.Context) []*PendingEntityResolution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PendingEntityResolutionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PendingEntityResolutionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PendingEntityResolution.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PendingEntityResolutionUpsert) {
//			SetIdentifierType(v+v).
//		}).
//		Exec(ctx)
func (_c *PendingEntityResolutionCreateBulk) OnConflict(opts ...sql.ConflictOption) *PendingEntityResolutionUpsertBulk {
	_c.conflict = opts
	return &PendingEntityResolutionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PendingEntityResolution.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PendingEntityResolutionCreateBulk) OnConflictColumns(columns ...string) *PendingEntityResolutionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PendingEntityResolutionUpsertBulk{
		create: _c,
	}
}

// PendingEntityResolutionUpsertBulk is the builder for "upsert"-ing
// a bulk of PendingEntityResolution nodes.
type PendingEntityResolutionUpsertBulk struct {
	create *PendingEntityResolutionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PendingEntityResolution.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(pendingentityresolution.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PendingEntityResolutionUpsertBulk) UpdateNewValues() *PendingEntityResolutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(pendingentityresolution.FieldID)
			}
			if _, exists := b.mutation.FirstSeenAt(); exists {
				s.SetIgnore(pendingentityresolution.FieldFirstSeenAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PendingEntityResolution.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PendingEntityResolutionUpsertBulk) Ignore() *PendingEntityResolutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PendingEntityResolutionUpsertBulk) DoNothing() *PendingEntityResolutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PendingEntityResolutionCreateBulk.OnConflict
// documentation for more info.
func (u *PendingEntityResolutionUpsertBulk) Update(set func(*PendingEntityResolutionUpsert)) *PendingEntityResolutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PendingEntityResolutionUpsert{UpdateSet: update})
	}))
	return u
}

// SetIdentifierType sets the "identifier_type" field.
func (u *PendingEntityResolutionUpsertBulk) SetIdentifierType(v string) *PendingEntityResolutionUpsertBulk {
	return u.Update(func(s *PendingEntityResolutionUpsert) {
		s.SetIdentifierType(v)
	})
}

// UpdateIdentifierType sets the "identifier_type" field to the value that was provided on create.
func (u *PendingEntityResolutionUpsertBulk) UpdateIdentifierType() *PendingEntityResolutionUpsertBulk {
	return u.Update(func(s *PendingEntityResolutionUpsert) {
		s.UpdateIdentifierType()
	})
}

// SetIdentifierValue sets the "identifier_value" field.
func (u *PendingEntityResolutionUpsertBulk) SetIdentifierValue(v string) *PendingEntityResolutionUpsertBulk {
	return u.Update(func(s *PendingEntityResolutionUpsert) {
		s.SetIdentifierValue(v)
	})
}

// UpdateIdentifierValue sets the "identifier_value" field to the value that was provided on create.
func (u *PendingEntityResolutionUpsertBulk) UpdateIdentifierValue() *PendingEntityResolutionUpsertBulk {
	return u.Update(func(s *PendingEntityResolutionUpsert) {
		s.UpdateIdentifierValue()
	})
}

// SetDisplayName sets the "display_name" field.
func (u *PendingEntityResolutionUpsertBulk) SetDisplayName(v string) *PendingEntityResolutionUpsertBulk {
	return u.Update(func(s *PendingEntityResolutionUpsert) {
		s.SetDisplayName(v)
	})
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *PendingEntityResolutionUpsertBulk) UpdateDisplayName() *PendingEntityResolutionUpsertBulk {
	return u.Update(func(s *PendingEntityResolutionUpsert) {
		s.UpdateDisplayName()
	})
}

// ClearDisplayName clears the value of the "display_name" field.
func (u *PendingEntityResolutionUpsertBulk) ClearDisplayName() *PendingEntityResolutionUpsertBulk {
	return u.Update(func(s *PendingEntityResolutionUpsert) {
		s.ClearDisplayName()
	})
}

// SetStatus sets the "status" field.
func (u *PendingEntityResolutionUpsertBulk) SetStatus(v pendingentityresolution.Status) *PendingEntityResolutionUpsertBulk {
	return u.Update(func(s *PendingEntityResolutionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PendingEntityResolutionUpsertBulk) UpdateStatus() *PendingEntityResolutionUpsertBulk {
	return u.Update(func(s *PendingEntityResolutionUpsert) {
		s.UpdateStatus()
	})
}

// SetResolution sets the "resolution" field.
func (u *PendingEntityResolutionUpsertBulk) SetResolution(v pendingentityresolution.Resolution) *PendingEntityResolutionUpsertBulk {
	return u.Update(func(s *PendingEntityResolutionUpsert) {
		s.SetResolution(v)
	})
}

// UpdateResolution sets the "resolution" field to the value that was provided on create.
func (u *PendingEntityResolutionUpsertBulk) UpdateResolution() *PendingEntityResolutionUpsertBulk {
	return u.Update(func(s *PendingEntityResolutionUpsert) {
		s.UpdateResolution()
	})
}

// ClearResolution clears the value of the "resolution" field.
func (u *PendingEntityResolutionUpsertBulk) ClearResolution() *PendingEntityResolutionUpsertBulk {
	return u.Update(func(s *PendingEntityResolutionUpsert) {
		s.ClearResolution()
	})
}

// SetResolvedEntityID sets the "resolved_entity_id" field.
func (u *PendingEntityResolutionUpsertBulk) SetResolvedEntityID(v string) *PendingEntityResolutionUpsertBulk {
	return u.Update(func(s *PendingEntityResolutionUpsert) {
		s.SetResolvedEntityID(v)
	})
}

// UpdateResolvedEntityID sets the "resolved_entity_id" field to the value that was provided on create.
func (u *PendingEntityResolutionUpsertBulk) UpdateResolvedEntityID() *PendingEntityResolutionUpsertBulk {
	return u.Update(func(s *PendingEntityResolutionUpsert) {
		s.UpdateResolvedEntityID()
	})
}

// ClearResolvedEntityID clears the value of the "resolved_entity_id" field.
func (u *PendingEntityResolutionUpsertBulk) ClearResolvedEntityID() *PendingEntityResolutionUpsertBulk {
	return u.Update(func(s *PendingEntityResolutionUpsert) {
		s.ClearResolvedEntityID()
	})
}

// SetSuggestions sets the "suggestions" field.
func (u *PendingEntityResolutionUpsertBulk) SetSuggestions(v []map[string]interface{}) *PendingEntityResolutionUpsertBulk {
	return u.Update(func(s *PendingEntityResolutionUpsert) {
		s.SetSuggestions(v)
	})
}

// UpdateSuggestions sets the "suggestions" field to the value that was provided on create.
func (u *PendingEntityResolutionUpsertBulk) UpdateSuggestions() *PendingEntityResolutionUpsertBulk {
	return u.Update(func(s *PendingEntityResolutionUpsert) {
		s.UpdateSuggestions()
	})
}

// ClearSuggestions clears the value of the "suggestions" field.
func (u *PendingEntityResolutionUpsertBulk) ClearSuggestions() *PendingEntityResolutionUpsertBulk {
	return u.Update(func(s *PendingEntityResolutionUpsert) {
		s.ClearSuggestions()
	})
}

// SetSampleMessageIds sets the "sample_message_ids" field.
func (u *PendingEntityResolutionUpsertBulk) SetSampleMessageIds(v []string) *PendingEntityResolutionUpsertBulk {
	return u.Update(func(s *PendingEntityResolutionUpsert) {
		s.SetSampleMessageIds(v)
	})
}

// UpdateSampleMessageIds sets the "sample_message_ids" field to the value that was provided on create.
func (u *PendingEntityResolutionUpsertBulk) UpdateSampleMessageIds() *PendingEntityResolutionUpsertBulk {
	return u.Update(func(s *PendingEntityResolutionUpsert) {
		s.UpdateSampleMessageIds()
	})
}

// ClearSampleMessageIds clears the value of the "sample_message_ids" field.
func (u *PendingEntityResolutionUpsertBulk) ClearSampleMessageIds() *PendingEntityResolutionUpsertBulk {
	return u.Update(func(s *PendingEntityResolutionUpsert) {
		s.ClearSampleMessageIds()
	})
}

// SetResolvedAt sets the "resolved_at" field.
func (u *PendingEntityResolutionUpsertBulk) SetResolvedAt(v time.Time) *PendingEntityResolutionUpsertBulk {
	return u.Update(func(s *PendingEntityResolutionUpsert) {
		s.SetResolvedAt(v)
	})
}

// UpdateResolvedAt sets the "resolved_at" field to the value that was provided on create.
func (u *PendingEntityResolutionUpsertBulk) UpdateResolvedAt() *PendingEntityResolutionUpsertBulk {
	return u.Update(func(s *PendingEntityResolutionUpsert) {
		s.UpdateResolvedAt()
	})
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (u *PendingEntityResolutionUpsertBulk) ClearResolvedAt() *PendingEntityResolutionUpsertBulk {
	return u.Update(func(s *PendingEntityResolutionUpsert) {
		s.ClearResolvedAt()
	})
}

// Exec executes the query.
func (u *PendingEntityResolutionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PendingEntityResolutionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PendingEntityResolutionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PendingEntityResolutionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
