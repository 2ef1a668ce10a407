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
	"github.com/memograph/memograph/ent/pendingapproval"
)

// PendingApprovalCreate is the builder for creating a PendingApproval entity.
type PendingApprovalCreate struct {
	config
	mutation *PendingApprovalMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetItemType sets the "item_type" field.
func (_c *PendingApprovalCreate) SetItemType(v pendingapproval.ItemType) *PendingApprovalCreate {
	_c.mutation.SetItemType(v)
	return _c
}

// SetTargetID sets the "target_id" field.
func (_c *PendingApprovalCreate) SetTargetID(v string) *PendingApprovalCreate {
	_c.mutation.SetTargetID(v)
	return _c
}

// SetBatchID sets the "batch_id" field.
func (_c *PendingApprovalCreate) SetBatchID(v string) *PendingApprovalCreate {
	_c.mutation.SetBatchID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *PendingApprovalCreate) SetStatus(v pendingapproval.Status) *PendingApprovalCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PendingApprovalCreate) SetNillableStatus(v *pendingapproval.Status) *PendingApprovalCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *PendingApprovalCreate) SetConfidence(v float64) *PendingApprovalCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *PendingApprovalCreate) SetNillableConfidence(v *float64) *PendingApprovalCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetSourceQuote sets the "source_quote" field.
func (_c *PendingApprovalCreate) SetSourceQuote(v string) *PendingApprovalCreate {
	_c.mutation.SetSourceQuote(v)
	return _c
}

// SetNillableSourceQuote sets the "source_quote" field if the given value is not nil.
func (_c *PendingApprovalCreate) SetNillableSourceQuote(v *string) *PendingApprovalCreate {
	if v != nil {
		_c.SetSourceQuote(*v)
	}
	return _c
}

// SetSourceInteractionID sets the "source_interaction_id" field.
func (_c *PendingApprovalCreate) SetSourceInteractionID(v string) *PendingApprovalCreate {
	_c.mutation.SetSourceInteractionID(v)
	return _c
}

// SetNillableSourceInteractionID sets the "source_interaction_id" field if the given value is not nil.
func (_c *PendingApprovalCreate) SetNillableSourceInteractionID(v *string) *PendingApprovalCreate {
	if v != nil {
		_c.SetSourceInteractionID(*v)
	}
	return _c
}

// SetSourceEntityID sets the "source_entity_id" field.
func (_c *PendingApprovalCreate) SetSourceEntityID(v string) *PendingApprovalCreate {
	_c.mutation.SetSourceEntityID(v)
	return _c
}

// SetNillableSourceEntityID sets the "source_entity_id" field if the given value is not nil.
func (_c *PendingApprovalCreate) SetNillableSourceEntityID(v *string) *PendingApprovalCreate {
	if v != nil {
		_c.SetSourceEntityID(*v)
	}
	return _c
}

// SetContext sets the "context" field.
func (_c *PendingApprovalCreate) SetContext(v string) *PendingApprovalCreate {
	_c.mutation.SetContext(v)
	return _c
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (_c *PendingApprovalCreate) SetNillableContext(v *string) *PendingApprovalCreate {
	if v != nil {
		_c.SetContext(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PendingApprovalCreate) SetCreatedAt(v time.Time) *PendingApprovalCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PendingApprovalCreate) SetNillableCreatedAt(v *time.Time) *PendingApprovalCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetReviewedAt sets the "reviewed_at" field.
func (_c *PendingApprovalCreate) SetReviewedAt(v time.Time) *PendingApprovalCreate {
	_c.mutation.SetReviewedAt(v)
	return _c
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_c *PendingApprovalCreate) SetNillableReviewedAt(v *time.Time) *PendingApprovalCreate {
	if v != nil {
		_c.SetReviewedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PendingApprovalCreate) SetID(v string) *PendingApprovalCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PendingApprovalMutation object of the builder.
func (_c *PendingApprovalCreate) Mutation() *PendingApprovalMutation {
	return _c.mutation
}

// Save creates the PendingApproval in the database.
func (_c *PendingApprovalCreate) Save(ctx context.Context) (*PendingApproval, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PendingApprovalCreate) SaveX(ctx context.Context) *PendingApproval {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PendingApprovalCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PendingApprovalCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PendingApprovalCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := pendingapproval.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		v := pendingapproval.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pendingapproval.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PendingApprovalCreate) check() error {
	if _, ok := _c.mutation.ItemType(); !ok {
		return &ValidationError{Name: "item_type", err: errors.New(`ent: missing required field "PendingApproval.item_type"`)}
	}
	if v, ok := _c.mutation.ItemType(); ok {
		if err := pendingapproval.ItemTypeValidator(v); err != nil {
			return &ValidationError{Name: "item_type", err: fmt.Errorf(`ent: validator failed for field "PendingApproval.item_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TargetID(); !ok {
		return &ValidationError{Name: "target_id", err: errors.New(`ent: missing required field "PendingApproval.target_id"`)}
	}
	if _, ok := _c.mutation.BatchID(); !ok {
		return &ValidationError{Name: "batch_id", err: errors.New(`ent: missing required field "PendingApproval.batch_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PendingApproval.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := pendingapproval.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PendingApproval.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "PendingApproval.confidence"`)}
	}
	if v, ok := _c.mutation.Confidence(); ok {
		if err := pendingapproval.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "PendingApproval.confidence": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PendingApproval.created_at"`)}
	}
	return nil
}

func (_c *PendingApprovalCreate) sqlSave(ctx context.Context) (*PendingApproval, error) {
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
			return nil, fmt.Errorf("unexpected PendingApproval.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PendingApprovalCreate) createSpec() (*PendingApproval, *sqlgraph.CreateSpec) {
	var (
		_node = &PendingApproval{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pendingapproval.Table, sqlgraph.NewFieldSpec(pendingapproval.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ItemType(); ok {
		_spec.SetField(pendingapproval.FieldItemType, field.TypeEnum, value)
		_node.ItemType = value
	}
	if value, ok := _c.mutation.TargetID(); ok {
		_spec.SetField(pendingapproval.FieldTargetID, field.TypeString, value)
		_node.TargetID = value
	}
	if value, ok := _c.mutation.BatchID(); ok {
		_spec.SetField(pendingapproval.FieldBatchID, field.TypeString, value)
		_node.BatchID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(pendingapproval.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(pendingapproval.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.SourceQuote(); ok {
		_spec.SetField(pendingapproval.FieldSourceQuote, field.TypeString, value)
		_node.SourceQuote = value
	}
	if value, ok := _c.mutation.SourceInteractionID(); ok {
		_spec.SetField(pendingapproval.FieldSourceInteractionID, field.TypeString, value)
		_node.SourceInteractionID = &value
	}
	if value, ok := _c.mutation.SourceEntityID(); ok {
		_spec.SetField(pendingapproval.FieldSourceEntityID, field.TypeString, value)
		_node.SourceEntityID = &value
	}
	if value, ok := _c.mutation.Context(); ok {
		_spec.SetField(pendingapproval.FieldContext, field.TypeString, value)
		_node.Context = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pendingapproval.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ReviewedAt(); ok {
		_spec.SetField(pendingapproval.FieldReviewedAt, field.TypeTime, value)
		_node.ReviewedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PendingApproval.Create().
//		SetItemType(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PendingApprovalUpsert) {
//			SetItemType(v+v).
//		}).
//		Exec(ctx)
func (_c *PendingApprovalCreate) OnConflict(opts ...sql.ConflictOption) *PendingApprovalUpsertOne {
	_c.conflict = opts
	return &PendingApprovalUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PendingApproval.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PendingApprovalCreate) OnConflictColumns(columns ...string) *PendingApprovalUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PendingApprovalUpsertOne{
		create: _c,
	}
}

type (
	// PendingApprovalUpsertOne is the builder for "upsert"-ing
	//  one PendingApproval node.
	PendingApprovalUpsertOne struct {
		create *PendingApprovalCreate
	}

	// PendingApprovalUpsert is the "OnConflict" setter.
	PendingApprovalUpsert struct {
		*sql.UpdateSet
	}
)

// SetItemType sets the "item_type" field.
func (u *PendingApprovalUpsert) SetItemType(v pendingapproval.ItemType) *PendingApprovalUpsert {
	u.Set(pendingapproval.FieldItemType, v)
	return u
}

// UpdateItemType sets the "item_type" field to the value that was provided on create.
func (u *PendingApprovalUpsert) UpdateItemType() *PendingApprovalUpsert {
	u.SetExcluded(pendingapproval.FieldItemType)
	return u
}

// SetTargetID sets the "target_id" field.
func (u *PendingApprovalUpsert) SetTargetID(v string) *PendingApprovalUpsert {
	u.Set(pendingapproval.FieldTargetID, v)
	return u
}

// UpdateTargetID sets the "target_id" field to the value that was provided on create.
func (u *PendingApprovalUpsert) UpdateTargetID() *PendingApprovalUpsert {
	u.SetExcluded(pendingapproval.FieldTargetID)
	return u
}

// SetBatchID sets the "batch_id" field.
func (u *PendingApprovalUpsert) SetBatchID(v string) *PendingApprovalUpsert {
	u.Set(pendingapproval.FieldBatchID, v)
	return u
}

// UpdateBatchID sets the "batch_id" field to the value that was provided on create.
func (u *PendingApprovalUpsert) UpdateBatchID() *PendingApprovalUpsert {
	u.SetExcluded(pendingapproval.FieldBatchID)
	return u
}

// SetStatus sets the "status" field.
func (u *PendingApprovalUpsert) SetStatus(v pendingapproval.Status) *PendingApprovalUpsert {
	u.Set(pendingapproval.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PendingApprovalUpsert) UpdateStatus() *PendingApprovalUpsert {
	u.SetExcluded(pendingapproval.FieldStatus)
	return u
}

// SetConfidence sets the "confidence" field.
func (u *PendingApprovalUpsert) SetConfidence(v float64) *PendingApprovalUpsert {
	u.Set(pendingapproval.FieldConfidence, v)
	return u
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *PendingApprovalUpsert) UpdateConfidence() *PendingApprovalUpsert {
	u.SetExcluded(pendingapproval.FieldConfidence)
	return u
}

// AddConfidence adds v to the "confidence" field.
func (u *PendingApprovalUpsert) AddConfidence(v float64) *PendingApprovalUpsert {
	u.Add(pendingapproval.FieldConfidence, v)
	return u
}

// SetSourceQuote sets the "source_quote" field.
func (u *PendingApprovalUpsert) SetSourceQuote(v string) *PendingApprovalUpsert {
	u.Set(pendingapproval.FieldSourceQuote, v)
	return u
}

// UpdateSourceQuote sets the "source_quote" field to the value that was provided on create.
func (u *PendingApprovalUpsert) UpdateSourceQuote() *PendingApprovalUpsert {
	u.SetExcluded(pendingapproval.FieldSourceQuote)
	return u
}

// ClearSourceQuote clears the value of the "source_quote" field.
func (u *PendingApprovalUpsert) ClearSourceQuote() *PendingApprovalUpsert {
	u.SetNull(pendingapproval.FieldSourceQuote)
	return u
}

// SetSourceInteractionID sets the "source_interaction_id" field.
func (u *PendingApprovalUpsert) SetSourceInteractionID(v string) *PendingApprovalUpsert {
	u.Set(pendingapproval.FieldSourceInteractionID, v)
	return u
}

// UpdateSourceInteractionID sets the "source_interaction_id" field to the value that was provided on create.
func (u *PendingApprovalUpsert) UpdateSourceInteractionID() *PendingApprovalUpsert {
	u.SetExcluded(pendingapproval.FieldSourceInteractionID)
	return u
}

// ClearSourceInteractionID clears the value of the "source_interaction_id" field.
func (u *PendingApprovalUpsert) ClearSourceInteractionID() *PendingApprovalUpsert {
	u.SetNull(pendingapproval.FieldSourceInteractionID)
	return u
}

// SetSourceEntityID sets the "source_entity_id" field.
func (u *PendingApprovalUpsert) SetSourceEntityID(v string) *PendingApprovalUpsert {
	u.Set(pendingapproval.FieldSourceEntityID, v)
	return u
}

// UpdateSourceEntityID sets the "source_entity_id" field to the value that was provided on create.
func (u *PendingApprovalUpsert) UpdateSourceEntityID() *PendingApprovalUpsert {
	u.SetExcluded(pendingapproval.FieldSourceEntityID)
	return u
}

// ClearSourceEntityID clears the value of the "source_entity_id" field.
func (u *PendingApprovalUpsert) ClearSourceEntityID() *PendingApprovalUpsert {
	u.SetNull(pendingapproval.FieldSourceEntityID)
	return u
}

// SetContext sets the "context" field.
func (u *PendingApprovalUpsert) SetContext(v string) *PendingApprovalUpsert {
	u.Set(pendingapproval.FieldContext, v)
	return u
}

// UpdateContext sets the "context" field to the value that was provided on create.
func (u *PendingApprovalUpsert) UpdateContext() *PendingApprovalUpsert {
	u.SetExcluded(pendingapproval.FieldContext)
	return u
}

// ClearContext clears the value of the "context" field.
func (u *PendingApprovalUpsert) ClearContext() *PendingApprovalUpsert {
	u.SetNull(pendingapproval.FieldContext)
	return u
}

// SetReviewedAt sets the "reviewed_at" field.
func (u *PendingApprovalUpsert) SetReviewedAt(v time.Time) *PendingApprovalUpsert {
	u.Set(pendingapproval.FieldReviewedAt, v)
	return u
}

// UpdateReviewedAt sets the "reviewed_at" field to the value that was provided on create.
func (u *PendingApprovalUpsert) UpdateReviewedAt() *PendingApprovalUpsert {
	u.SetExcluded(pendingapproval.FieldReviewedAt)
	return u
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (u *PendingApprovalUpsert) ClearReviewedAt() *PendingApprovalUpsert {
	u.SetNull(pendingapproval.FieldReviewedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PendingApproval.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(pendingapproval.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PendingApprovalUpsertOne) UpdateNewValues() *PendingApprovalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(pendingapproval.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(pendingapproval.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PendingApproval.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PendingApprovalUpsertOne) Ignore() *PendingApprovalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PendingApprovalUpsertOne) DoNothing() *PendingApprovalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PendingApprovalCreate.OnConflict
// documentation for more info.
func (u *PendingApprovalUpsertOne) Update(set func(*PendingApprovalUpsert)) *PendingApprovalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PendingApprovalUpsert{UpdateSet: update})
	}))
	return u
}

// SetItemType sets the "item_type" field.
func (u *PendingApprovalUpsertOne) SetItemType(v pendingapproval.ItemType) *PendingApprovalUpsertOne {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.SetItemType(v)
	})
}

// UpdateItemType sets the "item_type" field to the value that was provided on create.
func (u *PendingApprovalUpsertOne) UpdateItemType() *PendingApprovalUpsertOne {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.UpdateItemType()
	})
}

// SetTargetID sets the "target_id" field.
func (u *PendingApprovalUpsertOne) SetTargetID(v string) *PendingApprovalUpsertOne {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.SetTargetID(v)
	})
}

// UpdateTargetID sets the "target_id" field to the value that was provided on create.
func (u *PendingApprovalUpsertOne) UpdateTargetID() *PendingApprovalUpsertOne {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.UpdateTargetID()
	})
}

// SetBatchID sets the "batch_id" field.
func (u *PendingApprovalUpsertOne) SetBatchID(v string) *PendingApprovalUpsertOne {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.SetBatchID(v)
	})
}

// UpdateBatchID sets the "batch_id" field to the value that was provided on create.
func (u *PendingApprovalUpsertOne) UpdateBatchID() *PendingApprovalUpsertOne {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.UpdateBatchID()
	})
}

// SetStatus sets the "status" field.
func (u *PendingApprovalUpsertOne) SetStatus(v pendingapproval.Status) *PendingApprovalUpsertOne {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PendingApprovalUpsertOne) UpdateStatus() *PendingApprovalUpsertOne {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.UpdateStatus()
	})
}

// SetConfidence sets the "confidence" field.
func (u *PendingApprovalUpsertOne) SetConfidence(v float64) *PendingApprovalUpsertOne {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *PendingApprovalUpsertOne) AddConfidence(v float64) *PendingApprovalUpsertOne {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *PendingApprovalUpsertOne) UpdateConfidence() *PendingApprovalUpsertOne {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.UpdateConfidence()
	})
}

// SetSourceQuote sets the "source_quote" field.
func (u *PendingApprovalUpsertOne) SetSourceQuote(v string) *PendingApprovalUpsertOne {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.SetSourceQuote(v)
	})
}

// UpdateSourceQuote sets the "source_quote" field to the value that was provided on create.
func (u *PendingApprovalUpsertOne) UpdateSourceQuote() *PendingApprovalUpsertOne {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.UpdateSourceQuote()
	})
}

// ClearSourceQuote clears the value of the "source_quote" field.
func (u *PendingApprovalUpsertOne) ClearSourceQuote() *PendingApprovalUpsertOne {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.ClearSourceQuote()
	})
}

// SetSourceInteractionID sets the "source_interaction_id" field.
func (u *PendingApprovalUpsertOne) SetSourceInteractionID(v string) *PendingApprovalUpsertOne {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.SetSourceInteractionID(v)
	})
}

// UpdateSourceInteractionID sets the "source_interaction_id" field to the value that was provided on create.
func (u *PendingApprovalUpsertOne) UpdateSourceInteractionID() *PendingApprovalUpsertOne {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.UpdateSourceInteractionID()
	})
}

// ClearSourceInteractionID clears the value of the "source_interaction_id" field.
func (u *PendingApprovalUpsertOne) ClearSourceInteractionID() *PendingApprovalUpsertOne {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.ClearSourceInteractionID()
	})
}

// SetSourceEntityID sets the "source_entity_id" field.
func (u *PendingApprovalUpsertOne) SetSourceEntityID(v string) *PendingApprovalUpsertOne {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.SetSourceEntityID(v)
	})
}

// UpdateSourceEntityID sets the "source_entity_id" field to the value that was provided on create.
func (u *PendingApprovalUpsertOne) UpdateSourceEntityID() *PendingApprovalUpsertOne {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.UpdateSourceEntityID()
	})
}

// ClearSourceEntityID clears the value of the "source_entity_id" field.
func (u *PendingApprovalUpsertOne) ClearSourceEntityID() *PendingApprovalUpsertOne {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.ClearSourceEntityID()
	})
}

// SetContext sets the "context" field.
func (u *PendingApprovalUpsertOne) SetContext(v string) *PendingApprovalUpsertOne {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.SetContext(v)
	})
}

// UpdateContext sets the "context" field to the value that was provided on create.
func (u *PendingApprovalUpsertOne) UpdateContext() *PendingApprovalUpsertOne {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.UpdateContext()
	})
}

// ClearContext clears the value of the "context" field.
func (u *PendingApprovalUpsertOne) ClearContext() *PendingApprovalUpsertOne {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.ClearContext()
	})
}

// SetReviewedAt sets the "reviewed_at" field.
func (u *PendingApprovalUpsertOne) SetReviewedAt(v time.Time) *PendingApprovalUpsertOne {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.SetReviewedAt(v)
	})
}

// UpdateReviewedAt sets the "reviewed_at" field to the value that was provided on create.
func (u *PendingApprovalUpsertOne) UpdateReviewedAt() *PendingApprovalUpsertOne {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.UpdateReviewedAt()
	})
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (u *PendingApprovalUpsertOne) ClearReviewedAt() *PendingApprovalUpsertOne {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.ClearReviewedAt()
	})
}

// Exec executes the query.
func (u *PendingApprovalUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PendingApprovalCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PendingApprovalUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PendingApprovalUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PendingApprovalUpsertOne.ID is not supported by MySQL driver. Use PendingApprovalUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PendingApprovalUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PendingApprovalCreateBulk is the builder for creating many PendingApproval entities in bulk.
type PendingApprovalCreateBulk struct {
	config
	err      error
	builders []*PendingApprovalCreate
	conflict []sql.ConflictOption
}

// Save creates the PendingApproval entities in the database.
func (_c *PendingApprovalCreateBulk) Save(ctx context.Context) ([]*PendingApproval, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PendingApproval, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PendingApprovalMutation)
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
func (_c *PendingApprovalCreateBulk) SaveX(ctx context.Context) []*PendingApproval {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PendingApprovalCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PendingApprovalCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PendingApproval.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PendingApprovalUpsert) {
//			SetItemType(v+v).
//		}).
//		Exec(ctx)
func (_c *PendingApprovalCreateBulk) OnConflict(opts ...sql.ConflictOption) *PendingApprovalUpsertBulk {
	_c.conflict = opts
	return &PendingApprovalUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PendingApproval.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PendingApprovalCreateBulk) OnConflictColumns(columns ...string) *PendingApprovalUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PendingApprovalUpsertBulk{
		create: _c,
	}
}

// PendingApprovalUpsertBulk is the builder for "upsert"-ing
// a bulk of PendingApproval nodes.
type PendingApprovalUpsertBulk struct {
	create *PendingApprovalCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PendingApproval.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(pendingapproval.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PendingApprovalUpsertBulk) UpdateNewValues() *PendingApprovalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(pendingapproval.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(pendingapproval.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PendingApproval.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PendingApprovalUpsertBulk) Ignore() *PendingApprovalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PendingApprovalUpsertBulk) DoNothing() *PendingApprovalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PendingApprovalCreateBulk.OnConflict
// documentation for more info.
func (u *PendingApprovalUpsertBulk) Update(set func(*PendingApprovalUpsert)) *PendingApprovalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PendingApprovalUpsert{UpdateSet: update})
	}))
	return u
}

// SetItemType sets the "item_type" field.
func (u *PendingApprovalUpsertBulk) SetItemType(v pendingapproval.ItemType) *PendingApprovalUpsertBulk {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.SetItemType(v)
	})
}

// UpdateItemType sets the "item_type" field to the value that was provided on create.
func (u *PendingApprovalUpsertBulk) UpdateItemType() *PendingApprovalUpsertBulk {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.UpdateItemType()
	})
}

// SetTargetID sets the "target_id" field.
func (u *PendingApprovalUpsertBulk) SetTargetID(v string) *PendingApprovalUpsertBulk {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.SetTargetID(v)
	})
}

// UpdateTargetID sets the "target_id" field to the value that was provided on create.
func (u *PendingApprovalUpsertBulk) UpdateTargetID() *PendingApprovalUpsertBulk {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.UpdateTargetID()
	})
}

// SetBatchID sets the "batch_id" field.
func (u *PendingApprovalUpsertBulk) SetBatchID(v string) *PendingApprovalUpsertBulk {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.SetBatchID(v)
	})
}

// UpdateBatchID sets the "batch_id" field to the value that was provided on create.
func (u *PendingApprovalUpsertBulk) UpdateBatchID() *PendingApprovalUpsertBulk {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.UpdateBatchID()
	})
}

// SetStatus sets the "status" field.
func (u *PendingApprovalUpsertBulk) SetStatus(v pendingapproval.Status) *PendingApprovalUpsertBulk {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PendingApprovalUpsertBulk) UpdateStatus() *PendingApprovalUpsertBulk {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.UpdateStatus()
	})
}

// SetConfidence sets the "confidence" field.
func (u *PendingApprovalUpsertBulk) SetConfidence(v float64) *PendingApprovalUpsertBulk {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *PendingApprovalUpsertBulk) AddConfidence(v float64) *PendingApprovalUpsertBulk {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *PendingApprovalUpsertBulk) UpdateConfidence() *PendingApprovalUpsertBulk {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.UpdateConfidence()
	})
}

// SetSourceQuote sets the "source_quote" field.
func (u *PendingApprovalUpsertBulk) SetSourceQuote(v string) *PendingApprovalUpsertBulk {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.SetSourceQuote(v)
	})
}

// UpdateSourceQuote sets the "source_quote" field to the value that was provided on create.
func (u *PendingApprovalUpsertBulk) UpdateSourceQuote() *PendingApprovalUpsertBulk {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.UpdateSourceQuote()
	})
}

// ClearSourceQuote clears the value of the "source_quote" field.
func (u *PendingApprovalUpsertBulk) ClearSourceQuote() *PendingApprovalUpsertBulk {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.ClearSourceQuote()
	})
}

// SetSourceInteractionID sets the "source_interaction_id" field.
func (u *PendingApprovalUpsertBulk) SetSourceInteractionID(v string) *PendingApprovalUpsertBulk {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.SetSourceInteractionID(v)
	})
}

// UpdateSourceInteractionID sets the "source_interaction_id" field to the value that was provided on create.
func (u *PendingApprovalUpsertBulk) UpdateSourceInteractionID() *PendingApprovalUpsertBulk {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.UpdateSourceInteractionID()
	})
}

// ClearSourceInteractionID clears the value of the "source_interaction_id" field.
func (u *PendingApprovalUpsertBulk) ClearSourceInteractionID() *PendingApprovalUpsertBulk {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.ClearSourceInteractionID()
	})
}

// SetSourceEntityID sets the "source_entity_id" field.
func (u *PendingApprovalUpsertBulk) SetSourceEntityID(v string) *PendingApprovalUpsertBulk {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.SetSourceEntityID(v)
	})
}

// UpdateSourceEntityID sets the "source_entity_id" field to the value that was provided on create.
func (u *PendingApprovalUpsertBulk) UpdateSourceEntityID() *PendingApprovalUpsertBulk {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.UpdateSourceEntityID()
	})
}

// ClearSourceEntityID clears the value of the "source_entity_id" field.
func (u *PendingApprovalUpsertBulk) ClearSourceEntityID() *PendingApprovalUpsertBulk {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.ClearSourceEntityID()
	})
}

// SetContext sets the "context" field.
func (u *PendingApprovalUpsertBulk) SetContext(v string) *PendingApprovalUpsertBulk {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.SetContext(v)
	})
}

// UpdateContext sets the "context" field to the value that was provided on create.
func (u *PendingApprovalUpsertBulk) UpdateContext() *PendingApprovalUpsertBulk {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.UpdateContext()
	})
}

// ClearContext clears the value of the "context" field.
func (u *PendingApprovalUpsertBulk) ClearContext() *PendingApprovalUpsertBulk {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.ClearContext()
	})
}

// SetReviewedAt sets the "reviewed_at" field.
func (u *PendingApprovalUpsertBulk) SetReviewedAt(v time.Time) *PendingApprovalUpsertBulk {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.SetReviewedAt(v)
	})
}

// UpdateReviewedAt sets the "reviewed_at" field to the value that was provided on create.
func (u *PendingApprovalUpsertBulk) UpdateReviewedAt() *PendingApprovalUpsertBulk {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.UpdateReviewedAt()
	})
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (u *PendingApprovalUpsertBulk) ClearReviewedAt() *PendingApprovalUpsertBulk {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.ClearReviewedAt()
	})
}

// Exec executes the query.
func (u *PendingApprovalUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PendingApprovalCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PendingApprovalCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PendingApprovalUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
