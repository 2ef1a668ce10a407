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
	"github.com/memograph/memograph/ent/embeddingjob"
)

// EmbeddingJobCreate is the builder for creating a EmbeddingJob entity.
type EmbeddingJobCreate struct {
	config
	mutation *EmbeddingJobMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTargetKind sets the "target_kind" field.
func (_c *EmbeddingJobCreate) SetTargetKind(v embeddingjob.TargetKind) *EmbeddingJobCreate {
	_c.mutation.SetTargetKind(v)
	return _c
}

// SetTargetID sets the "target_id" field.
func (_c *EmbeddingJobCreate) SetTargetID(v string) *EmbeddingJobCreate {
	_c.mutation.SetTargetID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *EmbeddingJobCreate) SetStatus(v embeddingjob.Status) *EmbeddingJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *EmbeddingJobCreate) SetNillableStatus(v *embeddingjob.Status) *EmbeddingJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *EmbeddingJobCreate) SetAttempts(v int) *EmbeddingJobCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *EmbeddingJobCreate) SetNillableAttempts(v *int) *EmbeddingJobCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (_c *EmbeddingJobCreate) SetNextAttemptAt(v time.Time) *EmbeddingJobCreate {
	_c.mutation.SetNextAttemptAt(v)
	return _c
}

// SetNillableNextAttemptAt sets the "next_attempt_at" field if the given value is not nil.
func (_c *EmbeddingJobCreate) SetNillableNextAttemptAt(v *time.Time) *EmbeddingJobCreate {
	if v != nil {
		_c.SetNextAttemptAt(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *EmbeddingJobCreate) SetLastError(v string) *EmbeddingJobCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *EmbeddingJobCreate) SetNillableLastError(v *string) *EmbeddingJobCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *EmbeddingJobCreate) SetPodID(v string) *EmbeddingJobCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *EmbeddingJobCreate) SetNillablePodID(v *string) *EmbeddingJobCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_c *EmbeddingJobCreate) SetLastInteractionAt(v time.Time) *EmbeddingJobCreate {
	_c.mutation.SetLastInteractionAt(v)
	return _c
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_c *EmbeddingJobCreate) SetNillableLastInteractionAt(v *time.Time) *EmbeddingJobCreate {
	if v != nil {
		_c.SetLastInteractionAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EmbeddingJobCreate) SetCreatedAt(v time.Time) *EmbeddingJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EmbeddingJobCreate) SetNillableCreatedAt(v *time.Time) *EmbeddingJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *EmbeddingJobCreate) SetCompletedAt(v time.Time) *EmbeddingJobCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *EmbeddingJobCreate) SetNillableCompletedAt(v *time.Time) *EmbeddingJobCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EmbeddingJobCreate) SetID(v string) *EmbeddingJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the EmbeddingJobMutation object of the builder.
func (_c *EmbeddingJobCreate) Mutation() *EmbeddingJobMutation {
	return _c.mutation
}

// Save creates the EmbeddingJob in the database.
func (_c *EmbeddingJobCreate) Save(ctx context.Context) (*EmbeddingJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EmbeddingJobCreate) SaveX(ctx context.Context) *EmbeddingJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EmbeddingJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EmbeddingJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EmbeddingJobCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := embeddingjob.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := embeddingjob.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.NextAttemptAt(); !ok {
		v := embeddingjob.DefaultNextAttemptAt()
		_c.mutation.SetNextAttemptAt(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := embeddingjob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EmbeddingJobCreate) check() error {
	if _, ok := _c.mutation.TargetKind(); !ok {
		return &ValidationError{Name: "target_kind", err: errors.New(`ent: missing required field "EmbeddingJob.target_kind"`)}
	}
	if v, ok := _c.mutation.TargetKind(); ok {
		if err := embeddingjob.TargetKindValidator(v); err != nil {
			return &ValidationError{Name: "target_kind", err: fmt.Errorf(`ent: validator failed for field "EmbeddingJob.target_kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TargetID(); !ok {
		return &ValidationError{Name: "target_id", err: errors.New(`ent: missing required field "EmbeddingJob.target_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "EmbeddingJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := embeddingjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "EmbeddingJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "EmbeddingJob.attempts"`)}
	}
	if _, ok := _c.mutation.NextAttemptAt(); !ok {
		return &ValidationError{Name: "next_attempt_at", err: errors.New(`ent: missing required field "EmbeddingJob.next_attempt_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EmbeddingJob.created_at"`)}
	}
	return nil
}

func (_c *EmbeddingJobCreate) sqlSave(ctx context.Context) (*EmbeddingJob, error) {
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
			return nil, fmt.Errorf("unexpected EmbeddingJob.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EmbeddingJobCreate) createSpec() (*EmbeddingJob, *sqlgraph.CreateSpec) {
	var (
		_node = &EmbeddingJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(embeddingjob.Table, sqlgraph.NewFieldSpec(embeddingjob.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TargetKind(); ok {
		_spec.SetField(embeddingjob.FieldTargetKind, field.TypeEnum, value)
		_node.TargetKind = value
	}
	if value, ok := _c.mutation.TargetID(); ok {
		_spec.SetField(embeddingjob.FieldTargetID, field.TypeString, value)
		_node.TargetID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(embeddingjob.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(embeddingjob.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.NextAttemptAt(); ok {
		_spec.SetField(embeddingjob.FieldNextAttemptAt, field.TypeTime, value)
		_node.NextAttemptAt = value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(embeddingjob.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(embeddingjob.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.LastInteractionAt(); ok {
		_spec.SetField(embeddingjob.FieldLastInteractionAt, field.TypeTime, value)
		_node.LastInteractionAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(embeddingjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(embeddingjob.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EmbeddingJob.Create().
//		SetTargetKind(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EmbeddingJobUpsert) {
//			SetTargetKind(v+v).
//		}).
//		Exec(ctx)
func (_c *EmbeddingJobCreate) OnConflict(opts ...sql.ConflictOption) *EmbeddingJobUpsertOne {
	_c.conflict = opts
	return &EmbeddingJobUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EmbeddingJob.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EmbeddingJobCreate) OnConflictColumns(columns ...string) *EmbeddingJobUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EmbeddingJobUpsertOne{
		create: _c,
	}
}

type (
	// EmbeddingJobUpsertOne is the builder for "upsert"-ing
	//  one EmbeddingJob node.
	EmbeddingJobUpsertOne struct {
		create *EmbeddingJobCreate
	}

	// EmbeddingJobUpsert is the "OnConflict" setter.
	EmbeddingJobUpsert struct {
		*sql.UpdateSet
	}
)

// SetTargetKind sets the "target_kind" field.
func (u *EmbeddingJobUpsert) SetTargetKind(v embeddingjob.TargetKind) *EmbeddingJobUpsert {
	u.Set(embeddingjob.FieldTargetKind, v)
	return u
}

// UpdateTargetKind sets the "target_kind" field to the value that was provided on create.
func (u *EmbeddingJobUpsert) UpdateTargetKind() *EmbeddingJobUpsert {
	u.SetExcluded(embeddingjob.FieldTargetKind)
	return u
}

// SetTargetID sets the "target_id" field.
func (u *EmbeddingJobUpsert) SetTargetID(v string) *EmbeddingJobUpsert {
	u.Set(embeddingjob.FieldTargetID, v)
	return u
}

// UpdateTargetID sets the "target_id" field to the value that was provided on create.
func (u *EmbeddingJobUpsert) UpdateTargetID() *EmbeddingJobUpsert {
	u.SetExcluded(embeddingjob.FieldTargetID)
	return u
}

// SetStatus sets the "status" field.
func (u *EmbeddingJobUpsert) SetStatus(v embeddingjob.Status) *EmbeddingJobUpsert {
	u.Set(embeddingjob.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *EmbeddingJobUpsert) UpdateStatus() *EmbeddingJobUpsert {
	u.SetExcluded(embeddingjob.FieldStatus)
	return u
}

// SetAttempts sets the "attempts" field.
func (u *EmbeddingJobUpsert) SetAttempts(v int) *EmbeddingJobUpsert {
	u.Set(embeddingjob.FieldAttempts, v)
	return u
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *EmbeddingJobUpsert) UpdateAttempts() *EmbeddingJobUpsert {
	u.SetExcluded(embeddingjob.FieldAttempts)
	return u
}

// AddAttempts adds v to the "attempts" field.
func (u *EmbeddingJobUpsert) AddAttempts(v int) *EmbeddingJobUpsert {
	u.Add(embeddingjob.FieldAttempts, v)
	return u
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (u *EmbeddingJobUpsert) SetNextAttemptAt(v time.Time) *EmbeddingJobUpsert {
	u.Set(embeddingjob.FieldNextAttemptAt, v)
	return u
}

// UpdateNextAttemptAt sets the "next_attempt_at" field to the value that was provided on create.
func (u *EmbeddingJobUpsert) UpdateNextAttemptAt() *EmbeddingJobUpsert {
	u.SetExcluded(embeddingjob.FieldNextAttemptAt)
	return u
}

// SetLastError sets the "last_error" field.
func (u *EmbeddingJobUpsert) SetLastError(v string) *EmbeddingJobUpsert {
	u.Set(embeddingjob.FieldLastError, v)
	return u
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *EmbeddingJobUpsert) UpdateLastError() *EmbeddingJobUpsert {
	u.SetExcluded(embeddingjob.FieldLastError)
	return u
}

// ClearLastError clears the value of the "last_error" field.
func (u *EmbeddingJobUpsert) ClearLastError() *EmbeddingJobUpsert {
	u.SetNull(embeddingjob.FieldLastError)
	return u
}

// SetPodID sets the "pod_id" field.
func (u *EmbeddingJobUpsert) SetPodID(v string) *EmbeddingJobUpsert {
	u.Set(embeddingjob.FieldPodID, v)
	return u
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *EmbeddingJobUpsert) UpdatePodID() *EmbeddingJobUpsert {
	u.SetExcluded(embeddingjob.FieldPodID)
	return u
}

// ClearPodID clears the value of the "pod_id" field.
func (u *EmbeddingJobUpsert) ClearPodID() *EmbeddingJobUpsert {
	u.SetNull(embeddingjob.FieldPodID)
	return u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (u *EmbeddingJobUpsert) SetLastInteractionAt(v time.Time) *EmbeddingJobUpsert {
	u.Set(embeddingjob.FieldLastInteractionAt, v)
	return u
}

// UpdateLastInteractionAt sets the "last_interaction_at" field to the value that was provided on create.
func (u *EmbeddingJobUpsert) UpdateLastInteractionAt() *EmbeddingJobUpsert {
	u.SetExcluded(embeddingjob.FieldLastInteractionAt)
	return u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (u *EmbeddingJobUpsert) ClearLastInteractionAt() *EmbeddingJobUpsert {
	u.SetNull(embeddingjob.FieldLastInteractionAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *EmbeddingJobUpsert) SetCompletedAt(v time.Time) *EmbeddingJobUpsert {
	u.Set(embeddingjob.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *EmbeddingJobUpsert) UpdateCompletedAt() *EmbeddingJobUpsert {
	u.SetExcluded(embeddingjob.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *EmbeddingJobUpsert) ClearCompletedAt() *EmbeddingJobUpsert {
	u.SetNull(embeddingjob.FieldCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.EmbeddingJob.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(embeddingjob.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EmbeddingJobUpsertOne) UpdateNewValues() *EmbeddingJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(embeddingjob.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(embeddingjob.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EmbeddingJob.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EmbeddingJobUpsertOne) Ignore() *EmbeddingJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EmbeddingJobUpsertOne) DoNothing() *EmbeddingJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EmbeddingJobCreate.OnConflict
// documentation for more info.
func (u *EmbeddingJobUpsertOne) Update(set func(*EmbeddingJobUpsert)) *EmbeddingJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EmbeddingJobUpsert{UpdateSet: update})
	}))
	return u
}

// SetTargetKind sets the "target_kind" field.
func (u *EmbeddingJobUpsertOne) SetTargetKind(v embeddingjob.TargetKind) *EmbeddingJobUpsertOne {
	return u.Update(func(s *EmbeddingJobUpsert) {
		s.SetTargetKind(v)
	})
}

// UpdateTargetKind sets the "target_kind" field to the value that was provided on create.
func (u *EmbeddingJobUpsertOne) UpdateTargetKind() *EmbeddingJobUpsertOne {
	return u.Update(func(s *EmbeddingJobUpsert) {
		s.UpdateTargetKind()
	})
}

// SetTargetID sets the "target_id" field.
func (u *EmbeddingJobUpsertOne) SetTargetID(v string) *EmbeddingJobUpsertOne {
	return u.Update(func(s *EmbeddingJobUpsert) {
		s.SetTargetID(v)
	})
}

// UpdateTargetID sets the "target_id" field to the value that was provided on create.
func (u *EmbeddingJobUpsertOne) UpdateTargetID() *EmbeddingJobUpsertOne {
	return u.Update(func(s *EmbeddingJobUpsert) {
		s.UpdateTargetID()
	})
}

// SetStatus sets the "status" field.
func (u *EmbeddingJobUpsertOne) SetStatus(v embeddingjob.Status) *EmbeddingJobUpsertOne {
	return u.Update(func(s *EmbeddingJobUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *EmbeddingJobUpsertOne) UpdateStatus() *EmbeddingJobUpsertOne {
	return u.Update(func(s *EmbeddingJobUpsert) {
		s.UpdateStatus()
	})
}

// SetAttempts sets the "attempts" field.
func (u *EmbeddingJobUpsertOne) SetAttempts(v int) *EmbeddingJobUpsertOne {
	return u.Update(func(s *EmbeddingJobUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *EmbeddingJobUpsertOne) AddAttempts(v int) *EmbeddingJobUpsertOne {
	return u.Update(func(s *EmbeddingJobUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *EmbeddingJobUpsertOne) UpdateAttempts() *EmbeddingJobUpsertOne {
	return u.Update(func(s *EmbeddingJobUpsert) {
		s.UpdateAttempts()
	})
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (u *EmbeddingJobUpsertOne) SetNextAttemptAt(v time.Time) *EmbeddingJobUpsertOne {
	return u.Update(func(s *EmbeddingJobUpsert) {
		s.SetNextAttemptAt(v)
	})
}

// UpdateNextAttemptAt sets the "next_attempt_at" field to the value that was provided on create.
func (u *EmbeddingJobUpsertOne) UpdateNextAttemptAt() *EmbeddingJobUpsertOne {
	return u.Update(func(s *EmbeddingJobUpsert) {
		s.UpdateNextAttemptAt()
	})
}

// SetLastError sets the "last_error" field.
func (u *EmbeddingJobUpsertOne) SetLastError(v string) *EmbeddingJobUpsertOne {
	return u.Update(func(s *EmbeddingJobUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *EmbeddingJobUpsertOne) UpdateLastError() *EmbeddingJobUpsertOne {
	return u.Update(func(s *EmbeddingJobUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *EmbeddingJobUpsertOne) ClearLastError() *EmbeddingJobUpsertOne {
	return u.Update(func(s *EmbeddingJobUpsert) {
		s.ClearLastError()
	})
}

// SetPodID sets the "pod_id" field.
func (u *EmbeddingJobUpsertOne) SetPodID(v string) *EmbeddingJobUpsertOne {
	return u.Update(func(s *EmbeddingJobUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *EmbeddingJobUpsertOne) UpdatePodID() *EmbeddingJobUpsertOne {
	return u.Update(func(s *EmbeddingJobUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *EmbeddingJobUpsertOne) ClearPodID() *EmbeddingJobUpsertOne {
	return u.Update(func(s *EmbeddingJobUpsert) {
		s.ClearPodID()
	})
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (u *EmbeddingJobUpsertOne) SetLastInteractionAt(v time.Time) *EmbeddingJobUpsertOne {
	return u.Update(func(s *EmbeddingJobUpsert) {
		s.SetLastInteractionAt(v)
	})
}

// UpdateLastInteractionAt sets the "last_interaction_at" field to the value that was provided on create.
func (u *EmbeddingJobUpsertOne) UpdateLastInteractionAt() *EmbeddingJobUpsertOne {
	return u.Update(func(s *EmbeddingJobUpsert) {
		s.UpdateLastInteractionAt()
	})
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (u *EmbeddingJobUpsertOne) ClearLastInteractionAt() *EmbeddingJobUpsertOne {
	return u.Update(func(s *EmbeddingJobUpsert) {
		s.ClearLastInteractionAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *EmbeddingJobUpsertOne) SetCompletedAt(v time.Time) *EmbeddingJobUpsertOne {
	return u.Update(func(s *EmbeddingJobUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *EmbeddingJobUpsertOne) UpdateCompletedAt() *EmbeddingJobUpsertOne {
	return u.Update(func(s *EmbeddingJobUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *EmbeddingJobUpsertOne) ClearCompletedAt() *EmbeddingJobUpsertOne {
	return u.Update(func(s *EmbeddingJobUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *EmbeddingJobUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EmbeddingJobCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EmbeddingJobUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EmbeddingJobUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: EmbeddingJobUpsertOne.ID is not supported by MySQL driver. Use EmbeddingJobUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EmbeddingJobUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EmbeddingJobCreateBulk is the builder for creating many EmbeddingJob entities in bulk.
type EmbeddingJobCreateBulk struct {
	config
	err      error
	builders []*EmbeddingJobCreate
	conflict []sql.ConflictOption
}

// Save creates the EmbeddingJob entities in the database.
func (_c *EmbeddingJobCreateBulk) Save(ctx context.Context) ([]*EmbeddingJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EmbeddingJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EmbeddingJobMutation)
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
func (_c *EmbeddingJobCreateBulk) SaveX(ctx context.Context) []*EmbeddingJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EmbeddingJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EmbeddingJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EmbeddingJob.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EmbeddingJobUpsert) {
//			SetTargetKind(v+v).
//		}).
//		Exec(ctx)
func (_c *EmbeddingJobCreateBulk) OnConflict(opts ...sql.ConflictOption) *EmbeddingJobUpsertBulk {
	_c.conflict = opts
	return &EmbeddingJobUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EmbeddingJob.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EmbeddingJobCreateBulk) OnConflictColumns(columns ...string) *EmbeddingJobUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EmbeddingJobUpsertBulk{
		create: _c,
	}
}

// EmbeddingJobUpsertBulk is the builder for "upsert"-ing
// a bulk of EmbeddingJob nodes.
type EmbeddingJobUpsertBulk struct {
	create *EmbeddingJobCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.EmbeddingJob.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(embeddingjob.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EmbeddingJobUpsertBulk) UpdateNewValues() *EmbeddingJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(embeddingjob.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(embeddingjob.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EmbeddingJob.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EmbeddingJobUpsertBulk) Ignore() *EmbeddingJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EmbeddingJobUpsertBulk) DoNothing() *EmbeddingJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EmbeddingJobCreateBulk.OnConflict
// documentation for more info.
func (u *EmbeddingJobUpsertBulk) Update(set func(*EmbeddingJobUpsert)) *EmbeddingJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EmbeddingJobUpsert{UpdateSet: update})
	}))
	return u
}

// SetTargetKind sets the "target_kind" field.
func (u *EmbeddingJobUpsertBulk) SetTargetKind(v embeddingjob.TargetKind) *EmbeddingJobUpsertBulk {
	return u.Update(func(s *EmbeddingJobUpsert) {
		s.SetTargetKind(v)
	})
}

// UpdateTargetKind sets the "target_kind" field to the value that was provided on create.
func (u *EmbeddingJobUpsertBulk) UpdateTargetKind() *EmbeddingJobUpsertBulk {
	return u.Update(func(s *EmbeddingJobUpsert) {
		s.UpdateTargetKind()
	})
}

// SetTargetID sets the "target_id" field.
func (u *EmbeddingJobUpsertBulk) SetTargetID(v string) *EmbeddingJobUpsertBulk {
	return u.Update(func(s *EmbeddingJobUpsert) {
		s.SetTargetID(v)
	})
}

// UpdateTargetID sets the "target_id" field to the value that was provided on create.
func (u *EmbeddingJobUpsertBulk) UpdateTargetID() *EmbeddingJobUpsertBulk {
	return u.Update(func(s *EmbeddingJobUpsert) {
		s.UpdateTargetID()
	})
}

// SetStatus sets the "status" field.
func (u *EmbeddingJobUpsertBulk) SetStatus(v embeddingjob.Status) *EmbeddingJobUpsertBulk {
	return u.Update(func(s *EmbeddingJobUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *EmbeddingJobUpsertBulk) UpdateStatus() *EmbeddingJobUpsertBulk {
	return u.Update(func(s *EmbeddingJobUpsert) {
		s.UpdateStatus()
	})
}

// SetAttempts sets the "attempts" field.
func (u *EmbeddingJobUpsertBulk) SetAttempts(v int) *EmbeddingJobUpsertBulk {
	return u.Update(func(s *EmbeddingJobUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *EmbeddingJobUpsertBulk) AddAttempts(v int) *EmbeddingJobUpsertBulk {
	return u.Update(func(s *EmbeddingJobUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *EmbeddingJobUpsertBulk) UpdateAttempts() *EmbeddingJobUpsertBulk {
	return u.Update(func(s *EmbeddingJobUpsert) {
		s.UpdateAttempts()
	})
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (u *EmbeddingJobUpsertBulk) SetNextAttemptAt(v time.Time) *EmbeddingJobUpsertBulk {
	return u.Update(func(s *EmbeddingJobUpsert) {
		s.SetNextAttemptAt(v)
	})
}

// UpdateNextAttemptAt sets the "next_attempt_at" field to the value that was provided on create.
func (u *EmbeddingJobUpsertBulk) UpdateNextAttemptAt() *EmbeddingJobUpsertBulk {
	return u.Update(func(s *EmbeddingJobUpsert) {
		s.UpdateNextAttemptAt()
	})
}

// SetLastError sets the "last_error" field.
func (u *EmbeddingJobUpsertBulk) SetLastError(v string) *EmbeddingJobUpsertBulk {
	return u.Update(func(s *EmbeddingJobUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *EmbeddingJobUpsertBulk) UpdateLastError() *EmbeddingJobUpsertBulk {
	return u.Update(func(s *EmbeddingJobUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *EmbeddingJobUpsertBulk) ClearLastError() *EmbeddingJobUpsertBulk {
	return u.Update(func(s *EmbeddingJobUpsert) {
		s.ClearLastError()
	})
}

// SetPodID sets the "pod_id" field.
func (u *EmbeddingJobUpsertBulk) SetPodID(v string) *EmbeddingJobUpsertBulk {
	return u.Update(func(s *EmbeddingJobUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *EmbeddingJobUpsertBulk) UpdatePodID() *EmbeddingJobUpsertBulk {
	return u.Update(func(s *EmbeddingJobUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *EmbeddingJobUpsertBulk) ClearPodID() *EmbeddingJobUpsertBulk {
	return u.Update(func(s *EmbeddingJobUpsert) {
		s.ClearPodID()
	})
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (u *EmbeddingJobUpsertBulk) SetLastInteractionAt(v time.Time) *EmbeddingJobUpsertBulk {
	return u.Update(func(s *EmbeddingJobUpsert) {
		s.SetLastInteractionAt(v)
	})
}

// UpdateLastInteractionAt sets the "last_interaction_at" field to the value that was provided on create.
func (u *EmbeddingJobUpsertBulk) UpdateLastInteractionAt() *EmbeddingJobUpsertBulk {
	return u.Update(func(s *EmbeddingJobUpsert) {
		s.UpdateLastInteractionAt()
	})
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (u *EmbeddingJobUpsertBulk) ClearLastInteractionAt() *EmbeddingJobUpsertBulk {
	return u.Update(func(s *EmbeddingJobUpsert) {
		s.ClearLastInteractionAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *EmbeddingJobUpsertBulk) SetCompletedAt(v time.Time) *EmbeddingJobUpsertBulk {
	return u.Update(func(s *EmbeddingJobUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *EmbeddingJobUpsertBulk) UpdateCompletedAt() *EmbeddingJobUpsertBulk {
	return u.Update(func(s *EmbeddingJobUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *EmbeddingJobUpsertBulk) ClearCompletedAt() *EmbeddingJobUpsertBulk {
	return u.Update(func(s *EmbeddingJobUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *EmbeddingJobUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EmbeddingJobCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EmbeddingJobCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EmbeddingJobUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
