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
	"github.com/memograph/memograph/ent/embeddingjob"
	"github.com/memograph/memograph/ent/predicate"
)

// EmbeddingJobUpdate is the builder for updating EmbeddingJob entities.
type EmbeddingJobUpdate struct {
	config
	hooks    []Hook
	mutation *EmbeddingJobMutation
}

// Where appends a list predicates to the EmbeddingJobUpdate builder.
func (_u *EmbeddingJobUpdate) Where(ps ...predicate.EmbeddingJob) *EmbeddingJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTargetKind sets the "target_kind" field.
func (_u *EmbeddingJobUpdate) SetTargetKind(v embeddingjob.TargetKind) *EmbeddingJobUpdate {
	_u.mutation.SetTargetKind(v)
	return _u
}

// SetNillableTargetKind sets the "target_kind" field if the given value is not nil.
func (_u *EmbeddingJobUpdate) SetNillableTargetKind(v *embeddingjob.TargetKind) *EmbeddingJobUpdate {
	if v != nil {
		_u.SetTargetKind(*v)
	}
	return _u
}

// SetTargetID sets the "target_id" field.
func (_u *EmbeddingJobUpdate) SetTargetID(v string) *EmbeddingJobUpdate {
	_u.mutation.SetTargetID(v)
	return _u
}

// SetNillableTargetID sets the "target_id" field if the given value is not nil.
func (_u *EmbeddingJobUpdate) SetNillableTargetID(v *string) *EmbeddingJobUpdate {
	if v != nil {
		_u.SetTargetID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *EmbeddingJobUpdate) SetStatus(v embeddingjob.Status) *EmbeddingJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EmbeddingJobUpdate) SetNillableStatus(v *embeddingjob.Status) *EmbeddingJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *EmbeddingJobUpdate) SetAttempts(v int) *EmbeddingJobUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *EmbeddingJobUpdate) SetNillableAttempts(v *int) *EmbeddingJobUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *EmbeddingJobUpdate) AddAttempts(v int) *EmbeddingJobUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (_u *EmbeddingJobUpdate) SetNextAttemptAt(v time.Time) *EmbeddingJobUpdate {
	_u.mutation.SetNextAttemptAt(v)
	return _u
}

// SetNillableNextAttemptAt sets the "next_attempt_at" field if the given value is not nil.
func (_u *EmbeddingJobUpdate) SetNillableNextAttemptAt(v *time.Time) *EmbeddingJobUpdate {
	if v != nil {
		_u.SetNextAttemptAt(*v)
	}
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *EmbeddingJobUpdate) SetLastError(v string) *EmbeddingJobUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *EmbeddingJobUpdate) SetNillableLastError(v *string) *EmbeddingJobUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *EmbeddingJobUpdate) ClearLastError() *EmbeddingJobUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *EmbeddingJobUpdate) SetPodID(v string) *EmbeddingJobUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *EmbeddingJobUpdate) SetNillablePodID(v *string) *EmbeddingJobUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *EmbeddingJobUpdate) ClearPodID() *EmbeddingJobUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *EmbeddingJobUpdate) SetLastInteractionAt(v time.Time) *EmbeddingJobUpdate {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *EmbeddingJobUpdate) SetNillableLastInteractionAt(v *time.Time) *EmbeddingJobUpdate {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *EmbeddingJobUpdate) ClearLastInteractionAt() *EmbeddingJobUpdate {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *EmbeddingJobUpdate) SetCompletedAt(v time.Time) *EmbeddingJobUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *EmbeddingJobUpdate) SetNillableCompletedAt(v *time.Time) *EmbeddingJobUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *EmbeddingJobUpdate) ClearCompletedAt() *EmbeddingJobUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the EmbeddingJobMutation object of the builder.
func (_u *EmbeddingJobUpdate) Mutation() *EmbeddingJobMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EmbeddingJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EmbeddingJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EmbeddingJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EmbeddingJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EmbeddingJobUpdate) check() error {
	if v, ok := _u.mutation.TargetKind(); ok {
		if err := embeddingjob.TargetKindValidator(v); err != nil {
			return &ValidationError{Name: "target_kind", err: fmt.Errorf(`ent: validator failed for field "EmbeddingJob.target_kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := embeddingjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "EmbeddingJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *EmbeddingJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(embeddingjob.Table, embeddingjob.Columns, sqlgraph.NewFieldSpec(embeddingjob.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TargetKind(); ok {
		_spec.SetField(embeddingjob.FieldTargetKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TargetID(); ok {
		_spec.SetField(embeddingjob.FieldTargetID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(embeddingjob.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(embeddingjob.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(embeddingjob.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextAttemptAt(); ok {
		_spec.SetField(embeddingjob.FieldNextAttemptAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(embeddingjob.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(embeddingjob.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(embeddingjob.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(embeddingjob.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(embeddingjob.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(embeddingjob.FieldLastInteractionAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(embeddingjob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(embeddingjob.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{embeddingjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EmbeddingJobUpdateOne is the builder for updating a single EmbeddingJob entity.
type EmbeddingJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EmbeddingJobMutation
}

// SetTargetKind sets the "target_kind" field.
func (_u *EmbeddingJobUpdateOne) SetTargetKind(v embeddingjob.TargetKind) *EmbeddingJobUpdateOne {
	_u.mutation.SetTargetKind(v)
	return _u
}

// SetNillableTargetKind sets the "target_kind" field if the given value is not nil.
func (_u *EmbeddingJobUpdateOne) SetNillableTargetKind(v *embeddingjob.TargetKind) *EmbeddingJobUpdateOne {
	if v != nil {
		_u.SetTargetKind(*v)
	}
	return _u
}

// SetTargetID sets the "target_id" field.
func (_u *EmbeddingJobUpdateOne) SetTargetID(v string) *EmbeddingJobUpdateOne {
	_u.mutation.SetTargetID(v)
	return _u
}

// SetNillableTargetID sets the "target_id" field if the given value is not nil.
func (_u *EmbeddingJobUpdateOne) SetNillableTargetID(v *string) *EmbeddingJobUpdateOne {
	if v != nil {
		_u.SetTargetID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *EmbeddingJobUpdateOne) SetStatus(v embeddingjob.Status) *EmbeddingJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EmbeddingJobUpdateOne) SetNillableStatus(v *embeddingjob.Status) *EmbeddingJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *EmbeddingJobUpdateOne) SetAttempts(v int) *EmbeddingJobUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *EmbeddingJobUpdateOne) SetNillableAttempts(v *int) *EmbeddingJobUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *EmbeddingJobUpdateOne) AddAttempts(v int) *EmbeddingJobUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (_u *EmbeddingJobUpdateOne) SetNextAttemptAt(v time.Time) *EmbeddingJobUpdateOne {
	_u.mutation.SetNextAttemptAt(v)
	return _u
}

// SetNillableNextAttemptAt sets the "next_attempt_at" field if the given value is not nil.
func (_u *EmbeddingJobUpdateOne) SetNillableNextAttemptAt(v *time.Time) *EmbeddingJobUpdateOne {
	if v != nil {
		_u.SetNextAttemptAt(*v)
	}
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *EmbeddingJobUpdateOne) SetLastError(v string) *EmbeddingJobUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *EmbeddingJobUpdateOne) SetNillableLastError(v *string) *EmbeddingJobUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *EmbeddingJobUpdateOne) ClearLastError() *EmbeddingJobUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *EmbeddingJobUpdateOne) SetPodID(v string) *EmbeddingJobUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *EmbeddingJobUpdateOne) SetNillablePodID(v *string) *EmbeddingJobUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *EmbeddingJobUpdateOne) ClearPodID() *EmbeddingJobUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *EmbeddingJobUpdateOne) SetLastInteractionAt(v time.Time) *EmbeddingJobUpdateOne {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *EmbeddingJobUpdateOne) SetNillableLastInteractionAt(v *time.Time) *EmbeddingJobUpdateOne {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *EmbeddingJobUpdateOne) ClearLastInteractionAt() *EmbeddingJobUpdateOne {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *EmbeddingJobUpdateOne) SetCompletedAt(v time.Time) *EmbeddingJobUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *EmbeddingJobUpdateOne) SetNillableCompletedAt(v *time.Time) *EmbeddingJobUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *EmbeddingJobUpdateOne) ClearCompletedAt() *EmbeddingJobUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the EmbeddingJobMutation object of the builder.
func (_u *EmbeddingJobUpdateOne) Mutation() *EmbeddingJobMutation {
	return _u.mutation
}

// Where appends a list predicates to the EmbeddingJobUpdate builder.
func (_u *EmbeddingJobUpdateOne) Where(ps ...predicate.EmbeddingJob) *EmbeddingJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EmbeddingJobUpdateOne) Select(field string, fields ...string) *EmbeddingJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EmbeddingJob entity.
func (_u *EmbeddingJobUpdateOne) Save(ctx context.Context) (*EmbeddingJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EmbeddingJobUpdateOne) SaveX(ctx context.Context) *EmbeddingJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EmbeddingJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EmbeddingJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EmbeddingJobUpdateOne) check() error {
	if v, ok := _u.mutation.TargetKind(); ok {
		if err := embeddingjob.TargetKindValidator(v); err != nil {
			return &ValidationError{Name: "target_kind", err: fmt.Errorf(`ent: validator failed for field "EmbeddingJob.target_kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := embeddingjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "EmbeddingJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *EmbeddingJobUpdateOne) sqlSave(ctx context.Context) (_node *EmbeddingJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(embeddingjob.Table, embeddingjob.Columns, sqlgraph.NewFieldSpec(embeddingjob.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EmbeddingJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, embeddingjob.FieldID)
		for _, f := range fields {
			if !embeddingjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != embeddingjob.FieldID {
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
	if value, ok := _u.mutation.TargetKind(); ok {
		_spec.SetField(embeddingjob.FieldTargetKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TargetID(); ok {
		_spec.SetField(embeddingjob.FieldTargetID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(embeddingjob.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(embeddingjob.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(embeddingjob.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextAttemptAt(); ok {
		_spec.SetField(embeddingjob.FieldNextAttemptAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(embeddingjob.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(embeddingjob.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(embeddingjob.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(embeddingjob.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(embeddingjob.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(embeddingjob.FieldLastInteractionAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(embeddingjob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(embeddingjob.FieldCompletedAt, field.TypeTime)
	}
	_node = &EmbeddingJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{embeddingjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
