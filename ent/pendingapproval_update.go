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
	"github.com/memograph/memograph/ent/pendingapproval"
	"github.com/memograph/memograph/ent/predicate"
)

// PendingApprovalUpdate is the builder for updating PendingApproval entities.
type PendingApprovalUpdate struct {
	config
	hooks    []Hook
	mutation *PendingApprovalMutation
}

// Where appends a list predicates to the PendingApprovalUpdate builder.
func (_u *PendingApprovalUpdate) Where(ps ...predicate.PendingApproval) *PendingApprovalUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetItemType sets the "item_type" field.
func (_u *PendingApprovalUpdate) SetItemType(v pendingapproval.ItemType) *PendingApprovalUpdate {
	_u.mutation.SetItemType(v)
	return _u
}

// SetNillableItemType sets the "item_type" field if the given value is not nil.
func (_u *PendingApprovalUpdate) SetNillableItemType(v *pendingapproval.ItemType) *PendingApprovalUpdate {
	if v != nil {
		_u.SetItemType(*v)
	}
	return _u
}

// SetTargetID sets the "target_id" field.
func (_u *PendingApprovalUpdate) SetTargetID(v string) *PendingApprovalUpdate {
	_u.mutation.SetTargetID(v)
	return _u
}

// SetNillableTargetID sets the "target_id" field if the given value is not nil.
func (_u *PendingApprovalUpdate) SetNillableTargetID(v *string) *PendingApprovalUpdate {
	if v != nil {
		_u.SetTargetID(*v)
	}
	return _u
}

// SetBatchID sets the "batch_id" field.
func (_u *PendingApprovalUpdate) SetBatchID(v string) *PendingApprovalUpdate {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *PendingApprovalUpdate) SetNillableBatchID(v *string) *PendingApprovalUpdate {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PendingApprovalUpdate) SetStatus(v pendingapproval.Status) *PendingApprovalUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PendingApprovalUpdate) SetNillableStatus(v *pendingapproval.Status) *PendingApprovalUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *PendingApprovalUpdate) SetConfidence(v float64) *PendingApprovalUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *PendingApprovalUpdate) SetNillableConfidence(v *float64) *PendingApprovalUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *PendingApprovalUpdate) AddConfidence(v float64) *PendingApprovalUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetSourceQuote sets the "source_quote" field.
func (_u *PendingApprovalUpdate) SetSourceQuote(v string) *PendingApprovalUpdate {
	_u.mutation.SetSourceQuote(v)
	return _u
}

// SetNillableSourceQuote sets the "source_quote" field if the given value is not nil.
func (_u *PendingApprovalUpdate) SetNillableSourceQuote(v *string) *PendingApprovalUpdate {
	if v != nil {
		_u.SetSourceQuote(*v)
	}
	return _u
}

// ClearSourceQuote clears the value of the "source_quote" field.
func (_u *PendingApprovalUpdate) ClearSourceQuote() *PendingApprovalUpdate {
	_u.mutation.ClearSourceQuote()
	return _u
}

// SetSourceInteractionID sets the "source_interaction_id" field.
func (_u *PendingApprovalUpdate) SetSourceInteractionID(v string) *PendingApprovalUpdate {
	_u.mutation.SetSourceInteractionID(v)
	return _u
}

// SetNillableSourceInteractionID sets the "source_interaction_id" field if the given value is not nil.
func (_u *PendingApprovalUpdate) SetNillableSourceInteractionID(v *string) *PendingApprovalUpdate {
	if v != nil {
		_u.SetSourceInteractionID(*v)
	}
	return _u
}

// ClearSourceInteractionID clears the value of the "source_interaction_id" field.
func (_u *PendingApprovalUpdate) ClearSourceInteractionID() *PendingApprovalUpdate {
	_u.mutation.ClearSourceInteractionID()
	return _u
}

// SetSourceEntityID sets the "source_entity_id" field.
func (_u *PendingApprovalUpdate) SetSourceEntityID(v string) *PendingApprovalUpdate {
	_u.mutation.SetSourceEntityID(v)
	return _u
}

// SetNillableSourceEntityID sets the "source_entity_id" field if the given value is not nil.
func (_u *PendingApprovalUpdate) SetNillableSourceEntityID(v *string) *PendingApprovalUpdate {
	if v != nil {
		_u.SetSourceEntityID(*v)
	}
	return _u
}

// ClearSourceEntityID clears the value of the "source_entity_id" field.
func (_u *PendingApprovalUpdate) ClearSourceEntityID() *PendingApprovalUpdate {
	_u.mutation.ClearSourceEntityID()
	return _u
}

// SetContext sets the "context" field.
func (_u *PendingApprovalUpdate) SetContext(v string) *PendingApprovalUpdate {
	_u.mutation.SetContext(v)
	return _u
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (_u *PendingApprovalUpdate) SetNillableContext(v *string) *PendingApprovalUpdate {
	if v != nil {
		_u.SetContext(*v)
	}
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *PendingApprovalUpdate) ClearContext() *PendingApprovalUpdate {
	_u.mutation.ClearContext()
	return _u
}

// SetReviewedAt sets the "reviewed_at" field.
func (_u *PendingApprovalUpdate) SetReviewedAt(v time.Time) *PendingApprovalUpdate {
	_u.mutation.SetReviewedAt(v)
	return _u
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_u *PendingApprovalUpdate) SetNillableReviewedAt(v *time.Time) *PendingApprovalUpdate {
	if v != nil {
		_u.SetReviewedAt(*v)
	}
	return _u
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (_u *PendingApprovalUpdate) ClearReviewedAt() *PendingApprovalUpdate {
	_u.mutation.ClearReviewedAt()
	return _u
}

// Mutation returns the PendingApprovalMutation object of the builder.
func (_u *PendingApprovalUpdate) Mutation() *PendingApprovalMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PendingApprovalUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PendingApprovalUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PendingApprovalUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PendingApprovalUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PendingApprovalUpdate) check() error {
	if v, ok := _u.mutation.ItemType(); ok {
		if err := pendingapproval.ItemTypeValidator(v); err != nil {
			return &ValidationError{Name: "item_type", err: fmt.Errorf(`ent: validator failed for field "PendingApproval.item_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := pendingapproval.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PendingApproval.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := pendingapproval.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "PendingApproval.confidence": %w`, err)}
		}
	}
	return nil
}

func (_u *PendingApprovalUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pendingapproval.Table, pendingapproval.Columns, sqlgraph.NewFieldSpec(pendingapproval.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ItemType(); ok {
		_spec.SetField(pendingapproval.FieldItemType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TargetID(); ok {
		_spec.SetField(pendingapproval.FieldTargetID, field.TypeString, value)
	}
	if value, ok := _u.mutation.BatchID(); ok {
		_spec.SetField(pendingapproval.FieldBatchID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pendingapproval.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(pendingapproval.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(pendingapproval.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SourceQuote(); ok {
		_spec.SetField(pendingapproval.FieldSourceQuote, field.TypeString, value)
	}
	if _u.mutation.SourceQuoteCleared() {
		_spec.ClearField(pendingapproval.FieldSourceQuote, field.TypeString)
	}
	if value, ok := _u.mutation.SourceInteractionID(); ok {
		_spec.SetField(pendingapproval.FieldSourceInteractionID, field.TypeString, value)
	}
	if _u.mutation.SourceInteractionIDCleared() {
		_spec.ClearField(pendingapproval.FieldSourceInteractionID, field.TypeString)
	}
	if value, ok := _u.mutation.SourceEntityID(); ok {
		_spec.SetField(pendingapproval.FieldSourceEntityID, field.TypeString, value)
	}
	if _u.mutation.SourceEntityIDCleared() {
		_spec.ClearField(pendingapproval.FieldSourceEntityID, field.TypeString)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(pendingapproval.FieldContext, field.TypeString, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(pendingapproval.FieldContext, field.TypeString)
	}
	if value, ok := _u.mutation.ReviewedAt(); ok {
		_spec.SetField(pendingapproval.FieldReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.ReviewedAtCleared() {
		_spec.ClearField(pendingapproval.FieldReviewedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pendingapproval.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PendingApprovalUpdateOne is the builder for updating a single PendingApproval entity.
type PendingApprovalUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PendingApprovalMutation
}

// SetItemType sets the "item_type" field.
func (_u *PendingApprovalUpdateOne) SetItemType(v pendingapproval.ItemType) *PendingApprovalUpdateOne {
	_u.mutation.SetItemType(v)
	return _u
}

// SetNillableItemType sets the "item_type" field if the given value is not nil.
func (_u *PendingApprovalUpdateOne) SetNillableItemType(v *pendingapproval.ItemType) *PendingApprovalUpdateOne {
	if v != nil {
		_u.SetItemType(*v)
	}
	return _u
}

// SetTargetID sets the "target_id" field.
func (_u *PendingApprovalUpdateOne) SetTargetID(v string) *PendingApprovalUpdateOne {
	_u.mutation.SetTargetID(v)
	return _u
}

// SetNillableTargetID sets the "target_id" field if the given value is not nil.
func (_u *PendingApprovalUpdateOne) SetNillableTargetID(v *string) *PendingApprovalUpdateOne {
	if v != nil {
		_u.SetTargetID(*v)
	}
	return _u
}

// SetBatchID sets the "batch_id" field.
func (_u *PendingApprovalUpdateOne) SetBatchID(v string) *PendingApprovalUpdateOne {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *PendingApprovalUpdateOne) SetNillableBatchID(v *string) *PendingApprovalUpdateOne {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PendingApprovalUpdateOne) SetStatus(v pendingapproval.Status) *PendingApprovalUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PendingApprovalUpdateOne) SetNillableStatus(v *pendingapproval.Status) *PendingApprovalUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *PendingApprovalUpdateOne) SetConfidence(v float64) *PendingApprovalUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *PendingApprovalUpdateOne) SetNillableConfidence(v *float64) *PendingApprovalUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *PendingApprovalUpdateOne) AddConfidence(v float64) *PendingApprovalUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetSourceQuote sets the "source_quote" field.
func (_u *PendingApprovalUpdateOne) SetSourceQuote(v string) *PendingApprovalUpdateOne {
	_u.mutation.SetSourceQuote(v)
	return _u
}

// SetNillableSourceQuote sets the "source_quote" field if the given value is not nil.
func (_u *PendingApprovalUpdateOne) SetNillableSourceQuote(v *string) *PendingApprovalUpdateOne {
	if v != nil {
		_u.SetSourceQuote(*v)
	}
	return _u
}

// ClearSourceQuote clears the value of the "source_quote" field.
func (_u *PendingApprovalUpdateOne) ClearSourceQuote() *PendingApprovalUpdateOne {
	_u.mutation.ClearSourceQuote()
	return _u
}

// SetSourceInteractionID sets the "source_interaction_id" field.
func (_u *PendingApprovalUpdateOne) SetSourceInteractionID(v string) *PendingApprovalUpdateOne {
	_u.mutation.SetSourceInteractionID(v)
	return _u
}

// SetNillableSourceInteractionID sets the "source_interaction_id" field if the given value is not nil.
func (_u *PendingApprovalUpdateOne) SetNillableSourceInteractionID(v *string) *PendingApprovalUpdateOne {
	if v != nil {
		_u.SetSourceInteractionID(*v)
	}
	return _u
}

// ClearSourceInteractionID clears the value of the "source_interaction_id" field.
func (_u *PendingApprovalUpdateOne) ClearSourceInteractionID() *PendingApprovalUpdateOne {
	_u.mutation.ClearSourceInteractionID()
	return _u
}

// SetSourceEntityID sets the "source_entity_id" field.
func (_u *PendingApprovalUpdateOne) SetSourceEntityID(v string) *PendingApprovalUpdateOne {
	_u.mutation.SetSourceEntityID(v)
	return _u
}

// SetNillableSourceEntityID sets the "source_entity_id" field if the given value is not nil.
func (_u *PendingApprovalUpdateOne) SetNillableSourceEntityID(v *string) *PendingApprovalUpdateOne {
	if v != nil {
		_u.SetSourceEntityID(*v)
	}
	return _u
}

// ClearSourceEntityID clears the value of the "source_entity_id" field.
func (_u *PendingApprovalUpdateOne) ClearSourceEntityID() *PendingApprovalUpdateOne {
	_u.mutation.ClearSourceEntityID()
	return _u
}

// SetContext sets the "context" field.
func (_u *PendingApprovalUpdateOne) SetContext(v string) *PendingApprovalUpdateOne {
	_u.mutation.SetContext(v)
	return _u
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (_u *PendingApprovalUpdateOne) SetNillableContext(v *string) *PendingApprovalUpdateOne {
	if v != nil {
		_u.SetContext(*v)
	}
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *PendingApprovalUpdateOne) ClearContext() *PendingApprovalUpdateOne {
	_u.mutation.ClearContext()
	return _u
}

// SetReviewedAt sets the "reviewed_at" field.
func (_u *PendingApprovalUpdateOne) SetReviewedAt(v time.Time) *PendingApprovalUpdateOne {
	_u.mutation.SetReviewedAt(v)
	return _u
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_u *PendingApprovalUpdateOne) SetNillableReviewedAt(v *time.Time) *PendingApprovalUpdateOne {
	if v != nil {
		_u.SetReviewedAt(*v)
	}
	return _u
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (_u *PendingApprovalUpdateOne) ClearReviewedAt() *PendingApprovalUpdateOne {
	_u.mutation.ClearReviewedAt()
	return _u
}

// Mutation returns the PendingApprovalMutation object of the builder.
func (_u *PendingApprovalUpdateOne) Mutation() *PendingApprovalMutation {
	return _u.mutation
}

// Where appends a list predicates to the PendingApprovalUpdate builder.
func (_u *PendingApprovalUpdateOne) Where(ps ...predicate.PendingApproval) *PendingApprovalUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PendingApprovalUpdateOne) Select(field string, fields ...string) *PendingApprovalUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PendingApproval entity.
func (_u *PendingApprovalUpdateOne) Save(ctx context.Context) (*PendingApproval, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PendingApprovalUpdateOne) SaveX(ctx context.Context) *PendingApproval {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PendingApprovalUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PendingApprovalUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PendingApprovalUpdateOne) check() error {
	if v, ok := _u.mutation.ItemType(); ok {
		if err := pendingapproval.ItemTypeValidator(v); err != nil {
			return &ValidationError{Name: "item_type", err: fmt.Errorf(`ent: validator failed for field "PendingApproval.item_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := pendingapproval.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PendingApproval.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := pendingapproval.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "PendingApproval.confidence": %w`, err)}
		}
	}
	return nil
}

func (_u *PendingApprovalUpdateOne) sqlSave(ctx context.Context) (_node *PendingApproval, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pendingapproval.Table, pendingapproval.Columns, sqlgraph.NewFieldSpec(pendingapproval.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PendingApproval.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pendingapproval.FieldID)
		for _, f := range fields {
			if !pendingapproval.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pendingapproval.FieldID {
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
	if value, ok := _u.mutation.ItemType(); ok {
		_spec.SetField(pendingapproval.FieldItemType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TargetID(); ok {
		_spec.SetField(pendingapproval.FieldTargetID, field.TypeString, value)
	}
	if value, ok := _u.mutation.BatchID(); ok {
		_spec.SetField(pendingapproval.FieldBatchID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pendingapproval.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(pendingapproval.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(pendingapproval.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SourceQuote(); ok {
		_spec.SetField(pendingapproval.FieldSourceQuote, field.TypeString, value)
	}
	if _u.mutation.SourceQuoteCleared() {
		_spec.ClearField(pendingapproval.FieldSourceQuote, field.TypeString)
	}
	if value, ok := _u.mutation.SourceInteractionID(); ok {
		_spec.SetField(pendingapproval.FieldSourceInteractionID, field.TypeString, value)
	}
	if _u.mutation.SourceInteractionIDCleared() {
		_spec.ClearField(pendingapproval.FieldSourceInteractionID, field.TypeString)
	}
	if value, ok := _u.mutation.SourceEntityID(); ok {
		_spec.SetField(pendingapproval.FieldSourceEntityID, field.TypeString, value)
	}
	if _u.mutation.SourceEntityIDCleared() {
		_spec.ClearField(pendingapproval.FieldSourceEntityID, field.TypeString)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(pendingapproval.FieldContext, field.TypeString, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(pendingapproval.FieldContext, field.TypeString)
	}
	if value, ok := _u.mutation.ReviewedAt(); ok {
		_spec.SetField(pendingapproval.FieldReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.ReviewedAtCleared() {
		_spec.ClearField(pendingapproval.FieldReviewedAt, field.TypeTime)
	}
	_node = &PendingApproval{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pendingapproval.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
