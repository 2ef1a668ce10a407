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
	"github.com/memograph/memograph/ent/commitment"
	"github.com/memograph/memograph/ent/predicate"
	pgvector "github.com/pgvector/pgvector-go"
)

// CommitmentUpdate is the builder for updating Commitment entities.
type CommitmentUpdate struct {
	config
	hooks    []Hook
	mutation *CommitmentMutation
}

// Where appends a list predicates to the CommitmentUpdate builder.
func (_u *CommitmentUpdate) Where(ps ...predicate.Commitment) *CommitmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetType sets the "type" field.
func (_u *CommitmentUpdate) SetType(v commitment.Type) *CommitmentUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *CommitmentUpdate) SetNillableType(v *commitment.Type) *CommitmentUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *CommitmentUpdate) SetTitle(v string) *CommitmentUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CommitmentUpdate) SetNillableTitle(v *string) *CommitmentUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *CommitmentUpdate) SetDescription(v string) *CommitmentUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CommitmentUpdate) SetNillableDescription(v *string) *CommitmentUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *CommitmentUpdate) ClearDescription() *CommitmentUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *CommitmentUpdate) SetStatus(v commitment.Status) *CommitmentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CommitmentUpdate) SetNillableStatus(v *commitment.Status) *CommitmentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFromEntityID sets the "from_entity_id" field.
func (_u *CommitmentUpdate) SetFromEntityID(v string) *CommitmentUpdate {
	_u.mutation.SetFromEntityID(v)
	return _u
}

// SetNillableFromEntityID sets the "from_entity_id" field if the given value is not nil.
func (_u *CommitmentUpdate) SetNillableFromEntityID(v *string) *CommitmentUpdate {
	if v != nil {
		_u.SetFromEntityID(*v)
	}
	return _u
}

// ClearFromEntityID clears the value of the "from_entity_id" field.
func (_u *CommitmentUpdate) ClearFromEntityID() *CommitmentUpdate {
	_u.mutation.ClearFromEntityID()
	return _u
}

// SetToEntityID sets the "to_entity_id" field.
func (_u *CommitmentUpdate) SetToEntityID(v string) *CommitmentUpdate {
	_u.mutation.SetToEntityID(v)
	return _u
}

// SetNillableToEntityID sets the "to_entity_id" field if the given value is not nil.
func (_u *CommitmentUpdate) SetNillableToEntityID(v *string) *CommitmentUpdate {
	if v != nil {
		_u.SetToEntityID(*v)
	}
	return _u
}

// ClearToEntityID clears the value of the "to_entity_id" field.
func (_u *CommitmentUpdate) ClearToEntityID() *CommitmentUpdate {
	_u.mutation.ClearToEntityID()
	return _u
}

// SetActivityID sets the "activity_id" field.
func (_u *CommitmentUpdate) SetActivityID(v string) *CommitmentUpdate {
	_u.mutation.SetActivityID(v)
	return _u
}

// SetNillableActivityID sets the "activity_id" field if the given value is not nil.
func (_u *CommitmentUpdate) SetNillableActivityID(v *string) *CommitmentUpdate {
	if v != nil {
		_u.SetActivityID(*v)
	}
	return _u
}

// ClearActivityID clears the value of the "activity_id" field.
func (_u *CommitmentUpdate) ClearActivityID() *CommitmentUpdate {
	_u.mutation.ClearActivityID()
	return _u
}

// SetSourceMessageID sets the "source_message_id" field.
func (_u *CommitmentUpdate) SetSourceMessageID(v string) *CommitmentUpdate {
	_u.mutation.SetSourceMessageID(v)
	return _u
}

// SetNillableSourceMessageID sets the "source_message_id" field if the given value is not nil.
func (_u *CommitmentUpdate) SetNillableSourceMessageID(v *string) *CommitmentUpdate {
	if v != nil {
		_u.SetSourceMessageID(*v)
	}
	return _u
}

// ClearSourceMessageID clears the value of the "source_message_id" field.
func (_u *CommitmentUpdate) ClearSourceMessageID() *CommitmentUpdate {
	_u.mutation.ClearSourceMessageID()
	return _u
}

// SetSourceInteractionID sets the "source_interaction_id" field.
func (_u *CommitmentUpdate) SetSourceInteractionID(v string) *CommitmentUpdate {
	_u.mutation.SetSourceInteractionID(v)
	return _u
}

// SetNillableSourceInteractionID sets the "source_interaction_id" field if the given value is not nil.
func (_u *CommitmentUpdate) SetNillableSourceInteractionID(v *string) *CommitmentUpdate {
	if v != nil {
		_u.SetSourceInteractionID(*v)
	}
	return _u
}

// ClearSourceInteractionID clears the value of the "source_interaction_id" field.
func (_u *CommitmentUpdate) ClearSourceInteractionID() *CommitmentUpdate {
	_u.mutation.ClearSourceInteractionID()
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *CommitmentUpdate) SetDueDate(v time.Time) *CommitmentUpdate {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *CommitmentUpdate) SetNillableDueDate(v *time.Time) *CommitmentUpdate {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// ClearDueDate clears the value of the "due_date" field.
func (_u *CommitmentUpdate) ClearDueDate() *CommitmentUpdate {
	_u.mutation.ClearDueDate()
	return _u
}

// SetRecurrenceRule sets the "recurrence_rule" field.
func (_u *CommitmentUpdate) SetRecurrenceRule(v string) *CommitmentUpdate {
	_u.mutation.SetRecurrenceRule(v)
	return _u
}

// SetNillableRecurrenceRule sets the "recurrence_rule" field if the given value is not nil.
func (_u *CommitmentUpdate) SetNillableRecurrenceRule(v *string) *CommitmentUpdate {
	if v != nil {
		_u.SetRecurrenceRule(*v)
	}
	return _u
}

// ClearRecurrenceRule clears the value of the "recurrence_rule" field.
func (_u *CommitmentUpdate) ClearRecurrenceRule() *CommitmentUpdate {
	_u.mutation.ClearRecurrenceRule()
	return _u
}

// SetNextReminderAt sets the "next_reminder_at" field.
func (_u *CommitmentUpdate) SetNextReminderAt(v time.Time) *CommitmentUpdate {
	_u.mutation.SetNextReminderAt(v)
	return _u
}

// SetNillableNextReminderAt sets the "next_reminder_at" field if the given value is not nil.
func (_u *CommitmentUpdate) SetNillableNextReminderAt(v *time.Time) *CommitmentUpdate {
	if v != nil {
		_u.SetNextReminderAt(*v)
	}
	return _u
}

// ClearNextReminderAt clears the value of the "next_reminder_at" field.
func (_u *CommitmentUpdate) ClearNextReminderAt() *CommitmentUpdate {
	_u.mutation.ClearNextReminderAt()
	return _u
}

// SetReminderCount sets the "reminder_count" field.
func (_u *CommitmentUpdate) SetReminderCount(v int) *CommitmentUpdate {
	_u.mutation.ResetReminderCount()
	_u.mutation.SetReminderCount(v)
	return _u
}

// SetNillableReminderCount sets the "reminder_count" field if the given value is not nil.
func (_u *CommitmentUpdate) SetNillableReminderCount(v *int) *CommitmentUpdate {
	if v != nil {
		_u.SetReminderCount(*v)
	}
	return _u
}

// AddReminderCount adds value to the "reminder_count" field.
func (_u *CommitmentUpdate) AddReminderCount(v int) *CommitmentUpdate {
	_u.mutation.AddReminderCount(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *CommitmentUpdate) SetConfidence(v float64) *CommitmentUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *CommitmentUpdate) SetNillableConfidence(v *float64) *CommitmentUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *CommitmentUpdate) AddConfidence(v float64) *CommitmentUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *CommitmentUpdate) SetNeedsReview(v bool) *CommitmentUpdate {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *CommitmentUpdate) SetNillableNeedsReview(v *bool) *CommitmentUpdate {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetConfirmationCount sets the "confirmation_count" field.
func (_u *CommitmentUpdate) SetConfirmationCount(v int) *CommitmentUpdate {
	_u.mutation.ResetConfirmationCount()
	_u.mutation.SetConfirmationCount(v)
	return _u
}

// SetNillableConfirmationCount sets the "confirmation_count" field if the given value is not nil.
func (_u *CommitmentUpdate) SetNillableConfirmationCount(v *int) *CommitmentUpdate {
	if v != nil {
		_u.SetConfirmationCount(*v)
	}
	return _u
}

// AddConfirmationCount adds value to the "confirmation_count" field.
func (_u *CommitmentUpdate) AddConfirmationCount(v int) *CommitmentUpdate {
	_u.mutation.AddConfirmationCount(v)
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *CommitmentUpdate) SetMetadata(v map[string]interface{}) *CommitmentUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *CommitmentUpdate) ClearMetadata() *CommitmentUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *CommitmentUpdate) SetEmbedding(v pgvector.Vector) *CommitmentUpdate {
	_u.mutation.SetEmbedding(v)
	return _u
}

// SetNillableEmbedding sets the "embedding" field if the given value is not nil.
func (_u *CommitmentUpdate) SetNillableEmbedding(v *pgvector.Vector) *CommitmentUpdate {
	if v != nil {
		_u.SetEmbedding(*v)
	}
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *CommitmentUpdate) ClearEmbedding() *CommitmentUpdate {
	_u.mutation.ClearEmbedding()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CommitmentUpdate) SetUpdatedAt(v time.Time) *CommitmentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *CommitmentUpdate) SetDeletedAt(v time.Time) *CommitmentUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *CommitmentUpdate) SetNillableDeletedAt(v *time.Time) *CommitmentUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *CommitmentUpdate) ClearDeletedAt() *CommitmentUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// Mutation returns the CommitmentMutation object of the builder.
func (_u *CommitmentUpdate) Mutation() *CommitmentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CommitmentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CommitmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CommitmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CommitmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CommitmentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := commitment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CommitmentUpdate) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := commitment.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Commitment.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := commitment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Commitment.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := commitment.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "Commitment.confidence": %w`, err)}
		}
	}
	return nil
}

func (_u *CommitmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(commitment.Table, commitment.Columns, sqlgraph.NewFieldSpec(commitment.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(commitment.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(commitment.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(commitment.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(commitment.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(commitment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FromEntityID(); ok {
		_spec.SetField(commitment.FieldFromEntityID, field.TypeString, value)
	}
	if _u.mutation.FromEntityIDCleared() {
		_spec.ClearField(commitment.FieldFromEntityID, field.TypeString)
	}
	if value, ok := _u.mutation.ToEntityID(); ok {
		_spec.SetField(commitment.FieldToEntityID, field.TypeString, value)
	}
	if _u.mutation.ToEntityIDCleared() {
		_spec.ClearField(commitment.FieldToEntityID, field.TypeString)
	}
	if value, ok := _u.mutation.ActivityID(); ok {
		_spec.SetField(commitment.FieldActivityID, field.TypeString, value)
	}
	if _u.mutation.ActivityIDCleared() {
		_spec.ClearField(commitment.FieldActivityID, field.TypeString)
	}
	if value, ok := _u.mutation.SourceMessageID(); ok {
		_spec.SetField(commitment.FieldSourceMessageID, field.TypeString, value)
	}
	if _u.mutation.SourceMessageIDCleared() {
		_spec.ClearField(commitment.FieldSourceMessageID, field.TypeString)
	}
	if value, ok := _u.mutation.SourceInteractionID(); ok {
		_spec.SetField(commitment.FieldSourceInteractionID, field.TypeString, value)
	}
	if _u.mutation.SourceInteractionIDCleared() {
		_spec.ClearField(commitment.FieldSourceInteractionID, field.TypeString)
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(commitment.FieldDueDate, field.TypeTime, value)
	}
	if _u.mutation.DueDateCleared() {
		_spec.ClearField(commitment.FieldDueDate, field.TypeTime)
	}
	if value, ok := _u.mutation.RecurrenceRule(); ok {
		_spec.SetField(commitment.FieldRecurrenceRule, field.TypeString, value)
	}
	if _u.mutation.RecurrenceRuleCleared() {
		_spec.ClearField(commitment.FieldRecurrenceRule, field.TypeString)
	}
	if value, ok := _u.mutation.NextReminderAt(); ok {
		_spec.SetField(commitment.FieldNextReminderAt, field.TypeTime, value)
	}
	if _u.mutation.NextReminderAtCleared() {
		_spec.ClearField(commitment.FieldNextReminderAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ReminderCount(); ok {
		_spec.SetField(commitment.FieldReminderCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReminderCount(); ok {
		_spec.AddField(commitment.FieldReminderCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(commitment.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(commitment.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(commitment.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ConfirmationCount(); ok {
		_spec.SetField(commitment.FieldConfirmationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConfirmationCount(); ok {
		_spec.AddField(commitment.FieldConfirmationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(commitment.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(commitment.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(commitment.FieldEmbedding, field.TypeOther, value)
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(commitment.FieldEmbedding, field.TypeOther)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(commitment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(commitment.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(commitment.FieldDeletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{commitment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CommitmentUpdateOne is the builder for updating a single Commitment entity.
type CommitmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CommitmentMutation
}

// SetType sets the "type" field.
func (_u *CommitmentUpdateOne) SetType(v commitment.Type) *CommitmentUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *CommitmentUpdateOne) SetNillableType(v *commitment.Type) *CommitmentUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *CommitmentUpdateOne) SetTitle(v string) *CommitmentUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CommitmentUpdateOne) SetNillableTitle(v *string) *CommitmentUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *CommitmentUpdateOne) SetDescription(v string) *CommitmentUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CommitmentUpdateOne) SetNillableDescription(v *string) *CommitmentUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *CommitmentUpdateOne) ClearDescription() *CommitmentUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *CommitmentUpdateOne) SetStatus(v commitment.Status) *CommitmentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CommitmentUpdateOne) SetNillableStatus(v *commitment.Status) *CommitmentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFromEntityID sets the "from_entity_id" field.
func (_u *CommitmentUpdateOne) SetFromEntityID(v string) *CommitmentUpdateOne {
	_u.mutation.SetFromEntityID(v)
	return _u
}

// SetNillableFromEntityID sets the "from_entity_id" field if the given value is not nil.
func (_u *CommitmentUpdateOne) SetNillableFromEntityID(v *string) *CommitmentUpdateOne {
	if v != nil {
		_u.SetFromEntityID(*v)
	}
	return _u
}

// ClearFromEntityID clears the value of the "from_entity_id" field.
func (_u *CommitmentUpdateOne) ClearFromEntityID() *CommitmentUpdateOne {
	_u.mutation.ClearFromEntityID()
	return _u
}

// SetToEntityID sets the "to_entity_id" field.
func (_u *CommitmentUpdateOne) SetToEntityID(v string) *CommitmentUpdateOne {
	_u.mutation.SetToEntityID(v)
	return _u
}

// SetNillableToEntityID sets the "to_entity_id" field if the given value is not nil.
func (_u *CommitmentUpdateOne) SetNillableToEntityID(v *string) *CommitmentUpdateOne {
	if v != nil {
		_u.SetToEntityID(*v)
	}
	return _u
}

// ClearToEntityID clears the value of the "to_entity_id" field.
func (_u *CommitmentUpdateOne) ClearToEntityID() *CommitmentUpdateOne {
	_u.mutation.ClearToEntityID()
	return _u
}

// SetActivityID sets the "activity_id" field.
func (_u *CommitmentUpdateOne) SetActivityID(v string) *CommitmentUpdateOne {
	_u.mutation.SetActivityID(v)
	return _u
}

// SetNillableActivityID sets the "activity_id" field if the given value is not nil.
func (_u *CommitmentUpdateOne) SetNillableActivityID(v *string) *CommitmentUpdateOne {
	if v != nil {
		_u.SetActivityID(*v)
	}
	return _u
}

// ClearActivityID clears the value of the "activity_id" field.
func (_u *CommitmentUpdateOne) ClearActivityID() *CommitmentUpdateOne {
	_u.mutation.ClearActivityID()
	return _u
}

// SetSourceMessageID sets the "source_message_id" field.
func (_u *CommitmentUpdateOne) SetSourceMessageID(v string) *CommitmentUpdateOne {
	_u.mutation.SetSourceMessageID(v)
	return _u
}

// SetNillableSourceMessageID sets the "source_message_id" field if the given value is not nil.
func (_u *CommitmentUpdateOne) SetNillableSourceMessageID(v *string) *CommitmentUpdateOne {
	if v != nil {
		_u.SetSourceMessageID(*v)
	}
	return _u
}

// ClearSourceMessageID clears the value of the "source_message_id" field.
func (_u *CommitmentUpdateOne) ClearSourceMessageID() *CommitmentUpdateOne {
	_u.mutation.ClearSourceMessageID()
	return _u
}

// SetSourceInteractionID sets the "source_interaction_id" field.
func (_u *CommitmentUpdateOne) SetSourceInteractionID(v string) *CommitmentUpdateOne {
	_u.mutation.SetSourceInteractionID(v)
	return _u
}

// SetNillableSourceInteractionID sets the "source_interaction_id" field if the given value is not nil.
func (_u *CommitmentUpdateOne) SetNillableSourceInteractionID(v *string) *CommitmentUpdateOne {
	if v != nil {
		_u.SetSourceInteractionID(*v)
	}
	return _u
}

// ClearSourceInteractionID clears the value of the "source_interaction_id" field.
func (_u *CommitmentUpdateOne) ClearSourceInteractionID() *CommitmentUpdateOne {
	_u.mutation.ClearSourceInteractionID()
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *CommitmentUpdateOne) SetDueDate(v time.Time) *CommitmentUpdateOne {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *CommitmentUpdateOne) SetNillableDueDate(v *time.Time) *CommitmentUpdateOne {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// ClearDueDate clears the value of the "due_date" field.
func (_u *CommitmentUpdateOne) ClearDueDate() *CommitmentUpdateOne {
	_u.mutation.ClearDueDate()
	return _u
}

// SetRecurrenceRule sets the "recurrence_rule" field.
func (_u *CommitmentUpdateOne) SetRecurrenceRule(v string) *CommitmentUpdateOne {
	_u.mutation.SetRecurrenceRule(v)
	return _u
}

// SetNillableRecurrenceRule sets the "recurrence_rule" field if the given value is not nil.
func (_u *CommitmentUpdateOne) SetNillableRecurrenceRule(v *string) *CommitmentUpdateOne {
	if v != nil {
		_u.SetRecurrenceRule(*v)
	}
	return _u
}

// ClearRecurrenceRule clears the value of the "recurrence_rule" field.
func (_u *CommitmentUpdateOne) ClearRecurrenceRule() *CommitmentUpdateOne {
	_u.mutation.ClearRecurrenceRule()
	return _u
}

// SetNextReminderAt sets the "next_reminder_at" field.
func (_u *CommitmentUpdateOne) SetNextReminderAt(v time.Time) *CommitmentUpdateOne {
	_u.mutation.SetNextReminderAt(v)
	return _u
}

// SetNillableNextReminderAt sets the "next_reminder_at" field if the given value is not nil.
func (_u *CommitmentUpdateOne) SetNillableNextReminderAt(v *time.Time) *CommitmentUpdateOne {
	if v != nil {
		_u.SetNextReminderAt(*v)
	}
	return _u
}

// ClearNextReminderAt clears the value of the "next_reminder_at" field.
func (_u *CommitmentUpdateOne) ClearNextReminderAt() *CommitmentUpdateOne {
	_u.mutation.ClearNextReminderAt()
	return _u
}

// SetReminderCount sets the "reminder_count" field.
func (_u *CommitmentUpdateOne) SetReminderCount(v int) *CommitmentUpdateOne {
	_u.mutation.ResetReminderCount()
	_u.mutation.SetReminderCount(v)
	return _u
}

// SetNillableReminderCount sets the "reminder_count" field if the given value is not nil.
func (_u *CommitmentUpdateOne) SetNillableReminderCount(v *int) *CommitmentUpdateOne {
	if v != nil {
		_u.SetReminderCount(*v)
	}
	return _u
}

// AddReminderCount adds value to the "reminder_count" field.
func (_u *CommitmentUpdateOne) AddReminderCount(v int) *CommitmentUpdateOne {
	_u.mutation.AddReminderCount(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *CommitmentUpdateOne) SetConfidence(v float64) *CommitmentUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *CommitmentUpdateOne) SetNillableConfidence(v *float64) *CommitmentUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *CommitmentUpdateOne) AddConfidence(v float64) *CommitmentUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *CommitmentUpdateOne) SetNeedsReview(v bool) *CommitmentUpdateOne {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *CommitmentUpdateOne) SetNillableNeedsReview(v *bool) *CommitmentUpdateOne {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetConfirmationCount sets the "confirmation_count" field.
func (_u *CommitmentUpdateOne) SetConfirmationCount(v int) *CommitmentUpdateOne {
	_u.mutation.ResetConfirmationCount()
	_u.mutation.SetConfirmationCount(v)
	return _u
}

// SetNillableConfirmationCount sets the "confirmation_count" field if the given value is not nil.
func (_u *CommitmentUpdateOne) SetNillableConfirmationCount(v *int) *CommitmentUpdateOne {
	if v != nil {
		_u.SetConfirmationCount(*v)
	}
	return _u
}

// AddConfirmationCount adds value to the "confirmation_count" field.
func (_u *CommitmentUpdateOne) AddConfirmationCount(v int) *CommitmentUpdateOne {
	_u.mutation.AddConfirmationCount(v)
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *CommitmentUpdateOne) SetMetadata(v map[string]interface{}) *CommitmentUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *CommitmentUpdateOne) ClearMetadata() *CommitmentUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *CommitmentUpdateOne) SetEmbedding(v pgvector.Vector) *CommitmentUpdateOne {
	_u.mutation.SetEmbedding(v)
	return _u
}

// SetNillableEmbedding sets the "embedding" field if the given value is not nil.
func (_u *CommitmentUpdateOne) SetNillableEmbedding(v *pgvector.Vector) *CommitmentUpdateOne {
	if v != nil {
		_u.SetEmbedding(*v)
	}
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *CommitmentUpdateOne) ClearEmbedding() *CommitmentUpdateOne {
	_u.mutation.ClearEmbedding()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CommitmentUpdateOne) SetUpdatedAt(v time.Time) *CommitmentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *CommitmentUpdateOne) SetDeletedAt(v time.Time) *CommitmentUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *CommitmentUpdateOne) SetNillableDeletedAt(v *time.Time) *CommitmentUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *CommitmentUpdateOne) ClearDeletedAt() *CommitmentUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// Mutation returns the CommitmentMutation object of the builder.
func (_u *CommitmentUpdateOne) Mutation() *CommitmentMutation {
	return _u.mutation
}

// Where appends a list predicates to the CommitmentUpdate builder.
func (_u *CommitmentUpdateOne) Where(ps ...predicate.Commitment) *CommitmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CommitmentUpdateOne) Select(field string, fields ...string) *CommitmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Commitment entity.
func (_u *CommitmentUpdateOne) Save(ctx context.Context) (*Commitment, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CommitmentUpdateOne) SaveX(ctx context.Context) *Commitment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CommitmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CommitmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CommitmentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := commitment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CommitmentUpdateOne) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := commitment.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Commitment.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := commitment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Commitment.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := commitment.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "Commitment.confidence": %w`, err)}
		}
	}
	return nil
}

func (_u *CommitmentUpdateOne) sqlSave(ctx context.Context) (_node *Commitment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(commitment.Table, commitment.Columns, sqlgraph.NewFieldSpec(commitment.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Commitment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, commitment.FieldID)
		for _, f := range fields {
			if !commitment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != commitment.FieldID {
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
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(commitment.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(commitment.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(commitment.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(commitment.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(commitment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FromEntityID(); ok {
		_spec.SetField(commitment.FieldFromEntityID, field.TypeString, value)
	}
	if _u.mutation.FromEntityIDCleared() {
		_spec.ClearField(commitment.FieldFromEntityID, field.TypeString)
	}
	if value, ok := _u.mutation.ToEntityID(); ok {
		_spec.SetField(commitment.FieldToEntityID, field.TypeString, value)
	}
	if _u.mutation.ToEntityIDCleared() {
		_spec.ClearField(commitment.FieldToEntityID, field.TypeString)
	}
	if value, ok := _u.mutation.ActivityID(); ok {
		_spec.SetField(commitment.FieldActivityID, field.TypeString, value)
	}
	if _u.mutation.ActivityIDCleared() {
		_spec.ClearField(commitment.FieldActivityID, field.TypeString)
	}
	if value, ok := _u.mutation.SourceMessageID(); ok {
		_spec.SetField(commitment.FieldSourceMessageID, field.TypeString, value)
	}
	if _u.mutation.SourceMessageIDCleared() {
		_spec.ClearField(commitment.FieldSourceMessageID, field.TypeString)
	}
	if value, ok := _u.mutation.SourceInteractionID(); ok {
		_spec.SetField(commitment.FieldSourceInteractionID, field.TypeString, value)
	}
	if _u.mutation.SourceInteractionIDCleared() {
		_spec.ClearField(commitment.FieldSourceInteractionID, field.TypeString)
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(commitment.FieldDueDate, field.TypeTime, value)
	}
	if _u.mutation.DueDateCleared() {
		_spec.ClearField(commitment.FieldDueDate, field.TypeTime)
	}
	if value, ok := _u.mutation.RecurrenceRule(); ok {
		_spec.SetField(commitment.FieldRecurrenceRule, field.TypeString, value)
	}
	if _u.mutation.RecurrenceRuleCleared() {
		_spec.ClearField(commitment.FieldRecurrenceRule, field.TypeString)
	}
	if value, ok := _u.mutation.NextReminderAt(); ok {
		_spec.SetField(commitment.FieldNextReminderAt, field.TypeTime, value)
	}
	if _u.mutation.NextReminderAtCleared() {
		_spec.ClearField(commitment.FieldNextReminderAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ReminderCount(); ok {
		_spec.SetField(commitment.FieldReminderCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReminderCount(); ok {
		_spec.AddField(commitment.FieldReminderCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(commitment.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(commitment.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(commitment.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ConfirmationCount(); ok {
		_spec.SetField(commitment.FieldConfirmationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConfirmationCount(); ok {
		_spec.AddField(commitment.FieldConfirmationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(commitment.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(commitment.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(commitment.FieldEmbedding, field.TypeOther, value)
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(commitment.FieldEmbedding, field.TypeOther)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(commitment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(commitment.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(commitment.FieldDeletedAt, field.TypeTime)
	}
	_node = &Commitment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{commitment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
