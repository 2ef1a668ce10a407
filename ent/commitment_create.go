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
	"github.com/memograph/memograph/ent/commitment"
	pgvector "github.com/pgvector/pgvector-go"
)

// CommitmentCreate is the builder for creating a Commitment entity.
type CommitmentCreate struct {
	config
	mutation *CommitmentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetType sets the "type" field.
func (_c *CommitmentCreate) SetType(v commitment.Type) *CommitmentCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_c *CommitmentCreate) SetNillableType(v *commitment.Type) *CommitmentCreate {
	if v != nil {
		_c.SetType(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *CommitmentCreate) SetTitle(v string) *CommitmentCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *CommitmentCreate) SetDescription(v string) *CommitmentCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *CommitmentCreate) SetNillableDescription(v *string) *CommitmentCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *CommitmentCreate) SetStatus(v commitment.Status) *CommitmentCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CommitmentCreate) SetNillableStatus(v *commitment.Status) *CommitmentCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetFromEntityID sets the "from_entity_id" field.
func (_c *CommitmentCreate) SetFromEntityID(v string) *CommitmentCreate {
	_c.mutation.SetFromEntityID(v)
	return _c
}

// SetNillableFromEntityID sets the "from_entity_id" field if the given value is not nil.
func (_c *CommitmentCreate) SetNillableFromEntityID(v *string) *CommitmentCreate {
	if v != nil {
		_c.SetFromEntityID(*v)
	}
	return _c
}

// SetToEntityID sets the "to_entity_id" field.
func (_c *CommitmentCreate) SetToEntityID(v string) *CommitmentCreate {
	_c.mutation.SetToEntityID(v)
	return _c
}

// SetNillableToEntityID sets the "to_entity_id" field if the given value is not nil.
func (_c *CommitmentCreate) SetNillableToEntityID(v *string) *CommitmentCreate {
	if v != nil {
		_c.SetToEntityID(*v)
	}
	return _c
}

// SetActivityID sets the "activity_id" field.
func (_c *CommitmentCreate) SetActivityID(v string) *CommitmentCreate {
	_c.mutation.SetActivityID(v)
	return _c
}

// SetNillableActivityID sets the "activity_id" field if the given value is not nil.
func (_c *CommitmentCreate) SetNillableActivityID(v *string) *CommitmentCreate {
	if v != nil {
		_c.SetActivityID(*v)
	}
	return _c
}

// SetSourceMessageID sets the "source_message_id" field.
func (_c *CommitmentCreate) SetSourceMessageID(v string) *CommitmentCreate {
	_c.mutation.SetSourceMessageID(v)
	return _c
}

// SetNillableSourceMessageID sets the "source_message_id" field if the given value is not nil.
func (_c *CommitmentCreate) SetNillableSourceMessageID(v *string) *CommitmentCreate {
	if v != nil {
		_c.SetSourceMessageID(*v)
	}
	return _c
}

// SetSourceInteractionID sets the "source_interaction_id" field.
func (_c *CommitmentCreate) SetSourceInteractionID(v string) *CommitmentCreate {
	_c.mutation.SetSourceInteractionID(v)
	return _c
}

// SetNillableSourceInteractionID sets the "source_interaction_id" field if the given value is not nil.
func (_c *CommitmentCreate) SetNillableSourceInteractionID(v *string) *CommitmentCreate {
	if v != nil {
		_c.SetSourceInteractionID(*v)
	}
	return _c
}

// SetDueDate sets the "due_date" field.
func (_c *CommitmentCreate) SetDueDate(v time.Time) *CommitmentCreate {
	_c.mutation.SetDueDate(v)
	return _c
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_c *CommitmentCreate) SetNillableDueDate(v *time.Time) *CommitmentCreate {
	if v != nil {
		_c.SetDueDate(*v)
	}
	return _c
}

// SetRecurrenceRule sets the "recurrence_rule" field.
func (_c *CommitmentCreate) SetRecurrenceRule(v string) *CommitmentCreate {
	_c.mutation.SetRecurrenceRule(v)
	return _c
}

// SetNillableRecurrenceRule sets the "recurrence_rule" field if the given value is not nil.
func (_c *CommitmentCreate) SetNillableRecurrenceRule(v *string) *CommitmentCreate {
	if v != nil {
		_c.SetRecurrenceRule(*v)
	}
	return _c
}

// SetNextReminderAt sets the "next_reminder_at" field.
func (_c *CommitmentCreate) SetNextReminderAt(v time.Time) *CommitmentCreate {
	_c.mutation.SetNextReminderAt(v)
	return _c
}

// SetNillableNextReminderAt sets the "next_reminder_at" field if the given value is not nil.
func (_c *CommitmentCreate) SetNillableNextReminderAt(v *time.Time) *CommitmentCreate {
	if v != nil {
		_c.SetNextReminderAt(*v)
	}
	return _c
}

// SetReminderCount sets the "reminder_count" field.
func (_c *CommitmentCreate) SetReminderCount(v int) *CommitmentCreate {
	_c.mutation.SetReminderCount(v)
	return _c
}

// SetNillableReminderCount sets the "reminder_count" field if the given value is not nil.
func (_c *CommitmentCreate) SetNillableReminderCount(v *int) *CommitmentCreate {
	if v != nil {
		_c.SetReminderCount(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *CommitmentCreate) SetConfidence(v float64) *CommitmentCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *CommitmentCreate) SetNillableConfidence(v *float64) *CommitmentCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetNeedsReview sets the "needs_review" field.
func (_c *CommitmentCreate) SetNeedsReview(v bool) *CommitmentCreate {
	_c.mutation.SetNeedsReview(v)
	return _c
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_c *CommitmentCreate) SetNillableNeedsReview(v *bool) *CommitmentCreate {
	if v != nil {
		_c.SetNeedsReview(*v)
	}
	return _c
}

// SetConfirmationCount sets the "confirmation_count" field.
func (_c *CommitmentCreate) SetConfirmationCount(v int) *CommitmentCreate {
	_c.mutation.SetConfirmationCount(v)
	return _c
}

// SetNillableConfirmationCount sets the "confirmation_count" field if the given value is not nil.
func (_c *CommitmentCreate) SetNillableConfirmationCount(v *int) *CommitmentCreate {
	if v != nil {
		_c.SetConfirmationCount(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *CommitmentCreate) SetMetadata(v map[string]interface{}) *CommitmentCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetEmbedding sets the "embedding" field.
func (_c *CommitmentCreate) SetEmbedding(v pgvector.Vector) *CommitmentCreate {
	_c.mutation.SetEmbedding(v)
	return _c
}

// SetNillableEmbedding sets the "embedding" field if the given value is not nil.
func (_c *CommitmentCreate) SetNillableEmbedding(v *pgvector.Vector) *CommitmentCreate {
	if v != nil {
		_c.SetEmbedding(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CommitmentCreate) SetCreatedAt(v time.Time) *CommitmentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CommitmentCreate) SetNillableCreatedAt(v *time.Time) *CommitmentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CommitmentCreate) SetUpdatedAt(v time.Time) *CommitmentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CommitmentCreate) SetNillableUpdatedAt(v *time.Time) *CommitmentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *CommitmentCreate) SetDeletedAt(v time.Time) *CommitmentCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *CommitmentCreate) SetNillableDeletedAt(v *time.Time) *CommitmentCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CommitmentCreate) SetID(v string) *CommitmentCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the CommitmentMutation object of the builder.
func (_c *CommitmentCreate) Mutation() *CommitmentMutation {
	return _c.mutation
}

// Save creates the Commitment in the database.
func (_c *CommitmentCreate) Save(ctx context.Context) (*Commitment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CommitmentCreate) SaveX(ctx context.Context) *Commitment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CommitmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CommitmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CommitmentCreate) defaults() {
	if _, ok := _c.mutation.GetType(); !ok {
		v := commitment.DefaultType
		_c.mutation.SetType(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := commitment.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ReminderCount(); !ok {
		v := commitment.DefaultReminderCount
		_c.mutation.SetReminderCount(v)
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		v := commitment.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		v := commitment.DefaultNeedsReview
		_c.mutation.SetNeedsReview(v)
	}
	if _, ok := _c.mutation.ConfirmationCount(); !ok {
		v := commitment.DefaultConfirmationCount
		_c.mutation.SetConfirmationCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := commitment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := commitment.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CommitmentCreate) check() error {
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "Commitment.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := commitment.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Commitment.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Commitment.title"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Commitment.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := commitment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Commitment.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReminderCount(); !ok {
		return &ValidationError{Name: "reminder_count", err: errors.New(`ent: missing required field "Commitment.reminder_count"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "Commitment.confidence"`)}
	}
	if v, ok := _c.mutation.Confidence(); ok {
		if err := commitment.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "Commitment.confidence": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		return &ValidationError{Name: "needs_review", err: errors.New(`ent: missing required field "Commitment.needs_review"`)}
	}
	if _, ok := _c.mutation.ConfirmationCount(); !ok {
		return &ValidationError{Name: "confirmation_count", err: errors.New(`ent: missing required field "Commitment.confirmation_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Commitment.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Commitment.updated_at"`)}
	}
	return nil
}

func (_c *CommitmentCreate) sqlSave(ctx context.Context) (*Commitment, error) {
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
			return nil, fmt.Errorf("unexpected Commitment.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CommitmentCreate) createSpec() (*Commitment, *sqlgraph.CreateSpec) {
	var (
		_node = &Commitment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(commitment.Table, sqlgraph.NewFieldSpec(commitment.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(commitment.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(commitment.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(commitment.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(commitment.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.FromEntityID(); ok {
		_spec.SetField(commitment.FieldFromEntityID, field.TypeString, value)
		_node.FromEntityID = &value
	}
	if value, ok := _c.mutation.ToEntityID(); ok {
		_spec.SetField(commitment.FieldToEntityID, field.TypeString, value)
		_node.ToEntityID = &value
	}
	if value, ok := _c.mutation.ActivityID(); ok {
		_spec.SetField(commitment.FieldActivityID, field.TypeString, value)
		_node.ActivityID = &value
	}
	if value, ok := _c.mutation.SourceMessageID(); ok {
		_spec.SetField(commitment.FieldSourceMessageID, field.TypeString, value)
		_node.SourceMessageID = &value
	}
	if value, ok := _c.mutation.SourceInteractionID(); ok {
		_spec.SetField(commitment.FieldSourceInteractionID, field.TypeString, value)
		_node.SourceInteractionID = &value
	}
	if value, ok := _c.mutation.DueDate(); ok {
		_spec.SetField(commitment.FieldDueDate, field.TypeTime, value)
		_node.DueDate = &value
	}
	if value, ok := _c.mutation.RecurrenceRule(); ok {
		_spec.SetField(commitment.FieldRecurrenceRule, field.TypeString, value)
		_node.RecurrenceRule = value
	}
	if value, ok := _c.mutation.NextReminderAt(); ok {
		_spec.SetField(commitment.FieldNextReminderAt, field.TypeTime, value)
		_node.NextReminderAt = &value
	}
	if value, ok := _c.mutation.ReminderCount(); ok {
		_spec.SetField(commitment.FieldReminderCount, field.TypeInt, value)
		_node.ReminderCount = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(commitment.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.NeedsReview(); ok {
		_spec.SetField(commitment.FieldNeedsReview, field.TypeBool, value)
		_node.NeedsReview = value
	}
	if value, ok := _c.mutation.ConfirmationCount(); ok {
		_spec.SetField(commitment.FieldConfirmationCount, field.TypeInt, value)
		_node.ConfirmationCount = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(commitment.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.Embedding(); ok {
		_spec.SetField(commitment.FieldEmbedding, field.TypeOther, value)
		_node.Embedding = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(commitment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(commitment.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(commitment.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Commitment.Create().
//		SetType(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CommitmentUpsert) {
//			SetType(v+v).
//		}).
//		Exec(ctx)
func (_c *CommitmentCreate) OnConflict(opts ...sql.ConflictOption) *CommitmentUpsertOne {
	_c.conflict = opts
	return &CommitmentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Commitment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CommitmentCreate) OnConflictColumns(columns ...string) *CommitmentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CommitmentUpsertOne{
		create: _c,
	}
}

type (
	// CommitmentUpsertOne is the builder for "upsert"-ing
	//  one Commitment node.
	CommitmentUpsertOne struct {
		create *CommitmentCreate
	}

	// CommitmentUpsert is the "OnConflict" setter.
	CommitmentUpsert struct {
		*sql.UpdateSet
	}
)

// SetType sets the "type" field.
func (u *CommitmentUpsert) SetType(v commitment.Type) *CommitmentUpsert {
	u.Set(commitment.FieldType, v)
	return u
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *CommitmentUpsert) UpdateType() *CommitmentUpsert {
	u.SetExcluded(commitment.FieldType)
	return u
}

// SetTitle sets the "title" field.
func (u *CommitmentUpsert) SetTitle(v string) *CommitmentUpsert {
	u.Set(commitment.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *CommitmentUpsert) UpdateTitle() *CommitmentUpsert {
	u.SetExcluded(commitment.FieldTitle)
	return u
}

// SetDescription sets the "description" field.
func (u *CommitmentUpsert) SetDescription(v string) *CommitmentUpsert {
	u.Set(commitment.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *CommitmentUpsert) UpdateDescription() *CommitmentUpsert {
	u.SetExcluded(commitment.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *CommitmentUpsert) ClearDescription() *CommitmentUpsert {
	u.SetNull(commitment.FieldDescription)
	return u
}

// SetStatus sets the "status" field.
func (u *CommitmentUpsert) SetStatus(v commitment.Status) *CommitmentUpsert {
	u.Set(commitment.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CommitmentUpsert) UpdateStatus() *CommitmentUpsert {
	u.SetExcluded(commitment.FieldStatus)
	return u
}

// SetFromEntityID sets the "from_entity_id" field.
func (u *CommitmentUpsert) SetFromEntityID(v string) *CommitmentUpsert {
	u.Set(commitment.FieldFromEntityID, v)
	return u
}

// UpdateFromEntityID sets the "from_entity_id" field to the value that was provided on create.
func (u *CommitmentUpsert) UpdateFromEntityID() *CommitmentUpsert {
	u.SetExcluded(commitment.FieldFromEntityID)
	return u
}

// ClearFromEntityID clears the value of the "from_entity_id" field.
func (u *CommitmentUpsert) ClearFromEntityID() *CommitmentUpsert {
	u.SetNull(commitment.FieldFromEntityID)
	return u
}

// SetToEntityID sets the "to_entity_id" field.
func (u *CommitmentUpsert) SetToEntityID(v string) *CommitmentUpsert {
	u.Set(commitment.FieldToEntityID, v)
	return u
}

// UpdateToEntityID sets the "to_entity_id" field to the value that was provided on create.
func (u *CommitmentUpsert) UpdateToEntityID() *CommitmentUpsert {
	u.SetExcluded(commitment.FieldToEntityID)
	return u
}

// ClearToEntityID clears the value of the "to_entity_id" field.
func (u *CommitmentUpsert) ClearToEntityID() *CommitmentUpsert {
	u.SetNull(commitment.FieldToEntityID)
	return u
}

// SetActivityID sets the "activity_id" field.
func (u *CommitmentUpsert) SetActivityID(v string) *CommitmentUpsert {
	u.Set(commitment.FieldActivityID, v)
	return u
}

// UpdateActivityID sets the "activity_id" field to the value that was provided on create.
func (u *CommitmentUpsert) UpdateActivityID() *CommitmentUpsert {
	u.SetExcluded(commitment.FieldActivityID)
	return u
}

// ClearActivityID clears the value of the "activity_id" field.
func (u *CommitmentUpsert) ClearActivityID() *CommitmentUpsert {
	u.SetNull(commitment.FieldActivityID)
	return u
}

// SetSourceMessageID sets the "source_message_id" field.
func (u *CommitmentUpsert) SetSourceMessageID(v string) *CommitmentUpsert {
	u.Set(commitment.FieldSourceMessageID, v)
	return u
}

// UpdateSourceMessageID sets the "source_message_id" field to the value that was provided on create.
func (u *CommitmentUpsert) UpdateSourceMessageID() *CommitmentUpsert {
	u.SetExcluded(commitment.FieldSourceMessageID)
	return u
}

// ClearSourceMessageID clears the value of the "source_message_id" field.
func (u *CommitmentUpsert) ClearSourceMessageID() *CommitmentUpsert {
	u.SetNull(commitment.FieldSourceMessageID)
	return u
}

// SetSourceInteractionID sets the "source_interaction_id" field.
func (u *CommitmentUpsert) SetSourceInteractionID(v string) *CommitmentUpsert {
	u.Set(commitment.FieldSourceInteractionID, v)
	return u
}

// UpdateSourceInteractionID sets the "source_interaction_id" field to the value that was provided on create.
func (u *CommitmentUpsert) UpdateSourceInteractionID() *CommitmentUpsert {
	u.SetExcluded(commitment.FieldSourceInteractionID)
	return u
}

// ClearSourceInteractionID clears the value of the "source_interaction_id" field.
func (u *CommitmentUpsert) ClearSourceInteractionID() *CommitmentUpsert {
	u.SetNull(commitment.FieldSourceInteractionID)
	return u
}

// SetDueDate sets the "due_date" field.
func (u *CommitmentUpsert) SetDueDate(v time.Time) *CommitmentUpsert {
	u.Set(commitment.FieldDueDate, v)
	return u
}

// UpdateDueDate sets the "due_date" field to the value that was provided on create.
func (u *CommitmentUpsert) UpdateDueDate() *CommitmentUpsert {
	u.SetExcluded(commitment.FieldDueDate)
	return u
}

// ClearDueDate clears the value of the "due_date" field.
func (u *CommitmentUpsert) ClearDueDate() *CommitmentUpsert {
	u.SetNull(commitment.FieldDueDate)
	return u
}

// SetRecurrenceRule sets the "recurrence_rule" field.
func (u *CommitmentUpsert) SetRecurrenceRule(v string) *CommitmentUpsert {
	u.Set(commitment.FieldRecurrenceRule, v)
	return u
}

// UpdateRecurrenceRule sets the "recurrence_rule" field to the value that was provided on create.
func (u *CommitmentUpsert) UpdateRecurrenceRule() *CommitmentUpsert {
	u.SetExcluded(commitment.FieldRecurrenceRule)
	return u
}

// ClearRecurrenceRule clears the value of the "recurrence_rule" field.
func (u *CommitmentUpsert) ClearRecurrenceRule() *CommitmentUpsert {
	u.SetNull(commitment.FieldRecurrenceRule)
	return u
}

// SetNextReminderAt sets the "next_reminder_at" field.
func (u *CommitmentUpsert) SetNextReminderAt(v time.Time) *CommitmentUpsert {
	u.Set(commitment.FieldNextReminderAt, v)
	return u
}

// UpdateNextReminderAt sets the "next_reminder_at" field to the value that was provided on create.
func (u *CommitmentUpsert) UpdateNextReminderAt() *CommitmentUpsert {
	u.SetExcluded(commitment.FieldNextReminderAt)
	return u
}

// ClearNextReminderAt clears the value of the "next_reminder_at" field.
func (u *CommitmentUpsert) ClearNextReminderAt() *CommitmentUpsert {
	u.SetNull(commitment.FieldNextReminderAt)
	return u
}

// SetReminderCount sets the "reminder_count" field.
func (u *CommitmentUpsert) SetReminderCount(v int) *CommitmentUpsert {
	u.Set(commitment.FieldReminderCount, v)
	return u
}

// UpdateReminderCount sets the "reminder_count" field to the value that was provided on create.
func (u *CommitmentUpsert) UpdateReminderCount() *CommitmentUpsert {
	u.SetExcluded(commitment.FieldReminderCount)
	return u
}

// AddReminderCount adds v to the "reminder_count" field.
func (u *CommitmentUpsert) AddReminderCount(v int) *CommitmentUpsert {
	u.Add(commitment.FieldReminderCount, v)
	return u
}

// SetConfidence sets the "confidence" field.
func (u *CommitmentUpsert) SetConfidence(v float64) *CommitmentUpsert {
	u.Set(commitment.FieldConfidence, v)
	return u
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *CommitmentUpsert) UpdateConfidence() *CommitmentUpsert {
	u.SetExcluded(commitment.FieldConfidence)
	return u
}

// AddConfidence adds v to the "confidence" field.
func (u *CommitmentUpsert) AddConfidence(v float64) *CommitmentUpsert {
	u.Add(commitment.FieldConfidence, v)
	return u
}

// SetNeedsReview sets the "needs_review" field.
func (u *CommitmentUpsert) SetNeedsReview(v bool) *CommitmentUpsert {
	u.Set(commitment.FieldNeedsReview, v)
	return u
}

// UpdateNeedsReview sets the "needs_review" field to the value that was provided on create.
func (u *CommitmentUpsert) UpdateNeedsReview() *CommitmentUpsert {
	u.SetExcluded(commitment.FieldNeedsReview)
	return u
}

// SetConfirmationCount sets the "confirmation_count" field.
func (u *CommitmentUpsert) SetConfirmationCount(v int) *CommitmentUpsert {
	u.Set(commitment.FieldConfirmationCount, v)
	return u
}

// UpdateConfirmationCount sets the "confirmation_count" field to the value that was provided on create.
func (u *CommitmentUpsert) UpdateConfirmationCount() *CommitmentUpsert {
	u.SetExcluded(commitment.FieldConfirmationCount)
	return u
}

// AddConfirmationCount adds v to the "confirmation_count" field.
func (u *CommitmentUpsert) AddConfirmationCount(v int) *CommitmentUpsert {
	u.Add(commitment.FieldConfirmationCount, v)
	return u
}

// SetMetadata sets the "metadata" field.
func (u *CommitmentUpsert) SetMetadata(v map[string]interface{}) *CommitmentUpsert {
	u.Set(commitment.FieldMetadata, v)
	return u
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *CommitmentUpsert) UpdateMetadata() *CommitmentUpsert {
	u.SetExcluded(commitment.FieldMetadata)
	return u
}

// ClearMetadata clears the value of the "metadata" field.
func (u *CommitmentUpsert) ClearMetadata() *CommitmentUpsert {
	u.SetNull(commitment.FieldMetadata)
	return u
}

// SetEmbedding sets the "embedding" field.
func (u *CommitmentUpsert) SetEmbedding(v pgvector.Vector) *CommitmentUpsert {
	u.Set(commitment.FieldEmbedding, v)
	return u
}

// UpdateEmbedding sets the "embedding" field to the value that was provided on create.
func (u *CommitmentUpsert) UpdateEmbedding() *CommitmentUpsert {
	u.SetExcluded(commitment.FieldEmbedding)
	return u
}

// ClearEmbedding clears the value of the "embedding" field.
func (u *CommitmentUpsert) ClearEmbedding() *CommitmentUpsert {
	u.SetNull(commitment.FieldEmbedding)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CommitmentUpsert) SetUpdatedAt(v time.Time) *CommitmentUpsert {
	u.Set(commitment.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CommitmentUpsert) UpdateUpdatedAt() *CommitmentUpsert {
	u.SetExcluded(commitment.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *CommitmentUpsert) SetDeletedAt(v time.Time) *CommitmentUpsert {
	u.Set(commitment.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *CommitmentUpsert) UpdateDeletedAt() *CommitmentUpsert {
	u.SetExcluded(commitment.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *CommitmentUpsert) ClearDeletedAt() *CommitmentUpsert {
	u.SetNull(commitment.FieldDeletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Commitment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(commitment.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CommitmentUpsertOne) UpdateNewValues() *CommitmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(commitment.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(commitment.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Commitment.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CommitmentUpsertOne) Ignore() *CommitmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CommitmentUpsertOne) DoNothing() *CommitmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CommitmentCreate.OnConflict
// documentation for more info.
func (u *CommitmentUpsertOne) Update(set func(*CommitmentUpsert)) *CommitmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CommitmentUpsert{UpdateSet: update})
	}))
	return u
}

// SetType sets the "type" field.
func (u *CommitmentUpsertOne) SetType(v commitment.Type) *CommitmentUpsertOne {
	return u.Update(func(s *CommitmentUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *CommitmentUpsertOne) UpdateType() *CommitmentUpsertOne {
	return u.Update(func(s *CommitmentUpsert) {
		s.UpdateType()
	})
}

// SetTitle sets the "title" field.
func (u *CommitmentUpsertOne) SetTitle(v string) *CommitmentUpsertOne {
	return u.Update(func(s *CommitmentUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *CommitmentUpsertOne) UpdateTitle() *CommitmentUpsertOne {
	return u.Update(func(s *CommitmentUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *CommitmentUpsertOne) SetDescription(v string) *CommitmentUpsertOne {
	return u.Update(func(s *CommitmentUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *CommitmentUpsertOne) UpdateDescription() *CommitmentUpsertOne {
	return u.Update(func(s *CommitmentUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *CommitmentUpsertOne) ClearDescription() *CommitmentUpsertOne {
	return u.Update(func(s *CommitmentUpsert) {
		s.ClearDescription()
	})
}

// SetStatus sets the "status" field.
func (u *CommitmentUpsertOne) SetStatus(v commitment.Status) *CommitmentUpsertOne {
	return u.Update(func(s *CommitmentUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CommitmentUpsertOne) UpdateStatus() *CommitmentUpsertOne {
	return u.Update(func(s *CommitmentUpsert) {
		s.UpdateStatus()
	})
}

// SetFromEntityID sets the "from_entity_id" field.
func (u *CommitmentUpsertOne) SetFromEntityID(v string) *CommitmentUpsertOne {
	return u.Update(func(s *CommitmentUpsert) {
		s.SetFromEntityID(v)
	})
}

// UpdateFromEntityID sets the "from_entity_id" field to the value that was provided on create.
func (u *CommitmentUpsertOne) UpdateFromEntityID() *CommitmentUpsertOne {
	return u.Update(func(s *CommitmentUpsert) {
		s.UpdateFromEntityID()
	})
}

// ClearFromEntityID clears the value of the "from_entity_id" field.
func (u *CommitmentUpsertOne) ClearFromEntityID() *CommitmentUpsertOne {
	return u.Update(func(s *CommitmentUpsert) {
		s.ClearFromEntityID()
	})
}

// SetToEntityID sets the "to_entity_id" field.
func (u *CommitmentUpsertOne) SetToEntityID(v string) *CommitmentUpsertOne {
	return u.Update(func(s *CommitmentUpsert) {
		s.SetToEntityID(v)
	})
}

// UpdateToEntityID sets the "to_entity_id" field to the value that was provided on create.
func (u *CommitmentUpsertOne) UpdateToEntityID() *CommitmentUpsertOne {
	return u.Update(func(s *CommitmentUpsert) {
		s.UpdateToEntityID()
	})
}

// ClearToEntityID clears the value of the "to_entity_id" field.
func (u *CommitmentUpsertOne) ClearToEntityID() *CommitmentUpsertOne {
	return u.Update(func(s *CommitmentUpsert) {
		s.ClearToEntityID()
	})
}

// SetActivityID sets the "activity_id" field.
func (u *CommitmentUpsertOne) SetActivityID(v string) *CommitmentUpsertOne {
	return u.Update(func(s *CommitmentUpsert) {
		s.SetActivityID(v)
	})
}

// UpdateActivityID sets the "activity_id" field to the value that was provided on create.
func (u *CommitmentUpsertOne) UpdateActivityID() *CommitmentUpsertOne {
	return u.Update(func(s *CommitmentUpsert) {
		s.UpdateActivityID()
	})
}

// ClearActivityID clears the value of the "activity_id" field.
func (u *CommitmentUpsertOne) ClearActivityID() *CommitmentUpsertOne {
	return u.Update(func(s *CommitmentUpsert) {
		s.ClearActivityID()
	})
}

// SetSourceMessageID sets the "source_message_id" field.
func (u *CommitmentUpsertOne) SetSourceMessageID(v string) *CommitmentUpsertOne {
	return u.Update(func(s *CommitmentUpsert) {
		s.SetSourceMessageID(v)
	})
}

// UpdateSourceMessageID sets the "source_message_id" field to the value that was provided on create.
func (u *CommitmentUpsertOne) UpdateSourceMessageID() *CommitmentUpsertOne {
	return u.Update(func(s *CommitmentUpsert) {
		s.UpdateSourceMessageID()
	})
}

// ClearSourceMessageID clears the value of the "source_message_id" field.
func (u *CommitmentUpsertOne) ClearSourceMessageID() *CommitmentUpsertOne {
	return u.Update(func(s *CommitmentUpsert) {
		s.ClearSourceMessageID()
	})
}

// SetSourceInteractionID sets the "source_interaction_id" field.
func (u *CommitmentUpsertOne) SetSourceInteractionID(v string) *CommitmentUpsertOne {
	return u.Update(func(s *CommitmentUpsert) {
		s.SetSourceInteractionID(v)
	})
}

// UpdateSourceInteractionID sets the "source_interaction_id" field to the value that was provided on create.
func (u *CommitmentUpsertOne) UpdateSourceInteractionID() *CommitmentUpsertOne {
	return u.Update(func(s *CommitmentUpsert) {
		s.UpdateSourceInteractionID()
	})
}

// ClearSourceInteractionID clears the value of the "source_interaction_id" field.
func (u *CommitmentUpsertOne) ClearSourceInteractionID() *CommitmentUpsertOne {
	return u.Update(func(s *CommitmentUpsert) {
		s.ClearSourceInteractionID()
	})
}

// SetDueDate sets the "due_date" field.
func (u *CommitmentUpsertOne) SetDueDate(v time.Time) *CommitmentUpsertOne {
	return u.Update(func(s *CommitmentUpsert) {
		s.SetDueDate(v)
	})
}

// UpdateDueDate sets the "due_date" field to the value that was provided on create.
func (u *CommitmentUpsertOne) UpdateDueDate() *CommitmentUpsertOne {
	return u.Update(func(s *CommitmentUpsert) {
		s.UpdateDueDate()
	})
}

// ClearDueDate clears the value of the "due_date" field.
func (u *CommitmentUpsertOne) ClearDueDate() *CommitmentUpsertOne {
	return u.Update(func(s *CommitmentUpsert) {
		s.ClearDueDate()
	})
}

// SetRecurrenceRule sets the "recurrence_rule" field.
func (u *CommitmentUpsertOne) SetRecurrenceRule(v string) *CommitmentUpsertOne {
	return u.Update(func(s *CommitmentUpsert) {
		s.SetRecurrenceRule(v)
	})
}

// UpdateRecurrenceRule sets the "recurrence_rule" field to the value that was provided on create.
func (u *CommitmentUpsertOne) UpdateRecurrenceRule() *CommitmentUpsertOne {
	return u.Update(func(s *CommitmentUpsert) {
		s.UpdateRecurrenceRule()
	})
}

// ClearRecurrenceRule clears the value of the "recurrence_rule" field.
func (u *CommitmentUpsertOne) ClearRecurrenceRule() *CommitmentUpsertOne {
	return u.Update(func(s *CommitmentUpsert) {
		s.ClearRecurrenceRule()
	})
}

// SetNextReminderAt sets the "next_reminder_at" field.
func (u *CommitmentUpsertOne) SetNextReminderAt(v time.Time) *CommitmentUpsertOne {
	return u.Update(func(s *CommitmentUpsert) {
		s.SetNextReminderAt(v)
	})
}

// UpdateNextReminderAt sets the "next_reminder_at" field to the value that was provided on create.
func (u *CommitmentUpsertOne) UpdateNextReminderAt() *CommitmentUpsertOne {
	return u.Update(func(s *CommitmentUpsert) {
		s.UpdateNextReminderAt()
	})
}

// ClearNextReminderAt clears the value of the "next_reminder_at" field.
func (u *CommitmentUpsertOne) ClearNextReminderAt() *CommitmentUpsertOne {
	return u.Update(func(s *CommitmentUpsert) {
		s.ClearNextReminderAt()
	})
}

// SetReminderCount sets the "reminder_count" field.
func (u *CommitmentUpsertOne) SetReminderCount(v int) *CommitmentUpsertOne {
	return u.Update(func(s *CommitmentUpsert) {
		s.SetReminderCount(v)
	})
}

// AddReminderCount adds v to the "reminder_count" field.
func (u *CommitmentUpsertOne) AddReminderCount(v int) *CommitmentUpsertOne {
	return u.Update(func(s *CommitmentUpsert) {
		s.AddReminderCount(v)
	})
}

// UpdateReminderCount sets the "reminder_count" field to the value that was provided on create.
func (u *CommitmentUpsertOne) UpdateReminderCount() *CommitmentUpsertOne {
	return u.Update(func(s *CommitmentUpsert) {
		s.UpdateReminderCount()
	})
}

// SetConfidence sets the "confidence" field.
func (u *CommitmentUpsertOne) SetConfidence(v float64) *CommitmentUpsertOne {
	return u.Update(func(s *CommitmentUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *CommitmentUpsertOne) AddConfidence(v float64) *CommitmentUpsertOne {
	return u.Update(func(s *CommitmentUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *CommitmentUpsertOne) UpdateConfidence() *CommitmentUpsertOne {
	return u.Update(func(s *CommitmentUpsert) {
		s.UpdateConfidence()
	})
}

// SetNeedsReview sets the "needs_review" field.
func (u *CommitmentUpsertOne) SetNeedsReview(v bool) *CommitmentUpsertOne {
	return u.Update(func(s *CommitmentUpsert) {
		s.SetNeedsReview(v)
	})
}

// UpdateNeedsReview sets the "needs_review" field to the value that was provided on create.
func (u *CommitmentUpsertOne) UpdateNeedsReview() *CommitmentUpsertOne {
	return u.Update(func(s *CommitmentUpsert) {
		s.UpdateNeedsReview()
	})
}

// SetConfirmationCount sets the "confirmation_count" field.
func (u *CommitmentUpsertOne) SetConfirmationCount(v int) *CommitmentUpsertOne {
	return u.Update(func(s *CommitmentUpsert) {
		s.SetConfirmationCount(v)
	})
}

// AddConfirmationCount adds v to the "confirmation_count" field.
func (u *CommitmentUpsertOne) AddConfirmationCount(v int) *CommitmentUpsertOne {
	return u.Update(func(s *CommitmentUpsert) {
		s.AddConfirmationCount(v)
	})
}

// UpdateConfirmationCount sets the "confirmation_count" field to the value that was provided on create.
func (u *CommitmentUpsertOne) UpdateConfirmationCount() *CommitmentUpsertOne {
	return u.Update(func(s *CommitmentUpsert) {
		s.UpdateConfirmationCount()
	})
}

// SetMetadata sets the "metadata" field.
func (u *CommitmentUpsertOne) SetMetadata(v map[string]interface{}) *CommitmentUpsertOne {
	return u.Update(func(s *CommitmentUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *CommitmentUpsertOne) UpdateMetadata() *CommitmentUpsertOne {
	return u.Update(func(s *CommitmentUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *CommitmentUpsertOne) ClearMetadata() *CommitmentUpsertOne {
	return u.Update(func(s *CommitmentUpsert) {
		s.ClearMetadata()
	})
}

// SetEmbedding sets the "embedding" field.
func (u *CommitmentUpsertOne) SetEmbedding(v pgvector.Vector) *CommitmentUpsertOne {
	return u.Update(func(s *CommitmentUpsert) {
		s.SetEmbedding(v)
	})
}

// UpdateEmbedding sets the "embedding" field to the value that was provided on create.
func (u *CommitmentUpsertOne) UpdateEmbedding() *CommitmentUpsertOne {
	return u.Update(func(s *CommitmentUpsert) {
		s.UpdateEmbedding()
	})
}

// ClearEmbedding clears the value of the "embedding" field.
func (u *CommitmentUpsertOne) ClearEmbedding() *CommitmentUpsertOne {
	return u.Update(func(s *CommitmentUpsert) {
		s.ClearEmbedding()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CommitmentUpsertOne) SetUpdatedAt(v time.Time) *CommitmentUpsertOne {
	return u.Update(func(s *CommitmentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CommitmentUpsertOne) UpdateUpdatedAt() *CommitmentUpsertOne {
	return u.Update(func(s *CommitmentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *CommitmentUpsertOne) SetDeletedAt(v time.Time) *CommitmentUpsertOne {
	return u.Update(func(s *CommitmentUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *CommitmentUpsertOne) UpdateDeletedAt() *CommitmentUpsertOne {
	return u.Update(func(s *CommitmentUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *CommitmentUpsertOne) ClearDeletedAt() *CommitmentUpsertOne {
	return u.Update(func(s *CommitmentUpsert) {
		s.ClearDeletedAt()
	})
}

// Exec executes the query.
func (u *CommitmentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CommitmentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CommitmentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CommitmentUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CommitmentUpsertOne.ID is not supported by MySQL driver. Use CommitmentUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CommitmentUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CommitmentCreateBulk is the builder for creating many Commitment entities in bulk.
type CommitmentCreateBulk struct {
	config
	err      error
	builders []*CommitmentCreate
	conflict []sql.ConflictOption
}

// Save creates the Commitment entities in the database.
func (_c *CommitmentCreateBulk) Save(ctx context.Context) ([]*Commitment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Commitment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CommitmentMutation)
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
func (_c *CommitmentCreateBulk) SaveX(ctx context.Context) []*Commitment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CommitmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CommitmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Commitment.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CommitmentUpsert) {
//			SetType(v+v).
//		}).
//		Exec(ctx)
func (_c *CommitmentCreateBulk) OnConflict(opts ...sql.ConflictOption) *CommitmentUpsertBulk {
	_c.conflict = opts
	return &CommitmentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Commitment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CommitmentCreateBulk) OnConflictColumns(columns ...string) *CommitmentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CommitmentUpsertBulk{
		create: _c,
	}
}

// CommitmentUpsertBulk is the builder for "upsert"-ing
// a bulk of Commitment nodes.
type CommitmentUpsertBulk struct {
	create *CommitmentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Commitment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(commitment.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CommitmentUpsertBulk) UpdateNewValues() *CommitmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(commitment.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(commitment.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Commitment.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CommitmentUpsertBulk) Ignore() *CommitmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CommitmentUpsertBulk) DoNothing() *CommitmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CommitmentCreateBulk.OnConflict
// documentation for more info.
func (u *CommitmentUpsertBulk) Update(set func(*CommitmentUpsert)) *CommitmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CommitmentUpsert{UpdateSet: update})
	}))
	return u
}

// SetType sets the "type" field.
func (u *CommitmentUpsertBulk) SetType(v commitment.Type) *CommitmentUpsertBulk {
	return u.Update(func(s *CommitmentUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *CommitmentUpsertBulk) UpdateType() *CommitmentUpsertBulk {
	return u.Update(func(s *CommitmentUpsert) {
		s.UpdateType()
	})
}

// SetTitle sets the "title" field.
func (u *CommitmentUpsertBulk) SetTitle(v string) *CommitmentUpsertBulk {
	return u.Update(func(s *CommitmentUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *CommitmentUpsertBulk) UpdateTitle() *CommitmentUpsertBulk {
	return u.Update(func(s *CommitmentUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *CommitmentUpsertBulk) SetDescription(v string) *CommitmentUpsertBulk {
	return u.Update(func(s *CommitmentUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *CommitmentUpsertBulk) UpdateDescription() *CommitmentUpsertBulk {
	return u.Update(func(s *CommitmentUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *CommitmentUpsertBulk) ClearDescription() *CommitmentUpsertBulk {
	return u.Update(func(s *CommitmentUpsert) {
		s.ClearDescription()
	})
}

// SetStatus sets the "status" field.
func (u *CommitmentUpsertBulk) SetStatus(v commitment.Status) *CommitmentUpsertBulk {
	return u.Update(func(s *CommitmentUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CommitmentUpsertBulk) UpdateStatus() *CommitmentUpsertBulk {
	return u.Update(func(s *CommitmentUpsert) {
		s.UpdateStatus()
	})
}

// SetFromEntityID sets the "from_entity_id" field.
func (u *CommitmentUpsertBulk) SetFromEntityID(v string) *CommitmentUpsertBulk {
	return u.Update(func(s *CommitmentUpsert) {
		s.SetFromEntityID(v)
	})
}

// UpdateFromEntityID sets the "from_entity_id" field to the value that was provided on create.
func (u *CommitmentUpsertBulk) UpdateFromEntityID() *CommitmentUpsertBulk {
	return u.Update(func(s *CommitmentUpsert) {
		s.UpdateFromEntityID()
	})
}

// ClearFromEntityID clears the value of the "from_entity_id" field.
func (u *CommitmentUpsertBulk) ClearFromEntityID() *CommitmentUpsertBulk {
	return u.Update(func(s *CommitmentUpsert) {
		s.ClearFromEntityID()
	})
}

// SetToEntityID sets the "to_entity_id" field.
func (u *CommitmentUpsertBulk) SetToEntityID(v string) *CommitmentUpsertBulk {
	return u.Update(func(s *CommitmentUpsert) {
		s.SetToEntityID(v)
	})
}

// UpdateToEntityID sets the "to_entity_id" field to the value that was provided on create.
func (u *CommitmentUpsertBulk) UpdateToEntityID() *CommitmentUpsertBulk {
	return u.Update(func(s *CommitmentUpsert) {
		s.UpdateToEntityID()
	})
}

// ClearToEntityID clears the value of the "to_entity_id" field.
func (u *CommitmentUpsertBulk) ClearToEntityID() *CommitmentUpsertBulk {
	return u.Update(func(s *CommitmentUpsert) {
		s.ClearToEntityID()
	})
}

// SetActivityID sets the "activity_id" field.
func (u *CommitmentUpsertBulk) SetActivityID(v string) *CommitmentUpsertBulk {
	return u.Update(func(s *CommitmentUpsert) {
		s.SetActivityID(v)
	})
}

// UpdateActivityID sets the "activity_id" field to the value that was provided on create.
func (u *CommitmentUpsertBulk) UpdateActivityID() *CommitmentUpsertBulk {
	return u.Update(func(s *CommitmentUpsert) {
		s.UpdateActivityID()
	})
}

// ClearActivityID clears the value of the "activity_id" field.
func (u *CommitmentUpsertBulk) ClearActivityID() *CommitmentUpsertBulk {
	return u.Update(func(s *CommitmentUpsert) {
		s.ClearActivityID()
	})
}

// SetSourceMessageID sets the "source_message_id" field.
func (u *CommitmentUpsertBulk) SetSourceMessageID(v string) *CommitmentUpsertBulk {
	return u.Update(func(s *CommitmentUpsert) {
		s.SetSourceMessageID(v)
	})
}

// UpdateSourceMessageID sets the "source_message_id" field to the value that was provided on create.
func (u *CommitmentUpsertBulk) UpdateSourceMessageID() *CommitmentUpsertBulk {
	return u.Update(func(s *CommitmentUpsert) {
		s.UpdateSourceMessageID()
	})
}

// ClearSourceMessageID clears the value of the "source_message_id" field.
func (u *CommitmentUpsertBulk) ClearSourceMessageID() *CommitmentUpsertBulk {
	return u.Update(func(s *CommitmentUpsert) {
		s.ClearSourceMessageID()
	})
}

// SetSourceInteractionID sets the "source_interaction_id" field.
func (u *CommitmentUpsertBulk) SetSourceInteractionID(v string) *CommitmentUpsertBulk {
	return u.Update(func(s *CommitmentUpsert) {
		s.SetSourceInteractionID(v)
	})
}

// UpdateSourceInteractionID sets the "source_interaction_id" field to the value that was provided on create.
func (u *CommitmentUpsertBulk) UpdateSourceInteractionID() *CommitmentUpsertBulk {
	return u.Update(func(s *CommitmentUpsert) {
		s.UpdateSourceInteractionID()
	})
}

// ClearSourceInteractionID clears the value of the "source_interaction_id" field.
func (u *CommitmentUpsertBulk) ClearSourceInteractionID() *CommitmentUpsertBulk {
	return u.Update(func(s *CommitmentUpsert) {
		s.ClearSourceInteractionID()
	})
}

// SetDueDate sets the "due_date" field.
func (u *CommitmentUpsertBulk) SetDueDate(v time.Time) *CommitmentUpsertBulk {
	return u.Update(func(s *CommitmentUpsert) {
		s.SetDueDate(v)
	})
}

// UpdateDueDate sets the "due_date" field to the value that was provided on create.
func (u *CommitmentUpsertBulk) UpdateDueDate() *CommitmentUpsertBulk {
	return u.Update(func(s *CommitmentUpsert) {
		s.UpdateDueDate()
	})
}

// ClearDueDate clears the value of the "due_date" field.
func (u *CommitmentUpsertBulk) ClearDueDate() *CommitmentUpsertBulk {
	return u.Update(func(s *CommitmentUpsert) {
		s.ClearDueDate()
	})
}

// SetRecurrenceRule sets the "recurrence_rule" field.
func (u *CommitmentUpsertBulk) SetRecurrenceRule(v string) *CommitmentUpsertBulk {
	return u.Update(func(s *CommitmentUpsert) {
		s.SetRecurrenceRule(v)
	})
}

// UpdateRecurrenceRule sets the "recurrence_rule" field to the value that was provided on create.
func (u *CommitmentUpsertBulk) UpdateRecurrenceRule() *CommitmentUpsertBulk {
	return u.Update(func(s *CommitmentUpsert) {
		s.UpdateRecurrenceRule()
	})
}

// ClearRecurrenceRule clears the value of the "recurrence_rule" field.
func (u *CommitmentUpsertBulk) ClearRecurrenceRule() *CommitmentUpsertBulk {
	return u.Update(func(s *CommitmentUpsert) {
		s.ClearRecurrenceRule()
	})
}

// SetNextReminderAt sets the "next_reminder_at" field.
func (u *CommitmentUpsertBulk) SetNextReminderAt(v time.Time) *CommitmentUpsertBulk {
	return u.Update(func(s *CommitmentUpsert) {
		s.SetNextReminderAt(v)
	})
}

// UpdateNextReminderAt sets the "next_reminder_at" field to the value that was provided on create.
func (u *CommitmentUpsertBulk) UpdateNextReminderAt() *CommitmentUpsertBulk {
	return u.Update(func(s *CommitmentUpsert) {
		s.UpdateNextReminderAt()
	})
}

// ClearNextReminderAt clears the value of the "next_reminder_at" field.
func (u *CommitmentUpsertBulk) ClearNextReminderAt() *CommitmentUpsertBulk {
	return u.Update(func(s *CommitmentUpsert) {
		s.ClearNextReminderAt()
	})
}

// SetReminderCount sets the "reminder_count" field.
func (u *CommitmentUpsertBulk) SetReminderCount(v int) *CommitmentUpsertBulk {
	return u.Update(func(s *CommitmentUpsert) {
		s.SetReminderCount(v)
	})
}

// AddReminderCount adds v to the "reminder_count" field.
func (u *CommitmentUpsertBulk) AddReminderCount(v int) *CommitmentUpsertBulk {
	return u.Update(func(s *CommitmentUpsert) {
		s.AddReminderCount(v)
	})
}

// UpdateReminderCount sets the "reminder_count" field to the value that was provided on create.
func (u *CommitmentUpsertBulk) UpdateReminderCount() *CommitmentUpsertBulk {
	return u.Update(func(s *CommitmentUpsert) {
		s.UpdateReminderCount()
	})
}

// SetConfidence sets the "confidence" field.
func (u *CommitmentUpsertBulk) SetConfidence(v float64) *CommitmentUpsertBulk {
	return u.Update(func(s *CommitmentUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *CommitmentUpsertBulk) AddConfidence(v float64) *CommitmentUpsertBulk {
	return u.Update(func(s *CommitmentUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *CommitmentUpsertBulk) UpdateConfidence() *CommitmentUpsertBulk {
	return u.Update(func(s *CommitmentUpsert) {
		s.UpdateConfidence()
	})
}

// SetNeedsReview sets the "needs_review" field.
func (u *CommitmentUpsertBulk) SetNeedsReview(v bool) *CommitmentUpsertBulk {
	return u.Update(func(s *CommitmentUpsert) {
		s.SetNeedsReview(v)
	})
}

// UpdateNeedsReview sets the "needs_review" field to the value that was provided on create.
func (u *CommitmentUpsertBulk) UpdateNeedsReview() *CommitmentUpsertBulk {
	return u.Update(func(s *CommitmentUpsert) {
		s.UpdateNeedsReview()
	})
}

// SetConfirmationCount sets the "confirmation_count" field.
func (u *CommitmentUpsertBulk) SetConfirmationCount(v int) *CommitmentUpsertBulk {
	return u.Update(func(s *CommitmentUpsert) {
		s.SetConfirmationCount(v)
	})
}

// AddConfirmationCount adds v to the "confirmation_count" field.
func (u *CommitmentUpsertBulk) AddConfirmationCount(v int) *CommitmentUpsertBulk {
	return u.Update(func(s *CommitmentUpsert) {
		s.AddConfirmationCount(v)
	})
}

// UpdateConfirmationCount sets the "confirmation_count" field to the value that was provided on create.
func (u *CommitmentUpsertBulk) UpdateConfirmationCount() *CommitmentUpsertBulk {
	return u.Update(func(s *CommitmentUpsert) {
		s.UpdateConfirmationCount()
	})
}

// SetMetadata sets the "metadata" field.
func (u *CommitmentUpsertBulk) SetMetadata(v map[string]interface{}) *CommitmentUpsertBulk {
	return u.Update(func(s *CommitmentUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *CommitmentUpsertBulk) UpdateMetadata() *CommitmentUpsertBulk {
	return u.Update(func(s *CommitmentUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *CommitmentUpsertBulk) ClearMetadata() *CommitmentUpsertBulk {
	return u.Update(func(s *CommitmentUpsert) {
		s.ClearMetadata()
	})
}

// SetEmbedding sets the "embedding" field.
func (u *CommitmentUpsertBulk) SetEmbedding(v pgvector.Vector) *CommitmentUpsertBulk {
	return u.Update(func(s *CommitmentUpsert) {
		s.SetEmbedding(v)
	})
}

// UpdateEmbedding sets the "embedding" field to the value that was provided on create.
func (u *CommitmentUpsertBulk) UpdateEmbedding() *CommitmentUpsertBulk {
	return u.Update(func(s *CommitmentUpsert) {
		s.UpdateEmbedding()
	})
}

// ClearEmbedding clears the value of the "embedding" field.
func (u *CommitmentUpsertBulk) ClearEmbedding() *CommitmentUpsertBulk {
	return u.Update(func(s *CommitmentUpsert) {
		s.ClearEmbedding()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CommitmentUpsertBulk) SetUpdatedAt(v time.Time) *CommitmentUpsertBulk {
	return u.Update(func(s *CommitmentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CommitmentUpsertBulk) UpdateUpdatedAt() *CommitmentUpsertBulk {
	return u.Update(func(s *CommitmentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *CommitmentUpsertBulk) SetDeletedAt(v time.Time) *CommitmentUpsertBulk {
	return u.Update(func(s *CommitmentUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *CommitmentUpsertBulk) UpdateDeletedAt() *CommitmentUpsertBulk {
	return u.Update(func(s *CommitmentUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *CommitmentUpsertBulk) ClearDeletedAt() *CommitmentUpsertBulk {
	return u.Update(func(s *CommitmentUpsert) {
		s.ClearDeletedAt()
	})
}

// Exec executes the query.
func (u *CommitmentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CommitmentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CommitmentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CommitmentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
