// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/memograph/memograph/ent/activity"
	"github.com/memograph/memograph/ent/predicate"
	pgvector "github.com/pgvector/pgvector-go"
)

// ActivityUpdate is the builder for updating Activity entities.
type ActivityUpdate struct {
	config
	hooks    []Hook
	mutation *ActivityMutation
}

// Where appends a list predicates to the ActivityUpdate builder.
func (_u *ActivityUpdate) Where(ps ...predicate.Activity) *ActivityUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ActivityUpdate) SetName(v string) *ActivityUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ActivityUpdate) SetNillableName(v *string) *ActivityUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetActivityType sets the "activity_type" field.
func (_u *ActivityUpdate) SetActivityType(v activity.ActivityType) *ActivityUpdate {
	_u.mutation.SetActivityType(v)
	return _u
}

// SetNillableActivityType sets the "activity_type" field if the given value is not nil.
func (_u *ActivityUpdate) SetNillableActivityType(v *activity.ActivityType) *ActivityUpdate {
	if v != nil {
		_u.SetActivityType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ActivityUpdate) SetStatus(v activity.Status) *ActivityUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ActivityUpdate) SetNillableStatus(v *activity.Status) *ActivityUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *ActivityUpdate) SetPriority(v int) *ActivityUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *ActivityUpdate) SetNillablePriority(v *int) *ActivityUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *ActivityUpdate) AddPriority(v int) *ActivityUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetContext sets the "context" field.
func (_u *ActivityUpdate) SetContext(v string) *ActivityUpdate {
	_u.mutation.SetContext(v)
	return _u
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (_u *ActivityUpdate) SetNillableContext(v *string) *ActivityUpdate {
	if v != nil {
		_u.SetContext(*v)
	}
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *ActivityUpdate) ClearContext() *ActivityUpdate {
	_u.mutation.ClearContext()
	return _u
}

// SetParentID sets the "parent_id" field.
func (_u *ActivityUpdate) SetParentID(v string) *ActivityUpdate {
	_u.mutation.SetParentID(v)
	return _u
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_u *ActivityUpdate) SetNillableParentID(v *string) *ActivityUpdate {
	if v != nil {
		_u.SetParentID(*v)
	}
	return _u
}

// ClearParentID clears the value of the "parent_id" field.
func (_u *ActivityUpdate) ClearParentID() *ActivityUpdate {
	_u.mutation.ClearParentID()
	return _u
}

// SetDepth sets the "depth" field.
func (_u *ActivityUpdate) SetDepth(v int) *ActivityUpdate {
	_u.mutation.ResetDepth()
	_u.mutation.SetDepth(v)
	return _u
}

// SetNillableDepth sets the "depth" field if the given value is not nil.
func (_u *ActivityUpdate) SetNillableDepth(v *int) *ActivityUpdate {
	if v != nil {
		_u.SetDepth(*v)
	}
	return _u
}

// AddDepth adds value to the "depth" field.
func (_u *ActivityUpdate) AddDepth(v int) *ActivityUpdate {
	_u.mutation.AddDepth(v)
	return _u
}

// SetMaterializedPath sets the "materialized_path" field.
func (_u *ActivityUpdate) SetMaterializedPath(v string) *ActivityUpdate {
	_u.mutation.SetMaterializedPath(v)
	return _u
}

// SetNillableMaterializedPath sets the "materialized_path" field if the given value is not nil.
func (_u *ActivityUpdate) SetNillableMaterializedPath(v *string) *ActivityUpdate {
	if v != nil {
		_u.SetMaterializedPath(*v)
	}
	return _u
}

// SetOwnerEntityID sets the "owner_entity_id" field.
func (_u *ActivityUpdate) SetOwnerEntityID(v string) *ActivityUpdate {
	_u.mutation.SetOwnerEntityID(v)
	return _u
}

// SetNillableOwnerEntityID sets the "owner_entity_id" field if the given value is not nil.
func (_u *ActivityUpdate) SetNillableOwnerEntityID(v *string) *ActivityUpdate {
	if v != nil {
		_u.SetOwnerEntityID(*v)
	}
	return _u
}

// ClearOwnerEntityID clears the value of the "owner_entity_id" field.
func (_u *ActivityUpdate) ClearOwnerEntityID() *ActivityUpdate {
	_u.mutation.ClearOwnerEntityID()
	return _u
}

// SetClientEntityID sets the "client_entity_id" field.
func (_u *ActivityUpdate) SetClientEntityID(v string) *ActivityUpdate {
	_u.mutation.SetClientEntityID(v)
	return _u
}

// SetNillableClientEntityID sets the "client_entity_id" field if the given value is not nil.
func (_u *ActivityUpdate) SetNillableClientEntityID(v *string) *ActivityUpdate {
	if v != nil {
		_u.SetClientEntityID(*v)
	}
	return _u
}

// ClearClientEntityID clears the value of the "client_entity_id" field.
func (_u *ActivityUpdate) ClearClientEntityID() *ActivityUpdate {
	_u.mutation.ClearClientEntityID()
	return _u
}

// SetSourceInteractionID sets the "source_interaction_id" field.
func (_u *ActivityUpdate) SetSourceInteractionID(v string) *ActivityUpdate {
	_u.mutation.SetSourceInteractionID(v)
	return _u
}

// SetNillableSourceInteractionID sets the "source_interaction_id" field if the given value is not nil.
func (_u *ActivityUpdate) SetNillableSourceInteractionID(v *string) *ActivityUpdate {
	if v != nil {
		_u.SetSourceInteractionID(*v)
	}
	return _u
}

// ClearSourceInteractionID clears the value of the "source_interaction_id" field.
func (_u *ActivityUpdate) ClearSourceInteractionID() *ActivityUpdate {
	_u.mutation.ClearSourceInteractionID()
	return _u
}

// SetStartsAt sets the "starts_at" field.
func (_u *ActivityUpdate) SetStartsAt(v time.Time) *ActivityUpdate {
	_u.mutation.SetStartsAt(v)
	return _u
}

// SetNillableStartsAt sets the "starts_at" field if the given value is not nil.
func (_u *ActivityUpdate) SetNillableStartsAt(v *time.Time) *ActivityUpdate {
	if v != nil {
		_u.SetStartsAt(*v)
	}
	return _u
}

// ClearStartsAt clears the value of the "starts_at" field.
func (_u *ActivityUpdate) ClearStartsAt() *ActivityUpdate {
	_u.mutation.ClearStartsAt()
	return _u
}

// SetDueAt sets the "due_at" field.
func (_u *ActivityUpdate) SetDueAt(v time.Time) *ActivityUpdate {
	_u.mutation.SetDueAt(v)
	return _u
}

// SetNillableDueAt sets the "due_at" field if the given value is not nil.
func (_u *ActivityUpdate) SetNillableDueAt(v *time.Time) *ActivityUpdate {
	if v != nil {
		_u.SetDueAt(*v)
	}
	return _u
}

// ClearDueAt clears the value of the "due_at" field.
func (_u *ActivityUpdate) ClearDueAt() *ActivityUpdate {
	_u.mutation.ClearDueAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ActivityUpdate) SetCompletedAt(v time.Time) *ActivityUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ActivityUpdate) SetNillableCompletedAt(v *time.Time) *ActivityUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ActivityUpdate) ClearCompletedAt() *ActivityUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetTags sets the "tags" field.
func (_u *ActivityUpdate) SetTags(v []string) *ActivityUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *ActivityUpdate) AppendTags(v []string) *ActivityUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *ActivityUpdate) ClearTags() *ActivityUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ActivityUpdate) SetMetadata(v map[string]interface{}) *ActivityUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ActivityUpdate) ClearMetadata() *ActivityUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *ActivityUpdate) SetNeedsReview(v bool) *ActivityUpdate {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *ActivityUpdate) SetNillableNeedsReview(v *bool) *ActivityUpdate {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetConfirmationCount sets the "confirmation_count" field.
func (_u *ActivityUpdate) SetConfirmationCount(v int) *ActivityUpdate {
	_u.mutation.ResetConfirmationCount()
	_u.mutation.SetConfirmationCount(v)
	return _u
}

// SetNillableConfirmationCount sets the "confirmation_count" field if the given value is not nil.
func (_u *ActivityUpdate) SetNillableConfirmationCount(v *int) *ActivityUpdate {
	if v != nil {
		_u.SetConfirmationCount(*v)
	}
	return _u
}

// AddConfirmationCount adds value to the "confirmation_count" field.
func (_u *ActivityUpdate) AddConfirmationCount(v int) *ActivityUpdate {
	_u.mutation.AddConfirmationCount(v)
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *ActivityUpdate) SetEmbedding(v pgvector.Vector) *ActivityUpdate {
	_u.mutation.SetEmbedding(v)
	return _u
}

// SetNillableEmbedding sets the "embedding" field if the given value is not nil.
func (_u *ActivityUpdate) SetNillableEmbedding(v *pgvector.Vector) *ActivityUpdate {
	if v != nil {
		_u.SetEmbedding(*v)
	}
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *ActivityUpdate) ClearEmbedding() *ActivityUpdate {
	_u.mutation.ClearEmbedding()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ActivityUpdate) SetUpdatedAt(v time.Time) *ActivityUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ActivityUpdate) SetDeletedAt(v time.Time) *ActivityUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ActivityUpdate) SetNillableDeletedAt(v *time.Time) *ActivityUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ActivityUpdate) ClearDeletedAt() *ActivityUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// Mutation returns the ActivityMutation object of the builder.
func (_u *ActivityUpdate) Mutation() *ActivityMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ActivityUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActivityUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ActivityUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActivityUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ActivityUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := activity.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActivityUpdate) check() error {
	if v, ok := _u.mutation.ActivityType(); ok {
		if err := activity.ActivityTypeValidator(v); err != nil {
			return &ValidationError{Name: "activity_type", err: fmt.Errorf(`ent: validator failed for field "Activity.activity_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := activity.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Activity.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ActivityUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(activity.Table, activity.Columns, sqlgraph.NewFieldSpec(activity.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(activity.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActivityType(); ok {
		_spec.SetField(activity.FieldActivityType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(activity.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(activity.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(activity.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(activity.FieldContext, field.TypeString, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(activity.FieldContext, field.TypeString)
	}
	if value, ok := _u.mutation.ParentID(); ok {
		_spec.SetField(activity.FieldParentID, field.TypeString, value)
	}
	if _u.mutation.ParentIDCleared() {
		_spec.ClearField(activity.FieldParentID, field.TypeString)
	}
	if value, ok := _u.mutation.Depth(); ok {
		_spec.SetField(activity.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDepth(); ok {
		_spec.AddField(activity.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaterializedPath(); ok {
		_spec.SetField(activity.FieldMaterializedPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.OwnerEntityID(); ok {
		_spec.SetField(activity.FieldOwnerEntityID, field.TypeString, value)
	}
	if _u.mutation.OwnerEntityIDCleared() {
		_spec.ClearField(activity.FieldOwnerEntityID, field.TypeString)
	}
	if value, ok := _u.mutation.ClientEntityID(); ok {
		_spec.SetField(activity.FieldClientEntityID, field.TypeString, value)
	}
	if _u.mutation.ClientEntityIDCleared() {
		_spec.ClearField(activity.FieldClientEntityID, field.TypeString)
	}
	if value, ok := _u.mutation.SourceInteractionID(); ok {
		_spec.SetField(activity.FieldSourceInteractionID, field.TypeString, value)
	}
	if _u.mutation.SourceInteractionIDCleared() {
		_spec.ClearField(activity.FieldSourceInteractionID, field.TypeString)
	}
	if value, ok := _u.mutation.StartsAt(); ok {
		_spec.SetField(activity.FieldStartsAt, field.TypeTime, value)
	}
	if _u.mutation.StartsAtCleared() {
		_spec.ClearField(activity.FieldStartsAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DueAt(); ok {
		_spec.SetField(activity.FieldDueAt, field.TypeTime, value)
	}
	if _u.mutation.DueAtCleared() {
		_spec.ClearField(activity.FieldDueAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(activity.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(activity.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(activity.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, activity.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(activity.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(activity.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(activity.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(activity.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ConfirmationCount(); ok {
		_spec.SetField(activity.FieldConfirmationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConfirmationCount(); ok {
		_spec.AddField(activity.FieldConfirmationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(activity.FieldEmbedding, field.TypeOther, value)
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(activity.FieldEmbedding, field.TypeOther)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(activity.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(activity.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(activity.FieldDeletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ActivityUpdateOne is the builder for updating a single Activity entity.
type ActivityUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ActivityMutation
}

// SetName sets the "name" field.
func (_u *ActivityUpdateOne) SetName(v string) *ActivityUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ActivityUpdateOne) SetNillableName(v *string) *ActivityUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetActivityType sets the "activity_type" field.
func (_u *ActivityUpdateOne) SetActivityType(v activity.ActivityType) *ActivityUpdateOne {
	_u.mutation.SetActivityType(v)
	return _u
}

// SetNillableActivityType sets the "activity_type" field if the given value is not nil.
func (_u *ActivityUpdateOne) SetNillableActivityType(v *activity.ActivityType) *ActivityUpdateOne {
	if v != nil {
		_u.SetActivityType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ActivityUpdateOne) SetStatus(v activity.Status) *ActivityUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ActivityUpdateOne) SetNillableStatus(v *activity.Status) *ActivityUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *ActivityUpdateOne) SetPriority(v int) *ActivityUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *ActivityUpdateOne) SetNillablePriority(v *int) *ActivityUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *ActivityUpdateOne) AddPriority(v int) *ActivityUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetContext sets the "context" field.
func (_u *ActivityUpdateOne) SetContext(v string) *ActivityUpdateOne {
	_u.mutation.SetContext(v)
	return _u
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (_u *ActivityUpdateOne) SetNillableContext(v *string) *ActivityUpdateOne {
	if v != nil {
		_u.SetContext(*v)
	}
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *ActivityUpdateOne) ClearContext() *ActivityUpdateOne {
	_u.mutation.ClearContext()
	return _u
}

// SetParentID sets the "parent_id" field.
func (_u *ActivityUpdateOne) SetParentID(v string) *ActivityUpdateOne {
	_u.mutation.SetParentID(v)
	return _u
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_u *ActivityUpdateOne) SetNillableParentID(v *string) *ActivityUpdateOne {
	if v != nil {
		_u.SetParentID(*v)
	}
	return _u
}

// ClearParentID clears the value of the "parent_id" field.
func (_u *ActivityUpdateOne) ClearParentID() *ActivityUpdateOne {
	_u.mutation.ClearParentID()
	return _u
}

// SetDepth sets the "depth" field.
func (_u *ActivityUpdateOne) SetDepth(v int) *ActivityUpdateOne {
	_u.mutation.ResetDepth()
	_u.mutation.SetDepth(v)
	return _u
}

// SetNillableDepth sets the "depth" field if the given value is not nil.
func (_u *ActivityUpdateOne) SetNillableDepth(v *int) *ActivityUpdateOne {
	if v != nil {
		_u.SetDepth(*v)
	}
	return _u
}

// AddDepth adds value to the "depth" field.
func (_u *ActivityUpdateOne) AddDepth(v int) *ActivityUpdateOne {
	_u.mutation.AddDepth(v)
	return _u
}

// SetMaterializedPath sets the "materialized_path" field.
func (_u *ActivityUpdateOne) SetMaterializedPath(v string) *ActivityUpdateOne {
	_u.mutation.SetMaterializedPath(v)
	return _u
}

// SetNillableMaterializedPath sets the "materialized_path" field if the given value is not nil.
func (_u *ActivityUpdateOne) SetNillableMaterializedPath(v *string) *ActivityUpdateOne {
	if v != nil {
		_u.SetMaterializedPath(*v)
	}
	return _u
}

// SetOwnerEntityID sets the "owner_entity_id" field.
func (_u *ActivityUpdateOne) SetOwnerEntityID(v string) *ActivityUpdateOne {
	_u.mutation.SetOwnerEntityID(v)
	return _u
}

// SetNillableOwnerEntityID sets the "owner_entity_id" field if the given value is not nil.
func (_u *ActivityUpdateOne) SetNillableOwnerEntityID(v *string) *ActivityUpdateOne {
	if v != nil {
		_u.SetOwnerEntityID(*v)
	}
	return _u
}

// ClearOwnerEntityID clears the value of the "owner_entity_id" field.
func (_u *ActivityUpdateOne) ClearOwnerEntityID() *ActivityUpdateOne {
	_u.mutation.ClearOwnerEntityID()
	return _u
}

// SetClientEntityID sets the "client_entity_id" field.
func (_u *ActivityUpdateOne) SetClientEntityID(v string) *ActivityUpdateOne {
	_u.mutation.SetClientEntityID(v)
	return _u
}

// SetNillableClientEntityID sets the "client_entity_id" field if the given value is not nil.
func (_u *ActivityUpdateOne) SetNillableClientEntityID(v *string) *ActivityUpdateOne {
	if v != nil {
		_u.SetClientEntityID(*v)
	}
	return _u
}

// ClearClientEntityID clears the value of the "client_entity_id" field.
func (_u *ActivityUpdateOne) ClearClientEntityID() *ActivityUpdateOne {
	_u.mutation.ClearClientEntityID()
	return _u
}

// SetSourceInteractionID sets the "source_interaction_id" field.
func (_u *ActivityUpdateOne) SetSourceInteractionID(v string) *ActivityUpdateOne {
	_u.mutation.SetSourceInteractionID(v)
	return _u
}

// SetNillableSourceInteractionID sets the "source_interaction_id" field if the given value is not nil.
func (_u *ActivityUpdateOne) SetNillableSourceInteractionID(v *string) *ActivityUpdateOne {
	if v != nil {
		_u.SetSourceInteractionID(*v)
	}
	return _u
}

// ClearSourceInteractionID clears the value of the "source_interaction_id" field.
func (_u *ActivityUpdateOne) ClearSourceInteractionID() *ActivityUpdateOne {
	_u.mutation.ClearSourceInteractionID()
	return _u
}

// SetStartsAt sets the "starts_at" field.
func (_u *ActivityUpdateOne) SetStartsAt(v time.Time) *ActivityUpdateOne {
	_u.mutation.SetStartsAt(v)
	return _u
}

// SetNillableStartsAt sets the "starts_at" field if the given value is not nil.
func (_u *ActivityUpdateOne) SetNillableStartsAt(v *time.Time) *ActivityUpdateOne {
	if v != nil {
		_u.SetStartsAt(*v)
	}
	return _u
}

// ClearStartsAt clears the value of the "starts_at" field.
func (_u *ActivityUpdateOne) ClearStartsAt() *ActivityUpdateOne {
	_u.mutation.ClearStartsAt()
	return _u
}

// SetDueAt sets the "due_at" field.
func (_u *ActivityUpdateOne) SetDueAt(v time.Time) *ActivityUpdateOne {
	_u.mutation.SetDueAt(v)
	return _u
}

// SetNillableDueAt sets the "due_at" field if the given value is not nil.
func (_u *ActivityUpdateOne) SetNillableDueAt(v *time.Time) *ActivityUpdateOne {
	if v != nil {
		_u.SetDueAt(*v)
	}
	return _u
}

// ClearDueAt clears the value of the "due_at" field.
func (_u *ActivityUpdateOne) ClearDueAt() *ActivityUpdateOne {
	_u.mutation.ClearDueAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ActivityUpdateOne) SetCompletedAt(v time.Time) *ActivityUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ActivityUpdateOne) SetNillableCompletedAt(v *time.Time) *ActivityUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ActivityUpdateOne) ClearCompletedAt() *ActivityUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetTags sets the "tags" field.
func (_u *ActivityUpdateOne) SetTags(v []string) *ActivityUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *ActivityUpdateOne) AppendTags(v []string) *ActivityUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *ActivityUpdateOne) ClearTags() *ActivityUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ActivityUpdateOne) SetMetadata(v map[string]interface{}) *ActivityUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ActivityUpdateOne) ClearMetadata() *ActivityUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *ActivityUpdateOne) SetNeedsReview(v bool) *ActivityUpdateOne {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *ActivityUpdateOne) SetNillableNeedsReview(v *bool) *ActivityUpdateOne {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetConfirmationCount sets the "confirmation_count" field.
func (_u *ActivityUpdateOne) SetConfirmationCount(v int) *ActivityUpdateOne {
	_u.mutation.ResetConfirmationCount()
	_u.mutation.SetConfirmationCount(v)
	return _u
}

// SetNillableConfirmationCount sets the "confirmation_count" field if the given value is not nil.
func (_u *ActivityUpdateOne) SetNillableConfirmationCount(v *int) *ActivityUpdateOne {
	if v != nil {
		_u.SetConfirmationCount(*v)
	}
	return _u
}

// AddConfirmationCount adds value to the "confirmation_count" field.
func (_u *ActivityUpdateOne) AddConfirmationCount(v int) *ActivityUpdateOne {
	_u.mutation.AddConfirmationCount(v)
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *ActivityUpdateOne) SetEmbedding(v pgvector.Vector) *ActivityUpdateOne {
	_u.mutation.SetEmbedding(v)
	return _u
}

// SetNillableEmbedding sets the "embedding" field if the given value is not nil.
func (_u *ActivityUpdateOne) SetNillableEmbedding(v *pgvector.Vector) *ActivityUpdateOne {
	if v != nil {
		_u.SetEmbedding(*v)
	}
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *ActivityUpdateOne) ClearEmbedding() *ActivityUpdateOne {
	_u.mutation.ClearEmbedding()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ActivityUpdateOne) SetUpdatedAt(v time.Time) *ActivityUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ActivityUpdateOne) SetDeletedAt(v time.Time) *ActivityUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ActivityUpdateOne) SetNillableDeletedAt(v *time.Time) *ActivityUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ActivityUpdateOne) ClearDeletedAt() *ActivityUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// Mutation returns the ActivityMutation object of the builder.
func (_u *ActivityUpdateOne) Mutation() *ActivityMutation {
	return _u.mutation
}

// Where appends a list predicates to the ActivityUpdate builder.
func (_u *ActivityUpdateOne) Where(ps ...predicate.Activity) *ActivityUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ActivityUpdateOne) Select(field string, fields ...string) *ActivityUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Activity entity.
func (_u *ActivityUpdateOne) Save(ctx context.Context) (*Activity, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActivityUpdateOne) SaveX(ctx context.Context) *Activity {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ActivityUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActivityUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ActivityUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := activity.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActivityUpdateOne) check() error {
	if v, ok := _u.mutation.ActivityType(); ok {
		if err := activity.ActivityTypeValidator(v); err != nil {
			return &ValidationError{Name: "activity_type", err: fmt.Errorf(`ent: validator failed for field "Activity.activity_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := activity.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Activity.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ActivityUpdateOne) sqlSave(ctx context.Context) (_node *Activity, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(activity.Table, activity.Columns, sqlgraph.NewFieldSpec(activity.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Activity.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, activity.FieldID)
		for _, f := range fields {
			if !activity.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != activity.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(activity.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActivityType(); ok {
		_spec.SetField(activity.FieldActivityType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(activity.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(activity.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(activity.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(activity.FieldContext, field.TypeString, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(activity.FieldContext, field.TypeString)
	}
	if value, ok := _u.mutation.ParentID(); ok {
		_spec.SetField(activity.FieldParentID, field.TypeString, value)
	}
	if _u.mutation.ParentIDCleared() {
		_spec.ClearField(activity.FieldParentID, field.TypeString)
	}
	if value, ok := _u.mutation.Depth(); ok {
		_spec.SetField(activity.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDepth(); ok {
		_spec.AddField(activity.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaterializedPath(); ok {
		_spec.SetField(activity.FieldMaterializedPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.OwnerEntityID(); ok {
		_spec.SetField(activity.FieldOwnerEntityID, field.TypeString, value)
	}
	if _u.mutation.OwnerEntityIDCleared() {
		_spec.ClearField(activity.FieldOwnerEntityID, field.TypeString)
	}
	if value, ok := _u.mutation.ClientEntityID(); ok {
		_spec.SetField(activity.FieldClientEntityID, field.TypeString, value)
	}
	if _u.mutation.ClientEntityIDCleared() {
		_spec.ClearField(activity.FieldClientEntityID, field.TypeString)
	}
	if value, ok := _u.mutation.SourceInteractionID(); ok {
		_spec.SetField(activity.FieldSourceInteractionID, field.TypeString, value)
	}
	if _u.mutation.SourceInteractionIDCleared() {
		_spec.ClearField(activity.FieldSourceInteractionID, field.TypeString)
	}
	if value, ok := _u.mutation.StartsAt(); ok {
		_spec.SetField(activity.FieldStartsAt, field.TypeTime, value)
	}
	if _u.mutation.StartsAtCleared() {
		_spec.ClearField(activity.FieldStartsAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DueAt(); ok {
		_spec.SetField(activity.FieldDueAt, field.TypeTime, value)
	}
	if _u.mutation.DueAtCleared() {
		_spec.ClearField(activity.FieldDueAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(activity.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(activity.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(activity.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, activity.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(activity.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(activity.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(activity.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(activity.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ConfirmationCount(); ok {
		_spec.SetField(activity.FieldConfirmationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConfirmationCount(); ok {
		_spec.AddField(activity.FieldConfirmationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(activity.FieldEmbedding, field.TypeOther, value)
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(activity.FieldEmbedding, field.TypeOther)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(activity.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(activity.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(activity.FieldDeletedAt, field.TypeTime)
	}
	_node = &Activity{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
