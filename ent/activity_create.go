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
	"github.com/memograph/memograph/ent/activity"
	pgvector "github.com/pgvector/pgvector-go"
)

// ActivityCreate is the builder for creating a Activity entity.
type ActivityCreate struct {
	config
	mutation *ActivityMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *ActivityCreate) SetName(v string) *ActivityCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetActivityType sets the "activity_type" field.
func (_c *ActivityCreate) SetActivityType(v activity.ActivityType) *ActivityCreate {
	_c.mutation.SetActivityType(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ActivityCreate) SetStatus(v activity.Status) *ActivityCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ActivityCreate) SetNillableStatus(v *activity.Status) *ActivityCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *ActivityCreate) SetPriority(v int) *ActivityCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *ActivityCreate) SetNillablePriority(v *int) *ActivityCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetContext sets the "context" field.
func (_c *ActivityCreate) SetContext(v string) *ActivityCreate {
	_c.mutation.SetContext(v)
	return _c
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (_c *ActivityCreate) SetNillableContext(v *string) *ActivityCreate {
	if v != nil {
		_c.SetContext(*v)
	}
	return _c
}

// SetParentID sets the "parent_id" field.
func (_c *ActivityCreate) SetParentID(v string) *ActivityCreate {
	_c.mutation.SetParentID(v)
	return _c
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_c *ActivityCreate) SetNillableParentID(v *string) *ActivityCreate {
	if v != nil {
		_c.SetParentID(*v)
	}
	return _c
}

// SetDepth sets the "depth" field.
func (_c *ActivityCreate) SetDepth(v int) *ActivityCreate {
	_c.mutation.SetDepth(v)
	return _c
}

// SetNillableDepth sets the "depth" field if the given value is not nil.
func (_c *ActivityCreate) SetNillableDepth(v *int) *ActivityCreate {
	if v != nil {
		_c.SetDepth(*v)
	}
	return _c
}

// SetMaterializedPath sets the "materialized_path" field.
func (_c *ActivityCreate) SetMaterializedPath(v string) *ActivityCreate {
	_c.mutation.SetMaterializedPath(v)
	return _c
}

// SetNillableMaterializedPath sets the "materialized_path" field if the given value is not nil.
func (_c *ActivityCreate) SetNillableMaterializedPath(v *string) *ActivityCreate {
	if v != nil {
		_c.SetMaterializedPath(*v)
	}
	return _c
}

// SetOwnerEntityID sets the "owner_entity_id" field.
func (_c *ActivityCreate) SetOwnerEntityID(v string) *ActivityCreate {
	_c.mutation.SetOwnerEntityID(v)
	return _c
}

// SetNillableOwnerEntityID sets the "owner_entity_id" field if the given value is not nil.
func (_c *ActivityCreate) SetNillableOwnerEntityID(v *string) *ActivityCreate {
	if v != nil {
		_c.SetOwnerEntityID(*v)
	}
	return _c
}

// SetClientEntityID sets the "client_entity_id" field.
func (_c *ActivityCreate) SetClientEntityID(v string) *ActivityCreate {
	_c.mutation.SetClientEntityID(v)
	return _c
}

// SetNillableClientEntityID sets the "client_entity_id" field if the given value is not nil.
func (_c *ActivityCreate) SetNillableClientEntityID(v *string) *ActivityCreate {
	if v != nil {
		_c.SetClientEntityID(*v)
	}
	return _c
}

// SetSourceInteractionID sets the "source_interaction_id" field.
func (_c *ActivityCreate) SetSourceInteractionID(v string) *ActivityCreate {
	_c.mutation.SetSourceInteractionID(v)
	return _c
}

// SetNillableSourceInteractionID sets the "source_interaction_id" field if the given value is not nil.
func (_c *ActivityCreate) SetNillableSourceInteractionID(v *string) *ActivityCreate {
	if v != nil {
		_c.SetSourceInteractionID(*v)
	}
	return _c
}

// SetStartsAt sets the "starts_at" field.
func (_c *ActivityCreate) SetStartsAt(v time.Time) *ActivityCreate {
	_c.mutation.SetStartsAt(v)
	return _c
}

// SetNillableStartsAt sets the "starts_at" field if the given value is not nil.
func (_c *ActivityCreate) SetNillableStartsAt(v *time.Time) *ActivityCreate {
	if v != nil {
		_c.SetStartsAt(*v)
	}
	return _c
}

// SetDueAt sets the "due_at" field.
func (_c *ActivityCreate) SetDueAt(v time.Time) *ActivityCreate {
	_c.mutation.SetDueAt(v)
	return _c
}

// SetNillableDueAt sets the "due_at" field if the given value is not nil.
func (_c *ActivityCreate) SetNillableDueAt(v *time.Time) *ActivityCreate {
	if v != nil {
		_c.SetDueAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ActivityCreate) SetCompletedAt(v time.Time) *ActivityCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ActivityCreate) SetNillableCompletedAt(v *time.Time) *ActivityCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetTags sets the "tags" field.
func (_c *ActivityCreate) SetTags(v []string) *ActivityCreate {
	_c.mutation.SetTags(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *ActivityCreate) SetMetadata(v map[string]interface{}) *ActivityCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetNeedsReview sets the "needs_review" field.
func (_c *ActivityCreate) SetNeedsReview(v bool) *ActivityCreate {
	_c.mutation.SetNeedsReview(v)
	return _c
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_c *ActivityCreate) SetNillableNeedsReview(v *bool) *ActivityCreate {
	if v != nil {
		_c.SetNeedsReview(*v)
	}
	return _c
}

// SetConfirmationCount sets the "confirmation_count" field.
func (_c *ActivityCreate) SetConfirmationCount(v int) *ActivityCreate {
	_c.mutation.SetConfirmationCount(v)
	return _c
}

// SetNillableConfirmationCount sets the "confirmation_count" field if the given value is not nil.
func (_c *ActivityCreate) SetNillableConfirmationCount(v *int) *ActivityCreate {
	if v != nil {
		_c.SetConfirmationCount(*v)
	}
	return _c
}

// SetEmbedding sets the "embedding" field.
func (_c *ActivityCreate) SetEmbedding(v pgvector.Vector) *ActivityCreate {
	_c.mutation.SetEmbedding(v)
	return _c
}

// SetNillableEmbedding sets the "embedding" field if the given value is not nil.
func (_c *ActivityCreate) SetNillableEmbedding(v *pgvector.Vector) *ActivityCreate {
	if v != nil {
		_c.SetEmbedding(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ActivityCreate) SetCreatedAt(v time.Time) *ActivityCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ActivityCreate) SetNillableCreatedAt(v *time.Time) *ActivityCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ActivityCreate) SetUpdatedAt(v time.Time) *ActivityCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ActivityCreate) SetNillableUpdatedAt(v *time.Time) *ActivityCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *ActivityCreate) SetDeletedAt(v time.Time) *ActivityCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *ActivityCreate) SetNillableDeletedAt(v *time.Time) *ActivityCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ActivityCreate) SetID(v string) *ActivityCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ActivityMutation object of the builder.
func (_c *ActivityCreate) Mutation() *ActivityMutation {
	return _c.mutation
}

// Save creates the Activity in the database.
func (_c *ActivityCreate) Save(ctx context.Context) (*Activity, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ActivityCreate) SaveX(ctx context.Context) *Activity {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActivityCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActivityCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ActivityCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := activity.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := activity.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Depth(); !ok {
		v := activity.DefaultDepth
		_c.mutation.SetDepth(v)
	}
	if _, ok := _c.mutation.MaterializedPath(); !ok {
		v := activity.DefaultMaterializedPath
		_c.mutation.SetMaterializedPath(v)
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		v := activity.DefaultNeedsReview
		_c.mutation.SetNeedsReview(v)
	}
	if _, ok := _c.mutation.ConfirmationCount(); !ok {
		v := activity.DefaultConfirmationCount
		_c.mutation.SetConfirmationCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := activity.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := activity.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ActivityCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Activity.name"`)}
	}
	if _, ok := _c.mutation.ActivityType(); !ok {
		return &ValidationError{Name: "activity_type", err: errors.New(`ent: missing required field "Activity.activity_type"`)}
	}
	if v, ok := _c.mutation.ActivityType(); ok {
		if err := activity.ActivityTypeValidator(v); err != nil {
			return &ValidationError{Name: "activity_type", err: fmt.Errorf(`ent: validator failed for field "Activity.activity_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Activity.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := activity.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Activity.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Activity.priority"`)}
	}
	if _, ok := _c.mutation.Depth(); !ok {
		return &ValidationError{Name: "depth", err: errors.New(`ent: missing required field "Activity.depth"`)}
	}
	if _, ok := _c.mutation.MaterializedPath(); !ok {
		return &ValidationError{Name: "materialized_path", err: errors.New(`ent: missing required field "Activity.materialized_path"`)}
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		return &ValidationError{Name: "needs_review", err: errors.New(`ent: missing required field "Activity.needs_review"`)}
	}
	if _, ok := _c.mutation.ConfirmationCount(); !ok {
		return &ValidationError{Name: "confirmation_count", err: errors.New(`ent: missing required field "Activity.confirmation_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Activity.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Activity.updated_at"`)}
	}
	return nil
}

func (_c *ActivityCreate) sqlSave(ctx context.Context) (*Activity, error) {
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
			return nil, fmt.Errorf("unexpected Activity.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ActivityCreate) createSpec() (*Activity, *sqlgraph.CreateSpec) {
	var (
		_node = &Activity{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(activity.Table, sqlgraph.NewFieldSpec(activity.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(activity.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.ActivityType(); ok {
		_spec.SetField(activity.FieldActivityType, field.TypeEnum, value)
		_node.ActivityType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(activity.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(activity.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Context(); ok {
		_spec.SetField(activity.FieldContext, field.TypeString, value)
		_node.Context = value
	}
	if value, ok := _c.mutation.ParentID(); ok {
		_spec.SetField(activity.FieldParentID, field.TypeString, value)
		_node.ParentID = &value
	}
	if value, ok := _c.mutation.Depth(); ok {
		_spec.SetField(activity.FieldDepth, field.TypeInt, value)
		_node.Depth = value
	}
	if value, ok := _c.mutation.MaterializedPath(); ok {
		_spec.SetField(activity.FieldMaterializedPath, field.TypeString, value)
		_node.MaterializedPath = value
	}
	if value, ok := _c.mutation.OwnerEntityID(); ok {
		_spec.SetField(activity.FieldOwnerEntityID, field.TypeString, value)
		_node.OwnerEntityID = &value
	}
	if value, ok := _c.mutation.ClientEntityID(); ok {
		_spec.SetField(activity.FieldClientEntityID, field.TypeString, value)
		_node.ClientEntityID = &value
	}
	if value, ok := _c.mutation.SourceInteractionID(); ok {
		_spec.SetField(activity.FieldSourceInteractionID, field.TypeString, value)
		_node.SourceInteractionID = &value
	}
	if value, ok := _c.mutation.StartsAt(); ok {
		_spec.SetField(activity.FieldStartsAt, field.TypeTime, value)
		_node.StartsAt = &value
	}
	if value, ok := _c.mutation.DueAt(); ok {
		_spec.SetField(activity.FieldDueAt, field.TypeTime, value)
		_node.DueAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(activity.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.Tags(); ok {
		_spec.SetField(activity.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(activity.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.NeedsReview(); ok {
		_spec.SetField(activity.FieldNeedsReview, field.TypeBool, value)
		_node.NeedsReview = value
	}
	if value, ok := _c.mutation.ConfirmationCount(); ok {
		_spec.SetField(activity.FieldConfirmationCount, field.TypeInt, value)
		_node.ConfirmationCount = value
	}
	if value, ok := _c.mutation.Embedding(); ok {
		_spec.SetField(activity.FieldEmbedding, field.TypeOther, value)
		_node.Embedding = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(activity.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(activity.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(activity.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Activity.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ActivityUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *ActivityCreate) OnConflict(opts ...sql.ConflictOption) *ActivityUpsertOne {
	_c.conflict = opts
	return &ActivityUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Activity.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ActivityCreate) OnConflictColumns(columns ...string) *ActivityUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ActivityUpsertOne{
		create: _c,
	}
}

type (
	// ActivityUpsertOne is the builder for "upsert"-ing
	//  one Activity node.
	ActivityUpsertOne struct {
		create *ActivityCreate
	}

	// ActivityUpsert is the "OnConflict" setter.
	ActivityUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *ActivityUpsert) SetName(v string) *ActivityUpsert {
	u.Set(activity.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ActivityUpsert) UpdateName() *ActivityUpsert {
	u.SetExcluded(activity.FieldName)
	return u
}

// SetActivityType sets the "activity_type" field.
func (u *ActivityUpsert) SetActivityType(v activity.ActivityType) *ActivityUpsert {
	u.Set(activity.FieldActivityType, v)
	return u
}

// UpdateActivityType sets the "activity_type" field to the value that was provided on create.
func (u *ActivityUpsert) UpdateActivityType() *ActivityUpsert {
	u.SetExcluded(activity.FieldActivityType)
	return u
}

// SetStatus sets the "status" field.
func (u *ActivityUpsert) SetStatus(v activity.Status) *ActivityUpsert {
	u.Set(activity.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ActivityUpsert) UpdateStatus() *ActivityUpsert {
	u.SetExcluded(activity.FieldStatus)
	return u
}

// SetPriority sets the "priority" field.
func (u *ActivityUpsert) SetPriority(v int) *ActivityUpsert {
	u.Set(activity.FieldPriority, v)
	return u
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *ActivityUpsert) UpdatePriority() *ActivityUpsert {
	u.SetExcluded(activity.FieldPriority)
	return u
}

// AddPriority adds v to the "priority" field.
func (u *ActivityUpsert) AddPriority(v int) *ActivityUpsert {
	u.Add(activity.FieldPriority, v)
	return u
}

// SetContext sets the "context" field.
func (u *ActivityUpsert) SetContext(v string) *ActivityUpsert {
	u.Set(activity.FieldContext, v)
	return u
}

// UpdateContext sets the "context" field to the value that was provided on create.
func (u *ActivityUpsert) UpdateContext() *ActivityUpsert {
	u.SetExcluded(activity.FieldContext)
	return u
}

// ClearContext clears the value of the "context" field.
func (u *ActivityUpsert) ClearContext() *ActivityUpsert {
	u.SetNull(activity.FieldContext)
	return u
}

// SetParentID sets the "parent_id" field.
func (u *ActivityUpsert) SetParentID(v string) *ActivityUpsert {
	u.Set(activity.FieldParentID, v)
	return u
}

// UpdateParentID sets the "parent_id" field to the value that was provided on create.
func (u *ActivityUpsert) UpdateParentID() *ActivityUpsert {
	u.SetExcluded(activity.FieldParentID)
	return u
}

// ClearParentID clears the value of the "parent_id" field.
func (u *ActivityUpsert) ClearParentID() *ActivityUpsert {
	u.SetNull(activity.FieldParentID)
	return u
}

// SetDepth sets the "depth" field.
func (u *ActivityUpsert) SetDepth(v int) *ActivityUpsert {
	u.Set(activity.FieldDepth, v)
	return u
}

// UpdateDepth sets the "depth" field to the value that was provided on create.
func (u *ActivityUpsert) UpdateDepth() *ActivityUpsert {
	u.SetExcluded(activity.FieldDepth)
	return u
}

// AddDepth adds v to the "depth" field.
func (u *ActivityUpsert) AddDepth(v int) *ActivityUpsert {
	u.Add(activity.FieldDepth, v)
	return u
}

// SetMaterializedPath sets the "materialized_path" field.
func (u *ActivityUpsert) SetMaterializedPath(v string) *ActivityUpsert {
	u.Set(activity.FieldMaterializedPath, v)
	return u
}

// UpdateMaterializedPath sets the "materialized_path" field to the value that was provided on create.
func (u *ActivityUpsert) UpdateMaterializedPath() *ActivityUpsert {
	u.SetExcluded(activity.FieldMaterializedPath)
	return u
}

// SetOwnerEntityID sets the "owner_entity_id" field.
func (u *ActivityUpsert) SetOwnerEntityID(v string) *ActivityUpsert {
	u.Set(activity.FieldOwnerEntityID, v)
	return u
}

// UpdateOwnerEntityID sets the "owner_entity_id" field to the value that was provided on create.
func (u *ActivityUpsert) UpdateOwnerEntityID() *ActivityUpsert {
	u.SetExcluded(activity.FieldOwnerEntityID)
	return u
}

// ClearOwnerEntityID clears the value of the "owner_entity_id" field.
func (u *ActivityUpsert) ClearOwnerEntityID() *ActivityUpsert {
	u.SetNull(activity.FieldOwnerEntityID)
	return u
}

// SetClientEntityID sets the "client_entity_id" field.
func (u *ActivityUpsert) SetClientEntityID(v string) *ActivityUpsert {
	u.Set(activity.FieldClientEntityID, v)
	return u
}

// UpdateClientEntityID sets the "client_entity_id" field to the value that was provided on create.
func (u *ActivityUpsert) UpdateClientEntityID() *ActivityUpsert {
	u.SetExcluded(activity.FieldClientEntityID)
	return u
}

// ClearClientEntityID clears the value of the "client_entity_id" field.
func (u *ActivityUpsert) ClearClientEntityID() *ActivityUpsert {
	u.SetNull(activity.FieldClientEntityID)
	return u
}

// SetSourceInteractionID sets the "source_interaction_id" field.
func (u *ActivityUpsert) SetSourceInteractionID(v string) *ActivityUpsert {
	u.Set(activity.FieldSourceInteractionID, v)
	return u
}

// UpdateSourceInteractionID sets the "source_interaction_id" field to the value that was provided on create.
func (u *ActivityUpsert) UpdateSourceInteractionID() *ActivityUpsert {
	u.SetExcluded(activity.FieldSourceInteractionID)
	return u
}

// ClearSourceInteractionID clears the value of the "source_interaction_id" field.
func (u *ActivityUpsert) ClearSourceInteractionID() *ActivityUpsert {
	u.SetNull(activity.FieldSourceInteractionID)
	return u
}

// SetStartsAt sets the "starts_at" field.
func (u *ActivityUpsert) SetStartsAt(v time.Time) *ActivityUpsert {
	u.Set(activity.FieldStartsAt, v)
	return u
}

// UpdateStartsAt sets the "starts_at" field to the value that was provided on create.
func (u *ActivityUpsert) UpdateStartsAt() *ActivityUpsert {
	u.SetExcluded(activity.FieldStartsAt)
	return u
}

// ClearStartsAt clears the value of the "starts_at" field.
func (u *ActivityUpsert) ClearStartsAt() *ActivityUpsert {
	u.SetNull(activity.FieldStartsAt)
	return u
}

// SetDueAt sets the "due_at" field.
func (u *ActivityUpsert) SetDueAt(v time.Time) *ActivityUpsert {
	u.Set(activity.FieldDueAt, v)
	return u
}

// UpdateDueAt sets the "due_at" field to the value that was provided on create.
func (u *ActivityUpsert) UpdateDueAt() *ActivityUpsert {
	u.SetExcluded(activity.FieldDueAt)
	return u
}

// ClearDueAt clears the value of the "due_at" field.
func (u *ActivityUpsert) ClearDueAt() *ActivityUpsert {
	u.SetNull(activity.FieldDueAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *ActivityUpsert) SetCompletedAt(v time.Time) *ActivityUpsert {
	u.Set(activity.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *ActivityUpsert) UpdateCompletedAt() *ActivityUpsert {
	u.SetExcluded(activity.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *ActivityUpsert) ClearCompletedAt() *ActivityUpsert {
	u.SetNull(activity.FieldCompletedAt)
	return u
}

// SetTags sets the "tags" field.
func (u *ActivityUpsert) SetTags(v []string) *ActivityUpsert {
	u.Set(activity.FieldTags, v)
	return u
}

// UpdateTags sets the "tags" field to the value that was provided on create.
func (u *ActivityUpsert) UpdateTags() *ActivityUpsert {
	u.SetExcluded(activity.FieldTags)
	return u
}

// ClearTags clears the value of the "tags" field.
func (u *ActivityUpsert) ClearTags() *ActivityUpsert {
	u.SetNull(activity.FieldTags)
	return u
}

// SetMetadata sets the "metadata" field.
func (u *ActivityUpsert) SetMetadata(v map[string]interface{}) *ActivityUpsert {
	u.Set(activity.FieldMetadata, v)
	return u
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *ActivityUpsert) UpdateMetadata() *ActivityUpsert {
	u.SetExcluded(activity.FieldMetadata)
	return u
}

// ClearMetadata clears the value of the "metadata" field.
func (u *ActivityUpsert) ClearMetadata() *ActivityUpsert {
	u.SetNull(activity.FieldMetadata)
	return u
}

// SetNeedsReview sets the "needs_review" field.
func (u *ActivityUpsert) SetNeedsReview(v bool) *ActivityUpsert {
	u.Set(activity.FieldNeedsReview, v)
	return u
}

// UpdateNeedsReview sets the "needs_review" field to the value that was provided on create.
func (u *ActivityUpsert) UpdateNeedsReview() *ActivityUpsert {
	u.SetExcluded(activity.FieldNeedsReview)
	return u
}

// SetConfirmationCount sets the "confirmation_count" field.
func (u *ActivityUpsert) SetConfirmationCount(v int) *ActivityUpsert {
	u.Set(activity.FieldConfirmationCount, v)
	return u
}

// UpdateConfirmationCount sets the "confirmation_count" field to the value that was provided on create.
func (u *ActivityUpsert) UpdateConfirmationCount() *ActivityUpsert {
	u.SetExcluded(activity.FieldConfirmationCount)
	return u
}

// AddConfirmationCount adds v to the "confirmation_count" field.
func (u *ActivityUpsert) AddConfirmationCount(v int) *ActivityUpsert {
	u.Add(activity.FieldConfirmationCount, v)
	return u
}

// SetEmbedding sets the "embedding" field.
func (u *ActivityUpsert) SetEmbedding(v pgvector.Vector) *ActivityUpsert {
	u.Set(activity.FieldEmbedding, v)
	return u
}

// UpdateEmbedding sets the "embedding" field to the value that was provided on create.
func (u *ActivityUpsert) UpdateEmbedding() *ActivityUpsert {
	u.SetExcluded(activity.FieldEmbedding)
	return u
}

// ClearEmbedding clears the value of the "embedding" field.
func (u *ActivityUpsert) ClearEmbedding() *ActivityUpsert {
	u.SetNull(activity.FieldEmbedding)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ActivityUpsert) SetUpdatedAt(v time.Time) *ActivityUpsert {
	u.Set(activity.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ActivityUpsert) UpdateUpdatedAt() *ActivityUpsert {
	u.SetExcluded(activity.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ActivityUpsert) SetDeletedAt(v time.Time) *ActivityUpsert {
	u.Set(activity.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ActivityUpsert) UpdateDeletedAt() *ActivityUpsert {
	u.SetExcluded(activity.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ActivityUpsert) ClearDeletedAt() *ActivityUpsert {
	u.SetNull(activity.FieldDeletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Activity.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(activity.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ActivityUpsertOne) UpdateNewValues() *ActivityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(activity.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(activity.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Activity.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ActivityUpsertOne) Ignore() *ActivityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ActivityUpsertOne) DoNothing() *ActivityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ActivityCreate.OnConflict
// documentation for more info.
func (u *ActivityUpsertOne) Update(set func(*ActivityUpsert)) *ActivityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ActivityUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *ActivityUpsertOne) SetName(v string) *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ActivityUpsertOne) UpdateName() *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdateName()
	})
}

// SetActivityType sets the "activity_type" field.
func (u *ActivityUpsertOne) SetActivityType(v activity.ActivityType) *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.SetActivityType(v)
	})
}

// UpdateActivityType sets the "activity_type" field to the value that was provided on create.
func (u *ActivityUpsertOne) UpdateActivityType() *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdateActivityType()
	})
}

// SetStatus sets the "status" field.
func (u *ActivityUpsertOne) SetStatus(v activity.Status) *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ActivityUpsertOne) UpdateStatus() *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdateStatus()
	})
}

// SetPriority sets the "priority" field.
func (u *ActivityUpsertOne) SetPriority(v int) *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.SetPriority(v)
	})
}

// AddPriority adds v to the "priority" field.
func (u *ActivityUpsertOne) AddPriority(v int) *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.AddPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *ActivityUpsertOne) UpdatePriority() *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdatePriority()
	})
}

// SetContext sets the "context" field.
func (u *ActivityUpsertOne) SetContext(v string) *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.SetContext(v)
	})
}

// UpdateContext sets the "context" field to the value that was provided on create.
func (u *ActivityUpsertOne) UpdateContext() *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdateContext()
	})
}

// ClearContext clears the value of the "context" field.
func (u *ActivityUpsertOne) ClearContext() *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.ClearContext()
	})
}

// SetParentID sets the "parent_id" field.
func (u *ActivityUpsertOne) SetParentID(v string) *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.SetParentID(v)
	})
}

// UpdateParentID sets the "parent_id" field to the value that was provided on create.
func (u *ActivityUpsertOne) UpdateParentID() *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdateParentID()
	})
}

// ClearParentID clears the value of the "parent_id" field.
func (u *ActivityUpsertOne) ClearParentID() *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.ClearParentID()
	})
}

// SetDepth sets the "depth" field.
func (u *ActivityUpsertOne) SetDepth(v int) *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.SetDepth(v)
	})
}

// AddDepth adds v to the "depth" field.
func (u *ActivityUpsertOne) AddDepth(v int) *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.AddDepth(v)
	})
}

// UpdateDepth sets the "depth" field to the value that was provided on create.
func (u *ActivityUpsertOne) UpdateDepth() *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdateDepth()
	})
}

// SetMaterializedPath sets the "materialized_path" field.
func (u *ActivityUpsertOne) SetMaterializedPath(v string) *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.SetMaterializedPath(v)
	})
}

// UpdateMaterializedPath sets the "materialized_path" field to the value that was provided on create.
func (u *ActivityUpsertOne) UpdateMaterializedPath() *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdateMaterializedPath()
	})
}

// SetOwnerEntityID sets the "owner_entity_id" field.
func (u *ActivityUpsertOne) SetOwnerEntityID(v string) *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.SetOwnerEntityID(v)
	})
}

// UpdateOwnerEntityID sets the "owner_entity_id" field to the value that was provided on create.
func (u *ActivityUpsertOne) UpdateOwnerEntityID() *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdateOwnerEntityID()
	})
}

// ClearOwnerEntityID clears the value of the "owner_entity_id" field.
func (u *ActivityUpsertOne) ClearOwnerEntityID() *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.ClearOwnerEntityID()
	})
}

// SetClientEntityID sets the "client_entity_id" field.
func (u *ActivityUpsertOne) SetClientEntityID(v string) *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.SetClientEntityID(v)
	})
}

// UpdateClientEntityID sets the "client_entity_id" field to the value that was provided on create.
func (u *ActivityUpsertOne) UpdateClientEntityID() *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdateClientEntityID()
	})
}

// ClearClientEntityID clears the value of the "client_entity_id" field.
func (u *ActivityUpsertOne) ClearClientEntityID() *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.ClearClientEntityID()
	})
}

// SetSourceInteractionID sets the "source_interaction_id" field.
func (u *ActivityUpsertOne) SetSourceInteractionID(v string) *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.SetSourceInteractionID(v)
	})
}

// UpdateSourceInteractionID sets the "source_interaction_id" field to the value that was provided on create.
func (u *ActivityUpsertOne) UpdateSourceInteractionID() *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdateSourceInteractionID()
	})
}

// ClearSourceInteractionID clears the value of the "source_interaction_id" field.
func (u *ActivityUpsertOne) ClearSourceInteractionID() *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.ClearSourceInteractionID()
	})
}

// SetStartsAt sets the "starts_at" field.
func (u *ActivityUpsertOne) SetStartsAt(v time.Time) *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.SetStartsAt(v)
	})
}

// UpdateStartsAt sets the "starts_at" field to the value that was provided on create.
func (u *ActivityUpsertOne) UpdateStartsAt() *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdateStartsAt()
	})
}

// ClearStartsAt clears the value of the "starts_at" field.
func (u *ActivityUpsertOne) ClearStartsAt() *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.ClearStartsAt()
	})
}

// SetDueAt sets the "due_at" field.
func (u *ActivityUpsertOne) SetDueAt(v time.Time) *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.SetDueAt(v)
	})
}

// UpdateDueAt sets the "due_at" field to the value that was provided on create.
func (u *ActivityUpsertOne) UpdateDueAt() *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdateDueAt()
	})
}

// ClearDueAt clears the value of the "due_at" field.
func (u *ActivityUpsertOne) ClearDueAt() *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.ClearDueAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *ActivityUpsertOne) SetCompletedAt(v time.Time) *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *ActivityUpsertOne) UpdateCompletedAt() *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *ActivityUpsertOne) ClearCompletedAt() *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.ClearCompletedAt()
	})
}

// SetTags sets the "tags" field.
func (u *ActivityUpsertOne) SetTags(v []string) *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.SetTags(v)
	})
}

// UpdateTags sets the "tags" field to the value that was provided on create.
func (u *ActivityUpsertOne) UpdateTags() *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdateTags()
	})
}

// ClearTags clears the value of the "tags" field.
func (u *ActivityUpsertOne) ClearTags() *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.ClearTags()
	})
}

// SetMetadata sets the "metadata" field.
func (u *ActivityUpsertOne) SetMetadata(v map[string]interface{}) *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *ActivityUpsertOne) UpdateMetadata() *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *ActivityUpsertOne) ClearMetadata() *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.ClearMetadata()
	})
}

// SetNeedsReview sets the "needs_review" field.
func (u *ActivityUpsertOne) SetNeedsReview(v bool) *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.SetNeedsReview(v)
	})
}

// UpdateNeedsReview sets the "needs_review" field to the value that was provided on create.
func (u *ActivityUpsertOne) UpdateNeedsReview() *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdateNeedsReview()
	})
}

// SetConfirmationCount sets the "confirmation_count" field.
func (u *ActivityUpsertOne) SetConfirmationCount(v int) *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.SetConfirmationCount(v)
	})
}

// AddConfirmationCount adds v to the "confirmation_count" field.
func (u *ActivityUpsertOne) AddConfirmationCount(v int) *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.AddConfirmationCount(v)
	})
}

// UpdateConfirmationCount sets the "confirmation_count" field to the value that was provided on create.
func (u *ActivityUpsertOne) UpdateConfirmationCount() *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdateConfirmationCount()
	})
}

// SetEmbedding sets the "embedding" field.
func (u *ActivityUpsertOne) SetEmbedding(v pgvector.Vector) *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.SetEmbedding(v)
	})
}

// UpdateEmbedding sets the "embedding" field to the value that was provided on create.
func (u *ActivityUpsertOne) UpdateEmbedding() *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdateEmbedding()
	})
}

// ClearEmbedding clears the value of the "embedding" field.
func (u *ActivityUpsertOne) ClearEmbedding() *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.ClearEmbedding()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ActivityUpsertOne) SetUpdatedAt(v time.Time) *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ActivityUpsertOne) UpdateUpdatedAt() *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ActivityUpsertOne) SetDeletedAt(v time.Time) *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ActivityUpsertOne) UpdateDeletedAt() *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ActivityUpsertOne) ClearDeletedAt() *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.ClearDeletedAt()
	})
}

// Exec executes the query.
func (u *ActivityUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ActivityCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ActivityUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ActivityUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ActivityUpsertOne.ID is not supported by MySQL driver. Use ActivityUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ActivityUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ActivityCreateBulk is the builder for creating many Activity entities in bulk.
type ActivityCreateBulk struct {
	config
	err      error
	builders []*ActivityCreate
	conflict []sql.ConflictOption
}

// Save creates the Activity entities in the database.
func (_c *ActivityCreateBulk) Save(ctx context.Context) ([]*Activity, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Activity, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ActivityMutation)
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
func (_c *ActivityCreateBulk) SaveX(ctx context.Context) []*Activity {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActivityCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActivityCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Activity.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ActivityUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *ActivityCreateBulk) OnConflict(opts ...sql.ConflictOption) *ActivityUpsertBulk {
	_c.conflict = opts
	return &ActivityUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Activity.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ActivityCreateBulk) OnConflictColumns(columns ...string) *ActivityUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ActivityUpsertBulk{
		create: _c,
	}
}

// ActivityUpsertBulk is the builder for "upsert"-ing
// a bulk of Activity nodes.
type ActivityUpsertBulk struct {
	create *ActivityCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Activity.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(activity.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ActivityUpsertBulk) UpdateNewValues() *ActivityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(activity.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(activity.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Activity.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ActivityUpsertBulk) Ignore() *ActivityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ActivityUpsertBulk) DoNothing() *ActivityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ActivityCreateBulk.OnConflict
// documentation for more info.
func (u *ActivityUpsertBulk) Update(set func(*ActivityUpsert)) *ActivityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ActivityUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *ActivityUpsertBulk) SetName(v string) *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ActivityUpsertBulk) UpdateName() *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdateName()
	})
}

// SetActivityType sets the "activity_type" field.
func (u *ActivityUpsertBulk) SetActivityType(v activity.ActivityType) *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.SetActivityType(v)
	})
}

// UpdateActivityType sets the "activity_type" field to the value that was provided on create.
func (u *ActivityUpsertBulk) UpdateActivityType() *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdateActivityType()
	})
}

// SetStatus sets the "status" field.
func (u *ActivityUpsertBulk) SetStatus(v activity.Status) *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ActivityUpsertBulk) UpdateStatus() *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdateStatus()
	})
}

// SetPriority sets the "priority" field.
func (u *ActivityUpsertBulk) SetPriority(v int) *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.SetPriority(v)
	})
}

// AddPriority adds v to the "priority" field.
func (u *ActivityUpsertBulk) AddPriority(v int) *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.AddPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *ActivityUpsertBulk) UpdatePriority() *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdatePriority()
	})
}

// SetContext sets the "context" field.
func (u *ActivityUpsertBulk) SetContext(v string) *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.SetContext(v)
	})
}

// UpdateContext sets the "context" field to the value that was provided on create.
func (u *ActivityUpsertBulk) UpdateContext() *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdateContext()
	})
}

// ClearContext clears the value of the "context" field.
func (u *ActivityUpsertBulk) ClearContext() *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.ClearContext()
	})
}

// SetParentID sets the "parent_id" field.
func (u *ActivityUpsertBulk) SetParentID(v string) *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.SetParentID(v)
	})
}

// UpdateParentID sets the "parent_id" field to the value that was provided on create.
func (u *ActivityUpsertBulk) UpdateParentID() *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdateParentID()
	})
}

// ClearParentID clears the value of the "parent_id" field.
func (u *ActivityUpsertBulk) ClearParentID() *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.ClearParentID()
	})
}

// SetDepth sets the "depth" field.
func (u *ActivityUpsertBulk) SetDepth(v int) *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.SetDepth(v)
	})
}

// AddDepth adds v to the "depth" field.
func (u *ActivityUpsertBulk) AddDepth(v int) *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.AddDepth(v)
	})
}

// UpdateDepth sets the "depth" field to the value that was provided on create.
func (u *ActivityUpsertBulk) UpdateDepth() *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdateDepth()
	})
}

// SetMaterializedPath sets the "materialized_path" field.
func (u *ActivityUpsertBulk) SetMaterializedPath(v string) *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.SetMaterializedPath(v)
	})
}

// UpdateMaterializedPath sets the "materialized_path" field to the value that was provided on create.
func (u *ActivityUpsertBulk) UpdateMaterializedPath() *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdateMaterializedPath()
	})
}

// SetOwnerEntityID sets the "owner_entity_id" field.
func (u *ActivityUpsertBulk) SetOwnerEntityID(v string) *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.SetOwnerEntityID(v)
	})
}

// UpdateOwnerEntityID sets the "owner_entity_id" field to the value that was provided on create.
func (u *ActivityUpsertBulk) UpdateOwnerEntityID() *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdateOwnerEntityID()
	})
}

// ClearOwnerEntityID clears the value of the "owner_entity_id" field.
func (u *ActivityUpsertBulk) ClearOwnerEntityID() *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.ClearOwnerEntityID()
	})
}

// SetClientEntityID sets the "client_entity_id" field.
func (u *ActivityUpsertBulk) SetClientEntityID(v string) *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.SetClientEntityID(v)
	})
}

// UpdateClientEntityID sets the "client_entity_id" field to the value that was provided on create.
func (u *ActivityUpsertBulk) UpdateClientEntityID() *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdateClientEntityID()
	})
}

// ClearClientEntityID clears the value of the "client_entity_id" field.
func (u *ActivityUpsertBulk) ClearClientEntityID() *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.ClearClientEntityID()
	})
}

// SetSourceInteractionID sets the "source_interaction_id" field.
func (u *ActivityUpsertBulk) SetSourceInteractionID(v string) *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.SetSourceInteractionID(v)
	})
}

// UpdateSourceInteractionID sets the "source_interaction_id" field to the value that was provided on create.
func (u *ActivityUpsertBulk) UpdateSourceInteractionID() *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdateSourceInteractionID()
	})
}

// ClearSourceInteractionID clears the value of the "source_interaction_id" field.
func (u *ActivityUpsertBulk) ClearSourceInteractionID() *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.ClearSourceInteractionID()
	})
}

// SetStartsAt sets the "starts_at" field.
func (u *ActivityUpsertBulk) SetStartsAt(v time.Time) *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.SetStartsAt(v)
	})
}

// UpdateStartsAt sets the "starts_at" field to the value that was provided on create.
func (u *ActivityUpsertBulk) UpdateStartsAt() *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdateStartsAt()
	})
}

// ClearStartsAt clears the value of the "starts_at" field.
func (u *ActivityUpsertBulk) ClearStartsAt() *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.ClearStartsAt()
	})
}

// SetDueAt sets the "due_at" field.
func (u *ActivityUpsertBulk) SetDueAt(v time.Time) *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.SetDueAt(v)
	})
}

// UpdateDueAt sets the "due_at" field to the value that was provided on create.
func (u *ActivityUpsertBulk) UpdateDueAt() *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdateDueAt()
	})
}

// ClearDueAt clears the value of the "due_at" field.
func (u *ActivityUpsertBulk) ClearDueAt() *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.ClearDueAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *ActivityUpsertBulk) SetCompletedAt(v time.Time) *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *ActivityUpsertBulk) UpdateCompletedAt() *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *ActivityUpsertBulk) ClearCompletedAt() *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.ClearCompletedAt()
	})
}

// SetTags sets the "tags" field.
func (u *ActivityUpsertBulk) SetTags(v []string) *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.SetTags(v)
	})
}

// UpdateTags sets the "tags" field to the value that was provided on create.
func (u *ActivityUpsertBulk) UpdateTags() *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdateTags()
	})
}

// ClearTags clears the value of the "tags" field.
func (u *ActivityUpsertBulk) ClearTags() *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.ClearTags()
	})
}

// SetMetadata sets the "metadata" field.
func (u *ActivityUpsertBulk) SetMetadata(v map[string]interface{}) *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *ActivityUpsertBulk) UpdateMetadata() *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *ActivityUpsertBulk) ClearMetadata() *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.ClearMetadata()
	})
}

// SetNeedsReview sets the "needs_review" field.
func (u *ActivityUpsertBulk) SetNeedsReview(v bool) *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.SetNeedsReview(v)
	})
}

// UpdateNeedsReview sets the "needs_review" field to the value that was provided on create.
func (u *ActivityUpsertBulk) UpdateNeedsReview() *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdateNeedsReview()
	})
}

// SetConfirmationCount sets the "confirmation_count" field.
func (u *ActivityUpsertBulk) SetConfirmationCount(v int) *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.SetConfirmationCount(v)
	})
}

// AddConfirmationCount adds v to the "confirmation_count" field.
func (u *ActivityUpsertBulk) AddConfirmationCount(v int) *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.AddConfirmationCount(v)
	})
}

// UpdateConfirmationCount sets the "confirmation_count" field to the value that was provided on create.
func (u *ActivityUpsertBulk) UpdateConfirmationCount() *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdateConfirmationCount()
	})
}

// SetEmbedding sets the "embedding" field.
func (u *ActivityUpsertBulk) SetEmbedding(v pgvector.Vector) *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.SetEmbedding(v)
	})
}

// UpdateEmbedding sets the "embedding" field to the value that was provided on create.
func (u *ActivityUpsertBulk) UpdateEmbedding() *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdateEmbedding()
	})
}

// ClearEmbedding clears the value of the "embedding" field.
func (u *ActivityUpsertBulk) ClearEmbedding() *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.ClearEmbedding()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ActivityUpsertBulk) SetUpdatedAt(v time.Time) *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ActivityUpsertBulk) UpdateUpdatedAt() *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ActivityUpsertBulk) SetDeletedAt(v time.Time) *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ActivityUpsertBulk) UpdateDeletedAt() *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ActivityUpsertBulk) ClearDeletedAt() *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.ClearDeletedAt()
	})
}

// Exec executes the query.
func (u *ActivityUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ActivityCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ActivityCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ActivityUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
