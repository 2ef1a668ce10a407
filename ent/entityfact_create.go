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
	"github.com/memograph/memograph/ent/entity"
	"github.com/memograph/memograph/ent/entityfact"
	pgvector "github.com/pgvector/pgvector-go"
)

// EntityFactCreate is the builder for creating a EntityFact entity.
type EntityFactCreate struct {
	config
	mutation *EntityFactMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetEntityID sets the "entity_id" field.
func (_c *EntityFactCreate) SetEntityID(v string) *EntityFactCreate {
	_c.mutation.SetEntityID(v)
	return _c
}

// SetFactType sets the "fact_type" field.
func (_c *EntityFactCreate) SetFactType(v string) *EntityFactCreate {
	_c.mutation.SetFactType(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *EntityFactCreate) SetCategory(v string) *EntityFactCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *EntityFactCreate) SetNillableCategory(v *string) *EntityFactCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetValue sets the "value" field.
func (_c *EntityFactCreate) SetValue(v string) *EntityFactCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_c *EntityFactCreate) SetNillableValue(v *string) *EntityFactCreate {
	if v != nil {
		_c.SetValue(*v)
	}
	return _c
}

// SetValueDate sets the "value_date" field.
func (_c *EntityFactCreate) SetValueDate(v time.Time) *EntityFactCreate {
	_c.mutation.SetValueDate(v)
	return _c
}

// SetNillableValueDate sets the "value_date" field if the given value is not nil.
func (_c *EntityFactCreate) SetNillableValueDate(v *time.Time) *EntityFactCreate {
	if v != nil {
		_c.SetValueDate(*v)
	}
	return _c
}

// SetValueJSON sets the "value_json" field.
func (_c *EntityFactCreate) SetValueJSON(v map[string]interface{}) *EntityFactCreate {
	_c.mutation.SetValueJSON(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *EntityFactCreate) SetSource(v entityfact.Source) *EntityFactCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *EntityFactCreate) SetNillableSource(v *entityfact.Source) *EntityFactCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *EntityFactCreate) SetConfidence(v float64) *EntityFactCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *EntityFactCreate) SetNillableConfidence(v *float64) *EntityFactCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetSourceInteractionID sets the "source_interaction_id" field.
func (_c *EntityFactCreate) SetSourceInteractionID(v string) *EntityFactCreate {
	_c.mutation.SetSourceInteractionID(v)
	return _c
}

// SetNillableSourceInteractionID sets the "source_interaction_id" field if the given value is not nil.
func (_c *EntityFactCreate) SetNillableSourceInteractionID(v *string) *EntityFactCreate {
	if v != nil {
		_c.SetSourceInteractionID(*v)
	}
	return _c
}

// SetSourceMessageID sets the "source_message_id" field.
func (_c *EntityFactCreate) SetSourceMessageID(v string) *EntityFactCreate {
	_c.mutation.SetSourceMessageID(v)
	return _c
}

// SetNillableSourceMessageID sets the "source_message_id" field if the given value is not nil.
func (_c *EntityFactCreate) SetNillableSourceMessageID(v *string) *EntityFactCreate {
	if v != nil {
		_c.SetSourceMessageID(*v)
	}
	return _c
}

// SetValidFrom sets the "valid_from" field.
func (_c *EntityFactCreate) SetValidFrom(v time.Time) *EntityFactCreate {
	_c.mutation.SetValidFrom(v)
	return _c
}

// SetNillableValidFrom sets the "valid_from" field if the given value is not nil.
func (_c *EntityFactCreate) SetNillableValidFrom(v *time.Time) *EntityFactCreate {
	if v != nil {
		_c.SetValidFrom(*v)
	}
	return _c
}

// SetValidUntil sets the "valid_until" field.
func (_c *EntityFactCreate) SetValidUntil(v time.Time) *EntityFactCreate {
	_c.mutation.SetValidUntil(v)
	return _c
}

// SetNillableValidUntil sets the "valid_until" field if the given value is not nil.
func (_c *EntityFactCreate) SetNillableValidUntil(v *time.Time) *EntityFactCreate {
	if v != nil {
		_c.SetValidUntil(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *EntityFactCreate) SetStatus(v entityfact.Status) *EntityFactCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *EntityFactCreate) SetNillableStatus(v *entityfact.Status) *EntityFactCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetRank sets the "rank" field.
func (_c *EntityFactCreate) SetRank(v entityfact.Rank) *EntityFactCreate {
	_c.mutation.SetRank(v)
	return _c
}

// SetNillableRank sets the "rank" field if the given value is not nil.
func (_c *EntityFactCreate) SetNillableRank(v *entityfact.Rank) *EntityFactCreate {
	if v != nil {
		_c.SetRank(*v)
	}
	return _c
}

// SetSupersededBy sets the "superseded_by" field.
func (_c *EntityFactCreate) SetSupersededBy(v string) *EntityFactCreate {
	_c.mutation.SetSupersededBy(v)
	return _c
}

// SetNillableSupersededBy sets the "superseded_by" field if the given value is not nil.
func (_c *EntityFactCreate) SetNillableSupersededBy(v *string) *EntityFactCreate {
	if v != nil {
		_c.SetSupersededBy(*v)
	}
	return _c
}

// SetNeedsReview sets the "needs_review" field.
func (_c *EntityFactCreate) SetNeedsReview(v bool) *EntityFactCreate {
	_c.mutation.SetNeedsReview(v)
	return _c
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_c *EntityFactCreate) SetNillableNeedsReview(v *bool) *EntityFactCreate {
	if v != nil {
		_c.SetNeedsReview(*v)
	}
	return _c
}

// SetReviewReason sets the "review_reason" field.
func (_c *EntityFactCreate) SetReviewReason(v string) *EntityFactCreate {
	_c.mutation.SetReviewReason(v)
	return _c
}

// SetNillableReviewReason sets the "review_reason" field if the given value is not nil.
func (_c *EntityFactCreate) SetNillableReviewReason(v *string) *EntityFactCreate {
	if v != nil {
		_c.SetReviewReason(*v)
	}
	return _c
}

// SetConfirmationCount sets the "confirmation_count" field.
func (_c *EntityFactCreate) SetConfirmationCount(v int) *EntityFactCreate {
	_c.mutation.SetConfirmationCount(v)
	return _c
}

// SetNillableConfirmationCount sets the "confirmation_count" field if the given value is not nil.
func (_c *EntityFactCreate) SetNillableConfirmationCount(v *int) *EntityFactCreate {
	if v != nil {
		_c.SetConfirmationCount(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *EntityFactCreate) SetMetadata(v map[string]interface{}) *EntityFactCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetEmbedding sets the "embedding" field.
func (_c *EntityFactCreate) SetEmbedding(v pgvector.Vector) *EntityFactCreate {
	_c.mutation.SetEmbedding(v)
	return _c
}

// SetNillableEmbedding sets the "embedding" field if the given value is not nil.
func (_c *EntityFactCreate) SetNillableEmbedding(v *pgvector.Vector) *EntityFactCreate {
	if v != nil {
		_c.SetEmbedding(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EntityFactCreate) SetCreatedAt(v time.Time) *EntityFactCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EntityFactCreate) SetNillableCreatedAt(v *time.Time) *EntityFactCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *EntityFactCreate) SetUpdatedAt(v time.Time) *EntityFactCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *EntityFactCreate) SetNillableUpdatedAt(v *time.Time) *EntityFactCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *EntityFactCreate) SetDeletedAt(v time.Time) *EntityFactCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *EntityFactCreate) SetNillableDeletedAt(v *time.Time) *EntityFactCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EntityFactCreate) SetID(v string) *EntityFactCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetEntity sets the "entity" edge to the Entity entity.
func (_c *EntityFactCreate) SetEntity(v *Entity) *EntityFactCreate {
	return _c.SetEntityID(v.ID)
}

// Mutation returns the EntityFactMutation object of the builder.
func (_c *EntityFactCreate) Mutation() *EntityFactMutation {
	return _c.mutation
}

// Save creates the EntityFact in the database.
func (_c *EntityFactCreate) Save(ctx context.Context) (*EntityFact, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EntityFactCreate) SaveX(ctx context.Context) *EntityFact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EntityFactCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EntityFactCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EntityFactCreate) defaults() {
	if _, ok := _c.mutation.Source(); !ok {
		v := entityfact.DefaultSource
		_c.mutation.SetSource(v)
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		v := entityfact.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := entityfact.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Rank(); !ok {
		v := entityfact.DefaultRank
		_c.mutation.SetRank(v)
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		v := entityfact.DefaultNeedsReview
		_c.mutation.SetNeedsReview(v)
	}
	if _, ok := _c.mutation.ConfirmationCount(); !ok {
		v := entityfact.DefaultConfirmationCount
		_c.mutation.SetConfirmationCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := entityfact.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := entityfact.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EntityFactCreate) check() error {
	if _, ok := _c.mutation.EntityID(); !ok {
		return &ValidationError{Name: "entity_id", err: errors.New(`ent: missing required field "EntityFact.entity_id"`)}
	}
	if _, ok := _c.mutation.FactType(); !ok {
		return &ValidationError{Name: "fact_type", err: errors.New(`ent: missing required field "EntityFact.fact_type"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "EntityFact.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := entityfact.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "EntityFact.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "EntityFact.confidence"`)}
	}
	if v, ok := _c.mutation.Confidence(); ok {
		if err := entityfact.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "EntityFact.confidence": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "EntityFact.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := entityfact.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "EntityFact.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Rank(); !ok {
		return &ValidationError{Name: "rank", err: errors.New(`ent: missing required field "EntityFact.rank"`)}
	}
	if v, ok := _c.mutation.Rank(); ok {
		if err := entityfact.RankValidator(v); err != nil {
			return &ValidationError{Name: "rank", err: fmt.Errorf(`ent: validator failed for field "EntityFact.rank": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		return &ValidationError{Name: "needs_review", err: errors.New(`ent: missing required field "EntityFact.needs_review"`)}
	}
	if _, ok := _c.mutation.ConfirmationCount(); !ok {
		return &ValidationError{Name: "confirmation_count", err: errors.New(`ent: missing required field "EntityFact.confirmation_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EntityFact.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "EntityFact.updated_at"`)}
	}
	if len(_c.mutation.EntityIDs()) == 0 {
		return &ValidationError{Name: "entity", err: errors.New(`ent: missing required edge "EntityFact.entity"`)}
	}
	return nil
}

func (_c *EntityFactCreate) sqlSave(ctx context.Context) (*EntityFact, error) {
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
			return nil, fmt.Errorf("unexpected EntityFact.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EntityFactCreate) createSpec() (*EntityFact, *sqlgraph.CreateSpec) {
	var (
		_node = &EntityFact{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(entityfact.Table, sqlgraph.NewFieldSpec(entityfact.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.FactType(); ok {
		_spec.SetField(entityfact.FieldFactType, field.TypeString, value)
		_node.FactType = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(entityfact.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(entityfact.FieldValue, field.TypeString, value)
		_node.Value = &value
	}
	if value, ok := _c.mutation.ValueDate(); ok {
		_spec.SetField(entityfact.FieldValueDate, field.TypeTime, value)
		_node.ValueDate = &value
	}
	if value, ok := _c.mutation.ValueJSON(); ok {
		_spec.SetField(entityfact.FieldValueJSON, field.TypeJSON, value)
		_node.ValueJSON = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(entityfact.FieldSource, field.TypeEnum, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(entityfact.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.SourceInteractionID(); ok {
		_spec.SetField(entityfact.FieldSourceInteractionID, field.TypeString, value)
		_node.SourceInteractionID = &value
	}
	if value, ok := _c.mutation.SourceMessageID(); ok {
		_spec.SetField(entityfact.FieldSourceMessageID, field.TypeString, value)
		_node.SourceMessageID = &value
	}
	if value, ok := _c.mutation.ValidFrom(); ok {
		_spec.SetField(entityfact.FieldValidFrom, field.TypeTime, value)
		_node.ValidFrom = &value
	}
	if value, ok := _c.mutation.ValidUntil(); ok {
		_spec.SetField(entityfact.FieldValidUntil, field.TypeTime, value)
		_node.ValidUntil = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(entityfact.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Rank(); ok {
		_spec.SetField(entityfact.FieldRank, field.TypeEnum, value)
		_node.Rank = value
	}
	if value, ok := _c.mutation.SupersededBy(); ok {
		_spec.SetField(entityfact.FieldSupersededBy, field.TypeString, value)
		_node.SupersededBy = &value
	}
	if value, ok := _c.mutation.NeedsReview(); ok {
		_spec.SetField(entityfact.FieldNeedsReview, field.TypeBool, value)
		_node.NeedsReview = value
	}
	if value, ok := _c.mutation.ReviewReason(); ok {
		_spec.SetField(entityfact.FieldReviewReason, field.TypeString, value)
		_node.ReviewReason = &value
	}
	if value, ok := _c.mutation.ConfirmationCount(); ok {
		_spec.SetField(entityfact.FieldConfirmationCount, field.TypeInt, value)
		_node.ConfirmationCount = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(entityfact.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.Embedding(); ok {
		_spec.SetField(entityfact.FieldEmbedding, field.TypeOther, value)
		_node.Embedding = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(entityfact.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(entityfact.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(entityfact.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if nodes := _c.mutation.EntityIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   entityfact.EntityTable,
			Columns: []string{entityfact.EntityColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entity.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.EntityID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EntityFact.Create().
//		SetEntityID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EntityFactUpsert) {
//			SetEntityID(v+v).
//		}).
//		Exec(ctx)
func (_c *EntityFactCreate) OnConflict(opts ...sql.ConflictOption) *EntityFactUpsertOne {
	_c.conflict = opts
	return &EntityFactUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EntityFact.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EntityFactCreate) OnConflictColumns(columns ...string) *EntityFactUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EntityFactUpsertOne{
		create: _c,
	}
}

type (
	// EntityFactUpsertOne is the builder for "upsert"-ing
	//  one EntityFact node.
	EntityFactUpsertOne struct {
		create *EntityFactCreate
	}

	// EntityFactUpsert is the "OnConflict" setter.
	EntityFactUpsert struct {
		*sql.UpdateSet
	}
)

// SetEntityID sets the "entity_id" field.
func (u *EntityFactUpsert) SetEntityID(v string) *EntityFactUpsert {
	u.Set(entityfact.FieldEntityID, v)
	return u
}

// UpdateEntityID sets the "entity_id" field to the value that was provided on create.
func (u *EntityFactUpsert) UpdateEntityID() *EntityFactUpsert {
	u.SetExcluded(entityfact.FieldEntityID)
	return u
}

// SetFactType sets the "fact_type" field.
func (u *EntityFactUpsert) SetFactType(v string) *EntityFactUpsert {
	u.Set(entityfact.FieldFactType, v)
	return u
}

// UpdateFactType sets the "fact_type" field to the value that was provided on create.
func (u *EntityFactUpsert) UpdateFactType() *EntityFactUpsert {
	u.SetExcluded(entityfact.FieldFactType)
	return u
}

// SetCategory sets the "category" field.
func (u *EntityFactUpsert) SetCategory(v string) *EntityFactUpsert {
	u.Set(entityfact.FieldCategory, v)
	return u
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *EntityFactUpsert) UpdateCategory() *EntityFactUpsert {
	u.SetExcluded(entityfact.FieldCategory)
	return u
}

// ClearCategory clears the value of the "category" field.
func (u *EntityFactUpsert) ClearCategory() *EntityFactUpsert {
	u.SetNull(entityfact.FieldCategory)
	return u
}

// SetValue sets the "value" field.
func (u *EntityFactUpsert) SetValue(v string) *EntityFactUpsert {
	u.Set(entityfact.FieldValue, v)
	return u
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *EntityFactUpsert) UpdateValue() *EntityFactUpsert {
	u.SetExcluded(entityfact.FieldValue)
	return u
}

// ClearValue clears the value of the "value" field.
func (u *EntityFactUpsert) ClearValue() *EntityFactUpsert {
	u.SetNull(entityfact.FieldValue)
	return u
}

// SetValueDate sets the "value_date" field.
func (u *EntityFactUpsert) SetValueDate(v time.Time) *EntityFactUpsert {
	u.Set(entityfact.FieldValueDate, v)
	return u
}

// UpdateValueDate sets the "value_date" field to the value that was provided on create.
func (u *EntityFactUpsert) UpdateValueDate() *EntityFactUpsert {
	u.SetExcluded(entityfact.FieldValueDate)
	return u
}

// ClearValueDate clears the value of the "value_date" field.
func (u *EntityFactUpsert) ClearValueDate() *EntityFactUpsert {
	u.SetNull(entityfact.FieldValueDate)
	return u
}

// SetValueJSON sets the "value_json" field.
func (u *EntityFactUpsert) SetValueJSON(v map[string]interface{}) *EntityFactUpsert {
	u.Set(entityfact.FieldValueJSON, v)
	return u
}

// UpdateValueJSON sets the "value_json" field to the value that was provided on create.
func (u *EntityFactUpsert) UpdateValueJSON() *EntityFactUpsert {
	u.SetExcluded(entityfact.FieldValueJSON)
	return u
}

// ClearValueJSON clears the value of the "value_json" field.
func (u *EntityFactUpsert) ClearValueJSON() *EntityFactUpsert {
	u.SetNull(entityfact.FieldValueJSON)
	return u
}

// SetSource sets the "source" field.
func (u *EntityFactUpsert) SetSource(v entityfact.Source) *EntityFactUpsert {
	u.Set(entityfact.FieldSource, v)
	return u
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *EntityFactUpsert) UpdateSource() *EntityFactUpsert {
	u.SetExcluded(entityfact.FieldSource)
	return u
}

// SetConfidence sets the "confidence" field.
func (u *EntityFactUpsert) SetConfidence(v float64) *EntityFactUpsert {
	u.Set(entityfact.FieldConfidence, v)
	return u
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *EntityFactUpsert) UpdateConfidence() *EntityFactUpsert {
	u.SetExcluded(entityfact.FieldConfidence)
	return u
}

// AddConfidence adds v to the "confidence" field.
func (u *EntityFactUpsert) AddConfidence(v float64) *EntityFactUpsert {
	u.Add(entityfact.FieldConfidence, v)
	return u
}

// SetSourceInteractionID sets the "source_interaction_id" field.
func (u *EntityFactUpsert) SetSourceInteractionID(v string) *EntityFactUpsert {
	u.Set(entityfact.FieldSourceInteractionID, v)
	return u
}

// UpdateSourceInteractionID sets the "source_interaction_id" field to the value that was provided on create.
func (u *EntityFactUpsert) UpdateSourceInteractionID() *EntityFactUpsert {
	u.SetExcluded(entityfact.FieldSourceInteractionID)
	return u
}

// ClearSourceInteractionID clears the value of the "source_interaction_id" field.
func (u *EntityFactUpsert) ClearSourceInteractionID() *EntityFactUpsert {
	u.SetNull(entityfact.FieldSourceInteractionID)
	return u
}

// SetSourceMessageID sets the "source_message_id" field.
func (u *EntityFactUpsert) SetSourceMessageID(v string) *EntityFactUpsert {
	u.Set(entityfact.FieldSourceMessageID, v)
	return u
}

// UpdateSourceMessageID sets the "source_message_id" field to the value that was provided on create.
func (u *EntityFactUpsert) UpdateSourceMessageID() *EntityFactUpsert {
	u.SetExcluded(entityfact.FieldSourceMessageID)
	return u
}

// ClearSourceMessageID clears the value of the "source_message_id" field.
func (u *EntityFactUpsert) ClearSourceMessageID() *EntityFactUpsert {
	u.SetNull(entityfact.FieldSourceMessageID)
	return u
}

// SetValidFrom sets the "valid_from" field.
func (u *EntityFactUpsert) SetValidFrom(v time.Time) *EntityFactUpsert {
	u.Set(entityfact.FieldValidFrom, v)
	return u
}

// UpdateValidFrom sets the "valid_from" field to the value that was provided on create.
func (u *EntityFactUpsert) UpdateValidFrom() *EntityFactUpsert {
	u.SetExcluded(entityfact.FieldValidFrom)
	return u
}

// ClearValidFrom clears the value of the "valid_from" field.
func (u *EntityFactUpsert) ClearValidFrom() *EntityFactUpsert {
	u.SetNull(entityfact.FieldValidFrom)
	return u
}

// SetValidUntil sets the "valid_until" field.
func (u *EntityFactUpsert) SetValidUntil(v time.Time) *EntityFactUpsert {
	u.Set(entityfact.FieldValidUntil, v)
	return u
}

// UpdateValidUntil sets the "valid_until" field to the value that was provided on create.
func (u *EntityFactUpsert) UpdateValidUntil() *EntityFactUpsert {
	u.SetExcluded(entityfact.FieldValidUntil)
	return u
}

// ClearValidUntil clears the value of the "valid_until" field.
func (u *EntityFactUpsert) ClearValidUntil() *EntityFactUpsert {
	u.SetNull(entityfact.FieldValidUntil)
	return u
}

// SetStatus sets the "status" field.
func (u *EntityFactUpsert) SetStatus(v entityfact.Status) *EntityFactUpsert {
	u.Set(entityfact.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *EntityFactUpsert) UpdateStatus() *EntityFactUpsert {
	u.SetExcluded(entityfact.FieldStatus)
	return u
}

// SetRank sets the "rank" field.
func (u *EntityFactUpsert) SetRank(v entityfact.Rank) *EntityFactUpsert {
	u.Set(entityfact.FieldRank, v)
	return u
}

// UpdateRank sets the "rank" field to the value that was provided on create.
func (u *EntityFactUpsert) UpdateRank() *EntityFactUpsert {
	u.SetExcluded(entityfact.FieldRank)
	return u
}

// SetSupersededBy sets the "superseded_by" field.
func (u *EntityFactUpsert) SetSupersededBy(v string) *EntityFactUpsert {
	u.Set(entityfact.FieldSupersededBy, v)
	return u
}

// UpdateSupersededBy sets the "superseded_by" field to the value that was provided on create.
func (u *EntityFactUpsert) UpdateSupersededBy() *EntityFactUpsert {
	u.SetExcluded(entityfact.FieldSupersededBy)
	return u
}

// ClearSupersededBy clears the value of the "superseded_by" field.
func (u *EntityFactUpsert) ClearSupersededBy() *EntityFactUpsert {
	u.SetNull(entityfact.FieldSupersededBy)
	return u
}

// SetNeedsReview sets the "needs_review" field.
func (u *EntityFactUpsert) SetNeedsReview(v bool) *EntityFactUpsert {
	u.Set(entityfact.FieldNeedsReview, v)
	return u
}

// UpdateNeedsReview sets the "needs_review" field to the value that was provided on create.
func (u *EntityFactUpsert) UpdateNeedsReview() *EntityFactUpsert {
	u.SetExcluded(entityfact.FieldNeedsReview)
	return u
}

// SetReviewReason sets the "review_reason" field.
func (u *EntityFactUpsert) SetReviewReason(v string) *EntityFactUpsert {
	u.Set(entityfact.FieldReviewReason, v)
	return u
}

// UpdateReviewReason sets the "review_reason" field to the value that was provided on create.
func (u *EntityFactUpsert) UpdateReviewReason() *EntityFactUpsert {
	u.SetExcluded(entityfact.FieldReviewReason)
	return u
}

// ClearReviewReason clears the value of the "review_reason" field.
func (u *EntityFactUpsert) ClearReviewReason() *EntityFactUpsert {
	u.SetNull(entityfact.FieldReviewReason)
	return u
}

// SetConfirmationCount sets the "confirmation_count" field.
func (u *EntityFactUpsert) SetConfirmationCount(v int) *EntityFactUpsert {
	u.Set(entityfact.FieldConfirmationCount, v)
	return u
}

// UpdateConfirmationCount sets the "confirmation_count" field to the value that was provided on create.
func (u *EntityFactUpsert) UpdateConfirmationCount() *EntityFactUpsert {
	u.SetExcluded(entityfact.FieldConfirmationCount)
	return u
}

// AddConfirmationCount adds v to the "confirmation_count" field.
func (u *EntityFactUpsert) AddConfirmationCount(v int) *EntityFactUpsert {
	u.Add(entityfact.FieldConfirmationCount, v)
	return u
}

// SetMetadata sets the "metadata" field.
func (u *EntityFactUpsert) SetMetadata(v map[string]interface{}) *EntityFactUpsert {
	u.Set(entityfact.FieldMetadata, v)
	return u
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *EntityFactUpsert) UpdateMetadata() *EntityFactUpsert {
	u.SetExcluded(entityfact.FieldMetadata)
	return u
}

// ClearMetadata clears the value of the "metadata" field.
func (u *EntityFactUpsert) ClearMetadata() *EntityFactUpsert {
	u.SetNull(entityfact.FieldMetadata)
	return u
}

// SetEmbedding sets the "embedding" field.
func (u *EntityFactUpsert) SetEmbedding(v pgvector.Vector) *EntityFactUpsert {
	u.Set(entityfact.FieldEmbedding, v)
	return u
}

// UpdateEmbedding sets the "embedding" field to the value that was provided on create.
func (u *EntityFactUpsert) UpdateEmbedding() *EntityFactUpsert {
	u.SetExcluded(entityfact.FieldEmbedding)
	return u
}

// ClearEmbedding clears the value of the "embedding" field.
func (u *EntityFactUpsert) ClearEmbedding() *EntityFactUpsert {
	u.SetNull(entityfact.FieldEmbedding)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EntityFactUpsert) SetUpdatedAt(v time.Time) *EntityFactUpsert {
	u.Set(entityfact.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EntityFactUpsert) UpdateUpdatedAt() *EntityFactUpsert {
	u.SetExcluded(entityfact.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *EntityFactUpsert) SetDeletedAt(v time.Time) *EntityFactUpsert {
	u.Set(entityfact.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *EntityFactUpsert) UpdateDeletedAt() *EntityFactUpsert {
	u.SetExcluded(entityfact.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *EntityFactUpsert) ClearDeletedAt() *EntityFactUpsert {
	u.SetNull(entityfact.FieldDeletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.EntityFact.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(entityfact.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EntityFactUpsertOne) UpdateNewValues() *EntityFactUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(entityfact.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(entityfact.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EntityFact.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EntityFactUpsertOne) Ignore() *EntityFactUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EntityFactUpsertOne) DoNothing() *EntityFactUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EntityFactCreate.OnConflict
// documentation for more info.
func (u *EntityFactUpsertOne) Update(set func(*EntityFactUpsert)) *EntityFactUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EntityFactUpsert{UpdateSet: update})
	}))
	return u
}

// SetEntityID sets the "entity_id" field.
func (u *EntityFactUpsertOne) SetEntityID(v string) *EntityFactUpsertOne {
	return u.Update(func(s *EntityFactUpsert) {
		s.SetEntityID(v)
	})
}

// UpdateEntityID sets the "entity_id" field to the value that was provided on create.
func (u *EntityFactUpsertOne) UpdateEntityID() *EntityFactUpsertOne {
	return u.Update(func(s *EntityFactUpsert) {
		s.UpdateEntityID()
	})
}

// SetFactType sets the "fact_type" field.
func (u *EntityFactUpsertOne) SetFactType(v string) *EntityFactUpsertOne {
	return u.Update(func(s *EntityFactUpsert) {
		s.SetFactType(v)
	})
}

// UpdateFactType sets the "fact_type" field to the value that was provided on create.
func (u *EntityFactUpsertOne) UpdateFactType() *EntityFactUpsertOne {
	return u.Update(func(s *EntityFactUpsert) {
		s.UpdateFactType()
	})
}

// SetCategory sets the "category" field.
func (u *EntityFactUpsertOne) SetCategory(v string) *EntityFactUpsertOne {
	return u.Update(func(s *EntityFactUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *EntityFactUpsertOne) UpdateCategory() *EntityFactUpsertOne {
	return u.Update(func(s *EntityFactUpsert) {
		s.UpdateCategory()
	})
}

// ClearCategory clears the value of the "category" field.
func (u *EntityFactUpsertOne) ClearCategory() *EntityFactUpsertOne {
	return u.Update(func(s *EntityFactUpsert) {
		s.ClearCategory()
	})
}

// SetValue sets the "value" field.
func (u *EntityFactUpsertOne) SetValue(v string) *EntityFactUpsertOne {
	return u.Update(func(s *EntityFactUpsert) {
		s.SetValue(v)
	})
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *EntityFactUpsertOne) UpdateValue() *EntityFactUpsertOne {
	return u.Update(func(s *EntityFactUpsert) {
		s.UpdateValue()
	})
}

// ClearValue clears the value of the "value" field.
func (u *EntityFactUpsertOne) ClearValue() *EntityFactUpsertOne {
	return u.Update(func(s *EntityFactUpsert) {
		s.ClearValue()
	})
}

// SetValueDate sets the "value_date" field.
func (u *EntityFactUpsertOne) SetValueDate(v time.Time) *EntityFactUpsertOne {
	return u.Update(func(s *EntityFactUpsert) {
		s.SetValueDate(v)
	})
}

// UpdateValueDate sets the "value_date" field to the value that was provided on create.
func (u *EntityFactUpsertOne) UpdateValueDate() *EntityFactUpsertOne {
	return u.Update(func(s *EntityFactUpsert) {
		s.UpdateValueDate()
	})
}

// ClearValueDate clears the value of the "value_date" field.
func (u *EntityFactUpsertOne) ClearValueDate() *EntityFactUpsertOne {
	return u.Update(func(s *EntityFactUpsert) {
		s.ClearValueDate()
	})
}

// SetValueJSON sets the "value_json" field.
func (u *EntityFactUpsertOne) SetValueJSON(v map[string]interface{}) *EntityFactUpsertOne {
	return u.Update(func(s *EntityFactUpsert) {
		s.SetValueJSON(v)
	})
}

// UpdateValueJSON sets the "value_json" field to the value that was provided on create.
func (u *EntityFactUpsertOne) UpdateValueJSON() *EntityFactUpsertOne {
	return u.Update(func(s *EntityFactUpsert) {
		s.UpdateValueJSON()
	})
}

// ClearValueJSON clears the value of the "value_json" field.
func (u *EntityFactUpsertOne) ClearValueJSON() *EntityFactUpsertOne {
	return u.Update(func(s *EntityFactUpsert) {
		s.ClearValueJSON()
	})
}

// SetSource sets the "source" field.
func (u *EntityFactUpsertOne) SetSource(v entityfact.Source) *EntityFactUpsertOne {
	return u.Update(func(s *EntityFactUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *EntityFactUpsertOne) UpdateSource() *EntityFactUpsertOne {
	return u.Update(func(s *EntityFactUpsert) {
		s.UpdateSource()
	})
}

// SetConfidence sets the "confidence" field.
func (u *EntityFactUpsertOne) SetConfidence(v float64) *EntityFactUpsertOne {
	return u.Update(func(s *EntityFactUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *EntityFactUpsertOne) AddConfidence(v float64) *EntityFactUpsertOne {
	return u.Update(func(s *EntityFactUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *EntityFactUpsertOne) UpdateConfidence() *EntityFactUpsertOne {
	return u.Update(func(s *EntityFactUpsert) {
		s.UpdateConfidence()
	})
}

// SetSourceInteractionID sets the "source_interaction_id" field.
func (u *EntityFactUpsertOne) SetSourceInteractionID(v string) *EntityFactUpsertOne {
	return u.Update(func(s *EntityFactUpsert) {
		s.SetSourceInteractionID(v)
	})
}

// UpdateSourceInteractionID sets the "source_interaction_id" field to the value that was provided on create.
func (u *EntityFactUpsertOne) UpdateSourceInteractionID() *EntityFactUpsertOne {
	return u.Update(func(s *EntityFactUpsert) {
		s.UpdateSourceInteractionID()
	})
}

// ClearSourceInteractionID clears the value of the "source_interaction_id" field.
func (u *EntityFactUpsertOne) ClearSourceInteractionID() *EntityFactUpsertOne {
	return u.Update(func(s *EntityFactUpsert) {
		s.ClearSourceInteractionID()
	})
}

// SetSourceMessageID sets the "source_message_id" field.
func (u *EntityFactUpsertOne) SetSourceMessageID(v string) *EntityFactUpsertOne {
	return u.Update(func(s *EntityFactUpsert) {
		s.SetSourceMessageID(v)
	})
}

// UpdateSourceMessageID sets the "source_message_id" field to the value that was provided on create.
func (u *EntityFactUpsertOne) UpdateSourceMessageID() *EntityFactUpsertOne {
	return u.Update(func(s *EntityFactUpsert) {
		s.UpdateSourceMessageID()
	})
}

// ClearSourceMessageID clears the value of the "source_message_id" field.
func (u *EntityFactUpsertOne) ClearSourceMessageID() *EntityFactUpsertOne {
	return u.Update(func(s *EntityFactUpsert) {
		s.ClearSourceMessageID()
	})
}

// SetValidFrom sets the "valid_from" field.
func (u *EntityFactUpsertOne) SetValidFrom(v time.Time) *EntityFactUpsertOne {
	return u.Update(func(s *EntityFactUpsert) {
		s.SetValidFrom(v)
	})
}

// UpdateValidFrom sets the "valid_from" field to the value that was provided on create.
func (u *EntityFactUpsertOne) UpdateValidFrom() *EntityFactUpsertOne {
	return u.Update(func(s *EntityFactUpsert) {
		s.UpdateValidFrom()
	})
}

// ClearValidFrom clears the value of the "valid_from" field.
func (u *EntityFactUpsertOne) ClearValidFrom() *EntityFactUpsertOne {
	return u.Update(func(s *EntityFactUpsert) {
		s.ClearValidFrom()
	})
}

// SetValidUntil sets the "valid_until" field.
func (u *EntityFactUpsertOne) SetValidUntil(v time.Time) *EntityFactUpsertOne {
	return u.Update(func(s *EntityFactUpsert) {
		s.SetValidUntil(v)
	})
}

// UpdateValidUntil sets the "valid_until" field to the value that was provided on create.
func (u *EntityFactUpsertOne) UpdateValidUntil() *EntityFactUpsertOne {
	return u.Update(func(s *EntityFactUpsert) {
		s.UpdateValidUntil()
	})
}

// ClearValidUntil clears the value of the "valid_until" field.
func (u *EntityFactUpsertOne) ClearValidUntil() *EntityFactUpsertOne {
	return u.Update(func(s *EntityFactUpsert) {
		s.ClearValidUntil()
	})
}

// SetStatus sets the "status" field.
func (u *EntityFactUpsertOne) SetStatus(v entityfact.Status) *EntityFactUpsertOne {
	return u.Update(func(s *EntityFactUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *EntityFactUpsertOne) UpdateStatus() *EntityFactUpsertOne {
	return u.Update(func(s *EntityFactUpsert) {
		s.UpdateStatus()
	})
}

// SetRank sets the "rank" field.
func (u *EntityFactUpsertOne) SetRank(v entityfact.Rank) *EntityFactUpsertOne {
	return u.Update(func(s *EntityFactUpsert) {
		s.SetRank(v)
	})
}

// UpdateRank sets the "rank" field to the value that was provided on create.
func (u *EntityFactUpsertOne) UpdateRank() *EntityFactUpsertOne {
	return u.Update(func(s *EntityFactUpsert) {
		s.UpdateRank()
	})
}

// SetSupersededBy sets the "superseded_by" field.
func (u *EntityFactUpsertOne) SetSupersededBy(v string) *EntityFactUpsertOne {
	return u.Update(func(s *EntityFactUpsert) {
		s.SetSupersededBy(v)
	})
}

// UpdateSupersededBy sets the "superseded_by" field to the value that was provided on create.
func (u *EntityFactUpsertOne) UpdateSupersededBy() *EntityFactUpsertOne {
	return u.Update(func(s *EntityFactUpsert) {
		s.UpdateSupersededBy()
	})
}

// ClearSupersededBy clears the value of the "superseded_by" field.
func (u *EntityFactUpsertOne) ClearSupersededBy() *EntityFactUpsertOne {
	return u.Update(func(s *EntityFactUpsert) {
		s.ClearSupersededBy()
	})
}

// SetNeedsReview sets the "needs_review" field.
func (u *EntityFactUpsertOne) SetNeedsReview(v bool) *EntityFactUpsertOne {
	return u.Update(func(s *EntityFactUpsert) {
		s.SetNeedsReview(v)
	})
}

// UpdateNeedsReview sets the "needs_review" field to the value that was provided on create.
func (u *EntityFactUpsertOne) UpdateNeedsReview() *EntityFactUpsertOne {
	return u.Update(func(s *EntityFactUpsert) {
		s.UpdateNeedsReview()
	})
}

// SetReviewReason sets the "review_reason" field.
func (u *EntityFactUpsertOne) SetReviewReason(v string) *EntityFactUpsertOne {
	return u.Update(func(s *EntityFactUpsert) {
		s.SetReviewReason(v)
	})
}

// UpdateReviewReason sets the "review_reason" field to the value that was provided on create.
func (u *EntityFactUpsertOne) UpdateReviewReason() *EntityFactUpsertOne {
	return u.Update(func(s *EntityFactUpsert) {
		s.UpdateReviewReason()
	})
}

// ClearReviewReason clears the value of the "review_reason" field.
func (u *EntityFactUpsertOne) ClearReviewReason() *EntityFactUpsertOne {
	return u.Update(func(s *EntityFactUpsert) {
		s.ClearReviewReason()
	})
}

// SetConfirmationCount sets the "confirmation_count" field.
func (u *EntityFactUpsertOne) SetConfirmationCount(v int) *EntityFactUpsertOne {
	return u.Update(func(s *EntityFactUpsert) {
		s.SetConfirmationCount(v)
	})
}

// AddConfirmationCount adds v to the "confirmation_count" field.
func (u *EntityFactUpsertOne) AddConfirmationCount(v int) *EntityFactUpsertOne {
	return u.Update(func(s *EntityFactUpsert) {
		s.AddConfirmationCount(v)
	})
}

// UpdateConfirmationCount sets the "confirmation_count" field to the value that was provided on create.
func (u *EntityFactUpsertOne) UpdateConfirmationCount() *EntityFactUpsertOne {
	return u.Update(func(s *EntityFactUpsert) {
		s.UpdateConfirmationCount()
	})
}

// SetMetadata sets the "metadata" field.
func (u *EntityFactUpsertOne) SetMetadata(v map[string]interface{}) *EntityFactUpsertOne {
	return u.Update(func(s *EntityFactUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *EntityFactUpsertOne) UpdateMetadata() *EntityFactUpsertOne {
	return u.Update(func(s *EntityFactUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *EntityFactUpsertOne) ClearMetadata() *EntityFactUpsertOne {
	return u.Update(func(s *EntityFactUpsert) {
		s.ClearMetadata()
	})
}

// SetEmbedding sets the "embedding" field.
func (u *EntityFactUpsertOne) SetEmbedding(v pgvector.Vector) *EntityFactUpsertOne {
	return u.Update(func(s *EntityFactUpsert) {
		s.SetEmbedding(v)
	})
}

// UpdateEmbedding sets the "embedding" field to the value that was provided on create.
func (u *EntityFactUpsertOne) UpdateEmbedding() *EntityFactUpsertOne {
	return u.Update(func(s *EntityFactUpsert) {
		s.UpdateEmbedding()
	})
}

// ClearEmbedding clears the value of the "embedding" field.
func (u *EntityFactUpsertOne) ClearEmbedding() *EntityFactUpsertOne {
	return u.Update(func(s *EntityFactUpsert) {
		s.ClearEmbedding()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EntityFactUpsertOne) SetUpdatedAt(v time.Time) *EntityFactUpsertOne {
	return u.Update(func(s *EntityFactUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EntityFactUpsertOne) UpdateUpdatedAt() *EntityFactUpsertOne {
	return u.Update(func(s *EntityFactUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *EntityFactUpsertOne) SetDeletedAt(v time.Time) *EntityFactUpsertOne {
	return u.Update(func(s *EntityFactUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *EntityFactUpsertOne) UpdateDeletedAt() *EntityFactUpsertOne {
	return u.Update(func(s *EntityFactUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *EntityFactUpsertOne) ClearDeletedAt() *EntityFactUpsertOne {
	return u.Update(func(s *EntityFactUpsert) {
		s.ClearDeletedAt()
	})
}

// Exec executes the query.
func (u *EntityFactUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EntityFactCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EntityFactUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EntityFactUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: EntityFactUpsertOne.ID is not supported by MySQL driver. Use EntityFactUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EntityFactUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EntityFactCreateBulk is the builder for creating many EntityFact entities in bulk.
type EntityFactCreateBulk struct {
	config
	err      error
	builders []*EntityFactCreate
	conflict []sql.ConflictOption
}

// Save creates the EntityFact entities in the database.
func (_c *EntityFactCreateBulk) Save(ctx context.Context) ([]*EntityFact, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EntityFact, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EntityFactMutation)
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
func (_c *EntityFactCreateBulk) SaveX(ctx context.Context) []*EntityFact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EntityFactCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EntityFactCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EntityFact.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EntityFactUpsert) {
//			SetEntityID(v+v).
//		}).
//		Exec(ctx)
func (_c *EntityFactCreateBulk) OnConflict(opts ...sql.ConflictOption) *EntityFactUpsertBulk {
	_c.conflict = opts
	return &EntityFactUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EntityFact.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EntityFactCreateBulk) OnConflictColumns(columns ...string) *EntityFactUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EntityFactUpsertBulk{
		create: _c,
	}
}

// EntityFactUpsertBulk is the builder for "upsert"-ing
// a bulk of EntityFact nodes.
type EntityFactUpsertBulk struct {
	create *EntityFactCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.EntityFact.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(entityfact.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EntityFactUpsertBulk) UpdateNewValues() *EntityFactUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(entityfact.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(entityfact.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EntityFact.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EntityFactUpsertBulk) Ignore() *EntityFactUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EntityFactUpsertBulk) DoNothing() *EntityFactUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EntityFactCreateBulk.OnConflict
// documentation for more info.
func (u *EntityFactUpsertBulk) Update(set func(*EntityFactUpsert)) *EntityFactUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EntityFactUpsert{UpdateSet: update})
	}))
	return u
}

// SetEntityID sets the "entity_id" field.
func (u *EntityFactUpsertBulk) SetEntityID(v string) *EntityFactUpsertBulk {
	return u.Update(func(s *EntityFactUpsert) {
		s.SetEntityID(v)
	})
}

// UpdateEntityID sets the "entity_id" field to the value that was provided on create.
func (u *EntityFactUpsertBulk) UpdateEntityID() *EntityFactUpsertBulk {
	return u.Update(func(s *EntityFactUpsert) {
		s.UpdateEntityID()
	})
}

// SetFactType sets the "fact_type" field.
func (u *EntityFactUpsertBulk) SetFactType(v string) *EntityFactUpsertBulk {
	return u.Update(func(s *EntityFactUpsert) {
		s.SetFactType(v)
	})
}

// UpdateFactType sets the "fact_type" field to the value that was provided on create.
func (u *EntityFactUpsertBulk) UpdateFactType() *EntityFactUpsertBulk {
	return u.Update(func(s *EntityFactUpsert) {
		s.UpdateFactType()
	})
}

// SetCategory sets the "category" field.
func (u *EntityFactUpsertBulk) SetCategory(v string) *EntityFactUpsertBulk {
	return u.Update(func(s *EntityFactUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *EntityFactUpsertBulk) UpdateCategory() *EntityFactUpsertBulk {
	return u.Update(func(s *EntityFactUpsert) {
		s.UpdateCategory()
	})
}

// ClearCategory clears the value of the "category" field.
func (u *EntityFactUpsertBulk) ClearCategory() *EntityFactUpsertBulk {
	return u.Update(func(s *EntityFactUpsert) {
		s.ClearCategory()
	})
}

// SetValue sets the "value" field.
func (u *EntityFactUpsertBulk) SetValue(v string) *EntityFactUpsertBulk {
	return u.Update(func(s *EntityFactUpsert) {
		s.SetValue(v)
	})
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *EntityFactUpsertBulk) UpdateValue() *EntityFactUpsertBulk {
	return u.Update(func(s *EntityFactUpsert) {
		s.UpdateValue()
	})
}

// ClearValue clears the value of the "value" field.
func (u *EntityFactUpsertBulk) ClearValue() *EntityFactUpsertBulk {
	return u.Update(func(s *EntityFactUpsert) {
		s.ClearValue()
	})
}

// SetValueDate sets the "value_date" field.
func (u *EntityFactUpsertBulk) SetValueDate(v time.Time) *EntityFactUpsertBulk {
	return u.Update(func(s *EntityFactUpsert) {
		s.SetValueDate(v)
	})
}

// UpdateValueDate sets the "value_date" field to the value that was provided on create.
func (u *EntityFactUpsertBulk) UpdateValueDate() *EntityFactUpsertBulk {
	return u.Update(func(s *EntityFactUpsert) {
		s.UpdateValueDate()
	})
}

// ClearValueDate clears the value of the "value_date" field.
func (u *EntityFactUpsertBulk) ClearValueDate() *EntityFactUpsertBulk {
	return u.Update(func(s *EntityFactUpsert) {
		s.ClearValueDate()
	})
}

// SetValueJSON sets the "value_json" field.
func (u *EntityFactUpsertBulk) SetValueJSON(v map[string]interface{}) *EntityFactUpsertBulk {
	return u.Update(func(s *EntityFactUpsert) {
		s.SetValueJSON(v)
	})
}

// UpdateValueJSON sets the "value_json" field to the value that was provided on create.
func (u *EntityFactUpsertBulk) UpdateValueJSON() *EntityFactUpsertBulk {
	return u.Update(func(s *EntityFactUpsert) {
		s.UpdateValueJSON()
	})
}

// ClearValueJSON clears the value of the "value_json" field.
func (u *EntityFactUpsertBulk) ClearValueJSON() *EntityFactUpsertBulk {
	return u.Update(func(s *EntityFactUpsert) {
		s.ClearValueJSON()
	})
}

// SetSource sets the "source" field.
func (u *EntityFactUpsertBulk) SetSource(v entityfact.Source) *EntityFactUpsertBulk {
	return u.Update(func(s *EntityFactUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *EntityFactUpsertBulk) UpdateSource() *EntityFactUpsertBulk {
	return u.Update(func(s *EntityFactUpsert) {
		s.UpdateSource()
	})
}

// SetConfidence sets the "confidence" field.
func (u *EntityFactUpsertBulk) SetConfidence(v float64) *EntityFactUpsertBulk {
	return u.Update(func(s *EntityFactUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *EntityFactUpsertBulk) AddConfidence(v float64) *EntityFactUpsertBulk {
	return u.Update(func(s *EntityFactUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *EntityFactUpsertBulk) UpdateConfidence() *EntityFactUpsertBulk {
	return u.Update(func(s *EntityFactUpsert) {
		s.UpdateConfidence()
	})
}

// SetSourceInteractionID sets the "source_interaction_id" field.
func (u *EntityFactUpsertBulk) SetSourceInteractionID(v string) *EntityFactUpsertBulk {
	return u.Update(func(s *EntityFactUpsert) {
		s.SetSourceInteractionID(v)
	})
}

// UpdateSourceInteractionID sets the "source_interaction_id" field to the value that was provided on create.
func (u *EntityFactUpsertBulk) UpdateSourceInteractionID() *EntityFactUpsertBulk {
	return u.Update(func(s *EntityFactUpsert) {
		s.UpdateSourceInteractionID()
	})
}

// ClearSourceInteractionID clears the value of the "source_interaction_id" field.
func (u *EntityFactUpsertBulk) ClearSourceInteractionID() *EntityFactUpsertBulk {
	return u.Update(func(s *EntityFactUpsert) {
		s.ClearSourceInteractionID()
	})
}

// SetSourceMessageID sets the "source_message_id" field.
func (u *EntityFactUpsertBulk) SetSourceMessageID(v string) *EntityFactUpsertBulk {
	return u.Update(func(s *EntityFactUpsert) {
		s.SetSourceMessageID(v)
	})
}

// UpdateSourceMessageID sets the "source_message_id" field to the value that was provided on create.
func (u *EntityFactUpsertBulk) UpdateSourceMessageID() *EntityFactUpsertBulk {
	return u.Update(func(s *EntityFactUpsert) {
		s.UpdateSourceMessageID()
	})
}

// ClearSourceMessageID clears the value of the "source_message_id" field.
func (u *EntityFactUpsertBulk) ClearSourceMessageID() *EntityFactUpsertBulk {
	return u.Update(func(s *EntityFactUpsert) {
		s.ClearSourceMessageID()
	})
}

// SetValidFrom sets the "valid_from" field.
func (u *EntityFactUpsertBulk) SetValidFrom(v time.Time) *EntityFactUpsertBulk {
	return u.Update(func(s *EntityFactUpsert) {
		s.SetValidFrom(v)
	})
}

// UpdateValidFrom sets the "valid_from" field to the value that was provided on create.
func (u *EntityFactUpsertBulk) UpdateValidFrom() *EntityFactUpsertBulk {
	return u.Update(func(s *EntityFactUpsert) {
		s.UpdateValidFrom()
	})
}

// ClearValidFrom clears the value of the "valid_from" field.
func (u *EntityFactUpsertBulk) ClearValidFrom() *EntityFactUpsertBulk {
	return u.Update(func(s *EntityFactUpsert) {
		s.ClearValidFrom()
	})
}

// SetValidUntil sets the "valid_until" field.
func (u *EntityFactUpsertBulk) SetValidUntil(v time.Time) *EntityFactUpsertBulk {
	return u.Update(func(s *EntityFactUpsert) {
		s.SetValidUntil(v)
	})
}

// UpdateValidUntil sets the "valid_until" field to the value that was provided on create.
func (u *EntityFactUpsertBulk) UpdateValidUntil() *EntityFactUpsertBulk {
	return u.Update(func(s *EntityFactUpsert) {
		s.UpdateValidUntil()
	})
}

// ClearValidUntil clears the value of the "valid_until" field.
func (u *EntityFactUpsertBulk) ClearValidUntil() *EntityFactUpsertBulk {
	return u.Update(func(s *EntityFactUpsert) {
		s.ClearValidUntil()
	})
}

// SetStatus sets the "status" field.
func (u *EntityFactUpsertBulk) SetStatus(v entityfact.Status) *EntityFactUpsertBulk {
	return u.Update(func(s *EntityFactUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *EntityFactUpsertBulk) UpdateStatus() *EntityFactUpsertBulk {
	return u.Update(func(s *EntityFactUpsert) {
		s.UpdateStatus()
	})
}

// SetRank sets the "rank" field.
func (u *EntityFactUpsertBulk) SetRank(v entityfact.Rank) *EntityFactUpsertBulk {
	return u.Update(func(s *EntityFactUpsert) {
		s.SetRank(v)
	})
}

// UpdateRank sets the "rank" field to the value that was provided on create.
func (u *EntityFactUpsertBulk) UpdateRank() *EntityFactUpsertBulk {
	return u.Update(func(s *EntityFactUpsert) {
		s.UpdateRank()
	})
}

// SetSupersededBy sets the "superseded_by" field.
func (u *EntityFactUpsertBulk) SetSupersededBy(v string) *EntityFactUpsertBulk {
	return u.Update(func(s *EntityFactUpsert) {
		s.SetSupersededBy(v)
	})
}

// UpdateSupersededBy sets the "superseded_by" field to the value that was provided on create.
func (u *EntityFactUpsertBulk) UpdateSupersededBy() *EntityFactUpsertBulk {
	return u.Update(func(s *EntityFactUpsert) {
		s.UpdateSupersededBy()
	})
}

// ClearSupersededBy clears the value of the "superseded_by" field.
func (u *EntityFactUpsertBulk) ClearSupersededBy() *EntityFactUpsertBulk {
	return u.Update(func(s *EntityFactUpsert) {
		s.ClearSupersededBy()
	})
}

// SetNeedsReview sets the "needs_review" field.
func (u *EntityFactUpsertBulk) SetNeedsReview(v bool) *EntityFactUpsertBulk {
	return u.Update(func(s *EntityFactUpsert) {
		s.SetNeedsReview(v)
	})
}

// UpdateNeedsReview sets the "needs_review" field to the value that was provided on create.
func (u *EntityFactUpsertBulk) UpdateNeedsReview() *EntityFactUpsertBulk {
	return u.Update(func(s *EntityFactUpsert) {
		s.UpdateNeedsReview()
	})
}

// SetReviewReason sets the "review_reason" field.
func (u *EntityFactUpsertBulk) SetReviewReason(v string) *EntityFactUpsertBulk {
	return u.Update(func(s *EntityFactUpsert) {
		s.SetReviewReason(v)
	})
}

// UpdateReviewReason sets the "review_reason" field to the value that was provided on create.
func (u *EntityFactUpsertBulk) UpdateReviewReason() *EntityFactUpsertBulk {
	return u.Update(func(s *EntityFactUpsert) {
		s.UpdateReviewReason()
	})
}

// ClearReviewReason clears the value of the "review_reason" field.
func (u *EntityFactUpsertBulk) ClearReviewReason() *EntityFactUpsertBulk {
	return u.Update(func(s *EntityFactUpsert) {
		s.ClearReviewReason()
	})
}

// SetConfirmationCount sets the "confirmation_count" field.
func (u *EntityFactUpsertBulk) SetConfirmationCount(v int) *EntityFactUpsertBulk {
	return u.Update(func(s *EntityFactUpsert) {
		s.SetConfirmationCount(v)
	})
}

// AddConfirmationCount adds v to the "confirmation_count" field.
func (u *EntityFactUpsertBulk) AddConfirmationCount(v int) *EntityFactUpsertBulk {
	return u.Update(func(s *EntityFactUpsert) {
		s.AddConfirmationCount(v)
	})
}

// UpdateConfirmationCount sets the "confirmation_count" field to the value that was provided on create.
func (u *EntityFactUpsertBulk) UpdateConfirmationCount() *EntityFactUpsertBulk {
	return u.Update(func(s *EntityFactUpsert) {
		s.UpdateConfirmationCount()
	})
}

// SetMetadata sets the "metadata" field.
func (u *EntityFactUpsertBulk) SetMetadata(v map[string]interface{}) *EntityFactUpsertBulk {
	return u.Update(func(s *EntityFactUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *EntityFactUpsertBulk) UpdateMetadata() *EntityFactUpsertBulk {
	return u.Update(func(s *EntityFactUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *EntityFactUpsertBulk) ClearMetadata() *EntityFactUpsertBulk {
	return u.Update(func(s *EntityFactUpsert) {
		s.ClearMetadata()
	})
}

// SetEmbedding sets the "embedding" field.
func (u *EntityFactUpsertBulk) SetEmbedding(v pgvector.Vector) *EntityFactUpsertBulk {
	return u.Update(func(s *EntityFactUpsert) {
		s.SetEmbedding(v)
	})
}

// UpdateEmbedding sets the "embedding" field to the value that was provided on create.
func (u *EntityFactUpsertBulk) UpdateEmbedding() *EntityFactUpsertBulk {
	return u.Update(func(s *EntityFactUpsert) {
		s.UpdateEmbedding()
	})
}

// ClearEmbedding clears the value of the "embedding" field.
func (u *EntityFactUpsertBulk) ClearEmbedding() *EntityFactUpsertBulk {
	return u.Update(func(s *EntityFactUpsert) {
		s.ClearEmbedding()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EntityFactUpsertBulk) SetUpdatedAt(v time.Time) *EntityFactUpsertBulk {
	return u.Update(func(s *EntityFactUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EntityFactUpsertBulk) UpdateUpdatedAt() *EntityFactUpsertBulk {
	return u.Update(func(s *EntityFactUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *EntityFactUpsertBulk) SetDeletedAt(v time.Time) *EntityFactUpsertBulk {
	return u.Update(func(s *EntityFactUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *EntityFactUpsertBulk) UpdateDeletedAt() *EntityFactUpsertBulk {
	return u.Update(func(s *EntityFactUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *EntityFactUpsertBulk) ClearDeletedAt() *EntityFactUpsertBulk {
	return u.Update(func(s *EntityFactUpsert) {
		s.ClearDeletedAt()
	})
}

// Exec executes the query.
func (u *EntityFactUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EntityFactCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EntityFactCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EntityFactUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
