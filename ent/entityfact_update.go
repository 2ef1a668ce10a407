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
	"github.com/memograph/memograph/ent/entity"
	"github.com/memograph/memograph/ent/entityfact"
	"github.com/memograph/memograph/ent/predicate"
	pgvector "github.com/pgvector/pgvector-go"
)

// EntityFactUpdate is the builder for updating EntityFact entities.
type EntityFactUpdate struct {
	config
	hooks    []Hook
	mutation *EntityFactMutation
}

// Where appends a list predicates to the EntityFactUpdate builder.
func (_u *EntityFactUpdate) Where(ps ...predicate.EntityFact) *EntityFactUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEntityID sets the "entity_id" field.
func (_u *EntityFactUpdate) SetEntityID(v string) *EntityFactUpdate {
	_u.mutation.SetEntityID(v)
	return _u
}

// SetNillableEntityID sets the "entity_id" field if the given value is not nil.
func (_u *EntityFactUpdate) SetNillableEntityID(v *string) *EntityFactUpdate {
	if v != nil {
		_u.SetEntityID(*v)
	}
	return _u
}

// SetFactType sets the "fact_type" field.
func (_u *EntityFactUpdate) SetFactType(v string) *EntityFactUpdate {
	_u.mutation.SetFactType(v)
	return _u
}

// SetNillableFactType sets the "fact_type" field if the given value is not nil.
func (_u *EntityFactUpdate) SetNillableFactType(v *string) *EntityFactUpdate {
	if v != nil {
		_u.SetFactType(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *EntityFactUpdate) SetCategory(v string) *EntityFactUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *EntityFactUpdate) SetNillableCategory(v *string) *EntityFactUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *EntityFactUpdate) ClearCategory() *EntityFactUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// SetValue sets the "value" field.
func (_u *EntityFactUpdate) SetValue(v string) *EntityFactUpdate {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *EntityFactUpdate) SetNillableValue(v *string) *EntityFactUpdate {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// ClearValue clears the value of the "value" field.
func (_u *EntityFactUpdate) ClearValue() *EntityFactUpdate {
	_u.mutation.ClearValue()
	return _u
}

// SetValueDate sets the "value_date" field.
func (_u *EntityFactUpdate) SetValueDate(v time.Time) *EntityFactUpdate {
	_u.mutation.SetValueDate(v)
	return _u
}

// SetNillableValueDate sets the "value_date" field if the given value is not nil.
func (_u *EntityFactUpdate) SetNillableValueDate(v *time.Time) *EntityFactUpdate {
	if v != nil {
		_u.SetValueDate(*v)
	}
	return _u
}

// ClearValueDate clears the value of the "value_date" field.
func (_u *EntityFactUpdate) ClearValueDate() *EntityFactUpdate {
	_u.mutation.ClearValueDate()
	return _u
}

// SetValueJSON sets the "value_json" field.
func (_u *EntityFactUpdate) SetValueJSON(v map[string]interface{}) *EntityFactUpdate {
	_u.mutation.SetValueJSON(v)
	return _u
}

// ClearValueJSON clears the value of the "value_json" field.
func (_u *EntityFactUpdate) ClearValueJSON() *EntityFactUpdate {
	_u.mutation.ClearValueJSON()
	return _u
}

// SetSource sets the "source" field.
func (_u *EntityFactUpdate) SetSource(v entityfact.Source) *EntityFactUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *EntityFactUpdate) SetNillableSource(v *entityfact.Source) *EntityFactUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *EntityFactUpdate) SetConfidence(v float64) *EntityFactUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *EntityFactUpdate) SetNillableConfidence(v *float64) *EntityFactUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *EntityFactUpdate) AddConfidence(v float64) *EntityFactUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetSourceInteractionID sets the "source_interaction_id" field.
func (_u *EntityFactUpdate) SetSourceInteractionID(v string) *EntityFactUpdate {
	_u.mutation.SetSourceInteractionID(v)
	return _u
}

// SetNillableSourceInteractionID sets the "source_interaction_id" field if the given value is not nil.
func (_u *EntityFactUpdate) SetNillableSourceInteractionID(v *string) *EntityFactUpdate {
	if v != nil {
		_u.SetSourceInteractionID(*v)
	}
	return _u
}

// ClearSourceInteractionID clears the value of the "source_interaction_id" field.
func (_u *EntityFactUpdate) ClearSourceInteractionID() *EntityFactUpdate {
	_u.mutation.ClearSourceInteractionID()
	return _u
}

// SetSourceMessageID sets the "source_message_id" field.
func (_u *EntityFactUpdate) SetSourceMessageID(v string) *EntityFactUpdate {
	_u.mutation.SetSourceMessageID(v)
	return _u
}

// SetNillableSourceMessageID sets the "source_message_id" field if the given value is not nil.
func (_u *EntityFactUpdate) SetNillableSourceMessageID(v *string) *EntityFactUpdate {
	if v != nil {
		_u.SetSourceMessageID(*v)
	}
	return _u
}

// ClearSourceMessageID clears the value of the "source_message_id" field.
func (_u *EntityFactUpdate) ClearSourceMessageID() *EntityFactUpdate {
	_u.mutation.ClearSourceMessageID()
	return _u
}

// SetValidFrom sets the "valid_from" field.
func (_u *EntityFactUpdate) SetValidFrom(v time.Time) *EntityFactUpdate {
	_u.mutation.SetValidFrom(v)
	return _u
}

// SetNillableValidFrom sets the "valid_from" field if the given value is not nil.
func (_u *EntityFactUpdate) SetNillableValidFrom(v *time.Time) *EntityFactUpdate {
	if v != nil {
		_u.SetValidFrom(*v)
	}
	return _u
}

// ClearValidFrom clears the value of the "valid_from" field.
func (_u *EntityFactUpdate) ClearValidFrom() *EntityFactUpdate {
	_u.mutation.ClearValidFrom()
	return _u
}

// SetValidUntil sets the "valid_until" field.
func (_u *EntityFactUpdate) SetValidUntil(v time.Time) *EntityFactUpdate {
	_u.mutation.SetValidUntil(v)
	return _u
}

// SetNillableValidUntil sets the "valid_until" field if the given value is not nil.
func (_u *EntityFactUpdate) SetNillableValidUntil(v *time.Time) *EntityFactUpdate {
	if v != nil {
		_u.SetValidUntil(*v)
	}
	return _u
}

// ClearValidUntil clears the value of the "valid_until" field.
func (_u *EntityFactUpdate) ClearValidUntil() *EntityFactUpdate {
	_u.mutation.ClearValidUntil()
	return _u
}

// SetStatus sets the "status" field.
func (_u *EntityFactUpdate) SetStatus(v entityfact.Status) *EntityFactUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EntityFactUpdate) SetNillableStatus(v *entityfact.Status) *EntityFactUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRank sets the "rank" field.
func (_u *EntityFactUpdate) SetRank(v entityfact.Rank) *EntityFactUpdate {
	_u.mutation.SetRank(v)
	return _u
}

// SetNillableRank sets the "rank" field if the given value is not nil.
func (_u *EntityFactUpdate) SetNillableRank(v *entityfact.Rank) *EntityFactUpdate {
	if v != nil {
		_u.SetRank(*v)
	}
	return _u
}

// SetSupersededBy sets the "superseded_by" field.
func (_u *EntityFactUpdate) SetSupersededBy(v string) *EntityFactUpdate {
	_u.mutation.SetSupersededBy(v)
	return _u
}

// SetNillableSupersededBy sets the "superseded_by" field if the given value is not nil.
func (_u *EntityFactUpdate) SetNillableSupersededBy(v *string) *EntityFactUpdate {
	if v != nil {
		_u.SetSupersededBy(*v)
	}
	return _u
}

// ClearSupersededBy clears the value of the "superseded_by" field.
func (_u *EntityFactUpdate) ClearSupersededBy() *EntityFactUpdate {
	_u.mutation.ClearSupersededBy()
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *EntityFactUpdate) SetNeedsReview(v bool) *EntityFactUpdate {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *EntityFactUpdate) SetNillableNeedsReview(v *bool) *EntityFactUpdate {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetReviewReason sets the "review_reason" field.
func (_u *EntityFactUpdate) SetReviewReason(v string) *EntityFactUpdate {
	_u.mutation.SetReviewReason(v)
	return _u
}

// SetNillableReviewReason sets the "review_reason" field if the given value is not nil.
func (_u *EntityFactUpdate) SetNillableReviewReason(v *string) *EntityFactUpdate {
	if v != nil {
		_u.SetReviewReason(*v)
	}
	return _u
}

// ClearReviewReason clears the value of the "review_reason" field.
func (_u *EntityFactUpdate) ClearReviewReason() *EntityFactUpdate {
	_u.mutation.ClearReviewReason()
	return _u
}

// SetConfirmationCount sets the "confirmation_count" field.
func (_u *EntityFactUpdate) SetConfirmationCount(v int) *EntityFactUpdate {
	_u.mutation.ResetConfirmationCount()
	_u.mutation.SetConfirmationCount(v)
	return _u
}

// SetNillableConfirmationCount sets the "confirmation_count" field if the given value is not nil.
func (_u *EntityFactUpdate) SetNillableConfirmationCount(v *int) *EntityFactUpdate {
	if v != nil {
		_u.SetConfirmationCount(*v)
	}
	return _u
}

// AddConfirmationCount adds value to the "confirmation_count" field.
func (_u *EntityFactUpdate) AddConfirmationCount(v int) *EntityFactUpdate {
	_u.mutation.AddConfirmationCount(v)
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *EntityFactUpdate) SetMetadata(v map[string]interface{}) *EntityFactUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *EntityFactUpdate) ClearMetadata() *EntityFactUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *EntityFactUpdate) SetEmbedding(v pgvector.Vector) *EntityFactUpdate {
	_u.mutation.SetEmbedding(v)
	return _u
}

// SetNillableEmbedding sets the "embedding" field if the given value is not nil.
func (_u *EntityFactUpdate) SetNillableEmbedding(v *pgvector.Vector) *EntityFactUpdate {
	if v != nil {
		_u.SetEmbedding(*v)
	}
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *EntityFactUpdate) ClearEmbedding() *EntityFactUpdate {
	_u.mutation.ClearEmbedding()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EntityFactUpdate) SetUpdatedAt(v time.Time) *EntityFactUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *EntityFactUpdate) SetDeletedAt(v time.Time) *EntityFactUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *EntityFactUpdate) SetNillableDeletedAt(v *time.Time) *EntityFactUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *EntityFactUpdate) ClearDeletedAt() *EntityFactUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetEntity sets the "entity" edge to the Entity entity.
func (_u *EntityFactUpdate) SetEntity(v *Entity) *EntityFactUpdate {
	return _u.SetEntityID(v.ID)
}

// Mutation returns the EntityFactMutation object of the builder.
func (_u *EntityFactUpdate) Mutation() *EntityFactMutation {
	return _u.mutation
}

// ClearEntity clears the "entity" edge to the Entity entity.
func (_u *EntityFactUpdate) ClearEntity() *EntityFactUpdate {
	_u.mutation.ClearEntity()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EntityFactUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EntityFactUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EntityFactUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EntityFactUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EntityFactUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := entityfact.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EntityFactUpdate) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := entityfact.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "EntityFact.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := entityfact.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "EntityFact.confidence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := entityfact.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "EntityFact.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rank(); ok {
		if err := entityfact.RankValidator(v); err != nil {
			return &ValidationError{Name: "rank", err: fmt.Errorf(`ent: validator failed for field "EntityFact.rank": %w`, err)}
		}
	}
	if _u.mutation.EntityCleared() && len(_u.mutation.EntityIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EntityFact.entity"`)
	}
	return nil
}

func (_u *EntityFactUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(entityfact.Table, entityfact.Columns, sqlgraph.NewFieldSpec(entityfact.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FactType(); ok {
		_spec.SetField(entityfact.FieldFactType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(entityfact.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(entityfact.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(entityfact.FieldValue, field.TypeString, value)
	}
	if _u.mutation.ValueCleared() {
		_spec.ClearField(entityfact.FieldValue, field.TypeString)
	}
	if value, ok := _u.mutation.ValueDate(); ok {
		_spec.SetField(entityfact.FieldValueDate, field.TypeTime, value)
	}
	if _u.mutation.ValueDateCleared() {
		_spec.ClearField(entityfact.FieldValueDate, field.TypeTime)
	}
	if value, ok := _u.mutation.ValueJSON(); ok {
		_spec.SetField(entityfact.FieldValueJSON, field.TypeJSON, value)
	}
	if _u.mutation.ValueJSONCleared() {
		_spec.ClearField(entityfact.FieldValueJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(entityfact.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(entityfact.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(entityfact.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SourceInteractionID(); ok {
		_spec.SetField(entityfact.FieldSourceInteractionID, field.TypeString, value)
	}
	if _u.mutation.SourceInteractionIDCleared() {
		_spec.ClearField(entityfact.FieldSourceInteractionID, field.TypeString)
	}
	if value, ok := _u.mutation.SourceMessageID(); ok {
		_spec.SetField(entityfact.FieldSourceMessageID, field.TypeString, value)
	}
	if _u.mutation.SourceMessageIDCleared() {
		_spec.ClearField(entityfact.FieldSourceMessageID, field.TypeString)
	}
	if value, ok := _u.mutation.ValidFrom(); ok {
		_spec.SetField(entityfact.FieldValidFrom, field.TypeTime, value)
	}
	if _u.mutation.ValidFromCleared() {
		_spec.ClearField(entityfact.FieldValidFrom, field.TypeTime)
	}
	if value, ok := _u.mutation.ValidUntil(); ok {
		_spec.SetField(entityfact.FieldValidUntil, field.TypeTime, value)
	}
	if _u.mutation.ValidUntilCleared() {
		_spec.ClearField(entityfact.FieldValidUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(entityfact.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Rank(); ok {
		_spec.SetField(entityfact.FieldRank, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SupersededBy(); ok {
		_spec.SetField(entityfact.FieldSupersededBy, field.TypeString, value)
	}
	if _u.mutation.SupersededByCleared() {
		_spec.ClearField(entityfact.FieldSupersededBy, field.TypeString)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(entityfact.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReviewReason(); ok {
		_spec.SetField(entityfact.FieldReviewReason, field.TypeString, value)
	}
	if _u.mutation.ReviewReasonCleared() {
		_spec.ClearField(entityfact.FieldReviewReason, field.TypeString)
	}
	if value, ok := _u.mutation.ConfirmationCount(); ok {
		_spec.SetField(entityfact.FieldConfirmationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConfirmationCount(); ok {
		_spec.AddField(entityfact.FieldConfirmationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(entityfact.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(entityfact.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(entityfact.FieldEmbedding, field.TypeOther, value)
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(entityfact.FieldEmbedding, field.TypeOther)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(entityfact.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(entityfact.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(entityfact.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.EntityCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EntityIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entityfact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EntityFactUpdateOne is the builder for updating a single EntityFact entity.
type EntityFactUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EntityFactMutation
}

// SetEntityID sets the "entity_id" field.
func (_u *EntityFactUpdateOne) SetEntityID(v string) *EntityFactUpdateOne {
	_u.mutation.SetEntityID(v)
	return _u
}

// SetNillableEntityID sets the "entity_id" field if the given value is not nil.
func (_u *EntityFactUpdateOne) SetNillableEntityID(v *string) *EntityFactUpdateOne {
	if v != nil {
		_u.SetEntityID(*v)
	}
	return _u
}

// SetFactType sets the "fact_type" field.
func (_u *EntityFactUpdateOne) SetFactType(v string) *EntityFactUpdateOne {
	_u.mutation.SetFactType(v)
	return _u
}

// SetNillableFactType sets the "fact_type" field if the given value is not nil.
func (_u *EntityFactUpdateOne) SetNillableFactType(v *string) *EntityFactUpdateOne {
	if v != nil {
		_u.SetFactType(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *EntityFactUpdateOne) SetCategory(v string) *EntityFactUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *EntityFactUpdateOne) SetNillableCategory(v *string) *EntityFactUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *EntityFactUpdateOne) ClearCategory() *EntityFactUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// SetValue sets the "value" field.
func (_u *EntityFactUpdateOne) SetValue(v string) *EntityFactUpdateOne {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *EntityFactUpdateOne) SetNillableValue(v *string) *EntityFactUpdateOne {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// ClearValue clears the value of the "value" field.
func (_u *EntityFactUpdateOne) ClearValue() *EntityFactUpdateOne {
	_u.mutation.ClearValue()
	return _u
}

// SetValueDate sets the "value_date" field.
func (_u *EntityFactUpdateOne) SetValueDate(v time.Time) *EntityFactUpdateOne {
	_u.mutation.SetValueDate(v)
	return _u
}

// SetNillableValueDate sets the "value_date" field if the given value is not nil.
func (_u *EntityFactUpdateOne) SetNillableValueDate(v *time.Time) *EntityFactUpdateOne {
	if v != nil {
		_u.SetValueDate(*v)
	}
	return _u
}

// ClearValueDate clears the value of the "value_date" field.
func (_u *EntityFactUpdateOne) ClearValueDate() *EntityFactUpdateOne {
	_u.mutation.ClearValueDate()
	return _u
}

// SetValueJSON sets the "value_json" field.
func (_u *EntityFactUpdateOne) SetValueJSON(v map[string]interface{}) *EntityFactUpdateOne {
	_u.mutation.SetValueJSON(v)
	return _u
}

// ClearValueJSON clears the value of the "value_json" field.
func (_u *EntityFactUpdateOne) ClearValueJSON() *EntityFactUpdateOne {
	_u.mutation.ClearValueJSON()
	return _u
}

// SetSource sets the "source" field.
func (_u *EntityFactUpdateOne) SetSource(v entityfact.Source) *EntityFactUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *EntityFactUpdateOne) SetNillableSource(v *entityfact.Source) *EntityFactUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *EntityFactUpdateOne) SetConfidence(v float64) *EntityFactUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *EntityFactUpdateOne) SetNillableConfidence(v *float64) *EntityFactUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *EntityFactUpdateOne) AddConfidence(v float64) *EntityFactUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetSourceInteractionID sets the "source_interaction_id" field.
func (_u *EntityFactUpdateOne) SetSourceInteractionID(v string) *EntityFactUpdateOne {
	_u.mutation.SetSourceInteractionID(v)
	return _u
}

// SetNillableSourceInteractionID sets the "source_interaction_id" field if the given value is not nil.
func (_u *EntityFactUpdateOne) SetNillableSourceInteractionID(v *string) *EntityFactUpdateOne {
	if v != nil {
		_u.SetSourceInteractionID(*v)
	}
	return _u
}

// ClearSourceInteractionID clears the value of the "source_interaction_id" field.
func (_u *EntityFactUpdateOne) ClearSourceInteractionID() *EntityFactUpdateOne {
	_u.mutation.ClearSourceInteractionID()
	return _u
}

// SetSourceMessageID sets the "source_message_id" field.
func (_u *EntityFactUpdateOne) SetSourceMessageID(v string) *EntityFactUpdateOne {
	_u.mutation.SetSourceMessageID(v)
	return _u
}

// SetNillableSourceMessageID sets the "source_message_id" field if the given value is not nil.
func (_u *EntityFactUpdateOne) SetNillableSourceMessageID(v *string) *EntityFactUpdateOne {
	if v != nil {
		_u.SetSourceMessageID(*v)
	}
	return _u
}

// ClearSourceMessageID clears the value of the "source_message_id" field.
func (_u *EntityFactUpdateOne) ClearSourceMessageID() *EntityFactUpdateOne {
	_u.mutation.ClearSourceMessageID()
	return _u
}

// SetValidFrom sets the "valid_from" field.
func (_u *EntityFactUpdateOne) SetValidFrom(v time.Time) *EntityFactUpdateOne {
	_u.mutation.SetValidFrom(v)
	return _u
}

// SetNillableValidFrom sets the "valid_from" field if the given value is not nil.
func (_u *EntityFactUpdateOne) SetNillableValidFrom(v *time.Time) *EntityFactUpdateOne {
	if v != nil {
		_u.SetValidFrom(*v)
	}
	return _u
}

// ClearValidFrom clears the value of the "valid_from" field.
func (_u *EntityFactUpdateOne) ClearValidFrom() *EntityFactUpdateOne {
	_u.mutation.ClearValidFrom()
	return _u
}

// SetValidUntil sets the "valid_until" field.
func (_u *EntityFactUpdateOne) SetValidUntil(v time.Time) *EntityFactUpdateOne {
	_u.mutation.SetValidUntil(v)
	return _u
}

// SetNillableValidUntil sets the "valid_until" field if the given value is not nil.
func (_u *EntityFactUpdateOne) SetNillableValidUntil(v *time.Time) *EntityFactUpdateOne {
	if v != nil {
		_u.SetValidUntil(*v)
	}
	return _u
}

// ClearValidUntil clears the value of the "valid_until" field.
func (_u *EntityFactUpdateOne) ClearValidUntil() *EntityFactUpdateOne {
	_u.mutation.ClearValidUntil()
	return _u
}

// SetStatus sets the "status" field.
func (_u *EntityFactUpdateOne) SetStatus(v entityfact.Status) *EntityFactUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EntityFactUpdateOne) SetNillableStatus(v *entityfact.Status) *EntityFactUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRank sets the "rank" field.
func (_u *EntityFactUpdateOne) SetRank(v entityfact.Rank) *EntityFactUpdateOne {
	_u.mutation.SetRank(v)
	return _u
}

// SetNillableRank sets the "rank" field if the given value is not nil.
func (_u *EntityFactUpdateOne) SetNillableRank(v *entityfact.Rank) *EntityFactUpdateOne {
	if v != nil {
		_u.SetRank(*v)
	}
	return _u
}

// SetSupersededBy sets the "superseded_by" field.
func (_u *EntityFactUpdateOne) SetSupersededBy(v string) *EntityFactUpdateOne {
	_u.mutation.SetSupersededBy(v)
	return _u
}

// SetNillableSupersededBy sets the "superseded_by" field if the given value is not nil.
func (_u *EntityFactUpdateOne) SetNillableSupersededBy(v *string) *EntityFactUpdateOne {
	if v != nil {
		_u.SetSupersededBy(*v)
	}
	return _u
}

// ClearSupersededBy clears the value of the "superseded_by" field.
func (_u *EntityFactUpdateOne) ClearSupersededBy() *EntityFactUpdateOne {
	_u.mutation.ClearSupersededBy()
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *EntityFactUpdateOne) SetNeedsReview(v bool) *EntityFactUpdateOne {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *EntityFactUpdateOne) SetNillableNeedsReview(v *bool) *EntityFactUpdateOne {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetReviewReason sets the "review_reason" field.
func (_u *EntityFactUpdateOne) SetReviewReason(v string) *EntityFactUpdateOne {
	_u.mutation.SetReviewReason(v)
	return _u
}

// SetNillableReviewReason sets the "review_reason" field if the given value is not nil.
func (_u *EntityFactUpdateOne) SetNillableReviewReason(v *string) *EntityFactUpdateOne {
	if v != nil {
		_u.SetReviewReason(*v)
	}
	return _u
}

// ClearReviewReason clears the value of the "review_reason" field.
func (_u *EntityFactUpdateOne) ClearReviewReason() *EntityFactUpdateOne {
	_u.mutation.ClearReviewReason()
	return _u
}

// SetConfirmationCount sets the "confirmation_count" field.
func (_u *EntityFactUpdateOne) SetConfirmationCount(v int) *EntityFactUpdateOne {
	_u.mutation.ResetConfirmationCount()
	_u.mutation.SetConfirmationCount(v)
	return _u
}

// SetNillableConfirmationCount sets the "confirmation_count" field if the given value is not nil.
func (_u *EntityFactUpdateOne) SetNillableConfirmationCount(v *int) *EntityFactUpdateOne {
	if v != nil {
		_u.SetConfirmationCount(*v)
	}
	return _u
}

// AddConfirmationCount adds value to the "confirmation_count" field.
func (_u *EntityFactUpdateOne) AddConfirmationCount(v int) *EntityFactUpdateOne {
	_u.mutation.AddConfirmationCount(v)
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *EntityFactUpdateOne) SetMetadata(v map[string]interface{}) *EntityFactUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *EntityFactUpdateOne) ClearMetadata() *EntityFactUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *EntityFactUpdateOne) SetEmbedding(v pgvector.Vector) *EntityFactUpdateOne {
	_u.mutation.SetEmbedding(v)
	return _u
}

// SetNillableEmbedding sets the "embedding" field if the given value is not nil.
func (_u *EntityFactUpdateOne) SetNillableEmbedding(v *pgvector.Vector) *EntityFactUpdateOne {
	if v != nil {
		_u.SetEmbedding(*v)
	}
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *EntityFactUpdateOne) ClearEmbedding() *EntityFactUpdateOne {
	_u.mutation.ClearEmbedding()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EntityFactUpdateOne) SetUpdatedAt(v time.Time) *EntityFactUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *EntityFactUpdateOne) SetDeletedAt(v time.Time) *EntityFactUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *EntityFactUpdateOne) SetNillableDeletedAt(v *time.Time) *EntityFactUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *EntityFactUpdateOne) ClearDeletedAt() *EntityFactUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetEntity sets the "entity" edge to the Entity entity.
func (_u *EntityFactUpdateOne) SetEntity(v *Entity) *EntityFactUpdateOne {
	return _u.SetEntityID(v.ID)
}

// Mutation returns the EntityFactMutation object of the builder.
func (_u *EntityFactUpdateOne) Mutation() *EntityFactMutation {
	return _u.mutation
}

// ClearEntity clears the "entity" edge to the Entity entity.
func (_u *EntityFactUpdateOne) ClearEntity() *EntityFactUpdateOne {
	_u.mutation.ClearEntity()
	return _u
}

// Where appends a list predicates to the EntityFactUpdate builder.
func (_u *EntityFactUpdateOne) Where(ps ...predicate.EntityFact) *EntityFactUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EntityFactUpdateOne) Select(field string, fields ...string) *EntityFactUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EntityFact entity.
func (_u *EntityFactUpdateOne) Save(ctx context.Context) (*EntityFact, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EntityFactUpdateOne) SaveX(ctx context.Context) *EntityFact {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EntityFactUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EntityFactUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EntityFactUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := entityfact.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EntityFactUpdateOne) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := entityfact.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "EntityFact.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := entityfact.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "EntityFact.confidence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := entityfact.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "EntityFact.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rank(); ok {
		if err := entityfact.RankValidator(v); err != nil {
			return &ValidationError{Name: "rank", err: fmt.Errorf(`ent: validator failed for field "EntityFact.rank": %w`, err)}
		}
	}
	if _u.mutation.EntityCleared() && len(_u.mutation.EntityIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EntityFact.entity"`)
	}
	return nil
}

func (_u *EntityFactUpdateOne) sqlSave(ctx context.Context) (_node *EntityFact, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(entityfact.Table, entityfact.Columns, sqlgraph.NewFieldSpec(entityfact.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EntityFact.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, entityfact.FieldID)
		for _, f := range fields {
			if !entityfact.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != entityfact.FieldID {
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
	if value, ok := _u.mutation.FactType(); ok {
		_spec.SetField(entityfact.FieldFactType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(entityfact.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(entityfact.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(entityfact.FieldValue, field.TypeString, value)
	}
	if _u.mutation.ValueCleared() {
		_spec.ClearField(entityfact.FieldValue, field.TypeString)
	}
	if value, ok := _u.mutation.ValueDate(); ok {
		_spec.SetField(entityfact.FieldValueDate, field.TypeTime, value)
	}
	if _u.mutation.ValueDateCleared() {
		_spec.ClearField(entityfact.FieldValueDate, field.TypeTime)
	}
	if value, ok := _u.mutation.ValueJSON(); ok {
		_spec.SetField(entityfact.FieldValueJSON, field.TypeJSON, value)
	}
	if _u.mutation.ValueJSONCleared() {
		_spec.ClearField(entityfact.FieldValueJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(entityfact.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(entityfact.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(entityfact.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SourceInteractionID(); ok {
		_spec.SetField(entityfact.FieldSourceInteractionID, field.TypeString, value)
	}
	if _u.mutation.SourceInteractionIDCleared() {
		_spec.ClearField(entityfact.FieldSourceInteractionID, field.TypeString)
	}
	if value, ok := _u.mutation.SourceMessageID(); ok {
		_spec.SetField(entityfact.FieldSourceMessageID, field.TypeString, value)
	}
	if _u.mutation.SourceMessageIDCleared() {
		_spec.ClearField(entityfact.FieldSourceMessageID, field.TypeString)
	}
	if value, ok := _u.mutation.ValidFrom(); ok {
		_spec.SetField(entityfact.FieldValidFrom, field.TypeTime, value)
	}
	if _u.mutation.ValidFromCleared() {
		_spec.ClearField(entityfact.FieldValidFrom, field.TypeTime)
	}
	if value, ok := _u.mutation.ValidUntil(); ok {
		_spec.SetField(entityfact.FieldValidUntil, field.TypeTime, value)
	}
	if _u.mutation.ValidUntilCleared() {
		_spec.ClearField(entityfact.FieldValidUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(entityfact.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Rank(); ok {
		_spec.SetField(entityfact.FieldRank, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SupersededBy(); ok {
		_spec.SetField(entityfact.FieldSupersededBy, field.TypeString, value)
	}
	if _u.mutation.SupersededByCleared() {
		_spec.ClearField(entityfact.FieldSupersededBy, field.TypeString)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(entityfact.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReviewReason(); ok {
		_spec.SetField(entityfact.FieldReviewReason, field.TypeString, value)
	}
	if _u.mutation.ReviewReasonCleared() {
		_spec.ClearField(entityfact.FieldReviewReason, field.TypeString)
	}
	if value, ok := _u.mutation.ConfirmationCount(); ok {
		_spec.SetField(entityfact.FieldConfirmationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConfirmationCount(); ok {
		_spec.AddField(entityfact.FieldConfirmationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(entityfact.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(entityfact.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(entityfact.FieldEmbedding, field.TypeOther, value)
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(entityfact.FieldEmbedding, field.TypeOther)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(entityfact.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(entityfact.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(entityfact.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.EntityCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EntityIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &EntityFact{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entityfact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
