// Code generated by ent, DO NOT EDIT.

package activity

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/memograph/memograph/ent/predicate"
	pgvector "github.com/pgvector/pgvector-go"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Activity {
	return predicate.Activity(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Activity {
	return predicate.Activity(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Activity {
	return predicate.Activity(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Activity {
	return predicate.Activity(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Activity {
	return predicate.Activity(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Activity {
	return predicate.Activity(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Activity {
	return predicate.Activity(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Activity {
	return predicate.Activity(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Activity {
	return predicate.Activity(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Activity {
	return predicate.Activity(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Activity {
	return predicate.Activity(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Activity {
	return predicate.Activity(sql.FieldEQ(FieldName, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v int) predicate.Activity {
	return predicate.Activity(sql.FieldEQ(FieldPriority, v))
}

// Context applies equality check predicate on the "context" field. It's identical to ContextEQ.
func Context(v string) predicate.Activity {
	return predicate.Activity(sql.FieldEQ(FieldContext, v))
}

// ParentID applies equality check predicate on the "parent_id" field. It's identical to ParentIDEQ.
func ParentID(v string) predicate.Activity {
	return predicate.Activity(sql.FieldEQ(FieldParentID, v))
}

// Depth applies equality check predicate on the "depth" field. It's identical to DepthEQ.
func Depth(v int) predicate.Activity {
	return predicate.Activity(sql.FieldEQ(FieldDepth, v))
}

// MaterializedPath applies equality check predicate on the "materialized_path" field. It's identical to MaterializedPathEQ.
func MaterializedPath(v string) predicate.Activity {
	return predicate.Activity(sql.FieldEQ(FieldMaterializedPath, v))
}

// OwnerEntityID applies equality check predicate on the "owner_entity_id" field. It's identical to OwnerEntityIDEQ.
func OwnerEntityID(v string) predicate.Activity {
	return predicate.Activity(sql.FieldEQ(FieldOwnerEntityID, v))
}

// ClientEntityID applies equality check predicate on the "client_entity_id" field. It's identical to ClientEntityIDEQ.
func ClientEntityID(v string) predicate.Activity {
	return predicate.Activity(sql.FieldEQ(FieldClientEntityID, v))
}

// SourceInteractionID applies equality check predicate on the "source_interaction_id" field. It's identical to SourceInteractionIDEQ.
func SourceInteractionID(v string) predicate.Activity {
	return predicate.Activity(sql.FieldEQ(FieldSourceInteractionID, v))
}

// StartsAt applies equality check predicate on the "starts_at" field. It's identical to StartsAtEQ.
func StartsAt(v time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldEQ(FieldStartsAt, v))
}

// DueAt applies equality check predicate on the "due_at" field. It's identical to DueAtEQ.
func DueAt(v time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldEQ(FieldDueAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldEQ(FieldCompletedAt, v))
}

// NeedsReview applies equality check predicate on the "needs_review" field. It's identical to NeedsReviewEQ.
func NeedsReview(v bool) predicate.Activity {
	return predicate.Activity(sql.FieldEQ(FieldNeedsReview, v))
}

// ConfirmationCount applies equality check predicate on the "confirmation_count" field. It's identical to ConfirmationCountEQ.
func ConfirmationCount(v int) predicate.Activity {
	return predicate.Activity(sql.FieldEQ(FieldConfirmationCount, v))
}

// Embedding applies equality check predicate on the "embedding" field. It's identical to EmbeddingEQ.
func Embedding(v pgvector.Vector) predicate.Activity {
	return predicate.Activity(sql.FieldEQ(FieldEmbedding, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldEQ(FieldUpdatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldEQ(FieldDeletedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Activity {
	return predicate.Activity(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Activity {
	return predicate.Activity(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Activity {
	return predicate.Activity(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Activity {
	return predicate.Activity(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Activity {
	return predicate.Activity(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Activity {
	return predicate.Activity(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Activity {
	return predicate.Activity(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Activity {
	return predicate.Activity(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Activity {
	return predicate.Activity(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Activity {
	return predicate.Activity(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Activity {
	return predicate.Activity(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Activity {
	return predicate.Activity(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Activity {
	return predicate.Activity(sql.FieldContainsFold(FieldName, v))
}

// ActivityTypeEQ applies the EQ predicate on the "activity_type" field.
func ActivityTypeEQ(v ActivityType) predicate.Activity {
	return predicate.Activity(sql.FieldEQ(FieldActivityType, v))
}

// ActivityTypeNEQ applies the NEQ predicate on the "activity_type" field.
func ActivityTypeNEQ(v ActivityType) predicate.Activity {
	return predicate.Activity(sql.FieldNEQ(FieldActivityType, v))
}

// ActivityTypeIn applies the In predicate on the "activity_type" field.
func ActivityTypeIn(vs ...ActivityType) predicate.Activity {
	return predicate.Activity(sql.FieldIn(FieldActivityType, vs...))
}

// ActivityTypeNotIn applies the NotIn predicate on the "activity_type" field.
func ActivityTypeNotIn(vs ...ActivityType) predicate.Activity {
	return predicate.Activity(sql.FieldNotIn(FieldActivityType, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Activity {
	return predicate.Activity(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Activity {
	return predicate.Activity(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Activity {
	return predicate.Activity(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Activity {
	return predicate.Activity(sql.FieldNotIn(FieldStatus, vs...))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v int) predicate.Activity {
	return predicate.Activity(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v int) predicate.Activity {
	return predicate.Activity(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...int) predicate.Activity {
	return predicate.Activity(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...int) predicate.Activity {
	return predicate.Activity(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v int) predicate.Activity {
	return predicate.Activity(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v int) predicate.Activity {
	return predicate.Activity(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v int) predicate.Activity {
	return predicate.Activity(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v int) predicate.Activity {
	return predicate.Activity(sql.FieldLTE(FieldPriority, v))
}

// ContextEQ applies the EQ predicate on the "context" field.
func ContextEQ(v string) predicate.Activity {
	return predicate.Activity(sql.FieldEQ(FieldContext, v))
}

// ContextNEQ applies the NEQ predicate on the "context" field.
func ContextNEQ(v string) predicate.Activity {
	return predicate.Activity(sql.FieldNEQ(FieldContext, v))
}

// ContextIn applies the In predicate on the "context" field.
func ContextIn(vs ...string) predicate.Activity {
	return predicate.Activity(sql.FieldIn(FieldContext, vs...))
}

// ContextNotIn applies the NotIn predicate on the "context" field.
func ContextNotIn(vs ...string) predicate.Activity {
	return predicate.Activity(sql.FieldNotIn(FieldContext, vs...))
}

// ContextGT applies the GT predicate on the "context" field.
func ContextGT(v string) predicate.Activity {
	return predicate.Activity(sql.FieldGT(FieldContext, v))
}

// ContextGTE applies the GTE predicate on the "context" field.
func ContextGTE(v string) predicate.Activity {
	return predicate.Activity(sql.FieldGTE(FieldContext, v))
}

// ContextLT applies the LT predicate on the "context" field.
func ContextLT(v string) predicate.Activity {
	return predicate.Activity(sql.FieldLT(FieldContext, v))
}

// ContextLTE applies the LTE predicate on the "context" field.
func ContextLTE(v string) predicate.Activity {
	return predicate.Activity(sql.FieldLTE(FieldContext, v))
}

// ContextContains applies the Contains predicate on the "context" field.
func ContextContains(v string) predicate.Activity {
	return predicate.Activity(sql.FieldContains(FieldContext, v))
}

// ContextHasPrefix applies the HasPrefix predicate on the "context" field.
func ContextHasPrefix(v string) predicate.Activity {
	return predicate.Activity(sql.FieldHasPrefix(FieldContext, v))
}

// ContextHasSuffix applies the HasSuffix predicate on the "context" field.
func ContextHasSuffix(v string) predicate.Activity {
	return predicate.Activity(sql.FieldHasSuffix(FieldContext, v))
}

// ContextIsNil applies the IsNil predicate on the "context" field.
func ContextIsNil() predicate.Activity {
	return predicate.Activity(sql.FieldIsNull(FieldContext))
}

// ContextNotNil applies the NotNil predicate on the "context" field.
func ContextNotNil() predicate.Activity {
	return predicate.Activity(sql.FieldNotNull(FieldContext))
}

// ContextEqualFold applies the EqualFold predicate on the "context" field.
func ContextEqualFold(v string) predicate.Activity {
	return predicate.Activity(sql.FieldEqualFold(FieldContext, v))
}

// ContextContainsFold applies the ContainsFold predicate on the "context" field.
func ContextContainsFold(v string) predicate.Activity {
	return predicate.Activity(sql.FieldContainsFold(FieldContext, v))
}

// ParentIDEQ applies the EQ predicate on the "parent_id" field.
func ParentIDEQ(v string) predicate.Activity {
	return predicate.Activity(sql.FieldEQ(FieldParentID, v))
}

// ParentIDNEQ applies the NEQ predicate on the "parent_id" field.
func ParentIDNEQ(v string) predicate.Activity {
	return predicate.Activity(sql.FieldNEQ(FieldParentID, v))
}

// ParentIDIn applies the In predicate on the "parent_id" field.
func ParentIDIn(vs ...string) predicate.Activity {
	return predicate.Activity(sql.FieldIn(FieldParentID, vs...))
}

// ParentIDNotIn applies the NotIn predicate on the "parent_id" field.
func ParentIDNotIn(vs ...string) predicate.Activity {
	return predicate.Activity(sql.FieldNotIn(FieldParentID, vs...))
}

// ParentIDGT applies the GT predicate on the "parent_id" field.
func ParentIDGT(v string) predicate.Activity {
	return predicate.Activity(sql.FieldGT(FieldParentID, v))
}

// ParentIDGTE applies the GTE predicate on the "parent_id" field.
func ParentIDGTE(v string) predicate.Activity {
	return predicate.Activity(sql.FieldGTE(FieldParentID, v))
}

// ParentIDLT applies the LT predicate on the "parent_id" field.
func ParentIDLT(v string) predicate.Activity {
	return predicate.Activity(sql.FieldLT(FieldParentID, v))
}

// ParentIDLTE applies the LTE predicate on the "parent_id" field.
func ParentIDLTE(v string) predicate.Activity {
	return predicate.Activity(sql.FieldLTE(FieldParentID, v))
}

// ParentIDContains applies the Contains predicate on the "parent_id" field.
func ParentIDContains(v string) predicate.Activity {
	return predicate.Activity(sql.FieldContains(FieldParentID, v))
}

// ParentIDHasPrefix applies the HasPrefix predicate on the "parent_id" field.
func ParentIDHasPrefix(v string) predicate.Activity {
	return predicate.Activity(sql.FieldHasPrefix(FieldParentID, v))
}

// ParentIDHasSuffix applies the HasSuffix predicate on the "parent_id" field.
func ParentIDHasSuffix(v string) predicate.Activity {
	return predicate.Activity(sql.FieldHasSuffix(FieldParentID, v))
}

// ParentIDIsNil applies the IsNil predicate on the "parent_id" field.
func ParentIDIsNil() predicate.Activity {
	return predicate.Activity(sql.FieldIsNull(FieldParentID))
}

// ParentIDNotNil applies the NotNil predicate on the "parent_id" field.
func ParentIDNotNil() predicate.Activity {
	return predicate.Activity(sql.FieldNotNull(FieldParentID))
}

// ParentIDEqualFold applies the EqualFold predicate on the "parent_id" field.
func ParentIDEqualFold(v string) predicate.Activity {
	return predicate.Activity(sql.FieldEqualFold(FieldParentID, v))
}

// ParentIDContainsFold applies the ContainsFold predicate on the "parent_id" field.
func ParentIDContainsFold(v string) predicate.Activity {
	return predicate.Activity(sql.FieldContainsFold(FieldParentID, v))
}

// DepthEQ applies the EQ predicate on the "depth" field.
func DepthEQ(v int) predicate.Activity {
	return predicate.Activity(sql.FieldEQ(FieldDepth, v))
}

// DepthNEQ applies the NEQ predicate on the "depth" field.
func DepthNEQ(v int) predicate.Activity {
	return predicate.Activity(sql.FieldNEQ(FieldDepth, v))
}

// DepthIn applies the In predicate on the "depth" field.
func DepthIn(vs ...int) predicate.Activity {
	return predicate.Activity(sql.FieldIn(FieldDepth, vs...))
}

// DepthNotIn applies the NotIn predicate on the "depth" field.
func DepthNotIn(vs ...int) predicate.Activity {
	return predicate.Activity(sql.FieldNotIn(FieldDepth, vs...))
}

// DepthGT applies the GT predicate on the "depth" field.
func DepthGT(v int) predicate.Activity {
	return predicate.Activity(sql.FieldGT(FieldDepth, v))
}

// DepthGTE applies the GTE predicate on the "depth" field.
func DepthGTE(v int) predicate.Activity {
	return predicate.Activity(sql.FieldGTE(FieldDepth, v))
}

// DepthLT applies the LT predicate on the "depth" field.
func DepthLT(v int) predicate.Activity {
	return predicate.Activity(sql.FieldLT(FieldDepth, v))
}

// DepthLTE applies the LTE predicate on the "depth" field.
func DepthLTE(v int) predicate.Activity {
	return predicate.Activity(sql.FieldLTE(FieldDepth, v))
}

// MaterializedPathEQ applies the EQ predicate on the "materialized_path" field.
func MaterializedPathEQ(v string) predicate.Activity {
	return predicate.Activity(sql.FieldEQ(FieldMaterializedPath, v))
}

// MaterializedPathNEQ applies the NEQ predicate on the "materialized_path" field.
func MaterializedPathNEQ(v string) predicate.Activity {
	return predicate.Activity(sql.FieldNEQ(FieldMaterializedPath, v))
}

// MaterializedPathIn applies the In predicate on the "materialized_path" field.
func MaterializedPathIn(vs ...string) predicate.Activity {
	return predicate.Activity(sql.FieldIn(FieldMaterializedPath, vs...))
}

// MaterializedPathNotIn applies the NotIn predicate on the "materialized_path" field.
func MaterializedPathNotIn(vs ...string) predicate.Activity {
	return predicate.Activity(sql.FieldNotIn(FieldMaterializedPath, vs...))
}

// MaterializedPathGT applies the GT predicate on the "materialized_path" field.
func MaterializedPathGT(v string) predicate.Activity {
	return predicate.Activity(sql.FieldGT(FieldMaterializedPath, v))
}

// MaterializedPathGTE applies the GTE predicate on the "materialized_path" field.
func MaterializedPathGTE(v string) predicate.Activity {
	return predicate.Activity(sql.FieldGTE(FieldMaterializedPath, v))
}

// MaterializedPathLT applies the LT predicate on the "materialized_path" field.
func MaterializedPathLT(v string) predicate.Activity {
	return predicate.Activity(sql.FieldLT(FieldMaterializedPath, v))
}

// MaterializedPathLTE applies the LTE predicate on the "materialized_path" field.
func MaterializedPathLTE(v string) predicate.Activity {
	return predicate.Activity(sql.FieldLTE(FieldMaterializedPath, v))
}

// MaterializedPathContains applies the Contains predicate on the "materialized_path" field.
func MaterializedPathContains(v string) predicate.Activity {
	return predicate.Activity(sql.FieldContains(FieldMaterializedPath, v))
}

// MaterializedPathHasPrefix applies the HasPrefix predicate on the "materialized_path" field.
func MaterializedPathHasPrefix(v string) predicate.Activity {
	return predicate.Activity(sql.FieldHasPrefix(FieldMaterializedPath, v))
}

// MaterializedPathHasSuffix applies the HasSuffix predicate on the "materialized_path" field.
func MaterializedPathHasSuffix(v string) predicate.Activity {
	return predicate.Activity(sql.FieldHasSuffix(FieldMaterializedPath, v))
}

// MaterializedPathEqualFold applies the EqualFold predicate on the "materialized_path" field.
func MaterializedPathEqualFold(v string) predicate.Activity {
	return predicate.Activity(sql.FieldEqualFold(FieldMaterializedPath, v))
}

// MaterializedPathContainsFold applies the ContainsFold predicate on the "materialized_path" field.
func MaterializedPathContainsFold(v string) predicate.Activity {
	return predicate.Activity(sql.FieldContainsFold(FieldMaterializedPath, v))
}

// OwnerEntityIDEQ applies the EQ predicate on the "owner_entity_id" field.
func OwnerEntityIDEQ(v string) predicate.Activity {
	return predicate.Activity(sql.FieldEQ(FieldOwnerEntityID, v))
}

// OwnerEntityIDNEQ applies the NEQ predicate on the "owner_entity_id" field.
func OwnerEntityIDNEQ(v string) predicate.Activity {
	return predicate.Activity(sql.FieldNEQ(FieldOwnerEntityID, v))
}

// OwnerEntityIDIn applies the In predicate on the "owner_entity_id" field.
func OwnerEntityIDIn(vs ...string) predicate.Activity {
	return predicate.Activity(sql.FieldIn(FieldOwnerEntityID, vs...))
}

// OwnerEntityIDNotIn applies the NotIn predicate on the "owner_entity_id" field.
func OwnerEntityIDNotIn(vs ...string) predicate.Activity {
	return predicate.Activity(sql.FieldNotIn(FieldOwnerEntityID, vs...))
}

// OwnerEntityIDGT applies the GT predicate on the "owner_entity_id" field.
func OwnerEntityIDGT(v string) predicate.Activity {
	return predicate.Activity(sql.FieldGT(FieldOwnerEntityID, v))
}

// OwnerEntityIDGTE applies the GTE predicate on the "owner_entity_id" field.
func OwnerEntityIDGTE(v string) predicate.Activity {
	return predicate.Activity(sql.FieldGTE(FieldOwnerEntityID, v))
}

// OwnerEntityIDLT applies the LT predicate on the "owner_entity_id" field.
func OwnerEntityIDLT(v string) predicate.Activity {
	return predicate.Activity(sql.FieldLT(FieldOwnerEntityID, v))
}

// OwnerEntityIDLTE applies the LTE predicate on the "owner_entity_id" field.
func OwnerEntityIDLTE(v string) predicate.Activity {
	return predicate.Activity(sql.FieldLTE(FieldOwnerEntityID, v))
}

// OwnerEntityIDContains applies the Contains predicate on the "owner_entity_id" field.
func OwnerEntityIDContains(v string) predicate.Activity {
	return predicate.Activity(sql.FieldContains(FieldOwnerEntityID, v))
}

// OwnerEntityIDHasPrefix applies the HasPrefix predicate on the "owner_entity_id" field.
func OwnerEntityIDHasPrefix(v string) predicate.Activity {
	return predicate.Activity(sql.FieldHasPrefix(FieldOwnerEntityID, v))
}

// OwnerEntityIDHasSuffix applies the HasSuffix predicate on the "owner_entity_id" field.
func OwnerEntityIDHasSuffix(v string) predicate.Activity {
	return predicate.Activity(sql.FieldHasSuffix(FieldOwnerEntityID, v))
}

// OwnerEntityIDIsNil applies the IsNil predicate on the "owner_entity_id" field.
func OwnerEntityIDIsNil() predicate.Activity {
	return predicate.Activity(sql.FieldIsNull(FieldOwnerEntityID))
}

// OwnerEntityIDNotNil applies the NotNil predicate on the "owner_entity_id" field.
func OwnerEntityIDNotNil() predicate.Activity {
	return predicate.Activity(sql.FieldNotNull(FieldOwnerEntityID))
}

// OwnerEntityIDEqualFold applies the EqualFold predicate on the "owner_entity_id" field.
func OwnerEntityIDEqualFold(v string) predicate.Activity {
	return predicate.Activity(sql.FieldEqualFold(FieldOwnerEntityID, v))
}

// OwnerEntityIDContainsFold applies the ContainsFold predicate on the "owner_entity_id" field.
func OwnerEntityIDContainsFold(v string) predicate.Activity {
	return predicate.Activity(sql.FieldContainsFold(FieldOwnerEntityID, v))
}

// ClientEntityIDEQ applies the EQ predicate on the "client_entity_id" field.
func ClientEntityIDEQ(v string) predicate.Activity {
	return predicate.Activity(sql.FieldEQ(FieldClientEntityID, v))
}

// ClientEntityIDNEQ applies the NEQ predicate on the "client_entity_id" field.
func ClientEntityIDNEQ(v string) predicate.Activity {
	return predicate.Activity(sql.FieldNEQ(FieldClientEntityID, v))
}

// ClientEntityIDIn applies the In predicate on the "client_entity_id" field.
func ClientEntityIDIn(vs ...string) predicate.Activity {
	return predicate.Activity(sql.FieldIn(FieldClientEntityID, vs...))
}

// ClientEntityIDNotIn applies the NotIn predicate on the "client_entity_id" field.
func ClientEntityIDNotIn(vs ...string) predicate.Activity {
	return predicate.Activity(sql.FieldNotIn(FieldClientEntityID, vs...))
}

// ClientEntityIDGT applies the GT predicate on the "client_entity_id" field.
func ClientEntityIDGT(v string) predicate.Activity {
	return predicate.Activity(sql.FieldGT(FieldClientEntityID, v))
}

// ClientEntityIDGTE applies the GTE predicate on the "client_entity_id" field.
func ClientEntityIDGTE(v string) predicate.Activity {
	return predicate.Activity(sql.FieldGTE(FieldClientEntityID, v))
}

// ClientEntityIDLT applies the LT predicate on the "client_entity_id" field.
func ClientEntityIDLT(v string) predicate.Activity {
	return predicate.Activity(sql.FieldLT(FieldClientEntityID, v))
}

// ClientEntityIDLTE applies the LTE predicate on the "client_entity_id" field.
func ClientEntityIDLTE(v string) predicate.Activity {
	return predicate.Activity(sql.FieldLTE(FieldClientEntityID, v))
}

// ClientEntityIDContains applies the Contains predicate on the "client_entity_id" field.
func ClientEntityIDContains(v string) predicate.Activity {
	return predicate.Activity(sql.FieldContains(FieldClientEntityID, v))
}

// ClientEntityIDHasPrefix applies the HasPrefix predicate on the "client_entity_id" field.
func ClientEntityIDHasPrefix(v string) predicate.Activity {
	return predicate.Activity(sql.FieldHasPrefix(FieldClientEntityID, v))
}

// ClientEntityIDHasSuffix applies the HasSuffix predicate on the "client_entity_id" field.
func ClientEntityIDHasSuffix(v string) predicate.Activity {
	return predicate.Activity(sql.FieldHasSuffix(FieldClientEntityID, v))
}

// ClientEntityIDIsNil applies the IsNil predicate on the "client_entity_id" field.
func ClientEntityIDIsNil() predicate.Activity {
	return predicate.Activity(sql.FieldIsNull(FieldClientEntityID))
}

// ClientEntityIDNotNil applies the NotNil predicate on the "client_entity_id" field.
func ClientEntityIDNotNil() predicate.Activity {
	return predicate.Activity(sql.FieldNotNull(FieldClientEntityID))
}

// ClientEntityIDEqualFold applies the EqualFold predicate on the "client_entity_id" field.
func ClientEntityIDEqualFold(v string) predicate.Activity {
	return predicate.Activity(sql.FieldEqualFold(FieldClientEntityID, v))
}

// ClientEntityIDContainsFold applies the ContainsFold predicate on the "client_entity_id" field.
func ClientEntityIDContainsFold(v string) predicate.Activity {
	return predicate.Activity(sql.FieldContainsFold(FieldClientEntityID, v))
}

// SourceInteractionIDEQ applies the EQ predicate on the "source_interaction_id" field.
func SourceInteractionIDEQ(v string) predicate.Activity {
	return predicate.Activity(sql.FieldEQ(FieldSourceInteractionID, v))
}

// SourceInteractionIDNEQ applies the NEQ predicate on the "source_interaction_id" field.
func SourceInteractionIDNEQ(v string) predicate.Activity {
	return predicate.Activity(sql.FieldNEQ(FieldSourceInteractionID, v))
}

// SourceInteractionIDIn applies the In predicate on the "source_interaction_id" field.
func SourceInteractionIDIn(vs ...string) predicate.Activity {
	return predicate.Activity(sql.FieldIn(FieldSourceInteractionID, vs...))
}

// SourceInteractionIDNotIn applies the NotIn predicate on the "source_interaction_id" field.
func SourceInteractionIDNotIn(vs ...string) predicate.Activity {
	return predicate.Activity(sql.FieldNotIn(FieldSourceInteractionID, vs...))
}

// SourceInteractionIDGT applies the GT predicate on the "source_interaction_id" field.
func SourceInteractionIDGT(v string) predicate.Activity {
	return predicate.Activity(sql.FieldGT(FieldSourceInteractionID, v))
}

// SourceInteractionIDGTE applies the GTE predicate on the "source_interaction_id" field.
func SourceInteractionIDGTE(v string) predicate.Activity {
	return predicate.Activity(sql.FieldGTE(FieldSourceInteractionID, v))
}

// SourceInteractionIDLT applies the LT predicate on the "source_interaction_id" field.
func SourceInteractionIDLT(v string) predicate.Activity {
	return predicate.Activity(sql.FieldLT(FieldSourceInteractionID, v))
}

// SourceInteractionIDLTE applies the LTE predicate on the "source_interaction_id" field.
func SourceInteractionIDLTE(v string) predicate.Activity {
	return predicate.Activity(sql.FieldLTE(FieldSourceInteractionID, v))
}

// SourceInteractionIDContains applies the Contains predicate on the "source_interaction_id" field.
func SourceInteractionIDContains(v string) predicate.Activity {
	return predicate.Activity(sql.FieldContains(FieldSourceInteractionID, v))
}

// SourceInteractionIDHasPrefix applies the HasPrefix predicate on the "source_interaction_id" field.
func SourceInteractionIDHasPrefix(v string) predicate.Activity {
	return predicate.Activity(sql.FieldHasPrefix(FieldSourceInteractionID, v))
}

// SourceInteractionIDHasSuffix applies the HasSuffix predicate on the "source_interaction_id" field.
func SourceInteractionIDHasSuffix(v string) predicate.Activity {
	return predicate.Activity(sql.FieldHasSuffix(FieldSourceInteractionID, v))
}

// SourceInteractionIDIsNil applies the IsNil predicate on the "source_interaction_id" field.
func SourceInteractionIDIsNil() predicate.Activity {
	return predicate.Activity(sql.FieldIsNull(FieldSourceInteractionID))
}

// SourceInteractionIDNotNil applies the NotNil predicate on the "source_interaction_id" field.
func SourceInteractionIDNotNil() predicate.Activity {
	return predicate.Activity(sql.FieldNotNull(FieldSourceInteractionID))
}

// SourceInteractionIDEqualFold applies the EqualFold predicate on the "source_interaction_id" field.
func SourceInteractionIDEqualFold(v string) predicate.Activity {
	return predicate.Activity(sql.FieldEqualFold(FieldSourceInteractionID, v))
}

// SourceInteractionIDContainsFold applies the ContainsFold predicate on the "source_interaction_id" field.
func SourceInteractionIDContainsFold(v string) predicate.Activity {
	return predicate.Activity(sql.FieldContainsFold(FieldSourceInteractionID, v))
}

// StartsAtEQ applies the EQ predicate on the "starts_at" field.
func StartsAtEQ(v time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldEQ(FieldStartsAt, v))
}

// StartsAtNEQ applies the NEQ predicate on the "starts_at" field.
func StartsAtNEQ(v time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldNEQ(FieldStartsAt, v))
}

// StartsAtIn applies the In predicate on the "starts_at" field.
func StartsAtIn(vs ...time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldIn(FieldStartsAt, vs...))
}

// StartsAtNotIn applies the NotIn predicate on the "starts_at" field.
func StartsAtNotIn(vs ...time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldNotIn(FieldStartsAt, vs...))
}

// StartsAtGT applies the GT predicate on the "starts_at" field.
func StartsAtGT(v time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldGT(FieldStartsAt, v))
}

// StartsAtGTE applies the GTE predicate on the "starts_at" field.
func StartsAtGTE(v time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldGTE(FieldStartsAt, v))
}

// StartsAtLT applies the LT predicate on the "starts_at" field.
func StartsAtLT(v time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldLT(FieldStartsAt, v))
}

// StartsAtLTE applies the LTE predicate on the "starts_at" field.
func StartsAtLTE(v time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldLTE(FieldStartsAt, v))
}

// StartsAtIsNil applies the IsNil predicate on the "starts_at" field.
func StartsAtIsNil() predicate.Activity {
	return predicate.Activity(sql.FieldIsNull(FieldStartsAt))
}

// StartsAtNotNil applies the NotNil predicate on the "starts_at" field.
func StartsAtNotNil() predicate.Activity {
	return predicate.Activity(sql.FieldNotNull(FieldStartsAt))
}

// DueAtEQ applies the EQ predicate on the "due_at" field.
func DueAtEQ(v time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldEQ(FieldDueAt, v))
}

// DueAtNEQ applies the NEQ predicate on the "due_at" field.
func DueAtNEQ(v time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldNEQ(FieldDueAt, v))
}

// DueAtIn applies the In predicate on the "due_at" field.
func DueAtIn(vs ...time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldIn(FieldDueAt, vs...))
}

// DueAtNotIn applies the NotIn predicate on the "due_at" field.
func DueAtNotIn(vs ...time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldNotIn(FieldDueAt, vs...))
}

// DueAtGT applies the GT predicate on the "due_at" field.
func DueAtGT(v time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldGT(FieldDueAt, v))
}

// DueAtGTE applies the GTE predicate on the "due_at" field.
func DueAtGTE(v time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldGTE(FieldDueAt, v))
}

// DueAtLT applies the LT predicate on the "due_at" field.
func DueAtLT(v time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldLT(FieldDueAt, v))
}

// DueAtLTE applies the LTE predicate on the "due_at" field.
func DueAtLTE(v time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldLTE(FieldDueAt, v))
}

// DueAtIsNil applies the IsNil predicate on the "due_at" field.
func DueAtIsNil() predicate.Activity {
	return predicate.Activity(sql.FieldIsNull(FieldDueAt))
}

// DueAtNotNil applies the NotNil predicate on the "due_at" field.
func DueAtNotNil() predicate.Activity {
	return predicate.Activity(sql.FieldNotNull(FieldDueAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Activity {
	return predicate.Activity(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Activity {
	return predicate.Activity(sql.FieldNotNull(FieldCompletedAt))
}

// TagsIsNil applies the IsNil predicate on the "tags" field.
func TagsIsNil() predicate.Activity {
	return predicate.Activity(sql.FieldIsNull(FieldTags))
}

// TagsNotNil applies the NotNil predicate on the "tags" field.
func TagsNotNil() predicate.Activity {
	return predicate.Activity(sql.FieldNotNull(FieldTags))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.Activity {
	return predicate.Activity(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.Activity {
	return predicate.Activity(sql.FieldNotNull(FieldMetadata))
}

// NeedsReviewEQ applies the EQ predicate on the "needs_review" field.
func NeedsReviewEQ(v bool) predicate.Activity {
	return predicate.Activity(sql.FieldEQ(FieldNeedsReview, v))
}

// NeedsReviewNEQ applies the NEQ predicate on the "needs_review" field.
func NeedsReviewNEQ(v bool) predicate.Activity {
	return predicate.Activity(sql.FieldNEQ(FieldNeedsReview, v))
}

// ConfirmationCountEQ applies the EQ predicate on the "confirmation_count" field.
func ConfirmationCountEQ(v int) predicate.Activity {
	return predicate.Activity(sql.FieldEQ(FieldConfirmationCount, v))
}

// ConfirmationCountNEQ applies the NEQ predicate on the "confirmation_count" field.
func ConfirmationCountNEQ(v int) predicate.Activity {
	return predicate.Activity(sql.FieldNEQ(FieldConfirmationCount, v))
}

// ConfirmationCountIn applies the In predicate on the "confirmation_count" field.
func ConfirmationCountIn(vs ...int) predicate.Activity {
	return predicate.Activity(sql.FieldIn(FieldConfirmationCount, vs...))
}

// ConfirmationCountNotIn applies the NotIn predicate on the "confirmation_count" field.
func ConfirmationCountNotIn(vs ...int) predicate.Activity {
	return predicate.Activity(sql.FieldNotIn(FieldConfirmationCount, vs...))
}

// ConfirmationCountGT applies the GT predicate on the "confirmation_count" field.
func ConfirmationCountGT(v int) predicate.Activity {
	return predicate.Activity(sql.FieldGT(FieldConfirmationCount, v))
}

// ConfirmationCountGTE applies the GTE predicate on the "confirmation_count" field.
func ConfirmationCountGTE(v int) predicate.Activity {
	return predicate.Activity(sql.FieldGTE(FieldConfirmationCount, v))
}

// ConfirmationCountLT applies the LT predicate on the "confirmation_count" field.
func ConfirmationCountLT(v int) predicate.Activity {
	return predicate.Activity(sql.FieldLT(FieldConfirmationCount, v))
}

// ConfirmationCountLTE applies the LTE predicate on the "confirmation_count" field.
func ConfirmationCountLTE(v int) predicate.Activity {
	return predicate.Activity(sql.FieldLTE(FieldConfirmationCount, v))
}

// EmbeddingEQ applies the EQ predicate on the "embedding" field.
func EmbeddingEQ(v pgvector.Vector) predicate.Activity {
	return predicate.Activity(sql.FieldEQ(FieldEmbedding, v))
}

// EmbeddingNEQ applies the NEQ predicate on the "embedding" field.
func EmbeddingNEQ(v pgvector.Vector) predicate.Activity {
	return predicate.Activity(sql.FieldNEQ(FieldEmbedding, v))
}

// EmbeddingIn applies the In predicate on the "embedding" field.
func EmbeddingIn(vs ...pgvector.Vector) predicate.Activity {
	return predicate.Activity(sql.FieldIn(FieldEmbedding, vs...))
}

// EmbeddingNotIn applies the NotIn predicate on the "embedding" field.
func EmbeddingNotIn(vs ...pgvector.Vector) predicate.Activity {
	return predicate.Activity(sql.FieldNotIn(FieldEmbedding, vs...))
}

// EmbeddingGT applies the GT predicate on the "embedding" field.
func EmbeddingGT(v pgvector.Vector) predicate.Activity {
	return predicate.Activity(sql.FieldGT(FieldEmbedding, v))
}

// EmbeddingGTE applies the GTE predicate on the "embedding" field.
func EmbeddingGTE(v pgvector.Vector) predicate.Activity {
	return predicate.Activity(sql.FieldGTE(FieldEmbedding, v))
}

// EmbeddingLT applies the LT predicate on the "embedding" field.
func EmbeddingLT(v pgvector.Vector) predicate.Activity {
	return predicate.Activity(sql.FieldLT(FieldEmbedding, v))
}

// EmbeddingLTE applies the LTE predicate on the "embedding" field.
func EmbeddingLTE(v pgvector.Vector) predicate.Activity {
	return predicate.Activity(sql.FieldLTE(FieldEmbedding, v))
}

// EmbeddingIsNil applies the IsNil predicate on the "embedding" field.
func EmbeddingIsNil() predicate.Activity {
	return predicate.Activity(sql.FieldIsNull(FieldEmbedding))
}

// EmbeddingNotNil applies the NotNil predicate on the "embedding" field.
func EmbeddingNotNil() predicate.Activity {
	return predicate.Activity(sql.FieldNotNull(FieldEmbedding))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldLTE(FieldUpdatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Activity {
	return predicate.Activity(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Activity {
	return predicate.Activity(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Activity {
	return predicate.Activity(sql.FieldNotNull(FieldDeletedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Activity) predicate.Activity {
	return predicate.Activity(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Activity) predicate.Activity {
	return predicate.Activity(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Activity) predicate.Activity {
	return predicate.Activity(sql.NotPredicates(p))
}
