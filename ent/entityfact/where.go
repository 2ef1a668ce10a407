// Code generated by ent, DO NOT EDIT.

package entityfact

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/memograph/memograph/ent/predicate"
	pgvector "github.com/pgvector/pgvector-go"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldContainsFold(FieldID, id))
}

// EntityID applies equality check predicate on the "entity_id" field. It's identical to EntityIDEQ.
func EntityID(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldEQ(FieldEntityID, v))
}

// FactType applies equality check predicate on the "fact_type" field. It's identical to FactTypeEQ.
func FactType(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldEQ(FieldFactType, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldEQ(FieldCategory, v))
}

// Value applies equality check predicate on the "value" field. It's identical to ValueEQ.
func Value(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldEQ(FieldValue, v))
}

// ValueDate applies equality check predicate on the "value_date" field. It's identical to ValueDateEQ.
func ValueDate(v time.Time) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldEQ(FieldValueDate, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldEQ(FieldConfidence, v))
}

// SourceInteractionID applies equality check predicate on the "source_interaction_id" field. It's identical to SourceInteractionIDEQ.
func SourceInteractionID(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldEQ(FieldSourceInteractionID, v))
}

// SourceMessageID applies equality check predicate on the "source_message_id" field. It's identical to SourceMessageIDEQ.
func SourceMessageID(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldEQ(FieldSourceMessageID, v))
}

// ValidFrom applies equality check predicate on the "valid_from" field. It's identical to ValidFromEQ.
func ValidFrom(v time.Time) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldEQ(FieldValidFrom, v))
}

// ValidUntil applies equality check predicate on the "valid_until" field. It's identical to ValidUntilEQ.
func ValidUntil(v time.Time) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldEQ(FieldValidUntil, v))
}

// SupersededBy applies equality check predicate on the "superseded_by" field. It's identical to SupersededByEQ.
func SupersededBy(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldEQ(FieldSupersededBy, v))
}

// NeedsReview applies equality check predicate on the "needs_review" field. It's identical to NeedsReviewEQ.
func NeedsReview(v bool) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldEQ(FieldNeedsReview, v))
}

// ReviewReason applies equality check predicate on the "review_reason" field. It's identical to ReviewReasonEQ.
func ReviewReason(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldEQ(FieldReviewReason, v))
}

// ConfirmationCount applies equality check predicate on the "confirmation_count" field. It's identical to ConfirmationCountEQ.
func ConfirmationCount(v int) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldEQ(FieldConfirmationCount, v))
}

// Embedding applies equality check predicate on the "embedding" field. It's identical to EmbeddingEQ.
func Embedding(v pgvector.Vector) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldEQ(FieldEmbedding, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldEQ(FieldUpdatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldEQ(FieldDeletedAt, v))
}

// EntityIDEQ applies the EQ predicate on the "entity_id" field.
func EntityIDEQ(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldEQ(FieldEntityID, v))
}

// EntityIDNEQ applies the NEQ predicate on the "entity_id" field.
func EntityIDNEQ(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldNEQ(FieldEntityID, v))
}

// EntityIDIn applies the In predicate on the "entity_id" field.
func EntityIDIn(vs ...string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldIn(FieldEntityID, vs...))
}

// EntityIDNotIn applies the NotIn predicate on the "entity_id" field.
func EntityIDNotIn(vs ...string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldNotIn(FieldEntityID, vs...))
}

// EntityIDGT applies the GT predicate on the "entity_id" field.
func EntityIDGT(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldGT(FieldEntityID, v))
}

// EntityIDGTE applies the GTE predicate on the "entity_id" field.
func EntityIDGTE(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldGTE(FieldEntityID, v))
}

// EntityIDLT applies the LT predicate on the "entity_id" field.
func EntityIDLT(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldLT(FieldEntityID, v))
}

// EntityIDLTE applies the LTE predicate on the "entity_id" field.
func EntityIDLTE(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldLTE(FieldEntityID, v))
}

// EntityIDContains applies the Contains predicate on the "entity_id" field.
func EntityIDContains(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldContains(FieldEntityID, v))
}

// EntityIDHasPrefix applies the HasPrefix predicate on the "entity_id" field.
func EntityIDHasPrefix(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldHasPrefix(FieldEntityID, v))
}

// EntityIDHasSuffix applies the HasSuffix predicate on the "entity_id" field.
func EntityIDHasSuffix(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldHasSuffix(FieldEntityID, v))
}

// EntityIDEqualFold applies the EqualFold predicate on the "entity_id" field.
func EntityIDEqualFold(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldEqualFold(FieldEntityID, v))
}

// EntityIDContainsFold applies the ContainsFold predicate on the "entity_id" field.
func EntityIDContainsFold(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldContainsFold(FieldEntityID, v))
}

// FactTypeEQ applies the EQ predicate on the "fact_type" field.
func FactTypeEQ(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldEQ(FieldFactType, v))
}

// FactTypeNEQ applies the NEQ predicate on the "fact_type" field.
func FactTypeNEQ(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldNEQ(FieldFactType, v))
}

// FactTypeIn applies the In predicate on the "fact_type" field.
func FactTypeIn(vs ...string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldIn(FieldFactType, vs...))
}

// FactTypeNotIn applies the NotIn predicate on the "fact_type" field.
func FactTypeNotIn(vs ...string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldNotIn(FieldFactType, vs...))
}

// FactTypeGT applies the GT predicate on the "fact_type" field.
func FactTypeGT(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldGT(FieldFactType, v))
}

// FactTypeGTE applies the GTE predicate on the "fact_type" field.
func FactTypeGTE(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldGTE(FieldFactType, v))
}

// FactTypeLT applies the LT predicate on the "fact_type" field.
func FactTypeLT(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldLT(FieldFactType, v))
}

// FactTypeLTE applies the LTE predicate on the "fact_type" field.
func FactTypeLTE(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldLTE(FieldFactType, v))
}

// FactTypeContains applies the Contains predicate on the "fact_type" field.
func FactTypeContains(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldContains(FieldFactType, v))
}

// FactTypeHasPrefix applies the HasPrefix predicate on the "fact_type" field.
func FactTypeHasPrefix(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldHasPrefix(FieldFactType, v))
}

// FactTypeHasSuffix applies the HasSuffix predicate on the "fact_type" field.
func FactTypeHasSuffix(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldHasSuffix(FieldFactType, v))
}

// FactTypeEqualFold applies the EqualFold predicate on the "fact_type" field.
func FactTypeEqualFold(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldEqualFold(FieldFactType, v))
}

// FactTypeContainsFold applies the ContainsFold predicate on the "fact_type" field.
func FactTypeContainsFold(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldContainsFold(FieldFactType, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryIsNil applies the IsNil predicate on the "category" field.
func CategoryIsNil() predicate.EntityFact {
	return predicate.EntityFact(sql.FieldIsNull(FieldCategory))
}

// CategoryNotNil applies the NotNil predicate on the "category" field.
func CategoryNotNil() predicate.EntityFact {
	return predicate.EntityFact(sql.FieldNotNull(FieldCategory))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldContainsFold(FieldCategory, v))
}

// ValueEQ applies the EQ predicate on the "value" field.
func ValueEQ(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldEQ(FieldValue, v))
}

// ValueNEQ applies the NEQ predicate on the "value" field.
func ValueNEQ(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldNEQ(FieldValue, v))
}

// ValueIn applies the In predicate on the "value" field.
func ValueIn(vs ...string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldIn(FieldValue, vs...))
}

// ValueNotIn applies the NotIn predicate on the "value" field.
func ValueNotIn(vs ...string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldNotIn(FieldValue, vs...))
}

// ValueGT applies the GT predicate on the "value" field.
func ValueGT(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldGT(FieldValue, v))
}

// ValueGTE applies the GTE predicate on the "value" field.
func ValueGTE(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldGTE(FieldValue, v))
}

// ValueLT applies the LT predicate on the "value" field.
func ValueLT(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldLT(FieldValue, v))
}

// ValueLTE applies the LTE predicate on the "value" field.
func ValueLTE(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldLTE(FieldValue, v))
}

// ValueContains applies the Contains predicate on the "value" field.
func ValueContains(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldContains(FieldValue, v))
}

// ValueHasPrefix applies the HasPrefix predicate on the "value" field.
func ValueHasPrefix(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldHasPrefix(FieldValue, v))
}

// ValueHasSuffix applies the HasSuffix predicate on the "value" field.
func ValueHasSuffix(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldHasSuffix(FieldValue, v))
}

// ValueIsNil applies the IsNil predicate on the "value" field.
func ValueIsNil() predicate.EntityFact {
	return predicate.EntityFact(sql.FieldIsNull(FieldValue))
}

// ValueNotNil applies the NotNil predicate on the "value" field.
func ValueNotNil() predicate.EntityFact {
	return predicate.EntityFact(sql.FieldNotNull(FieldValue))
}

// ValueEqualFold applies the EqualFold predicate on the "value" field.
func ValueEqualFold(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldEqualFold(FieldValue, v))
}

// ValueContainsFold applies the ContainsFold predicate on the "value" field.
func ValueContainsFold(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldContainsFold(FieldValue, v))
}

// ValueDateEQ applies the EQ predicate on the "value_date" field.
func ValueDateEQ(v time.Time) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldEQ(FieldValueDate, v))
}

// ValueDateNEQ applies the NEQ predicate on the "value_date" field.
func ValueDateNEQ(v time.Time) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldNEQ(FieldValueDate, v))
}

// ValueDateIn applies the In predicate on the "value_date" field.
func ValueDateIn(vs ...time.Time) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldIn(FieldValueDate, vs...))
}

// ValueDateNotIn applies the NotIn predicate on the "value_date" field.
func ValueDateNotIn(vs ...time.Time) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldNotIn(FieldValueDate, vs...))
}

// ValueDateGT applies the GT predicate on the "value_date" field.
func ValueDateGT(v time.Time) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldGT(FieldValueDate, v))
}

// ValueDateGTE applies the GTE predicate on the "value_date" field.
func ValueDateGTE(v time.Time) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldGTE(FieldValueDate, v))
}

// ValueDateLT applies the LT predicate on the "value_date" field.
func ValueDateLT(v time.Time) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldLT(FieldValueDate, v))
}

// ValueDateLTE applies the LTE predicate on the "value_date" field.
func ValueDateLTE(v time.Time) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldLTE(FieldValueDate, v))
}

// ValueDateIsNil applies the IsNil predicate on the "value_date" field.
func ValueDateIsNil() predicate.EntityFact {
	return predicate.EntityFact(sql.FieldIsNull(FieldValueDate))
}

// ValueDateNotNil applies the NotNil predicate on the "value_date" field.
func ValueDateNotNil() predicate.EntityFact {
	return predicate.EntityFact(sql.FieldNotNull(FieldValueDate))
}

// ValueJSONIsNil applies the IsNil predicate on the "value_json" field.
func ValueJSONIsNil() predicate.EntityFact {
	return predicate.EntityFact(sql.FieldIsNull(FieldValueJSON))
}

// ValueJSONNotNil applies the NotNil predicate on the "value_json" field.
func ValueJSONNotNil() predicate.EntityFact {
	return predicate.EntityFact(sql.FieldNotNull(FieldValueJSON))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v Source) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v Source) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...Source) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...Source) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldNotIn(FieldSource, vs...))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldLTE(FieldConfidence, v))
}

// SourceInteractionIDEQ applies the EQ predicate on the "source_interaction_id" field.
func SourceInteractionIDEQ(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldEQ(FieldSourceInteractionID, v))
}

// SourceInteractionIDNEQ applies the NEQ predicate on the "source_interaction_id" field.
func SourceInteractionIDNEQ(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldNEQ(FieldSourceInteractionID, v))
}

// SourceInteractionIDIn applies the In predicate on the "source_interaction_id" field.
func SourceInteractionIDIn(vs ...string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldIn(FieldSourceInteractionID, vs...))
}

// SourceInteractionIDNotIn applies the NotIn predicate on the "source_interaction_id" field.
func SourceInteractionIDNotIn(vs ...string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldNotIn(FieldSourceInteractionID, vs...))
}

// SourceInteractionIDGT applies the GT predicate on the "source_interaction_id" field.
func SourceInteractionIDGT(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldGT(FieldSourceInteractionID, v))
}

// SourceInteractionIDGTE applies the GTE predicate on the "source_interaction_id" field.
func SourceInteractionIDGTE(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldGTE(FieldSourceInteractionID, v))
}

// SourceInteractionIDLT applies the LT predicate on the "source_interaction_id" field.
func SourceInteractionIDLT(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldLT(FieldSourceInteractionID, v))
}

// SourceInteractionIDLTE applies the LTE predicate on the "source_interaction_id" field.
func SourceInteractionIDLTE(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldLTE(FieldSourceInteractionID, v))
}

// SourceInteractionIDContains applies the Contains predicate on the "source_interaction_id" field.
func SourceInteractionIDContains(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldContains(FieldSourceInteractionID, v))
}

// SourceInteractionIDHasPrefix applies the HasPrefix predicate on the "source_interaction_id" field.
func SourceInteractionIDHasPrefix(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldHasPrefix(FieldSourceInteractionID, v))
}

// SourceInteractionIDHasSuffix applies the HasSuffix predicate on the "source_interaction_id" field.
func SourceInteractionIDHasSuffix(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldHasSuffix(FieldSourceInteractionID, v))
}

// SourceInteractionIDIsNil applies the IsNil predicate on the "source_interaction_id" field.
func SourceInteractionIDIsNil() predicate.EntityFact {
	return predicate.EntityFact(sql.FieldIsNull(FieldSourceInteractionID))
}

// SourceInteractionIDNotNil applies the NotNil predicate on the "source_interaction_id" field.
func SourceInteractionIDNotNil() predicate.EntityFact {
	return predicate.EntityFact(sql.FieldNotNull(FieldSourceInteractionID))
}

// SourceInteractionIDEqualFold applies the EqualFold predicate on the "source_interaction_id" field.
func SourceInteractionIDEqualFold(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldEqualFold(FieldSourceInteractionID, v))
}

// SourceInteractionIDContainsFold applies the ContainsFold predicate on the "source_interaction_id" field.
func SourceInteractionIDContainsFold(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldContainsFold(FieldSourceInteractionID, v))
}

// SourceMessageIDEQ applies the EQ predicate on the "source_message_id" field.
func SourceMessageIDEQ(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldEQ(FieldSourceMessageID, v))
}

// SourceMessageIDNEQ applies the NEQ predicate on the "source_message_id" field.
func SourceMessageIDNEQ(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldNEQ(FieldSourceMessageID, v))
}

// SourceMessageIDIn applies the In predicate on the "source_message_id" field.
func SourceMessageIDIn(vs ...string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldIn(FieldSourceMessageID, vs...))
}

// SourceMessageIDNotIn applies the NotIn predicate on the "source_message_id" field.
func SourceMessageIDNotIn(vs ...string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldNotIn(FieldSourceMessageID, vs...))
}

// SourceMessageIDGT applies the GT predicate on the "source_message_id" field.
func SourceMessageIDGT(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldGT(FieldSourceMessageID, v))
}

// SourceMessageIDGTE applies the GTE predicate on the "source_message_id" field.
func SourceMessageIDGTE(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldGTE(FieldSourceMessageID, v))
}

// SourceMessageIDLT applies the LT predicate on the "source_message_id" field.
func SourceMessageIDLT(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldLT(FieldSourceMessageID, v))
}

// SourceMessageIDLTE applies the LTE predicate on the "source_message_id" field.
func SourceMessageIDLTE(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldLTE(FieldSourceMessageID, v))
}

// SourceMessageIDContains applies the Contains predicate on the "source_message_id" field.
func SourceMessageIDContains(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldContains(FieldSourceMessageID, v))
}

// SourceMessageIDHasPrefix applies the HasPrefix predicate on the "source_message_id" field.
func SourceMessageIDHasPrefix(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldHasPrefix(FieldSourceMessageID, v))
}

// SourceMessageIDHasSuffix applies the HasSuffix predicate on the "source_message_id" field.
func SourceMessageIDHasSuffix(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldHasSuffix(FieldSourceMessageID, v))
}

// SourceMessageIDIsNil applies the IsNil predicate on the "source_message_id" field.
func SourceMessageIDIsNil() predicate.EntityFact {
	return predicate.EntityFact(sql.FieldIsNull(FieldSourceMessageID))
}

// SourceMessageIDNotNil applies the NotNil predicate on the "source_message_id" field.
func SourceMessageIDNotNil() predicate.EntityFact {
	return predicate.EntityFact(sql.FieldNotNull(FieldSourceMessageID))
}

// SourceMessageIDEqualFold applies the EqualFold predicate on the "source_message_id" field.
func SourceMessageIDEqualFold(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldEqualFold(FieldSourceMessageID, v))
}

// SourceMessageIDContainsFold applies the ContainsFold predicate on the "source_message_id" field.
func SourceMessageIDContainsFold(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldContainsFold(FieldSourceMessageID, v))
}

// ValidFromEQ applies the EQ predicate on the "valid_from" field.
func ValidFromEQ(v time.Time) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldEQ(FieldValidFrom, v))
}

// ValidFromNEQ applies the NEQ predicate on the "valid_from" field.
func ValidFromNEQ(v time.Time) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldNEQ(FieldValidFrom, v))
}

// ValidFromIn applies the In predicate on the "valid_from" field.
func ValidFromIn(vs ...time.Time) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldIn(FieldValidFrom, vs...))
}

// ValidFromNotIn applies the NotIn predicate on the "valid_from" field.
func ValidFromNotIn(vs ...time.Time) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldNotIn(FieldValidFrom, vs...))
}

// ValidFromGT applies the GT predicate on the "valid_from" field.
func ValidFromGT(v time.Time) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldGT(FieldValidFrom, v))
}

// ValidFromGTE applies the GTE predicate on the "valid_from" field.
func ValidFromGTE(v time.Time) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldGTE(FieldValidFrom, v))
}

// ValidFromLT applies the LT predicate on the "valid_from" field.
func ValidFromLT(v time.Time) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldLT(FieldValidFrom, v))
}

// ValidFromLTE applies the LTE predicate on the "valid_from" field.
func ValidFromLTE(v time.Time) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldLTE(FieldValidFrom, v))
}

// ValidFromIsNil applies the IsNil predicate on the "valid_from" field.
func ValidFromIsNil() predicate.EntityFact {
	return predicate.EntityFact(sql.FieldIsNull(FieldValidFrom))
}

// ValidFromNotNil applies the NotNil predicate on the "valid_from" field.
func ValidFromNotNil() predicate.EntityFact {
	return predicate.EntityFact(sql.FieldNotNull(FieldValidFrom))
}

// ValidUntilEQ applies the EQ predicate on the "valid_until" field.
func ValidUntilEQ(v time.Time) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldEQ(FieldValidUntil, v))
}

// ValidUntilNEQ applies the NEQ predicate on the "valid_until" field.
func ValidUntilNEQ(v time.Time) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldNEQ(FieldValidUntil, v))
}

// ValidUntilIn applies the In predicate on the "valid_until" field.
func ValidUntilIn(vs ...time.Time) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldIn(FieldValidUntil, vs...))
}

// ValidUntilNotIn applies the NotIn predicate on the "valid_until" field.
func ValidUntilNotIn(vs ...time.Time) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldNotIn(FieldValidUntil, vs...))
}

// ValidUntilGT applies the GT predicate on the "valid_until" field.
func ValidUntilGT(v time.Time) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldGT(FieldValidUntil, v))
}

// ValidUntilGTE applies the GTE predicate on the "valid_until" field.
func ValidUntilGTE(v time.Time) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldGTE(FieldValidUntil, v))
}

// ValidUntilLT applies the LT predicate on the "valid_until" field.
func ValidUntilLT(v time.Time) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldLT(FieldValidUntil, v))
}

// ValidUntilLTE applies the LTE predicate on the "valid_until" field.
func ValidUntilLTE(v time.Time) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldLTE(FieldValidUntil, v))
}

// ValidUntilIsNil applies the IsNil predicate on the "valid_until" field.
func ValidUntilIsNil() predicate.EntityFact {
	return predicate.EntityFact(sql.FieldIsNull(FieldValidUntil))
}

// ValidUntilNotNil applies the NotNil predicate on the "valid_until" field.
func ValidUntilNotNil() predicate.EntityFact {
	return predicate.EntityFact(sql.FieldNotNull(FieldValidUntil))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldNotIn(FieldStatus, vs...))
}

// RankEQ applies the EQ predicate on the "rank" field.
func RankEQ(v Rank) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldEQ(FieldRank, v))
}

// RankNEQ applies the NEQ predicate on the "rank" field.
func RankNEQ(v Rank) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldNEQ(FieldRank, v))
}

// RankIn applies the In predicate on the "rank" field.
func RankIn(vs ...Rank) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldIn(FieldRank, vs...))
}

// RankNotIn applies the NotIn predicate on the "rank" field.
func RankNotIn(vs ...Rank) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldNotIn(FieldRank, vs...))
}

// SupersededByEQ applies the EQ predicate on the "superseded_by" field.
func SupersededByEQ(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldEQ(FieldSupersededBy, v))
}

// SupersededByNEQ applies the NEQ predicate on the "superseded_by" field.
func SupersededByNEQ(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldNEQ(FieldSupersededBy, v))
}

// SupersededByIn applies the In predicate on the "superseded_by" field.
func SupersededByIn(vs ...string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldIn(FieldSupersededBy, vs...))
}

// SupersededByNotIn applies the NotIn predicate on the "superseded_by" field.
func SupersededByNotIn(vs ...string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldNotIn(FieldSupersededBy, vs...))
}

// SupersededByGT applies the GT predicate on the "superseded_by" field.
func SupersededByGT(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldGT(FieldSupersededBy, v))
}

// SupersededByGTE applies the GTE predicate on the "superseded_by" field.
func SupersededByGTE(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldGTE(FieldSupersededBy, v))
}

// SupersededByLT applies the LT predicate on the "superseded_by" field.
func SupersededByLT(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldLT(FieldSupersededBy, v))
}

// SupersededByLTE applies the LTE predicate on the "superseded_by" field.
func SupersededByLTE(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldLTE(FieldSupersededBy, v))
}

// SupersededByContains applies the Contains predicate on the "superseded_by" field.
func SupersededByContains(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldContains(FieldSupersededBy, v))
}

// SupersededByHasPrefix applies the HasPrefix predicate on the "superseded_by" field.
func SupersededByHasPrefix(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldHasPrefix(FieldSupersededBy, v))
}

// SupersededByHasSuffix applies the HasSuffix predicate on the "superseded_by" field.
func SupersededByHasSuffix(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldHasSuffix(FieldSupersededBy, v))
}

// SupersededByIsNil applies the IsNil predicate on the "superseded_by" field.
func SupersededByIsNil() predicate.EntityFact {
	return predicate.EntityFact(sql.FieldIsNull(FieldSupersededBy))
}

// SupersededByNotNil applies the NotNil predicate on the "superseded_by" field.
func SupersededByNotNil() predicate.EntityFact {
	return predicate.EntityFact(sql.FieldNotNull(FieldSupersededBy))
}

// SupersededByEqualFold applies the EqualFold predicate on the "superseded_by" field.
func SupersededByEqualFold(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldEqualFold(FieldSupersededBy, v))
}

// SupersededByContainsFold applies the ContainsFold predicate on the "superseded_by" field.
func SupersededByContainsFold(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldContainsFold(FieldSupersededBy, v))
}

// NeedsReviewEQ applies the EQ predicate on the "needs_review" field.
func NeedsReviewEQ(v bool) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldEQ(FieldNeedsReview, v))
}

// NeedsReviewNEQ applies the NEQ predicate on the "needs_review" field.
func NeedsReviewNEQ(v bool) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldNEQ(FieldNeedsReview, v))
}

// ReviewReasonEQ applies the EQ predicate on the "review_reason" field.
func ReviewReasonEQ(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldEQ(FieldReviewReason, v))
}

// ReviewReasonNEQ applies the NEQ predicate on the "review_reason" field.
func ReviewReasonNEQ(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldNEQ(FieldReviewReason, v))
}

// ReviewReasonIn applies the In predicate on the "review_reason" field.
func ReviewReasonIn(vs ...string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldIn(FieldReviewReason, vs...))
}

// ReviewReasonNotIn applies the NotIn predicate on the "review_reason" field.
func ReviewReasonNotIn(vs ...string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldNotIn(FieldReviewReason, vs...))
}

// ReviewReasonGT applies the GT predicate on the "review_reason" field.
func ReviewReasonGT(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldGT(FieldReviewReason, v))
}

// ReviewReasonGTE applies the GTE predicate on the "review_reason" field.
func ReviewReasonGTE(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldGTE(FieldReviewReason, v))
}

// ReviewReasonLT applies the LT predicate on the "review_reason" field.
func ReviewReasonLT(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldLT(FieldReviewReason, v))
}

// ReviewReasonLTE applies the LTE predicate on the "review_reason" field.
func ReviewReasonLTE(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldLTE(FieldReviewReason, v))
}

// ReviewReasonContains applies the Contains predicate on the "review_reason" field.
func ReviewReasonContains(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldContains(FieldReviewReason, v))
}

// ReviewReasonHasPrefix applies the HasPrefix predicate on the "review_reason" field.
func ReviewReasonHasPrefix(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldHasPrefix(FieldReviewReason, v))
}

// ReviewReasonHasSuffix applies the HasSuffix predicate on the "review_reason" field.
func ReviewReasonHasSuffix(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldHasSuffix(FieldReviewReason, v))
}

// ReviewReasonIsNil applies the IsNil predicate on the "review_reason" field.
func ReviewReasonIsNil() predicate.EntityFact {
	return predicate.EntityFact(sql.FieldIsNull(FieldReviewReason))
}

// ReviewReasonNotNil applies the NotNil predicate on the "review_reason" field.
func ReviewReasonNotNil() predicate.EntityFact {
	return predicate.EntityFact(sql.FieldNotNull(FieldReviewReason))
}

// ReviewReasonEqualFold applies the EqualFold predicate on the "review_reason" field.
func ReviewReasonEqualFold(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldEqualFold(FieldReviewReason, v))
}

// ReviewReasonContainsFold applies the ContainsFold predicate on the "review_reason" field.
func ReviewReasonContainsFold(v string) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldContainsFold(FieldReviewReason, v))
}

// ConfirmationCountEQ applies the EQ predicate on the "confirmation_count" field.
func ConfirmationCountEQ(v int) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldEQ(FieldConfirmationCount, v))
}

// ConfirmationCountNEQ applies the NEQ predicate on the "confirmation_count" field.
func ConfirmationCountNEQ(v int) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldNEQ(FieldConfirmationCount, v))
}

// ConfirmationCountIn applies the In predicate on the "confirmation_count" field.
func ConfirmationCountIn(vs ...int) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldIn(FieldConfirmationCount, vs...))
}

// ConfirmationCountNotIn applies the NotIn predicate on the "confirmation_count" field.
func ConfirmationCountNotIn(vs ...int) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldNotIn(FieldConfirmationCount, vs...))
}

// ConfirmationCountGT applies the GT predicate on the "confirmation_count" field.
func ConfirmationCountGT(v int) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldGT(FieldConfirmationCount, v))
}

// ConfirmationCountGTE applies the GTE predicate on the "confirmation_count" field.
func ConfirmationCountGTE(v int) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldGTE(FieldConfirmationCount, v))
}

// ConfirmationCountLT applies the LT predicate on the "confirmation_count" field.
func ConfirmationCountLT(v int) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldLT(FieldConfirmationCount, v))
}

// ConfirmationCountLTE applies the LTE predicate on the "confirmation_count" field.
func ConfirmationCountLTE(v int) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldLTE(FieldConfirmationCount, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.EntityFact {
	return predicate.EntityFact(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.EntityFact {
	return predicate.EntityFact(sql.FieldNotNull(FieldMetadata))
}

// EmbeddingEQ applies the EQ predicate on the "embedding" field.
func EmbeddingEQ(v pgvector.Vector) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldEQ(FieldEmbedding, v))
}

// EmbeddingNEQ applies the NEQ predicate on the "embedding" field.
func EmbeddingNEQ(v pgvector.Vector) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldNEQ(FieldEmbedding, v))
}

// EmbeddingIn applies the In predicate on the "embedding" field.
func EmbeddingIn(vs ...pgvector.Vector) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldIn(FieldEmbedding, vs...))
}

// EmbeddingNotIn applies the NotIn predicate on the "embedding" field.
func EmbeddingNotIn(vs ...pgvector.Vector) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldNotIn(FieldEmbedding, vs...))
}

// EmbeddingGT applies the GT predicate on the "embedding" field.
func EmbeddingGT(v pgvector.Vector) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldGT(FieldEmbedding, v))
}

// EmbeddingGTE applies the GTE predicate on the "embedding" field.
func EmbeddingGTE(v pgvector.Vector) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldGTE(FieldEmbedding, v))
}

// EmbeddingLT applies the LT predicate on the "embedding" field.
func EmbeddingLT(v pgvector.Vector) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldLT(FieldEmbedding, v))
}

// EmbeddingLTE applies the LTE predicate on the "embedding" field.
func EmbeddingLTE(v pgvector.Vector) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldLTE(FieldEmbedding, v))
}

// EmbeddingIsNil applies the IsNil predicate on the "embedding" field.
func EmbeddingIsNil() predicate.EntityFact {
	return predicate.EntityFact(sql.FieldIsNull(FieldEmbedding))
}

// EmbeddingNotNil applies the NotNil predicate on the "embedding" field.
func EmbeddingNotNil() predicate.EntityFact {
	return predicate.EntityFact(sql.FieldNotNull(FieldEmbedding))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldLTE(FieldUpdatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.EntityFact {
	return predicate.EntityFact(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.EntityFact {
	return predicate.EntityFact(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.EntityFact {
	return predicate.EntityFact(sql.FieldNotNull(FieldDeletedAt))
}

// HasEntity applies the HasEdge predicate on the "entity" edge.
func HasEntity() predicate.EntityFact {
	return predicate.EntityFact(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, EntityTable, EntityColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEntityWith applies the HasEdge predicate on the "entity" edge with a given conditions (other predicates).
func HasEntityWith(preds ...predicate.Entity) predicate.EntityFact {
	return predicate.EntityFact(func(s *sql.Selector) {
		step := newEntityStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EntityFact) predicate.EntityFact {
	return predicate.EntityFact(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EntityFact) predicate.EntityFact {
	return predicate.EntityFact(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EntityFact) predicate.EntityFact {
	return predicate.EntityFact(sql.NotPredicates(p))
}
