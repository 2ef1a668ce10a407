// Code generated by ent, DO NOT EDIT.

package pendingapproval

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/memograph/memograph/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldContainsFold(FieldID, id))
}

// TargetID applies equality check predicate on the "target_id" field. It's identical to TargetIDEQ.
func TargetID(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldTargetID, v))
}

// BatchID applies equality check predicate on the "batch_id" field. It's identical to BatchIDEQ.
func BatchID(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldBatchID, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldConfidence, v))
}

// SourceQuote applies equality check predicate on the "source_quote" field. It's identical to SourceQuoteEQ.
func SourceQuote(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldSourceQuote, v))
}

// SourceInteractionID applies equality check predicate on the "source_interaction_id" field. It's identical to SourceInteractionIDEQ.
func SourceInteractionID(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldSourceInteractionID, v))
}

// SourceEntityID applies equality check predicate on the "source_entity_id" field. It's identical to SourceEntityIDEQ.
func SourceEntityID(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldSourceEntityID, v))
}

// Context applies equality check predicate on the "context" field. It's identical to ContextEQ.
func Context(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldContext, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldCreatedAt, v))
}

// ReviewedAt applies equality check predicate on the "reviewed_at" field. It's identical to ReviewedAtEQ.
func ReviewedAt(v time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldReviewedAt, v))
}

// ItemTypeEQ applies the EQ predicate on the "item_type" field.
func ItemTypeEQ(v ItemType) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldItemType, v))
}

// ItemTypeNEQ applies the NEQ predicate on the "item_type" field.
func ItemTypeNEQ(v ItemType) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNEQ(FieldItemType, v))
}

// ItemTypeIn applies the In predicate on the "item_type" field.
func ItemTypeIn(vs ...ItemType) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldIn(FieldItemType, vs...))
}

// ItemTypeNotIn applies the NotIn predicate on the "item_type" field.
func ItemTypeNotIn(vs ...ItemType) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNotIn(FieldItemType, vs...))
}

// TargetIDEQ applies the EQ predicate on the "target_id" field.
func TargetIDEQ(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldTargetID, v))
}

// TargetIDNEQ applies the NEQ predicate on the "target_id" field.
func TargetIDNEQ(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNEQ(FieldTargetID, v))
}

// TargetIDIn applies the In predicate on the "target_id" field.
func TargetIDIn(vs ...string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldIn(FieldTargetID, vs...))
}

// TargetIDNotIn applies the NotIn predicate on the "target_id" field.
func TargetIDNotIn(vs ...string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNotIn(FieldTargetID, vs...))
}

// TargetIDGT applies the GT predicate on the "target_id" field.
func TargetIDGT(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldGT(FieldTargetID, v))
}

// TargetIDGTE applies the GTE predicate on the "target_id" field.
func TargetIDGTE(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldGTE(FieldTargetID, v))
}

// TargetIDLT applies the LT predicate on the "target_id" field.
func TargetIDLT(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldLT(FieldTargetID, v))
}

// TargetIDLTE applies the LTE predicate on the "target_id" field.
func TargetIDLTE(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldLTE(FieldTargetID, v))
}

// TargetIDContains applies the Contains predicate on the "target_id" field.
func TargetIDContains(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldContains(FieldTargetID, v))
}

// TargetIDHasPrefix applies the HasPrefix predicate on the "target_id" field.
func TargetIDHasPrefix(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldHasPrefix(FieldTargetID, v))
}

// TargetIDHasSuffix applies the HasSuffix predicate on the "target_id" field.
func TargetIDHasSuffix(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldHasSuffix(FieldTargetID, v))
}

// TargetIDEqualFold applies the EqualFold predicate on the "target_id" field.
func TargetIDEqualFold(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEqualFold(FieldTargetID, v))
}

// TargetIDContainsFold applies the ContainsFold predicate on the "target_id" field.
func TargetIDContainsFold(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldContainsFold(FieldTargetID, v))
}

// BatchIDEQ applies the EQ predicate on the "batch_id" field.
func BatchIDEQ(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldBatchID, v))
}

// BatchIDNEQ applies the NEQ predicate on the "batch_id" field.
func BatchIDNEQ(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNEQ(FieldBatchID, v))
}

// BatchIDIn applies the In predicate on the "batch_id" field.
func BatchIDIn(vs ...string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldIn(FieldBatchID, vs...))
}

// BatchIDNotIn applies the NotIn predicate on the "batch_id" field.
func BatchIDNotIn(vs ...string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNotIn(FieldBatchID, vs...))
}

// BatchIDGT applies the GT predicate on the "batch_id" field.
func BatchIDGT(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldGT(FieldBatchID, v))
}

// BatchIDGTE applies the GTE predicate on the "batch_id" field.
func BatchIDGTE(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldGTE(FieldBatchID, v))
}

// BatchIDLT applies the LT predicate on the "batch_id" field.
func BatchIDLT(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldLT(FieldBatchID, v))
}

// BatchIDLTE applies the LTE predicate on the "batch_id" field.
func BatchIDLTE(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldLTE(FieldBatchID, v))
}

// BatchIDContains applies the Contains predicate on the "batch_id" field.
func BatchIDContains(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldContains(FieldBatchID, v))
}

// BatchIDHasPrefix applies the HasPrefix predicate on the "batch_id" field.
func BatchIDHasPrefix(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldHasPrefix(FieldBatchID, v))
}

// BatchIDHasSuffix applies the HasSuffix predicate on the "batch_id" field.
func BatchIDHasSuffix(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldHasSuffix(FieldBatchID, v))
}

// BatchIDEqualFold applies the EqualFold predicate on the "batch_id" field.
func BatchIDEqualFold(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEqualFold(FieldBatchID, v))
}

// BatchIDContainsFold applies the ContainsFold predicate on the "batch_id" field.
func BatchIDContainsFold(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldContainsFold(FieldBatchID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNotIn(FieldStatus, vs...))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldLTE(FieldConfidence, v))
}

// SourceQuoteEQ applies the EQ predicate on the "source_quote" field.
func SourceQuoteEQ(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldSourceQuote, v))
}

// SourceQuoteNEQ applies the NEQ predicate on the "source_quote" field.
func SourceQuoteNEQ(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNEQ(FieldSourceQuote, v))
}

// SourceQuoteIn applies the In predicate on the "source_quote" field.
func SourceQuoteIn(vs ...string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldIn(FieldSourceQuote, vs...))
}

// SourceQuoteNotIn applies the NotIn predicate on the "source_quote" field.
func SourceQuoteNotIn(vs ...string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNotIn(FieldSourceQuote, vs...))
}

// SourceQuoteGT applies the GT predicate on the "source_quote" field.
func SourceQuoteGT(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldGT(FieldSourceQuote, v))
}

// SourceQuoteGTE applies the GTE predicate on the "source_quote" field.
func SourceQuoteGTE(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldGTE(FieldSourceQuote, v))
}

// SourceQuoteLT applies the LT predicate on the "source_quote" field.
func SourceQuoteLT(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldLT(FieldSourceQuote, v))
}

// SourceQuoteLTE applies the LTE predicate on the "source_quote" field.
func SourceQuoteLTE(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldLTE(FieldSourceQuote, v))
}

// SourceQuoteContains applies the Contains predicate on the "source_quote" field.
func SourceQuoteContains(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldContains(FieldSourceQuote, v))
}

// SourceQuoteHasPrefix applies the HasPrefix predicate on the "source_quote" field.
func SourceQuoteHasPrefix(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldHasPrefix(FieldSourceQuote, v))
}

// SourceQuoteHasSuffix applies the HasSuffix predicate on the "source_quote" field.
func SourceQuoteHasSuffix(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldHasSuffix(FieldSourceQuote, v))
}

// SourceQuoteIsNil applies the IsNil predicate on the "source_quote" field.
func SourceQuoteIsNil() predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldIsNull(FieldSourceQuote))
}

// SourceQuoteNotNil applies the NotNil predicate on the "source_quote" field.
func SourceQuoteNotNil() predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNotNull(FieldSourceQuote))
}

// SourceQuoteEqualFold applies the EqualFold predicate on the "source_quote" field.
func SourceQuoteEqualFold(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEqualFold(FieldSourceQuote, v))
}

// SourceQuoteContainsFold applies the ContainsFold predicate on the "source_quote" field.
func SourceQuoteContainsFold(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldContainsFold(FieldSourceQuote, v))
}

// SourceInteractionIDEQ applies the EQ predicate on the "source_interaction_id" field.
func SourceInteractionIDEQ(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldSourceInteractionID, v))
}

// SourceInteractionIDNEQ applies the NEQ predicate on the "source_interaction_id" field.
func SourceInteractionIDNEQ(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNEQ(FieldSourceInteractionID, v))
}

// SourceInteractionIDIn applies the In predicate on the "source_interaction_id" field.
func SourceInteractionIDIn(vs ...string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldIn(FieldSourceInteractionID, vs...))
}

// SourceInteractionIDNotIn applies the NotIn predicate on the "source_interaction_id" field.
func SourceInteractionIDNotIn(vs ...string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNotIn(FieldSourceInteractionID, vs...))
}

// SourceInteractionIDGT applies the GT predicate on the "source_interaction_id" field.
func SourceInteractionIDGT(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldGT(FieldSourceInteractionID, v))
}

// SourceInteractionIDGTE applies the GTE predicate on the "source_interaction_id" field.
func SourceInteractionIDGTE(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldGTE(FieldSourceInteractionID, v))
}

// SourceInteractionIDLT applies the LT predicate on the "source_interaction_id" field.
func SourceInteractionIDLT(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldLT(FieldSourceInteractionID, v))
}

// SourceInteractionIDLTE applies the LTE predicate on the "source_interaction_id" field.
func SourceInteractionIDLTE(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldLTE(FieldSourceInteractionID, v))
}

// SourceInteractionIDContains applies the Contains predicate on the "source_interaction_id" field.
func SourceInteractionIDContains(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldContains(FieldSourceInteractionID, v))
}

// SourceInteractionIDHasPrefix applies the HasPrefix predicate on the "source_interaction_id" field.
func SourceInteractionIDHasPrefix(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldHasPrefix(FieldSourceInteractionID, v))
}

// SourceInteractionIDHasSuffix applies the HasSuffix predicate on the "source_interaction_id" field.
func SourceInteractionIDHasSuffix(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldHasSuffix(FieldSourceInteractionID, v))
}

// SourceInteractionIDIsNil applies the IsNil predicate on the "source_interaction_id" field.
func SourceInteractionIDIsNil() predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldIsNull(FieldSourceInteractionID))
}

// SourceInteractionIDNotNil applies the NotNil predicate on the "source_interaction_id" field.
func SourceInteractionIDNotNil() predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNotNull(FieldSourceInteractionID))
}

// SourceInteractionIDEqualFold applies the EqualFold predicate on the "source_interaction_id" field.
func SourceInteractionIDEqualFold(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEqualFold(FieldSourceInteractionID, v))
}

// SourceInteractionIDContainsFold applies the ContainsFold predicate on the "source_interaction_id" field.
func SourceInteractionIDContainsFold(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldContainsFold(FieldSourceInteractionID, v))
}

// SourceEntityIDEQ applies the EQ predicate on the "source_entity_id" field.
func SourceEntityIDEQ(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldSourceEntityID, v))
}

// SourceEntityIDNEQ applies the NEQ predicate on the "source_entity_id" field.
func SourceEntityIDNEQ(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNEQ(FieldSourceEntityID, v))
}

// SourceEntityIDIn applies the In predicate on the "source_entity_id" field.
func SourceEntityIDIn(vs ...string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldIn(FieldSourceEntityID, vs...))
}

// SourceEntityIDNotIn applies the NotIn predicate on the "source_entity_id" field.
func SourceEntityIDNotIn(vs ...string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNotIn(FieldSourceEntityID, vs...))
}

// SourceEntityIDGT applies the GT predicate on the "source_entity_id" field.
func SourceEntityIDGT(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldGT(FieldSourceEntityID, v))
}

// SourceEntityIDGTE applies the GTE predicate on the "source_entity_id" field.
func SourceEntityIDGTE(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldGTE(FieldSourceEntityID, v))
}

// SourceEntityIDLT applies the LT predicate on the "source_entity_id" field.
func SourceEntityIDLT(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldLT(FieldSourceEntityID, v))
}

// SourceEntityIDLTE applies the LTE predicate on the "source_entity_id" field.
func SourceEntityIDLTE(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldLTE(FieldSourceEntityID, v))
}

// SourceEntityIDContains applies the Contains predicate on the "source_entity_id" field.
func SourceEntityIDContains(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldContains(FieldSourceEntityID, v))
}

// SourceEntityIDHasPrefix applies the HasPrefix predicate on the "source_entity_id" field.
func SourceEntityIDHasPrefix(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldHasPrefix(FieldSourceEntityID, v))
}

// SourceEntityIDHasSuffix applies the HasSuffix predicate on the "source_entity_id" field.
func SourceEntityIDHasSuffix(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldHasSuffix(FieldSourceEntityID, v))
}

// SourceEntityIDIsNil applies the IsNil predicate on the "source_entity_id" field.
func SourceEntityIDIsNil() predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldIsNull(FieldSourceEntityID))
}

// SourceEntityIDNotNil applies the NotNil predicate on the "source_entity_id" field.
func SourceEntityIDNotNil() predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNotNull(FieldSourceEntityID))
}

// SourceEntityIDEqualFold applies the EqualFold predicate on the "source_entity_id" field.
func SourceEntityIDEqualFold(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEqualFold(FieldSourceEntityID, v))
}

// SourceEntityIDContainsFold applies the ContainsFold predicate on the "source_entity_id" field.
func SourceEntityIDContainsFold(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldContainsFold(FieldSourceEntityID, v))
}

// ContextEQ applies the EQ predicate on the "context" field.
func ContextEQ(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldContext, v))
}

// ContextNEQ applies the NEQ predicate on the "context" field.
func ContextNEQ(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNEQ(FieldContext, v))
}

// ContextIn applies the In predicate on the "context" field.
func ContextIn(vs ...string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldIn(FieldContext, vs...))
}

// ContextNotIn applies the NotIn predicate on the "context" field.
func ContextNotIn(vs ...string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNotIn(FieldContext, vs...))
}

// ContextGT applies the GT predicate on the "context" field.
func ContextGT(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldGT(FieldContext, v))
}

// ContextGTE applies the GTE predicate on the "context" field.
func ContextGTE(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldGTE(FieldContext, v))
}

// ContextLT applies the LT predicate on the "context" field.
func ContextLT(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldLT(FieldContext, v))
}

// ContextLTE applies the LTE predicate on the "context" field.
func ContextLTE(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldLTE(FieldContext, v))
}

// ContextContains applies the Contains predicate on the "context" field.
func ContextContains(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldContains(FieldContext, v))
}

// ContextHasPrefix applies the HasPrefix predicate on the "context" field.
func ContextHasPrefix(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldHasPrefix(FieldContext, v))
}

// ContextHasSuffix applies the HasSuffix predicate on the "context" field.
func ContextHasSuffix(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldHasSuffix(FieldContext, v))
}

// ContextIsNil applies the IsNil predicate on the "context" field.
func ContextIsNil() predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldIsNull(FieldContext))
}

// ContextNotNil applies the NotNil predicate on the "context" field.
func ContextNotNil() predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNotNull(FieldContext))
}

// ContextEqualFold applies the EqualFold predicate on the "context" field.
func ContextEqualFold(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEqualFold(FieldContext, v))
}

// ContextContainsFold applies the ContainsFold predicate on the "context" field.
func ContextContainsFold(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldContainsFold(FieldContext, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldLTE(FieldCreatedAt, v))
}

// ReviewedAtEQ applies the EQ predicate on the "reviewed_at" field.
func ReviewedAtEQ(v time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldReviewedAt, v))
}

// ReviewedAtNEQ applies the NEQ predicate on the "reviewed_at" field.
func ReviewedAtNEQ(v time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNEQ(FieldReviewedAt, v))
}

// ReviewedAtIn applies the In predicate on the "reviewed_at" field.
func ReviewedAtIn(vs ...time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldIn(FieldReviewedAt, vs...))
}

// ReviewedAtNotIn applies the NotIn predicate on the "reviewed_at" field.
func ReviewedAtNotIn(vs ...time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNotIn(FieldReviewedAt, vs...))
}

// ReviewedAtGT applies the GT predicate on the "reviewed_at" field.
func ReviewedAtGT(v time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldGT(FieldReviewedAt, v))
}

// ReviewedAtGTE applies the GTE predicate on the "reviewed_at" field.
func ReviewedAtGTE(v time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldGTE(FieldReviewedAt, v))
}

// ReviewedAtLT applies the LT predicate on the "reviewed_at" field.
func ReviewedAtLT(v time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldLT(FieldReviewedAt, v))
}

// ReviewedAtLTE applies the LTE predicate on the "reviewed_at" field.
func ReviewedAtLTE(v time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldLTE(FieldReviewedAt, v))
}

// ReviewedAtIsNil applies the IsNil predicate on the "reviewed_at" field.
func ReviewedAtIsNil() predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldIsNull(FieldReviewedAt))
}

// ReviewedAtNotNil applies the NotNil predicate on the "reviewed_at" field.
func ReviewedAtNotNil() predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNotNull(FieldReviewedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PendingApproval) predicate.PendingApproval {
	return predicate.PendingApproval(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PendingApproval) predicate.PendingApproval {
	return predicate.PendingApproval(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PendingApproval) predicate.PendingApproval {
	return predicate.PendingApproval(sql.NotPredicates(p))
}
