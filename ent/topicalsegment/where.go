// Code generated by ent, DO NOT EDIT.

package topicalsegment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/memograph/memograph/ent/predicate"
	pgvector "github.com/pgvector/pgvector-go"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldContainsFold(FieldID, id))
}

// ChatID applies equality check predicate on the "chat_id" field. It's identical to ChatIDEQ.
func ChatID(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldEQ(FieldChatID, v))
}

// InteractionID applies equality check predicate on the "interaction_id" field. It's identical to InteractionIDEQ.
func InteractionID(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldEQ(FieldInteractionID, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldEQ(FieldTopic, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldEQ(FieldSummary, v))
}

// PrimaryParticipantID applies equality check predicate on the "primary_participant_id" field. It's identical to PrimaryParticipantIDEQ.
func PrimaryParticipantID(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldEQ(FieldPrimaryParticipantID, v))
}

// MessageCount applies equality check predicate on the "message_count" field. It's identical to MessageCountEQ.
func MessageCount(v int) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldEQ(FieldMessageCount, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldEQ(FieldStartedAt, v))
}

// EndedAt applies equality check predicate on the "ended_at" field. It's identical to EndedAtEQ.
func EndedAt(v time.Time) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldEQ(FieldEndedAt, v))
}

// ExtractionError applies equality check predicate on the "extraction_error" field. It's identical to ExtractionErrorEQ.
func ExtractionError(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldEQ(FieldExtractionError, v))
}

// ExtractionAttempts applies equality check predicate on the "extraction_attempts" field. It's identical to ExtractionAttemptsEQ.
func ExtractionAttempts(v int) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldEQ(FieldExtractionAttempts, v))
}

// NextExtractionAt applies equality check predicate on the "next_extraction_at" field. It's identical to NextExtractionAtEQ.
func NextExtractionAt(v time.Time) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldEQ(FieldNextExtractionAt, v))
}

// BatchID applies equality check predicate on the "batch_id" field. It's identical to BatchIDEQ.
func BatchID(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldEQ(FieldBatchID, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldEQ(FieldConfidence, v))
}

// Embedding applies equality check predicate on the "embedding" field. It's identical to EmbeddingEQ.
func Embedding(v pgvector.Vector) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldEQ(FieldEmbedding, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldEQ(FieldUpdatedAt, v))
}

// ChatIDEQ applies the EQ predicate on the "chat_id" field.
func ChatIDEQ(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldEQ(FieldChatID, v))
}

// ChatIDNEQ applies the NEQ predicate on the "chat_id" field.
func ChatIDNEQ(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldNEQ(FieldChatID, v))
}

// ChatIDIn applies the In predicate on the "chat_id" field.
func ChatIDIn(vs ...string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldIn(FieldChatID, vs...))
}

// ChatIDNotIn applies the NotIn predicate on the "chat_id" field.
func ChatIDNotIn(vs ...string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldNotIn(FieldChatID, vs...))
}

// ChatIDGT applies the GT predicate on the "chat_id" field.
func ChatIDGT(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldGT(FieldChatID, v))
}

// ChatIDGTE applies the GTE predicate on the "chat_id" field.
func ChatIDGTE(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldGTE(FieldChatID, v))
}

// ChatIDLT applies the LT predicate on the "chat_id" field.
func ChatIDLT(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldLT(FieldChatID, v))
}

// ChatIDLTE applies the LTE predicate on the "chat_id" field.
func ChatIDLTE(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldLTE(FieldChatID, v))
}

// ChatIDContains applies the Contains predicate on the "chat_id" field.
func ChatIDContains(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldContains(FieldChatID, v))
}

// ChatIDHasPrefix applies the HasPrefix predicate on the "chat_id" field.
func ChatIDHasPrefix(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldHasPrefix(FieldChatID, v))
}

// ChatIDHasSuffix applies the HasSuffix predicate on the "chat_id" field.
func ChatIDHasSuffix(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldHasSuffix(FieldChatID, v))
}

// ChatIDEqualFold applies the EqualFold predicate on the "chat_id" field.
func ChatIDEqualFold(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldEqualFold(FieldChatID, v))
}

// ChatIDContainsFold applies the ContainsFold predicate on the "chat_id" field.
func ChatIDContainsFold(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldContainsFold(FieldChatID, v))
}

// InteractionIDEQ applies the EQ predicate on the "interaction_id" field.
func InteractionIDEQ(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldEQ(FieldInteractionID, v))
}

// InteractionIDNEQ applies the NEQ predicate on the "interaction_id" field.
func InteractionIDNEQ(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldNEQ(FieldInteractionID, v))
}

// InteractionIDIn applies the In predicate on the "interaction_id" field.
func InteractionIDIn(vs ...string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldIn(FieldInteractionID, vs...))
}

// InteractionIDNotIn applies the NotIn predicate on the "interaction_id" field.
func InteractionIDNotIn(vs ...string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldNotIn(FieldInteractionID, vs...))
}

// InteractionIDGT applies the GT predicate on the "interaction_id" field.
func InteractionIDGT(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldGT(FieldInteractionID, v))
}

// InteractionIDGTE applies the GTE predicate on the "interaction_id" field.
func InteractionIDGTE(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldGTE(FieldInteractionID, v))
}

// InteractionIDLT applies the LT predicate on the "interaction_id" field.
func InteractionIDLT(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldLT(FieldInteractionID, v))
}

// InteractionIDLTE applies the LTE predicate on the "interaction_id" field.
func InteractionIDLTE(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldLTE(FieldInteractionID, v))
}

// InteractionIDContains applies the Contains predicate on the "interaction_id" field.
func InteractionIDContains(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldContains(FieldInteractionID, v))
}

// InteractionIDHasPrefix applies the HasPrefix predicate on the "interaction_id" field.
func InteractionIDHasPrefix(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldHasPrefix(FieldInteractionID, v))
}

// InteractionIDHasSuffix applies the HasSuffix predicate on the "interaction_id" field.
func InteractionIDHasSuffix(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldHasSuffix(FieldInteractionID, v))
}

// InteractionIDIsNil applies the IsNil predicate on the "interaction_id" field.
func InteractionIDIsNil() predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldIsNull(FieldInteractionID))
}

// InteractionIDNotNil applies the NotNil predicate on the "interaction_id" field.
func InteractionIDNotNil() predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldNotNull(FieldInteractionID))
}

// InteractionIDEqualFold applies the EqualFold predicate on the "interaction_id" field.
func InteractionIDEqualFold(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldEqualFold(FieldInteractionID, v))
}

// InteractionIDContainsFold applies the ContainsFold predicate on the "interaction_id" field.
func InteractionIDContainsFold(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldContainsFold(FieldInteractionID, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldContainsFold(FieldTopic, v))
}

// KeywordsIsNil applies the IsNil predicate on the "keywords" field.
func KeywordsIsNil() predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldIsNull(FieldKeywords))
}

// KeywordsNotNil applies the NotNil predicate on the "keywords" field.
func KeywordsNotNil() predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldNotNull(FieldKeywords))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryIsNil applies the IsNil predicate on the "summary" field.
func SummaryIsNil() predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldIsNull(FieldSummary))
}

// SummaryNotNil applies the NotNil predicate on the "summary" field.
func SummaryNotNil() predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldNotNull(FieldSummary))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldContainsFold(FieldSummary, v))
}

// ParticipantIdsIsNil applies the IsNil predicate on the "participant_ids" field.
func ParticipantIdsIsNil() predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldIsNull(FieldParticipantIds))
}

// ParticipantIdsNotNil applies the NotNil predicate on the "participant_ids" field.
func ParticipantIdsNotNil() predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldNotNull(FieldParticipantIds))
}

// PrimaryParticipantIDEQ applies the EQ predicate on the "primary_participant_id" field.
func PrimaryParticipantIDEQ(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldEQ(FieldPrimaryParticipantID, v))
}

// PrimaryParticipantIDNEQ applies the NEQ predicate on the "primary_participant_id" field.
func PrimaryParticipantIDNEQ(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldNEQ(FieldPrimaryParticipantID, v))
}

// PrimaryParticipantIDIn applies the In predicate on the "primary_participant_id" field.
func PrimaryParticipantIDIn(vs ...string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldIn(FieldPrimaryParticipantID, vs...))
}

// PrimaryParticipantIDNotIn applies the NotIn predicate on the "primary_participant_id" field.
func PrimaryParticipantIDNotIn(vs ...string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldNotIn(FieldPrimaryParticipantID, vs...))
}

// PrimaryParticipantIDGT applies the GT predicate on the "primary_participant_id" field.
func PrimaryParticipantIDGT(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldGT(FieldPrimaryParticipantID, v))
}

// PrimaryParticipantIDGTE applies the GTE predicate on the "primary_participant_id" field.
func PrimaryParticipantIDGTE(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldGTE(FieldPrimaryParticipantID, v))
}

// PrimaryParticipantIDLT applies the LT predicate on the "primary_participant_id" field.
func PrimaryParticipantIDLT(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldLT(FieldPrimaryParticipantID, v))
}

// PrimaryParticipantIDLTE applies the LTE predicate on the "primary_participant_id" field.
func PrimaryParticipantIDLTE(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldLTE(FieldPrimaryParticipantID, v))
}

// PrimaryParticipantIDContains applies the Contains predicate on the "primary_participant_id" field.
func PrimaryParticipantIDContains(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldContains(FieldPrimaryParticipantID, v))
}

// PrimaryParticipantIDHasPrefix applies the HasPrefix predicate on the "primary_participant_id" field.
func PrimaryParticipantIDHasPrefix(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldHasPrefix(FieldPrimaryParticipantID, v))
}

// PrimaryParticipantIDHasSuffix applies the HasSuffix predicate on the "primary_participant_id" field.
func PrimaryParticipantIDHasSuffix(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldHasSuffix(FieldPrimaryParticipantID, v))
}

// PrimaryParticipantIDIsNil applies the IsNil predicate on the "primary_participant_id" field.
func PrimaryParticipantIDIsNil() predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldIsNull(FieldPrimaryParticipantID))
}

// PrimaryParticipantIDNotNil applies the NotNil predicate on the "primary_participant_id" field.
func PrimaryParticipantIDNotNil() predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldNotNull(FieldPrimaryParticipantID))
}

// PrimaryParticipantIDEqualFold applies the EqualFold predicate on the "primary_participant_id" field.
func PrimaryParticipantIDEqualFold(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldEqualFold(FieldPrimaryParticipantID, v))
}

// PrimaryParticipantIDContainsFold applies the ContainsFold predicate on the "primary_participant_id" field.
func PrimaryParticipantIDContainsFold(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldContainsFold(FieldPrimaryParticipantID, v))
}

// MessageCountEQ applies the EQ predicate on the "message_count" field.
func MessageCountEQ(v int) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldEQ(FieldMessageCount, v))
}

// MessageCountNEQ applies the NEQ predicate on the "message_count" field.
func MessageCountNEQ(v int) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldNEQ(FieldMessageCount, v))
}

// MessageCountIn applies the In predicate on the "message_count" field.
func MessageCountIn(vs ...int) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldIn(FieldMessageCount, vs...))
}

// MessageCountNotIn applies the NotIn predicate on the "message_count" field.
func MessageCountNotIn(vs ...int) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldNotIn(FieldMessageCount, vs...))
}

// MessageCountGT applies the GT predicate on the "message_count" field.
func MessageCountGT(v int) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldGT(FieldMessageCount, v))
}

// MessageCountGTE applies the GTE predicate on the "message_count" field.
func MessageCountGTE(v int) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldGTE(FieldMessageCount, v))
}

// MessageCountLT applies the LT predicate on the "message_count" field.
func MessageCountLT(v int) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldLT(FieldMessageCount, v))
}

// MessageCountLTE applies the LTE predicate on the "message_count" field.
func MessageCountLTE(v int) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldLTE(FieldMessageCount, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldLTE(FieldStartedAt, v))
}

// EndedAtEQ applies the EQ predicate on the "ended_at" field.
func EndedAtEQ(v time.Time) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldEQ(FieldEndedAt, v))
}

// EndedAtNEQ applies the NEQ predicate on the "ended_at" field.
func EndedAtNEQ(v time.Time) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldNEQ(FieldEndedAt, v))
}

// EndedAtIn applies the In predicate on the "ended_at" field.
func EndedAtIn(vs ...time.Time) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldIn(FieldEndedAt, vs...))
}

// EndedAtNotIn applies the NotIn predicate on the "ended_at" field.
func EndedAtNotIn(vs ...time.Time) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldNotIn(FieldEndedAt, vs...))
}

// EndedAtGT applies the GT predicate on the "ended_at" field.
func EndedAtGT(v time.Time) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldGT(FieldEndedAt, v))
}

// EndedAtGTE applies the GTE predicate on the "ended_at" field.
func EndedAtGTE(v time.Time) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldGTE(FieldEndedAt, v))
}

// EndedAtLT applies the LT predicate on the "ended_at" field.
func EndedAtLT(v time.Time) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldLT(FieldEndedAt, v))
}

// EndedAtLTE applies the LTE predicate on the "ended_at" field.
func EndedAtLTE(v time.Time) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldLTE(FieldEndedAt, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldNotIn(FieldStatus, vs...))
}

// ExtractionStatusEQ applies the EQ predicate on the "extraction_status" field.
func ExtractionStatusEQ(v ExtractionStatus) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldEQ(FieldExtractionStatus, v))
}

// ExtractionStatusNEQ applies the NEQ predicate on the "extraction_status" field.
func ExtractionStatusNEQ(v ExtractionStatus) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldNEQ(FieldExtractionStatus, v))
}

// ExtractionStatusIn applies the In predicate on the "extraction_status" field.
func ExtractionStatusIn(vs ...ExtractionStatus) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldIn(FieldExtractionStatus, vs...))
}

// ExtractionStatusNotIn applies the NotIn predicate on the "extraction_status" field.
func ExtractionStatusNotIn(vs ...ExtractionStatus) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldNotIn(FieldExtractionStatus, vs...))
}

// ExtractionErrorEQ applies the EQ predicate on the "extraction_error" field.
func ExtractionErrorEQ(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldEQ(FieldExtractionError, v))
}

// ExtractionErrorNEQ applies the NEQ predicate on the "extraction_error" field.
func ExtractionErrorNEQ(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldNEQ(FieldExtractionError, v))
}

// ExtractionErrorIn applies the In predicate on the "extraction_error" field.
func ExtractionErrorIn(vs ...string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldIn(FieldExtractionError, vs...))
}

// ExtractionErrorNotIn applies the NotIn predicate on the "extraction_error" field.
func ExtractionErrorNotIn(vs ...string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldNotIn(FieldExtractionError, vs...))
}

// ExtractionErrorGT applies the GT predicate on the "extraction_error" field.
func ExtractionErrorGT(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldGT(FieldExtractionError, v))
}

// ExtractionErrorGTE applies the GTE predicate on the "extraction_error" field.
func ExtractionErrorGTE(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldGTE(FieldExtractionError, v))
}

// ExtractionErrorLT applies the LT predicate on the "extraction_error" field.
func ExtractionErrorLT(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldLT(FieldExtractionError, v))
}

// ExtractionErrorLTE applies the LTE predicate on the "extraction_error" field.
func ExtractionErrorLTE(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldLTE(FieldExtractionError, v))
}

// ExtractionErrorContains applies the Contains predicate on the "extraction_error" field.
func ExtractionErrorContains(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldContains(FieldExtractionError, v))
}

// ExtractionErrorHasPrefix applies the HasPrefix predicate on the "extraction_error" field.
func ExtractionErrorHasPrefix(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldHasPrefix(FieldExtractionError, v))
}

// ExtractionErrorHasSuffix applies the HasSuffix predicate on the "extraction_error" field.
func ExtractionErrorHasSuffix(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldHasSuffix(FieldExtractionError, v))
}

// ExtractionErrorIsNil applies the IsNil predicate on the "extraction_error" field.
func ExtractionErrorIsNil() predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldIsNull(FieldExtractionError))
}

// ExtractionErrorNotNil applies the NotNil predicate on the "extraction_error" field.
func ExtractionErrorNotNil() predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldNotNull(FieldExtractionError))
}

// ExtractionErrorEqualFold applies the EqualFold predicate on the "extraction_error" field.
func ExtractionErrorEqualFold(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldEqualFold(FieldExtractionError, v))
}

// ExtractionErrorContainsFold applies the ContainsFold predicate on the "extraction_error" field.
func ExtractionErrorContainsFold(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldContainsFold(FieldExtractionError, v))
}

// ExtractionAttemptsEQ applies the EQ predicate on the "extraction_attempts" field.
func ExtractionAttemptsEQ(v int) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldEQ(FieldExtractionAttempts, v))
}

// ExtractionAttemptsNEQ applies the NEQ predicate on the "extraction_attempts" field.
func ExtractionAttemptsNEQ(v int) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldNEQ(FieldExtractionAttempts, v))
}

// ExtractionAttemptsIn applies the In predicate on the "extraction_attempts" field.
func ExtractionAttemptsIn(vs ...int) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldIn(FieldExtractionAttempts, vs...))
}

// ExtractionAttemptsNotIn applies the NotIn predicate on the "extraction_attempts" field.
func ExtractionAttemptsNotIn(vs ...int) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldNotIn(FieldExtractionAttempts, vs...))
}

// ExtractionAttemptsGT applies the GT predicate on the "extraction_attempts" field.
func ExtractionAttemptsGT(v int) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldGT(FieldExtractionAttempts, v))
}

// ExtractionAttemptsGTE applies the GTE predicate on the "extraction_attempts" field.
func ExtractionAttemptsGTE(v int) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldGTE(FieldExtractionAttempts, v))
}

// ExtractionAttemptsLT applies the LT predicate on the "extraction_attempts" field.
func ExtractionAttemptsLT(v int) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldLT(FieldExtractionAttempts, v))
}

// ExtractionAttemptsLTE applies the LTE predicate on the "extraction_attempts" field.
func ExtractionAttemptsLTE(v int) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldLTE(FieldExtractionAttempts, v))
}

// NextExtractionAtEQ applies the EQ predicate on the "next_extraction_at" field.
func NextExtractionAtEQ(v time.Time) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldEQ(FieldNextExtractionAt, v))
}

// NextExtractionAtNEQ applies the NEQ predicate on the "next_extraction_at" field.
func NextExtractionAtNEQ(v time.Time) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldNEQ(FieldNextExtractionAt, v))
}

// NextExtractionAtIn applies the In predicate on the "next_extraction_at" field.
func NextExtractionAtIn(vs ...time.Time) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldIn(FieldNextExtractionAt, vs...))
}

// NextExtractionAtNotIn applies the NotIn predicate on the "next_extraction_at" field.
func NextExtractionAtNotIn(vs ...time.Time) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldNotIn(FieldNextExtractionAt, vs...))
}

// NextExtractionAtGT applies the GT predicate on the "next_extraction_at" field.
func NextExtractionAtGT(v time.Time) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldGT(FieldNextExtractionAt, v))
}

// NextExtractionAtGTE applies the GTE predicate on the "next_extraction_at" field.
func NextExtractionAtGTE(v time.Time) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldGTE(FieldNextExtractionAt, v))
}

// NextExtractionAtLT applies the LT predicate on the "next_extraction_at" field.
func NextExtractionAtLT(v time.Time) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldLT(FieldNextExtractionAt, v))
}

// NextExtractionAtLTE applies the LTE predicate on the "next_extraction_at" field.
func NextExtractionAtLTE(v time.Time) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldLTE(FieldNextExtractionAt, v))
}

// NextExtractionAtIsNil applies the IsNil predicate on the "next_extraction_at" field.
func NextExtractionAtIsNil() predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldIsNull(FieldNextExtractionAt))
}

// NextExtractionAtNotNil applies the NotNil predicate on the "next_extraction_at" field.
func NextExtractionAtNotNil() predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldNotNull(FieldNextExtractionAt))
}

// BatchIDEQ applies the EQ predicate on the "batch_id" field.
func BatchIDEQ(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldEQ(FieldBatchID, v))
}

// BatchIDNEQ applies the NEQ predicate on the "batch_id" field.
func BatchIDNEQ(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldNEQ(FieldBatchID, v))
}

// BatchIDIn applies the In predicate on the "batch_id" field.
func BatchIDIn(vs ...string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldIn(FieldBatchID, vs...))
}

// BatchIDNotIn applies the NotIn predicate on the "batch_id" field.
func BatchIDNotIn(vs ...string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldNotIn(FieldBatchID, vs...))
}

// BatchIDGT applies the GT predicate on the "batch_id" field.
func BatchIDGT(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldGT(FieldBatchID, v))
}

// BatchIDGTE applies the GTE predicate on the "batch_id" field.
func BatchIDGTE(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldGTE(FieldBatchID, v))
}

// BatchIDLT applies the LT predicate on the "batch_id" field.
func BatchIDLT(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldLT(FieldBatchID, v))
}

// BatchIDLTE applies the LTE predicate on the "batch_id" field.
func BatchIDLTE(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldLTE(FieldBatchID, v))
}

// BatchIDContains applies the Contains predicate on the "batch_id" field.
func BatchIDContains(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldContains(FieldBatchID, v))
}

// BatchIDHasPrefix applies the HasPrefix predicate on the "batch_id" field.
func BatchIDHasPrefix(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldHasPrefix(FieldBatchID, v))
}

// BatchIDHasSuffix applies the HasSuffix predicate on the "batch_id" field.
func BatchIDHasSuffix(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldHasSuffix(FieldBatchID, v))
}

// BatchIDIsNil applies the IsNil predicate on the "batch_id" field.
func BatchIDIsNil() predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldIsNull(FieldBatchID))
}

// BatchIDNotNil applies the NotNil predicate on the "batch_id" field.
func BatchIDNotNil() predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldNotNull(FieldBatchID))
}

// BatchIDEqualFold applies the EqualFold predicate on the "batch_id" field.
func BatchIDEqualFold(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldEqualFold(FieldBatchID, v))
}

// BatchIDContainsFold applies the ContainsFold predicate on the "batch_id" field.
func BatchIDContainsFold(v string) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldContainsFold(FieldBatchID, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldLTE(FieldConfidence, v))
}

// RelatedSegmentIdsIsNil applies the IsNil predicate on the "related_segment_ids" field.
func RelatedSegmentIdsIsNil() predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldIsNull(FieldRelatedSegmentIds))
}

// RelatedSegmentIdsNotNil applies the NotNil predicate on the "related_segment_ids" field.
func RelatedSegmentIdsNotNil() predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldNotNull(FieldRelatedSegmentIds))
}

// ExtractedItemIdsIsNil applies the IsNil predicate on the "extracted_item_ids" field.
func ExtractedItemIdsIsNil() predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldIsNull(FieldExtractedItemIds))
}

// ExtractedItemIdsNotNil applies the NotNil predicate on the "extracted_item_ids" field.
func ExtractedItemIdsNotNil() predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldNotNull(FieldExtractedItemIds))
}

// EmbeddingEQ applies the EQ predicate on the "embedding" field.
func EmbeddingEQ(v pgvector.Vector) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldEQ(FieldEmbedding, v))
}

// EmbeddingNEQ applies the NEQ predicate on the "embedding" field.
func EmbeddingNEQ(v pgvector.Vector) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldNEQ(FieldEmbedding, v))
}

// EmbeddingIn applies the In predicate on the "embedding" field.
func EmbeddingIn(vs ...pgvector.Vector) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldIn(FieldEmbedding, vs...))
}

// EmbeddingNotIn applies the NotIn predicate on the "embedding" field.
func EmbeddingNotIn(vs ...pgvector.Vector) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldNotIn(FieldEmbedding, vs...))
}

// EmbeddingGT applies the GT predicate on the "embedding" field.
func EmbeddingGT(v pgvector.Vector) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldGT(FieldEmbedding, v))
}

// EmbeddingGTE applies the GTE predicate on the "embedding" field.
func EmbeddingGTE(v pgvector.Vector) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldGTE(FieldEmbedding, v))
}

// EmbeddingLT applies the LT predicate on the "embedding" field.
func EmbeddingLT(v pgvector.Vector) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldLT(FieldEmbedding, v))
}

// EmbeddingLTE applies the LTE predicate on the "embedding" field.
func EmbeddingLTE(v pgvector.Vector) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldLTE(FieldEmbedding, v))
}

// EmbeddingIsNil applies the IsNil predicate on the "embedding" field.
func EmbeddingIsNil() predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldIsNull(FieldEmbedding))
}

// EmbeddingNotNil applies the NotNil predicate on the "embedding" field.
func EmbeddingNotNil() predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldNotNull(FieldEmbedding))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasInteraction applies the HasEdge predicate on the "interaction" edge.
func HasInteraction() predicate.TopicalSegment {
	return predicate.TopicalSegment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, InteractionTable, InteractionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInteractionWith applies the HasEdge predicate on the "interaction" edge with a given conditions (other predicates).
func HasInteractionWith(preds ...predicate.Interaction) predicate.TopicalSegment {
	return predicate.TopicalSegment(func(s *sql.Selector) {
		step := newInteractionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMessages applies the HasEdge predicate on the "messages" edge.
func HasMessages() predicate.TopicalSegment {
	return predicate.TopicalSegment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, MessagesTable, MessagesPrimaryKey...),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMessagesWith applies the HasEdge predicate on the "messages" edge with a given conditions (other predicates).
func HasMessagesWith(preds ...predicate.Message) predicate.TopicalSegment {
	return predicate.TopicalSegment(func(s *sql.Selector) {
		step := newMessagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TopicalSegment) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TopicalSegment) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TopicalSegment) predicate.TopicalSegment {
	return predicate.TopicalSegment(sql.NotPredicates(p))
}
