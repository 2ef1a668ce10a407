// Code generated by ent, DO NOT EDIT.

package message

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/memograph/memograph/ent/predicate"
	pgvector "github.com/pgvector/pgvector-go"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldID, id))
}

// InteractionID applies equality check predicate on the "interaction_id" field. It's identical to InteractionIDEQ.
func InteractionID(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldInteractionID, v))
}

// SenderEntityID applies equality check predicate on the "sender_entity_id" field. It's identical to SenderEntityIDEQ.
func SenderEntityID(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldSenderEntityID, v))
}

// RecipientEntityID applies equality check predicate on the "recipient_entity_id" field. It's identical to RecipientEntityIDEQ.
func RecipientEntityID(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldRecipientEntityID, v))
}

// SenderIdentifierType applies equality check predicate on the "sender_identifier_type" field. It's identical to SenderIdentifierTypeEQ.
func SenderIdentifierType(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldSenderIdentifierType, v))
}

// SenderIdentifierValue applies equality check predicate on the "sender_identifier_value" field. It's identical to SenderIdentifierValueEQ.
func SenderIdentifierValue(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldSenderIdentifierValue, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldContent, v))
}

// IsOutgoing applies equality check predicate on the "is_outgoing" field. It's identical to IsOutgoingEQ.
func IsOutgoing(v bool) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldIsOutgoing, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldTimestamp, v))
}

// SourceMessageID applies equality check predicate on the "source_message_id" field. It's identical to SourceMessageIDEQ.
func SourceMessageID(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldSourceMessageID, v))
}

// ReplyToMessageID applies equality check predicate on the "reply_to_message_id" field. It's identical to ReplyToMessageIDEQ.
func ReplyToMessageID(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldReplyToMessageID, v))
}

// MediaType applies equality check predicate on the "media_type" field. It's identical to MediaTypeEQ.
func MediaType(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldMediaType, v))
}

// MediaURL applies equality check predicate on the "media_url" field. It's identical to MediaURLEQ.
func MediaURL(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldMediaURL, v))
}

// ChatType applies equality check predicate on the "chat_type" field. It's identical to ChatTypeEQ.
func ChatType(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldChatType, v))
}

// TopicID applies equality check predicate on the "topic_id" field. It's identical to TopicIDEQ.
func TopicID(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldTopicID, v))
}

// Embedding applies equality check predicate on the "embedding" field. It's identical to EmbeddingEQ.
func Embedding(v pgvector.Vector) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldEmbedding, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldCreatedAt, v))
}

// InteractionIDEQ applies the EQ predicate on the "interaction_id" field.
func InteractionIDEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldInteractionID, v))
}

// InteractionIDNEQ applies the NEQ predicate on the "interaction_id" field.
func InteractionIDNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldInteractionID, v))
}

// InteractionIDIn applies the In predicate on the "interaction_id" field.
func InteractionIDIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldInteractionID, vs...))
}

// InteractionIDNotIn applies the NotIn predicate on the "interaction_id" field.
func InteractionIDNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldInteractionID, vs...))
}

// InteractionIDGT applies the GT predicate on the "interaction_id" field.
func InteractionIDGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldInteractionID, v))
}

// InteractionIDGTE applies the GTE predicate on the "interaction_id" field.
func InteractionIDGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldInteractionID, v))
}

// InteractionIDLT applies the LT predicate on the "interaction_id" field.
func InteractionIDLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldInteractionID, v))
}

// InteractionIDLTE applies the LTE predicate on the "interaction_id" field.
func InteractionIDLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldInteractionID, v))
}

// InteractionIDContains applies the Contains predicate on the "interaction_id" field.
func InteractionIDContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldInteractionID, v))
}

// InteractionIDHasPrefix applies the HasPrefix predicate on the "interaction_id" field.
func InteractionIDHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldInteractionID, v))
}

// InteractionIDHasSuffix applies the HasSuffix predicate on the "interaction_id" field.
func InteractionIDHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldInteractionID, v))
}

// InteractionIDEqualFold applies the EqualFold predicate on the "interaction_id" field.
func InteractionIDEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldInteractionID, v))
}

// InteractionIDContainsFold applies the ContainsFold predicate on the "interaction_id" field.
func InteractionIDContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldInteractionID, v))
}

// SenderEntityIDEQ applies the EQ predicate on the "sender_entity_id" field.
func SenderEntityIDEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldSenderEntityID, v))
}

// SenderEntityIDNEQ applies the NEQ predicate on the "sender_entity_id" field.
func SenderEntityIDNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldSenderEntityID, v))
}

// SenderEntityIDIn applies the In predicate on the "sender_entity_id" field.
func SenderEntityIDIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldSenderEntityID, vs...))
}

// SenderEntityIDNotIn applies the NotIn predicate on the "sender_entity_id" field.
func SenderEntityIDNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldSenderEntityID, vs...))
}

// SenderEntityIDGT applies the GT predicate on the "sender_entity_id" field.
func SenderEntityIDGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldSenderEntityID, v))
}

// SenderEntityIDGTE applies the GTE predicate on the "sender_entity_id" field.
func SenderEntityIDGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldSenderEntityID, v))
}

// SenderEntityIDLT applies the LT predicate on the "sender_entity_id" field.
func SenderEntityIDLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldSenderEntityID, v))
}

// SenderEntityIDLTE applies the LTE predicate on the "sender_entity_id" field.
func SenderEntityIDLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldSenderEntityID, v))
}

// SenderEntityIDContains applies the Contains predicate on the "sender_entity_id" field.
func SenderEntityIDContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldSenderEntityID, v))
}

// SenderEntityIDHasPrefix applies the HasPrefix predicate on the "sender_entity_id" field.
func SenderEntityIDHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldSenderEntityID, v))
}

// SenderEntityIDHasSuffix applies the HasSuffix predicate on the "sender_entity_id" field.
func SenderEntityIDHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldSenderEntityID, v))
}

// SenderEntityIDIsNil applies the IsNil predicate on the "sender_entity_id" field.
func SenderEntityIDIsNil() predicate.Message {
	return predicate.Message(sql.FieldIsNull(FieldSenderEntityID))
}

// SenderEntityIDNotNil applies the NotNil predicate on the "sender_entity_id" field.
func SenderEntityIDNotNil() predicate.Message {
	return predicate.Message(sql.FieldNotNull(FieldSenderEntityID))
}

// SenderEntityIDEqualFold applies the EqualFold predicate on the "sender_entity_id" field.
func SenderEntityIDEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldSenderEntityID, v))
}

// SenderEntityIDContainsFold applies the ContainsFold predicate on the "sender_entity_id" field.
func SenderEntityIDContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldSenderEntityID, v))
}

// RecipientEntityIDEQ applies the EQ predicate on the "recipient_entity_id" field.
func RecipientEntityIDEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldRecipientEntityID, v))
}

// RecipientEntityIDNEQ applies the NEQ predicate on the "recipient_entity_id" field.
func RecipientEntityIDNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldRecipientEntityID, v))
}

// RecipientEntityIDIn applies the In predicate on the "recipient_entity_id" field.
func RecipientEntityIDIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldRecipientEntityID, vs...))
}

// RecipientEntityIDNotIn applies the NotIn predicate on the "recipient_entity_id" field.
func RecipientEntityIDNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldRecipientEntityID, vs...))
}

// RecipientEntityIDGT applies the GT predicate on the "recipient_entity_id" field.
func RecipientEntityIDGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldRecipientEntityID, v))
}

// RecipientEntityIDGTE applies the GTE predicate on the "recipient_entity_id" field.
func RecipientEntityIDGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldRecipientEntityID, v))
}

// RecipientEntityIDLT applies the LT predicate on the "recipient_entity_id" field.
func RecipientEntityIDLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldRecipientEntityID, v))
}

// RecipientEntityIDLTE applies the LTE predicate on the "recipient_entity_id" field.
func RecipientEntityIDLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldRecipientEntityID, v))
}

// RecipientEntityIDContains applies the Contains predicate on the "recipient_entity_id" field.
func RecipientEntityIDContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldRecipientEntityID, v))
}

// RecipientEntityIDHasPrefix applies the HasPrefix predicate on the "recipient_entity_id" field.
func RecipientEntityIDHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldRecipientEntityID, v))
}

// RecipientEntityIDHasSuffix applies the HasSuffix predicate on the "recipient_entity_id" field.
func RecipientEntityIDHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldRecipientEntityID, v))
}

// RecipientEntityIDIsNil applies the IsNil predicate on the "recipient_entity_id" field.
func RecipientEntityIDIsNil() predicate.Message {
	return predicate.Message(sql.FieldIsNull(FieldRecipientEntityID))
}

// RecipientEntityIDNotNil applies the NotNil predicate on the "recipient_entity_id" field.
func RecipientEntityIDNotNil() predicate.Message {
	return predicate.Message(sql.FieldNotNull(FieldRecipientEntityID))
}

// RecipientEntityIDEqualFold applies the EqualFold predicate on the "recipient_entity_id" field.
func RecipientEntityIDEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldRecipientEntityID, v))
}

// RecipientEntityIDContainsFold applies the ContainsFold predicate on the "recipient_entity_id" field.
func RecipientEntityIDContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldRecipientEntityID, v))
}

// SenderIdentifierTypeEQ applies the EQ predicate on the "sender_identifier_type" field.
func SenderIdentifierTypeEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldSenderIdentifierType, v))
}

// SenderIdentifierTypeNEQ applies the NEQ predicate on the "sender_identifier_type" field.
func SenderIdentifierTypeNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldSenderIdentifierType, v))
}

// SenderIdentifierTypeIn applies the In predicate on the "sender_identifier_type" field.
func SenderIdentifierTypeIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldSenderIdentifierType, vs...))
}

// SenderIdentifierTypeNotIn applies the NotIn predicate on the "sender_identifier_type" field.
func SenderIdentifierTypeNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldSenderIdentifierType, vs...))
}

// SenderIdentifierTypeGT applies the GT predicate on the "sender_identifier_type" field.
func SenderIdentifierTypeGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldSenderIdentifierType, v))
}

// SenderIdentifierTypeGTE applies the GTE predicate on the "sender_identifier_type" field.
func SenderIdentifierTypeGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldSenderIdentifierType, v))
}

// SenderIdentifierTypeLT applies the LT predicate on the "sender_identifier_type" field.
func SenderIdentifierTypeLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldSenderIdentifierType, v))
}

// SenderIdentifierTypeLTE applies the LTE predicate on the "sender_identifier_type" field.
func SenderIdentifierTypeLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldSenderIdentifierType, v))
}

// SenderIdentifierTypeContains applies the Contains predicate on the "sender_identifier_type" field.
func SenderIdentifierTypeContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldSenderIdentifierType, v))
}

// SenderIdentifierTypeHasPrefix applies the HasPrefix predicate on the "sender_identifier_type" field.
func SenderIdentifierTypeHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldSenderIdentifierType, v))
}

// SenderIdentifierTypeHasSuffix applies the HasSuffix predicate on the "sender_identifier_type" field.
func SenderIdentifierTypeHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldSenderIdentifierType, v))
}

// SenderIdentifierTypeEqualFold applies the EqualFold predicate on the "sender_identifier_type" field.
func SenderIdentifierTypeEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldSenderIdentifierType, v))
}

// SenderIdentifierTypeContainsFold applies the ContainsFold predicate on the "sender_identifier_type" field.
func SenderIdentifierTypeContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldSenderIdentifierType, v))
}

// SenderIdentifierValueEQ applies the EQ predicate on the "sender_identifier_value" field.
func SenderIdentifierValueEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldSenderIdentifierValue, v))
}

// SenderIdentifierValueNEQ applies the NEQ predicate on the "sender_identifier_value" field.
func SenderIdentifierValueNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldSenderIdentifierValue, v))
}

// SenderIdentifierValueIn applies the In predicate on the "sender_identifier_value" field.
func SenderIdentifierValueIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldSenderIdentifierValue, vs...))
}

// SenderIdentifierValueNotIn applies the NotIn predicate on the "sender_identifier_value" field.
func SenderIdentifierValueNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldSenderIdentifierValue, vs...))
}

// SenderIdentifierValueGT applies the GT predicate on the "sender_identifier_value" field.
func SenderIdentifierValueGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldSenderIdentifierValue, v))
}

// SenderIdentifierValueGTE applies the GTE predicate on the "sender_identifier_value" field.
func SenderIdentifierValueGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldSenderIdentifierValue, v))
}

// SenderIdentifierValueLT applies the LT predicate on the "sender_identifier_value" field.
func SenderIdentifierValueLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldSenderIdentifierValue, v))
}

// SenderIdentifierValueLTE applies the LTE predicate on the "sender_identifier_value" field.
func SenderIdentifierValueLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldSenderIdentifierValue, v))
}

// SenderIdentifierValueContains applies the Contains predicate on the "sender_identifier_value" field.
func SenderIdentifierValueContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldSenderIdentifierValue, v))
}

// SenderIdentifierValueHasPrefix applies the HasPrefix predicate on the "sender_identifier_value" field.
func SenderIdentifierValueHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldSenderIdentifierValue, v))
}

// SenderIdentifierValueHasSuffix applies the HasSuffix predicate on the "sender_identifier_value" field.
func SenderIdentifierValueHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldSenderIdentifierValue, v))
}

// SenderIdentifierValueEqualFold applies the EqualFold predicate on the "sender_identifier_value" field.
func SenderIdentifierValueEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldSenderIdentifierValue, v))
}

// SenderIdentifierValueContainsFold applies the ContainsFold predicate on the "sender_identifier_value" field.
func SenderIdentifierValueContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldSenderIdentifierValue, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldContent, v))
}

// IsOutgoingEQ applies the EQ predicate on the "is_outgoing" field.
func IsOutgoingEQ(v bool) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldIsOutgoing, v))
}

// IsOutgoingNEQ applies the NEQ predicate on the "is_outgoing" field.
func IsOutgoingNEQ(v bool) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldIsOutgoing, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldTimestamp, v))
}

// SourceMessageIDEQ applies the EQ predicate on the "source_message_id" field.
func SourceMessageIDEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldSourceMessageID, v))
}

// SourceMessageIDNEQ applies the NEQ predicate on the "source_message_id" field.
func SourceMessageIDNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldSourceMessageID, v))
}

// SourceMessageIDIn applies the In predicate on the "source_message_id" field.
func SourceMessageIDIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldSourceMessageID, vs...))
}

// SourceMessageIDNotIn applies the NotIn predicate on the "source_message_id" field.
func SourceMessageIDNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldSourceMessageID, vs...))
}

// SourceMessageIDGT applies the GT predicate on the "source_message_id" field.
func SourceMessageIDGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldSourceMessageID, v))
}

// SourceMessageIDGTE applies the GTE predicate on the "source_message_id" field.
func SourceMessageIDGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldSourceMessageID, v))
}

// SourceMessageIDLT applies the LT predicate on the "source_message_id" field.
func SourceMessageIDLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldSourceMessageID, v))
}

// SourceMessageIDLTE applies the LTE predicate on the "source_message_id" field.
func SourceMessageIDLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldSourceMessageID, v))
}

// SourceMessageIDContains applies the Contains predicate on the "source_message_id" field.
func SourceMessageIDContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldSourceMessageID, v))
}

// SourceMessageIDHasPrefix applies the HasPrefix predicate on the "source_message_id" field.
func SourceMessageIDHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldSourceMessageID, v))
}

// SourceMessageIDHasSuffix applies the HasSuffix predicate on the "source_message_id" field.
func SourceMessageIDHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldSourceMessageID, v))
}

// SourceMessageIDIsNil applies the IsNil predicate on the "source_message_id" field.
func SourceMessageIDIsNil() predicate.Message {
	return predicate.Message(sql.FieldIsNull(FieldSourceMessageID))
}

// SourceMessageIDNotNil applies the NotNil predicate on the "source_message_id" field.
func SourceMessageIDNotNil() predicate.Message {
	return predicate.Message(sql.FieldNotNull(FieldSourceMessageID))
}

// SourceMessageIDEqualFold applies the EqualFold predicate on the "source_message_id" field.
func SourceMessageIDEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldSourceMessageID, v))
}

// SourceMessageIDContainsFold applies the ContainsFold predicate on the "source_message_id" field.
func SourceMessageIDContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldSourceMessageID, v))
}

// ReplyToMessageIDEQ applies the EQ predicate on the "reply_to_message_id" field.
func ReplyToMessageIDEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldReplyToMessageID, v))
}

// ReplyToMessageIDNEQ applies the NEQ predicate on the "reply_to_message_id" field.
func ReplyToMessageIDNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldReplyToMessageID, v))
}

// ReplyToMessageIDIn applies the In predicate on the "reply_to_message_id" field.
func ReplyToMessageIDIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldReplyToMessageID, vs...))
}

// ReplyToMessageIDNotIn applies the NotIn predicate on the "reply_to_message_id" field.
func ReplyToMessageIDNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldReplyToMessageID, vs...))
}

// ReplyToMessageIDGT applies the GT predicate on the "reply_to_message_id" field.
func ReplyToMessageIDGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldReplyToMessageID, v))
}

// ReplyToMessageIDGTE applies the GTE predicate on the "reply_to_message_id" field.
func ReplyToMessageIDGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldReplyToMessageID, v))
}

// ReplyToMessageIDLT applies the LT predicate on the "reply_to_message_id" field.
func ReplyToMessageIDLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldReplyToMessageID, v))
}

// ReplyToMessageIDLTE applies the LTE predicate on the "reply_to_message_id" field.
func ReplyToMessageIDLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldReplyToMessageID, v))
}

// ReplyToMessageIDContains applies the Contains predicate on the "reply_to_message_id" field.
func ReplyToMessageIDContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldReplyToMessageID, v))
}

// ReplyToMessageIDHasPrefix applies the HasPrefix predicate on the "reply_to_message_id" field.
func ReplyToMessageIDHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldReplyToMessageID, v))
}

// ReplyToMessageIDHasSuffix applies the HasSuffix predicate on the "reply_to_message_id" field.
func ReplyToMessageIDHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldReplyToMessageID, v))
}

// ReplyToMessageIDIsNil applies the IsNil predicate on the "reply_to_message_id" field.
func ReplyToMessageIDIsNil() predicate.Message {
	return predicate.Message(sql.FieldIsNull(FieldReplyToMessageID))
}

// ReplyToMessageIDNotNil applies the NotNil predicate on the "reply_to_message_id" field.
func ReplyToMessageIDNotNil() predicate.Message {
	return predicate.Message(sql.FieldNotNull(FieldReplyToMessageID))
}

// ReplyToMessageIDEqualFold applies the EqualFold predicate on the "reply_to_message_id" field.
func ReplyToMessageIDEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldReplyToMessageID, v))
}

// ReplyToMessageIDContainsFold applies the ContainsFold predicate on the "reply_to_message_id" field.
func ReplyToMessageIDContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldReplyToMessageID, v))
}

// MediaTypeEQ applies the EQ predicate on the "media_type" field.
func MediaTypeEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldMediaType, v))
}

// MediaTypeNEQ applies the NEQ predicate on the "media_type" field.
func MediaTypeNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldMediaType, v))
}

// MediaTypeIn applies the In predicate on the "media_type" field.
func MediaTypeIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldMediaType, vs...))
}

// MediaTypeNotIn applies the NotIn predicate on the "media_type" field.
func MediaTypeNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldMediaType, vs...))
}

// MediaTypeGT applies the GT predicate on the "media_type" field.
func MediaTypeGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldMediaType, v))
}

// MediaTypeGTE applies the GTE predicate on the "media_type" field.
func MediaTypeGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldMediaType, v))
}

// MediaTypeLT applies the LT predicate on the "media_type" field.
func MediaTypeLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldMediaType, v))
}

// MediaTypeLTE applies the LTE predicate on the "media_type" field.
func MediaTypeLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldMediaType, v))
}

// MediaTypeContains applies the Contains predicate on the "media_type" field.
func MediaTypeContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldMediaType, v))
}

// MediaTypeHasPrefix applies the HasPrefix predicate on the "media_type" field.
func MediaTypeHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldMediaType, v))
}

// MediaTypeHasSuffix applies the HasSuffix predicate on the "media_type" field.
func MediaTypeHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldMediaType, v))
}

// MediaTypeIsNil applies the IsNil predicate on the "media_type" field.
func MediaTypeIsNil() predicate.Message {
	return predicate.Message(sql.FieldIsNull(FieldMediaType))
}

// MediaTypeNotNil applies the NotNil predicate on the "media_type" field.
func MediaTypeNotNil() predicate.Message {
	return predicate.Message(sql.FieldNotNull(FieldMediaType))
}

// MediaTypeEqualFold applies the EqualFold predicate on the "media_type" field.
func MediaTypeEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldMediaType, v))
}

// MediaTypeContainsFold applies the ContainsFold predicate on the "media_type" field.
func MediaTypeContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldMediaType, v))
}

// MediaURLEQ applies the EQ predicate on the "media_url" field.
func MediaURLEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldMediaURL, v))
}

// MediaURLNEQ applies the NEQ predicate on the "media_url" field.
func MediaURLNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldMediaURL, v))
}

// MediaURLIn applies the In predicate on the "media_url" field.
func MediaURLIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldMediaURL, vs...))
}

// MediaURLNotIn applies the NotIn predicate on the "media_url" field.
func MediaURLNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldMediaURL, vs...))
}

// MediaURLGT applies the GT predicate on the "media_url" field.
func MediaURLGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldMediaURL, v))
}

// MediaURLGTE applies the GTE predicate on the "media_url" field.
func MediaURLGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldMediaURL, v))
}

// MediaURLLT applies the LT predicate on the "media_url" field.
func MediaURLLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldMediaURL, v))
}

// MediaURLLTE applies the LTE predicate on the "media_url" field.
func MediaURLLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldMediaURL, v))
}

// MediaURLContains applies the Contains predicate on the "media_url" field.
func MediaURLContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldMediaURL, v))
}

// MediaURLHasPrefix applies the HasPrefix predicate on the "media_url" field.
func MediaURLHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldMediaURL, v))
}

// MediaURLHasSuffix applies the HasSuffix predicate on the "media_url" field.
func MediaURLHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldMediaURL, v))
}

// MediaURLIsNil applies the IsNil predicate on the "media_url" field.
func MediaURLIsNil() predicate.Message {
	return predicate.Message(sql.FieldIsNull(FieldMediaURL))
}

// MediaURLNotNil applies the NotNil predicate on the "media_url" field.
func MediaURLNotNil() predicate.Message {
	return predicate.Message(sql.FieldNotNull(FieldMediaURL))
}

// MediaURLEqualFold applies the EqualFold predicate on the "media_url" field.
func MediaURLEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldMediaURL, v))
}

// MediaURLContainsFold applies the ContainsFold predicate on the "media_url" field.
func MediaURLContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldMediaURL, v))
}

// ChatTypeEQ applies the EQ predicate on the "chat_type" field.
func ChatTypeEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldChatType, v))
}

// ChatTypeNEQ applies the NEQ predicate on the "chat_type" field.
func ChatTypeNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldChatType, v))
}

// ChatTypeIn applies the In predicate on the "chat_type" field.
func ChatTypeIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldChatType, vs...))
}

// ChatTypeNotIn applies the NotIn predicate on the "chat_type" field.
func ChatTypeNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldChatType, vs...))
}

// ChatTypeGT applies the GT predicate on the "chat_type" field.
func ChatTypeGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldChatType, v))
}

// ChatTypeGTE applies the GTE predicate on the "chat_type" field.
func ChatTypeGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldChatType, v))
}

// ChatTypeLT applies the LT predicate on the "chat_type" field.
func ChatTypeLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldChatType, v))
}

// ChatTypeLTE applies the LTE predicate on the "chat_type" field.
func ChatTypeLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldChatType, v))
}

// ChatTypeContains applies the Contains predicate on the "chat_type" field.
func ChatTypeContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldChatType, v))
}

// ChatTypeHasPrefix applies the HasPrefix predicate on the "chat_type" field.
func ChatTypeHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldChatType, v))
}

// ChatTypeHasSuffix applies the HasSuffix predicate on the "chat_type" field.
func ChatTypeHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldChatType, v))
}

// ChatTypeIsNil applies the IsNil predicate on the "chat_type" field.
func ChatTypeIsNil() predicate.Message {
	return predicate.Message(sql.FieldIsNull(FieldChatType))
}

// ChatTypeNotNil applies the NotNil predicate on the "chat_type" field.
func ChatTypeNotNil() predicate.Message {
	return predicate.Message(sql.FieldNotNull(FieldChatType))
}

// ChatTypeEqualFold applies the EqualFold predicate on the "chat_type" field.
func ChatTypeEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldChatType, v))
}

// ChatTypeContainsFold applies the ContainsFold predicate on the "chat_type" field.
func ChatTypeContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldChatType, v))
}

// TopicIDEQ applies the EQ predicate on the "topic_id" field.
func TopicIDEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldTopicID, v))
}

// TopicIDNEQ applies the NEQ predicate on the "topic_id" field.
func TopicIDNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldTopicID, v))
}

// TopicIDIn applies the In predicate on the "topic_id" field.
func TopicIDIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldTopicID, vs...))
}

// TopicIDNotIn applies the NotIn predicate on the "topic_id" field.
func TopicIDNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldTopicID, vs...))
}

// TopicIDGT applies the GT predicate on the "topic_id" field.
func TopicIDGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldTopicID, v))
}

// TopicIDGTE applies the GTE predicate on the "topic_id" field.
func TopicIDGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldTopicID, v))
}

// TopicIDLT applies the LT predicate on the "topic_id" field.
func TopicIDLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldTopicID, v))
}

// TopicIDLTE applies the LTE predicate on the "topic_id" field.
func TopicIDLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldTopicID, v))
}

// TopicIDContains applies the Contains predicate on the "topic_id" field.
func TopicIDContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldTopicID, v))
}

// TopicIDHasPrefix applies the HasPrefix predicate on the "topic_id" field.
func TopicIDHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldTopicID, v))
}

// TopicIDHasSuffix applies the HasSuffix predicate on the "topic_id" field.
func TopicIDHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldTopicID, v))
}

// TopicIDIsNil applies the IsNil predicate on the "topic_id" field.
func TopicIDIsNil() predicate.Message {
	return predicate.Message(sql.FieldIsNull(FieldTopicID))
}

// TopicIDNotNil applies the NotNil predicate on the "topic_id" field.
func TopicIDNotNil() predicate.Message {
	return predicate.Message(sql.FieldNotNull(FieldTopicID))
}

// TopicIDEqualFold applies the EqualFold predicate on the "topic_id" field.
func TopicIDEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldTopicID, v))
}

// TopicIDContainsFold applies the ContainsFold predicate on the "topic_id" field.
func TopicIDContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldTopicID, v))
}

// ExtractionStatusEQ applies the EQ predicate on the "extraction_status" field.
func ExtractionStatusEQ(v ExtractionStatus) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldExtractionStatus, v))
}

// ExtractionStatusNEQ applies the NEQ predicate on the "extraction_status" field.
func ExtractionStatusNEQ(v ExtractionStatus) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldExtractionStatus, v))
}

// ExtractionStatusIn applies the In predicate on the "extraction_status" field.
func ExtractionStatusIn(vs ...ExtractionStatus) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldExtractionStatus, vs...))
}

// ExtractionStatusNotIn applies the NotIn predicate on the "extraction_status" field.
func ExtractionStatusNotIn(vs ...ExtractionStatus) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldExtractionStatus, vs...))
}

// EmbeddingEQ applies the EQ predicate on the "embedding" field.
func EmbeddingEQ(v pgvector.Vector) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldEmbedding, v))
}

// EmbeddingNEQ applies the NEQ predicate on the "embedding" field.
func EmbeddingNEQ(v pgvector.Vector) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldEmbedding, v))
}

// EmbeddingIn applies the In predicate on the "embedding" field.
func EmbeddingIn(vs ...pgvector.Vector) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldEmbedding, vs...))
}

// EmbeddingNotIn applies the NotIn predicate on the "embedding" field.
func EmbeddingNotIn(vs ...pgvector.Vector) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldEmbedding, vs...))
}

// EmbeddingGT applies the GT predicate on the "embedding" field.
func EmbeddingGT(v pgvector.Vector) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldEmbedding, v))
}

// EmbeddingGTE applies the GTE predicate on the "embedding" field.
func EmbeddingGTE(v pgvector.Vector) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldEmbedding, v))
}

// EmbeddingLT applies the LT predicate on the "embedding" field.
func EmbeddingLT(v pgvector.Vector) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldEmbedding, v))
}

// EmbeddingLTE applies the LTE predicate on the "embedding" field.
func EmbeddingLTE(v pgvector.Vector) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldEmbedding, v))
}

// EmbeddingIsNil applies the IsNil predicate on the "embedding" field.
func EmbeddingIsNil() predicate.Message {
	return predicate.Message(sql.FieldIsNull(FieldEmbedding))
}

// EmbeddingNotNil applies the NotNil predicate on the "embedding" field.
func EmbeddingNotNil() predicate.Message {
	return predicate.Message(sql.FieldNotNull(FieldEmbedding))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldCreatedAt, v))
}

// HasInteraction applies the HasEdge predicate on the "interaction" edge.
func HasInteraction() predicate.Message {
	return predicate.Message(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, InteractionTable, InteractionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInteractionWith applies the HasEdge predicate on the "interaction" edge with a given conditions (other predicates).
func HasInteractionWith(preds ...predicate.Interaction) predicate.Message {
	return predicate.Message(func(s *sql.Selector) {
		step := newInteractionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSegments applies the HasEdge predicate on the "segments" edge.
func HasSegments() predicate.Message {
	return predicate.Message(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, SegmentsTable, SegmentsPrimaryKey...),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSegmentsWith applies the HasEdge predicate on the "segments" edge with a given conditions (other predicates).
func HasSegmentsWith(preds ...predicate.TopicalSegment) predicate.Message {
	return predicate.Message(func(s *sql.Selector) {
		step := newSegmentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Message) predicate.Message {
	return predicate.Message(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Message) predicate.Message {
	return predicate.Message(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Message) predicate.Message {
	return predicate.Message(sql.NotPredicates(p))
}
