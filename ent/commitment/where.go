// Code generated by ent, DO NOT EDIT.

package commitment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/memograph/memograph/ent/predicate"
	pgvector "github.com/pgvector/pgvector-go"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Commitment {
	return predicate.Commitment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Commitment {
	return predicate.Commitment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Commitment {
	return predicate.Commitment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Commitment {
	return predicate.Commitment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Commitment {
	return predicate.Commitment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Commitment {
	return predicate.Commitment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Commitment {
	return predicate.Commitment(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Commitment {
	return predicate.Commitment(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Commitment {
	return predicate.Commitment(sql.FieldContainsFold(FieldID, id))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldDescription, v))
}

// FromEntityID applies equality check predicate on the "from_entity_id" field. It's identical to FromEntityIDEQ.
func FromEntityID(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldFromEntityID, v))
}

// ToEntityID applies equality check predicate on the "to_entity_id" field. It's identical to ToEntityIDEQ.
func ToEntityID(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldToEntityID, v))
}

// ActivityID applies equality check predicate on the "activity_id" field. It's identical to ActivityIDEQ.
func ActivityID(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldActivityID, v))
}

// SourceMessageID applies equality check predicate on the "source_message_id" field. It's identical to SourceMessageIDEQ.
func SourceMessageID(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldSourceMessageID, v))
}

// SourceInteractionID applies equality check predicate on the "source_interaction_id" field. It's identical to SourceInteractionIDEQ.
func SourceInteractionID(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldSourceInteractionID, v))
}

// DueDate applies equality check predicate on the "due_date" field. It's identical to DueDateEQ.
func DueDate(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldDueDate, v))
}

// RecurrenceRule applies equality check predicate on the "recurrence_rule" field. It's identical to RecurrenceRuleEQ.
func RecurrenceRule(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldRecurrenceRule, v))
}

// NextReminderAt applies equality check predicate on the "next_reminder_at" field. It's identical to NextReminderAtEQ.
func NextReminderAt(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldNextReminderAt, v))
}

// ReminderCount applies equality check predicate on the "reminder_count" field. It's identical to ReminderCountEQ.
func ReminderCount(v int) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldReminderCount, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldConfidence, v))
}

// NeedsReview applies equality check predicate on the "needs_review" field. It's identical to NeedsReviewEQ.
func NeedsReview(v bool) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldNeedsReview, v))
}

// ConfirmationCount applies equality check predicate on the "confirmation_count" field. It's identical to ConfirmationCountEQ.
func ConfirmationCount(v int) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldConfirmationCount, v))
}

// Embedding applies equality check predicate on the "embedding" field. It's identical to EmbeddingEQ.
func Embedding(v pgvector.Vector) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldEmbedding, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldUpdatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldDeletedAt, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v Type) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v Type) predicate.Commitment {
	return predicate.Commitment(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...Type) predicate.Commitment {
	return predicate.Commitment(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...Type) predicate.Commitment {
	return predicate.Commitment(sql.FieldNotIn(FieldType, vs...))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Commitment {
	return predicate.Commitment(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Commitment {
	return predicate.Commitment(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Commitment {
	return predicate.Commitment(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Commitment {
	return predicate.Commitment(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Commitment {
	return predicate.Commitment(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Commitment {
	return predicate.Commitment(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldContainsFold(FieldDescription, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Commitment {
	return predicate.Commitment(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Commitment {
	return predicate.Commitment(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Commitment {
	return predicate.Commitment(sql.FieldNotIn(FieldStatus, vs...))
}

// FromEntityIDEQ applies the EQ predicate on the "from_entity_id" field.
func FromEntityIDEQ(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldFromEntityID, v))
}

// FromEntityIDNEQ applies the NEQ predicate on the "from_entity_id" field.
func FromEntityIDNEQ(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldNEQ(FieldFromEntityID, v))
}

// FromEntityIDIn applies the In predicate on the "from_entity_id" field.
func FromEntityIDIn(vs ...string) predicate.Commitment {
	return predicate.Commitment(sql.FieldIn(FieldFromEntityID, vs...))
}

// FromEntityIDNotIn applies the NotIn predicate on the "from_entity_id" field.
func FromEntityIDNotIn(vs ...string) predicate.Commitment {
	return predicate.Commitment(sql.FieldNotIn(FieldFromEntityID, vs...))
}

// FromEntityIDGT applies the GT predicate on the "from_entity_id" field.
func FromEntityIDGT(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldGT(FieldFromEntityID, v))
}

// FromEntityIDGTE applies the GTE predicate on the "from_entity_id" field.
func FromEntityIDGTE(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldGTE(FieldFromEntityID, v))
}

// FromEntityIDLT applies the LT predicate on the "from_entity_id" field.
func FromEntityIDLT(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldLT(FieldFromEntityID, v))
}

// FromEntityIDLTE applies the LTE predicate on the "from_entity_id" field.
func FromEntityIDLTE(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldLTE(FieldFromEntityID, v))
}

// FromEntityIDContains applies the Contains predicate on the "from_entity_id" field.
func FromEntityIDContains(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldContains(FieldFromEntityID, v))
}

// FromEntityIDHasPrefix applies the HasPrefix predicate on the "from_entity_id" field.
func FromEntityIDHasPrefix(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldHasPrefix(FieldFromEntityID, v))
}

// FromEntityIDHasSuffix applies the HasSuffix predicate on the "from_entity_id" field.
func FromEntityIDHasSuffix(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldHasSuffix(FieldFromEntityID, v))
}

// FromEntityIDIsNil applies the IsNil predicate on the "from_entity_id" field.
func FromEntityIDIsNil() predicate.Commitment {
	return predicate.Commitment(sql.FieldIsNull(FieldFromEntityID))
}

// FromEntityIDNotNil applies the NotNil predicate on the "from_entity_id" field.
func FromEntityIDNotNil() predicate.Commitment {
	return predicate.Commitment(sql.FieldNotNull(FieldFromEntityID))
}

// FromEntityIDEqualFold applies the EqualFold predicate on the "from_entity_id" field.
func FromEntityIDEqualFold(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldEqualFold(FieldFromEntityID, v))
}

// FromEntityIDContainsFold applies the ContainsFold predicate on the "from_entity_id" field.
func FromEntityIDContainsFold(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldContainsFold(FieldFromEntityID, v))
}

// ToEntityIDEQ applies the EQ predicate on the "to_entity_id" field.
func ToEntityIDEQ(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldToEntityID, v))
}

// ToEntityIDNEQ applies the NEQ predicate on the "to_entity_id" field.
func ToEntityIDNEQ(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldNEQ(FieldToEntityID, v))
}

// ToEntityIDIn applies the In predicate on the "to_entity_id" field.
func ToEntityIDIn(vs ...string) predicate.Commitment {
	return predicate.Commitment(sql.FieldIn(FieldToEntityID, vs...))
}

// ToEntityIDNotIn applies the NotIn predicate on the "to_entity_id" field.
func ToEntityIDNotIn(vs ...string) predicate.Commitment {
	return predicate.Commitment(sql.FieldNotIn(FieldToEntityID, vs...))
}

// ToEntityIDGT applies the GT predicate on the "to_entity_id" field.
func ToEntityIDGT(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldGT(FieldToEntityID, v))
}

// ToEntityIDGTE applies the GTE predicate on the "to_entity_id" field.
func ToEntityIDGTE(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldGTE(FieldToEntityID, v))
}

// ToEntityIDLT applies the LT predicate on the "to_entity_id" field.
func ToEntityIDLT(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldLT(FieldToEntityID, v))
}

// ToEntityIDLTE applies the LTE predicate on the "to_entity_id" field.
func ToEntityIDLTE(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldLTE(FieldToEntityID, v))
}

// ToEntityIDContains applies the Contains predicate on the "to_entity_id" field.
func ToEntityIDContains(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldContains(FieldToEntityID, v))
}

// ToEntityIDHasPrefix applies the HasPrefix predicate on the "to_entity_id" field.
func ToEntityIDHasPrefix(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldHasPrefix(FieldToEntityID, v))
}

// ToEntityIDHasSuffix applies the HasSuffix predicate on the "to_entity_id" field.
func ToEntityIDHasSuffix(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldHasSuffix(FieldToEntityID, v))
}

// ToEntityIDIsNil applies the IsNil predicate on the "to_entity_id" field.
func ToEntityIDIsNil() predicate.Commitment {
	return predicate.Commitment(sql.FieldIsNull(FieldToEntityID))
}

// ToEntityIDNotNil applies the NotNil predicate on the "to_entity_id" field.
func ToEntityIDNotNil() predicate.Commitment {
	return predicate.Commitment(sql.FieldNotNull(FieldToEntityID))
}

// ToEntityIDEqualFold applies the EqualFold predicate on the "to_entity_id" field.
func ToEntityIDEqualFold(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldEqualFold(FieldToEntityID, v))
}

// ToEntityIDContainsFold applies the ContainsFold predicate on the "to_entity_id" field.
func ToEntityIDContainsFold(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldContainsFold(FieldToEntityID, v))
}

// ActivityIDEQ applies the EQ predicate on the "activity_id" field.
func ActivityIDEQ(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldActivityID, v))
}

// ActivityIDNEQ applies the NEQ predicate on the "activity_id" field.
func ActivityIDNEQ(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldNEQ(FieldActivityID, v))
}

// ActivityIDIn applies the In predicate on the "activity_id" field.
func ActivityIDIn(vs ...string) predicate.Commitment {
	return predicate.Commitment(sql.FieldIn(FieldActivityID, vs...))
}

// ActivityIDNotIn applies the NotIn predicate on the "activity_id" field.
func ActivityIDNotIn(vs ...string) predicate.Commitment {
	return predicate.Commitment(sql.FieldNotIn(FieldActivityID, vs...))
}

// ActivityIDGT applies the GT predicate on the "activity_id" field.
func ActivityIDGT(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldGT(FieldActivityID, v))
}

// ActivityIDGTE applies the GTE predicate on the "activity_id" field.
func ActivityIDGTE(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldGTE(FieldActivityID, v))
}

// ActivityIDLT applies the LT predicate on the "activity_id" field.
func ActivityIDLT(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldLT(FieldActivityID, v))
}

// ActivityIDLTE applies the LTE predicate on the "activity_id" field.
func ActivityIDLTE(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldLTE(FieldActivityID, v))
}

// ActivityIDContains applies the Contains predicate on the "activity_id" field.
func ActivityIDContains(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldContains(FieldActivityID, v))
}

// ActivityIDHasPrefix applies the HasPrefix predicate on the "activity_id" field.
func ActivityIDHasPrefix(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldHasPrefix(FieldActivityID, v))
}

// ActivityIDHasSuffix applies the HasSuffix predicate on the "activity_id" field.
func ActivityIDHasSuffix(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldHasSuffix(FieldActivityID, v))
}

// ActivityIDIsNil applies the IsNil predicate on the "activity_id" field.
func ActivityIDIsNil() predicate.Commitment {
	return predicate.Commitment(sql.FieldIsNull(FieldActivityID))
}

// ActivityIDNotNil applies the NotNil predicate on the "activity_id" field.
func ActivityIDNotNil() predicate.Commitment {
	return predicate.Commitment(sql.FieldNotNull(FieldActivityID))
}

// ActivityIDEqualFold applies the EqualFold predicate on the "activity_id" field.
func ActivityIDEqualFold(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldEqualFold(FieldActivityID, v))
}

// ActivityIDContainsFold applies the ContainsFold predicate on the "activity_id" field.
func ActivityIDContainsFold(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldContainsFold(FieldActivityID, v))
}

// SourceMessageIDEQ applies the EQ predicate on the "source_message_id" field.
func SourceMessageIDEQ(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldSourceMessageID, v))
}

// SourceMessageIDNEQ applies the NEQ predicate on the "source_message_id" field.
func SourceMessageIDNEQ(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldNEQ(FieldSourceMessageID, v))
}

// SourceMessageIDIn applies the In predicate on the "source_message_id" field.
func SourceMessageIDIn(vs ...string) predicate.Commitment {
	return predicate.Commitment(sql.FieldIn(FieldSourceMessageID, vs...))
}

// SourceMessageIDNotIn applies the NotIn predicate on the "source_message_id" field.
func SourceMessageIDNotIn(vs ...string) predicate.Commitment {
	return predicate.Commitment(sql.FieldNotIn(FieldSourceMessageID, vs...))
}

// SourceMessageIDGT applies the GT predicate on the "source_message_id" field.
func SourceMessageIDGT(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldGT(FieldSourceMessageID, v))
}

// SourceMessageIDGTE applies the GTE predicate on the "source_message_id" field.
func SourceMessageIDGTE(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldGTE(FieldSourceMessageID, v))
}

// SourceMessageIDLT applies the LT predicate on the "source_message_id" field.
func SourceMessageIDLT(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldLT(FieldSourceMessageID, v))
}

// SourceMessageIDLTE applies the LTE predicate on the "source_message_id" field.
func SourceMessageIDLTE(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldLTE(FieldSourceMessageID, v))
}

// SourceMessageIDContains applies the Contains predicate on the "source_message_id" field.
func SourceMessageIDContains(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldContains(FieldSourceMessageID, v))
}

// SourceMessageIDHasPrefix applies the HasPrefix predicate on the "source_message_id" field.
func SourceMessageIDHasPrefix(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldHasPrefix(FieldSourceMessageID, v))
}

// SourceMessageIDHasSuffix applies the HasSuffix predicate on the "source_message_id" field.
func SourceMessageIDHasSuffix(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldHasSuffix(FieldSourceMessageID, v))
}

// SourceMessageIDIsNil applies the IsNil predicate on the "source_message_id" field.
func SourceMessageIDIsNil() predicate.Commitment {
	return predicate.Commitment(sql.FieldIsNull(FieldSourceMessageID))
}

// SourceMessageIDNotNil applies the NotNil predicate on the "source_message_id" field.
func SourceMessageIDNotNil() predicate.Commitment {
	return predicate.Commitment(sql.FieldNotNull(FieldSourceMessageID))
}

// SourceMessageIDEqualFold applies the EqualFold predicate on the "source_message_id" field.
func SourceMessageIDEqualFold(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldEqualFold(FieldSourceMessageID, v))
}

// SourceMessageIDContainsFold applies the ContainsFold predicate on the "source_message_id" field.
func SourceMessageIDContainsFold(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldContainsFold(FieldSourceMessageID, v))
}

// SourceInteractionIDEQ applies the EQ predicate on the "source_interaction_id" field.
func SourceInteractionIDEQ(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldSourceInteractionID, v))
}

// SourceInteractionIDNEQ applies the NEQ predicate on the "source_interaction_id" field.
func SourceInteractionIDNEQ(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldNEQ(FieldSourceInteractionID, v))
}

// SourceInteractionIDIn applies the In predicate on the "source_interaction_id" field.
func SourceInteractionIDIn(vs ...string) predicate.Commitment {
	return predicate.Commitment(sql.FieldIn(FieldSourceInteractionID, vs...))
}

// SourceInteractionIDNotIn applies the NotIn predicate on the "source_interaction_id" field.
func SourceInteractionIDNotIn(vs ...string) predicate.Commitment {
	return predicate.Commitment(sql.FieldNotIn(FieldSourceInteractionID, vs...))
}

// SourceInteractionIDGT applies the GT predicate on the "source_interaction_id" field.
func SourceInteractionIDGT(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldGT(FieldSourceInteractionID, v))
}

// SourceInteractionIDGTE applies the GTE predicate on the "source_interaction_id" field.
func SourceInteractionIDGTE(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldGTE(FieldSourceInteractionID, v))
}

// SourceInteractionIDLT applies the LT predicate on the "source_interaction_id" field.
func SourceInteractionIDLT(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldLT(FieldSourceInteractionID, v))
}

// SourceInteractionIDLTE applies the LTE predicate on the "source_interaction_id" field.
func SourceInteractionIDLTE(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldLTE(FieldSourceInteractionID, v))
}

// SourceInteractionIDContains applies the Contains predicate on the "source_interaction_id" field.
func SourceInteractionIDContains(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldContains(FieldSourceInteractionID, v))
}

// SourceInteractionIDHasPrefix applies the HasPrefix predicate on the "source_interaction_id" field.
func SourceInteractionIDHasPrefix(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldHasPrefix(FieldSourceInteractionID, v))
}

// SourceInteractionIDHasSuffix applies the HasSuffix predicate on the "source_interaction_id" field.
func SourceInteractionIDHasSuffix(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldHasSuffix(FieldSourceInteractionID, v))
}

// SourceInteractionIDIsNil applies the IsNil predicate on the "source_interaction_id" field.
func SourceInteractionIDIsNil() predicate.Commitment {
	return predicate.Commitment(sql.FieldIsNull(FieldSourceInteractionID))
}

// SourceInteractionIDNotNil applies the NotNil predicate on the "source_interaction_id" field.
func SourceInteractionIDNotNil() predicate.Commitment {
	return predicate.Commitment(sql.FieldNotNull(FieldSourceInteractionID))
}

// SourceInteractionIDEqualFold applies the EqualFold predicate on the "source_interaction_id" field.
func SourceInteractionIDEqualFold(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldEqualFold(FieldSourceInteractionID, v))
}

// SourceInteractionIDContainsFold applies the ContainsFold predicate on the "source_interaction_id" field.
func SourceInteractionIDContainsFold(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldContainsFold(FieldSourceInteractionID, v))
}

// DueDateEQ applies the EQ predicate on the "due_date" field.
func DueDateEQ(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldDueDate, v))
}

// DueDateNEQ applies the NEQ predicate on the "due_date" field.
func DueDateNEQ(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldNEQ(FieldDueDate, v))
}

// DueDateIn applies the In predicate on the "due_date" field.
func DueDateIn(vs ...time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldIn(FieldDueDate, vs...))
}

// DueDateNotIn applies the NotIn predicate on the "due_date" field.
func DueDateNotIn(vs ...time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldNotIn(FieldDueDate, vs...))
}

// DueDateGT applies the GT predicate on the "due_date" field.
func DueDateGT(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldGT(FieldDueDate, v))
}

// DueDateGTE applies the GTE predicate on the "due_date" field.
func DueDateGTE(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldGTE(FieldDueDate, v))
}

// DueDateLT applies the LT predicate on the "due_date" field.
func DueDateLT(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldLT(FieldDueDate, v))
}

// DueDateLTE applies the LTE predicate on the "due_date" field.
func DueDateLTE(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldLTE(FieldDueDate, v))
}

// DueDateIsNil applies the IsNil predicate on the "due_date" field.
func DueDateIsNil() predicate.Commitment {
	return predicate.Commitment(sql.FieldIsNull(FieldDueDate))
}

// DueDateNotNil applies the NotNil predicate on the "due_date" field.
func DueDateNotNil() predicate.Commitment {
	return predicate.Commitment(sql.FieldNotNull(FieldDueDate))
}

// RecurrenceRuleEQ applies the EQ predicate on the "recurrence_rule" field.
func RecurrenceRuleEQ(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldRecurrenceRule, v))
}

// RecurrenceRuleNEQ applies the NEQ predicate on the "recurrence_rule" field.
func RecurrenceRuleNEQ(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldNEQ(FieldRecurrenceRule, v))
}

// RecurrenceRuleIn applies the In predicate on the "recurrence_rule" field.
func RecurrenceRuleIn(vs ...string) predicate.Commitment {
	return predicate.Commitment(sql.FieldIn(FieldRecurrenceRule, vs...))
}

// RecurrenceRuleNotIn applies the NotIn predicate on the "recurrence_rule" field.
func RecurrenceRuleNotIn(vs ...string) predicate.Commitment {
	return predicate.Commitment(sql.FieldNotIn(FieldRecurrenceRule, vs...))
}

// RecurrenceRuleGT applies the GT predicate on the "recurrence_rule" field.
func RecurrenceRuleGT(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldGT(FieldRecurrenceRule, v))
}

// RecurrenceRuleGTE applies the GTE predicate on the "recurrence_rule" field.
func RecurrenceRuleGTE(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldGTE(FieldRecurrenceRule, v))
}

// RecurrenceRuleLT applies the LT predicate on the "recurrence_rule" field.
func RecurrenceRuleLT(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldLT(FieldRecurrenceRule, v))
}

// RecurrenceRuleLTE applies the LTE predicate on the "recurrence_rule" field.
func RecurrenceRuleLTE(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldLTE(FieldRecurrenceRule, v))
}

// RecurrenceRuleContains applies the Contains predicate on the "recurrence_rule" field.
func RecurrenceRuleContains(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldContains(FieldRecurrenceRule, v))
}

// RecurrenceRuleHasPrefix applies the HasPrefix predicate on the "recurrence_rule" field.
func RecurrenceRuleHasPrefix(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldHasPrefix(FieldRecurrenceRule, v))
}

// RecurrenceRuleHasSuffix applies the HasSuffix predicate on the "recurrence_rule" field.
func RecurrenceRuleHasSuffix(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldHasSuffix(FieldRecurrenceRule, v))
}

// RecurrenceRuleIsNil applies the IsNil predicate on the "recurrence_rule" field.
func RecurrenceRuleIsNil() predicate.Commitment {
	return predicate.Commitment(sql.FieldIsNull(FieldRecurrenceRule))
}

// RecurrenceRuleNotNil applies the NotNil predicate on the "recurrence_rule" field.
func RecurrenceRuleNotNil() predicate.Commitment {
	return predicate.Commitment(sql.FieldNotNull(FieldRecurrenceRule))
}

// RecurrenceRuleEqualFold applies the EqualFold predicate on the "recurrence_rule" field.
func RecurrenceRuleEqualFold(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldEqualFold(FieldRecurrenceRule, v))
}

// RecurrenceRuleContainsFold applies the ContainsFold predicate on the "recurrence_rule" field.
func RecurrenceRuleContainsFold(v string) predicate.Commitment {
	return predicate.Commitment(sql.FieldContainsFold(FieldRecurrenceRule, v))
}

// NextReminderAtEQ applies the EQ predicate on the "next_reminder_at" field.
func NextReminderAtEQ(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldNextReminderAt, v))
}

// NextReminderAtNEQ applies the NEQ predicate on the "next_reminder_at" field.
func NextReminderAtNEQ(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldNEQ(FieldNextReminderAt, v))
}

// NextReminderAtIn applies the In predicate on the "next_reminder_at" field.
func NextReminderAtIn(vs ...time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldIn(FieldNextReminderAt, vs...))
}

// NextReminderAtNotIn applies the NotIn predicate on the "next_reminder_at" field.
func NextReminderAtNotIn(vs ...time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldNotIn(FieldNextReminderAt, vs...))
}

// NextReminderAtGT applies the GT predicate on the "next_reminder_at" field.
func NextReminderAtGT(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldGT(FieldNextReminderAt, v))
}

// NextReminderAtGTE applies the GTE predicate on the "next_reminder_at" field.
func NextReminderAtGTE(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldGTE(FieldNextReminderAt, v))
}

// NextReminderAtLT applies the LT predicate on the "next_reminder_at" field.
func NextReminderAtLT(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldLT(FieldNextReminderAt, v))
}

// NextReminderAtLTE applies the LTE predicate on the "next_reminder_at" field.
func NextReminderAtLTE(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldLTE(FieldNextReminderAt, v))
}

// NextReminderAtIsNil applies the IsNil predicate on the "next_reminder_at" field.
func NextReminderAtIsNil() predicate.Commitment {
	return predicate.Commitment(sql.FieldIsNull(FieldNextReminderAt))
}

// NextReminderAtNotNil applies the NotNil predicate on the "next_reminder_at" field.
func NextReminderAtNotNil() predicate.Commitment {
	return predicate.Commitment(sql.FieldNotNull(FieldNextReminderAt))
}

// ReminderCountEQ applies the EQ predicate on the "reminder_count" field.
func ReminderCountEQ(v int) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldReminderCount, v))
}

// ReminderCountNEQ applies the NEQ predicate on the "reminder_count" field.
func ReminderCountNEQ(v int) predicate.Commitment {
	return predicate.Commitment(sql.FieldNEQ(FieldReminderCount, v))
}

// ReminderCountIn applies the In predicate on the "reminder_count" field.
func ReminderCountIn(vs ...int) predicate.Commitment {
	return predicate.Commitment(sql.FieldIn(FieldReminderCount, vs...))
}

// ReminderCountNotIn applies the NotIn predicate on the "reminder_count" field.
func ReminderCountNotIn(vs ...int) predicate.Commitment {
	return predicate.Commitment(sql.FieldNotIn(FieldReminderCount, vs...))
}

// ReminderCountGT applies the GT predicate on the "reminder_count" field.
func ReminderCountGT(v int) predicate.Commitment {
	return predicate.Commitment(sql.FieldGT(FieldReminderCount, v))
}

// ReminderCountGTE applies the GTE predicate on the "reminder_count" field.
func ReminderCountGTE(v int) predicate.Commitment {
	return predicate.Commitment(sql.FieldGTE(FieldReminderCount, v))
}

// ReminderCountLT applies the LT predicate on the "reminder_count" field.
func ReminderCountLT(v int) predicate.Commitment {
	return predicate.Commitment(sql.FieldLT(FieldReminderCount, v))
}

// ReminderCountLTE applies the LTE predicate on the "reminder_count" field.
func ReminderCountLTE(v int) predicate.Commitment {
	return predicate.Commitment(sql.FieldLTE(FieldReminderCount, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.Commitment {
	return predicate.Commitment(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.Commitment {
	return predicate.Commitment(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.Commitment {
	return predicate.Commitment(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.Commitment {
	return predicate.Commitment(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.Commitment {
	return predicate.Commitment(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.Commitment {
	return predicate.Commitment(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.Commitment {
	return predicate.Commitment(sql.FieldLTE(FieldConfidence, v))
}

// NeedsReviewEQ applies the EQ predicate on the "needs_review" field.
func NeedsReviewEQ(v bool) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldNeedsReview, v))
}

// NeedsReviewNEQ applies the NEQ predicate on the "needs_review" field.
func NeedsReviewNEQ(v bool) predicate.Commitment {
	return predicate.Commitment(sql.FieldNEQ(FieldNeedsReview, v))
}

// ConfirmationCountEQ applies the EQ predicate on the "confirmation_count" field.
func ConfirmationCountEQ(v int) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldConfirmationCount, v))
}

// ConfirmationCountNEQ applies the NEQ predicate on the "confirmation_count" field.
func ConfirmationCountNEQ(v int) predicate.Commitment {
	return predicate.Commitment(sql.FieldNEQ(FieldConfirmationCount, v))
}

// ConfirmationCountIn applies the In predicate on the "confirmation_count" field.
func ConfirmationCountIn(vs ...int) predicate.Commitment {
	return predicate.Commitment(sql.FieldIn(FieldConfirmationCount, vs...))
}

// ConfirmationCountNotIn applies the NotIn predicate on the "confirmation_count" field.
func ConfirmationCountNotIn(vs ...int) predicate.Commitment {
	return predicate.Commitment(sql.FieldNotIn(FieldConfirmationCount, vs...))
}

// ConfirmationCountGT applies the GT predicate on the "confirmation_count" field.
func ConfirmationCountGT(v int) predicate.Commitment {
	return predicate.Commitment(sql.FieldGT(FieldConfirmationCount, v))
}

// ConfirmationCountGTE applies the GTE predicate on the "confirmation_count" field.
func ConfirmationCountGTE(v int) predicate.Commitment {
	return predicate.Commitment(sql.FieldGTE(FieldConfirmationCount, v))
}

// ConfirmationCountLT applies the LT predicate on the "confirmation_count" field.
func ConfirmationCountLT(v int) predicate.Commitment {
	return predicate.Commitment(sql.FieldLT(FieldConfirmationCount, v))
}

// ConfirmationCountLTE applies the LTE predicate on the "confirmation_count" field.
func ConfirmationCountLTE(v int) predicate.Commitment {
	return predicate.Commitment(sql.FieldLTE(FieldConfirmationCount, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.Commitment {
	return predicate.Commitment(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.Commitment {
	return predicate.Commitment(sql.FieldNotNull(FieldMetadata))
}

// EmbeddingEQ applies the EQ predicate on the "embedding" field.
func EmbeddingEQ(v pgvector.Vector) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldEmbedding, v))
}

// EmbeddingNEQ applies the NEQ predicate on the "embedding" field.
func EmbeddingNEQ(v pgvector.Vector) predicate.Commitment {
	return predicate.Commitment(sql.FieldNEQ(FieldEmbedding, v))
}

// EmbeddingIn applies the In predicate on the "embedding" field.
func EmbeddingIn(vs ...pgvector.Vector) predicate.Commitment {
	return predicate.Commitment(sql.FieldIn(FieldEmbedding, vs...))
}

// EmbeddingNotIn applies the NotIn predicate on the "embedding" field.
func EmbeddingNotIn(vs ...pgvector.Vector) predicate.Commitment {
	return predicate.Commitment(sql.FieldNotIn(FieldEmbedding, vs...))
}

// EmbeddingGT applies the GT predicate on the "embedding" field.
func EmbeddingGT(v pgvector.Vector) predicate.Commitment {
	return predicate.Commitment(sql.FieldGT(FieldEmbedding, v))
}

// EmbeddingGTE applies the GTE predicate on the "embedding" field.
func EmbeddingGTE(v pgvector.Vector) predicate.Commitment {
	return predicate.Commitment(sql.FieldGTE(FieldEmbedding, v))
}

// EmbeddingLT applies the LT predicate on the "embedding" field.
func EmbeddingLT(v pgvector.Vector) predicate.Commitment {
	return predicate.Commitment(sql.FieldLT(FieldEmbedding, v))
}

// EmbeddingLTE applies the LTE predicate on the "embedding" field.
func EmbeddingLTE(v pgvector.Vector) predicate.Commitment {
	return predicate.Commitment(sql.FieldLTE(FieldEmbedding, v))
}

// EmbeddingIsNil applies the IsNil predicate on the "embedding" field.
func EmbeddingIsNil() predicate.Commitment {
	return predicate.Commitment(sql.FieldIsNull(FieldEmbedding))
}

// EmbeddingNotNil applies the NotNil predicate on the "embedding" field.
func EmbeddingNotNil() predicate.Commitment {
	return predicate.Commitment(sql.FieldNotNull(FieldEmbedding))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldLTE(FieldUpdatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Commitment {
	return predicate.Commitment(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Commitment {
	return predicate.Commitment(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Commitment {
	return predicate.Commitment(sql.FieldNotNull(FieldDeletedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Commitment) predicate.Commitment {
	return predicate.Commitment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Commitment) predicate.Commitment {
	return predicate.Commitment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Commitment) predicate.Commitment {
	return predicate.Commitment(sql.NotPredicates(p))
}
