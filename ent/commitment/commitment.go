// Code generated by ent, DO NOT EDIT.

package commitment

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the commitment type in the database.
	Label = "commitment"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "commitment_id"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldFromEntityID holds the string denoting the from_entity_id field in the database.
	FieldFromEntityID = "from_entity_id"
	// FieldToEntityID holds the string denoting the to_entity_id field in the database.
	FieldToEntityID = "to_entity_id"
	// FieldActivityID holds the string denoting the activity_id field in the database.
	FieldActivityID = "activity_id"
	// FieldSourceMessageID holds the string denoting the source_message_id field in the database.
	FieldSourceMessageID = "source_message_id"
	// FieldSourceInteractionID holds the string denoting the source_interaction_id field in the database.
	FieldSourceInteractionID = "source_interaction_id"
	// FieldDueDate holds the string denoting the due_date field in the database.
	FieldDueDate = "due_date"
	// FieldRecurrenceRule holds the string denoting the recurrence_rule field in the database.
	FieldRecurrenceRule = "recurrence_rule"
	// FieldNextReminderAt holds the string denoting the next_reminder_at field in the database.
	FieldNextReminderAt = "next_reminder_at"
	// FieldReminderCount holds the string denoting the reminder_count field in the database.
	FieldReminderCount = "reminder_count"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldNeedsReview holds the string denoting the needs_review field in the database.
	FieldNeedsReview = "needs_review"
	// FieldConfirmationCount holds the string denoting the confirmation_count field in the database.
	FieldConfirmationCount = "confirmation_count"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldEmbedding holds the string denoting the embedding field in the database.
	FieldEmbedding = "embedding"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// Table holds the table name of the commitment in the database.
	Table = "commitments"
)

// Columns holds all SQL columns for commitment fields.
var Columns = []string{
	FieldID,
	FieldType,
	FieldTitle,
	FieldDescription,
	FieldStatus,
	FieldFromEntityID,
	FieldToEntityID,
	FieldActivityID,
	FieldSourceMessageID,
	FieldSourceInteractionID,
	FieldDueDate,
	FieldRecurrenceRule,
	FieldNextReminderAt,
	FieldReminderCount,
	FieldConfidence,
	FieldNeedsReview,
	FieldConfirmationCount,
	FieldMetadata,
	FieldEmbedding,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldDeletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultReminderCount holds the default value on creation for the "reminder_count" field.
	DefaultReminderCount int
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence float64
	// ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	ConfidenceValidator func(float64) error
	// DefaultNeedsReview holds the default value on creation for the "needs_review" field.
	DefaultNeedsReview bool
	// DefaultConfirmationCount holds the default value on creation for the "confirmation_count" field.
	DefaultConfirmationCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Type defines the type for the "type" enum field.
type Type string

// TypePromise is the default value of the Type enum.
const DefaultType = TypePromise

// Type values.
const (
	TypePromise   Type = "promise"
	TypeRequest   Type = "request"
	TypeAgreement Type = "agreement"
	TypeDeadline  Type = "deadline"
	TypeReminder  Type = "reminder"
	TypeRecurring Type = "recurring"
)

func (_type Type) String() string {
	return string(_type)
}

// TypeValidator is a validator for the "type" field enum values. It is called by the builders before save.
func TypeValidator(_type Type) error {
	switch _type {
	case TypePromise, TypeRequest, TypeAgreement, TypeDeadline, TypeReminder, TypeRecurring:
		return nil
	default:
		return fmt.Errorf("commitment: invalid enum value for type field: %q", _type)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusDraft is the default value of the Status enum.
const DefaultStatus = StatusDraft

// Status values.
const (
	StatusDraft      Status = "draft"
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusOverdue    Status = "overdue"
	StatusDeferred   Status = "deferred"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusDraft, StatusPending, StatusInProgress, StatusCompleted, StatusCancelled, StatusOverdue, StatusDeferred:
		return nil
	default:
		return fmt.Errorf("commitment: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Commitment queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByFromEntityID orders the results by the from_entity_id field.
func ByFromEntityID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromEntityID, opts...).ToFunc()
}

// ByToEntityID orders the results by the to_entity_id field.
func ByToEntityID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToEntityID, opts...).ToFunc()
}

// ByActivityID orders the results by the activity_id field.
func ByActivityID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActivityID, opts...).ToFunc()
}

// BySourceMessageID orders the results by the source_message_id field.
func BySourceMessageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceMessageID, opts...).ToFunc()
}

// BySourceInteractionID orders the results by the source_interaction_id field.
func BySourceInteractionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceInteractionID, opts...).ToFunc()
}

// ByDueDate orders the results by the due_date field.
func ByDueDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDueDate, opts...).ToFunc()
}

// ByRecurrenceRule orders the results by the recurrence_rule field.
func ByRecurrenceRule(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecurrenceRule, opts...).ToFunc()
}

// ByNextReminderAt orders the results by the next_reminder_at field.
func ByNextReminderAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextReminderAt, opts...).ToFunc()
}

// ByReminderCount orders the results by the reminder_count field.
func ByReminderCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReminderCount, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByNeedsReview orders the results by the needs_review field.
func ByNeedsReview(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNeedsReview, opts...).ToFunc()
}

// ByConfirmationCount orders the results by the confirmation_count field.
func ByConfirmationCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfirmationCount, opts...).ToFunc()
}

// ByEmbedding orders the results by the embedding field.
func ByEmbedding(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmbedding, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}
