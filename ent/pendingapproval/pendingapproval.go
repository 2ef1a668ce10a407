// Code generated by ent, DO NOT EDIT.

package pendingapproval

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the pendingapproval type in the database.
	Label = "pending_approval"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "approval_id"
	// FieldItemType holds the string denoting the item_type field in the database.
	FieldItemType = "item_type"
	// FieldTargetID holds the string denoting the target_id field in the database.
	FieldTargetID = "target_id"
	// FieldBatchID holds the string denoting the batch_id field in the database.
	FieldBatchID = "batch_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldSourceQuote holds the string denoting the source_quote field in the database.
	FieldSourceQuote = "source_quote"
	// FieldSourceInteractionID holds the string denoting the source_interaction_id field in the database.
	FieldSourceInteractionID = "source_interaction_id"
	// FieldSourceEntityID holds the string denoting the source_entity_id field in the database.
	FieldSourceEntityID = "source_entity_id"
	// FieldContext holds the string denoting the context field in the database.
	FieldContext = "context"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldReviewedAt holds the string denoting the reviewed_at field in the database.
	FieldReviewedAt = "reviewed_at"
	// Table holds the table name of the pendingapproval in the database.
	Table = "pending_approvals"
)

// Columns holds all SQL columns for pendingapproval fields.
var Columns = []string{
	FieldID,
	FieldItemType,
	FieldTargetID,
	FieldBatchID,
	FieldStatus,
	FieldConfidence,
	FieldSourceQuote,
	FieldSourceInteractionID,
	FieldSourceEntityID,
	FieldContext,
	FieldCreatedAt,
	FieldReviewedAt,
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
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence float64
	// ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	ConfidenceValidator func(float64) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// ItemType defines the type for the "item_type" enum field.
type ItemType string

// ItemType values.
const (
	ItemTypeFact       ItemType = "fact"
	ItemTypeProject    ItemType = "project"
	ItemTypeTask       ItemType = "task"
	ItemTypeCommitment ItemType = "commitment"
)

func (it ItemType) String() string {
	return string(it)
}

// ItemTypeValidator is a validator for the "item_type" field enum values. It is called by the builders before save.
func ItemTypeValidator(it ItemType) error {
	switch it {
	case ItemTypeFact, ItemTypeProject, ItemTypeTask, ItemTypeCommitment:
		return nil
	default:
		return fmt.Errorf("pendingapproval: invalid enum value for item_type field: %q", it)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return nil
	default:
		return fmt.Errorf("pendingapproval: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the PendingApproval queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByItemType orders the results by the item_type field.
func ByItemType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemType, opts...).ToFunc()
}

// ByTargetID orders the results by the target_id field.
func ByTargetID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetID, opts...).ToFunc()
}

// ByBatchID orders the results by the batch_id field.
func ByBatchID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBatchID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// BySourceQuote orders the results by the source_quote field.
func BySourceQuote(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceQuote, opts...).ToFunc()
}

// BySourceInteractionID orders the results by the source_interaction_id field.
func BySourceInteractionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceInteractionID, opts...).ToFunc()
}

// BySourceEntityID orders the results by the source_entity_id field.
func BySourceEntityID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceEntityID, opts...).ToFunc()
}

// ByContext orders the results by the context field.
func ByContext(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContext, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByReviewedAt orders the results by the reviewed_at field.
func ByReviewedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewedAt, opts...).ToFunc()
}
