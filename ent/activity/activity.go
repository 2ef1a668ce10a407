// Code generated by ent, DO NOT EDIT.

package activity

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the activity type in the database.
	Label = "activity"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "activity_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldActivityType holds the string denoting the activity_type field in the database.
	FieldActivityType = "activity_type"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldContext holds the string denoting the context field in the database.
	FieldContext = "context"
	// FieldParentID holds the string denoting the parent_id field in the database.
	FieldParentID = "parent_id"
	// FieldDepth holds the string denoting the depth field in the database.
	FieldDepth = "depth"
	// FieldMaterializedPath holds the string denoting the materialized_path field in the database.
	FieldMaterializedPath = "materialized_path"
	// FieldOwnerEntityID holds the string denoting the owner_entity_id field in the database.
	FieldOwnerEntityID = "owner_entity_id"
	// FieldClientEntityID holds the string denoting the client_entity_id field in the database.
	FieldClientEntityID = "client_entity_id"
	// FieldSourceInteractionID holds the string denoting the source_interaction_id field in the database.
	FieldSourceInteractionID = "source_interaction_id"
	// FieldStartsAt holds the string denoting the starts_at field in the database.
	FieldStartsAt = "starts_at"
	// FieldDueAt holds the string denoting the due_at field in the database.
	FieldDueAt = "due_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldTags holds the string denoting the tags field in the database.
	FieldTags = "tags"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldNeedsReview holds the string denoting the needs_review field in the database.
	FieldNeedsReview = "needs_review"
	// FieldConfirmationCount holds the string denoting the confirmation_count field in the database.
	FieldConfirmationCount = "confirmation_count"
	// FieldEmbedding holds the string denoting the embedding field in the database.
	FieldEmbedding = "embedding"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// Table holds the table name of the activity in the database.
	Table = "activities"
)

// Columns holds all SQL columns for activity fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldActivityType,
	FieldStatus,
	FieldPriority,
	FieldContext,
	FieldParentID,
	FieldDepth,
	FieldMaterializedPath,
	FieldOwnerEntityID,
	FieldClientEntityID,
	FieldSourceInteractionID,
	FieldStartsAt,
	FieldDueAt,
	FieldCompletedAt,
	FieldTags,
	FieldMetadata,
	FieldNeedsReview,
	FieldConfirmationCount,
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
	// DefaultPriority holds the default value on creation for the "priority" field.
	DefaultPriority int
	// DefaultDepth holds the default value on creation for the "depth" field.
	DefaultDepth int
	// DefaultMaterializedPath holds the default value on creation for the "materialized_path" field.
	DefaultMaterializedPath string
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

// ActivityType defines the type for the "activity_type" enum field.
type ActivityType string

// ActivityType values.
const (
	ActivityTypeArea        ActivityType = "area"
	ActivityTypeBusiness    ActivityType = "business"
	ActivityTypeDirection   ActivityType = "direction"
	ActivityTypeProject     ActivityType = "project"
	ActivityTypeInitiative  ActivityType = "initiative"
	ActivityTypeTask        ActivityType = "task"
	ActivityTypeMilestone   ActivityType = "milestone"
	ActivityTypeHabit       ActivityType = "habit"
	ActivityTypeLearning    ActivityType = "learning"
	ActivityTypeEventSeries ActivityType = "event_series"
)

func (at ActivityType) String() string {
	return string(at)
}

// ActivityTypeValidator is a validator for the "activity_type" field enum values. It is called by the builders before save.
func ActivityTypeValidator(at ActivityType) error {
	switch at {
	case ActivityTypeArea, ActivityTypeBusiness, ActivityTypeDirection, ActivityTypeProject, ActivityTypeInitiative, ActivityTypeTask, ActivityTypeMilestone, ActivityTypeHabit, ActivityTypeLearning, ActivityTypeEventSeries:
		return nil
	default:
		return fmt.Errorf("activity: invalid enum value for activity_type field: %q", at)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusDraft is the default value of the Status enum.
const DefaultStatus = StatusDraft

// Status values.
const (
	StatusDraft     Status = "draft"
	StatusIdea      Status = "idea"
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusArchived  Status = "archived"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusDraft, StatusIdea, StatusActive, StatusPaused, StatusCompleted, StatusCancelled, StatusArchived:
		return nil
	default:
		return fmt.Errorf("activity: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Activity queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByActivityType orders the results by the activity_type field.
func ByActivityType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActivityType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByContext orders the results by the context field.
func ByContext(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContext, opts...).ToFunc()
}

// ByParentID orders the results by the parent_id field.
func ByParentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentID, opts...).ToFunc()
}

// ByDepth orders the results by the depth field.
func ByDepth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDepth, opts...).ToFunc()
}

// ByMaterializedPath orders the results by the materialized_path field.
func ByMaterializedPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaterializedPath, opts...).ToFunc()
}

// ByOwnerEntityID orders the results by the owner_entity_id field.
func ByOwnerEntityID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerEntityID, opts...).ToFunc()
}

// ByClientEntityID orders the results by the client_entity_id field.
func ByClientEntityID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClientEntityID, opts...).ToFunc()
}

// BySourceInteractionID orders the results by the source_interaction_id field.
func BySourceInteractionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceInteractionID, opts...).ToFunc()
}

// ByStartsAt orders the results by the starts_at field.
func ByStartsAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartsAt, opts...).ToFunc()
}

// ByDueAt orders the results by the due_at field.
func ByDueAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDueAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
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
