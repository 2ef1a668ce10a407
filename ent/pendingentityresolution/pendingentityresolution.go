// Code generated by ent, DO NOT EDIT.

package pendingentityresolution

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the pendingentityresolution type in the database.
	Label = "pending_entity_resolution"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "resolution_id"
	// FieldIdentifierType holds the string denoting the identifier_type field in the database.
	FieldIdentifierType = "identifier_type"
	// FieldIdentifierValue holds the string denoting the identifier_value field in the database.
	FieldIdentifierValue = "identifier_value"
	// FieldDisplayName holds the string denoting the display_name field in the database.
	FieldDisplayName = "display_name"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldResolution holds the string denoting the resolution field in the database.
	FieldResolution = "resolution"
	// FieldResolvedEntityID holds the string denoting the resolved_entity_id field in the database.
	FieldResolvedEntityID = "resolved_entity_id"
	// FieldSuggestions holds the string denoting the suggestions field in the database.
	FieldSuggestions = "suggestions"
	// FieldSampleMessageIds holds the string denoting the sample_message_ids field in the database.
	FieldSampleMessageIds = "sample_message_ids"
	// FieldFirstSeenAt holds the string denoting the first_seen_at field in the database.
	FieldFirstSeenAt = "first_seen_at"
	// FieldResolvedAt holds the string denoting the resolved_at field in the database.
	FieldResolvedAt = "resolved_at"
	// Table holds the table name of the pendingentityresolution in the database.
	Table = "pending_entity_resolutions"
)

// Columns holds all SQL columns for pendingentityresolution fields.
var Columns = []string{
	FieldID,
	FieldIdentifierType,
	FieldIdentifierValue,
	FieldDisplayName,
	FieldStatus,
	FieldResolution,
	FieldResolvedEntityID,
	FieldSuggestions,
	FieldSampleMessageIds,
	FieldFirstSeenAt,
	FieldResolvedAt,
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
	// DefaultFirstSeenAt holds the default value on creation for the "first_seen_at" field.
	DefaultFirstSeenAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending  Status = "pending"
	StatusResolved Status = "resolved"
	StatusMerged   Status = "merged"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusResolved, StatusMerged:
		return nil
	default:
		return fmt.Errorf("pendingentityresolution: invalid enum value for status field: %q", s)
	}
}

// Resolution defines the type for the "resolution" enum field.
type Resolution string

// Resolution values.
const (
	ResolutionManual Resolution = "manual"
	ResolutionAuto   Resolution = "auto"
)

func (r Resolution) String() string {
	return string(r)
}

// ResolutionValidator is a validator for the "resolution" field enum values. It is called by the builders before save.
func ResolutionValidator(r Resolution) error {
	switch r {
	case ResolutionManual, ResolutionAuto:
		return nil
	default:
		return fmt.Errorf("pendingentityresolution: invalid enum value for resolution field: %q", r)
	}
}

// OrderOption defines the ordering options for the PendingEntityResolution queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByIdentifierType orders the results by the identifier_type field.
func ByIdentifierType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIdentifierType, opts...).ToFunc()
}

// ByIdentifierValue orders the results by the identifier_value field.
func ByIdentifierValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIdentifierValue, opts...).ToFunc()
}

// ByDisplayName orders the results by the display_name field.
func ByDisplayName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisplayName, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByResolution orders the results by the resolution field.
func ByResolution(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolution, opts...).ToFunc()
}

// ByResolvedEntityID orders the results by the resolved_entity_id field.
func ByResolvedEntityID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolvedEntityID, opts...).ToFunc()
}

// ByFirstSeenAt orders the results by the first_seen_at field.
func ByFirstSeenAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstSeenAt, opts...).ToFunc()
}

// ByResolvedAt orders the results by the resolved_at field.
func ByResolvedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolvedAt, opts...).ToFunc()
}
