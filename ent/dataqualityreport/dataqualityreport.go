// Code generated by ent, DO NOT EDIT.

package dataqualityreport

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the dataqualityreport type in the database.
	Label = "data_quality_report"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "report_id"
	// FieldTriggeredBy holds the string denoting the triggered_by field in the database.
	FieldTriggeredBy = "triggered_by"
	// FieldMetrics holds the string denoting the metrics field in the database.
	FieldMetrics = "metrics"
	// FieldIssues holds the string denoting the issues field in the database.
	FieldIssues = "issues"
	// FieldResolutions holds the string denoting the resolutions field in the database.
	FieldResolutions = "resolutions"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the dataqualityreport in the database.
	Table = "data_quality_reports"
)

// Columns holds all SQL columns for dataqualityreport fields.
var Columns = []string{
	FieldID,
	FieldTriggeredBy,
	FieldMetrics,
	FieldIssues,
	FieldResolutions,
	FieldCreatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// TriggeredBy defines the type for the "triggered_by" enum field.
type TriggeredBy string

// TriggeredBySchedule is the default value of the TriggeredBy enum.
const DefaultTriggeredBy = TriggeredBySchedule

// TriggeredBy values.
const (
	TriggeredBySchedule TriggeredBy = "schedule"
	TriggeredByManual   TriggeredBy = "manual"
)

func (tb TriggeredBy) String() string {
	return string(tb)
}

// TriggeredByValidator is a validator for the "triggered_by" field enum values. It is called by the builders before save.
func TriggeredByValidator(tb TriggeredBy) error {
	switch tb {
	case TriggeredBySchedule, TriggeredByManual:
		return nil
	default:
		return fmt.Errorf("dataqualityreport: invalid enum value for triggered_by field: %q", tb)
	}
}

// OrderOption defines the ordering options for the DataQualityReport queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTriggeredBy orders the results by the triggered_by field.
func ByTriggeredBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTriggeredBy, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
