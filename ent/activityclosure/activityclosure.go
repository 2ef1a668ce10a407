// Code generated by ent, DO NOT EDIT.

package activityclosure

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the activityclosure type in the database.
	Label = "activity_closure"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "closure_id"
	// FieldAncestorID holds the string denoting the ancestor_id field in the database.
	FieldAncestorID = "ancestor_id"
	// FieldDescendantID holds the string denoting the descendant_id field in the database.
	FieldDescendantID = "descendant_id"
	// FieldDepth holds the string denoting the depth field in the database.
	FieldDepth = "depth"
	// Table holds the table name of the activityclosure in the database.
	Table = "activity_closures"
)

// Columns holds all SQL columns for activityclosure fields.
var Columns = []string{
	FieldID,
	FieldAncestorID,
	FieldDescendantID,
	FieldDepth,
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

// OrderOption defines the ordering options for the ActivityClosure queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAncestorID orders the results by the ancestor_id field.
func ByAncestorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAncestorID, opts...).ToFunc()
}

// ByDescendantID orders the results by the descendant_id field.
func ByDescendantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescendantID, opts...).ToFunc()
}

// ByDepth orders the results by the depth field.
func ByDepth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDepth, opts...).ToFunc()
}
