// Code generated by ent, DO NOT EDIT.

package entityidentifier

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the entityidentifier type in the database.
	Label = "entity_identifier"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "identifier_id"
	// FieldEntityID holds the string denoting the entity_id field in the database.
	FieldEntityID = "entity_id"
	// FieldIdentifierType holds the string denoting the identifier_type field in the database.
	FieldIdentifierType = "identifier_type"
	// FieldIdentifierValue holds the string denoting the identifier_value field in the database.
	FieldIdentifierValue = "identifier_value"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeEntity holds the string denoting the entity edge name in mutations.
	EdgeEntity = "entity"
	// EntityFieldID holds the string denoting the ID field of the Entity.
	EntityFieldID = "entity_id"
	// Table holds the table name of the entityidentifier in the database.
	Table = "entity_identifiers"
	// EntityTable is the table that holds the entity relation/edge.
	EntityTable = "entity_identifiers"
	// EntityInverseTable is the table name for the Entity entity.
	// It exists in this package in order to avoid circular dependency with the "entity" package.
	EntityInverseTable = "entities"
	// EntityColumn is the table column denoting the entity relation/edge.
	EntityColumn = "entity_id"
)

// Columns holds all SQL columns for entityidentifier fields.
var Columns = []string{
	FieldID,
	FieldEntityID,
	FieldIdentifierType,
	FieldIdentifierValue,
	FieldMetadata,
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

// OrderOption defines the ordering options for the EntityIdentifier queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEntityID orders the results by the entity_id field.
func ByEntityID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntityID, opts...).ToFunc()
}

// ByIdentifierType orders the results by the identifier_type field.
func ByIdentifierType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIdentifierType, opts...).ToFunc()
}

// ByIdentifierValue orders the results by the identifier_value field.
func ByIdentifierValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIdentifierValue, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByEntityField orders the results by entity field.
func ByEntityField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEntityStep(), sql.OrderByField(field, opts...))
	}
}
func newEntityStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EntityInverseTable, EntityFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, EntityTable, EntityColumn),
	)
}
