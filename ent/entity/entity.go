// Code generated by ent, DO NOT EDIT.

package entity

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the entity type in the database.
	Label = "entity"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "entity_id"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldOrganizationID holds the string denoting the organization_id field in the database.
	FieldOrganizationID = "organization_id"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldIsOwner holds the string denoting the is_owner field in the database.
	FieldIsOwner = "is_owner"
	// FieldIsBot holds the string denoting the is_bot field in the database.
	FieldIsBot = "is_bot"
	// FieldCreationSource holds the string denoting the creation_source field in the database.
	FieldCreationSource = "creation_source"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// EdgeIdentifiers holds the string denoting the identifiers edge name in mutations.
	EdgeIdentifiers = "identifiers"
	// EdgeFacts holds the string denoting the facts edge name in mutations.
	EdgeFacts = "facts"
	// EdgeOrganization holds the string denoting the organization edge name in mutations.
	EdgeOrganization = "organization"
	// EdgeMembers holds the string denoting the members edge name in mutations.
	EdgeMembers = "members"
	// EntityIdentifierFieldID holds the string denoting the ID field of the EntityIdentifier.
	EntityIdentifierFieldID = "identifier_id"
	// EntityFactFieldID holds the string denoting the ID field of the EntityFact.
	EntityFactFieldID = "fact_id"
	// Table holds the table name of the entity in the database.
	Table = "entities"
	// IdentifiersTable is the table that holds the identifiers relation/edge.
	IdentifiersTable = "entity_identifiers"
	// IdentifiersInverseTable is the table name for the EntityIdentifier entity.
	// It exists in this package in order to avoid circular dependency with the "entityidentifier" package.
	IdentifiersInverseTable = "entity_identifiers"
	// IdentifiersColumn is the table column denoting the identifiers relation/edge.
	IdentifiersColumn = "entity_id"
	// FactsTable is the table that holds the facts relation/edge.
	FactsTable = "entity_facts"
	// FactsInverseTable is the table name for the EntityFact entity.
	// It exists in this package in order to avoid circular dependency with the "entityfact" package.
	FactsInverseTable = "entity_facts"
	// FactsColumn is the table column denoting the facts relation/edge.
	FactsColumn = "entity_id"
	// OrganizationTable is the table that holds the organization relation/edge.
	OrganizationTable = "entities"
	// OrganizationColumn is the table column denoting the organization relation/edge.
	OrganizationColumn = "organization_id"
	// MembersTable is the table that holds the members relation/edge.
	MembersTable = "entities"
	// MembersColumn is the table column denoting the members relation/edge.
	MembersColumn = "organization_id"
)

// Columns holds all SQL columns for entity fields.
var Columns = []string{
	FieldID,
	FieldType,
	FieldName,
	FieldOrganizationID,
	FieldNotes,
	FieldIsOwner,
	FieldIsBot,
	FieldCreationSource,
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
	// DefaultIsOwner holds the default value on creation for the "is_owner" field.
	DefaultIsOwner bool
	// DefaultIsBot holds the default value on creation for the "is_bot" field.
	DefaultIsBot bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Type defines the type for the "type" enum field.
type Type string

// Type values.
const (
	TypePerson       Type = "person"
	TypeOrganization Type = "organization"
)

func (_type Type) String() string {
	return string(_type)
}

// TypeValidator is a validator for the "type" field enum values. It is called by the builders before save.
func TypeValidator(_type Type) error {
	switch _type {
	case TypePerson, TypeOrganization:
		return nil
	default:
		return fmt.Errorf("entity: invalid enum value for type field: %q", _type)
	}
}

// CreationSource defines the type for the "creation_source" enum field.
type CreationSource string

// CreationSourceManual is the default value of the CreationSource enum.
const DefaultCreationSource = CreationSourceManual

// CreationSource values.
const (
	CreationSourceManual    CreationSource = "manual"
	CreationSourceExtracted CreationSource = "extracted"
	CreationSourceImported  CreationSource = "imported"
)

func (cs CreationSource) String() string {
	return string(cs)
}

// CreationSourceValidator is a validator for the "creation_source" field enum values. It is called by the builders before save.
func CreationSourceValidator(cs CreationSource) error {
	switch cs {
	case CreationSourceManual, CreationSourceExtracted, CreationSourceImported:
		return nil
	default:
		return fmt.Errorf("entity: invalid enum value for creation_source field: %q", cs)
	}
}

// OrderOption defines the ordering options for the Entity queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByOrganizationID orders the results by the organization_id field.
func ByOrganizationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrganizationID, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByIsOwner orders the results by the is_owner field.
func ByIsOwner(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsOwner, opts...).ToFunc()
}

// ByIsBot orders the results by the is_bot field.
func ByIsBot(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsBot, opts...).ToFunc()
}

// ByCreationSource orders the results by the creation_source field.
func ByCreationSource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreationSource, opts...).ToFunc()
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

// ByIdentifiersCount orders the results by identifiers count.
func ByIdentifiersCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newIdentifiersStep(), opts...)
	}
}

// ByIdentifiers orders the results by identifiers terms.
func ByIdentifiers(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newIdentifiersStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByFactsCount orders the results by facts count.
func ByFactsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newFactsStep(), opts...)
	}
}

// ByFacts orders the results by facts terms.
func ByFacts(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFactsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByOrganizationField orders the results by organization field.
func ByOrganizationField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOrganizationStep(), sql.OrderByField(field, opts...))
	}
}

// ByMembersCount orders the results by members count.
func ByMembersCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMembersStep(), opts...)
	}
}

// ByMembers orders the results by members terms.
func ByMembers(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMembersStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newIdentifiersStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(IdentifiersInverseTable, EntityIdentifierFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, IdentifiersTable, IdentifiersColumn),
	)
}
func newFactsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FactsInverseTable, EntityFactFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, FactsTable, FactsColumn),
	)
}
func newOrganizationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(Table, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, OrganizationTable, OrganizationColumn),
	)
}
func newMembersStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(Table, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MembersTable, MembersColumn),
	)
}
