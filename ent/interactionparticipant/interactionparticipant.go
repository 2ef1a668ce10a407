// Code generated by ent, DO NOT EDIT.

package interactionparticipant

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the interactionparticipant type in the database.
	Label = "interaction_participant"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "participant_id"
	// FieldInteractionID holds the string denoting the interaction_id field in the database.
	FieldInteractionID = "interaction_id"
	// FieldEntityID holds the string denoting the entity_id field in the database.
	FieldEntityID = "entity_id"
	// FieldRole holds the string denoting the role field in the database.
	FieldRole = "role"
	// FieldIdentifierType holds the string denoting the identifier_type field in the database.
	FieldIdentifierType = "identifier_type"
	// FieldIdentifierValue holds the string denoting the identifier_value field in the database.
	FieldIdentifierValue = "identifier_value"
	// FieldDisplayName holds the string denoting the display_name field in the database.
	FieldDisplayName = "display_name"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeInteraction holds the string denoting the interaction edge name in mutations.
	EdgeInteraction = "interaction"
	// InteractionFieldID holds the string denoting the ID field of the Interaction.
	InteractionFieldID = "interaction_id"
	// Table holds the table name of the interactionparticipant in the database.
	Table = "interaction_participants"
	// InteractionTable is the table that holds the interaction relation/edge.
	InteractionTable = "interaction_participants"
	// InteractionInverseTable is the table name for the Interaction entity.
	// It exists in this package in order to avoid circular dependency with the "interaction" package.
	InteractionInverseTable = "interactions"
	// InteractionColumn is the table column denoting the interaction relation/edge.
	InteractionColumn = "interaction_id"
)

// Columns holds all SQL columns for interactionparticipant fields.
var Columns = []string{
	FieldID,
	FieldInteractionID,
	FieldEntityID,
	FieldRole,
	FieldIdentifierType,
	FieldIdentifierValue,
	FieldDisplayName,
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

// Role defines the type for the "role" enum field.
type Role string

// RoleParticipant is the default value of the Role enum.
const DefaultRole = RoleParticipant

// Role values.
const (
	RoleInitiator   Role = "initiator"
	RoleRecipient   Role = "recipient"
	RoleParticipant Role = "participant"
	RoleSelf        Role = "self"
)

func (r Role) String() string {
	return string(r)
}

// RoleValidator is a validator for the "role" field enum values. It is called by the builders before save.
func RoleValidator(r Role) error {
	switch r {
	case RoleInitiator, RoleRecipient, RoleParticipant, RoleSelf:
		return nil
	default:
		return fmt.Errorf("interactionparticipant: invalid enum value for role field: %q", r)
	}
}

// OrderOption defines the ordering options for the InteractionParticipant queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByInteractionID orders the results by the interaction_id field.
func ByInteractionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInteractionID, opts...).ToFunc()
}

// ByEntityID orders the results by the entity_id field.
func ByEntityID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntityID, opts...).ToFunc()
}

// ByRole orders the results by the role field.
func ByRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRole, opts...).ToFunc()
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

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByInteractionField orders the results by interaction field.
func ByInteractionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newInteractionStep(), sql.OrderByField(field, opts...))
	}
}
func newInteractionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(InteractionInverseTable, InteractionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, InteractionTable, InteractionColumn),
	)
}
