// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/memograph/memograph/ent/entity"
	"github.com/memograph/memograph/ent/entityidentifier"
)

// EntityIdentifier is the model entity for the EntityIdentifier schema.
type EntityIdentifier struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// EntityID holds the value of the "entity_id" field.
	EntityID string `json:"entity_id,omitempty"`
	// e.g. telegram_user_id, phone, email
	IdentifierType string `json:"identifier_type,omitempty"`
	// IdentifierValue holds the value of the "identifier_value" field.
	IdentifierValue string `json:"identifier_value,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EntityIdentifierQuery when eager-loading is set.
	Edges        EntityIdentifierEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EntityIdentifierEdges holds the relations/edges for other nodes in the graph.
type EntityIdentifierEdges struct {
	// Entity holds the value of the entity edge.
	Entity *Entity `json:"entity,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// EntityOrErr returns the Entity value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EntityIdentifierEdges) EntityOrErr() (*Entity, error) {
	if e.Entity != nil {
		return e.Entity, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: entity.Label}
	}
	return nil, &NotLoadedError{edge: "entity"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EntityIdentifier) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case entityidentifier.FieldMetadata:
			values[i] = new([]byte)
		case entityidentifier.FieldID, entityidentifier.FieldEntityID, entityidentifier.FieldIdentifierType, entityidentifier.FieldIdentifierValue:
			values[i] = new(sql.NullString)
		case entityidentifier.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EntityIdentifier fields.
func (_m *EntityIdentifier) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case entityidentifier.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case entityidentifier.FieldEntityID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entity_id", values[i])
			} else if value.Valid {
				_m.EntityID = value.String
			}
		case entityidentifier.FieldIdentifierType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field identifier_type", values[i])
			} else if value.Valid {
				_m.IdentifierType = value.String
			}
		case entityidentifier.FieldIdentifierValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field identifier_value", values[i])
			} else if value.Valid {
				_m.IdentifierValue = value.String
			}
		case entityidentifier.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case entityidentifier.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EntityIdentifier.
// This includes values selected through modifiers, order, etc.
func (_m *EntityIdentifier) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEntity queries the "entity" edge of the EntityIdentifier entity.
func (_m *EntityIdentifier) QueryEntity() *EntityQuery {
	return NewEntityIdentifierClient(_m.config).QueryEntity(_m)
}

// Update returns a builder for updating this EntityIdentifier.
// Note that you need to call EntityIdentifier.Unwrap() before calling this method if this EntityIdentifier
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EntityIdentifier) Update() *EntityIdentifierUpdateOne {
	return NewEntityIdentifierClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EntityIdentifier entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EntityIdentifier) Unwrap() *EntityIdentifier {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EntityIdentifier is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EntityIdentifier) String() string {
	var builder strings.Builder
	builder.WriteString("EntityIdentifier(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("entity_id=")
	builder.WriteString(_m.EntityID)
	builder.WriteString(", ")
	builder.WriteString("identifier_type=")
	builder.WriteString(_m.IdentifierType)
	builder.WriteString(", ")
	builder.WriteString("identifier_value=")
	builder.WriteString(_m.IdentifierValue)
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EntityIdentifiers is a parsable slice of EntityIdentifier.
type EntityIdentifiers []*EntityIdentifier
