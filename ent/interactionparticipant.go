// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/memograph/memograph/ent/interaction"
	"github.com/memograph/memograph/ent/interactionparticipant"
)

// InteractionParticipant is the model entity for the InteractionParticipant schema.
type InteractionParticipant struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// InteractionID holds the value of the "interaction_id" field.
	InteractionID string `json:"interaction_id,omitempty"`
	// EntityID holds the value of the "entity_id" field.
	EntityID *string `json:"entity_id,omitempty"`
	// Role holds the value of the "role" field.
	Role interactionparticipant.Role `json:"role,omitempty"`
	// IdentifierType holds the value of the "identifier_type" field.
	IdentifierType string `json:"identifier_type,omitempty"`
	// IdentifierValue holds the value of the "identifier_value" field.
	IdentifierValue string `json:"identifier_value,omitempty"`
	// DisplayName holds the value of the "display_name" field.
	DisplayName string `json:"display_name,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InteractionParticipantQuery when eager-loading is set.
	Edges        InteractionParticipantEdges `json:"edges"`
	selectValues sql.SelectValues
}

// InteractionParticipantEdges holds the relations/edges for other nodes in the graph.
type InteractionParticipantEdges struct {
	// Interaction holds the value of the interaction edge.
	Interaction *Interaction `json:"interaction,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// InteractionOrErr returns the Interaction value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InteractionParticipantEdges) InteractionOrErr() (*Interaction, error) {
	if e.Interaction != nil {
		return e.Interaction, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: interaction.Label}
	}
	return nil, &NotLoadedError{edge: "interaction"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*InteractionParticipant) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case interactionparticipant.FieldID, interactionparticipant.FieldInteractionID, interactionparticipant.FieldEntityID, interactionparticipant.FieldRole, interactionparticipant.FieldIdentifierType, interactionparticipant.FieldIdentifierValue, interactionparticipant.FieldDisplayName:
			values[i] = new(sql.NullString)
		case interactionparticipant.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the InteractionParticipant fields.
func (_m *InteractionParticipant) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case interactionparticipant.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case interactionparticipant.FieldInteractionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field interaction_id", values[i])
			} else if value.Valid {
				_m.InteractionID = value.String
			}
		case interactionparticipant.FieldEntityID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entity_id", values[i])
			} else if value.Valid {
				_m.EntityID = new(string)
				*_m.EntityID = value.String
			}
		case interactionparticipant.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = interactionparticipant.Role(value.String)
			}
		case interactionparticipant.FieldIdentifierType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field identifier_type", values[i])
			} else if value.Valid {
				_m.IdentifierType = value.String
			}
		case interactionparticipant.FieldIdentifierValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field identifier_value", values[i])
			} else if value.Valid {
				_m.IdentifierValue = value.String
			}
		case interactionparticipant.FieldDisplayName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field display_name", values[i])
			} else if value.Valid {
				_m.DisplayName = value.String
			}
		case interactionparticipant.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the InteractionParticipant.
// This includes values selected through modifiers, order, etc.
func (_m *InteractionParticipant) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryInteraction queries the "interaction" edge of the InteractionParticipant entity.
func (_m *InteractionParticipant) QueryInteraction() *InteractionQuery {
	return NewInteractionParticipantClient(_m.config).QueryInteraction(_m)
}

// Update returns a builder for updating this InteractionParticipant.
// Note that you need to call InteractionParticipant.Unwrap() before calling this method if this InteractionParticipant
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *InteractionParticipant) Update() *InteractionParticipantUpdateOne {
	return NewInteractionParticipantClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the InteractionParticipant entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *InteractionParticipant) Unwrap() *InteractionParticipant {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: InteractionParticipant is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *InteractionParticipant) String() string {
	var builder strings.Builder
	builder.WriteString("InteractionParticipant(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("interaction_id=")
	builder.WriteString(_m.InteractionID)
	builder.WriteString(", ")
	if v := _m.EntityID; v != nil {
		builder.WriteString("entity_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("role=")
	builder.WriteString(fmt.Sprintf("%v", _m.Role))
	builder.WriteString(", ")
	builder.WriteString("identifier_type=")
	builder.WriteString(_m.IdentifierType)
	builder.WriteString(", ")
	builder.WriteString("identifier_value=")
	builder.WriteString(_m.IdentifierValue)
	builder.WriteString(", ")
	builder.WriteString("display_name=")
	builder.WriteString(_m.DisplayName)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// InteractionParticipants is a parsable slice of InteractionParticipant.
type InteractionParticipants []*InteractionParticipant
