// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/memograph/memograph/ent/entity"
)

// Entity is the model entity for the Entity schema.
type Entity struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Type holds the value of the "type" field.
	Type entity.Type `json:"type,omitempty"`
	// Display name (trigram-indexed for ILIKE search)
	Name string `json:"name,omitempty"`
	// Self-reference to an entity of type organization
	OrganizationID *string `json:"organization_id,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes string `json:"notes,omitempty"`
	// The single 'me' entity; uniqueness enforced by partial index
	IsOwner bool `json:"is_owner,omitempty"`
	// IsBot holds the value of the "is_bot" field.
	IsBot bool `json:"is_bot,omitempty"`
	// CreationSource holds the value of the "creation_source" field.
	CreationSource entity.CreationSource `json:"creation_source,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Soft delete; excluded from default queries
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EntityQuery when eager-loading is set.
	Edges        EntityEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EntityEdges holds the relations/edges for other nodes in the graph.
type EntityEdges struct {
	// Identifiers holds the value of the identifiers edge.
	Identifiers []*EntityIdentifier `json:"identifiers,omitempty"`
	// Facts holds the value of the facts edge.
	Facts []*EntityFact `json:"facts,omitempty"`
	// Organization holds the value of the organization edge.
	Organization *Entity `json:"organization,omitempty"`
	// Members holds the value of the members edge.
	Members []*Entity `json:"members,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// IdentifiersOrErr returns the Identifiers value or an error if the edge
// was not loaded in eager-loading.
func (e EntityEdges) IdentifiersOrErr() ([]*EntityIdentifier, error) {
	if e.loadedTypes[0] {
		return e.Identifiers, nil
	}
	return nil, &NotLoadedError{edge: "identifiers"}
}

// FactsOrErr returns the Facts value or an error if the edge
// was not loaded in eager-loading.
func (e EntityEdges) FactsOrErr() ([]*EntityFact, error) {
	if e.loadedTypes[1] {
		return e.Facts, nil
	}
	return nil, &NotLoadedError{edge: "facts"}
}

// OrganizationOrErr returns the Organization value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EntityEdges) OrganizationOrErr() (*Entity, error) {
	if e.Organization != nil {
		return e.Organization, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: entity.Label}
	}
	return nil, &NotLoadedError{edge: "organization"}
}

// MembersOrErr returns the Members value or an error if the edge
// was not loaded in eager-loading.
func (e EntityEdges) MembersOrErr() ([]*Entity, error) {
	if e.loadedTypes[3] {
		return e.Members, nil
	}
	return nil, &NotLoadedError{edge: "members"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Entity) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case entity.FieldIsOwner, entity.FieldIsBot:
			values[i] = new(sql.NullBool)
		case entity.FieldID, entity.FieldType, entity.FieldName, entity.FieldOrganizationID, entity.FieldNotes, entity.FieldCreationSource:
			values[i] = new(sql.NullString)
		case entity.FieldCreatedAt, entity.FieldUpdatedAt, entity.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Entity fields.
func (_m *Entity) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case entity.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case entity.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = entity.Type(value.String)
			}
		case entity.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case entity.FieldOrganizationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field organization_id", values[i])
			} else if value.Valid {
				_m.OrganizationID = new(string)
				*_m.OrganizationID = value.String
			}
		case entity.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = value.String
			}
		case entity.FieldIsOwner:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_owner", values[i])
			} else if value.Valid {
				_m.IsOwner = value.Bool
			}
		case entity.FieldIsBot:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_bot", values[i])
			} else if value.Valid {
				_m.IsBot = value.Bool
			}
		case entity.FieldCreationSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field creation_source", values[i])
			} else if value.Valid {
				_m.CreationSource = entity.CreationSource(value.String)
			}
		case entity.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case entity.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case entity.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Entity.
// This includes values selected through modifiers, order, etc.
func (_m *Entity) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryIdentifiers queries the "identifiers" edge of the Entity entity.
func (_m *Entity) QueryIdentifiers() *EntityIdentifierQuery {
	return NewEntityClient(_m.config).QueryIdentifiers(_m)
}

// QueryFacts queries the "facts" edge of the Entity entity.
func (_m *Entity) QueryFacts() *EntityFactQuery {
	return NewEntityClient(_m.config).QueryFacts(_m)
}

// QueryOrganization queries the "organization" edge of the Entity entity.
func (_m *Entity) QueryOrganization() *EntityQuery {
	return NewEntityClient(_m.config).QueryOrganization(_m)
}

// QueryMembers queries the "members" edge of the Entity entity.
func (_m *Entity) QueryMembers() *EntityQuery {
	return NewEntityClient(_m.config).QueryMembers(_m)
}

// Update returns a builder for updating this Entity.
// Note that you need to call Entity.Unwrap() before calling this method if this Entity
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Entity) Update() *EntityUpdateOne {
	return NewEntityClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Entity entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Entity) Unwrap() *Entity {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Entity is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Entity) String() string {
	var builder strings.Builder
	builder.WriteString("Entity(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("type=")
	builder.WriteString(fmt.Sprintf("%v", _m.Type))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	if v := _m.OrganizationID; v != nil {
		builder.WriteString("organization_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("notes=")
	builder.WriteString(_m.Notes)
	builder.WriteString(", ")
	builder.WriteString("is_owner=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsOwner))
	builder.WriteString(", ")
	builder.WriteString("is_bot=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsBot))
	builder.WriteString(", ")
	builder.WriteString("creation_source=")
	builder.WriteString(fmt.Sprintf("%v", _m.CreationSource))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Entities is a parsable slice of Entity.
type Entities []*Entity
