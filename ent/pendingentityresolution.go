// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/memograph/memograph/ent/pendingentityresolution"
)

// PendingEntityResolution is the model entity for the PendingEntityResolution schema.
type PendingEntityResolution struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// IdentifierType holds the value of the "identifier_type" field.
	IdentifierType string `json:"identifier_type,omitempty"`
	// IdentifierValue holds the value of the "identifier_value" field.
	IdentifierValue string `json:"identifier_value,omitempty"`
	// DisplayName holds the value of the "display_name" field.
	DisplayName string `json:"display_name,omitempty"`
	// Status holds the value of the "status" field.
	Status pendingentityresolution.Status `json:"status,omitempty"`
	// How the row was resolved; auto = display-name heuristic
	Resolution *pendingentityresolution.Resolution `json:"resolution,omitempty"`
	// ResolvedEntityID holds the value of the "resolved_entity_id" field.
	ResolvedEntityID *string `json:"resolved_entity_id,omitempty"`
	// Ranked candidate entities from the disambiguation scorer
	Suggestions []map[string]interface{} `json:"suggestions,omitempty"`
	// Up to 10 message IDs where the identifier was seen
	SampleMessageIds []string `json:"sample_message_ids,omitempty"`
	// FirstSeenAt holds the value of the "first_seen_at" field.
	FirstSeenAt time.Time `json:"first_seen_at,omitempty"`
	// ResolvedAt holds the value of the "resolved_at" field.
	ResolvedAt   *time.Time `json:"resolved_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PendingEntityResolution) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pendingentityresolution.FieldSuggestions, pendingentityresolution.FieldSampleMessageIds:
			values[i] = new([]byte)
		case pendingentityresolution.FieldID, pendingentityresolution.FieldIdentifierType, pendingentityresolution.FieldIdentifierValue, pendingentityresolution.FieldDisplayName, pendingentityresolution.FieldStatus, pendingentityresolution.FieldResolution, pendingentityresolution.FieldResolvedEntityID:
			values[i] = new(sql.NullString)
		case pendingentityresolution.FieldFirstSeenAt, pendingentityresolution.FieldResolvedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PendingEntityResolution fields.
func (_m *PendingEntityResolution) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pendingentityresolution.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case pendingentityresolution.FieldIdentifierType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field identifier_type", values[i])
			} else if value.Valid {
				_m.IdentifierType = value.String
			}
		case pendingentityresolution.FieldIdentifierValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field identifier_value", values[i])
			} else if value.Valid {
				_m.IdentifierValue = value.String
			}
		case pendingentityresolution.FieldDisplayName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field display_name", values[i])
			} else if value.Valid {
				_m.DisplayName = value.String
			}
		case pendingentityresolution.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = pendingentityresolution.Status(value.String)
			}
		case pendingentityresolution.FieldResolution:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resolution", values[i])
			} else if value.Valid {
				_m.Resolution = new(pendingentityresolution.Resolution)
				*_m.Resolution = pendingentityresolution.Resolution(value.String)
			}
		case pendingentityresolution.FieldResolvedEntityID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resolved_entity_id", values[i])
			} else if value.Valid {
				_m.ResolvedEntityID = new(string)
				*_m.ResolvedEntityID = value.String
			}
		case pendingentityresolution.FieldSuggestions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field suggestions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Suggestions); err != nil {
					return fmt.Errorf("unmarshal field suggestions: %w", err)
				}
			}
		case pendingentityresolution.FieldSampleMessageIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field sample_message_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SampleMessageIds); err != nil {
					return fmt.Errorf("unmarshal field sample_message_ids: %w", err)
				}
			}
		case pendingentityresolution.FieldFirstSeenAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field first_seen_at", values[i])
			} else if value.Valid {
				_m.FirstSeenAt = value.Time
			}
		case pendingentityresolution.FieldResolvedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field resolved_at", values[i])
			} else if value.Valid {
				_m.ResolvedAt = new(time.Time)
				*_m.ResolvedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PendingEntityResolution.
// This includes values selected through modifiers, order, etc.
func (_m *PendingEntityResolution) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PendingEntityResolution.
// Note that you need to call PendingEntityResolution.Unwrap() before calling this method if this PendingEntityResolution
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PendingEntityResolution) Update() *PendingEntityResolutionUpdateOne {
	return NewPendingEntityResolutionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PendingEntityResolution entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PendingEntityResolution) Unwrap() *PendingEntityResolution {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PendingEntityResolution is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PendingEntityResolution) String() string {
	var builder strings.Builder
	builder.WriteString("PendingEntityResolution(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("identifier_type=")
	builder.WriteString(_m.IdentifierType)
	builder.WriteString(", ")
	builder.WriteString("identifier_value=")
	builder.WriteString(_m.IdentifierValue)
	builder.WriteString(", ")
	builder.WriteString("display_name=")
	builder.WriteString(_m.DisplayName)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.Resolution; v != nil {
		builder.WriteString("resolution=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ResolvedEntityID; v != nil {
		builder.WriteString("resolved_entity_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("suggestions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Suggestions))
	builder.WriteString(", ")
	builder.WriteString("sample_message_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.SampleMessageIds))
	builder.WriteString(", ")
	builder.WriteString("first_seen_at=")
	builder.WriteString(_m.FirstSeenAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ResolvedAt; v != nil {
		builder.WriteString("resolved_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// PendingEntityResolutions is a parsable slice of PendingEntityResolution.
type PendingEntityResolutions []*PendingEntityResolution
