// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/memograph/memograph/ent/activityclosure"
)

// ActivityClosure is the model entity for the ActivityClosure schema.
type ActivityClosure struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AncestorID holds the value of the "ancestor_id" field.
	AncestorID string `json:"ancestor_id,omitempty"`
	// DescendantID holds the value of the "descendant_id" field.
	DescendantID string `json:"descendant_id,omitempty"`
	// Edge count between ancestor and descendant
	Depth        int `json:"depth,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ActivityClosure) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case activityclosure.FieldDepth:
			values[i] = new(sql.NullInt64)
		case activityclosure.FieldID, activityclosure.FieldAncestorID, activityclosure.FieldDescendantID:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ActivityClosure fields.
func (_m *ActivityClosure) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case activityclosure.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case activityclosure.FieldAncestorID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ancestor_id", values[i])
			} else if value.Valid {
				_m.AncestorID = value.String
			}
		case activityclosure.FieldDescendantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field descendant_id", values[i])
			} else if value.Valid {
				_m.DescendantID = value.String
			}
		case activityclosure.FieldDepth:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field depth", values[i])
			} else if value.Valid {
				_m.Depth = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ActivityClosure.
// This includes values selected through modifiers, order, etc.
func (_m *ActivityClosure) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ActivityClosure.
// Note that you need to call ActivityClosure.Unwrap() before calling this method if this ActivityClosure
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ActivityClosure) Update() *ActivityClosureUpdateOne {
	return NewActivityClosureClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ActivityClosure entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ActivityClosure) Unwrap() *ActivityClosure {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ActivityClosure is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ActivityClosure) String() string {
	var builder strings.Builder
	builder.WriteString("ActivityClosure(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("ancestor_id=")
	builder.WriteString(_m.AncestorID)
	builder.WriteString(", ")
	builder.WriteString("descendant_id=")
	builder.WriteString(_m.DescendantID)
	builder.WriteString(", ")
	builder.WriteString("depth=")
	builder.WriteString(fmt.Sprintf("%v", _m.Depth))
	builder.WriteByte(')')
	return builder.String()
}

// ActivityClosures is a parsable slice of ActivityClosure.
type ActivityClosures []*ActivityClosure
