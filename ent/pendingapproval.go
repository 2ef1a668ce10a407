// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/memograph/memograph/ent/pendingapproval"
)

// PendingApproval is the model entity for the PendingApproval schema.
type PendingApproval struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ItemType holds the value of the "item_type" field.
	ItemType pendingapproval.ItemType `json:"item_type,omitempty"`
	// TargetID holds the value of the "target_id" field.
	TargetID string `json:"target_id,omitempty"`
	// All drafts from one extraction run share a batch
	BatchID string `json:"batch_id,omitempty"`
	// Status holds the value of the "status" field.
	Status pendingapproval.Status `json:"status,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// Verbatim text the extraction was based on
	SourceQuote string `json:"source_quote,omitempty"`
	// SourceInteractionID holds the value of the "source_interaction_id" field.
	SourceInteractionID *string `json:"source_interaction_id,omitempty"`
	// SourceEntityID holds the value of the "source_entity_id" field.
	SourceEntityID *string `json:"source_entity_id,omitempty"`
	// Context holds the value of the "context" field.
	Context string `json:"context,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// ReviewedAt holds the value of the "reviewed_at" field.
	ReviewedAt   *time.Time `json:"reviewed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PendingApproval) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pendingapproval.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case pendingapproval.FieldID, pendingapproval.FieldItemType, pendingapproval.FieldTargetID, pendingapproval.FieldBatchID, pendingapproval.FieldStatus, pendingapproval.FieldSourceQuote, pendingapproval.FieldSourceInteractionID, pendingapproval.FieldSourceEntityID, pendingapproval.FieldContext:
			values[i] = new(sql.NullString)
		case pendingapproval.FieldCreatedAt, pendingapproval.FieldReviewedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PendingApproval fields.
func (_m *PendingApproval) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pendingapproval.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case pendingapproval.FieldItemType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field item_type", values[i])
			} else if value.Valid {
				_m.ItemType = pendingapproval.ItemType(value.String)
			}
		case pendingapproval.FieldTargetID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_id", values[i])
			} else if value.Valid {
				_m.TargetID = value.String
			}
		case pendingapproval.FieldBatchID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field batch_id", values[i])
			} else if value.Valid {
				_m.BatchID = value.String
			}
		case pendingapproval.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = pendingapproval.Status(value.String)
			}
		case pendingapproval.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case pendingapproval.FieldSourceQuote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_quote", values[i])
			} else if value.Valid {
				_m.SourceQuote = value.String
			}
		case pendingapproval.FieldSourceInteractionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_interaction_id", values[i])
			} else if value.Valid {
				_m.SourceInteractionID = new(string)
				*_m.SourceInteractionID = value.String
			}
		case pendingapproval.FieldSourceEntityID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_entity_id", values[i])
			} else if value.Valid {
				_m.SourceEntityID = new(string)
				*_m.SourceEntityID = value.String
			}
		case pendingapproval.FieldContext:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field context", values[i])
			} else if value.Valid {
				_m.Context = value.String
			}
		case pendingapproval.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case pendingapproval.FieldReviewedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field reviewed_at", values[i])
			} else if value.Valid {
				_m.ReviewedAt = new(time.Time)
				*_m.ReviewedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PendingApproval.
// This includes values selected through modifiers, order, etc.
func (_m *PendingApproval) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PendingApproval.
// Note that you need to call PendingApproval.Unwrap() before calling this method if this PendingApproval
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PendingApproval) Update() *PendingApprovalUpdateOne {
	return NewPendingApprovalClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PendingApproval entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PendingApproval) Unwrap() *PendingApproval {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PendingApproval is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PendingApproval) String() string {
	var builder strings.Builder
	builder.WriteString("PendingApproval(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("item_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.ItemType))
	builder.WriteString(", ")
	builder.WriteString("target_id=")
	builder.WriteString(_m.TargetID)
	builder.WriteString(", ")
	builder.WriteString("batch_id=")
	builder.WriteString(_m.BatchID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("source_quote=")
	builder.WriteString(_m.SourceQuote)
	builder.WriteString(", ")
	if v := _m.SourceInteractionID; v != nil {
		builder.WriteString("source_interaction_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SourceEntityID; v != nil {
		builder.WriteString("source_entity_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("context=")
	builder.WriteString(_m.Context)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ReviewedAt; v != nil {
		builder.WriteString("reviewed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// PendingApprovals is a parsable slice of PendingApproval.
type PendingApprovals []*PendingApproval
