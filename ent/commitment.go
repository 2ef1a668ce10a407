// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/memograph/memograph/ent/commitment"
	pgvector "github.com/pgvector/pgvector-go"
)

// Commitment is the model entity for the Commitment schema.
type Commitment struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Type holds the value of the "type" field.
	Type commitment.Type `json:"type,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Status holds the value of the "status" field.
	Status commitment.Status `json:"status,omitempty"`
	// FromEntityID holds the value of the "from_entity_id" field.
	FromEntityID *string `json:"from_entity_id,omitempty"`
	// ToEntityID holds the value of the "to_entity_id" field.
	ToEntityID *string `json:"to_entity_id,omitempty"`
	// ActivityID holds the value of the "activity_id" field.
	ActivityID *string `json:"activity_id,omitempty"`
	// SourceMessageID holds the value of the "source_message_id" field.
	SourceMessageID *string `json:"source_message_id,omitempty"`
	// SourceInteractionID holds the value of the "source_interaction_id" field.
	SourceInteractionID *string `json:"source_interaction_id,omitempty"`
	// DueDate holds the value of the "due_date" field.
	DueDate *time.Time `json:"due_date,omitempty"`
	// hourly|daily|weekly|monthly or 'every N <unit>'
	RecurrenceRule string `json:"recurrence_rule,omitempty"`
	// NextReminderAt holds the value of the "next_reminder_at" field.
	NextReminderAt *time.Time `json:"next_reminder_at,omitempty"`
	// ReminderCount holds the value of the "reminder_count" field.
	ReminderCount int `json:"reminder_count,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// NeedsReview holds the value of the "needs_review" field.
	NeedsReview bool `json:"needs_review,omitempty"`
	// ConfirmationCount holds the value of the "confirmation_count" field.
	ConfirmationCount int `json:"confirmation_count,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// Embedding holds the value of the "embedding" field.
	Embedding pgvector.Vector `json:"embedding,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// DeletedAt holds the value of the "deleted_at" field.
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Commitment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case commitment.FieldMetadata:
			values[i] = new([]byte)
		case commitment.FieldEmbedding:
			values[i] = new(pgvector.Vector)
		case commitment.FieldNeedsReview:
			values[i] = new(sql.NullBool)
		case commitment.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case commitment.FieldReminderCount, commitment.FieldConfirmationCount:
			values[i] = new(sql.NullInt64)
		case commitment.FieldID, commitment.FieldType, commitment.FieldTitle, commitment.FieldDescription, commitment.FieldStatus, commitment.FieldFromEntityID, commitment.FieldToEntityID, commitment.FieldActivityID, commitment.FieldSourceMessageID, commitment.FieldSourceInteractionID, commitment.FieldRecurrenceRule:
			values[i] = new(sql.NullString)
		case commitment.FieldDueDate, commitment.FieldNextReminderAt, commitment.FieldCreatedAt, commitment.FieldUpdatedAt, commitment.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Commitment fields.
func (_m *Commitment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case commitment.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case commitment.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = commitment.Type(value.String)
			}
		case commitment.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case commitment.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case commitment.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = commitment.Status(value.String)
			}
		case commitment.FieldFromEntityID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field from_entity_id", values[i])
			} else if value.Valid {
				_m.FromEntityID = new(string)
				*_m.FromEntityID = value.String
			}
		case commitment.FieldToEntityID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field to_entity_id", values[i])
			} else if value.Valid {
				_m.ToEntityID = new(string)
				*_m.ToEntityID = value.String
			}
		case commitment.FieldActivityID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field activity_id", values[i])
			} else if value.Valid {
				_m.ActivityID = new(string)
				*_m.ActivityID = value.String
			}
		case commitment.FieldSourceMessageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_message_id", values[i])
			} else if value.Valid {
				_m.SourceMessageID = new(string)
				*_m.SourceMessageID = value.String
			}
		case commitment.FieldSourceInteractionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_interaction_id", values[i])
			} else if value.Valid {
				_m.SourceInteractionID = new(string)
				*_m.SourceInteractionID = value.String
			}
		case commitment.FieldDueDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field due_date", values[i])
			} else if value.Valid {
				_m.DueDate = new(time.Time)
				*_m.DueDate = value.Time
			}
		case commitment.FieldRecurrenceRule:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recurrence_rule", values[i])
			} else if value.Valid {
				_m.RecurrenceRule = value.String
			}
		case commitment.FieldNextReminderAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_reminder_at", values[i])
			} else if value.Valid {
				_m.NextReminderAt = new(time.Time)
				*_m.NextReminderAt = value.Time
			}
		case commitment.FieldReminderCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field reminder_count", values[i])
			} else if value.Valid {
				_m.ReminderCount = int(value.Int64)
			}
		case commitment.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case commitment.FieldNeedsReview:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field needs_review", values[i])
			} else if value.Valid {
				_m.NeedsReview = value.Bool
			}
		case commitment.FieldConfirmationCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field confirmation_count", values[i])
			} else if value.Valid {
				_m.ConfirmationCount = int(value.Int64)
			}
		case commitment.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case commitment.FieldEmbedding:
			if value, ok := values[i].(*pgvector.Vector); !ok {
				return fmt.Errorf("unexpected type %T for field embedding", values[i])
			} else if value != nil {
				_m.Embedding = *value
			}
		case commitment.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case commitment.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case commitment.FieldDeletedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Commitment.
// This includes values selected through modifiers, order, etc.
func (_m *Commitment) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Commitment.
// Note that you need to call Commitment.Unwrap() before calling this method if this Commitment
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Commitment) Update() *CommitmentUpdateOne {
	return NewCommitmentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Commitment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Commitment) Unwrap() *Commitment {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Commitment is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Commitment) String() string {
	var builder strings.Builder
	builder.WriteString("Commitment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("type=")
	builder.WriteString(fmt.Sprintf("%v", _m.Type))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.FromEntityID; v != nil {
		builder.WriteString("from_entity_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ToEntityID; v != nil {
		builder.WriteString("to_entity_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ActivityID; v != nil {
		builder.WriteString("activity_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SourceMessageID; v != nil {
		builder.WriteString("source_message_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SourceInteractionID; v != nil {
		builder.WriteString("source_interaction_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DueDate; v != nil {
		builder.WriteString("due_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("recurrence_rule=")
	builder.WriteString(_m.RecurrenceRule)
	builder.WriteString(", ")
	if v := _m.NextReminderAt; v != nil {
		builder.WriteString("next_reminder_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("reminder_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReminderCount))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("needs_review=")
	builder.WriteString(fmt.Sprintf("%v", _m.NeedsReview))
	builder.WriteString(", ")
	builder.WriteString("confirmation_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConfirmationCount))
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("embedding=")
	builder.WriteString(fmt.Sprintf("%v", _m.Embedding))
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

// Commitments is a parsable slice of Commitment.
type Commitments []*Commitment
