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
	"github.com/memograph/memograph/ent/entityfact"
	pgvector "github.com/pgvector/pgvector-go"
)

// EntityFact is the model entity for the EntityFact schema.
type EntityFact struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// EntityID holds the value of the "entity_id" field.
	EntityID string `json:"entity_id,omitempty"`
	// e.g. birthday, employer, city
	FactType string `json:"fact_type,omitempty"`
	// Category holds the value of the "category" field.
	Category string `json:"category,omitempty"`
	// Value holds the value of the "value" field.
	Value *string `json:"value,omitempty"`
	// ValueDate holds the value of the "value_date" field.
	ValueDate *time.Time `json:"value_date,omitempty"`
	// ValueJSON holds the value of the "value_json" field.
	ValueJSON map[string]interface{} `json:"value_json,omitempty"`
	// Source holds the value of the "source" field.
	Source entityfact.Source `json:"source,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// SourceInteractionID holds the value of the "source_interaction_id" field.
	SourceInteractionID *string `json:"source_interaction_id,omitempty"`
	// Provenance: the message the fact was extracted from
	SourceMessageID *string `json:"source_message_id,omitempty"`
	// ValidFrom holds the value of the "valid_from" field.
	ValidFrom *time.Time `json:"valid_from,omitempty"`
	// ValidUntil holds the value of the "valid_until" field.
	ValidUntil *time.Time `json:"valid_until,omitempty"`
	// Status holds the value of the "status" field.
	Status entityfact.Status `json:"status,omitempty"`
	// Chooses the canonical fact when multiple active facts exist
	Rank entityfact.Rank `json:"rank,omitempty"`
	// Fact-fact link; acyclic
	SupersededBy *string `json:"superseded_by,omitempty"`
	// NeedsReview holds the value of the "needs_review" field.
	NeedsReview bool `json:"needs_review,omitempty"`
	// ReviewReason holds the value of the "review_reason" field.
	ReviewReason *string `json:"review_reason,omitempty"`
	// Bumped when a duplicate extraction confirms this fact
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
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EntityFactQuery when eager-loading is set.
	Edges        EntityFactEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EntityFactEdges holds the relations/edges for other nodes in the graph.
type EntityFactEdges struct {
	// Entity holds the value of the entity edge.
	Entity *Entity `json:"entity,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// EntityOrErr returns the Entity value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EntityFactEdges) EntityOrErr() (*Entity, error) {
	if e.Entity != nil {
		return e.Entity, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: entity.Label}
	}
	return nil, &NotLoadedError{edge: "entity"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EntityFact) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case entityfact.FieldValueJSON, entityfact.FieldMetadata:
			values[i] = new([]byte)
		case entityfact.FieldEmbedding:
			values[i] = new(pgvector.Vector)
		case entityfact.FieldNeedsReview:
			values[i] = new(sql.NullBool)
		case entityfact.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case entityfact.FieldConfirmationCount:
			values[i] = new(sql.NullInt64)
		case entityfact.FieldID, entityfact.FieldEntityID, entityfact.FieldFactType, entityfact.FieldCategory, entityfact.FieldValue, entityfact.FieldSource, entityfact.FieldSourceInteractionID, entityfact.FieldSourceMessageID, entityfact.FieldStatus, entityfact.FieldRank, entityfact.FieldSupersededBy, entityfact.FieldReviewReason:
			values[i] = new(sql.NullString)
		case entityfact.FieldValueDate, entityfact.FieldValidFrom, entityfact.FieldValidUntil, entityfact.FieldCreatedAt, entityfact.FieldUpdatedAt, entityfact.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EntityFact fields.
func (_m *EntityFact) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case entityfact.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case entityfact.FieldEntityID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entity_id", values[i])
			} else if value.Valid {
				_m.EntityID = value.String
			}
		case entityfact.FieldFactType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fact_type", values[i])
			} else if value.Valid {
				_m.FactType = value.String
			}
		case entityfact.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case entityfact.FieldValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field value", values[i])
			} else if value.Valid {
				_m.Value = new(string)
				*_m.Value = value.String
			}
		case entityfact.FieldValueDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field value_date", values[i])
			} else if value.Valid {
				_m.ValueDate = new(time.Time)
				*_m.ValueDate = value.Time
			}
		case entityfact.FieldValueJSON:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field value_json", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ValueJSON); err != nil {
					return fmt.Errorf("unmarshal field value_json: %w", err)
				}
			}
		case entityfact.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = entityfact.Source(value.String)
			}
		case entityfact.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case entityfact.FieldSourceInteractionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_interaction_id", values[i])
			} else if value.Valid {
				_m.SourceInteractionID = new(string)
				*_m.SourceInteractionID = value.String
			}
		case entityfact.FieldSourceMessageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_message_id", values[i])
			} else if value.Valid {
				_m.SourceMessageID = new(string)
				*_m.SourceMessageID = value.String
			}
		case entityfact.FieldValidFrom:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field valid_from", values[i])
			} else if value.Valid {
				_m.ValidFrom = new(time.Time)
				*_m.ValidFrom = value.Time
			}
		case entityfact.FieldValidUntil:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field valid_until", values[i])
			} else if value.Valid {
				_m.ValidUntil = new(time.Time)
				*_m.ValidUntil = value.Time
			}
		case entityfact.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = entityfact.Status(value.String)
			}
		case entityfact.FieldRank:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rank", values[i])
			} else if value.Valid {
				_m.Rank = entityfact.Rank(value.String)
			}
		case entityfact.FieldSupersededBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field superseded_by", values[i])
			} else if value.Valid {
				_m.SupersededBy = new(string)
				*_m.SupersededBy = value.String
			}
		case entityfact.FieldNeedsReview:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field needs_review", values[i])
			} else if value.Valid {
				_m.NeedsReview = value.Bool
			}
		case entityfact.FieldReviewReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field review_reason", values[i])
			} else if value.Valid {
				_m.ReviewReason = new(string)
				*_m.ReviewReason = value.String
			}
		case entityfact.FieldConfirmationCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field confirmation_count", values[i])
			} else if value.Valid {
				_m.ConfirmationCount = int(value.Int64)
			}
		case entityfact.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case entityfact.FieldEmbedding:
			if value, ok := values[i].(*pgvector.Vector); !ok {
				return fmt.Errorf("unexpected type %T for field embedding", values[i])
			} else if value != nil {
				_m.Embedding = *value
			}
		case entityfact.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case entityfact.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case entityfact.FieldDeletedAt:
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

// GetValue returns the ent.Value that was dynamically selected and assigned to the EntityFact.
// This includes values selected through modifiers, order, etc.
func (_m *EntityFact) GetValue(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEntity queries the "entity" edge of the EntityFact entity.
func (_m *EntityFact) QueryEntity() *EntityQuery {
	return NewEntityFactClient(_m.config).QueryEntity(_m)
}

// Update returns a builder for updating this EntityFact.
// Note that you need to call EntityFact.Unwrap() before calling this method if this EntityFact
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EntityFact) Update() *EntityFactUpdateOne {
	return NewEntityFactClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EntityFact entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EntityFact) Unwrap() *EntityFact {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EntityFact is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EntityFact) String() string {
	var builder strings.Builder
	builder.WriteString("EntityFact(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("entity_id=")
	builder.WriteString(_m.EntityID)
	builder.WriteString(", ")
	builder.WriteString("fact_type=")
	builder.WriteString(_m.FactType)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	if v := _m.Value; v != nil {
		builder.WriteString("value=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ValueDate; v != nil {
		builder.WriteString("value_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("value_json=")
	builder.WriteString(fmt.Sprintf("%v", _m.ValueJSON))
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(fmt.Sprintf("%v", _m.Source))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	if v := _m.SourceInteractionID; v != nil {
		builder.WriteString("source_interaction_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SourceMessageID; v != nil {
		builder.WriteString("source_message_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ValidFrom; v != nil {
		builder.WriteString("valid_from=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ValidUntil; v != nil {
		builder.WriteString("valid_until=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("rank=")
	builder.WriteString(fmt.Sprintf("%v", _m.Rank))
	builder.WriteString(", ")
	if v := _m.SupersededBy; v != nil {
		builder.WriteString("superseded_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("needs_review=")
	builder.WriteString(fmt.Sprintf("%v", _m.NeedsReview))
	builder.WriteString(", ")
	if v := _m.ReviewReason; v != nil {
		builder.WriteString("review_reason=")
		builder.WriteString(*v)
	}
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

// EntityFacts is a parsable slice of EntityFact.
type EntityFacts []*EntityFact
