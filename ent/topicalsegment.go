// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/memograph/memograph/ent/interaction"
	"github.com/memograph/memograph/ent/topicalsegment"
	pgvector "github.com/pgvector/pgvector-go"
)

// TopicalSegment is the model entity for the TopicalSegment schema.
type TopicalSegment struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ChatID holds the value of the "chat_id" field.
	ChatID string `json:"chat_id,omitempty"`
	// InteractionID holds the value of the "interaction_id" field.
	InteractionID *string `json:"interaction_id,omitempty"`
	// Topic holds the value of the "topic" field.
	Topic string `json:"topic,omitempty"`
	// Keywords holds the value of the "keywords" field.
	Keywords []string `json:"keywords,omitempty"`
	// Summary holds the value of the "summary" field.
	Summary string `json:"summary,omitempty"`
	// Entity IDs of resolved participants
	ParticipantIds []string `json:"participant_ids,omitempty"`
	// PrimaryParticipantID holds the value of the "primary_participant_id" field.
	PrimaryParticipantID *string `json:"primary_participant_id,omitempty"`
	// MessageCount holds the value of the "message_count" field.
	MessageCount int `json:"message_count,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// EndedAt holds the value of the "ended_at" field.
	EndedAt time.Time `json:"ended_at,omitempty"`
	// Status holds the value of the "status" field.
	Status topicalsegment.Status `json:"status,omitempty"`
	// ExtractionStatus holds the value of the "extraction_status" field.
	ExtractionStatus topicalsegment.ExtractionStatus `json:"extraction_status,omitempty"`
	// ExtractionError holds the value of the "extraction_error" field.
	ExtractionError *string `json:"extraction_error,omitempty"`
	// ExtractionAttempts holds the value of the "extraction_attempts" field.
	ExtractionAttempts int `json:"extraction_attempts,omitempty"`
	// Backoff schedule for failed extractions
	NextExtractionAt *time.Time `json:"next_extraction_at,omitempty"`
	// Approval batch produced by this segment's extraction
	BatchID *string `json:"batch_id,omitempty"`
	// min(LLM confidence, keyword coverage)
	Confidence float64 `json:"confidence,omitempty"`
	// Cross-chat topic links, maintained symmetrically
	RelatedSegmentIds []string `json:"related_segment_ids,omitempty"`
	// ExtractedItemIds holds the value of the "extracted_item_ids" field.
	ExtractedItemIds []string `json:"extracted_item_ids,omitempty"`
	// Embedding holds the value of the "embedding" field.
	Embedding pgvector.Vector `json:"embedding,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TopicalSegmentQuery when eager-loading is set.
	Edges        TopicalSegmentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TopicalSegmentEdges holds the relations/edges for other nodes in the graph.
type TopicalSegmentEdges struct {
	// Interaction holds the value of the interaction edge.
	Interaction *Interaction `json:"interaction,omitempty"`
	// Messages holds the value of the messages edge.
	Messages []*Message `json:"messages,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// InteractionOrErr returns the Interaction value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TopicalSegmentEdges) InteractionOrErr() (*Interaction, error) {
	if e.Interaction != nil {
		return e.Interaction, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: interaction.Label}
	}
	return nil, &NotLoadedError{edge: "interaction"}
}

// MessagesOrErr returns the Messages value or an error if the edge
// was not loaded in eager-loading.
func (e TopicalSegmentEdges) MessagesOrErr() ([]*Message, error) {
	if e.loadedTypes[1] {
		return e.Messages, nil
	}
	return nil, &NotLoadedError{edge: "messages"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TopicalSegment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case topicalsegment.FieldKeywords, topicalsegment.FieldParticipantIds, topicalsegment.FieldRelatedSegmentIds, topicalsegment.FieldExtractedItemIds:
			values[i] = new([]byte)
		case topicalsegment.FieldEmbedding:
			values[i] = new(pgvector.Vector)
		case topicalsegment.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case topicalsegment.FieldMessageCount, topicalsegment.FieldExtractionAttempts:
			values[i] = new(sql.NullInt64)
		case topicalsegment.FieldID, topicalsegment.FieldChatID, topicalsegment.FieldInteractionID, topicalsegment.FieldTopic, topicalsegment.FieldSummary, topicalsegment.FieldPrimaryParticipantID, topicalsegment.FieldStatus, topicalsegment.FieldExtractionStatus, topicalsegment.FieldExtractionError, topicalsegment.FieldBatchID:
			values[i] = new(sql.NullString)
		case topicalsegment.FieldStartedAt, topicalsegment.FieldEndedAt, topicalsegment.FieldNextExtractionAt, topicalsegment.FieldCreatedAt, topicalsegment.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TopicalSegment fields.
func (_m *TopicalSegment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case topicalsegment.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case topicalsegment.FieldChatID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chat_id", values[i])
			} else if value.Valid {
				_m.ChatID = value.String
			}
		case topicalsegment.FieldInteractionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field interaction_id", values[i])
			} else if value.Valid {
				_m.InteractionID = new(string)
				*_m.InteractionID = value.String
			}
		case topicalsegment.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case topicalsegment.FieldKeywords:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field keywords", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Keywords); err != nil {
					return fmt.Errorf("unmarshal field keywords: %w", err)
				}
			}
		case topicalsegment.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = value.String
			}
		case topicalsegment.FieldParticipantIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field participant_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ParticipantIds); err != nil {
					return fmt.Errorf("unmarshal field participant_ids: %w", err)
				}
			}
		case topicalsegment.FieldPrimaryParticipantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field primary_participant_id", values[i])
			} else if value.Valid {
				_m.PrimaryParticipantID = new(string)
				*_m.PrimaryParticipantID = value.String
			}
		case topicalsegment.FieldMessageCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field message_count", values[i])
			} else if value.Valid {
				_m.MessageCount = int(value.Int64)
			}
		case topicalsegment.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case topicalsegment.FieldEndedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ended_at", values[i])
			} else if value.Valid {
				_m.EndedAt = value.Time
			}
		case topicalsegment.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = topicalsegment.Status(value.String)
			}
		case topicalsegment.FieldExtractionStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extraction_status", values[i])
			} else if value.Valid {
				_m.ExtractionStatus = topicalsegment.ExtractionStatus(value.String)
			}
		case topicalsegment.FieldExtractionError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extraction_error", values[i])
			} else if value.Valid {
				_m.ExtractionError = new(string)
				*_m.ExtractionError = value.String
			}
		case topicalsegment.FieldExtractionAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field extraction_attempts", values[i])
			} else if value.Valid {
				_m.ExtractionAttempts = int(value.Int64)
			}
		case topicalsegment.FieldNextExtractionAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_extraction_at", values[i])
			} else if value.Valid {
				_m.NextExtractionAt = new(time.Time)
				*_m.NextExtractionAt = value.Time
			}
		case topicalsegment.FieldBatchID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field batch_id", values[i])
			} else if value.Valid {
				_m.BatchID = new(string)
				*_m.BatchID = value.String
			}
		case topicalsegment.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case topicalsegment.FieldRelatedSegmentIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field related_segment_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RelatedSegmentIds); err != nil {
					return fmt.Errorf("unmarshal field related_segment_ids: %w", err)
				}
			}
		case topicalsegment.FieldExtractedItemIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_item_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExtractedItemIds); err != nil {
					return fmt.Errorf("unmarshal field extracted_item_ids: %w", err)
				}
			}
		case topicalsegment.FieldEmbedding:
			if value, ok := values[i].(*pgvector.Vector); !ok {
				return fmt.Errorf("unexpected type %T for field embedding", values[i])
			} else if value != nil {
				_m.Embedding = *value
			}
		case topicalsegment.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case topicalsegment.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TopicalSegment.
// This includes values selected through modifiers, order, etc.
func (_m *TopicalSegment) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryInteraction queries the "interaction" edge of the TopicalSegment entity.
func (_m *TopicalSegment) QueryInteraction() *InteractionQuery {
	return NewTopicalSegmentClient(_m.config).QueryInteraction(_m)
}

// QueryMessages queries the "messages" edge of the TopicalSegment entity.
func (_m *TopicalSegment) QueryMessages() *MessageQuery {
	return NewTopicalSegmentClient(_m.config).QueryMessages(_m)
}

// Update returns a builder for updating this TopicalSegment.
// Note that you need to call TopicalSegment.Unwrap() before calling this method if this TopicalSegment
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TopicalSegment) Update() *TopicalSegmentUpdateOne {
	return NewTopicalSegmentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TopicalSegment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TopicalSegment) Unwrap() *TopicalSegment {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TopicalSegment is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TopicalSegment) String() string {
	var builder strings.Builder
	builder.WriteString("TopicalSegment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("chat_id=")
	builder.WriteString(_m.ChatID)
	builder.WriteString(", ")
	if v := _m.InteractionID; v != nil {
		builder.WriteString("interaction_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("keywords=")
	builder.WriteString(fmt.Sprintf("%v", _m.Keywords))
	builder.WriteString(", ")
	builder.WriteString("summary=")
	builder.WriteString(_m.Summary)
	builder.WriteString(", ")
	builder.WriteString("participant_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.ParticipantIds))
	builder.WriteString(", ")
	if v := _m.PrimaryParticipantID; v != nil {
		builder.WriteString("primary_participant_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("message_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.MessageCount))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("ended_at=")
	builder.WriteString(_m.EndedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("extraction_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExtractionStatus))
	builder.WriteString(", ")
	if v := _m.ExtractionError; v != nil {
		builder.WriteString("extraction_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("extraction_attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExtractionAttempts))
	builder.WriteString(", ")
	if v := _m.NextExtractionAt; v != nil {
		builder.WriteString("next_extraction_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.BatchID; v != nil {
		builder.WriteString("batch_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("related_segment_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.RelatedSegmentIds))
	builder.WriteString(", ")
	builder.WriteString("extracted_item_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExtractedItemIds))
	builder.WriteString(", ")
	builder.WriteString("embedding=")
	builder.WriteString(fmt.Sprintf("%v", _m.Embedding))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TopicalSegments is a parsable slice of TopicalSegment.
type TopicalSegments []*TopicalSegment
