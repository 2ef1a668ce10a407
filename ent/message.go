// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/memograph/memograph/ent/interaction"
	"github.com/memograph/memograph/ent/message"
	pgvector "github.com/pgvector/pgvector-go"
)

// Message is the model entity for the Message schema.
type Message struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// InteractionID holds the value of the "interaction_id" field.
	InteractionID string `json:"interaction_id,omitempty"`
	// SenderEntityID holds the value of the "sender_entity_id" field.
	SenderEntityID *string `json:"sender_entity_id,omitempty"`
	// RecipientEntityID holds the value of the "recipient_entity_id" field.
	RecipientEntityID *string `json:"recipient_entity_id,omitempty"`
	// SenderIdentifierType holds the value of the "sender_identifier_type" field.
	SenderIdentifierType string `json:"sender_identifier_type,omitempty"`
	// SenderIdentifierValue holds the value of the "sender_identifier_value" field.
	SenderIdentifierValue string `json:"sender_identifier_value,omitempty"`
	// Content holds the value of the "content" field.
	Content string `json:"content,omitempty"`
	// IsOutgoing holds the value of the "is_outgoing" field.
	IsOutgoing bool `json:"is_outgoing,omitempty"`
	// Timestamp holds the value of the "timestamp" field.
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Origin-platform message ID; idempotency key within the interaction
	SourceMessageID *string `json:"source_message_id,omitempty"`
	// ReplyToMessageID holds the value of the "reply_to_message_id" field.
	ReplyToMessageID *string `json:"reply_to_message_id,omitempty"`
	// MediaType holds the value of the "media_type" field.
	MediaType *string `json:"media_type,omitempty"`
	// MediaURL holds the value of the "media_url" field.
	MediaURL *string `json:"media_url,omitempty"`
	// ChatType holds the value of the "chat_type" field.
	ChatType string `json:"chat_type,omitempty"`
	// TopicID holds the value of the "topic_id" field.
	TopicID string `json:"topic_id,omitempty"`
	// ExtractionStatus holds the value of the "extraction_status" field.
	ExtractionStatus message.ExtractionStatus `json:"extraction_status,omitempty"`
	// Embedding holds the value of the "embedding" field.
	Embedding pgvector.Vector `json:"embedding,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MessageQuery when eager-loading is set.
	Edges        MessageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MessageEdges holds the relations/edges for other nodes in the graph.
type MessageEdges struct {
	// Interaction holds the value of the interaction edge.
	Interaction *Interaction `json:"interaction,omitempty"`
	// Segments holds the value of the segments edge.
	Segments []*TopicalSegment `json:"segments,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// InteractionOrErr returns the Interaction value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MessageEdges) InteractionOrErr() (*Interaction, error) {
	if e.Interaction != nil {
		return e.Interaction, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: interaction.Label}
	}
	return nil, &NotLoadedError{edge: "interaction"}
}

// SegmentsOrErr returns the Segments value or an error if the edge
// was not loaded in eager-loading.
func (e MessageEdges) SegmentsOrErr() ([]*TopicalSegment, error) {
	if e.loadedTypes[1] {
		return e.Segments, nil
	}
	return nil, &NotLoadedError{edge: "segments"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Message) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case message.FieldEmbedding:
			values[i] = new(pgvector.Vector)
		case message.FieldIsOutgoing:
			values[i] = new(sql.NullBool)
		case message.FieldID, message.FieldInteractionID, message.FieldSenderEntityID, message.FieldRecipientEntityID, message.FieldSenderIdentifierType, message.FieldSenderIdentifierValue, message.FieldContent, message.FieldSourceMessageID, message.FieldReplyToMessageID, message.FieldMediaType, message.FieldMediaURL, message.FieldChatType, message.FieldTopicID, message.FieldExtractionStatus:
			values[i] = new(sql.NullString)
		case message.FieldTimestamp, message.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Message fields.
func (_m *Message) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case message.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case message.FieldInteractionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field interaction_id", values[i])
			} else if value.Valid {
				_m.InteractionID = value.String
			}
		case message.FieldSenderEntityID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sender_entity_id", values[i])
			} else if value.Valid {
				_m.SenderEntityID = new(string)
				*_m.SenderEntityID = value.String
			}
		case message.FieldRecipientEntityID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recipient_entity_id", values[i])
			} else if value.Valid {
				_m.RecipientEntityID = new(string)
				*_m.RecipientEntityID = value.String
			}
		case message.FieldSenderIdentifierType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sender_identifier_type", values[i])
			} else if value.Valid {
				_m.SenderIdentifierType = value.String
			}
		case message.FieldSenderIdentifierValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sender_identifier_value", values[i])
			} else if value.Valid {
				_m.SenderIdentifierValue = value.String
			}
		case message.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case message.FieldIsOutgoing:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_outgoing", values[i])
			} else if value.Valid {
				_m.IsOutgoing = value.Bool
			}
		case message.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case message.FieldSourceMessageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_message_id", values[i])
			} else if value.Valid {
				_m.SourceMessageID = new(string)
				*_m.SourceMessageID = value.String
			}
		case message.FieldReplyToMessageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reply_to_message_id", values[i])
			} else if value.Valid {
				_m.ReplyToMessageID = new(string)
				*_m.ReplyToMessageID = value.String
			}
		case message.FieldMediaType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field media_type", values[i])
			} else if value.Valid {
				_m.MediaType = new(string)
				*_m.MediaType = value.String
			}
		case message.FieldMediaURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field media_url", values[i])
			} else if value.Valid {
				_m.MediaURL = new(string)
				*_m.MediaURL = value.String
			}
		case message.FieldChatType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chat_type", values[i])
			} else if value.Valid {
				_m.ChatType = value.String
			}
		case message.FieldTopicID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic_id", values[i])
			} else if value.Valid {
				_m.TopicID = value.String
			}
		case message.FieldExtractionStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extraction_status", values[i])
			} else if value.Valid {
				_m.ExtractionStatus = message.ExtractionStatus(value.String)
			}
		case message.FieldEmbedding:
			if value, ok := values[i].(*pgvector.Vector); !ok {
				return fmt.Errorf("unexpected type %T for field embedding", values[i])
			} else if value != nil {
				_m.Embedding = *value
			}
		case message.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Message.
// This includes values selected through modifiers, order, etc.
func (_m *Message) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryInteraction queries the "interaction" edge of the Message entity.
func (_m *Message) QueryInteraction() *InteractionQuery {
	return NewMessageClient(_m.config).QueryInteraction(_m)
}

// QuerySegments queries the "segments" edge of the Message entity.
func (_m *Message) QuerySegments() *TopicalSegmentQuery {
	return NewMessageClient(_m.config).QuerySegments(_m)
}

// Update returns a builder for updating this Message.
// Note that you need to call Message.Unwrap() before calling this method if this Message
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Message) Update() *MessageUpdateOne {
	return NewMessageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Message entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Message) Unwrap() *Message {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Message is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Message) String() string {
	var builder strings.Builder
	builder.WriteString("Message(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("interaction_id=")
	builder.WriteString(_m.InteractionID)
	builder.WriteString(", ")
	if v := _m.SenderEntityID; v != nil {
		builder.WriteString("sender_entity_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RecipientEntityID; v != nil {
		builder.WriteString("recipient_entity_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("sender_identifier_type=")
	builder.WriteString(_m.SenderIdentifierType)
	builder.WriteString(", ")
	builder.WriteString("sender_identifier_value=")
	builder.WriteString(_m.SenderIdentifierValue)
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("is_outgoing=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsOutgoing))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.SourceMessageID; v != nil {
		builder.WriteString("source_message_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ReplyToMessageID; v != nil {
		builder.WriteString("reply_to_message_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.MediaType; v != nil {
		builder.WriteString("media_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.MediaURL; v != nil {
		builder.WriteString("media_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("chat_type=")
	builder.WriteString(_m.ChatType)
	builder.WriteString(", ")
	builder.WriteString("topic_id=")
	builder.WriteString(_m.TopicID)
	builder.WriteString(", ")
	builder.WriteString("extraction_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExtractionStatus))
	builder.WriteString(", ")
	builder.WriteString("embedding=")
	builder.WriteString(fmt.Sprintf("%v", _m.Embedding))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Messages is a parsable slice of Message.
type Messages []*Message
