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
)

// Interaction is the model entity for the Interaction schema.
type Interaction struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Type holds the value of the "type" field.
	Type interaction.Type `json:"type,omitempty"`
	// Source adapter name, e.g. 'telegram'
	Source string `json:"source,omitempty"`
	// Source-side chat key
	ChatID string `json:"chat_id,omitempty"`
	// Forum topic within the chat; empty for plain chats
	TopicID string `json:"topic_id,omitempty"`
	// Status holds the value of the "status" field.
	Status interaction.Status `json:"status,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// Unset while status=active
	EndedAt *time.Time `json:"ended_at,omitempty"`
	// Drives gap-based cutover
	LastMessageAt time.Time `json:"last_message_at,omitempty"`
	// Set when a late message lands in a closed interaction
	NeedsResegmentation bool `json:"needs_resegmentation,omitempty"`
	// SourceMetadata holds the value of the "source_metadata" field.
	SourceMetadata map[string]interface{} `json:"source_metadata,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InteractionQuery when eager-loading is set.
	Edges        InteractionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// InteractionEdges holds the relations/edges for other nodes in the graph.
type InteractionEdges struct {
	// Messages holds the value of the messages edge.
	Messages []*Message `json:"messages,omitempty"`
	// Participants holds the value of the participants edge.
	Participants []*InteractionParticipant `json:"participants,omitempty"`
	// Segments holds the value of the segments edge.
	Segments []*TopicalSegment `json:"segments,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// MessagesOrErr returns the Messages value or an error if the edge
// was not loaded in eager-loading.
func (e InteractionEdges) MessagesOrErr() ([]*Message, error) {
	if e.loadedTypes[0] {
		return e.Messages, nil
	}
	return nil, &NotLoadedError{edge: "messages"}
}

// ParticipantsOrErr returns the Participants value or an error if the edge
// was not loaded in eager-loading.
func (e InteractionEdges) ParticipantsOrErr() ([]*InteractionParticipant, error) {
	if e.loadedTypes[1] {
		return e.Participants, nil
	}
	return nil, &NotLoadedError{edge: "participants"}
}

// SegmentsOrErr returns the Segments value or an error if the edge
// was not loaded in eager-loading.
func (e InteractionEdges) SegmentsOrErr() ([]*TopicalSegment, error) {
	if e.loadedTypes[2] {
		return e.Segments, nil
	}
	return nil, &NotLoadedError{edge: "segments"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Interaction) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case interaction.FieldSourceMetadata:
			values[i] = new([]byte)
		case interaction.FieldNeedsResegmentation:
			values[i] = new(sql.NullBool)
		case interaction.FieldID, interaction.FieldType, interaction.FieldSource, interaction.FieldChatID, interaction.FieldTopicID, interaction.FieldStatus:
			values[i] = new(sql.NullString)
		case interaction.FieldStartedAt, interaction.FieldEndedAt, interaction.FieldLastMessageAt, interaction.FieldCreatedAt, interaction.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Interaction fields.
func (_m *Interaction) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case interaction.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case interaction.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = interaction.Type(value.String)
			}
		case interaction.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case interaction.FieldChatID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chat_id", values[i])
			} else if value.Valid {
				_m.ChatID = value.String
			}
		case interaction.FieldTopicID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic_id", values[i])
			} else if value.Valid {
				_m.TopicID = value.String
			}
		case interaction.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = interaction.Status(value.String)
			}
		case interaction.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case interaction.FieldEndedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ended_at", values[i])
			} else if value.Valid {
				_m.EndedAt = new(time.Time)
				*_m.EndedAt = value.Time
			}
		case interaction.FieldLastMessageAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_message_at", values[i])
			} else if value.Valid {
				_m.LastMessageAt = value.Time
			}
		case interaction.FieldNeedsResegmentation:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field needs_resegmentation", values[i])
			} else if value.Valid {
				_m.NeedsResegmentation = value.Bool
			}
		case interaction.FieldSourceMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field source_metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SourceMetadata); err != nil {
					return fmt.Errorf("unmarshal field source_metadata: %w", err)
				}
			}
		case interaction.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case interaction.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Interaction.
// This includes values selected through modifiers, order, etc.
func (_m *Interaction) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMessages queries the "messages" edge of the Interaction entity.
func (_m *Interaction) QueryMessages() *MessageQuery {
	return NewInteractionClient(_m.config).QueryMessages(_m)
}

// QueryParticipants queries the "participants" edge of the Interaction entity.
func (_m *Interaction) QueryParticipants() *InteractionParticipantQuery {
	return NewInteractionClient(_m.config).QueryParticipants(_m)
}

// QuerySegments queries the "segments" edge of the Interaction entity.
func (_m *Interaction) QuerySegments() *TopicalSegmentQuery {
	return NewInteractionClient(_m.config).QuerySegments(_m)
}

// Update returns a builder for updating this Interaction.
// Note that you need to call Interaction.Unwrap() before calling this method if this Interaction
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Interaction) Update() *InteractionUpdateOne {
	return NewInteractionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Interaction entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Interaction) Unwrap() *Interaction {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Interaction is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Interaction) String() string {
	var builder strings.Builder
	builder.WriteString("Interaction(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("type=")
	builder.WriteString(fmt.Sprintf("%v", _m.Type))
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("chat_id=")
	builder.WriteString(_m.ChatID)
	builder.WriteString(", ")
	builder.WriteString("topic_id=")
	builder.WriteString(_m.TopicID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.EndedAt; v != nil {
		builder.WriteString("ended_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("last_message_at=")
	builder.WriteString(_m.LastMessageAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("needs_resegmentation=")
	builder.WriteString(fmt.Sprintf("%v", _m.NeedsResegmentation))
	builder.WriteString(", ")
	builder.WriteString("source_metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.SourceMetadata))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Interactions is a parsable slice of Interaction.
type Interactions []*Interaction
