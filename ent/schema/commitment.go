package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	pgvector "github.com/pgvector/pgvector-go"
)

// Commitment is a promise or request between two entities, optionally tied
// to an activity and a due date. The reminder engine advances
// next_reminder_at and flips overdue commitments.
type Commitment struct {
	ent.Schema
}

// Fields of the Commitment.
func (Commitment) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("commitment_id").
			Unique().
			Immutable(),
		field.Enum("type").
			Values("promise", "request", "agreement", "deadline", "reminder", "recurring").
			Default("promise"),
		field.String("title"),
		field.Text("description").
			Optional(),
		field.Enum("status").
			Values("draft", "pending", "in_progress", "completed", "cancelled", "overdue", "deferred").
			Default("draft"),
		field.String("from_entity_id").
			Optional().
			Nillable(),
		field.String("to_entity_id").
			Optional().
			Nillable(),
		field.String("activity_id").
			Optional().
			Nillable(),
		field.String("source_message_id").
			Optional().
			Nillable(),
		field.String("source_interaction_id").
			Optional().
			Nillable(),
		field.Time("due_date").
			Optional().
			Nillable(),
		field.String("recurrence_rule").
			Optional().
			Comment("hourly|daily|weekly|monthly or 'every N <unit>'"),
		field.Time("next_reminder_at").
			Optional().
			Nillable(),
		field.Int("reminder_count").
			Default(0),
		field.Float("confidence").
			Default(1.0).
			Range(0, 1),
		field.Bool("needs_review").
			Default(false),
		field.Int("confirmation_count").
			Default(0),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Other("embedding", pgvector.Vector{}).
			SchemaType(map[string]string{dialect.Postgres: "vector(1536)"}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("deleted_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the Commitment.
func (Commitment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("from_entity_id"),
		index.Fields("to_entity_id"),
		index.Fields("status", "due_date"),
		index.Fields("next_reminder_at").
			Annotations(entsql.IndexWhere("next_reminder_at IS NOT NULL AND deleted_at IS NULL")),
		index.Fields("deleted_at").
			Annotations(entsql.IndexWhere("deleted_at IS NOT NULL")),
	}
}
