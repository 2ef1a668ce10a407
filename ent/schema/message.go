package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	pgvector "github.com/pgvector/pgvector-go"
)

// Message is one utterance inside an interaction. Messages are append-only;
// ingest is idempotent by (interaction_id, source_message_id), enforced by a
// partial unique index created in pkg/database/migrations.go.
type Message struct {
	ent.Schema
}

// Fields of the Message.
func (Message) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_id").
			Unique().
			Immutable(),
		field.String("interaction_id").
			Immutable(),
		field.String("sender_entity_id").
			Optional().
			Nillable(),
		field.String("recipient_entity_id").
			Optional().
			Nillable(),
		field.String("sender_identifier_type"),
		field.String("sender_identifier_value"),
		field.Text("content"),
		field.Bool("is_outgoing").
			Default(false),
		field.Time("timestamp"),
		field.String("source_message_id").
			Optional().
			Nillable().
			Comment("Origin-platform message ID; idempotency key within the interaction"),
		field.String("reply_to_message_id").
			Optional().
			Nillable(),
		field.String("media_type").
			Optional().
			Nillable(),
		field.String("media_url").
			Optional().
			Nillable(),
		field.String("chat_type").
			Optional(),
		field.String("topic_id").
			Optional(),
		field.Enum("extraction_status").
			Values("unprocessed", "pending", "processed", "failed").
			Default("unprocessed"),
		field.Other("embedding", pgvector.Vector{}).
			SchemaType(map[string]string{dialect.Postgres: "vector(1536)"}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Message.
func (Message) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("interaction", Interaction.Type).
			Ref("messages").
			Field("interaction_id").
			Unique().
			Required().
			Immutable(),
		edge.From("segments", TopicalSegment.Type).
			Ref("messages"),
	}
}

// Indexes of the Message.
func (Message) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("interaction_id", "timestamp"),
		index.Fields("sender_entity_id"),
		index.Fields("extraction_status"),
	}
}
