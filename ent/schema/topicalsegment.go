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

// TopicalSegment is a contiguous sub-sequence of an interaction's messages
// sharing one topic, the unit of extraction. Segments link to messages via
// a join table and to related segments across chats via related_segment_ids.
type TopicalSegment struct {
	ent.Schema
}

// Fields of the TopicalSegment.
func (TopicalSegment) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("segment_id").
			Unique().
			Immutable(),
		field.String("chat_id"),
		field.String("interaction_id").
			Optional().
			Nillable(),
		field.String("topic"),
		field.JSON("keywords", []string{}).
			Optional(),
		field.Text("summary").
			Optional(),
		field.JSON("participant_ids", []string{}).
			Optional().
			Comment("Entity IDs of resolved participants"),
		field.String("primary_participant_id").
			Optional().
			Nillable(),
		field.Int("message_count").
			Default(0),
		field.Time("started_at"),
		field.Time("ended_at"),
		field.Enum("status").
			Values("active", "merged", "superseded").
			Default("active"),
		field.Enum("extraction_status").
			Values("unprocessed", "pending", "processed", "failed").
			Default("unprocessed"),
		field.String("extraction_error").
			Optional().
			Nillable(),
		field.Int("extraction_attempts").
			Default(0),
		field.Time("next_extraction_at").
			Optional().
			Nillable().
			Comment("Backoff schedule for failed extractions"),
		field.String("batch_id").
			Optional().
			Nillable().
			Comment("Approval batch produced by this segment's extraction"),
		field.Float("confidence").
			Default(0).
			Comment("min(LLM confidence, keyword coverage)"),
		field.JSON("related_segment_ids", []string{}).
			Optional().
			Comment("Cross-chat topic links, maintained symmetrically"),
		field.JSON("extracted_item_ids", []string{}).
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
	}
}

// Edges of the TopicalSegment.
func (TopicalSegment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("interaction", Interaction.Type).
			Ref("segments").
			Field("interaction_id").
			Unique(),
		edge.To("messages", Message.Type).
			StorageKey(edge.Table("segment_messages"), edge.Columns("segment_id", "message_id")),
	}
}

// Indexes of the TopicalSegment.
func (TopicalSegment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("chat_id"),
		index.Fields("status", "extraction_status"),
		index.Fields("started_at"),
	}
}
