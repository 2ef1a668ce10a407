package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Interaction is a time-bounded conversation session: a run of messages in
// one chat separated from the next run by more than the session gap.
type Interaction struct {
	ent.Schema
}

// Fields of the Interaction.
func (Interaction) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("interaction_id").
			Unique().
			Immutable(),
		field.Enum("type").
			Values("telegram_session", "phone_call", "video_meeting"),
		field.String("source").
			Comment("Source adapter name, e.g. 'telegram'"),
		field.String("chat_id").
			Comment("Source-side chat key"),
		field.String("topic_id").
			Optional().
			Default("").
			Comment("Forum topic within the chat; empty for plain chats"),
		field.Enum("status").
			Values("active", "completed", "archived").
			Default("active"),
		field.Time("started_at"),
		field.Time("ended_at").
			Optional().
			Nillable().
			Comment("Unset while status=active"),
		field.Time("last_message_at").
			Comment("Drives gap-based cutover"),
		field.Bool("needs_resegmentation").
			Default(false).
			Comment("Set when a late message lands in a closed interaction"),
		field.JSON("source_metadata", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Interaction.
func (Interaction) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("messages", Message.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("participants", InteractionParticipant.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("segments", TopicalSegment.Type),
	}
}

// Indexes of the Interaction.
func (Interaction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("source", "chat_id", "topic_id", "status"),
		index.Fields("status"),
		index.Fields("started_at"),
		index.Fields("last_message_at"),
	}
}
