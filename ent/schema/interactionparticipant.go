package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// InteractionParticipant is an entity (or an unresolved placeholder) present
// in an interaction. entity_id stays null until the identifier resolves.
type InteractionParticipant struct {
	ent.Schema
}

// Fields of the InteractionParticipant.
func (InteractionParticipant) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("participant_id").
			Unique().
			Immutable(),
		field.String("interaction_id").
			Immutable(),
		field.String("entity_id").
			Optional().
			Nillable(),
		field.Enum("role").
			Values("initiator", "recipient", "participant", "self").
			Default("participant"),
		field.String("identifier_type"),
		field.String("identifier_value"),
		field.String("display_name").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the InteractionParticipant.
func (InteractionParticipant) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("interaction", Interaction.Type).
			Ref("participants").
			Field("interaction_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the InteractionParticipant.
func (InteractionParticipant) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("interaction_id", "identifier_type", "identifier_value").
			Unique(),
		index.Fields("entity_id"),
	}
}
