package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EntityIdentifier ties an entity to a source-platform identity, e.g.
// (telegram_user_id, "42") or (phone, "+15551234"). The (type, value)
// pair is globally unique: one identifier belongs to exactly one entity.
type EntityIdentifier struct {
	ent.Schema
}

// Fields of the EntityIdentifier.
func (EntityIdentifier) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("identifier_id").
			Unique().
			Immutable(),
		field.String("entity_id"),
		field.String("identifier_type").
			Comment("e.g. telegram_user_id, phone, email"),
		field.String("identifier_value"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the EntityIdentifier.
func (EntityIdentifier) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("entity", Entity.Type).
			Ref("identifiers").
			Field("entity_id").
			Unique().
			Required(),
	}
}

// Indexes of the EntityIdentifier.
func (EntityIdentifier) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("identifier_type", "identifier_value").
			Unique(),
		index.Fields("entity_id"),
	}
}
