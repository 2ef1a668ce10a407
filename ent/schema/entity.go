package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Entity holds the schema definition for a person or organization,
// the unit of identity in the knowledge graph.
type Entity struct {
	ent.Schema
}

// Fields of the Entity.
func (Entity) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("entity_id").
			Unique().
			Immutable(),
		field.Enum("type").
			Values("person", "organization"),
		field.String("name").
			Comment("Display name (trigram-indexed for ILIKE search)"),
		field.String("organization_id").
			Optional().
			Nillable().
			Comment("Self-reference to an entity of type organization"),
		field.Text("notes").
			Optional(),
		field.Bool("is_owner").
			Default(false).
			Comment("The single 'me' entity; uniqueness enforced by partial index"),
		field.Bool("is_bot").
			Default(false),
		field.Enum("creation_source").
			Values("manual", "extracted", "imported").
			Default("manual"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Soft delete; excluded from default queries"),
	}
}

// Edges of the Entity.
func (Entity) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("identifiers", EntityIdentifier.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("facts", EntityFact.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("members", Entity.Type).
			From("organization").
			Field("organization_id").
			Unique(),
	}
}

// Indexes of the Entity.
func (Entity) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("type"),
		index.Fields("name"),
		index.Fields("type", "name"),
		index.Fields("updated_at"),

		// Partial index for soft deletes
		index.Fields("deleted_at").
			Annotations(entsql.IndexWhere("deleted_at IS NOT NULL")),
	}
}
