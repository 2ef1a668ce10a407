package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	pgvector "github.com/pgvector/pgvector-go"
)

// EntityFact is an atomic claim about an entity (birthday, employer, city).
// Facts are never mutated in place: a value change inserts a new fact and
// deprecates the old one via superseded_by, forming a DAG.
type EntityFact struct {
	ent.Schema
}

// Fields of the EntityFact.
func (EntityFact) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("fact_id").
			Unique().
			Immutable(),
		field.String("entity_id"),
		field.String("fact_type").
			Comment("e.g. birthday, employer, city"),
		field.String("category").
			Optional(),
		field.Text("value").
			Optional().
			Nillable(),
		field.Time("value_date").
			Optional().
			Nillable(),
		field.JSON("value_json", map[string]interface{}{}).
			Optional(),
		field.Enum("source").
			Values("manual", "extracted", "imported", "inferred").
			Default("manual"),
		field.Float("confidence").
			Default(1.0).
			Range(0, 1),
		field.String("source_interaction_id").
			Optional().
			Nillable(),
		field.String("source_message_id").
			Optional().
			Nillable().
			Comment("Provenance: the message the fact was extracted from"),
		field.Time("valid_from").
			Optional().
			Nillable(),
		field.Time("valid_until").
			Optional().
			Nillable(),
		field.Enum("status").
			Values("draft", "active").
			Default("draft"),
		field.Enum("rank").
			Values("preferred", "normal", "deprecated").
			Default("normal").
			Comment("Chooses the canonical fact when multiple active facts exist"),
		field.String("superseded_by").
			Optional().
			Nillable().
			Comment("Fact-fact link; acyclic"),
		field.Bool("needs_review").
			Default(false),
		field.String("review_reason").
			Optional().
			Nillable(),
		field.Int("confirmation_count").
			Default(0).
			Comment("Bumped when a duplicate extraction confirms this fact"),
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

// Edges of the EntityFact.
func (EntityFact) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("entity", Entity.Type).
			Ref("facts").
			Field("entity_id").
			Unique().
			Required(),
	}
}

// Indexes of the EntityFact.
func (EntityFact) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("entity_id", "fact_type"),
		index.Fields("status"),
		index.Fields("fact_type"),
		index.Fields("deleted_at").
			Annotations(entsql.IndexWhere("deleted_at IS NOT NULL")),
	}
}
