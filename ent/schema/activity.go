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

// Activity is a node in the work-item tree: areas contain businesses and
// projects, projects contain tasks. depth, materialized_path and the
// activity_closures table are maintained together inside the transaction
// that changes parent_id.
type Activity struct {
	ent.Schema
}

// Fields of the Activity.
func (Activity) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("activity_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.Enum("activity_type").
			Values("area", "business", "direction", "project", "initiative",
				"task", "milestone", "habit", "learning", "event_series"),
		field.Enum("status").
			Values("draft", "idea", "active", "paused", "completed", "cancelled", "archived").
			Default("draft"),
		field.Int("priority").
			Default(0),
		field.Text("context").
			Optional(),
		field.String("parent_id").
			Optional().
			Nillable(),
		field.Int("depth").
			Default(0).
			Comment("0 at root; always parent.depth + 1"),
		field.String("materialized_path").
			Default("").
			Comment("Slash-joined ancestor UUIDs, root first"),
		field.String("owner_entity_id").
			Optional().
			Nillable(),
		field.String("client_entity_id").
			Optional().
			Nillable(),
		field.String("source_interaction_id").
			Optional().
			Nillable(),
		field.Time("starts_at").
			Optional().
			Nillable(),
		field.Time("due_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.JSON("tags", []string{}).
			Optional(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("Carries draft_batch_id and possible_duplicate hints"),
		field.Bool("needs_review").
			Default(false),
		field.Int("confirmation_count").
			Default(0),
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

// Indexes of the Activity.
func (Activity) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("parent_id"),
		index.Fields("activity_type", "status"),
		index.Fields("owner_entity_id"),
		index.Fields("materialized_path"),
		index.Fields("deleted_at").
			Annotations(entsql.IndexWhere("deleted_at IS NOT NULL")),
	}
}
