package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PendingEntityResolution is a queue row for an identifier seen in messages
// that does not yet map to an entity. Operators resolve rows by attaching an
// existing entity or creating a new one.
type PendingEntityResolution struct {
	ent.Schema
}

// Fields of the PendingEntityResolution.
func (PendingEntityResolution) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("resolution_id").
			Unique().
			Immutable(),
		field.String("identifier_type"),
		field.String("identifier_value"),
		field.String("display_name").
			Optional(),
		field.Enum("status").
			Values("pending", "resolved", "merged").
			Default("pending"),
		field.Enum("resolution").
			Values("manual", "auto").
			Optional().
			Nillable().
			Comment("How the row was resolved; auto = display-name heuristic"),
		field.String("resolved_entity_id").
			Optional().
			Nillable(),
		field.JSON("suggestions", []map[string]interface{}{}).
			Optional().
			Comment("Ranked candidate entities from the disambiguation scorer"),
		field.JSON("sample_message_ids", []string{}).
			Optional().
			Comment("Up to 10 message IDs where the identifier was seen"),
		field.Time("first_seen_at").
			Default(time.Now).
			Immutable(),
		field.Time("resolved_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the PendingEntityResolution.
func (PendingEntityResolution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("identifier_type", "identifier_value").
			Unique(),
		index.Fields("status"),
	}
}
