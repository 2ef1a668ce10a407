package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PendingApproval is a draft's presence in the operator review queue.
// target_id is a polymorphic reference resolved through the item-type
// registry in pkg/services/registry.go. Transitions are monotonic:
// pending → approved or pending → rejected, never reversed.
type PendingApproval struct {
	ent.Schema
}

// Fields of the PendingApproval.
func (PendingApproval) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("approval_id").
			Unique().
			Immutable(),
		field.Enum("item_type").
			Values("fact", "project", "task", "commitment"),
		field.String("target_id"),
		field.String("batch_id").
			Comment("All drafts from one extraction run share a batch"),
		field.Enum("status").
			Values("pending", "approved", "rejected").
			Default("pending"),
		field.Float("confidence").
			Default(0).
			Range(0, 1),
		field.Text("source_quote").
			Optional().
			Comment("Verbatim text the extraction was based on"),
		field.String("source_interaction_id").
			Optional().
			Nillable(),
		field.String("source_entity_id").
			Optional().
			Nillable(),
		field.Text("context").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("reviewed_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the PendingApproval.
func (PendingApproval) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("batch_id", "status"),
		index.Fields("status", "created_at"),
		index.Fields("item_type", "target_id"),
	}
}
