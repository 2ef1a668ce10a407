package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ActivityClosure mirrors ancestor-descendant pairs of the activity tree for
// subtree queries without recursive CTEs. Every node has a self-row with
// depth 0. Rows are rewritten atomically when a node is reparented.
type ActivityClosure struct {
	ent.Schema
}

// Fields of the ActivityClosure.
func (ActivityClosure) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("closure_id").
			Unique().
			Immutable(),
		field.String("ancestor_id"),
		field.String("descendant_id"),
		field.Int("depth").
			Comment("Edge count between ancestor and descendant"),
	}
}

// Indexes of the ActivityClosure.
func (ActivityClosure) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("ancestor_id", "descendant_id").
			Unique(),
		index.Fields("descendant_id"),
	}
}
