package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EmbeddingJob is a durable FIFO queue row consumed by the embedding worker
// pool. Delivery is at-least-once: workers overwrite the target's embedding
// column, so reprocessing is harmless.
type EmbeddingJob struct {
	ent.Schema
}

// Fields of the EmbeddingJob.
func (EmbeddingJob) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_id").
			Unique().
			Immutable(),
		field.Enum("target_kind").
			Values("message", "fact", "activity", "commitment", "segment", "summary"),
		field.String("target_id"),
		field.Enum("status").
			Values("pending", "processing", "completed", "failed").
			Default("pending"),
		field.Int("attempts").
			Default(0),
		field.Time("next_attempt_at").
			Default(time.Now).
			Comment("Exponential backoff schedule: 1s initial, factor 2"),
		field.String("last_error").
			Optional().
			Nillable(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("last_interaction_at").
			Optional().
			Nillable().
			Comment("Heartbeat for orphan detection"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the EmbeddingJob.
func (EmbeddingJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "next_attempt_at"),
		index.Fields("status", "created_at"),
		index.Fields("target_kind", "target_id"),
	}
}
