package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DataQualityReport records one audit run: the metrics gathered, issues
// detected, and any auto-remediations applied.
type DataQualityReport struct {
	ent.Schema
}

// Fields of the DataQualityReport.
func (DataQualityReport) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("report_id").
			Unique().
			Immutable(),
		field.Enum("triggered_by").
			Values("schedule", "manual").
			Default("schedule"),
		field.JSON("metrics", map[string]interface{}{}).
			Optional(),
		field.JSON("issues", []map[string]interface{}{}).
			Optional(),
		field.JSON("resolutions", []map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the DataQualityReport.
func (DataQualityReport) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
	}
}
