package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// vectorIndexes lists every embedding column and its IVFFlat cosine index.
// lists=100 is sized for <=100k rows per table; beyond that the index needs
// retraining or partitioning.
var vectorIndexes = []struct {
	name   string
	table  string
	column string
}{
	{"idx_messages_embedding_ivfflat", "messages", "embedding"},
	{"idx_entity_facts_embedding_ivfflat", "entity_facts", "embedding"},
	{"idx_activities_embedding_ivfflat", "activities", "embedding"},
	{"idx_commitments_embedding_ivfflat", "commitments", "embedding"},
	{"idx_topical_segments_embedding_ivfflat", "topical_segments", "embedding"},
}

// EnsureIndexes creates the PostgreSQL indexes that Ent cannot express:
// IVFFlat cosine indexes on embedding columns, a trigram GIN index for
// entity name search, and the partial unique indexes enforcing idempotency.
func EnsureIndexes(ctx context.Context, driver *sql.Driver) error {
	if err := CreateVectorIndexes(ctx, driver); err != nil {
		return err
	}
	if err := CreateTrigramIndexes(ctx, driver); err != nil {
		return err
	}
	return CreatePartialUniqueIndexes(ctx, driver)
}

// CreateVectorIndexes creates IVFFlat cosine indexes on all embedding columns.
func CreateVectorIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()
	for _, idx := range vectorIndexes {
		stmt := fmt.Sprintf(
			`CREATE INDEX IF NOT EXISTS %s ON %s
			USING ivfflat (%s vector_cosine_ops) WITH (lists = 100)`,
			idx.name, idx.table, idx.column)
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create vector index %s: %w", idx.name, err)
		}
	}
	return nil
}

// CreateTrigramIndexes creates GIN trigram indexes for ILIKE search.
func CreateTrigramIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_entities_name_trgm
		ON entities USING gin (name gin_trgm_ops)`)
	if err != nil {
		return fmt.Errorf("failed to create entity name trigram index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_activities_name_trgm
		ON activities USING gin (name gin_trgm_ops)`)
	if err != nil {
		return fmt.Errorf("failed to create activity name trigram index: %w", err)
	}

	return nil
}

// CreatePartialUniqueIndexes creates the partial unique indexes enforcing
// the idempotency and singleton invariants.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// Idempotent ingest: one stored message per (interaction, source id).
	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS messages_interaction_source_message
		ON messages (interaction_id, source_message_id)
		WHERE source_message_id IS NOT NULL`)
	if err != nil {
		return fmt.Errorf("failed to create message idempotency index: %w", err)
	}

	// At most one owner entity.
	_, err = db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS entities_single_owner
		ON entities (is_owner)
		WHERE is_owner AND deleted_at IS NULL`)
	if err != nil {
		return fmt.Errorf("failed to create owner singleton index: %w", err)
	}

	return nil
}
