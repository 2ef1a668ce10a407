package database

import (
	"context"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/require"

	"github.com/memograph/memograph/pkg/database"
	"github.com/memograph/memograph/test/util"
)

// NewTestClient creates a test database client.
// In CI (when CI_DATABASE_URL is set): connects to external PostgreSQL service container.
// In local dev: spins up a pgvector testcontainer.
// The container/connection is automatically cleaned up when the test ends.
func NewTestClient(t *testing.T) *database.Client {
	ctx := context.Background()

	entClient, db := util.SetupTestDatabase(t)

	drv := entsql.OpenDB(dialect.Postgres, db)

	// The trigram and partial unique indexes carry behavior the tests rely
	// on (idempotent ingest, single canonical fact). Vector indexes are
	// skipped; sequential scans are fine at test scale.
	err := database.CreateTrigramIndexes(ctx, drv)
	require.NoError(t, err)
	err = database.CreatePartialUniqueIndexes(ctx, drv)
	require.NoError(t, err)

	return database.NewClientFromEnt(entClient, db)
}
