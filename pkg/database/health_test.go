package database_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memograph/memograph/pkg/database"
	testdb "github.com/memograph/memograph/test/database"
)

func TestHealthReportsExtensions(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	status, err := database.Health(ctx, client.DB())
	require.NoError(t, err)

	assert.Equal(t, "healthy", status.Status)
	assert.True(t, status.Extensions["vector"])
	assert.True(t, status.Extensions["pg_trgm"])
	assert.GreaterOrEqual(t, status.OpenConnections, 1)
}
