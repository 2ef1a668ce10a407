package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"

	"github.com/memograph/memograph/ent/commitment"
	"github.com/memograph/memograph/ent/interaction"
	"github.com/memograph/memograph/pkg/models"
	testdb "github.com/memograph/memograph/test/database"
)

func newContextTestRedis(t *testing.T) *goredis.Client {
	t.Helper()
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	connStr, err := container.ConnectionString(ctx)
	require.NoError(t, err)
	opts, err := goredis.ParseURL(connStr)
	require.NoError(t, err)

	rdb := goredis.NewClient(opts)
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func TestDailyContextService_Today(t *testing.T) {
	client := testdb.NewTestClient(t)
	rdb := newContextTestRedis(t)
	service := NewDailyContextService(client.Client, rdb, time.Hour)
	commitments := NewCommitmentService(client.Client)
	ctx := context.Background()
	now := time.Now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	// A conversation touched this morning.
	inter, err := client.Interaction.Create().
		SetID(uuid.New().String()).
		SetType(interaction.TypeTelegramSession).
		SetSource("telegram").
		SetChatID("chat-digest").
		SetStatus(interaction.StatusActive).
		SetStartedAt(now.Add(-2 * time.Hour)).
		SetLastMessageAt(now).
		Save(ctx)
	require.NoError(t, err)

	dueToday := dayStart.Add(12 * time.Hour)
	due, err := commitments.Create(ctx, models.CreateCommitmentRequest{
		Type: "promise", Title: "Call the dentist", DueDate: &dueToday,
	})
	require.NoError(t, err)

	// An already-flipped overdue commitment.
	pastDue := now.Add(-48 * time.Hour)
	stale, err := commitments.Create(ctx, models.CreateCommitmentRequest{
		Type: "request", Title: "Return the ladder", DueDate: &pastDue,
	})
	require.NoError(t, err)
	err = client.Commitment.UpdateOneID(stale.ID).
		SetStatus(commitment.StatusOverdue).
		Exec(ctx)
	require.NoError(t, err)

	dc, err := service.Today(ctx, false)
	require.NoError(t, err)

	assert.Equal(t, now.Format("2006-01-02"), dc.Date)
	require.Len(t, dc.Interactions, 1)
	assert.Equal(t, inter.ID, dc.Interactions[0].ID)
	require.Len(t, dc.DueToday, 1)
	assert.Equal(t, due.ID, dc.DueToday[0].ID)
	require.Len(t, dc.Overdue, 1)
	assert.Equal(t, stale.ID, dc.Overdue[0].ID)

	t.Run("serves the cached digest until refreshed", func(t *testing.T) {
		lateDue := dayStart.Add(18 * time.Hour)
		_, err := commitments.Create(ctx, models.CreateCommitmentRequest{
			Type: "promise", Title: "Added after caching", DueDate: &lateDue,
		})
		require.NoError(t, err)

		cached, err := service.Today(ctx, false)
		require.NoError(t, err)
		assert.Len(t, cached.DueToday, 1)

		fresh, err := service.Today(ctx, true)
		require.NoError(t, err)
		assert.Len(t, fresh.DueToday, 2)
	})

	t.Run("cache entry carries the configured TTL", func(t *testing.T) {
		key := "daily_context:" + now.Format("2006-01-02")
		ttl, err := rdb.TTL(ctx, key).Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, 50*time.Minute)
		assert.LessOrEqual(t, ttl, time.Hour)
	})
}
