package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memograph/memograph/ent"
	"github.com/memograph/memograph/ent/pendingapproval"
	testdb "github.com/memograph/memograph/test/database"
)

func TestRetentionService_RunGC(t *testing.T) {
	client := testdb.NewTestClient(t)
	retention := NewRetentionService(client.Client, 30, 100)
	approvals := NewApprovalService(client.Client, 30)
	facts := NewFactService(client.Client)
	entities := NewEntityService(client.Client)
	ctx := context.Background()

	backdateReview := func(t *testing.T, approvalID string, reviewedAt time.Time) {
		t.Helper()
		err := client.PendingApproval.UpdateOneID(approvalID).
			SetReviewedAt(reviewedAt).
			Exec(ctx)
		require.NoError(t, err)
	}

	// created_at is immutable in the schema, so aging a draft takes raw SQL.
	backdateCreation := func(t *testing.T, factID string, createdAt time.Time) {
		t.Helper()
		_, err := client.DB().ExecContext(ctx,
			"UPDATE entity_facts SET created_at = $1 WHERE id = $2", createdAt, factID)
		require.NoError(t, err)
	}

	t.Run("deletes aged rejected drafts, keeps recent ones", func(t *testing.T) {
		agedFact, agedApproval := draftFixture(t, client.Client, approvals, facts, entities, "gc-batch")
		recentFact, recentApproval := draftFixture(t, client.Client, approvals, facts, entities, "gc-batch")

		_, err := approvals.Reject(ctx, agedApproval)
		require.NoError(t, err)
		_, err = approvals.Reject(ctx, recentApproval)
		require.NoError(t, err)

		backdateReview(t, agedApproval, time.Now().UTC().AddDate(0, 0, -45))

		deleted, err := retention.RunGC(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, deleted)

		_, err = client.EntityFact.Get(ctx, agedFact)
		assert.True(t, ent.IsNotFound(err))
		_, err = client.PendingApproval.Get(ctx, agedApproval)
		assert.True(t, ent.IsNotFound(err))

		// The recent rejection stays until it ages out.
		kept, err := client.PendingApproval.Get(ctx, recentApproval)
		require.NoError(t, err)
		assert.Equal(t, pendingapproval.StatusRejected, kept.Status)
		_, err = client.EntityFact.Get(ctx, recentFact)
		require.NoError(t, err)
	})

	t.Run("deletes orphaned drafts without an approval row", func(t *testing.T) {
		orphanFact, orphanApproval := draftFixture(t, client.Client, approvals, facts, entities, "gc-orphan")
		backedFact, _ := draftFixture(t, client.Client, approvals, facts, entities, "gc-orphan")

		// Strip the approval row so the draft is orphaned, then age both drafts.
		require.NoError(t, client.PendingApproval.DeleteOneID(orphanApproval).Exec(ctx))
		backdateCreation(t, orphanFact, time.Now().UTC().AddDate(0, 0, -45))
		backdateCreation(t, backedFact, time.Now().UTC().AddDate(0, 0, -45))

		deleted, err := retention.RunGC(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, deleted)

		_, err = client.EntityFact.Get(ctx, orphanFact)
		assert.True(t, ent.IsNotFound(err))

		// A pending approval still backs the other draft.
		_, err = client.EntityFact.Get(ctx, backedFact)
		require.NoError(t, err)
	})
}

func TestDraftScanTargetsCoverEachTableOnce(t *testing.T) {
	// The registry maps four item types onto three target tables (project
	// and task share activities); the GC scan list must not repeat a table.
	seen := map[string]bool{}
	for _, target := range draftScanTargets {
		assert.False(t, seen[target.table], "table %s scanned twice", target.table)
		seen[target.table] = true
		require.NotNil(t, target.handler.staleDraftIDs)
		require.NotNil(t, target.handler.hardDelete)
	}
	assert.Len(t, seen, 3)
	assert.Greater(t, len(itemRegistry), len(draftScanTargets))
}

func TestRetentionService_ZeroWindowIsNoop(t *testing.T) {
	client := testdb.NewTestClient(t)
	retention := NewRetentionService(client.Client, 0, 100)

	deleted, err := retention.RunGC(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, deleted)
}
