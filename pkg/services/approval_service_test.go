package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memograph/memograph/ent"
	"github.com/memograph/memograph/ent/entityfact"
	"github.com/memograph/memograph/ent/pendingapproval"
	"github.com/memograph/memograph/pkg/models"
	testdb "github.com/memograph/memograph/test/database"
)

// draftFixture creates a draft fact with a pending approval row.
func draftFixture(t *testing.T, client *ent.Client, service *ApprovalService, facts *FactService, entities *EntityService, batchID string) (factID, approvalID string) {
	t.Helper()
	ctx := context.Background()

	e, err := entities.Create(ctx, models.CreateEntityRequest{Type: "person", Name: "Draft Subject " + uuid.New().String()})
	require.NoError(t, err)
	f, err := facts.Create(ctx, e.ID, models.CreateFactRequest{
		FactType: "nickname",
		Value:    "drafted value",
		Source:   "extracted",
		Status:   "draft",
	})
	require.NoError(t, err)

	tx, err := client.Tx(ctx)
	require.NoError(t, err)
	approval, err := service.Create(ctx, tx, CreateApprovalRequest{
		ItemType:   "fact",
		TargetID:   f.ID,
		BatchID:    batchID,
		Confidence: 0.8,
	})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	return f.ID, approval.ID
}

func TestApprovalService_ApproveReject(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewApprovalService(client.Client, 30)
	facts := NewFactService(client.Client)
	entities := NewEntityService(client.Client)
	ctx := context.Background()

	t.Run("approve activates the draft", func(t *testing.T) {
		factID, approvalID := draftFixture(t, client.Client, service, facts, entities, "batch-a")

		approval, err := service.Approve(ctx, approvalID)
		require.NoError(t, err)
		assert.Equal(t, pendingapproval.StatusApproved, approval.Status)
		assert.NotNil(t, approval.ReviewedAt)

		f, err := client.EntityFact.Get(ctx, factID)
		require.NoError(t, err)
		assert.Equal(t, entityfact.StatusActive, f.Status)
	})

	t.Run("decided rows refuse a second decision", func(t *testing.T) {
		_, approvalID := draftFixture(t, client.Client, service, facts, entities, "batch-a")

		_, err := service.Approve(ctx, approvalID)
		require.NoError(t, err)

		_, err = service.Approve(ctx, approvalID)
		assert.ErrorIs(t, err, ErrConflict)
		_, err = service.Reject(ctx, approvalID)
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("reject with retention soft-deletes the target", func(t *testing.T) {
		factID, approvalID := draftFixture(t, client.Client, service, facts, entities, "batch-a")

		approval, err := service.Reject(ctx, approvalID)
		require.NoError(t, err)
		assert.Equal(t, pendingapproval.StatusRejected, approval.Status)

		f, err := client.EntityFact.Get(ctx, factID)
		require.NoError(t, err)
		assert.NotNil(t, f.DeletedAt)
	})

	t.Run("unknown approval is not found", func(t *testing.T) {
		_, err := service.Approve(ctx, uuid.New().String())
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestApprovalService_ZeroRetentionReject(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewApprovalService(client.Client, 0)
	facts := NewFactService(client.Client)
	entities := NewEntityService(client.Client)
	ctx := context.Background()

	factID, approvalID := draftFixture(t, client.Client, service, facts, entities, "batch-z")

	_, err := service.Reject(ctx, approvalID)
	require.NoError(t, err)

	// Target and approval row are both gone.
	_, err = client.EntityFact.Get(ctx, factID)
	assert.True(t, ent.IsNotFound(err))
	_, err = client.PendingApproval.Get(ctx, approvalID)
	assert.True(t, ent.IsNotFound(err))
}

func TestApprovalService_Batch(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewApprovalService(client.Client, 30)
	facts := NewFactService(client.Client)
	entities := NewEntityService(client.Client)
	ctx := context.Background()

	t.Run("batch approve isolates per-item failures", func(t *testing.T) {
		fact1, approval1 := draftFixture(t, client.Client, service, facts, entities, "batch-b")
		_, approval2 := draftFixture(t, client.Client, service, facts, entities, "batch-b")

		// approval2 is already decided, so it fails inside the batch.
		_, err := service.Reject(ctx, approval2)
		require.NoError(t, err)

		result, err := service.BatchApprove(ctx, []string{approval1, approval2, uuid.New().String()})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Processed)
		assert.Equal(t, 2, result.Failed)
		assert.Len(t, result.Errors, 2)

		f, err := client.EntityFact.Get(ctx, fact1)
		require.NoError(t, err)
		assert.Equal(t, entityfact.StatusActive, f.Status)
	})

	t.Run("empty id list is rejected", func(t *testing.T) {
		var validErr *ValidationError
		_, err := service.BatchApprove(ctx, nil)
		require.ErrorAs(t, err, &validErr)
	})

	t.Run("batch stats count decisions", func(t *testing.T) {
		_, a1 := draftFixture(t, client.Client, service, facts, entities, "batch-s")
		_, a2 := draftFixture(t, client.Client, service, facts, entities, "batch-s")
		_, _ = draftFixture(t, client.Client, service, facts, entities, "batch-s")

		_, err := service.Approve(ctx, a1)
		require.NoError(t, err)
		_, err = service.Reject(ctx, a2)
		require.NoError(t, err)

		stats, err := service.BatchStats(ctx, "batch-s")
		require.NoError(t, err)
		assert.Equal(t, 3, stats.Total)
		assert.Equal(t, 1, stats.Approved)
		assert.Equal(t, 1, stats.Rejected)
		assert.Equal(t, 1, stats.Pending)

		pending, err := service.HasPendingBatch(ctx, "batch-s")
		require.NoError(t, err)
		assert.True(t, pending)

		_, err = service.BatchStats(ctx, "no-such-batch")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestApprovalService_BatchByID(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewApprovalService(client.Client, 30)
	facts := NewFactService(client.Client)
	entities := NewEntityService(client.Client)
	ctx := context.Background()

	t.Run("approve batch decides only pending rows", func(t *testing.T) {
		fact1, _ := draftFixture(t, client.Client, service, facts, entities, "batch-id-a")
		fact2, _ := draftFixture(t, client.Client, service, facts, entities, "batch-id-a")
		_, rejected := draftFixture(t, client.Client, service, facts, entities, "batch-id-a")
		_, err := service.Reject(ctx, rejected)
		require.NoError(t, err)

		result, err := service.ApproveBatch(ctx, "batch-id-a")
		require.NoError(t, err)
		assert.Equal(t, 2, result.Processed)
		assert.Equal(t, 0, result.Failed)

		for _, id := range []string{fact1, fact2} {
			f, err := client.EntityFact.Get(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, entityfact.StatusActive, f.Status)
		}

		stats, err := service.BatchStats(ctx, "batch-id-a")
		require.NoError(t, err)
		assert.Equal(t, 0, stats.Pending)
		assert.Equal(t, 2, stats.Approved)
		assert.Equal(t, 1, stats.Rejected)
	})

	t.Run("reject batch soft-deletes its drafts", func(t *testing.T) {
		factID, _ := draftFixture(t, client.Client, service, facts, entities, "batch-id-r")

		result, err := service.RejectBatch(ctx, "batch-id-r")
		require.NoError(t, err)
		assert.Equal(t, 1, result.Processed)

		f, err := client.EntityFact.Get(ctx, factID)
		require.NoError(t, err)
		assert.NotNil(t, f.DeletedAt)
	})

	t.Run("fully decided batch is a no-op", func(t *testing.T) {
		_, approvalID := draftFixture(t, client.Client, service, facts, entities, "batch-id-d")
		_, err := service.Approve(ctx, approvalID)
		require.NoError(t, err)

		result, err := service.ApproveBatch(ctx, "batch-id-d")
		require.NoError(t, err)
		assert.Equal(t, 0, result.Processed)
		assert.Equal(t, 0, result.Failed)
	})

	t.Run("unknown batch is not found", func(t *testing.T) {
		_, err := service.ApproveBatch(ctx, "no-such-batch")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestApprovalService_UpdateTarget(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewApprovalService(client.Client, 30)
	facts := NewFactService(client.Client)
	entities := NewEntityService(client.Client)
	ctx := context.Background()

	factID, approvalID := draftFixture(t, client.Client, service, facts, entities, "batch-u")

	value := "edited value"
	_, err := service.UpdateTarget(ctx, approvalID, models.UpdateTargetRequest{Name: &value})
	require.NoError(t, err)

	f, err := client.EntityFact.Get(ctx, factID)
	require.NoError(t, err)
	assert.Equal(t, "edited value", f.Value)

	// After approval the draft is no longer editable through the workflow.
	_, err = service.Approve(ctx, approvalID)
	require.NoError(t, err)
	_, err = service.UpdateTarget(ctx, approvalID, models.UpdateTargetRequest{Name: &value})
	assert.ErrorIs(t, err, ErrConflict)
}
