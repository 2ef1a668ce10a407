package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memograph/memograph/ent/embeddingjob"
	"github.com/memograph/memograph/pkg/models"
	testdb "github.com/memograph/memograph/test/database"
)

func TestCommitmentService_Create(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCommitmentService(client.Client)
	ctx := context.Background()

	t.Run("dated promise starts on the reminder ladder", func(t *testing.T) {
		due := time.Now().UTC().Add(72 * time.Hour)
		created, err := service.Create(ctx, models.CreateCommitmentRequest{
			Type:    "promise",
			Title:   "Send the contract draft",
			DueDate: &due,
		})
		require.NoError(t, err)

		assert.Equal(t, "pending", created.Status.String())
		assert.InDelta(t, 1.0, created.Confidence, 1e-9)
		require.NotNil(t, created.NextReminderAt)
		assert.WithinDuration(t, due.Add(-24*time.Hour), *created.NextReminderAt, time.Second)

		jobs, err := client.EmbeddingJob.Query().
			Where(embeddingjob.TargetKindEQ(embeddingjob.TargetKindCommitment)).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, created.ID, jobs[0].TargetID)
	})

	t.Run("recurring commitment with a future due date reminds at the due date", func(t *testing.T) {
		due := time.Now().UTC().Add(48 * time.Hour)
		created, err := service.Create(ctx, models.CreateCommitmentRequest{
			Type:           "request",
			Title:          "Weekly status mail",
			DueDate:        &due,
			RecurrenceRule: "weekly",
		})
		require.NoError(t, err)
		require.NotNil(t, created.NextReminderAt)
		assert.WithinDuration(t, due, *created.NextReminderAt, time.Second)
	})

	t.Run("recurring commitment without a due date reminds one interval out", func(t *testing.T) {
		created, err := service.Create(ctx, models.CreateCommitmentRequest{
			Type:           "promise",
			Title:          "Water the plants",
			RecurrenceRule: "every 2 days",
		})
		require.NoError(t, err)
		require.NotNil(t, created.NextReminderAt)
		assert.WithinDuration(t, time.Now().UTC().Add(48*time.Hour), *created.NextReminderAt, time.Minute)
	})

	t.Run("undated one-shot has no reminder", func(t *testing.T) {
		created, err := service.Create(ctx, models.CreateCommitmentRequest{
			Type:  "promise",
			Title: "Someday: learn sailing",
		})
		require.NoError(t, err)
		assert.Nil(t, created.NextReminderAt)
	})

	t.Run("validation", func(t *testing.T) {
		var validErr *ValidationError

		_, err := service.Create(ctx, models.CreateCommitmentRequest{Title: "no type"})
		require.ErrorAs(t, err, &validErr)

		_, err = service.Create(ctx, models.CreateCommitmentRequest{Type: "promise"})
		require.ErrorAs(t, err, &validErr)

		_, err = service.Create(ctx, models.CreateCommitmentRequest{
			Type:           "promise",
			Title:          "bad rule",
			RecurrenceRule: "every blue moon",
		})
		require.ErrorAs(t, err, &validErr)
	})
}

func TestCommitmentService_ListAndUpdate(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCommitmentService(client.Client)
	ctx := context.Background()

	soon := time.Now().UTC().Add(24 * time.Hour)
	later := time.Now().UTC().Add(96 * time.Hour)

	first, err := service.Create(ctx, models.CreateCommitmentRequest{
		Type: "promise", Title: "Due soon", DueDate: &soon,
	})
	require.NoError(t, err)
	second, err := service.Create(ctx, models.CreateCommitmentRequest{
		Type: "request", Title: "Due later", DueDate: &later,
	})
	require.NoError(t, err)
	undated, err := service.Create(ctx, models.CreateCommitmentRequest{
		Type: "promise", Title: "Undated",
	})
	require.NoError(t, err)

	t.Run("list orders by due date", func(t *testing.T) {
		all, err := service.List(ctx, models.CommitmentFilters{})
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, first.ID, all[0].ID)
		assert.Equal(t, second.ID, all[1].ID)
		assert.Equal(t, undated.ID, all[2].ID)
	})

	t.Run("type and due-before filters", func(t *testing.T) {
		promises, err := service.List(ctx, models.CommitmentFilters{Type: "promise"})
		require.NoError(t, err)
		assert.Len(t, promises, 2)

		cutoff := time.Now().UTC().Add(48 * time.Hour)
		dueSoon, err := service.List(ctx, models.CommitmentFilters{DueBefore: &cutoff})
		require.NoError(t, err)
		require.Len(t, dueSoon, 1)
		assert.Equal(t, first.ID, dueSoon[0].ID)
	})

	t.Run("completing clears the reminder", func(t *testing.T) {
		status := "completed"
		updated, err := service.Update(ctx, first.ID, models.UpdateCommitmentRequest{Status: &status})
		require.NoError(t, err)
		assert.Nil(t, updated.NextReminderAt)
	})

	t.Run("moving the due date reschedules", func(t *testing.T) {
		newDue := time.Now().UTC().Add(10 * 24 * time.Hour)
		updated, err := service.Update(ctx, second.ID, models.UpdateCommitmentRequest{DueDate: &newDue})
		require.NoError(t, err)
		require.NotNil(t, updated.NextReminderAt)
		assert.WithinDuration(t, newDue.Add(-24*time.Hour), *updated.NextReminderAt, time.Second)
	})

	t.Run("invalid rule on update is rejected", func(t *testing.T) {
		var validErr *ValidationError
		rule := "every -1 hours"
		_, err := service.Update(ctx, second.ID, models.UpdateCommitmentRequest{RecurrenceRule: &rule})
		require.ErrorAs(t, err, &validErr)
	})

	t.Run("soft delete hides and silences", func(t *testing.T) {
		require.NoError(t, service.SoftDelete(ctx, undated.ID))

		_, err := service.Get(ctx, undated.ID)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorIs(t, service.SoftDelete(ctx, undated.ID), ErrNotFound)

		remaining, err := service.List(ctx, models.CommitmentFilters{})
		require.NoError(t, err)
		assert.Len(t, remaining, 2)
	})
}
