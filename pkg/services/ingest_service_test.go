package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memograph/memograph/ent/embeddingjob"
	"github.com/memograph/memograph/ent/interaction"
	"github.com/memograph/memograph/ent/interactionparticipant"
	"github.com/memograph/memograph/ent/message"
	"github.com/memograph/memograph/pkg/models"
	testdb "github.com/memograph/memograph/test/database"
)

func ingestReq(chatID, sourceMsgID string, ts time.Time) models.IngestMessageRequest {
	return models.IngestMessageRequest{
		Source:          "telegram",
		ChatID:          chatID,
		SourceMessageID: sourceMsgID,
		Timestamp:       ts,
		Content:         "hello there",
		SenderIdentifier: models.IdentifierRef{
			Type:        "telegram_user_id",
			Value:       "555001",
			DisplayName: "Alice Example",
		},
	}
}

func TestIngestService_Ingest(t *testing.T) {
	client := testdb.NewTestClient(t)
	resolver := NewResolverService(client.Client, NewDisambiguationService(client.Client), 0.9)
	service := NewIngestService(client.Client, resolver, 4*time.Hour)
	ctx := context.Background()
	base := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

	t.Run("creates interaction, message, and embedding job", func(t *testing.T) {
		chatID := uuid.New().String()
		res, err := service.Ingest(ctx, ingestReq(chatID, "m1", base))
		require.NoError(t, err)

		assert.True(t, res.InteractionNew)
		assert.False(t, res.Duplicate)
		assert.Equal(t, "pending", res.SenderResolution)
		assert.Empty(t, res.SenderEntityID)

		inter, err := client.Interaction.Get(ctx, res.InteractionID)
		require.NoError(t, err)
		assert.Equal(t, interaction.StatusActive, inter.Status)
		assert.Equal(t, base, inter.StartedAt.UTC())
		assert.Equal(t, base, inter.LastMessageAt.UTC())

		msg, err := client.Message.Get(ctx, res.MessageID)
		require.NoError(t, err)
		assert.Equal(t, "hello there", msg.Content)

		jobs, err := client.EmbeddingJob.Query().
			Where(
				embeddingjob.TargetKindEQ(embeddingjob.TargetKindMessage),
				embeddingjob.TargetIDEQ(msg.ID),
			).
			All(ctx)
		require.NoError(t, err)
		assert.Len(t, jobs, 1)
		assert.Equal(t, embeddingjob.StatusPending, jobs[0].Status)
	})

	t.Run("is idempotent by source message id", func(t *testing.T) {
		chatID := uuid.New().String()
		first, err := service.Ingest(ctx, ingestReq(chatID, "m1", base))
		require.NoError(t, err)

		second, err := service.Ingest(ctx, ingestReq(chatID, "m1", base))
		require.NoError(t, err)
		assert.True(t, second.Duplicate)
		assert.Equal(t, first.MessageID, second.MessageID)
		assert.Equal(t, first.InteractionID, second.InteractionID)

		count, err := client.Message.Query().
			Where(message.InteractionIDEQ(first.InteractionID)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("reuses the open interaction within the gap", func(t *testing.T) {
		chatID := uuid.New().String()
		first, err := service.Ingest(ctx, ingestReq(chatID, "m1", base))
		require.NoError(t, err)

		second, err := service.Ingest(ctx, ingestReq(chatID, "m2", base.Add(time.Hour)))
		require.NoError(t, err)
		assert.False(t, second.InteractionNew)
		assert.Equal(t, first.InteractionID, second.InteractionID)

		inter, err := client.Interaction.Get(ctx, first.InteractionID)
		require.NoError(t, err)
		assert.Equal(t, base.Add(time.Hour), inter.LastMessageAt.UTC())
	})

	t.Run("cuts over to a new interaction after the gap", func(t *testing.T) {
		chatID := uuid.New().String()
		first, err := service.Ingest(ctx, ingestReq(chatID, "m1", base))
		require.NoError(t, err)

		second, err := service.Ingest(ctx, ingestReq(chatID, "m2", base.Add(5*time.Hour)))
		require.NoError(t, err)
		assert.True(t, second.InteractionNew)
		assert.NotEqual(t, first.InteractionID, second.InteractionID)

		old, err := client.Interaction.Get(ctx, first.InteractionID)
		require.NoError(t, err)
		assert.Equal(t, interaction.StatusCompleted, old.Status)
		require.NotNil(t, old.EndedAt)
		assert.Equal(t, base, old.EndedAt.UTC())
	})

	t.Run("late arrival lands in the covering closed interaction", func(t *testing.T) {
		chatID := uuid.New().String()
		first, err := service.Ingest(ctx, ingestReq(chatID, "m1", base))
		require.NoError(t, err)
		_, err = service.Ingest(ctx, ingestReq(chatID, "m2", base.Add(30*time.Minute)))
		require.NoError(t, err)
		// Cutover closes the first interaction.
		_, err = service.Ingest(ctx, ingestReq(chatID, "m3", base.Add(6*time.Hour)))
		require.NoError(t, err)

		late, err := service.Ingest(ctx, ingestReq(chatID, "m-late", base.Add(10*time.Minute)))
		require.NoError(t, err)
		assert.False(t, late.InteractionNew)
		assert.Equal(t, first.InteractionID, late.InteractionID)

		closed, err := client.Interaction.Get(ctx, first.InteractionID)
		require.NoError(t, err)
		assert.True(t, closed.NeedsResegmentation)
	})

	t.Run("stray history before everything becomes a completed interaction", func(t *testing.T) {
		chatID := uuid.New().String()
		_, err := service.Ingest(ctx, ingestReq(chatID, "m1", base))
		require.NoError(t, err)

		old, err := service.Ingest(ctx, ingestReq(chatID, "m-old", base.Add(-48*time.Hour)))
		require.NoError(t, err)
		assert.True(t, old.InteractionNew)

		inter, err := client.Interaction.Get(ctx, old.InteractionID)
		require.NoError(t, err)
		assert.Equal(t, interaction.StatusCompleted, inter.Status)
	})

	t.Run("records participants with roles", func(t *testing.T) {
		chatID := uuid.New().String()
		req := ingestReq(chatID, "m1", base)
		req.RecipientIdentifier = &models.IdentifierRef{
			Type:  "telegram_user_id",
			Value: "555002",
		}
		res, err := service.Ingest(ctx, req)
		require.NoError(t, err)

		participants, err := client.InteractionParticipant.Query().
			Where(interactionparticipant.InteractionIDEQ(res.InteractionID)).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, participants, 2)

		roles := map[string]interactionparticipant.Role{}
		for _, p := range participants {
			roles[p.IdentifierValue] = p.Role
		}
		assert.Equal(t, interactionparticipant.RoleInitiator, roles["555001"])
		assert.Equal(t, interactionparticipant.RoleRecipient, roles["555002"])
	})

	t.Run("outgoing messages use the self role", func(t *testing.T) {
		chatID := uuid.New().String()
		req := ingestReq(chatID, "m1", base)
		req.IsOutgoing = true
		res, err := service.Ingest(ctx, req)
		require.NoError(t, err)

		p, err := client.InteractionParticipant.Query().
			Where(interactionparticipant.InteractionIDEQ(res.InteractionID)).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, interactionparticipant.RoleSelf, p.Role)
	})

	t.Run("resolves sender through a registered identifier", func(t *testing.T) {
		entities := NewEntityService(client.Client)
		e, err := entities.Create(ctx, models.CreateEntityRequest{Type: "person", Name: "Known Sender"})
		require.NoError(t, err)
		_, err = client.EntityIdentifier.Create().
			SetID(uuid.New().String()).
			SetEntityID(e.ID).
			SetIdentifierType("telegram_user_id").
			SetIdentifierValue("777123").
			Save(ctx)
		require.NoError(t, err)

		req := ingestReq(uuid.New().String(), "m1", base)
		req.SenderIdentifier = models.IdentifierRef{Type: "telegram_user_id", Value: "777123", DisplayName: "Known"}
		res, err := service.Ingest(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "resolved", res.SenderResolution)
		assert.Equal(t, e.ID, res.SenderEntityID)

		msg, err := client.Message.Get(ctx, res.MessageID)
		require.NoError(t, err)
		require.NotNil(t, msg.SenderEntityID)
		assert.Equal(t, e.ID, *msg.SenderEntityID)
	})

	t.Run("validates required fields", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*models.IngestMessageRequest)
		}{
			{"missing source", func(r *models.IngestMessageRequest) { r.Source = "" }},
			{"missing chat id", func(r *models.IngestMessageRequest) { r.ChatID = "" }},
			{"missing source message id", func(r *models.IngestMessageRequest) { r.SourceMessageID = "" }},
			{"missing timestamp", func(r *models.IngestMessageRequest) { r.Timestamp = time.Time{} }},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				req := ingestReq(uuid.New().String(), "m1", base)
				tt.mutate(&req)
				_, err := service.Ingest(ctx, req)
				var validErr *ValidationError
				require.ErrorAs(t, err, &validErr)
			})
		}
	})
}

func TestIngestService_CloseIdle(t *testing.T) {
	client := testdb.NewTestClient(t)
	resolver := NewResolverService(client.Client, NewDisambiguationService(client.Client), 0.9)
	service := NewIngestService(client.Client, resolver, 4*time.Hour)
	ctx := context.Background()

	// One stale chat, one fresh chat.
	stale, err := service.Ingest(ctx, ingestReq(uuid.New().String(), "m1", time.Now().UTC().Add(-6*time.Hour)))
	require.NoError(t, err)
	fresh, err := service.Ingest(ctx, ingestReq(uuid.New().String(), "m1", time.Now().UTC().Add(-10*time.Minute)))
	require.NoError(t, err)

	closed, err := service.CloseIdle(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, closed)

	staleInter, err := client.Interaction.Get(ctx, stale.InteractionID)
	require.NoError(t, err)
	assert.Equal(t, interaction.StatusCompleted, staleInter.Status)
	require.NotNil(t, staleInter.EndedAt)

	freshInter, err := client.Interaction.Get(ctx, fresh.InteractionID)
	require.NoError(t, err)
	assert.Equal(t, interaction.StatusActive, freshInter.Status)

	// Second pass is a no-op.
	closed, err = service.CloseIdle(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, closed)
}

func TestIngestService_ListMessagesOrdered(t *testing.T) {
	client := testdb.NewTestClient(t)
	resolver := NewResolverService(client.Client, NewDisambiguationService(client.Client), 0.9)
	service := NewIngestService(client.Client, resolver, 4*time.Hour)
	ctx := context.Background()
	base := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	chatID := uuid.New().String()

	var interactionID string
	for i := 1; i <= 3; i++ {
		res, err := service.Ingest(ctx, ingestReq(chatID, fmt.Sprintf("m%d", i), base.Add(time.Duration(i)*time.Minute)))
		require.NoError(t, err)
		interactionID = res.InteractionID
	}

	msgs, err := service.ListMessages(ctx, interactionID)
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.True(t, msgs[0].Timestamp.Before(msgs[1].Timestamp))
	assert.True(t, msgs[1].Timestamp.Before(msgs[2].Timestamp))
}
