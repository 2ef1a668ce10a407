package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memograph/memograph/ent"
	"github.com/memograph/memograph/ent/interaction"
	"github.com/memograph/memograph/pkg/models"
	testdb "github.com/memograph/memograph/test/database"
)

// addParticipation links an entity into a chat with a given last-message
// recency.
func addParticipation(t *testing.T, client *ent.Client, entityID, chatID string, lastMessage time.Time) {
	t.Helper()
	ctx := context.Background()

	inter, err := client.Interaction.Create().
		SetID(uuid.New().String()).
		SetType(interaction.TypeTelegramSession).
		SetSource("telegram").
		SetChatID(chatID).
		SetStatus(interaction.StatusCompleted).
		SetStartedAt(lastMessage.Add(-time.Hour)).
		SetLastMessageAt(lastMessage).
		Save(ctx)
	require.NoError(t, err)

	err = client.InteractionParticipant.Create().
		SetID(uuid.New().String()).
		SetInteractionID(inter.ID).
		SetEntityID(entityID).
		SetIdentifierType("telegram_user_id").
		SetIdentifierValue(uuid.New().String()).
		Exec(ctx)
	require.NoError(t, err)
}

func TestDisambiguationService_Score(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewDisambiguationService(client.Client)
	entities := NewEntityService(client.Client)
	facts := NewFactService(client.Client)
	ctx := context.Background()

	t.Run("recency and chat presence stack up", func(t *testing.T) {
		active, err := entities.Create(ctx, models.CreateEntityRequest{Type: "person", Name: "Sasha One"})
		require.NoError(t, err)
		dormant, err := entities.Create(ctx, models.CreateEntityRequest{Type: "person", Name: "Sasha Two"})
		require.NoError(t, err)

		addParticipation(t, client.Client, active.ID, "chat-42", time.Now().UTC().Add(-time.Hour))
		addParticipation(t, client.Client, dormant.ID, "chat-other", time.Now().UTC().Add(-30*24*time.Hour))

		scored, err := service.Score(ctx, "sasha", models.DisambiguationContext{ChatID: "chat-42"})
		require.NoError(t, err)
		require.Len(t, scored, 2)

		// active entity + recent + same chat = 0.6 vs 0.1 for the dormant one.
		assert.Equal(t, active.ID, scored[0].EntityID)
		assert.InDelta(t, 0.6, scored[0].Score, 1e-9)
		assert.Contains(t, scored[0].Reasons, "interacted within the last 7 days")
		assert.Contains(t, scored[0].Reasons, "participates in this chat")
		assert.InDelta(t, 0.1, scored[1].Score, 1e-9)
	})

	t.Run("mentioned-with matches through the organization", func(t *testing.T) {
		org, err := entities.Create(ctx, models.CreateEntityRequest{Type: "organization", Name: "Globex Industries"})
		require.NoError(t, err)
		linked, err := entities.Create(ctx, models.CreateEntityRequest{Type: "person", Name: "Pat Globex-Side", OrganizationID: org.ID})
		require.NoError(t, err)
		_, err = entities.Create(ctx, models.CreateEntityRequest{Type: "person", Name: "Pat Unaffiliated"})
		require.NoError(t, err)

		scored, err := service.Score(ctx, "pat", models.DisambiguationContext{MentionedWith: []string{"globex"}})
		require.NoError(t, err)
		require.Len(t, scored, 2)
		assert.Equal(t, linked.ID, scored[0].EntityID)
		assert.Contains(t, scored[0].Reasons, `linked to "globex"`)
	})

	t.Run("mentioned-with matches through relation facts", func(t *testing.T) {
		e, err := entities.Create(ctx, models.CreateEntityRequest{Type: "person", Name: "Robin Contractor"})
		require.NoError(t, err)
		_, err = facts.Create(ctx, e.ID, models.CreateFactRequest{
			FactType: "works_with",
			Category: "client_vendor",
			Value:    "the Initech account",
		})
		require.NoError(t, err)

		scored, err := service.Score(ctx, "robin", models.DisambiguationContext{MentionedWith: []string{"initech"}})
		require.NoError(t, err)
		require.NotEmpty(t, scored)
		assert.Equal(t, e.ID, scored[0].EntityID)
		assert.InDelta(t, 0.5, scored[0].Score, 1e-9)
	})

	t.Run("no candidates yields an empty ranking", func(t *testing.T) {
		scored, err := service.Score(ctx, "nobody-by-this-name", models.DisambiguationContext{})
		require.NoError(t, err)
		assert.Empty(t, scored)
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		var validErr *ValidationError
		_, err := service.Score(ctx, "", models.DisambiguationContext{})
		require.ErrorAs(t, err, &validErr)
	})
}

func TestAmbiguous(t *testing.T) {
	mk := func(scores ...float64) []models.ScoredCandidate {
		out := make([]models.ScoredCandidate, len(scores))
		for i, s := range scores {
			out[i] = models.ScoredCandidate{Score: s}
		}
		return out
	}

	assert.True(t, Ambiguous(nil))
	assert.True(t, Ambiguous(mk(0.2)), "weak top score")
	assert.True(t, Ambiguous(mk(0.6, 0.5)), "runner-up too close")
	assert.False(t, Ambiguous(mk(0.6, 0.2)))
	assert.False(t, Ambiguous(mk(0.5)))
}
