package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memograph/memograph/ent/entity"
	"github.com/memograph/memograph/ent/entityidentifier"
	"github.com/memograph/memograph/ent/pendingentityresolution"
	"github.com/memograph/memograph/pkg/models"
	testdb "github.com/memograph/memograph/test/database"
)

func TestResolverService_Resolve(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewResolverService(client.Client, NewDisambiguationService(client.Client), 0.9)
	entities := NewEntityService(client.Client)
	ctx := context.Background()

	t.Run("resolves a registered identifier", func(t *testing.T) {
		e, err := entities.Create(ctx, models.CreateEntityRequest{Type: "person", Name: "Registered Person"})
		require.NoError(t, err)
		_, err = client.EntityIdentifier.Create().
			SetID(uuid.New().String()).
			SetEntityID(e.ID).
			SetIdentifierType("phone").
			SetIdentifierValue("+100001").
			Save(ctx)
		require.NoError(t, err)

		res, err := service.Resolve(ctx, "phone", "+100001", "whatever", "")
		require.NoError(t, err)
		assert.Equal(t, ResolutionResolved, res.Status)
		assert.Equal(t, e.ID, res.EntityID)
	})

	t.Run("queues unknown identifier as pending", func(t *testing.T) {
		res, err := service.Resolve(ctx, "telegram_user_id", "900001", "Nobody Known", "msg-1")
		require.NoError(t, err)
		assert.Equal(t, ResolutionPending, res.Status)

		row, err := client.PendingEntityResolution.Query().
			Where(
				pendingentityresolution.IdentifierTypeEQ("telegram_user_id"),
				pendingentityresolution.IdentifierValueEQ("900001"),
			).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, pendingentityresolution.StatusPending, row.Status)
		assert.Equal(t, "Nobody Known", row.DisplayName)
		assert.Equal(t, []string{"msg-1"}, row.SampleMessageIds)
	})

	t.Run("repeat sightings batch onto one row", func(t *testing.T) {
		_, err := service.Resolve(ctx, "telegram_user_id", "900002", "Repeat Visitor", "msg-1")
		require.NoError(t, err)
		_, err = service.Resolve(ctx, "telegram_user_id", "900002", "Repeat Visitor", "msg-2")
		require.NoError(t, err)
		// Same sample twice must not duplicate.
		_, err = service.Resolve(ctx, "telegram_user_id", "900002", "Repeat Visitor", "msg-2")
		require.NoError(t, err)

		rows, err := client.PendingEntityResolution.Query().
			Where(pendingentityresolution.IdentifierValueEQ("900002")).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, []string{"msg-1", "msg-2"}, rows[0].SampleMessageIds)
	})

	t.Run("auto-attaches on a unique exact display name match", func(t *testing.T) {
		e, err := entities.Create(ctx, models.CreateEntityRequest{Type: "person", Name: "Unique Display Name"})
		require.NoError(t, err)

		res, err := service.Resolve(ctx, "telegram_user_id", "900003", "Unique Display Name", "")
		require.NoError(t, err)
		assert.Equal(t, ResolutionResolved, res.Status)
		assert.Equal(t, e.ID, res.EntityID)

		ident, err := client.EntityIdentifier.Query().
			Where(entityidentifier.IdentifierValueEQ("900003")).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, e.ID, ident.EntityID)
	})

	t.Run("ambiguous display name stays pending", func(t *testing.T) {
		_, err := entities.Create(ctx, models.CreateEntityRequest{Type: "person", Name: "Common Name"})
		require.NoError(t, err)
		_, err = entities.Create(ctx, models.CreateEntityRequest{Type: "person", Name: "Common Name"})
		require.NoError(t, err)

		res, err := service.Resolve(ctx, "telegram_user_id", "900004", "Common Name", "")
		require.NoError(t, err)
		assert.Equal(t, ResolutionPending, res.Status)
	})

	t.Run("auto-attach resolves the earlier pending row", func(t *testing.T) {
		// First sighting has no usable display name; second sighting carries
		// one matching a single entity.
		res, err := service.Resolve(ctx, "telegram_user_id", "900005", "", "")
		require.NoError(t, err)
		require.Equal(t, ResolutionPending, res.Status)

		e, err := entities.Create(ctx, models.CreateEntityRequest{Type: "person", Name: "Late Arriving Name"})
		require.NoError(t, err)

		res, err = service.Resolve(ctx, "telegram_user_id", "900005", "Late Arriving Name", "")
		require.NoError(t, err)
		assert.Equal(t, ResolutionResolved, res.Status)

		row, err := client.PendingEntityResolution.Query().
			Where(pendingentityresolution.IdentifierValueEQ("900005")).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, pendingentityresolution.StatusResolved, row.Status)
		assert.Equal(t, pendingentityresolution.ResolutionAuto, row.Resolution)
		require.NotNil(t, row.ResolvedEntityID)
		assert.Equal(t, e.ID, *row.ResolvedEntityID)
	})
}

func TestResolverService_FuzzyAutoAttach(t *testing.T) {
	client := testdb.NewTestClient(t)
	disambig := NewDisambiguationService(client.Client)
	entities := NewEntityService(client.Client)
	ctx := context.Background()

	t.Run("near-identical display name attaches above the confidence bar", func(t *testing.T) {
		service := NewResolverService(client.Client, disambig, 0.9)
		e, err := entities.Create(ctx, models.CreateEntityRequest{Type: "person", Name: "Marianne Vole"})
		require.NoError(t, err)

		// One character off: similarity 12/13, above 0.9.
		res, err := service.Resolve(ctx, "telegram_user_id", "700001", "Marianna Vole", "")
		require.NoError(t, err)
		assert.Equal(t, ResolutionResolved, res.Status)
		assert.Equal(t, e.ID, res.EntityID)
	})

	t.Run("punctuation and case variants attach", func(t *testing.T) {
		service := NewResolverService(client.Client, disambig, 0.9)
		e, err := entities.Create(ctx, models.CreateEntityRequest{Type: "person", Name: "Dana Voss"})
		require.NoError(t, err)

		res, err := service.Resolve(ctx, "telegram_user_id", "700002", "dana voss.", "")
		require.NoError(t, err)
		assert.Equal(t, ResolutionResolved, res.Status)
		assert.Equal(t, e.ID, res.EntityID)
	})

	t.Run("stricter confidence leaves the near match pending", func(t *testing.T) {
		strict := NewResolverService(client.Client, disambig, 0.99)
		_, err := entities.Create(ctx, models.CreateEntityRequest{Type: "person", Name: "Thaddeus Bloom"})
		require.NoError(t, err)

		// Similarity 14/15 clears 0.9 but not 0.99.
		res, err := strict.Resolve(ctx, "telegram_user_id", "700003", "Thaddeus Blooms", "")
		require.NoError(t, err)
		assert.Equal(t, ResolutionPending, res.Status)
	})

	t.Run("distant names never attach", func(t *testing.T) {
		service := NewResolverService(client.Client, disambig, 0.9)
		_, err := entities.Create(ctx, models.CreateEntityRequest{Type: "person", Name: "Orville Quist"})
		require.NoError(t, err)

		res, err := service.Resolve(ctx, "telegram_user_id", "700004", "Orville Quinterro", "")
		require.NoError(t, err)
		assert.Equal(t, ResolutionPending, res.Status)
	})
}

func TestResolverService_PendingSuggestions(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewResolverService(client.Client, NewDisambiguationService(client.Client), 0.9)
	entities := NewEntityService(client.Client)
	ctx := context.Background()

	// Two plausible owners make the first name ambiguous; the row must stay
	// pending and carry both as ranked suggestions.
	a, err := entities.Create(ctx, models.CreateEntityRequest{Type: "person", Name: "Sasha Ivanov"})
	require.NoError(t, err)
	b, err := entities.Create(ctx, models.CreateEntityRequest{Type: "person", Name: "Sasha Petrova"})
	require.NoError(t, err)

	res, err := service.Resolve(ctx, "telegram_user_id", "710001", "Sasha", "msg-1")
	require.NoError(t, err)
	require.Equal(t, ResolutionPending, res.Status)

	row, err := client.PendingEntityResolution.Query().
		Where(pendingentityresolution.IdentifierValueEQ("710001")).
		Only(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, row.Suggestions)

	ids := make([]string, 0, len(row.Suggestions))
	for _, s := range row.Suggestions {
		ids = append(ids, s["entity_id"].(string))
		assert.NotEmpty(t, s["name"])
	}
	assert.Contains(t, ids, a.ID)
	assert.Contains(t, ids, b.ID)

	// Repeat sightings keep the stored suggestions intact.
	_, err = service.Resolve(ctx, "telegram_user_id", "710001", "Sasha", "msg-2")
	require.NoError(t, err)
	again, err := client.PendingEntityResolution.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Len(t, again.Suggestions, len(row.Suggestions))
}

func TestResolverService_OperatorActions(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewResolverService(client.Client, NewDisambiguationService(client.Client), 0.9)
	entities := NewEntityService(client.Client)
	ctx := context.Background()

	queuePending := func(t *testing.T, value string) string {
		t.Helper()
		res, err := service.Resolve(ctx, "telegram_user_id", value, "", "")
		require.NoError(t, err)
		require.Equal(t, ResolutionPending, res.Status)
		row, err := client.PendingEntityResolution.Query().
			Where(pendingentityresolution.IdentifierValueEQ(value)).
			Only(ctx)
		require.NoError(t, err)
		return row.ID
	}

	t.Run("attach links the identifier and resolves the row", func(t *testing.T) {
		id := queuePending(t, "800001")
		e, err := entities.Create(ctx, models.CreateEntityRequest{Type: "person", Name: "Attach Target"})
		require.NoError(t, err)

		row, err := service.Attach(ctx, id, e.ID)
		require.NoError(t, err)
		assert.Equal(t, pendingentityresolution.StatusResolved, row.Status)
		assert.Equal(t, pendingentityresolution.ResolutionManual, row.Resolution)

		res, err := service.Resolve(ctx, "telegram_user_id", "800001", "", "")
		require.NoError(t, err)
		assert.Equal(t, ResolutionResolved, res.Status)
		assert.Equal(t, e.ID, res.EntityID)
	})

	t.Run("attach is idempotent for the same entity", func(t *testing.T) {
		id := queuePending(t, "800002")
		e, err := entities.Create(ctx, models.CreateEntityRequest{Type: "person", Name: "Idempotent Target"})
		require.NoError(t, err)

		_, err = service.Attach(ctx, id, e.ID)
		require.NoError(t, err)
		_, err = service.Attach(ctx, id, e.ID)
		require.NoError(t, err)
	})

	t.Run("attach to a different entity conflicts", func(t *testing.T) {
		id := queuePending(t, "800003")
		e1, err := entities.Create(ctx, models.CreateEntityRequest{Type: "person", Name: "First Owner"})
		require.NoError(t, err)
		e2, err := entities.Create(ctx, models.CreateEntityRequest{Type: "person", Name: "Second Owner"})
		require.NoError(t, err)

		_, err = service.Attach(ctx, id, e1.ID)
		require.NoError(t, err)
		_, err = service.Attach(ctx, id, e2.ID)
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("create-new mints an extracted entity", func(t *testing.T) {
		id := queuePending(t, "800004")

		created, err := service.CreateNew(ctx, id, "Fresh Person", "")
		require.NoError(t, err)
		assert.Equal(t, entity.TypePerson, created.Type)
		assert.Equal(t, entity.CreationSourceExtracted, created.CreationSource)

		res, err := service.Resolve(ctx, "telegram_user_id", "800004", "", "")
		require.NoError(t, err)
		assert.Equal(t, ResolutionResolved, res.Status)
		assert.Equal(t, created.ID, res.EntityID)
	})

	t.Run("reject parks the row without an identifier", func(t *testing.T) {
		id := queuePending(t, "800005")
		require.NoError(t, service.Reject(ctx, id))

		row, err := client.PendingEntityResolution.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, pendingentityresolution.StatusMerged, row.Status)

		// Rejecting again is not found; the row left the pending set.
		assert.ErrorIs(t, service.Reject(ctx, id), ErrNotFound)
	})

	t.Run("list pending excludes decided rows", func(t *testing.T) {
		pendingID := queuePending(t, "800006")
		rejectedID := queuePending(t, "800007")
		require.NoError(t, service.Reject(ctx, rejectedID))

		rows, err := service.ListPending(ctx, 100, 0)
		require.NoError(t, err)

		ids := make([]string, 0, len(rows))
		for _, r := range rows {
			ids = append(ids, r.ID)
		}
		assert.Contains(t, ids, pendingID)
		assert.NotContains(t, ids, rejectedID)
	})
}
