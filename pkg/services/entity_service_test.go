package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memograph/memograph/ent/entity"
	"github.com/memograph/memograph/ent/entityfact"
	"github.com/memograph/memograph/ent/entityidentifier"
	"github.com/memograph/memograph/pkg/models"
	testdb "github.com/memograph/memograph/test/database"
)

func TestEntityService_CRUD(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewEntityService(client.Client)
	ctx := context.Background()

	t.Run("creates a person", func(t *testing.T) {
		e, err := service.Create(ctx, models.CreateEntityRequest{Type: "person", Name: "Alice Example"})
		require.NoError(t, err)
		assert.Equal(t, entity.TypePerson, e.Type)
		assert.Equal(t, "Alice Example", e.Name)
		assert.Equal(t, entity.CreationSourceManual, e.CreationSource)
	})

	t.Run("rejects missing name and bad type", func(t *testing.T) {
		var validErr *ValidationError

		_, err := service.Create(ctx, models.CreateEntityRequest{Type: "person"})
		require.ErrorAs(t, err, &validErr)

		_, err = service.Create(ctx, models.CreateEntityRequest{Type: "robot", Name: "X"})
		require.ErrorAs(t, err, &validErr)
	})

	t.Run("links a person to an organization", func(t *testing.T) {
		org, err := service.Create(ctx, models.CreateEntityRequest{Type: "organization", Name: "Acme Corp"})
		require.NoError(t, err)

		e, err := service.Create(ctx, models.CreateEntityRequest{
			Type:           "person",
			Name:           "Acme Employee",
			OrganizationID: org.ID,
		})
		require.NoError(t, err)
		require.NotNil(t, e.OrganizationID)
		assert.Equal(t, org.ID, *e.OrganizationID)

		// A person cannot serve as an organization.
		_, err = service.Create(ctx, models.CreateEntityRequest{
			Type:           "person",
			Name:           "Misfiled",
			OrganizationID: e.ID,
		})
		var validErr *ValidationError
		require.ErrorAs(t, err, &validErr)
	})

	t.Run("enforces a single owner", func(t *testing.T) {
		_, err := service.Create(ctx, models.CreateEntityRequest{Type: "person", Name: "Me", IsOwner: true})
		require.NoError(t, err)

		_, err = service.Create(ctx, models.CreateEntityRequest{Type: "person", Name: "Also Me", IsOwner: true})
		assert.ErrorIs(t, err, ErrConflict)

		owner, err := service.Owner(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Me", owner.Name)
	})

	t.Run("soft delete hides from default reads", func(t *testing.T) {
		e, err := service.Create(ctx, models.CreateEntityRequest{Type: "person", Name: "Ephemeral"})
		require.NoError(t, err)
		require.NoError(t, service.SoftDelete(ctx, e.ID))

		_, err = service.Get(ctx, e.ID, false)
		assert.ErrorIs(t, err, ErrNotFound)

		got, err := service.Get(ctx, e.ID, true)
		require.NoError(t, err)
		assert.NotNil(t, got.DeletedAt)

		// Deleting again is not found.
		assert.ErrorIs(t, service.SoftDelete(ctx, e.ID), ErrNotFound)
	})

	t.Run("update edits mutable fields", func(t *testing.T) {
		e, err := service.Create(ctx, models.CreateEntityRequest{Type: "person", Name: "Old Name"})
		require.NoError(t, err)

		name := "New Name"
		notes := "met at the conference"
		updated, err := service.Update(ctx, e.ID, models.UpdateEntityRequest{Name: &name, Notes: &notes})
		require.NoError(t, err)
		assert.Equal(t, "New Name", updated.Name)
		assert.Equal(t, "met at the conference", updated.Notes)

		empty := ""
		_, err = service.Update(ctx, e.ID, models.UpdateEntityRequest{Name: &empty})
		var validErr *ValidationError
		require.ErrorAs(t, err, &validErr)
	})

	t.Run("list filters by type and search", func(t *testing.T) {
		_, err := service.Create(ctx, models.CreateEntityRequest{Type: "organization", Name: "Searchable Widgets Ltd"})
		require.NoError(t, err)

		res, err := service.List(ctx, models.EntityFilters{Type: "organization", Search: "searchable widgets"})
		require.NoError(t, err)
		require.Len(t, res.Entities, 1)
		assert.Equal(t, "Searchable Widgets Ltd", res.Entities[0].Name)
		assert.Equal(t, 1, res.TotalCount)
	})
}

func TestEntityService_Merge(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewEntityService(client.Client)
	facts := NewFactService(client.Client)
	ctx := context.Background()

	addIdentifier := func(t *testing.T, entityID, identType, value string) {
		t.Helper()
		_, err := client.EntityIdentifier.Create().
			SetID(uuid.New().String()).
			SetEntityID(entityID).
			SetIdentifierType(identType).
			SetIdentifierValue(value).
			Save(ctx)
		require.NoError(t, err)
	}

	t.Run("moves identifiers and facts, soft-deletes the source", func(t *testing.T) {
		source, err := service.Create(ctx, models.CreateEntityRequest{Type: "person", Name: "Bob Duplicate"})
		require.NoError(t, err)
		target, err := service.Create(ctx, models.CreateEntityRequest{Type: "person", Name: "Bob Canonical"})
		require.NoError(t, err)

		addIdentifier(t, source.ID, "telegram_user_id", "101")
		addIdentifier(t, source.ID, "phone", "+200")
		addIdentifier(t, target.ID, "phone", "+200") // collision, source copy is dropped

		_, err = facts.Create(ctx, source.ID, models.CreateFactRequest{FactType: "birthday", Value: "march 3"})
		require.NoError(t, err)

		result, err := service.Merge(ctx, source.ID, target.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, result.IdentifiersMoved)
		assert.Equal(t, 1, result.FactsMoved)
		assert.True(t, result.SourceDeleted)

		idents, err := client.EntityIdentifier.Query().
			Where(entityidentifier.EntityIDEQ(target.ID)).
			All(ctx)
		require.NoError(t, err)
		assert.Len(t, idents, 2)

		_, err = service.Get(ctx, source.ID, false)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("collapses conflicting facts on the target", func(t *testing.T) {
		source, err := service.Create(ctx, models.CreateEntityRequest{Type: "person", Name: "Carol Dup"})
		require.NoError(t, err)
		target, err := service.Create(ctx, models.CreateEntityRequest{Type: "person", Name: "Carol"})
		require.NoError(t, err)

		low, err := facts.Create(ctx, source.ID, models.CreateFactRequest{FactType: "employer", Value: "Old Job", Confidence: 0.5})
		require.NoError(t, err)
		high, err := facts.Create(ctx, target.ID, models.CreateFactRequest{FactType: "employer", Value: "New Job", Confidence: 0.9})
		require.NoError(t, err)

		_, err = service.Merge(ctx, source.ID, target.ID)
		require.NoError(t, err)

		canonical, err := facts.Canonical(ctx, target.ID, "employer")
		require.NoError(t, err)
		assert.Equal(t, high.ID, canonical.ID)

		loser, err := client.EntityFact.Get(ctx, low.ID)
		require.NoError(t, err)
		assert.Equal(t, entityfact.RankDeprecated, loser.Rank)
		require.NotNil(t, loser.SupersededBy)
		assert.Equal(t, high.ID, *loser.SupersededBy)
	})

	t.Run("rejects self-merge and missing entities", func(t *testing.T) {
		e, err := service.Create(ctx, models.CreateEntityRequest{Type: "person", Name: "Solo"})
		require.NoError(t, err)

		_, err = service.Merge(ctx, e.ID, e.ID)
		var validErr *ValidationError
		require.ErrorAs(t, err, &validErr)

		_, err = service.Merge(ctx, e.ID, uuid.New().String())
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
