package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memograph/memograph/ent/activity"
	"github.com/memograph/memograph/ent/interaction"
	"github.com/memograph/memograph/pkg/models"
	testdb "github.com/memograph/memograph/test/database"
)

func TestDataQualityService_RunAudit(t *testing.T) {
	client := testdb.NewTestClient(t)
	entities := NewEntityService(client.Client)
	activities := NewActivityService(client.Client)
	service := NewDataQualityService(client.Client, entities, activities)
	ctx := context.Background()

	// Two people collapsing to the same normalized name, one clean one.
	a, err := entities.Create(ctx, models.CreateEntityRequest{Type: "person", Name: "Dana Voss"})
	require.NoError(t, err)
	b, err := entities.Create(ctx, models.CreateEntityRequest{Type: "person", Name: "dana voss."})
	require.NoError(t, err)
	_, err = entities.Create(ctx, models.CreateEntityRequest{Type: "person", Name: "Someone Else"})
	require.NoError(t, err)

	// A parentless non-draft task and a clientless project.
	orphan, err := activities.Create(ctx, models.CreateActivityRequest{Name: "Loose Task", ActivityType: "task"})
	require.NoError(t, err)
	clientless, err := activities.Create(ctx, models.CreateActivityRequest{Name: "Floating Project", ActivityType: "project"})
	require.NoError(t, err)

	report, err := service.RunAudit(ctx, "manual")
	require.NoError(t, err)
	assert.NotEmpty(t, report.ID)

	require.Len(t, report.DuplicateGroups, 1)
	assert.Equal(t, "dana voss", report.DuplicateGroups[0].NormalizedName)
	assert.ElementsMatch(t, []string{a.ID, b.ID}, report.DuplicateGroups[0].EntityIDs)

	assert.Contains(t, report.OrphanedTasks, orphan.ID)
	assert.Contains(t, report.MissingClients, clientless.ID)
	assert.Contains(t, report.FillRates, "entities.notes")

	reports, err := service.ListReports(ctx, 10)
	require.NoError(t, err)
	require.NotEmpty(t, reports)
	assert.Equal(t, report.ID, reports[0].ID)
}

func TestDataQualityService_AutoFix(t *testing.T) {
	client := testdb.NewTestClient(t)
	entities := NewEntityService(client.Client)
	activities := NewActivityService(client.Client)
	service := NewDataQualityService(client.Client, entities, activities)
	ctx := context.Background()

	t.Run("merges duplicates into the richer entity", func(t *testing.T) {
		keeper, err := entities.Create(ctx, models.CreateEntityRequest{Type: "person", Name: "Miro Klein"})
		require.NoError(t, err)
		dup, err := entities.Create(ctx, models.CreateEntityRequest{Type: "person", Name: "miro klein"})
		require.NoError(t, err)

		// The keeper has an identifier, the duplicate has none.
		_, err = client.EntityIdentifier.Create().
			SetID(uuid.New().String()).
			SetEntityID(keeper.ID).
			SetIdentifierType("telegram_user_id").
			SetIdentifierValue("314159").
			Save(ctx)
		require.NoError(t, err)

		report, err := service.AutoFix(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, report.Resolutions)

		_, err = entities.Get(ctx, dup.ID, false)
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = entities.Get(ctx, keeper.ID, false)
		require.NoError(t, err)
	})

	t.Run("re-homes an orphaned task by name containment", func(t *testing.T) {
		project, err := activities.Create(ctx, models.CreateActivityRequest{Name: "Garden Redesign", ActivityType: "project"})
		require.NoError(t, err)
		orphan, err := activities.Create(ctx, models.CreateActivityRequest{Name: "Garden Redesign sketches", ActivityType: "task"})
		require.NoError(t, err)

		_, err = service.AutoFix(ctx)
		require.NoError(t, err)

		fixed, err := activities.Get(ctx, orphan.ID)
		require.NoError(t, err)
		require.NotNil(t, fixed.ParentID)
		assert.Equal(t, project.ID, *fixed.ParentID)
	})

	t.Run("parks unmatched orphans under the fallback project", func(t *testing.T) {
		orphan, err := activities.Create(ctx, models.CreateActivityRequest{Name: "Xq Completely Unrelated", ActivityType: "task"})
		require.NoError(t, err)

		_, err = service.AutoFix(ctx)
		require.NoError(t, err)

		fixed, err := activities.Get(ctx, orphan.ID)
		require.NoError(t, err)
		require.NotNil(t, fixed.ParentID)

		parent, err := activities.Get(ctx, *fixed.ParentID)
		require.NoError(t, err)
		assert.Equal(t, UnsortedTasksName, parent.Name)
	})
}

func TestDataQualityService_TargetedRemediations(t *testing.T) {
	client := testdb.NewTestClient(t)
	entities := NewEntityService(client.Client)
	activities := NewActivityService(client.Client)
	service := NewDataQualityService(client.Client, entities, activities)
	ctx := context.Background()

	t.Run("auto-merge leaves orphans for the other operations", func(t *testing.T) {
		_, err := entities.Create(ctx, models.CreateEntityRequest{Type: "person", Name: "Petra Lindt"})
		require.NoError(t, err)
		dup, err := entities.Create(ctx, models.CreateEntityRequest{Type: "person", Name: "petra lindt."})
		require.NoError(t, err)
		orphan, err := activities.Create(ctx, models.CreateActivityRequest{Name: "Standalone Chore", ActivityType: "task"})
		require.NoError(t, err)

		report, err := service.AutoMergeDuplicates(ctx)
		require.NoError(t, err)
		assert.NotEmpty(t, report.ID)
		require.Len(t, report.DuplicateGroups, 1)
		require.NotEmpty(t, report.Resolutions)
		assert.Equal(t, "auto_merge", report.Resolutions[0]["action"])

		_, err = entities.Get(ctx, dup.ID, false)
		assert.ErrorIs(t, err, ErrNotFound)

		// The orphaned task is out of scope for this operation.
		untouched, err := activities.Get(ctx, orphan.ID)
		require.NoError(t, err)
		assert.Nil(t, untouched.ParentID)
	})

	t.Run("auto-assign re-homes the orphan", func(t *testing.T) {
		project, err := activities.Create(ctx, models.CreateActivityRequest{Name: "Standalone Chore Tracker", ActivityType: "project"})
		require.NoError(t, err)

		report, err := service.AutoAssignOrphans(ctx)
		require.NoError(t, err)
		assert.Empty(t, report.DuplicateGroups)
		require.NotEmpty(t, report.OrphanedTasks)

		rows, err := client.Activity.Query().
			Where(activity.NameEQ("Standalone Chore")).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		require.NotNil(t, rows[0].ParentID)
		assert.Equal(t, project.ID, *rows[0].ParentID)
	})

	t.Run("auto-resolve fills the client from the source roster", func(t *testing.T) {
		org, err := entities.Create(ctx, models.CreateEntityRequest{Type: "organization", Name: "Brightside Legal"})
		require.NoError(t, err)
		person, err := entities.Create(ctx, models.CreateEntityRequest{Type: "person", Name: "Counsel Contact"})
		require.NoError(t, err)
		require.NoError(t, client.Entity.UpdateOneID(person.ID).SetOrganizationID(org.ID).Exec(ctx))

		inter, err := client.Interaction.Create().
			SetID(uuid.New().String()).
			SetType(interaction.TypeTelegramSession).
			SetSource("telegram").
			SetChatID("chat-legal").
			SetStatus(interaction.StatusCompleted).
			SetStartedAt(time.Now().UTC().Add(-time.Hour)).
			SetLastMessageAt(time.Now().UTC()).
			Save(ctx)
		require.NoError(t, err)
		_, err = client.InteractionParticipant.Create().
			SetID(uuid.New().String()).
			SetInteractionID(inter.ID).
			SetEntityID(person.ID).
			SetIdentifierType("telegram_user_id").
			SetIdentifierValue("555001").
			Save(ctx)
		require.NoError(t, err)

		project, err := activities.Create(ctx, models.CreateActivityRequest{Name: "Contract Review", ActivityType: "project"})
		require.NoError(t, err)
		require.NoError(t, client.Activity.UpdateOneID(project.ID).SetSourceInteractionID(inter.ID).Exec(ctx))

		report, err := service.AutoResolveClients(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, report.MissingClients)

		fixed, err := activities.Get(ctx, project.ID)
		require.NoError(t, err)
		require.NotNil(t, fixed.ClientEntityID)
		assert.Equal(t, org.ID, *fixed.ClientEntityID)
	})
}
