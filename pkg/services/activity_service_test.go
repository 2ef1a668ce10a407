package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memograph/memograph/ent"
	"github.com/memograph/memograph/ent/activity"
	"github.com/memograph/memograph/ent/activityclosure"
	"github.com/memograph/memograph/ent/embeddingjob"
	"github.com/memograph/memograph/pkg/models"
	testdb "github.com/memograph/memograph/test/database"
)

func createActivity(t *testing.T, service *ActivityService, name, activityType, parentID string) *ent.Activity {
	t.Helper()
	a, err := service.Create(context.Background(), models.CreateActivityRequest{
		Name:         name,
		ActivityType: activityType,
		ParentID:     parentID,
	})
	require.NoError(t, err)
	return a
}

func TestActivityService_CreateHierarchy(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewActivityService(client.Client)
	ctx := context.Background()

	t.Run("root node has depth zero and empty path", func(t *testing.T) {
		root := createActivity(t, service, "Area", "area", "")
		assert.Equal(t, 0, root.Depth)
		assert.Empty(t, root.MaterializedPath)

		// Self closure row only.
		rows, err := client.ActivityClosure.Query().
			Where(activityclosure.DescendantIDEQ(root.ID)).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, root.ID, rows[0].AncestorID)
		assert.Equal(t, 0, rows[0].Depth)
	})

	t.Run("children inherit depth and path", func(t *testing.T) {
		root := createActivity(t, service, "Work", "area", "")
		project := createActivity(t, service, "Website", "project", root.ID)
		task := createActivity(t, service, "Design Logo", "task", project.ID)

		assert.Equal(t, 1, project.Depth)
		assert.Equal(t, "/"+root.ID, project.MaterializedPath)
		assert.Equal(t, 2, task.Depth)
		assert.Equal(t, "/"+root.ID+"/"+project.ID, task.MaterializedPath)

		// Task has closure rows to itself, its parent and the root.
		count, err := client.ActivityClosure.Query().
			Where(activityclosure.DescendantIDEQ(task.ID)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})

	t.Run("creation enqueues an embedding job", func(t *testing.T) {
		a := createActivity(t, service, "Embeddable Project", "project", "")
		exists, err := client.EmbeddingJob.Query().
			Where(
				embeddingjob.TargetKindEQ(embeddingjob.TargetKindActivity),
				embeddingjob.TargetIDEQ(a.ID),
			).
			Exist(ctx)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("missing parent is not found", func(t *testing.T) {
		_, err := service.Create(ctx, models.CreateActivityRequest{
			Name:         "Orphan",
			ActivityType: "task",
			ParentID:     uuid.New().String(),
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("validates name and type", func(t *testing.T) {
		var validErr *ValidationError
		_, err := service.Create(ctx, models.CreateActivityRequest{ActivityType: "task"})
		require.ErrorAs(t, err, &validErr)
		_, err = service.Create(ctx, models.CreateActivityRequest{Name: "No Type"})
		require.ErrorAs(t, err, &validErr)
	})
}

func TestActivityService_SubtreeAndAncestors(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewActivityService(client.Client)
	ctx := context.Background()

	root := createActivity(t, service, "Root Area", "area", "")
	project := createActivity(t, service, "Main Project", "project", root.ID)
	taskA := createActivity(t, service, "Alpha Task", "task", project.ID)
	taskB := createActivity(t, service, "Beta Task", "task", project.ID)
	_ = createActivity(t, service, "Unrelated", "project", "")

	t.Run("subtree returns depth-ordered descendants", func(t *testing.T) {
		nodes, err := service.Subtree(ctx, root.ID)
		require.NoError(t, err)
		require.Len(t, nodes, 4)
		assert.Equal(t, root.ID, nodes[0].ID)
		assert.Equal(t, project.ID, nodes[1].ID)
		assert.Equal(t, taskA.ID, nodes[2].ID)
		assert.Equal(t, taskB.ID, nodes[3].ID)
	})

	t.Run("unknown root is not found", func(t *testing.T) {
		_, err := service.Subtree(ctx, uuid.New().String())
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("ancestors walk root first", func(t *testing.T) {
		chain, err := service.Ancestors(ctx, taskA.ID)
		require.NoError(t, err)
		require.Len(t, chain, 2)
		assert.Equal(t, root.ID, chain[0].ID)
		assert.Equal(t, project.ID, chain[1].ID)

		chain, err = service.Ancestors(ctx, root.ID)
		require.NoError(t, err)
		assert.Empty(t, chain)
	})
}

func TestActivityService_Reparent(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewActivityService(client.Client)
	ctx := context.Background()

	t.Run("moves the whole subtree", func(t *testing.T) {
		oldArea := createActivity(t, service, "Old Area", "area", "")
		newArea := createActivity(t, service, "New Area", "area", "")
		project := createActivity(t, service, "Movable Project", "project", oldArea.ID)
		task := createActivity(t, service, "Carried Task", "task", project.ID)

		moved, err := service.Reparent(ctx, project.ID, newArea.ID)
		require.NoError(t, err)
		require.NotNil(t, moved.ParentID)
		assert.Equal(t, newArea.ID, *moved.ParentID)
		assert.Equal(t, 1, moved.Depth)
		assert.Equal(t, "/"+newArea.ID, moved.MaterializedPath)

		carried, err := service.Get(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, carried.Depth)
		assert.Equal(t, "/"+newArea.ID+"/"+project.ID, carried.MaterializedPath)

		// Closure now reaches the task from the new area, not the old one.
		viaNew, err := client.ActivityClosure.Query().
			Where(
				activityclosure.AncestorIDEQ(newArea.ID),
				activityclosure.DescendantIDEQ(task.ID),
			).
			Exist(ctx)
		require.NoError(t, err)
		assert.True(t, viaNew)

		viaOld, err := client.ActivityClosure.Query().
			Where(
				activityclosure.AncestorIDEQ(oldArea.ID),
				activityclosure.DescendantIDEQ(task.ID),
			).
			Exist(ctx)
		require.NoError(t, err)
		assert.False(t, viaOld)
	})

	t.Run("moves to root when parent is empty", func(t *testing.T) {
		area := createActivity(t, service, "Temporary Area", "area", "")
		project := createActivity(t, service, "Promoted Project", "project", area.ID)

		moved, err := service.Reparent(ctx, project.ID, "")
		require.NoError(t, err)
		assert.Nil(t, moved.ParentID)
		assert.Equal(t, 0, moved.Depth)
		assert.Empty(t, moved.MaterializedPath)
	})

	t.Run("rejects cycles", func(t *testing.T) {
		parent := createActivity(t, service, "Cycle Parent", "project", "")
		child := createActivity(t, service, "Cycle Child", "task", parent.ID)

		_, err := service.Reparent(ctx, parent.ID, child.ID)
		assert.ErrorIs(t, err, ErrConflict)
		_, err = service.Reparent(ctx, parent.ID, parent.ID)
		assert.ErrorIs(t, err, ErrConflict)
	})
}

func TestActivityService_EnsureUnsortedTasks(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewActivityService(client.Client)
	ctx := context.Background()

	first, err := service.EnsureUnsortedTasks(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, UnsortedTasksName, first.Name)
	assert.Equal(t, activity.ActivityTypeProject, first.ActivityType)

	second, err := service.EnsureUnsortedTasks(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	count, err := client.Activity.Query().
		Where(activity.NameEQ(UnsortedTasksName)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
