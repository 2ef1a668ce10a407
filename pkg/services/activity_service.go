package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/memograph/memograph/ent"
	"github.com/memograph/memograph/ent/activity"
	"github.com/memograph/memograph/ent/activityclosure"
	"github.com/memograph/memograph/ent/embeddingjob"
	"github.com/memograph/memograph/pkg/models"
	"github.com/memograph/memograph/pkg/queue"
)

// UnsortedTasksName is the fallback project the auditor parks orphaned
// tasks under.
const UnsortedTasksName = "Unsorted Tasks"

// ActivityService manages the activity tree. Every node carries depth and a
// materialized ancestor path, and a closure table mirrors ancestor pairs;
// all three are maintained inside the transaction that changes parent_id.
type ActivityService struct {
	client *ent.Client
}

// NewActivityService creates a new ActivityService.
func NewActivityService(client *ent.Client) *ActivityService {
	return &ActivityService{client: client}
}

// Create inserts a node under the given parent (or at the root) and records
// its closure rows.
func (s *ActivityService) Create(ctx context.Context, req models.CreateActivityRequest) (*ent.Activity, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if req.ActivityType == "" {
		return nil, NewValidationError("activity_type", "required")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	created, err := s.CreateTx(ctx, tx, req)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit activity: %w", err)
	}
	return created, nil
}

// CreateTx is the transactional body of Create, shared with callers that
// batch several inserts into one transaction.
func (s *ActivityService) CreateTx(ctx context.Context, tx *ent.Tx, req models.CreateActivityRequest) (*ent.Activity, error) {
	depth := 0
	path := ""
	if req.ParentID != "" {
		parent, err := tx.Activity.Query().
			Where(activity.IDEQ(req.ParentID), activity.DeletedAtIsNil()).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, fmt.Errorf("%w: parent activity %s", ErrNotFound, req.ParentID)
			}
			return nil, fmt.Errorf("failed to load parent: %w", err)
		}
		depth = parent.Depth + 1
		path = parent.MaterializedPath + "/" + parent.ID
	}

	status := activity.StatusActive
	if req.Status != "" {
		status = activity.Status(req.Status)
	}

	builder := tx.Activity.Create().
		SetID(uuid.New().String()).
		SetName(req.Name).
		SetActivityType(activity.ActivityType(req.ActivityType)).
		SetStatus(status).
		SetPriority(req.Priority).
		SetDepth(depth).
		SetMaterializedPath(path)
	if req.ParentID != "" {
		builder.SetParentID(req.ParentID)
	}
	if req.Context != "" {
		builder.SetContext(req.Context)
	}
	if req.OwnerEntityID != "" {
		builder.SetOwnerEntityID(req.OwnerEntityID)
	}
	if req.ClientEntityID != "" {
		builder.SetClientEntityID(req.ClientEntityID)
	}
	if req.StartsAt != nil {
		builder.SetStartsAt(*req.StartsAt)
	}
	if req.DueAt != nil {
		builder.SetDueAt(*req.DueAt)
	}
	if len(req.Tags) > 0 {
		builder.SetTags(req.Tags)
	}
	if req.Metadata != nil {
		builder.SetMetadata(req.Metadata)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}

	if err := s.insertClosure(ctx, tx, created.ID, req.ParentID, 0); err != nil {
		return nil, err
	}

	if err := queue.Enqueue(ctx, tx.EmbeddingJob, embeddingjob.TargetKindActivity, created.ID); err != nil {
		return nil, fmt.Errorf("failed to enqueue activity embedding: %w", err)
	}
	return created, nil
}

// insertClosure records the self pair plus one pair per ancestor of the
// parent, shifted by relativeDepth for subtree re-inserts.
func (s *ActivityService) insertClosure(ctx context.Context, tx *ent.Tx, nodeID, parentID string, relativeDepth int) error {
	builders := []*ent.ActivityClosureCreate{
		tx.ActivityClosure.Create().
			SetID(uuid.New().String()).
			SetAncestorID(nodeID).
			SetDescendantID(nodeID).
			SetDepth(0),
	}
	if parentID != "" {
		ancestors, err := tx.ActivityClosure.Query().
			Where(activityclosure.DescendantIDEQ(parentID)).
			All(ctx)
		if err != nil {
			return fmt.Errorf("failed to load parent closure: %w", err)
		}
		for _, a := range ancestors {
			builders = append(builders, tx.ActivityClosure.Create().
				SetID(uuid.New().String()).
				SetAncestorID(a.AncestorID).
				SetDescendantID(nodeID).
				SetDepth(a.Depth+1+relativeDepth))
		}
	}
	if err := tx.ActivityClosure.CreateBulk(builders...).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert closure rows: %w", err)
	}
	return nil
}

// Get returns an activity.
func (s *ActivityService) Get(ctx context.Context, id string) (*ent.Activity, error) {
	a, err := s.client.Activity.Query().
		Where(activity.IDEQ(id), activity.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get activity: %w", err)
	}
	return a, nil
}

// List lists activities with filters, newest first.
func (s *ActivityService) List(ctx context.Context, filters models.ActivityFilters) ([]*ent.Activity, error) {
	query := s.client.Activity.Query()
	if filters.ActivityType != "" {
		query = query.Where(activity.ActivityTypeEQ(activity.ActivityType(filters.ActivityType)))
	}
	if filters.Status != "" {
		query = query.Where(activity.StatusEQ(activity.Status(filters.Status)))
	}
	if filters.ParentID != "" {
		query = query.Where(activity.ParentIDEQ(filters.ParentID))
	}
	if filters.OwnerEntityID != "" {
		query = query.Where(activity.OwnerEntityIDEQ(filters.OwnerEntityID))
	}
	if filters.ClientEntityID != "" {
		query = query.Where(activity.ClientEntityIDEQ(filters.ClientEntityID))
	}
	if filters.Search != "" {
		query = query.Where(activity.NameContainsFold(filters.Search))
	}
	if !filters.IncludeDeleted {
		query = query.Where(activity.DeletedAtIsNil())
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 50
	}
	activities, err := query.
		Order(ent.Desc(activity.FieldUpdatedAt)).
		Limit(limit).
		Offset(filters.Offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	return activities, nil
}

// Subtree returns a node and all its descendants via the closure table,
// ordered by depth then name.
func (s *ActivityService) Subtree(ctx context.Context, id string) ([]*ent.Activity, error) {
	ids, err := s.descendantIDs(ctx, s.client.ActivityClosure.Query(), id)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, ErrNotFound
	}
	nodes, err := s.client.Activity.Query().
		Where(activity.IDIn(ids...), activity.DeletedAtIsNil()).
		Order(ent.Asc(activity.FieldDepth), ent.Asc(activity.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load subtree: %w", err)
	}
	return nodes, nil
}

// Ancestors returns a node's ancestor chain, root first, parsed from the
// materialized path without touching the closure table.
func (s *ActivityService) Ancestors(ctx context.Context, id string) ([]*ent.Activity, error) {
	node, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if node.MaterializedPath == "" {
		return nil, nil
	}

	ancestorIDs := strings.Split(strings.TrimPrefix(node.MaterializedPath, "/"), "/")
	nodes, err := s.client.Activity.Query().
		Where(activity.IDIn(ancestorIDs...)).
		Order(ent.Asc(activity.FieldDepth)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ancestors: %w", err)
	}
	return nodes, nil
}

func (s *ActivityService) descendantIDs(ctx context.Context, query *ent.ActivityClosureQuery, rootID string) ([]string, error) {
	rows, err := query.
		Where(activityclosure.AncestorIDEQ(rootID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query closure: %w", err)
	}
	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.DescendantID)
	}
	return ids, nil
}

// Update edits a node's fields. Parent changes go through Reparent.
func (s *ActivityService) Update(ctx context.Context, id string, req models.UpdateActivityRequest) (*ent.Activity, error) {
	node, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	update := s.client.Activity.UpdateOne(node)
	renamed := false
	if req.Name != nil {
		if *req.Name == "" {
			return nil, NewValidationError("name", "cannot be empty")
		}
		update.SetName(*req.Name)
		renamed = true
	}
	if req.Status != nil {
		st := activity.Status(*req.Status)
		update.SetStatus(st)
		if st == activity.StatusCompleted {
			update.SetCompletedAt(time.Now().UTC())
		}
	}
	if req.Priority != nil {
		update.SetPriority(*req.Priority)
	}
	if req.Context != nil {
		update.SetContext(*req.Context)
	}
	if req.ClientEntityID != nil {
		if *req.ClientEntityID == "" {
			update.ClearClientEntityID()
		} else {
			update.SetClientEntityID(*req.ClientEntityID)
		}
	}
	if req.StartsAt != nil {
		update.SetStartsAt(*req.StartsAt)
	}
	if req.DueAt != nil {
		update.SetDueAt(*req.DueAt)
	}
	if req.Tags != nil {
		update.SetTags(req.Tags)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update activity: %w", err)
	}
	if renamed {
		if err := queue.Enqueue(ctx, s.client.EmbeddingJob, embeddingjob.TargetKindActivity, updated.ID); err != nil {
			return nil, fmt.Errorf("failed to enqueue activity embedding: %w", err)
		}
	}
	return updated, nil
}

// Reparent moves a node (and its whole subtree) under a new parent, or to
// the root when newParentID is empty. Depth, materialized path and closure
// rows are rewritten in one transaction.
func (s *ActivityService) Reparent(ctx context.Context, id, newParentID string) (*ent.Activity, error) {
	if id == newParentID {
		return nil, fmt.Errorf("%w: activity cannot be its own parent", ErrConflict)
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	node, err := tx.Activity.Query().
		Where(activity.IDEQ(id), activity.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load activity: %w", err)
	}

	newDepth := 0
	newPath := ""
	if newParentID != "" {
		parent, err := tx.Activity.Query().
			Where(activity.IDEQ(newParentID), activity.DeletedAtIsNil()).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, fmt.Errorf("%w: parent activity %s", ErrNotFound, newParentID)
			}
			return nil, fmt.Errorf("failed to load new parent: %w", err)
		}

		inSubtree, err := tx.ActivityClosure.Query().
			Where(
				activityclosure.AncestorIDEQ(id),
				activityclosure.DescendantIDEQ(newParentID),
			).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to check for cycle: %w", err)
		}
		if inSubtree {
			return nil, fmt.Errorf("%w: cannot move an activity under its own descendant", ErrConflict)
		}

		newDepth = parent.Depth + 1
		newPath = parent.MaterializedPath + "/" + parent.ID
	}

	subtree, err := tx.ActivityClosure.Query().
		Where(activityclosure.AncestorIDEQ(id)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load subtree closure: %w", err)
	}
	subtreeIDs := make([]string, 0, len(subtree))
	relativeDepth := make(map[string]int, len(subtree))
	for _, r := range subtree {
		subtreeIDs = append(subtreeIDs, r.DescendantID)
		relativeDepth[r.DescendantID] = r.Depth
	}

	// Drop links from outside ancestors into the subtree; links inside the
	// subtree are unchanged by the move.
	if _, err := tx.ActivityClosure.Delete().
		Where(
			activityclosure.DescendantIDIn(subtreeIDs...),
			activityclosure.AncestorIDNotIn(subtreeIDs...),
		).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to prune closure rows: %w", err)
	}

	if newParentID != "" {
		newAncestors, err := tx.ActivityClosure.Query().
			Where(activityclosure.DescendantIDEQ(newParentID)).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load new-parent closure: %w", err)
		}
		builders := make([]*ent.ActivityClosureCreate, 0, len(newAncestors)*len(subtreeIDs))
		for _, a := range newAncestors {
			for _, d := range subtreeIDs {
				builders = append(builders, tx.ActivityClosure.Create().
					SetID(uuid.New().String()).
					SetAncestorID(a.AncestorID).
					SetDescendantID(d).
					SetDepth(a.Depth+1+relativeDepth[d]))
			}
		}
		if len(builders) > 0 {
			if err := tx.ActivityClosure.CreateBulk(builders...).Exec(ctx); err != nil {
				return nil, fmt.Errorf("failed to insert closure rows: %w", err)
			}
		}
	}

	oldPath := node.MaterializedPath
	depthDelta := newDepth - node.Depth

	nodes, err := tx.Activity.Query().
		Where(activity.IDIn(subtreeIDs...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load subtree nodes: %w", err)
	}
	for _, n := range nodes {
		update := tx.Activity.UpdateOne(n).
			SetDepth(n.Depth + depthDelta).
			SetMaterializedPath(newPath + strings.TrimPrefix(n.MaterializedPath, oldPath))
		if n.ID == id {
			if newParentID == "" {
				update.ClearParentID()
			} else {
				update.SetParentID(newParentID)
			}
		}
		if err := update.Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to rewrite subtree node %s: %w", n.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit reparent: %w", err)
	}

	slog.Info("Activity reparented",
		"activity_id", id,
		"new_parent_id", newParentID,
		"subtree_size", len(subtreeIDs))
	return s.Get(ctx, id)
}

// SoftDelete marks a node deleted. Children keep their parent link; the
// data-quality auditor surfaces any that end up orphaned.
func (s *ActivityService) SoftDelete(ctx context.Context, id string) error {
	n, err := s.client.Activity.Update().
		Where(activity.IDEQ(id), activity.DeletedAtIsNil()).
		SetDeletedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to soft delete activity: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// EnsureUnsortedTasks returns the fallback parking project for orphaned
// tasks, creating it on first use.
func (s *ActivityService) EnsureUnsortedTasks(ctx context.Context, ownerEntityID string) (*ent.Activity, error) {
	existing, err := s.client.Activity.Query().
		Where(
			activity.NameEQ(UnsortedTasksName),
			activity.ActivityTypeEQ(activity.ActivityTypeProject),
			activity.DeletedAtIsNil(),
		).
		First(ctx)
	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query fallback project: %w", err)
	}

	return s.Create(ctx, models.CreateActivityRequest{
		Name:          UnsortedTasksName,
		ActivityType:  activity.ActivityTypeProject.String(),
		Status:        activity.StatusActive.String(),
		OwnerEntityID: ownerEntityID,
		Context:       "Automatically created parking project for tasks without a parent.",
	})
}
