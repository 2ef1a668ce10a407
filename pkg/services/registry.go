package services

import (
	"context"
	"fmt"
	"time"

	"github.com/memograph/memograph/ent"
	"github.com/memograph/memograph/ent/activity"
	"github.com/memograph/memograph/ent/activityclosure"
	"github.com/memograph/memograph/ent/commitment"
	"github.com/memograph/memograph/ent/entityfact"
	"github.com/memograph/memograph/ent/pendingapproval"
	"github.com/memograph/memograph/ent/predicate"
	"github.com/memograph/memograph/pkg/models"
)

// activityclosureTouches matches closure rows referencing the node on
// either side.
func activityclosureTouches(id string) predicate.ActivityClosure {
	return activityclosure.Or(
		activityclosure.AncestorIDEQ(id),
		activityclosure.DescendantIDEQ(id),
	)
}

// itemHandler is the per-item-type behavior behind the approval workflow
// and retention GC: how to activate, delete and edit a draft target row.
type itemHandler struct {
	// activate flips the draft target to its live status.
	activate func(ctx context.Context, tx *ent.Tx, targetID string) error
	// softDelete marks the target deleted; missing targets are not an error.
	softDelete func(ctx context.Context, tx *ent.Tx, targetID string) error
	// hardDelete removes the target row; missing targets are not an error.
	hardDelete func(ctx context.Context, tx *ent.Tx, targetID string) error
	// update edits a draft's editable fields before approval.
	update func(ctx context.Context, tx *ent.Tx, targetID string, req models.UpdateTargetRequest) error
	// staleDraftIDs lists draft targets created before cutoff, for orphan GC.
	staleDraftIDs func(ctx context.Context, tx *ent.Tx, cutoff time.Time, limit int) ([]string, error)
}

// itemRegistry is the single source of truth mapping approval item types to
// their target tables. Both project and task rows live in the activity tree.
var itemRegistry = map[pendingapproval.ItemType]itemHandler{
	pendingapproval.ItemTypeFact:       factHandler,
	pendingapproval.ItemTypeProject:    activityHandler,
	pendingapproval.ItemTypeTask:       activityHandler,
	pendingapproval.ItemTypeCommitment: commitmentHandler,
}

// draftScanTarget pairs a target table with its handler for GC scans.
// Unlike itemRegistry it lists each table once: project and task share the
// activity table, so iterating the registry would scan it twice.
type draftScanTarget struct {
	table   string
	handler itemHandler
}

var draftScanTargets = []draftScanTarget{
	{table: "entity_facts", handler: factHandler},
	{table: "activities", handler: activityHandler},
	{table: "commitments", handler: commitmentHandler},
}

func handlerFor(itemType pendingapproval.ItemType) (itemHandler, error) {
	h, ok := itemRegistry[itemType]
	if !ok {
		return itemHandler{}, fmt.Errorf("%w: unknown item type %q", ErrInvalidInput, itemType)
	}
	return h, nil
}

var factHandler = itemHandler{
	activate: func(ctx context.Context, tx *ent.Tx, targetID string) error {
		_, err := tx.EntityFact.Update().
			Where(entityfact.IDEQ(targetID)).
			SetStatus(entityfact.StatusActive).
			Save(ctx)
		return err
	},
	softDelete: func(ctx context.Context, tx *ent.Tx, targetID string) error {
		_, err := tx.EntityFact.Update().
			Where(entityfact.IDEQ(targetID), entityfact.DeletedAtIsNil()).
			SetDeletedAt(time.Now().UTC()).
			Save(ctx)
		return err
	},
	hardDelete: func(ctx context.Context, tx *ent.Tx, targetID string) error {
		_, err := tx.EntityFact.Delete().
			Where(entityfact.IDEQ(targetID)).
			Exec(ctx)
		return err
	},
	update: func(ctx context.Context, tx *ent.Tx, targetID string, req models.UpdateTargetRequest) error {
		update := tx.EntityFact.Update().
			Where(entityfact.IDEQ(targetID), entityfact.StatusEQ(entityfact.StatusDraft))
		if req.Name != nil {
			update.SetValue(*req.Name)
		}
		n, err := update.Save(ctx)
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrNotFound
		}
		return nil
	},
	staleDraftIDs: func(ctx context.Context, tx *ent.Tx, cutoff time.Time, limit int) ([]string, error) {
		return tx.EntityFact.Query().
			Where(
				entityfact.StatusEQ(entityfact.StatusDraft),
				entityfact.CreatedAtLT(cutoff),
			).
			Limit(limit).
			IDs(ctx)
	},
}

var activityHandler = itemHandler{
	activate: func(ctx context.Context, tx *ent.Tx, targetID string) error {
		_, err := tx.Activity.Update().
			Where(activity.IDEQ(targetID)).
			SetStatus(activity.StatusActive).
			Save(ctx)
		return err
	},
	softDelete: func(ctx context.Context, tx *ent.Tx, targetID string) error {
		_, err := tx.Activity.Update().
			Where(activity.IDEQ(targetID), activity.DeletedAtIsNil()).
			SetDeletedAt(time.Now().UTC()).
			Save(ctx)
		return err
	},
	hardDelete: func(ctx context.Context, tx *ent.Tx, targetID string) error {
		if _, err := tx.ActivityClosure.Delete().
			Where(activityclosureTouches(targetID)).
			Exec(ctx); err != nil {
			return err
		}
		_, err := tx.Activity.Delete().
			Where(activity.IDEQ(targetID)).
			Exec(ctx)
		return err
	},
	update: func(ctx context.Context, tx *ent.Tx, targetID string, req models.UpdateTargetRequest) error {
		if req.ParentID != nil {
			return fmt.Errorf("%w: parent changes route through the activity tree", ErrInvalidInput)
		}
		update := tx.Activity.Update().
			Where(activity.IDEQ(targetID), activity.StatusEQ(activity.StatusDraft))
		if req.Name != nil {
			update.SetName(*req.Name)
		}
		if req.Description != nil {
			update.SetContext(*req.Description)
		}
		if req.Priority != nil {
			update.SetPriority(*req.Priority)
		}
		if req.DueDate != nil {
			if *req.DueDate == "" {
				update.ClearDueAt()
			} else {
				due, err := time.Parse(time.RFC3339, *req.DueDate)
				if err != nil {
					return NewValidationError("due_date", "must be RFC3339")
				}
				update.SetDueAt(due)
			}
		}
		n, err := update.Save(ctx)
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrNotFound
		}
		return nil
	},
	staleDraftIDs: func(ctx context.Context, tx *ent.Tx, cutoff time.Time, limit int) ([]string, error) {
		return tx.Activity.Query().
			Where(
				activity.StatusEQ(activity.StatusDraft),
				activity.CreatedAtLT(cutoff),
			).
			Limit(limit).
			IDs(ctx)
	},
}

var commitmentHandler = itemHandler{
	activate: func(ctx context.Context, tx *ent.Tx, targetID string) error {
		c, err := tx.Commitment.Query().
			Where(commitment.IDEQ(targetID)).
			Only(ctx)
		if err != nil {
			return err
		}
		update := tx.Commitment.UpdateOne(c).
			SetStatus(commitment.StatusPending)
		if next := firstReminder(c.DueDate, c.RecurrenceRule, commitment.StatusPending, time.Now().UTC()); next != nil {
			update.SetNextReminderAt(*next)
		}
		return update.Exec(ctx)
	},
	softDelete: func(ctx context.Context, tx *ent.Tx, targetID string) error {
		_, err := tx.Commitment.Update().
			Where(commitment.IDEQ(targetID), commitment.DeletedAtIsNil()).
			SetDeletedAt(time.Now().UTC()).
			ClearNextReminderAt().
			Save(ctx)
		return err
	},
	hardDelete: func(ctx context.Context, tx *ent.Tx, targetID string) error {
		_, err := tx.Commitment.Delete().
			Where(commitment.IDEQ(targetID)).
			Exec(ctx)
		return err
	},
	update: func(ctx context.Context, tx *ent.Tx, targetID string, req models.UpdateTargetRequest) error {
		update := tx.Commitment.Update().
			Where(commitment.IDEQ(targetID), commitment.StatusEQ(commitment.StatusDraft))
		if req.Name != nil {
			update.SetTitle(*req.Name)
		}
		if req.Description != nil {
			update.SetDescription(*req.Description)
		}
		if req.DueDate != nil {
			if *req.DueDate == "" {
				update.ClearDueDate()
			} else {
				due, err := time.Parse(time.RFC3339, *req.DueDate)
				if err != nil {
					return NewValidationError("due_date", "must be RFC3339")
				}
				update.SetDueDate(due)
			}
		}
		n, err := update.Save(ctx)
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrNotFound
		}
		return nil
	},
	staleDraftIDs: func(ctx context.Context, tx *ent.Tx, cutoff time.Time, limit int) ([]string, error) {
		return tx.Commitment.Query().
			Where(
				commitment.StatusEQ(commitment.StatusDraft),
				commitment.CreatedAtLT(cutoff),
			).
			Limit(limit).
			IDs(ctx)
	},
}
