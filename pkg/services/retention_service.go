package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/memograph/memograph/ent"
	"github.com/memograph/memograph/ent/pendingapproval"
)

// RetentionService garbage-collects rejected drafts and approval rows past
// the retention window, plus draft targets that lost their approval row.
// It walks the same item-type registry the approval workflow uses.
type RetentionService struct {
	client        *ent.Client
	retentionDays int
	batchSize     int
}

// NewRetentionService creates a new RetentionService.
func NewRetentionService(client *ent.Client, retentionDays, batchSize int) *RetentionService {
	if batchSize <= 0 {
		batchSize = 100
	}
	return &RetentionService{
		client:        client,
		retentionDays: retentionDays,
		batchSize:     batchSize,
	}
}

// RunGC performs one full collection pass. Safe to run from multiple
// replicas; already-deleted targets are tolerated.
func (s *RetentionService) RunGC(ctx context.Context) (int, error) {
	if s.retentionDays <= 0 {
		// Zero retention hard-deletes at reject time; nothing ages out.
		return 0, nil
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -s.retentionDays)

	total := 0
	n, err := s.collectRejected(ctx, cutoff)
	total += n
	if err != nil {
		return total, err
	}

	n, err = s.collectOrphanDrafts(ctx, cutoff)
	total += n
	if err != nil {
		return total, err
	}

	if total > 0 {
		slog.Info("Retention GC finished", "deleted", total)
	}
	return total, nil
}

// collectRejected deletes rejected approvals past retention along with
// their target rows, one batch per transaction.
func (s *RetentionService) collectRejected(ctx context.Context, cutoff time.Time) (int, error) {
	total := 0
	for {
		approvals, err := s.client.PendingApproval.Query().
			Where(
				pendingapproval.StatusEQ(pendingapproval.StatusRejected),
				pendingapproval.ReviewedAtLT(cutoff),
			).
			Order(ent.Asc(pendingapproval.FieldReviewedAt)).
			Limit(s.batchSize).
			All(ctx)
		if err != nil {
			return total, fmt.Errorf("failed to query rejected approvals: %w", err)
		}
		if len(approvals) == 0 {
			return total, nil
		}

		tx, err := s.client.Tx(ctx)
		if err != nil {
			return total, fmt.Errorf("failed to start transaction: %w", err)
		}
		for _, approval := range approvals {
			handler, err := handlerFor(approval.ItemType)
			if err != nil {
				slog.Warn("GC skipping approval with unknown item type",
					"approval_id", approval.ID, "item_type", approval.ItemType)
				continue
			}
			// The target may already be gone; hard delete is a no-op then.
			if err := handler.hardDelete(ctx, tx, approval.TargetID); err != nil {
				_ = tx.Rollback()
				return total, fmt.Errorf("failed to delete %s target %s: %w",
					approval.ItemType, approval.TargetID, err)
			}
			if err := tx.PendingApproval.DeleteOne(approval).Exec(ctx); err != nil && !ent.IsNotFound(err) {
				_ = tx.Rollback()
				return total, fmt.Errorf("failed to delete approval %s: %w", approval.ID, err)
			}
			total++
		}
		if err := tx.Commit(); err != nil {
			return total, fmt.Errorf("failed to commit GC batch: %w", err)
		}

		if len(approvals) < s.batchSize {
			return total, nil
		}
	}
}

// collectOrphanDrafts deletes draft targets older than retention that have
// no backing approval row.
func (s *RetentionService) collectOrphanDrafts(ctx context.Context, cutoff time.Time) (int, error) {
	total := 0
	for _, target := range draftScanTargets {
		handler := target.handler
		tx, err := s.client.Tx(ctx)
		if err != nil {
			return total, fmt.Errorf("failed to start transaction: %w", err)
		}

		ids, err := handler.staleDraftIDs(ctx, tx, cutoff, s.batchSize)
		if err != nil {
			_ = tx.Rollback()
			return total, fmt.Errorf("failed to query stale %s drafts: %w", target.table, err)
		}

		deleted := 0
		for _, id := range ids {
			backed, err := tx.PendingApproval.Query().
				Where(pendingapproval.TargetIDEQ(id)).
				Exist(ctx)
			if err != nil {
				_ = tx.Rollback()
				return total, fmt.Errorf("failed to check approval backing: %w", err)
			}
			if backed {
				continue
			}
			if err := handler.hardDelete(ctx, tx, id); err != nil {
				_ = tx.Rollback()
				return total, fmt.Errorf("failed to delete orphan draft %s: %w", id, err)
			}
			deleted++
		}
		if err := tx.Commit(); err != nil {
			return total, fmt.Errorf("failed to commit orphan batch: %w", err)
		}
		if deleted > 0 {
			slog.Info("Deleted orphaned drafts",
				"table", target.table, "count", deleted)
		}
		total += deleted
	}
	return total, nil
}
