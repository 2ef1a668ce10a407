package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/memograph/memograph/ent"
	"github.com/memograph/memograph/ent/pendingapproval"
	"github.com/memograph/memograph/pkg/models"
)

// ApprovalService drives the draft-approval state machine. Each approval
// row moves pending -> approved | rejected exactly once; concurrent
// operators are serialized by a row-level write lock.
type ApprovalService struct {
	client        *ent.Client
	retentionDays int
}

// NewApprovalService creates a new ApprovalService. retentionDays=0 means
// rejected targets are hard-deleted immediately.
func NewApprovalService(client *ent.Client, retentionDays int) *ApprovalService {
	return &ApprovalService{client: client, retentionDays: retentionDays}
}

// CreateApprovalRequest describes a new approval row pointing at a draft.
type CreateApprovalRequest struct {
	ItemType            string
	TargetID            string
	BatchID             string
	Confidence          float64
	SourceQuote         string
	SourceInteractionID string
	SourceEntityID      string
	Context             string
}

// Create records a pending approval for a freshly created draft.
func (s *ApprovalService) Create(ctx context.Context, tx *ent.Tx, req CreateApprovalRequest) (*ent.PendingApproval, error) {
	if _, err := handlerFor(pendingapproval.ItemType(req.ItemType)); err != nil {
		return nil, err
	}
	if req.TargetID == "" {
		return nil, NewValidationError("target_id", "required")
	}

	builder := tx.PendingApproval.Create().
		SetID(uuid.New().String()).
		SetItemType(pendingapproval.ItemType(req.ItemType)).
		SetTargetID(req.TargetID).
		SetBatchID(req.BatchID).
		SetConfidence(req.Confidence)
	if req.SourceQuote != "" {
		builder.SetSourceQuote(req.SourceQuote)
	}
	if req.SourceInteractionID != "" {
		builder.SetSourceInteractionID(req.SourceInteractionID)
	}
	if req.SourceEntityID != "" {
		builder.SetSourceEntityID(req.SourceEntityID)
	}
	if req.Context != "" {
		builder.SetContext(req.Context)
	}

	approval, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create approval: %w", err)
	}
	return approval, nil
}

// Get returns one approval row.
func (s *ApprovalService) Get(ctx context.Context, id string) (*ent.PendingApproval, error) {
	approval, err := s.client.PendingApproval.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get approval: %w", err)
	}
	return approval, nil
}

// List returns approvals with a total count for pagination.
func (s *ApprovalService) List(ctx context.Context, filters models.ApprovalFilters) (*models.ApprovalListResponse, error) {
	query := s.client.PendingApproval.Query()
	if filters.BatchID != "" {
		query = query.Where(pendingapproval.BatchIDEQ(filters.BatchID))
	}
	if filters.Status != "" {
		query = query.Where(pendingapproval.StatusEQ(pendingapproval.Status(filters.Status)))
	}
	if filters.ItemType != "" {
		query = query.Where(pendingapproval.ItemTypeEQ(pendingapproval.ItemType(filters.ItemType)))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count approvals: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 50
	}
	approvals, err := query.
		Order(ent.Desc(pendingapproval.FieldCreatedAt)).
		Limit(limit).
		Offset(filters.Offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list approvals: %w", err)
	}

	return &models.ApprovalListResponse{
		Approvals:  approvals,
		TotalCount: total,
		Limit:      limit,
		Offset:     filters.Offset,
	}, nil
}

// Approve activates the target and marks the approval approved. Approving
// a non-pending row returns ErrConflict.
func (s *ApprovalService) Approve(ctx context.Context, id string) (*ent.PendingApproval, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	approval, err := s.approveInTx(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit approval: %w", err)
	}
	return approval, nil
}

func (s *ApprovalService) approveInTx(ctx context.Context, tx *ent.Tx, id string) (*ent.PendingApproval, error) {
	approval, err := s.lockRow(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if approval.Status != pendingapproval.StatusPending {
		return nil, fmt.Errorf("%w: approval is %s", ErrConflict, approval.Status)
	}

	handler, err := handlerFor(approval.ItemType)
	if err != nil {
		return nil, err
	}
	if err := handler.activate(ctx, tx, approval.TargetID); err != nil {
		return nil, fmt.Errorf("failed to activate %s target: %w", approval.ItemType, err)
	}

	approval, err = tx.PendingApproval.UpdateOne(approval).
		SetStatus(pendingapproval.StatusApproved).
		SetReviewedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark approval approved: %w", err)
	}
	return approval, nil
}

// Reject declines the draft. With a zero retention window the target is
// hard-deleted along with the approval row; otherwise the target is
// soft-deleted and kept for the retention GC.
func (s *ApprovalService) Reject(ctx context.Context, id string) (*ent.PendingApproval, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	approval, err := s.rejectInTx(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit rejection: %w", err)
	}
	return approval, nil
}

func (s *ApprovalService) rejectInTx(ctx context.Context, tx *ent.Tx, id string) (*ent.PendingApproval, error) {
	approval, err := s.lockRow(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if approval.Status != pendingapproval.StatusPending {
		return nil, fmt.Errorf("%w: approval is %s", ErrConflict, approval.Status)
	}

	handler, err := handlerFor(approval.ItemType)
	if err != nil {
		return nil, err
	}

	if s.retentionDays == 0 {
		if err := handler.hardDelete(ctx, tx, approval.TargetID); err != nil {
			return nil, fmt.Errorf("failed to hard delete %s target: %w", approval.ItemType, err)
		}
		if err := tx.PendingApproval.DeleteOne(approval).Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to delete approval: %w", err)
		}
		return approval, nil
	}

	if err := handler.softDelete(ctx, tx, approval.TargetID); err != nil {
		return nil, fmt.Errorf("failed to soft delete %s target: %w", approval.ItemType, err)
	}
	approval, err = tx.PendingApproval.UpdateOne(approval).
		SetStatus(pendingapproval.StatusRejected).
		SetReviewedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark approval rejected: %w", err)
	}
	return approval, nil
}

func (s *ApprovalService) lockRow(ctx context.Context, tx *ent.Tx, id string) (*ent.PendingApproval, error) {
	approval, err := tx.PendingApproval.Query().
		Where(pendingapproval.IDEQ(id)).
		ForUpdate(sql.WithLockAction(sql.NoWait)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock approval: %w", err)
	}
	return approval, nil
}

// BatchApprove approves many rows in one transaction. Per-item failures
// roll back to a savepoint so siblings still land.
func (s *ApprovalService) BatchApprove(ctx context.Context, ids []string) (*models.BatchResult, error) {
	return s.batch(ctx, ids, s.approveInTx)
}

// BatchReject rejects many rows in one transaction with isolated failures.
func (s *ApprovalService) BatchReject(ctx context.Context, ids []string) (*models.BatchResult, error) {
	return s.batch(ctx, ids, s.rejectInTx)
}

// ApproveBatch approves every still-pending row of an extraction batch.
// Already-decided rows are left alone.
func (s *ApprovalService) ApproveBatch(ctx context.Context, batchID string) (*models.BatchResult, error) {
	ids, err := s.pendingBatchIDs(ctx, batchID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return &models.BatchResult{}, nil
	}
	return s.batch(ctx, ids, s.approveInTx)
}

// RejectBatch rejects every still-pending row of an extraction batch.
func (s *ApprovalService) RejectBatch(ctx context.Context, batchID string) (*models.BatchResult, error) {
	ids, err := s.pendingBatchIDs(ctx, batchID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return &models.BatchResult{}, nil
	}
	return s.batch(ctx, ids, s.rejectInTx)
}

// pendingBatchIDs lists the pending row IDs of a batch, oldest first. An
// unknown batch is ErrNotFound; a fully-decided one yields an empty list.
func (s *ApprovalService) pendingBatchIDs(ctx context.Context, batchID string) ([]string, error) {
	if batchID == "" {
		return nil, NewValidationError("batch_id", "required")
	}
	ids, err := s.client.PendingApproval.Query().
		Where(
			pendingapproval.BatchIDEQ(batchID),
			pendingapproval.StatusEQ(pendingapproval.StatusPending),
		).
		Order(ent.Asc(pendingapproval.FieldCreatedAt)).
		IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list batch approvals: %w", err)
	}
	if len(ids) == 0 {
		exists, err := s.client.PendingApproval.Query().
			Where(pendingapproval.BatchIDEQ(batchID)).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to check batch: %w", err)
		}
		if !exists {
			return nil, ErrNotFound
		}
	}
	return ids, nil
}

func (s *ApprovalService) batch(ctx context.Context, ids []string, op func(context.Context, *ent.Tx, string) (*ent.PendingApproval, error)) (*models.BatchResult, error) {
	if len(ids) == 0 {
		return nil, NewValidationError("ids", "required")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result := &models.BatchResult{}
	for i, id := range ids {
		savepoint := fmt.Sprintf("item_%d", i)
		if _, err := tx.ExecContext(ctx, "SAVEPOINT "+savepoint); err != nil {
			return nil, fmt.Errorf("failed to create savepoint: %w", err)
		}
		if _, err := op(ctx, tx, id); err != nil {
			if _, rbErr := tx.ExecContext(ctx, "ROLLBACK TO SAVEPOINT "+savepoint); rbErr != nil {
				return nil, fmt.Errorf("failed to roll back savepoint: %w", rbErr)
			}
			result.Failed++
			result.Errors = append(result.Errors, models.BatchError{ApprovalID: id, Error: err.Error()})
			continue
		}
		result.Processed++
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit batch: %w", err)
	}

	slog.Info("Approval batch processed",
		"processed", result.Processed,
		"failed", result.Failed)
	return result, nil
}

// UpdateTarget edits a draft's editable fields before approval. Activity
// parent changes are refused here; reparenting is an activity-tree
// operation with closure maintenance.
func (s *ApprovalService) UpdateTarget(ctx context.Context, id string, req models.UpdateTargetRequest) (*ent.PendingApproval, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	approval, err := s.lockRow(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if approval.Status != pendingapproval.StatusPending {
		return nil, fmt.Errorf("%w: approval is %s", ErrConflict, approval.Status)
	}

	handler, err := handlerFor(approval.ItemType)
	if err != nil {
		return nil, err
	}
	if err := handler.update(ctx, tx, approval.TargetID, req); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit target update: %w", err)
	}
	return approval, nil
}

// BatchStats summarizes one extraction batch's review progress.
func (s *ApprovalService) BatchStats(ctx context.Context, batchID string) (*models.BatchStats, error) {
	var rows []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	err := s.client.PendingApproval.Query().
		Where(pendingapproval.BatchIDEQ(batchID)).
		GroupBy(pendingapproval.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate batch stats: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}

	stats := &models.BatchStats{BatchID: batchID}
	for _, r := range rows {
		switch pendingapproval.Status(r.Status) {
		case pendingapproval.StatusPending:
			stats.Pending = r.Count
		case pendingapproval.StatusApproved:
			stats.Approved = r.Count
		case pendingapproval.StatusRejected:
			stats.Rejected = r.Count
		}
		stats.Total += r.Count
	}
	return stats, nil
}

// HasPendingBatch reports whether any approval in the batch is still
// pending. The orchestrator refuses to re-extract over a live batch.
func (s *ApprovalService) HasPendingBatch(ctx context.Context, batchID string) (bool, error) {
	exists, err := s.client.PendingApproval.Query().
		Where(
			pendingapproval.BatchIDEQ(batchID),
			pendingapproval.StatusEQ(pendingapproval.StatusPending),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check batch: %w", err)
	}
	return exists, nil
}
