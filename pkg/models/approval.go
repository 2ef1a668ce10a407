package models

import "github.com/memograph/memograph/ent"

// ApprovalFilters narrows pending-approval listings.
type ApprovalFilters struct {
	BatchID  string
	Status   string
	ItemType string
	Limit    int
	Offset   int
}

// ApprovalListResponse is a paginated approval listing.
type ApprovalListResponse struct {
	Approvals  []*ent.PendingApproval `json:"approvals"`
	TotalCount int                    `json:"total_count"`
	Limit      int                    `json:"limit"`
	Offset     int                    `json:"offset"`
}

// BatchResult accumulates per-item outcomes of a batch approve/reject.
// A per-item failure is isolated; siblings still succeed.
type BatchResult struct {
	Processed int          `json:"processed"`
	Failed    int          `json:"failed"`
	Errors    []BatchError `json:"errors,omitempty"`
}

// BatchError reports one failed item within a batch operation.
type BatchError struct {
	ApprovalID string `json:"approval_id"`
	Error      string `json:"error"`
}

// BatchStats summarizes the review state of one extraction batch.
type BatchStats struct {
	BatchID  string `json:"batch_id"`
	Pending  int    `json:"pending"`
	Approved int    `json:"approved"`
	Rejected int    `json:"rejected"`
	Total    int    `json:"total"`
}

// UpdateTargetRequest edits a draft's editable fields before approval.
// Changing an activity's parent is not allowed here; reparenting routes
// through the activity service after approval.
type UpdateTargetRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Priority    *int    `json:"priority,omitempty"`
	DueDate     *string `json:"due_date,omitempty"` // RFC3339; empty string clears
	ParentID    *string `json:"parent_id,omitempty"`
}
