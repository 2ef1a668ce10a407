package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/memograph/memograph/pkg/models"
)

// listApprovalsHandler handles GET /api/v1/approvals.
func (s *Server) listApprovalsHandler(c *gin.Context) {
	filters := models.ApprovalFilters{
		BatchID:  c.Query("batch_id"),
		Status:   c.Query("status"),
		ItemType: c.Query("item_type"),
		Limit:    intQuery(c, "limit", 50),
		Offset:   intQuery(c, "offset", 0),
	}

	resp, err := s.deps.Approvals.List(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getApprovalHandler handles GET /api/v1/approvals/:id.
func (s *Server) getApprovalHandler(c *gin.Context) {
	approval, err := s.deps.Approvals.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, approval)
}

// approveHandler handles POST /api/v1/approvals/:id/approve.
func (s *Server) approveHandler(c *gin.Context) {
	approval, err := s.deps.Approvals.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, approval)
}

// rejectHandler handles POST /api/v1/approvals/:id/reject.
func (s *Server) rejectHandler(c *gin.Context) {
	approval, err := s.deps.Approvals.Reject(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, approval)
}

// updateTargetHandler handles PATCH /api/v1/approvals/:id/target. Edits
// the draft row before a decision is made.
func (s *Server) updateTargetHandler(c *gin.Context) {
	var req models.UpdateTargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	approval, err := s.deps.Approvals.UpdateTarget(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, approval)
}

type batchRequest struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}

// bulkApproveHandler handles POST /api/v1/approvals/bulk/approve, taking an
// explicit list of approval row IDs.
func (s *Server) bulkApproveHandler(c *gin.Context) {
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := s.deps.Approvals.BatchApprove(c.Request.Context(), req.IDs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// bulkRejectHandler handles POST /api/v1/approvals/bulk/reject.
func (s *Server) bulkRejectHandler(c *gin.Context) {
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := s.deps.Approvals.BatchReject(c.Request.Context(), req.IDs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// approveBatchHandler handles POST /api/v1/approvals/batch/:batchId/approve,
// approving every still-pending row of an extraction batch.
func (s *Server) approveBatchHandler(c *gin.Context) {
	result, err := s.deps.Approvals.ApproveBatch(c.Request.Context(), c.Param("batchId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// rejectBatchHandler handles POST /api/v1/approvals/batch/:batchId/reject.
func (s *Server) rejectBatchHandler(c *gin.Context) {
	result, err := s.deps.Approvals.RejectBatch(c.Request.Context(), c.Param("batchId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// batchStatsHandler handles GET /api/v1/approvals/batch/:batchId/stats.
func (s *Server) batchStatsHandler(c *gin.Context) {
	stats, err := s.deps.Approvals.BatchStats(c.Request.Context(), c.Param("batchId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
