package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/memograph/memograph/pkg/models"
)

// createCommitmentHandler handles POST /api/v1/commitments.
func (s *Server) createCommitmentHandler(c *gin.Context) {
	var req models.CreateCommitmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cm, err := s.deps.Commitments.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cm)
}

// listCommitmentsHandler handles GET /api/v1/commitments.
func (s *Server) listCommitmentsHandler(c *gin.Context) {
	filters := models.CommitmentFilters{
		Type:           c.Query("type"),
		Status:         c.Query("status"),
		FromEntityID:   c.Query("from_entity_id"),
		ToEntityID:     c.Query("to_entity_id"),
		ActivityID:     c.Query("activity_id"),
		IncludeDeleted: c.Query("include_deleted") == "true",
		Limit:          intQuery(c, "limit", 50),
		Offset:         intQuery(c, "offset", 0),
	}
	if v := c.Query("due_before"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid due_before: must be RFC3339"})
			return
		}
		filters.DueBefore = &t
	}

	commitments, err := s.deps.Commitments.List(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"commitments": commitments})
}

// getCommitmentHandler handles GET /api/v1/commitments/:id.
func (s *Server) getCommitmentHandler(c *gin.Context) {
	cm, err := s.deps.Commitments.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cm)
}

// updateCommitmentHandler handles PATCH /api/v1/commitments/:id.
func (s *Server) updateCommitmentHandler(c *gin.Context) {
	var req models.UpdateCommitmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cm, err := s.deps.Commitments.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cm)
}

// deleteCommitmentHandler handles DELETE /api/v1/commitments/:id.
func (s *Server) deleteCommitmentHandler(c *gin.Context) {
	if err := s.deps.Commitments.SoftDelete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
