package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// listPendingResolutionsHandler handles GET /api/v1/resolutions/pending.
func (s *Server) listPendingResolutionsHandler(c *gin.Context) {
	pending, err := s.deps.Resolver.ListPending(c.Request.Context(),
		intQuery(c, "limit", 50), intQuery(c, "offset", 0))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"resolutions": pending})
}

type attachRequest struct {
	EntityID string `json:"entity_id" binding:"required"`
}

// attachResolutionHandler handles POST /api/v1/resolutions/:id/attach.
func (s *Server) attachResolutionHandler(c *gin.Context) {
	var req attachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resolution, err := s.deps.Resolver.Attach(c.Request.Context(), c.Param("id"), req.EntityID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resolution)
}

type createFromResolutionRequest struct {
	Name       string `json:"name" binding:"required"`
	EntityType string `json:"entity_type,omitempty"`
}

// createFromResolutionHandler handles POST /api/v1/resolutions/:id/create.
func (s *Server) createFromResolutionHandler(c *gin.Context) {
	var req createFromResolutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	e, err := s.deps.Resolver.CreateNew(c.Request.Context(), c.Param("id"), req.Name, req.EntityType)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

// rejectResolutionHandler handles POST /api/v1/resolutions/:id/reject.
func (s *Server) rejectResolutionHandler(c *gin.Context) {
	if err := s.deps.Resolver.Reject(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "rejected"})
}
