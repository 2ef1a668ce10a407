package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/memograph/memograph/pkg/models"
)

// createActivityHandler handles POST /api/v1/activities.
func (s *Server) createActivityHandler(c *gin.Context) {
	var req models.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a, err := s.deps.Activities.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

// listActivitiesHandler handles GET /api/v1/activities.
func (s *Server) listActivitiesHandler(c *gin.Context) {
	filters := models.ActivityFilters{
		ActivityType:   c.Query("type"),
		Status:         c.Query("status"),
		ParentID:       c.Query("parent_id"),
		OwnerEntityID:  c.Query("owner_entity_id"),
		ClientEntityID: c.Query("client_entity_id"),
		Search:         c.Query("search"),
		IncludeDeleted: c.Query("include_deleted") == "true",
		Limit:          intQuery(c, "limit", 50),
		Offset:         intQuery(c, "offset", 0),
	}

	activities, err := s.deps.Activities.List(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"activities": activities})
}

// getActivityHandler handles GET /api/v1/activities/:id.
func (s *Server) getActivityHandler(c *gin.Context) {
	a, err := s.deps.Activities.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// updateActivityHandler handles PATCH /api/v1/activities/:id.
func (s *Server) updateActivityHandler(c *gin.Context) {
	var req models.UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a, err := s.deps.Activities.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// deleteActivityHandler handles DELETE /api/v1/activities/:id.
func (s *Server) deleteActivityHandler(c *gin.Context) {
	if err := s.deps.Activities.SoftDelete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// activityTreeHandler handles GET /api/v1/activities/:id/tree.
func (s *Server) activityTreeHandler(c *gin.Context) {
	subtree, err := s.deps.Activities.Subtree(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"activities": subtree})
}

// activityAncestorsHandler handles GET /api/v1/activities/:id/ancestors.
func (s *Server) activityAncestorsHandler(c *gin.Context) {
	ancestors, err := s.deps.Activities.Ancestors(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ancestors": ancestors})
}

type reparentRequest struct {
	ParentID string `json:"parent_id"` // empty moves to root
}

// reparentActivityHandler handles POST /api/v1/activities/:id/reparent.
func (s *Server) reparentActivityHandler(c *gin.Context) {
	var req reparentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a, err := s.deps.Activities.Reparent(c.Request.Context(), c.Param("id"), req.ParentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}
