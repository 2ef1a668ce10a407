package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/memograph/memograph/pkg/models"
)

// createEntityHandler handles POST /api/v1/entities.
func (s *Server) createEntityHandler(c *gin.Context) {
	var req models.CreateEntityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	e, err := s.deps.Entities.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

// listEntitiesHandler handles GET /api/v1/entities.
func (s *Server) listEntitiesHandler(c *gin.Context) {
	filters := models.EntityFilters{
		Type:           c.Query("type"),
		Search:         c.Query("search"),
		IncludeDeleted: c.Query("include_deleted") == "true",
		Limit:          intQuery(c, "limit", 50),
		Offset:         intQuery(c, "offset", 0),
	}

	resp, err := s.deps.Entities.List(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getEntityHandler handles GET /api/v1/entities/:id.
func (s *Server) getEntityHandler(c *gin.Context) {
	e, err := s.deps.Entities.Get(c.Request.Context(), c.Param("id"), c.Query("include_deleted") == "true")
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

// updateEntityHandler handles PATCH /api/v1/entities/:id.
func (s *Server) updateEntityHandler(c *gin.Context) {
	var req models.UpdateEntityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	e, err := s.deps.Entities.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

// deleteEntityHandler handles DELETE /api/v1/entities/:id.
func (s *Server) deleteEntityHandler(c *gin.Context) {
	if err := s.deps.Entities.SoftDelete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type mergeRequest struct {
	TargetID string `json:"target_id" binding:"required"`
}

// mergeEntityHandler handles POST /api/v1/entities/:id/merge. The path
// entity is the source; it is absorbed into the target.
func (s *Server) mergeEntityHandler(c *gin.Context) {
	var req mergeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := s.deps.Entities.Merge(c.Request.Context(), c.Param("id"), req.TargetID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// disambiguateHandler handles GET /api/v1/entities/disambiguate.
func (s *Server) disambiguateHandler(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	dctx := models.DisambiguationContext{
		ChatID:        c.Query("chat_id"),
		MentionedWith: c.QueryArray("mentioned_with"),
	}
	scored, err := s.deps.Disambig.Score(c.Request.Context(), name, dctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"candidates": scored})
}

// createFactHandler handles POST /api/v1/entities/:id/facts.
func (s *Server) createFactHandler(c *gin.Context) {
	var req models.CreateFactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fact, err := s.deps.Facts.Create(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, fact)
}

// listFactsHandler handles GET /api/v1/entities/:id/facts.
func (s *Server) listFactsHandler(c *gin.Context) {
	filters := models.FactFilters{
		FactType:       c.Query("fact_type"),
		Status:         c.Query("status"),
		IncludeDeleted: c.Query("include_deleted") == "true",
	}

	facts, err := s.deps.Facts.List(c.Request.Context(), c.Param("id"), filters)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"facts": facts})
}

// canonicalFactHandler handles GET /api/v1/entities/:id/facts/canonical.
func (s *Server) canonicalFactHandler(c *gin.Context) {
	factType := c.Query("fact_type")
	if factType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fact_type is required"})
		return
	}

	fact, err := s.deps.Facts.Canonical(c.Request.Context(), c.Param("id"), factType)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, fact)
}

// supersedeFactHandler handles POST /api/v1/facts/:id/supersede.
func (s *Server) supersedeFactHandler(c *gin.Context) {
	var req models.CreateFactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fact, err := s.deps.Facts.Supersede(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, fact)
}

// deleteFactHandler handles DELETE /api/v1/facts/:id.
func (s *Server) deleteFactHandler(c *gin.Context) {
	if err := s.deps.Facts.SoftDelete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// factChainHandler handles GET /api/v1/facts/:id/chain.
func (s *Server) factChainHandler(c *gin.Context) {
	chain, err := s.deps.Facts.SupersessionChain(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"chain": chain})
}
