package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/memograph/memograph/pkg/models"
)

// ingestMessageHandler handles POST /api/v1/ingest/messages.
func (s *Server) ingestMessageHandler(c *gin.Context) {
	var req models.IngestMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := s.deps.Ingest.Ingest(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusCreated
	if result.Duplicate {
		status = http.StatusOK
	}
	c.JSON(status, result)
}

// listInteractionsHandler handles GET /api/v1/interactions.
func (s *Server) listInteractionsHandler(c *gin.Context) {
	filters := models.InteractionFilters{
		Source: c.Query("source"),
		ChatID: c.Query("chat_id"),
		Status: c.Query("status"),
		Limit:  intQuery(c, "limit", 50),
		Offset: intQuery(c, "offset", 0),
	}
	if v := c.Query("since"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid since: must be RFC3339"})
			return
		}
		filters.Since = &t
	}
	if v := c.Query("until"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid until: must be RFC3339"})
			return
		}
		filters.Until = &t
	}

	interactions, err := s.deps.Ingest.ListInteractions(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"interactions": interactions})
}

// getInteractionHandler handles GET /api/v1/interactions/:id.
func (s *Server) getInteractionHandler(c *gin.Context) {
	inter, err := s.deps.Ingest.GetInteraction(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, inter)
}

// listInteractionMessagesHandler handles GET /api/v1/interactions/:id/messages.
func (s *Server) listInteractionMessagesHandler(c *gin.Context) {
	msgs, err := s.deps.Ingest.ListMessages(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": msgs})
}

// intQuery parses an integer query parameter with a default.
func intQuery(c *gin.Context, name string, def int) int {
	v := c.Query(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return n
}
