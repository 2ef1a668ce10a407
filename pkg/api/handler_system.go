package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/memograph/memograph/pkg/database"
	"github.com/memograph/memograph/pkg/version"
)

// healthHandler handles GET /health. Reports database and embedding
// queue status.
func (s *Server) healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.deps.DB.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"version":  version.Full(),
		"database": dbHealth,
		"queue":    s.deps.Pool.Health(),
	})
}

// dailyContextHandler handles GET /api/v1/context/today. refresh=true
// bypasses the cached digest.
func (s *Server) dailyContextHandler(c *gin.Context) {
	force := c.Query("refresh") == "true"
	dc, err := s.deps.DailyContext.Today(c.Request.Context(), force)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dc)
}

// listReportsHandler handles GET /api/v1/data-quality/reports.
func (s *Server) listReportsHandler(c *gin.Context) {
	reports, err := s.deps.DataQuality.ListReports(c.Request.Context(), intQuery(c, "limit", 20))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": reports})
}

// runAuditHandler handles POST /api/v1/data-quality/audit.
func (s *Server) runAuditHandler(c *gin.Context) {
	report, err := s.deps.DataQuality.RunAudit(c.Request.Context(), "manual")
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// autoMergeDuplicatesHandler handles
// POST /api/v1/data-quality/auto-merge-duplicates.
func (s *Server) autoMergeDuplicatesHandler(c *gin.Context) {
	report, err := s.deps.DataQuality.AutoMergeDuplicates(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// autoAssignOrphansHandler handles
// POST /api/v1/data-quality/auto-assign-orphans.
func (s *Server) autoAssignOrphansHandler(c *gin.Context) {
	report, err := s.deps.DataQuality.AutoAssignOrphans(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// autoResolveClientsHandler handles
// POST /api/v1/data-quality/auto-resolve-clients.
func (s *Server) autoResolveClientsHandler(c *gin.Context) {
	report, err := s.deps.DataQuality.AutoResolveClients(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// autoFixHandler handles POST /api/v1/data-quality/auto-fix, the composite
// of the three targeted remediations.
func (s *Server) autoFixHandler(c *gin.Context) {
	report, err := s.deps.DataQuality.AutoFix(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// runPipelineHandler handles POST /api/v1/pipeline/run. Executes one
// pipeline pass synchronously.
func (s *Server) runPipelineHandler(c *gin.Context) {
	s.deps.Runner.RunOnce(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"status": "completed"})
}

// extractSegmentHandler handles POST /api/v1/segments/:id/extract.
// force=true re-extracts a segment that already has a draft batch.
func (s *Server) extractSegmentHandler(c *gin.Context) {
	force := c.Query("force") == "true"
	if err := s.deps.Orchestrator.ExtractSegment(c.Request.Context(), c.Param("id"), force); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "extracted"})
}
