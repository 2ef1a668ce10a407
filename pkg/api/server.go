// Package api exposes the HTTP surface: ingest, knowledge CRUD, the
// approval workflow, and the auth endpoints.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/memograph/memograph/pkg/auth"
	"github.com/memograph/memograph/pkg/database"
	"github.com/memograph/memograph/pkg/pipeline"
	"github.com/memograph/memograph/pkg/queue"
	"github.com/memograph/memograph/pkg/services"
)

// Deps collects everything the server serves.
type Deps struct {
	DB           *database.Client
	Auth         *auth.Service
	APIKey       string
	Ingest       *services.IngestService
	Entities     *services.EntityService
	Facts        *services.FactService
	Resolver     *services.ResolverService
	Disambig     *services.DisambiguationService
	Activities   *services.ActivityService
	Commitments  *services.CommitmentService
	Approvals    *services.ApprovalService
	DataQuality  *services.DataQualityService
	DailyContext *services.DailyContextService
	Runner       *pipeline.Runner
	Orchestrator *pipeline.Orchestrator
	Pool         *queue.WorkerPool
}

// Server is the HTTP API server.
type Server struct {
	deps Deps
}

// NewServer creates a new API server.
func NewServer(deps Deps) *Server {
	return &Server{deps: deps}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(), securityHeaders())

	r.GET("/health", s.healthHandler)

	// Auth endpoints are public; login and refresh mint the credentials
	// everything else requires.
	authGroup := r.Group("/api/v1/auth")
	{
		authGroup.POST("/login", s.loginHandler)
		authGroup.POST("/refresh", s.refreshHandler)
		authGroup.POST("/logout", s.logoutHandler)
		authGroup.POST("/logout-all", s.logoutAllHandler)
	}

	v1 := r.Group("/api/v1")
	v1.Use(authRequired(s.deps.Auth, s.deps.APIKey))
	{
		v1.POST("/ingest/messages", s.ingestMessageHandler)
		v1.GET("/interactions", s.listInteractionsHandler)
		v1.GET("/interactions/:id", s.getInteractionHandler)
		v1.GET("/interactions/:id/messages", s.listInteractionMessagesHandler)

		v1.POST("/entities", s.createEntityHandler)
		v1.GET("/entities", s.listEntitiesHandler)
		v1.GET("/entities/disambiguate", s.disambiguateHandler)
		v1.GET("/entities/:id", s.getEntityHandler)
		v1.PATCH("/entities/:id", s.updateEntityHandler)
		v1.DELETE("/entities/:id", s.deleteEntityHandler)
		v1.POST("/entities/:id/merge", s.mergeEntityHandler)
		v1.POST("/entities/:id/facts", s.createFactHandler)
		v1.GET("/entities/:id/facts", s.listFactsHandler)
		v1.GET("/entities/:id/facts/canonical", s.canonicalFactHandler)
		v1.POST("/facts/:id/supersede", s.supersedeFactHandler)
		v1.DELETE("/facts/:id", s.deleteFactHandler)
		v1.GET("/facts/:id/chain", s.factChainHandler)

		v1.GET("/resolutions/pending", s.listPendingResolutionsHandler)
		v1.POST("/resolutions/:id/attach", s.attachResolutionHandler)
		v1.POST("/resolutions/:id/create", s.createFromResolutionHandler)
		v1.POST("/resolutions/:id/reject", s.rejectResolutionHandler)

		v1.POST("/activities", s.createActivityHandler)
		v1.GET("/activities", s.listActivitiesHandler)
		v1.GET("/activities/:id", s.getActivityHandler)
		v1.PATCH("/activities/:id", s.updateActivityHandler)
		v1.DELETE("/activities/:id", s.deleteActivityHandler)
		v1.GET("/activities/:id/tree", s.activityTreeHandler)
		v1.GET("/activities/:id/ancestors", s.activityAncestorsHandler)
		v1.POST("/activities/:id/reparent", s.reparentActivityHandler)

		v1.POST("/commitments", s.createCommitmentHandler)
		v1.GET("/commitments", s.listCommitmentsHandler)
		v1.GET("/commitments/:id", s.getCommitmentHandler)
		v1.PATCH("/commitments/:id", s.updateCommitmentHandler)
		v1.DELETE("/commitments/:id", s.deleteCommitmentHandler)

		v1.GET("/approvals", s.listApprovalsHandler)
		v1.GET("/approvals/:id", s.getApprovalHandler)
		v1.POST("/approvals/:id/approve", s.approveHandler)
		v1.POST("/approvals/:id/reject", s.rejectHandler)
		v1.PATCH("/approvals/:id/target", s.updateTargetHandler)
		v1.POST("/approvals/bulk/approve", s.bulkApproveHandler)
		v1.POST("/approvals/bulk/reject", s.bulkRejectHandler)
		v1.POST("/approvals/batch/:batchId/approve", s.approveBatchHandler)
		v1.POST("/approvals/batch/:batchId/reject", s.rejectBatchHandler)
		v1.GET("/approvals/batch/:batchId/stats", s.batchStatsHandler)

		v1.GET("/context/today", s.dailyContextHandler)

		v1.GET("/data-quality/reports", s.listReportsHandler)
		v1.POST("/data-quality/audit", s.runAuditHandler)
		v1.POST("/data-quality/auto-merge-duplicates", s.autoMergeDuplicatesHandler)
		v1.POST("/data-quality/auto-assign-orphans", s.autoAssignOrphansHandler)
		v1.POST("/data-quality/auto-resolve-clients", s.autoResolveClientsHandler)
		v1.POST("/data-quality/auto-fix", s.autoFixHandler)

		v1.POST("/pipeline/run", s.runPipelineHandler)
		v1.POST("/segments/:id/extract", s.extractSegmentHandler)
	}

	return r
}
