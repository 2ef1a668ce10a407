// Memograph server: ingests conversational messages, assembles them into
// interactions, extracts knowledge drafts through the LLM pipeline, and
// serves the HTTP API.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/memograph/memograph/ent/user"
	"github.com/memograph/memograph/pkg/api"
	"github.com/memograph/memograph/pkg/auth"
	"github.com/memograph/memograph/pkg/cleanup"
	"github.com/memograph/memograph/pkg/config"
	"github.com/memograph/memograph/pkg/database"
	"github.com/memograph/memograph/pkg/embedding"
	"github.com/memograph/memograph/pkg/llm"
	"github.com/memograph/memograph/pkg/pipeline"
	"github.com/memograph/memograph/pkg/queue"
	"github.com/memograph/memograph/pkg/reminder"
	"github.com/memograph/memograph/pkg/services"
	"github.com/memograph/memograph/pkg/version"
)

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file, continuing with existing environment")
	}

	podID := resolvePodID()
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting memograph",
		"version", version.Full(),
		"http_port", cfg.HTTPPort,
		"pod_id", podID)

	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// One-time startup orphan requeue for jobs this pod abandoned.
	if err := queue.RequeueStartupOrphans(ctx, dbClient.Client, podID); err != nil {
		slog.Error("Failed to requeue startup orphans", "error", err)
		// Non-fatal, the periodic scan will catch them.
	}

	redisOpts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		slog.Error("Invalid Redis URL", "error", err)
		os.Exit(1)
	}
	rdb := redis.NewClient(redisOpts)
	defer func() { _ = rdb.Close() }()

	// Auth stack.
	tokenManager, err := auth.NewManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL, cfg.Auth.RefreshTokenTTL)
	if err != nil {
		slog.Error("Failed to initialize token manager", "error", err)
		os.Exit(1)
	}
	refreshStore := auth.NewRefreshStore(rdb, cfg.Auth.RefreshTokenTTL)
	authService := auth.NewService(dbClient.Client, tokenManager, refreshStore,
		cfg.Auth.MaxLoginAttempts, cfg.Auth.LockoutDuration)

	if err := bootstrapAdminUser(ctx, dbClient); err != nil {
		slog.Error("Failed to bootstrap admin user", "error", err)
		os.Exit(1)
	}

	// Domain services.
	entityService := services.NewEntityService(dbClient.Client)
	factService := services.NewFactService(dbClient.Client)
	disambigService := services.NewDisambiguationService(dbClient.Client)
	resolverService := services.NewResolverService(dbClient.Client, disambigService,
		cfg.Pipeline.AutoResolveConfidence)
	ingestService := services.NewIngestService(dbClient.Client, resolverService, cfg.Pipeline.SessionGap)
	activityService := services.NewActivityService(dbClient.Client)
	commitmentService := services.NewCommitmentService(dbClient.Client)
	approvalService := services.NewApprovalService(dbClient.Client, cfg.Retention.ApprovalRetentionDays)
	dataQualityService := services.NewDataQualityService(dbClient.Client, entityService, activityService)
	retentionService := services.NewRetentionService(dbClient.Client,
		cfg.Retention.ApprovalRetentionDays, cfg.Retention.GCBatchSize)
	dailyContextService := services.NewDailyContextService(dbClient.Client, rdb, cfg.Redis.DailyContextTTL)
	slog.Info("Services initialized")

	// LLM + embedding clients speak the OpenAI API surface.
	llmClient := llm.NewOpenAIClient(&cfg.LLM)
	embedder := embedding.NewOpenAIEmbedder(&cfg.LLM)

	// Embedding worker pool.
	executor := embedding.NewExecutor(dbClient.Client, embedder)
	workerPool := queue.NewWorkerPool(podID, dbClient.Client, &cfg.Queue, executor)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// Extraction pipeline.
	deduper := pipeline.NewDeduper(dbClient.Client, embedder, &cfg.Pipeline)
	segmenter := pipeline.NewSegmenter(dbClient.Client, llmClient, embedder, &cfg.Pipeline)
	orchestrator := pipeline.NewOrchestrator(dbClient.Client, llmClient, deduper, disambigService,
		activityService, approvalService, entityService, commitmentService, &cfg.Pipeline)
	runner := pipeline.NewRunner(dbClient.Client, ingestService, segmenter, orchestrator, &cfg.Pipeline)
	runner.Start(ctx)

	// Reminder and retention loops.
	reminderService := reminder.NewService(dbClient.Client, nil)
	reminderService.Start(ctx)

	cleanupService := cleanup.NewService(dbClient.Client, retentionService, dataQualityService,
		&cfg.Retention, &cfg.Queue)
	cleanupService.Start(ctx)

	// HTTP server.
	server := api.NewServer(api.Deps{
		DB:           dbClient,
		Auth:         authService,
		APIKey:       cfg.Auth.APIKey,
		Ingest:       ingestService,
		Entities:     entityService,
		Facts:        factService,
		Resolver:     resolverService,
		Disambig:     disambigService,
		Activities:   activityService,
		Commitments:  commitmentService,
		Approvals:    approvalService,
		DataQuality:  dataQualityService,
		DailyContext: dailyContextService,
		Runner:       runner,
		Orchestrator: orchestrator,
		Pool:         workerPool,
	})
	httpServer := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: server.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	slog.Info("Memograph started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// Stop the producers first so the queue stops growing, then drain the
	// worker pool, then the HTTP server.
	runner.Stop()
	reminderService.Stop()
	cleanupService.Stop()

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded; in-flight jobs will be orphan-recovered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}

// bootstrapAdminUser creates the initial operator account from
// ADMIN_USERNAME / ADMIN_PASSWORD when no such user exists yet.
func bootstrapAdminUser(ctx context.Context, dbClient *database.Client) error {
	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		return nil
	}

	exists, err := dbClient.User.Query().
		Where(user.UsernameEQ(username)).
		Exist(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	_, err = dbClient.User.Create().
		SetID(uuid.New().String()).
		SetUsername(username).
		SetPasswordHash(hash).
		Save(ctx)
	if err != nil {
		return err
	}
	slog.Info("Bootstrapped admin user", "username", username)
	return nil
}
