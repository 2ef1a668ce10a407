// Package config loads service configuration from environment variables.
// Every pipeline threshold is an env option with a documented default so
// tests can exercise both defaults and edge values.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is the root configuration for the memograph service.
type Config struct {
	HTTPPort string

	Pipeline  PipelineConfig
	Queue     QueueConfig
	Retention RetentionConfig
	Auth      AuthConfig
	LLM       LLMConfig
	Redis     RedisConfig
}

// PipelineConfig controls session assembly, segmentation, extraction and
// deduplication behavior.
type PipelineConfig struct {
	// SessionGap is the idle gap after which a new interaction starts.
	SessionGap time.Duration

	// SettleDelay is how long a completed interaction rests before
	// segmentation picks it up (late messages may still arrive).
	SettleDelay time.Duration

	// Interval is how often the pipeline runner scans for work.
	Interval time.Duration

	// MinSegmentMessages / MaxSegmentMessages bound segment sizes.
	MinSegmentMessages int
	MaxSegmentMessages int

	// SimilarityThreshold is the cosine similarity at or above which a
	// candidate is merged into an existing record instead of created.
	SimilarityThreshold float64

	// ReviewThreshold is the lower bound of the needs-review band.
	ReviewThreshold float64

	// AutoResolveConfidence gates the resolver's display-name auto-attach.
	AutoResolveConfidence float64

	// MaxExtractionAttempts bounds retries of a failed segment extraction.
	MaxExtractionAttempts int
}

// QueueConfig controls the embedding job queue and its worker pool.
type QueueConfig struct {
	// WorkerCount is the number of embedding workers per replica.
	WorkerCount int

	// PollInterval is the base interval for checking pending jobs.
	PollInterval time.Duration

	// PollIntervalJitter randomizes polling: PollInterval ± jitter.
	PollIntervalJitter time.Duration

	// MaxAttempts is the terminal retry limit per job.
	MaxAttempts int

	// InitialBackoff is the first retry delay; each retry doubles it.
	InitialBackoff time.Duration

	// JobTimeout is the per-job processing budget (embedding call included).
	JobTimeout time.Duration

	// OrphanThreshold is how long a processing job may go without a
	// heartbeat before it is requeued.
	OrphanThreshold time.Duration

	// OrphanScanInterval is how often orphaned jobs are scanned for.
	OrphanScanInterval time.Duration

	// KeepCompleted / KeepFailed bound the job-history tables.
	KeepCompleted int
	KeepFailed    int

	// GracefulShutdownTimeout is the max wait for in-flight jobs on stop.
	GracefulShutdownTimeout time.Duration
}

// RetentionConfig controls draft retention and garbage collection.
type RetentionConfig struct {
	// ApprovalRetentionDays is how long rejected drafts are kept before the
	// GC hard-deletes them. 0 means reject deletes immediately.
	ApprovalRetentionDays int

	// GCHour is the local hour of day the daily GC runs (default 3).
	GCHour int

	// GCBatchSize bounds rows deleted per transaction.
	GCBatchSize int
}

// AuthConfig controls the JWT/API-key surface.
type AuthConfig struct {
	JWTSecret       string
	APIKey          string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	MaxLoginAttempts int
	LockoutDuration  time.Duration
}

// LLMConfig controls the extraction/segmentation model and the embedding
// provider. Both speak the OpenAI API surface.
type LLMConfig struct {
	APIKey         string
	BaseURL        string
	Model          string
	EmbeddingModel string
	EmbeddingDim   int

	// Request timeouts: LLM 120s, embeddings 30s.
	CompletionTimeout time.Duration
	EmbeddingTimeout  time.Duration
}

// RedisConfig holds the shared cache connection.
type RedisConfig struct {
	URL string

	// DailyContextTTL bounds how long the cached daily context digest
	// stays fresh.
	DailyContextTTL time.Duration
}

// Load reads configuration from the environment, applying defaults.
func Load() (*Config, error) {
	sessionGapHours, err := envFloat("SESSION_GAP_HOURS", 4)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPPort: envString("HTTP_PORT", "8080"),
		Pipeline: PipelineConfig{
			SessionGap:            time.Duration(sessionGapHours * float64(time.Hour)),
			SettleDelay:           envDuration("SEGMENT_SETTLE_DELAY", 10*time.Minute),
			Interval:              envDuration("PIPELINE_INTERVAL", 5*time.Minute),
			MinSegmentMessages:    envInt("MIN_SEGMENT_MESSAGES", 3),
			MaxSegmentMessages:    envInt("MAX_SEGMENT_MESSAGES", 80),
			SimilarityThreshold:   envFloatDefault("SEMANTIC_SIMILARITY_THRESHOLD", 0.85),
			ReviewThreshold:       envFloatDefault("SEMANTIC_REVIEW_THRESHOLD", 0.60),
			AutoResolveConfidence: envFloatDefault("AUTO_RESOLVE_CONFIDENCE_THRESHOLD", 0.9),
			MaxExtractionAttempts: envInt("MAX_EXTRACTION_ATTEMPTS", 3),
		},
		Queue: QueueConfig{
			WorkerCount:             envInt("EMBED_WORKER_COUNT", 3),
			PollInterval:            envDuration("EMBED_POLL_INTERVAL", time.Second),
			PollIntervalJitter:      envDuration("EMBED_POLL_JITTER", 500*time.Millisecond),
			MaxAttempts:             envInt("EMBED_MAX_ATTEMPTS", 5),
			InitialBackoff:          envDuration("EMBED_INITIAL_BACKOFF", time.Second),
			JobTimeout:              envDuration("EMBED_JOB_TIMEOUT", 30*time.Second),
			OrphanThreshold:         envDuration("EMBED_ORPHAN_THRESHOLD", 5*time.Minute),
			OrphanScanInterval:      envDuration("EMBED_ORPHAN_SCAN_INTERVAL", 5*time.Minute),
			KeepCompleted:           envInt("EMBED_KEEP_COMPLETED", 1000),
			KeepFailed:              envInt("EMBED_KEEP_FAILED", 5000),
			GracefulShutdownTimeout: envDuration("EMBED_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Retention: RetentionConfig{
			ApprovalRetentionDays: envInt("PENDING_APPROVAL_RETENTION_DAYS", 30),
			GCHour:                envInt("RETENTION_GC_HOUR", 3),
			GCBatchSize:           envInt("RETENTION_GC_BATCH_SIZE", 100),
		},
		Auth: AuthConfig{
			JWTSecret:        os.Getenv("JWT_SECRET"),
			APIKey:           os.Getenv("API_KEY"),
			AccessTokenTTL:   envDuration("ACCESS_TOKEN_TTL", 15*time.Minute),
			RefreshTokenTTL:  envDuration("REFRESH_TOKEN_TTL", 720*time.Hour),
			MaxLoginAttempts: envInt("MAX_LOGIN_ATTEMPTS", 5),
			LockoutDuration:  time.Duration(envInt("LOCKOUT_DURATION_MINUTES", 15)) * time.Minute,
		},
		LLM: LLMConfig{
			APIKey:            os.Getenv("OPENAI_API_KEY"),
			BaseURL:           os.Getenv("OPENAI_BASE_URL"),
			Model:             envString("LLM_MODEL", "gpt-4o-mini"),
			EmbeddingModel:    envString("EMBEDDING_MODEL", "text-embedding-3-small"),
			EmbeddingDim:      envInt("EMBEDDING_DIM", 1536),
			CompletionTimeout: envDuration("LLM_TIMEOUT", 120*time.Second),
			EmbeddingTimeout:  envDuration("EMBEDDING_TIMEOUT", 30*time.Second),
		},
		Redis: RedisConfig{
			URL:             envString("REDIS_URL", "redis://localhost:6379/0"),
			DailyContextTTL: time.Duration(envInt("REDIS_DAILY_CONTEXT_TTL", 86400)) * time.Second,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field consistency.
func (c *Config) Validate() error {
	p := &c.Pipeline
	if p.MinSegmentMessages < 1 {
		return fmt.Errorf("MIN_SEGMENT_MESSAGES must be >= 1, got %d", p.MinSegmentMessages)
	}
	if p.MaxSegmentMessages < p.MinSegmentMessages {
		return fmt.Errorf("MAX_SEGMENT_MESSAGES (%d) must be >= MIN_SEGMENT_MESSAGES (%d)",
			p.MaxSegmentMessages, p.MinSegmentMessages)
	}
	if p.SimilarityThreshold < p.ReviewThreshold {
		return fmt.Errorf("SEMANTIC_SIMILARITY_THRESHOLD (%v) must be >= SEMANTIC_REVIEW_THRESHOLD (%v)",
			p.SimilarityThreshold, p.ReviewThreshold)
	}
	if p.SessionGap <= 0 {
		return fmt.Errorf("SESSION_GAP_HOURS must be positive")
	}
	if c.Retention.ApprovalRetentionDays < 0 {
		return fmt.Errorf("PENDING_APPROVAL_RETENTION_DAYS must be >= 0, got %d", c.Retention.ApprovalRetentionDays)
	}
	if c.Retention.GCHour < 0 || c.Retention.GCHour > 23 {
		return fmt.Errorf("RETENTION_GC_HOUR must be in [0,23], got %d", c.Retention.GCHour)
	}
	if c.LLM.EmbeddingDim != 1536 {
		return fmt.Errorf("EMBEDDING_DIM must be 1536 for the pgvector schema, got %d", c.LLM.EmbeddingDim)
	}
	if c.Queue.WorkerCount < 1 {
		return fmt.Errorf("EMBED_WORKER_COUNT must be >= 1, got %d", c.Queue.WorkerCount)
	}
	return nil
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func envFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}

func envFloatDefault(key string, def float64) float64 {
	f, err := envFloat(key, def)
	if err != nil {
		return def
	}
	return f
}

func envDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
