package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 4*time.Hour, cfg.Pipeline.SessionGap)
	assert.Equal(t, 3, cfg.Pipeline.MinSegmentMessages)
	assert.Equal(t, 80, cfg.Pipeline.MaxSegmentMessages)
	assert.Equal(t, 0.85, cfg.Pipeline.SimilarityThreshold)
	assert.Equal(t, 0.60, cfg.Pipeline.ReviewThreshold)
	assert.Equal(t, 0.9, cfg.Pipeline.AutoResolveConfidence)
	assert.Equal(t, 30, cfg.Retention.ApprovalRetentionDays)
	assert.Equal(t, 3, cfg.Retention.GCHour)
	assert.Equal(t, 100, cfg.Retention.GCBatchSize)
	assert.Equal(t, 1536, cfg.LLM.EmbeddingDim)
	assert.Equal(t, 120*time.Second, cfg.LLM.CompletionTimeout)
	assert.Equal(t, 30*time.Second, cfg.LLM.EmbeddingTimeout)
	assert.Equal(t, 5, cfg.Auth.MaxLoginAttempts)
	assert.Equal(t, 15*time.Minute, cfg.Auth.LockoutDuration)
	assert.Equal(t, 86400*time.Second, cfg.Redis.DailyContextTTL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SESSION_GAP_HOURS", "2.5")
	t.Setenv("PENDING_APPROVAL_RETENTION_DAYS", "0")
	t.Setenv("SEMANTIC_SIMILARITY_THRESHOLD", "0.92")
	t.Setenv("EMBED_WORKER_COUNT", "7")
	t.Setenv("ACCESS_TOKEN_TTL", "5m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 150*time.Minute, cfg.Pipeline.SessionGap)
	assert.Equal(t, 0, cfg.Retention.ApprovalRetentionDays)
	assert.Equal(t, 0.92, cfg.Pipeline.SimilarityThreshold)
	assert.Equal(t, 7, cfg.Queue.WorkerCount)
	assert.Equal(t, 5*time.Minute, cfg.Auth.AccessTokenTTL)
}

func TestLoad_InvalidSessionGap(t *testing.T) {
	t.Setenv("SESSION_GAP_HOURS", "not-a-number")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_GAP_HOURS")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "max below min segment size",
			mutate:  func(c *Config) { c.Pipeline.MaxSegmentMessages = 1 },
			wantErr: "MAX_SEGMENT_MESSAGES",
		},
		{
			name:    "review band above skip band",
			mutate:  func(c *Config) { c.Pipeline.ReviewThreshold = 0.95 },
			wantErr: "SEMANTIC_SIMILARITY_THRESHOLD",
		},
		{
			name:    "negative retention",
			mutate:  func(c *Config) { c.Retention.ApprovalRetentionDays = -1 },
			wantErr: "PENDING_APPROVAL_RETENTION_DAYS",
		},
		{
			name:    "gc hour out of range",
			mutate:  func(c *Config) { c.Retention.GCHour = 24 },
			wantErr: "RETENTION_GC_HOUR",
		},
		{
			name:    "wrong embedding dim",
			mutate:  func(c *Config) { c.LLM.EmbeddingDim = 768 },
			wantErr: "EMBEDDING_DIM",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load()
			require.NoError(t, err)
			tt.mutate(cfg)
			err = cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
