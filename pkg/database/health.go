package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// requiredExtensions are the Postgres extensions the knowledge graph cannot
// run without: vector for embedding KNN, pg_trgm for fuzzy name search.
var requiredExtensions = []string{"vector", "pg_trgm"}

// HealthStatus reports database reachability, the state of the required
// Postgres extensions, and connection pool statistics.
type HealthStatus struct {
	Status          string          `json:"status"`
	ResponseTime    int64           `json:"response_time_ms"`
	Extensions      map[string]bool `json:"extensions,omitempty"`
	OpenConnections int             `json:"open_connections"`
	InUse           int             `json:"in_use"`
	Idle            int             `json:"idle"`
	WaitCount       int64           `json:"wait_count"`
	WaitDuration    int64           `json:"wait_duration_ms"`
	MaxOpenConns    int             `json:"max_open_conns"`
}

// Health pings the database, verifies the required extensions, and returns
// pool statistics. A reachable database with a missing extension reports
// degraded rather than unhealthy: reads still work, but embedding KNN or
// trigram search would fail.
func Health(ctx context.Context, db *sql.DB) (*HealthStatus, error) {
	start := time.Now()

	if err := db.PingContext(ctx); err != nil {
		return &HealthStatus{
			Status:       "unhealthy",
			ResponseTime: time.Since(start).Milliseconds(),
		}, err
	}

	extensions, err := installedExtensions(ctx, db)
	if err != nil {
		return &HealthStatus{
			Status:       "unhealthy",
			ResponseTime: time.Since(start).Milliseconds(),
		}, err
	}

	status := "healthy"
	for _, present := range extensions {
		if !present {
			status = "degraded"
		}
	}

	stats := db.Stats()
	return &HealthStatus{
		Status:          status,
		ResponseTime:    time.Since(start).Milliseconds(),
		Extensions:      extensions,
		OpenConnections: stats.OpenConnections,
		InUse:           stats.InUse,
		Idle:            stats.Idle,
		WaitCount:       stats.WaitCount,
		WaitDuration:    stats.WaitDuration.Milliseconds(),
		MaxOpenConns:    stats.MaxOpenConnections,
	}, nil
}

func installedExtensions(ctx context.Context, db *sql.DB) (map[string]bool, error) {
	rows, err := db.QueryContext(ctx, "SELECT extname FROM pg_extension")
	if err != nil {
		return nil, fmt.Errorf("failed to query extensions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	installed := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan extension: %w", err)
		}
		installed[name] = true
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make(map[string]bool, len(requiredExtensions))
	for _, name := range requiredExtensions {
		out[name] = installed[name]
	}
	return out, nil
}
