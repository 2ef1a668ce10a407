package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/memograph/memograph/ent"
	"github.com/memograph/memograph/ent/commitment"
	"github.com/memograph/memograph/ent/interaction"
	"github.com/memograph/memograph/ent/pendingapproval"
	"github.com/memograph/memograph/ent/pendingentityresolution"
	"github.com/memograph/memograph/pkg/models"
)

const dailyContextKeyPrefix = "daily_context:"

// DailyContextService assembles the operator's daily digest: today's
// interactions, due and overdue commitments, and the review backlog. The
// digest is cached in Redis per calendar day.
type DailyContextService struct {
	client *ent.Client
	rdb    *redis.Client
	ttl    time.Duration
}

// NewDailyContextService creates a new DailyContextService.
func NewDailyContextService(client *ent.Client, rdb *redis.Client, ttl time.Duration) *DailyContextService {
	return &DailyContextService{client: client, rdb: rdb, ttl: ttl}
}

// Today returns the digest for the current day, from cache when fresh.
// force rebuilds and recaches regardless of cache state.
func (s *DailyContextService) Today(ctx context.Context, force bool) (*models.DailyContext, error) {
	now := time.Now().UTC()
	key := dailyContextKeyPrefix + now.Format("2006-01-02")

	if !force && s.rdb != nil {
		cached, err := s.rdb.Get(ctx, key).Bytes()
		if err == nil {
			var dc models.DailyContext
			if err := json.Unmarshal(cached, &dc); err == nil {
				return &dc, nil
			}
			// Unreadable cache entries are rebuilt below.
			slog.Warn("Discarding unreadable daily context cache", "key", key)
		} else if !errors.Is(err, redis.Nil) {
			slog.Warn("Daily context cache read failed", "error", err)
		}
	}

	dc, err := s.build(ctx, now)
	if err != nil {
		return nil, err
	}

	if s.rdb != nil {
		payload, err := json.Marshal(dc)
		if err == nil {
			if err := s.rdb.Set(ctx, key, payload, s.ttl).Err(); err != nil {
				slog.Warn("Daily context cache write failed", "error", err)
			}
		}
	}
	return dc, nil
}

func (s *DailyContextService) build(ctx context.Context, now time.Time) (*models.DailyContext, error) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)

	dc := &models.DailyContext{
		Date:        dayStart.Format("2006-01-02"),
		GeneratedAt: now,
	}

	interactions, err := s.client.Interaction.Query().
		Where(interaction.LastMessageAtGTE(dayStart)).
		Order(ent.Desc(interaction.FieldLastMessageAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load today's interactions: %w", err)
	}
	for _, in := range interactions {
		dc.Interactions = append(dc.Interactions, models.DailyInteraction{
			ID:            in.ID,
			Source:        in.Source,
			ChatID:        in.ChatID,
			Status:        in.Status.String(),
			LastMessageAt: in.LastMessageAt,
		})
	}

	dueToday, err := s.client.Commitment.Query().
		Where(
			commitment.StatusIn(commitment.StatusPending, commitment.StatusInProgress),
			commitment.DueDateGTE(dayStart),
			commitment.DueDateLT(dayEnd),
			commitment.DeletedAtIsNil(),
		).
		Order(ent.Asc(commitment.FieldDueDate)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load due commitments: %w", err)
	}
	dc.DueToday = summarizeCommitments(dueToday)

	overdue, err := s.client.Commitment.Query().
		Where(
			commitment.StatusEQ(commitment.StatusOverdue),
			commitment.DeletedAtIsNil(),
		).
		Order(ent.Asc(commitment.FieldDueDate)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load overdue commitments: %w", err)
	}
	dc.Overdue = summarizeCommitments(overdue)

	pendingApprovals, err := s.client.PendingApproval.Query().
		Where(pendingapproval.StatusEQ(pendingapproval.StatusPending)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending approvals: %w", err)
	}
	dc.PendingApprovals = pendingApprovals

	pendingResolutions, err := s.client.PendingEntityResolution.Query().
		Where(pendingentityresolution.StatusEQ(pendingentityresolution.StatusPending)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending resolutions: %w", err)
	}
	dc.PendingResolutions = pendingResolutions

	return dc, nil
}

func summarizeCommitments(commitments []*ent.Commitment) []models.DailyCommitment {
	out := make([]models.DailyCommitment, 0, len(commitments))
	for _, c := range commitments {
		dcc := models.DailyCommitment{
			ID:     c.ID,
			Type:   c.Type.String(),
			Title:  c.Title,
			Status: c.Status.String(),
		}
		if c.DueDate != nil {
			dcc.DueDate = c.DueDate
		}
		out = append(out, dcc)
	}
	return out
}
