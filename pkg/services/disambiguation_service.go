package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/memograph/memograph/ent"
	"github.com/memograph/memograph/ent/entity"
	"github.com/memograph/memograph/ent/entityfact"
	"github.com/memograph/memograph/ent/interaction"
	"github.com/memograph/memograph/ent/interactionparticipant"
	"github.com/memograph/memograph/pkg/models"
)

// maxDisambiguationCandidates caps the ILIKE candidate set.
const maxDisambiguationCandidates = 20

// relationCategories are the fact categories treated as organizational
// links when scoring mentioned-with context.
var relationCategories = []string{"employment", "team", "client_vendor"}

// DisambiguationService ranks candidate entities for a free-text name
// using conversational context. Stateless; every call hits the database.
type DisambiguationService struct {
	client *ent.Client
}

// NewDisambiguationService creates a new DisambiguationService.
func NewDisambiguationService(client *ent.Client) *DisambiguationService {
	return &DisambiguationService{client: client}
}

// Score returns ranked candidates for a name. Scores are additive and each
// contributing signal is spelled out in reasons.
func (s *DisambiguationService) Score(ctx context.Context, name string, dctx models.DisambiguationContext) ([]models.ScoredCandidate, error) {
	if name == "" {
		return nil, NewValidationError("name", "required")
	}

	candidates, err := s.client.Entity.Query().
		Where(entity.NameContainsFold(name)).
		Order(ent.Desc(entity.FieldUpdatedAt)).
		Limit(maxDisambiguationCandidates).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidates: %w", err)
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	ids := make([]string, len(candidates))
	for i, c := range candidates {
		ids[i] = c.ID
	}

	recent, err := s.recentlyActive(ctx, ids)
	if err != nil {
		return nil, err
	}
	inChat, err := s.chatParticipants(ctx, ids, dctx.ChatID)
	if err != nil {
		return nil, err
	}

	scored := make([]models.ScoredCandidate, 0, len(candidates))
	for _, c := range candidates {
		score := 0.0
		var reasons []string

		if c.DeletedAt == nil {
			score += 0.1
			reasons = append(reasons, "active entity")
		}
		if recent[c.ID] {
			score += 0.3
			reasons = append(reasons, "interacted within the last 7 days")
		}
		if inChat[c.ID] {
			score += 0.2
			reasons = append(reasons, "participates in this chat")
		}
		if len(dctx.MentionedWith) > 0 {
			linked, term, err := s.mentionedWithLink(ctx, c, dctx.MentionedWith)
			if err != nil {
				return nil, err
			}
			if linked {
				score += 0.4
				reasons = append(reasons, fmt.Sprintf("linked to %q", term))
			}
		}

		scored = append(scored, models.ScoredCandidate{
			EntityID: c.ID,
			Name:     c.Name,
			Score:    score,
			Reasons:  reasons,
		})
	}

	// Candidates arrive ordered by updated_at desc; the stable sort keeps
	// that as the tie-break.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored, nil
}

// Best returns the winning candidate, or ok=false when the ranking is too
// ambiguous to act on automatically.
func (s *DisambiguationService) Best(ctx context.Context, name string, dctx models.DisambiguationContext) (*models.ScoredCandidate, bool, error) {
	scored, err := s.Score(ctx, name, dctx)
	if err != nil {
		return nil, false, err
	}
	if len(scored) == 0 {
		return nil, false, nil
	}
	if Ambiguous(scored) {
		return &scored[0], false, nil
	}
	return &scored[0], true, nil
}

// Ambiguous applies the default confidence cutoff: a weak top score, or a
// runner-up within 80% of it, needs operator confirmation.
func Ambiguous(scored []models.ScoredCandidate) bool {
	if len(scored) == 0 {
		return true
	}
	top := scored[0].Score
	if top < 0.3 {
		return true
	}
	if len(scored) > 1 && scored[1].Score >= 0.8*top {
		return true
	}
	return false
}

func (s *DisambiguationService) recentlyActive(ctx context.Context, ids []string) (map[string]bool, error) {
	cutoff := time.Now().UTC().Add(-7 * 24 * time.Hour)
	rows, err := s.client.InteractionParticipant.Query().
		Where(
			interactionparticipant.EntityIDIn(ids...),
			interactionparticipant.HasInteractionWith(interaction.LastMessageAtGTE(cutoff)),
		).
		Select(interactionparticipant.FieldEntityID).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent activity: %w", err)
	}
	return participantSet(rows), nil
}

func (s *DisambiguationService) chatParticipants(ctx context.Context, ids []string, chatID string) (map[string]bool, error) {
	if chatID == "" {
		return nil, nil
	}
	rows, err := s.client.InteractionParticipant.Query().
		Where(
			interactionparticipant.EntityIDIn(ids...),
			interactionparticipant.HasInteractionWith(interaction.ChatIDEQ(chatID)),
		).
		Select(interactionparticipant.FieldEntityID).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query chat participation: %w", err)
	}
	return participantSet(rows), nil
}

func participantSet(rows []*ent.InteractionParticipant) map[string]bool {
	set := make(map[string]bool, len(rows))
	for _, r := range rows {
		if r.EntityID != nil {
			set[*r.EntityID] = true
		}
	}
	return set
}

// mentionedWithLink checks whether the candidate is tied, through its
// organization or an open-ended relation fact, to any mentioned-with term.
func (s *DisambiguationService) mentionedWithLink(ctx context.Context, c *ent.Entity, terms []string) (bool, string, error) {
	if c.OrganizationID != nil {
		org, err := s.client.Entity.Get(ctx, *c.OrganizationID)
		if err != nil && !ent.IsNotFound(err) {
			return false, "", fmt.Errorf("failed to load organization: %w", err)
		}
		if org != nil {
			for _, term := range terms {
				if strings.Contains(strings.ToLower(org.Name), strings.ToLower(term)) {
					return true, term, nil
				}
			}
		}
	}

	facts, err := s.client.EntityFact.Query().
		Where(
			entityfact.EntityIDEQ(c.ID),
			entityfact.CategoryIn(relationCategories...),
			entityfact.ValidUntilIsNil(),
			entityfact.DeletedAtIsNil(),
			entityfact.StatusEQ(entityfact.StatusActive),
		).
		All(ctx)
	if err != nil {
		return false, "", fmt.Errorf("failed to query relation facts: %w", err)
	}
	for _, f := range facts {
		for _, term := range terms {
			if strings.Contains(strings.ToLower(*f.Value), strings.ToLower(term)) {
				return true, term, nil
			}
		}
	}
	return false, "", nil
}
