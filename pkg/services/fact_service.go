package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/memograph/memograph/ent"
	"github.com/memograph/memograph/ent/entity"
	"github.com/memograph/memograph/ent/entityfact"
	"github.com/memograph/memograph/pkg/models"
)

// FactService manages atomic claims about entities. Facts are never mutated
// in place: value changes insert a new fact and deprecate the old one via
// superseded_by, forming a DAG.
type FactService struct {
	client *ent.Client
}

// NewFactService creates a new FactService.
func NewFactService(client *ent.Client) *FactService {
	return &FactService{client: client}
}

// Create records a fact about an entity.
func (s *FactService) Create(ctx context.Context, entityID string, req models.CreateFactRequest) (*ent.EntityFact, error) {
	if req.FactType == "" {
		return nil, NewValidationError("fact_type", "required")
	}
	if req.Value == "" && req.ValueDate == nil && req.ValueJSON == nil {
		return nil, NewValidationError("value", "one of value, value_date, value_json is required")
	}
	if req.Confidence < 0 || req.Confidence > 1 {
		return nil, NewValidationError("confidence", "must be in [0,1]")
	}

	exists, err := s.client.Entity.Query().
		Where(entity.IDEQ(entityID), entity.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check entity: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	confidence := req.Confidence
	if confidence == 0 {
		confidence = 1.0
	}
	source := entityfact.SourceManual
	if req.Source != "" {
		source = entityfact.Source(req.Source)
	}
	status := entityfact.StatusActive
	if req.Status != "" {
		status = entityfact.Status(req.Status)
	}

	builder := s.client.EntityFact.Create().
		SetID(uuid.New().String()).
		SetEntityID(entityID).
		SetFactType(req.FactType).
		SetSource(source).
		SetStatus(status).
		SetConfidence(confidence)
	if req.Category != "" {
		builder.SetCategory(req.Category)
	}
	if req.Value != "" {
		builder.SetValue(req.Value)
	}
	if req.ValueDate != nil {
		builder.SetValueDate(*req.ValueDate)
	}
	if req.ValueJSON != nil {
		builder.SetValueJSON(req.ValueJSON)
	}
	if req.SourceInteractionID != "" {
		builder.SetSourceInteractionID(req.SourceInteractionID)
	}
	if req.SourceMessageID != "" {
		builder.SetSourceMessageID(req.SourceMessageID)
	}
	if req.ValidFrom != nil {
		builder.SetValidFrom(*req.ValidFrom)
	}
	if req.ValidUntil != nil {
		builder.SetValidUntil(*req.ValidUntil)
	}

	fact, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create fact: %w", err)
	}
	return fact, nil
}

// List lists an entity's facts.
func (s *FactService) List(ctx context.Context, entityID string, filters models.FactFilters) ([]*ent.EntityFact, error) {
	query := s.client.EntityFact.Query().
		Where(entityfact.EntityIDEQ(entityID))

	if filters.FactType != "" {
		query = query.Where(entityfact.FactTypeEQ(filters.FactType))
	}
	if filters.Status != "" {
		query = query.Where(entityfact.StatusEQ(entityfact.Status(filters.Status)))
	}
	if !filters.IncludeDeleted {
		query = query.Where(entityfact.DeletedAtIsNil())
	}

	facts, err := query.Order(ent.Desc(entityfact.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list facts: %w", err)
	}
	return facts, nil
}

// Canonical returns the canonical active fact of a fact_type for an entity:
// active, not deprecated, preferred rank first, then confidence, then recency.
func (s *FactService) Canonical(ctx context.Context, entityID, factType string) (*ent.EntityFact, error) {
	facts, err := s.client.EntityFact.Query().
		Where(
			entityfact.EntityIDEQ(entityID),
			entityfact.FactTypeEQ(factType),
			entityfact.StatusEQ(entityfact.StatusActive),
			entityfact.RankNEQ(entityfact.RankDeprecated),
			entityfact.DeletedAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query facts: %w", err)
	}
	if len(facts) == 0 {
		return nil, ErrNotFound
	}

	best := facts[0]
	for _, f := range facts[1:] {
		if factBeats(f, best) {
			best = f
		}
	}
	return best, nil
}

// Supersede replaces a fact's value by inserting a new fact and deprecating
// the old one. The old fact's value is never touched.
func (s *FactService) Supersede(ctx context.Context, factID string, req models.CreateFactRequest) (*ent.EntityFact, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	old, err := tx.EntityFact.Query().
		Where(entityfact.IDEQ(factID), entityfact.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load fact: %w", err)
	}
	if old.SupersededBy != nil {
		return nil, fmt.Errorf("%w: fact is already superseded", ErrConflict)
	}

	confidence := req.Confidence
	if confidence == 0 {
		confidence = old.Confidence
	}
	factType := req.FactType
	if factType == "" {
		factType = old.FactType
	}

	builder := tx.EntityFact.Create().
		SetID(uuid.New().String()).
		SetEntityID(old.EntityID).
		SetFactType(factType).
		SetStatus(entityfact.StatusActive).
		SetSource(entityfact.SourceManual).
		SetConfidence(confidence)
	if req.Source != "" {
		builder.SetSource(entityfact.Source(req.Source))
	}
	if req.Value != "" {
		builder.SetValue(req.Value)
	}
	if req.ValueDate != nil {
		builder.SetValueDate(*req.ValueDate)
	}
	if req.ValueJSON != nil {
		builder.SetValueJSON(req.ValueJSON)
	}
	if req.Category != "" {
		builder.SetCategory(req.Category)
	}

	replacement, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create replacement fact: %w", err)
	}

	if err := tx.EntityFact.UpdateOne(old).
		SetRank(entityfact.RankDeprecated).
		SetSupersededBy(replacement.ID).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to deprecate old fact: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit supersession: %w", err)
	}
	return replacement, nil
}

// SoftDelete marks a fact deleted.
func (s *FactService) SoftDelete(ctx context.Context, factID string) error {
	n, err := s.client.EntityFact.Update().
		Where(entityfact.IDEQ(factID), entityfact.DeletedAtIsNil()).
		SetDeletedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to soft delete fact: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// SupersessionChain walks superseded_by links from a fact to the newest
// replacement. The chain is acyclic by construction; the walk is bounded
// anyway so a corrupted link cannot loop forever.
func (s *FactService) SupersessionChain(ctx context.Context, factID string) ([]*ent.EntityFact, error) {
	const maxChain = 100

	chain := make([]*ent.EntityFact, 0, 4)
	currentID := factID
	for i := 0; i < maxChain; i++ {
		f, err := s.client.EntityFact.Get(ctx, currentID)
		if err != nil {
			if ent.IsNotFound(err) {
				break
			}
			return nil, fmt.Errorf("failed to walk supersession chain: %w", err)
		}
		chain = append(chain, f)
		if f.SupersededBy == nil {
			return chain, nil
		}
		currentID = *f.SupersededBy
	}
	return nil, fmt.Errorf("supersession chain from %s exceeds %d links", factID, maxChain)
}
