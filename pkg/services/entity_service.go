package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/memograph/memograph/ent"
	"github.com/memograph/memograph/ent/entity"
	"github.com/memograph/memograph/ent/entityfact"
	"github.com/memograph/memograph/ent/entityidentifier"
	"github.com/memograph/memograph/ent/interactionparticipant"
	"github.com/memograph/memograph/pkg/models"
)

// EntityService manages entities: people and organizations.
type EntityService struct {
	client *ent.Client
}

// NewEntityService creates a new EntityService.
func NewEntityService(client *ent.Client) *EntityService {
	return &EntityService{client: client}
}

// Create creates a new entity.
func (s *EntityService) Create(ctx context.Context, req models.CreateEntityRequest) (*ent.Entity, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if req.Type != entity.TypePerson.String() && req.Type != entity.TypeOrganization.String() {
		return nil, NewValidationError("type", "must be person or organization")
	}

	if req.OrganizationID != "" {
		org, err := s.client.Entity.Query().
			Where(entity.IDEQ(req.OrganizationID), entity.DeletedAtIsNil()).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, NewValidationError("organization_id", "organization does not exist")
			}
			return nil, fmt.Errorf("failed to check organization: %w", err)
		}
		if org.Type != entity.TypeOrganization {
			return nil, NewValidationError("organization_id", "referenced entity is not an organization")
		}
	}

	source := entity.CreationSourceManual
	if req.CreationSource != "" {
		source = entity.CreationSource(req.CreationSource)
	}

	builder := s.client.Entity.Create().
		SetID(uuid.New().String()).
		SetType(entity.Type(req.Type)).
		SetName(req.Name).
		SetIsOwner(req.IsOwner).
		SetIsBot(req.IsBot).
		SetCreationSource(source)
	if req.OrganizationID != "" {
		builder.SetOrganizationID(req.OrganizationID)
	}
	if req.Notes != "" {
		builder.SetNotes(req.Notes)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// The single-owner partial unique index.
			return nil, fmt.Errorf("%w: an owner entity already exists", ErrConflict)
		}
		return nil, fmt.Errorf("failed to create entity: %w", err)
	}
	return created, nil
}

// Get retrieves an entity by ID. Soft-deleted entities are not returned
// unless withDeleted is set.
func (s *EntityService) Get(ctx context.Context, id string, withDeleted bool) (*ent.Entity, error) {
	query := s.client.Entity.Query().Where(entity.IDEQ(id))
	if !withDeleted {
		query = query.Where(entity.DeletedAtIsNil())
	}

	e, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get entity: %w", err)
	}
	return e, nil
}

// Owner returns the single entity flagged is_owner, or ErrNotFound.
func (s *EntityService) Owner(ctx context.Context) (*ent.Entity, error) {
	e, err := s.client.Entity.Query().
		Where(entity.IsOwner(true), entity.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get owner entity: %w", err)
	}
	return e, nil
}

// List lists entities with filtering and pagination.
func (s *EntityService) List(ctx context.Context, filters models.EntityFilters) (*models.EntityListResponse, error) {
	query := s.client.Entity.Query()

	if filters.Type != "" {
		query = query.Where(entity.TypeEQ(entity.Type(filters.Type)))
	}
	if filters.Search != "" {
		query = query.Where(entity.NameContainsFold(filters.Search))
	}
	if !filters.IncludeDeleted {
		query = query.Where(entity.DeletedAtIsNil())
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count entities: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	entities, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(entity.FieldUpdatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list entities: %w", err)
	}

	return &models.EntityListResponse{
		Entities:   entities,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// Update edits an entity's mutable fields.
func (s *EntityService) Update(ctx context.Context, id string, req models.UpdateEntityRequest) (*ent.Entity, error) {
	update := s.client.Entity.UpdateOneID(id).
		Where(entity.DeletedAtIsNil())

	if req.Name != nil {
		if *req.Name == "" {
			return nil, NewValidationError("name", "cannot be empty")
		}
		update.SetName(*req.Name)
	}
	if req.Notes != nil {
		update.SetNotes(*req.Notes)
	}
	if req.IsBot != nil {
		update.SetIsBot(*req.IsBot)
	}
	if req.OrganizationID != nil {
		if *req.OrganizationID == "" {
			update.ClearOrganizationID()
		} else {
			org, err := s.Get(ctx, *req.OrganizationID, false)
			if err != nil {
				return nil, NewValidationError("organization_id", "organization does not exist")
			}
			if org.Type != entity.TypeOrganization {
				return nil, NewValidationError("organization_id", "referenced entity is not an organization")
			}
			update.SetOrganizationID(*req.OrganizationID)
		}
	}

	updated, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update entity: %w", err)
	}
	return updated, nil
}

// SoftDelete marks an entity deleted. Historical relations keep referencing
// it; default queries exclude it.
func (s *EntityService) SoftDelete(ctx context.Context, id string) error {
	n, err := s.client.Entity.Update().
		Where(entity.IDEQ(id), entity.DeletedAtIsNil()).
		SetDeletedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to soft delete entity: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Merge folds the source entity into the target: identifiers, facts and
// interaction participations move to the target, conflicting facts collapse
// per the rank > confidence > recency policy, and the source is soft-deleted.
func (s *EntityService) Merge(ctx context.Context, sourceID, targetID string) (*models.MergeResult, error) {
	if sourceID == targetID {
		return nil, NewValidationError("target_id", "cannot merge an entity into itself")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	source, err := tx.Entity.Query().
		Where(entity.IDEQ(sourceID), entity.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load source entity: %w", err)
	}
	if _, err := tx.Entity.Query().
		Where(entity.IDEQ(targetID), entity.DeletedAtIsNil()).
		Only(ctx); err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load target entity: %w", err)
	}

	result := &models.MergeResult{}

	// Reassign identifiers; on (type, value) collision the source row is
	// dropped; the pair already points at the target.
	identifiers, err := tx.EntityIdentifier.Query().
		Where(entityidentifier.EntityIDEQ(sourceID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load source identifiers: %w", err)
	}
	for _, ident := range identifiers {
		exists, err := tx.EntityIdentifier.Query().
			Where(
				entityidentifier.IdentifierTypeEQ(ident.IdentifierType),
				entityidentifier.IdentifierValueEQ(ident.IdentifierValue),
				entityidentifier.EntityIDEQ(targetID),
			).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to check identifier collision: %w", err)
		}
		if exists {
			slog.Info("Merge: dropping duplicate identifier",
				"source_entity", sourceID,
				"identifier_type", ident.IdentifierType,
				"identifier_value", ident.IdentifierValue)
			if err := tx.EntityIdentifier.DeleteOne(ident).Exec(ctx); err != nil {
				return nil, fmt.Errorf("failed to drop duplicate identifier: %w", err)
			}
			continue
		}
		if err := tx.EntityIdentifier.UpdateOne(ident).SetEntityID(targetID).Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to move identifier: %w", err)
		}
		result.IdentifiersMoved++
	}

	// Reassign facts, then collapse per-factType conflicts.
	moved, err := tx.EntityFact.Update().
		Where(entityfact.EntityIDEQ(sourceID)).
		SetEntityID(targetID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to move facts: %w", err)
	}
	result.FactsMoved = moved

	if err := collapseDuplicateFacts(ctx, tx, targetID); err != nil {
		return nil, err
	}

	// Reassign interaction participations.
	if _, err := tx.InteractionParticipant.Update().
		Where(interactionparticipant.EntityIDEQ(sourceID)).
		SetEntityID(targetID).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to move participations: %w", err)
	}

	if err := tx.Entity.UpdateOne(source).
		SetDeletedAt(time.Now().UTC()).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to soft delete source: %w", err)
	}
	result.SourceDeleted = true

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit merge: %w", err)
	}

	slog.Info("Entities merged",
		"source_id", sourceID,
		"target_id", targetID,
		"identifiers_moved", result.IdentifiersMoved,
		"facts_moved", result.FactsMoved)
	return result, nil
}

// collapseDuplicateFacts resolves active facts of the same fact_type with
// different values after a merge: the higher-ranked fact wins, ties break on
// confidence and then recency; losers become deprecated with superseded_by.
func collapseDuplicateFacts(ctx context.Context, tx *ent.Tx, entityID string) error {
	facts, err := tx.EntityFact.Query().
		Where(
			entityfact.EntityIDEQ(entityID),
			entityfact.StatusEQ(entityfact.StatusActive),
			entityfact.RankNEQ(entityfact.RankDeprecated),
			entityfact.DeletedAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load facts for collapse: %w", err)
	}

	byType := make(map[string][]*ent.EntityFact)
	for _, f := range facts {
		byType[f.FactType] = append(byType[f.FactType], f)
	}

	for _, group := range byType {
		if len(group) < 2 {
			continue
		}
		winner := group[0]
		for _, f := range group[1:] {
			if factBeats(f, winner) {
				winner = f
			}
		}
		for _, f := range group {
			if f.ID == winner.ID {
				continue
			}
			if err := tx.EntityFact.UpdateOne(f).
				SetRank(entityfact.RankDeprecated).
				SetSupersededBy(winner.ID).
				Exec(ctx); err != nil {
				return fmt.Errorf("failed to deprecate losing fact: %w", err)
			}
		}
	}
	return nil
}

// factBeats reports whether a should win over b: rank, then confidence,
// then more recent creation.
func factBeats(a, b *ent.EntityFact) bool {
	ra, rb := rankWeight(a.Rank), rankWeight(b.Rank)
	if ra != rb {
		return ra > rb
	}
	if a.Confidence != b.Confidence {
		return a.Confidence > b.Confidence
	}
	return a.CreatedAt.After(b.CreatedAt)
}

func rankWeight(r entityfact.Rank) int {
	switch r {
	case entityfact.RankPreferred:
		return 2
	case entityfact.RankNormal:
		return 1
	default:
		return 0
	}
}
