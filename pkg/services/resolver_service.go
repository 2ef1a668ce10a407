package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/agnivade/levenshtein"
	"github.com/google/uuid"
	"github.com/memograph/memograph/ent"
	"github.com/memograph/memograph/ent/entity"
	"github.com/memograph/memograph/ent/entityidentifier"
	"github.com/memograph/memograph/ent/pendingentityresolution"
	"github.com/memograph/memograph/pkg/models"
	"github.com/memograph/memograph/pkg/normalize"
)

// maxSampleMessages caps the sample list kept on a pending resolution row.
const maxSampleMessages = 10

// ResolutionStatus is the outcome of a Resolve call.
type ResolutionStatus string

// Resolution outcomes.
const (
	ResolutionResolved ResolutionStatus = "resolved"
	ResolutionPending  ResolutionStatus = "pending"
)

// ResolveResult is what Resolve returns to the caller.
type ResolveResult struct {
	Status   ResolutionStatus
	EntityID string
}

// ResolverService maps (identifier_type, identifier_value) pairs to durable
// entities. Unknown identifiers are queued as pending resolutions for the
// operator, with a display-name heuristic for safe auto-attachment and
// ranked suggestions to speed up manual review.
type ResolverService struct {
	client   *ent.Client
	disambig *DisambiguationService

	// autoAttachRatio is the minimum normalized-name similarity for the
	// display-name auto-attach. Similarity 1.0 is an exact match after
	// normalization.
	autoAttachRatio float64
}

// NewResolverService creates a new ResolverService.
func NewResolverService(client *ent.Client, disambig *DisambiguationService, autoAttachRatio float64) *ResolverService {
	if autoAttachRatio <= 0 || autoAttachRatio > 1 {
		autoAttachRatio = 0.9
	}
	return &ResolverService{
		client:          client,
		disambig:        disambig,
		autoAttachRatio: autoAttachRatio,
	}
}

// Resolve looks up an identifier. On a hit it returns the owning entity; on
// a miss it upserts a pending resolution row (appending the sample message)
// and attempts the display-name auto-attach heuristic.
func (s *ResolverService) Resolve(ctx context.Context, identifierType, identifierValue, displayName, sampleMessageID string) (*ResolveResult, error) {
	if identifierType == "" {
		return nil, NewValidationError("identifier_type", "required")
	}
	if identifierValue == "" {
		return nil, NewValidationError("identifier_value", "required")
	}

	ident, err := s.client.EntityIdentifier.Query().
		Where(
			entityidentifier.IdentifierTypeEQ(identifierType),
			entityidentifier.IdentifierValueEQ(identifierValue),
		).
		Only(ctx)
	if err == nil {
		return &ResolveResult{Status: ResolutionResolved, EntityID: ident.EntityID}, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to look up identifier: %w", err)
	}

	// Auto-attach: a display name whose normalized form is similar enough
	// to exactly one active entity resolves without operator review. Two or
	// more candidates above the bar means ambiguity, so the row stays
	// pending.
	if displayName != "" {
		match, err := s.autoAttachCandidate(ctx, displayName)
		if err != nil {
			return nil, err
		}
		if match != nil {
			return s.autoAttach(ctx, match, identifierType, identifierValue, displayName)
		}
	}

	rowID, hasSuggestions, err := s.upsertPending(ctx, identifierType, identifierValue, displayName, sampleMessageID)
	if err != nil {
		return nil, err
	}
	if rowID != "" && !hasSuggestions && displayName != "" {
		// Best effort: a failed suggestion refresh must not fail the ingest.
		if err := s.refreshSuggestions(ctx, rowID, displayName); err != nil {
			slog.Warn("Failed to refresh resolution suggestions",
				"resolution_id", rowID, "error", err)
		}
	}
	return &ResolveResult{Status: ResolutionPending}, nil
}

// autoAttachCandidate returns the single active entity whose normalized name
// is within autoAttachRatio of the display name, or nil when there is none
// or more than one. The trigram index prefilters candidates; the ratio check
// makes the precise call.
func (s *ResolverService) autoAttachCandidate(ctx context.Context, displayName string) (*ent.Entity, error) {
	core := normalize.Name(displayName)
	if core == "" {
		return nil, nil
	}

	rows, err := s.client.QueryContext(ctx, `
		SELECT id, name FROM entities
		WHERE deleted_at IS NULL AND name % $1
		LIMIT 20`, core)
	if err != nil {
		return nil, fmt.Errorf("failed to query auto-attach candidates: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var matchedID string
	matches := 0
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		normalized := normalize.Name(name)
		distance := levenshtein.ComputeDistance(core, normalized)
		if normalize.LevenshteinRatio(core, normalized, distance) >= s.autoAttachRatio {
			matchedID = id
			matches++
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read candidates: %w", err)
	}
	if matches != 1 {
		return nil, nil
	}

	e, err := s.client.Entity.Get(ctx, matchedID)
	if err != nil {
		return nil, fmt.Errorf("failed to load auto-attach entity: %w", err)
	}
	return e, nil
}

// refreshSuggestions scores disambiguation candidates for a pending row and
// stores the ranked list for the operator.
func (s *ResolverService) refreshSuggestions(ctx context.Context, rowID, displayName string) error {
	if s.disambig == nil {
		return nil
	}
	candidates, err := s.disambig.Score(ctx, displayName, models.DisambiguationContext{})
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		return nil
	}
	return s.SaveSuggestions(ctx, rowID, candidates)
}

// autoAttach creates the identifier, resolves any pending row, and marks the
// resolution auto.
func (s *ResolverService) autoAttach(ctx context.Context, e *ent.Entity, identifierType, identifierValue, displayName string) (*ResolveResult, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := tx.EntityIdentifier.Create().
		SetID(uuid.New().String()).
		SetEntityID(e.ID).
		SetIdentifierType(identifierType).
		SetIdentifierValue(identifierValue).
		Exec(ctx); err != nil {
		if ent.IsConstraintError(err) {
			// Raced with a concurrent resolve of the same identifier.
			return &ResolveResult{Status: ResolutionResolved, EntityID: e.ID}, nil
		}
		return nil, fmt.Errorf("failed to create identifier: %w", err)
	}

	if _, err := tx.PendingEntityResolution.Update().
		Where(
			pendingentityresolution.IdentifierTypeEQ(identifierType),
			pendingentityresolution.IdentifierValueEQ(identifierValue),
			pendingentityresolution.StatusEQ(pendingentityresolution.StatusPending),
		).
		SetStatus(pendingentityresolution.StatusResolved).
		SetResolution(pendingentityresolution.ResolutionAuto).
		SetResolvedEntityID(e.ID).
		SetResolvedAt(time.Now().UTC()).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to resolve pending row: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit auto-attach: %w", err)
	}

	slog.Info("Identifier auto-attached by display name",
		"entity_id", e.ID,
		"identifier_type", identifierType,
		"display_name", displayName)
	return &ResolveResult{Status: ResolutionResolved, EntityID: e.ID}, nil
}

// upsertPending creates or refreshes a pending resolution row, appending the
// sample message ID up to the cap. It returns the row ID and whether the row
// already carries suggestions.
func (s *ResolverService) upsertPending(ctx context.Context, identifierType, identifierValue, displayName, sampleMessageID string) (string, bool, error) {
	row, err := s.client.PendingEntityResolution.Query().
		Where(
			pendingentityresolution.IdentifierTypeEQ(identifierType),
			pendingentityresolution.IdentifierValueEQ(identifierValue),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		id := uuid.New().String()
		builder := s.client.PendingEntityResolution.Create().
			SetID(id).
			SetIdentifierType(identifierType).
			SetIdentifierValue(identifierValue)
		if displayName != "" {
			builder.SetDisplayName(displayName)
		}
		if sampleMessageID != "" {
			builder.SetSampleMessageIds([]string{sampleMessageID})
		}
		if err := builder.Exec(ctx); err != nil {
			if ent.IsConstraintError(err) {
				// Concurrent upsert of the same identifier; the row exists
				// now and the racing writer handles its suggestions.
				return "", true, nil
			}
			return "", false, fmt.Errorf("failed to create pending resolution: %w", err)
		}
		return id, false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to query pending resolution: %w", err)
	}

	update := s.client.PendingEntityResolution.UpdateOne(row)
	changed := false
	if displayName != "" && row.DisplayName == "" {
		update.SetDisplayName(displayName)
		changed = true
	}
	if sampleMessageID != "" && len(row.SampleMessageIds) < maxSampleMessages && !containsString(row.SampleMessageIds, sampleMessageID) {
		update.SetSampleMessageIds(append(row.SampleMessageIds, sampleMessageID))
		changed = true
	}
	if changed {
		if err := update.Exec(ctx); err != nil {
			return "", false, fmt.Errorf("failed to update pending resolution: %w", err)
		}
	}
	return row.ID, len(row.Suggestions) > 0, nil
}

// Attach resolves a pending row to an existing entity. Idempotent: attaching
// an already-resolved row to the same entity is a no-op.
func (s *ResolverService) Attach(ctx context.Context, resolutionID, entityID string) (*ent.PendingEntityResolution, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	row, err := tx.PendingEntityResolution.Get(ctx, resolutionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load pending resolution: %w", err)
	}

	if row.Status == pendingentityresolution.StatusResolved {
		if row.ResolvedEntityID != nil && *row.ResolvedEntityID == entityID {
			return row, nil
		}
		return nil, fmt.Errorf("%w: resolution already attached to a different entity", ErrConflict)
	}

	exists, err := tx.Entity.Query().
		Where(entity.IDEQ(entityID), entity.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check entity: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	if err := tx.EntityIdentifier.Create().
		SetID(uuid.New().String()).
		SetEntityID(entityID).
		SetIdentifierType(row.IdentifierType).
		SetIdentifierValue(row.IdentifierValue).
		Exec(ctx); err != nil && !ent.IsConstraintError(err) {
		return nil, fmt.Errorf("failed to create identifier: %w", err)
	}

	row, err = tx.PendingEntityResolution.UpdateOne(row).
		SetStatus(pendingentityresolution.StatusResolved).
		SetResolution(pendingentityresolution.ResolutionManual).
		SetResolvedEntityID(entityID).
		SetResolvedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark resolution resolved: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit attach: %w", err)
	}
	return row, nil
}

// CreateNew creates a fresh entity for a pending identifier and resolves the
// row to it.
func (s *ResolverService) CreateNew(ctx context.Context, resolutionID, name, entityType string) (*ent.Entity, error) {
	if name == "" {
		return nil, NewValidationError("name", "required")
	}
	if entityType == "" {
		entityType = entity.TypePerson.String()
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	row, err := tx.PendingEntityResolution.Get(ctx, resolutionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load pending resolution: %w", err)
	}
	if row.Status != pendingentityresolution.StatusPending {
		return nil, fmt.Errorf("%w: resolution is not pending", ErrConflict)
	}

	created, err := tx.Entity.Create().
		SetID(uuid.New().String()).
		SetType(entity.Type(entityType)).
		SetName(name).
		SetCreationSource(entity.CreationSourceExtracted).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create entity: %w", err)
	}

	if err := tx.EntityIdentifier.Create().
		SetID(uuid.New().String()).
		SetEntityID(created.ID).
		SetIdentifierType(row.IdentifierType).
		SetIdentifierValue(row.IdentifierValue).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to create identifier: %w", err)
	}

	if err := tx.PendingEntityResolution.UpdateOne(row).
		SetStatus(pendingentityresolution.StatusResolved).
		SetResolution(pendingentityresolution.ResolutionManual).
		SetResolvedEntityID(created.ID).
		SetResolvedAt(time.Now().UTC()).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to mark resolution resolved: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit create-new: %w", err)
	}
	return created, nil
}

// Reject marks a pending row merged with no target; the identifier stays
// unresolved and future sightings batch onto the same row.
func (s *ResolverService) Reject(ctx context.Context, resolutionID string) error {
	n, err := s.client.PendingEntityResolution.Update().
		Where(
			pendingentityresolution.IDEQ(resolutionID),
			pendingentityresolution.StatusEQ(pendingentityresolution.StatusPending),
		).
		SetStatus(pendingentityresolution.StatusMerged).
		SetResolvedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to reject resolution: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ListPending lists unresolved identifier rows, oldest first.
func (s *ResolverService) ListPending(ctx context.Context, limit, offset int) ([]*ent.PendingEntityResolution, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.client.PendingEntityResolution.Query().
		Where(pendingentityresolution.StatusEQ(pendingentityresolution.StatusPending)).
		Order(ent.Asc(pendingentityresolution.FieldFirstSeenAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending resolutions: %w", err)
	}
	return rows, nil
}

// SaveSuggestions stores ranked disambiguation candidates on a pending row.
func (s *ResolverService) SaveSuggestions(ctx context.Context, resolutionID string, candidates []models.ScoredCandidate) error {
	suggestions := make([]map[string]interface{}, 0, len(candidates))
	for _, c := range candidates {
		suggestions = append(suggestions, map[string]interface{}{
			"entity_id": c.EntityID,
			"name":      c.Name,
			"score":     c.Score,
			"reasons":   c.Reasons,
		})
	}
	err := s.client.PendingEntityResolution.UpdateOneID(resolutionID).
		SetSuggestions(suggestions).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to save suggestions: %w", err)
	}
	return nil
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
