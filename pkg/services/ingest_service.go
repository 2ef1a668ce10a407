package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/memograph/memograph/ent"
	"github.com/memograph/memograph/ent/embeddingjob"
	"github.com/memograph/memograph/ent/interaction"
	"github.com/memograph/memograph/ent/interactionparticipant"
	"github.com/memograph/memograph/ent/message"
	"github.com/memograph/memograph/pkg/models"
	"github.com/memograph/memograph/pkg/queue"
)

// keyedMutex serializes work per string key. Ingest ordering is only
// guaranteed within a single (source, chat, topic) key.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (k *keyedMutex) lock(key string) func() {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[string]*sync.Mutex)
	}
	l, ok := k.locks[key]
	if !ok {
		l = &sync.Mutex{}
		k.locks[key] = l
	}
	k.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// IngestService assembles the inbound message stream into time-bounded
// interactions with gap-based cutover. The open-interaction state lives in
// the database; this struct only carries the per-key locks.
type IngestService struct {
	client     *ent.Client
	resolver   *ResolverService
	sessionGap time.Duration
	keys       keyedMutex
}

// NewIngestService creates a new IngestService.
func NewIngestService(client *ent.Client, resolver *ResolverService, sessionGap time.Duration) *IngestService {
	if sessionGap <= 0 {
		sessionGap = 4 * time.Hour
	}
	return &IngestService{
		client:     client,
		resolver:   resolver,
		sessionGap: sessionGap,
	}
}

// Ingest appends one normalized message to its interaction, creating or
// cutting over the interaction as the gap rule dictates. Idempotent by
// (interaction, source message ID).
func (s *IngestService) Ingest(ctx context.Context, req models.IngestMessageRequest) (*models.IngestResult, error) {
	if req.Source == "" {
		return nil, NewValidationError("source", "required")
	}
	if req.ChatID == "" {
		return nil, NewValidationError("chatId", "required")
	}
	if req.SourceMessageID == "" {
		return nil, NewValidationError("sourceMessageId", "required")
	}
	if req.Timestamp.IsZero() {
		return nil, NewValidationError("timestamp", "required")
	}

	unlock := s.keys.lock(req.Source + "|" + req.ChatID + "|" + req.TopicID)
	defer unlock()

	resolution, err := s.resolver.Resolve(ctx,
		req.SenderIdentifier.Type,
		req.SenderIdentifier.Value,
		req.SenderIdentifier.DisplayName,
		"")
	if err != nil {
		return nil, fmt.Errorf("failed to resolve sender: %w", err)
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	inter, interactionNew, reseg, err := s.routeInteraction(ctx, tx, req)
	if err != nil {
		return nil, err
	}

	existing, err := tx.Message.Query().
		Where(
			message.InteractionIDEQ(inter.ID),
			message.SourceMessageIDEQ(req.SourceMessageID),
		).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to check message idempotency: %w", err)
	}
	if existing != nil {
		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("failed to commit: %w", err)
		}
		return &models.IngestResult{
			MessageID:        existing.ID,
			InteractionID:    inter.ID,
			Duplicate:        true,
			SenderResolution: string(resolution.Status),
			SenderEntityID:   resolution.EntityID,
		}, nil
	}

	builder := tx.Message.Create().
		SetID(uuid.New().String()).
		SetInteractionID(inter.ID).
		SetSenderIdentifierType(req.SenderIdentifier.Type).
		SetSenderIdentifierValue(req.SenderIdentifier.Value).
		SetContent(req.Content).
		SetIsOutgoing(req.IsOutgoing).
		SetTimestamp(req.Timestamp).
		SetSourceMessageID(req.SourceMessageID).
		SetChatType(req.ChatType).
		SetTopicID(req.TopicID).
		SetExtractionStatus(message.ExtractionStatusUnprocessed)
	if resolution.EntityID != "" {
		builder.SetSenderEntityID(resolution.EntityID)
	}
	if req.MediaType != "" {
		builder.SetMediaType(req.MediaType)
	}
	if req.MediaURL != "" {
		builder.SetMediaURL(req.MediaURL)
	}
	if req.ReplyToSourceMessageID != "" {
		builder.SetReplyToMessageID(req.ReplyToSourceMessageID)
	}

	msg, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Raced duplicate under the partial unique index.
			return nil, fmt.Errorf("%w: message already ingested", ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	if msg.Content != "" {
		if err := queue.Enqueue(ctx, tx.EmbeddingJob, embeddingjob.TargetKindMessage, msg.ID); err != nil {
			return nil, fmt.Errorf("failed to enqueue message embedding: %w", err)
		}
	}

	role := participantRole(req, interactionNew)
	if err := s.upsertParticipant(ctx, tx, inter.ID, req.SenderIdentifier, resolution.EntityID, role); err != nil {
		return nil, err
	}
	if req.RecipientIdentifier != nil {
		if err := s.upsertParticipant(ctx, tx, inter.ID, *req.RecipientIdentifier, "", interactionparticipant.RoleRecipient); err != nil {
			return nil, err
		}
	}

	update := tx.Interaction.UpdateOne(inter)
	if req.Timestamp.After(inter.LastMessageAt) {
		update.SetLastMessageAt(req.Timestamp)
	}
	if reseg {
		update.SetNeedsResegmentation(true)
	}
	if err := update.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to update interaction: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit ingest: %w", err)
	}

	return &models.IngestResult{
		MessageID:        msg.ID,
		InteractionID:    inter.ID,
		InteractionNew:   interactionNew,
		SenderResolution: string(resolution.Status),
		SenderEntityID:   resolution.EntityID,
	}, nil
}

// routeInteraction picks the interaction a message belongs to: the open one
// when the gap allows, a fresh one on cutover, or the covering closed one
// for a late arrival. The third return value flags a closed interaction
// that needs re-segmentation.
func (s *IngestService) routeInteraction(ctx context.Context, tx *ent.Tx, req models.IngestMessageRequest) (*ent.Interaction, bool, bool, error) {
	open, err := tx.Interaction.Query().
		Where(
			interaction.SourceEQ(req.Source),
			interaction.ChatIDEQ(req.ChatID),
			interaction.TopicIDEQ(req.TopicID),
			interaction.StatusEQ(interaction.StatusActive),
		).
		Order(ent.Desc(interaction.FieldStartedAt)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, false, false, fmt.Errorf("failed to query open interaction: %w", err)
	}

	if open != nil {
		switch {
		case req.Timestamp.After(open.LastMessageAt) && req.Timestamp.Sub(open.LastMessageAt) > s.sessionGap:
			if err := tx.Interaction.UpdateOne(open).
				SetStatus(interaction.StatusCompleted).
				SetEndedAt(open.LastMessageAt).
				Exec(ctx); err != nil {
				return nil, false, false, fmt.Errorf("failed to close interaction: %w", err)
			}
			slog.Info("Interaction closed by gap cutover",
				"interaction_id", open.ID,
				"chat_id", req.ChatID,
				"gap", req.Timestamp.Sub(open.LastMessageAt).String())
			fresh, err := s.createInteraction(ctx, tx, req, interaction.StatusActive)
			return fresh, true, false, err

		case !req.Timestamp.Before(open.StartedAt):
			return open, false, false, nil
		}
		// Late arrival before the open interaction started: fall through to
		// the covering-interaction search.
	}

	prior, err := tx.Interaction.Query().
		Where(
			interaction.SourceEQ(req.Source),
			interaction.ChatIDEQ(req.ChatID),
			interaction.TopicIDEQ(req.TopicID),
			interaction.StartedAtLTE(req.Timestamp),
			interaction.StatusNEQ(interaction.StatusActive),
		).
		Order(ent.Desc(interaction.FieldStartedAt)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, false, false, fmt.Errorf("failed to query covering interaction: %w", err)
	}

	if prior != nil {
		covered := prior.EndedAt != nil && !req.Timestamp.After(*prior.EndedAt)
		withinGap := req.Timestamp.Sub(prior.LastMessageAt) <= s.sessionGap
		if covered || withinGap || open != nil {
			// A late arrival that straddles a closed boundary stays in the
			// earlier interaction; segmentation redoes the cut.
			return prior, false, true, nil
		}
	}

	if open == nil {
		fresh, err := s.createInteraction(ctx, tx, req, interaction.StatusActive)
		return fresh, true, false, err
	}

	// Nothing precedes the open interaction: record the stray history as its
	// own already-completed interaction.
	fresh, err := s.createInteraction(ctx, tx, req, interaction.StatusCompleted)
	return fresh, true, false, err
}

func (s *IngestService) createInteraction(ctx context.Context, tx *ent.Tx, req models.IngestMessageRequest, status interaction.Status) (*ent.Interaction, error) {
	interactionType := interaction.TypeTelegramSession
	switch req.Source {
	case "phone":
		interactionType = interaction.TypePhoneCall
	case "meet", "zoom":
		interactionType = interaction.TypeVideoMeeting
	}

	builder := tx.Interaction.Create().
		SetID(uuid.New().String()).
		SetType(interactionType).
		SetSource(req.Source).
		SetChatID(req.ChatID).
		SetTopicID(req.TopicID).
		SetStatus(status).
		SetStartedAt(req.Timestamp).
		SetLastMessageAt(req.Timestamp)
	if status != interaction.StatusActive {
		builder.SetEndedAt(req.Timestamp)
	}
	if req.ChatType != "" {
		builder.SetSourceMetadata(map[string]interface{}{"chat_type": req.ChatType})
	}

	inter, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create interaction: %w", err)
	}
	return inter, nil
}

func participantRole(req models.IngestMessageRequest, interactionNew bool) interactionparticipant.Role {
	if req.IsOutgoing {
		return interactionparticipant.RoleSelf
	}
	if interactionNew {
		return interactionparticipant.RoleInitiator
	}
	return interactionparticipant.RoleParticipant
}

func (s *IngestService) upsertParticipant(ctx context.Context, tx *ent.Tx, interactionID string, ident models.IdentifierRef, entityID string, role interactionparticipant.Role) error {
	builder := tx.InteractionParticipant.Create().
		SetID(uuid.New().String()).
		SetInteractionID(interactionID).
		SetIdentifierType(ident.Type).
		SetIdentifierValue(ident.Value).
		SetRole(role)
	if ident.DisplayName != "" {
		builder.SetDisplayName(ident.DisplayName)
	}
	if entityID != "" {
		builder.SetEntityID(entityID)
	}
	if err := builder.Exec(ctx); err != nil {
		if ent.IsConstraintError(err) {
			// Participant row already present for this identifier.
			return nil
		}
		return fmt.Errorf("failed to upsert participant: %w", err)
	}
	return nil
}

// CloseIdle completes active interactions whose last message is older than
// the session gap. Called by the pipeline runner so quiet chats still close.
func (s *IngestService) CloseIdle(ctx context.Context) (int, error) {
	cutoff := time.Now().UTC().Add(-s.sessionGap)

	stale, err := s.client.Interaction.Query().
		Where(
			interaction.StatusEQ(interaction.StatusActive),
			interaction.LastMessageAtLT(cutoff),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query idle interactions: %w", err)
	}

	closed := 0
	for _, inter := range stale {
		unlock := s.keys.lock(inter.Source + "|" + inter.ChatID + "|" + inter.TopicID)
		n, err := s.client.Interaction.Update().
			Where(
				interaction.IDEQ(inter.ID),
				interaction.StatusEQ(interaction.StatusActive),
				interaction.LastMessageAtLT(cutoff),
			).
			SetStatus(interaction.StatusCompleted).
			SetEndedAt(inter.LastMessageAt).
			Save(ctx)
		unlock()
		if err != nil {
			return closed, fmt.Errorf("failed to close idle interaction %s: %w", inter.ID, err)
		}
		closed += n
	}
	if closed > 0 {
		slog.Info("Closed idle interactions", "count", closed)
	}
	return closed, nil
}

// GetInteraction returns an interaction with its participants.
func (s *IngestService) GetInteraction(ctx context.Context, id string) (*ent.Interaction, error) {
	inter, err := s.client.Interaction.Query().
		Where(interaction.IDEQ(id)).
		WithParticipants().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get interaction: %w", err)
	}
	return inter, nil
}

// ListInteractions lists interactions newest first.
func (s *IngestService) ListInteractions(ctx context.Context, filters models.InteractionFilters) ([]*ent.Interaction, error) {
	query := s.client.Interaction.Query()
	if filters.Source != "" {
		query = query.Where(interaction.SourceEQ(filters.Source))
	}
	if filters.ChatID != "" {
		query = query.Where(interaction.ChatIDEQ(filters.ChatID))
	}
	if filters.Status != "" {
		query = query.Where(interaction.StatusEQ(interaction.Status(filters.Status)))
	}
	if filters.Since != nil {
		query = query.Where(interaction.StartedAtGTE(*filters.Since))
	}
	if filters.Until != nil {
		query = query.Where(interaction.StartedAtLTE(*filters.Until))
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 50
	}
	interactions, err := query.
		Order(ent.Desc(interaction.FieldStartedAt)).
		Limit(limit).
		Offset(filters.Offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list interactions: %w", err)
	}
	return interactions, nil
}

// ListMessages returns an interaction's messages ordered by timestamp.
func (s *IngestService) ListMessages(ctx context.Context, interactionID string) ([]*ent.Message, error) {
	msgs, err := s.client.Message.Query().
		Where(message.InteractionIDEQ(interactionID)).
		Order(ent.Asc(message.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return msgs, nil
}
