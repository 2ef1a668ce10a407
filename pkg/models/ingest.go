package models

import "time"

// IdentifierRef is a platform identity reference inside an ingest envelope.
type IdentifierRef struct {
	Type        string `json:"type" binding:"required"`
	Value       string `json:"value" binding:"required"`
	DisplayName string `json:"displayName,omitempty"`
}

// IngestMessageRequest is the normalized message envelope pushed by source
// adapters. Ingest is idempotent by (source, sourceMessageId).
type IngestMessageRequest struct {
	Source                 string         `json:"source" binding:"required"`
	ChatID                 string         `json:"chatId" binding:"required"`
	TopicID                string         `json:"topicId,omitempty"`
	ChatType               string         `json:"chatType,omitempty"`
	SourceMessageID        string         `json:"sourceMessageId" binding:"required"`
	Timestamp              time.Time      `json:"timestamp" binding:"required"`
	SenderIdentifier       IdentifierRef  `json:"senderIdentifier" binding:"required"`
	RecipientIdentifier    *IdentifierRef `json:"recipientIdentifier,omitempty"`
	Content                string         `json:"content"`
	IsOutgoing             bool           `json:"isOutgoing,omitempty"`
	MediaType              string         `json:"mediaType,omitempty"`
	MediaURL               string         `json:"mediaUrl,omitempty"`
	ReplyToSourceMessageID string         `json:"replyToSourceMessageId,omitempty"`
}

// IngestResult reports what an ingest call did.
type IngestResult struct {
	MessageID        string `json:"message_id"`
	InteractionID    string `json:"interaction_id"`
	Duplicate        bool   `json:"duplicate"`
	InteractionNew   bool   `json:"interaction_new"`
	SenderResolution string `json:"sender_resolution"` // resolved | pending
	SenderEntityID   string `json:"sender_entity_id,omitempty"`
}

// InteractionFilters narrows interaction listings.
type InteractionFilters struct {
	Source  string
	ChatID  string
	Status  string
	Since   *time.Time
	Until   *time.Time
	Limit   int
	Offset  int
}

// DailyContext is the operator's daily digest: today's conversations, the
// commitments that need attention, and the review backlog.
type DailyContext struct {
	Date               string             `json:"date"`
	GeneratedAt        time.Time          `json:"generated_at"`
	Interactions       []DailyInteraction `json:"interactions,omitempty"`
	DueToday           []DailyCommitment  `json:"due_today,omitempty"`
	Overdue            []DailyCommitment  `json:"overdue,omitempty"`
	PendingApprovals   int                `json:"pending_approvals"`
	PendingResolutions int                `json:"pending_resolutions"`
}

// DailyInteraction is one conversation touched today.
type DailyInteraction struct {
	ID            string    `json:"id"`
	Source        string    `json:"source"`
	ChatID        string    `json:"chat_id"`
	Status        string    `json:"status"`
	LastMessageAt time.Time `json:"last_message_at"`
}

// DailyCommitment is one commitment surfaced in the digest.
type DailyCommitment struct {
	ID      string     `json:"id"`
	Type    string     `json:"type"`
	Title   string     `json:"title"`
	Status  string     `json:"status"`
	DueDate *time.Time `json:"due_date,omitempty"`
}
