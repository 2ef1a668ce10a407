package models

import "time"

// CreateActivityRequest creates a node in the activity tree.
type CreateActivityRequest struct {
	Name           string                 `json:"name" binding:"required"`
	ActivityType   string                 `json:"activity_type" binding:"required"`
	Status         string                 `json:"status,omitempty"`
	Priority       int                    `json:"priority,omitempty"`
	Context        string                 `json:"context,omitempty"`
	ParentID       string                 `json:"parent_id,omitempty"`
	OwnerEntityID  string                 `json:"owner_entity_id,omitempty"`
	ClientEntityID string                 `json:"client_entity_id,omitempty"`
	StartsAt       *time.Time             `json:"starts_at,omitempty"`
	DueAt          *time.Time             `json:"due_at,omitempty"`
	Tags           []string               `json:"tags,omitempty"`
	Metadata       map[string]interface{} `json:"metadata,omitempty"`
}

// UpdateActivityRequest updates a node's fields. Reparenting is a separate
// operation because it rewrites the subtree.
type UpdateActivityRequest struct {
	Name           *string    `json:"name,omitempty"`
	Status         *string    `json:"status,omitempty"`
	Priority       *int       `json:"priority,omitempty"`
	Context        *string    `json:"context,omitempty"`
	ClientEntityID *string    `json:"client_entity_id,omitempty"`
	StartsAt       *time.Time `json:"starts_at,omitempty"`
	DueAt          *time.Time `json:"due_at,omitempty"`
	Tags           []string   `json:"tags,omitempty"`
}

// ActivityFilters narrows activity listings.
type ActivityFilters struct {
	ActivityType   string
	Status         string
	ParentID       string
	OwnerEntityID  string
	ClientEntityID string
	Search         string
	IncludeDeleted bool
	Limit          int
	Offset         int
}

// CreateCommitmentRequest creates a commitment.
type CreateCommitmentRequest struct {
	Type            string     `json:"type" binding:"required"`
	Title           string     `json:"title" binding:"required"`
	Description     string     `json:"description,omitempty"`
	Status          string     `json:"status,omitempty"`
	FromEntityID    string     `json:"from_entity_id,omitempty"`
	ToEntityID      string     `json:"to_entity_id,omitempty"`
	ActivityID      string     `json:"activity_id,omitempty"`
	DueDate         *time.Time `json:"due_date,omitempty"`
	RecurrenceRule  string     `json:"recurrence_rule,omitempty"`
	Confidence      float64    `json:"confidence,omitempty"`
	SourceMessageID string     `json:"source_message_id,omitempty"`
}

// UpdateCommitmentRequest updates a commitment's fields.
type UpdateCommitmentRequest struct {
	Title          *string    `json:"title,omitempty"`
	Description    *string    `json:"description,omitempty"`
	Status         *string    `json:"status,omitempty"`
	ActivityID     *string    `json:"activity_id,omitempty"`
	DueDate        *time.Time `json:"due_date,omitempty"`
	RecurrenceRule *string    `json:"recurrence_rule,omitempty"`
}

// CommitmentFilters narrows commitment listings.
type CommitmentFilters struct {
	Type           string
	Status         string
	FromEntityID   string
	ToEntityID     string
	ActivityID     string
	DueBefore      *time.Time
	IncludeDeleted bool
	Limit          int
	Offset         int
}
