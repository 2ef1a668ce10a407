// Package models contains request/response models and business domain types.
package models

import (
	"time"

	"github.com/memograph/memograph/ent"
)

// CreateEntityRequest contains fields for creating an entity.
type CreateEntityRequest struct {
	Type           string `json:"type" binding:"required,oneof=person organization"`
	Name           string `json:"name" binding:"required"`
	OrganizationID string `json:"organization_id,omitempty"`
	Notes          string `json:"notes,omitempty"`
	IsOwner        bool   `json:"is_owner,omitempty"`
	IsBot          bool   `json:"is_bot,omitempty"`
	CreationSource string `json:"creation_source,omitempty"`
}

// UpdateEntityRequest contains the editable entity fields. Nil means "leave
// unchanged".
type UpdateEntityRequest struct {
	Name           *string `json:"name,omitempty"`
	OrganizationID *string `json:"organization_id,omitempty"`
	Notes          *string `json:"notes,omitempty"`
	IsBot          *bool   `json:"is_bot,omitempty"`
}

// EntityFilters narrows entity listings.
type EntityFilters struct {
	Type           string
	Search         string
	IncludeDeleted bool
	Limit          int
	Offset         int
}

// EntityListResponse is a paginated entity listing.
type EntityListResponse struct {
	Entities   []*ent.Entity `json:"entities"`
	TotalCount int           `json:"total_count"`
	Limit      int           `json:"limit"`
	Offset     int           `json:"offset"`
}

// MergeResult reports what a merge moved from source to target.
type MergeResult struct {
	IdentifiersMoved int  `json:"identifiers_moved"`
	FactsMoved       int  `json:"facts_moved"`
	SourceDeleted    bool `json:"source_deleted"`
}

// CreateFactRequest contains fields for recording a fact about an entity.
type CreateFactRequest struct {
	FactType            string                 `json:"fact_type" binding:"required"`
	Category            string                 `json:"category,omitempty"`
	Value               string                 `json:"value,omitempty"`
	ValueDate           *time.Time             `json:"value_date,omitempty"`
	ValueJSON           map[string]interface{} `json:"value_json,omitempty"`
	Source              string                 `json:"source,omitempty"`
	Confidence          float64                `json:"confidence,omitempty"`
	SourceInteractionID string                 `json:"source_interaction_id,omitempty"`
	SourceMessageID     string                 `json:"source_message_id,omitempty"`
	ValidFrom           *time.Time             `json:"valid_from,omitempty"`
	ValidUntil          *time.Time             `json:"valid_until,omitempty"`
	Status              string                 `json:"status,omitempty"`
}

// FactFilters narrows fact listings for an entity.
type FactFilters struct {
	FactType       string
	Status         string
	IncludeDeleted bool
}
