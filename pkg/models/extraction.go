package models

import "time"

// ExtractionResult is the strict JSON schema the extraction model returns
// per topical segment. Unknown fields are rejected at parse time.
type ExtractionResult struct {
	Facts       []ExtractedFact       `json:"facts"`
	Activities  []ExtractedActivity   `json:"activities"`
	Commitments []ExtractedCommitment `json:"commitments"`
}

// ExtractedFact is a candidate fact about a mentioned person/organization.
type ExtractedFact struct {
	SubjectName string  `json:"subject_name"`
	FactType    string  `json:"fact_type"`
	Category    string  `json:"category,omitempty"`
	Value       string  `json:"value"`
	ValueDate   string  `json:"value_date,omitempty"` // YYYY-MM-DD
	Confidence  float64 `json:"confidence"`
	SourceQuote string  `json:"source_quote,omitempty"`
}

// ExtractedActivity is a candidate project or task.
type ExtractedActivity struct {
	Name         string  `json:"name"`
	ActivityType string  `json:"activity_type"` // project | task
	Context      string  `json:"context,omitempty"`
	ParentName   string  `json:"parent_name,omitempty"`
	ClientName   string  `json:"client_name,omitempty"`
	DueDate      string  `json:"due_date,omitempty"`
	Confidence   float64 `json:"confidence"`
	SourceQuote  string  `json:"source_quote,omitempty"`
}

// ExtractedCommitment is a candidate promise/request between participants.
type ExtractedCommitment struct {
	Type        string  `json:"type"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	FromName    string  `json:"from_name,omitempty"`
	ToName      string  `json:"to_name,omitempty"`
	DueDate     string  `json:"due_date,omitempty"` // RFC3339 or YYYY-MM-DD
	Recurrence  string  `json:"recurrence,omitempty"`
	Confidence  float64 `json:"confidence"`
	SourceQuote string  `json:"source_quote,omitempty"`
}

// SegmentPlan is the segmentation model's output for one interaction:
// a topic description per proposed break.
type SegmentPlan struct {
	Breaks []SegmentBreak `json:"breaks"`
}

// SegmentBreak marks the first message index of a new topical segment.
type SegmentBreak struct {
	StartIndex int      `json:"start_index"`
	Topic      string   `json:"topic"`
	Keywords   []string `json:"keywords"`
	Summary    string   `json:"summary"`
	Confidence float64  `json:"confidence"`
}

// DisambiguationContext carries the conversational signals used to rank
// candidate entities for a free-text name.
type DisambiguationContext struct {
	ChatID               string
	MentionedWith        []string
	MessageTimestamp     *time.Time
	RecentInteractionIDs []string
}

// ScoredCandidate is one ranked disambiguation result.
type ScoredCandidate struct {
	EntityID string   `json:"entity_id"`
	Name     string   `json:"name"`
	Score    float64  `json:"score"`
	Reasons  []string `json:"reasons"`
}
