// Code generated by ent, DO NOT EDIT.

package topicalsegment

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the topicalsegment type in the database.
	Label = "topical_segment"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "segment_id"
	// FieldChatID holds the string denoting the chat_id field in the database.
	FieldChatID = "chat_id"
	// FieldInteractionID holds the string denoting the interaction_id field in the database.
	FieldInteractionID = "interaction_id"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldKeywords holds the string denoting the keywords field in the database.
	FieldKeywords = "keywords"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldParticipantIds holds the string denoting the participant_ids field in the database.
	FieldParticipantIds = "participant_ids"
	// FieldPrimaryParticipantID holds the string denoting the primary_participant_id field in the database.
	FieldPrimaryParticipantID = "primary_participant_id"
	// FieldMessageCount holds the string denoting the message_count field in the database.
	FieldMessageCount = "message_count"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldEndedAt holds the string denoting the ended_at field in the database.
	FieldEndedAt = "ended_at"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldExtractionStatus holds the string denoting the extraction_status field in the database.
	FieldExtractionStatus = "extraction_status"
	// FieldExtractionError holds the string denoting the extraction_error field in the database.
	FieldExtractionError = "extraction_error"
	// FieldExtractionAttempts holds the string denoting the extraction_attempts field in the database.
	FieldExtractionAttempts = "extraction_attempts"
	// FieldNextExtractionAt holds the string denoting the next_extraction_at field in the database.
	FieldNextExtractionAt = "next_extraction_at"
	// FieldBatchID holds the string denoting the batch_id field in the database.
	FieldBatchID = "batch_id"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldRelatedSegmentIds holds the string denoting the related_segment_ids field in the database.
	FieldRelatedSegmentIds = "related_segment_ids"
	// FieldExtractedItemIds holds the string denoting the extracted_item_ids field in the database.
	FieldExtractedItemIds = "extracted_item_ids"
	// FieldEmbedding holds the string denoting the embedding field in the database.
	FieldEmbedding = "embedding"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeInteraction holds the string denoting the interaction edge name in mutations.
	EdgeInteraction = "interaction"
	// EdgeMessages holds the string denoting the messages edge name in mutations.
	EdgeMessages = "messages"
	// InteractionFieldID holds the string denoting the ID field of the Interaction.
	InteractionFieldID = "interaction_id"
	// MessageFieldID holds the string denoting the ID field of the Message.
	MessageFieldID = "message_id"
	// Table holds the table name of the topicalsegment in the database.
	Table = "topical_segments"
	// InteractionTable is the table that holds the interaction relation/edge.
	InteractionTable = "topical_segments"
	// InteractionInverseTable is the table name for the Interaction entity.
	// It exists in this package in order to avoid circular dependency with the "interaction" package.
	InteractionInverseTable = "interactions"
	// InteractionColumn is the table column denoting the interaction relation/edge.
	InteractionColumn = "interaction_id"
	// MessagesTable is the table that holds the messages relation/edge. The primary key declared below.
	MessagesTable = "segment_messages"
	// MessagesInverseTable is the table name for the Message entity.
	// It exists in this package in order to avoid circular dependency with the "message" package.
	MessagesInverseTable = "messages"
)

// Columns holds all SQL columns for topicalsegment fields.
var Columns = []string{
	FieldID,
	FieldChatID,
	FieldInteractionID,
	FieldTopic,
	FieldKeywords,
	FieldSummary,
	FieldParticipantIds,
	FieldPrimaryParticipantID,
	FieldMessageCount,
	FieldStartedAt,
	FieldEndedAt,
	FieldStatus,
	FieldExtractionStatus,
	FieldExtractionError,
	FieldExtractionAttempts,
	FieldNextExtractionAt,
	FieldBatchID,
	FieldConfidence,
	FieldRelatedSegmentIds,
	FieldExtractedItemIds,
	FieldEmbedding,
	FieldCreatedAt,
	FieldUpdatedAt,
}

var (
	// MessagesPrimaryKey and MessagesColumn2 are the table columns denoting the
	// primary key for the messages relation (M2M).
	MessagesPrimaryKey = []string{"segment_id", "message_id"}
)

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultMessageCount holds the default value on creation for the "message_count" field.
	DefaultMessageCount int
	// DefaultExtractionAttempts holds the default value on creation for the "extraction_attempts" field.
	DefaultExtractionAttempts int
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusActive     Status = "active"
	StatusMerged     Status = "merged"
	StatusSuperseded Status = "superseded"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusMerged, StatusSuperseded:
		return nil
	default:
		return fmt.Errorf("topicalsegment: invalid enum value for status field: %q", s)
	}
}

// ExtractionStatus defines the type for the "extraction_status" enum field.
type ExtractionStatus string

// ExtractionStatusUnprocessed is the default value of the ExtractionStatus enum.
const DefaultExtractionStatus = ExtractionStatusUnprocessed

// ExtractionStatus values.
const (
	ExtractionStatusUnprocessed ExtractionStatus = "unprocessed"
	ExtractionStatusPending     ExtractionStatus = "pending"
	ExtractionStatusProcessed   ExtractionStatus = "processed"
	ExtractionStatusFailed      ExtractionStatus = "failed"
)

func (es ExtractionStatus) String() string {
	return string(es)
}

// ExtractionStatusValidator is a validator for the "extraction_status" field enum values. It is called by the builders before save.
func ExtractionStatusValidator(es ExtractionStatus) error {
	switch es {
	case ExtractionStatusUnprocessed, ExtractionStatusPending, ExtractionStatusProcessed, ExtractionStatusFailed:
		return nil
	default:
		return fmt.Errorf("topicalsegment: invalid enum value for extraction_status field: %q", es)
	}
}

// OrderOption defines the ordering options for the TopicalSegment queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByChatID orders the results by the chat_id field.
func ByChatID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChatID, opts...).ToFunc()
}

// ByInteractionID orders the results by the interaction_id field.
func ByInteractionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInteractionID, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// ByPrimaryParticipantID orders the results by the primary_participant_id field.
func ByPrimaryParticipantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrimaryParticipantID, opts...).ToFunc()
}

// ByMessageCount orders the results by the message_count field.
func ByMessageCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessageCount, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByEndedAt orders the results by the ended_at field.
func ByEndedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndedAt, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByExtractionStatus orders the results by the extraction_status field.
func ByExtractionStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractionStatus, opts...).ToFunc()
}

// ByExtractionError orders the results by the extraction_error field.
func ByExtractionError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractionError, opts...).ToFunc()
}

// ByExtractionAttempts orders the results by the extraction_attempts field.
func ByExtractionAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractionAttempts, opts...).ToFunc()
}

// ByNextExtractionAt orders the results by the next_extraction_at field.
func ByNextExtractionAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextExtractionAt, opts...).ToFunc()
}

// ByBatchID orders the results by the batch_id field.
func ByBatchID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBatchID, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByEmbedding orders the results by the embedding field.
func ByEmbedding(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmbedding, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByInteractionField orders the results by interaction field.
func ByInteractionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newInteractionStep(), sql.OrderByField(field, opts...))
	}
}

// ByMessagesCount orders the results by messages count.
func ByMessagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMessagesStep(), opts...)
	}
}

// ByMessages orders the results by messages terms.
func ByMessages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMessagesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newInteractionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(InteractionInverseTable, InteractionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, InteractionTable, InteractionColumn),
	)
}
func newMessagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MessagesInverseTable, MessageFieldID),
		sqlgraph.Edge(sqlgraph.M2M, false, MessagesTable, MessagesPrimaryKey...),
	)
}
