// Code generated by ent, DO NOT EDIT.

package message

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the message type in the database.
	Label = "message"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "message_id"
	// FieldInteractionID holds the string denoting the interaction_id field in the database.
	FieldInteractionID = "interaction_id"
	// FieldSenderEntityID holds the string denoting the sender_entity_id field in the database.
	FieldSenderEntityID = "sender_entity_id"
	// FieldRecipientEntityID holds the string denoting the recipient_entity_id field in the database.
	FieldRecipientEntityID = "recipient_entity_id"
	// FieldSenderIdentifierType holds the string denoting the sender_identifier_type field in the database.
	FieldSenderIdentifierType = "sender_identifier_type"
	// FieldSenderIdentifierValue holds the string denoting the sender_identifier_value field in the database.
	FieldSenderIdentifierValue = "sender_identifier_value"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldIsOutgoing holds the string denoting the is_outgoing field in the database.
	FieldIsOutgoing = "is_outgoing"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSourceMessageID holds the string denoting the source_message_id field in the database.
	FieldSourceMessageID = "source_message_id"
	// FieldReplyToMessageID holds the string denoting the reply_to_message_id field in the database.
	FieldReplyToMessageID = "reply_to_message_id"
	// FieldMediaType holds the string denoting the media_type field in the database.
	FieldMediaType = "media_type"
	// FieldMediaURL holds the string denoting the media_url field in the database.
	FieldMediaURL = "media_url"
	// FieldChatType holds the string denoting the chat_type field in the database.
	FieldChatType = "chat_type"
	// FieldTopicID holds the string denoting the topic_id field in the database.
	FieldTopicID = "topic_id"
	// FieldExtractionStatus holds the string denoting the extraction_status field in the database.
	FieldExtractionStatus = "extraction_status"
	// FieldEmbedding holds the string denoting the embedding field in the database.
	FieldEmbedding = "embedding"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeInteraction holds the string denoting the interaction edge name in mutations.
	EdgeInteraction = "interaction"
	// EdgeSegments holds the string denoting the segments edge name in mutations.
	EdgeSegments = "segments"
	// InteractionFieldID holds the string denoting the ID field of the Interaction.
	InteractionFieldID = "interaction_id"
	// TopicalSegmentFieldID holds the string denoting the ID field of the TopicalSegment.
	TopicalSegmentFieldID = "segment_id"
	// Table holds the table name of the message in the database.
	Table = "messages"
	// InteractionTable is the table that holds the interaction relation/edge.
	InteractionTable = "messages"
	// InteractionInverseTable is the table name for the Interaction entity.
	// It exists in this package in order to avoid circular dependency with the "interaction" package.
	InteractionInverseTable = "interactions"
	// InteractionColumn is the table column denoting the interaction relation/edge.
	InteractionColumn = "interaction_id"
	// SegmentsTable is the table that holds the segments relation/edge. The primary key declared below.
	SegmentsTable = "segment_messages"
	// SegmentsInverseTable is the table name for the TopicalSegment entity.
	// It exists in this package in order to avoid circular dependency with the "topicalsegment" package.
	SegmentsInverseTable = "topical_segments"
)

// Columns holds all SQL columns for message fields.
var Columns = []string{
	FieldID,
	FieldInteractionID,
	FieldSenderEntityID,
	FieldRecipientEntityID,
	FieldSenderIdentifierType,
	FieldSenderIdentifierValue,
	FieldContent,
	FieldIsOutgoing,
	FieldTimestamp,
	FieldSourceMessageID,
	FieldReplyToMessageID,
	FieldMediaType,
	FieldMediaURL,
	FieldChatType,
	FieldTopicID,
	FieldExtractionStatus,
	FieldEmbedding,
	FieldCreatedAt,
}

var (
	// SegmentsPrimaryKey and SegmentsColumn2 are the table columns denoting the
	// primary key for the segments relation (M2M).
	SegmentsPrimaryKey = []string{"segment_id", "message_id"}
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
	// DefaultIsOutgoing holds the default value on creation for the "is_outgoing" field.
	DefaultIsOutgoing bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

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
		return fmt.Errorf("message: invalid enum value for extraction_status field: %q", es)
	}
}

// OrderOption defines the ordering options for the Message queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByInteractionID orders the results by the interaction_id field.
func ByInteractionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInteractionID, opts...).ToFunc()
}

// BySenderEntityID orders the results by the sender_entity_id field.
func BySenderEntityID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSenderEntityID, opts...).ToFunc()
}

// ByRecipientEntityID orders the results by the recipient_entity_id field.
func ByRecipientEntityID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecipientEntityID, opts...).ToFunc()
}

// BySenderIdentifierType orders the results by the sender_identifier_type field.
func BySenderIdentifierType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSenderIdentifierType, opts...).ToFunc()
}

// BySenderIdentifierValue orders the results by the sender_identifier_value field.
func BySenderIdentifierValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSenderIdentifierValue, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByIsOutgoing orders the results by the is_outgoing field.
func ByIsOutgoing(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsOutgoing, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySourceMessageID orders the results by the source_message_id field.
func BySourceMessageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceMessageID, opts...).ToFunc()
}

// ByReplyToMessageID orders the results by the reply_to_message_id field.
func ByReplyToMessageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReplyToMessageID, opts...).ToFunc()
}

// ByMediaType orders the results by the media_type field.
func ByMediaType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMediaType, opts...).ToFunc()
}

// ByMediaURL orders the results by the media_url field.
func ByMediaURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMediaURL, opts...).ToFunc()
}

// ByChatType orders the results by the chat_type field.
func ByChatType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChatType, opts...).ToFunc()
}

// ByTopicID orders the results by the topic_id field.
func ByTopicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopicID, opts...).ToFunc()
}

// ByExtractionStatus orders the results by the extraction_status field.
func ByExtractionStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractionStatus, opts...).ToFunc()
}

// ByEmbedding orders the results by the embedding field.
func ByEmbedding(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmbedding, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByInteractionField orders the results by interaction field.
func ByInteractionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newInteractionStep(), sql.OrderByField(field, opts...))
	}
}

// BySegmentsCount orders the results by segments count.
func BySegmentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSegmentsStep(), opts...)
	}
}

// BySegments orders the results by segments terms.
func BySegments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSegmentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newInteractionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(InteractionInverseTable, InteractionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, InteractionTable, InteractionColumn),
	)
}
func newSegmentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SegmentsInverseTable, TopicalSegmentFieldID),
		sqlgraph.Edge(sqlgraph.M2M, true, SegmentsTable, SegmentsPrimaryKey...),
	)
}
