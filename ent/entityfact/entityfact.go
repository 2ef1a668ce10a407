// Code generated by ent, DO NOT EDIT.

package entityfact

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the entityfact type in the database.
	Label = "entity_fact"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "fact_id"
	// FieldEntityID holds the string denoting the entity_id field in the database.
	FieldEntityID = "entity_id"
	// FieldFactType holds the string denoting the fact_type field in the database.
	FieldFactType = "fact_type"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldValue holds the string denoting the value field in the database.
	FieldValue = "value"
	// FieldValueDate holds the string denoting the value_date field in the database.
	FieldValueDate = "value_date"
	// FieldValueJSON holds the string denoting the value_json field in the database.
	FieldValueJSON = "value_json"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldSourceInteractionID holds the string denoting the source_interaction_id field in the database.
	FieldSourceInteractionID = "source_interaction_id"
	// FieldSourceMessageID holds the string denoting the source_message_id field in the database.
	FieldSourceMessageID = "source_message_id"
	// FieldValidFrom holds the string denoting the valid_from field in the database.
	FieldValidFrom = "valid_from"
	// FieldValidUntil holds the string denoting the valid_until field in the database.
	FieldValidUntil = "valid_until"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldRank holds the string denoting the rank field in the database.
	FieldRank = "rank"
	// FieldSupersededBy holds the string denoting the superseded_by field in the database.
	FieldSupersededBy = "superseded_by"
	// FieldNeedsReview holds the string denoting the needs_review field in the database.
	FieldNeedsReview = "needs_review"
	// FieldReviewReason holds the string denoting the review_reason field in the database.
	FieldReviewReason = "review_reason"
	// FieldConfirmationCount holds the string denoting the confirmation_count field in the database.
	FieldConfirmationCount = "confirmation_count"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldEmbedding holds the string denoting the embedding field in the database.
	FieldEmbedding = "embedding"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// EdgeEntity holds the string denoting the entity edge name in mutations.
	EdgeEntity = "entity"
	// EntityFieldID holds the string denoting the ID field of the Entity.
	EntityFieldID = "entity_id"
	// Table holds the table name of the entityfact in the database.
	Table = "entity_facts"
	// EntityTable is the table that holds the entity relation/edge.
	EntityTable = "entity_facts"
	// EntityInverseTable is the table name for the Entity entity.
	// It exists in this package in order to avoid circular dependency with the "entity" package.
	EntityInverseTable = "entities"
	// EntityColumn is the table column denoting the entity relation/edge.
	EntityColumn = "entity_id"
)

// Columns holds all SQL columns for entityfact fields.
var Columns = []string{
	FieldID,
	FieldEntityID,
	FieldFactType,
	FieldCategory,
	FieldValue,
	FieldValueDate,
	FieldValueJSON,
	FieldSource,
	FieldConfidence,
	FieldSourceInteractionID,
	FieldSourceMessageID,
	FieldValidFrom,
	FieldValidUntil,
	FieldStatus,
	FieldRank,
	FieldSupersededBy,
	FieldNeedsReview,
	FieldReviewReason,
	FieldConfirmationCount,
	FieldMetadata,
	FieldEmbedding,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldDeletedAt,
}

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
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence float64
	// ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	ConfidenceValidator func(float64) error
	// DefaultNeedsReview holds the default value on creation for the "needs_review" field.
	DefaultNeedsReview bool
	// DefaultConfirmationCount holds the default value on creation for the "confirmation_count" field.
	DefaultConfirmationCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Source defines the type for the "source" enum field.
type Source string

// SourceManual is the default value of the Source enum.
const DefaultSource = SourceManual

// Source values.
const (
	SourceManual    Source = "manual"
	SourceExtracted Source = "extracted"
	SourceImported  Source = "imported"
	SourceInferred  Source = "inferred"
)

func (s Source) String() string {
	return string(s)
}

// SourceValidator is a validator for the "source" field enum values. It is called by the builders before save.
func SourceValidator(s Source) error {
	switch s {
	case SourceManual, SourceExtracted, SourceImported, SourceInferred:
		return nil
	default:
		return fmt.Errorf("entityfact: invalid enum value for source field: %q", s)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusDraft is the default value of the Status enum.
const DefaultStatus = StatusDraft

// Status values.
const (
	StatusDraft  Status = "draft"
	StatusActive Status = "active"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusDraft, StatusActive:
		return nil
	default:
		return fmt.Errorf("entityfact: invalid enum value for status field: %q", s)
	}
}

// Rank defines the type for the "rank" enum field.
type Rank string

// RankNormal is the default value of the Rank enum.
const DefaultRank = RankNormal

// Rank values.
const (
	RankPreferred  Rank = "preferred"
	RankNormal     Rank = "normal"
	RankDeprecated Rank = "deprecated"
)

func (r Rank) String() string {
	return string(r)
}

// RankValidator is a validator for the "rank" field enum values. It is called by the builders before save.
func RankValidator(r Rank) error {
	switch r {
	case RankPreferred, RankNormal, RankDeprecated:
		return nil
	default:
		return fmt.Errorf("entityfact: invalid enum value for rank field: %q", r)
	}
}

// OrderOption defines the ordering options for the EntityFact queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEntityID orders the results by the entity_id field.
func ByEntityID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntityID, opts...).ToFunc()
}

// ByFactType orders the results by the fact_type field.
func ByFactType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFactType, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByValue orders the results by the value field.
func ByValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValue, opts...).ToFunc()
}

// ByValueDate orders the results by the value_date field.
func ByValueDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValueDate, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// BySourceInteractionID orders the results by the source_interaction_id field.
func BySourceInteractionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceInteractionID, opts...).ToFunc()
}

// BySourceMessageID orders the results by the source_message_id field.
func BySourceMessageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceMessageID, opts...).ToFunc()
}

// ByValidFrom orders the results by the valid_from field.
func ByValidFrom(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidFrom, opts...).ToFunc()
}

// ByValidUntil orders the results by the valid_until field.
func ByValidUntil(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidUntil, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByRank orders the results by the rank field.
func ByRank(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRank, opts...).ToFunc()
}

// BySupersededBy orders the results by the superseded_by field.
func BySupersededBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSupersededBy, opts...).ToFunc()
}

// ByNeedsReview orders the results by the needs_review field.
func ByNeedsReview(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNeedsReview, opts...).ToFunc()
}

// ByReviewReason orders the results by the review_reason field.
func ByReviewReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewReason, opts...).ToFunc()
}

// ByConfirmationCount orders the results by the confirmation_count field.
func ByConfirmationCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfirmationCount, opts...).ToFunc()
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

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByEntityField orders the results by entity field.
func ByEntityField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEntityStep(), sql.OrderByField(field, opts...))
	}
}
func newEntityStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EntityInverseTable, EntityFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, EntityTable, EntityColumn),
	)
}
