// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/memograph/memograph/ent/interaction"
	"github.com/memograph/memograph/ent/message"
	"github.com/memograph/memograph/ent/predicate"
	"github.com/memograph/memograph/ent/topicalsegment"
	pgvector "github.com/pgvector/pgvector-go"
)

// TopicalSegmentUpdate is the builder for updating TopicalSegment entities.
type TopicalSegmentUpdate struct {
	config
	hooks    []Hook
	mutation *TopicalSegmentMutation
}

// Where appends a list predicates to the TopicalSegmentUpdate builder.
func (_u *TopicalSegmentUpdate) Where(ps ...predicate.TopicalSegment) *TopicalSegmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetChatID sets the "chat_id" field.
func (_u *TopicalSegmentUpdate) SetChatID(v string) *TopicalSegmentUpdate {
	_u.mutation.SetChatID(v)
	return _u
}

// SetNillableChatID sets the "chat_id" field if the given value is not nil.
func (_u *TopicalSegmentUpdate) SetNillableChatID(v *string) *TopicalSegmentUpdate {
	if v != nil {
		_u.SetChatID(*v)
	}
	return _u
}

// SetInteractionID sets the "interaction_id" field.
func (_u *TopicalSegmentUpdate) SetInteractionID(v string) *TopicalSegmentUpdate {
	_u.mutation.SetInteractionID(v)
	return _u
}

// SetNillableInteractionID sets the "interaction_id" field if the given value is not nil.
func (_u *TopicalSegmentUpdate) SetNillableInteractionID(v *string) *TopicalSegmentUpdate {
	if v != nil {
		_u.SetInteractionID(*v)
	}
	return _u
}

// ClearInteractionID clears the value of the "interaction_id" field.
func (_u *TopicalSegmentUpdate) ClearInteractionID() *TopicalSegmentUpdate {
	_u.mutation.ClearInteractionID()
	return _u
}

// SetTopic sets the "topic" field.
func (_u *TopicalSegmentUpdate) SetTopic(v string) *TopicalSegmentUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *TopicalSegmentUpdate) SetNillableTopic(v *string) *TopicalSegmentUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetKeywords sets the "keywords" field.
func (_u *TopicalSegmentUpdate) SetKeywords(v []string) *TopicalSegmentUpdate {
	_u.mutation.SetKeywords(v)
	return _u
}

// AppendKeywords appends value to the "keywords" field.
func (_u *TopicalSegmentUpdate) AppendKeywords(v []string) *TopicalSegmentUpdate {
	_u.mutation.AppendKeywords(v)
	return _u
}

// ClearKeywords clears the value of the "keywords" field.
func (_u *TopicalSegmentUpdate) ClearKeywords() *TopicalSegmentUpdate {
	_u.mutation.ClearKeywords()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *TopicalSegmentUpdate) SetSummary(v string) *TopicalSegmentUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *TopicalSegmentUpdate) SetNillableSummary(v *string) *TopicalSegmentUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *TopicalSegmentUpdate) ClearSummary() *TopicalSegmentUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetParticipantIds sets the "participant_ids" field.
func (_u *TopicalSegmentUpdate) SetParticipantIds(v []string) *TopicalSegmentUpdate {
	_u.mutation.SetParticipantIds(v)
	return _u
}

// AppendParticipantIds appends value to the "participant_ids" field.
func (_u *TopicalSegmentUpdate) AppendParticipantIds(v []string) *TopicalSegmentUpdate {
	_u.mutation.AppendParticipantIds(v)
	return _u
}

// ClearParticipantIds clears the value of the "participant_ids" field.
func (_u *TopicalSegmentUpdate) ClearParticipantIds() *TopicalSegmentUpdate {
	_u.mutation.ClearParticipantIds()
	return _u
}

// SetPrimaryParticipantID sets the "primary_participant_id" field.
func (_u *TopicalSegmentUpdate) SetPrimaryParticipantID(v string) *TopicalSegmentUpdate {
	_u.mutation.SetPrimaryParticipantID(v)
	return _u
}

// SetNillablePrimaryParticipantID sets the "primary_participant_id" field if the given value is not nil.
func (_u *TopicalSegmentUpdate) SetNillablePrimaryParticipantID(v *string) *TopicalSegmentUpdate {
	if v != nil {
		_u.SetPrimaryParticipantID(*v)
	}
	return _u
}

// ClearPrimaryParticipantID clears the value of the "primary_participant_id" field.
func (_u *TopicalSegmentUpdate) ClearPrimaryParticipantID() *TopicalSegmentUpdate {
	_u.mutation.ClearPrimaryParticipantID()
	return _u
}

// SetMessageCount sets the "message_count" field.
func (_u *TopicalSegmentUpdate) SetMessageCount(v int) *TopicalSegmentUpdate {
	_u.mutation.ResetMessageCount()
	_u.mutation.SetMessageCount(v)
	return _u
}

// SetNillableMessageCount sets the "message_count" field if the given value is not nil.
func (_u *TopicalSegmentUpdate) SetNillableMessageCount(v *int) *TopicalSegmentUpdate {
	if v != nil {
		_u.SetMessageCount(*v)
	}
	return _u
}

// AddMessageCount adds value to the "message_count" field.
func (_u *TopicalSegmentUpdate) AddMessageCount(v int) *TopicalSegmentUpdate {
	_u.mutation.AddMessageCount(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TopicalSegmentUpdate) SetStartedAt(v time.Time) *TopicalSegmentUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TopicalSegmentUpdate) SetNillableStartedAt(v *time.Time) *TopicalSegmentUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *TopicalSegmentUpdate) SetEndedAt(v time.Time) *TopicalSegmentUpdate {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *TopicalSegmentUpdate) SetNillableEndedAt(v *time.Time) *TopicalSegmentUpdate {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TopicalSegmentUpdate) SetStatus(v topicalsegment.Status) *TopicalSegmentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TopicalSegmentUpdate) SetNillableStatus(v *topicalsegment.Status) *TopicalSegmentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExtractionStatus sets the "extraction_status" field.
func (_u *TopicalSegmentUpdate) SetExtractionStatus(v topicalsegment.ExtractionStatus) *TopicalSegmentUpdate {
	_u.mutation.SetExtractionStatus(v)
	return _u
}

// SetNillableExtractionStatus sets the "extraction_status" field if the given value is not nil.
func (_u *TopicalSegmentUpdate) SetNillableExtractionStatus(v *topicalsegment.ExtractionStatus) *TopicalSegmentUpdate {
	if v != nil {
		_u.SetExtractionStatus(*v)
	}
	return _u
}

// SetExtractionError sets the "extraction_error" field.
func (_u *TopicalSegmentUpdate) SetExtractionError(v string) *TopicalSegmentUpdate {
	_u.mutation.SetExtractionError(v)
	return _u
}

// SetNillableExtractionError sets the "extraction_error" field if the given value is not nil.
func (_u *TopicalSegmentUpdate) SetNillableExtractionError(v *string) *TopicalSegmentUpdate {
	if v != nil {
		_u.SetExtractionError(*v)
	}
	return _u
}

// ClearExtractionError clears the value of the "extraction_error" field.
func (_u *TopicalSegmentUpdate) ClearExtractionError() *TopicalSegmentUpdate {
	_u.mutation.ClearExtractionError()
	return _u
}

// SetExtractionAttempts sets the "extraction_attempts" field.
func (_u *TopicalSegmentUpdate) SetExtractionAttempts(v int) *TopicalSegmentUpdate {
	_u.mutation.ResetExtractionAttempts()
	_u.mutation.SetExtractionAttempts(v)
	return _u
}

// SetNillableExtractionAttempts sets the "extraction_attempts" field if the given value is not nil.
func (_u *TopicalSegmentUpdate) SetNillableExtractionAttempts(v *int) *TopicalSegmentUpdate {
	if v != nil {
		_u.SetExtractionAttempts(*v)
	}
	return _u
}

// AddExtractionAttempts adds value to the "extraction_attempts" field.
func (_u *TopicalSegmentUpdate) AddExtractionAttempts(v int) *TopicalSegmentUpdate {
	_u.mutation.AddExtractionAttempts(v)
	return _u
}

// SetNextExtractionAt sets the "next_extraction_at" field.
func (_u *TopicalSegmentUpdate) SetNextExtractionAt(v time.Time) *TopicalSegmentUpdate {
	_u.mutation.SetNextExtractionAt(v)
	return _u
}

// SetNillableNextExtractionAt sets the "next_extraction_at" field if the given value is not nil.
func (_u *TopicalSegmentUpdate) SetNillableNextExtractionAt(v *time.Time) *TopicalSegmentUpdate {
	if v != nil {
		_u.SetNextExtractionAt(*v)
	}
	return _u
}

// ClearNextExtractionAt clears the value of the "next_extraction_at" field.
func (_u *TopicalSegmentUpdate) ClearNextExtractionAt() *TopicalSegmentUpdate {
	_u.mutation.ClearNextExtractionAt()
	return _u
}

// SetBatchID sets the "batch_id" field.
func (_u *TopicalSegmentUpdate) SetBatchID(v string) *TopicalSegmentUpdate {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *TopicalSegmentUpdate) SetNillableBatchID(v *string) *TopicalSegmentUpdate {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// ClearBatchID clears the value of the "batch_id" field.
func (_u *TopicalSegmentUpdate) ClearBatchID() *TopicalSegmentUpdate {
	_u.mutation.ClearBatchID()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *TopicalSegmentUpdate) SetConfidence(v float64) *TopicalSegmentUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *TopicalSegmentUpdate) SetNillableConfidence(v *float64) *TopicalSegmentUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *TopicalSegmentUpdate) AddConfidence(v float64) *TopicalSegmentUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetRelatedSegmentIds sets the "related_segment_ids" field.
func (_u *TopicalSegmentUpdate) SetRelatedSegmentIds(v []string) *TopicalSegmentUpdate {
	_u.mutation.SetRelatedSegmentIds(v)
	return _u
}

// AppendRelatedSegmentIds appends value to the "related_segment_ids" field.
func (_u *TopicalSegmentUpdate) AppendRelatedSegmentIds(v []string) *TopicalSegmentUpdate {
	_u.mutation.AppendRelatedSegmentIds(v)
	return _u
}

// ClearRelatedSegmentIds clears the value of the "related_segment_ids" field.
func (_u *TopicalSegmentUpdate) ClearRelatedSegmentIds() *TopicalSegmentUpdate {
	_u.mutation.ClearRelatedSegmentIds()
	return _u
}

// SetExtractedItemIds sets the "extracted_item_ids" field.
func (_u *TopicalSegmentUpdate) SetExtractedItemIds(v []string) *TopicalSegmentUpdate {
	_u.mutation.SetExtractedItemIds(v)
	return _u
}

// AppendExtractedItemIds appends value to the "extracted_item_ids" field.
func (_u *TopicalSegmentUpdate) AppendExtractedItemIds(v []string) *TopicalSegmentUpdate {
	_u.mutation.AppendExtractedItemIds(v)
	return _u
}

// ClearExtractedItemIds clears the value of the "extracted_item_ids" field.
func (_u *TopicalSegmentUpdate) ClearExtractedItemIds() *TopicalSegmentUpdate {
	_u.mutation.ClearExtractedItemIds()
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *TopicalSegmentUpdate) SetEmbedding(v pgvector.Vector) *TopicalSegmentUpdate {
	_u.mutation.SetEmbedding(v)
	return _u
}

// SetNillableEmbedding sets the "embedding" field if the given value is not nil.
func (_u *TopicalSegmentUpdate) SetNillableEmbedding(v *pgvector.Vector) *TopicalSegmentUpdate {
	if v != nil {
		_u.SetEmbedding(*v)
	}
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *TopicalSegmentUpdate) ClearEmbedding() *TopicalSegmentUpdate {
	_u.mutation.ClearEmbedding()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TopicalSegmentUpdate) SetUpdatedAt(v time.Time) *TopicalSegmentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetInteraction sets the "interaction" edge to the Interaction entity.
func (_u *TopicalSegmentUpdate) SetInteraction(v *Interaction) *TopicalSegmentUpdate {
	return _u.SetInteractionID(v.ID)
}

// AddMessageIDs adds the "messages" edge to the Message entity by IDs.
func (_u *TopicalSegmentUpdate) AddMessageIDs(ids ...string) *TopicalSegmentUpdate {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the Message entity.
func (_u *TopicalSegmentUpdate) AddMessages(v ...*Message) *TopicalSegmentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// Mutation returns the TopicalSegmentMutation object of the builder.
func (_u *TopicalSegmentUpdate) Mutation() *TopicalSegmentMutation {
	return _u.mutation
}

// ClearInteraction clears the "interaction" edge to the Interaction entity.
func (_u *TopicalSegmentUpdate) ClearInteraction() *TopicalSegmentUpdate {
	_u.mutation.ClearInteraction()
	return _u
}

// ClearMessages clears all "messages" edges to the Message entity.
func (_u *TopicalSegmentUpdate) ClearMessages() *TopicalSegmentUpdate {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to Message entities by IDs.
func (_u *TopicalSegmentUpdate) RemoveMessageIDs(ids ...string) *TopicalSegmentUpdate {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to Message entities.
func (_u *TopicalSegmentUpdate) RemoveMessages(v ...*Message) *TopicalSegmentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TopicalSegmentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TopicalSegmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TopicalSegmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TopicalSegmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TopicalSegmentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := topicalsegment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TopicalSegmentUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := topicalsegment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TopicalSegment.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExtractionStatus(); ok {
		if err := topicalsegment.ExtractionStatusValidator(v); err != nil {
			return &ValidationError{Name: "extraction_status", err: fmt.Errorf(`ent: validator failed for field "TopicalSegment.extraction_status": %w`, err)}
		}
	}
	return nil
}

func (_u *TopicalSegmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(topicalsegment.Table, topicalsegment.Columns, sqlgraph.NewFieldSpec(topicalsegment.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ChatID(); ok {
		_spec.SetField(topicalsegment.FieldChatID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(topicalsegment.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Keywords(); ok {
		_spec.SetField(topicalsegment.FieldKeywords, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeywords(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, topicalsegment.FieldKeywords, value)
		})
	}
	if _u.mutation.KeywordsCleared() {
		_spec.ClearField(topicalsegment.FieldKeywords, field.TypeJSON)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(topicalsegment.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(topicalsegment.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.ParticipantIds(); ok {
		_spec.SetField(topicalsegment.FieldParticipantIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedParticipantIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, topicalsegment.FieldParticipantIds, value)
		})
	}
	if _u.mutation.ParticipantIdsCleared() {
		_spec.ClearField(topicalsegment.FieldParticipantIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.PrimaryParticipantID(); ok {
		_spec.SetField(topicalsegment.FieldPrimaryParticipantID, field.TypeString, value)
	}
	if _u.mutation.PrimaryParticipantIDCleared() {
		_spec.ClearField(topicalsegment.FieldPrimaryParticipantID, field.TypeString)
	}
	if value, ok := _u.mutation.MessageCount(); ok {
		_spec.SetField(topicalsegment.FieldMessageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMessageCount(); ok {
		_spec.AddField(topicalsegment.FieldMessageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(topicalsegment.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(topicalsegment.FieldEndedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(topicalsegment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExtractionStatus(); ok {
		_spec.SetField(topicalsegment.FieldExtractionStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExtractionError(); ok {
		_spec.SetField(topicalsegment.FieldExtractionError, field.TypeString, value)
	}
	if _u.mutation.ExtractionErrorCleared() {
		_spec.ClearField(topicalsegment.FieldExtractionError, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractionAttempts(); ok {
		_spec.SetField(topicalsegment.FieldExtractionAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExtractionAttempts(); ok {
		_spec.AddField(topicalsegment.FieldExtractionAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextExtractionAt(); ok {
		_spec.SetField(topicalsegment.FieldNextExtractionAt, field.TypeTime, value)
	}
	if _u.mutation.NextExtractionAtCleared() {
		_spec.ClearField(topicalsegment.FieldNextExtractionAt, field.TypeTime)
	}
	if value, ok := _u.mutation.BatchID(); ok {
		_spec.SetField(topicalsegment.FieldBatchID, field.TypeString, value)
	}
	if _u.mutation.BatchIDCleared() {
		_spec.ClearField(topicalsegment.FieldBatchID, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(topicalsegment.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(topicalsegment.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RelatedSegmentIds(); ok {
		_spec.SetField(topicalsegment.FieldRelatedSegmentIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRelatedSegmentIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, topicalsegment.FieldRelatedSegmentIds, value)
		})
	}
	if _u.mutation.RelatedSegmentIdsCleared() {
		_spec.ClearField(topicalsegment.FieldRelatedSegmentIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExtractedItemIds(); ok {
		_spec.SetField(topicalsegment.FieldExtractedItemIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedItemIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, topicalsegment.FieldExtractedItemIds, value)
		})
	}
	if _u.mutation.ExtractedItemIdsCleared() {
		_spec.ClearField(topicalsegment.FieldExtractedItemIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(topicalsegment.FieldEmbedding, field.TypeOther, value)
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(topicalsegment.FieldEmbedding, field.TypeOther)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(topicalsegment.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.InteractionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   topicalsegment.InteractionTable,
			Columns: []string{topicalsegment.InteractionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(interaction.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InteractionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   topicalsegment.InteractionTable,
			Columns: []string{topicalsegment.InteractionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(interaction.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   topicalsegment.MessagesTable,
			Columns: topicalsegment.MessagesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   topicalsegment.MessagesTable,
			Columns: topicalsegment.MessagesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   topicalsegment.MessagesTable,
			Columns: topicalsegment.MessagesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topicalsegment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TopicalSegmentUpdateOne is the builder for updating a single TopicalSegment entity.
type TopicalSegmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TopicalSegmentMutation
}

// SetChatID sets the "chat_id" field.
func (_u *TopicalSegmentUpdateOne) SetChatID(v string) *TopicalSegmentUpdateOne {
	_u.mutation.SetChatID(v)
	return _u
}

// SetNillableChatID sets the "chat_id" field if the given value is not nil.
func (_u *TopicalSegmentUpdateOne) SetNillableChatID(v *string) *TopicalSegmentUpdateOne {
	if v != nil {
		_u.SetChatID(*v)
	}
	return _u
}

// SetInteractionID sets the "interaction_id" field.
func (_u *TopicalSegmentUpdateOne) SetInteractionID(v string) *TopicalSegmentUpdateOne {
	_u.mutation.SetInteractionID(v)
	return _u
}

// SetNillableInteractionID sets the "interaction_id" field if the given value is not nil.
func (_u *TopicalSegmentUpdateOne) SetNillableInteractionID(v *string) *TopicalSegmentUpdateOne {
	if v != nil {
		_u.SetInteractionID(*v)
	}
	return _u
}

// ClearInteractionID clears the value of the "interaction_id" field.
func (_u *TopicalSegmentUpdateOne) ClearInteractionID() *TopicalSegmentUpdateOne {
	_u.mutation.ClearInteractionID()
	return _u
}

// SetTopic sets the "topic" field.
func (_u *TopicalSegmentUpdateOne) SetTopic(v string) *TopicalSegmentUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *TopicalSegmentUpdateOne) SetNillableTopic(v *string) *TopicalSegmentUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetKeywords sets the "keywords" field.
func (_u *TopicalSegmentUpdateOne) SetKeywords(v []string) *TopicalSegmentUpdateOne {
	_u.mutation.SetKeywords(v)
	return _u
}

// AppendKeywords appends value to the "keywords" field.
func (_u *TopicalSegmentUpdateOne) AppendKeywords(v []string) *TopicalSegmentUpdateOne {
	_u.mutation.AppendKeywords(v)
	return _u
}

// ClearKeywords clears the value of the "keywords" field.
func (_u *TopicalSegmentUpdateOne) ClearKeywords() *TopicalSegmentUpdateOne {
	_u.mutation.ClearKeywords()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *TopicalSegmentUpdateOne) SetSummary(v string) *TopicalSegmentUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *TopicalSegmentUpdateOne) SetNillableSummary(v *string) *TopicalSegmentUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *TopicalSegmentUpdateOne) ClearSummary() *TopicalSegmentUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetParticipantIds sets the "participant_ids" field.
func (_u *TopicalSegmentUpdateOne) SetParticipantIds(v []string) *TopicalSegmentUpdateOne {
	_u.mutation.SetParticipantIds(v)
	return _u
}

// AppendParticipantIds appends value to the "participant_ids" field.
func (_u *TopicalSegmentUpdateOne) AppendParticipantIds(v []string) *TopicalSegmentUpdateOne {
	_u.mutation.AppendParticipantIds(v)
	return _u
}

// ClearParticipantIds clears the value of the "participant_ids" field.
func (_u *TopicalSegmentUpdateOne) ClearParticipantIds() *TopicalSegmentUpdateOne {
	_u.mutation.ClearParticipantIds()
	return _u
}

// SetPrimaryParticipantID sets the "primary_participant_id" field.
func (_u *TopicalSegmentUpdateOne) SetPrimaryParticipantID(v string) *TopicalSegmentUpdateOne {
	_u.mutation.SetPrimaryParticipantID(v)
	return _u
}

// SetNillablePrimaryParticipantID sets the "primary_participant_id" field if the given value is not nil.
func (_u *TopicalSegmentUpdateOne) SetNillablePrimaryParticipantID(v *string) *TopicalSegmentUpdateOne {
	if v != nil {
		_u.SetPrimaryParticipantID(*v)
	}
	return _u
}

// ClearPrimaryParticipantID clears the value of the "primary_participant_id" field.
func (_u *TopicalSegmentUpdateOne) ClearPrimaryParticipantID() *TopicalSegmentUpdateOne {
	_u.mutation.ClearPrimaryParticipantID()
	return _u
}

// SetMessageCount sets the "message_count" field.
func (_u *TopicalSegmentUpdateOne) SetMessageCount(v int) *TopicalSegmentUpdateOne {
	_u.mutation.ResetMessageCount()
	_u.mutation.SetMessageCount(v)
	return _u
}

// SetNillableMessageCount sets the "message_count" field if the given value is not nil.
func (_u *TopicalSegmentUpdateOne) SetNillableMessageCount(v *int) *TopicalSegmentUpdateOne {
	if v != nil {
		_u.SetMessageCount(*v)
	}
	return _u
}

// AddMessageCount adds value to the "message_count" field.
func (_u *TopicalSegmentUpdateOne) AddMessageCount(v int) *TopicalSegmentUpdateOne {
	_u.mutation.AddMessageCount(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TopicalSegmentUpdateOne) SetStartedAt(v time.Time) *TopicalSegmentUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TopicalSegmentUpdateOne) SetNillableStartedAt(v *time.Time) *TopicalSegmentUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *TopicalSegmentUpdateOne) SetEndedAt(v time.Time) *TopicalSegmentUpdateOne {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *TopicalSegmentUpdateOne) SetNillableEndedAt(v *time.Time) *TopicalSegmentUpdateOne {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TopicalSegmentUpdateOne) SetStatus(v topicalsegment.Status) *TopicalSegmentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TopicalSegmentUpdateOne) SetNillableStatus(v *topicalsegment.Status) *TopicalSegmentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExtractionStatus sets the "extraction_status" field.
func (_u *TopicalSegmentUpdateOne) SetExtractionStatus(v topicalsegment.ExtractionStatus) *TopicalSegmentUpdateOne {
	_u.mutation.SetExtractionStatus(v)
	return _u
}

// SetNillableExtractionStatus sets the "extraction_status" field if the given value is not nil.
func (_u *TopicalSegmentUpdateOne) SetNillableExtractionStatus(v *topicalsegment.ExtractionStatus) *TopicalSegmentUpdateOne {
	if v != nil {
		_u.SetExtractionStatus(*v)
	}
	return _u
}

// SetExtractionError sets the "extraction_error" field.
func (_u *TopicalSegmentUpdateOne) SetExtractionError(v string) *TopicalSegmentUpdateOne {
	_u.mutation.SetExtractionError(v)
	return _u
}

// SetNillableExtractionError sets the "extraction_error" field if the given value is not nil.
func (_u *TopicalSegmentUpdateOne) SetNillableExtractionError(v *string) *TopicalSegmentUpdateOne {
	if v != nil {
		_u.SetExtractionError(*v)
	}
	return _u
}

// ClearExtractionError clears the value of the "extraction_error" field.
func (_u *TopicalSegmentUpdateOne) ClearExtractionError() *TopicalSegmentUpdateOne {
	_u.mutation.ClearExtractionError()
	return _u
}

// SetExtractionAttempts sets the "extraction_attempts" field.
func (_u *TopicalSegmentUpdateOne) SetExtractionAttempts(v int) *TopicalSegmentUpdateOne {
	_u.mutation.ResetExtractionAttempts()
	_u.mutation.SetExtractionAttempts(v)
	return _u
}

// SetNillableExtractionAttempts sets the "extraction_attempts" field if the given value is not nil.
func (_u *TopicalSegmentUpdateOne) SetNillableExtractionAttempts(v *int) *TopicalSegmentUpdateOne {
	if v != nil {
		_u.SetExtractionAttempts(*v)
	}
	return _u
}

// AddExtractionAttempts adds value to the "extraction_attempts" field.
func (_u *TopicalSegmentUpdateOne) AddExtractionAttempts(v int) *TopicalSegmentUpdateOne {
	_u.mutation.AddExtractionAttempts(v)
	return _u
}

// SetNextExtractionAt sets the "next_extraction_at" field.
func (_u *TopicalSegmentUpdateOne) SetNextExtractionAt(v time.Time) *TopicalSegmentUpdateOne {
	_u.mutation.SetNextExtractionAt(v)
	return _u
}

// SetNillableNextExtractionAt sets the "next_extraction_at" field if the given value is not nil.
func (_u *TopicalSegmentUpdateOne) SetNillableNextExtractionAt(v *time.Time) *TopicalSegmentUpdateOne {
	if v != nil {
		_u.SetNextExtractionAt(*v)
	}
	return _u
}

// ClearNextExtractionAt clears the value of the "next_extraction_at" field.
func (_u *TopicalSegmentUpdateOne) ClearNextExtractionAt() *TopicalSegmentUpdateOne {
	_u.mutation.ClearNextExtractionAt()
	return _u
}

// SetBatchID sets the "batch_id" field.
func (_u *TopicalSegmentUpdateOne) SetBatchID(v string) *TopicalSegmentUpdateOne {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *TopicalSegmentUpdateOne) SetNillableBatchID(v *string) *TopicalSegmentUpdateOne {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// ClearBatchID clears the value of the "batch_id" field.
func (_u *TopicalSegmentUpdateOne) ClearBatchID() *TopicalSegmentUpdateOne {
	_u.mutation.ClearBatchID()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *TopicalSegmentUpdateOne) SetConfidence(v float64) *TopicalSegmentUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *TopicalSegmentUpdateOne) SetNillableConfidence(v *float64) *TopicalSegmentUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *TopicalSegmentUpdateOne) AddConfidence(v float64) *TopicalSegmentUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetRelatedSegmentIds sets the "related_segment_ids" field.
func (_u *TopicalSegmentUpdateOne) SetRelatedSegmentIds(v []string) *TopicalSegmentUpdateOne {
	_u.mutation.SetRelatedSegmentIds(v)
	return _u
}

// AppendRelatedSegmentIds appends value to the "related_segment_ids" field.
func (_u *TopicalSegmentUpdateOne) AppendRelatedSegmentIds(v []string) *TopicalSegmentUpdateOne {
	_u.mutation.AppendRelatedSegmentIds(v)
	return _u
}

// ClearRelatedSegmentIds clears the value of the "related_segment_ids" field.
func (_u *TopicalSegmentUpdateOne) ClearRelatedSegmentIds() *TopicalSegmentUpdateOne {
	_u.mutation.ClearRelatedSegmentIds()
	return _u
}

// SetExtractedItemIds sets the "extracted_item_ids" field.
func (_u *TopicalSegmentUpdateOne) SetExtractedItemIds(v []string) *TopicalSegmentUpdateOne {
	_u.mutation.SetExtractedItemIds(v)
	return _u
}

// AppendExtractedItemIds appends value to the "extracted_item_ids" field.
func (_u *TopicalSegmentUpdateOne) AppendExtractedItemIds(v []string) *TopicalSegmentUpdateOne {
	_u.mutation.AppendExtractedItemIds(v)
	return _u
}

// ClearExtractedItemIds clears the value of the "extracted_item_ids" field.
func (_u *TopicalSegmentUpdateOne) ClearExtractedItemIds() *TopicalSegmentUpdateOne {
	_u.mutation.ClearExtractedItemIds()
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *TopicalSegmentUpdateOne) SetEmbedding(v pgvector.Vector) *TopicalSegmentUpdateOne {
	_u.mutation.SetEmbedding(v)
	return _u
}

// SetNillableEmbedding sets the "embedding" field if the given value is not nil.
func (_u *TopicalSegmentUpdateOne) SetNillableEmbedding(v *pgvector.Vector) *TopicalSegmentUpdateOne {
	if v != nil {
		_u.SetEmbedding(*v)
	}
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *TopicalSegmentUpdateOne) ClearEmbedding() *TopicalSegmentUpdateOne {
	_u.mutation.ClearEmbedding()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TopicalSegmentUpdateOne) SetUpdatedAt(v time.Time) *TopicalSegmentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetInteraction sets the "interaction" edge to the Interaction entity.
func (_u *TopicalSegmentUpdateOne) SetInteraction(v *Interaction) *TopicalSegmentUpdateOne {
	return _u.SetInteractionID(v.ID)
}

// AddMessageIDs adds the "messages" edge to the Message entity by IDs.
func (_u *TopicalSegmentUpdateOne) AddMessageIDs(ids ...string) *TopicalSegmentUpdateOne {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the Message entity.
func (_u *TopicalSegmentUpdateOne) AddMessages(v ...*Message) *TopicalSegmentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// Mutation returns the TopicalSegmentMutation object of the builder.
func (_u *TopicalSegmentUpdateOne) Mutation() *TopicalSegmentMutation {
	return _u.mutation
}

// ClearInteraction clears the "interaction" edge to the Interaction entity.
func (_u *TopicalSegmentUpdateOne) ClearInteraction() *TopicalSegmentUpdateOne {
	_u.mutation.ClearInteraction()
	return _u
}

// ClearMessages clears all "messages" edges to the Message entity.
func (_u *TopicalSegmentUpdateOne) ClearMessages() *TopicalSegmentUpdateOne {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to Message entities by IDs.
func (_u *TopicalSegmentUpdateOne) RemoveMessageIDs(ids ...string) *TopicalSegmentUpdateOne {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to Message entities.
func (_u *TopicalSegmentUpdateOne) RemoveMessages(v ...*Message) *TopicalSegmentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// Where appends a list predicates to the TopicalSegmentUpdate builder.
func (_u *TopicalSegmentUpdateOne) Where(ps ...predicate.TopicalSegment) *TopicalSegmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TopicalSegmentUpdateOne) Select(field string, fields ...string) *TopicalSegmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TopicalSegment entity.
func (_u *TopicalSegmentUpdateOne) Save(ctx context.Context) (*TopicalSegment, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TopicalSegmentUpdateOne) SaveX(ctx context.Context) *TopicalSegment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TopicalSegmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TopicalSegmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TopicalSegmentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := topicalsegment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TopicalSegmentUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := topicalsegment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TopicalSegment.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExtractionStatus(); ok {
		if err := topicalsegment.ExtractionStatusValidator(v); err != nil {
			return &ValidationError{Name: "extraction_status", err: fmt.Errorf(`ent: validator failed for field "TopicalSegment.extraction_status": %w`, err)}
		}
	}
	return nil
}

func (_u *TopicalSegmentUpdateOne) sqlSave(ctx context.Context) (_node *TopicalSegment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(topicalsegment.Table, topicalsegment.Columns, sqlgraph.NewFieldSpec(topicalsegment.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TopicalSegment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, topicalsegment.FieldID)
		for _, f := range fields {
			if !topicalsegment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != topicalsegment.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ChatID(); ok {
		_spec.SetField(topicalsegment.FieldChatID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(topicalsegment.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Keywords(); ok {
		_spec.SetField(topicalsegment.FieldKeywords, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeywords(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, topicalsegment.FieldKeywords, value)
		})
	}
	if _u.mutation.KeywordsCleared() {
		_spec.ClearField(topicalsegment.FieldKeywords, field.TypeJSON)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(topicalsegment.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(topicalsegment.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.ParticipantIds(); ok {
		_spec.SetField(topicalsegment.FieldParticipantIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedParticipantIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, topicalsegment.FieldParticipantIds, value)
		})
	}
	if _u.mutation.ParticipantIdsCleared() {
		_spec.ClearField(topicalsegment.FieldParticipantIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.PrimaryParticipantID(); ok {
		_spec.SetField(topicalsegment.FieldPrimaryParticipantID, field.TypeString, value)
	}
	if _u.mutation.PrimaryParticipantIDCleared() {
		_spec.ClearField(topicalsegment.FieldPrimaryParticipantID, field.TypeString)
	}
	if value, ok := _u.mutation.MessageCount(); ok {
		_spec.SetField(topicalsegment.FieldMessageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMessageCount(); ok {
		_spec.AddField(topicalsegment.FieldMessageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(topicalsegment.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(topicalsegment.FieldEndedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(topicalsegment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExtractionStatus(); ok {
		_spec.SetField(topicalsegment.FieldExtractionStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExtractionError(); ok {
		_spec.SetField(topicalsegment.FieldExtractionError, field.TypeString, value)
	}
	if _u.mutation.ExtractionErrorCleared() {
		_spec.ClearField(topicalsegment.FieldExtractionError, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractionAttempts(); ok {
		_spec.SetField(topicalsegment.FieldExtractionAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExtractionAttempts(); ok {
		_spec.AddField(topicalsegment.FieldExtractionAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextExtractionAt(); ok {
		_spec.SetField(topicalsegment.FieldNextExtractionAt, field.TypeTime, value)
	}
	if _u.mutation.NextExtractionAtCleared() {
		_spec.ClearField(topicalsegment.FieldNextExtractionAt, field.TypeTime)
	}
	if value, ok := _u.mutation.BatchID(); ok {
		_spec.SetField(topicalsegment.FieldBatchID, field.TypeString, value)
	}
	if _u.mutation.BatchIDCleared() {
		_spec.ClearField(topicalsegment.FieldBatchID, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(topicalsegment.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(topicalsegment.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RelatedSegmentIds(); ok {
		_spec.SetField(topicalsegment.FieldRelatedSegmentIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRelatedSegmentIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, topicalsegment.FieldRelatedSegmentIds, value)
		})
	}
	if _u.mutation.RelatedSegmentIdsCleared() {
		_spec.ClearField(topicalsegment.FieldRelatedSegmentIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExtractedItemIds(); ok {
		_spec.SetField(topicalsegment.FieldExtractedItemIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedItemIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, topicalsegment.FieldExtractedItemIds, value)
		})
	}
	if _u.mutation.ExtractedItemIdsCleared() {
		_spec.ClearField(topicalsegment.FieldExtractedItemIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(topicalsegment.FieldEmbedding, field.TypeOther, value)
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(topicalsegment.FieldEmbedding, field.TypeOther)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(topicalsegment.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.InteractionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   topicalsegment.InteractionTable,
			Columns: []string{topicalsegment.InteractionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(interaction.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InteractionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   topicalsegment.InteractionTable,
			Columns: []string{topicalsegment.InteractionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(interaction.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   topicalsegment.MessagesTable,
			Columns: topicalsegment.MessagesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   topicalsegment.MessagesTable,
			Columns: topicalsegment.MessagesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   topicalsegment.MessagesTable,
			Columns: topicalsegment.MessagesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TopicalSegment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topicalsegment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
