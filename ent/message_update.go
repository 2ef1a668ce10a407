// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/memograph/memograph/ent/message"
	"github.com/memograph/memograph/ent/predicate"
	"github.com/memograph/memograph/ent/topicalsegment"
	pgvector "github.com/pgvector/pgvector-go"
)

// MessageUpdate is the builder for updating Message entities.
type MessageUpdate struct {
	config
	hooks    []Hook
	mutation *MessageMutation
}

// Where appends a list predicates to the MessageUpdate builder.
func (_u *MessageUpdate) Where(ps ...predicate.Message) *MessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSenderEntityID sets the "sender_entity_id" field.
func (_u *MessageUpdate) SetSenderEntityID(v string) *MessageUpdate {
	_u.mutation.SetSenderEntityID(v)
	return _u
}

// SetNillableSenderEntityID sets the "sender_entity_id" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableSenderEntityID(v *string) *MessageUpdate {
	if v != nil {
		_u.SetSenderEntityID(*v)
	}
	return _u
}

// ClearSenderEntityID clears the value of the "sender_entity_id" field.
func (_u *MessageUpdate) ClearSenderEntityID() *MessageUpdate {
	_u.mutation.ClearSenderEntityID()
	return _u
}

// SetRecipientEntityID sets the "recipient_entity_id" field.
func (_u *MessageUpdate) SetRecipientEntityID(v string) *MessageUpdate {
	_u.mutation.SetRecipientEntityID(v)
	return _u
}

// SetNillableRecipientEntityID sets the "recipient_entity_id" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableRecipientEntityID(v *string) *MessageUpdate {
	if v != nil {
		_u.SetRecipientEntityID(*v)
	}
	return _u
}

// ClearRecipientEntityID clears the value of the "recipient_entity_id" field.
func (_u *MessageUpdate) ClearRecipientEntityID() *MessageUpdate {
	_u.mutation.ClearRecipientEntityID()
	return _u
}

// SetSenderIdentifierType sets the "sender_identifier_type" field.
func (_u *MessageUpdate) SetSenderIdentifierType(v string) *MessageUpdate {
	_u.mutation.SetSenderIdentifierType(v)
	return _u
}

// SetNillableSenderIdentifierType sets the "sender_identifier_type" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableSenderIdentifierType(v *string) *MessageUpdate {
	if v != nil {
		_u.SetSenderIdentifierType(*v)
	}
	return _u
}

// SetSenderIdentifierValue sets the "sender_identifier_value" field.
func (_u *MessageUpdate) SetSenderIdentifierValue(v string) *MessageUpdate {
	_u.mutation.SetSenderIdentifierValue(v)
	return _u
}

// SetNillableSenderIdentifierValue sets the "sender_identifier_value" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableSenderIdentifierValue(v *string) *MessageUpdate {
	if v != nil {
		_u.SetSenderIdentifierValue(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *MessageUpdate) SetContent(v string) *MessageUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableContent(v *string) *MessageUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetIsOutgoing sets the "is_outgoing" field.
func (_u *MessageUpdate) SetIsOutgoing(v bool) *MessageUpdate {
	_u.mutation.SetIsOutgoing(v)
	return _u
}

// SetNillableIsOutgoing sets the "is_outgoing" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableIsOutgoing(v *bool) *MessageUpdate {
	if v != nil {
		_u.SetIsOutgoing(*v)
	}
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *MessageUpdate) SetTimestamp(v time.Time) *MessageUpdate {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableTimestamp(v *time.Time) *MessageUpdate {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetSourceMessageID sets the "source_message_id" field.
func (_u *MessageUpdate) SetSourceMessageID(v string) *MessageUpdate {
	_u.mutation.SetSourceMessageID(v)
	return _u
}

// SetNillableSourceMessageID sets the "source_message_id" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableSourceMessageID(v *string) *MessageUpdate {
	if v != nil {
		_u.SetSourceMessageID(*v)
	}
	return _u
}

// ClearSourceMessageID clears the value of the "source_message_id" field.
func (_u *MessageUpdate) ClearSourceMessageID() *MessageUpdate {
	_u.mutation.ClearSourceMessageID()
	return _u
}

// SetReplyToMessageID sets the "reply_to_message_id" field.
func (_u *MessageUpdate) SetReplyToMessageID(v string) *MessageUpdate {
	_u.mutation.SetReplyToMessageID(v)
	return _u
}

// SetNillableReplyToMessageID sets the "reply_to_message_id" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableReplyToMessageID(v *string) *MessageUpdate {
	if v != nil {
		_u.SetReplyToMessageID(*v)
	}
	return _u
}

// ClearReplyToMessageID clears the value of the "reply_to_message_id" field.
func (_u *MessageUpdate) ClearReplyToMessageID() *MessageUpdate {
	_u.mutation.ClearReplyToMessageID()
	return _u
}

// SetMediaType sets the "media_type" field.
func (_u *MessageUpdate) SetMediaType(v string) *MessageUpdate {
	_u.mutation.SetMediaType(v)
	return _u
}

// SetNillableMediaType sets the "media_type" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableMediaType(v *string) *MessageUpdate {
	if v != nil {
		_u.SetMediaType(*v)
	}
	return _u
}

// ClearMediaType clears the value of the "media_type" field.
func (_u *MessageUpdate) ClearMediaType() *MessageUpdate {
	_u.mutation.ClearMediaType()
	return _u
}

// SetMediaURL sets the "media_url" field.
func (_u *MessageUpdate) SetMediaURL(v string) *MessageUpdate {
	_u.mutation.SetMediaURL(v)
	return _u
}

// SetNillableMediaURL sets the "media_url" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableMediaURL(v *string) *MessageUpdate {
	if v != nil {
		_u.SetMediaURL(*v)
	}
	return _u
}

// ClearMediaURL clears the value of the "media_url" field.
func (_u *MessageUpdate) ClearMediaURL() *MessageUpdate {
	_u.mutation.ClearMediaURL()
	return _u
}

// SetChatType sets the "chat_type" field.
func (_u *MessageUpdate) SetChatType(v string) *MessageUpdate {
	_u.mutation.SetChatType(v)
	return _u
}

// SetNillableChatType sets the "chat_type" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableChatType(v *string) *MessageUpdate {
	if v != nil {
		_u.SetChatType(*v)
	}
	return _u
}

// ClearChatType clears the value of the "chat_type" field.
func (_u *MessageUpdate) ClearChatType() *MessageUpdate {
	_u.mutation.ClearChatType()
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *MessageUpdate) SetTopicID(v string) *MessageUpdate {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableTopicID(v *string) *MessageUpdate {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// ClearTopicID clears the value of the "topic_id" field.
func (_u *MessageUpdate) ClearTopicID() *MessageUpdate {
	_u.mutation.ClearTopicID()
	return _u
}

// SetExtractionStatus sets the "extraction_status" field.
func (_u *MessageUpdate) SetExtractionStatus(v message.ExtractionStatus) *MessageUpdate {
	_u.mutation.SetExtractionStatus(v)
	return _u
}

// SetNillableExtractionStatus sets the "extraction_status" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableExtractionStatus(v *message.ExtractionStatus) *MessageUpdate {
	if v != nil {
		_u.SetExtractionStatus(*v)
	}
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *MessageUpdate) SetEmbedding(v pgvector.Vector) *MessageUpdate {
	_u.mutation.SetEmbedding(v)
	return _u
}

// SetNillableEmbedding sets the "embedding" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableEmbedding(v *pgvector.Vector) *MessageUpdate {
	if v != nil {
		_u.SetEmbedding(*v)
	}
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *MessageUpdate) ClearEmbedding() *MessageUpdate {
	_u.mutation.ClearEmbedding()
	return _u
}

// AddSegmentIDs adds the "segments" edge to the TopicalSegment entity by IDs.
func (_u *MessageUpdate) AddSegmentIDs(ids ...string) *MessageUpdate {
	_u.mutation.AddSegmentIDs(ids...)
	return _u
}

// AddSegments adds the "segments" edges to the TopicalSegment entity.
func (_u *MessageUpdate) AddSegments(v ...*TopicalSegment) *MessageUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSegmentIDs(ids...)
}

// Mutation returns the MessageMutation object of the builder.
func (_u *MessageUpdate) Mutation() *MessageMutation {
	return _u.mutation
}

// ClearSegments clears all "segments" edges to the TopicalSegment entity.
func (_u *MessageUpdate) ClearSegments() *MessageUpdate {
	_u.mutation.ClearSegments()
	return _u
}

// RemoveSegmentIDs removes the "segments" edge to TopicalSegment entities by IDs.
func (_u *MessageUpdate) RemoveSegmentIDs(ids ...string) *MessageUpdate {
	_u.mutation.RemoveSegmentIDs(ids...)
	return _u
}

// RemoveSegments removes "segments" edges to TopicalSegment entities.
func (_u *MessageUpdate) RemoveSegments(v ...*TopicalSegment) *MessageUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSegmentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MessageUpdate) check() error {
	if v, ok := _u.mutation.ExtractionStatus(); ok {
		if err := message.ExtractionStatusValidator(v); err != nil {
			return &ValidationError{Name: "extraction_status", err: fmt.Errorf(`ent: validator failed for field "Message.extraction_status": %w`, err)}
		}
	}
	if _u.mutation.InteractionCleared() && len(_u.mutation.InteractionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Message.interaction"`)
	}
	return nil
}

func (_u *MessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(message.Table, message.Columns, sqlgraph.NewFieldSpec(message.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SenderEntityID(); ok {
		_spec.SetField(message.FieldSenderEntityID, field.TypeString, value)
	}
	if _u.mutation.SenderEntityIDCleared() {
		_spec.ClearField(message.FieldSenderEntityID, field.TypeString)
	}
	if value, ok := _u.mutation.RecipientEntityID(); ok {
		_spec.SetField(message.FieldRecipientEntityID, field.TypeString, value)
	}
	if _u.mutation.RecipientEntityIDCleared() {
		_spec.ClearField(message.FieldRecipientEntityID, field.TypeString)
	}
	if value, ok := _u.mutation.SenderIdentifierType(); ok {
		_spec.SetField(message.FieldSenderIdentifierType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SenderIdentifierValue(); ok {
		_spec.SetField(message.FieldSenderIdentifierValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(message.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsOutgoing(); ok {
		_spec.SetField(message.FieldIsOutgoing, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(message.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SourceMessageID(); ok {
		_spec.SetField(message.FieldSourceMessageID, field.TypeString, value)
	}
	if _u.mutation.SourceMessageIDCleared() {
		_spec.ClearField(message.FieldSourceMessageID, field.TypeString)
	}
	if value, ok := _u.mutation.ReplyToMessageID(); ok {
		_spec.SetField(message.FieldReplyToMessageID, field.TypeString, value)
	}
	if _u.mutation.ReplyToMessageIDCleared() {
		_spec.ClearField(message.FieldReplyToMessageID, field.TypeString)
	}
	if value, ok := _u.mutation.MediaType(); ok {
		_spec.SetField(message.FieldMediaType, field.TypeString, value)
	}
	if _u.mutation.MediaTypeCleared() {
		_spec.ClearField(message.FieldMediaType, field.TypeString)
	}
	if value, ok := _u.mutation.MediaURL(); ok {
		_spec.SetField(message.FieldMediaURL, field.TypeString, value)
	}
	if _u.mutation.MediaURLCleared() {
		_spec.ClearField(message.FieldMediaURL, field.TypeString)
	}
	if value, ok := _u.mutation.ChatType(); ok {
		_spec.SetField(message.FieldChatType, field.TypeString, value)
	}
	if _u.mutation.ChatTypeCleared() {
		_spec.ClearField(message.FieldChatType, field.TypeString)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(message.FieldTopicID, field.TypeString, value)
	}
	if _u.mutation.TopicIDCleared() {
		_spec.ClearField(message.FieldTopicID, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractionStatus(); ok {
		_spec.SetField(message.FieldExtractionStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(message.FieldEmbedding, field.TypeOther, value)
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(message.FieldEmbedding, field.TypeOther)
	}
	if _u.mutation.SegmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   message.SegmentsTable,
			Columns: message.SegmentsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topicalsegment.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSegmentsIDs(); len(nodes) > 0 && !_u.mutation.SegmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   message.SegmentsTable,
			Columns: message.SegmentsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topicalsegment.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SegmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   message.SegmentsTable,
			Columns: message.SegmentsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topicalsegment.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{message.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MessageUpdateOne is the builder for updating a single Message entity.
type MessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MessageMutation
}

// SetSenderEntityID sets the "sender_entity_id" field.
func (_u *MessageUpdateOne) SetSenderEntityID(v string) *MessageUpdateOne {
	_u.mutation.SetSenderEntityID(v)
	return _u
}

// SetNillableSenderEntityID sets the "sender_entity_id" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableSenderEntityID(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetSenderEntityID(*v)
	}
	return _u
}

// ClearSenderEntityID clears the value of the "sender_entity_id" field.
func (_u *MessageUpdateOne) ClearSenderEntityID() *MessageUpdateOne {
	_u.mutation.ClearSenderEntityID()
	return _u
}

// SetRecipientEntityID sets the "recipient_entity_id" field.
func (_u *MessageUpdateOne) SetRecipientEntityID(v string) *MessageUpdateOne {
	_u.mutation.SetRecipientEntityID(v)
	return _u
}

// SetNillableRecipientEntityID sets the "recipient_entity_id" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableRecipientEntityID(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetRecipientEntityID(*v)
	}
	return _u
}

// ClearRecipientEntityID clears the value of the "recipient_entity_id" field.
func (_u *MessageUpdateOne) ClearRecipientEntityID() *MessageUpdateOne {
	_u.mutation.ClearRecipientEntityID()
	return _u
}

// SetSenderIdentifierType sets the "sender_identifier_type" field.
func (_u *MessageUpdateOne) SetSenderIdentifierType(v string) *MessageUpdateOne {
	_u.mutation.SetSenderIdentifierType(v)
	return _u
}

// SetNillableSenderIdentifierType sets the "sender_identifier_type" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableSenderIdentifierType(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetSenderIdentifierType(*v)
	}
	return _u
}

// SetSenderIdentifierValue sets the "sender_identifier_value" field.
func (_u *MessageUpdateOne) SetSenderIdentifierValue(v string) *MessageUpdateOne {
	_u.mutation.SetSenderIdentifierValue(v)
	return _u
}

// SetNillableSenderIdentifierValue sets the "sender_identifier_value" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableSenderIdentifierValue(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetSenderIdentifierValue(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *MessageUpdateOne) SetContent(v string) *MessageUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableContent(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetIsOutgoing sets the "is_outgoing" field.
func (_u *MessageUpdateOne) SetIsOutgoing(v bool) *MessageUpdateOne {
	_u.mutation.SetIsOutgoing(v)
	return _u
}

// SetNillableIsOutgoing sets the "is_outgoing" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableIsOutgoing(v *bool) *MessageUpdateOne {
	if v != nil {
		_u.SetIsOutgoing(*v)
	}
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *MessageUpdateOne) SetTimestamp(v time.Time) *MessageUpdateOne {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableTimestamp(v *time.Time) *MessageUpdateOne {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetSourceMessageID sets the "source_message_id" field.
func (_u *MessageUpdateOne) SetSourceMessageID(v string) *MessageUpdateOne {
	_u.mutation.SetSourceMessageID(v)
	return _u
}

// SetNillableSourceMessageID sets the "source_message_id" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableSourceMessageID(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetSourceMessageID(*v)
	}
	return _u
}

// ClearSourceMessageID clears the value of the "source_message_id" field.
func (_u *MessageUpdateOne) ClearSourceMessageID() *MessageUpdateOne {
	_u.mutation.ClearSourceMessageID()
	return _u
}

// SetReplyToMessageID sets the "reply_to_message_id" field.
func (_u *MessageUpdateOne) SetReplyToMessageID(v string) *MessageUpdateOne {
	_u.mutation.SetReplyToMessageID(v)
	return _u
}

// SetNillableReplyToMessageID sets the "reply_to_message_id" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableReplyToMessageID(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetReplyToMessageID(*v)
	}
	return _u
}

// ClearReplyToMessageID clears the value of the "reply_to_message_id" field.
func (_u *MessageUpdateOne) ClearReplyToMessageID() *MessageUpdateOne {
	_u.mutation.ClearReplyToMessageID()
	return _u
}

// SetMediaType sets the "media_type" field.
func (_u *MessageUpdateOne) SetMediaType(v string) *MessageUpdateOne {
	_u.mutation.SetMediaType(v)
	return _u
}

// SetNillableMediaType sets the "media_type" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableMediaType(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetMediaType(*v)
	}
	return _u
}

// ClearMediaType clears the value of the "media_type" field.
func (_u *MessageUpdateOne) ClearMediaType() *MessageUpdateOne {
	_u.mutation.ClearMediaType()
	return _u
}

// SetMediaURL sets the "media_url" field.
func (_u *MessageUpdateOne) SetMediaURL(v string) *MessageUpdateOne {
	_u.mutation.SetMediaURL(v)
	return _u
}

// SetNillableMediaURL sets the "media_url" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableMediaURL(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetMediaURL(*v)
	}
	return _u
}

// ClearMediaURL clears the value of the "media_url" field.
func (_u *MessageUpdateOne) ClearMediaURL() *MessageUpdateOne {
	_u.mutation.ClearMediaURL()
	return _u
}

// SetChatType sets the "chat_type" field.
func (_u *MessageUpdateOne) SetChatType(v string) *MessageUpdateOne {
	_u.mutation.SetChatType(v)
	return _u
}

// SetNillableChatType sets the "chat_type" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableChatType(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetChatType(*v)
	}
	return _u
}

// ClearChatType clears the value of the "chat_type" field.
func (_u *MessageUpdateOne) ClearChatType() *MessageUpdateOne {
	_u.mutation.ClearChatType()
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *MessageUpdateOne) SetTopicID(v string) *MessageUpdateOne {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableTopicID(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// ClearTopicID clears the value of the "topic_id" field.
func (_u *MessageUpdateOne) ClearTopicID() *MessageUpdateOne {
	_u.mutation.ClearTopicID()
	return _u
}

// SetExtractionStatus sets the "extraction_status" field.
func (_u *MessageUpdateOne) SetExtractionStatus(v message.ExtractionStatus) *MessageUpdateOne {
	_u.mutation.SetExtractionStatus(v)
	return _u
}

// SetNillableExtractionStatus sets the "extraction_status" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableExtractionStatus(v *message.ExtractionStatus) *MessageUpdateOne {
	if v != nil {
		_u.SetExtractionStatus(*v)
	}
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *MessageUpdateOne) SetEmbedding(v pgvector.Vector) *MessageUpdateOne {
	_u.mutation.SetEmbedding(v)
	return _u
}

// SetNillableEmbedding sets the "embedding" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableEmbedding(v *pgvector.Vector) *MessageUpdateOne {
	if v != nil {
		_u.SetEmbedding(*v)
	}
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *MessageUpdateOne) ClearEmbedding() *MessageUpdateOne {
	_u.mutation.ClearEmbedding()
	return _u
}

// AddSegmentIDs adds the "segments" edge to the TopicalSegment entity by IDs.
func (_u *MessageUpdateOne) AddSegmentIDs(ids ...string) *MessageUpdateOne {
	_u.mutation.AddSegmentIDs(ids...)
	return _u
}

// AddSegments adds the "segments" edges to the TopicalSegment entity.
func (_u *MessageUpdateOne) AddSegments(v ...*TopicalSegment) *MessageUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSegmentIDs(ids...)
}

// Mutation returns the MessageMutation object of the builder.
func (_u *MessageUpdateOne) Mutation() *MessageMutation {
	return _u.mutation
}

// ClearSegments clears all "segments" edges to the TopicalSegment entity.
func (_u *MessageUpdateOne) ClearSegments() *MessageUpdateOne {
	_u.mutation.ClearSegments()
	return _u
}

// RemoveSegmentIDs removes the "segments" edge to TopicalSegment entities by IDs.
func (_u *MessageUpdateOne) RemoveSegmentIDs(ids ...string) *MessageUpdateOne {
	_u.mutation.RemoveSegmentIDs(ids...)
	return _u
}

// RemoveSegments removes "segments" edges to TopicalSegment entities.
func (_u *MessageUpdateOne) RemoveSegments(v ...*TopicalSegment) *MessageUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSegmentIDs(ids...)
}

// Where appends a list predicates to the MessageUpdate builder.
func (_u *MessageUpdateOne) Where(ps ...predicate.Message) *MessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MessageUpdateOne) Select(field string, fields ...string) *MessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Message entity.
func (_u *MessageUpdateOne) Save(ctx context.Context) (*Message, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageUpdateOne) SaveX(ctx context.Context) *Message {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MessageUpdateOne) check() error {
	if v, ok := _u.mutation.ExtractionStatus(); ok {
		if err := message.ExtractionStatusValidator(v); err != nil {
			return &ValidationError{Name: "extraction_status", err: fmt.Errorf(`ent: validator failed for field "Message.extraction_status": %w`, err)}
		}
	}
	if _u.mutation.InteractionCleared() && len(_u.mutation.InteractionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Message.interaction"`)
	}
	return nil
}

func (_u *MessageUpdateOne) sqlSave(ctx context.Context) (_node *Message, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(message.Table, message.Columns, sqlgraph.NewFieldSpec(message.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Message.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, message.FieldID)
		for _, f := range fields {
			if !message.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != message.FieldID {
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
	if value, ok := _u.mutation.SenderEntityID(); ok {
		_spec.SetField(message.FieldSenderEntityID, field.TypeString, value)
	}
	if _u.mutation.SenderEntityIDCleared() {
		_spec.ClearField(message.FieldSenderEntityID, field.TypeString)
	}
	if value, ok := _u.mutation.RecipientEntityID(); ok {
		_spec.SetField(message.FieldRecipientEntityID, field.TypeString, value)
	}
	if _u.mutation.RecipientEntityIDCleared() {
		_spec.ClearField(message.FieldRecipientEntityID, field.TypeString)
	}
	if value, ok := _u.mutation.SenderIdentifierType(); ok {
		_spec.SetField(message.FieldSenderIdentifierType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SenderIdentifierValue(); ok {
		_spec.SetField(message.FieldSenderIdentifierValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(message.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsOutgoing(); ok {
		_spec.SetField(message.FieldIsOutgoing, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(message.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SourceMessageID(); ok {
		_spec.SetField(message.FieldSourceMessageID, field.TypeString, value)
	}
	if _u.mutation.SourceMessageIDCleared() {
		_spec.ClearField(message.FieldSourceMessageID, field.TypeString)
	}
	if value, ok := _u.mutation.ReplyToMessageID(); ok {
		_spec.SetField(message.FieldReplyToMessageID, field.TypeString, value)
	}
	if _u.mutation.ReplyToMessageIDCleared() {
		_spec.ClearField(message.FieldReplyToMessageID, field.TypeString)
	}
	if value, ok := _u.mutation.MediaType(); ok {
		_spec.SetField(message.FieldMediaType, field.TypeString, value)
	}
	if _u.mutation.MediaTypeCleared() {
		_spec.ClearField(message.FieldMediaType, field.TypeString)
	}
	if value, ok := _u.mutation.MediaURL(); ok {
		_spec.SetField(message.FieldMediaURL, field.TypeString, value)
	}
	if _u.mutation.MediaURLCleared() {
		_spec.ClearField(message.FieldMediaURL, field.TypeString)
	}
	if value, ok := _u.mutation.ChatType(); ok {
		_spec.SetField(message.FieldChatType, field.TypeString, value)
	}
	if _u.mutation.ChatTypeCleared() {
		_spec.ClearField(message.FieldChatType, field.TypeString)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(message.FieldTopicID, field.TypeString, value)
	}
	if _u.mutation.TopicIDCleared() {
		_spec.ClearField(message.FieldTopicID, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractionStatus(); ok {
		_spec.SetField(message.FieldExtractionStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(message.FieldEmbedding, field.TypeOther, value)
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(message.FieldEmbedding, field.TypeOther)
	}
	if _u.mutation.SegmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   message.SegmentsTable,
			Columns: message.SegmentsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topicalsegment.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSegmentsIDs(); len(nodes) > 0 && !_u.mutation.SegmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   message.SegmentsTable,
			Columns: message.SegmentsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topicalsegment.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SegmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   message.SegmentsTable,
			Columns: message.SegmentsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topicalsegment.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Message{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{message.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
