// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/memograph/memograph/ent/interaction"
	"github.com/memograph/memograph/ent/message"
	"github.com/memograph/memograph/ent/topicalsegment"
	pgvector "github.com/pgvector/pgvector-go"
)

// MessageCreate is the builder for creating a Message entity.
type MessageCreate struct {
	config
	mutation *MessageMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetInteractionID sets the "interaction_id" field.
func (_c *MessageCreate) SetInteractionID(v string) *MessageCreate {
	_c.mutation.SetInteractionID(v)
	return _c
}

// SetSenderEntityID sets the "sender_entity_id" field.
func (_c *MessageCreate) SetSenderEntityID(v string) *MessageCreate {
	_c.mutation.SetSenderEntityID(v)
	return _c
}

// SetNillableSenderEntityID sets the "sender_entity_id" field if the given value is not nil.
func (_c *MessageCreate) SetNillableSenderEntityID(v *string) *MessageCreate {
	if v != nil {
		_c.SetSenderEntityID(*v)
	}
	return _c
}

// SetRecipientEntityID sets the "recipient_entity_id" field.
func (_c *MessageCreate) SetRecipientEntityID(v string) *MessageCreate {
	_c.mutation.SetRecipientEntityID(v)
	return _c
}

// SetNillableRecipientEntityID sets the "recipient_entity_id" field if the given value is not nil.
func (_c *MessageCreate) SetNillableRecipientEntityID(v *string) *MessageCreate {
	if v != nil {
		_c.SetRecipientEntityID(*v)
	}
	return _c
}

// SetSenderIdentifierType sets the "sender_identifier_type" field.
func (_c *MessageCreate) SetSenderIdentifierType(v string) *MessageCreate {
	_c.mutation.SetSenderIdentifierType(v)
	return _c
}

// SetSenderIdentifierValue sets the "sender_identifier_value" field.
func (_c *MessageCreate) SetSenderIdentifierValue(v string) *MessageCreate {
	_c.mutation.SetSenderIdentifierValue(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *MessageCreate) SetContent(v string) *MessageCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetIsOutgoing sets the "is_outgoing" field.
func (_c *MessageCreate) SetIsOutgoing(v bool) *MessageCreate {
	_c.mutation.SetIsOutgoing(v)
	return _c
}

// SetNillableIsOutgoing sets the "is_outgoing" field if the given value is not nil.
func (_c *MessageCreate) SetNillableIsOutgoing(v *bool) *MessageCreate {
	if v != nil {
		_c.SetIsOutgoing(*v)
	}
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *MessageCreate) SetTimestamp(v time.Time) *MessageCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetSourceMessageID sets the "source_message_id" field.
func (_c *MessageCreate) SetSourceMessageID(v string) *MessageCreate {
	_c.mutation.SetSourceMessageID(v)
	return _c
}

// SetNillableSourceMessageID sets the "source_message_id" field if the given value is not nil.
func (_c *MessageCreate) SetNillableSourceMessageID(v *string) *MessageCreate {
	if v != nil {
		_c.SetSourceMessageID(*v)
	}
	return _c
}

// SetReplyToMessageID sets the "reply_to_message_id" field.
func (_c *MessageCreate) SetReplyToMessageID(v string) *MessageCreate {
	_c.mutation.SetReplyToMessageID(v)
	return _c
}

// SetNillableReplyToMessageID sets the "reply_to_message_id" field if the given value is not nil.
func (_c *MessageCreate) SetNillableReplyToMessageID(v *string) *MessageCreate {
	if v != nil {
		_c.SetReplyToMessageID(*v)
	}
	return _c
}

// SetMediaType sets the "media_type" field.
func (_c *MessageCreate) SetMediaType(v string) *MessageCreate {
	_c.mutation.SetMediaType(v)
	return _c
}

// SetNillableMediaType sets the "media_type" field if the given value is not nil.
func (_c *MessageCreate) SetNillableMediaType(v *string) *MessageCreate {
	if v != nil {
		_c.SetMediaType(*v)
	}
	return _c
}

// SetMediaURL sets the "media_url" field.
func (_c *MessageCreate) SetMediaURL(v string) *MessageCreate {
	_c.mutation.SetMediaURL(v)
	return _c
}

// SetNillableMediaURL sets the "media_url" field if the given value is not nil.
func (_c *MessageCreate) SetNillableMediaURL(v *string) *MessageCreate {
	if v != nil {
		_c.SetMediaURL(*v)
	}
	return _c
}

// SetChatType sets the "chat_type" field.
func (_c *MessageCreate) SetChatType(v string) *MessageCreate {
	_c.mutation.SetChatType(v)
	return _c
}

// SetNillableChatType sets the "chat_type" field if the given value is not nil.
func (_c *MessageCreate) SetNillableChatType(v *string) *MessageCreate {
	if v != nil {
		_c.SetChatType(*v)
	}
	return _c
}

// SetTopicID sets the "topic_id" field.
func (_c *MessageCreate) SetTopicID(v string) *MessageCreate {
	_c.mutation.SetTopicID(v)
	return _c
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_c *MessageCreate) SetNillableTopicID(v *string) *MessageCreate {
	if v != nil {
		_c.SetTopicID(*v)
	}
	return _c
}

// SetExtractionStatus sets the "extraction_status" field.
func (_c *MessageCreate) SetExtractionStatus(v message.ExtractionStatus) *MessageCreate {
	_c.mutation.SetExtractionStatus(v)
	return _c
}

// SetNillableExtractionStatus sets the "extraction_status" field if the given value is not nil.
func (_c *MessageCreate) SetNillableExtractionStatus(v *message.ExtractionStatus) *MessageCreate {
	if v != nil {
		_c.SetExtractionStatus(*v)
	}
	return _c
}

// SetEmbedding sets the "embedding" field.
func (_c *MessageCreate) SetEmbedding(v pgvector.Vector) *MessageCreate {
	_c.mutation.SetEmbedding(v)
	return _c
}

// SetNillableEmbedding sets the "embedding" field if the given value is not nil.
func (_c *MessageCreate) SetNillableEmbedding(v *pgvector.Vector) *MessageCreate {
	if v != nil {
		_c.SetEmbedding(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MessageCreate) SetCreatedAt(v time.Time) *MessageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MessageCreate) SetNillableCreatedAt(v *time.Time) *MessageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MessageCreate) SetID(v string) *MessageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetInteraction sets the "interaction" edge to the Interaction entity.
func (_c *MessageCreate) SetInteraction(v *Interaction) *MessageCreate {
	return _c.SetInteractionID(v.ID)
}

// AddSegmentIDs adds the "segments" edge to the TopicalSegment entity by IDs.
func (_c *MessageCreate) AddSegmentIDs(ids ...string) *MessageCreate {
	_c.mutation.AddSegmentIDs(ids...)
	return _c
}

// AddSegments adds the "segments" edges to the TopicalSegment entity.
func (_c *MessageCreate) AddSegments(v ...*TopicalSegment) *MessageCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSegmentIDs(ids...)
}

// Mutation returns the MessageMutation object of the builder.
func (_c *MessageCreate) Mutation() *MessageMutation {
	return _c.mutation
}

// Save creates the Message in the database.
func (_c *MessageCreate) Save(ctx context.Context) (*Message, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MessageCreate) SaveX(ctx context.Context) *Message {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MessageCreate) defaults() {
	if _, ok := _c.mutation.IsOutgoing(); !ok {
		v := message.DefaultIsOutgoing
		_c.mutation.SetIsOutgoing(v)
	}
	if _, ok := _c.mutation.ExtractionStatus(); !ok {
		v := message.DefaultExtractionStatus
		_c.mutation.SetExtractionStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := message.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MessageCreate) check() error {
	if _, ok := _c.mutation.InteractionID(); !ok {
		return &ValidationError{Name: "interaction_id", err: errors.New(`ent: missing required field "Message.interaction_id"`)}
	}
	if _, ok := _c.mutation.SenderIdentifierType(); !ok {
		return &ValidationError{Name: "sender_identifier_type", err: errors.New(`ent: missing required field "Message.sender_identifier_type"`)}
	}
	if _, ok := _c.mutation.SenderIdentifierValue(); !ok {
		return &ValidationError{Name: "sender_identifier_value", err: errors.New(`ent: missing required field "Message.sender_identifier_value"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "Message.content"`)}
	}
	if _, ok := _c.mutation.IsOutgoing(); !ok {
		return &ValidationError{Name: "is_outgoing", err: errors.New(`ent: missing required field "Message.is_outgoing"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "Message.timestamp"`)}
	}
	if _, ok := _c.mutation.ExtractionStatus(); !ok {
		return &ValidationError{Name: "extraction_status", err: errors.New(`ent: missing required field "Message.extraction_status"`)}
	}
	if v, ok := _c.mutation.ExtractionStatus(); ok {
		if err := message.ExtractionStatusValidator(v); err != nil {
			return &ValidationError{Name: "extraction_status", err: fmt.Errorf(`ent: validator failed for field "Message.extraction_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Message.created_at"`)}
	}
	if len(_c.mutation.InteractionIDs()) == 0 {
		return &ValidationError{Name: "interaction", err: errors.New(`ent: missing required edge "Message.interaction"`)}
	}
	return nil
}

func (_c *MessageCreate) sqlSave(ctx context.Context) (*Message, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Message.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MessageCreate) createSpec() (*Message, *sqlgraph.CreateSpec) {
	var (
		_node = &Message{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(message.Table, sqlgraph.NewFieldSpec(message.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SenderEntityID(); ok {
		_spec.SetField(message.FieldSenderEntityID, field.TypeString, value)
		_node.SenderEntityID = &value
	}
	if value, ok := _c.mutation.RecipientEntityID(); ok {
		_spec.SetField(message.FieldRecipientEntityID, field.TypeString, value)
		_node.RecipientEntityID = &value
	}
	if value, ok := _c.mutation.SenderIdentifierType(); ok {
		_spec.SetField(message.FieldSenderIdentifierType, field.TypeString, value)
		_node.SenderIdentifierType = value
	}
	if value, ok := _c.mutation.SenderIdentifierValue(); ok {
		_spec.SetField(message.FieldSenderIdentifierValue, field.TypeString, value)
		_node.SenderIdentifierValue = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(message.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.IsOutgoing(); ok {
		_spec.SetField(message.FieldIsOutgoing, field.TypeBool, value)
		_node.IsOutgoing = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(message.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SourceMessageID(); ok {
		_spec.SetField(message.FieldSourceMessageID, field.TypeString, value)
		_node.SourceMessageID = &value
	}
	if value, ok := _c.mutation.ReplyToMessageID(); ok {
		_spec.SetField(message.FieldReplyToMessageID, field.TypeString, value)
		_node.ReplyToMessageID = &value
	}
	if value, ok := _c.mutation.MediaType(); ok {
		_spec.SetField(message.FieldMediaType, field.TypeString, value)
		_node.MediaType = &value
	}
	if value, ok := _c.mutation.MediaURL(); ok {
		_spec.SetField(message.FieldMediaURL, field.TypeString, value)
		_node.MediaURL = &value
	}
	if value, ok := _c.mutation.ChatType(); ok {
		_spec.SetField(message.FieldChatType, field.TypeString, value)
		_node.ChatType = value
	}
	if value, ok := _c.mutation.TopicID(); ok {
		_spec.SetField(message.FieldTopicID, field.TypeString, value)
		_node.TopicID = value
	}
	if value, ok := _c.mutation.ExtractionStatus(); ok {
		_spec.SetField(message.FieldExtractionStatus, field.TypeEnum, value)
		_node.ExtractionStatus = value
	}
	if value, ok := _c.mutation.Embedding(); ok {
		_spec.SetField(message.FieldEmbedding, field.TypeOther, value)
		_node.Embedding = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(message.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.InteractionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   message.InteractionTable,
			Columns: []string{message.InteractionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(interaction.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.InteractionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SegmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Message.Create().
//		SetInteractionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MessageUpsert) {
//			SetInteractionID(v+v).
//		}).
//		Exec(ctx)
func (_c *MessageCreate) OnConflict(opts ...sql.ConflictOption) *MessageUpsertOne {
	_c.conflict = opts
	return &MessageUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Message.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MessageCreate) OnConflictColumns(columns ...string) *MessageUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MessageUpsertOne{
		create: _c,
	}
}

type (
	// MessageUpsertOne is the builder for "upsert"-ing
	//  one Message node.
	MessageUpsertOne struct {
		create *MessageCreate
	}

	// MessageUpsert is the "OnConflict" setter.
	MessageUpsert struct {
		*sql.UpdateSet
	}
)

// SetSenderEntityID sets the "sender_entity_id" field.
func (u *MessageUpsert) SetSenderEntityID(v string) *MessageUpsert {
	u.Set(message.FieldSenderEntityID, v)
	return u
}

// UpdateSenderEntityID sets the "sender_entity_id" field to the value that was provided on create.
func (u *MessageUpsert) UpdateSenderEntityID() *MessageUpsert {
	u.SetExcluded(message.FieldSenderEntityID)
	return u
}

// ClearSenderEntityID clears the value of the "sender_entity_id" field.
func (u *MessageUpsert) ClearSenderEntityID() *MessageUpsert {
	u.SetNull(message.FieldSenderEntityID)
	return u
}

// SetRecipientEntityID sets the "recipient_entity_id" field.
func (u *MessageUpsert) SetRecipientEntityID(v string) *MessageUpsert {
	u.Set(message.FieldRecipientEntityID, v)
	return u
}

// UpdateRecipientEntityID sets the "recipient_entity_id" field to the value that was provided on create.
func (u *MessageUpsert) UpdateRecipientEntityID() *MessageUpsert {
	u.SetExcluded(message.FieldRecipientEntityID)
	return u
}

// ClearRecipientEntityID clears the value of the "recipient_entity_id" field.
func (u *MessageUpsert) ClearRecipientEntityID() *MessageUpsert {
	u.SetNull(message.FieldRecipientEntityID)
	return u
}

// SetSenderIdentifierType sets the "sender_identifier_type" field.
func (u *MessageUpsert) SetSenderIdentifierType(v string) *MessageUpsert {
	u.Set(message.FieldSenderIdentifierType, v)
	return u
}

// UpdateSenderIdentifierType sets the "sender_identifier_type" field to the value that was provided on create.
func (u *MessageUpsert) UpdateSenderIdentifierType() *MessageUpsert {
	u.SetExcluded(message.FieldSenderIdentifierType)
	return u
}

// SetSenderIdentifierValue sets the "sender_identifier_value" field.
func (u *MessageUpsert) SetSenderIdentifierValue(v string) *MessageUpsert {
	u.Set(message.FieldSenderIdentifierValue, v)
	return u
}

// UpdateSenderIdentifierValue sets the "sender_identifier_value" field to the value that was provided on create.
func (u *MessageUpsert) UpdateSenderIdentifierValue() *MessageUpsert {
	u.SetExcluded(message.FieldSenderIdentifierValue)
	return u
}

// SetContent sets the "content" field.
func (u *MessageUpsert) SetContent(v string) *MessageUpsert {
	u.Set(message.FieldContent, v)
	return u
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *MessageUpsert) UpdateContent() *MessageUpsert {
	u.SetExcluded(message.FieldContent)
	return u
}

// SetIsOutgoing sets the "is_outgoing" field.
func (u *MessageUpsert) SetIsOutgoing(v bool) *MessageUpsert {
	u.Set(message.FieldIsOutgoing, v)
	return u
}

// UpdateIsOutgoing sets the "is_outgoing" field to the value that was provided on create.
func (u *MessageUpsert) UpdateIsOutgoing() *MessageUpsert {
	u.SetExcluded(message.FieldIsOutgoing)
	return u
}

// SetTimestamp sets the "timestamp" field.
func (u *MessageUpsert) SetTimestamp(v time.Time) *MessageUpsert {
	u.Set(message.FieldTimestamp, v)
	return u
}

// UpdateTimestamp sets the "timestamp" field to the value that was provided on create.
func (u *MessageUpsert) UpdateTimestamp() *MessageUpsert {
	u.SetExcluded(message.FieldTimestamp)
	return u
}

// SetSourceMessageID sets the "source_message_id" field.
func (u *MessageUpsert) SetSourceMessageID(v string) *MessageUpsert {
	u.Set(message.FieldSourceMessageID, v)
	return u
}

// UpdateSourceMessageID sets the "source_message_id" field to the value that was provided on create.
func (u *MessageUpsert) UpdateSourceMessageID() *MessageUpsert {
	u.SetExcluded(message.FieldSourceMessageID)
	return u
}

// ClearSourceMessageID clears the value of the "source_message_id" field.
func (u *MessageUpsert) ClearSourceMessageID() *MessageUpsert {
	u.SetNull(message.FieldSourceMessageID)
	return u
}

// SetReplyToMessageID sets the "reply_to_message_id" field.
func (u *MessageUpsert) SetReplyToMessageID(v string) *MessageUpsert {
	u.Set(message.FieldReplyToMessageID, v)
	return u
}

// UpdateReplyToMessageID sets the "reply_to_message_id" field to the value that was provided on create.
func (u *MessageUpsert) UpdateReplyToMessageID() *MessageUpsert {
	u.SetExcluded(message.FieldReplyToMessageID)
	return u
}

// ClearReplyToMessageID clears the value of the "reply_to_message_id" field.
func (u *MessageUpsert) ClearReplyToMessageID() *MessageUpsert {
	u.SetNull(message.FieldReplyToMessageID)
	return u
}

// SetMediaType sets the "media_type" field.
func (u *MessageUpsert) SetMediaType(v string) *MessageUpsert {
	u.Set(message.FieldMediaType, v)
	return u
}

// UpdateMediaType sets the "media_type" field to the value that was provided on create.
func (u *MessageUpsert) UpdateMediaType() *MessageUpsert {
	u.SetExcluded(message.FieldMediaType)
	return u
}

// ClearMediaType clears the value of the "media_type" field.
func (u *MessageUpsert) ClearMediaType() *MessageUpsert {
	u.SetNull(message.FieldMediaType)
	return u
}

// SetMediaURL sets the "media_url" field.
func (u *MessageUpsert) SetMediaURL(v string) *MessageUpsert {
	u.Set(message.FieldMediaURL, v)
	return u
}

// UpdateMediaURL sets the "media_url" field to the value that was provided on create.
func (u *MessageUpsert) UpdateMediaURL() *MessageUpsert {
	u.SetExcluded(message.FieldMediaURL)
	return u
}

// ClearMediaURL clears the value of the "media_url" field.
func (u *MessageUpsert) ClearMediaURL() *MessageUpsert {
	u.SetNull(message.FieldMediaURL)
	return u
}

// SetChatType sets the "chat_type" field.
func (u *MessageUpsert) SetChatType(v string) *MessageUpsert {
	u.Set(message.FieldChatType, v)
	return u
}

// UpdateChatType sets the "chat_type" field to the value that was provided on create.
func (u *MessageUpsert) UpdateChatType() *MessageUpsert {
	u.SetExcluded(message.FieldChatType)
	return u
}

// ClearChatType clears the value of the "chat_type" field.
func (u *MessageUpsert) ClearChatType() *MessageUpsert {
	u.SetNull(message.FieldChatType)
	return u
}

// SetTopicID sets the "topic_id" field.
func (u *MessageUpsert) SetTopicID(v string) *MessageUpsert {
	u.Set(message.FieldTopicID, v)
	return u
}

// UpdateTopicID sets the "topic_id" field to the value that was provided on create.
func (u *MessageUpsert) UpdateTopicID() *MessageUpsert {
	u.SetExcluded(message.FieldTopicID)
	return u
}

// ClearTopicID clears the value of the "topic_id" field.
func (u *MessageUpsert) ClearTopicID() *MessageUpsert {
	u.SetNull(message.FieldTopicID)
	return u
}

// SetExtractionStatus sets the "extraction_status" field.
func (u *MessageUpsert) SetExtractionStatus(v message.ExtractionStatus) *MessageUpsert {
	u.Set(message.FieldExtractionStatus, v)
	return u
}

// UpdateExtractionStatus sets the "extraction_status" field to the value that was provided on create.
func (u *MessageUpsert) UpdateExtractionStatus() *MessageUpsert {
	u.SetExcluded(message.FieldExtractionStatus)
	return u
}

// SetEmbedding sets the "embedding" field.
func (u *MessageUpsert) SetEmbedding(v pgvector.Vector) *MessageUpsert {
	u.Set(message.FieldEmbedding, v)
	return u
}

// UpdateEmbedding sets the "embedding" field to the value that was provided on create.
func (u *MessageUpsert) UpdateEmbedding() *MessageUpsert {
	u.SetExcluded(message.FieldEmbedding)
	return u
}

// ClearEmbedding clears the value of the "embedding" field.
func (u *MessageUpsert) ClearEmbedding() *MessageUpsert {
	u.SetNull(message.FieldEmbedding)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Message.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(message.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MessageUpsertOne) UpdateNewValues() *MessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(message.FieldID)
		}
		if _, exists := u.create.mutation.InteractionID(); exists {
			s.SetIgnore(message.FieldInteractionID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(message.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Message.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MessageUpsertOne) Ignore() *MessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MessageUpsertOne) DoNothing() *MessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MessageCreate.OnConflict
// documentation for more info.
func (u *MessageUpsertOne) Update(set func(*MessageUpsert)) *MessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MessageUpsert{UpdateSet: update})
	}))
	return u
}

// SetSenderEntityID sets the "sender_entity_id" field.
func (u *MessageUpsertOne) SetSenderEntityID(v string) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetSenderEntityID(v)
	})
}

// UpdateSenderEntityID sets the "sender_entity_id" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateSenderEntityID() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateSenderEntityID()
	})
}

// ClearSenderEntityID clears the value of the "sender_entity_id" field.
func (u *MessageUpsertOne) ClearSenderEntityID() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.ClearSenderEntityID()
	})
}

// SetRecipientEntityID sets the "recipient_entity_id" field.
func (u *MessageUpsertOne) SetRecipientEntityID(v string) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetRecipientEntityID(v)
	})
}

// UpdateRecipientEntityID sets the "recipient_entity_id" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateRecipientEntityID() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateRecipientEntityID()
	})
}

// ClearRecipientEntityID clears the value of the "recipient_entity_id" field.
func (u *MessageUpsertOne) ClearRecipientEntityID() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.ClearRecipientEntityID()
	})
}

// SetSenderIdentifierType sets the "sender_identifier_type" field.
func (u *MessageUpsertOne) SetSenderIdentifierType(v string) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetSenderIdentifierType(v)
	})
}

// UpdateSenderIdentifierType sets the "sender_identifier_type" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateSenderIdentifierType() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateSenderIdentifierType()
	})
}

// SetSenderIdentifierValue sets the "sender_identifier_value" field.
func (u *MessageUpsertOne) SetSenderIdentifierValue(v string) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetSenderIdentifierValue(v)
	})
}

// UpdateSenderIdentifierValue sets the "sender_identifier_value" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateSenderIdentifierValue() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateSenderIdentifierValue()
	})
}

// SetContent sets the "content" field.
func (u *MessageUpsertOne) SetContent(v string) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateContent() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateContent()
	})
}

// SetIsOutgoing sets the "is_outgoing" field.
func (u *MessageUpsertOne) SetIsOutgoing(v bool) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetIsOutgoing(v)
	})
}

// UpdateIsOutgoing sets the "is_outgoing" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateIsOutgoing() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateIsOutgoing()
	})
}

// SetTimestamp sets the "timestamp" field.
func (u *MessageUpsertOne) SetTimestamp(v time.Time) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetTimestamp(v)
	})
}

// UpdateTimestamp sets the "timestamp" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateTimestamp() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateTimestamp()
	})
}

// SetSourceMessageID sets the "source_message_id" field.
func (u *MessageUpsertOne) SetSourceMessageID(v string) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetSourceMessageID(v)
	})
}

// UpdateSourceMessageID sets the "source_message_id" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateSourceMessageID() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateSourceMessageID()
	})
}

// ClearSourceMessageID clears the value of the "source_message_id" field.
func (u *MessageUpsertOne) ClearSourceMessageID() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.ClearSourceMessageID()
	})
}

// SetReplyToMessageID sets the "reply_to_message_id" field.
func (u *MessageUpsertOne) SetReplyToMessageID(v string) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetReplyToMessageID(v)
	})
}

// UpdateReplyToMessageID sets the "reply_to_message_id" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateReplyToMessageID() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateReplyToMessageID()
	})
}

// ClearReplyToMessageID clears the value of the "reply_to_message_id" field.
func (u *MessageUpsertOne) ClearReplyToMessageID() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.ClearReplyToMessageID()
	})
}

// SetMediaType sets the "media_type" field.
func (u *MessageUpsertOne) SetMediaType(v string) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetMediaType(v)
	})
}

// UpdateMediaType sets the "media_type" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateMediaType() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateMediaType()
	})
}

// ClearMediaType clears the value of the "media_type" field.
func (u *MessageUpsertOne) ClearMediaType() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.ClearMediaType()
	})
}

// SetMediaURL sets the "media_url" field.
func (u *MessageUpsertOne) SetMediaURL(v string) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetMediaURL(v)
	})
}

// UpdateMediaURL sets the "media_url" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateMediaURL() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateMediaURL()
	})
}

// ClearMediaURL clears the value of the "media_url" field.
func (u *MessageUpsertOne) ClearMediaURL() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.ClearMediaURL()
	})
}

// SetChatType sets the "chat_type" field.
func (u *MessageUpsertOne) SetChatType(v string) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetChatType(v)
	})
}

// UpdateChatType sets the "chat_type" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateChatType() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateChatType()
	})
}

// ClearChatType clears the value of the "chat_type" field.
func (u *MessageUpsertOne) ClearChatType() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.ClearChatType()
	})
}

// SetTopicID sets the "topic_id" field.
func (u *MessageUpsertOne) SetTopicID(v string) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetTopicID(v)
	})
}

// UpdateTopicID sets the "topic_id" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateTopicID() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateTopicID()
	})
}

// ClearTopicID clears the value of the "topic_id" field.
func (u *MessageUpsertOne) ClearTopicID() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.ClearTopicID()
	})
}

// SetExtractionStatus sets the "extraction_status" field.
func (u *MessageUpsertOne) SetExtractionStatus(v message.ExtractionStatus) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetExtractionStatus(v)
	})
}

// UpdateExtractionStatus sets the "extraction_status" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateExtractionStatus() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateExtractionStatus()
	})
}

// SetEmbedding sets the "embedding" field.
func (u *MessageUpsertOne) SetEmbedding(v pgvector.Vector) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetEmbedding(v)
	})
}

// UpdateEmbedding sets the "embedding" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateEmbedding() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateEmbedding()
	})
}

// ClearEmbedding clears the value of the "embedding" field.
func (u *MessageUpsertOne) ClearEmbedding() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.ClearEmbedding()
	})
}

// Exec executes the query.
func (u *MessageUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MessageCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MessageUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MessageUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: MessageUpsertOne.ID is not supported by MySQL driver. Use MessageUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MessageUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MessageCreateBulk is the builder for creating many Message entities in bulk.
type MessageCreateBulk struct {
	config
	err      error
	builders []*MessageCreate
	conflict []sql.ConflictOption
}

// Save creates the Message entities in the database.
func (_c *MessageCreateBulk) Save(ctx context.Context) ([]*Message, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Message, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MessageMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *MessageCreateBulk) SaveX(ctx context.Context) []*Message {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Message.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MessageUpsert) {
//			SetInteractionID(v+v).
//		}).
//		Exec(ctx)
func (_c *MessageCreateBulk) OnConflict(opts ...sql.ConflictOption) *MessageUpsertBulk {
	_c.conflict = opts
	return &MessageUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Message.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MessageCreateBulk) OnConflictColumns(columns ...string) *MessageUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MessageUpsertBulk{
		create: _c,
	}
}

// MessageUpsertBulk is the builder for "upsert"-ing
// a bulk of Message nodes.
type MessageUpsertBulk struct {
	create *MessageCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Message.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(message.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MessageUpsertBulk) UpdateNewValues() *MessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(message.FieldID)
			}
			if _, exists := b.mutation.InteractionID(); exists {
				s.SetIgnore(message.FieldInteractionID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(message.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Message.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MessageUpsertBulk) Ignore() *MessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MessageUpsertBulk) DoNothing() *MessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MessageCreateBulk.OnConflict
// documentation for more info.
func (u *MessageUpsertBulk) Update(set func(*MessageUpsert)) *MessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MessageUpsert{UpdateSet: update})
	}))
	return u
}

// SetSenderEntityID sets the "sender_entity_id" field.
func (u *MessageUpsertBulk) SetSenderEntityID(v string) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetSenderEntityID(v)
	})
}

// UpdateSenderEntityID sets the "sender_entity_id" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateSenderEntityID() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateSenderEntityID()
	})
}

// ClearSenderEntityID clears the value of the "sender_entity_id" field.
func (u *MessageUpsertBulk) ClearSenderEntityID() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.ClearSenderEntityID()
	})
}

// SetRecipientEntityID sets the "recipient_entity_id" field.
func (u *MessageUpsertBulk) SetRecipientEntityID(v string) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetRecipientEntityID(v)
	})
}

// UpdateRecipientEntityID sets the "recipient_entity_id" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateRecipientEntityID() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateRecipientEntityID()
	})
}

// ClearRecipientEntityID clears the value of the "recipient_entity_id" field.
func (u *MessageUpsertBulk) ClearRecipientEntityID() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.ClearRecipientEntityID()
	})
}

// SetSenderIdentifierType sets the "sender_identifier_type" field.
func (u *MessageUpsertBulk) SetSenderIdentifierType(v string) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetSenderIdentifierType(v)
	})
}

// UpdateSenderIdentifierType sets the "sender_identifier_type" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateSenderIdentifierType() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateSenderIdentifierType()
	})
}

// SetSenderIdentifierValue sets the "sender_identifier_value" field.
func (u *MessageUpsertBulk) SetSenderIdentifierValue(v string) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetSenderIdentifierValue(v)
	})
}

// UpdateSenderIdentifierValue sets the "sender_identifier_value" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateSenderIdentifierValue() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateSenderIdentifierValue()
	})
}

// SetContent sets the "content" field.
func (u *MessageUpsertBulk) SetContent(v string) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateContent() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateContent()
	})
}

// SetIsOutgoing sets the "is_outgoing" field.
func (u *MessageUpsertBulk) SetIsOutgoing(v bool) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetIsOutgoing(v)
	})
}

// UpdateIsOutgoing sets the "is_outgoing" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateIsOutgoing() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateIsOutgoing()
	})
}

// SetTimestamp sets the "timestamp" field.
func (u *MessageUpsertBulk) SetTimestamp(v time.Time) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetTimestamp(v)
	})
}

// UpdateTimestamp sets the "timestamp" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateTimestamp() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateTimestamp()
	})
}

// SetSourceMessageID sets the "source_message_id" field.
func (u *MessageUpsertBulk) SetSourceMessageID(v string) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetSourceMessageID(v)
	})
}

// UpdateSourceMessageID sets the "source_message_id" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateSourceMessageID() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateSourceMessageID()
	})
}

// ClearSourceMessageID clears the value of the "source_message_id" field.
func (u *MessageUpsertBulk) ClearSourceMessageID() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.ClearSourceMessageID()
	})
}

// SetReplyToMessageID sets the "reply_to_message_id" field.
func (u *MessageUpsertBulk) SetReplyToMessageID(v string) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetReplyToMessageID(v)
	})
}

// UpdateReplyToMessageID sets the "reply_to_message_id" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateReplyToMessageID() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateReplyToMessageID()
	})
}

// ClearReplyToMessageID clears the value of the "reply_to_message_id" field.
func (u *MessageUpsertBulk) ClearReplyToMessageID() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.ClearReplyToMessageID()
	})
}

// SetMediaType sets the "media_type" field.
func (u *MessageUpsertBulk) SetMediaType(v string) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetMediaType(v)
	})
}

// UpdateMediaType sets the "media_type" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateMediaType() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateMediaType()
	})
}

// ClearMediaType clears the value of the "media_type" field.
func (u *MessageUpsertBulk) ClearMediaType() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.ClearMediaType()
	})
}

// SetMediaURL sets the "media_url" field.
func (u *MessageUpsertBulk) SetMediaURL(v string) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetMediaURL(v)
	})
}

// UpdateMediaURL sets the "media_url" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateMediaURL() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateMediaURL()
	})
}

// ClearMediaURL clears the value of the "media_url" field.
func (u *MessageUpsertBulk) ClearMediaURL() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.ClearMediaURL()
	})
}

// SetChatType sets the "chat_type" field.
func (u *MessageUpsertBulk) SetChatType(v string) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetChatType(v)
	})
}

// UpdateChatType sets the "chat_type" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateChatType() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateChatType()
	})
}

// ClearChatType clears the value of the "chat_type" field.
func (u *MessageUpsertBulk) ClearChatType() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.ClearChatType()
	})
}

// SetTopicID sets the "topic_id" field.
func (u *MessageUpsertBulk) SetTopicID(v string) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetTopicID(v)
	})
}

// UpdateTopicID sets the "topic_id" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateTopicID() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateTopicID()
	})
}

// ClearTopicID clears the value of the "topic_id" field.
func (u *MessageUpsertBulk) ClearTopicID() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.ClearTopicID()
	})
}

// SetExtractionStatus sets the "extraction_status" field.
func (u *MessageUpsertBulk) SetExtractionStatus(v message.ExtractionStatus) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetExtractionStatus(v)
	})
}

// UpdateExtractionStatus sets the "extraction_status" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateExtractionStatus() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateExtractionStatus()
	})
}

// SetEmbedding sets the "embedding" field.
func (u *MessageUpsertBulk) SetEmbedding(v pgvector.Vector) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetEmbedding(v)
	})
}

// UpdateEmbedding sets the "embedding" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateEmbedding() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateEmbedding()
	})
}

// ClearEmbedding clears the value of the "embedding" field.
func (u *MessageUpsertBulk) ClearEmbedding() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.ClearEmbedding()
	})
}

// Exec executes the query.
func (u *MessageUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MessageCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MessageCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MessageUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
