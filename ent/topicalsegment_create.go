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

// TopicalSegmentCreate is the builder for creating a TopicalSegment entity.
type TopicalSegmentCreate struct {
	config
	mutation *TopicalSegmentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetChatID sets the "chat_id" field.
func (_c *TopicalSegmentCreate) SetChatID(v string) *TopicalSegmentCreate {
	_c.mutation.SetChatID(v)
	return _c
}

// SetInteractionID sets the "interaction_id" field.
func (_c *TopicalSegmentCreate) SetInteractionID(v string) *TopicalSegmentCreate {
	_c.mutation.SetInteractionID(v)
	return _c
}

// SetNillableInteractionID sets the "interaction_id" field if the given value is not nil.
func (_c *TopicalSegmentCreate) SetNillableInteractionID(v *string) *TopicalSegmentCreate {
	if v != nil {
		_c.SetInteractionID(*v)
	}
	return _c
}

// SetTopic sets the "topic" field.
func (_c *TopicalSegmentCreate) SetTopic(v string) *TopicalSegmentCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetKeywords sets the "keywords" field.
func (_c *TopicalSegmentCreate) SetKeywords(v []string) *TopicalSegmentCreate {
	_c.mutation.SetKeywords(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *TopicalSegmentCreate) SetSummary(v string) *TopicalSegmentCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *TopicalSegmentCreate) SetNillableSummary(v *string) *TopicalSegmentCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetParticipantIds sets the "participant_ids" field.
func (_c *TopicalSegmentCreate) SetParticipantIds(v []string) *TopicalSegmentCreate {
	_c.mutation.SetParticipantIds(v)
	return _c
}

// SetPrimaryParticipantID sets the "primary_participant_id" field.
func (_c *TopicalSegmentCreate) SetPrimaryParticipantID(v string) *TopicalSegmentCreate {
	_c.mutation.SetPrimaryParticipantID(v)
	return _c
}

// SetNillablePrimaryParticipantID sets the "primary_participant_id" field if the given value is not nil.
func (_c *TopicalSegmentCreate) SetNillablePrimaryParticipantID(v *string) *TopicalSegmentCreate {
	if v != nil {
		_c.SetPrimaryParticipantID(*v)
	}
	return _c
}

// SetMessageCount sets the "message_count" field.
func (_c *TopicalSegmentCreate) SetMessageCount(v int) *TopicalSegmentCreate {
	_c.mutation.SetMessageCount(v)
	return _c
}

// SetNillableMessageCount sets the "message_count" field if the given value is not nil.
func (_c *TopicalSegmentCreate) SetNillableMessageCount(v *int) *TopicalSegmentCreate {
	if v != nil {
		_c.SetMessageCount(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *TopicalSegmentCreate) SetStartedAt(v time.Time) *TopicalSegmentCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetEndedAt sets the "ended_at" field.
func (_c *TopicalSegmentCreate) SetEndedAt(v time.Time) *TopicalSegmentCreate {
	_c.mutation.SetEndedAt(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *TopicalSegmentCreate) SetStatus(v topicalsegment.Status) *TopicalSegmentCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TopicalSegmentCreate) SetNillableStatus(v *topicalsegment.Status) *TopicalSegmentCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetExtractionStatus sets the "extraction_status" field.
func (_c *TopicalSegmentCreate) SetExtractionStatus(v topicalsegment.ExtractionStatus) *TopicalSegmentCreate {
	_c.mutation.SetExtractionStatus(v)
	return _c
}

// SetNillableExtractionStatus sets the "extraction_status" field if the given value is not nil.
func (_c *TopicalSegmentCreate) SetNillableExtractionStatus(v *topicalsegment.ExtractionStatus) *TopicalSegmentCreate {
	if v != nil {
		_c.SetExtractionStatus(*v)
	}
	return _c
}

// SetExtractionError sets the "extraction_error" field.
func (_c *TopicalSegmentCreate) SetExtractionError(v string) *TopicalSegmentCreate {
	_c.mutation.SetExtractionError(v)
	return _c
}

// SetNillableExtractionError sets the "extraction_error" field if the given value is not nil.
func (_c *TopicalSegmentCreate) SetNillableExtractionError(v *string) *TopicalSegmentCreate {
	if v != nil {
		_c.SetExtractionError(*v)
	}
	return _c
}

// SetExtractionAttempts sets the "extraction_attempts" field.
func (_c *TopicalSegmentCreate) SetExtractionAttempts(v int) *TopicalSegmentCreate {
	_c.mutation.SetExtractionAttempts(v)
	return _c
}

// SetNillableExtractionAttempts sets the "extraction_attempts" field if the given value is not nil.
func (_c *TopicalSegmentCreate) SetNillableExtractionAttempts(v *int) *TopicalSegmentCreate {
	if v != nil {
		_c.SetExtractionAttempts(*v)
	}
	return _c
}

// SetNextExtractionAt sets the "next_extraction_at" field.
func (_c *TopicalSegmentCreate) SetNextExtractionAt(v time.Time) *TopicalSegmentCreate {
	_c.mutation.SetNextExtractionAt(v)
	return _c
}

// SetNillableNextExtractionAt sets the "next_extraction_at" field if the given value is not nil.
func (_c *TopicalSegmentCreate) SetNillableNextExtractionAt(v *time.Time) *TopicalSegmentCreate {
	if v != nil {
		_c.SetNextExtractionAt(*v)
	}
	return _c
}

// SetBatchID sets the "batch_id" field.
func (_c *TopicalSegmentCreate) SetBatchID(v string) *TopicalSegmentCreate {
	_c.mutation.SetBatchID(v)
	return _c
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_c *TopicalSegmentCreate) SetNillableBatchID(v *string) *TopicalSegmentCreate {
	if v != nil {
		_c.SetBatchID(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *TopicalSegmentCreate) SetConfidence(v float64) *TopicalSegmentCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *TopicalSegmentCreate) SetNillableConfidence(v *float64) *TopicalSegmentCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetRelatedSegmentIds sets the "related_segment_ids" field.
func (_c *TopicalSegmentCreate) SetRelatedSegmentIds(v []string) *TopicalSegmentCreate {
	_c.mutation.SetRelatedSegmentIds(v)
	return _c
}

// SetExtractedItemIds sets the "extracted_item_ids" field.
func (_c *TopicalSegmentCreate) SetExtractedItemIds(v []string) *TopicalSegmentCreate {
	_c.mutation.SetExtractedItemIds(v)
	return _c
}

// SetEmbedding sets the "embedding" field.
func (_c *TopicalSegmentCreate) SetEmbedding(v pgvector.Vector) *TopicalSegmentCreate {
	_c.mutation.SetEmbedding(v)
	return _c
}

// SetNillableEmbedding sets the "embedding" field if the given value is not nil.
func (_c *TopicalSegmentCreate) SetNillableEmbedding(v *pgvector.Vector) *TopicalSegmentCreate {
	if v != nil {
		_c.SetEmbedding(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TopicalSegmentCreate) SetCreatedAt(v time.Time) *TopicalSegmentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TopicalSegmentCreate) SetNillableCreatedAt(v *time.Time) *TopicalSegmentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TopicalSegmentCreate) SetUpdatedAt(v time.Time) *TopicalSegmentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TopicalSegmentCreate) SetNillableUpdatedAt(v *time.Time) *TopicalSegmentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TopicalSegmentCreate) SetID(v string) *TopicalSegmentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetInteraction sets the "interaction" edge to the Interaction entity.
func (_c *TopicalSegmentCreate) SetInteraction(v *Interaction) *TopicalSegmentCreate {
	return _c.SetInteractionID(v.ID)
}

// AddMessageIDs adds the "messages" edge to the Message entity by IDs.
func (_c *TopicalSegmentCreate) AddMessageIDs(ids ...string) *TopicalSegmentCreate {
	_c.mutation.AddMessageIDs(ids...)
	return _c
}

// AddMessages adds the "messages" edges to the Message entity.
func (_c *TopicalSegmentCreate) AddMessages(v ...*Message) *TopicalSegmentCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMessageIDs(ids...)
}

// Mutation returns the TopicalSegmentMutation object of the builder.
func (_c *TopicalSegmentCreate) Mutation() *TopicalSegmentMutation {
	return _c.mutation
}

// Save creates the TopicalSegment in the database.
func (_c *TopicalSegmentCreate) Save(ctx context.Context) (*TopicalSegment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TopicalSegmentCreate) SaveX(ctx context.Context) *TopicalSegment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TopicalSegmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TopicalSegmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TopicalSegmentCreate) defaults() {
	if _, ok := _c.mutation.MessageCount(); !ok {
		v := topicalsegment.DefaultMessageCount
		_c.mutation.SetMessageCount(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := topicalsegment.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ExtractionStatus(); !ok {
		v := topicalsegment.DefaultExtractionStatus
		_c.mutation.SetExtractionStatus(v)
	}
	if _, ok := _c.mutation.ExtractionAttempts(); !ok {
		v := topicalsegment.DefaultExtractionAttempts
		_c.mutation.SetExtractionAttempts(v)
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		v := topicalsegment.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := topicalsegment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := topicalsegment.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TopicalSegmentCreate) check() error {
	if _, ok := _c.mutation.ChatID(); !ok {
		return &ValidationError{Name: "chat_id", err: errors.New(`ent: missing required field "TopicalSegment.chat_id"`)}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "TopicalSegment.topic"`)}
	}
	if _, ok := _c.mutation.MessageCount(); !ok {
		return &ValidationError{Name: "message_count", err: errors.New(`ent: missing required field "TopicalSegment.message_count"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "TopicalSegment.started_at"`)}
	}
	if _, ok := _c.mutation.EndedAt(); !ok {
		return &ValidationError{Name: "ended_at", err: errors.New(`ent: missing required field "TopicalSegment.ended_at"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "TopicalSegment.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := topicalsegment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TopicalSegment.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExtractionStatus(); !ok {
		return &ValidationError{Name: "extraction_status", err: errors.New(`ent: missing required field "TopicalSegment.extraction_status"`)}
	}
	if v, ok := _c.mutation.ExtractionStatus(); ok {
		if err := topicalsegment.ExtractionStatusValidator(v); err != nil {
			return &ValidationError{Name: "extraction_status", err: fmt.Errorf(`ent: validator failed for field "TopicalSegment.extraction_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExtractionAttempts(); !ok {
		return &ValidationError{Name: "extraction_attempts", err: errors.New(`ent: missing required field "TopicalSegment.extraction_attempts"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "TopicalSegment.confidence"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TopicalSegment.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "TopicalSegment.updated_at"`)}
	}
	return nil
}

func (_c *TopicalSegmentCreate) sqlSave(ctx context.Context) (*TopicalSegment, error) {
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
			return nil, fmt.Errorf("unexpected TopicalSegment.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TopicalSegmentCreate) createSpec() (*TopicalSegment, *sqlgraph.CreateSpec) {
	var (
		_node = &TopicalSegment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(topicalsegment.Table, sqlgraph.NewFieldSpec(topicalsegment.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ChatID(); ok {
		_spec.SetField(topicalsegment.FieldChatID, field.TypeString, value)
		_node.ChatID = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(topicalsegment.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Keywords(); ok {
		_spec.SetField(topicalsegment.FieldKeywords, field.TypeJSON, value)
		_node.Keywords = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(topicalsegment.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.ParticipantIds(); ok {
		_spec.SetField(topicalsegment.FieldParticipantIds, field.TypeJSON, value)
		_node.ParticipantIds = value
	}
	if value, ok := _c.mutation.PrimaryParticipantID(); ok {
		_spec.SetField(topicalsegment.FieldPrimaryParticipantID, field.TypeString, value)
		_node.PrimaryParticipantID = &value
	}
	if value, ok := _c.mutation.MessageCount(); ok {
		_spec.SetField(topicalsegment.FieldMessageCount, field.TypeInt, value)
		_node.MessageCount = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(topicalsegment.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.EndedAt(); ok {
		_spec.SetField(topicalsegment.FieldEndedAt, field.TypeTime, value)
		_node.EndedAt = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(topicalsegment.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ExtractionStatus(); ok {
		_spec.SetField(topicalsegment.FieldExtractionStatus, field.TypeEnum, value)
		_node.ExtractionStatus = value
	}
	if value, ok := _c.mutation.ExtractionError(); ok {
		_spec.SetField(topicalsegment.FieldExtractionError, field.TypeString, value)
		_node.ExtractionError = &value
	}
	if value, ok := _c.mutation.ExtractionAttempts(); ok {
		_spec.SetField(topicalsegment.FieldExtractionAttempts, field.TypeInt, value)
		_node.ExtractionAttempts = value
	}
	if value, ok := _c.mutation.NextExtractionAt(); ok {
		_spec.SetField(topicalsegment.FieldNextExtractionAt, field.TypeTime, value)
		_node.NextExtractionAt = &value
	}
	if value, ok := _c.mutation.BatchID(); ok {
		_spec.SetField(topicalsegment.FieldBatchID, field.TypeString, value)
		_node.BatchID = &value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(topicalsegment.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.RelatedSegmentIds(); ok {
		_spec.SetField(topicalsegment.FieldRelatedSegmentIds, field.TypeJSON, value)
		_node.RelatedSegmentIds = value
	}
	if value, ok := _c.mutation.ExtractedItemIds(); ok {
		_spec.SetField(topicalsegment.FieldExtractedItemIds, field.TypeJSON, value)
		_node.ExtractedItemIds = value
	}
	if value, ok := _c.mutation.Embedding(); ok {
		_spec.SetField(topicalsegment.FieldEmbedding, field.TypeOther, value)
		_node.Embedding = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(topicalsegment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(topicalsegment.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.InteractionIDs(); len(nodes) > 0 {
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
		_node.InteractionID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TopicalSegment.Create().
//		SetChatID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TopicalSegmentUpsert) {
//			SetChatID(v+v).
//		}).
//		Exec(ctx)
func (_c *TopicalSegmentCreate) OnConflict(opts ...sql.ConflictOption) *TopicalSegmentUpsertOne {
	_c.conflict = opts
	return &TopicalSegmentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TopicalSegment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TopicalSegmentCreate) OnConflictColumns(columns ...string) *TopicalSegmentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TopicalSegmentUpsertOne{
		create: _c,
	}
}

type (
	// TopicalSegmentUpsertOne is the builder for "upsert"-ing
	//  one TopicalSegment node.
	TopicalSegmentUpsertOne struct {
		create *TopicalSegmentCreate
	}

	// TopicalSegmentUpsert is the "OnConflict" setter.
	TopicalSegmentUpsert struct {
		*sql.UpdateSet
	}
)

// SetChatID sets the "chat_id" field.
func (u *TopicalSegmentUpsert) SetChatID(v string) *TopicalSegmentUpsert {
	u.Set(topicalsegment.FieldChatID, v)
	return u
}

// UpdateChatID sets the "chat_id" field to the value that was provided on create.
func (u *TopicalSegmentUpsert) UpdateChatID() *TopicalSegmentUpsert {
	u.SetExcluded(topicalsegment.FieldChatID)
	return u
}

// SetInteractionID sets the "interaction_id" field.
func (u *TopicalSegmentUpsert) SetInteractionID(v string) *TopicalSegmentUpsert {
	u.Set(topicalsegment.FieldInteractionID, v)
	return u
}

// UpdateInteractionID sets the "interaction_id" field to the value that was provided on create.
func (u *TopicalSegmentUpsert) UpdateInteractionID() *TopicalSegmentUpsert {
	u.SetExcluded(topicalsegment.FieldInteractionID)
	return u
}

// ClearInteractionID clears the value of the "interaction_id" field.
func (u *TopicalSegmentUpsert) ClearInteractionID() *TopicalSegmentUpsert {
	u.SetNull(topicalsegment.FieldInteractionID)
	return u
}

// SetTopic sets the "topic" field.
func (u *TopicalSegmentUpsert) SetTopic(v string) *TopicalSegmentUpsert {
	u.Set(topicalsegment.FieldTopic, v)
	return u
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *TopicalSegmentUpsert) UpdateTopic() *TopicalSegmentUpsert {
	u.SetExcluded(topicalsegment.FieldTopic)
	return u
}

// SetKeywords sets the "keywords" field.
func (u *TopicalSegmentUpsert) SetKeywords(v []string) *TopicalSegmentUpsert {
	u.Set(topicalsegment.FieldKeywords, v)
	return u
}

// UpdateKeywords sets the "keywords" field to the value that was provided on create.
func (u *TopicalSegmentUpsert) UpdateKeywords() *TopicalSegmentUpsert {
	u.SetExcluded(topicalsegment.FieldKeywords)
	return u
}

// ClearKeywords clears the value of the "keywords" field.
func (u *TopicalSegmentUpsert) ClearKeywords() *TopicalSegmentUpsert {
	u.SetNull(topicalsegment.FieldKeywords)
	return u
}

// SetSummary sets the "summary" field.
func (u *TopicalSegmentUpsert) SetSummary(v string) *TopicalSegmentUpsert {
	u.Set(topicalsegment.FieldSummary, v)
	return u
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *TopicalSegmentUpsert) UpdateSummary() *TopicalSegmentUpsert {
	u.SetExcluded(topicalsegment.FieldSummary)
	return u
}

// ClearSummary clears the value of the "summary" field.
func (u *TopicalSegmentUpsert) ClearSummary() *TopicalSegmentUpsert {
	u.SetNull(topicalsegment.FieldSummary)
	return u
}

// SetParticipantIds sets the "participant_ids" field.
func (u *TopicalSegmentUpsert) SetParticipantIds(v []string) *TopicalSegmentUpsert {
	u.Set(topicalsegment.FieldParticipantIds, v)
	return u
}

// UpdateParticipantIds sets the "participant_ids" field to the value that was provided on create.
func (u *TopicalSegmentUpsert) UpdateParticipantIds() *TopicalSegmentUpsert {
	u.SetExcluded(topicalsegment.FieldParticipantIds)
	return u
}

// ClearParticipantIds clears the value of the "participant_ids" field.
func (u *TopicalSegmentUpsert) ClearParticipantIds() *TopicalSegmentUpsert {
	u.SetNull(topicalsegment.FieldParticipantIds)
	return u
}

// SetPrimaryParticipantID sets the "primary_participant_id" field.
func (u *TopicalSegmentUpsert) SetPrimaryParticipantID(v string) *TopicalSegmentUpsert {
	u.Set(topicalsegment.FieldPrimaryParticipantID, v)
	return u
}

// UpdatePrimaryParticipantID sets the "primary_participant_id" field to the value that was provided on create.
func (u *TopicalSegmentUpsert) UpdatePrimaryParticipantID() *TopicalSegmentUpsert {
	u.SetExcluded(topicalsegment.FieldPrimaryParticipantID)
	return u
}

// ClearPrimaryParticipantID clears the value of the "primary_participant_id" field.
func (u *TopicalSegmentUpsert) ClearPrimaryParticipantID() *TopicalSegmentUpsert {
	u.SetNull(topicalsegment.FieldPrimaryParticipantID)
	return u
}

// SetMessageCount sets the "message_count" field.
func (u *TopicalSegmentUpsert) SetMessageCount(v int) *TopicalSegmentUpsert {
	u.Set(topicalsegment.FieldMessageCount, v)
	return u
}

// UpdateMessageCount sets the "message_count" field to the value that was provided on create.
func (u *TopicalSegmentUpsert) UpdateMessageCount() *TopicalSegmentUpsert {
	u.SetExcluded(topicalsegment.FieldMessageCount)
	return u
}

// AddMessageCount adds v to the "message_count" field.
func (u *TopicalSegmentUpsert) AddMessageCount(v int) *TopicalSegmentUpsert {
	u.Add(topicalsegment.FieldMessageCount, v)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *TopicalSegmentUpsert) SetStartedAt(v time.Time) *TopicalSegmentUpsert {
	u.Set(topicalsegment.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *TopicalSegmentUpsert) UpdateStartedAt() *TopicalSegmentUpsert {
	u.SetExcluded(topicalsegment.FieldStartedAt)
	return u
}

// SetEndedAt sets the "ended_at" field.
func (u *TopicalSegmentUpsert) SetEndedAt(v time.Time) *TopicalSegmentUpsert {
	u.Set(topicalsegment.FieldEndedAt, v)
	return u
}

// UpdateEndedAt sets the "ended_at" field to the value that was provided on create.
func (u *TopicalSegmentUpsert) UpdateEndedAt() *TopicalSegmentUpsert {
	u.SetExcluded(topicalsegment.FieldEndedAt)
	return u
}

// SetStatus sets the "status" field.
func (u *TopicalSegmentUpsert) SetStatus(v topicalsegment.Status) *TopicalSegmentUpsert {
	u.Set(topicalsegment.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TopicalSegmentUpsert) UpdateStatus() *TopicalSegmentUpsert {
	u.SetExcluded(topicalsegment.FieldStatus)
	return u
}

// SetExtractionStatus sets the "extraction_status" field.
func (u *TopicalSegmentUpsert) SetExtractionStatus(v topicalsegment.ExtractionStatus) *TopicalSegmentUpsert {
	u.Set(topicalsegment.FieldExtractionStatus, v)
	return u
}

// UpdateExtractionStatus sets the "extraction_status" field to the value that was provided on create.
func (u *TopicalSegmentUpsert) UpdateExtractionStatus() *TopicalSegmentUpsert {
	u.SetExcluded(topicalsegment.FieldExtractionStatus)
	return u
}

// SetExtractionError sets the "extraction_error" field.
func (u *TopicalSegmentUpsert) SetExtractionError(v string) *TopicalSegmentUpsert {
	u.Set(topicalsegment.FieldExtractionError, v)
	return u
}

// UpdateExtractionError sets the "extraction_error" field to the value that was provided on create.
func (u *TopicalSegmentUpsert) UpdateExtractionError() *TopicalSegmentUpsert {
	u.SetExcluded(topicalsegment.FieldExtractionError)
	return u
}

// ClearExtractionError clears the value of the "extraction_error" field.
func (u *TopicalSegmentUpsert) ClearExtractionError() *TopicalSegmentUpsert {
	u.SetNull(topicalsegment.FieldExtractionError)
	return u
}

// SetExtractionAttempts sets the "extraction_attempts" field.
func (u *TopicalSegmentUpsert) SetExtractionAttempts(v int) *TopicalSegmentUpsert {
	u.Set(topicalsegment.FieldExtractionAttempts, v)
	return u
}

// UpdateExtractionAttempts sets the "extraction_attempts" field to the value that was provided on create.
func (u *TopicalSegmentUpsert) UpdateExtractionAttempts() *TopicalSegmentUpsert {
	u.SetExcluded(topicalsegment.FieldExtractionAttempts)
	return u
}

// AddExtractionAttempts adds v to the "extraction_attempts" field.
func (u *TopicalSegmentUpsert) AddExtractionAttempts(v int) *TopicalSegmentUpsert {
	u.Add(topicalsegment.FieldExtractionAttempts, v)
	return u
}

// SetNextExtractionAt sets the "next_extraction_at" field.
func (u *TopicalSegmentUpsert) SetNextExtractionAt(v time.Time) *TopicalSegmentUpsert {
	u.Set(topicalsegment.FieldNextExtractionAt, v)
	return u
}

// UpdateNextExtractionAt sets the "next_extraction_at" field to the value that was provided on create.
func (u *TopicalSegmentUpsert) UpdateNextExtractionAt() *TopicalSegmentUpsert {
	u.SetExcluded(topicalsegment.FieldNextExtractionAt)
	return u
}

// ClearNextExtractionAt clears the value of the "next_extraction_at" field.
func (u *TopicalSegmentUpsert) ClearNextExtractionAt() *TopicalSegmentUpsert {
	u.SetNull(topicalsegment.FieldNextExtractionAt)
	return u
}

// SetBatchID sets the "batch_id" field.
func (u *TopicalSegmentUpsert) SetBatchID(v string) *TopicalSegmentUpsert {
	u.Set(topicalsegment.FieldBatchID, v)
	return u
}

// UpdateBatchID sets the "batch_id" field to the value that was provided on create.
func (u *TopicalSegmentUpsert) UpdateBatchID() *TopicalSegmentUpsert {
	u.SetExcluded(topicalsegment.FieldBatchID)
	return u
}

// ClearBatchID clears the value of the "batch_id" field.
func (u *TopicalSegmentUpsert) ClearBatchID() *TopicalSegmentUpsert {
	u.SetNull(topicalsegment.FieldBatchID)
	return u
}

// SetConfidence sets the "confidence" field.
func (u *TopicalSegmentUpsert) SetConfidence(v float64) *TopicalSegmentUpsert {
	u.Set(topicalsegment.FieldConfidence, v)
	return u
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *TopicalSegmentUpsert) UpdateConfidence() *TopicalSegmentUpsert {
	u.SetExcluded(topicalsegment.FieldConfidence)
	return u
}

// AddConfidence adds v to the "confidence" field.
func (u *TopicalSegmentUpsert) AddConfidence(v float64) *TopicalSegmentUpsert {
	u.Add(topicalsegment.FieldConfidence, v)
	return u
}

// SetRelatedSegmentIds sets the "related_segment_ids" field.
func (u *TopicalSegmentUpsert) SetRelatedSegmentIds(v []string) *TopicalSegmentUpsert {
	u.Set(topicalsegment.FieldRelatedSegmentIds, v)
	return u
}

// UpdateRelatedSegmentIds sets the "related_segment_ids" field to the value that was provided on create.
func (u *TopicalSegmentUpsert) UpdateRelatedSegmentIds() *TopicalSegmentUpsert {
	u.SetExcluded(topicalsegment.FieldRelatedSegmentIds)
	return u
}

// ClearRelatedSegmentIds clears the value of the "related_segment_ids" field.
func (u *TopicalSegmentUpsert) ClearRelatedSegmentIds() *TopicalSegmentUpsert {
	u.SetNull(topicalsegment.FieldRelatedSegmentIds)
	return u
}

// SetExtractedItemIds sets the "extracted_item_ids" field.
func (u *TopicalSegmentUpsert) SetExtractedItemIds(v []string) *TopicalSegmentUpsert {
	u.Set(topicalsegment.FieldExtractedItemIds, v)
	return u
}

// UpdateExtractedItemIds sets the "extracted_item_ids" field to the value that was provided on create.
func (u *TopicalSegmentUpsert) UpdateExtractedItemIds() *TopicalSegmentUpsert {
	u.SetExcluded(topicalsegment.FieldExtractedItemIds)
	return u
}

// ClearExtractedItemIds clears the value of the "extracted_item_ids" field.
func (u *TopicalSegmentUpsert) ClearExtractedItemIds() *TopicalSegmentUpsert {
	u.SetNull(topicalsegment.FieldExtractedItemIds)
	return u
}

// SetEmbedding sets the "embedding" field.
func (u *TopicalSegmentUpsert) SetEmbedding(v pgvector.Vector) *TopicalSegmentUpsert {
	u.Set(topicalsegment.FieldEmbedding, v)
	return u
}

// UpdateEmbedding sets the "embedding" field to the value that was provided on create.
func (u *TopicalSegmentUpsert) UpdateEmbedding() *TopicalSegmentUpsert {
	u.SetExcluded(topicalsegment.FieldEmbedding)
	return u
}

// ClearEmbedding clears the value of the "embedding" field.
func (u *TopicalSegmentUpsert) ClearEmbedding() *TopicalSegmentUpsert {
	u.SetNull(topicalsegment.FieldEmbedding)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TopicalSegmentUpsert) SetUpdatedAt(v time.Time) *TopicalSegmentUpsert {
	u.Set(topicalsegment.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TopicalSegmentUpsert) UpdateUpdatedAt() *TopicalSegmentUpsert {
	u.SetExcluded(topicalsegment.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.TopicalSegment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(topicalsegment.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TopicalSegmentUpsertOne) UpdateNewValues() *TopicalSegmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(topicalsegment.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(topicalsegment.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TopicalSegment.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TopicalSegmentUpsertOne) Ignore() *TopicalSegmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TopicalSegmentUpsertOne) DoNothing() *TopicalSegmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TopicalSegmentCreate.OnConflict
// documentation for more info.
func (u *TopicalSegmentUpsertOne) Update(set func(*TopicalSegmentUpsert)) *TopicalSegmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TopicalSegmentUpsert{UpdateSet: update})
	}))
	return u
}

// SetChatID sets the "chat_id" field.
func (u *TopicalSegmentUpsertOne) SetChatID(v string) *TopicalSegmentUpsertOne {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.SetChatID(v)
	})
}

// UpdateChatID sets the "chat_id" field to the value that was provided on create.
func (u *TopicalSegmentUpsertOne) UpdateChatID() *TopicalSegmentUpsertOne {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.UpdateChatID()
	})
}

// SetInteractionID sets the "interaction_id" field.
func (u *TopicalSegmentUpsertOne) SetInteractionID(v string) *TopicalSegmentUpsertOne {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.SetInteractionID(v)
	})
}

// UpdateInteractionID sets the "interaction_id" field to the value that was provided on create.
func (u *TopicalSegmentUpsertOne) UpdateInteractionID() *TopicalSegmentUpsertOne {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.UpdateInteractionID()
	})
}

// ClearInteractionID clears the value of the "interaction_id" field.
func (u *TopicalSegmentUpsertOne) ClearInteractionID() *TopicalSegmentUpsertOne {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.ClearInteractionID()
	})
}

// SetTopic sets the "topic" field.
func (u *TopicalSegmentUpsertOne) SetTopic(v string) *TopicalSegmentUpsertOne {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.SetTopic(v)
	})
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *TopicalSegmentUpsertOne) UpdateTopic() *TopicalSegmentUpsertOne {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.UpdateTopic()
	})
}

// SetKeywords sets the "keywords" field.
func (u *TopicalSegmentUpsertOne) SetKeywords(v []string) *TopicalSegmentUpsertOne {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.SetKeywords(v)
	})
}

// UpdateKeywords sets the "keywords" field to the value that was provided on create.
func (u *TopicalSegmentUpsertOne) UpdateKeywords() *TopicalSegmentUpsertOne {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.UpdateKeywords()
	})
}

// ClearKeywords clears the value of the "keywords" field.
func (u *TopicalSegmentUpsertOne) ClearKeywords() *TopicalSegmentUpsertOne {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.ClearKeywords()
	})
}

// SetSummary sets the "summary" field.
func (u *TopicalSegmentUpsertOne) SetSummary(v string) *TopicalSegmentUpsertOne {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.SetSummary(v)
	})
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *TopicalSegmentUpsertOne) UpdateSummary() *TopicalSegmentUpsertOne {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.UpdateSummary()
	})
}

// ClearSummary clears the value of the "summary" field.
func (u *TopicalSegmentUpsertOne) ClearSummary() *TopicalSegmentUpsertOne {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.ClearSummary()
	})
}

// SetParticipantIds sets the "participant_ids" field.
func (u *TopicalSegmentUpsertOne) SetParticipantIds(v []string) *TopicalSegmentUpsertOne {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.SetParticipantIds(v)
	})
}

// UpdateParticipantIds sets the "participant_ids" field to the value that was provided on create.
func (u *TopicalSegmentUpsertOne) UpdateParticipantIds() *TopicalSegmentUpsertOne {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.UpdateParticipantIds()
	})
}

// ClearParticipantIds clears the value of the "participant_ids" field.
func (u *TopicalSegmentUpsertOne) ClearParticipantIds() *TopicalSegmentUpsertOne {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.ClearParticipantIds()
	})
}

// SetPrimaryParticipantID sets the "primary_participant_id" field.
func (u *TopicalSegmentUpsertOne) SetPrimaryParticipantID(v string) *TopicalSegmentUpsertOne {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.SetPrimaryParticipantID(v)
	})
}

// UpdatePrimaryParticipantID sets the "primary_participant_id" field to the value that was provided on create.
func (u *TopicalSegmentUpsertOne) UpdatePrimaryParticipantID() *TopicalSegmentUpsertOne {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.UpdatePrimaryParticipantID()
	})
}

// ClearPrimaryParticipantID clears the value of the "primary_participant_id" field.
func (u *TopicalSegmentUpsertOne) ClearPrimaryParticipantID() *TopicalSegmentUpsertOne {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.ClearPrimaryParticipantID()
	})
}

// SetMessageCount sets the "message_count" field.
func (u *TopicalSegmentUpsertOne) SetMessageCount(v int) *TopicalSegmentUpsertOne {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.SetMessageCount(v)
	})
}

// AddMessageCount adds v to the "message_count" field.
func (u *TopicalSegmentUpsertOne) AddMessageCount(v int) *TopicalSegmentUpsertOne {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.AddMessageCount(v)
	})
}

// UpdateMessageCount sets the "message_count" field to the value that was provided on create.
func (u *TopicalSegmentUpsertOne) UpdateMessageCount() *TopicalSegmentUpsertOne {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.UpdateMessageCount()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *TopicalSegmentUpsertOne) SetStartedAt(v time.Time) *TopicalSegmentUpsertOne {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *TopicalSegmentUpsertOne) UpdateStartedAt() *TopicalSegmentUpsertOne {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.UpdateStartedAt()
	})
}

// SetEndedAt sets the "ended_at" field.
func (u *TopicalSegmentUpsertOne) SetEndedAt(v time.Time) *TopicalSegmentUpsertOne {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.SetEndedAt(v)
	})
}

// UpdateEndedAt sets the "ended_at" field to the value that was provided on create.
func (u *TopicalSegmentUpsertOne) UpdateEndedAt() *TopicalSegmentUpsertOne {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.UpdateEndedAt()
	})
}

// SetStatus sets the "status" field.
func (u *TopicalSegmentUpsertOne) SetStatus(v topicalsegment.Status) *TopicalSegmentUpsertOne {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TopicalSegmentUpsertOne) UpdateStatus() *TopicalSegmentUpsertOne {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.UpdateStatus()
	})
}

// SetExtractionStatus sets the "extraction_status" field.
func (u *TopicalSegmentUpsertOne) SetExtractionStatus(v topicalsegment.ExtractionStatus) *TopicalSegmentUpsertOne {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.SetExtractionStatus(v)
	})
}

// UpdateExtractionStatus sets the "extraction_status" field to the value that was provided on create.
func (u *TopicalSegmentUpsertOne) UpdateExtractionStatus() *TopicalSegmentUpsertOne {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.UpdateExtractionStatus()
	})
}

// SetExtractionError sets the "extraction_error" field.
func (u *TopicalSegmentUpsertOne) SetExtractionError(v string) *TopicalSegmentUpsertOne {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.SetExtractionError(v)
	})
}

// UpdateExtractionError sets the "extraction_error" field to the value that was provided on create.
func (u *TopicalSegmentUpsertOne) UpdateExtractionError() *TopicalSegmentUpsertOne {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.UpdateExtractionError()
	})
}

// ClearExtractionError clears the value of the "extraction_error" field.
func (u *TopicalSegmentUpsertOne) ClearExtractionError() *TopicalSegmentUpsertOne {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.ClearExtractionError()
	})
}

// SetExtractionAttempts sets the "extraction_attempts" field.
func (u *TopicalSegmentUpsertOne) SetExtractionAttempts(v int) *TopicalSegmentUpsertOne {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.SetExtractionAttempts(v)
	})
}

// AddExtractionAttempts adds v to the "extraction_attempts" field.
func (u *TopicalSegmentUpsertOne) AddExtractionAttempts(v int) *TopicalSegmentUpsertOne {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.AddExtractionAttempts(v)
	})
}

// UpdateExtractionAttempts sets the "extraction_attempts" field to the value that was provided on create.
func (u *TopicalSegmentUpsertOne) UpdateExtractionAttempts() *TopicalSegmentUpsertOne {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.UpdateExtractionAttempts()
	})
}

// SetNextExtractionAt sets the "next_extraction_at" field.
func (u *TopicalSegmentUpsertOne) SetNextExtractionAt(v time.Time) *TopicalSegmentUpsertOne {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.SetNextExtractionAt(v)
	})
}

// UpdateNextExtractionAt sets the "next_extraction_at" field to the value that was provided on create.
func (u *TopicalSegmentUpsertOne) UpdateNextExtractionAt() *TopicalSegmentUpsertOne {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.UpdateNextExtractionAt()
	})
}

// ClearNextExtractionAt clears the value of the "next_extraction_at" field.
func (u *TopicalSegmentUpsertOne) ClearNextExtractionAt() *TopicalSegmentUpsertOne {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.ClearNextExtractionAt()
	})
}

// SetBatchID sets the "batch_id" field.
func (u *TopicalSegmentUpsertOne) SetBatchID(v string) *TopicalSegmentUpsertOne {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.SetBatchID(v)
	})
}

// UpdateBatchID sets the "batch_id" field to the value that was provided on create.
func (u *TopicalSegmentUpsertOne) UpdateBatchID() *TopicalSegmentUpsertOne {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.UpdateBatchID()
	})
}

// ClearBatchID clears the value of the "batch_id" field.
func (u *TopicalSegmentUpsertOne) ClearBatchID() *TopicalSegmentUpsertOne {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.ClearBatchID()
	})
}

// SetConfidence sets the "confidence" field.
func (u *TopicalSegmentUpsertOne) SetConfidence(v float64) *TopicalSegmentUpsertOne {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *TopicalSegmentUpsertOne) AddConfidence(v float64) *TopicalSegmentUpsertOne {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *TopicalSegmentUpsertOne) UpdateConfidence() *TopicalSegmentUpsertOne {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.UpdateConfidence()
	})
}

// SetRelatedSegmentIds sets the "related_segment_ids" field.
func (u *TopicalSegmentUpsertOne) SetRelatedSegmentIds(v []string) *TopicalSegmentUpsertOne {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.SetRelatedSegmentIds(v)
	})
}

// UpdateRelatedSegmentIds sets the "related_segment_ids" field to the value that was provided on create.
func (u *TopicalSegmentUpsertOne) UpdateRelatedSegmentIds() *TopicalSegmentUpsertOne {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.UpdateRelatedSegmentIds()
	})
}

// ClearRelatedSegmentIds clears the value of the "related_segment_ids" field.
func (u *TopicalSegmentUpsertOne) ClearRelatedSegmentIds() *TopicalSegmentUpsertOne {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.ClearRelatedSegmentIds()
	})
}

// SetExtractedItemIds sets the "extracted_item_ids" field.
func (u *TopicalSegmentUpsertOne) SetExtractedItemIds(v []string) *TopicalSegmentUpsertOne {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.SetExtractedItemIds(v)
	})
}

// UpdateExtractedItemIds sets the "extracted_item_ids" field to the value that was provided on create.
func (u *TopicalSegmentUpsertOne) UpdateExtractedItemIds() *TopicalSegmentUpsertOne {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.UpdateExtractedItemIds()
	})
}

// ClearExtractedItemIds clears the value of the "extracted_item_ids" field.
func (u *TopicalSegmentUpsertOne) ClearExtractedItemIds() *TopicalSegmentUpsertOne {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.ClearExtractedItemIds()
	})
}

// SetEmbedding sets the "embedding" field.
func (u *TopicalSegmentUpsertOne) SetEmbedding(v pgvector.Vector) *TopicalSegmentUpsertOne {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.SetEmbedding(v)
	})
}

// UpdateEmbedding sets the "embedding" field to the value that was provided on create.
func (u *TopicalSegmentUpsertOne) UpdateEmbedding() *TopicalSegmentUpsertOne {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.UpdateEmbedding()
	})
}

// ClearEmbedding clears the value of the "embedding" field.
func (u *TopicalSegmentUpsertOne) ClearEmbedding() *TopicalSegmentUpsertOne {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.ClearEmbedding()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TopicalSegmentUpsertOne) SetUpdatedAt(v time.Time) *TopicalSegmentUpsertOne {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TopicalSegmentUpsertOne) UpdateUpdatedAt() *TopicalSegmentUpsertOne {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *TopicalSegmentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TopicalSegmentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TopicalSegmentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TopicalSegmentUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: TopicalSegmentUpsertOne.ID is not supported by MySQL driver. Use TopicalSegmentUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TopicalSegmentUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TopicalSegmentCreateBulk is the builder for creating many TopicalSegment entities in bulk.
type TopicalSegmentCreateBulk struct {
	config
	err      error
	builders []*TopicalSegmentCreate
	conflict []sql.ConflictOption
}

// Save creates the TopicalSegment entities in the database.
func (_c *TopicalSegmentCreateBulk) Save(ctx context.Context) ([]*TopicalSegment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TopicalSegment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TopicalSegmentMutation)
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
func (_c *TopicalSegmentCreateBulk) SaveX(ctx context.Context) []*TopicalSegment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TopicalSegmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TopicalSegmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TopicalSegment.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TopicalSegmentUpsert) {
//			SetChatID(v+v).
//		}).
//		Exec(ctx)
func (_c *TopicalSegmentCreateBulk) OnConflict(opts ...sql.ConflictOption) *TopicalSegmentUpsertBulk {
	_c.conflict = opts
	return &TopicalSegmentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TopicalSegment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TopicalSegmentCreateBulk) OnConflictColumns(columns ...string) *TopicalSegmentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TopicalSegmentUpsertBulk{
		create: _c,
	}
}

// TopicalSegmentUpsertBulk is the builder for "upsert"-ing
// a bulk of TopicalSegment nodes.
type TopicalSegmentUpsertBulk struct {
	create *TopicalSegmentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TopicalSegment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(topicalsegment.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TopicalSegmentUpsertBulk) UpdateNewValues() *TopicalSegmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(topicalsegment.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(topicalsegment.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TopicalSegment.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TopicalSegmentUpsertBulk) Ignore() *TopicalSegmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TopicalSegmentUpsertBulk) DoNothing() *TopicalSegmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TopicalSegmentCreateBulk.OnConflict
// documentation for more info.
func (u *TopicalSegmentUpsertBulk) Update(set func(*TopicalSegmentUpsert)) *TopicalSegmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TopicalSegmentUpsert{UpdateSet: update})
	}))
	return u
}

// SetChatID sets the "chat_id" field.
func (u *TopicalSegmentUpsertBulk) SetChatID(v string) *TopicalSegmentUpsertBulk {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.SetChatID(v)
	})
}

// UpdateChatID sets the "chat_id" field to the value that was provided on create.
func (u *TopicalSegmentUpsertBulk) UpdateChatID() *TopicalSegmentUpsertBulk {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.UpdateChatID()
	})
}

// SetInteractionID sets the "interaction_id" field.
func (u *TopicalSegmentUpsertBulk) SetInteractionID(v string) *TopicalSegmentUpsertBulk {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.SetInteractionID(v)
	})
}

// UpdateInteractionID sets the "interaction_id" field to the value that was provided on create.
func (u *TopicalSegmentUpsertBulk) UpdateInteractionID() *TopicalSegmentUpsertBulk {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.UpdateInteractionID()
	})
}

// ClearInteractionID clears the value of the "interaction_id" field.
func (u *TopicalSegmentUpsertBulk) ClearInteractionID() *TopicalSegmentUpsertBulk {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.ClearInteractionID()
	})
}

// SetTopic sets the "topic" field.
func (u *TopicalSegmentUpsertBulk) SetTopic(v string) *TopicalSegmentUpsertBulk {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.SetTopic(v)
	})
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *TopicalSegmentUpsertBulk) UpdateTopic() *TopicalSegmentUpsertBulk {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.UpdateTopic()
	})
}

// SetKeywords sets the "keywords" field.
func (u *TopicalSegmentUpsertBulk) SetKeywords(v []string) *TopicalSegmentUpsertBulk {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.SetKeywords(v)
	})
}

// UpdateKeywords sets the "keywords" field to the value that was provided on create.
func (u *TopicalSegmentUpsertBulk) UpdateKeywords() *TopicalSegmentUpsertBulk {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.UpdateKeywords()
	})
}

// ClearKeywords clears the value of the "keywords" field.
func (u *TopicalSegmentUpsertBulk) ClearKeywords() *TopicalSegmentUpsertBulk {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.ClearKeywords()
	})
}

// SetSummary sets the "summary" field.
func (u *TopicalSegmentUpsertBulk) SetSummary(v string) *TopicalSegmentUpsertBulk {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.SetSummary(v)
	})
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *TopicalSegmentUpsertBulk) UpdateSummary() *TopicalSegmentUpsertBulk {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.UpdateSummary()
	})
}

// ClearSummary clears the value of the "summary" field.
func (u *TopicalSegmentUpsertBulk) ClearSummary() *TopicalSegmentUpsertBulk {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.ClearSummary()
	})
}

// SetParticipantIds sets the "participant_ids" field.
func (u *TopicalSegmentUpsertBulk) SetParticipantIds(v []string) *TopicalSegmentUpsertBulk {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.SetParticipantIds(v)
	})
}

// UpdateParticipantIds sets the "participant_ids" field to the value that was provided on create.
func (u *TopicalSegmentUpsertBulk) UpdateParticipantIds() *TopicalSegmentUpsertBulk {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.UpdateParticipantIds()
	})
}

// ClearParticipantIds clears the value of the "participant_ids" field.
func (u *TopicalSegmentUpsertBulk) ClearParticipantIds() *TopicalSegmentUpsertBulk {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.ClearParticipantIds()
	})
}

// SetPrimaryParticipantID sets the "primary_participant_id" field.
func (u *TopicalSegmentUpsertBulk) SetPrimaryParticipantID(v string) *TopicalSegmentUpsertBulk {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.SetPrimaryParticipantID(v)
	})
}

// UpdatePrimaryParticipantID sets the "primary_participant_id" field to the value that was provided on create.
func (u *TopicalSegmentUpsertBulk) UpdatePrimaryParticipantID() *TopicalSegmentUpsertBulk {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.UpdatePrimaryParticipantID()
	})
}

// ClearPrimaryParticipantID clears the value of the "primary_participant_id" field.
func (u *TopicalSegmentUpsertBulk) ClearPrimaryParticipantID() *TopicalSegmentUpsertBulk {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.ClearPrimaryParticipantID()
	})
}

// SetMessageCount sets the "message_count" field.
func (u *TopicalSegmentUpsertBulk) SetMessageCount(v int) *TopicalSegmentUpsertBulk {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.SetMessageCount(v)
	})
}

// AddMessageCount adds v to the "message_count" field.
func (u *TopicalSegmentUpsertBulk) AddMessageCount(v int) *TopicalSegmentUpsertBulk {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.AddMessageCount(v)
	})
}

// UpdateMessageCount sets the "message_count" field to the value that was provided on create.
func (u *TopicalSegmentUpsertBulk) UpdateMessageCount() *TopicalSegmentUpsertBulk {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.UpdateMessageCount()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *TopicalSegmentUpsertBulk) SetStartedAt(v time.Time) *TopicalSegmentUpsertBulk {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *TopicalSegmentUpsertBulk) UpdateStartedAt() *TopicalSegmentUpsertBulk {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.UpdateStartedAt()
	})
}

// SetEndedAt sets the "ended_at" field.
func (u *TopicalSegmentUpsertBulk) SetEndedAt(v time.Time) *TopicalSegmentUpsertBulk {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.SetEndedAt(v)
	})
}

// UpdateEndedAt sets the "ended_at" field to the value that was provided on create.
func (u *TopicalSegmentUpsertBulk) UpdateEndedAt() *TopicalSegmentUpsertBulk {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.UpdateEndedAt()
	})
}

// SetStatus sets the "status" field.
func (u *TopicalSegmentUpsertBulk) SetStatus(v topicalsegment.Status) *TopicalSegmentUpsertBulk {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TopicalSegmentUpsertBulk) UpdateStatus() *TopicalSegmentUpsertBulk {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.UpdateStatus()
	})
}

// SetExtractionStatus sets the "extraction_status" field.
func (u *TopicalSegmentUpsertBulk) SetExtractionStatus(v topicalsegment.ExtractionStatus) *TopicalSegmentUpsertBulk {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.SetExtractionStatus(v)
	})
}

// UpdateExtractionStatus sets the "extraction_status" field to the value that was provided on create.
func (u *TopicalSegmentUpsertBulk) UpdateExtractionStatus() *TopicalSegmentUpsertBulk {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.UpdateExtractionStatus()
	})
}

// SetExtractionError sets the "extraction_error" field.
func (u *TopicalSegmentUpsertBulk) SetExtractionError(v string) *TopicalSegmentUpsertBulk {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.SetExtractionError(v)
	})
}

// UpdateExtractionError sets the "extraction_error" field to the value that was provided on create.
func (u *TopicalSegmentUpsertBulk) UpdateExtractionError() *TopicalSegmentUpsertBulk {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.UpdateExtractionError()
	})
}

// ClearExtractionError clears the value of the "extraction_error" field.
func (u *TopicalSegmentUpsertBulk) ClearExtractionError() *TopicalSegmentUpsertBulk {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.ClearExtractionError()
	})
}

// SetExtractionAttempts sets the "extraction_attempts" field.
func (u *TopicalSegmentUpsertBulk) SetExtractionAttempts(v int) *TopicalSegmentUpsertBulk {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.SetExtractionAttempts(v)
	})
}

// AddExtractionAttempts adds v to the "extraction_attempts" field.
func (u *TopicalSegmentUpsertBulk) AddExtractionAttempts(v int) *TopicalSegmentUpsertBulk {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.AddExtractionAttempts(v)
	})
}

// UpdateExtractionAttempts sets the "extraction_attempts" field to the value that was provided on create.
func (u *TopicalSegmentUpsertBulk) UpdateExtractionAttempts() *TopicalSegmentUpsertBulk {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.UpdateExtractionAttempts()
	})
}

// SetNextExtractionAt sets the "next_extraction_at" field.
func (u *TopicalSegmentUpsertBulk) SetNextExtractionAt(v time.Time) *TopicalSegmentUpsertBulk {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.SetNextExtractionAt(v)
	})
}

// UpdateNextExtractionAt sets the "next_extraction_at" field to the value that was provided on create.
func (u *TopicalSegmentUpsertBulk) UpdateNextExtractionAt() *TopicalSegmentUpsertBulk {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.UpdateNextExtractionAt()
	})
}

// ClearNextExtractionAt clears the value of the "next_extraction_at" field.
func (u *TopicalSegmentUpsertBulk) ClearNextExtractionAt() *TopicalSegmentUpsertBulk {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.ClearNextExtractionAt()
	})
}

// SetBatchID sets the "batch_id" field.
func (u *TopicalSegmentUpsertBulk) SetBatchID(v string) *TopicalSegmentUpsertBulk {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.SetBatchID(v)
	})
}

// UpdateBatchID sets the "batch_id" field to the value that was provided on create.
func (u *TopicalSegmentUpsertBulk) UpdateBatchID() *TopicalSegmentUpsertBulk {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.UpdateBatchID()
	})
}

// ClearBatchID clears the value of the "batch_id" field.
func (u *TopicalSegmentUpsertBulk) ClearBatchID() *TopicalSegmentUpsertBulk {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.ClearBatchID()
	})
}

// SetConfidence sets the "confidence" field.
func (u *TopicalSegmentUpsertBulk) SetConfidence(v float64) *TopicalSegmentUpsertBulk {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *TopicalSegmentUpsertBulk) AddConfidence(v float64) *TopicalSegmentUpsertBulk {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *TopicalSegmentUpsertBulk) UpdateConfidence() *TopicalSegmentUpsertBulk {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.UpdateConfidence()
	})
}

// SetRelatedSegmentIds sets the "related_segment_ids" field.
func (u *TopicalSegmentUpsertBulk) SetRelatedSegmentIds(v []string) *TopicalSegmentUpsertBulk {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.SetRelatedSegmentIds(v)
	})
}

// UpdateRelatedSegmentIds sets the "related_segment_ids" field to the value that was provided on create.
func (u *TopicalSegmentUpsertBulk) UpdateRelatedSegmentIds() *TopicalSegmentUpsertBulk {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.UpdateRelatedSegmentIds()
	})
}

// ClearRelatedSegmentIds clears the value of the "related_segment_ids" field.
func (u *TopicalSegmentUpsertBulk) ClearRelatedSegmentIds() *TopicalSegmentUpsertBulk {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.ClearRelatedSegmentIds()
	})
}

// SetExtractedItemIds sets the "extracted_item_ids" field.
func (u *TopicalSegmentUpsertBulk) SetExtractedItemIds(v []string) *TopicalSegmentUpsertBulk {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.SetExtractedItemIds(v)
	})
}

// UpdateExtractedItemIds sets the "extracted_item_ids" field to the value that was provided on create.
func (u *TopicalSegmentUpsertBulk) UpdateExtractedItemIds() *TopicalSegmentUpsertBulk {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.UpdateExtractedItemIds()
	})
}

// ClearExtractedItemIds clears the value of the "extracted_item_ids" field.
func (u *TopicalSegmentUpsertBulk) ClearExtractedItemIds() *TopicalSegmentUpsertBulk {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.ClearExtractedItemIds()
	})
}

// SetEmbedding sets the "embedding" field.
func (u *TopicalSegmentUpsertBulk) SetEmbedding(v pgvector.Vector) *TopicalSegmentUpsertBulk {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.SetEmbedding(v)
	})
}

// UpdateEmbedding sets the "embedding" field to the value that was provided on create.
func (u *TopicalSegmentUpsertBulk) UpdateEmbedding() *TopicalSegmentUpsertBulk {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.UpdateEmbedding()
	})
}

// ClearEmbedding clears the value of the "embedding" field.
func (u *TopicalSegmentUpsertBulk) ClearEmbedding() *TopicalSegmentUpsertBulk {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.ClearEmbedding()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TopicalSegmentUpsertBulk) SetUpdatedAt(v time.Time) *TopicalSegmentUpsertBulk {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TopicalSegmentUpsertBulk) UpdateUpdatedAt() *TopicalSegmentUpsertBulk {
	return u.Update(func(s *TopicalSegmentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *TopicalSegmentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TopicalSegmentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TopicalSegmentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TopicalSegmentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
