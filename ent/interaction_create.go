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
	"github.com/memograph/memograph/ent/interactionparticipant"
	"github.com/memograph/memograph/ent/message"
	"github.com/memograph/memograph/ent/topicalsegment"
)

// InteractionCreate is the builder for creating a Interaction entity.
type InteractionCreate struct {
	config
	mutation *InteractionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetType sets the "type" field.
func (_c *InteractionCreate) SetType(v interaction.Type) *InteractionCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *InteractionCreate) SetSource(v string) *InteractionCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetChatID sets the "chat_id" field.
func (_c *InteractionCreate) SetChatID(v string) *InteractionCreate {
	_c.mutation.SetChatID(v)
	return _c
}

// SetTopicID sets the "topic_id" field.
func (_c *InteractionCreate) SetTopicID(v string) *InteractionCreate {
	_c.mutation.SetTopicID(v)
	return _c
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_c *InteractionCreate) SetNillableTopicID(v *string) *InteractionCreate {
	if v != nil {
		_c.SetTopicID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *InteractionCreate) SetStatus(v interaction.Status) *InteractionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *InteractionCreate) SetNillableStatus(v *interaction.Status) *InteractionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *InteractionCreate) SetStartedAt(v time.Time) *InteractionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetEndedAt sets the "ended_at" field.
func (_c *InteractionCreate) SetEndedAt(v time.Time) *InteractionCreate {
	_c.mutation.SetEndedAt(v)
	return _c
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_c *InteractionCreate) SetNillableEndedAt(v *time.Time) *InteractionCreate {
	if v != nil {
		_c.SetEndedAt(*v)
	}
	return _c
}

// SetLastMessageAt sets the "last_message_at" field.
func (_c *InteractionCreate) SetLastMessageAt(v time.Time) *InteractionCreate {
	_c.mutation.SetLastMessageAt(v)
	return _c
}

// SetNeedsResegmentation sets the "needs_resegmentation" field.
func (_c *InteractionCreate) SetNeedsResegmentation(v bool) *InteractionCreate {
	_c.mutation.SetNeedsResegmentation(v)
	return _c
}

// SetNillableNeedsResegmentation sets the "needs_resegmentation" field if the given value is not nil.
func (_c *InteractionCreate) SetNillableNeedsResegmentation(v *bool) *InteractionCreate {
	if v != nil {
		_c.SetNeedsResegmentation(*v)
	}
	return _c
}

// SetSourceMetadata sets the "source_metadata" field.
func (_c *InteractionCreate) SetSourceMetadata(v map[string]interface{}) *InteractionCreate {
	_c.mutation.SetSourceMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InteractionCreate) SetCreatedAt(v time.Time) *InteractionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InteractionCreate) SetNillableCreatedAt(v *time.Time) *InteractionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *InteractionCreate) SetUpdatedAt(v time.Time) *InteractionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *InteractionCreate) SetNillableUpdatedAt(v *time.Time) *InteractionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InteractionCreate) SetID(v string) *InteractionCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddMessageIDs adds the "messages" edge to the Message entity by IDs.
func (_c *InteractionCreate) AddMessageIDs(ids ...string) *InteractionCreate {
	_c.mutation.AddMessageIDs(ids...)
	return _c
}

// AddMessages adds the "messages" edges to the Message entity.
func (_c *InteractionCreate) AddMessages(v ...*Message) *InteractionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMessageIDs(ids...)
}

// AddParticipantIDs adds the "participants" edge to the InteractionParticipant entity by IDs.
func (_c *InteractionCreate) AddParticipantIDs(ids ...string) *InteractionCreate {
	_c.mutation.AddParticipantIDs(ids...)
	return _c
}

// AddParticipants adds the "participants" edges to the InteractionParticipant entity.
func (_c *InteractionCreate) AddParticipants(v ...*InteractionParticipant) *InteractionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddParticipantIDs(ids...)
}

// AddSegmentIDs adds the "segments" edge to the TopicalSegment entity by IDs.
func (_c *InteractionCreate) AddSegmentIDs(ids ...string) *InteractionCreate {
	_c.mutation.AddSegmentIDs(ids...)
	return _c
}

// AddSegments adds the "segments" edges to the TopicalSegment entity.
func (_c *InteractionCreate) AddSegments(v ...*TopicalSegment) *InteractionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSegmentIDs(ids...)
}

// Mutation returns the InteractionMutation object of the builder.
func (_c *InteractionCreate) Mutation() *InteractionMutation {
	return _c.mutation
}

// Save creates the Interaction in the database.
func (_c *InteractionCreate) Save(ctx context.Context) (*Interaction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InteractionCreate) SaveX(ctx context.Context) *Interaction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InteractionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InteractionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InteractionCreate) defaults() {
	if _, ok := _c.mutation.TopicID(); !ok {
		v := interaction.DefaultTopicID
		_c.mutation.SetTopicID(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := interaction.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.NeedsResegmentation(); !ok {
		v := interaction.DefaultNeedsResegmentation
		_c.mutation.SetNeedsResegmentation(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := interaction.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := interaction.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InteractionCreate) check() error {
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "Interaction.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := interaction.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Interaction.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "Interaction.source"`)}
	}
	if _, ok := _c.mutation.ChatID(); !ok {
		return &ValidationError{Name: "chat_id", err: errors.New(`ent: missing required field "Interaction.chat_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Interaction.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := interaction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Interaction.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "Interaction.started_at"`)}
	}
	if _, ok := _c.mutation.LastMessageAt(); !ok {
		return &ValidationError{Name: "last_message_at", err: errors.New(`ent: missing required field "Interaction.last_message_at"`)}
	}
	if _, ok := _c.mutation.NeedsResegmentation(); !ok {
		return &ValidationError{Name: "needs_resegmentation", err: errors.New(`ent: missing required field "Interaction.needs_resegmentation"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Interaction.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Interaction.updated_at"`)}
	}
	return nil
}

func (_c *InteractionCreate) sqlSave(ctx context.Context) (*Interaction, error) {
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
			return nil, fmt.Errorf("unexpected Interaction.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InteractionCreate) createSpec() (*Interaction, *sqlgraph.CreateSpec) {
	var (
		_node = &Interaction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(interaction.Table, sqlgraph.NewFieldSpec(interaction.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(interaction.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(interaction.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.ChatID(); ok {
		_spec.SetField(interaction.FieldChatID, field.TypeString, value)
		_node.ChatID = value
	}
	if value, ok := _c.mutation.TopicID(); ok {
		_spec.SetField(interaction.FieldTopicID, field.TypeString, value)
		_node.TopicID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(interaction.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(interaction.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.EndedAt(); ok {
		_spec.SetField(interaction.FieldEndedAt, field.TypeTime, value)
		_node.EndedAt = &value
	}
	if value, ok := _c.mutation.LastMessageAt(); ok {
		_spec.SetField(interaction.FieldLastMessageAt, field.TypeTime, value)
		_node.LastMessageAt = value
	}
	if value, ok := _c.mutation.NeedsResegmentation(); ok {
		_spec.SetField(interaction.FieldNeedsResegmentation, field.TypeBool, value)
		_node.NeedsResegmentation = value
	}
	if value, ok := _c.mutation.SourceMetadata(); ok {
		_spec.SetField(interaction.FieldSourceMetadata, field.TypeJSON, value)
		_node.SourceMetadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(interaction.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(interaction.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   interaction.MessagesTable,
			Columns: []string{interaction.MessagesColumn},
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
	if nodes := _c.mutation.ParticipantsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   interaction.ParticipantsTable,
			Columns: []string{interaction.ParticipantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(interactionparticipant.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SegmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   interaction.SegmentsTable,
			Columns: []string{interaction.SegmentsColumn},
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
//	client.Interaction.Create().
//		SetType(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InteractionUpsert) {
//			SetType(v+v).
//		}).
//		Exec(ctx)
func (_c *InteractionCreate) OnConflict(opts ...sql.ConflictOption) *InteractionUpsertOne {
	_c.conflict = opts
	return &InteractionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Interaction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InteractionCreate) OnConflictColumns(columns ...string) *InteractionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InteractionUpsertOne{
		create: _c,
	}
}

type (
	// InteractionUpsertOne is the builder for "upsert"-ing
	//  one Interaction node.
	InteractionUpsertOne struct {
		create *InteractionCreate
	}

	// InteractionUpsert is the "OnConflict" setter.
	InteractionUpsert struct {
		*sql.UpdateSet
	}
)

// SetType sets the "type" field.
func (u *InteractionUpsert) SetType(v interaction.Type) *InteractionUpsert {
	u.Set(interaction.FieldType, v)
	return u
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *InteractionUpsert) UpdateType() *InteractionUpsert {
	u.SetExcluded(interaction.FieldType)
	return u
}

// SetSource sets the "source" field.
func (u *InteractionUpsert) SetSource(v string) *InteractionUpsert {
	u.Set(interaction.FieldSource, v)
	return u
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *InteractionUpsert) UpdateSource() *InteractionUpsert {
	u.SetExcluded(interaction.FieldSource)
	return u
}

// SetChatID sets the "chat_id" field.
func (u *InteractionUpsert) SetChatID(v string) *InteractionUpsert {
	u.Set(interaction.FieldChatID, v)
	return u
}

// UpdateChatID sets the "chat_id" field to the value that was provided on create.
func (u *InteractionUpsert) UpdateChatID() *InteractionUpsert {
	u.SetExcluded(interaction.FieldChatID)
	return u
}

// SetTopicID sets the "topic_id" field.
func (u *InteractionUpsert) SetTopicID(v string) *InteractionUpsert {
	u.Set(interaction.FieldTopicID, v)
	return u
}

// UpdateTopicID sets the "topic_id" field to the value that was provided on create.
func (u *InteractionUpsert) UpdateTopicID() *InteractionUpsert {
	u.SetExcluded(interaction.FieldTopicID)
	return u
}

// ClearTopicID clears the value of the "topic_id" field.
func (u *InteractionUpsert) ClearTopicID() *InteractionUpsert {
	u.SetNull(interaction.FieldTopicID)
	return u
}

// SetStatus sets the "status" field.
func (u *InteractionUpsert) SetStatus(v interaction.Status) *InteractionUpsert {
	u.Set(interaction.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *InteractionUpsert) UpdateStatus() *InteractionUpsert {
	u.SetExcluded(interaction.FieldStatus)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *InteractionUpsert) SetStartedAt(v time.Time) *InteractionUpsert {
	u.Set(interaction.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *InteractionUpsert) UpdateStartedAt() *InteractionUpsert {
	u.SetExcluded(interaction.FieldStartedAt)
	return u
}

// SetEndedAt sets the "ended_at" field.
func (u *InteractionUpsert) SetEndedAt(v time.Time) *InteractionUpsert {
	u.Set(interaction.FieldEndedAt, v)
	return u
}

// UpdateEndedAt sets the "ended_at" field to the value that was provided on create.
func (u *InteractionUpsert) UpdateEndedAt() *InteractionUpsert {
	u.SetExcluded(interaction.FieldEndedAt)
	return u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (u *InteractionUpsert) ClearEndedAt() *InteractionUpsert {
	u.SetNull(interaction.FieldEndedAt)
	return u
}

// SetLastMessageAt sets the "last_message_at" field.
func (u *InteractionUpsert) SetLastMessageAt(v time.Time) *InteractionUpsert {
	u.Set(interaction.FieldLastMessageAt, v)
	return u
}

// UpdateLastMessageAt sets the "last_message_at" field to the value that was provided on create.
func (u *InteractionUpsert) UpdateLastMessageAt() *InteractionUpsert {
	u.SetExcluded(interaction.FieldLastMessageAt)
	return u
}

// SetNeedsResegmentation sets the "needs_resegmentation" field.
func (u *InteractionUpsert) SetNeedsResegmentation(v bool) *InteractionUpsert {
	u.Set(interaction.FieldNeedsResegmentation, v)
	return u
}

// UpdateNeedsResegmentation sets the "needs_resegmentation" field to the value that was provided on create.
func (u *InteractionUpsert) UpdateNeedsResegmentation() *InteractionUpsert {
	u.SetExcluded(interaction.FieldNeedsResegmentation)
	return u
}

// SetSourceMetadata sets the "source_metadata" field.
func (u *InteractionUpsert) SetSourceMetadata(v map[string]interface{}) *InteractionUpsert {
	u.Set(interaction.FieldSourceMetadata, v)
	return u
}

// UpdateSourceMetadata sets the "source_metadata" field to the value that was provided on create.
func (u *InteractionUpsert) UpdateSourceMetadata() *InteractionUpsert {
	u.SetExcluded(interaction.FieldSourceMetadata)
	return u
}

// ClearSourceMetadata clears the value of the "source_metadata" field.
func (u *InteractionUpsert) ClearSourceMetadata() *InteractionUpsert {
	u.SetNull(interaction.FieldSourceMetadata)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *InteractionUpsert) SetUpdatedAt(v time.Time) *InteractionUpsert {
	u.Set(interaction.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InteractionUpsert) UpdateUpdatedAt() *InteractionUpsert {
	u.SetExcluded(interaction.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Interaction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(interaction.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InteractionUpsertOne) UpdateNewValues() *InteractionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(interaction.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(interaction.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Interaction.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *InteractionUpsertOne) Ignore() *InteractionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InteractionUpsertOne) DoNothing() *InteractionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InteractionCreate.OnConflict
// documentation for more info.
func (u *InteractionUpsertOne) Update(set func(*InteractionUpsert)) *InteractionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InteractionUpsert{UpdateSet: update})
	}))
	return u
}

// SetType sets the "type" field.
func (u *InteractionUpsertOne) SetType(v interaction.Type) *InteractionUpsertOne {
	return u.Update(func(s *InteractionUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *InteractionUpsertOne) UpdateType() *InteractionUpsertOne {
	return u.Update(func(s *InteractionUpsert) {
		s.UpdateType()
	})
}

// SetSource sets the "source" field.
func (u *InteractionUpsertOne) SetSource(v string) *InteractionUpsertOne {
	return u.Update(func(s *InteractionUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *InteractionUpsertOne) UpdateSource() *InteractionUpsertOne {
	return u.Update(func(s *InteractionUpsert) {
		s.UpdateSource()
	})
}

// SetChatID sets the "chat_id" field.
func (u *InteractionUpsertOne) SetChatID(v string) *InteractionUpsertOne {
	return u.Update(func(s *InteractionUpsert) {
		s.SetChatID(v)
	})
}

// UpdateChatID sets the "chat_id" field to the value that was provided on create.
func (u *InteractionUpsertOne) UpdateChatID() *InteractionUpsertOne {
	return u.Update(func(s *InteractionUpsert) {
		s.UpdateChatID()
	})
}

// SetTopicID sets the "topic_id" field.
func (u *InteractionUpsertOne) SetTopicID(v string) *InteractionUpsertOne {
	return u.Update(func(s *InteractionUpsert) {
		s.SetTopicID(v)
	})
}

// UpdateTopicID sets the "topic_id" field to the value that was provided on create.
func (u *InteractionUpsertOne) UpdateTopicID() *InteractionUpsertOne {
	return u.Update(func(s *InteractionUpsert) {
		s.UpdateTopicID()
	})
}

// ClearTopicID clears the value of the "topic_id" field.
func (u *InteractionUpsertOne) ClearTopicID() *InteractionUpsertOne {
	return u.Update(func(s *InteractionUpsert) {
		s.ClearTopicID()
	})
}

// SetStatus sets the "status" field.
func (u *InteractionUpsertOne) SetStatus(v interaction.Status) *InteractionUpsertOne {
	return u.Update(func(s *InteractionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *InteractionUpsertOne) UpdateStatus() *InteractionUpsertOne {
	return u.Update(func(s *InteractionUpsert) {
		s.UpdateStatus()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *InteractionUpsertOne) SetStartedAt(v time.Time) *InteractionUpsertOne {
	return u.Update(func(s *InteractionUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *InteractionUpsertOne) UpdateStartedAt() *InteractionUpsertOne {
	return u.Update(func(s *InteractionUpsert) {
		s.UpdateStartedAt()
	})
}

// SetEndedAt sets the "ended_at" field.
func (u *InteractionUpsertOne) SetEndedAt(v time.Time) *InteractionUpsertOne {
	return u.Update(func(s *InteractionUpsert) {
		s.SetEndedAt(v)
	})
}

// UpdateEndedAt sets the "ended_at" field to the value that was provided on create.
func (u *InteractionUpsertOne) UpdateEndedAt() *InteractionUpsertOne {
	return u.Update(func(s *InteractionUpsert) {
		s.UpdateEndedAt()
	})
}

// ClearEndedAt clears the value of the "ended_at" field.
func (u *InteractionUpsertOne) ClearEndedAt() *InteractionUpsertOne {
	return u.Update(func(s *InteractionUpsert) {
		s.ClearEndedAt()
	})
}

// SetLastMessageAt sets the "last_message_at" field.
func (u *InteractionUpsertOne) SetLastMessageAt(v time.Time) *InteractionUpsertOne {
	return u.Update(func(s *InteractionUpsert) {
		s.SetLastMessageAt(v)
	})
}

// UpdateLastMessageAt sets the "last_message_at" field to the value that was provided on create.
func (u *InteractionUpsertOne) UpdateLastMessageAt() *InteractionUpsertOne {
	return u.Update(func(s *InteractionUpsert) {
		s.UpdateLastMessageAt()
	})
}

// SetNeedsResegmentation sets the "needs_resegmentation" field.
func (u *InteractionUpsertOne) SetNeedsResegmentation(v bool) *InteractionUpsertOne {
	return u.Update(func(s *InteractionUpsert) {
		s.SetNeedsResegmentation(v)
	})
}

// UpdateNeedsResegmentation sets the "needs_resegmentation" field to the value that was provided on create.
func (u *InteractionUpsertOne) UpdateNeedsResegmentation() *InteractionUpsertOne {
	return u.Update(func(s *InteractionUpsert) {
		s.UpdateNeedsResegmentation()
	})
}

// SetSourceMetadata sets the "source_metadata" field.
func (u *InteractionUpsertOne) SetSourceMetadata(v map[string]interface{}) *InteractionUpsertOne {
	return u.Update(func(s *InteractionUpsert) {
		s.SetSourceMetadata(v)
	})
}

// UpdateSourceMetadata sets the "source_metadata" field to the value that was provided on create.
func (u *InteractionUpsertOne) UpdateSourceMetadata() *InteractionUpsertOne {
	return u.Update(func(s *InteractionUpsert) {
		s.UpdateSourceMetadata()
	})
}

// ClearSourceMetadata clears the value of the "source_metadata" field.
func (u *InteractionUpsertOne) ClearSourceMetadata() *InteractionUpsertOne {
	return u.Update(func(s *InteractionUpsert) {
		s.ClearSourceMetadata()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *InteractionUpsertOne) SetUpdatedAt(v time.Time) *InteractionUpsertOne {
	return u.Update(func(s *InteractionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InteractionUpsertOne) UpdateUpdatedAt() *InteractionUpsertOne {
	return u.Update(func(s *InteractionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *InteractionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for InteractionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InteractionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *InteractionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: InteractionUpsertOne.ID is not supported by MySQL driver. Use InteractionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *InteractionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// InteractionCreateBulk is the builder for creating many Interaction entities in bulk.
type InteractionCreateBulk struct {
	config
	err      error
	builders []*InteractionCreate
	conflict []sql.ConflictOption
}

// Save creates the Interaction entities in the database.
func (_c *InteractionCreateBulk) Save(ctx context.Context) ([]*Interaction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Interaction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InteractionMutation)
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
func (_c *InteractionCreateBulk) SaveX(ctx context.Context) []*Interaction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InteractionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InteractionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Interaction.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InteractionUpsert) {
//			SetType(v+v).
//		}).
//		Exec(ctx)
func (_c *InteractionCreateBulk) OnConflict(opts ...sql.ConflictOption) *InteractionUpsertBulk {
	_c.conflict = opts
	return &InteractionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Interaction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InteractionCreateBulk) OnConflictColumns(columns ...string) *InteractionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InteractionUpsertBulk{
		create: _c,
	}
}

// InteractionUpsertBulk is the builder for "upsert"-ing
// a bulk of Interaction nodes.
type InteractionUpsertBulk struct {
	create *InteractionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Interaction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(interaction.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InteractionUpsertBulk) UpdateNewValues() *InteractionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(interaction.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(interaction.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Interaction.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *InteractionUpsertBulk) Ignore() *InteractionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InteractionUpsertBulk) DoNothing() *InteractionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InteractionCreateBulk.OnConflict
// documentation for more info.
func (u *InteractionUpsertBulk) Update(set func(*InteractionUpsert)) *InteractionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InteractionUpsert{UpdateSet: update})
	}))
	return u
}

// SetType sets the "type" field.
func (u *InteractionUpsertBulk) SetType(v interaction.Type) *InteractionUpsertBulk {
	return u.Update(func(s *InteractionUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *InteractionUpsertBulk) UpdateType() *InteractionUpsertBulk {
	return u.Update(func(s *InteractionUpsert) {
		s.UpdateType()
	})
}

// SetSource sets the "source" field.
func (u *InteractionUpsertBulk) SetSource(v string) *InteractionUpsertBulk {
	return u.Update(func(s *InteractionUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *InteractionUpsertBulk) UpdateSource() *InteractionUpsertBulk {
	return u.Update(func(s *InteractionUpsert) {
		s.UpdateSource()
	})
}

// SetChatID sets the "chat_id" field.
func (u *InteractionUpsertBulk) SetChatID(v string) *InteractionUpsertBulk {
	return u.Update(func(s *InteractionUpsert) {
		s.SetChatID(v)
	})
}

// UpdateChatID sets the "chat_id" field to the value that was provided on create.
func (u *InteractionUpsertBulk) UpdateChatID() *InteractionUpsertBulk {
	return u.Update(func(s *InteractionUpsert) {
		s.UpdateChatID()
	})
}

// SetTopicID sets the "topic_id" field.
func (u *InteractionUpsertBulk) SetTopicID(v string) *InteractionUpsertBulk {
	return u.Update(func(s *InteractionUpsert) {
		s.SetTopicID(v)
	})
}

// UpdateTopicID sets the "topic_id" field to the value that was provided on create.
func (u *InteractionUpsertBulk) UpdateTopicID() *InteractionUpsertBulk {
	return u.Update(func(s *InteractionUpsert) {
		s.UpdateTopicID()
	})
}

// ClearTopicID clears the value of the "topic_id" field.
func (u *InteractionUpsertBulk) ClearTopicID() *InteractionUpsertBulk {
	return u.Update(func(s *InteractionUpsert) {
		s.ClearTopicID()
	})
}

// SetStatus sets the "status" field.
func (u *InteractionUpsertBulk) SetStatus(v interaction.Status) *InteractionUpsertBulk {
	return u.Update(func(s *InteractionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *InteractionUpsertBulk) UpdateStatus() *InteractionUpsertBulk {
	return u.Update(func(s *InteractionUpsert) {
		s.UpdateStatus()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *InteractionUpsertBulk) SetStartedAt(v time.Time) *InteractionUpsertBulk {
	return u.Update(func(s *InteractionUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *InteractionUpsertBulk) UpdateStartedAt() *InteractionUpsertBulk {
	return u.Update(func(s *InteractionUpsert) {
		s.UpdateStartedAt()
	})
}

// SetEndedAt sets the "ended_at" field.
func (u *InteractionUpsertBulk) SetEndedAt(v time.Time) *InteractionUpsertBulk {
	return u.Update(func(s *InteractionUpsert) {
		s.SetEndedAt(v)
	})
}

// UpdateEndedAt sets the "ended_at" field to the value that was provided on create.
func (u *InteractionUpsertBulk) UpdateEndedAt() *InteractionUpsertBulk {
	return u.Update(func(s *InteractionUpsert) {
		s.UpdateEndedAt()
	})
}

// ClearEndedAt clears the value of the "ended_at" field.
func (u *InteractionUpsertBulk) ClearEndedAt() *InteractionUpsertBulk {
	return u.Update(func(s *InteractionUpsert) {
		s.ClearEndedAt()
	})
}

// SetLastMessageAt sets the "last_message_at" field.
func (u *InteractionUpsertBulk) SetLastMessageAt(v time.Time) *InteractionUpsertBulk {
	return u.Update(func(s *InteractionUpsert) {
		s.SetLastMessageAt(v)
	})
}

// UpdateLastMessageAt sets the "last_message_at" field to the value that was provided on create.
func (u *InteractionUpsertBulk) UpdateLastMessageAt() *InteractionUpsertBulk {
	return u.Update(func(s *InteractionUpsert) {
		s.UpdateLastMessageAt()
	})
}

// SetNeedsResegmentation sets the "needs_resegmentation" field.
func (u *InteractionUpsertBulk) SetNeedsResegmentation(v bool) *InteractionUpsertBulk {
	return u.Update(func(s *InteractionUpsert) {
		s.SetNeedsResegmentation(v)
	})
}

// UpdateNeedsResegmentation sets the "needs_resegmentation" field to the value that was provided on create.
func (u *InteractionUpsertBulk) UpdateNeedsResegmentation() *InteractionUpsertBulk {
	return u.Update(func(s *InteractionUpsert) {
		s.UpdateNeedsResegmentation()
	})
}

// SetSourceMetadata sets the "source_metadata" field.
func (u *InteractionUpsertBulk) SetSourceMetadata(v map[string]interface{}) *InteractionUpsertBulk {
	return u.Update(func(s *InteractionUpsert) {
		s.SetSourceMetadata(v)
	})
}

// UpdateSourceMetadata sets the "source_metadata" field to the value that was provided on create.
func (u *InteractionUpsertBulk) UpdateSourceMetadata() *InteractionUpsertBulk {
	return u.Update(func(s *InteractionUpsert) {
		s.UpdateSourceMetadata()
	})
}

// ClearSourceMetadata clears the value of the "source_metadata" field.
func (u *InteractionUpsertBulk) ClearSourceMetadata() *InteractionUpsertBulk {
	return u.Update(func(s *InteractionUpsert) {
		s.ClearSourceMetadata()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *InteractionUpsertBulk) SetUpdatedAt(v time.Time) *InteractionUpsertBulk {
	return u.Update(func(s *InteractionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InteractionUpsertBulk) UpdateUpdatedAt() *InteractionUpsertBulk {
	return u.Update(func(s *InteractionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *InteractionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the InteractionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for InteractionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InteractionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
