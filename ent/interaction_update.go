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
	"github.com/memograph/memograph/ent/interaction"
	"github.com/memograph/memograph/ent/interactionparticipant"
	"github.com/memograph/memograph/ent/message"
	"github.com/memograph/memograph/ent/predicate"
	"github.com/memograph/memograph/ent/topicalsegment"
)

// InteractionUpdate is the builder for updating Interaction entities.
type InteractionUpdate struct {
	config
	hooks    []Hook
	mutation *InteractionMutation
}

// Where appends a list predicates to the InteractionUpdate builder.
func (_u *InteractionUpdate) Where(ps ...predicate.Interaction) *InteractionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetType sets the "type" field.
func (_u *InteractionUpdate) SetType(v interaction.Type) *InteractionUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *InteractionUpdate) SetNillableType(v *interaction.Type) *InteractionUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *InteractionUpdate) SetSource(v string) *InteractionUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *InteractionUpdate) SetNillableSource(v *string) *InteractionUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetChatID sets the "chat_id" field.
func (_u *InteractionUpdate) SetChatID(v string) *InteractionUpdate {
	_u.mutation.SetChatID(v)
	return _u
}

// SetNillableChatID sets the "chat_id" field if the given value is not nil.
func (_u *InteractionUpdate) SetNillableChatID(v *string) *InteractionUpdate {
	if v != nil {
		_u.SetChatID(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *InteractionUpdate) SetTopicID(v string) *InteractionUpdate {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *InteractionUpdate) SetNillableTopicID(v *string) *InteractionUpdate {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// ClearTopicID clears the value of the "topic_id" field.
func (_u *InteractionUpdate) ClearTopicID() *InteractionUpdate {
	_u.mutation.ClearTopicID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *InteractionUpdate) SetStatus(v interaction.Status) *InteractionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InteractionUpdate) SetNillableStatus(v *interaction.Status) *InteractionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *InteractionUpdate) SetStartedAt(v time.Time) *InteractionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *InteractionUpdate) SetNillableStartedAt(v *time.Time) *InteractionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *InteractionUpdate) SetEndedAt(v time.Time) *InteractionUpdate {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *InteractionUpdate) SetNillableEndedAt(v *time.Time) *InteractionUpdate {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *InteractionUpdate) ClearEndedAt() *InteractionUpdate {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetLastMessageAt sets the "last_message_at" field.
func (_u *InteractionUpdate) SetLastMessageAt(v time.Time) *InteractionUpdate {
	_u.mutation.SetLastMessageAt(v)
	return _u
}

// SetNillableLastMessageAt sets the "last_message_at" field if the given value is not nil.
func (_u *InteractionUpdate) SetNillableLastMessageAt(v *time.Time) *InteractionUpdate {
	if v != nil {
		_u.SetLastMessageAt(*v)
	}
	return _u
}

// SetNeedsResegmentation sets the "needs_resegmentation" field.
func (_u *InteractionUpdate) SetNeedsResegmentation(v bool) *InteractionUpdate {
	_u.mutation.SetNeedsResegmentation(v)
	return _u
}

// SetNillableNeedsResegmentation sets the "needs_resegmentation" field if the given value is not nil.
func (_u *InteractionUpdate) SetNillableNeedsResegmentation(v *bool) *InteractionUpdate {
	if v != nil {
		_u.SetNeedsResegmentation(*v)
	}
	return _u
}

// SetSourceMetadata sets the "source_metadata" field.
func (_u *InteractionUpdate) SetSourceMetadata(v map[string]interface{}) *InteractionUpdate {
	_u.mutation.SetSourceMetadata(v)
	return _u
}

// ClearSourceMetadata clears the value of the "source_metadata" field.
func (_u *InteractionUpdate) ClearSourceMetadata() *InteractionUpdate {
	_u.mutation.ClearSourceMetadata()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InteractionUpdate) SetUpdatedAt(v time.Time) *InteractionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddMessageIDs adds the "messages" edge to the Message entity by IDs.
func (_u *InteractionUpdate) AddMessageIDs(ids ...string) *InteractionUpdate {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the Message entity.
func (_u *InteractionUpdate) AddMessages(v ...*Message) *InteractionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddParticipantIDs adds the "participants" edge to the InteractionParticipant entity by IDs.
func (_u *InteractionUpdate) AddParticipantIDs(ids ...string) *InteractionUpdate {
	_u.mutation.AddParticipantIDs(ids...)
	return _u
}

// AddParticipants adds the "participants" edges to the InteractionParticipant entity.
func (_u *InteractionUpdate) AddParticipants(v ...*InteractionParticipant) *InteractionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddParticipantIDs(ids...)
}

// AddSegmentIDs adds the "segments" edge to the TopicalSegment entity by IDs.
func (_u *InteractionUpdate) AddSegmentIDs(ids ...string) *InteractionUpdate {
	_u.mutation.AddSegmentIDs(ids...)
	return _u
}

// AddSegments adds the "segments" edges to the TopicalSegment entity.
func (_u *InteractionUpdate) AddSegments(v ...*TopicalSegment) *InteractionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSegmentIDs(ids...)
}

// Mutation returns the InteractionMutation object of the builder.
func (_u *InteractionUpdate) Mutation() *InteractionMutation {
	return _u.mutation
}

// ClearMessages clears all "messages" edges to the Message entity.
func (_u *InteractionUpdate) ClearMessages() *InteractionUpdate {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to Message entities by IDs.
func (_u *InteractionUpdate) RemoveMessageIDs(ids ...string) *InteractionUpdate {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to Message entities.
func (_u *InteractionUpdate) RemoveMessages(v ...*Message) *InteractionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearParticipants clears all "participants" edges to the InteractionParticipant entity.
func (_u *InteractionUpdate) ClearParticipants() *InteractionUpdate {
	_u.mutation.ClearParticipants()
	return _u
}

// RemoveParticipantIDs removes the "participants" edge to InteractionParticipant entities by IDs.
func (_u *InteractionUpdate) RemoveParticipantIDs(ids ...string) *InteractionUpdate {
	_u.mutation.RemoveParticipantIDs(ids...)
	return _u
}

// RemoveParticipants removes "participants" edges to InteractionParticipant entities.
func (_u *InteractionUpdate) RemoveParticipants(v ...*InteractionParticipant) *InteractionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveParticipantIDs(ids...)
}

// ClearSegments clears all "segments" edges to the TopicalSegment entity.
func (_u *InteractionUpdate) ClearSegments() *InteractionUpdate {
	_u.mutation.ClearSegments()
	return _u
}

// RemoveSegmentIDs removes the "segments" edge to TopicalSegment entities by IDs.
func (_u *InteractionUpdate) RemoveSegmentIDs(ids ...string) *InteractionUpdate {
	_u.mutation.RemoveSegmentIDs(ids...)
	return _u
}

// RemoveSegments removes "segments" edges to TopicalSegment entities.
func (_u *InteractionUpdate) RemoveSegments(v ...*TopicalSegment) *InteractionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSegmentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InteractionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InteractionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InteractionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InteractionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InteractionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := interaction.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InteractionUpdate) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := interaction.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Interaction.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := interaction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Interaction.status": %w`, err)}
		}
	}
	return nil
}

func (_u *InteractionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interaction.Table, interaction.Columns, sqlgraph.NewFieldSpec(interaction.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(interaction.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(interaction.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChatID(); ok {
		_spec.SetField(interaction.FieldChatID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(interaction.FieldTopicID, field.TypeString, value)
	}
	if _u.mutation.TopicIDCleared() {
		_spec.ClearField(interaction.FieldTopicID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(interaction.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(interaction.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(interaction.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(interaction.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastMessageAt(); ok {
		_spec.SetField(interaction.FieldLastMessageAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.NeedsResegmentation(); ok {
		_spec.SetField(interaction.FieldNeedsResegmentation, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SourceMetadata(); ok {
		_spec.SetField(interaction.FieldSourceMetadata, field.TypeJSON, value)
	}
	if _u.mutation.SourceMetadataCleared() {
		_spec.ClearField(interaction.FieldSourceMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(interaction.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ParticipantsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedParticipantsIDs(); len(nodes) > 0 && !_u.mutation.ParticipantsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParticipantsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SegmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSegmentsIDs(); len(nodes) > 0 && !_u.mutation.SegmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SegmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InteractionUpdateOne is the builder for updating a single Interaction entity.
type InteractionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InteractionMutation
}

// SetType sets the "type" field.
func (_u *InteractionUpdateOne) SetType(v interaction.Type) *InteractionUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *InteractionUpdateOne) SetNillableType(v *interaction.Type) *InteractionUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *InteractionUpdateOne) SetSource(v string) *InteractionUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *InteractionUpdateOne) SetNillableSource(v *string) *InteractionUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetChatID sets the "chat_id" field.
func (_u *InteractionUpdateOne) SetChatID(v string) *InteractionUpdateOne {
	_u.mutation.SetChatID(v)
	return _u
}

// SetNillableChatID sets the "chat_id" field if the given value is not nil.
func (_u *InteractionUpdateOne) SetNillableChatID(v *string) *InteractionUpdateOne {
	if v != nil {
		_u.SetChatID(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *InteractionUpdateOne) SetTopicID(v string) *InteractionUpdateOne {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *InteractionUpdateOne) SetNillableTopicID(v *string) *InteractionUpdateOne {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// ClearTopicID clears the value of the "topic_id" field.
func (_u *InteractionUpdateOne) ClearTopicID() *InteractionUpdateOne {
	_u.mutation.ClearTopicID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *InteractionUpdateOne) SetStatus(v interaction.Status) *InteractionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InteractionUpdateOne) SetNillableStatus(v *interaction.Status) *InteractionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *InteractionUpdateOne) SetStartedAt(v time.Time) *InteractionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *InteractionUpdateOne) SetNillableStartedAt(v *time.Time) *InteractionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *InteractionUpdateOne) SetEndedAt(v time.Time) *InteractionUpdateOne {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *InteractionUpdateOne) SetNillableEndedAt(v *time.Time) *InteractionUpdateOne {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *InteractionUpdateOne) ClearEndedAt() *InteractionUpdateOne {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetLastMessageAt sets the "last_message_at" field.
func (_u *InteractionUpdateOne) SetLastMessageAt(v time.Time) *InteractionUpdateOne {
	_u.mutation.SetLastMessageAt(v)
	return _u
}

// SetNillableLastMessageAt sets the "last_message_at" field if the given value is not nil.
func (_u *InteractionUpdateOne) SetNillableLastMessageAt(v *time.Time) *InteractionUpdateOne {
	if v != nil {
		_u.SetLastMessageAt(*v)
	}
	return _u
}

// SetNeedsResegmentation sets the "needs_resegmentation" field.
func (_u *InteractionUpdateOne) SetNeedsResegmentation(v bool) *InteractionUpdateOne {
	_u.mutation.SetNeedsResegmentation(v)
	return _u
}

// SetNillableNeedsResegmentation sets the "needs_resegmentation" field if the given value is not nil.
func (_u *InteractionUpdateOne) SetNillableNeedsResegmentation(v *bool) *InteractionUpdateOne {
	if v != nil {
		_u.SetNeedsResegmentation(*v)
	}
	return _u
}

// SetSourceMetadata sets the "source_metadata" field.
func (_u *InteractionUpdateOne) SetSourceMetadata(v map[string]interface{}) *InteractionUpdateOne {
	_u.mutation.SetSourceMetadata(v)
	return _u
}

// ClearSourceMetadata clears the value of the "source_metadata" field.
func (_u *InteractionUpdateOne) ClearSourceMetadata() *InteractionUpdateOne {
	_u.mutation.ClearSourceMetadata()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InteractionUpdateOne) SetUpdatedAt(v time.Time) *InteractionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddMessageIDs adds the "messages" edge to the Message entity by IDs.
func (_u *InteractionUpdateOne) AddMessageIDs(ids ...string) *InteractionUpdateOne {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the Message entity.
func (_u *InteractionUpdateOne) AddMessages(v ...*Message) *InteractionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddParticipantIDs adds the "participants" edge to the InteractionParticipant entity by IDs.
func (_u *InteractionUpdateOne) AddParticipantIDs(ids ...string) *InteractionUpdateOne {
	_u.mutation.AddParticipantIDs(ids...)
	return _u
}

// AddParticipants adds the "participants" edges to the InteractionParticipant entity.
func (_u *InteractionUpdateOne) AddParticipants(v ...*InteractionParticipant) *InteractionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddParticipantIDs(ids...)
}

// AddSegmentIDs adds the "segments" edge to the TopicalSegment entity by IDs.
func (_u *InteractionUpdateOne) AddSegmentIDs(ids ...string) *InteractionUpdateOne {
	_u.mutation.AddSegmentIDs(ids...)
	return _u
}

// AddSegments adds the "segments" edges to the TopicalSegment entity.
func (_u *InteractionUpdateOne) AddSegments(v ...*TopicalSegment) *InteractionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSegmentIDs(ids...)
}

// Mutation returns the InteractionMutation object of the builder.
func (_u *InteractionUpdateOne) Mutation() *InteractionMutation {
	return _u.mutation
}

// ClearMessages clears all "messages" edges to the Message entity.
func (_u *InteractionUpdateOne) ClearMessages() *InteractionUpdateOne {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to Message entities by IDs.
func (_u *InteractionUpdateOne) RemoveMessageIDs(ids ...string) *InteractionUpdateOne {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to Message entities.
func (_u *InteractionUpdateOne) RemoveMessages(v ...*Message) *InteractionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearParticipants clears all "participants" edges to the InteractionParticipant entity.
func (_u *InteractionUpdateOne) ClearParticipants() *InteractionUpdateOne {
	_u.mutation.ClearParticipants()
	return _u
}

// RemoveParticipantIDs removes the "participants" edge to InteractionParticipant entities by IDs.
func (_u *InteractionUpdateOne) RemoveParticipantIDs(ids ...string) *InteractionUpdateOne {
	_u.mutation.RemoveParticipantIDs(ids...)
	return _u
}

// RemoveParticipants removes "participants" edges to InteractionParticipant entities.
func (_u *InteractionUpdateOne) RemoveParticipants(v ...*InteractionParticipant) *InteractionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveParticipantIDs(ids...)
}

// ClearSegments clears all "segments" edges to the TopicalSegment entity.
func (_u *InteractionUpdateOne) ClearSegments() *InteractionUpdateOne {
	_u.mutation.ClearSegments()
	return _u
}

// RemoveSegmentIDs removes the "segments" edge to TopicalSegment entities by IDs.
func (_u *InteractionUpdateOne) RemoveSegmentIDs(ids ...string) *InteractionUpdateOne {
	_u.mutation.RemoveSegmentIDs(ids...)
	return _u
}

// RemoveSegments removes "segments" edges to TopicalSegment entities.
func (_u *InteractionUpdateOne) RemoveSegments(v ...*TopicalSegment) *InteractionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSegmentIDs(ids...)
}

// Where appends a list predicates to the InteractionUpdate builder.
func (_u *InteractionUpdateOne) Where(ps ...predicate.Interaction) *InteractionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InteractionUpdateOne) Select(field string, fields ...string) *InteractionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Interaction entity.
func (_u *InteractionUpdateOne) Save(ctx context.Context) (*Interaction, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InteractionUpdateOne) SaveX(ctx context.Context) *Interaction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InteractionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InteractionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InteractionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := interaction.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InteractionUpdateOne) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := interaction.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Interaction.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := interaction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Interaction.status": %w`, err)}
		}
	}
	return nil
}

func (_u *InteractionUpdateOne) sqlSave(ctx context.Context) (_node *Interaction, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interaction.Table, interaction.Columns, sqlgraph.NewFieldSpec(interaction.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Interaction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, interaction.FieldID)
		for _, f := range fields {
			if !interaction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != interaction.FieldID {
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
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(interaction.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(interaction.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChatID(); ok {
		_spec.SetField(interaction.FieldChatID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(interaction.FieldTopicID, field.TypeString, value)
	}
	if _u.mutation.TopicIDCleared() {
		_spec.ClearField(interaction.FieldTopicID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(interaction.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(interaction.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(interaction.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(interaction.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastMessageAt(); ok {
		_spec.SetField(interaction.FieldLastMessageAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.NeedsResegmentation(); ok {
		_spec.SetField(interaction.FieldNeedsResegmentation, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SourceMetadata(); ok {
		_spec.SetField(interaction.FieldSourceMetadata, field.TypeJSON, value)
	}
	if _u.mutation.SourceMetadataCleared() {
		_spec.ClearField(interaction.FieldSourceMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(interaction.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ParticipantsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedParticipantsIDs(); len(nodes) > 0 && !_u.mutation.ParticipantsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParticipantsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SegmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSegmentsIDs(); len(nodes) > 0 && !_u.mutation.SegmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SegmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Interaction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
