// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/memograph/memograph/ent/activity"
	"github.com/memograph/memograph/ent/activityclosure"
	"github.com/memograph/memograph/ent/commitment"
	"github.com/memograph/memograph/ent/dataqualityreport"
	"github.com/memograph/memograph/ent/embeddingjob"
	"github.com/memograph/memograph/ent/entity"
	"github.com/memograph/memograph/ent/entityfact"
	"github.com/memograph/memograph/ent/entityidentifier"
	"github.com/memograph/memograph/ent/interaction"
	"github.com/memograph/memograph/ent/interactionparticipant"
	"github.com/memograph/memograph/ent/message"
	"github.com/memograph/memograph/ent/pendingapproval"
	"github.com/memograph/memograph/ent/pendingentityresolution"
	"github.com/memograph/memograph/ent/predicate"
	"github.com/memograph/memograph/ent/topicalsegment"
	"github.com/memograph/memograph/ent/user"
	pgvector "github.com/pgvector/pgvector-go"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeActivity                = "Activity"
	TypeActivityClosure         = "ActivityClosure"
	TypeCommitment              = "Commitment"
	TypeDataQualityReport       = "DataQualityReport"
	TypeEmbeddingJob            = "EmbeddingJob"
	TypeEntity                  = "Entity"
	TypeEntityFact              = "EntityFact"
	TypeEntityIdentifier        = "EntityIdentifier"
	TypeInteraction             = "Interaction"
	TypeInteractionParticipant  = "InteractionParticipant"
	TypeMessage                 = "Message"
	TypePendingApproval         = "PendingApproval"
	TypePendingEntityResolution = "PendingEntityResolution"
	TypeTopicalSegment          = "TopicalSegment"
	TypeUser                    = "User"
)

// ActivityMutation represents an operation that mutates the Activity nodes in the graph.
type ActivityMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	name                  *string
	activity_type         *activity.ActivityType
	status                *activity.Status
	priority              *int
	addpriority           *int
	context               *string
	parent_id             *string
	depth                 *int
	adddepth              *int
	materialized_path     *string
	owner_entity_id       *string
	client_entity_id      *string
	source_interaction_id *string
	starts_at             *time.Time
	due_at                *time.Time
	completed_at          *time.Time
	tags                  *[]string
	appendtags            []string
	metadata              *map[string]interface{}
	needs_review          *bool
	confirmation_count    *int
	addconfirmation_count *int
	embedding             *pgvector.Vector
	created_at            *time.Time
	updated_at            *time.Time
	deleted_at            *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*Activity, error)
	predicates            []predicate.Activity
}

var _ ent.Mutation = (*ActivityMutation)(nil)

// activityOption allows management of the mutation configuration using functional options.
type activityOption func(*ActivityMutation)

// newActivityMutation creates new mutation for the Activity entity.
func newActivityMutation(c config, op Op, opts ...activityOption) *ActivityMutation {
	m := &ActivityMutation{
		config:        c,
		op:            op,
		typ:           TypeActivity,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withActivityID sets the ID field of the mutation.
func withActivityID(id string) activityOption {
	return func(m *ActivityMutation) {
		var (
			err   error
			once  sync.Once
			value *Activity
		)
		m.oldValue = func(ctx context.Context) (*Activity, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Activity.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withActivity sets the old Activity of the mutation.
func withActivity(node *Activity) activityOption {
	return func(m *ActivityMutation) {
		m.oldValue = func(context.Context) (*Activity, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ActivityMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ActivityMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Activity entities.
func (m *ActivityMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ActivityMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ActivityMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Activity.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ActivityMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ActivityMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Activity entity.
// If the Activity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ActivityMutation) ResetName() {
	m.name = nil
}

// SetActivityType sets the "activity_type" field.
func (m *ActivityMutation) SetActivityType(at activity.ActivityType) {
	m.activity_type = &at
}

// ActivityType returns the value of the "activity_type" field in the mutation.
func (m *ActivityMutation) ActivityType() (r activity.ActivityType, exists bool) {
	v := m.activity_type
	if v == nil {
		return
	}
	return *v, true
}

// OldActivityType returns the old "activity_type" field's value of the Activity entity.
// If the Activity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityMutation) OldActivityType(ctx context.Context) (v activity.ActivityType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActivityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActivityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActivityType: %w", err)
	}
	return oldValue.ActivityType, nil
}

// ResetActivityType resets all changes to the "activity_type" field.
func (m *ActivityMutation) ResetActivityType() {
	m.activity_type = nil
}

// SetStatus sets the "status" field.
func (m *ActivityMutation) SetStatus(a activity.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *ActivityMutation) Status() (r activity.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Activity entity.
// If the Activity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityMutation) OldStatus(ctx context.Context) (v activity.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ActivityMutation) ResetStatus() {
	m.status = nil
}

// SetPriority sets the "priority" field.
func (m *ActivityMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *ActivityMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Activity entity.
// If the Activity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *ActivityMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *ActivityMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *ActivityMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetContext sets the "context" field.
func (m *ActivityMutation) SetContext(s string) {
	m.context = &s
}

// Context returns the value of the "context" field in the mutation.
func (m *ActivityMutation) Context() (r string, exists bool) {
	v := m.context
	if v == nil {
		return
	}
	return *v, true
}

// OldContext returns the old "context" field's value of the Activity entity.
// If the Activity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityMutation) OldContext(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContext: %w", err)
	}
	return oldValue.Context, nil
}

// ClearContext clears the value of the "context" field.
func (m *ActivityMutation) ClearContext() {
	m.context = nil
	m.clearedFields[activity.FieldContext] = struct{}{}
}

// ContextCleared returns if the "context" field was cleared in this mutation.
func (m *ActivityMutation) ContextCleared() bool {
	_, ok := m.clearedFields[activity.FieldContext]
	return ok
}

// ResetContext resets all changes to the "context" field.
func (m *ActivityMutation) ResetContext() {
	m.context = nil
	delete(m.clearedFields, activity.FieldContext)
}

// SetParentID sets the "parent_id" field.
func (m *ActivityMutation) SetParentID(s string) {
	m.parent_id = &s
}

// ParentID returns the value of the "parent_id" field in the mutation.
func (m *ActivityMutation) ParentID() (r string, exists bool) {
	v := m.parent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentID returns the old "parent_id" field's value of the Activity entity.
// If the Activity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityMutation) OldParentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentID: %w", err)
	}
	return oldValue.ParentID, nil
}

// ClearParentID clears the value of the "parent_id" field.
func (m *ActivityMutation) ClearParentID() {
	m.parent_id = nil
	m.clearedFields[activity.FieldParentID] = struct{}{}
}

// ParentIDCleared returns if the "parent_id" field was cleared in this mutation.
func (m *ActivityMutation) ParentIDCleared() bool {
	_, ok := m.clearedFields[activity.FieldParentID]
	return ok
}

// ResetParentID resets all changes to the "parent_id" field.
func (m *ActivityMutation) ResetParentID() {
	m.parent_id = nil
	delete(m.clearedFields, activity.FieldParentID)
}

// SetDepth sets the "depth" field.
func (m *ActivityMutation) SetDepth(i int) {
	m.depth = &i
	m.adddepth = nil
}

// Depth returns the value of the "depth" field in the mutation.
func (m *ActivityMutation) Depth() (r int, exists bool) {
	v := m.depth
	if v == nil {
		return
	}
	return *v, true
}

// OldDepth returns the old "depth" field's value of the Activity entity.
// If the Activity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityMutation) OldDepth(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDepth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDepth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDepth: %w", err)
	}
	return oldValue.Depth, nil
}

// AddDepth adds i to the "depth" field.
func (m *ActivityMutation) AddDepth(i int) {
	if m.adddepth != nil {
		*m.adddepth += i
	} else {
		m.adddepth = &i
	}
}

// AddedDepth returns the value that was added to the "depth" field in this mutation.
func (m *ActivityMutation) AddedDepth() (r int, exists bool) {
	v := m.adddepth
	if v == nil {
		return
	}
	return *v, true
}

// ResetDepth resets all changes to the "depth" field.
func (m *ActivityMutation) ResetDepth() {
	m.depth = nil
	m.adddepth = nil
}

// SetMaterializedPath sets the "materialized_path" field.
func (m *ActivityMutation) SetMaterializedPath(s string) {
	m.materialized_path = &s
}

// MaterializedPath returns the value of the "materialized_path" field in the mutation.
func (m *ActivityMutation) MaterializedPath() (r string, exists bool) {
	v := m.materialized_path
	if v == nil {
		return
	}
	return *v, true
}

// OldMaterializedPath returns the old "materialized_path" field's value of the Activity entity.
// If the Activity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityMutation) OldMaterializedPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaterializedPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaterializedPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaterializedPath: %w", err)
	}
	return oldValue.MaterializedPath, nil
}

// ResetMaterializedPath resets all changes to the "materialized_path" field.
func (m *ActivityMutation) ResetMaterializedPath() {
	m.materialized_path = nil
}

// SetOwnerEntityID sets the "owner_entity_id" field.
func (m *ActivityMutation) SetOwnerEntityID(s string) {
	m.owner_entity_id = &s
}

// OwnerEntityID returns the value of the "owner_entity_id" field in the mutation.
func (m *ActivityMutation) OwnerEntityID() (r string, exists bool) {
	v := m.owner_entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerEntityID returns the old "owner_entity_id" field's value of the Activity entity.
// If the Activity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityMutation) OldOwnerEntityID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerEntityID: %w", err)
	}
	return oldValue.OwnerEntityID, nil
}

// ClearOwnerEntityID clears the value of the "owner_entity_id" field.
func (m *ActivityMutation) ClearOwnerEntityID() {
	m.owner_entity_id = nil
	m.clearedFields[activity.FieldOwnerEntityID] = struct{}{}
}

// OwnerEntityIDCleared returns if the "owner_entity_id" field was cleared in this mutation.
func (m *ActivityMutation) OwnerEntityIDCleared() bool {
	_, ok := m.clearedFields[activity.FieldOwnerEntityID]
	return ok
}

// ResetOwnerEntityID resets all changes to the "owner_entity_id" field.
func (m *ActivityMutation) ResetOwnerEntityID() {
	m.owner_entity_id = nil
	delete(m.clearedFields, activity.FieldOwnerEntityID)
}

// SetClientEntityID sets the "client_entity_id" field.
func (m *ActivityMutation) SetClientEntityID(s string) {
	m.client_entity_id = &s
}

// ClientEntityID returns the value of the "client_entity_id" field in the mutation.
func (m *ActivityMutation) ClientEntityID() (r string, exists bool) {
	v := m.client_entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClientEntityID returns the old "client_entity_id" field's value of the Activity entity.
// If the Activity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityMutation) OldClientEntityID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientEntityID: %w", err)
	}
	return oldValue.ClientEntityID, nil
}

// ClearClientEntityID clears the value of the "client_entity_id" field.
func (m *ActivityMutation) ClearClientEntityID() {
	m.client_entity_id = nil
	m.clearedFields[activity.FieldClientEntityID] = struct{}{}
}

// ClientEntityIDCleared returns if the "client_entity_id" field was cleared in this mutation.
func (m *ActivityMutation) ClientEntityIDCleared() bool {
	_, ok := m.clearedFields[activity.FieldClientEntityID]
	return ok
}

// ResetClientEntityID resets all changes to the "client_entity_id" field.
func (m *ActivityMutation) ResetClientEntityID() {
	m.client_entity_id = nil
	delete(m.clearedFields, activity.FieldClientEntityID)
}

// SetSourceInteractionID sets the "source_interaction_id" field.
func (m *ActivityMutation) SetSourceInteractionID(s string) {
	m.source_interaction_id = &s
}

// SourceInteractionID returns the value of the "source_interaction_id" field in the mutation.
func (m *ActivityMutation) SourceInteractionID() (r string, exists bool) {
	v := m.source_interaction_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceInteractionID returns the old "source_interaction_id" field's value of the Activity entity.
// If the Activity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityMutation) OldSourceInteractionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceInteractionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceInteractionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceInteractionID: %w", err)
	}
	return oldValue.SourceInteractionID, nil
}

// ClearSourceInteractionID clears the value of the "source_interaction_id" field.
func (m *ActivityMutation) ClearSourceInteractionID() {
	m.source_interaction_id = nil
	m.clearedFields[activity.FieldSourceInteractionID] = struct{}{}
}

// SourceInteractionIDCleared returns if the "source_interaction_id" field was cleared in this mutation.
func (m *ActivityMutation) SourceInteractionIDCleared() bool {
	_, ok := m.clearedFields[activity.FieldSourceInteractionID]
	return ok
}

// ResetSourceInteractionID resets all changes to the "source_interaction_id" field.
func (m *ActivityMutation) ResetSourceInteractionID() {
	m.source_interaction_id = nil
	delete(m.clearedFields, activity.FieldSourceInteractionID)
}

// SetStartsAt sets the "starts_at" field.
func (m *ActivityMutation) SetStartsAt(t time.Time) {
	m.starts_at = &t
}

// StartsAt returns the value of the "starts_at" field in the mutation.
func (m *ActivityMutation) StartsAt() (r time.Time, exists bool) {
	v := m.starts_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartsAt returns the old "starts_at" field's value of the Activity entity.
// If the Activity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityMutation) OldStartsAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartsAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartsAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartsAt: %w", err)
	}
	return oldValue.StartsAt, nil
}

// ClearStartsAt clears the value of the "starts_at" field.
func (m *ActivityMutation) ClearStartsAt() {
	m.starts_at = nil
	m.clearedFields[activity.FieldStartsAt] = struct{}{}
}

// StartsAtCleared returns if the "starts_at" field was cleared in this mutation.
func (m *ActivityMutation) StartsAtCleared() bool {
	_, ok := m.clearedFields[activity.FieldStartsAt]
	return ok
}

// ResetStartsAt resets all changes to the "starts_at" field.
func (m *ActivityMutation) ResetStartsAt() {
	m.starts_at = nil
	delete(m.clearedFields, activity.FieldStartsAt)
}

// SetDueAt sets the "due_at" field.
func (m *ActivityMutation) SetDueAt(t time.Time) {
	m.due_at = &t
}

// DueAt returns the value of the "due_at" field in the mutation.
func (m *ActivityMutation) DueAt() (r time.Time, exists bool) {
	v := m.due_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDueAt returns the old "due_at" field's value of the Activity entity.
// If the Activity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityMutation) OldDueAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDueAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDueAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDueAt: %w", err)
	}
	return oldValue.DueAt, nil
}

// ClearDueAt clears the value of the "due_at" field.
func (m *ActivityMutation) ClearDueAt() {
	m.due_at = nil
	m.clearedFields[activity.FieldDueAt] = struct{}{}
}

// DueAtCleared returns if the "due_at" field was cleared in this mutation.
func (m *ActivityMutation) DueAtCleared() bool {
	_, ok := m.clearedFields[activity.FieldDueAt]
	return ok
}

// ResetDueAt resets all changes to the "due_at" field.
func (m *ActivityMutation) ResetDueAt() {
	m.due_at = nil
	delete(m.clearedFields, activity.FieldDueAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *ActivityMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ActivityMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Activity entity.
// If the Activity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ActivityMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[activity.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ActivityMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[activity.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ActivityMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, activity.FieldCompletedAt)
}

// SetTags sets the "tags" field.
func (m *ActivityMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *ActivityMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the Activity entity.
// If the Activity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *ActivityMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *ActivityMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *ActivityMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[activity.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *ActivityMutation) TagsCleared() bool {
	_, ok := m.clearedFields[activity.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *ActivityMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, activity.FieldTags)
}

// SetMetadata sets the "metadata" field.
func (m *ActivityMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *ActivityMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Activity entity.
// If the Activity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *ActivityMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[activity.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *ActivityMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[activity.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *ActivityMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, activity.FieldMetadata)
}

// SetNeedsReview sets the "needs_review" field.
func (m *ActivityMutation) SetNeedsReview(b bool) {
	m.needs_review = &b
}

// NeedsReview returns the value of the "needs_review" field in the mutation.
func (m *ActivityMutation) NeedsReview() (r bool, exists bool) {
	v := m.needs_review
	if v == nil {
		return
	}
	return *v, true
}

// OldNeedsReview returns the old "needs_review" field's value of the Activity entity.
// If the Activity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityMutation) OldNeedsReview(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeedsReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeedsReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeedsReview: %w", err)
	}
	return oldValue.NeedsReview, nil
}

// ResetNeedsReview resets all changes to the "needs_review" field.
func (m *ActivityMutation) ResetNeedsReview() {
	m.needs_review = nil
}

// SetConfirmationCount sets the "confirmation_count" field.
func (m *ActivityMutation) SetConfirmationCount(i int) {
	m.confirmation_count = &i
	m.addconfirmation_count = nil
}

// ConfirmationCount returns the value of the "confirmation_count" field in the mutation.
func (m *ActivityMutation) ConfirmationCount() (r int, exists bool) {
	v := m.confirmation_count
	if v == nil {
		return
	}
	return *v, true
}

// OldConfirmationCount returns the old "confirmation_count" field's value of the Activity entity.
// If the Activity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityMutation) OldConfirmationCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfirmationCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfirmationCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfirmationCount: %w", err)
	}
	return oldValue.ConfirmationCount, nil
}

// AddConfirmationCount adds i to the "confirmation_count" field.
func (m *ActivityMutation) AddConfirmationCount(i int) {
	if m.addconfirmation_count != nil {
		*m.addconfirmation_count += i
	} else {
		m.addconfirmation_count = &i
	}
}

// AddedConfirmationCount returns the value that was added to the "confirmation_count" field in this mutation.
func (m *ActivityMutation) AddedConfirmationCount() (r int, exists bool) {
	v := m.addconfirmation_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfirmationCount resets all changes to the "confirmation_count" field.
func (m *ActivityMutation) ResetConfirmationCount() {
	m.confirmation_count = nil
	m.addconfirmation_count = nil
}

// SetEmbedding sets the "embedding" field.
func (m *ActivityMutation) SetEmbedding(pg pgvector.Vector) {
	m.embedding = &pg
}

// Embedding returns the value of the "embedding" field in the mutation.
func (m *ActivityMutation) Embedding() (r pgvector.Vector, exists bool) {
	v := m.embedding
	if v == nil {
		return
	}
	return *v, true
}

// OldEmbedding returns the old "embedding" field's value of the Activity entity.
// If the Activity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityMutation) OldEmbedding(ctx context.Context) (v pgvector.Vector, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmbedding is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmbedding requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmbedding: %w", err)
	}
	return oldValue.Embedding, nil
}

// ClearEmbedding clears the value of the "embedding" field.
func (m *ActivityMutation) ClearEmbedding() {
	m.embedding = nil
	m.clearedFields[activity.FieldEmbedding] = struct{}{}
}

// EmbeddingCleared returns if the "embedding" field was cleared in this mutation.
func (m *ActivityMutation) EmbeddingCleared() bool {
	_, ok := m.clearedFields[activity.FieldEmbedding]
	return ok
}

// ResetEmbedding resets all changes to the "embedding" field.
func (m *ActivityMutation) ResetEmbedding() {
	m.embedding = nil
	delete(m.clearedFields, activity.FieldEmbedding)
}

// SetCreatedAt sets the "created_at" field.
func (m *ActivityMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ActivityMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Activity entity.
// If the Activity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ActivityMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ActivityMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ActivityMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Activity entity.
// If the Activity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ActivityMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *ActivityMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *ActivityMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Activity entity.
// If the Activity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *ActivityMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[activity.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *ActivityMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[activity.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *ActivityMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, activity.FieldDeletedAt)
}

// Where appends a list predicates to the ActivityMutation builder.
func (m *ActivityMutation) Where(ps ...predicate.Activity) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ActivityMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ActivityMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Activity, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ActivityMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ActivityMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Activity).
func (m *ActivityMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ActivityMutation) Fields() []string {
	fields := make([]string, 0, 22)
	if m.name != nil {
		fields = append(fields, activity.FieldName)
	}
	if m.activity_type != nil {
		fields = append(fields, activity.FieldActivityType)
	}
	if m.status != nil {
		fields = append(fields, activity.FieldStatus)
	}
	if m.priority != nil {
		fields = append(fields, activity.FieldPriority)
	}
	if m.context != nil {
		fields = append(fields, activity.FieldContext)
	}
	if m.parent_id != nil {
		fields = append(fields, activity.FieldParentID)
	}
	if m.depth != nil {
		fields = append(fields, activity.FieldDepth)
	}
	if m.materialized_path != nil {
		fields = append(fields, activity.FieldMaterializedPath)
	}
	if m.owner_entity_id != nil {
		fields = append(fields, activity.FieldOwnerEntityID)
	}
	if m.client_entity_id != nil {
		fields = append(fields, activity.FieldClientEntityID)
	}
	if m.source_interaction_id != nil {
		fields = append(fields, activity.FieldSourceInteractionID)
	}
	if m.starts_at != nil {
		fields = append(fields, activity.FieldStartsAt)
	}
	if m.due_at != nil {
		fields = append(fields, activity.FieldDueAt)
	}
	if m.completed_at != nil {
		fields = append(fields, activity.FieldCompletedAt)
	}
	if m.tags != nil {
		fields = append(fields, activity.FieldTags)
	}
	if m.metadata != nil {
		fields = append(fields, activity.FieldMetadata)
	}
	if m.needs_review != nil {
		fields = append(fields, activity.FieldNeedsReview)
	}
	if m.confirmation_count != nil {
		fields = append(fields, activity.FieldConfirmationCount)
	}
	if m.embedding != nil {
		fields = append(fields, activity.FieldEmbedding)
	}
	if m.created_at != nil {
		fields = append(fields, activity.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, activity.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, activity.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ActivityMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case activity.FieldName:
		return m.Name()
	case activity.FieldActivityType:
		return m.ActivityType()
	case activity.FieldStatus:
		return m.Status()
	case activity.FieldPriority:
		return m.Priority()
	case activity.FieldContext:
		return m.Context()
	case activity.FieldParentID:
		return m.ParentID()
	case activity.FieldDepth:
		return m.Depth()
	case activity.FieldMaterializedPath:
		return m.MaterializedPath()
	case activity.FieldOwnerEntityID:
		return m.OwnerEntityID()
	case activity.FieldClientEntityID:
		return m.ClientEntityID()
	case activity.FieldSourceInteractionID:
		return m.SourceInteractionID()
	case activity.FieldStartsAt:
		return m.StartsAt()
	case activity.FieldDueAt:
		return m.DueAt()
	case activity.FieldCompletedAt:
		return m.CompletedAt()
	case activity.FieldTags:
		return m.Tags()
	case activity.FieldMetadata:
		return m.Metadata()
	case activity.FieldNeedsReview:
		return m.NeedsReview()
	case activity.FieldConfirmationCount:
		return m.ConfirmationCount()
	case activity.FieldEmbedding:
		return m.Embedding()
	case activity.FieldCreatedAt:
		return m.CreatedAt()
	case activity.FieldUpdatedAt:
		return m.UpdatedAt()
	case activity.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ActivityMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case activity.FieldName:
		return m.OldName(ctx)
	case activity.FieldActivityType:
		return m.OldActivityType(ctx)
	case activity.FieldStatus:
		return m.OldStatus(ctx)
	case activity.FieldPriority:
		return m.OldPriority(ctx)
	case activity.FieldContext:
		return m.OldContext(ctx)
	case activity.FieldParentID:
		return m.OldParentID(ctx)
	case activity.FieldDepth:
		return m.OldDepth(ctx)
	case activity.FieldMaterializedPath:
		return m.OldMaterializedPath(ctx)
	case activity.FieldOwnerEntityID:
		return m.OldOwnerEntityID(ctx)
	case activity.FieldClientEntityID:
		return m.OldClientEntityID(ctx)
	case activity.FieldSourceInteractionID:
		return m.OldSourceInteractionID(ctx)
	case activity.FieldStartsAt:
		return m.OldStartsAt(ctx)
	case activity.FieldDueAt:
		return m.OldDueAt(ctx)
	case activity.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case activity.FieldTags:
		return m.OldTags(ctx)
	case activity.FieldMetadata:
		return m.OldMetadata(ctx)
	case activity.FieldNeedsReview:
		return m.OldNeedsReview(ctx)
	case activity.FieldConfirmationCount:
		return m.OldConfirmationCount(ctx)
	case activity.FieldEmbedding:
		return m.OldEmbedding(ctx)
	case activity.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case activity.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case activity.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Activity field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActivityMutation) SetField(name string, value ent.Value) error {
	switch name {
	case activity.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case activity.FieldActivityType:
		v, ok := value.(activity.ActivityType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActivityType(v)
		return nil
	case activity.FieldStatus:
		v, ok := value.(activity.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case activity.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case activity.FieldContext:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContext(v)
		return nil
	case activity.FieldParentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentID(v)
		return nil
	case activity.FieldDepth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDepth(v)
		return nil
	case activity.FieldMaterializedPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaterializedPath(v)
		return nil
	case activity.FieldOwnerEntityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerEntityID(v)
		return nil
	case activity.FieldClientEntityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientEntityID(v)
		return nil
	case activity.FieldSourceInteractionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceInteractionID(v)
		return nil
	case activity.FieldStartsAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartsAt(v)
		return nil
	case activity.FieldDueAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDueAt(v)
		return nil
	case activity.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case activity.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case activity.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case activity.FieldNeedsReview:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeedsReview(v)
		return nil
	case activity.FieldConfirmationCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfirmationCount(v)
		return nil
	case activity.FieldEmbedding:
		v, ok := value.(pgvector.Vector)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmbedding(v)
		return nil
	case activity.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case activity.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case activity.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Activity field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ActivityMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, activity.FieldPriority)
	}
	if m.adddepth != nil {
		fields = append(fields, activity.FieldDepth)
	}
	if m.addconfirmation_count != nil {
		fields = append(fields, activity.FieldConfirmationCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ActivityMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case activity.FieldPriority:
		return m.AddedPriority()
	case activity.FieldDepth:
		return m.AddedDepth()
	case activity.FieldConfirmationCount:
		return m.AddedConfirmationCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActivityMutation) AddField(name string, value ent.Value) error {
	switch name {
	case activity.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	case activity.FieldDepth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDepth(v)
		return nil
	case activity.FieldConfirmationCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfirmationCount(v)
		return nil
	}
	return fmt.Errorf("unknown Activity numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ActivityMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(activity.FieldContext) {
		fields = append(fields, activity.FieldContext)
	}
	if m.FieldCleared(activity.FieldParentID) {
		fields = append(fields, activity.FieldParentID)
	}
	if m.FieldCleared(activity.FieldOwnerEntityID) {
		fields = append(fields, activity.FieldOwnerEntityID)
	}
	if m.FieldCleared(activity.FieldClientEntityID) {
		fields = append(fields, activity.FieldClientEntityID)
	}
	if m.FieldCleared(activity.FieldSourceInteractionID) {
		fields = append(fields, activity.FieldSourceInteractionID)
	}
	if m.FieldCleared(activity.FieldStartsAt) {
		fields = append(fields, activity.FieldStartsAt)
	}
	if m.FieldCleared(activity.FieldDueAt) {
		fields = append(fields, activity.FieldDueAt)
	}
	if m.FieldCleared(activity.FieldCompletedAt) {
		fields = append(fields, activity.FieldCompletedAt)
	}
	if m.FieldCleared(activity.FieldTags) {
		fields = append(fields, activity.FieldTags)
	}
	if m.FieldCleared(activity.FieldMetadata) {
		fields = append(fields, activity.FieldMetadata)
	}
	if m.FieldCleared(activity.FieldEmbedding) {
		fields = append(fields, activity.FieldEmbedding)
	}
	if m.FieldCleared(activity.FieldDeletedAt) {
		fields = append(fields, activity.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ActivityMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ActivityMutation) ClearField(name string) error {
	switch name {
	case activity.FieldContext:
		m.ClearContext()
		return nil
	case activity.FieldParentID:
		m.ClearParentID()
		return nil
	case activity.FieldOwnerEntityID:
		m.ClearOwnerEntityID()
		return nil
	case activity.FieldClientEntityID:
		m.ClearClientEntityID()
		return nil
	case activity.FieldSourceInteractionID:
		m.ClearSourceInteractionID()
		return nil
	case activity.FieldStartsAt:
		m.ClearStartsAt()
		return nil
	case activity.FieldDueAt:
		m.ClearDueAt()
		return nil
	case activity.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case activity.FieldTags:
		m.ClearTags()
		return nil
	case activity.FieldMetadata:
		m.ClearMetadata()
		return nil
	case activity.FieldEmbedding:
		m.ClearEmbedding()
		return nil
	case activity.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Activity nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ActivityMutation) ResetField(name string) error {
	switch name {
	case activity.FieldName:
		m.ResetName()
		return nil
	case activity.FieldActivityType:
		m.ResetActivityType()
		return nil
	case activity.FieldStatus:
		m.ResetStatus()
		return nil
	case activity.FieldPriority:
		m.ResetPriority()
		return nil
	case activity.FieldContext:
		m.ResetContext()
		return nil
	case activity.FieldParentID:
		m.ResetParentID()
		return nil
	case activity.FieldDepth:
		m.ResetDepth()
		return nil
	case activity.FieldMaterializedPath:
		m.ResetMaterializedPath()
		return nil
	case activity.FieldOwnerEntityID:
		m.ResetOwnerEntityID()
		return nil
	case activity.FieldClientEntityID:
		m.ResetClientEntityID()
		return nil
	case activity.FieldSourceInteractionID:
		m.ResetSourceInteractionID()
		return nil
	case activity.FieldStartsAt:
		m.ResetStartsAt()
		return nil
	case activity.FieldDueAt:
		m.ResetDueAt()
		return nil
	case activity.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case activity.FieldTags:
		m.ResetTags()
		return nil
	case activity.FieldMetadata:
		m.ResetMetadata()
		return nil
	case activity.FieldNeedsReview:
		m.ResetNeedsReview()
		return nil
	case activity.FieldConfirmationCount:
		m.ResetConfirmationCount()
		return nil
	case activity.FieldEmbedding:
		m.ResetEmbedding()
		return nil
	case activity.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case activity.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case activity.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Activity field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ActivityMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ActivityMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ActivityMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ActivityMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ActivityMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ActivityMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ActivityMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Activity unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ActivityMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Activity edge %s", name)
}

// ActivityClosureMutation represents an operation that mutates the ActivityClosure nodes in the graph.
type ActivityClosureMutation struct {
	config
	op            Op
	typ           string
	id            *string
	ancestor_id   *string
	descendant_id *string
	depth         *int
	adddepth      *int
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ActivityClosure, error)
	predicates    []predicate.ActivityClosure
}

var _ ent.Mutation = (*ActivityClosureMutation)(nil)

// activityclosureOption allows management of the mutation configuration using functional options.
type activityclosureOption func(*ActivityClosureMutation)

// newActivityClosureMutation creates new mutation for the ActivityClosure entity.
func newActivityClosureMutation(c config, op Op, opts ...activityclosureOption) *ActivityClosureMutation {
	m := &ActivityClosureMutation{
		config:        c,
		op:            op,
		typ:           TypeActivityClosure,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withActivityClosureID sets the ID field of the mutation.
func withActivityClosureID(id string) activityclosureOption {
	return func(m *ActivityClosureMutation) {
		var (
			err   error
			once  sync.Once
			value *ActivityClosure
		)
		m.oldValue = func(ctx context.Context) (*ActivityClosure, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ActivityClosure.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withActivityClosure sets the old ActivityClosure of the mutation.
func withActivityClosure(node *ActivityClosure) activityclosureOption {
	return func(m *ActivityClosureMutation) {
		m.oldValue = func(context.Context) (*ActivityClosure, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ActivityClosureMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ActivityClosureMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ActivityClosure entities.
func (m *ActivityClosureMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ActivityClosureMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ActivityClosureMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ActivityClosure.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAncestorID sets the "ancestor_id" field.
func (m *ActivityClosureMutation) SetAncestorID(s string) {
	m.ancestor_id = &s
}

// AncestorID returns the value of the "ancestor_id" field in the mutation.
func (m *ActivityClosureMutation) AncestorID() (r string, exists bool) {
	v := m.ancestor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAncestorID returns the old "ancestor_id" field's value of the ActivityClosure entity.
// If the ActivityClosure object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityClosureMutation) OldAncestorID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAncestorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAncestorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAncestorID: %w", err)
	}
	return oldValue.AncestorID, nil
}

// ResetAncestorID resets all changes to the "ancestor_id" field.
func (m *ActivityClosureMutation) ResetAncestorID() {
	m.ancestor_id = nil
}

// SetDescendantID sets the "descendant_id" field.
func (m *ActivityClosureMutation) SetDescendantID(s string) {
	m.descendant_id = &s
}

// DescendantID returns the value of the "descendant_id" field in the mutation.
func (m *ActivityClosureMutation) DescendantID() (r string, exists bool) {
	v := m.descendant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDescendantID returns the old "descendant_id" field's value of the ActivityClosure entity.
// If the ActivityClosure object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityClosureMutation) OldDescendantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescendantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescendantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescendantID: %w", err)
	}
	return oldValue.DescendantID, nil
}

// ResetDescendantID resets all changes to the "descendant_id" field.
func (m *ActivityClosureMutation) ResetDescendantID() {
	m.descendant_id = nil
}

// SetDepth sets the "depth" field.
func (m *ActivityClosureMutation) SetDepth(i int) {
	m.depth = &i
	m.adddepth = nil
}

// Depth returns the value of the "depth" field in the mutation.
func (m *ActivityClosureMutation) Depth() (r int, exists bool) {
	v := m.depth
	if v == nil {
		return
	}
	return *v, true
}

// OldDepth returns the old "depth" field's value of the ActivityClosure entity.
// If the ActivityClosure object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityClosureMutation) OldDepth(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDepth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDepth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDepth: %w", err)
	}
	return oldValue.Depth, nil
}

// AddDepth adds i to the "depth" field.
func (m *ActivityClosureMutation) AddDepth(i int) {
	if m.adddepth != nil {
		*m.adddepth += i
	} else {
		m.adddepth = &i
	}
}

// AddedDepth returns the value that was added to the "depth" field in this mutation.
func (m *ActivityClosureMutation) AddedDepth() (r int, exists bool) {
	v := m.adddepth
	if v == nil {
		return
	}
	return *v, true
}

// ResetDepth resets all changes to the "depth" field.
func (m *ActivityClosureMutation) ResetDepth() {
	m.depth = nil
	m.adddepth = nil
}

// Where appends a list predicates to the ActivityClosureMutation builder.
func (m *ActivityClosureMutation) Where(ps ...predicate.ActivityClosure) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ActivityClosureMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ActivityClosureMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ActivityClosure, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ActivityClosureMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ActivityClosureMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ActivityClosure).
func (m *ActivityClosureMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ActivityClosureMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.ancestor_id != nil {
		fields = append(fields, activityclosure.FieldAncestorID)
	}
	if m.descendant_id != nil {
		fields = append(fields, activityclosure.FieldDescendantID)
	}
	if m.depth != nil {
		fields = append(fields, activityclosure.FieldDepth)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ActivityClosureMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case activityclosure.FieldAncestorID:
		return m.AncestorID()
	case activityclosure.FieldDescendantID:
		return m.DescendantID()
	case activityclosure.FieldDepth:
		return m.Depth()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ActivityClosureMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case activityclosure.FieldAncestorID:
		return m.OldAncestorID(ctx)
	case activityclosure.FieldDescendantID:
		return m.OldDescendantID(ctx)
	case activityclosure.FieldDepth:
		return m.OldDepth(ctx)
	}
	return nil, fmt.Errorf("unknown ActivityClosure field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActivityClosureMutation) SetField(name string, value ent.Value) error {
	switch name {
	case activityclosure.FieldAncestorID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAncestorID(v)
		return nil
	case activityclosure.FieldDescendantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescendantID(v)
		return nil
	case activityclosure.FieldDepth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDepth(v)
		return nil
	}
	return fmt.Errorf("unknown ActivityClosure field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ActivityClosureMutation) AddedFields() []string {
	var fields []string
	if m.adddepth != nil {
		fields = append(fields, activityclosure.FieldDepth)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ActivityClosureMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case activityclosure.FieldDepth:
		return m.AddedDepth()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActivityClosureMutation) AddField(name string, value ent.Value) error {
	switch name {
	case activityclosure.FieldDepth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDepth(v)
		return nil
	}
	return fmt.Errorf("unknown ActivityClosure numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ActivityClosureMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ActivityClosureMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ActivityClosureMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ActivityClosure nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ActivityClosureMutation) ResetField(name string) error {
	switch name {
	case activityclosure.FieldAncestorID:
		m.ResetAncestorID()
		return nil
	case activityclosure.FieldDescendantID:
		m.ResetDescendantID()
		return nil
	case activityclosure.FieldDepth:
		m.ResetDepth()
		return nil
	}
	return fmt.Errorf("unknown ActivityClosure field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ActivityClosureMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ActivityClosureMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ActivityClosureMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ActivityClosureMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ActivityClosureMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ActivityClosureMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ActivityClosureMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ActivityClosure unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ActivityClosureMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ActivityClosure edge %s", name)
}

// CommitmentMutation represents an operation that mutates the Commitment nodes in the graph.
type CommitmentMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	_type                 *commitment.Type
	title                 *string
	description           *string
	status                *commitment.Status
	from_entity_id        *string
	to_entity_id          *string
	activity_id           *string
	source_message_id     *string
	source_interaction_id *string
	due_date              *time.Time
	recurrence_rule       *string
	next_reminder_at      *time.Time
	reminder_count        *int
	addreminder_count     *int
	confidence            *float64
	addconfidence         *float64
	needs_review          *bool
	confirmation_count    *int
	addconfirmation_count *int
	metadata              *map[string]interface{}
	embedding             *pgvector.Vector
	created_at            *time.Time
	updated_at            *time.Time
	deleted_at            *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*Commitment, error)
	predicates            []predicate.Commitment
}

var _ ent.Mutation = (*CommitmentMutation)(nil)

// commitmentOption allows management of the mutation configuration using functional options.
type commitmentOption func(*CommitmentMutation)

// newCommitmentMutation creates new mutation for the Commitment entity.
func newCommitmentMutation(c config, op Op, opts ...commitmentOption) *CommitmentMutation {
	m := &CommitmentMutation{
		config:        c,
		op:            op,
		typ:           TypeCommitment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCommitmentID sets the ID field of the mutation.
func withCommitmentID(id string) commitmentOption {
	return func(m *CommitmentMutation) {
		var (
			err   error
			once  sync.Once
			value *Commitment
		)
		m.oldValue = func(ctx context.Context) (*Commitment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Commitment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCommitment sets the old Commitment of the mutation.
func withCommitment(node *Commitment) commitmentOption {
	return func(m *CommitmentMutation) {
		m.oldValue = func(context.Context) (*Commitment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CommitmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CommitmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Commitment entities.
func (m *CommitmentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CommitmentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CommitmentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Commitment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetType sets the "type" field.
func (m *CommitmentMutation) SetType(c commitment.Type) {
	m._type = &c
}

// GetType returns the value of the "type" field in the mutation.
func (m *CommitmentMutation) GetType() (r commitment.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Commitment entity.
// If the Commitment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommitmentMutation) OldType(ctx context.Context) (v commitment.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *CommitmentMutation) ResetType() {
	m._type = nil
}

// SetTitle sets the "title" field.
func (m *CommitmentMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *CommitmentMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Commitment entity.
// If the Commitment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommitmentMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *CommitmentMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *CommitmentMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *CommitmentMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Commitment entity.
// If the Commitment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommitmentMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *CommitmentMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[commitment.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *CommitmentMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[commitment.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *CommitmentMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, commitment.FieldDescription)
}

// SetStatus sets the "status" field.
func (m *CommitmentMutation) SetStatus(c commitment.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *CommitmentMutation) Status() (r commitment.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Commitment entity.
// If the Commitment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommitmentMutation) OldStatus(ctx context.Context) (v commitment.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CommitmentMutation) ResetStatus() {
	m.status = nil
}

// SetFromEntityID sets the "from_entity_id" field.
func (m *CommitmentMutation) SetFromEntityID(s string) {
	m.from_entity_id = &s
}

// FromEntityID returns the value of the "from_entity_id" field in the mutation.
func (m *CommitmentMutation) FromEntityID() (r string, exists bool) {
	v := m.from_entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFromEntityID returns the old "from_entity_id" field's value of the Commitment entity.
// If the Commitment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommitmentMutation) OldFromEntityID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromEntityID: %w", err)
	}
	return oldValue.FromEntityID, nil
}

// ClearFromEntityID clears the value of the "from_entity_id" field.
func (m *CommitmentMutation) ClearFromEntityID() {
	m.from_entity_id = nil
	m.clearedFields[commitment.FieldFromEntityID] = struct{}{}
}

// FromEntityIDCleared returns if the "from_entity_id" field was cleared in this mutation.
func (m *CommitmentMutation) FromEntityIDCleared() bool {
	_, ok := m.clearedFields[commitment.FieldFromEntityID]
	return ok
}

// ResetFromEntityID resets all changes to the "from_entity_id" field.
func (m *CommitmentMutation) ResetFromEntityID() {
	m.from_entity_id = nil
	delete(m.clearedFields, commitment.FieldFromEntityID)
}

// SetToEntityID sets the "to_entity_id" field.
func (m *CommitmentMutation) SetToEntityID(s string) {
	m.to_entity_id = &s
}

// ToEntityID returns the value of the "to_entity_id" field in the mutation.
func (m *CommitmentMutation) ToEntityID() (r string, exists bool) {
	v := m.to_entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldToEntityID returns the old "to_entity_id" field's value of the Commitment entity.
// If the Commitment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommitmentMutation) OldToEntityID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToEntityID: %w", err)
	}
	return oldValue.ToEntityID, nil
}

// ClearToEntityID clears the value of the "to_entity_id" field.
func (m *CommitmentMutation) ClearToEntityID() {
	m.to_entity_id = nil
	m.clearedFields[commitment.FieldToEntityID] = struct{}{}
}

// ToEntityIDCleared returns if the "to_entity_id" field was cleared in this mutation.
func (m *CommitmentMutation) ToEntityIDCleared() bool {
	_, ok := m.clearedFields[commitment.FieldToEntityID]
	return ok
}

// ResetToEntityID resets all changes to the "to_entity_id" field.
func (m *CommitmentMutation) ResetToEntityID() {
	m.to_entity_id = nil
	delete(m.clearedFields, commitment.FieldToEntityID)
}

// SetActivityID sets the "activity_id" field.
func (m *CommitmentMutation) SetActivityID(s string) {
	m.activity_id = &s
}

// ActivityID returns the value of the "activity_id" field in the mutation.
func (m *CommitmentMutation) ActivityID() (r string, exists bool) {
	v := m.activity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldActivityID returns the old "activity_id" field's value of the Commitment entity.
// If the Commitment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommitmentMutation) OldActivityID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActivityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActivityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActivityID: %w", err)
	}
	return oldValue.ActivityID, nil
}

// ClearActivityID clears the value of the "activity_id" field.
func (m *CommitmentMutation) ClearActivityID() {
	m.activity_id = nil
	m.clearedFields[commitment.FieldActivityID] = struct{}{}
}

// ActivityIDCleared returns if the "activity_id" field was cleared in this mutation.
func (m *CommitmentMutation) ActivityIDCleared() bool {
	_, ok := m.clearedFields[commitment.FieldActivityID]
	return ok
}

// ResetActivityID resets all changes to the "activity_id" field.
func (m *CommitmentMutation) ResetActivityID() {
	m.activity_id = nil
	delete(m.clearedFields, commitment.FieldActivityID)
}

// SetSourceMessageID sets the "source_message_id" field.
func (m *CommitmentMutation) SetSourceMessageID(s string) {
	m.source_message_id = &s
}

// SourceMessageID returns the value of the "source_message_id" field in the mutation.
func (m *CommitmentMutation) SourceMessageID() (r string, exists bool) {
	v := m.source_message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceMessageID returns the old "source_message_id" field's value of the Commitment entity.
// If the Commitment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommitmentMutation) OldSourceMessageID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceMessageID: %w", err)
	}
	return oldValue.SourceMessageID, nil
}

// ClearSourceMessageID clears the value of the "source_message_id" field.
func (m *CommitmentMutation) ClearSourceMessageID() {
	m.source_message_id = nil
	m.clearedFields[commitment.FieldSourceMessageID] = struct{}{}
}

// SourceMessageIDCleared returns if the "source_message_id" field was cleared in this mutation.
func (m *CommitmentMutation) SourceMessageIDCleared() bool {
	_, ok := m.clearedFields[commitment.FieldSourceMessageID]
	return ok
}

// ResetSourceMessageID resets all changes to the "source_message_id" field.
func (m *CommitmentMutation) ResetSourceMessageID() {
	m.source_message_id = nil
	delete(m.clearedFields, commitment.FieldSourceMessageID)
}

// SetSourceInteractionID sets the "source_interaction_id" field.
func (m *CommitmentMutation) SetSourceInteractionID(s string) {
	m.source_interaction_id = &s
}

// SourceInteractionID returns the value of the "source_interaction_id" field in the mutation.
func (m *CommitmentMutation) SourceInteractionID() (r string, exists bool) {
	v := m.source_interaction_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceInteractionID returns the old "source_interaction_id" field's value of the Commitment entity.
// If the Commitment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommitmentMutation) OldSourceInteractionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceInteractionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceInteractionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceInteractionID: %w", err)
	}
	return oldValue.SourceInteractionID, nil
}

// ClearSourceInteractionID clears the value of the "source_interaction_id" field.
func (m *CommitmentMutation) ClearSourceInteractionID() {
	m.source_interaction_id = nil
	m.clearedFields[commitment.FieldSourceInteractionID] = struct{}{}
}

// SourceInteractionIDCleared returns if the "source_interaction_id" field was cleared in this mutation.
func (m *CommitmentMutation) SourceInteractionIDCleared() bool {
	_, ok := m.clearedFields[commitment.FieldSourceInteractionID]
	return ok
}

// ResetSourceInteractionID resets all changes to the "source_interaction_id" field.
func (m *CommitmentMutation) ResetSourceInteractionID() {
	m.source_interaction_id = nil
	delete(m.clearedFields, commitment.FieldSourceInteractionID)
}

// SetDueDate sets the "due_date" field.
func (m *CommitmentMutation) SetDueDate(t time.Time) {
	m.due_date = &t
}

// DueDate returns the value of the "due_date" field in the mutation.
func (m *CommitmentMutation) DueDate() (r time.Time, exists bool) {
	v := m.due_date
	if v == nil {
		return
	}
	return *v, true
}

// OldDueDate returns the old "due_date" field's value of the Commitment entity.
// If the Commitment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommitmentMutation) OldDueDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDueDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDueDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDueDate: %w", err)
	}
	return oldValue.DueDate, nil
}

// ClearDueDate clears the value of the "due_date" field.
func (m *CommitmentMutation) ClearDueDate() {
	m.due_date = nil
	m.clearedFields[commitment.FieldDueDate] = struct{}{}
}

// DueDateCleared returns if the "due_date" field was cleared in this mutation.
func (m *CommitmentMutation) DueDateCleared() bool {
	_, ok := m.clearedFields[commitment.FieldDueDate]
	return ok
}

// ResetDueDate resets all changes to the "due_date" field.
func (m *CommitmentMutation) ResetDueDate() {
	m.due_date = nil
	delete(m.clearedFields, commitment.FieldDueDate)
}

// SetRecurrenceRule sets the "recurrence_rule" field.
func (m *CommitmentMutation) SetRecurrenceRule(s string) {
	m.recurrence_rule = &s
}

// RecurrenceRule returns the value of the "recurrence_rule" field in the mutation.
func (m *CommitmentMutation) RecurrenceRule() (r string, exists bool) {
	v := m.recurrence_rule
	if v == nil {
		return
	}
	return *v, true
}

// OldRecurrenceRule returns the old "recurrence_rule" field's value of the Commitment entity.
// If the Commitment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommitmentMutation) OldRecurrenceRule(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecurrenceRule is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecurrenceRule requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecurrenceRule: %w", err)
	}
	return oldValue.RecurrenceRule, nil
}

// ClearRecurrenceRule clears the value of the "recurrence_rule" field.
func (m *CommitmentMutation) ClearRecurrenceRule() {
	m.recurrence_rule = nil
	m.clearedFields[commitment.FieldRecurrenceRule] = struct{}{}
}

// RecurrenceRuleCleared returns if the "recurrence_rule" field was cleared in this mutation.
func (m *CommitmentMutation) RecurrenceRuleCleared() bool {
	_, ok := m.clearedFields[commitment.FieldRecurrenceRule]
	return ok
}

// ResetRecurrenceRule resets all changes to the "recurrence_rule" field.
func (m *CommitmentMutation) ResetRecurrenceRule() {
	m.recurrence_rule = nil
	delete(m.clearedFields, commitment.FieldRecurrenceRule)
}

// SetNextReminderAt sets the "next_reminder_at" field.
func (m *CommitmentMutation) SetNextReminderAt(t time.Time) {
	m.next_reminder_at = &t
}

// NextReminderAt returns the value of the "next_reminder_at" field in the mutation.
func (m *CommitmentMutation) NextReminderAt() (r time.Time, exists bool) {
	v := m.next_reminder_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextReminderAt returns the old "next_reminder_at" field's value of the Commitment entity.
// If the Commitment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommitmentMutation) OldNextReminderAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextReminderAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextReminderAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextReminderAt: %w", err)
	}
	return oldValue.NextReminderAt, nil
}

// ClearNextReminderAt clears the value of the "next_reminder_at" field.
func (m *CommitmentMutation) ClearNextReminderAt() {
	m.next_reminder_at = nil
	m.clearedFields[commitment.FieldNextReminderAt] = struct{}{}
}

// NextReminderAtCleared returns if the "next_reminder_at" field was cleared in this mutation.
func (m *CommitmentMutation) NextReminderAtCleared() bool {
	_, ok := m.clearedFields[commitment.FieldNextReminderAt]
	return ok
}

// ResetNextReminderAt resets all changes to the "next_reminder_at" field.
func (m *CommitmentMutation) ResetNextReminderAt() {
	m.next_reminder_at = nil
	delete(m.clearedFields, commitment.FieldNextReminderAt)
}

// SetReminderCount sets the "reminder_count" field.
func (m *CommitmentMutation) SetReminderCount(i int) {
	m.reminder_count = &i
	m.addreminder_count = nil
}

// ReminderCount returns the value of the "reminder_count" field in the mutation.
func (m *CommitmentMutation) ReminderCount() (r int, exists bool) {
	v := m.reminder_count
	if v == nil {
		return
	}
	return *v, true
}

// OldReminderCount returns the old "reminder_count" field's value of the Commitment entity.
// If the Commitment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommitmentMutation) OldReminderCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReminderCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReminderCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReminderCount: %w", err)
	}
	return oldValue.ReminderCount, nil
}

// AddReminderCount adds i to the "reminder_count" field.
func (m *CommitmentMutation) AddReminderCount(i int) {
	if m.addreminder_count != nil {
		*m.addreminder_count += i
	} else {
		m.addreminder_count = &i
	}
}

// AddedReminderCount returns the value that was added to the "reminder_count" field in this mutation.
func (m *CommitmentMutation) AddedReminderCount() (r int, exists bool) {
	v := m.addreminder_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetReminderCount resets all changes to the "reminder_count" field.
func (m *CommitmentMutation) ResetReminderCount() {
	m.reminder_count = nil
	m.addreminder_count = nil
}

// SetConfidence sets the "confidence" field.
func (m *CommitmentMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *CommitmentMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the Commitment entity.
// If the Commitment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommitmentMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *CommitmentMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *CommitmentMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *CommitmentMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetNeedsReview sets the "needs_review" field.
func (m *CommitmentMutation) SetNeedsReview(b bool) {
	m.needs_review = &b
}

// NeedsReview returns the value of the "needs_review" field in the mutation.
func (m *CommitmentMutation) NeedsReview() (r bool, exists bool) {
	v := m.needs_review
	if v == nil {
		return
	}
	return *v, true
}

// OldNeedsReview returns the old "needs_review" field's value of the Commitment entity.
// If the Commitment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommitmentMutation) OldNeedsReview(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeedsReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeedsReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeedsReview: %w", err)
	}
	return oldValue.NeedsReview, nil
}

// ResetNeedsReview resets all changes to the "needs_review" field.
func (m *CommitmentMutation) ResetNeedsReview() {
	m.needs_review = nil
}

// SetConfirmationCount sets the "confirmation_count" field.
func (m *CommitmentMutation) SetConfirmationCount(i int) {
	m.confirmation_count = &i
	m.addconfirmation_count = nil
}

// ConfirmationCount returns the value of the "confirmation_count" field in the mutation.
func (m *CommitmentMutation) ConfirmationCount() (r int, exists bool) {
	v := m.confirmation_count
	if v == nil {
		return
	}
	return *v, true
}

// OldConfirmationCount returns the old "confirmation_count" field's value of the Commitment entity.
// If the Commitment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommitmentMutation) OldConfirmationCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfirmationCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfirmationCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfirmationCount: %w", err)
	}
	return oldValue.ConfirmationCount, nil
}

// AddConfirmationCount adds i to the "confirmation_count" field.
func (m *CommitmentMutation) AddConfirmationCount(i int) {
	if m.addconfirmation_count != nil {
		*m.addconfirmation_count += i
	} else {
		m.addconfirmation_count = &i
	}
}

// AddedConfirmationCount returns the value that was added to the "confirmation_count" field in this mutation.
func (m *CommitmentMutation) AddedConfirmationCount() (r int, exists bool) {
	v := m.addconfirmation_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfirmationCount resets all changes to the "confirmation_count" field.
func (m *CommitmentMutation) ResetConfirmationCount() {
	m.confirmation_count = nil
	m.addconfirmation_count = nil
}

// SetMetadata sets the "metadata" field.
func (m *CommitmentMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *CommitmentMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Commitment entity.
// If the Commitment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommitmentMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *CommitmentMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[commitment.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *CommitmentMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[commitment.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *CommitmentMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, commitment.FieldMetadata)
}

// SetEmbedding sets the "embedding" field.
func (m *CommitmentMutation) SetEmbedding(pg pgvector.Vector) {
	m.embedding = &pg
}

// Embedding returns the value of the "embedding" field in the mutation.
func (m *CommitmentMutation) Embedding() (r pgvector.Vector, exists bool) {
	v := m.embedding
	if v == nil {
		return
	}
	return *v, true
}

// OldEmbedding returns the old "embedding" field's value of the Commitment entity.
// If the Commitment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommitmentMutation) OldEmbedding(ctx context.Context) (v pgvector.Vector, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmbedding is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmbedding requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmbedding: %w", err)
	}
	return oldValue.Embedding, nil
}

// ClearEmbedding clears the value of the "embedding" field.
func (m *CommitmentMutation) ClearEmbedding() {
	m.embedding = nil
	m.clearedFields[commitment.FieldEmbedding] = struct{}{}
}

// EmbeddingCleared returns if the "embedding" field was cleared in this mutation.
func (m *CommitmentMutation) EmbeddingCleared() bool {
	_, ok := m.clearedFields[commitment.FieldEmbedding]
	return ok
}

// ResetEmbedding resets all changes to the "embedding" field.
func (m *CommitmentMutation) ResetEmbedding() {
	m.embedding = nil
	delete(m.clearedFields, commitment.FieldEmbedding)
}

// SetCreatedAt sets the "created_at" field.
func (m *CommitmentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CommitmentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Commitment entity.
// If the Commitment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommitmentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CommitmentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CommitmentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CommitmentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Commitment entity.
// If the Commitment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommitmentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CommitmentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *CommitmentMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *CommitmentMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Commitment entity.
// If the Commitment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommitmentMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *CommitmentMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[commitment.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *CommitmentMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[commitment.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *CommitmentMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, commitment.FieldDeletedAt)
}

// Where appends a list predicates to the CommitmentMutation builder.
func (m *CommitmentMutation) Where(ps ...predicate.Commitment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CommitmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CommitmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Commitment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CommitmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CommitmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Commitment).
func (m *CommitmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CommitmentMutation) Fields() []string {
	fields := make([]string, 0, 21)
	if m._type != nil {
		fields = append(fields, commitment.FieldType)
	}
	if m.title != nil {
		fields = append(fields, commitment.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, commitment.FieldDescription)
	}
	if m.status != nil {
		fields = append(fields, commitment.FieldStatus)
	}
	if m.from_entity_id != nil {
		fields = append(fields, commitment.FieldFromEntityID)
	}
	if m.to_entity_id != nil {
		fields = append(fields, commitment.FieldToEntityID)
	}
	if m.activity_id != nil {
		fields = append(fields, commitment.FieldActivityID)
	}
	if m.source_message_id != nil {
		fields = append(fields, commitment.FieldSourceMessageID)
	}
	if m.source_interaction_id != nil {
		fields = append(fields, commitment.FieldSourceInteractionID)
	}
	if m.due_date != nil {
		fields = append(fields, commitment.FieldDueDate)
	}
	if m.recurrence_rule != nil {
		fields = append(fields, commitment.FieldRecurrenceRule)
	}
	if m.next_reminder_at != nil {
		fields = append(fields, commitment.FieldNextReminderAt)
	}
	if m.reminder_count != nil {
		fields = append(fields, commitment.FieldReminderCount)
	}
	if m.confidence != nil {
		fields = append(fields, commitment.FieldConfidence)
	}
	if m.needs_review != nil {
		fields = append(fields, commitment.FieldNeedsReview)
	}
	if m.confirmation_count != nil {
		fields = append(fields, commitment.FieldConfirmationCount)
	}
	if m.metadata != nil {
		fields = append(fields, commitment.FieldMetadata)
	}
	if m.embedding != nil {
		fields = append(fields, commitment.FieldEmbedding)
	}
	if m.created_at != nil {
		fields = append(fields, commitment.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, commitment.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, commitment.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CommitmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case commitment.FieldType:
		return m.GetType()
	case commitment.FieldTitle:
		return m.Title()
	case commitment.FieldDescription:
		return m.Description()
	case commitment.FieldStatus:
		return m.Status()
	case commitment.FieldFromEntityID:
		return m.FromEntityID()
	case commitment.FieldToEntityID:
		return m.ToEntityID()
	case commitment.FieldActivityID:
		return m.ActivityID()
	case commitment.FieldSourceMessageID:
		return m.SourceMessageID()
	case commitment.FieldSourceInteractionID:
		return m.SourceInteractionID()
	case commitment.FieldDueDate:
		return m.DueDate()
	case commitment.FieldRecurrenceRule:
		return m.RecurrenceRule()
	case commitment.FieldNextReminderAt:
		return m.NextReminderAt()
	case commitment.FieldReminderCount:
		return m.ReminderCount()
	case commitment.FieldConfidence:
		return m.Confidence()
	case commitment.FieldNeedsReview:
		return m.NeedsReview()
	case commitment.FieldConfirmationCount:
		return m.ConfirmationCount()
	case commitment.FieldMetadata:
		return m.Metadata()
	case commitment.FieldEmbedding:
		return m.Embedding()
	case commitment.FieldCreatedAt:
		return m.CreatedAt()
	case commitment.FieldUpdatedAt:
		return m.UpdatedAt()
	case commitment.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CommitmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case commitment.FieldType:
		return m.OldType(ctx)
	case commitment.FieldTitle:
		return m.OldTitle(ctx)
	case commitment.FieldDescription:
		return m.OldDescription(ctx)
	case commitment.FieldStatus:
		return m.OldStatus(ctx)
	case commitment.FieldFromEntityID:
		return m.OldFromEntityID(ctx)
	case commitment.FieldToEntityID:
		return m.OldToEntityID(ctx)
	case commitment.FieldActivityID:
		return m.OldActivityID(ctx)
	case commitment.FieldSourceMessageID:
		return m.OldSourceMessageID(ctx)
	case commitment.FieldSourceInteractionID:
		return m.OldSourceInteractionID(ctx)
	case commitment.FieldDueDate:
		return m.OldDueDate(ctx)
	case commitment.FieldRecurrenceRule:
		return m.OldRecurrenceRule(ctx)
	case commitment.FieldNextReminderAt:
		return m.OldNextReminderAt(ctx)
	case commitment.FieldReminderCount:
		return m.OldReminderCount(ctx)
	case commitment.FieldConfidence:
		return m.OldConfidence(ctx)
	case commitment.FieldNeedsReview:
		return m.OldNeedsReview(ctx)
	case commitment.FieldConfirmationCount:
		return m.OldConfirmationCount(ctx)
	case commitment.FieldMetadata:
		return m.OldMetadata(ctx)
	case commitment.FieldEmbedding:
		return m.OldEmbedding(ctx)
	case commitment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case commitment.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case commitment.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Commitment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CommitmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case commitment.FieldType:
		v, ok := value.(commitment.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case commitment.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case commitment.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case commitment.FieldStatus:
		v, ok := value.(commitment.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case commitment.FieldFromEntityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromEntityID(v)
		return nil
	case commitment.FieldToEntityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToEntityID(v)
		return nil
	case commitment.FieldActivityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActivityID(v)
		return nil
	case commitment.FieldSourceMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceMessageID(v)
		return nil
	case commitment.FieldSourceInteractionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceInteractionID(v)
		return nil
	case commitment.FieldDueDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDueDate(v)
		return nil
	case commitment.FieldRecurrenceRule:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecurrenceRule(v)
		return nil
	case commitment.FieldNextReminderAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextReminderAt(v)
		return nil
	case commitment.FieldReminderCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReminderCount(v)
		return nil
	case commitment.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case commitment.FieldNeedsReview:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeedsReview(v)
		return nil
	case commitment.FieldConfirmationCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfirmationCount(v)
		return nil
	case commitment.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case commitment.FieldEmbedding:
		v, ok := value.(pgvector.Vector)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmbedding(v)
		return nil
	case commitment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case commitment.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case commitment.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Commitment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CommitmentMutation) AddedFields() []string {
	var fields []string
	if m.addreminder_count != nil {
		fields = append(fields, commitment.FieldReminderCount)
	}
	if m.addconfidence != nil {
		fields = append(fields, commitment.FieldConfidence)
	}
	if m.addconfirmation_count != nil {
		fields = append(fields, commitment.FieldConfirmationCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CommitmentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case commitment.FieldReminderCount:
		return m.AddedReminderCount()
	case commitment.FieldConfidence:
		return m.AddedConfidence()
	case commitment.FieldConfirmationCount:
		return m.AddedConfirmationCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CommitmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case commitment.FieldReminderCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReminderCount(v)
		return nil
	case commitment.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case commitment.FieldConfirmationCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfirmationCount(v)
		return nil
	}
	return fmt.Errorf("unknown Commitment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CommitmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(commitment.FieldDescription) {
		fields = append(fields, commitment.FieldDescription)
	}
	if m.FieldCleared(commitment.FieldFromEntityID) {
		fields = append(fields, commitment.FieldFromEntityID)
	}
	if m.FieldCleared(commitment.FieldToEntityID) {
		fields = append(fields, commitment.FieldToEntityID)
	}
	if m.FieldCleared(commitment.FieldActivityID) {
		fields = append(fields, commitment.FieldActivityID)
	}
	if m.FieldCleared(commitment.FieldSourceMessageID) {
		fields = append(fields, commitment.FieldSourceMessageID)
	}
	if m.FieldCleared(commitment.FieldSourceInteractionID) {
		fields = append(fields, commitment.FieldSourceInteractionID)
	}
	if m.FieldCleared(commitment.FieldDueDate) {
		fields = append(fields, commitment.FieldDueDate)
	}
	if m.FieldCleared(commitment.FieldRecurrenceRule) {
		fields = append(fields, commitment.FieldRecurrenceRule)
	}
	if m.FieldCleared(commitment.FieldNextReminderAt) {
		fields = append(fields, commitment.FieldNextReminderAt)
	}
	if m.FieldCleared(commitment.FieldMetadata) {
		fields = append(fields, commitment.FieldMetadata)
	}
	if m.FieldCleared(commitment.FieldEmbedding) {
		fields = append(fields, commitment.FieldEmbedding)
	}
	if m.FieldCleared(commitment.FieldDeletedAt) {
		fields = append(fields, commitment.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CommitmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CommitmentMutation) ClearField(name string) error {
	switch name {
	case commitment.FieldDescription:
		m.ClearDescription()
		return nil
	case commitment.FieldFromEntityID:
		m.ClearFromEntityID()
		return nil
	case commitment.FieldToEntityID:
		m.ClearToEntityID()
		return nil
	case commitment.FieldActivityID:
		m.ClearActivityID()
		return nil
	case commitment.FieldSourceMessageID:
		m.ClearSourceMessageID()
		return nil
	case commitment.FieldSourceInteractionID:
		m.ClearSourceInteractionID()
		return nil
	case commitment.FieldDueDate:
		m.ClearDueDate()
		return nil
	case commitment.FieldRecurrenceRule:
		m.ClearRecurrenceRule()
		return nil
	case commitment.FieldNextReminderAt:
		m.ClearNextReminderAt()
		return nil
	case commitment.FieldMetadata:
		m.ClearMetadata()
		return nil
	case commitment.FieldEmbedding:
		m.ClearEmbedding()
		return nil
	case commitment.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Commitment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CommitmentMutation) ResetField(name string) error {
	switch name {
	case commitment.FieldType:
		m.ResetType()
		return nil
	case commitment.FieldTitle:
		m.ResetTitle()
		return nil
	case commitment.FieldDescription:
		m.ResetDescription()
		return nil
	case commitment.FieldStatus:
		m.ResetStatus()
		return nil
	case commitment.FieldFromEntityID:
		m.ResetFromEntityID()
		return nil
	case commitment.FieldToEntityID:
		m.ResetToEntityID()
		return nil
	case commitment.FieldActivityID:
		m.ResetActivityID()
		return nil
	case commitment.FieldSourceMessageID:
		m.ResetSourceMessageID()
		return nil
	case commitment.FieldSourceInteractionID:
		m.ResetSourceInteractionID()
		return nil
	case commitment.FieldDueDate:
		m.ResetDueDate()
		return nil
	case commitment.FieldRecurrenceRule:
		m.ResetRecurrenceRule()
		return nil
	case commitment.FieldNextReminderAt:
		m.ResetNextReminderAt()
		return nil
	case commitment.FieldReminderCount:
		m.ResetReminderCount()
		return nil
	case commitment.FieldConfidence:
		m.ResetConfidence()
		return nil
	case commitment.FieldNeedsReview:
		m.ResetNeedsReview()
		return nil
	case commitment.FieldConfirmationCount:
		m.ResetConfirmationCount()
		return nil
	case commitment.FieldMetadata:
		m.ResetMetadata()
		return nil
	case commitment.FieldEmbedding:
		m.ResetEmbedding()
		return nil
	case commitment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case commitment.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case commitment.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Commitment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CommitmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CommitmentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CommitmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CommitmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CommitmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CommitmentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CommitmentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Commitment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CommitmentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Commitment edge %s", name)
}

// DataQualityReportMutation represents an operation that mutates the DataQualityReport nodes in the graph.
type DataQualityReportMutation struct {
	config
	op                Op
	typ               string
	id                *string
	triggered_by      *dataqualityreport.TriggeredBy
	metrics           *map[string]interface{}
	issues            *[]map[string]interface{}
	appendissues      []map[string]interface{}
	resolutions       *[]map[string]interface{}
	appendresolutions []map[string]interface{}
	created_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*DataQualityReport, error)
	predicates        []predicate.DataQualityReport
}

var _ ent.Mutation = (*DataQualityReportMutation)(nil)

// dataqualityreportOption allows management of the mutation configuration using functional options.
type dataqualityreportOption func(*DataQualityReportMutation)

// newDataQualityReportMutation creates new mutation for the DataQualityReport entity.
func newDataQualityReportMutation(c config, op Op, opts ...dataqualityreportOption) *DataQualityReportMutation {
	m := &DataQualityReportMutation{
		config:        c,
		op:            op,
		typ:           TypeDataQualityReport,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDataQualityReportID sets the ID field of the mutation.
func withDataQualityReportID(id string) dataqualityreportOption {
	return func(m *DataQualityReportMutation) {
		var (
			err   error
			once  sync.Once
			value *DataQualityReport
		)
		m.oldValue = func(ctx context.Context) (*DataQualityReport, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DataQualityReport.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDataQualityReport sets the old DataQualityReport of the mutation.
func withDataQualityReport(node *DataQualityReport) dataqualityreportOption {
	return func(m *DataQualityReportMutation) {
		m.oldValue = func(context.Context) (*DataQualityReport, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DataQualityReportMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DataQualityReportMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DataQualityReport entities.
func (m *DataQualityReportMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DataQualityReportMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DataQualityReportMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DataQualityReport.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTriggeredBy sets the "triggered_by" field.
func (m *DataQualityReportMutation) SetTriggeredBy(db dataqualityreport.TriggeredBy) {
	m.triggered_by = &db
}

// TriggeredBy returns the value of the "triggered_by" field in the mutation.
func (m *DataQualityReportMutation) TriggeredBy() (r dataqualityreport.TriggeredBy, exists bool) {
	v := m.triggered_by
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggeredBy returns the old "triggered_by" field's value of the DataQualityReport entity.
// If the DataQualityReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataQualityReportMutation) OldTriggeredBy(ctx context.Context) (v dataqualityreport.TriggeredBy, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggeredBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggeredBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggeredBy: %w", err)
	}
	return oldValue.TriggeredBy, nil
}

// ResetTriggeredBy resets all changes to the "triggered_by" field.
func (m *DataQualityReportMutation) ResetTriggeredBy() {
	m.triggered_by = nil
}

// SetMetrics sets the "metrics" field.
func (m *DataQualityReportMutation) SetMetrics(value map[string]interface{}) {
	m.metrics = &value
}

// Metrics returns the value of the "metrics" field in the mutation.
func (m *DataQualityReportMutation) Metrics() (r map[string]interface{}, exists bool) {
	v := m.metrics
	if v == nil {
		return
	}
	return *v, true
}

// OldMetrics returns the old "metrics" field's value of the DataQualityReport entity.
// If the DataQualityReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataQualityReportMutation) OldMetrics(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetrics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetrics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetrics: %w", err)
	}
	return oldValue.Metrics, nil
}

// ClearMetrics clears the value of the "metrics" field.
func (m *DataQualityReportMutation) ClearMetrics() {
	m.metrics = nil
	m.clearedFields[dataqualityreport.FieldMetrics] = struct{}{}
}

// MetricsCleared returns if the "metrics" field was cleared in this mutation.
func (m *DataQualityReportMutation) MetricsCleared() bool {
	_, ok := m.clearedFields[dataqualityreport.FieldMetrics]
	return ok
}

// ResetMetrics resets all changes to the "metrics" field.
func (m *DataQualityReportMutation) ResetMetrics() {
	m.metrics = nil
	delete(m.clearedFields, dataqualityreport.FieldMetrics)
}

// SetIssues sets the "issues" field.
func (m *DataQualityReportMutation) SetIssues(value []map[string]interface{}) {
	m.issues = &value
	m.appendissues = nil
}

// Issues returns the value of the "issues" field in the mutation.
func (m *DataQualityReportMutation) Issues() (r []map[string]interface{}, exists bool) {
	v := m.issues
	if v == nil {
		return
	}
	return *v, true
}

// OldIssues returns the old "issues" field's value of the DataQualityReport entity.
// If the DataQualityReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataQualityReportMutation) OldIssues(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIssues is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIssues requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIssues: %w", err)
	}
	return oldValue.Issues, nil
}

// AppendIssues adds value to the "issues" field.
func (m *DataQualityReportMutation) AppendIssues(value []map[string]interface{}) {
	m.appendissues = append(m.appendissues, value...)
}

// AppendedIssues returns the list of values that were appended to the "issues" field in this mutation.
func (m *DataQualityReportMutation) AppendedIssues() ([]map[string]interface{}, bool) {
	if len(m.appendissues) == 0 {
		return nil, false
	}
	return m.appendissues, true
}

// ClearIssues clears the value of the "issues" field.
func (m *DataQualityReportMutation) ClearIssues() {
	m.issues = nil
	m.appendissues = nil
	m.clearedFields[dataqualityreport.FieldIssues] = struct{}{}
}

// IssuesCleared returns if the "issues" field was cleared in this mutation.
func (m *DataQualityReportMutation) IssuesCleared() bool {
	_, ok := m.clearedFields[dataqualityreport.FieldIssues]
	return ok
}

// ResetIssues resets all changes to the "issues" field.
func (m *DataQualityReportMutation) ResetIssues() {
	m.issues = nil
	m.appendissues = nil
	delete(m.clearedFields, dataqualityreport.FieldIssues)
}

// SetResolutions sets the "resolutions" field.
func (m *DataQualityReportMutation) SetResolutions(value []map[string]interface{}) {
	m.resolutions = &value
	m.appendresolutions = nil
}

// Resolutions returns the value of the "resolutions" field in the mutation.
func (m *DataQualityReportMutation) Resolutions() (r []map[string]interface{}, exists bool) {
	v := m.resolutions
	if v == nil {
		return
	}
	return *v, true
}

// OldResolutions returns the old "resolutions" field's value of the DataQualityReport entity.
// If the DataQualityReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataQualityReportMutation) OldResolutions(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolutions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolutions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolutions: %w", err)
	}
	return oldValue.Resolutions, nil
}

// AppendResolutions adds value to the "resolutions" field.
func (m *DataQualityReportMutation) AppendResolutions(value []map[string]interface{}) {
	m.appendresolutions = append(m.appendresolutions, value...)
}

// AppendedResolutions returns the list of values that were appended to the "resolutions" field in this mutation.
func (m *DataQualityReportMutation) AppendedResolutions() ([]map[string]interface{}, bool) {
	if len(m.appendresolutions) == 0 {
		return nil, false
	}
	return m.appendresolutions, true
}

// ClearResolutions clears the value of the "resolutions" field.
func (m *DataQualityReportMutation) ClearResolutions() {
	m.resolutions = nil
	m.appendresolutions = nil
	m.clearedFields[dataqualityreport.FieldResolutions] = struct{}{}
}

// ResolutionsCleared returns if the "resolutions" field was cleared in this mutation.
func (m *DataQualityReportMutation) ResolutionsCleared() bool {
	_, ok := m.clearedFields[dataqualityreport.FieldResolutions]
	return ok
}

// ResetResolutions resets all changes to the "resolutions" field.
func (m *DataQualityReportMutation) ResetResolutions() {
	m.resolutions = nil
	m.appendresolutions = nil
	delete(m.clearedFields, dataqualityreport.FieldResolutions)
}

// SetCreatedAt sets the "created_at" field.
func (m *DataQualityReportMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DataQualityReportMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DataQualityReport entity.
// If the DataQualityReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataQualityReportMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DataQualityReportMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the DataQualityReportMutation builder.
func (m *DataQualityReportMutation) Where(ps ...predicate.DataQualityReport) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DataQualityReportMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DataQualityReportMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DataQualityReport, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DataQualityReportMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DataQualityReportMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DataQualityReport).
func (m *DataQualityReportMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DataQualityReportMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.triggered_by != nil {
		fields = append(fields, dataqualityreport.FieldTriggeredBy)
	}
	if m.metrics != nil {
		fields = append(fields, dataqualityreport.FieldMetrics)
	}
	if m.issues != nil {
		fields = append(fields, dataqualityreport.FieldIssues)
	}
	if m.resolutions != nil {
		fields = append(fields, dataqualityreport.FieldResolutions)
	}
	if m.created_at != nil {
		fields = append(fields, dataqualityreport.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DataQualityReportMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case dataqualityreport.FieldTriggeredBy:
		return m.TriggeredBy()
	case dataqualityreport.FieldMetrics:
		return m.Metrics()
	case dataqualityreport.FieldIssues:
		return m.Issues()
	case dataqualityreport.FieldResolutions:
		return m.Resolutions()
	case dataqualityreport.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DataQualityReportMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case dataqualityreport.FieldTriggeredBy:
		return m.OldTriggeredBy(ctx)
	case dataqualityreport.FieldMetrics:
		return m.OldMetrics(ctx)
	case dataqualityreport.FieldIssues:
		return m.OldIssues(ctx)
	case dataqualityreport.FieldResolutions:
		return m.OldResolutions(ctx)
	case dataqualityreport.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DataQualityReport field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DataQualityReportMutation) SetField(name string, value ent.Value) error {
	switch name {
	case dataqualityreport.FieldTriggeredBy:
		v, ok := value.(dataqualityreport.TriggeredBy)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggeredBy(v)
		return nil
	case dataqualityreport.FieldMetrics:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetrics(v)
		return nil
	case dataqualityreport.FieldIssues:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIssues(v)
		return nil
	case dataqualityreport.FieldResolutions:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolutions(v)
		return nil
	case dataqualityreport.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DataQualityReport field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DataQualityReportMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DataQualityReportMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DataQualityReportMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown DataQualityReport numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DataQualityReportMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(dataqualityreport.FieldMetrics) {
		fields = append(fields, dataqualityreport.FieldMetrics)
	}
	if m.FieldCleared(dataqualityreport.FieldIssues) {
		fields = append(fields, dataqualityreport.FieldIssues)
	}
	if m.FieldCleared(dataqualityreport.FieldResolutions) {
		fields = append(fields, dataqualityreport.FieldResolutions)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DataQualityReportMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DataQualityReportMutation) ClearField(name string) error {
	switch name {
	case dataqualityreport.FieldMetrics:
		m.ClearMetrics()
		return nil
	case dataqualityreport.FieldIssues:
		m.ClearIssues()
		return nil
	case dataqualityreport.FieldResolutions:
		m.ClearResolutions()
		return nil
	}
	return fmt.Errorf("unknown DataQualityReport nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DataQualityReportMutation) ResetField(name string) error {
	switch name {
	case dataqualityreport.FieldTriggeredBy:
		m.ResetTriggeredBy()
		return nil
	case dataqualityreport.FieldMetrics:
		m.ResetMetrics()
		return nil
	case dataqualityreport.FieldIssues:
		m.ResetIssues()
		return nil
	case dataqualityreport.FieldResolutions:
		m.ResetResolutions()
		return nil
	case dataqualityreport.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown DataQualityReport field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DataQualityReportMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DataQualityReportMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DataQualityReportMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DataQualityReportMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DataQualityReportMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DataQualityReportMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DataQualityReportMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DataQualityReport unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DataQualityReportMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DataQualityReport edge %s", name)
}

// EmbeddingJobMutation represents an operation that mutates the EmbeddingJob nodes in the graph.
type EmbeddingJobMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	target_kind         *embeddingjob.TargetKind
	target_id           *string
	status              *embeddingjob.Status
	attempts            *int
	addattempts         *int
	next_attempt_at     *time.Time
	last_error          *string
	pod_id              *string
	last_interaction_at *time.Time
	created_at          *time.Time
	completed_at        *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*EmbeddingJob, error)
	predicates          []predicate.EmbeddingJob
}

var _ ent.Mutation = (*EmbeddingJobMutation)(nil)

// embeddingjobOption allows management of the mutation configuration using functional options.
type embeddingjobOption func(*EmbeddingJobMutation)

// newEmbeddingJobMutation creates new mutation for the EmbeddingJob entity.
func newEmbeddingJobMutation(c config, op Op, opts ...embeddingjobOption) *EmbeddingJobMutation {
	m := &EmbeddingJobMutation{
		config:        c,
		op:            op,
		typ:           TypeEmbeddingJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEmbeddingJobID sets the ID field of the mutation.
func withEmbeddingJobID(id string) embeddingjobOption {
	return func(m *EmbeddingJobMutation) {
		var (
			err   error
			once  sync.Once
			value *EmbeddingJob
		)
		m.oldValue = func(ctx context.Context) (*EmbeddingJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EmbeddingJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEmbeddingJob sets the old EmbeddingJob of the mutation.
func withEmbeddingJob(node *EmbeddingJob) embeddingjobOption {
	return func(m *EmbeddingJobMutation) {
		m.oldValue = func(context.Context) (*EmbeddingJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EmbeddingJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EmbeddingJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EmbeddingJob entities.
func (m *EmbeddingJobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EmbeddingJobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EmbeddingJobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EmbeddingJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTargetKind sets the "target_kind" field.
func (m *EmbeddingJobMutation) SetTargetKind(ek embeddingjob.TargetKind) {
	m.target_kind = &ek
}

// TargetKind returns the value of the "target_kind" field in the mutation.
func (m *EmbeddingJobMutation) TargetKind() (r embeddingjob.TargetKind, exists bool) {
	v := m.target_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetKind returns the old "target_kind" field's value of the EmbeddingJob entity.
// If the EmbeddingJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmbeddingJobMutation) OldTargetKind(ctx context.Context) (v embeddingjob.TargetKind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetKind: %w", err)
	}
	return oldValue.TargetKind, nil
}

// ResetTargetKind resets all changes to the "target_kind" field.
func (m *EmbeddingJobMutation) ResetTargetKind() {
	m.target_kind = nil
}

// SetTargetID sets the "target_id" field.
func (m *EmbeddingJobMutation) SetTargetID(s string) {
	m.target_id = &s
}

// TargetID returns the value of the "target_id" field in the mutation.
func (m *EmbeddingJobMutation) TargetID() (r string, exists bool) {
	v := m.target_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetID returns the old "target_id" field's value of the EmbeddingJob entity.
// If the EmbeddingJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmbeddingJobMutation) OldTargetID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetID: %w", err)
	}
	return oldValue.TargetID, nil
}

// ResetTargetID resets all changes to the "target_id" field.
func (m *EmbeddingJobMutation) ResetTargetID() {
	m.target_id = nil
}

// SetStatus sets the "status" field.
func (m *EmbeddingJobMutation) SetStatus(e embeddingjob.Status) {
	m.status = &e
}

// Status returns the value of the "status" field in the mutation.
func (m *EmbeddingJobMutation) Status() (r embeddingjob.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the EmbeddingJob entity.
// If the EmbeddingJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmbeddingJobMutation) OldStatus(ctx context.Context) (v embeddingjob.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *EmbeddingJobMutation) ResetStatus() {
	m.status = nil
}

// SetAttempts sets the "attempts" field.
func (m *EmbeddingJobMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *EmbeddingJobMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the EmbeddingJob entity.
// If the EmbeddingJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmbeddingJobMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *EmbeddingJobMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *EmbeddingJobMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *EmbeddingJobMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (m *EmbeddingJobMutation) SetNextAttemptAt(t time.Time) {
	m.next_attempt_at = &t
}

// NextAttemptAt returns the value of the "next_attempt_at" field in the mutation.
func (m *EmbeddingJobMutation) NextAttemptAt() (r time.Time, exists bool) {
	v := m.next_attempt_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextAttemptAt returns the old "next_attempt_at" field's value of the EmbeddingJob entity.
// If the EmbeddingJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmbeddingJobMutation) OldNextAttemptAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextAttemptAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextAttemptAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextAttemptAt: %w", err)
	}
	return oldValue.NextAttemptAt, nil
}

// ResetNextAttemptAt resets all changes to the "next_attempt_at" field.
func (m *EmbeddingJobMutation) ResetNextAttemptAt() {
	m.next_attempt_at = nil
}

// SetLastError sets the "last_error" field.
func (m *EmbeddingJobMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *EmbeddingJobMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the EmbeddingJob entity.
// If the EmbeddingJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmbeddingJobMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *EmbeddingJobMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[embeddingjob.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *EmbeddingJobMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[embeddingjob.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *EmbeddingJobMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, embeddingjob.FieldLastError)
}

// SetPodID sets the "pod_id" field.
func (m *EmbeddingJobMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *EmbeddingJobMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the EmbeddingJob entity.
// If the EmbeddingJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmbeddingJobMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *EmbeddingJobMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[embeddingjob.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *EmbeddingJobMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[embeddingjob.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *EmbeddingJobMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, embeddingjob.FieldPodID)
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (m *EmbeddingJobMutation) SetLastInteractionAt(t time.Time) {
	m.last_interaction_at = &t
}

// LastInteractionAt returns the value of the "last_interaction_at" field in the mutation.
func (m *EmbeddingJobMutation) LastInteractionAt() (r time.Time, exists bool) {
	v := m.last_interaction_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastInteractionAt returns the old "last_interaction_at" field's value of the EmbeddingJob entity.
// If the EmbeddingJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmbeddingJobMutation) OldLastInteractionAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastInteractionAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastInteractionAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastInteractionAt: %w", err)
	}
	return oldValue.LastInteractionAt, nil
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (m *EmbeddingJobMutation) ClearLastInteractionAt() {
	m.last_interaction_at = nil
	m.clearedFields[embeddingjob.FieldLastInteractionAt] = struct{}{}
}

// LastInteractionAtCleared returns if the "last_interaction_at" field was cleared in this mutation.
func (m *EmbeddingJobMutation) LastInteractionAtCleared() bool {
	_, ok := m.clearedFields[embeddingjob.FieldLastInteractionAt]
	return ok
}

// ResetLastInteractionAt resets all changes to the "last_interaction_at" field.
func (m *EmbeddingJobMutation) ResetLastInteractionAt() {
	m.last_interaction_at = nil
	delete(m.clearedFields, embeddingjob.FieldLastInteractionAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *EmbeddingJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EmbeddingJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EmbeddingJob entity.
// If the EmbeddingJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmbeddingJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EmbeddingJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *EmbeddingJobMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *EmbeddingJobMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the EmbeddingJob entity.
// If the EmbeddingJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmbeddingJobMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *EmbeddingJobMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[embeddingjob.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *EmbeddingJobMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[embeddingjob.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *EmbeddingJobMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, embeddingjob.FieldCompletedAt)
}

// Where appends a list predicates to the EmbeddingJobMutation builder.
func (m *EmbeddingJobMutation) Where(ps ...predicate.EmbeddingJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EmbeddingJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EmbeddingJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EmbeddingJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EmbeddingJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EmbeddingJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EmbeddingJob).
func (m *EmbeddingJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EmbeddingJobMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.target_kind != nil {
		fields = append(fields, embeddingjob.FieldTargetKind)
	}
	if m.target_id != nil {
		fields = append(fields, embeddingjob.FieldTargetID)
	}
	if m.status != nil {
		fields = append(fields, embeddingjob.FieldStatus)
	}
	if m.attempts != nil {
		fields = append(fields, embeddingjob.FieldAttempts)
	}
	if m.next_attempt_at != nil {
		fields = append(fields, embeddingjob.FieldNextAttemptAt)
	}
	if m.last_error != nil {
		fields = append(fields, embeddingjob.FieldLastError)
	}
	if m.pod_id != nil {
		fields = append(fields, embeddingjob.FieldPodID)
	}
	if m.last_interaction_at != nil {
		fields = append(fields, embeddingjob.FieldLastInteractionAt)
	}
	if m.created_at != nil {
		fields = append(fields, embeddingjob.FieldCreatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, embeddingjob.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EmbeddingJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case embeddingjob.FieldTargetKind:
		return m.TargetKind()
	case embeddingjob.FieldTargetID:
		return m.TargetID()
	case embeddingjob.FieldStatus:
		return m.Status()
	case embeddingjob.FieldAttempts:
		return m.Attempts()
	case embeddingjob.FieldNextAttemptAt:
		return m.NextAttemptAt()
	case embeddingjob.FieldLastError:
		return m.LastError()
	case embeddingjob.FieldPodID:
		return m.PodID()
	case embeddingjob.FieldLastInteractionAt:
		return m.LastInteractionAt()
	case embeddingjob.FieldCreatedAt:
		return m.CreatedAt()
	case embeddingjob.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EmbeddingJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case embeddingjob.FieldTargetKind:
		return m.OldTargetKind(ctx)
	case embeddingjob.FieldTargetID:
		return m.OldTargetID(ctx)
	case embeddingjob.FieldStatus:
		return m.OldStatus(ctx)
	case embeddingjob.FieldAttempts:
		return m.OldAttempts(ctx)
	case embeddingjob.FieldNextAttemptAt:
		return m.OldNextAttemptAt(ctx)
	case embeddingjob.FieldLastError:
		return m.OldLastError(ctx)
	case embeddingjob.FieldPodID:
		return m.OldPodID(ctx)
	case embeddingjob.FieldLastInteractionAt:
		return m.OldLastInteractionAt(ctx)
	case embeddingjob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case embeddingjob.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EmbeddingJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EmbeddingJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case embeddingjob.FieldTargetKind:
		v, ok := value.(embeddingjob.TargetKind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetKind(v)
		return nil
	case embeddingjob.FieldTargetID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetID(v)
		return nil
	case embeddingjob.FieldStatus:
		v, ok := value.(embeddingjob.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case embeddingjob.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case embeddingjob.FieldNextAttemptAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextAttemptAt(v)
		return nil
	case embeddingjob.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case embeddingjob.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case embeddingjob.FieldLastInteractionAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastInteractionAt(v)
		return nil
	case embeddingjob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case embeddingjob.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EmbeddingJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EmbeddingJobMutation) AddedFields() []string {
	var fields []string
	if m.addattempts != nil {
		fields = append(fields, embeddingjob.FieldAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EmbeddingJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case embeddingjob.FieldAttempts:
		return m.AddedAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EmbeddingJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case embeddingjob.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown EmbeddingJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EmbeddingJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(embeddingjob.FieldLastError) {
		fields = append(fields, embeddingjob.FieldLastError)
	}
	if m.FieldCleared(embeddingjob.FieldPodID) {
		fields = append(fields, embeddingjob.FieldPodID)
	}
	if m.FieldCleared(embeddingjob.FieldLastInteractionAt) {
		fields = append(fields, embeddingjob.FieldLastInteractionAt)
	}
	if m.FieldCleared(embeddingjob.FieldCompletedAt) {
		fields = append(fields, embeddingjob.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EmbeddingJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EmbeddingJobMutation) ClearField(name string) error {
	switch name {
	case embeddingjob.FieldLastError:
		m.ClearLastError()
		return nil
	case embeddingjob.FieldPodID:
		m.ClearPodID()
		return nil
	case embeddingjob.FieldLastInteractionAt:
		m.ClearLastInteractionAt()
		return nil
	case embeddingjob.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown EmbeddingJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EmbeddingJobMutation) ResetField(name string) error {
	switch name {
	case embeddingjob.FieldTargetKind:
		m.ResetTargetKind()
		return nil
	case embeddingjob.FieldTargetID:
		m.ResetTargetID()
		return nil
	case embeddingjob.FieldStatus:
		m.ResetStatus()
		return nil
	case embeddingjob.FieldAttempts:
		m.ResetAttempts()
		return nil
	case embeddingjob.FieldNextAttemptAt:
		m.ResetNextAttemptAt()
		return nil
	case embeddingjob.FieldLastError:
		m.ResetLastError()
		return nil
	case embeddingjob.FieldPodID:
		m.ResetPodID()
		return nil
	case embeddingjob.FieldLastInteractionAt:
		m.ResetLastInteractionAt()
		return nil
	case embeddingjob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case embeddingjob.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown EmbeddingJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EmbeddingJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EmbeddingJobMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EmbeddingJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EmbeddingJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EmbeddingJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EmbeddingJobMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EmbeddingJobMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown EmbeddingJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EmbeddingJobMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown EmbeddingJob edge %s", name)
}

// EntityMutation represents an operation that mutates the Entity nodes in the graph.
type EntityMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	_type               *entity.Type
	name                *string
	notes               *string
	is_owner            *bool
	is_bot              *bool
	creation_source     *entity.CreationSource
	created_at          *time.Time
	updated_at          *time.Time
	deleted_at          *time.Time
	clearedFields       map[string]struct{}
	identifiers         map[string]struct{}
	removedidentifiers  map[string]struct{}
	clearedidentifiers  bool
	facts               map[string]struct{}
	removedfacts        map[string]struct{}
	clearedfacts        bool
	organization        *string
	clearedorganization bool
	members             map[string]struct{}
	removedmembers      map[string]struct{}
	clearedmembers      bool
	done                bool
	oldValue            func(context.Context) (*Entity, error)
	predicates          []predicate.Entity
}

var _ ent.Mutation = (*EntityMutation)(nil)

// entityOption allows management of the mutation configuration using functional options.
type entityOption func(*EntityMutation)

// newEntityMutation creates new mutation for the Entity entity.
func newEntityMutation(c config, op Op, opts ...entityOption) *EntityMutation {
	m := &EntityMutation{
		config:        c,
		op:            op,
		typ:           TypeEntity,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEntityID sets the ID field of the mutation.
func withEntityID(id string) entityOption {
	return func(m *EntityMutation) {
		var (
			err   error
			once  sync.Once
			value *Entity
		)
		m.oldValue = func(ctx context.Context) (*Entity, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Entity.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEntity sets the old Entity of the mutation.
func withEntity(node *Entity) entityOption {
	return func(m *EntityMutation) {
		m.oldValue = func(context.Context) (*Entity, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EntityMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EntityMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Entity entities.
func (m *EntityMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EntityMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EntityMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Entity.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetType sets the "type" field.
func (m *EntityMutation) SetType(e entity.Type) {
	m._type = &e
}

// GetType returns the value of the "type" field in the mutation.
func (m *EntityMutation) GetType() (r entity.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldType(ctx context.Context) (v entity.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *EntityMutation) ResetType() {
	m._type = nil
}

// SetName sets the "name" field.
func (m *EntityMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *EntityMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *EntityMutation) ResetName() {
	m.name = nil
}

// SetOrganizationID sets the "organization_id" field.
func (m *EntityMutation) SetOrganizationID(s string) {
	m.organization = &s
}

// OrganizationID returns the value of the "organization_id" field in the mutation.
func (m *EntityMutation) OrganizationID() (r string, exists bool) {
	v := m.organization
	if v == nil {
		return
	}
	return *v, true
}

// OldOrganizationID returns the old "organization_id" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldOrganizationID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrganizationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrganizationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrganizationID: %w", err)
	}
	return oldValue.OrganizationID, nil
}

// ClearOrganizationID clears the value of the "organization_id" field.
func (m *EntityMutation) ClearOrganizationID() {
	m.organization = nil
	m.clearedFields[entity.FieldOrganizationID] = struct{}{}
}

// OrganizationIDCleared returns if the "organization_id" field was cleared in this mutation.
func (m *EntityMutation) OrganizationIDCleared() bool {
	_, ok := m.clearedFields[entity.FieldOrganizationID]
	return ok
}

// ResetOrganizationID resets all changes to the "organization_id" field.
func (m *EntityMutation) ResetOrganizationID() {
	m.organization = nil
	delete(m.clearedFields, entity.FieldOrganizationID)
}

// SetNotes sets the "notes" field.
func (m *EntityMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *EntityMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *EntityMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[entity.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *EntityMutation) NotesCleared() bool {
	_, ok := m.clearedFields[entity.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *EntityMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, entity.FieldNotes)
}

// SetIsOwner sets the "is_owner" field.
func (m *EntityMutation) SetIsOwner(b bool) {
	m.is_owner = &b
}

// IsOwner returns the value of the "is_owner" field in the mutation.
func (m *EntityMutation) IsOwner() (r bool, exists bool) {
	v := m.is_owner
	if v == nil {
		return
	}
	return *v, true
}

// OldIsOwner returns the old "is_owner" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldIsOwner(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsOwner is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsOwner requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsOwner: %w", err)
	}
	return oldValue.IsOwner, nil
}

// ResetIsOwner resets all changes to the "is_owner" field.
func (m *EntityMutation) ResetIsOwner() {
	m.is_owner = nil
}

// SetIsBot sets the "is_bot" field.
func (m *EntityMutation) SetIsBot(b bool) {
	m.is_bot = &b
}

// IsBot returns the value of the "is_bot" field in the mutation.
func (m *EntityMutation) IsBot() (r bool, exists bool) {
	v := m.is_bot
	if v == nil {
		return
	}
	return *v, true
}

// OldIsBot returns the old "is_bot" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldIsBot(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsBot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsBot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsBot: %w", err)
	}
	return oldValue.IsBot, nil
}

// ResetIsBot resets all changes to the "is_bot" field.
func (m *EntityMutation) ResetIsBot() {
	m.is_bot = nil
}

// SetCreationSource sets the "creation_source" field.
func (m *EntityMutation) SetCreationSource(es entity.CreationSource) {
	m.creation_source = &es
}

// CreationSource returns the value of the "creation_source" field in the mutation.
func (m *EntityMutation) CreationSource() (r entity.CreationSource, exists bool) {
	v := m.creation_source
	if v == nil {
		return
	}
	return *v, true
}

// OldCreationSource returns the old "creation_source" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldCreationSource(ctx context.Context) (v entity.CreationSource, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreationSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreationSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreationSource: %w", err)
	}
	return oldValue.CreationSource, nil
}

// ResetCreationSource resets all changes to the "creation_source" field.
func (m *EntityMutation) ResetCreationSource() {
	m.creation_source = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EntityMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EntityMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EntityMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *EntityMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *EntityMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *EntityMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *EntityMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *EntityMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *EntityMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[entity.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *EntityMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[entity.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *EntityMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, entity.FieldDeletedAt)
}

// AddIdentifierIDs adds the "identifiers" edge to the EntityIdentifier entity by ids.
func (m *EntityMutation) AddIdentifierIDs(ids ...string) {
	if m.identifiers == nil {
		m.identifiers = make(map[string]struct{})
	}
	for i := range ids {
		m.identifiers[ids[i]] = struct{}{}
	}
}

// ClearIdentifiers clears the "identifiers" edge to the EntityIdentifier entity.
func (m *EntityMutation) ClearIdentifiers() {
	m.clearedidentifiers = true
}

// IdentifiersCleared reports if the "identifiers" edge to the EntityIdentifier entity was cleared.
func (m *EntityMutation) IdentifiersCleared() bool {
	return m.clearedidentifiers
}

// RemoveIdentifierIDs removes the "identifiers" edge to the EntityIdentifier entity by IDs.
func (m *EntityMutation) RemoveIdentifierIDs(ids ...string) {
	if m.removedidentifiers == nil {
		m.removedidentifiers = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.identifiers, ids[i])
		m.removedidentifiers[ids[i]] = struct{}{}
	}
}

// RemovedIdentifiers returns the removed IDs of the "identifiers" edge to the EntityIdentifier entity.
func (m *EntityMutation) RemovedIdentifiersIDs() (ids []string) {
	for id := range m.removedidentifiers {
		ids = append(ids, id)
	}
	return
}

// IdentifiersIDs returns the "identifiers" edge IDs in the mutation.
func (m *EntityMutation) IdentifiersIDs() (ids []string) {
	for id := range m.identifiers {
		ids = append(ids, id)
	}
	return
}

// ResetIdentifiers resets all changes to the "identifiers" edge.
func (m *EntityMutation) ResetIdentifiers() {
	m.identifiers = nil
	m.clearedidentifiers = false
	m.removedidentifiers = nil
}

// AddFactIDs adds the "facts" edge to the EntityFact entity by ids.
func (m *EntityMutation) AddFactIDs(ids ...string) {
	if m.facts == nil {
		m.facts = make(map[string]struct{})
	}
	for i := range ids {
		m.facts[ids[i]] = struct{}{}
	}
}

// ClearFacts clears the "facts" edge to the EntityFact entity.
func (m *EntityMutation) ClearFacts() {
	m.clearedfacts = true
}

// FactsCleared reports if the "facts" edge to the EntityFact entity was cleared.
func (m *EntityMutation) FactsCleared() bool {
	return m.clearedfacts
}

// RemoveFactIDs removes the "facts" edge to the EntityFact entity by IDs.
func (m *EntityMutation) RemoveFactIDs(ids ...string) {
	if m.removedfacts == nil {
		m.removedfacts = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.facts, ids[i])
		m.removedfacts[ids[i]] = struct{}{}
	}
}

// RemovedFacts returns the removed IDs of the "facts" edge to the EntityFact entity.
func (m *EntityMutation) RemovedFactsIDs() (ids []string) {
	for id := range m.removedfacts {
		ids = append(ids, id)
	}
	return
}

// FactsIDs returns the "facts" edge IDs in the mutation.
func (m *EntityMutation) FactsIDs() (ids []string) {
	for id := range m.facts {
		ids = append(ids, id)
	}
	return
}

// ResetFacts resets all changes to the "facts" edge.
func (m *EntityMutation) ResetFacts() {
	m.facts = nil
	m.clearedfacts = false
	m.removedfacts = nil
}

// ClearOrganization clears the "organization" edge to the Entity entity.
func (m *EntityMutation) ClearOrganization() {
	m.clearedorganization = true
	m.clearedFields[entity.FieldOrganizationID] = struct{}{}
}

// OrganizationCleared reports if the "organization" edge to the Entity entity was cleared.
func (m *EntityMutation) OrganizationCleared() bool {
	return m.OrganizationIDCleared() || m.clearedorganization
}

// OrganizationIDs returns the "organization" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OrganizationID instead. It exists only for internal usage by the builders.
func (m *EntityMutation) OrganizationIDs() (ids []string) {
	if id := m.organization; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOrganization resets all changes to the "organization" edge.
func (m *EntityMutation) ResetOrganization() {
	m.organization = nil
	m.clearedorganization = false
}

// AddMemberIDs adds the "members" edge to the Entity entity by ids.
func (m *EntityMutation) AddMemberIDs(ids ...string) {
	if m.members == nil {
		m.members = make(map[string]struct{})
	}
	for i := range ids {
		m.members[ids[i]] = struct{}{}
	}
}

// ClearMembers clears the "members" edge to the Entity entity.
func (m *EntityMutation) ClearMembers() {
	m.clearedmembers = true
}

// MembersCleared reports if the "members" edge to the Entity entity was cleared.
func (m *EntityMutation) MembersCleared() bool {
	return m.clearedmembers
}

// RemoveMemberIDs removes the "members" edge to the Entity entity by IDs.
func (m *EntityMutation) RemoveMemberIDs(ids ...string) {
	if m.removedmembers == nil {
		m.removedmembers = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.members, ids[i])
		m.removedmembers[ids[i]] = struct{}{}
	}
}

// RemovedMembers returns the removed IDs of the "members" edge to the Entity entity.
func (m *EntityMutation) RemovedMembersIDs() (ids []string) {
	for id := range m.removedmembers {
		ids = append(ids, id)
	}
	return
}

// MembersIDs returns the "members" edge IDs in the mutation.
func (m *EntityMutation) MembersIDs() (ids []string) {
	for id := range m.members {
		ids = append(ids, id)
	}
	return
}

// ResetMembers resets all changes to the "members" edge.
func (m *EntityMutation) ResetMembers() {
	m.members = nil
	m.clearedmembers = false
	m.removedmembers = nil
}

// Where appends a list predicates to the EntityMutation builder.
func (m *EntityMutation) Where(ps ...predicate.Entity) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EntityMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EntityMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Entity, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EntityMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EntityMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Entity).
func (m *EntityMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EntityMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m._type != nil {
		fields = append(fields, entity.FieldType)
	}
	if m.name != nil {
		fields = append(fields, entity.FieldName)
	}
	if m.organization != nil {
		fields = append(fields, entity.FieldOrganizationID)
	}
	if m.notes != nil {
		fields = append(fields, entity.FieldNotes)
	}
	if m.is_owner != nil {
		fields = append(fields, entity.FieldIsOwner)
	}
	if m.is_bot != nil {
		fields = append(fields, entity.FieldIsBot)
	}
	if m.creation_source != nil {
		fields = append(fields, entity.FieldCreationSource)
	}
	if m.created_at != nil {
		fields = append(fields, entity.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, entity.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, entity.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EntityMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case entity.FieldType:
		return m.GetType()
	case entity.FieldName:
		return m.Name()
	case entity.FieldOrganizationID:
		return m.OrganizationID()
	case entity.FieldNotes:
		return m.Notes()
	case entity.FieldIsOwner:
		return m.IsOwner()
	case entity.FieldIsBot:
		return m.IsBot()
	case entity.FieldCreationSource:
		return m.CreationSource()
	case entity.FieldCreatedAt:
		return m.CreatedAt()
	case entity.FieldUpdatedAt:
		return m.UpdatedAt()
	case entity.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EntityMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case entity.FieldType:
		return m.OldType(ctx)
	case entity.FieldName:
		return m.OldName(ctx)
	case entity.FieldOrganizationID:
		return m.OldOrganizationID(ctx)
	case entity.FieldNotes:
		return m.OldNotes(ctx)
	case entity.FieldIsOwner:
		return m.OldIsOwner(ctx)
	case entity.FieldIsBot:
		return m.OldIsBot(ctx)
	case entity.FieldCreationSource:
		return m.OldCreationSource(ctx)
	case entity.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case entity.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case entity.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Entity field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EntityMutation) SetField(name string, value ent.Value) error {
	switch name {
	case entity.FieldType:
		v, ok := value.(entity.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case entity.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case entity.FieldOrganizationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrganizationID(v)
		return nil
	case entity.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case entity.FieldIsOwner:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsOwner(v)
		return nil
	case entity.FieldIsBot:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsBot(v)
		return nil
	case entity.FieldCreationSource:
		v, ok := value.(entity.CreationSource)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreationSource(v)
		return nil
	case entity.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case entity.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case entity.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Entity field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EntityMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EntityMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EntityMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Entity numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EntityMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(entity.FieldOrganizationID) {
		fields = append(fields, entity.FieldOrganizationID)
	}
	if m.FieldCleared(entity.FieldNotes) {
		fields = append(fields, entity.FieldNotes)
	}
	if m.FieldCleared(entity.FieldDeletedAt) {
		fields = append(fields, entity.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EntityMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EntityMutation) ClearField(name string) error {
	switch name {
	case entity.FieldOrganizationID:
		m.ClearOrganizationID()
		return nil
	case entity.FieldNotes:
		m.ClearNotes()
		return nil
	case entity.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Entity nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EntityMutation) ResetField(name string) error {
	switch name {
	case entity.FieldType:
		m.ResetType()
		return nil
	case entity.FieldName:
		m.ResetName()
		return nil
	case entity.FieldOrganizationID:
		m.ResetOrganizationID()
		return nil
	case entity.FieldNotes:
		m.ResetNotes()
		return nil
	case entity.FieldIsOwner:
		m.ResetIsOwner()
		return nil
	case entity.FieldIsBot:
		m.ResetIsBot()
		return nil
	case entity.FieldCreationSource:
		m.ResetCreationSource()
		return nil
	case entity.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case entity.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case entity.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Entity field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EntityMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.identifiers != nil {
		edges = append(edges, entity.EdgeIdentifiers)
	}
	if m.facts != nil {
		edges = append(edges, entity.EdgeFacts)
	}
	if m.organization != nil {
		edges = append(edges, entity.EdgeOrganization)
	}
	if m.members != nil {
		edges = append(edges, entity.EdgeMembers)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EntityMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case entity.EdgeIdentifiers:
		ids := make([]ent.Value, 0, len(m.identifiers))
		for id := range m.identifiers {
			ids = append(ids, id)
		}
		return ids
	case entity.EdgeFacts:
		ids := make([]ent.Value, 0, len(m.facts))
		for id := range m.facts {
			ids = append(ids, id)
		}
		return ids
	case entity.EdgeOrganization:
		if id := m.organization; id != nil {
			return []ent.Value{*id}
		}
	case entity.EdgeMembers:
		ids := make([]ent.Value, 0, len(m.members))
		for id := range m.members {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EntityMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedidentifiers != nil {
		edges = append(edges, entity.EdgeIdentifiers)
	}
	if m.removedfacts != nil {
		edges = append(edges, entity.EdgeFacts)
	}
	if m.removedmembers != nil {
		edges = append(edges, entity.EdgeMembers)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EntityMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case entity.EdgeIdentifiers:
		ids := make([]ent.Value, 0, len(m.removedidentifiers))
		for id := range m.removedidentifiers {
			ids = append(ids, id)
		}
		return ids
	case entity.EdgeFacts:
		ids := make([]ent.Value, 0, len(m.removedfacts))
		for id := range m.removedfacts {
			ids = append(ids, id)
		}
		return ids
	case entity.EdgeMembers:
		ids := make([]ent.Value, 0, len(m.removedmembers))
		for id := range m.removedmembers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EntityMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedidentifiers {
		edges = append(edges, entity.EdgeIdentifiers)
	}
	if m.clearedfacts {
		edges = append(edges, entity.EdgeFacts)
	}
	if m.clearedorganization {
		edges = append(edges, entity.EdgeOrganization)
	}
	if m.clearedmembers {
		edges = append(edges, entity.EdgeMembers)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EntityMutation) EdgeCleared(name string) bool {
	switch name {
	case entity.EdgeIdentifiers:
		return m.clearedidentifiers
	case entity.EdgeFacts:
		return m.clearedfacts
	case entity.EdgeOrganization:
		return m.clearedorganization
	case entity.EdgeMembers:
		return m.clearedmembers
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EntityMutation) ClearEdge(name string) error {
	switch name {
	case entity.EdgeOrganization:
		m.ClearOrganization()
		return nil
	}
	return fmt.Errorf("unknown Entity unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EntityMutation) ResetEdge(name string) error {
	switch name {
	case entity.EdgeIdentifiers:
		m.ResetIdentifiers()
		return nil
	case entity.EdgeFacts:
		m.ResetFacts()
		return nil
	case entity.EdgeOrganization:
		m.ResetOrganization()
		return nil
	case entity.EdgeMembers:
		m.ResetMembers()
		return nil
	}
	return fmt.Errorf("unknown Entity edge %s", name)
}

// EntityFactMutation represents an operation that mutates the EntityFact nodes in the graph.
type EntityFactMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	fact_type             *string
	category              *string
	value                 *string
	value_date            *time.Time
	value_json            *map[string]interface{}
	source                *entityfact.Source
	confidence            *float64
	addconfidence         *float64
	source_interaction_id *string
	source_message_id     *string
	valid_from            *time.Time
	valid_until           *time.Time
	status                *entityfact.Status
	rank                  *entityfact.Rank
	superseded_by         *string
	needs_review          *bool
	review_reason         *string
	confirmation_count    *int
	addconfirmation_count *int
	metadata              *map[string]interface{}
	embedding             *pgvector.Vector
	created_at            *time.Time
	updated_at            *time.Time
	deleted_at            *time.Time
	clearedFields         map[string]struct{}
	entity                *string
	clearedentity         bool
	done                  bool
	oldValue              func(context.Context) (*EntityFact, error)
	predicates            []predicate.EntityFact
}

var _ ent.Mutation = (*EntityFactMutation)(nil)

// entityfactOption allows management of the mutation configuration using functional options.
type entityfactOption func(*EntityFactMutation)

// newEntityFactMutation creates new mutation for the EntityFact entity.
func newEntityFactMutation(c config, op Op, opts ...entityfactOption) *EntityFactMutation {
	m := &EntityFactMutation{
		config:        c,
		op:            op,
		typ:           TypeEntityFact,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEntityFactID sets the ID field of the mutation.
func withEntityFactID(id string) entityfactOption {
	return func(m *EntityFactMutation) {
		var (
			err   error
			once  sync.Once
			value *EntityFact
		)
		m.oldValue = func(ctx context.Context) (*EntityFact, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EntityFact.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEntityFact sets the old EntityFact of the mutation.
func withEntityFact(node *EntityFact) entityfactOption {
	return func(m *EntityFactMutation) {
		m.oldValue = func(context.Context) (*EntityFact, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EntityFactMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EntityFactMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EntityFact entities.
func (m *EntityFactMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EntityFactMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EntityFactMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EntityFact.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEntityID sets the "entity_id" field.
func (m *EntityFactMutation) SetEntityID(s string) {
	m.entity = &s
}

// EntityID returns the value of the "entity_id" field in the mutation.
func (m *EntityFactMutation) EntityID() (r string, exists bool) {
	v := m.entity
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityID returns the old "entity_id" field's value of the EntityFact entity.
// If the EntityFact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityFactMutation) OldEntityID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityID: %w", err)
	}
	return oldValue.EntityID, nil
}

// ResetEntityID resets all changes to the "entity_id" field.
func (m *EntityFactMutation) ResetEntityID() {
	m.entity = nil
}

// SetFactType sets the "fact_type" field.
func (m *EntityFactMutation) SetFactType(s string) {
	m.fact_type = &s
}

// FactType returns the value of the "fact_type" field in the mutation.
func (m *EntityFactMutation) FactType() (r string, exists bool) {
	v := m.fact_type
	if v == nil {
		return
	}
	return *v, true
}

// OldFactType returns the old "fact_type" field's value of the EntityFact entity.
// If the EntityFact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityFactMutation) OldFactType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFactType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFactType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFactType: %w", err)
	}
	return oldValue.FactType, nil
}

// ResetFactType resets all changes to the "fact_type" field.
func (m *EntityFactMutation) ResetFactType() {
	m.fact_type = nil
}

// SetCategory sets the "category" field.
func (m *EntityFactMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *EntityFactMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the EntityFact entity.
// If the EntityFact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityFactMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ClearCategory clears the value of the "category" field.
func (m *EntityFactMutation) ClearCategory() {
	m.category = nil
	m.clearedFields[entityfact.FieldCategory] = struct{}{}
}

// CategoryCleared returns if the "category" field was cleared in this mutation.
func (m *EntityFactMutation) CategoryCleared() bool {
	_, ok := m.clearedFields[entityfact.FieldCategory]
	return ok
}

// ResetCategory resets all changes to the "category" field.
func (m *EntityFactMutation) ResetCategory() {
	m.category = nil
	delete(m.clearedFields, entityfact.FieldCategory)
}

// SetValue sets the "value" field.
func (m *EntityFactMutation) SetValue(s string) {
	m.value = &s
}

// Value returns the value of the "value" field in the mutation.
func (m *EntityFactMutation) Value() (r string, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the EntityFact entity.
// If the EntityFact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityFactMutation) OldValue(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// ClearValue clears the value of the "value" field.
func (m *EntityFactMutation) ClearValue() {
	m.value = nil
	m.clearedFields[entityfact.FieldValue] = struct{}{}
}

// ValueCleared returns if the "value" field was cleared in this mutation.
func (m *EntityFactMutation) ValueCleared() bool {
	_, ok := m.clearedFields[entityfact.FieldValue]
	return ok
}

// ResetValue resets all changes to the "value" field.
func (m *EntityFactMutation) ResetValue() {
	m.value = nil
	delete(m.clearedFields, entityfact.FieldValue)
}

// SetValueDate sets the "value_date" field.
func (m *EntityFactMutation) SetValueDate(t time.Time) {
	m.value_date = &t
}

// ValueDate returns the value of the "value_date" field in the mutation.
func (m *EntityFactMutation) ValueDate() (r time.Time, exists bool) {
	v := m.value_date
	if v == nil {
		return
	}
	return *v, true
}

// OldValueDate returns the old "value_date" field's value of the EntityFact entity.
// If the EntityFact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityFactMutation) OldValueDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValueDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValueDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValueDate: %w", err)
	}
	return oldValue.ValueDate, nil
}

// ClearValueDate clears the value of the "value_date" field.
func (m *EntityFactMutation) ClearValueDate() {
	m.value_date = nil
	m.clearedFields[entityfact.FieldValueDate] = struct{}{}
}

// ValueDateCleared returns if the "value_date" field was cleared in this mutation.
func (m *EntityFactMutation) ValueDateCleared() bool {
	_, ok := m.clearedFields[entityfact.FieldValueDate]
	return ok
}

// ResetValueDate resets all changes to the "value_date" field.
func (m *EntityFactMutation) ResetValueDate() {
	m.value_date = nil
	delete(m.clearedFields, entityfact.FieldValueDate)
}

// SetValueJSON sets the "value_json" field.
func (m *EntityFactMutation) SetValueJSON(value map[string]interface{}) {
	m.value_json = &value
}

// ValueJSON returns the value of the "value_json" field in the mutation.
func (m *EntityFactMutation) ValueJSON() (r map[string]interface{}, exists bool) {
	v := m.value_json
	if v == nil {
		return
	}
	return *v, true
}

// OldValueJSON returns the old "value_json" field's value of the EntityFact entity.
// If the EntityFact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityFactMutation) OldValueJSON(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValueJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValueJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValueJSON: %w", err)
	}
	return oldValue.ValueJSON, nil
}

// ClearValueJSON clears the value of the "value_json" field.
func (m *EntityFactMutation) ClearValueJSON() {
	m.value_json = nil
	m.clearedFields[entityfact.FieldValueJSON] = struct{}{}
}

// ValueJSONCleared returns if the "value_json" field was cleared in this mutation.
func (m *EntityFactMutation) ValueJSONCleared() bool {
	_, ok := m.clearedFields[entityfact.FieldValueJSON]
	return ok
}

// ResetValueJSON resets all changes to the "value_json" field.
func (m *EntityFactMutation) ResetValueJSON() {
	m.value_json = nil
	delete(m.clearedFields, entityfact.FieldValueJSON)
}

// SetSource sets the "source" field.
func (m *EntityFactMutation) SetSource(e entityfact.Source) {
	m.source = &e
}

// Source returns the value of the "source" field in the mutation.
func (m *EntityFactMutation) Source() (r entityfact.Source, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the EntityFact entity.
// If the EntityFact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityFactMutation) OldSource(ctx context.Context) (v entityfact.Source, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *EntityFactMutation) ResetSource() {
	m.source = nil
}

// SetConfidence sets the "confidence" field.
func (m *EntityFactMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *EntityFactMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the EntityFact entity.
// If the EntityFact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityFactMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *EntityFactMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *EntityFactMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *EntityFactMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetSourceInteractionID sets the "source_interaction_id" field.
func (m *EntityFactMutation) SetSourceInteractionID(s string) {
	m.source_interaction_id = &s
}

// SourceInteractionID returns the value of the "source_interaction_id" field in the mutation.
func (m *EntityFactMutation) SourceInteractionID() (r string, exists bool) {
	v := m.source_interaction_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceInteractionID returns the old "source_interaction_id" field's value of the EntityFact entity.
// If the EntityFact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityFactMutation) OldSourceInteractionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceInteractionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceInteractionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceInteractionID: %w", err)
	}
	return oldValue.SourceInteractionID, nil
}

// ClearSourceInteractionID clears the value of the "source_interaction_id" field.
func (m *EntityFactMutation) ClearSourceInteractionID() {
	m.source_interaction_id = nil
	m.clearedFields[entityfact.FieldSourceInteractionID] = struct{}{}
}

// SourceInteractionIDCleared returns if the "source_interaction_id" field was cleared in this mutation.
func (m *EntityFactMutation) SourceInteractionIDCleared() bool {
	_, ok := m.clearedFields[entityfact.FieldSourceInteractionID]
	return ok
}

// ResetSourceInteractionID resets all changes to the "source_interaction_id" field.
func (m *EntityFactMutation) ResetSourceInteractionID() {
	m.source_interaction_id = nil
	delete(m.clearedFields, entityfact.FieldSourceInteractionID)
}

// SetSourceMessageID sets the "source_message_id" field.
func (m *EntityFactMutation) SetSourceMessageID(s string) {
	m.source_message_id = &s
}

// SourceMessageID returns the value of the "source_message_id" field in the mutation.
func (m *EntityFactMutation) SourceMessageID() (r string, exists bool) {
	v := m.source_message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceMessageID returns the old "source_message_id" field's value of the EntityFact entity.
// If the EntityFact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityFactMutation) OldSourceMessageID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceMessageID: %w", err)
	}
	return oldValue.SourceMessageID, nil
}

// ClearSourceMessageID clears the value of the "source_message_id" field.
func (m *EntityFactMutation) ClearSourceMessageID() {
	m.source_message_id = nil
	m.clearedFields[entityfact.FieldSourceMessageID] = struct{}{}
}

// SourceMessageIDCleared returns if the "source_message_id" field was cleared in this mutation.
func (m *EntityFactMutation) SourceMessageIDCleared() bool {
	_, ok := m.clearedFields[entityfact.FieldSourceMessageID]
	return ok
}

// ResetSourceMessageID resets all changes to the "source_message_id" field.
func (m *EntityFactMutation) ResetSourceMessageID() {
	m.source_message_id = nil
	delete(m.clearedFields, entityfact.FieldSourceMessageID)
}

// SetValidFrom sets the "valid_from" field.
func (m *EntityFactMutation) SetValidFrom(t time.Time) {
	m.valid_from = &t
}

// ValidFrom returns the value of the "valid_from" field in the mutation.
func (m *EntityFactMutation) ValidFrom() (r time.Time, exists bool) {
	v := m.valid_from
	if v == nil {
		return
	}
	return *v, true
}

// OldValidFrom returns the old "valid_from" field's value of the EntityFact entity.
// If the EntityFact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityFactMutation) OldValidFrom(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidFrom is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidFrom requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidFrom: %w", err)
	}
	return oldValue.ValidFrom, nil
}

// ClearValidFrom clears the value of the "valid_from" field.
func (m *EntityFactMutation) ClearValidFrom() {
	m.valid_from = nil
	m.clearedFields[entityfact.FieldValidFrom] = struct{}{}
}

// ValidFromCleared returns if the "valid_from" field was cleared in this mutation.
func (m *EntityFactMutation) ValidFromCleared() bool {
	_, ok := m.clearedFields[entityfact.FieldValidFrom]
	return ok
}

// ResetValidFrom resets all changes to the "valid_from" field.
func (m *EntityFactMutation) ResetValidFrom() {
	m.valid_from = nil
	delete(m.clearedFields, entityfact.FieldValidFrom)
}

// SetValidUntil sets the "valid_until" field.
func (m *EntityFactMutation) SetValidUntil(t time.Time) {
	m.valid_until = &t
}

// ValidUntil returns the value of the "valid_until" field in the mutation.
func (m *EntityFactMutation) ValidUntil() (r time.Time, exists bool) {
	v := m.valid_until
	if v == nil {
		return
	}
	return *v, true
}

// OldValidUntil returns the old "valid_until" field's value of the EntityFact entity.
// If the EntityFact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityFactMutation) OldValidUntil(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidUntil is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidUntil requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidUntil: %w", err)
	}
	return oldValue.ValidUntil, nil
}

// ClearValidUntil clears the value of the "valid_until" field.
func (m *EntityFactMutation) ClearValidUntil() {
	m.valid_until = nil
	m.clearedFields[entityfact.FieldValidUntil] = struct{}{}
}

// ValidUntilCleared returns if the "valid_until" field was cleared in this mutation.
func (m *EntityFactMutation) ValidUntilCleared() bool {
	_, ok := m.clearedFields[entityfact.FieldValidUntil]
	return ok
}

// ResetValidUntil resets all changes to the "valid_until" field.
func (m *EntityFactMutation) ResetValidUntil() {
	m.valid_until = nil
	delete(m.clearedFields, entityfact.FieldValidUntil)
}

// SetStatus sets the "status" field.
func (m *EntityFactMutation) SetStatus(e entityfact.Status) {
	m.status = &e
}

// Status returns the value of the "status" field in the mutation.
func (m *EntityFactMutation) Status() (r entityfact.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the EntityFact entity.
// If the EntityFact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityFactMutation) OldStatus(ctx context.Context) (v entityfact.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *EntityFactMutation) ResetStatus() {
	m.status = nil
}

// SetRank sets the "rank" field.
func (m *EntityFactMutation) SetRank(e entityfact.Rank) {
	m.rank = &e
}

// Rank returns the value of the "rank" field in the mutation.
func (m *EntityFactMutation) Rank() (r entityfact.Rank, exists bool) {
	v := m.rank
	if v == nil {
		return
	}
	return *v, true
}

// OldRank returns the old "rank" field's value of the EntityFact entity.
// If the EntityFact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityFactMutation) OldRank(ctx context.Context) (v entityfact.Rank, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRank is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRank requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRank: %w", err)
	}
	return oldValue.Rank, nil
}

// ResetRank resets all changes to the "rank" field.
func (m *EntityFactMutation) ResetRank() {
	m.rank = nil
}

// SetSupersededBy sets the "superseded_by" field.
func (m *EntityFactMutation) SetSupersededBy(s string) {
	m.superseded_by = &s
}

// SupersededBy returns the value of the "superseded_by" field in the mutation.
func (m *EntityFactMutation) SupersededBy() (r string, exists bool) {
	v := m.superseded_by
	if v == nil {
		return
	}
	return *v, true
}

// OldSupersededBy returns the old "superseded_by" field's value of the EntityFact entity.
// If the EntityFact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityFactMutation) OldSupersededBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupersededBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupersededBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupersededBy: %w", err)
	}
	return oldValue.SupersededBy, nil
}

// ClearSupersededBy clears the value of the "superseded_by" field.
func (m *EntityFactMutation) ClearSupersededBy() {
	m.superseded_by = nil
	m.clearedFields[entityfact.FieldSupersededBy] = struct{}{}
}

// SupersededByCleared returns if the "superseded_by" field was cleared in this mutation.
func (m *EntityFactMutation) SupersededByCleared() bool {
	_, ok := m.clearedFields[entityfact.FieldSupersededBy]
	return ok
}

// ResetSupersededBy resets all changes to the "superseded_by" field.
func (m *EntityFactMutation) ResetSupersededBy() {
	m.superseded_by = nil
	delete(m.clearedFields, entityfact.FieldSupersededBy)
}

// SetNeedsReview sets the "needs_review" field.
func (m *EntityFactMutation) SetNeedsReview(b bool) {
	m.needs_review = &b
}

// NeedsReview returns the value of the "needs_review" field in the mutation.
func (m *EntityFactMutation) NeedsReview() (r bool, exists bool) {
	v := m.needs_review
	if v == nil {
		return
	}
	return *v, true
}

// OldNeedsReview returns the old "needs_review" field's value of the EntityFact entity.
// If the EntityFact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityFactMutation) OldNeedsReview(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeedsReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeedsReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeedsReview: %w", err)
	}
	return oldValue.NeedsReview, nil
}

// ResetNeedsReview resets all changes to the "needs_review" field.
func (m *EntityFactMutation) ResetNeedsReview() {
	m.needs_review = nil
}

// SetReviewReason sets the "review_reason" field.
func (m *EntityFactMutation) SetReviewReason(s string) {
	m.review_reason = &s
}

// ReviewReason returns the value of the "review_reason" field in the mutation.
func (m *EntityFactMutation) ReviewReason() (r string, exists bool) {
	v := m.review_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewReason returns the old "review_reason" field's value of the EntityFact entity.
// If the EntityFact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityFactMutation) OldReviewReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewReason: %w", err)
	}
	return oldValue.ReviewReason, nil
}

// ClearReviewReason clears the value of the "review_reason" field.
func (m *EntityFactMutation) ClearReviewReason() {
	m.review_reason = nil
	m.clearedFields[entityfact.FieldReviewReason] = struct{}{}
}

// ReviewReasonCleared returns if the "review_reason" field was cleared in this mutation.
func (m *EntityFactMutation) ReviewReasonCleared() bool {
	_, ok := m.clearedFields[entityfact.FieldReviewReason]
	return ok
}

// ResetReviewReason resets all changes to the "review_reason" field.
func (m *EntityFactMutation) ResetReviewReason() {
	m.review_reason = nil
	delete(m.clearedFields, entityfact.FieldReviewReason)
}

// SetConfirmationCount sets the "confirmation_count" field.
func (m *EntityFactMutation) SetConfirmationCount(i int) {
	m.confirmation_count = &i
	m.addconfirmation_count = nil
}

// ConfirmationCount returns the value of the "confirmation_count" field in the mutation.
func (m *EntityFactMutation) ConfirmationCount() (r int, exists bool) {
	v := m.confirmation_count
	if v == nil {
		return
	}
	return *v, true
}

// OldConfirmationCount returns the old "confirmation_count" field's value of the EntityFact entity.
// If the EntityFact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityFactMutation) OldConfirmationCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfirmationCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfirmationCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfirmationCount: %w", err)
	}
	return oldValue.ConfirmationCount, nil
}

// AddConfirmationCount adds i to the "confirmation_count" field.
func (m *EntityFactMutation) AddConfirmationCount(i int) {
	if m.addconfirmation_count != nil {
		*m.addconfirmation_count += i
	} else {
		m.addconfirmation_count = &i
	}
}

// AddedConfirmationCount returns the value that was added to the "confirmation_count" field in this mutation.
func (m *EntityFactMutation) AddedConfirmationCount() (r int, exists bool) {
	v := m.addconfirmation_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfirmationCount resets all changes to the "confirmation_count" field.
func (m *EntityFactMutation) ResetConfirmationCount() {
	m.confirmation_count = nil
	m.addconfirmation_count = nil
}

// SetMetadata sets the "metadata" field.
func (m *EntityFactMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *EntityFactMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the EntityFact entity.
// If the EntityFact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityFactMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *EntityFactMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[entityfact.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *EntityFactMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[entityfact.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *EntityFactMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, entityfact.FieldMetadata)
}

// SetEmbedding sets the "embedding" field.
func (m *EntityFactMutation) SetEmbedding(pg pgvector.Vector) {
	m.embedding = &pg
}

// Embedding returns the value of the "embedding" field in the mutation.
func (m *EntityFactMutation) Embedding() (r pgvector.Vector, exists bool) {
	v := m.embedding
	if v == nil {
		return
	}
	return *v, true
}

// OldEmbedding returns the old "embedding" field's value of the EntityFact entity.
// If the EntityFact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityFactMutation) OldEmbedding(ctx context.Context) (v pgvector.Vector, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmbedding is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmbedding requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmbedding: %w", err)
	}
	return oldValue.Embedding, nil
}

// ClearEmbedding clears the value of the "embedding" field.
func (m *EntityFactMutation) ClearEmbedding() {
	m.embedding = nil
	m.clearedFields[entityfact.FieldEmbedding] = struct{}{}
}

// EmbeddingCleared returns if the "embedding" field was cleared in this mutation.
func (m *EntityFactMutation) EmbeddingCleared() bool {
	_, ok := m.clearedFields[entityfact.FieldEmbedding]
	return ok
}

// ResetEmbedding resets all changes to the "embedding" field.
func (m *EntityFactMutation) ResetEmbedding() {
	m.embedding = nil
	delete(m.clearedFields, entityfact.FieldEmbedding)
}

// SetCreatedAt sets the "created_at" field.
func (m *EntityFactMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EntityFactMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EntityFact entity.
// If the EntityFact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityFactMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EntityFactMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *EntityFactMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *EntityFactMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the EntityFact entity.
// If the EntityFact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityFactMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *EntityFactMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *EntityFactMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *EntityFactMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the EntityFact entity.
// If the EntityFact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityFactMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *EntityFactMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[entityfact.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *EntityFactMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[entityfact.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *EntityFactMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, entityfact.FieldDeletedAt)
}

// ClearEntity clears the "entity" edge to the Entity entity.
func (m *EntityFactMutation) ClearEntity() {
	m.clearedentity = true
	m.clearedFields[entityfact.FieldEntityID] = struct{}{}
}

// EntityCleared reports if the "entity" edge to the Entity entity was cleared.
func (m *EntityFactMutation) EntityCleared() bool {
	return m.clearedentity
}

// EntityIDs returns the "entity" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EntityID instead. It exists only for internal usage by the builders.
func (m *EntityFactMutation) EntityIDs() (ids []string) {
	if id := m.entity; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEntity resets all changes to the "entity" edge.
func (m *EntityFactMutation) ResetEntity() {
	m.entity = nil
	m.clearedentity = false
}

// Where appends a list predicates to the EntityFactMutation builder.
func (m *EntityFactMutation) Where(ps ...predicate.EntityFact) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EntityFactMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EntityFactMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EntityFact, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EntityFactMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EntityFactMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EntityFact).
func (m *EntityFactMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EntityFactMutation) Fields() []string {
	fields := make([]string, 0, 23)
	if m.entity != nil {
		fields = append(fields, entityfact.FieldEntityID)
	}
	if m.fact_type != nil {
		fields = append(fields, entityfact.FieldFactType)
	}
	if m.category != nil {
		fields = append(fields, entityfact.FieldCategory)
	}
	if m.value != nil {
		fields = append(fields, entityfact.FieldValue)
	}
	if m.value_date != nil {
		fields = append(fields, entityfact.FieldValueDate)
	}
	if m.value_json != nil {
		fields = append(fields, entityfact.FieldValueJSON)
	}
	if m.source != nil {
		fields = append(fields, entityfact.FieldSource)
	}
	if m.confidence != nil {
		fields = append(fields, entityfact.FieldConfidence)
	}
	if m.source_interaction_id != nil {
		fields = append(fields, entityfact.FieldSourceInteractionID)
	}
	if m.source_message_id != nil {
		fields = append(fields, entityfact.FieldSourceMessageID)
	}
	if m.valid_from != nil {
		fields = append(fields, entityfact.FieldValidFrom)
	}
	if m.valid_until != nil {
		fields = append(fields, entityfact.FieldValidUntil)
	}
	if m.status != nil {
		fields = append(fields, entityfact.FieldStatus)
	}
	if m.rank != nil {
		fields = append(fields, entityfact.FieldRank)
	}
	if m.superseded_by != nil {
		fields = append(fields, entityfact.FieldSupersededBy)
	}
	if m.needs_review != nil {
		fields = append(fields, entityfact.FieldNeedsReview)
	}
	if m.review_reason != nil {
		fields = append(fields, entityfact.FieldReviewReason)
	}
	if m.confirmation_count != nil {
		fields = append(fields, entityfact.FieldConfirmationCount)
	}
	if m.metadata != nil {
		fields = append(fields, entityfact.FieldMetadata)
	}
	if m.embedding != nil {
		fields = append(fields, entityfact.FieldEmbedding)
	}
	if m.created_at != nil {
		fields = append(fields, entityfact.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, entityfact.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, entityfact.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EntityFactMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case entityfact.FieldEntityID:
		return m.EntityID()
	case entityfact.FieldFactType:
		return m.FactType()
	case entityfact.FieldCategory:
		return m.Category()
	case entityfact.FieldValue:
		return m.Value()
	case entityfact.FieldValueDate:
		return m.ValueDate()
	case entityfact.FieldValueJSON:
		return m.ValueJSON()
	case entityfact.FieldSource:
		return m.Source()
	case entityfact.FieldConfidence:
		return m.Confidence()
	case entityfact.FieldSourceInteractionID:
		return m.SourceInteractionID()
	case entityfact.FieldSourceMessageID:
		return m.SourceMessageID()
	case entityfact.FieldValidFrom:
		return m.ValidFrom()
	case entityfact.FieldValidUntil:
		return m.ValidUntil()
	case entityfact.FieldStatus:
		return m.Status()
	case entityfact.FieldRank:
		return m.Rank()
	case entityfact.FieldSupersededBy:
		return m.SupersededBy()
	case entityfact.FieldNeedsReview:
		return m.NeedsReview()
	case entityfact.FieldReviewReason:
		return m.ReviewReason()
	case entityfact.FieldConfirmationCount:
		return m.ConfirmationCount()
	case entityfact.FieldMetadata:
		return m.Metadata()
	case entityfact.FieldEmbedding:
		return m.Embedding()
	case entityfact.FieldCreatedAt:
		return m.CreatedAt()
	case entityfact.FieldUpdatedAt:
		return m.UpdatedAt()
	case entityfact.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EntityFactMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case entityfact.FieldEntityID:
		return m.OldEntityID(ctx)
	case entityfact.FieldFactType:
		return m.OldFactType(ctx)
	case entityfact.FieldCategory:
		return m.OldCategory(ctx)
	case entityfact.FieldValue:
		return m.OldValue(ctx)
	case entityfact.FieldValueDate:
		return m.OldValueDate(ctx)
	case entityfact.FieldValueJSON:
		return m.OldValueJSON(ctx)
	case entityfact.FieldSource:
		return m.OldSource(ctx)
	case entityfact.FieldConfidence:
		return m.OldConfidence(ctx)
	case entityfact.FieldSourceInteractionID:
		return m.OldSourceInteractionID(ctx)
	case entityfact.FieldSourceMessageID:
		return m.OldSourceMessageID(ctx)
	case entityfact.FieldValidFrom:
		return m.OldValidFrom(ctx)
	case entityfact.FieldValidUntil:
		return m.OldValidUntil(ctx)
	case entityfact.FieldStatus:
		return m.OldStatus(ctx)
	case entityfact.FieldRank:
		return m.OldRank(ctx)
	case entityfact.FieldSupersededBy:
		return m.OldSupersededBy(ctx)
	case entityfact.FieldNeedsReview:
		return m.OldNeedsReview(ctx)
	case entityfact.FieldReviewReason:
		return m.OldReviewReason(ctx)
	case entityfact.FieldConfirmationCount:
		return m.OldConfirmationCount(ctx)
	case entityfact.FieldMetadata:
		return m.OldMetadata(ctx)
	case entityfact.FieldEmbedding:
		return m.OldEmbedding(ctx)
	case entityfact.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case entityfact.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case entityfact.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EntityFact field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EntityFactMutation) SetField(name string, value ent.Value) error {
	switch name {
	case entityfact.FieldEntityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityID(v)
		return nil
	case entityfact.FieldFactType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFactType(v)
		return nil
	case entityfact.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case entityfact.FieldValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case entityfact.FieldValueDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValueDate(v)
		return nil
	case entityfact.FieldValueJSON:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValueJSON(v)
		return nil
	case entityfact.FieldSource:
		v, ok := value.(entityfact.Source)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case entityfact.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case entityfact.FieldSourceInteractionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceInteractionID(v)
		return nil
	case entityfact.FieldSourceMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceMessageID(v)
		return nil
	case entityfact.FieldValidFrom:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidFrom(v)
		return nil
	case entityfact.FieldValidUntil:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidUntil(v)
		return nil
	case entityfact.FieldStatus:
		v, ok := value.(entityfact.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case entityfact.FieldRank:
		v, ok := value.(entityfact.Rank)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRank(v)
		return nil
	case entityfact.FieldSupersededBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupersededBy(v)
		return nil
	case entityfact.FieldNeedsReview:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeedsReview(v)
		return nil
	case entityfact.FieldReviewReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewReason(v)
		return nil
	case entityfact.FieldConfirmationCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfirmationCount(v)
		return nil
	case entityfact.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case entityfact.FieldEmbedding:
		v, ok := value.(pgvector.Vector)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmbedding(v)
		return nil
	case entityfact.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case entityfact.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case entityfact.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EntityFact field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EntityFactMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, entityfact.FieldConfidence)
	}
	if m.addconfirmation_count != nil {
		fields = append(fields, entityfact.FieldConfirmationCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EntityFactMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case entityfact.FieldConfidence:
		return m.AddedConfidence()
	case entityfact.FieldConfirmationCount:
		return m.AddedConfirmationCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EntityFactMutation) AddField(name string, value ent.Value) error {
	switch name {
	case entityfact.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case entityfact.FieldConfirmationCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfirmationCount(v)
		return nil
	}
	return fmt.Errorf("unknown EntityFact numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EntityFactMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(entityfact.FieldCategory) {
		fields = append(fields, entityfact.FieldCategory)
	}
	if m.FieldCleared(entityfact.FieldValue) {
		fields = append(fields, entityfact.FieldValue)
	}
	if m.FieldCleared(entityfact.FieldValueDate) {
		fields = append(fields, entityfact.FieldValueDate)
	}
	if m.FieldCleared(entityfact.FieldValueJSON) {
		fields = append(fields, entityfact.FieldValueJSON)
	}
	if m.FieldCleared(entityfact.FieldSourceInteractionID) {
		fields = append(fields, entityfact.FieldSourceInteractionID)
	}
	if m.FieldCleared(entityfact.FieldSourceMessageID) {
		fields = append(fields, entityfact.FieldSourceMessageID)
	}
	if m.FieldCleared(entityfact.FieldValidFrom) {
		fields = append(fields, entityfact.FieldValidFrom)
	}
	if m.FieldCleared(entityfact.FieldValidUntil) {
		fields = append(fields, entityfact.FieldValidUntil)
	}
	if m.FieldCleared(entityfact.FieldSupersededBy) {
		fields = append(fields, entityfact.FieldSupersededBy)
	}
	if m.FieldCleared(entityfact.FieldReviewReason) {
		fields = append(fields, entityfact.FieldReviewReason)
	}
	if m.FieldCleared(entityfact.FieldMetadata) {
		fields = append(fields, entityfact.FieldMetadata)
	}
	if m.FieldCleared(entityfact.FieldEmbedding) {
		fields = append(fields, entityfact.FieldEmbedding)
	}
	if m.FieldCleared(entityfact.FieldDeletedAt) {
		fields = append(fields, entityfact.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EntityFactMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EntityFactMutation) ClearField(name string) error {
	switch name {
	case entityfact.FieldCategory:
		m.ClearCategory()
		return nil
	case entityfact.FieldValue:
		m.ClearValue()
		return nil
	case entityfact.FieldValueDate:
		m.ClearValueDate()
		return nil
	case entityfact.FieldValueJSON:
		m.ClearValueJSON()
		return nil
	case entityfact.FieldSourceInteractionID:
		m.ClearSourceInteractionID()
		return nil
	case entityfact.FieldSourceMessageID:
		m.ClearSourceMessageID()
		return nil
	case entityfact.FieldValidFrom:
		m.ClearValidFrom()
		return nil
	case entityfact.FieldValidUntil:
		m.ClearValidUntil()
		return nil
	case entityfact.FieldSupersededBy:
		m.ClearSupersededBy()
		return nil
	case entityfact.FieldReviewReason:
		m.ClearReviewReason()
		return nil
	case entityfact.FieldMetadata:
		m.ClearMetadata()
		return nil
	case entityfact.FieldEmbedding:
		m.ClearEmbedding()
		return nil
	case entityfact.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown EntityFact nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EntityFactMutation) ResetField(name string) error {
	switch name {
	case entityfact.FieldEntityID:
		m.ResetEntityID()
		return nil
	case entityfact.FieldFactType:
		m.ResetFactType()
		return nil
	case entityfact.FieldCategory:
		m.ResetCategory()
		return nil
	case entityfact.FieldValue:
		m.ResetValue()
		return nil
	case entityfact.FieldValueDate:
		m.ResetValueDate()
		return nil
	case entityfact.FieldValueJSON:
		m.ResetValueJSON()
		return nil
	case entityfact.FieldSource:
		m.ResetSource()
		return nil
	case entityfact.FieldConfidence:
		m.ResetConfidence()
		return nil
	case entityfact.FieldSourceInteractionID:
		m.ResetSourceInteractionID()
		return nil
	case entityfact.FieldSourceMessageID:
		m.ResetSourceMessageID()
		return nil
	case entityfact.FieldValidFrom:
		m.ResetValidFrom()
		return nil
	case entityfact.FieldValidUntil:
		m.ResetValidUntil()
		return nil
	case entityfact.FieldStatus:
		m.ResetStatus()
		return nil
	case entityfact.FieldRank:
		m.ResetRank()
		return nil
	case entityfact.FieldSupersededBy:
		m.ResetSupersededBy()
		return nil
	case entityfact.FieldNeedsReview:
		m.ResetNeedsReview()
		return nil
	case entityfact.FieldReviewReason:
		m.ResetReviewReason()
		return nil
	case entityfact.FieldConfirmationCount:
		m.ResetConfirmationCount()
		return nil
	case entityfact.FieldMetadata:
		m.ResetMetadata()
		return nil
	case entityfact.FieldEmbedding:
		m.ResetEmbedding()
		return nil
	case entityfact.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case entityfact.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case entityfact.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown EntityFact field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EntityFactMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.entity != nil {
		edges = append(edges, entityfact.EdgeEntity)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EntityFactMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case entityfact.EdgeEntity:
		if id := m.entity; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EntityFactMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EntityFactMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EntityFactMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedentity {
		edges = append(edges, entityfact.EdgeEntity)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EntityFactMutation) EdgeCleared(name string) bool {
	switch name {
	case entityfact.EdgeEntity:
		return m.clearedentity
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EntityFactMutation) ClearEdge(name string) error {
	switch name {
	case entityfact.EdgeEntity:
		m.ClearEntity()
		return nil
	}
	return fmt.Errorf("unknown EntityFact unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EntityFactMutation) ResetEdge(name string) error {
	switch name {
	case entityfact.EdgeEntity:
		m.ResetEntity()
		return nil
	}
	return fmt.Errorf("unknown EntityFact edge %s", name)
}

// EntityIdentifierMutation represents an operation that mutates the EntityIdentifier nodes in the graph.
type EntityIdentifierMutation struct {
	config
	op               Op
	typ              string
	id               *string
	identifier_type  *string
	identifier_value *string
	metadata         *map[string]interface{}
	created_at       *time.Time
	clearedFields    map[string]struct{}
	entity           *string
	clearedentity    bool
	done             bool
	oldValue         func(context.Context) (*EntityIdentifier, error)
	predicates       []predicate.EntityIdentifier
}

var _ ent.Mutation = (*EntityIdentifierMutation)(nil)

// entityidentifierOption allows management of the mutation configuration using functional options.
type entityidentifierOption func(*EntityIdentifierMutation)

// newEntityIdentifierMutation creates new mutation for the EntityIdentifier entity.
func newEntityIdentifierMutation(c config, op Op, opts ...entityidentifierOption) *EntityIdentifierMutation {
	m := &EntityIdentifierMutation{
		config:        c,
		op:            op,
		typ:           TypeEntityIdentifier,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEntityIdentifierID sets the ID field of the mutation.
func withEntityIdentifierID(id string) entityidentifierOption {
	return func(m *EntityIdentifierMutation) {
		var (
			err   error
			once  sync.Once
			value *EntityIdentifier
		)
		m.oldValue = func(ctx context.Context) (*EntityIdentifier, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EntityIdentifier.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEntityIdentifier sets the old EntityIdentifier of the mutation.
func withEntityIdentifier(node *EntityIdentifier) entityidentifierOption {
	return func(m *EntityIdentifierMutation) {
		m.oldValue = func(context.Context) (*EntityIdentifier, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EntityIdentifierMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EntityIdentifierMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EntityIdentifier entities.
func (m *EntityIdentifierMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EntityIdentifierMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EntityIdentifierMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EntityIdentifier.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEntityID sets the "entity_id" field.
func (m *EntityIdentifierMutation) SetEntityID(s string) {
	m.entity = &s
}

// EntityID returns the value of the "entity_id" field in the mutation.
func (m *EntityIdentifierMutation) EntityID() (r string, exists bool) {
	v := m.entity
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityID returns the old "entity_id" field's value of the EntityIdentifier entity.
// If the EntityIdentifier object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityIdentifierMutation) OldEntityID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityID: %w", err)
	}
	return oldValue.EntityID, nil
}

// ResetEntityID resets all changes to the "entity_id" field.
func (m *EntityIdentifierMutation) ResetEntityID() {
	m.entity = nil
}

// SetIdentifierType sets the "identifier_type" field.
func (m *EntityIdentifierMutation) SetIdentifierType(s string) {
	m.identifier_type = &s
}

// IdentifierType returns the value of the "identifier_type" field in the mutation.
func (m *EntityIdentifierMutation) IdentifierType() (r string, exists bool) {
	v := m.identifier_type
	if v == nil {
		return
	}
	return *v, true
}

// OldIdentifierType returns the old "identifier_type" field's value of the EntityIdentifier entity.
// If the EntityIdentifier object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityIdentifierMutation) OldIdentifierType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIdentifierType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIdentifierType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIdentifierType: %w", err)
	}
	return oldValue.IdentifierType, nil
}

// ResetIdentifierType resets all changes to the "identifier_type" field.
func (m *EntityIdentifierMutation) ResetIdentifierType() {
	m.identifier_type = nil
}

// SetIdentifierValue sets the "identifier_value" field.
func (m *EntityIdentifierMutation) SetIdentifierValue(s string) {
	m.identifier_value = &s
}

// IdentifierValue returns the value of the "identifier_value" field in the mutation.
func (m *EntityIdentifierMutation) IdentifierValue() (r string, exists bool) {
	v := m.identifier_value
	if v == nil {
		return
	}
	return *v, true
}

// OldIdentifierValue returns the old "identifier_value" field's value of the EntityIdentifier entity.
// If the EntityIdentifier object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityIdentifierMutation) OldIdentifierValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIdentifierValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIdentifierValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIdentifierValue: %w", err)
	}
	return oldValue.IdentifierValue, nil
}

// ResetIdentifierValue resets all changes to the "identifier_value" field.
func (m *EntityIdentifierMutation) ResetIdentifierValue() {
	m.identifier_value = nil
}

// SetMetadata sets the "metadata" field.
func (m *EntityIdentifierMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *EntityIdentifierMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the EntityIdentifier entity.
// If the EntityIdentifier object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityIdentifierMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *EntityIdentifierMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[entityidentifier.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *EntityIdentifierMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[entityidentifier.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *EntityIdentifierMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, entityidentifier.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *EntityIdentifierMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EntityIdentifierMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EntityIdentifier entity.
// If the EntityIdentifier object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityIdentifierMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EntityIdentifierMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearEntity clears the "entity" edge to the Entity entity.
func (m *EntityIdentifierMutation) ClearEntity() {
	m.clearedentity = true
	m.clearedFields[entityidentifier.FieldEntityID] = struct{}{}
}

// EntityCleared reports if the "entity" edge to the Entity entity was cleared.
func (m *EntityIdentifierMutation) EntityCleared() bool {
	return m.clearedentity
}

// EntityIDs returns the "entity" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EntityID instead. It exists only for internal usage by the builders.
func (m *EntityIdentifierMutation) EntityIDs() (ids []string) {
	if id := m.entity; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEntity resets all changes to the "entity" edge.
func (m *EntityIdentifierMutation) ResetEntity() {
	m.entity = nil
	m.clearedentity = false
}

// Where appends a list predicates to the EntityIdentifierMutation builder.
func (m *EntityIdentifierMutation) Where(ps ...predicate.EntityIdentifier) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EntityIdentifierMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EntityIdentifierMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EntityIdentifier, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EntityIdentifierMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EntityIdentifierMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EntityIdentifier).
func (m *EntityIdentifierMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EntityIdentifierMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.entity != nil {
		fields = append(fields, entityidentifier.FieldEntityID)
	}
	if m.identifier_type != nil {
		fields = append(fields, entityidentifier.FieldIdentifierType)
	}
	if m.identifier_value != nil {
		fields = append(fields, entityidentifier.FieldIdentifierValue)
	}
	if m.metadata != nil {
		fields = append(fields, entityidentifier.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, entityidentifier.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EntityIdentifierMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case entityidentifier.FieldEntityID:
		return m.EntityID()
	case entityidentifier.FieldIdentifierType:
		return m.IdentifierType()
	case entityidentifier.FieldIdentifierValue:
		return m.IdentifierValue()
	case entityidentifier.FieldMetadata:
		return m.Metadata()
	case entityidentifier.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EntityIdentifierMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case entityidentifier.FieldEntityID:
		return m.OldEntityID(ctx)
	case entityidentifier.FieldIdentifierType:
		return m.OldIdentifierType(ctx)
	case entityidentifier.FieldIdentifierValue:
		return m.OldIdentifierValue(ctx)
	case entityidentifier.FieldMetadata:
		return m.OldMetadata(ctx)
	case entityidentifier.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EntityIdentifier field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EntityIdentifierMutation) SetField(name string, value ent.Value) error {
	switch name {
	case entityidentifier.FieldEntityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityID(v)
		return nil
	case entityidentifier.FieldIdentifierType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIdentifierType(v)
		return nil
	case entityidentifier.FieldIdentifierValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIdentifierValue(v)
		return nil
	case entityidentifier.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case entityidentifier.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EntityIdentifier field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EntityIdentifierMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EntityIdentifierMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EntityIdentifierMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown EntityIdentifier numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EntityIdentifierMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(entityidentifier.FieldMetadata) {
		fields = append(fields, entityidentifier.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EntityIdentifierMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EntityIdentifierMutation) ClearField(name string) error {
	switch name {
	case entityidentifier.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown EntityIdentifier nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EntityIdentifierMutation) ResetField(name string) error {
	switch name {
	case entityidentifier.FieldEntityID:
		m.ResetEntityID()
		return nil
	case entityidentifier.FieldIdentifierType:
		m.ResetIdentifierType()
		return nil
	case entityidentifier.FieldIdentifierValue:
		m.ResetIdentifierValue()
		return nil
	case entityidentifier.FieldMetadata:
		m.ResetMetadata()
		return nil
	case entityidentifier.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown EntityIdentifier field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EntityIdentifierMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.entity != nil {
		edges = append(edges, entityidentifier.EdgeEntity)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EntityIdentifierMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case entityidentifier.EdgeEntity:
		if id := m.entity; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EntityIdentifierMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EntityIdentifierMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EntityIdentifierMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedentity {
		edges = append(edges, entityidentifier.EdgeEntity)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EntityIdentifierMutation) EdgeCleared(name string) bool {
	switch name {
	case entityidentifier.EdgeEntity:
		return m.clearedentity
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EntityIdentifierMutation) ClearEdge(name string) error {
	switch name {
	case entityidentifier.EdgeEntity:
		m.ClearEntity()
		return nil
	}
	return fmt.Errorf("unknown EntityIdentifier unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EntityIdentifierMutation) ResetEdge(name string) error {
	switch name {
	case entityidentifier.EdgeEntity:
		m.ResetEntity()
		return nil
	}
	return fmt.Errorf("unknown EntityIdentifier edge %s", name)
}

// InteractionMutation represents an operation that mutates the Interaction nodes in the graph.
type InteractionMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	_type                *interaction.Type
	source               *string
	chat_id              *string
	topic_id             *string
	status               *interaction.Status
	started_at           *time.Time
	ended_at             *time.Time
	last_message_at      *time.Time
	needs_resegmentation *bool
	source_metadata      *map[string]interface{}
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	messages             map[string]struct{}
	removedmessages      map[string]struct{}
	clearedmessages      bool
	participants         map[string]struct{}
	removedparticipants  map[string]struct{}
	clearedparticipants  bool
	segments             map[string]struct{}
	removedsegments      map[string]struct{}
	clearedsegments      bool
	done                 bool
	oldValue             func(context.Context) (*Interaction, error)
	predicates           []predicate.Interaction
}

var _ ent.Mutation = (*InteractionMutation)(nil)

// interactionOption allows management of the mutation configuration using functional options.
type interactionOption func(*InteractionMutation)

// newInteractionMutation creates new mutation for the Interaction entity.
func newInteractionMutation(c config, op Op, opts ...interactionOption) *InteractionMutation {
	m := &InteractionMutation{
		config:        c,
		op:            op,
		typ:           TypeInteraction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInteractionID sets the ID field of the mutation.
func withInteractionID(id string) interactionOption {
	return func(m *InteractionMutation) {
		var (
			err   error
			once  sync.Once
			value *Interaction
		)
		m.oldValue = func(ctx context.Context) (*Interaction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Interaction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInteraction sets the old Interaction of the mutation.
func withInteraction(node *Interaction) interactionOption {
	return func(m *InteractionMutation) {
		m.oldValue = func(context.Context) (*Interaction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InteractionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InteractionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Interaction entities.
func (m *InteractionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InteractionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InteractionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Interaction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetType sets the "type" field.
func (m *InteractionMutation) SetType(i interaction.Type) {
	m._type = &i
}

// GetType returns the value of the "type" field in the mutation.
func (m *InteractionMutation) GetType() (r interaction.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldType(ctx context.Context) (v interaction.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *InteractionMutation) ResetType() {
	m._type = nil
}

// SetSource sets the "source" field.
func (m *InteractionMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *InteractionMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *InteractionMutation) ResetSource() {
	m.source = nil
}

// SetChatID sets the "chat_id" field.
func (m *InteractionMutation) SetChatID(s string) {
	m.chat_id = &s
}

// ChatID returns the value of the "chat_id" field in the mutation.
func (m *InteractionMutation) ChatID() (r string, exists bool) {
	v := m.chat_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChatID returns the old "chat_id" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldChatID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChatID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChatID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChatID: %w", err)
	}
	return oldValue.ChatID, nil
}

// ResetChatID resets all changes to the "chat_id" field.
func (m *InteractionMutation) ResetChatID() {
	m.chat_id = nil
}

// SetTopicID sets the "topic_id" field.
func (m *InteractionMutation) SetTopicID(s string) {
	m.topic_id = &s
}

// TopicID returns the value of the "topic_id" field in the mutation.
func (m *InteractionMutation) TopicID() (r string, exists bool) {
	v := m.topic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicID returns the old "topic_id" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldTopicID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicID: %w", err)
	}
	return oldValue.TopicID, nil
}

// ClearTopicID clears the value of the "topic_id" field.
func (m *InteractionMutation) ClearTopicID() {
	m.topic_id = nil
	m.clearedFields[interaction.FieldTopicID] = struct{}{}
}

// TopicIDCleared returns if the "topic_id" field was cleared in this mutation.
func (m *InteractionMutation) TopicIDCleared() bool {
	_, ok := m.clearedFields[interaction.FieldTopicID]
	return ok
}

// ResetTopicID resets all changes to the "topic_id" field.
func (m *InteractionMutation) ResetTopicID() {
	m.topic_id = nil
	delete(m.clearedFields, interaction.FieldTopicID)
}

// SetStatus sets the "status" field.
func (m *InteractionMutation) SetStatus(i interaction.Status) {
	m.status = &i
}

// Status returns the value of the "status" field in the mutation.
func (m *InteractionMutation) Status() (r interaction.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldStatus(ctx context.Context) (v interaction.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *InteractionMutation) ResetStatus() {
	m.status = nil
}

// SetStartedAt sets the "started_at" field.
func (m *InteractionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *InteractionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *InteractionMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetEndedAt sets the "ended_at" field.
func (m *InteractionMutation) SetEndedAt(t time.Time) {
	m.ended_at = &t
}

// EndedAt returns the value of the "ended_at" field in the mutation.
func (m *InteractionMutation) EndedAt() (r time.Time, exists bool) {
	v := m.ended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndedAt returns the old "ended_at" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldEndedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndedAt: %w", err)
	}
	return oldValue.EndedAt, nil
}

// ClearEndedAt clears the value of the "ended_at" field.
func (m *InteractionMutation) ClearEndedAt() {
	m.ended_at = nil
	m.clearedFields[interaction.FieldEndedAt] = struct{}{}
}

// EndedAtCleared returns if the "ended_at" field was cleared in this mutation.
func (m *InteractionMutation) EndedAtCleared() bool {
	_, ok := m.clearedFields[interaction.FieldEndedAt]
	return ok
}

// ResetEndedAt resets all changes to the "ended_at" field.
func (m *InteractionMutation) ResetEndedAt() {
	m.ended_at = nil
	delete(m.clearedFields, interaction.FieldEndedAt)
}

// SetLastMessageAt sets the "last_message_at" field.
func (m *InteractionMutation) SetLastMessageAt(t time.Time) {
	m.last_message_at = &t
}

// LastMessageAt returns the value of the "last_message_at" field in the mutation.
func (m *InteractionMutation) LastMessageAt() (r time.Time, exists bool) {
	v := m.last_message_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastMessageAt returns the old "last_message_at" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldLastMessageAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastMessageAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastMessageAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastMessageAt: %w", err)
	}
	return oldValue.LastMessageAt, nil
}

// ResetLastMessageAt resets all changes to the "last_message_at" field.
func (m *InteractionMutation) ResetLastMessageAt() {
	m.last_message_at = nil
}

// SetNeedsResegmentation sets the "needs_resegmentation" field.
func (m *InteractionMutation) SetNeedsResegmentation(b bool) {
	m.needs_resegmentation = &b
}

// NeedsResegmentation returns the value of the "needs_resegmentation" field in the mutation.
func (m *InteractionMutation) NeedsResegmentation() (r bool, exists bool) {
	v := m.needs_resegmentation
	if v == nil {
		return
	}
	return *v, true
}

// OldNeedsResegmentation returns the old "needs_resegmentation" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldNeedsResegmentation(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeedsResegmentation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeedsResegmentation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeedsResegmentation: %w", err)
	}
	return oldValue.NeedsResegmentation, nil
}

// ResetNeedsResegmentation resets all changes to the "needs_resegmentation" field.
func (m *InteractionMutation) ResetNeedsResegmentation() {
	m.needs_resegmentation = nil
}

// SetSourceMetadata sets the "source_metadata" field.
func (m *InteractionMutation) SetSourceMetadata(value map[string]interface{}) {
	m.source_metadata = &value
}

// SourceMetadata returns the value of the "source_metadata" field in the mutation.
func (m *InteractionMutation) SourceMetadata() (r map[string]interface{}, exists bool) {
	v := m.source_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceMetadata returns the old "source_metadata" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldSourceMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceMetadata: %w", err)
	}
	return oldValue.SourceMetadata, nil
}

// ClearSourceMetadata clears the value of the "source_metadata" field.
func (m *InteractionMutation) ClearSourceMetadata() {
	m.source_metadata = nil
	m.clearedFields[interaction.FieldSourceMetadata] = struct{}{}
}

// SourceMetadataCleared returns if the "source_metadata" field was cleared in this mutation.
func (m *InteractionMutation) SourceMetadataCleared() bool {
	_, ok := m.clearedFields[interaction.FieldSourceMetadata]
	return ok
}

// ResetSourceMetadata resets all changes to the "source_metadata" field.
func (m *InteractionMutation) ResetSourceMetadata() {
	m.source_metadata = nil
	delete(m.clearedFields, interaction.FieldSourceMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *InteractionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InteractionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InteractionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *InteractionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *InteractionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *InteractionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddMessageIDs adds the "messages" edge to the Message entity by ids.
func (m *InteractionMutation) AddMessageIDs(ids ...string) {
	if m.messages == nil {
		m.messages = make(map[string]struct{})
	}
	for i := range ids {
		m.messages[ids[i]] = struct{}{}
	}
}

// ClearMessages clears the "messages" edge to the Message entity.
func (m *InteractionMutation) ClearMessages() {
	m.clearedmessages = true
}

// MessagesCleared reports if the "messages" edge to the Message entity was cleared.
func (m *InteractionMutation) MessagesCleared() bool {
	return m.clearedmessages
}

// RemoveMessageIDs removes the "messages" edge to the Message entity by IDs.
func (m *InteractionMutation) RemoveMessageIDs(ids ...string) {
	if m.removedmessages == nil {
		m.removedmessages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.messages, ids[i])
		m.removedmessages[ids[i]] = struct{}{}
	}
}

// RemovedMessages returns the removed IDs of the "messages" edge to the Message entity.
func (m *InteractionMutation) RemovedMessagesIDs() (ids []string) {
	for id := range m.removedmessages {
		ids = append(ids, id)
	}
	return
}

// MessagesIDs returns the "messages" edge IDs in the mutation.
func (m *InteractionMutation) MessagesIDs() (ids []string) {
	for id := range m.messages {
		ids = append(ids, id)
	}
	return
}

// ResetMessages resets all changes to the "messages" edge.
func (m *InteractionMutation) ResetMessages() {
	m.messages = nil
	m.clearedmessages = false
	m.removedmessages = nil
}

// AddParticipantIDs adds the "participants" edge to the InteractionParticipant entity by ids.
func (m *InteractionMutation) AddParticipantIDs(ids ...string) {
	if m.participants == nil {
		m.participants = make(map[string]struct{})
	}
	for i := range ids {
		m.participants[ids[i]] = struct{}{}
	}
}

// ClearParticipants clears the "participants" edge to the InteractionParticipant entity.
func (m *InteractionMutation) ClearParticipants() {
	m.clearedparticipants = true
}

// ParticipantsCleared reports if the "participants" edge to the InteractionParticipant entity was cleared.
func (m *InteractionMutation) ParticipantsCleared() bool {
	return m.clearedparticipants
}

// RemoveParticipantIDs removes the "participants" edge to the InteractionParticipant entity by IDs.
func (m *InteractionMutation) RemoveParticipantIDs(ids ...string) {
	if m.removedparticipants == nil {
		m.removedparticipants = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.participants, ids[i])
		m.removedparticipants[ids[i]] = struct{}{}
	}
}

// RemovedParticipants returns the removed IDs of the "participants" edge to the InteractionParticipant entity.
func (m *InteractionMutation) RemovedParticipantsIDs() (ids []string) {
	for id := range m.removedparticipants {
		ids = append(ids, id)
	}
	return
}

// ParticipantsIDs returns the "participants" edge IDs in the mutation.
func (m *InteractionMutation) ParticipantsIDs() (ids []string) {
	for id := range m.participants {
		ids = append(ids, id)
	}
	return
}

// ResetParticipants resets all changes to the "participants" edge.
func (m *InteractionMutation) ResetParticipants() {
	m.participants = nil
	m.clearedparticipants = false
	m.removedparticipants = nil
}

// AddSegmentIDs adds the "segments" edge to the TopicalSegment entity by ids.
func (m *InteractionMutation) AddSegmentIDs(ids ...string) {
	if m.segments == nil {
		m.segments = make(map[string]struct{})
	}
	for i := range ids {
		m.segments[ids[i]] = struct{}{}
	}
}

// ClearSegments clears the "segments" edge to the TopicalSegment entity.
func (m *InteractionMutation) ClearSegments() {
	m.clearedsegments = true
}

// SegmentsCleared reports if the "segments" edge to the TopicalSegment entity was cleared.
func (m *InteractionMutation) SegmentsCleared() bool {
	return m.clearedsegments
}

// RemoveSegmentIDs removes the "segments" edge to the TopicalSegment entity by IDs.
func (m *InteractionMutation) RemoveSegmentIDs(ids ...string) {
	if m.removedsegments == nil {
		m.removedsegments = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.segments, ids[i])
		m.removedsegments[ids[i]] = struct{}{}
	}
}

// RemovedSegments returns the removed IDs of the "segments" edge to the TopicalSegment entity.
func (m *InteractionMutation) RemovedSegmentsIDs() (ids []string) {
	for id := range m.removedsegments {
		ids = append(ids, id)
	}
	return
}

// SegmentsIDs returns the "segments" edge IDs in the mutation.
func (m *InteractionMutation) SegmentsIDs() (ids []string) {
	for id := range m.segments {
		ids = append(ids, id)
	}
	return
}

// ResetSegments resets all changes to the "segments" edge.
func (m *InteractionMutation) ResetSegments() {
	m.segments = nil
	m.clearedsegments = false
	m.removedsegments = nil
}

// Where appends a list predicates to the InteractionMutation builder.
func (m *InteractionMutation) Where(ps ...predicate.Interaction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InteractionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InteractionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Interaction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InteractionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InteractionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Interaction).
func (m *InteractionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InteractionMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m._type != nil {
		fields = append(fields, interaction.FieldType)
	}
	if m.source != nil {
		fields = append(fields, interaction.FieldSource)
	}
	if m.chat_id != nil {
		fields = append(fields, interaction.FieldChatID)
	}
	if m.topic_id != nil {
		fields = append(fields, interaction.FieldTopicID)
	}
	if m.status != nil {
		fields = append(fields, interaction.FieldStatus)
	}
	if m.started_at != nil {
		fields = append(fields, interaction.FieldStartedAt)
	}
	if m.ended_at != nil {
		fields = append(fields, interaction.FieldEndedAt)
	}
	if m.last_message_at != nil {
		fields = append(fields, interaction.FieldLastMessageAt)
	}
	if m.needs_resegmentation != nil {
		fields = append(fields, interaction.FieldNeedsResegmentation)
	}
	if m.source_metadata != nil {
		fields = append(fields, interaction.FieldSourceMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, interaction.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, interaction.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InteractionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case interaction.FieldType:
		return m.GetType()
	case interaction.FieldSource:
		return m.Source()
	case interaction.FieldChatID:
		return m.ChatID()
	case interaction.FieldTopicID:
		return m.TopicID()
	case interaction.FieldStatus:
		return m.Status()
	case interaction.FieldStartedAt:
		return m.StartedAt()
	case interaction.FieldEndedAt:
		return m.EndedAt()
	case interaction.FieldLastMessageAt:
		return m.LastMessageAt()
	case interaction.FieldNeedsResegmentation:
		return m.NeedsResegmentation()
	case interaction.FieldSourceMetadata:
		return m.SourceMetadata()
	case interaction.FieldCreatedAt:
		return m.CreatedAt()
	case interaction.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InteractionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case interaction.FieldType:
		return m.OldType(ctx)
	case interaction.FieldSource:
		return m.OldSource(ctx)
	case interaction.FieldChatID:
		return m.OldChatID(ctx)
	case interaction.FieldTopicID:
		return m.OldTopicID(ctx)
	case interaction.FieldStatus:
		return m.OldStatus(ctx)
	case interaction.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case interaction.FieldEndedAt:
		return m.OldEndedAt(ctx)
	case interaction.FieldLastMessageAt:
		return m.OldLastMessageAt(ctx)
	case interaction.FieldNeedsResegmentation:
		return m.OldNeedsResegmentation(ctx)
	case interaction.FieldSourceMetadata:
		return m.OldSourceMetadata(ctx)
	case interaction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case interaction.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Interaction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InteractionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case interaction.FieldType:
		v, ok := value.(interaction.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case interaction.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case interaction.FieldChatID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChatID(v)
		return nil
	case interaction.FieldTopicID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicID(v)
		return nil
	case interaction.FieldStatus:
		v, ok := value.(interaction.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case interaction.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case interaction.FieldEndedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndedAt(v)
		return nil
	case interaction.FieldLastMessageAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastMessageAt(v)
		return nil
	case interaction.FieldNeedsResegmentation:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeedsResegmentation(v)
		return nil
	case interaction.FieldSourceMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceMetadata(v)
		return nil
	case interaction.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case interaction.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Interaction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InteractionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InteractionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InteractionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Interaction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InteractionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(interaction.FieldTopicID) {
		fields = append(fields, interaction.FieldTopicID)
	}
	if m.FieldCleared(interaction.FieldEndedAt) {
		fields = append(fields, interaction.FieldEndedAt)
	}
	if m.FieldCleared(interaction.FieldSourceMetadata) {
		fields = append(fields, interaction.FieldSourceMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InteractionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InteractionMutation) ClearField(name string) error {
	switch name {
	case interaction.FieldTopicID:
		m.ClearTopicID()
		return nil
	case interaction.FieldEndedAt:
		m.ClearEndedAt()
		return nil
	case interaction.FieldSourceMetadata:
		m.ClearSourceMetadata()
		return nil
	}
	return fmt.Errorf("unknown Interaction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InteractionMutation) ResetField(name string) error {
	switch name {
	case interaction.FieldType:
		m.ResetType()
		return nil
	case interaction.FieldSource:
		m.ResetSource()
		return nil
	case interaction.FieldChatID:
		m.ResetChatID()
		return nil
	case interaction.FieldTopicID:
		m.ResetTopicID()
		return nil
	case interaction.FieldStatus:
		m.ResetStatus()
		return nil
	case interaction.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case interaction.FieldEndedAt:
		m.ResetEndedAt()
		return nil
	case interaction.FieldLastMessageAt:
		m.ResetLastMessageAt()
		return nil
	case interaction.FieldNeedsResegmentation:
		m.ResetNeedsResegmentation()
		return nil
	case interaction.FieldSourceMetadata:
		m.ResetSourceMetadata()
		return nil
	case interaction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case interaction.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Interaction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InteractionMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.messages != nil {
		edges = append(edges, interaction.EdgeMessages)
	}
	if m.participants != nil {
		edges = append(edges, interaction.EdgeParticipants)
	}
	if m.segments != nil {
		edges = append(edges, interaction.EdgeSegments)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InteractionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case interaction.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.messages))
		for id := range m.messages {
			ids = append(ids, id)
		}
		return ids
	case interaction.EdgeParticipants:
		ids := make([]ent.Value, 0, len(m.participants))
		for id := range m.participants {
			ids = append(ids, id)
		}
		return ids
	case interaction.EdgeSegments:
		ids := make([]ent.Value, 0, len(m.segments))
		for id := range m.segments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InteractionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedmessages != nil {
		edges = append(edges, interaction.EdgeMessages)
	}
	if m.removedparticipants != nil {
		edges = append(edges, interaction.EdgeParticipants)
	}
	if m.removedsegments != nil {
		edges = append(edges, interaction.EdgeSegments)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InteractionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case interaction.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.removedmessages))
		for id := range m.removedmessages {
			ids = append(ids, id)
		}
		return ids
	case interaction.EdgeParticipants:
		ids := make([]ent.Value, 0, len(m.removedparticipants))
		for id := range m.removedparticipants {
			ids = append(ids, id)
		}
		return ids
	case interaction.EdgeSegments:
		ids := make([]ent.Value, 0, len(m.removedsegments))
		for id := range m.removedsegments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InteractionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedmessages {
		edges = append(edges, interaction.EdgeMessages)
	}
	if m.clearedparticipants {
		edges = append(edges, interaction.EdgeParticipants)
	}
	if m.clearedsegments {
		edges = append(edges, interaction.EdgeSegments)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InteractionMutation) EdgeCleared(name string) bool {
	switch name {
	case interaction.EdgeMessages:
		return m.clearedmessages
	case interaction.EdgeParticipants:
		return m.clearedparticipants
	case interaction.EdgeSegments:
		return m.clearedsegments
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InteractionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Interaction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InteractionMutation) ResetEdge(name string) error {
	switch name {
	case interaction.EdgeMessages:
		m.ResetMessages()
		return nil
	case interaction.EdgeParticipants:
		m.ResetParticipants()
		return nil
	case interaction.EdgeSegments:
		m.ResetSegments()
		return nil
	}
	return fmt.Errorf("unknown Interaction edge %s", name)
}

// InteractionParticipantMutation represents an operation that mutates the InteractionParticipant nodes in the graph.
type InteractionParticipantMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	entity_id          *string
	role               *interactionparticipant.Role
	identifier_type    *string
	identifier_value   *string
	display_name       *string
	created_at         *time.Time
	clearedFields      map[string]struct{}
	interaction        *string
	clearedinteraction bool
	done               bool
	oldValue           func(context.Context) (*InteractionParticipant, error)
	predicates         []predicate.InteractionParticipant
}

var _ ent.Mutation = (*InteractionParticipantMutation)(nil)

// interactionparticipantOption allows management of the mutation configuration using functional options.
type interactionparticipantOption func(*InteractionParticipantMutation)

// newInteractionParticipantMutation creates new mutation for the InteractionParticipant entity.
func newInteractionParticipantMutation(c config, op Op, opts ...interactionparticipantOption) *InteractionParticipantMutation {
	m := &InteractionParticipantMutation{
		config:        c,
		op:            op,
		typ:           TypeInteractionParticipant,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInteractionParticipantID sets the ID field of the mutation.
func withInteractionParticipantID(id string) interactionparticipantOption {
	return func(m *InteractionParticipantMutation) {
		var (
			err   error
			once  sync.Once
			value *InteractionParticipant
		)
		m.oldValue = func(ctx context.Context) (*InteractionParticipant, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InteractionParticipant.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInteractionParticipant sets the old InteractionParticipant of the mutation.
func withInteractionParticipant(node *InteractionParticipant) interactionparticipantOption {
	return func(m *InteractionParticipantMutation) {
		m.oldValue = func(context.Context) (*InteractionParticipant, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InteractionParticipantMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InteractionParticipantMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of InteractionParticipant entities.
func (m *InteractionParticipantMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InteractionParticipantMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InteractionParticipantMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InteractionParticipant.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetInteractionID sets the "interaction_id" field.
func (m *InteractionParticipantMutation) SetInteractionID(s string) {
	m.interaction = &s
}

// InteractionID returns the value of the "interaction_id" field in the mutation.
func (m *InteractionParticipantMutation) InteractionID() (r string, exists bool) {
	v := m.interaction
	if v == nil {
		return
	}
	return *v, true
}

// OldInteractionID returns the old "interaction_id" field's value of the InteractionParticipant entity.
// If the InteractionParticipant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionParticipantMutation) OldInteractionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInteractionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInteractionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInteractionID: %w", err)
	}
	return oldValue.InteractionID, nil
}

// ResetInteractionID resets all changes to the "interaction_id" field.
func (m *InteractionParticipantMutation) ResetInteractionID() {
	m.interaction = nil
}

// SetEntityID sets the "entity_id" field.
func (m *InteractionParticipantMutation) SetEntityID(s string) {
	m.entity_id = &s
}

// EntityID returns the value of the "entity_id" field in the mutation.
func (m *InteractionParticipantMutation) EntityID() (r string, exists bool) {
	v := m.entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityID returns the old "entity_id" field's value of the InteractionParticipant entity.
// If the InteractionParticipant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionParticipantMutation) OldEntityID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityID: %w", err)
	}
	return oldValue.EntityID, nil
}

// ClearEntityID clears the value of the "entity_id" field.
func (m *InteractionParticipantMutation) ClearEntityID() {
	m.entity_id = nil
	m.clearedFields[interactionparticipant.FieldEntityID] = struct{}{}
}

// EntityIDCleared returns if the "entity_id" field was cleared in this mutation.
func (m *InteractionParticipantMutation) EntityIDCleared() bool {
	_, ok := m.clearedFields[interactionparticipant.FieldEntityID]
	return ok
}

// ResetEntityID resets all changes to the "entity_id" field.
func (m *InteractionParticipantMutation) ResetEntityID() {
	m.entity_id = nil
	delete(m.clearedFields, interactionparticipant.FieldEntityID)
}

// SetRole sets the "role" field.
func (m *InteractionParticipantMutation) SetRole(i interactionparticipant.Role) {
	m.role = &i
}

// Role returns the value of the "role" field in the mutation.
func (m *InteractionParticipantMutation) Role() (r interactionparticipant.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the InteractionParticipant entity.
// If the InteractionParticipant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionParticipantMutation) OldRole(ctx context.Context) (v interactionparticipant.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *InteractionParticipantMutation) ResetRole() {
	m.role = nil
}

// SetIdentifierType sets the "identifier_type" field.
func (m *InteractionParticipantMutation) SetIdentifierType(s string) {
	m.identifier_type = &s
}

// IdentifierType returns the value of the "identifier_type" field in the mutation.
func (m *InteractionParticipantMutation) IdentifierType() (r string, exists bool) {
	v := m.identifier_type
	if v == nil {
		return
	}
	return *v, true
}

// OldIdentifierType returns the old "identifier_type" field's value of the InteractionParticipant entity.
// If the InteractionParticipant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionParticipantMutation) OldIdentifierType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIdentifierType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIdentifierType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIdentifierType: %w", err)
	}
	return oldValue.IdentifierType, nil
}

// ResetIdentifierType resets all changes to the "identifier_type" field.
func (m *InteractionParticipantMutation) ResetIdentifierType() {
	m.identifier_type = nil
}

// SetIdentifierValue sets the "identifier_value" field.
func (m *InteractionParticipantMutation) SetIdentifierValue(s string) {
	m.identifier_value = &s
}

// IdentifierValue returns the value of the "identifier_value" field in the mutation.
func (m *InteractionParticipantMutation) IdentifierValue() (r string, exists bool) {
	v := m.identifier_value
	if v == nil {
		return
	}
	return *v, true
}

// OldIdentifierValue returns the old "identifier_value" field's value of the InteractionParticipant entity.
// If the InteractionParticipant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionParticipantMutation) OldIdentifierValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIdentifierValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIdentifierValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIdentifierValue: %w", err)
	}
	return oldValue.IdentifierValue, nil
}

// ResetIdentifierValue resets all changes to the "identifier_value" field.
func (m *InteractionParticipantMutation) ResetIdentifierValue() {
	m.identifier_value = nil
}

// SetDisplayName sets the "display_name" field.
func (m *InteractionParticipantMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *InteractionParticipantMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the InteractionParticipant entity.
// If the InteractionParticipant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionParticipantMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ClearDisplayName clears the value of the "display_name" field.
func (m *InteractionParticipantMutation) ClearDisplayName() {
	m.display_name = nil
	m.clearedFields[interactionparticipant.FieldDisplayName] = struct{}{}
}

// DisplayNameCleared returns if the "display_name" field was cleared in this mutation.
func (m *InteractionParticipantMutation) DisplayNameCleared() bool {
	_, ok := m.clearedFields[interactionparticipant.FieldDisplayName]
	return ok
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *InteractionParticipantMutation) ResetDisplayName() {
	m.display_name = nil
	delete(m.clearedFields, interactionparticipant.FieldDisplayName)
}

// SetCreatedAt sets the "created_at" field.
func (m *InteractionParticipantMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InteractionParticipantMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the InteractionParticipant entity.
// If the InteractionParticipant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionParticipantMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InteractionParticipantMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearInteraction clears the "interaction" edge to the Interaction entity.
func (m *InteractionParticipantMutation) ClearInteraction() {
	m.clearedinteraction = true
	m.clearedFields[interactionparticipant.FieldInteractionID] = struct{}{}
}

// InteractionCleared reports if the "interaction" edge to the Interaction entity was cleared.
func (m *InteractionParticipantMutation) InteractionCleared() bool {
	return m.clearedinteraction
}

// InteractionIDs returns the "interaction" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// InteractionID instead. It exists only for internal usage by the builders.
func (m *InteractionParticipantMutation) InteractionIDs() (ids []string) {
	if id := m.interaction; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetInteraction resets all changes to the "interaction" edge.
func (m *InteractionParticipantMutation) ResetInteraction() {
	m.interaction = nil
	m.clearedinteraction = false
}

// Where appends a list predicates to the InteractionParticipantMutation builder.
func (m *InteractionParticipantMutation) Where(ps ...predicate.InteractionParticipant) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InteractionParticipantMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InteractionParticipantMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InteractionParticipant, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InteractionParticipantMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InteractionParticipantMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InteractionParticipant).
func (m *InteractionParticipantMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InteractionParticipantMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.interaction != nil {
		fields = append(fields, interactionparticipant.FieldInteractionID)
	}
	if m.entity_id != nil {
		fields = append(fields, interactionparticipant.FieldEntityID)
	}
	if m.role != nil {
		fields = append(fields, interactionparticipant.FieldRole)
	}
	if m.identifier_type != nil {
		fields = append(fields, interactionparticipant.FieldIdentifierType)
	}
	if m.identifier_value != nil {
		fields = append(fields, interactionparticipant.FieldIdentifierValue)
	}
	if m.display_name != nil {
		fields = append(fields, interactionparticipant.FieldDisplayName)
	}
	if m.created_at != nil {
		fields = append(fields, interactionparticipant.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InteractionParticipantMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case interactionparticipant.FieldInteractionID:
		return m.InteractionID()
	case interactionparticipant.FieldEntityID:
		return m.EntityID()
	case interactionparticipant.FieldRole:
		return m.Role()
	case interactionparticipant.FieldIdentifierType:
		return m.IdentifierType()
	case interactionparticipant.FieldIdentifierValue:
		return m.IdentifierValue()
	case interactionparticipant.FieldDisplayName:
		return m.DisplayName()
	case interactionparticipant.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InteractionParticipantMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case interactionparticipant.FieldInteractionID:
		return m.OldInteractionID(ctx)
	case interactionparticipant.FieldEntityID:
		return m.OldEntityID(ctx)
	case interactionparticipant.FieldRole:
		return m.OldRole(ctx)
	case interactionparticipant.FieldIdentifierType:
		return m.OldIdentifierType(ctx)
	case interactionparticipant.FieldIdentifierValue:
		return m.OldIdentifierValue(ctx)
	case interactionparticipant.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case interactionparticipant.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown InteractionParticipant field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InteractionParticipantMutation) SetField(name string, value ent.Value) error {
	switch name {
	case interactionparticipant.FieldInteractionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInteractionID(v)
		return nil
	case interactionparticipant.FieldEntityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityID(v)
		return nil
	case interactionparticipant.FieldRole:
		v, ok := value.(interactionparticipant.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case interactionparticipant.FieldIdentifierType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIdentifierType(v)
		return nil
	case interactionparticipant.FieldIdentifierValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIdentifierValue(v)
		return nil
	case interactionparticipant.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case interactionparticipant.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown InteractionParticipant field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InteractionParticipantMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InteractionParticipantMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InteractionParticipantMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown InteractionParticipant numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InteractionParticipantMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(interactionparticipant.FieldEntityID) {
		fields = append(fields, interactionparticipant.FieldEntityID)
	}
	if m.FieldCleared(interactionparticipant.FieldDisplayName) {
		fields = append(fields, interactionparticipant.FieldDisplayName)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InteractionParticipantMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InteractionParticipantMutation) ClearField(name string) error {
	switch name {
	case interactionparticipant.FieldEntityID:
		m.ClearEntityID()
		return nil
	case interactionparticipant.FieldDisplayName:
		m.ClearDisplayName()
		return nil
	}
	return fmt.Errorf("unknown InteractionParticipant nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InteractionParticipantMutation) ResetField(name string) error {
	switch name {
	case interactionparticipant.FieldInteractionID:
		m.ResetInteractionID()
		return nil
	case interactionparticipant.FieldEntityID:
		m.ResetEntityID()
		return nil
	case interactionparticipant.FieldRole:
		m.ResetRole()
		return nil
	case interactionparticipant.FieldIdentifierType:
		m.ResetIdentifierType()
		return nil
	case interactionparticipant.FieldIdentifierValue:
		m.ResetIdentifierValue()
		return nil
	case interactionparticipant.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case interactionparticipant.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown InteractionParticipant field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InteractionParticipantMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.interaction != nil {
		edges = append(edges, interactionparticipant.EdgeInteraction)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InteractionParticipantMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case interactionparticipant.EdgeInteraction:
		if id := m.interaction; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InteractionParticipantMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InteractionParticipantMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InteractionParticipantMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedinteraction {
		edges = append(edges, interactionparticipant.EdgeInteraction)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InteractionParticipantMutation) EdgeCleared(name string) bool {
	switch name {
	case interactionparticipant.EdgeInteraction:
		return m.clearedinteraction
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InteractionParticipantMutation) ClearEdge(name string) error {
	switch name {
	case interactionparticipant.EdgeInteraction:
		m.ClearInteraction()
		return nil
	}
	return fmt.Errorf("unknown InteractionParticipant unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InteractionParticipantMutation) ResetEdge(name string) error {
	switch name {
	case interactionparticipant.EdgeInteraction:
		m.ResetInteraction()
		return nil
	}
	return fmt.Errorf("unknown InteractionParticipant edge %s", name)
}

// MessageMutation represents an operation that mutates the Message nodes in the graph.
type MessageMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	sender_entity_id        *string
	recipient_entity_id     *string
	sender_identifier_type  *string
	sender_identifier_value *string
	content                 *string
	is_outgoing             *bool
	timestamp               *time.Time
	source_message_id       *string
	reply_to_message_id     *string
	media_type              *string
	media_url               *string
	chat_type               *string
	topic_id                *string
	extraction_status       *message.ExtractionStatus
	embedding               *pgvector.Vector
	created_at              *time.Time
	clearedFields           map[string]struct{}
	interaction             *string
	clearedinteraction      bool
	segments                map[string]struct{}
	removedsegments         map[string]struct{}
	clearedsegments         bool
	done                    bool
	oldValue                func(context.Context) (*Message, error)
	predicates              []predicate.Message
}

var _ ent.Mutation = (*MessageMutation)(nil)

// messageOption allows management of the mutation configuration using functional options.
type messageOption func(*MessageMutation)

// newMessageMutation creates new mutation for the Message entity.
func newMessageMutation(c config, op Op, opts ...messageOption) *MessageMutation {
	m := &MessageMutation{
		config:        c,
		op:            op,
		typ:           TypeMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMessageID sets the ID field of the mutation.
func withMessageID(id string) messageOption {
	return func(m *MessageMutation) {
		var (
			err   error
			once  sync.Once
			value *Message
		)
		m.oldValue = func(ctx context.Context) (*Message, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Message.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMessage sets the old Message of the mutation.
func withMessage(node *Message) messageOption {
	return func(m *MessageMutation) {
		m.oldValue = func(context.Context) (*Message, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Message entities.
func (m *MessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Message.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetInteractionID sets the "interaction_id" field.
func (m *MessageMutation) SetInteractionID(s string) {
	m.interaction = &s
}

// InteractionID returns the value of the "interaction_id" field in the mutation.
func (m *MessageMutation) InteractionID() (r string, exists bool) {
	v := m.interaction
	if v == nil {
		return
	}
	return *v, true
}

// OldInteractionID returns the old "interaction_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldInteractionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInteractionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInteractionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInteractionID: %w", err)
	}
	return oldValue.InteractionID, nil
}

// ResetInteractionID resets all changes to the "interaction_id" field.
func (m *MessageMutation) ResetInteractionID() {
	m.interaction = nil
}

// SetSenderEntityID sets the "sender_entity_id" field.
func (m *MessageMutation) SetSenderEntityID(s string) {
	m.sender_entity_id = &s
}

// SenderEntityID returns the value of the "sender_entity_id" field in the mutation.
func (m *MessageMutation) SenderEntityID() (r string, exists bool) {
	v := m.sender_entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSenderEntityID returns the old "sender_entity_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldSenderEntityID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSenderEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSenderEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSenderEntityID: %w", err)
	}
	return oldValue.SenderEntityID, nil
}

// ClearSenderEntityID clears the value of the "sender_entity_id" field.
func (m *MessageMutation) ClearSenderEntityID() {
	m.sender_entity_id = nil
	m.clearedFields[message.FieldSenderEntityID] = struct{}{}
}

// SenderEntityIDCleared returns if the "sender_entity_id" field was cleared in this mutation.
func (m *MessageMutation) SenderEntityIDCleared() bool {
	_, ok := m.clearedFields[message.FieldSenderEntityID]
	return ok
}

// ResetSenderEntityID resets all changes to the "sender_entity_id" field.
func (m *MessageMutation) ResetSenderEntityID() {
	m.sender_entity_id = nil
	delete(m.clearedFields, message.FieldSenderEntityID)
}

// SetRecipientEntityID sets the "recipient_entity_id" field.
func (m *MessageMutation) SetRecipientEntityID(s string) {
	m.recipient_entity_id = &s
}

// RecipientEntityID returns the value of the "recipient_entity_id" field in the mutation.
func (m *MessageMutation) RecipientEntityID() (r string, exists bool) {
	v := m.recipient_entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRecipientEntityID returns the old "recipient_entity_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldRecipientEntityID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecipientEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecipientEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecipientEntityID: %w", err)
	}
	return oldValue.RecipientEntityID, nil
}

// ClearRecipientEntityID clears the value of the "recipient_entity_id" field.
func (m *MessageMutation) ClearRecipientEntityID() {
	m.recipient_entity_id = nil
	m.clearedFields[message.FieldRecipientEntityID] = struct{}{}
}

// RecipientEntityIDCleared returns if the "recipient_entity_id" field was cleared in this mutation.
func (m *MessageMutation) RecipientEntityIDCleared() bool {
	_, ok := m.clearedFields[message.FieldRecipientEntityID]
	return ok
}

// ResetRecipientEntityID resets all changes to the "recipient_entity_id" field.
func (m *MessageMutation) ResetRecipientEntityID() {
	m.recipient_entity_id = nil
	delete(m.clearedFields, message.FieldRecipientEntityID)
}

// SetSenderIdentifierType sets the "sender_identifier_type" field.
func (m *MessageMutation) SetSenderIdentifierType(s string) {
	m.sender_identifier_type = &s
}

// SenderIdentifierType returns the value of the "sender_identifier_type" field in the mutation.
func (m *MessageMutation) SenderIdentifierType() (r string, exists bool) {
	v := m.sender_identifier_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSenderIdentifierType returns the old "sender_identifier_type" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldSenderIdentifierType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSenderIdentifierType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSenderIdentifierType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSenderIdentifierType: %w", err)
	}
	return oldValue.SenderIdentifierType, nil
}

// ResetSenderIdentifierType resets all changes to the "sender_identifier_type" field.
func (m *MessageMutation) ResetSenderIdentifierType() {
	m.sender_identifier_type = nil
}

// SetSenderIdentifierValue sets the "sender_identifier_value" field.
func (m *MessageMutation) SetSenderIdentifierValue(s string) {
	m.sender_identifier_value = &s
}

// SenderIdentifierValue returns the value of the "sender_identifier_value" field in the mutation.
func (m *MessageMutation) SenderIdentifierValue() (r string, exists bool) {
	v := m.sender_identifier_value
	if v == nil {
		return
	}
	return *v, true
}

// OldSenderIdentifierValue returns the old "sender_identifier_value" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldSenderIdentifierValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSenderIdentifierValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSenderIdentifierValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSenderIdentifierValue: %w", err)
	}
	return oldValue.SenderIdentifierValue, nil
}

// ResetSenderIdentifierValue resets all changes to the "sender_identifier_value" field.
func (m *MessageMutation) ResetSenderIdentifierValue() {
	m.sender_identifier_value = nil
}

// SetContent sets the "content" field.
func (m *MessageMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *MessageMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *MessageMutation) ResetContent() {
	m.content = nil
}

// SetIsOutgoing sets the "is_outgoing" field.
func (m *MessageMutation) SetIsOutgoing(b bool) {
	m.is_outgoing = &b
}

// IsOutgoing returns the value of the "is_outgoing" field in the mutation.
func (m *MessageMutation) IsOutgoing() (r bool, exists bool) {
	v := m.is_outgoing
	if v == nil {
		return
	}
	return *v, true
}

// OldIsOutgoing returns the old "is_outgoing" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldIsOutgoing(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsOutgoing is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsOutgoing requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsOutgoing: %w", err)
	}
	return oldValue.IsOutgoing, nil
}

// ResetIsOutgoing resets all changes to the "is_outgoing" field.
func (m *MessageMutation) ResetIsOutgoing() {
	m.is_outgoing = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *MessageMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *MessageMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *MessageMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSourceMessageID sets the "source_message_id" field.
func (m *MessageMutation) SetSourceMessageID(s string) {
	m.source_message_id = &s
}

// SourceMessageID returns the value of the "source_message_id" field in the mutation.
func (m *MessageMutation) SourceMessageID() (r string, exists bool) {
	v := m.source_message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceMessageID returns the old "source_message_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldSourceMessageID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceMessageID: %w", err)
	}
	return oldValue.SourceMessageID, nil
}

// ClearSourceMessageID clears the value of the "source_message_id" field.
func (m *MessageMutation) ClearSourceMessageID() {
	m.source_message_id = nil
	m.clearedFields[message.FieldSourceMessageID] = struct{}{}
}

// SourceMessageIDCleared returns if the "source_message_id" field was cleared in this mutation.
func (m *MessageMutation) SourceMessageIDCleared() bool {
	_, ok := m.clearedFields[message.FieldSourceMessageID]
	return ok
}

// ResetSourceMessageID resets all changes to the "source_message_id" field.
func (m *MessageMutation) ResetSourceMessageID() {
	m.source_message_id = nil
	delete(m.clearedFields, message.FieldSourceMessageID)
}

// SetReplyToMessageID sets the "reply_to_message_id" field.
func (m *MessageMutation) SetReplyToMessageID(s string) {
	m.reply_to_message_id = &s
}

// ReplyToMessageID returns the value of the "reply_to_message_id" field in the mutation.
func (m *MessageMutation) ReplyToMessageID() (r string, exists bool) {
	v := m.reply_to_message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldReplyToMessageID returns the old "reply_to_message_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldReplyToMessageID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReplyToMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReplyToMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReplyToMessageID: %w", err)
	}
	return oldValue.ReplyToMessageID, nil
}

// ClearReplyToMessageID clears the value of the "reply_to_message_id" field.
func (m *MessageMutation) ClearReplyToMessageID() {
	m.reply_to_message_id = nil
	m.clearedFields[message.FieldReplyToMessageID] = struct{}{}
}

// ReplyToMessageIDCleared returns if the "reply_to_message_id" field was cleared in this mutation.
func (m *MessageMutation) ReplyToMessageIDCleared() bool {
	_, ok := m.clearedFields[message.FieldReplyToMessageID]
	return ok
}

// ResetReplyToMessageID resets all changes to the "reply_to_message_id" field.
func (m *MessageMutation) ResetReplyToMessageID() {
	m.reply_to_message_id = nil
	delete(m.clearedFields, message.FieldReplyToMessageID)
}

// SetMediaType sets the "media_type" field.
func (m *MessageMutation) SetMediaType(s string) {
	m.media_type = &s
}

// MediaType returns the value of the "media_type" field in the mutation.
func (m *MessageMutation) MediaType() (r string, exists bool) {
	v := m.media_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMediaType returns the old "media_type" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldMediaType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMediaType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMediaType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMediaType: %w", err)
	}
	return oldValue.MediaType, nil
}

// ClearMediaType clears the value of the "media_type" field.
func (m *MessageMutation) ClearMediaType() {
	m.media_type = nil
	m.clearedFields[message.FieldMediaType] = struct{}{}
}

// MediaTypeCleared returns if the "media_type" field was cleared in this mutation.
func (m *MessageMutation) MediaTypeCleared() bool {
	_, ok := m.clearedFields[message.FieldMediaType]
	return ok
}

// ResetMediaType resets all changes to the "media_type" field.
func (m *MessageMutation) ResetMediaType() {
	m.media_type = nil
	delete(m.clearedFields, message.FieldMediaType)
}

// SetMediaURL sets the "media_url" field.
func (m *MessageMutation) SetMediaURL(s string) {
	m.media_url = &s
}

// MediaURL returns the value of the "media_url" field in the mutation.
func (m *MessageMutation) MediaURL() (r string, exists bool) {
	v := m.media_url
	if v == nil {
		return
	}
	return *v, true
}

// OldMediaURL returns the old "media_url" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldMediaURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMediaURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMediaURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMediaURL: %w", err)
	}
	return oldValue.MediaURL, nil
}

// ClearMediaURL clears the value of the "media_url" field.
func (m *MessageMutation) ClearMediaURL() {
	m.media_url = nil
	m.clearedFields[message.FieldMediaURL] = struct{}{}
}

// MediaURLCleared returns if the "media_url" field was cleared in this mutation.
func (m *MessageMutation) MediaURLCleared() bool {
	_, ok := m.clearedFields[message.FieldMediaURL]
	return ok
}

// ResetMediaURL resets all changes to the "media_url" field.
func (m *MessageMutation) ResetMediaURL() {
	m.media_url = nil
	delete(m.clearedFields, message.FieldMediaURL)
}

// SetChatType sets the "chat_type" field.
func (m *MessageMutation) SetChatType(s string) {
	m.chat_type = &s
}

// ChatType returns the value of the "chat_type" field in the mutation.
func (m *MessageMutation) ChatType() (r string, exists bool) {
	v := m.chat_type
	if v == nil {
		return
	}
	return *v, true
}

// OldChatType returns the old "chat_type" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldChatType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChatType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChatType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChatType: %w", err)
	}
	return oldValue.ChatType, nil
}

// ClearChatType clears the value of the "chat_type" field.
func (m *MessageMutation) ClearChatType() {
	m.chat_type = nil
	m.clearedFields[message.FieldChatType] = struct{}{}
}

// ChatTypeCleared returns if the "chat_type" field was cleared in this mutation.
func (m *MessageMutation) ChatTypeCleared() bool {
	_, ok := m.clearedFields[message.FieldChatType]
	return ok
}

// ResetChatType resets all changes to the "chat_type" field.
func (m *MessageMutation) ResetChatType() {
	m.chat_type = nil
	delete(m.clearedFields, message.FieldChatType)
}

// SetTopicID sets the "topic_id" field.
func (m *MessageMutation) SetTopicID(s string) {
	m.topic_id = &s
}

// TopicID returns the value of the "topic_id" field in the mutation.
func (m *MessageMutation) TopicID() (r string, exists bool) {
	v := m.topic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicID returns the old "topic_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldTopicID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicID: %w", err)
	}
	return oldValue.TopicID, nil
}

// ClearTopicID clears the value of the "topic_id" field.
func (m *MessageMutation) ClearTopicID() {
	m.topic_id = nil
	m.clearedFields[message.FieldTopicID] = struct{}{}
}

// TopicIDCleared returns if the "topic_id" field was cleared in this mutation.
func (m *MessageMutation) TopicIDCleared() bool {
	_, ok := m.clearedFields[message.FieldTopicID]
	return ok
}

// ResetTopicID resets all changes to the "topic_id" field.
func (m *MessageMutation) ResetTopicID() {
	m.topic_id = nil
	delete(m.clearedFields, message.FieldTopicID)
}

// SetExtractionStatus sets the "extraction_status" field.
func (m *MessageMutation) SetExtractionStatus(ms message.ExtractionStatus) {
	m.extraction_status = &ms
}

// ExtractionStatus returns the value of the "extraction_status" field in the mutation.
func (m *MessageMutation) ExtractionStatus() (r message.ExtractionStatus, exists bool) {
	v := m.extraction_status
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionStatus returns the old "extraction_status" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldExtractionStatus(ctx context.Context) (v message.ExtractionStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionStatus: %w", err)
	}
	return oldValue.ExtractionStatus, nil
}

// ResetExtractionStatus resets all changes to the "extraction_status" field.
func (m *MessageMutation) ResetExtractionStatus() {
	m.extraction_status = nil
}

// SetEmbedding sets the "embedding" field.
func (m *MessageMutation) SetEmbedding(pg pgvector.Vector) {
	m.embedding = &pg
}

// Embedding returns the value of the "embedding" field in the mutation.
func (m *MessageMutation) Embedding() (r pgvector.Vector, exists bool) {
	v := m.embedding
	if v == nil {
		return
	}
	return *v, true
}

// OldEmbedding returns the old "embedding" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldEmbedding(ctx context.Context) (v pgvector.Vector, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmbedding is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmbedding requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmbedding: %w", err)
	}
	return oldValue.Embedding, nil
}

// ClearEmbedding clears the value of the "embedding" field.
func (m *MessageMutation) ClearEmbedding() {
	m.embedding = nil
	m.clearedFields[message.FieldEmbedding] = struct{}{}
}

// EmbeddingCleared returns if the "embedding" field was cleared in this mutation.
func (m *MessageMutation) EmbeddingCleared() bool {
	_, ok := m.clearedFields[message.FieldEmbedding]
	return ok
}

// ResetEmbedding resets all changes to the "embedding" field.
func (m *MessageMutation) ResetEmbedding() {
	m.embedding = nil
	delete(m.clearedFields, message.FieldEmbedding)
}

// SetCreatedAt sets the "created_at" field.
func (m *MessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearInteraction clears the "interaction" edge to the Interaction entity.
func (m *MessageMutation) ClearInteraction() {
	m.clearedinteraction = true
	m.clearedFields[message.FieldInteractionID] = struct{}{}
}

// InteractionCleared reports if the "interaction" edge to the Interaction entity was cleared.
func (m *MessageMutation) InteractionCleared() bool {
	return m.clearedinteraction
}

// InteractionIDs returns the "interaction" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// InteractionID instead. It exists only for internal usage by the builders.
func (m *MessageMutation) InteractionIDs() (ids []string) {
	if id := m.interaction; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetInteraction resets all changes to the "interaction" edge.
func (m *MessageMutation) ResetInteraction() {
	m.interaction = nil
	m.clearedinteraction = false
}

// AddSegmentIDs adds the "segments" edge to the TopicalSegment entity by ids.
func (m *MessageMutation) AddSegmentIDs(ids ...string) {
	if m.segments == nil {
		m.segments = make(map[string]struct{})
	}
	for i := range ids {
		m.segments[ids[i]] = struct{}{}
	}
}

// ClearSegments clears the "segments" edge to the TopicalSegment entity.
func (m *MessageMutation) ClearSegments() {
	m.clearedsegments = true
}

// SegmentsCleared reports if the "segments" edge to the TopicalSegment entity was cleared.
func (m *MessageMutation) SegmentsCleared() bool {
	return m.clearedsegments
}

// RemoveSegmentIDs removes the "segments" edge to the TopicalSegment entity by IDs.
func (m *MessageMutation) RemoveSegmentIDs(ids ...string) {
	if m.removedsegments == nil {
		m.removedsegments = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.segments, ids[i])
		m.removedsegments[ids[i]] = struct{}{}
	}
}

// RemovedSegments returns the removed IDs of the "segments" edge to the TopicalSegment entity.
func (m *MessageMutation) RemovedSegmentsIDs() (ids []string) {
	for id := range m.removedsegments {
		ids = append(ids, id)
	}
	return
}

// SegmentsIDs returns the "segments" edge IDs in the mutation.
func (m *MessageMutation) SegmentsIDs() (ids []string) {
	for id := range m.segments {
		ids = append(ids, id)
	}
	return
}

// ResetSegments resets all changes to the "segments" edge.
func (m *MessageMutation) ResetSegments() {
	m.segments = nil
	m.clearedsegments = false
	m.removedsegments = nil
}

// Where appends a list predicates to the MessageMutation builder.
func (m *MessageMutation) Where(ps ...predicate.Message) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Message, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Message).
func (m *MessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MessageMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.interaction != nil {
		fields = append(fields, message.FieldInteractionID)
	}
	if m.sender_entity_id != nil {
		fields = append(fields, message.FieldSenderEntityID)
	}
	if m.recipient_entity_id != nil {
		fields = append(fields, message.FieldRecipientEntityID)
	}
	if m.sender_identifier_type != nil {
		fields = append(fields, message.FieldSenderIdentifierType)
	}
	if m.sender_identifier_value != nil {
		fields = append(fields, message.FieldSenderIdentifierValue)
	}
	if m.content != nil {
		fields = append(fields, message.FieldContent)
	}
	if m.is_outgoing != nil {
		fields = append(fields, message.FieldIsOutgoing)
	}
	if m.timestamp != nil {
		fields = append(fields, message.FieldTimestamp)
	}
	if m.source_message_id != nil {
		fields = append(fields, message.FieldSourceMessageID)
	}
	if m.reply_to_message_id != nil {
		fields = append(fields, message.FieldReplyToMessageID)
	}
	if m.media_type != nil {
		fields = append(fields, message.FieldMediaType)
	}
	if m.media_url != nil {
		fields = append(fields, message.FieldMediaURL)
	}
	if m.chat_type != nil {
		fields = append(fields, message.FieldChatType)
	}
	if m.topic_id != nil {
		fields = append(fields, message.FieldTopicID)
	}
	if m.extraction_status != nil {
		fields = append(fields, message.FieldExtractionStatus)
	}
	if m.embedding != nil {
		fields = append(fields, message.FieldEmbedding)
	}
	if m.created_at != nil {
		fields = append(fields, message.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case message.FieldInteractionID:
		return m.InteractionID()
	case message.FieldSenderEntityID:
		return m.SenderEntityID()
	case message.FieldRecipientEntityID:
		return m.RecipientEntityID()
	case message.FieldSenderIdentifierType:
		return m.SenderIdentifierType()
	case message.FieldSenderIdentifierValue:
		return m.SenderIdentifierValue()
	case message.FieldContent:
		return m.Content()
	case message.FieldIsOutgoing:
		return m.IsOutgoing()
	case message.FieldTimestamp:
		return m.Timestamp()
	case message.FieldSourceMessageID:
		return m.SourceMessageID()
	case message.FieldReplyToMessageID:
		return m.ReplyToMessageID()
	case message.FieldMediaType:
		return m.MediaType()
	case message.FieldMediaURL:
		return m.MediaURL()
	case message.FieldChatType:
		return m.ChatType()
	case message.FieldTopicID:
		return m.TopicID()
	case message.FieldExtractionStatus:
		return m.ExtractionStatus()
	case message.FieldEmbedding:
		return m.Embedding()
	case message.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case message.FieldInteractionID:
		return m.OldInteractionID(ctx)
	case message.FieldSenderEntityID:
		return m.OldSenderEntityID(ctx)
	case message.FieldRecipientEntityID:
		return m.OldRecipientEntityID(ctx)
	case message.FieldSenderIdentifierType:
		return m.OldSenderIdentifierType(ctx)
	case message.FieldSenderIdentifierValue:
		return m.OldSenderIdentifierValue(ctx)
	case message.FieldContent:
		return m.OldContent(ctx)
	case message.FieldIsOutgoing:
		return m.OldIsOutgoing(ctx)
	case message.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case message.FieldSourceMessageID:
		return m.OldSourceMessageID(ctx)
	case message.FieldReplyToMessageID:
		return m.OldReplyToMessageID(ctx)
	case message.FieldMediaType:
		return m.OldMediaType(ctx)
	case message.FieldMediaURL:
		return m.OldMediaURL(ctx)
	case message.FieldChatType:
		return m.OldChatType(ctx)
	case message.FieldTopicID:
		return m.OldTopicID(ctx)
	case message.FieldExtractionStatus:
		return m.OldExtractionStatus(ctx)
	case message.FieldEmbedding:
		return m.OldEmbedding(ctx)
	case message.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Message field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case message.FieldInteractionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInteractionID(v)
		return nil
	case message.FieldSenderEntityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSenderEntityID(v)
		return nil
	case message.FieldRecipientEntityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecipientEntityID(v)
		return nil
	case message.FieldSenderIdentifierType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSenderIdentifierType(v)
		return nil
	case message.FieldSenderIdentifierValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSenderIdentifierValue(v)
		return nil
	case message.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case message.FieldIsOutgoing:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsOutgoing(v)
		return nil
	case message.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case message.FieldSourceMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceMessageID(v)
		return nil
	case message.FieldReplyToMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReplyToMessageID(v)
		return nil
	case message.FieldMediaType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMediaType(v)
		return nil
	case message.FieldMediaURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMediaURL(v)
		return nil
	case message.FieldChatType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChatType(v)
		return nil
	case message.FieldTopicID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicID(v)
		return nil
	case message.FieldExtractionStatus:
		v, ok := value.(message.ExtractionStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionStatus(v)
		return nil
	case message.FieldEmbedding:
		v, ok := value.(pgvector.Vector)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmbedding(v)
		return nil
	case message.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MessageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MessageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Message numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(message.FieldSenderEntityID) {
		fields = append(fields, message.FieldSenderEntityID)
	}
	if m.FieldCleared(message.FieldRecipientEntityID) {
		fields = append(fields, message.FieldRecipientEntityID)
	}
	if m.FieldCleared(message.FieldSourceMessageID) {
		fields = append(fields, message.FieldSourceMessageID)
	}
	if m.FieldCleared(message.FieldReplyToMessageID) {
		fields = append(fields, message.FieldReplyToMessageID)
	}
	if m.FieldCleared(message.FieldMediaType) {
		fields = append(fields, message.FieldMediaType)
	}
	if m.FieldCleared(message.FieldMediaURL) {
		fields = append(fields, message.FieldMediaURL)
	}
	if m.FieldCleared(message.FieldChatType) {
		fields = append(fields, message.FieldChatType)
	}
	if m.FieldCleared(message.FieldTopicID) {
		fields = append(fields, message.FieldTopicID)
	}
	if m.FieldCleared(message.FieldEmbedding) {
		fields = append(fields, message.FieldEmbedding)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MessageMutation) ClearField(name string) error {
	switch name {
	case message.FieldSenderEntityID:
		m.ClearSenderEntityID()
		return nil
	case message.FieldRecipientEntityID:
		m.ClearRecipientEntityID()
		return nil
	case message.FieldSourceMessageID:
		m.ClearSourceMessageID()
		return nil
	case message.FieldReplyToMessageID:
		m.ClearReplyToMessageID()
		return nil
	case message.FieldMediaType:
		m.ClearMediaType()
		return nil
	case message.FieldMediaURL:
		m.ClearMediaURL()
		return nil
	case message.FieldChatType:
		m.ClearChatType()
		return nil
	case message.FieldTopicID:
		m.ClearTopicID()
		return nil
	case message.FieldEmbedding:
		m.ClearEmbedding()
		return nil
	}
	return fmt.Errorf("unknown Message nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MessageMutation) ResetField(name string) error {
	switch name {
	case message.FieldInteractionID:
		m.ResetInteractionID()
		return nil
	case message.FieldSenderEntityID:
		m.ResetSenderEntityID()
		return nil
	case message.FieldRecipientEntityID:
		m.ResetRecipientEntityID()
		return nil
	case message.FieldSenderIdentifierType:
		m.ResetSenderIdentifierType()
		return nil
	case message.FieldSenderIdentifierValue:
		m.ResetSenderIdentifierValue()
		return nil
	case message.FieldContent:
		m.ResetContent()
		return nil
	case message.FieldIsOutgoing:
		m.ResetIsOutgoing()
		return nil
	case message.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case message.FieldSourceMessageID:
		m.ResetSourceMessageID()
		return nil
	case message.FieldReplyToMessageID:
		m.ResetReplyToMessageID()
		return nil
	case message.FieldMediaType:
		m.ResetMediaType()
		return nil
	case message.FieldMediaURL:
		m.ResetMediaURL()
		return nil
	case message.FieldChatType:
		m.ResetChatType()
		return nil
	case message.FieldTopicID:
		m.ResetTopicID()
		return nil
	case message.FieldExtractionStatus:
		m.ResetExtractionStatus()
		return nil
	case message.FieldEmbedding:
		m.ResetEmbedding()
		return nil
	case message.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.interaction != nil {
		edges = append(edges, message.EdgeInteraction)
	}
	if m.segments != nil {
		edges = append(edges, message.EdgeSegments)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case message.EdgeInteraction:
		if id := m.interaction; id != nil {
			return []ent.Value{*id}
		}
	case message.EdgeSegments:
		ids := make([]ent.Value, 0, len(m.segments))
		for id := range m.segments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedsegments != nil {
		edges = append(edges, message.EdgeSegments)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MessageMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case message.EdgeSegments:
		ids := make([]ent.Value, 0, len(m.removedsegments))
		for id := range m.removedsegments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedinteraction {
		edges = append(edges, message.EdgeInteraction)
	}
	if m.clearedsegments {
		edges = append(edges, message.EdgeSegments)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MessageMutation) EdgeCleared(name string) bool {
	switch name {
	case message.EdgeInteraction:
		return m.clearedinteraction
	case message.EdgeSegments:
		return m.clearedsegments
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MessageMutation) ClearEdge(name string) error {
	switch name {
	case message.EdgeInteraction:
		m.ClearInteraction()
		return nil
	}
	return fmt.Errorf("unknown Message unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MessageMutation) ResetEdge(name string) error {
	switch name {
	case message.EdgeInteraction:
		m.ResetInteraction()
		return nil
	case message.EdgeSegments:
		m.ResetSegments()
		return nil
	}
	return fmt.Errorf("unknown Message edge %s", name)
}

// PendingApprovalMutation represents an operation that mutates the PendingApproval nodes in the graph.
type PendingApprovalMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	item_type             *pendingapproval.ItemType
	target_id             *string
	batch_id              *string
	status                *pendingapproval.Status
	confidence            *float64
	addconfidence         *float64
	source_quote          *string
	source_interaction_id *string
	source_entity_id      *string
	context               *string
	created_at            *time.Time
	reviewed_at           *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*PendingApproval, error)
	predicates            []predicate.PendingApproval
}

var _ ent.Mutation = (*PendingApprovalMutation)(nil)

// pendingapprovalOption allows management of the mutation configuration using functional options.
type pendingapprovalOption func(*PendingApprovalMutation)

// newPendingApprovalMutation creates new mutation for the PendingApproval entity.
func newPendingApprovalMutation(c config, op Op, opts ...pendingapprovalOption) *PendingApprovalMutation {
	m := &PendingApprovalMutation{
		config:        c,
		op:            op,
		typ:           TypePendingApproval,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPendingApprovalID sets the ID field of the mutation.
func withPendingApprovalID(id string) pendingapprovalOption {
	return func(m *PendingApprovalMutation) {
		var (
			err   error
			once  sync.Once
			value *PendingApproval
		)
		m.oldValue = func(ctx context.Context) (*PendingApproval, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PendingApproval.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPendingApproval sets the old PendingApproval of the mutation.
func withPendingApproval(node *PendingApproval) pendingapprovalOption {
	return func(m *PendingApprovalMutation) {
		m.oldValue = func(context.Context) (*PendingApproval, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PendingApprovalMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PendingApprovalMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PendingApproval entities.
func (m *PendingApprovalMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PendingApprovalMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PendingApprovalMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PendingApproval.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetItemType sets the "item_type" field.
func (m *PendingApprovalMutation) SetItemType(pt pendingapproval.ItemType) {
	m.item_type = &pt
}

// ItemType returns the value of the "item_type" field in the mutation.
func (m *PendingApprovalMutation) ItemType() (r pendingapproval.ItemType, exists bool) {
	v := m.item_type
	if v == nil {
		return
	}
	return *v, true
}

// OldItemType returns the old "item_type" field's value of the PendingApproval entity.
// If the PendingApproval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingApprovalMutation) OldItemType(ctx context.Context) (v pendingapproval.ItemType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemType: %w", err)
	}
	return oldValue.ItemType, nil
}

// ResetItemType resets all changes to the "item_type" field.
func (m *PendingApprovalMutation) ResetItemType() {
	m.item_type = nil
}

// SetTargetID sets the "target_id" field.
func (m *PendingApprovalMutation) SetTargetID(s string) {
	m.target_id = &s
}

// TargetID returns the value of the "target_id" field in the mutation.
func (m *PendingApprovalMutation) TargetID() (r string, exists bool) {
	v := m.target_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetID returns the old "target_id" field's value of the PendingApproval entity.
// If the PendingApproval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingApprovalMutation) OldTargetID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetID: %w", err)
	}
	return oldValue.TargetID, nil
}

// ResetTargetID resets all changes to the "target_id" field.
func (m *PendingApprovalMutation) ResetTargetID() {
	m.target_id = nil
}

// SetBatchID sets the "batch_id" field.
func (m *PendingApprovalMutation) SetBatchID(s string) {
	m.batch_id = &s
}

// BatchID returns the value of the "batch_id" field in the mutation.
func (m *PendingApprovalMutation) BatchID() (r string, exists bool) {
	v := m.batch_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBatchID returns the old "batch_id" field's value of the PendingApproval entity.
// If the PendingApproval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingApprovalMutation) OldBatchID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBatchID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBatchID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBatchID: %w", err)
	}
	return oldValue.BatchID, nil
}

// ResetBatchID resets all changes to the "batch_id" field.
func (m *PendingApprovalMutation) ResetBatchID() {
	m.batch_id = nil
}

// SetStatus sets the "status" field.
func (m *PendingApprovalMutation) SetStatus(pe pendingapproval.Status) {
	m.status = &pe
}

// Status returns the value of the "status" field in the mutation.
func (m *PendingApprovalMutation) Status() (r pendingapproval.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PendingApproval entity.
// If the PendingApproval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingApprovalMutation) OldStatus(ctx context.Context) (v pendingapproval.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PendingApprovalMutation) ResetStatus() {
	m.status = nil
}

// SetConfidence sets the "confidence" field.
func (m *PendingApprovalMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *PendingApprovalMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the PendingApproval entity.
// If the PendingApproval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingApprovalMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *PendingApprovalMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *PendingApprovalMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *PendingApprovalMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetSourceQuote sets the "source_quote" field.
func (m *PendingApprovalMutation) SetSourceQuote(s string) {
	m.source_quote = &s
}

// SourceQuote returns the value of the "source_quote" field in the mutation.
func (m *PendingApprovalMutation) SourceQuote() (r string, exists bool) {
	v := m.source_quote
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceQuote returns the old "source_quote" field's value of the PendingApproval entity.
// If the PendingApproval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingApprovalMutation) OldSourceQuote(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceQuote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceQuote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceQuote: %w", err)
	}
	return oldValue.SourceQuote, nil
}

// ClearSourceQuote clears the value of the "source_quote" field.
func (m *PendingApprovalMutation) ClearSourceQuote() {
	m.source_quote = nil
	m.clearedFields[pendingapproval.FieldSourceQuote] = struct{}{}
}

// SourceQuoteCleared returns if the "source_quote" field was cleared in this mutation.
func (m *PendingApprovalMutation) SourceQuoteCleared() bool {
	_, ok := m.clearedFields[pendingapproval.FieldSourceQuote]
	return ok
}

// ResetSourceQuote resets all changes to the "source_quote" field.
func (m *PendingApprovalMutation) ResetSourceQuote() {
	m.source_quote = nil
	delete(m.clearedFields, pendingapproval.FieldSourceQuote)
}

// SetSourceInteractionID sets the "source_interaction_id" field.
func (m *PendingApprovalMutation) SetSourceInteractionID(s string) {
	m.source_interaction_id = &s
}

// SourceInteractionID returns the value of the "source_interaction_id" field in the mutation.
func (m *PendingApprovalMutation) SourceInteractionID() (r string, exists bool) {
	v := m.source_interaction_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceInteractionID returns the old "source_interaction_id" field's value of the PendingApproval entity.
// If the PendingApproval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingApprovalMutation) OldSourceInteractionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceInteractionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceInteractionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceInteractionID: %w", err)
	}
	return oldValue.SourceInteractionID, nil
}

// ClearSourceInteractionID clears the value of the "source_interaction_id" field.
func (m *PendingApprovalMutation) ClearSourceInteractionID() {
	m.source_interaction_id = nil
	m.clearedFields[pendingapproval.FieldSourceInteractionID] = struct{}{}
}

// SourceInteractionIDCleared returns if the "source_interaction_id" field was cleared in this mutation.
func (m *PendingApprovalMutation) SourceInteractionIDCleared() bool {
	_, ok := m.clearedFields[pendingapproval.FieldSourceInteractionID]
	return ok
}

// ResetSourceInteractionID resets all changes to the "source_interaction_id" field.
func (m *PendingApprovalMutation) ResetSourceInteractionID() {
	m.source_interaction_id = nil
	delete(m.clearedFields, pendingapproval.FieldSourceInteractionID)
}

// SetSourceEntityID sets the "source_entity_id" field.
func (m *PendingApprovalMutation) SetSourceEntityID(s string) {
	m.source_entity_id = &s
}

// SourceEntityID returns the value of the "source_entity_id" field in the mutation.
func (m *PendingApprovalMutation) SourceEntityID() (r string, exists bool) {
	v := m.source_entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceEntityID returns the old "source_entity_id" field's value of the PendingApproval entity.
// If the PendingApproval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingApprovalMutation) OldSourceEntityID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceEntityID: %w", err)
	}
	return oldValue.SourceEntityID, nil
}

// ClearSourceEntityID clears the value of the "source_entity_id" field.
func (m *PendingApprovalMutation) ClearSourceEntityID() {
	m.source_entity_id = nil
	m.clearedFields[pendingapproval.FieldSourceEntityID] = struct{}{}
}

// SourceEntityIDCleared returns if the "source_entity_id" field was cleared in this mutation.
func (m *PendingApprovalMutation) SourceEntityIDCleared() bool {
	_, ok := m.clearedFields[pendingapproval.FieldSourceEntityID]
	return ok
}

// ResetSourceEntityID resets all changes to the "source_entity_id" field.
func (m *PendingApprovalMutation) ResetSourceEntityID() {
	m.source_entity_id = nil
	delete(m.clearedFields, pendingapproval.FieldSourceEntityID)
}

// SetContext sets the "context" field.
func (m *PendingApprovalMutation) SetContext(s string) {
	m.context = &s
}

// Context returns the value of the "context" field in the mutation.
func (m *PendingApprovalMutation) Context() (r string, exists bool) {
	v := m.context
	if v == nil {
		return
	}
	return *v, true
}

// OldContext returns the old "context" field's value of the PendingApproval entity.
// If the PendingApproval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingApprovalMutation) OldContext(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContext: %w", err)
	}
	return oldValue.Context, nil
}

// ClearContext clears the value of the "context" field.
func (m *PendingApprovalMutation) ClearContext() {
	m.context = nil
	m.clearedFields[pendingapproval.FieldContext] = struct{}{}
}

// ContextCleared returns if the "context" field was cleared in this mutation.
func (m *PendingApprovalMutation) ContextCleared() bool {
	_, ok := m.clearedFields[pendingapproval.FieldContext]
	return ok
}

// ResetContext resets all changes to the "context" field.
func (m *PendingApprovalMutation) ResetContext() {
	m.context = nil
	delete(m.clearedFields, pendingapproval.FieldContext)
}

// SetCreatedAt sets the "created_at" field.
func (m *PendingApprovalMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PendingApprovalMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PendingApproval entity.
// If the PendingApproval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingApprovalMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PendingApprovalMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetReviewedAt sets the "reviewed_at" field.
func (m *PendingApprovalMutation) SetReviewedAt(t time.Time) {
	m.reviewed_at = &t
}

// ReviewedAt returns the value of the "reviewed_at" field in the mutation.
func (m *PendingApprovalMutation) ReviewedAt() (r time.Time, exists bool) {
	v := m.reviewed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewedAt returns the old "reviewed_at" field's value of the PendingApproval entity.
// If the PendingApproval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingApprovalMutation) OldReviewedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewedAt: %w", err)
	}
	return oldValue.ReviewedAt, nil
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (m *PendingApprovalMutation) ClearReviewedAt() {
	m.reviewed_at = nil
	m.clearedFields[pendingapproval.FieldReviewedAt] = struct{}{}
}

// ReviewedAtCleared returns if the "reviewed_at" field was cleared in this mutation.
func (m *PendingApprovalMutation) ReviewedAtCleared() bool {
	_, ok := m.clearedFields[pendingapproval.FieldReviewedAt]
	return ok
}

// ResetReviewedAt resets all changes to the "reviewed_at" field.
func (m *PendingApprovalMutation) ResetReviewedAt() {
	m.reviewed_at = nil
	delete(m.clearedFields, pendingapproval.FieldReviewedAt)
}

// Where appends a list predicates to the PendingApprovalMutation builder.
func (m *PendingApprovalMutation) Where(ps ...predicate.PendingApproval) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PendingApprovalMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PendingApprovalMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PendingApproval, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PendingApprovalMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PendingApprovalMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PendingApproval).
func (m *PendingApprovalMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PendingApprovalMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.item_type != nil {
		fields = append(fields, pendingapproval.FieldItemType)
	}
	if m.target_id != nil {
		fields = append(fields, pendingapproval.FieldTargetID)
	}
	if m.batch_id != nil {
		fields = append(fields, pendingapproval.FieldBatchID)
	}
	if m.status != nil {
		fields = append(fields, pendingapproval.FieldStatus)
	}
	if m.confidence != nil {
		fields = append(fields, pendingapproval.FieldConfidence)
	}
	if m.source_quote != nil {
		fields = append(fields, pendingapproval.FieldSourceQuote)
	}
	if m.source_interaction_id != nil {
		fields = append(fields, pendingapproval.FieldSourceInteractionID)
	}
	if m.source_entity_id != nil {
		fields = append(fields, pendingapproval.FieldSourceEntityID)
	}
	if m.context != nil {
		fields = append(fields, pendingapproval.FieldContext)
	}
	if m.created_at != nil {
		fields = append(fields, pendingapproval.FieldCreatedAt)
	}
	if m.reviewed_at != nil {
		fields = append(fields, pendingapproval.FieldReviewedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PendingApprovalMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pendingapproval.FieldItemType:
		return m.ItemType()
	case pendingapproval.FieldTargetID:
		return m.TargetID()
	case pendingapproval.FieldBatchID:
		return m.BatchID()
	case pendingapproval.FieldStatus:
		return m.Status()
	case pendingapproval.FieldConfidence:
		return m.Confidence()
	case pendingapproval.FieldSourceQuote:
		return m.SourceQuote()
	case pendingapproval.FieldSourceInteractionID:
		return m.SourceInteractionID()
	case pendingapproval.FieldSourceEntityID:
		return m.SourceEntityID()
	case pendingapproval.FieldContext:
		return m.Context()
	case pendingapproval.FieldCreatedAt:
		return m.CreatedAt()
	case pendingapproval.FieldReviewedAt:
		return m.ReviewedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PendingApprovalMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pendingapproval.FieldItemType:
		return m.OldItemType(ctx)
	case pendingapproval.FieldTargetID:
		return m.OldTargetID(ctx)
	case pendingapproval.FieldBatchID:
		return m.OldBatchID(ctx)
	case pendingapproval.FieldStatus:
		return m.OldStatus(ctx)
	case pendingapproval.FieldConfidence:
		return m.OldConfidence(ctx)
	case pendingapproval.FieldSourceQuote:
		return m.OldSourceQuote(ctx)
	case pendingapproval.FieldSourceInteractionID:
		return m.OldSourceInteractionID(ctx)
	case pendingapproval.FieldSourceEntityID:
		return m.OldSourceEntityID(ctx)
	case pendingapproval.FieldContext:
		return m.OldContext(ctx)
	case pendingapproval.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case pendingapproval.FieldReviewedAt:
		return m.OldReviewedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PendingApproval field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PendingApprovalMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pendingapproval.FieldItemType:
		v, ok := value.(pendingapproval.ItemType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemType(v)
		return nil
	case pendingapproval.FieldTargetID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetID(v)
		return nil
	case pendingapproval.FieldBatchID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBatchID(v)
		return nil
	case pendingapproval.FieldStatus:
		v, ok := value.(pendingapproval.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case pendingapproval.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case pendingapproval.FieldSourceQuote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceQuote(v)
		return nil
	case pendingapproval.FieldSourceInteractionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceInteractionID(v)
		return nil
	case pendingapproval.FieldSourceEntityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceEntityID(v)
		return nil
	case pendingapproval.FieldContext:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContext(v)
		return nil
	case pendingapproval.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case pendingapproval.FieldReviewedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PendingApproval field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PendingApprovalMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, pendingapproval.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PendingApprovalMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case pendingapproval.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PendingApprovalMutation) AddField(name string, value ent.Value) error {
	switch name {
	case pendingapproval.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown PendingApproval numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PendingApprovalMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pendingapproval.FieldSourceQuote) {
		fields = append(fields, pendingapproval.FieldSourceQuote)
	}
	if m.FieldCleared(pendingapproval.FieldSourceInteractionID) {
		fields = append(fields, pendingapproval.FieldSourceInteractionID)
	}
	if m.FieldCleared(pendingapproval.FieldSourceEntityID) {
		fields = append(fields, pendingapproval.FieldSourceEntityID)
	}
	if m.FieldCleared(pendingapproval.FieldContext) {
		fields = append(fields, pendingapproval.FieldContext)
	}
	if m.FieldCleared(pendingapproval.FieldReviewedAt) {
		fields = append(fields, pendingapproval.FieldReviewedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PendingApprovalMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PendingApprovalMutation) ClearField(name string) error {
	switch name {
	case pendingapproval.FieldSourceQuote:
		m.ClearSourceQuote()
		return nil
	case pendingapproval.FieldSourceInteractionID:
		m.ClearSourceInteractionID()
		return nil
	case pendingapproval.FieldSourceEntityID:
		m.ClearSourceEntityID()
		return nil
	case pendingapproval.FieldContext:
		m.ClearContext()
		return nil
	case pendingapproval.FieldReviewedAt:
		m.ClearReviewedAt()
		return nil
	}
	return fmt.Errorf("unknown PendingApproval nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PendingApprovalMutation) ResetField(name string) error {
	switch name {
	case pendingapproval.FieldItemType:
		m.ResetItemType()
		return nil
	case pendingapproval.FieldTargetID:
		m.ResetTargetID()
		return nil
	case pendingapproval.FieldBatchID:
		m.ResetBatchID()
		return nil
	case pendingapproval.FieldStatus:
		m.ResetStatus()
		return nil
	case pendingapproval.FieldConfidence:
		m.ResetConfidence()
		return nil
	case pendingapproval.FieldSourceQuote:
		m.ResetSourceQuote()
		return nil
	case pendingapproval.FieldSourceInteractionID:
		m.ResetSourceInteractionID()
		return nil
	case pendingapproval.FieldSourceEntityID:
		m.ResetSourceEntityID()
		return nil
	case pendingapproval.FieldContext:
		m.ResetContext()
		return nil
	case pendingapproval.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case pendingapproval.FieldReviewedAt:
		m.ResetReviewedAt()
		return nil
	}
	return fmt.Errorf("unknown PendingApproval field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PendingApprovalMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PendingApprovalMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PendingApprovalMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PendingApprovalMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PendingApprovalMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PendingApprovalMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PendingApprovalMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PendingApproval unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PendingApprovalMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PendingApproval edge %s", name)
}

// PendingEntityResolutionMutation represents an operation that mutates the PendingEntityResolution nodes in the graph.
type PendingEntityResolutionMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	identifier_type          *string
	identifier_value         *string
	display_name             *string
	status                   *pendingentityresolution.Status
	resolution               *pendingentityresolution.Resolution
	resolved_entity_id       *string
	suggestions              *[]map[string]interface{}
	appendsuggestions        []map[string]interface{}
	sample_message_ids       *[]string
	appendsample_message_ids []string
	first_seen_at            *time.Time
	resolved_at              *time.Time
	clearedFields            map[string]struct{}
	done                     bool
	oldValue                 func(context.Context) (*PendingEntityResolution, error)
	predicates               []predicate.PendingEntityResolution
}

var _ ent.Mutation = (*PendingEntityResolutionMutation)(nil)

// pendingentityresolutionOption allows management of the mutation configuration using functional options.
type pendingentityresolutionOption func(*PendingEntityResolutionMutation)

// newPendingEntityResolutionMutation creates new mutation for the PendingEntityResolution entity.
func newPendingEntityResolutionMutation(c config, op Op, opts ...pendingentityresolutionOption) *PendingEntityResolutionMutation {
	m := &PendingEntityResolutionMutation{
		config:        c,
		op:            op,
		typ:           TypePendingEntityResolution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPendingEntityResolutionID sets the ID field of the mutation.
func withPendingEntityResolutionID(id string) pendingentityresolutionOption {
	return func(m *PendingEntityResolutionMutation) {
		var (
			err   error
			once  sync.Once
			value *PendingEntityResolution
		)
		m.oldValue = func(ctx context.Context) (*PendingEntityResolution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PendingEntityResolution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPendingEntityResolution sets the old PendingEntityResolution of the mutation.
func withPendingEntityResolution(node *PendingEntityResolution) pendingentityresolutionOption {
	return func(m *PendingEntityResolutionMutation) {
		m.oldValue = func(context.Context) (*PendingEntityResolution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PendingEntityResolutionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PendingEntityResolutionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PendingEntityResolution entities.
func (m *PendingEntityResolutionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PendingEntityResolutionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PendingEntityResolutionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PendingEntityResolution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetIdentifierType sets the "identifier_type" field.
func (m *PendingEntityResolutionMutation) SetIdentifierType(s string) {
	m.identifier_type = &s
}

// IdentifierType returns the value of the "identifier_type" field in the mutation.
func (m *PendingEntityResolutionMutation) IdentifierType() (r string, exists bool) {
	v := m.identifier_type
	if v == nil {
		return
	}
	return *v, true
}

// OldIdentifierType returns the old "identifier_type" field's value of the PendingEntityResolution entity.
// If the PendingEntityResolution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingEntityResolutionMutation) OldIdentifierType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIdentifierType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIdentifierType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIdentifierType: %w", err)
	}
	return oldValue.IdentifierType, nil
}

// ResetIdentifierType resets all changes to the "identifier_type" field.
func (m *PendingEntityResolutionMutation) ResetIdentifierType() {
	m.identifier_type = nil
}

// SetIdentifierValue sets the "identifier_value" field.
func (m *PendingEntityResolutionMutation) SetIdentifierValue(s string) {
	m.identifier_value = &s
}

// IdentifierValue returns the value of the "identifier_value" field in the mutation.
func (m *PendingEntityResolutionMutation) IdentifierValue() (r string, exists bool) {
	v := m.identifier_value
	if v == nil {
		return
	}
	return *v, true
}

// OldIdentifierValue returns the old "identifier_value" field's value of the PendingEntityResolution entity.
// If the PendingEntityResolution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingEntityResolutionMutation) OldIdentifierValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIdentifierValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIdentifierValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIdentifierValue: %w", err)
	}
	return oldValue.IdentifierValue, nil
}

// ResetIdentifierValue resets all changes to the "identifier_value" field.
func (m *PendingEntityResolutionMutation) ResetIdentifierValue() {
	m.identifier_value = nil
}

// SetDisplayName sets the "display_name" field.
func (m *PendingEntityResolutionMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *PendingEntityResolutionMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the PendingEntityResolution entity.
// If the PendingEntityResolution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingEntityResolutionMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ClearDisplayName clears the value of the "display_name" field.
func (m *PendingEntityResolutionMutation) ClearDisplayName() {
	m.display_name = nil
	m.clearedFields[pendingentityresolution.FieldDisplayName] = struct{}{}
}

// DisplayNameCleared returns if the "display_name" field was cleared in this mutation.
func (m *PendingEntityResolutionMutation) DisplayNameCleared() bool {
	_, ok := m.clearedFields[pendingentityresolution.FieldDisplayName]
	return ok
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *PendingEntityResolutionMutation) ResetDisplayName() {
	m.display_name = nil
	delete(m.clearedFields, pendingentityresolution.FieldDisplayName)
}

// SetStatus sets the "status" field.
func (m *PendingEntityResolutionMutation) SetStatus(pe pendingentityresolution.Status) {
	m.status = &pe
}

// Status returns the value of the "status" field in the mutation.
func (m *PendingEntityResolutionMutation) Status() (r pendingentityresolution.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PendingEntityResolution entity.
// If the PendingEntityResolution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingEntityResolutionMutation) OldStatus(ctx context.Context) (v pendingentityresolution.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PendingEntityResolutionMutation) ResetStatus() {
	m.status = nil
}

// SetResolution sets the "resolution" field.
func (m *PendingEntityResolutionMutation) SetResolution(pe pendingentityresolution.Resolution) {
	m.resolution = &pe
}

// Resolution returns the value of the "resolution" field in the mutation.
func (m *PendingEntityResolutionMutation) Resolution() (r pendingentityresolution.Resolution, exists bool) {
	v := m.resolution
	if v == nil {
		return
	}
	return *v, true
}

// OldResolution returns the old "resolution" field's value of the PendingEntityResolution entity.
// If the PendingEntityResolution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingEntityResolutionMutation) OldResolution(ctx context.Context) (v *pendingentityresolution.Resolution, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolution is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolution requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolution: %w", err)
	}
	return oldValue.Resolution, nil
}

// ClearResolution clears the value of the "resolution" field.
func (m *PendingEntityResolutionMutation) ClearResolution() {
	m.resolution = nil
	m.clearedFields[pendingentityresolution.FieldResolution] = struct{}{}
}

// ResolutionCleared returns if the "resolution" field was cleared in this mutation.
func (m *PendingEntityResolutionMutation) ResolutionCleared() bool {
	_, ok := m.clearedFields[pendingentityresolution.FieldResolution]
	return ok
}

// ResetResolution resets all changes to the "resolution" field.
func (m *PendingEntityResolutionMutation) ResetResolution() {
	m.resolution = nil
	delete(m.clearedFields, pendingentityresolution.FieldResolution)
}

// SetResolvedEntityID sets the "resolved_entity_id" field.
func (m *PendingEntityResolutionMutation) SetResolvedEntityID(s string) {
	m.resolved_entity_id = &s
}

// ResolvedEntityID returns the value of the "resolved_entity_id" field in the mutation.
func (m *PendingEntityResolutionMutation) ResolvedEntityID() (r string, exists bool) {
	v := m.resolved_entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedEntityID returns the old "resolved_entity_id" field's value of the PendingEntityResolution entity.
// If the PendingEntityResolution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingEntityResolutionMutation) OldResolvedEntityID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedEntityID: %w", err)
	}
	return oldValue.ResolvedEntityID, nil
}

// ClearResolvedEntityID clears the value of the "resolved_entity_id" field.
func (m *PendingEntityResolutionMutation) ClearResolvedEntityID() {
	m.resolved_entity_id = nil
	m.clearedFields[pendingentityresolution.FieldResolvedEntityID] = struct{}{}
}

// ResolvedEntityIDCleared returns if the "resolved_entity_id" field was cleared in this mutation.
func (m *PendingEntityResolutionMutation) ResolvedEntityIDCleared() bool {
	_, ok := m.clearedFields[pendingentityresolution.FieldResolvedEntityID]
	return ok
}

// ResetResolvedEntityID resets all changes to the "resolved_entity_id" field.
func (m *PendingEntityResolutionMutation) ResetResolvedEntityID() {
	m.resolved_entity_id = nil
	delete(m.clearedFields, pendingentityresolution.FieldResolvedEntityID)
}

// SetSuggestions sets the "suggestions" field.
func (m *PendingEntityResolutionMutation) SetSuggestions(value []map[string]interface{}) {
	m.suggestions = &value
	m.appendsuggestions = nil
}

// Suggestions returns the value of the "suggestions" field in the mutation.
func (m *PendingEntityResolutionMutation) Suggestions() (r []map[string]interface{}, exists bool) {
	v := m.suggestions
	if v == nil {
		return
	}
	return *v, true
}

// OldSuggestions returns the old "suggestions" field's value of the PendingEntityResolution entity.
// If the PendingEntityResolution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingEntityResolutionMutation) OldSuggestions(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuggestions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuggestions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuggestions: %w", err)
	}
	return oldValue.Suggestions, nil
}

// AppendSuggestions adds value to the "suggestions" field.
func (m *PendingEntityResolutionMutation) AppendSuggestions(value []map[string]interface{}) {
	m.appendsuggestions = append(m.appendsuggestions, value...)
}

// AppendedSuggestions returns the list of values that were appended to the "suggestions" field in this mutation.
func (m *PendingEntityResolutionMutation) AppendedSuggestions() ([]map[string]interface{}, bool) {
	if len(m.appendsuggestions) == 0 {
		return nil, false
	}
	return m.appendsuggestions, true
}

// ClearSuggestions clears the value of the "suggestions" field.
func (m *PendingEntityResolutionMutation) ClearSuggestions() {
	m.suggestions = nil
	m.appendsuggestions = nil
	m.clearedFields[pendingentityresolution.FieldSuggestions] = struct{}{}
}

// SuggestionsCleared returns if the "suggestions" field was cleared in this mutation.
func (m *PendingEntityResolutionMutation) SuggestionsCleared() bool {
	_, ok := m.clearedFields[pendingentityresolution.FieldSuggestions]
	return ok
}

// ResetSuggestions resets all changes to the "suggestions" field.
func (m *PendingEntityResolutionMutation) ResetSuggestions() {
	m.suggestions = nil
	m.appendsuggestions = nil
	delete(m.clearedFields, pendingentityresolution.FieldSuggestions)
}

// SetSampleMessageIds sets the "sample_message_ids" field.
func (m *PendingEntityResolutionMutation) SetSampleMessageIds(s []string) {
	m.sample_message_ids = &s
	m.appendsample_message_ids = nil
}

// SampleMessageIds returns the value of the "sample_message_ids" field in the mutation.
func (m *PendingEntityResolutionMutation) SampleMessageIds() (r []string, exists bool) {
	v := m.sample_message_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldSampleMessageIds returns the old "sample_message_ids" field's value of the PendingEntityResolution entity.
// If the PendingEntityResolution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingEntityResolutionMutation) OldSampleMessageIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSampleMessageIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSampleMessageIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSampleMessageIds: %w", err)
	}
	return oldValue.SampleMessageIds, nil
}

// AppendSampleMessageIds adds s to the "sample_message_ids" field.
func (m *PendingEntityResolutionMutation) AppendSampleMessageIds(s []string) {
	m.appendsample_message_ids = append(m.appendsample_message_ids, s...)
}

// AppendedSampleMessageIds returns the list of values that were appended to the "sample_message_ids" field in this mutation.
func (m *PendingEntityResolutionMutation) AppendedSampleMessageIds() ([]string, bool) {
	if len(m.appendsample_message_ids) == 0 {
		return nil, false
	}
	return m.appendsample_message_ids, true
}

// ClearSampleMessageIds clears the value of the "sample_message_ids" field.
func (m *PendingEntityResolutionMutation) ClearSampleMessageIds() {
	m.sample_message_ids = nil
	m.appendsample_message_ids = nil
	m.clearedFields[pendingentityresolution.FieldSampleMessageIds] = struct{}{}
}

// SampleMessageIdsCleared returns if the "sample_message_ids" field was cleared in this mutation.
func (m *PendingEntityResolutionMutation) SampleMessageIdsCleared() bool {
	_, ok := m.clearedFields[pendingentityresolution.FieldSampleMessageIds]
	return ok
}

// ResetSampleMessageIds resets all changes to the "sample_message_ids" field.
func (m *PendingEntityResolutionMutation) ResetSampleMessageIds() {
	m.sample_message_ids = nil
	m.appendsample_message_ids = nil
	delete(m.clearedFields, pendingentityresolution.FieldSampleMessageIds)
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (m *PendingEntityResolutionMutation) SetFirstSeenAt(t time.Time) {
	m.first_seen_at = &t
}

// FirstSeenAt returns the value of the "first_seen_at" field in the mutation.
func (m *PendingEntityResolutionMutation) FirstSeenAt() (r time.Time, exists bool) {
	v := m.first_seen_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstSeenAt returns the old "first_seen_at" field's value of the PendingEntityResolution entity.
// If the PendingEntityResolution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingEntityResolutionMutation) OldFirstSeenAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstSeenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstSeenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstSeenAt: %w", err)
	}
	return oldValue.FirstSeenAt, nil
}

// ResetFirstSeenAt resets all changes to the "first_seen_at" field.
func (m *PendingEntityResolutionMutation) ResetFirstSeenAt() {
	m.first_seen_at = nil
}

// SetResolvedAt sets the "resolved_at" field.
func (m *PendingEntityResolutionMutation) SetResolvedAt(t time.Time) {
	m.resolved_at = &t
}

// ResolvedAt returns the value of the "resolved_at" field in the mutation.
func (m *PendingEntityResolutionMutation) ResolvedAt() (r time.Time, exists bool) {
	v := m.resolved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedAt returns the old "resolved_at" field's value of the PendingEntityResolution entity.
// If the PendingEntityResolution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingEntityResolutionMutation) OldResolvedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedAt: %w", err)
	}
	return oldValue.ResolvedAt, nil
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (m *PendingEntityResolutionMutation) ClearResolvedAt() {
	m.resolved_at = nil
	m.clearedFields[pendingentityresolution.FieldResolvedAt] = struct{}{}
}

// ResolvedAtCleared returns if the "resolved_at" field was cleared in this mutation.
func (m *PendingEntityResolutionMutation) ResolvedAtCleared() bool {
	_, ok := m.clearedFields[pendingentityresolution.FieldResolvedAt]
	return ok
}

// ResetResolvedAt resets all changes to the "resolved_at" field.
func (m *PendingEntityResolutionMutation) ResetResolvedAt() {
	m.resolved_at = nil
	delete(m.clearedFields, pendingentityresolution.FieldResolvedAt)
}

// Where appends a list predicates to the PendingEntityResolutionMutation builder.
func (m *PendingEntityResolutionMutation) Where(ps ...predicate.PendingEntityResolution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PendingEntityResolutionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PendingEntityResolutionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PendingEntityResolution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PendingEntityResolutionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PendingEntityResolutionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PendingEntityResolution).
func (m *PendingEntityResolutionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PendingEntityResolutionMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.identifier_type != nil {
		fields = append(fields, pendingentityresolution.FieldIdentifierType)
	}
	if m.identifier_value != nil {
		fields = append(fields, pendingentityresolution.FieldIdentifierValue)
	}
	if m.display_name != nil {
		fields = append(fields, pendingentityresolution.FieldDisplayName)
	}
	if m.status != nil {
		fields = append(fields, pendingentityresolution.FieldStatus)
	}
	if m.resolution != nil {
		fields = append(fields, pendingentityresolution.FieldResolution)
	}
	if m.resolved_entity_id != nil {
		fields = append(fields, pendingentityresolution.FieldResolvedEntityID)
	}
	if m.suggestions != nil {
		fields = append(fields, pendingentityresolution.FieldSuggestions)
	}
	if m.sample_message_ids != nil {
		fields = append(fields, pendingentityresolution.FieldSampleMessageIds)
	}
	if m.first_seen_at != nil {
		fields = append(fields, pendingentityresolution.FieldFirstSeenAt)
	}
	if m.resolved_at != nil {
		fields = append(fields, pendingentityresolution.FieldResolvedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PendingEntityResolutionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pendingentityresolution.FieldIdentifierType:
		return m.IdentifierType()
	case pendingentityresolution.FieldIdentifierValue:
		return m.IdentifierValue()
	case pendingentityresolution.FieldDisplayName:
		return m.DisplayName()
	case pendingentityresolution.FieldStatus:
		return m.Status()
	case pendingentityresolution.FieldResolution:
		return m.Resolution()
	case pendingentityresolution.FieldResolvedEntityID:
		return m.ResolvedEntityID()
	case pendingentityresolution.FieldSuggestions:
		return m.Suggestions()
	case pendingentityresolution.FieldSampleMessageIds:
		return m.SampleMessageIds()
	case pendingentityresolution.FieldFirstSeenAt:
		return m.FirstSeenAt()
	case pendingentityresolution.FieldResolvedAt:
		return m.ResolvedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PendingEntityResolutionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pendingentityresolution.FieldIdentifierType:
		return m.OldIdentifierType(ctx)
	case pendingentityresolution.FieldIdentifierValue:
		return m.OldIdentifierValue(ctx)
	case pendingentityresolution.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case pendingentityresolution.FieldStatus:
		return m.OldStatus(ctx)
	case pendingentityresolution.FieldResolution:
		return m.OldResolution(ctx)
	case pendingentityresolution.FieldResolvedEntityID:
		return m.OldResolvedEntityID(ctx)
	case pendingentityresolution.FieldSuggestions:
		return m.OldSuggestions(ctx)
	case pendingentityresolution.FieldSampleMessageIds:
		return m.OldSampleMessageIds(ctx)
	case pendingentityresolution.FieldFirstSeenAt:
		return m.OldFirstSeenAt(ctx)
	case pendingentityresolution.FieldResolvedAt:
		return m.OldResolvedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PendingEntityResolution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PendingEntityResolutionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pendingentityresolution.FieldIdentifierType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIdentifierType(v)
		return nil
	case pendingentityresolution.FieldIdentifierValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIdentifierValue(v)
		return nil
	case pendingentityresolution.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case pendingentityresolution.FieldStatus:
		v, ok := value.(pendingentityresolution.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case pendingentityresolution.FieldResolution:
		v, ok := value.(pendingentityresolution.Resolution)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolution(v)
		return nil
	case pendingentityresolution.FieldResolvedEntityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedEntityID(v)
		return nil
	case pendingentityresolution.FieldSuggestions:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuggestions(v)
		return nil
	case pendingentityresolution.FieldSampleMessageIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSampleMessageIds(v)
		return nil
	case pendingentityresolution.FieldFirstSeenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstSeenAt(v)
		return nil
	case pendingentityresolution.FieldResolvedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PendingEntityResolution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PendingEntityResolutionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PendingEntityResolutionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PendingEntityResolutionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PendingEntityResolution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PendingEntityResolutionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pendingentityresolution.FieldDisplayName) {
		fields = append(fields, pendingentityresolution.FieldDisplayName)
	}
	if m.FieldCleared(pendingentityresolution.FieldResolution) {
		fields = append(fields, pendingentityresolution.FieldResolution)
	}
	if m.FieldCleared(pendingentityresolution.FieldResolvedEntityID) {
		fields = append(fields, pendingentityresolution.FieldResolvedEntityID)
	}
	if m.FieldCleared(pendingentityresolution.FieldSuggestions) {
		fields = append(fields, pendingentityresolution.FieldSuggestions)
	}
	if m.FieldCleared(pendingentityresolution.FieldSampleMessageIds) {
		fields = append(fields, pendingentityresolution.FieldSampleMessageIds)
	}
	if m.FieldCleared(pendingentityresolution.FieldResolvedAt) {
		fields = append(fields, pendingentityresolution.FieldResolvedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PendingEntityResolutionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PendingEntityResolutionMutation) ClearField(name string) error {
	switch name {
	case pendingentityresolution.FieldDisplayName:
		m.ClearDisplayName()
		return nil
	case pendingentityresolution.FieldResolution:
		m.ClearResolution()
		return nil
	case pendingentityresolution.FieldResolvedEntityID:
		m.ClearResolvedEntityID()
		return nil
	case pendingentityresolution.FieldSuggestions:
		m.ClearSuggestions()
		return nil
	case pendingentityresolution.FieldSampleMessageIds:
		m.ClearSampleMessageIds()
		return nil
	case pendingentityresolution.FieldResolvedAt:
		m.ClearResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown PendingEntityResolution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PendingEntityResolutionMutation) ResetField(name string) error {
	switch name {
	case pendingentityresolution.FieldIdentifierType:
		m.ResetIdentifierType()
		return nil
	case pendingentityresolution.FieldIdentifierValue:
		m.ResetIdentifierValue()
		return nil
	case pendingentityresolution.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case pendingentityresolution.FieldStatus:
		m.ResetStatus()
		return nil
	case pendingentityresolution.FieldResolution:
		m.ResetResolution()
		return nil
	case pendingentityresolution.FieldResolvedEntityID:
		m.ResetResolvedEntityID()
		return nil
	case pendingentityresolution.FieldSuggestions:
		m.ResetSuggestions()
		return nil
	case pendingentityresolution.FieldSampleMessageIds:
		m.ResetSampleMessageIds()
		return nil
	case pendingentityresolution.FieldFirstSeenAt:
		m.ResetFirstSeenAt()
		return nil
	case pendingentityresolution.FieldResolvedAt:
		m.ResetResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown PendingEntityResolution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PendingEntityResolutionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PendingEntityResolutionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PendingEntityResolutionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PendingEntityResolutionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PendingEntityResolutionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PendingEntityResolutionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PendingEntityResolutionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PendingEntityResolution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PendingEntityResolutionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PendingEntityResolution edge %s", name)
}

// TopicalSegmentMutation represents an operation that mutates the TopicalSegment nodes in the graph.
type TopicalSegmentMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	chat_id                   *string
	topic                     *string
	keywords                  *[]string
	appendkeywords            []string
	summary                   *string
	participant_ids           *[]string
	appendparticipant_ids     []string
	primary_participant_id    *string
	message_count             *int
	addmessage_count          *int
	started_at                *time.Time
	ended_at                  *time.Time
	status                    *topicalsegment.Status
	extraction_status         *topicalsegment.ExtractionStatus
	extraction_error          *string
	extraction_attempts       *int
	addextraction_attempts    *int
	next_extraction_at        *time.Time
	batch_id                  *string
	confidence                *float64
	addconfidence             *float64
	related_segment_ids       *[]string
	appendrelated_segment_ids []string
	extracted_item_ids        *[]string
	appendextracted_item_ids  []string
	embedding                 *pgvector.Vector
	created_at                *time.Time
	updated_at                *time.Time
	clearedFields             map[string]struct{}
	interaction               *string
	clearedinteraction        bool
	messages                  map[string]struct{}
	removedmessages           map[string]struct{}
	clearedmessages           bool
	done                      bool
	oldValue                  func(context.Context) (*TopicalSegment, error)
	predicates                []predicate.TopicalSegment
}

var _ ent.Mutation = (*TopicalSegmentMutation)(nil)

// topicalsegmentOption allows management of the mutation configuration using functional options.
type topicalsegmentOption func(*TopicalSegmentMutation)

// newTopicalSegmentMutation creates new mutation for the TopicalSegment entity.
func newTopicalSegmentMutation(c config, op Op, opts ...topicalsegmentOption) *TopicalSegmentMutation {
	m := &TopicalSegmentMutation{
		config:        c,
		op:            op,
		typ:           TypeTopicalSegment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTopicalSegmentID sets the ID field of the mutation.
func withTopicalSegmentID(id string) topicalsegmentOption {
	return func(m *TopicalSegmentMutation) {
		var (
			err   error
			once  sync.Once
			value *TopicalSegment
		)
		m.oldValue = func(ctx context.Context) (*TopicalSegment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TopicalSegment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTopicalSegment sets the old TopicalSegment of the mutation.
func withTopicalSegment(node *TopicalSegment) topicalsegmentOption {
	return func(m *TopicalSegmentMutation) {
		m.oldValue = func(context.Context) (*TopicalSegment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TopicalSegmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TopicalSegmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TopicalSegment entities.
func (m *TopicalSegmentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TopicalSegmentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TopicalSegmentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TopicalSegment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChatID sets the "chat_id" field.
func (m *TopicalSegmentMutation) SetChatID(s string) {
	m.chat_id = &s
}

// ChatID returns the value of the "chat_id" field in the mutation.
func (m *TopicalSegmentMutation) ChatID() (r string, exists bool) {
	v := m.chat_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChatID returns the old "chat_id" field's value of the TopicalSegment entity.
// If the TopicalSegment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicalSegmentMutation) OldChatID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChatID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChatID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChatID: %w", err)
	}
	return oldValue.ChatID, nil
}

// ResetChatID resets all changes to the "chat_id" field.
func (m *TopicalSegmentMutation) ResetChatID() {
	m.chat_id = nil
}

// SetInteractionID sets the "interaction_id" field.
func (m *TopicalSegmentMutation) SetInteractionID(s string) {
	m.interaction = &s
}

// InteractionID returns the value of the "interaction_id" field in the mutation.
func (m *TopicalSegmentMutation) InteractionID() (r string, exists bool) {
	v := m.interaction
	if v == nil {
		return
	}
	return *v, true
}

// OldInteractionID returns the old "interaction_id" field's value of the TopicalSegment entity.
// If the TopicalSegment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicalSegmentMutation) OldInteractionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInteractionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInteractionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInteractionID: %w", err)
	}
	return oldValue.InteractionID, nil
}

// ClearInteractionID clears the value of the "interaction_id" field.
func (m *TopicalSegmentMutation) ClearInteractionID() {
	m.interaction = nil
	m.clearedFields[topicalsegment.FieldInteractionID] = struct{}{}
}

// InteractionIDCleared returns if the "interaction_id" field was cleared in this mutation.
func (m *TopicalSegmentMutation) InteractionIDCleared() bool {
	_, ok := m.clearedFields[topicalsegment.FieldInteractionID]
	return ok
}

// ResetInteractionID resets all changes to the "interaction_id" field.
func (m *TopicalSegmentMutation) ResetInteractionID() {
	m.interaction = nil
	delete(m.clearedFields, topicalsegment.FieldInteractionID)
}

// SetTopic sets the "topic" field.
func (m *TopicalSegmentMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *TopicalSegmentMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the TopicalSegment entity.
// If the TopicalSegment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicalSegmentMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ResetTopic resets all changes to the "topic" field.
func (m *TopicalSegmentMutation) ResetTopic() {
	m.topic = nil
}

// SetKeywords sets the "keywords" field.
func (m *TopicalSegmentMutation) SetKeywords(s []string) {
	m.keywords = &s
	m.appendkeywords = nil
}

// Keywords returns the value of the "keywords" field in the mutation.
func (m *TopicalSegmentMutation) Keywords() (r []string, exists bool) {
	v := m.keywords
	if v == nil {
		return
	}
	return *v, true
}

// OldKeywords returns the old "keywords" field's value of the TopicalSegment entity.
// If the TopicalSegment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicalSegmentMutation) OldKeywords(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeywords is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeywords requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeywords: %w", err)
	}
	return oldValue.Keywords, nil
}

// AppendKeywords adds s to the "keywords" field.
func (m *TopicalSegmentMutation) AppendKeywords(s []string) {
	m.appendkeywords = append(m.appendkeywords, s...)
}

// AppendedKeywords returns the list of values that were appended to the "keywords" field in this mutation.
func (m *TopicalSegmentMutation) AppendedKeywords() ([]string, bool) {
	if len(m.appendkeywords) == 0 {
		return nil, false
	}
	return m.appendkeywords, true
}

// ClearKeywords clears the value of the "keywords" field.
func (m *TopicalSegmentMutation) ClearKeywords() {
	m.keywords = nil
	m.appendkeywords = nil
	m.clearedFields[topicalsegment.FieldKeywords] = struct{}{}
}

// KeywordsCleared returns if the "keywords" field was cleared in this mutation.
func (m *TopicalSegmentMutation) KeywordsCleared() bool {
	_, ok := m.clearedFields[topicalsegment.FieldKeywords]
	return ok
}

// ResetKeywords resets all changes to the "keywords" field.
func (m *TopicalSegmentMutation) ResetKeywords() {
	m.keywords = nil
	m.appendkeywords = nil
	delete(m.clearedFields, topicalsegment.FieldKeywords)
}

// SetSummary sets the "summary" field.
func (m *TopicalSegmentMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *TopicalSegmentMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the TopicalSegment entity.
// If the TopicalSegment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicalSegmentMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *TopicalSegmentMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[topicalsegment.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *TopicalSegmentMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[topicalsegment.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *TopicalSegmentMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, topicalsegment.FieldSummary)
}

// SetParticipantIds sets the "participant_ids" field.
func (m *TopicalSegmentMutation) SetParticipantIds(s []string) {
	m.participant_ids = &s
	m.appendparticipant_ids = nil
}

// ParticipantIds returns the value of the "participant_ids" field in the mutation.
func (m *TopicalSegmentMutation) ParticipantIds() (r []string, exists bool) {
	v := m.participant_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldParticipantIds returns the old "participant_ids" field's value of the TopicalSegment entity.
// If the TopicalSegment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicalSegmentMutation) OldParticipantIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParticipantIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParticipantIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParticipantIds: %w", err)
	}
	return oldValue.ParticipantIds, nil
}

// AppendParticipantIds adds s to the "participant_ids" field.
func (m *TopicalSegmentMutation) AppendParticipantIds(s []string) {
	m.appendparticipant_ids = append(m.appendparticipant_ids, s...)
}

// AppendedParticipantIds returns the list of values that were appended to the "participant_ids" field in this mutation.
func (m *TopicalSegmentMutation) AppendedParticipantIds() ([]string, bool) {
	if len(m.appendparticipant_ids) == 0 {
		return nil, false
	}
	return m.appendparticipant_ids, true
}

// ClearParticipantIds clears the value of the "participant_ids" field.
func (m *TopicalSegmentMutation) ClearParticipantIds() {
	m.participant_ids = nil
	m.appendparticipant_ids = nil
	m.clearedFields[topicalsegment.FieldParticipantIds] = struct{}{}
}

// ParticipantIdsCleared returns if the "participant_ids" field was cleared in this mutation.
func (m *TopicalSegmentMutation) ParticipantIdsCleared() bool {
	_, ok := m.clearedFields[topicalsegment.FieldParticipantIds]
	return ok
}

// ResetParticipantIds resets all changes to the "participant_ids" field.
func (m *TopicalSegmentMutation) ResetParticipantIds() {
	m.participant_ids = nil
	m.appendparticipant_ids = nil
	delete(m.clearedFields, topicalsegment.FieldParticipantIds)
}

// SetPrimaryParticipantID sets the "primary_participant_id" field.
func (m *TopicalSegmentMutation) SetPrimaryParticipantID(s string) {
	m.primary_participant_id = &s
}

// PrimaryParticipantID returns the value of the "primary_participant_id" field in the mutation.
func (m *TopicalSegmentMutation) PrimaryParticipantID() (r string, exists bool) {
	v := m.primary_participant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPrimaryParticipantID returns the old "primary_participant_id" field's value of the TopicalSegment entity.
// If the TopicalSegment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicalSegmentMutation) OldPrimaryParticipantID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrimaryParticipantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrimaryParticipantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrimaryParticipantID: %w", err)
	}
	return oldValue.PrimaryParticipantID, nil
}

// ClearPrimaryParticipantID clears the value of the "primary_participant_id" field.
func (m *TopicalSegmentMutation) ClearPrimaryParticipantID() {
	m.primary_participant_id = nil
	m.clearedFields[topicalsegment.FieldPrimaryParticipantID] = struct{}{}
}

// PrimaryParticipantIDCleared returns if the "primary_participant_id" field was cleared in this mutation.
func (m *TopicalSegmentMutation) PrimaryParticipantIDCleared() bool {
	_, ok := m.clearedFields[topicalsegment.FieldPrimaryParticipantID]
	return ok
}

// ResetPrimaryParticipantID resets all changes to the "primary_participant_id" field.
func (m *TopicalSegmentMutation) ResetPrimaryParticipantID() {
	m.primary_participant_id = nil
	delete(m.clearedFields, topicalsegment.FieldPrimaryParticipantID)
}

// SetMessageCount sets the "message_count" field.
func (m *TopicalSegmentMutation) SetMessageCount(i int) {
	m.message_count = &i
	m.addmessage_count = nil
}

// MessageCount returns the value of the "message_count" field in the mutation.
func (m *TopicalSegmentMutation) MessageCount() (r int, exists bool) {
	v := m.message_count
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageCount returns the old "message_count" field's value of the TopicalSegment entity.
// If the TopicalSegment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicalSegmentMutation) OldMessageCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageCount: %w", err)
	}
	return oldValue.MessageCount, nil
}

// AddMessageCount adds i to the "message_count" field.
func (m *TopicalSegmentMutation) AddMessageCount(i int) {
	if m.addmessage_count != nil {
		*m.addmessage_count += i
	} else {
		m.addmessage_count = &i
	}
}

// AddedMessageCount returns the value that was added to the "message_count" field in this mutation.
func (m *TopicalSegmentMutation) AddedMessageCount() (r int, exists bool) {
	v := m.addmessage_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetMessageCount resets all changes to the "message_count" field.
func (m *TopicalSegmentMutation) ResetMessageCount() {
	m.message_count = nil
	m.addmessage_count = nil
}

// SetStartedAt sets the "started_at" field.
func (m *TopicalSegmentMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *TopicalSegmentMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the TopicalSegment entity.
// If the TopicalSegment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicalSegmentMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *TopicalSegmentMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetEndedAt sets the "ended_at" field.
func (m *TopicalSegmentMutation) SetEndedAt(t time.Time) {
	m.ended_at = &t
}

// EndedAt returns the value of the "ended_at" field in the mutation.
func (m *TopicalSegmentMutation) EndedAt() (r time.Time, exists bool) {
	v := m.ended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndedAt returns the old "ended_at" field's value of the TopicalSegment entity.
// If the TopicalSegment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicalSegmentMutation) OldEndedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndedAt: %w", err)
	}
	return oldValue.EndedAt, nil
}

// ResetEndedAt resets all changes to the "ended_at" field.
func (m *TopicalSegmentMutation) ResetEndedAt() {
	m.ended_at = nil
}

// SetStatus sets the "status" field.
func (m *TopicalSegmentMutation) SetStatus(t topicalsegment.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TopicalSegmentMutation) Status() (r topicalsegment.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the TopicalSegment entity.
// If the TopicalSegment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicalSegmentMutation) OldStatus(ctx context.Context) (v topicalsegment.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TopicalSegmentMutation) ResetStatus() {
	m.status = nil
}

// SetExtractionStatus sets the "extraction_status" field.
func (m *TopicalSegmentMutation) SetExtractionStatus(ts topicalsegment.ExtractionStatus) {
	m.extraction_status = &ts
}

// ExtractionStatus returns the value of the "extraction_status" field in the mutation.
func (m *TopicalSegmentMutation) ExtractionStatus() (r topicalsegment.ExtractionStatus, exists bool) {
	v := m.extraction_status
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionStatus returns the old "extraction_status" field's value of the TopicalSegment entity.
// If the TopicalSegment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicalSegmentMutation) OldExtractionStatus(ctx context.Context) (v topicalsegment.ExtractionStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionStatus: %w", err)
	}
	return oldValue.ExtractionStatus, nil
}

// ResetExtractionStatus resets all changes to the "extraction_status" field.
func (m *TopicalSegmentMutation) ResetExtractionStatus() {
	m.extraction_status = nil
}

// SetExtractionError sets the "extraction_error" field.
func (m *TopicalSegmentMutation) SetExtractionError(s string) {
	m.extraction_error = &s
}

// ExtractionError returns the value of the "extraction_error" field in the mutation.
func (m *TopicalSegmentMutation) ExtractionError() (r string, exists bool) {
	v := m.extraction_error
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionError returns the old "extraction_error" field's value of the TopicalSegment entity.
// If the TopicalSegment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicalSegmentMutation) OldExtractionError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionError: %w", err)
	}
	return oldValue.ExtractionError, nil
}

// ClearExtractionError clears the value of the "extraction_error" field.
func (m *TopicalSegmentMutation) ClearExtractionError() {
	m.extraction_error = nil
	m.clearedFields[topicalsegment.FieldExtractionError] = struct{}{}
}

// ExtractionErrorCleared returns if the "extraction_error" field was cleared in this mutation.
func (m *TopicalSegmentMutation) ExtractionErrorCleared() bool {
	_, ok := m.clearedFields[topicalsegment.FieldExtractionError]
	return ok
}

// ResetExtractionError resets all changes to the "extraction_error" field.
func (m *TopicalSegmentMutation) ResetExtractionError() {
	m.extraction_error = nil
	delete(m.clearedFields, topicalsegment.FieldExtractionError)
}

// SetExtractionAttempts sets the "extraction_attempts" field.
func (m *TopicalSegmentMutation) SetExtractionAttempts(i int) {
	m.extraction_attempts = &i
	m.addextraction_attempts = nil
}

// ExtractionAttempts returns the value of the "extraction_attempts" field in the mutation.
func (m *TopicalSegmentMutation) ExtractionAttempts() (r int, exists bool) {
	v := m.extraction_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionAttempts returns the old "extraction_attempts" field's value of the TopicalSegment entity.
// If the TopicalSegment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicalSegmentMutation) OldExtractionAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionAttempts: %w", err)
	}
	return oldValue.ExtractionAttempts, nil
}

// AddExtractionAttempts adds i to the "extraction_attempts" field.
func (m *TopicalSegmentMutation) AddExtractionAttempts(i int) {
	if m.addextraction_attempts != nil {
		*m.addextraction_attempts += i
	} else {
		m.addextraction_attempts = &i
	}
}

// AddedExtractionAttempts returns the value that was added to the "extraction_attempts" field in this mutation.
func (m *TopicalSegmentMutation) AddedExtractionAttempts() (r int, exists bool) {
	v := m.addextraction_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetExtractionAttempts resets all changes to the "extraction_attempts" field.
func (m *TopicalSegmentMutation) ResetExtractionAttempts() {
	m.extraction_attempts = nil
	m.addextraction_attempts = nil
}

// SetNextExtractionAt sets the "next_extraction_at" field.
func (m *TopicalSegmentMutation) SetNextExtractionAt(t time.Time) {
	m.next_extraction_at = &t
}

// NextExtractionAt returns the value of the "next_extraction_at" field in the mutation.
func (m *TopicalSegmentMutation) NextExtractionAt() (r time.Time, exists bool) {
	v := m.next_extraction_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextExtractionAt returns the old "next_extraction_at" field's value of the TopicalSegment entity.
// If the TopicalSegment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicalSegmentMutation) OldNextExtractionAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextExtractionAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextExtractionAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextExtractionAt: %w", err)
	}
	return oldValue.NextExtractionAt, nil
}

// ClearNextExtractionAt clears the value of the "next_extraction_at" field.
func (m *TopicalSegmentMutation) ClearNextExtractionAt() {
	m.next_extraction_at = nil
	m.clearedFields[topicalsegment.FieldNextExtractionAt] = struct{}{}
}

// NextExtractionAtCleared returns if the "next_extraction_at" field was cleared in this mutation.
func (m *TopicalSegmentMutation) NextExtractionAtCleared() bool {
	_, ok := m.clearedFields[topicalsegment.FieldNextExtractionAt]
	return ok
}

// ResetNextExtractionAt resets all changes to the "next_extraction_at" field.
func (m *TopicalSegmentMutation) ResetNextExtractionAt() {
	m.next_extraction_at = nil
	delete(m.clearedFields, topicalsegment.FieldNextExtractionAt)
}

// SetBatchID sets the "batch_id" field.
func (m *TopicalSegmentMutation) SetBatchID(s string) {
	m.batch_id = &s
}

// BatchID returns the value of the "batch_id" field in the mutation.
func (m *TopicalSegmentMutation) BatchID() (r string, exists bool) {
	v := m.batch_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBatchID returns the old "batch_id" field's value of the TopicalSegment entity.
// If the TopicalSegment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicalSegmentMutation) OldBatchID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBatchID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBatchID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBatchID: %w", err)
	}
	return oldValue.BatchID, nil
}

// ClearBatchID clears the value of the "batch_id" field.
func (m *TopicalSegmentMutation) ClearBatchID() {
	m.batch_id = nil
	m.clearedFields[topicalsegment.FieldBatchID] = struct{}{}
}

// BatchIDCleared returns if the "batch_id" field was cleared in this mutation.
func (m *TopicalSegmentMutation) BatchIDCleared() bool {
	_, ok := m.clearedFields[topicalsegment.FieldBatchID]
	return ok
}

// ResetBatchID resets all changes to the "batch_id" field.
func (m *TopicalSegmentMutation) ResetBatchID() {
	m.batch_id = nil
	delete(m.clearedFields, topicalsegment.FieldBatchID)
}

// SetConfidence sets the "confidence" field.
func (m *TopicalSegmentMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *TopicalSegmentMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the TopicalSegment entity.
// If the TopicalSegment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicalSegmentMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *TopicalSegmentMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *TopicalSegmentMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *TopicalSegmentMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetRelatedSegmentIds sets the "related_segment_ids" field.
func (m *TopicalSegmentMutation) SetRelatedSegmentIds(s []string) {
	m.related_segment_ids = &s
	m.appendrelated_segment_ids = nil
}

// RelatedSegmentIds returns the value of the "related_segment_ids" field in the mutation.
func (m *TopicalSegmentMutation) RelatedSegmentIds() (r []string, exists bool) {
	v := m.related_segment_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldRelatedSegmentIds returns the old "related_segment_ids" field's value of the TopicalSegment entity.
// If the TopicalSegment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicalSegmentMutation) OldRelatedSegmentIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelatedSegmentIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelatedSegmentIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelatedSegmentIds: %w", err)
	}
	return oldValue.RelatedSegmentIds, nil
}

// AppendRelatedSegmentIds adds s to the "related_segment_ids" field.
func (m *TopicalSegmentMutation) AppendRelatedSegmentIds(s []string) {
	m.appendrelated_segment_ids = append(m.appendrelated_segment_ids, s...)
}

// AppendedRelatedSegmentIds returns the list of values that were appended to the "related_segment_ids" field in this mutation.
func (m *TopicalSegmentMutation) AppendedRelatedSegmentIds() ([]string, bool) {
	if len(m.appendrelated_segment_ids) == 0 {
		return nil, false
	}
	return m.appendrelated_segment_ids, true
}

// ClearRelatedSegmentIds clears the value of the "related_segment_ids" field.
func (m *TopicalSegmentMutation) ClearRelatedSegmentIds() {
	m.related_segment_ids = nil
	m.appendrelated_segment_ids = nil
	m.clearedFields[topicalsegment.FieldRelatedSegmentIds] = struct{}{}
}

// RelatedSegmentIdsCleared returns if the "related_segment_ids" field was cleared in this mutation.
func (m *TopicalSegmentMutation) RelatedSegmentIdsCleared() bool {
	_, ok := m.clearedFields[topicalsegment.FieldRelatedSegmentIds]
	return ok
}

// ResetRelatedSegmentIds resets all changes to the "related_segment_ids" field.
func (m *TopicalSegmentMutation) ResetRelatedSegmentIds() {
	m.related_segment_ids = nil
	m.appendrelated_segment_ids = nil
	delete(m.clearedFields, topicalsegment.FieldRelatedSegmentIds)
}

// SetExtractedItemIds sets the "extracted_item_ids" field.
func (m *TopicalSegmentMutation) SetExtractedItemIds(s []string) {
	m.extracted_item_ids = &s
	m.appendextracted_item_ids = nil
}

// ExtractedItemIds returns the value of the "extracted_item_ids" field in the mutation.
func (m *TopicalSegmentMutation) ExtractedItemIds() (r []string, exists bool) {
	v := m.extracted_item_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedItemIds returns the old "extracted_item_ids" field's value of the TopicalSegment entity.
// If the TopicalSegment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicalSegmentMutation) OldExtractedItemIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedItemIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedItemIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedItemIds: %w", err)
	}
	return oldValue.ExtractedItemIds, nil
}

// AppendExtractedItemIds adds s to the "extracted_item_ids" field.
func (m *TopicalSegmentMutation) AppendExtractedItemIds(s []string) {
	m.appendextracted_item_ids = append(m.appendextracted_item_ids, s...)
}

// AppendedExtractedItemIds returns the list of values that were appended to the "extracted_item_ids" field in this mutation.
func (m *TopicalSegmentMutation) AppendedExtractedItemIds() ([]string, bool) {
	if len(m.appendextracted_item_ids) == 0 {
		return nil, false
	}
	return m.appendextracted_item_ids, true
}

// ClearExtractedItemIds clears the value of the "extracted_item_ids" field.
func (m *TopicalSegmentMutation) ClearExtractedItemIds() {
	m.extracted_item_ids = nil
	m.appendextracted_item_ids = nil
	m.clearedFields[topicalsegment.FieldExtractedItemIds] = struct{}{}
}

// ExtractedItemIdsCleared returns if the "extracted_item_ids" field was cleared in this mutation.
func (m *TopicalSegmentMutation) ExtractedItemIdsCleared() bool {
	_, ok := m.clearedFields[topicalsegment.FieldExtractedItemIds]
	return ok
}

// ResetExtractedItemIds resets all changes to the "extracted_item_ids" field.
func (m *TopicalSegmentMutation) ResetExtractedItemIds() {
	m.extracted_item_ids = nil
	m.appendextracted_item_ids = nil
	delete(m.clearedFields, topicalsegment.FieldExtractedItemIds)
}

// SetEmbedding sets the "embedding" field.
func (m *TopicalSegmentMutation) SetEmbedding(pg pgvector.Vector) {
	m.embedding = &pg
}

// Embedding returns the value of the "embedding" field in the mutation.
func (m *TopicalSegmentMutation) Embedding() (r pgvector.Vector, exists bool) {
	v := m.embedding
	if v == nil {
		return
	}
	return *v, true
}

// OldEmbedding returns the old "embedding" field's value of the TopicalSegment entity.
// If the TopicalSegment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicalSegmentMutation) OldEmbedding(ctx context.Context) (v pgvector.Vector, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmbedding is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmbedding requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmbedding: %w", err)
	}
	return oldValue.Embedding, nil
}

// ClearEmbedding clears the value of the "embedding" field.
func (m *TopicalSegmentMutation) ClearEmbedding() {
	m.embedding = nil
	m.clearedFields[topicalsegment.FieldEmbedding] = struct{}{}
}

// EmbeddingCleared returns if the "embedding" field was cleared in this mutation.
func (m *TopicalSegmentMutation) EmbeddingCleared() bool {
	_, ok := m.clearedFields[topicalsegment.FieldEmbedding]
	return ok
}

// ResetEmbedding resets all changes to the "embedding" field.
func (m *TopicalSegmentMutation) ResetEmbedding() {
	m.embedding = nil
	delete(m.clearedFields, topicalsegment.FieldEmbedding)
}

// SetCreatedAt sets the "created_at" field.
func (m *TopicalSegmentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TopicalSegmentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TopicalSegment entity.
// If the TopicalSegment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicalSegmentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TopicalSegmentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TopicalSegmentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TopicalSegmentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TopicalSegment entity.
// If the TopicalSegment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicalSegmentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TopicalSegmentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearInteraction clears the "interaction" edge to the Interaction entity.
func (m *TopicalSegmentMutation) ClearInteraction() {
	m.clearedinteraction = true
	m.clearedFields[topicalsegment.FieldInteractionID] = struct{}{}
}

// InteractionCleared reports if the "interaction" edge to the Interaction entity was cleared.
func (m *TopicalSegmentMutation) InteractionCleared() bool {
	return m.InteractionIDCleared() || m.clearedinteraction
}

// InteractionIDs returns the "interaction" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// InteractionID instead. It exists only for internal usage by the builders.
func (m *TopicalSegmentMutation) InteractionIDs() (ids []string) {
	if id := m.interaction; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetInteraction resets all changes to the "interaction" edge.
func (m *TopicalSegmentMutation) ResetInteraction() {
	m.interaction = nil
	m.clearedinteraction = false
}

// AddMessageIDs adds the "messages" edge to the Message entity by ids.
func (m *TopicalSegmentMutation) AddMessageIDs(ids ...string) {
	if m.messages == nil {
		m.messages = make(map[string]struct{})
	}
	for i := range ids {
		m.messages[ids[i]] = struct{}{}
	}
}

// ClearMessages clears the "messages" edge to the Message entity.
func (m *TopicalSegmentMutation) ClearMessages() {
	m.clearedmessages = true
}

// MessagesCleared reports if the "messages" edge to the Message entity was cleared.
func (m *TopicalSegmentMutation) MessagesCleared() bool {
	return m.clearedmessages
}

// RemoveMessageIDs removes the "messages" edge to the Message entity by IDs.
func (m *TopicalSegmentMutation) RemoveMessageIDs(ids ...string) {
	if m.removedmessages == nil {
		m.removedmessages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.messages, ids[i])
		m.removedmessages[ids[i]] = struct{}{}
	}
}

// RemovedMessages returns the removed IDs of the "messages" edge to the Message entity.
func (m *TopicalSegmentMutation) RemovedMessagesIDs() (ids []string) {
	for id := range m.removedmessages {
		ids = append(ids, id)
	}
	return
}

// MessagesIDs returns the "messages" edge IDs in the mutation.
func (m *TopicalSegmentMutation) MessagesIDs() (ids []string) {
	for id := range m.messages {
		ids = append(ids, id)
	}
	return
}

// ResetMessages resets all changes to the "messages" edge.
func (m *TopicalSegmentMutation) ResetMessages() {
	m.messages = nil
	m.clearedmessages = false
	m.removedmessages = nil
}

// Where appends a list predicates to the TopicalSegmentMutation builder.
func (m *TopicalSegmentMutation) Where(ps ...predicate.TopicalSegment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TopicalSegmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TopicalSegmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TopicalSegment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TopicalSegmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TopicalSegmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TopicalSegment).
func (m *TopicalSegmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TopicalSegmentMutation) Fields() []string {
	fields := make([]string, 0, 22)
	if m.chat_id != nil {
		fields = append(fields, topicalsegment.FieldChatID)
	}
	if m.interaction != nil {
		fields = append(fields, topicalsegment.FieldInteractionID)
	}
	if m.topic != nil {
		fields = append(fields, topicalsegment.FieldTopic)
	}
	if m.keywords != nil {
		fields = append(fields, topicalsegment.FieldKeywords)
	}
	if m.summary != nil {
		fields = append(fields, topicalsegment.FieldSummary)
	}
	if m.participant_ids != nil {
		fields = append(fields, topicalsegment.FieldParticipantIds)
	}
	if m.primary_participant_id != nil {
		fields = append(fields, topicalsegment.FieldPrimaryParticipantID)
	}
	if m.message_count != nil {
		fields = append(fields, topicalsegment.FieldMessageCount)
	}
	if m.started_at != nil {
		fields = append(fields, topicalsegment.FieldStartedAt)
	}
	if m.ended_at != nil {
		fields = append(fields, topicalsegment.FieldEndedAt)
	}
	if m.status != nil {
		fields = append(fields, topicalsegment.FieldStatus)
	}
	if m.extraction_status != nil {
		fields = append(fields, topicalsegment.FieldExtractionStatus)
	}
	if m.extraction_error != nil {
		fields = append(fields, topicalsegment.FieldExtractionError)
	}
	if m.extraction_attempts != nil {
		fields = append(fields, topicalsegment.FieldExtractionAttempts)
	}
	if m.next_extraction_at != nil {
		fields = append(fields, topicalsegment.FieldNextExtractionAt)
	}
	if m.batch_id != nil {
		fields = append(fields, topicalsegment.FieldBatchID)
	}
	if m.confidence != nil {
		fields = append(fields, topicalsegment.FieldConfidence)
	}
	if m.related_segment_ids != nil {
		fields = append(fields, topicalsegment.FieldRelatedSegmentIds)
	}
	if m.extracted_item_ids != nil {
		fields = append(fields, topicalsegment.FieldExtractedItemIds)
	}
	if m.embedding != nil {
		fields = append(fields, topicalsegment.FieldEmbedding)
	}
	if m.created_at != nil {
		fields = append(fields, topicalsegment.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, topicalsegment.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TopicalSegmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case topicalsegment.FieldChatID:
		return m.ChatID()
	case topicalsegment.FieldInteractionID:
		return m.InteractionID()
	case topicalsegment.FieldTopic:
		return m.Topic()
	case topicalsegment.FieldKeywords:
		return m.Keywords()
	case topicalsegment.FieldSummary:
		return m.Summary()
	case topicalsegment.FieldParticipantIds:
		return m.ParticipantIds()
	case topicalsegment.FieldPrimaryParticipantID:
		return m.PrimaryParticipantID()
	case topicalsegment.FieldMessageCount:
		return m.MessageCount()
	case topicalsegment.FieldStartedAt:
		return m.StartedAt()
	case topicalsegment.FieldEndedAt:
		return m.EndedAt()
	case topicalsegment.FieldStatus:
		return m.Status()
	case topicalsegment.FieldExtractionStatus:
		return m.ExtractionStatus()
	case topicalsegment.FieldExtractionError:
		return m.ExtractionError()
	case topicalsegment.FieldExtractionAttempts:
		return m.ExtractionAttempts()
	case topicalsegment.FieldNextExtractionAt:
		return m.NextExtractionAt()
	case topicalsegment.FieldBatchID:
		return m.BatchID()
	case topicalsegment.FieldConfidence:
		return m.Confidence()
	case topicalsegment.FieldRelatedSegmentIds:
		return m.RelatedSegmentIds()
	case topicalsegment.FieldExtractedItemIds:
		return m.ExtractedItemIds()
	case topicalsegment.FieldEmbedding:
		return m.Embedding()
	case topicalsegment.FieldCreatedAt:
		return m.CreatedAt()
	case topicalsegment.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TopicalSegmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case topicalsegment.FieldChatID:
		return m.OldChatID(ctx)
	case topicalsegment.FieldInteractionID:
		return m.OldInteractionID(ctx)
	case topicalsegment.FieldTopic:
		return m.OldTopic(ctx)
	case topicalsegment.FieldKeywords:
		return m.OldKeywords(ctx)
	case topicalsegment.FieldSummary:
		return m.OldSummary(ctx)
	case topicalsegment.FieldParticipantIds:
		return m.OldParticipantIds(ctx)
	case topicalsegment.FieldPrimaryParticipantID:
		return m.OldPrimaryParticipantID(ctx)
	case topicalsegment.FieldMessageCount:
		return m.OldMessageCount(ctx)
	case topicalsegment.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case topicalsegment.FieldEndedAt:
		return m.OldEndedAt(ctx)
	case topicalsegment.FieldStatus:
		return m.OldStatus(ctx)
	case topicalsegment.FieldExtractionStatus:
		return m.OldExtractionStatus(ctx)
	case topicalsegment.FieldExtractionError:
		return m.OldExtractionError(ctx)
	case topicalsegment.FieldExtractionAttempts:
		return m.OldExtractionAttempts(ctx)
	case topicalsegment.FieldNextExtractionAt:
		return m.OldNextExtractionAt(ctx)
	case topicalsegment.FieldBatchID:
		return m.OldBatchID(ctx)
	case topicalsegment.FieldConfidence:
		return m.OldConfidence(ctx)
	case topicalsegment.FieldRelatedSegmentIds:
		return m.OldRelatedSegmentIds(ctx)
	case topicalsegment.FieldExtractedItemIds:
		return m.OldExtractedItemIds(ctx)
	case topicalsegment.FieldEmbedding:
		return m.OldEmbedding(ctx)
	case topicalsegment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case topicalsegment.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TopicalSegment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TopicalSegmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case topicalsegment.FieldChatID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChatID(v)
		return nil
	case topicalsegment.FieldInteractionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInteractionID(v)
		return nil
	case topicalsegment.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case topicalsegment.FieldKeywords:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeywords(v)
		return nil
	case topicalsegment.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case topicalsegment.FieldParticipantIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParticipantIds(v)
		return nil
	case topicalsegment.FieldPrimaryParticipantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrimaryParticipantID(v)
		return nil
	case topicalsegment.FieldMessageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageCount(v)
		return nil
	case topicalsegment.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case topicalsegment.FieldEndedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndedAt(v)
		return nil
	case topicalsegment.FieldStatus:
		v, ok := value.(topicalsegment.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case topicalsegment.FieldExtractionStatus:
		v, ok := value.(topicalsegment.ExtractionStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionStatus(v)
		return nil
	case topicalsegment.FieldExtractionError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionError(v)
		return nil
	case topicalsegment.FieldExtractionAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionAttempts(v)
		return nil
	case topicalsegment.FieldNextExtractionAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextExtractionAt(v)
		return nil
	case topicalsegment.FieldBatchID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBatchID(v)
		return nil
	case topicalsegment.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case topicalsegment.FieldRelatedSegmentIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelatedSegmentIds(v)
		return nil
	case topicalsegment.FieldExtractedItemIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedItemIds(v)
		return nil
	case topicalsegment.FieldEmbedding:
		v, ok := value.(pgvector.Vector)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmbedding(v)
		return nil
	case topicalsegment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case topicalsegment.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TopicalSegment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TopicalSegmentMutation) AddedFields() []string {
	var fields []string
	if m.addmessage_count != nil {
		fields = append(fields, topicalsegment.FieldMessageCount)
	}
	if m.addextraction_attempts != nil {
		fields = append(fields, topicalsegment.FieldExtractionAttempts)
	}
	if m.addconfidence != nil {
		fields = append(fields, topicalsegment.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TopicalSegmentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case topicalsegment.FieldMessageCount:
		return m.AddedMessageCount()
	case topicalsegment.FieldExtractionAttempts:
		return m.AddedExtractionAttempts()
	case topicalsegment.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TopicalSegmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case topicalsegment.FieldMessageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMessageCount(v)
		return nil
	case topicalsegment.FieldExtractionAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExtractionAttempts(v)
		return nil
	case topicalsegment.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown TopicalSegment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TopicalSegmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(topicalsegment.FieldInteractionID) {
		fields = append(fields, topicalsegment.FieldInteractionID)
	}
	if m.FieldCleared(topicalsegment.FieldKeywords) {
		fields = append(fields, topicalsegment.FieldKeywords)
	}
	if m.FieldCleared(topicalsegment.FieldSummary) {
		fields = append(fields, topicalsegment.FieldSummary)
	}
	if m.FieldCleared(topicalsegment.FieldParticipantIds) {
		fields = append(fields, topicalsegment.FieldParticipantIds)
	}
	if m.FieldCleared(topicalsegment.FieldPrimaryParticipantID) {
		fields = append(fields, topicalsegment.FieldPrimaryParticipantID)
	}
	if m.FieldCleared(topicalsegment.FieldExtractionError) {
		fields = append(fields, topicalsegment.FieldExtractionError)
	}
	if m.FieldCleared(topicalsegment.FieldNextExtractionAt) {
		fields = append(fields, topicalsegment.FieldNextExtractionAt)
	}
	if m.FieldCleared(topicalsegment.FieldBatchID) {
		fields = append(fields, topicalsegment.FieldBatchID)
	}
	if m.FieldCleared(topicalsegment.FieldRelatedSegmentIds) {
		fields = append(fields, topicalsegment.FieldRelatedSegmentIds)
	}
	if m.FieldCleared(topicalsegment.FieldExtractedItemIds) {
		fields = append(fields, topicalsegment.FieldExtractedItemIds)
	}
	if m.FieldCleared(topicalsegment.FieldEmbedding) {
		fields = append(fields, topicalsegment.FieldEmbedding)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TopicalSegmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TopicalSegmentMutation) ClearField(name string) error {
	switch name {
	case topicalsegment.FieldInteractionID:
		m.ClearInteractionID()
		return nil
	case topicalsegment.FieldKeywords:
		m.ClearKeywords()
		return nil
	case topicalsegment.FieldSummary:
		m.ClearSummary()
		return nil
	case topicalsegment.FieldParticipantIds:
		m.ClearParticipantIds()
		return nil
	case topicalsegment.FieldPrimaryParticipantID:
		m.ClearPrimaryParticipantID()
		return nil
	case topicalsegment.FieldExtractionError:
		m.ClearExtractionError()
		return nil
	case topicalsegment.FieldNextExtractionAt:
		m.ClearNextExtractionAt()
		return nil
	case topicalsegment.FieldBatchID:
		m.ClearBatchID()
		return nil
	case topicalsegment.FieldRelatedSegmentIds:
		m.ClearRelatedSegmentIds()
		return nil
	case topicalsegment.FieldExtractedItemIds:
		m.ClearExtractedItemIds()
		return nil
	case topicalsegment.FieldEmbedding:
		m.ClearEmbedding()
		return nil
	}
	return fmt.Errorf("unknown TopicalSegment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TopicalSegmentMutation) ResetField(name string) error {
	switch name {
	case topicalsegment.FieldChatID:
		m.ResetChatID()
		return nil
	case topicalsegment.FieldInteractionID:
		m.ResetInteractionID()
		return nil
	case topicalsegment.FieldTopic:
		m.ResetTopic()
		return nil
	case topicalsegment.FieldKeywords:
		m.ResetKeywords()
		return nil
	case topicalsegment.FieldSummary:
		m.ResetSummary()
		return nil
	case topicalsegment.FieldParticipantIds:
		m.ResetParticipantIds()
		return nil
	case topicalsegment.FieldPrimaryParticipantID:
		m.ResetPrimaryParticipantID()
		return nil
	case topicalsegment.FieldMessageCount:
		m.ResetMessageCount()
		return nil
	case topicalsegment.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case topicalsegment.FieldEndedAt:
		m.ResetEndedAt()
		return nil
	case topicalsegment.FieldStatus:
		m.ResetStatus()
		return nil
	case topicalsegment.FieldExtractionStatus:
		m.ResetExtractionStatus()
		return nil
	case topicalsegment.FieldExtractionError:
		m.ResetExtractionError()
		return nil
	case topicalsegment.FieldExtractionAttempts:
		m.ResetExtractionAttempts()
		return nil
	case topicalsegment.FieldNextExtractionAt:
		m.ResetNextExtractionAt()
		return nil
	case topicalsegment.FieldBatchID:
		m.ResetBatchID()
		return nil
	case topicalsegment.FieldConfidence:
		m.ResetConfidence()
		return nil
	case topicalsegment.FieldRelatedSegmentIds:
		m.ResetRelatedSegmentIds()
		return nil
	case topicalsegment.FieldExtractedItemIds:
		m.ResetExtractedItemIds()
		return nil
	case topicalsegment.FieldEmbedding:
		m.ResetEmbedding()
		return nil
	case topicalsegment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case topicalsegment.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown TopicalSegment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TopicalSegmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.interaction != nil {
		edges = append(edges, topicalsegment.EdgeInteraction)
	}
	if m.messages != nil {
		edges = append(edges, topicalsegment.EdgeMessages)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TopicalSegmentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case topicalsegment.EdgeInteraction:
		if id := m.interaction; id != nil {
			return []ent.Value{*id}
		}
	case topicalsegment.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.messages))
		for id := range m.messages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TopicalSegmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedmessages != nil {
		edges = append(edges, topicalsegment.EdgeMessages)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TopicalSegmentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case topicalsegment.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.removedmessages))
		for id := range m.removedmessages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TopicalSegmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedinteraction {
		edges = append(edges, topicalsegment.EdgeInteraction)
	}
	if m.clearedmessages {
		edges = append(edges, topicalsegment.EdgeMessages)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TopicalSegmentMutation) EdgeCleared(name string) bool {
	switch name {
	case topicalsegment.EdgeInteraction:
		return m.clearedinteraction
	case topicalsegment.EdgeMessages:
		return m.clearedmessages
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TopicalSegmentMutation) ClearEdge(name string) error {
	switch name {
	case topicalsegment.EdgeInteraction:
		m.ClearInteraction()
		return nil
	}
	return fmt.Errorf("unknown TopicalSegment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TopicalSegmentMutation) ResetEdge(name string) error {
	switch name {
	case topicalsegment.EdgeInteraction:
		m.ResetInteraction()
		return nil
	case topicalsegment.EdgeMessages:
		m.ResetMessages()
		return nil
	}
	return fmt.Errorf("unknown TopicalSegment edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	username                 *string
	password_hash            *string
	failed_login_attempts    *int
	addfailed_login_attempts *int
	locked_until             *time.Time
	created_at               *time.Time
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	done                     bool
	oldValue                 func(context.Context) (*User, error)
	predicates               []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id string) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUsername sets the "username" field.
func (m *UserMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *UserMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ResetUsername resets all changes to the "username" field.
func (m *UserMutation) ResetUsername() {
	m.username = nil
}

// SetPasswordHash sets the "password_hash" field.
func (m *UserMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *UserMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *UserMutation) ResetPasswordHash() {
	m.password_hash = nil
}

// SetFailedLoginAttempts sets the "failed_login_attempts" field.
func (m *UserMutation) SetFailedLoginAttempts(i int) {
	m.failed_login_attempts = &i
	m.addfailed_login_attempts = nil
}

// FailedLoginAttempts returns the value of the "failed_login_attempts" field in the mutation.
func (m *UserMutation) FailedLoginAttempts() (r int, exists bool) {
	v := m.failed_login_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldFailedLoginAttempts returns the old "failed_login_attempts" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldFailedLoginAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailedLoginAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailedLoginAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailedLoginAttempts: %w", err)
	}
	return oldValue.FailedLoginAttempts, nil
}

// AddFailedLoginAttempts adds i to the "failed_login_attempts" field.
func (m *UserMutation) AddFailedLoginAttempts(i int) {
	if m.addfailed_login_attempts != nil {
		*m.addfailed_login_attempts += i
	} else {
		m.addfailed_login_attempts = &i
	}
}

// AddedFailedLoginAttempts returns the value that was added to the "failed_login_attempts" field in this mutation.
func (m *UserMutation) AddedFailedLoginAttempts() (r int, exists bool) {
	v := m.addfailed_login_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailedLoginAttempts resets all changes to the "failed_login_attempts" field.
func (m *UserMutation) ResetFailedLoginAttempts() {
	m.failed_login_attempts = nil
	m.addfailed_login_attempts = nil
}

// SetLockedUntil sets the "locked_until" field.
func (m *UserMutation) SetLockedUntil(t time.Time) {
	m.locked_until = &t
}

// LockedUntil returns the value of the "locked_until" field in the mutation.
func (m *UserMutation) LockedUntil() (r time.Time, exists bool) {
	v := m.locked_until
	if v == nil {
		return
	}
	return *v, true
}

// OldLockedUntil returns the old "locked_until" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLockedUntil(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLockedUntil is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLockedUntil requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLockedUntil: %w", err)
	}
	return oldValue.LockedUntil, nil
}

// ClearLockedUntil clears the value of the "locked_until" field.
func (m *UserMutation) ClearLockedUntil() {
	m.locked_until = nil
	m.clearedFields[user.FieldLockedUntil] = struct{}{}
}

// LockedUntilCleared returns if the "locked_until" field was cleared in this mutation.
func (m *UserMutation) LockedUntilCleared() bool {
	_, ok := m.clearedFields[user.FieldLockedUntil]
	return ok
}

// ResetLockedUntil resets all changes to the "locked_until" field.
func (m *UserMutation) ResetLockedUntil() {
	m.locked_until = nil
	delete(m.clearedFields, user.FieldLockedUntil)
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.username != nil {
		fields = append(fields, user.FieldUsername)
	}
	if m.password_hash != nil {
		fields = append(fields, user.FieldPasswordHash)
	}
	if m.failed_login_attempts != nil {
		fields = append(fields, user.FieldFailedLoginAttempts)
	}
	if m.locked_until != nil {
		fields = append(fields, user.FieldLockedUntil)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldUsername:
		return m.Username()
	case user.FieldPasswordHash:
		return m.PasswordHash()
	case user.FieldFailedLoginAttempts:
		return m.FailedLoginAttempts()
	case user.FieldLockedUntil:
		return m.LockedUntil()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldUsername:
		return m.OldUsername(ctx)
	case user.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case user.FieldFailedLoginAttempts:
		return m.OldFailedLoginAttempts(ctx)
	case user.FieldLockedUntil:
		return m.OldLockedUntil(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case user.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case user.FieldFailedLoginAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailedLoginAttempts(v)
		return nil
	case user.FieldLockedUntil:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLockedUntil(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	var fields []string
	if m.addfailed_login_attempts != nil {
		fields = append(fields, user.FieldFailedLoginAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case user.FieldFailedLoginAttempts:
		return m.AddedFailedLoginAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	case user.FieldFailedLoginAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailedLoginAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldLockedUntil) {
		fields = append(fields, user.FieldLockedUntil)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldLockedUntil:
		m.ClearLockedUntil()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldUsername:
		m.ResetUsername()
		return nil
	case user.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case user.FieldFailedLoginAttempts:
		m.ResetFailedLoginAttempts()
		return nil
	case user.FieldLockedUntil:
		m.ResetLockedUntil()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown User edge %s", name)
}
