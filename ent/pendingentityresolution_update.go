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
	"github.com/memograph/memograph/ent/pendingentityresolution"
	"github.com/memograph/memograph/ent/predicate"
)

// PendingEntityResolutionUpdate is the builder for updating PendingEntityResolution entities.
type PendingEntityResolutionUpdate struct {
	config
	hooks    []Hook
	mutation *PendingEntityResolutionMutation
}

// Where appends a list predicates to the PendingEntityResolutionUpdate builder.
func (_u *PendingEntityResolutionUpdate) Where(ps ...predicate.PendingEntityResolution) *PendingEntityResolutionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetIdentifierType sets the "identifier_type" field.
func (_u *PendingEntityResolutionUpdate) SetIdentifierType(v string) *PendingEntityResolutionUpdate {
	_u.mutation.SetIdentifierType(v)
	return _u
}

// SetNillableIdentifierType sets the "identifier_type" field if the given value is not nil.
func (_u *PendingEntityResolutionUpdate) SetNillableIdentifierType(v *string) *PendingEntityResolutionUpdate {
	if v != nil {
		_u.SetIdentifierType(*v)
	}
	return _u
}

// SetIdentifierValue sets the "identifier_value" field.
func (_u *PendingEntityResolutionUpdate) SetIdentifierValue(v string) *PendingEntityResolutionUpdate {
	_u.mutation.SetIdentifierValue(v)
	return _u
}

// SetNillableIdentifierValue sets the "identifier_value" field if the given value is not nil.
func (_u *PendingEntityResolutionUpdate) SetNillableIdentifierValue(v *string) *PendingEntityResolutionUpdate {
	if v != nil {
		_u.SetIdentifierValue(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *PendingEntityResolutionUpdate) SetDisplayName(v string) *PendingEntityResolutionUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *PendingEntityResolutionUpdate) SetNillableDisplayName(v *string) *PendingEntityResolutionUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// ClearDisplayName clears the value of the "display_name" field.
func (_u *PendingEntityResolutionUpdate) ClearDisplayName() *PendingEntityResolutionUpdate {
	_u.mutation.ClearDisplayName()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PendingEntityResolutionUpdate) SetStatus(v pendingentityresolution.Status) *PendingEntityResolutionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PendingEntityResolutionUpdate) SetNillableStatus(v *pendingentityresolution.Status) *PendingEntityResolutionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResolution sets the "resolution" field.
func (_u *PendingEntityResolutionUpdate) SetResolution(v pendingentityresolution.Resolution) *PendingEntityResolutionUpdate {
	_u.mutation.SetResolution(v)
	return _u
}

// SetNillableResolution sets the "resolution" field if the given value is not nil.
func (_u *PendingEntityResolutionUpdate) SetNillableResolution(v *pendingentityresolution.Resolution) *PendingEntityResolutionUpdate {
	if v != nil {
		_u.SetResolution(*v)
	}
	return _u
}

// ClearResolution clears the value of the "resolution" field.
func (_u *PendingEntityResolutionUpdate) ClearResolution() *PendingEntityResolutionUpdate {
	_u.mutation.ClearResolution()
	return _u
}

// SetResolvedEntityID sets the "resolved_entity_id" field.
func (_u *PendingEntityResolutionUpdate) SetResolvedEntityID(v string) *PendingEntityResolutionUpdate {
	_u.mutation.SetResolvedEntityID(v)
	return _u
}

// SetNillableResolvedEntityID sets the "resolved_entity_id" field if the given value is not nil.
func (_u *PendingEntityResolutionUpdate) SetNillableResolvedEntityID(v *string) *PendingEntityResolutionUpdate {
	if v != nil {
		_u.SetResolvedEntityID(*v)
	}
	return _u
}

// ClearResolvedEntityID clears the value of the "resolved_entity_id" field.
func (_u *PendingEntityResolutionUpdate) ClearResolvedEntityID() *PendingEntityResolutionUpdate {
	_u.mutation.ClearResolvedEntityID()
	return _u
}

// SetSuggestions sets the "suggestions" field.
func (_u *PendingEntityResolutionUpdate) SetSuggestions(v []map[string]interface{}) *PendingEntityResolutionUpdate {
	_u.mutation.SetSuggestions(v)
	return _u
}

// AppendSuggestions appends value to the "suggestions" field.
func (_u *PendingEntityResolutionUpdate) AppendSuggestions(v []map[string]interface{}) *PendingEntityResolutionUpdate {
	_u.mutation.AppendSuggestions(v)
	return _u
}

// ClearSuggestions clears the value of the "suggestions" field.
func (_u *PendingEntityResolutionUpdate) ClearSuggestions() *PendingEntityResolutionUpdate {
	_u.mutation.ClearSuggestions()
	return _u
}

// SetSampleMessageIds sets the "sample_message_ids" field.
func (_u *PendingEntityResolutionUpdate) SetSampleMessageIds(v []string) *PendingEntityResolutionUpdate {
	_u.mutation.SetSampleMessageIds(v)
	return _u
}

// AppendSampleMessageIds appends value to the "sample_message_ids" field.
func (_u *PendingEntityResolutionUpdate) AppendSampleMessageIds(v []string) *PendingEntityResolutionUpdate {
	_u.mutation.AppendSampleMessageIds(v)
	return _u
}

// ClearSampleMessageIds clears the value of the "sample_message_ids" field.
func (_u *PendingEntityResolutionUpdate) ClearSampleMessageIds() *PendingEntityResolutionUpdate {
	_u.mutation.ClearSampleMessageIds()
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *PendingEntityResolutionUpdate) SetResolvedAt(v time.Time) *PendingEntityResolutionUpdate {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *PendingEntityResolutionUpdate) SetNillableResolvedAt(v *time.Time) *PendingEntityResolutionUpdate {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *PendingEntityResolutionUpdate) ClearResolvedAt() *PendingEntityResolutionUpdate {
	_u.mutation.ClearResolvedAt()
	return _u
}

// Mutation returns the PendingEntityResolutionMutation object of the builder.
func (_u *PendingEntityResolutionUpdate) Mutation() *PendingEntityResolutionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PendingEntityResolutionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PendingEntityResolutionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PendingEntityResolutionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PendingEntityResolutionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PendingEntityResolutionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := pendingentityresolution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PendingEntityResolution.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Resolution(); ok {
		if err := pendingentityresolution.ResolutionValidator(v); err != nil {
			return &ValidationError{Name: "resolution", err: fmt.Errorf(`ent: validator failed for field "PendingEntityResolution.resolution": %w`, err)}
		}
	}
	return nil
}

func (_u *PendingEntityResolutionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pendingentityresolution.Table, pendingentityresolution.Columns, sqlgraph.NewFieldSpec(pendingentityresolution.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.IdentifierType(); ok {
		_spec.SetField(pendingentityresolution.FieldIdentifierType, field.TypeString, value)
	}
	if value, ok := _u.mutation.IdentifierValue(); ok {
		_spec.SetField(pendingentityresolution.FieldIdentifierValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(pendingentityresolution.FieldDisplayName, field.TypeString, value)
	}
	if _u.mutation.DisplayNameCleared() {
		_spec.ClearField(pendingentityresolution.FieldDisplayName, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pendingentityresolution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Resolution(); ok {
		_spec.SetField(pendingentityresolution.FieldResolution, field.TypeEnum, value)
	}
	if _u.mutation.ResolutionCleared() {
		_spec.ClearField(pendingentityresolution.FieldResolution, field.TypeEnum)
	}
	if value, ok := _u.mutation.ResolvedEntityID(); ok {
		_spec.SetField(pendingentityresolution.FieldResolvedEntityID, field.TypeString, value)
	}
	if _u.mutation.ResolvedEntityIDCleared() {
		_spec.ClearField(pendingentityresolution.FieldResolvedEntityID, field.TypeString)
	}
	if value, ok := _u.mutation.Suggestions(); ok {
		_spec.SetField(pendingentityresolution.FieldSuggestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSuggestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pendingentityresolution.FieldSuggestions, value)
		})
	}
	if _u.mutation.SuggestionsCleared() {
		_spec.ClearField(pendingentityresolution.FieldSuggestions, field.TypeJSON)
	}
	if value, ok := _u.mutation.SampleMessageIds(); ok {
		_spec.SetField(pendingentityresolution.FieldSampleMessageIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSampleMessageIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pendingentityresolution.FieldSampleMessageIds, value)
		})
	}
	if _u.mutation.SampleMessageIdsCleared() {
		_spec.ClearField(pendingentityresolution.FieldSampleMessageIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(pendingentityresolution.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(pendingentityresolution.FieldResolvedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pendingentityresolution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PendingEntityResolutionUpdateOne is the builder for updating a single PendingEntityResolution entity.
type PendingEntityResolutionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PendingEntityResolutionMutation
}

// SetIdentifierType sets the "identifier_type" field.
func (_u *PendingEntityResolutionUpdateOne) SetIdentifierType(v string) *PendingEntityResolutionUpdateOne {
	_u.mutation.SetIdentifierType(v)
	return _u
}

// SetNillableIdentifierType sets the "identifier_type" field if the given value is not nil.
func (_u *PendingEntityResolutionUpdateOne) SetNillableIdentifierType(v *string) *PendingEntityResolutionUpdateOne {
	if v != nil {
		_u.SetIdentifierType(*v)
	}
	return _u
}

// SetIdentifierValue sets the "identifier_value" field.
func (_u *PendingEntityResolutionUpdateOne) SetIdentifierValue(v string) *PendingEntityResolutionUpdateOne {
	_u.mutation.SetIdentifierValue(v)
	return _u
}

// SetNillableIdentifierValue sets the "identifier_value" field if the given value is not nil.
func (_u *PendingEntityResolutionUpdateOne) SetNillableIdentifierValue(v *string) *PendingEntityResolutionUpdateOne {
	if v != nil {
		_u.SetIdentifierValue(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *PendingEntityResolutionUpdateOne) SetDisplayName(v string) *PendingEntityResolutionUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *PendingEntityResolutionUpdateOne) SetNillableDisplayName(v *string) *PendingEntityResolutionUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// ClearDisplayName clears the value of the "display_name" field.
func (_u *PendingEntityResolutionUpdateOne) ClearDisplayName() *PendingEntityResolutionUpdateOne {
	_u.mutation.ClearDisplayName()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PendingEntityResolutionUpdateOne) SetStatus(v pendingentityresolution.Status) *PendingEntityResolutionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PendingEntityResolutionUpdateOne) SetNillableStatus(v *pendingentityresolution.Status) *PendingEntityResolutionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResolution sets the "resolution" field.
func (_u *PendingEntityResolutionUpdateOne) SetResolution(v pendingentityresolution.Resolution) *PendingEntityResolutionUpdateOne {
	_u.mutation.SetResolution(v)
	return _u
}

// SetNillableResolution sets the "resolution" field if the given value is not nil.
func (_u *PendingEntityResolutionUpdateOne) SetNillableResolution(v *pendingentityresolution.Resolution) *PendingEntityResolutionUpdateOne {
	if v != nil {
		_u.SetResolution(*v)
	}
	return _u
}

// ClearResolution clears the value of the "resolution" field.
func (_u *PendingEntityResolutionUpdateOne) ClearResolution() *PendingEntityResolutionUpdateOne {
	_u.mutation.ClearResolution()
	return _u
}

// SetResolvedEntityID sets the "resolved_entity_id" field.
func (_u *PendingEntityResolutionUpdateOne) SetResolvedEntityID(v string) *PendingEntityResolutionUpdateOne {
	_u.mutation.SetResolvedEntityID(v)
	return _u
}

// SetNillableResolvedEntityID sets the "resolved_entity_id" field if the given value is not nil.
func (_u *PendingEntityResolutionUpdateOne) SetNillableResolvedEntityID(v *string) *PendingEntityResolutionUpdateOne {
	if v != nil {
		_u.SetResolvedEntityID(*v)
	}
	return _u
}

// ClearResolvedEntityID clears the value of the "resolved_entity_id" field.
func (_u *PendingEntityResolutionUpdateOne) ClearResolvedEntityID() *PendingEntityResolutionUpdateOne {
	_u.mutation.ClearResolvedEntityID()
	return _u
}

// SetSuggestions sets the "suggestions" field.
func (_u *PendingEntityResolutionUpdateOne) SetSuggestions(v []map[string]interface{}) *PendingEntityResolutionUpdateOne {
	_u.mutation.SetSuggestions(v)
	return _u
}

// AppendSuggestions appends value to the "suggestions" field.
func (_u *PendingEntityResolutionUpdateOne) AppendSuggestions(v []map[string]interface{}) *PendingEntityResolutionUpdateOne {
	_u.mutation.AppendSuggestions(v)
	return _u
}

// ClearSuggestions clears the value of the "suggestions" field.
func (_u *PendingEntityResolutionUpdateOne) ClearSuggestions() *PendingEntityResolutionUpdateOne {
	_u.mutation.ClearSuggestions()
	return _u
}

// SetSampleMessageIds sets the "sample_message_ids" field.
func (_u *PendingEntityResolutionUpdateOne) SetSampleMessageIds(v []string) *PendingEntityResolutionUpdateOne {
	_u.mutation.SetSampleMessageIds(v)
	return _u
}

// AppendSampleMessageIds appends value to the "sample_message_ids" field.
func (_u *PendingEntityResolutionUpdateOne) AppendSampleMessageIds(v []string) *PendingEntityResolutionUpdateOne {
	_u.mutation.AppendSampleMessageIds(v)
	return _u
}

// ClearSampleMessageIds clears the value of the "sample_message_ids" field.
func (_u *PendingEntityResolutionUpdateOne) ClearSampleMessageIds() *PendingEntityResolutionUpdateOne {
	_u.mutation.ClearSampleMessageIds()
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *PendingEntityResolutionUpdateOne) SetResolvedAt(v time.Time) *PendingEntityResolutionUpdateOne {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *PendingEntityResolutionUpdateOne) SetNillableResolvedAt(v *time.Time) *PendingEntityResolutionUpdateOne {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *PendingEntityResolutionUpdateOne) ClearResolvedAt() *PendingEntityResolutionUpdateOne {
	_u.mutation.ClearResolvedAt()
	return _u
}

// Mutation returns the PendingEntityResolutionMutation object of the builder.
func (_u *PendingEntityResolutionUpdateOne) Mutation() *PendingEntityResolutionMutation {
	return _u.mutation
}

// Where appends a list predicates to the PendingEntityResolutionUpdate builder.
func (_u *PendingEntityResolutionUpdateOne) Where(ps ...predicate.PendingEntityResolution) *PendingEntityResolutionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PendingEntityResolutionUpdateOne) Select(field string, fields ...string) *PendingEntityResolutionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PendingEntityResolution entity.
func (_u *PendingEntityResolutionUpdateOne) Save(ctx context.Context) (*PendingEntityResolution, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PendingEntityResolutionUpdateOne) SaveX(ctx context.Context) *PendingEntityResolution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PendingEntityResolutionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PendingEntityResolutionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PendingEntityResolutionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := pendingentityresolution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PendingEntityResolution.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Resolution(); ok {
		if err := pendingentityresolution.ResolutionValidator(v); err != nil {
			return &ValidationError{Name: "resolution", err: fmt.Errorf(`ent: validator failed for field "PendingEntityResolution.resolution": %w`, err)}
		}
	}
	return nil
}

func (_u *PendingEntityResolutionUpdateOne) sqlSave(ctx context.Context) (_node *PendingEntityResolution, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pendingentityresolution.Table, pendingentityresolution.Columns, sqlgraph.NewFieldSpec(pendingentityresolution.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PendingEntityResolution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pendingentityresolution.FieldID)
		for _, f := range fields {
			if !pendingentityresolution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pendingentityresolution.FieldID {
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
	if value, ok := _u.mutation.IdentifierType(); ok {
		_spec.SetField(pendingentityresolution.FieldIdentifierType, field.TypeString, value)
	}
	if value, ok := _u.mutation.IdentifierValue(); ok {
		_spec.SetField(pendingentityresolution.FieldIdentifierValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(pendingentityresolution.FieldDisplayName, field.TypeString, value)
	}
	if _u.mutation.DisplayNameCleared() {
		_spec.ClearField(pendingentityresolution.FieldDisplayName, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pendingentityresolution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Resolution(); ok {
		_spec.SetField(pendingentityresolution.FieldResolution, field.TypeEnum, value)
	}
	if _u.mutation.ResolutionCleared() {
		_spec.ClearField(pendingentityresolution.FieldResolution, field.TypeEnum)
	}
	if value, ok := _u.mutation.ResolvedEntityID(); ok {
		_spec.SetField(pendingentityresolution.FieldResolvedEntityID, field.TypeString, value)
	}
	if _u.mutation.ResolvedEntityIDCleared() {
		_spec.ClearField(pendingentityresolution.FieldResolvedEntityID, field.TypeString)
	}
	if value, ok := _u.mutation.Suggestions(); ok {
		_spec.SetField(pendingentityresolution.FieldSuggestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSuggestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pendingentityresolution.FieldSuggestions, value)
		})
	}
	if _u.mutation.SuggestionsCleared() {
		_spec.ClearField(pendingentityresolution.FieldSuggestions, field.TypeJSON)
	}
	if value, ok := _u.mutation.SampleMessageIds(); ok {
		_spec.SetField(pendingentityresolution.FieldSampleMessageIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSampleMessageIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pendingentityresolution.FieldSampleMessageIds, value)
		})
	}
	if _u.mutation.SampleMessageIdsCleared() {
		_spec.ClearField(pendingentityresolution.FieldSampleMessageIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(pendingentityresolution.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(pendingentityresolution.FieldResolvedAt, field.TypeTime)
	}
	_node = &PendingEntityResolution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pendingentityresolution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
