// Code generated by ent, DO NOT EDIT.

package pendingentityresolution

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/memograph/memograph/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldContainsFold(FieldID, id))
}

// IdentifierType applies equality check predicate on the "identifier_type" field. It's identical to IdentifierTypeEQ.
func IdentifierType(v string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldEQ(FieldIdentifierType, v))
}

// IdentifierValue applies equality check predicate on the "identifier_value" field. It's identical to IdentifierValueEQ.
func IdentifierValue(v string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldEQ(FieldIdentifierValue, v))
}

// DisplayName applies equality check predicate on the "display_name" field. It's identical to DisplayNameEQ.
func DisplayName(v string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldEQ(FieldDisplayName, v))
}

// ResolvedEntityID applies equality check predicate on the "resolved_entity_id" field. It's identical to ResolvedEntityIDEQ.
func ResolvedEntityID(v string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldEQ(FieldResolvedEntityID, v))
}

// FirstSeenAt applies equality check predicate on the "first_seen_at" field. It's identical to FirstSeenAtEQ.
func FirstSeenAt(v time.Time) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldEQ(FieldFirstSeenAt, v))
}

// ResolvedAt applies equality check predicate on the "resolved_at" field. It's identical to ResolvedAtEQ.
func ResolvedAt(v time.Time) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldEQ(FieldResolvedAt, v))
}

// IdentifierTypeEQ applies the EQ predicate on the "identifier_type" field.
func IdentifierTypeEQ(v string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldEQ(FieldIdentifierType, v))
}

// IdentifierTypeNEQ applies the NEQ predicate on the "identifier_type" field.
func IdentifierTypeNEQ(v string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldNEQ(FieldIdentifierType, v))
}

// IdentifierTypeIn applies the In predicate on the "identifier_type" field.
func IdentifierTypeIn(vs ...string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldIn(FieldIdentifierType, vs...))
}

// IdentifierTypeNotIn applies the NotIn predicate on the "identifier_type" field.
func IdentifierTypeNotIn(vs ...string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldNotIn(FieldIdentifierType, vs...))
}

// IdentifierTypeGT applies the GT predicate on the "identifier_type" field.
func IdentifierTypeGT(v string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldGT(FieldIdentifierType, v))
}

// IdentifierTypeGTE applies the GTE predicate on the "identifier_type" field.
func IdentifierTypeGTE(v string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldGTE(FieldIdentifierType, v))
}

// IdentifierTypeLT applies the LT predicate on the "identifier_type" field.
func IdentifierTypeLT(v string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldLT(FieldIdentifierType, v))
}

// IdentifierTypeLTE applies the LTE predicate on the "identifier_type" field.
func IdentifierTypeLTE(v string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldLTE(FieldIdentifierType, v))
}

// IdentifierTypeContains applies the Contains predicate on the "identifier_type" field.
func IdentifierTypeContains(v string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldContains(FieldIdentifierType, v))
}

// IdentifierTypeHasPrefix applies the HasPrefix predicate on the "identifier_type" field.
func IdentifierTypeHasPrefix(v string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldHasPrefix(FieldIdentifierType, v))
}

// IdentifierTypeHasSuffix applies the HasSuffix predicate on the "identifier_type" field.
func IdentifierTypeHasSuffix(v string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldHasSuffix(FieldIdentifierType, v))
}

// IdentifierTypeEqualFold applies the EqualFold predicate on the "identifier_type" field.
func IdentifierTypeEqualFold(v string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldEqualFold(FieldIdentifierType, v))
}

// IdentifierTypeContainsFold applies the ContainsFold predicate on the "identifier_type" field.
func IdentifierTypeContainsFold(v string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldContainsFold(FieldIdentifierType, v))
}

// IdentifierValueEQ applies the EQ predicate on the "identifier_value" field.
func IdentifierValueEQ(v string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldEQ(FieldIdentifierValue, v))
}

// IdentifierValueNEQ applies the NEQ predicate on the "identifier_value" field.
func IdentifierValueNEQ(v string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldNEQ(FieldIdentifierValue, v))
}

// IdentifierValueIn applies the In predicate on the "identifier_value" field.
func IdentifierValueIn(vs ...string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldIn(FieldIdentifierValue, vs...))
}

// IdentifierValueNotIn applies the NotIn predicate on the "identifier_value" field.
func IdentifierValueNotIn(vs ...string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldNotIn(FieldIdentifierValue, vs...))
}

// IdentifierValueGT applies the GT predicate on the "identifier_value" field.
func IdentifierValueGT(v string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldGT(FieldIdentifierValue, v))
}

// IdentifierValueGTE applies the GTE predicate on the "identifier_value" field.
func IdentifierValueGTE(v string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldGTE(FieldIdentifierValue, v))
}

// IdentifierValueLT applies the LT predicate on the "identifier_value" field.
func IdentifierValueLT(v string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldLT(FieldIdentifierValue, v))
}

// IdentifierValueLTE applies the LTE predicate on the "identifier_value" field.
func IdentifierValueLTE(v string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldLTE(FieldIdentifierValue, v))
}

// IdentifierValueContains applies the Contains predicate on the "identifier_value" field.
func IdentifierValueContains(v string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldContains(FieldIdentifierValue, v))
}

// IdentifierValueHasPrefix applies the HasPrefix predicate on the "identifier_value" field.
func IdentifierValueHasPrefix(v string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldHasPrefix(FieldIdentifierValue, v))
}

// IdentifierValueHasSuffix applies the HasSuffix predicate on the "identifier_value" field.
func IdentifierValueHasSuffix(v string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldHasSuffix(FieldIdentifierValue, v))
}

// IdentifierValueEqualFold applies the EqualFold predicate on the "identifier_value" field.
func IdentifierValueEqualFold(v string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldEqualFold(FieldIdentifierValue, v))
}

// IdentifierValueContainsFold applies the ContainsFold predicate on the "identifier_value" field.
func IdentifierValueContainsFold(v string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldContainsFold(FieldIdentifierValue, v))
}

// DisplayNameEQ applies the EQ predicate on the "display_name" field.
func DisplayNameEQ(v string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldEQ(FieldDisplayName, v))
}

// DisplayNameNEQ applies the NEQ predicate on the "display_name" field.
func DisplayNameNEQ(v string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldNEQ(FieldDisplayName, v))
}

// DisplayNameIn applies the In predicate on the "display_name" field.
func DisplayNameIn(vs ...string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldIn(FieldDisplayName, vs...))
}

// DisplayNameNotIn applies the NotIn predicate on the "display_name" field.
func DisplayNameNotIn(vs ...string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldNotIn(FieldDisplayName, vs...))
}

// DisplayNameGT applies the GT predicate on the "display_name" field.
func DisplayNameGT(v string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldGT(FieldDisplayName, v))
}

// DisplayNameGTE applies the GTE predicate on the "display_name" field.
func DisplayNameGTE(v string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldGTE(FieldDisplayName, v))
}

// DisplayNameLT applies the LT predicate on the "display_name" field.
func DisplayNameLT(v string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldLT(FieldDisplayName, v))
}

// DisplayNameLTE applies the LTE predicate on the "display_name" field.
func DisplayNameLTE(v string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldLTE(FieldDisplayName, v))
}

// DisplayNameContains applies the Contains predicate on the "display_name" field.
func DisplayNameContains(v string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldContains(FieldDisplayName, v))
}

// DisplayNameHasPrefix applies the HasPrefix predicate on the "display_name" field.
func DisplayNameHasPrefix(v string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldHasPrefix(FieldDisplayName, v))
}

// DisplayNameHasSuffix applies the HasSuffix predicate on the "display_name" field.
func DisplayNameHasSuffix(v string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldHasSuffix(FieldDisplayName, v))
}

// DisplayNameIsNil applies the IsNil predicate on the "display_name" field.
func DisplayNameIsNil() predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldIsNull(FieldDisplayName))
}

// DisplayNameNotNil applies the NotNil predicate on the "display_name" field.
func DisplayNameNotNil() predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldNotNull(FieldDisplayName))
}

// DisplayNameEqualFold applies the EqualFold predicate on the "display_name" field.
func DisplayNameEqualFold(v string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldEqualFold(FieldDisplayName, v))
}

// DisplayNameContainsFold applies the ContainsFold predicate on the "display_name" field.
func DisplayNameContainsFold(v string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldContainsFold(FieldDisplayName, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldNotIn(FieldStatus, vs...))
}

// ResolutionEQ applies the EQ predicate on the "resolution" field.
func ResolutionEQ(v Resolution) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldEQ(FieldResolution, v))
}

// ResolutionNEQ applies the NEQ predicate on the "resolution" field.
func ResolutionNEQ(v Resolution) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldNEQ(FieldResolution, v))
}

// ResolutionIn applies the In predicate on the "resolution" field.
func ResolutionIn(vs ...Resolution) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldIn(FieldResolution, vs...))
}

// ResolutionNotIn applies the NotIn predicate on the "resolution" field.
func ResolutionNotIn(vs ...Resolution) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldNotIn(FieldResolution, vs...))
}

// ResolutionIsNil applies the IsNil predicate on the "resolution" field.
func ResolutionIsNil() predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldIsNull(FieldResolution))
}

// ResolutionNotNil applies the NotNil predicate on the "resolution" field.
func ResolutionNotNil() predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldNotNull(FieldResolution))
}

// ResolvedEntityIDEQ applies the EQ predicate on the "resolved_entity_id" field.
func ResolvedEntityIDEQ(v string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldEQ(FieldResolvedEntityID, v))
}

// ResolvedEntityIDNEQ applies the NEQ predicate on the "resolved_entity_id" field.
func ResolvedEntityIDNEQ(v string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldNEQ(FieldResolvedEntityID, v))
}

// ResolvedEntityIDIn applies the In predicate on the "resolved_entity_id" field.
func ResolvedEntityIDIn(vs ...string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldIn(FieldResolvedEntityID, vs...))
}

// ResolvedEntityIDNotIn applies the NotIn predicate on the "resolved_entity_id" field.
func ResolvedEntityIDNotIn(vs ...string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldNotIn(FieldResolvedEntityID, vs...))
}

// ResolvedEntityIDGT applies the GT predicate on the "resolved_entity_id" field.
func ResolvedEntityIDGT(v string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldGT(FieldResolvedEntityID, v))
}

// ResolvedEntityIDGTE applies the GTE predicate on the "resolved_entity_id" field.
func ResolvedEntityIDGTE(v string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldGTE(FieldResolvedEntityID, v))
}

// ResolvedEntityIDLT applies the LT predicate on the "resolved_entity_id" field.
func ResolvedEntityIDLT(v string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldLT(FieldResolvedEntityID, v))
}

// ResolvedEntityIDLTE applies the LTE predicate on the "resolved_entity_id" field.
func ResolvedEntityIDLTE(v string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldLTE(FieldResolvedEntityID, v))
}

// ResolvedEntityIDContains applies the Contains predicate on the "resolved_entity_id" field.
func ResolvedEntityIDContains(v string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldContains(FieldResolvedEntityID, v))
}

// ResolvedEntityIDHasPrefix applies the HasPrefix predicate on the "resolved_entity_id" field.
func ResolvedEntityIDHasPrefix(v string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldHasPrefix(FieldResolvedEntityID, v))
}

// ResolvedEntityIDHasSuffix applies the HasSuffix predicate on the "resolved_entity_id" field.
func ResolvedEntityIDHasSuffix(v string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldHasSuffix(FieldResolvedEntityID, v))
}

// ResolvedEntityIDIsNil applies the IsNil predicate on the "resolved_entity_id" field.
func ResolvedEntityIDIsNil() predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldIsNull(FieldResolvedEntityID))
}

// ResolvedEntityIDNotNil applies the NotNil predicate on the "resolved_entity_id" field.
func ResolvedEntityIDNotNil() predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldNotNull(FieldResolvedEntityID))
}

// ResolvedEntityIDEqualFold applies the EqualFold predicate on the "resolved_entity_id" field.
func ResolvedEntityIDEqualFold(v string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldEqualFold(FieldResolvedEntityID, v))
}

// ResolvedEntityIDContainsFold applies the ContainsFold predicate on the "resolved_entity_id" field.
func ResolvedEntityIDContainsFold(v string) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldContainsFold(FieldResolvedEntityID, v))
}

// SuggestionsIsNil applies the IsNil predicate on the "suggestions" field.
func SuggestionsIsNil() predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldIsNull(FieldSuggestions))
}

// SuggestionsNotNil applies the NotNil predicate on the "suggestions" field.
func SuggestionsNotNil() predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldNotNull(FieldSuggestions))
}

// SampleMessageIdsIsNil applies the IsNil predicate on the "sample_message_ids" field.
func SampleMessageIdsIsNil() predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldIsNull(FieldSampleMessageIds))
}

// SampleMessageIdsNotNil applies the NotNil predicate on the "sample_message_ids" field.
func SampleMessageIdsNotNil() predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldNotNull(FieldSampleMessageIds))
}

// FirstSeenAtEQ applies the EQ predicate on the "first_seen_at" field.
func FirstSeenAtEQ(v time.Time) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldEQ(FieldFirstSeenAt, v))
}

// FirstSeenAtNEQ applies the NEQ predicate on the "first_seen_at" field.
func FirstSeenAtNEQ(v time.Time) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldNEQ(FieldFirstSeenAt, v))
}

// FirstSeenAtIn applies the In predicate on the "first_seen_at" field.
func FirstSeenAtIn(vs ...time.Time) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldIn(FieldFirstSeenAt, vs...))
}

// FirstSeenAtNotIn applies the NotIn predicate on the "first_seen_at" field.
func FirstSeenAtNotIn(vs ...time.Time) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldNotIn(FieldFirstSeenAt, vs...))
}

// FirstSeenAtGT applies the GT predicate on the "first_seen_at" field.
func FirstSeenAtGT(v time.Time) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldGT(FieldFirstSeenAt, v))
}

// FirstSeenAtGTE applies the GTE predicate on the "first_seen_at" field.
func FirstSeenAtGTE(v time.Time) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldGTE(FieldFirstSeenAt, v))
}

// FirstSeenAtLT applies the LT predicate on the "first_seen_at" field.
func FirstSeenAtLT(v time.Time) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldLT(FieldFirstSeenAt, v))
}

// FirstSeenAtLTE applies the LTE predicate on the "first_seen_at" field.
func FirstSeenAtLTE(v time.Time) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldLTE(FieldFirstSeenAt, v))
}

// ResolvedAtEQ applies the EQ predicate on the "resolved_at" field.
func ResolvedAtEQ(v time.Time) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldEQ(FieldResolvedAt, v))
}

// ResolvedAtNEQ applies the NEQ predicate on the "resolved_at" field.
func ResolvedAtNEQ(v time.Time) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldNEQ(FieldResolvedAt, v))
}

// ResolvedAtIn applies the In predicate on the "resolved_at" field.
func ResolvedAtIn(vs ...time.Time) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldIn(FieldResolvedAt, vs...))
}

// ResolvedAtNotIn applies the NotIn predicate on the "resolved_at" field.
func ResolvedAtNotIn(vs ...time.Time) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldNotIn(FieldResolvedAt, vs...))
}

// ResolvedAtGT applies the GT predicate on the "resolved_at" field.
func ResolvedAtGT(v time.Time) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldGT(FieldResolvedAt, v))
}

// ResolvedAtGTE applies the GTE predicate on the "resolved_at" field.
func ResolvedAtGTE(v time.Time) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldGTE(FieldResolvedAt, v))
}

// ResolvedAtLT applies the LT predicate on the "resolved_at" field.
func ResolvedAtLT(v time.Time) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldLT(FieldResolvedAt, v))
}

// ResolvedAtLTE applies the LTE predicate on the "resolved_at" field.
func ResolvedAtLTE(v time.Time) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldLTE(FieldResolvedAt, v))
}

// ResolvedAtIsNil applies the IsNil predicate on the "resolved_at" field.
func ResolvedAtIsNil() predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldIsNull(FieldResolvedAt))
}

// ResolvedAtNotNil applies the NotNil predicate on the "resolved_at" field.
func ResolvedAtNotNil() predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.FieldNotNull(FieldResolvedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PendingEntityResolution) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PendingEntityResolution) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PendingEntityResolution) predicate.PendingEntityResolution {
	return predicate.PendingEntityResolution(sql.NotPredicates(p))
}
