// Code generated by ent, DO NOT EDIT.

package interactionparticipant

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/memograph/memograph/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldContainsFold(FieldID, id))
}

// InteractionID applies equality check predicate on the "interaction_id" field. It's identical to InteractionIDEQ.
func InteractionID(v string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldEQ(FieldInteractionID, v))
}

// EntityID applies equality check predicate on the "entity_id" field. It's identical to EntityIDEQ.
func EntityID(v string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldEQ(FieldEntityID, v))
}

// IdentifierType applies equality check predicate on the "identifier_type" field. It's identical to IdentifierTypeEQ.
func IdentifierType(v string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldEQ(FieldIdentifierType, v))
}

// IdentifierValue applies equality check predicate on the "identifier_value" field. It's identical to IdentifierValueEQ.
func IdentifierValue(v string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldEQ(FieldIdentifierValue, v))
}

// DisplayName applies equality check predicate on the "display_name" field. It's identical to DisplayNameEQ.
func DisplayName(v string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldEQ(FieldDisplayName, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldEQ(FieldCreatedAt, v))
}

// InteractionIDEQ applies the EQ predicate on the "interaction_id" field.
func InteractionIDEQ(v string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldEQ(FieldInteractionID, v))
}

// InteractionIDNEQ applies the NEQ predicate on the "interaction_id" field.
func InteractionIDNEQ(v string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldNEQ(FieldInteractionID, v))
}

// InteractionIDIn applies the In predicate on the "interaction_id" field.
func InteractionIDIn(vs ...string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldIn(FieldInteractionID, vs...))
}

// InteractionIDNotIn applies the NotIn predicate on the "interaction_id" field.
func InteractionIDNotIn(vs ...string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldNotIn(FieldInteractionID, vs...))
}

// InteractionIDGT applies the GT predicate on the "interaction_id" field.
func InteractionIDGT(v string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldGT(FieldInteractionID, v))
}

// InteractionIDGTE applies the GTE predicate on the "interaction_id" field.
func InteractionIDGTE(v string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldGTE(FieldInteractionID, v))
}

// InteractionIDLT applies the LT predicate on the "interaction_id" field.
func InteractionIDLT(v string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldLT(FieldInteractionID, v))
}

// InteractionIDLTE applies the LTE predicate on the "interaction_id" field.
func InteractionIDLTE(v string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldLTE(FieldInteractionID, v))
}

// InteractionIDContains applies the Contains predicate on the "interaction_id" field.
func InteractionIDContains(v string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldContains(FieldInteractionID, v))
}

// InteractionIDHasPrefix applies the HasPrefix predicate on the "interaction_id" field.
func InteractionIDHasPrefix(v string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldHasPrefix(FieldInteractionID, v))
}

// InteractionIDHasSuffix applies the HasSuffix predicate on the "interaction_id" field.
func InteractionIDHasSuffix(v string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldHasSuffix(FieldInteractionID, v))
}

// InteractionIDEqualFold applies the EqualFold predicate on the "interaction_id" field.
func InteractionIDEqualFold(v string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldEqualFold(FieldInteractionID, v))
}

// InteractionIDContainsFold applies the ContainsFold predicate on the "interaction_id" field.
func InteractionIDContainsFold(v string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldContainsFold(FieldInteractionID, v))
}

// EntityIDEQ applies the EQ predicate on the "entity_id" field.
func EntityIDEQ(v string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldEQ(FieldEntityID, v))
}

// EntityIDNEQ applies the NEQ predicate on the "entity_id" field.
func EntityIDNEQ(v string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldNEQ(FieldEntityID, v))
}

// EntityIDIn applies the In predicate on the "entity_id" field.
func EntityIDIn(vs ...string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldIn(FieldEntityID, vs...))
}

// EntityIDNotIn applies the NotIn predicate on the "entity_id" field.
func EntityIDNotIn(vs ...string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldNotIn(FieldEntityID, vs...))
}

// EntityIDGT applies the GT predicate on the "entity_id" field.
func EntityIDGT(v string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldGT(FieldEntityID, v))
}

// EntityIDGTE applies the GTE predicate on the "entity_id" field.
func EntityIDGTE(v string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldGTE(FieldEntityID, v))
}

// EntityIDLT applies the LT predicate on the "entity_id" field.
func EntityIDLT(v string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldLT(FieldEntityID, v))
}

// EntityIDLTE applies the LTE predicate on the "entity_id" field.
func EntityIDLTE(v string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldLTE(FieldEntityID, v))
}

// EntityIDContains applies the Contains predicate on the "entity_id" field.
func EntityIDContains(v string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldContains(FieldEntityID, v))
}

// EntityIDHasPrefix applies the HasPrefix predicate on the "entity_id" field.
func EntityIDHasPrefix(v string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldHasPrefix(FieldEntityID, v))
}

// EntityIDHasSuffix applies the HasSuffix predicate on the "entity_id" field.
func EntityIDHasSuffix(v string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldHasSuffix(FieldEntityID, v))
}

// EntityIDIsNil applies the IsNil predicate on the "entity_id" field.
func EntityIDIsNil() predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldIsNull(FieldEntityID))
}

// EntityIDNotNil applies the NotNil predicate on the "entity_id" field.
func EntityIDNotNil() predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldNotNull(FieldEntityID))
}

// EntityIDEqualFold applies the EqualFold predicate on the "entity_id" field.
func EntityIDEqualFold(v string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldEqualFold(FieldEntityID, v))
}

// EntityIDContainsFold applies the ContainsFold predicate on the "entity_id" field.
func EntityIDContainsFold(v string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldContainsFold(FieldEntityID, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v Role) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v Role) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...Role) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...Role) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldNotIn(FieldRole, vs...))
}

// IdentifierTypeEQ applies the EQ predicate on the "identifier_type" field.
func IdentifierTypeEQ(v string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldEQ(FieldIdentifierType, v))
}

// IdentifierTypeNEQ applies the NEQ predicate on the "identifier_type" field.
func IdentifierTypeNEQ(v string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldNEQ(FieldIdentifierType, v))
}

// IdentifierTypeIn applies the In predicate on the "identifier_type" field.
func IdentifierTypeIn(vs ...string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldIn(FieldIdentifierType, vs...))
}

// IdentifierTypeNotIn applies the NotIn predicate on the "identifier_type" field.
func IdentifierTypeNotIn(vs ...string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldNotIn(FieldIdentifierType, vs...))
}

// IdentifierTypeGT applies the GT predicate on the "identifier_type" field.
func IdentifierTypeGT(v string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldGT(FieldIdentifierType, v))
}

// IdentifierTypeGTE applies the GTE predicate on the "identifier_type" field.
func IdentifierTypeGTE(v string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldGTE(FieldIdentifierType, v))
}

// IdentifierTypeLT applies the LT predicate on the "identifier_type" field.
func IdentifierTypeLT(v string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldLT(FieldIdentifierType, v))
}

// IdentifierTypeLTE applies the LTE predicate on the "identifier_type" field.
func IdentifierTypeLTE(v string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldLTE(FieldIdentifierType, v))
}

// IdentifierTypeContains applies the Contains predicate on the "identifier_type" field.
func IdentifierTypeContains(v string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldContains(FieldIdentifierType, v))
}

// IdentifierTypeHasPrefix applies the HasPrefix predicate on the "identifier_type" field.
func IdentifierTypeHasPrefix(v string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldHasPrefix(FieldIdentifierType, v))
}

// IdentifierTypeHasSuffix applies the HasSuffix predicate on the "identifier_type" field.
func IdentifierTypeHasSuffix(v string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldHasSuffix(FieldIdentifierType, v))
}

// IdentifierTypeEqualFold applies the EqualFold predicate on the "identifier_type" field.
func IdentifierTypeEqualFold(v string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldEqualFold(FieldIdentifierType, v))
}

// IdentifierTypeContainsFold applies the ContainsFold predicate on the "identifier_type" field.
func IdentifierTypeContainsFold(v string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldContainsFold(FieldIdentifierType, v))
}

// IdentifierValueEQ applies the EQ predicate on the "identifier_value" field.
func IdentifierValueEQ(v string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldEQ(FieldIdentifierValue, v))
}

// IdentifierValueNEQ applies the NEQ predicate on the "identifier_value" field.
func IdentifierValueNEQ(v string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldNEQ(FieldIdentifierValue, v))
}

// IdentifierValueIn applies the In predicate on the "identifier_value" field.
func IdentifierValueIn(vs ...string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldIn(FieldIdentifierValue, vs...))
}

// IdentifierValueNotIn applies the NotIn predicate on the "identifier_value" field.
func IdentifierValueNotIn(vs ...string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldNotIn(FieldIdentifierValue, vs...))
}

// IdentifierValueGT applies the GT predicate on the "identifier_value" field.
func IdentifierValueGT(v string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldGT(FieldIdentifierValue, v))
}

// IdentifierValueGTE applies the GTE predicate on the "identifier_value" field.
func IdentifierValueGTE(v string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldGTE(FieldIdentifierValue, v))
}

// IdentifierValueLT applies the LT predicate on the "identifier_value" field.
func IdentifierValueLT(v string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldLT(FieldIdentifierValue, v))
}

// IdentifierValueLTE applies the LTE predicate on the "identifier_value" field.
func IdentifierValueLTE(v string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldLTE(FieldIdentifierValue, v))
}

// IdentifierValueContains applies the Contains predicate on the "identifier_value" field.
func IdentifierValueContains(v string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldContains(FieldIdentifierValue, v))
}

// IdentifierValueHasPrefix applies the HasPrefix predicate on the "identifier_value" field.
func IdentifierValueHasPrefix(v string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldHasPrefix(FieldIdentifierValue, v))
}

// IdentifierValueHasSuffix applies the HasSuffix predicate on the "identifier_value" field.
func IdentifierValueHasSuffix(v string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldHasSuffix(FieldIdentifierValue, v))
}

// IdentifierValueEqualFold applies the EqualFold predicate on the "identifier_value" field.
func IdentifierValueEqualFold(v string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldEqualFold(FieldIdentifierValue, v))
}

// IdentifierValueContainsFold applies the ContainsFold predicate on the "identifier_value" field.
func IdentifierValueContainsFold(v string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldContainsFold(FieldIdentifierValue, v))
}

// DisplayNameEQ applies the EQ predicate on the "display_name" field.
func DisplayNameEQ(v string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldEQ(FieldDisplayName, v))
}

// DisplayNameNEQ applies the NEQ predicate on the "display_name" field.
func DisplayNameNEQ(v string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldNEQ(FieldDisplayName, v))
}

// DisplayNameIn applies the In predicate on the "display_name" field.
func DisplayNameIn(vs ...string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldIn(FieldDisplayName, vs...))
}

// DisplayNameNotIn applies the NotIn predicate on the "display_name" field.
func DisplayNameNotIn(vs ...string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldNotIn(FieldDisplayName, vs...))
}

// DisplayNameGT applies the GT predicate on the "display_name" field.
func DisplayNameGT(v string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldGT(FieldDisplayName, v))
}

// DisplayNameGTE applies the GTE predicate on the "display_name" field.
func DisplayNameGTE(v string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldGTE(FieldDisplayName, v))
}

// DisplayNameLT applies the LT predicate on the "display_name" field.
func DisplayNameLT(v string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldLT(FieldDisplayName, v))
}

// DisplayNameLTE applies the LTE predicate on the "display_name" field.
func DisplayNameLTE(v string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldLTE(FieldDisplayName, v))
}

// DisplayNameContains applies the Contains predicate on the "display_name" field.
func DisplayNameContains(v string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldContains(FieldDisplayName, v))
}

// DisplayNameHasPrefix applies the HasPrefix predicate on the "display_name" field.
func DisplayNameHasPrefix(v string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldHasPrefix(FieldDisplayName, v))
}

// DisplayNameHasSuffix applies the HasSuffix predicate on the "display_name" field.
func DisplayNameHasSuffix(v string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldHasSuffix(FieldDisplayName, v))
}

// DisplayNameIsNil applies the IsNil predicate on the "display_name" field.
func DisplayNameIsNil() predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldIsNull(FieldDisplayName))
}

// DisplayNameNotNil applies the NotNil predicate on the "display_name" field.
func DisplayNameNotNil() predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldNotNull(FieldDisplayName))
}

// DisplayNameEqualFold applies the EqualFold predicate on the "display_name" field.
func DisplayNameEqualFold(v string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldEqualFold(FieldDisplayName, v))
}

// DisplayNameContainsFold applies the ContainsFold predicate on the "display_name" field.
func DisplayNameContainsFold(v string) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldContainsFold(FieldDisplayName, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.FieldLTE(FieldCreatedAt, v))
}

// HasInteraction applies the HasEdge predicate on the "interaction" edge.
func HasInteraction() predicate.InteractionParticipant {
	return predicate.InteractionParticipant(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, InteractionTable, InteractionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInteractionWith applies the HasEdge predicate on the "interaction" edge with a given conditions (other predicates).
func HasInteractionWith(preds ...predicate.Interaction) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(func(s *sql.Selector) {
		step := newInteractionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InteractionParticipant) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InteractionParticipant) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InteractionParticipant) predicate.InteractionParticipant {
	return predicate.InteractionParticipant(sql.NotPredicates(p))
}
