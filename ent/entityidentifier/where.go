// Code generated by ent, DO NOT EDIT.

package entityidentifier

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/memograph/memograph/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.FieldContainsFold(FieldID, id))
}

// EntityID applies equality check predicate on the "entity_id" field. It's identical to EntityIDEQ.
func EntityID(v string) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.FieldEQ(FieldEntityID, v))
}

// IdentifierType applies equality check predicate on the "identifier_type" field. It's identical to IdentifierTypeEQ.
func IdentifierType(v string) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.FieldEQ(FieldIdentifierType, v))
}

// IdentifierValue applies equality check predicate on the "identifier_value" field. It's identical to IdentifierValueEQ.
func IdentifierValue(v string) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.FieldEQ(FieldIdentifierValue, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.FieldEQ(FieldCreatedAt, v))
}

// EntityIDEQ applies the EQ predicate on the "entity_id" field.
func EntityIDEQ(v string) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.FieldEQ(FieldEntityID, v))
}

// EntityIDNEQ applies the NEQ predicate on the "entity_id" field.
func EntityIDNEQ(v string) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.FieldNEQ(FieldEntityID, v))
}

// EntityIDIn applies the In predicate on the "entity_id" field.
func EntityIDIn(vs ...string) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.FieldIn(FieldEntityID, vs...))
}

// EntityIDNotIn applies the NotIn predicate on the "entity_id" field.
func EntityIDNotIn(vs ...string) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.FieldNotIn(FieldEntityID, vs...))
}

// EntityIDGT applies the GT predicate on the "entity_id" field.
func EntityIDGT(v string) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.FieldGT(FieldEntityID, v))
}

// EntityIDGTE applies the GTE predicate on the "entity_id" field.
func EntityIDGTE(v string) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.FieldGTE(FieldEntityID, v))
}

// EntityIDLT applies the LT predicate on the "entity_id" field.
func EntityIDLT(v string) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.FieldLT(FieldEntityID, v))
}

// EntityIDLTE applies the LTE predicate on the "entity_id" field.
func EntityIDLTE(v string) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.FieldLTE(FieldEntityID, v))
}

// EntityIDContains applies the Contains predicate on the "entity_id" field.
func EntityIDContains(v string) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.FieldContains(FieldEntityID, v))
}

// EntityIDHasPrefix applies the HasPrefix predicate on the "entity_id" field.
func EntityIDHasPrefix(v string) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.FieldHasPrefix(FieldEntityID, v))
}

// EntityIDHasSuffix applies the HasSuffix predicate on the "entity_id" field.
func EntityIDHasSuffix(v string) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.FieldHasSuffix(FieldEntityID, v))
}

// EntityIDEqualFold applies the EqualFold predicate on the "entity_id" field.
func EntityIDEqualFold(v string) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.FieldEqualFold(FieldEntityID, v))
}

// EntityIDContainsFold applies the ContainsFold predicate on the "entity_id" field.
func EntityIDContainsFold(v string) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.FieldContainsFold(FieldEntityID, v))
}

// IdentifierTypeEQ applies the EQ predicate on the "identifier_type" field.
func IdentifierTypeEQ(v string) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.FieldEQ(FieldIdentifierType, v))
}

// IdentifierTypeNEQ applies the NEQ predicate on the "identifier_type" field.
func IdentifierTypeNEQ(v string) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.FieldNEQ(FieldIdentifierType, v))
}

// IdentifierTypeIn applies the In predicate on the "identifier_type" field.
func IdentifierTypeIn(vs ...string) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.FieldIn(FieldIdentifierType, vs...))
}

// IdentifierTypeNotIn applies the NotIn predicate on the "identifier_type" field.
func IdentifierTypeNotIn(vs ...string) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.FieldNotIn(FieldIdentifierType, vs...))
}

// IdentifierTypeGT applies the GT predicate on the "identifier_type" field.
func IdentifierTypeGT(v string) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.FieldGT(FieldIdentifierType, v))
}

// IdentifierTypeGTE applies the GTE predicate on the "identifier_type" field.
func IdentifierTypeGTE(v string) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.FieldGTE(FieldIdentifierType, v))
}

// IdentifierTypeLT applies the LT predicate on the "identifier_type" field.
func IdentifierTypeLT(v string) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.FieldLT(FieldIdentifierType, v))
}

// IdentifierTypeLTE applies the LTE predicate on the "identifier_type" field.
func IdentifierTypeLTE(v string) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.FieldLTE(FieldIdentifierType, v))
}

// IdentifierTypeContains applies the Contains predicate on the "identifier_type" field.
func IdentifierTypeContains(v string) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.FieldContains(FieldIdentifierType, v))
}

// IdentifierTypeHasPrefix applies the HasPrefix predicate on the "identifier_type" field.
func IdentifierTypeHasPrefix(v string) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.FieldHasPrefix(FieldIdentifierType, v))
}

// IdentifierTypeHasSuffix applies the HasSuffix predicate on the "identifier_type" field.
func IdentifierTypeHasSuffix(v string) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.FieldHasSuffix(FieldIdentifierType, v))
}

// IdentifierTypeEqualFold applies the EqualFold predicate on the "identifier_type" field.
func IdentifierTypeEqualFold(v string) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.FieldEqualFold(FieldIdentifierType, v))
}

// IdentifierTypeContainsFold applies the ContainsFold predicate on the "identifier_type" field.
func IdentifierTypeContainsFold(v string) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.FieldContainsFold(FieldIdentifierType, v))
}

// IdentifierValueEQ applies the EQ predicate on the "identifier_value" field.
func IdentifierValueEQ(v string) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.FieldEQ(FieldIdentifierValue, v))
}

// IdentifierValueNEQ applies the NEQ predicate on the "identifier_value" field.
func IdentifierValueNEQ(v string) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.FieldNEQ(FieldIdentifierValue, v))
}

// IdentifierValueIn applies the In predicate on the "identifier_value" field.
func IdentifierValueIn(vs ...string) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.FieldIn(FieldIdentifierValue, vs...))
}

// IdentifierValueNotIn applies the NotIn predicate on the "identifier_value" field.
func IdentifierValueNotIn(vs ...string) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.FieldNotIn(FieldIdentifierValue, vs...))
}

// IdentifierValueGT applies the GT predicate on the "identifier_value" field.
func IdentifierValueGT(v string) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.FieldGT(FieldIdentifierValue, v))
}

// IdentifierValueGTE applies the GTE predicate on the "identifier_value" field.
func IdentifierValueGTE(v string) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.FieldGTE(FieldIdentifierValue, v))
}

// IdentifierValueLT applies the LT predicate on the "identifier_value" field.
func IdentifierValueLT(v string) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.FieldLT(FieldIdentifierValue, v))
}

// IdentifierValueLTE applies the LTE predicate on the "identifier_value" field.
func IdentifierValueLTE(v string) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.FieldLTE(FieldIdentifierValue, v))
}

// IdentifierValueContains applies the Contains predicate on the "identifier_value" field.
func IdentifierValueContains(v string) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.FieldContains(FieldIdentifierValue, v))
}

// IdentifierValueHasPrefix applies the HasPrefix predicate on the "identifier_value" field.
func IdentifierValueHasPrefix(v string) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.FieldHasPrefix(FieldIdentifierValue, v))
}

// IdentifierValueHasSuffix applies the HasSuffix predicate on the "identifier_value" field.
func IdentifierValueHasSuffix(v string) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.FieldHasSuffix(FieldIdentifierValue, v))
}

// IdentifierValueEqualFold applies the EqualFold predicate on the "identifier_value" field.
func IdentifierValueEqualFold(v string) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.FieldEqualFold(FieldIdentifierValue, v))
}

// IdentifierValueContainsFold applies the ContainsFold predicate on the "identifier_value" field.
func IdentifierValueContainsFold(v string) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.FieldContainsFold(FieldIdentifierValue, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.FieldNotNull(FieldMetadata))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.FieldLTE(FieldCreatedAt, v))
}

// HasEntity applies the HasEdge predicate on the "entity" edge.
func HasEntity() predicate.EntityIdentifier {
	return predicate.EntityIdentifier(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, EntityTable, EntityColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEntityWith applies the HasEdge predicate on the "entity" edge with a given conditions (other predicates).
func HasEntityWith(preds ...predicate.Entity) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(func(s *sql.Selector) {
		step := newEntityStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EntityIdentifier) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EntityIdentifier) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EntityIdentifier) predicate.EntityIdentifier {
	return predicate.EntityIdentifier(sql.NotPredicates(p))
}
