// Code generated by ent, DO NOT EDIT.

package activityclosure

import (
	"entgo.io/ent/dialect/sql"
	"github.com/memograph/memograph/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ActivityClosure {
	return predicate.ActivityClosure(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ActivityClosure {
	return predicate.ActivityClosure(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ActivityClosure {
	return predicate.ActivityClosure(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ActivityClosure {
	return predicate.ActivityClosure(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ActivityClosure {
	return predicate.ActivityClosure(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ActivityClosure {
	return predicate.ActivityClosure(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ActivityClosure {
	return predicate.ActivityClosure(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ActivityClosure {
	return predicate.ActivityClosure(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ActivityClosure {
	return predicate.ActivityClosure(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ActivityClosure {
	return predicate.ActivityClosure(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ActivityClosure {
	return predicate.ActivityClosure(sql.FieldContainsFold(FieldID, id))
}

// AncestorID applies equality check predicate on the "ancestor_id" field. It's identical to AncestorIDEQ.
func AncestorID(v string) predicate.ActivityClosure {
	return predicate.ActivityClosure(sql.FieldEQ(FieldAncestorID, v))
}

// DescendantID applies equality check predicate on the "descendant_id" field. It's identical to DescendantIDEQ.
func DescendantID(v string) predicate.ActivityClosure {
	return predicate.ActivityClosure(sql.FieldEQ(FieldDescendantID, v))
}

// Depth applies equality check predicate on the "depth" field. It's identical to DepthEQ.
func Depth(v int) predicate.ActivityClosure {
	return predicate.ActivityClosure(sql.FieldEQ(FieldDepth, v))
}

// AncestorIDEQ applies the EQ predicate on the "ancestor_id" field.
func AncestorIDEQ(v string) predicate.ActivityClosure {
	return predicate.ActivityClosure(sql.FieldEQ(FieldAncestorID, v))
}

// AncestorIDNEQ applies the NEQ predicate on the "ancestor_id" field.
func AncestorIDNEQ(v string) predicate.ActivityClosure {
	return predicate.ActivityClosure(sql.FieldNEQ(FieldAncestorID, v))
}

// AncestorIDIn applies the In predicate on the "ancestor_id" field.
func AncestorIDIn(vs ...string) predicate.ActivityClosure {
	return predicate.ActivityClosure(sql.FieldIn(FieldAncestorID, vs...))
}

// AncestorIDNotIn applies the NotIn predicate on the "ancestor_id" field.
func AncestorIDNotIn(vs ...string) predicate.ActivityClosure {
	return predicate.ActivityClosure(sql.FieldNotIn(FieldAncestorID, vs...))
}

// AncestorIDGT applies the GT predicate on the "ancestor_id" field.
func AncestorIDGT(v string) predicate.ActivityClosure {
	return predicate.ActivityClosure(sql.FieldGT(FieldAncestorID, v))
}

// AncestorIDGTE applies the GTE predicate on the "ancestor_id" field.
func AncestorIDGTE(v string) predicate.ActivityClosure {
	return predicate.ActivityClosure(sql.FieldGTE(FieldAncestorID, v))
}

// AncestorIDLT applies the LT predicate on the "ancestor_id" field.
func AncestorIDLT(v string) predicate.ActivityClosure {
	return predicate.ActivityClosure(sql.FieldLT(FieldAncestorID, v))
}

// AncestorIDLTE applies the LTE predicate on the "ancestor_id" field.
func AncestorIDLTE(v string) predicate.ActivityClosure {
	return predicate.ActivityClosure(sql.FieldLTE(FieldAncestorID, v))
}

// AncestorIDContains applies the Contains predicate on the "ancestor_id" field.
func AncestorIDContains(v string) predicate.ActivityClosure {
	return predicate.ActivityClosure(sql.FieldContains(FieldAncestorID, v))
}

// AncestorIDHasPrefix applies the HasPrefix predicate on the "ancestor_id" field.
func AncestorIDHasPrefix(v string) predicate.ActivityClosure {
	return predicate.ActivityClosure(sql.FieldHasPrefix(FieldAncestorID, v))
}

// AncestorIDHasSuffix applies the HasSuffix predicate on the "ancestor_id" field.
func AncestorIDHasSuffix(v string) predicate.ActivityClosure {
	return predicate.ActivityClosure(sql.FieldHasSuffix(FieldAncestorID, v))
}

// AncestorIDEqualFold applies the EqualFold predicate on the "ancestor_id" field.
func AncestorIDEqualFold(v string) predicate.ActivityClosure {
	return predicate.ActivityClosure(sql.FieldEqualFold(FieldAncestorID, v))
}

// AncestorIDContainsFold applies the ContainsFold predicate on the "ancestor_id" field.
func AncestorIDContainsFold(v string) predicate.ActivityClosure {
	return predicate.ActivityClosure(sql.FieldContainsFold(FieldAncestorID, v))
}

// DescendantIDEQ applies the EQ predicate on the "descendant_id" field.
func DescendantIDEQ(v string) predicate.ActivityClosure {
	return predicate.ActivityClosure(sql.FieldEQ(FieldDescendantID, v))
}

// DescendantIDNEQ applies the NEQ predicate on the "descendant_id" field.
func DescendantIDNEQ(v string) predicate.ActivityClosure {
	return predicate.ActivityClosure(sql.FieldNEQ(FieldDescendantID, v))
}

// DescendantIDIn applies the In predicate on the "descendant_id" field.
func DescendantIDIn(vs ...string) predicate.ActivityClosure {
	return predicate.ActivityClosure(sql.FieldIn(FieldDescendantID, vs...))
}

// DescendantIDNotIn applies the NotIn predicate on the "descendant_id" field.
func DescendantIDNotIn(vs ...string) predicate.ActivityClosure {
	return predicate.ActivityClosure(sql.FieldNotIn(FieldDescendantID, vs...))
}

// DescendantIDGT applies the GT predicate on the "descendant_id" field.
func DescendantIDGT(v string) predicate.ActivityClosure {
	return predicate.ActivityClosure(sql.FieldGT(FieldDescendantID, v))
}

// DescendantIDGTE applies the GTE predicate on the "descendant_id" field.
func DescendantIDGTE(v string) predicate.ActivityClosure {
	return predicate.ActivityClosure(sql.FieldGTE(FieldDescendantID, v))
}

// DescendantIDLT applies the LT predicate on the "descendant_id" field.
func DescendantIDLT(v string) predicate.ActivityClosure {
	return predicate.ActivityClosure(sql.FieldLT(FieldDescendantID, v))
}

// DescendantIDLTE applies the LTE predicate on the "descendant_id" field.
func DescendantIDLTE(v string) predicate.ActivityClosure {
	return predicate.ActivityClosure(sql.FieldLTE(FieldDescendantID, v))
}

// DescendantIDContains applies the Contains predicate on the "descendant_id" field.
func DescendantIDContains(v string) predicate.ActivityClosure {
	return predicate.ActivityClosure(sql.FieldContains(FieldDescendantID, v))
}

// DescendantIDHasPrefix applies the HasPrefix predicate on the "descendant_id" field.
func DescendantIDHasPrefix(v string) predicate.ActivityClosure {
	return predicate.ActivityClosure(sql.FieldHasPrefix(FieldDescendantID, v))
}

// DescendantIDHasSuffix applies the HasSuffix predicate on the "descendant_id" field.
func DescendantIDHasSuffix(v string) predicate.ActivityClosure {
	return predicate.ActivityClosure(sql.FieldHasSuffix(FieldDescendantID, v))
}

// DescendantIDEqualFold applies the EqualFold predicate on the "descendant_id" field.
func DescendantIDEqualFold(v string) predicate.ActivityClosure {
	return predicate.ActivityClosure(sql.FieldEqualFold(FieldDescendantID, v))
}

// DescendantIDContainsFold applies the ContainsFold predicate on the "descendant_id" field.
func DescendantIDContainsFold(v string) predicate.ActivityClosure {
	return predicate.ActivityClosure(sql.FieldContainsFold(FieldDescendantID, v))
}

// DepthEQ applies the EQ predicate on the "depth" field.
func DepthEQ(v int) predicate.ActivityClosure {
	return predicate.ActivityClosure(sql.FieldEQ(FieldDepth, v))
}

// DepthNEQ applies the NEQ predicate on the "depth" field.
func DepthNEQ(v int) predicate.ActivityClosure {
	return predicate.ActivityClosure(sql.FieldNEQ(FieldDepth, v))
}

// DepthIn applies the In predicate on the "depth" field.
func DepthIn(vs ...int) predicate.ActivityClosure {
	return predicate.ActivityClosure(sql.FieldIn(FieldDepth, vs...))
}

// DepthNotIn applies the NotIn predicate on the "depth" field.
func DepthNotIn(vs ...int) predicate.ActivityClosure {
	return predicate.ActivityClosure(sql.FieldNotIn(FieldDepth, vs...))
}

// DepthGT applies the GT predicate on the "depth" field.
func DepthGT(v int) predicate.ActivityClosure {
	return predicate.ActivityClosure(sql.FieldGT(FieldDepth, v))
}

// DepthGTE applies the GTE predicate on the "depth" field.
func DepthGTE(v int) predicate.ActivityClosure {
	return predicate.ActivityClosure(sql.FieldGTE(FieldDepth, v))
}

// DepthLT applies the LT predicate on the "depth" field.
func DepthLT(v int) predicate.ActivityClosure {
	return predicate.ActivityClosure(sql.FieldLT(FieldDepth, v))
}

// DepthLTE applies the LTE predicate on the "depth" field.
func DepthLTE(v int) predicate.ActivityClosure {
	return predicate.ActivityClosure(sql.FieldLTE(FieldDepth, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ActivityClosure) predicate.ActivityClosure {
	return predicate.ActivityClosure(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ActivityClosure) predicate.ActivityClosure {
	return predicate.ActivityClosure(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ActivityClosure) predicate.ActivityClosure {
	return predicate.ActivityClosure(sql.NotPredicates(p))
}
