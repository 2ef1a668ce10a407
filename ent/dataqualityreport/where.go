// Code generated by ent, DO NOT EDIT.

package dataqualityreport

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/memograph/memograph/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DataQualityReport {
	return predicate.DataQualityReport(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DataQualityReport {
	return predicate.DataQualityReport(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DataQualityReport {
	return predicate.DataQualityReport(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DataQualityReport {
	return predicate.DataQualityReport(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DataQualityReport {
	return predicate.DataQualityReport(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DataQualityReport {
	return predicate.DataQualityReport(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DataQualityReport {
	return predicate.DataQualityReport(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DataQualityReport {
	return predicate.DataQualityReport(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DataQualityReport {
	return predicate.DataQualityReport(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DataQualityReport {
	return predicate.DataQualityReport(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DataQualityReport {
	return predicate.DataQualityReport(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DataQualityReport {
	return predicate.DataQualityReport(sql.FieldEQ(FieldCreatedAt, v))
}

// TriggeredByEQ applies the EQ predicate on the "triggered_by" field.
func TriggeredByEQ(v TriggeredBy) predicate.DataQualityReport {
	return predicate.DataQualityReport(sql.FieldEQ(FieldTriggeredBy, v))
}

// TriggeredByNEQ applies the NEQ predicate on the "triggered_by" field.
func TriggeredByNEQ(v TriggeredBy) predicate.DataQualityReport {
	return predicate.DataQualityReport(sql.FieldNEQ(FieldTriggeredBy, v))
}

// TriggeredByIn applies the In predicate on the "triggered_by" field.
func TriggeredByIn(vs ...TriggeredBy) predicate.DataQualityReport {
	return predicate.DataQualityReport(sql.FieldIn(FieldTriggeredBy, vs...))
}

// TriggeredByNotIn applies the NotIn predicate on the "triggered_by" field.
func TriggeredByNotIn(vs ...TriggeredBy) predicate.DataQualityReport {
	return predicate.DataQualityReport(sql.FieldNotIn(FieldTriggeredBy, vs...))
}

// MetricsIsNil applies the IsNil predicate on the "metrics" field.
func MetricsIsNil() predicate.DataQualityReport {
	return predicate.DataQualityReport(sql.FieldIsNull(FieldMetrics))
}

// MetricsNotNil applies the NotNil predicate on the "metrics" field.
func MetricsNotNil() predicate.DataQualityReport {
	return predicate.DataQualityReport(sql.FieldNotNull(FieldMetrics))
}

// IssuesIsNil applies the IsNil predicate on the "issues" field.
func IssuesIsNil() predicate.DataQualityReport {
	return predicate.DataQualityReport(sql.FieldIsNull(FieldIssues))
}

// IssuesNotNil applies the NotNil predicate on the "issues" field.
func IssuesNotNil() predicate.DataQualityReport {
	return predicate.DataQualityReport(sql.FieldNotNull(FieldIssues))
}

// ResolutionsIsNil applies the IsNil predicate on the "resolutions" field.
func ResolutionsIsNil() predicate.DataQualityReport {
	return predicate.DataQualityReport(sql.FieldIsNull(FieldResolutions))
}

// ResolutionsNotNil applies the NotNil predicate on the "resolutions" field.
func ResolutionsNotNil() predicate.DataQualityReport {
	return predicate.DataQualityReport(sql.FieldNotNull(FieldResolutions))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DataQualityReport {
	return predicate.DataQualityReport(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DataQualityReport {
	return predicate.DataQualityReport(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DataQualityReport {
	return predicate.DataQualityReport(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DataQualityReport {
	return predicate.DataQualityReport(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DataQualityReport {
	return predicate.DataQualityReport(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DataQualityReport {
	return predicate.DataQualityReport(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DataQualityReport {
	return predicate.DataQualityReport(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DataQualityReport {
	return predicate.DataQualityReport(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DataQualityReport) predicate.DataQualityReport {
	return predicate.DataQualityReport(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DataQualityReport) predicate.DataQualityReport {
	return predicate.DataQualityReport(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DataQualityReport) predicate.DataQualityReport {
	return predicate.DataQualityReport(sql.NotPredicates(p))
}
