// Code generated by ent, DO NOT EDIT.

package bundlecategory

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fachebot/ko-digest-bot/internal/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.BundleCategory {
	return predicate.BundleCategory(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.BundleCategory {
	return predicate.BundleCategory(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.BundleCategory {
	return predicate.BundleCategory(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.BundleCategory {
	return predicate.BundleCategory(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.BundleCategory {
	return predicate.BundleCategory(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.BundleCategory {
	return predicate.BundleCategory(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.BundleCategory {
	return predicate.BundleCategory(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.BundleCategory {
	return predicate.BundleCategory(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.BundleCategory {
	return predicate.BundleCategory(sql.FieldLTE(FieldID, id))
}

// CreateTime applies equality check predicate on the "create_time" field. It's identical to CreateTimeEQ.
func CreateTime(v time.Time) predicate.BundleCategory {
	return predicate.BundleCategory(sql.FieldEQ(FieldCreateTime, v))
}

// UpdateTime applies equality check predicate on the "update_time" field. It's identical to UpdateTimeEQ.
func UpdateTime(v time.Time) predicate.BundleCategory {
	return predicate.BundleCategory(sql.FieldEQ(FieldUpdateTime, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.BundleCategory {
	return predicate.BundleCategory(sql.FieldEQ(FieldName, v))
}

// SummaryRequired applies equality check predicate on the "summary_required" field. It's identical to SummaryRequiredEQ.
func SummaryRequired(v bool) predicate.BundleCategory {
	return predicate.BundleCategory(sql.FieldEQ(FieldSummaryRequired, v))
}

// CreateTimeEQ applies the EQ predicate on the "create_time" field.
func CreateTimeEQ(v time.Time) predicate.BundleCategory {
	return predicate.BundleCategory(sql.FieldEQ(FieldCreateTime, v))
}

// CreateTimeNEQ applies the NEQ predicate on the "create_time" field.
func CreateTimeNEQ(v time.Time) predicate.BundleCategory {
	return predicate.BundleCategory(sql.FieldNEQ(FieldCreateTime, v))
}

// CreateTimeIn applies the In predicate on the "create_time" field.
func CreateTimeIn(vs ...time.Time) predicate.BundleCategory {
	return predicate.BundleCategory(sql.FieldIn(FieldCreateTime, vs...))
}

// CreateTimeNotIn applies the NotIn predicate on the "create_time" field.
func CreateTimeNotIn(vs ...time.Time) predicate.BundleCategory {
	return predicate.BundleCategory(sql.FieldNotIn(FieldCreateTime, vs...))
}

// CreateTimeGT applies the GT predicate on the "create_time" field.
func CreateTimeGT(v time.Time) predicate.BundleCategory {
	return predicate.BundleCategory(sql.FieldGT(FieldCreateTime, v))
}

// CreateTimeGTE applies the GTE predicate on the "create_time" field.
func CreateTimeGTE(v time.Time) predicate.BundleCategory {
	return predicate.BundleCategory(sql.FieldGTE(FieldCreateTime, v))
}

// CreateTimeLT applies the LT predicate on the "create_time" field.
func CreateTimeLT(v time.Time) predicate.BundleCategory {
	return predicate.BundleCategory(sql.FieldLT(FieldCreateTime, v))
}

// CreateTimeLTE applies the LTE predicate on the "create_time" field.
func CreateTimeLTE(v time.Time) predicate.BundleCategory {
	return predicate.BundleCategory(sql.FieldLTE(FieldCreateTime, v))
}

// UpdateTimeEQ applies the EQ predicate on the "update_time" field.
func UpdateTimeEQ(v time.Time) predicate.BundleCategory {
	return predicate.BundleCategory(sql.FieldEQ(FieldUpdateTime, v))
}

// UpdateTimeNEQ applies the NEQ predicate on the "update_time" field.
func UpdateTimeNEQ(v time.Time) predicate.BundleCategory {
	return predicate.BundleCategory(sql.FieldNEQ(FieldUpdateTime, v))
}

// UpdateTimeIn applies the In predicate on the "update_time" field.
func UpdateTimeIn(vs ...time.Time) predicate.BundleCategory {
	return predicate.BundleCategory(sql.FieldIn(FieldUpdateTime, vs...))
}

// UpdateTimeNotIn applies the NotIn predicate on the "update_time" field.
func UpdateTimeNotIn(vs ...time.Time) predicate.BundleCategory {
	return predicate.BundleCategory(sql.FieldNotIn(FieldUpdateTime, vs...))
}

// UpdateTimeGT applies the GT predicate on the "update_time" field.
func UpdateTimeGT(v time.Time) predicate.BundleCategory {
	return predicate.BundleCategory(sql.FieldGT(FieldUpdateTime, v))
}

// UpdateTimeGTE applies the GTE predicate on the "update_time" field.
func UpdateTimeGTE(v time.Time) predicate.BundleCategory {
	return predicate.BundleCategory(sql.FieldGTE(FieldUpdateTime, v))
}

// UpdateTimeLT applies the LT predicate on the "update_time" field.
func UpdateTimeLT(v time.Time) predicate.BundleCategory {
	return predicate.BundleCategory(sql.FieldLT(FieldUpdateTime, v))
}

// UpdateTimeLTE applies the LTE predicate on the "update_time" field.
func UpdateTimeLTE(v time.Time) predicate.BundleCategory {
	return predicate.BundleCategory(sql.FieldLTE(FieldUpdateTime, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.BundleCategory {
	return predicate.BundleCategory(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.BundleCategory {
	return predicate.BundleCategory(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.BundleCategory {
	return predicate.BundleCategory(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.BundleCategory {
	return predicate.BundleCategory(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.BundleCategory {
	return predicate.BundleCategory(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.BundleCategory {
	return predicate.BundleCategory(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.BundleCategory {
	return predicate.BundleCategory(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.BundleCategory {
	return predicate.BundleCategory(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.BundleCategory {
	return predicate.BundleCategory(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.BundleCategory {
	return predicate.BundleCategory(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.BundleCategory {
	return predicate.BundleCategory(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.BundleCategory {
	return predicate.BundleCategory(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.BundleCategory {
	return predicate.BundleCategory(sql.FieldContainsFold(FieldName, v))
}

// SummaryRequiredEQ applies the EQ predicate on the "summary_required" field.
func SummaryRequiredEQ(v bool) predicate.BundleCategory {
	return predicate.BundleCategory(sql.FieldEQ(FieldSummaryRequired, v))
}

// SummaryRequiredNEQ applies the NEQ predicate on the "summary_required" field.
func SummaryRequiredNEQ(v bool) predicate.BundleCategory {
	return predicate.BundleCategory(sql.FieldNEQ(FieldSummaryRequired, v))
}

// HasKnowledgeObjects applies the HasEdge predicate on the "knowledge_objects" edge.
func HasKnowledgeObjects() predicate.BundleCategory {
	return predicate.BundleCategory(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, KnowledgeObjectsTable, KnowledgeObjectsPrimaryKey...),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasKnowledgeObjectsWith applies the HasEdge predicate on the "knowledge_objects" edge with a given conditions (other predicates).
func HasKnowledgeObjectsWith(preds ...predicate.KnowledgeObject) predicate.BundleCategory {
	return predicate.BundleCategory(func(s *sql.Selector) {
		step := newKnowledgeObjectsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasBundles applies the HasEdge predicate on the "bundles" edge.
func HasBundles() predicate.BundleCategory {
	return predicate.BundleCategory(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, true, BundlesTable, BundlesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBundlesWith applies the HasEdge predicate on the "bundles" edge with a given conditions (other predicates).
func HasBundlesWith(preds ...predicate.Bundle) predicate.BundleCategory {
	return predicate.BundleCategory(func(s *sql.Selector) {
		step := newBundlesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BundleCategory) predicate.BundleCategory {
	return predicate.BundleCategory(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BundleCategory) predicate.BundleCategory {
	return predicate.BundleCategory(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BundleCategory) predicate.BundleCategory {
	return predicate.BundleCategory(sql.NotPredicates(p))
}
