// Code generated by ent, DO NOT EDIT.

package knowledgeobject

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fachebot/ko-digest-bot/internal/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.KnowledgeObject {
	return predicate.KnowledgeObject(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.KnowledgeObject {
	return predicate.KnowledgeObject(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.KnowledgeObject {
	return predicate.KnowledgeObject(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.KnowledgeObject {
	return predicate.KnowledgeObject(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.KnowledgeObject {
	return predicate.KnowledgeObject(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.KnowledgeObject {
	return predicate.KnowledgeObject(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.KnowledgeObject {
	return predicate.KnowledgeObject(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.KnowledgeObject {
	return predicate.KnowledgeObject(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.KnowledgeObject {
	return predicate.KnowledgeObject(sql.FieldLTE(FieldID, id))
}

// CreateTime applies equality check predicate on the "create_time" field. It's identical to CreateTimeEQ.
func CreateTime(v time.Time) predicate.KnowledgeObject {
	return predicate.KnowledgeObject(sql.FieldEQ(FieldCreateTime, v))
}

// UpdateTime applies equality check predicate on the "update_time" field. It's identical to UpdateTimeEQ.
func UpdateTime(v time.Time) predicate.KnowledgeObject {
	return predicate.KnowledgeObject(sql.FieldEQ(FieldUpdateTime, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.KnowledgeObject {
	return predicate.KnowledgeObject(sql.FieldEQ(FieldTitle, v))
}

// Deleted applies equality check predicate on the "deleted" field. It's identical to DeletedEQ.
func Deleted(v bool) predicate.KnowledgeObject {
	return predicate.KnowledgeObject(sql.FieldEQ(FieldDeleted, v))
}

// CreateTimeEQ applies the EQ predicate on the "create_time" field.
func CreateTimeEQ(v time.Time) predicate.KnowledgeObject {
	return predicate.KnowledgeObject(sql.FieldEQ(FieldCreateTime, v))
}

// CreateTimeNEQ applies the NEQ predicate on the "create_time" field.
func CreateTimeNEQ(v time.Time) predicate.KnowledgeObject {
	return predicate.KnowledgeObject(sql.FieldNEQ(FieldCreateTime, v))
}

// CreateTimeIn applies the In predicate on the "create_time" field.
func CreateTimeIn(vs ...time.Time) predicate.KnowledgeObject {
	return predicate.KnowledgeObject(sql.FieldIn(FieldCreateTime, vs...))
}

// CreateTimeNotIn applies the NotIn predicate on the "create_time" field.
func CreateTimeNotIn(vs ...time.Time) predicate.KnowledgeObject {
	return predicate.KnowledgeObject(sql.FieldNotIn(FieldCreateTime, vs...))
}

// CreateTimeGT applies the GT predicate on the "create_time" field.
func CreateTimeGT(v time.Time) predicate.KnowledgeObject {
	return predicate.KnowledgeObject(sql.FieldGT(FieldCreateTime, v))
}

// CreateTimeGTE applies the GTE predicate on the "create_time" field.
func CreateTimeGTE(v time.Time) predicate.KnowledgeObject {
	return predicate.KnowledgeObject(sql.FieldGTE(FieldCreateTime, v))
}

// CreateTimeLT applies the LT predicate on the "create_time" field.
func CreateTimeLT(v time.Time) predicate.KnowledgeObject {
	return predicate.KnowledgeObject(sql.FieldLT(FieldCreateTime, v))
}

// CreateTimeLTE applies the LTE predicate on the "create_time" field.
func CreateTimeLTE(v time.Time) predicate.KnowledgeObject {
	return predicate.KnowledgeObject(sql.FieldLTE(FieldCreateTime, v))
}

// UpdateTimeEQ applies the EQ predicate on the "update_time" field.
func UpdateTimeEQ(v time.Time) predicate.KnowledgeObject {
	return predicate.KnowledgeObject(sql.FieldEQ(FieldUpdateTime, v))
}

// UpdateTimeNEQ applies the NEQ predicate on the "update_time" field.
func UpdateTimeNEQ(v time.Time) predicate.KnowledgeObject {
	return predicate.KnowledgeObject(sql.FieldNEQ(FieldUpdateTime, v))
}

// UpdateTimeIn applies the In predicate on the "update_time" field.
func UpdateTimeIn(vs ...time.Time) predicate.KnowledgeObject {
	return predicate.KnowledgeObject(sql.FieldIn(FieldUpdateTime, vs...))
}

// UpdateTimeNotIn applies the NotIn predicate on the "update_time" field.
func UpdateTimeNotIn(vs ...time.Time) predicate.KnowledgeObject {
	return predicate.KnowledgeObject(sql.FieldNotIn(FieldUpdateTime, vs...))
}

// UpdateTimeGT applies the GT predicate on the "update_time" field.
func UpdateTimeGT(v time.Time) predicate.KnowledgeObject {
	return predicate.KnowledgeObject(sql.FieldGT(FieldUpdateTime, v))
}

// UpdateTimeGTE applies the GTE predicate on the "update_time" field.
func UpdateTimeGTE(v time.Time) predicate.KnowledgeObject {
	return predicate.KnowledgeObject(sql.FieldGTE(FieldUpdateTime, v))
}

// UpdateTimeLT applies the LT predicate on the "update_time" field.
func UpdateTimeLT(v time.Time) predicate.KnowledgeObject {
	return predicate.KnowledgeObject(sql.FieldLT(FieldUpdateTime, v))
}

// UpdateTimeLTE applies the LTE predicate on the "update_time" field.
func UpdateTimeLTE(v time.Time) predicate.KnowledgeObject {
	return predicate.KnowledgeObject(sql.FieldLTE(FieldUpdateTime, v))
}

// KoTypeEQ applies the EQ predicate on the "ko_type" field.
func KoTypeEQ(v KoType) predicate.KnowledgeObject {
	return predicate.KnowledgeObject(sql.FieldEQ(FieldKoType, v))
}

// KoTypeNEQ applies the NEQ predicate on the "ko_type" field.
func KoTypeNEQ(v KoType) predicate.KnowledgeObject {
	return predicate.KnowledgeObject(sql.FieldNEQ(FieldKoType, v))
}

// KoTypeIn applies the In predicate on the "ko_type" field.
func KoTypeIn(vs ...KoType) predicate.KnowledgeObject {
	return predicate.KnowledgeObject(sql.FieldIn(FieldKoType, vs...))
}

// KoTypeNotIn applies the NotIn predicate on the "ko_type" field.
func KoTypeNotIn(vs ...KoType) predicate.KnowledgeObject {
	return predicate.KnowledgeObject(sql.FieldNotIn(FieldKoType, vs...))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.KnowledgeObject {
	return predicate.KnowledgeObject(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.KnowledgeObject {
	return predicate.KnowledgeObject(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.KnowledgeObject {
	return predicate.KnowledgeObject(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.KnowledgeObject {
	return predicate.KnowledgeObject(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.KnowledgeObject {
	return predicate.KnowledgeObject(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.KnowledgeObject {
	return predicate.KnowledgeObject(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.KnowledgeObject {
	return predicate.KnowledgeObject(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.KnowledgeObject {
	return predicate.KnowledgeObject(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.KnowledgeObject {
	return predicate.KnowledgeObject(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.KnowledgeObject {
	return predicate.KnowledgeObject(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.KnowledgeObject {
	return predicate.KnowledgeObject(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.KnowledgeObject {
	return predicate.KnowledgeObject(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.KnowledgeObject {
	return predicate.KnowledgeObject(sql.FieldContainsFold(FieldTitle, v))
}

// DeletedEQ applies the EQ predicate on the "deleted" field.
func DeletedEQ(v bool) predicate.KnowledgeObject {
	return predicate.KnowledgeObject(sql.FieldEQ(FieldDeleted, v))
}

// DeletedNEQ applies the NEQ predicate on the "deleted" field.
func DeletedNEQ(v bool) predicate.KnowledgeObject {
	return predicate.KnowledgeObject(sql.FieldNEQ(FieldDeleted, v))
}

// HasParent applies the HasEdge predicate on the "parent" edge.
func HasParent() predicate.KnowledgeObject {
	return predicate.KnowledgeObject(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ParentTable, ParentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasParentWith applies the HasEdge predicate on the "parent" edge with a given conditions (other predicates).
func HasParentWith(preds ...predicate.KnowledgeObject) predicate.KnowledgeObject {
	return predicate.KnowledgeObject(func(s *sql.Selector) {
		step := newParentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasChildren applies the HasEdge predicate on the "children" edge.
func HasChildren() predicate.KnowledgeObject {
	return predicate.KnowledgeObject(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ChildrenTable, ChildrenColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChildrenWith applies the HasEdge predicate on the "children" edge with a given conditions (other predicates).
func HasChildrenWith(preds ...predicate.KnowledgeObject) predicate.KnowledgeObject {
	return predicate.KnowledgeObject(func(s *sql.Selector) {
		step := newChildrenStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasBundleCategories applies the HasEdge predicate on the "bundle_categories" edge.
func HasBundleCategories() predicate.KnowledgeObject {
	return predicate.KnowledgeObject(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, BundleCategoriesTable, BundleCategoriesPrimaryKey...),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBundleCategoriesWith applies the HasEdge predicate on the "bundle_categories" edge with a given conditions (other predicates).
func HasBundleCategoriesWith(preds ...predicate.BundleCategory) predicate.KnowledgeObject {
	return predicate.KnowledgeObject(func(s *sql.Selector) {
		step := newBundleCategoriesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSummary applies the HasEdge predicate on the "summary" edge.
func HasSummary() predicate.KnowledgeObject {
	return predicate.KnowledgeObject(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, SummaryTable, SummaryColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSummaryWith applies the HasEdge predicate on the "summary" edge with a given conditions (other predicates).
func HasSummaryWith(preds ...predicate.KoSummary) predicate.KnowledgeObject {
	return predicate.KnowledgeObject(func(s *sql.Selector) {
		step := newSummaryStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasBundles applies the HasEdge predicate on the "bundles" edge.
func HasBundles() predicate.KnowledgeObject {
	return predicate.KnowledgeObject(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, BundlesTable, BundlesPrimaryKey...),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBundlesWith applies the HasEdge predicate on the "bundles" edge with a given conditions (other predicates).
func HasBundlesWith(preds ...predicate.Bundle) predicate.KnowledgeObject {
	return predicate.KnowledgeObject(func(s *sql.Selector) {
		step := newBundlesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.KnowledgeObject) predicate.KnowledgeObject {
	return predicate.KnowledgeObject(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.KnowledgeObject) predicate.KnowledgeObject {
	return predicate.KnowledgeObject(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.KnowledgeObject) predicate.KnowledgeObject {
	return predicate.KnowledgeObject(sql.NotPredicates(p))
}
