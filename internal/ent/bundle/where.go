// Code generated by ent, DO NOT EDIT.

package bundle

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fachebot/ko-digest-bot/internal/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Bundle {
	return predicate.Bundle(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Bundle {
	return predicate.Bundle(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Bundle {
	return predicate.Bundle(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Bundle {
	return predicate.Bundle(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Bundle {
	return predicate.Bundle(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Bundle {
	return predicate.Bundle(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Bundle {
	return predicate.Bundle(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Bundle {
	return predicate.Bundle(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Bundle {
	return predicate.Bundle(sql.FieldLTE(FieldID, id))
}

// CreateTime applies equality check predicate on the "create_time" field. It's identical to CreateTimeEQ.
func CreateTime(v time.Time) predicate.Bundle {
	return predicate.Bundle(sql.FieldEQ(FieldCreateTime, v))
}

// UpdateTime applies equality check predicate on the "update_time" field. It's identical to UpdateTimeEQ.
func UpdateTime(v time.Time) predicate.Bundle {
	return predicate.Bundle(sql.FieldEQ(FieldUpdateTime, v))
}

// Timezone applies equality check predicate on the "timezone" field. It's identical to TimezoneEQ.
func Timezone(v string) predicate.Bundle {
	return predicate.Bundle(sql.FieldEQ(FieldTimezone, v))
}

// BundleCategoryID applies equality check predicate on the "bundle_category_id" field. It's identical to BundleCategoryIDEQ.
func BundleCategoryID(v uuid.UUID) predicate.Bundle {
	return predicate.Bundle(sql.FieldEQ(FieldBundleCategoryID, v))
}

// CreateTimeEQ applies the EQ predicate on the "create_time" field.
func CreateTimeEQ(v time.Time) predicate.Bundle {
	return predicate.Bundle(sql.FieldEQ(FieldCreateTime, v))
}

// CreateTimeNEQ applies the NEQ predicate on the "create_time" field.
func CreateTimeNEQ(v time.Time) predicate.Bundle {
	return predicate.Bundle(sql.FieldNEQ(FieldCreateTime, v))
}

// CreateTimeIn applies the In predicate on the "create_time" field.
func CreateTimeIn(vs ...time.Time) predicate.Bundle {
	return predicate.Bundle(sql.FieldIn(FieldCreateTime, vs...))
}

// CreateTimeNotIn applies the NotIn predicate on the "create_time" field.
func CreateTimeNotIn(vs ...time.Time) predicate.Bundle {
	return predicate.Bundle(sql.FieldNotIn(FieldCreateTime, vs...))
}

// CreateTimeGT applies the GT predicate on the "create_time" field.
func CreateTimeGT(v time.Time) predicate.Bundle {
	return predicate.Bundle(sql.FieldGT(FieldCreateTime, v))
}

// CreateTimeGTE applies the GTE predicate on the "create_time" field.
func CreateTimeGTE(v time.Time) predicate.Bundle {
	return predicate.Bundle(sql.FieldGTE(FieldCreateTime, v))
}

// CreateTimeLT applies the LT predicate on the "create_time" field.
func CreateTimeLT(v time.Time) predicate.Bundle {
	return predicate.Bundle(sql.FieldLT(FieldCreateTime, v))
}

// CreateTimeLTE applies the LTE predicate on the "create_time" field.
func CreateTimeLTE(v time.Time) predicate.Bundle {
	return predicate.Bundle(sql.FieldLTE(FieldCreateTime, v))
}

// UpdateTimeEQ applies the EQ predicate on the "update_time" field.
func UpdateTimeEQ(v time.Time) predicate.Bundle {
	return predicate.Bundle(sql.FieldEQ(FieldUpdateTime, v))
}

// UpdateTimeNEQ applies the NEQ predicate on the "update_time" field.
func UpdateTimeNEQ(v time.Time) predicate.Bundle {
	return predicate.Bundle(sql.FieldNEQ(FieldUpdateTime, v))
}

// UpdateTimeIn applies the In predicate on the "update_time" field.
func UpdateTimeIn(vs ...time.Time) predicate.Bundle {
	return predicate.Bundle(sql.FieldIn(FieldUpdateTime, vs...))
}

// UpdateTimeNotIn applies the NotIn predicate on the "update_time" field.
func UpdateTimeNotIn(vs ...time.Time) predicate.Bundle {
	return predicate.Bundle(sql.FieldNotIn(FieldUpdateTime, vs...))
}

// UpdateTimeGT applies the GT predicate on the "update_time" field.
func UpdateTimeGT(v time.Time) predicate.Bundle {
	return predicate.Bundle(sql.FieldGT(FieldUpdateTime, v))
}

// UpdateTimeGTE applies the GTE predicate on the "update_time" field.
func UpdateTimeGTE(v time.Time) predicate.Bundle {
	return predicate.Bundle(sql.FieldGTE(FieldUpdateTime, v))
}

// UpdateTimeLT applies the LT predicate on the "update_time" field.
func UpdateTimeLT(v time.Time) predicate.Bundle {
	return predicate.Bundle(sql.FieldLT(FieldUpdateTime, v))
}

// UpdateTimeLTE applies the LTE predicate on the "update_time" field.
func UpdateTimeLTE(v time.Time) predicate.Bundle {
	return predicate.Bundle(sql.FieldLTE(FieldUpdateTime, v))
}

// TimezoneEQ applies the EQ predicate on the "timezone" field.
func TimezoneEQ(v string) predicate.Bundle {
	return predicate.Bundle(sql.FieldEQ(FieldTimezone, v))
}

// TimezoneNEQ applies the NEQ predicate on the "timezone" field.
func TimezoneNEQ(v string) predicate.Bundle {
	return predicate.Bundle(sql.FieldNEQ(FieldTimezone, v))
}

// TimezoneIn applies the In predicate on the "timezone" field.
func TimezoneIn(vs ...string) predicate.Bundle {
	return predicate.Bundle(sql.FieldIn(FieldTimezone, vs...))
}

// TimezoneNotIn applies the NotIn predicate on the "timezone" field.
func TimezoneNotIn(vs ...string) predicate.Bundle {
	return predicate.Bundle(sql.FieldNotIn(FieldTimezone, vs...))
}

// TimezoneGT applies the GT predicate on the "timezone" field.
func TimezoneGT(v string) predicate.Bundle {
	return predicate.Bundle(sql.FieldGT(FieldTimezone, v))
}

// TimezoneGTE applies the GTE predicate on the "timezone" field.
func TimezoneGTE(v string) predicate.Bundle {
	return predicate.Bundle(sql.FieldGTE(FieldTimezone, v))
}

// TimezoneLT applies the LT predicate on the "timezone" field.
func TimezoneLT(v string) predicate.Bundle {
	return predicate.Bundle(sql.FieldLT(FieldTimezone, v))
}

// TimezoneLTE applies the LTE predicate on the "timezone" field.
func TimezoneLTE(v string) predicate.Bundle {
	return predicate.Bundle(sql.FieldLTE(FieldTimezone, v))
}

// TimezoneContains applies the Contains predicate on the "timezone" field.
func TimezoneContains(v string) predicate.Bundle {
	return predicate.Bundle(sql.FieldContains(FieldTimezone, v))
}

// TimezoneHasPrefix applies the HasPrefix predicate on the "timezone" field.
func TimezoneHasPrefix(v string) predicate.Bundle {
	return predicate.Bundle(sql.FieldHasPrefix(FieldTimezone, v))
}

// TimezoneHasSuffix applies the HasSuffix predicate on the "timezone" field.
func TimezoneHasSuffix(v string) predicate.Bundle {
	return predicate.Bundle(sql.FieldHasSuffix(FieldTimezone, v))
}

// TimezoneEqualFold applies the EqualFold predicate on the "timezone" field.
func TimezoneEqualFold(v string) predicate.Bundle {
	return predicate.Bundle(sql.FieldEqualFold(FieldTimezone, v))
}

// TimezoneContainsFold applies the ContainsFold predicate on the "timezone" field.
func TimezoneContainsFold(v string) predicate.Bundle {
	return predicate.Bundle(sql.FieldContainsFold(FieldTimezone, v))
}

// BundleCategoryIDEQ applies the EQ predicate on the "bundle_category_id" field.
func BundleCategoryIDEQ(v uuid.UUID) predicate.Bundle {
	return predicate.Bundle(sql.FieldEQ(FieldBundleCategoryID, v))
}

// BundleCategoryIDNEQ applies the NEQ predicate on the "bundle_category_id" field.
func BundleCategoryIDNEQ(v uuid.UUID) predicate.Bundle {
	return predicate.Bundle(sql.FieldNEQ(FieldBundleCategoryID, v))
}

// BundleCategoryIDIn applies the In predicate on the "bundle_category_id" field.
func BundleCategoryIDIn(vs ...uuid.UUID) predicate.Bundle {
	return predicate.Bundle(sql.FieldIn(FieldBundleCategoryID, vs...))
}

// BundleCategoryIDNotIn applies the NotIn predicate on the "bundle_category_id" field.
func BundleCategoryIDNotIn(vs ...uuid.UUID) predicate.Bundle {
	return predicate.Bundle(sql.FieldNotIn(FieldBundleCategoryID, vs...))
}

// HasBundleCategory applies the HasEdge predicate on the "bundle_category" edge.
func HasBundleCategory() predicate.Bundle {
	return predicate.Bundle(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, BundleCategoryTable, BundleCategoryColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBundleCategoryWith applies the HasEdge predicate on the "bundle_category" edge with a given conditions (other predicates).
func HasBundleCategoryWith(preds ...predicate.BundleCategory) predicate.Bundle {
	return predicate.Bundle(func(s *sql.Selector) {
		step := newBundleCategoryStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasKnowledgeObjects applies the HasEdge predicate on the "knowledge_objects" edge.
func HasKnowledgeObjects() predicate.Bundle {
	return predicate.Bundle(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, KnowledgeObjectsTable, KnowledgeObjectsPrimaryKey...),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasKnowledgeObjectsWith applies the HasEdge predicate on the "knowledge_objects" edge with a given conditions (other predicates).
func HasKnowledgeObjectsWith(preds ...predicate.KnowledgeObject) predicate.Bundle {
	return predicate.Bundle(func(s *sql.Selector) {
		step := newKnowledgeObjectsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Bundle) predicate.Bundle {
	return predicate.Bundle(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Bundle) predicate.Bundle {
	return predicate.Bundle(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Bundle) predicate.Bundle {
	return predicate.Bundle(sql.NotPredicates(p))
}
