// Code generated by ent, DO NOT EDIT.

package kosummary

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fachebot/ko-digest-bot/internal/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldLTE(FieldID, id))
}

// CreateTime applies equality check predicate on the "create_time" field. It's identical to CreateTimeEQ.
func CreateTime(v time.Time) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldEQ(FieldCreateTime, v))
}

// UpdateTime applies equality check predicate on the "update_time" field. It's identical to UpdateTimeEQ.
func UpdateTime(v time.Time) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldEQ(FieldUpdateTime, v))
}

// KoID applies equality check predicate on the "ko_id" field. It's identical to KoIDEQ.
func KoID(v uuid.UUID) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldEQ(FieldKoID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldEQ(FieldTitle, v))
}

// SummaryText applies equality check predicate on the "summary_text" field. It's identical to SummaryTextEQ.
func SummaryText(v string) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldEQ(FieldSummaryText, v))
}

// SummaryOneLiner applies equality check predicate on the "summary_one_liner" field. It's identical to SummaryOneLinerEQ.
func SummaryOneLiner(v string) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldEQ(FieldSummaryOneLiner, v))
}

// CreateTimeEQ applies the EQ predicate on the "create_time" field.
func CreateTimeEQ(v time.Time) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldEQ(FieldCreateTime, v))
}

// CreateTimeNEQ applies the NEQ predicate on the "create_time" field.
func CreateTimeNEQ(v time.Time) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldNEQ(FieldCreateTime, v))
}

// CreateTimeIn applies the In predicate on the "create_time" field.
func CreateTimeIn(vs ...time.Time) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldIn(FieldCreateTime, vs...))
}

// CreateTimeNotIn applies the NotIn predicate on the "create_time" field.
func CreateTimeNotIn(vs ...time.Time) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldNotIn(FieldCreateTime, vs...))
}

// CreateTimeGT applies the GT predicate on the "create_time" field.
func CreateTimeGT(v time.Time) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldGT(FieldCreateTime, v))
}

// CreateTimeGTE applies the GTE predicate on the "create_time" field.
func CreateTimeGTE(v time.Time) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldGTE(FieldCreateTime, v))
}

// CreateTimeLT applies the LT predicate on the "create_time" field.
func CreateTimeLT(v time.Time) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldLT(FieldCreateTime, v))
}

// CreateTimeLTE applies the LTE predicate on the "create_time" field.
func CreateTimeLTE(v time.Time) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldLTE(FieldCreateTime, v))
}

// UpdateTimeEQ applies the EQ predicate on the "update_time" field.
func UpdateTimeEQ(v time.Time) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldEQ(FieldUpdateTime, v))
}

// UpdateTimeNEQ applies the NEQ predicate on the "update_time" field.
func UpdateTimeNEQ(v time.Time) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldNEQ(FieldUpdateTime, v))
}

// UpdateTimeIn applies the In predicate on the "update_time" field.
func UpdateTimeIn(vs ...time.Time) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldIn(FieldUpdateTime, vs...))
}

// UpdateTimeNotIn applies the NotIn predicate on the "update_time" field.
func UpdateTimeNotIn(vs ...time.Time) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldNotIn(FieldUpdateTime, vs...))
}

// UpdateTimeGT applies the GT predicate on the "update_time" field.
func UpdateTimeGT(v time.Time) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldGT(FieldUpdateTime, v))
}

// UpdateTimeGTE applies the GTE predicate on the "update_time" field.
func UpdateTimeGTE(v time.Time) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldGTE(FieldUpdateTime, v))
}

// UpdateTimeLT applies the LT predicate on the "update_time" field.
func UpdateTimeLT(v time.Time) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldLT(FieldUpdateTime, v))
}

// UpdateTimeLTE applies the LTE predicate on the "update_time" field.
func UpdateTimeLTE(v time.Time) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldLTE(FieldUpdateTime, v))
}

// KoIDEQ applies the EQ predicate on the "ko_id" field.
func KoIDEQ(v uuid.UUID) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldEQ(FieldKoID, v))
}

// KoIDNEQ applies the NEQ predicate on the "ko_id" field.
func KoIDNEQ(v uuid.UUID) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldNEQ(FieldKoID, v))
}

// KoIDIn applies the In predicate on the "ko_id" field.
func KoIDIn(vs ...uuid.UUID) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldIn(FieldKoID, vs...))
}

// KoIDNotIn applies the NotIn predicate on the "ko_id" field.
func KoIDNotIn(vs ...uuid.UUID) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldNotIn(FieldKoID, vs...))
}

// KoTypeEQ applies the EQ predicate on the "ko_type" field.
func KoTypeEQ(v KoType) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldEQ(FieldKoType, v))
}

// KoTypeNEQ applies the NEQ predicate on the "ko_type" field.
func KoTypeNEQ(v KoType) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldNEQ(FieldKoType, v))
}

// KoTypeIn applies the In predicate on the "ko_type" field.
func KoTypeIn(vs ...KoType) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldIn(FieldKoType, vs...))
}

// KoTypeNotIn applies the NotIn predicate on the "ko_type" field.
func KoTypeNotIn(vs ...KoType) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldNotIn(FieldKoType, vs...))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldContainsFold(FieldTitle, v))
}

// SummaryTextEQ applies the EQ predicate on the "summary_text" field.
func SummaryTextEQ(v string) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldEQ(FieldSummaryText, v))
}

// SummaryTextNEQ applies the NEQ predicate on the "summary_text" field.
func SummaryTextNEQ(v string) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldNEQ(FieldSummaryText, v))
}

// SummaryTextIn applies the In predicate on the "summary_text" field.
func SummaryTextIn(vs ...string) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldIn(FieldSummaryText, vs...))
}

// SummaryTextNotIn applies the NotIn predicate on the "summary_text" field.
func SummaryTextNotIn(vs ...string) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldNotIn(FieldSummaryText, vs...))
}

// SummaryTextGT applies the GT predicate on the "summary_text" field.
func SummaryTextGT(v string) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldGT(FieldSummaryText, v))
}

// SummaryTextGTE applies the GTE predicate on the "summary_text" field.
func SummaryTextGTE(v string) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldGTE(FieldSummaryText, v))
}

// SummaryTextLT applies the LT predicate on the "summary_text" field.
func SummaryTextLT(v string) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldLT(FieldSummaryText, v))
}

// SummaryTextLTE applies the LTE predicate on the "summary_text" field.
func SummaryTextLTE(v string) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldLTE(FieldSummaryText, v))
}

// SummaryTextContains applies the Contains predicate on the "summary_text" field.
func SummaryTextContains(v string) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldContains(FieldSummaryText, v))
}

// SummaryTextHasPrefix applies the HasPrefix predicate on the "summary_text" field.
func SummaryTextHasPrefix(v string) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldHasPrefix(FieldSummaryText, v))
}

// SummaryTextHasSuffix applies the HasSuffix predicate on the "summary_text" field.
func SummaryTextHasSuffix(v string) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldHasSuffix(FieldSummaryText, v))
}

// SummaryTextIsNil applies the IsNil predicate on the "summary_text" field.
func SummaryTextIsNil() predicate.KoSummary {
	return predicate.KoSummary(sql.FieldIsNull(FieldSummaryText))
}

// SummaryTextNotNil applies the NotNil predicate on the "summary_text" field.
func SummaryTextNotNil() predicate.KoSummary {
	return predicate.KoSummary(sql.FieldNotNull(FieldSummaryText))
}

// SummaryTextEqualFold applies the EqualFold predicate on the "summary_text" field.
func SummaryTextEqualFold(v string) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldEqualFold(FieldSummaryText, v))
}

// SummaryTextContainsFold applies the ContainsFold predicate on the "summary_text" field.
func SummaryTextContainsFold(v string) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldContainsFold(FieldSummaryText, v))
}

// SummaryOneLinerEQ applies the EQ predicate on the "summary_one_liner" field.
func SummaryOneLinerEQ(v string) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldEQ(FieldSummaryOneLiner, v))
}

// SummaryOneLinerNEQ applies the NEQ predicate on the "summary_one_liner" field.
func SummaryOneLinerNEQ(v string) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldNEQ(FieldSummaryOneLiner, v))
}

// SummaryOneLinerIn applies the In predicate on the "summary_one_liner" field.
func SummaryOneLinerIn(vs ...string) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldIn(FieldSummaryOneLiner, vs...))
}

// SummaryOneLinerNotIn applies the NotIn predicate on the "summary_one_liner" field.
func SummaryOneLinerNotIn(vs ...string) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldNotIn(FieldSummaryOneLiner, vs...))
}

// SummaryOneLinerGT applies the GT predicate on the "summary_one_liner" field.
func SummaryOneLinerGT(v string) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldGT(FieldSummaryOneLiner, v))
}

// SummaryOneLinerGTE applies the GTE predicate on the "summary_one_liner" field.
func SummaryOneLinerGTE(v string) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldGTE(FieldSummaryOneLiner, v))
}

// SummaryOneLinerLT applies the LT predicate on the "summary_one_liner" field.
func SummaryOneLinerLT(v string) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldLT(FieldSummaryOneLiner, v))
}

// SummaryOneLinerLTE applies the LTE predicate on the "summary_one_liner" field.
func SummaryOneLinerLTE(v string) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldLTE(FieldSummaryOneLiner, v))
}

// SummaryOneLinerContains applies the Contains predicate on the "summary_one_liner" field.
func SummaryOneLinerContains(v string) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldContains(FieldSummaryOneLiner, v))
}

// SummaryOneLinerHasPrefix applies the HasPrefix predicate on the "summary_one_liner" field.
func SummaryOneLinerHasPrefix(v string) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldHasPrefix(FieldSummaryOneLiner, v))
}

// SummaryOneLinerHasSuffix applies the HasSuffix predicate on the "summary_one_liner" field.
func SummaryOneLinerHasSuffix(v string) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldHasSuffix(FieldSummaryOneLiner, v))
}

// SummaryOneLinerIsNil applies the IsNil predicate on the "summary_one_liner" field.
func SummaryOneLinerIsNil() predicate.KoSummary {
	return predicate.KoSummary(sql.FieldIsNull(FieldSummaryOneLiner))
}

// SummaryOneLinerNotNil applies the NotNil predicate on the "summary_one_liner" field.
func SummaryOneLinerNotNil() predicate.KoSummary {
	return predicate.KoSummary(sql.FieldNotNull(FieldSummaryOneLiner))
}

// SummaryOneLinerEqualFold applies the EqualFold predicate on the "summary_one_liner" field.
func SummaryOneLinerEqualFold(v string) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldEqualFold(FieldSummaryOneLiner, v))
}

// SummaryOneLinerContainsFold applies the ContainsFold predicate on the "summary_one_liner" field.
func SummaryOneLinerContainsFold(v string) predicate.KoSummary {
	return predicate.KoSummary(sql.FieldContainsFold(FieldSummaryOneLiner, v))
}

// HasKnowledgeObject applies the HasEdge predicate on the "knowledge_object" edge.
func HasKnowledgeObject() predicate.KoSummary {
	return predicate.KoSummary(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, KnowledgeObjectTable, KnowledgeObjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasKnowledgeObjectWith applies the HasEdge predicate on the "knowledge_object" edge with a given conditions (other predicates).
func HasKnowledgeObjectWith(preds ...predicate.KnowledgeObject) predicate.KoSummary {
	return predicate.KoSummary(func(s *sql.Selector) {
		step := newKnowledgeObjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.KoSummary) predicate.KoSummary {
	return predicate.KoSummary(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.KoSummary) predicate.KoSummary {
	return predicate.KoSummary(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.KoSummary) predicate.KoSummary {
	return predicate.KoSummary(sql.NotPredicates(p))
}
