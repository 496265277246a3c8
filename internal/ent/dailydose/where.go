// Code generated by ent, DO NOT EDIT.

package dailydose

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fachebot/ko-digest-bot/internal/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldLTE(FieldID, id))
}

// CreateTime applies equality check predicate on the "create_time" field. It's identical to CreateTimeEQ.
func CreateTime(v time.Time) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldEQ(FieldCreateTime, v))
}

// UpdateTime applies equality check predicate on the "update_time" field. It's identical to UpdateTimeEQ.
func UpdateTime(v time.Time) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldEQ(FieldUpdateTime, v))
}

// Quote applies equality check predicate on the "quote" field. It's identical to QuoteEQ.
func Quote(v string) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldEQ(FieldQuote, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldEQ(FieldSource, v))
}

// DdType applies equality check predicate on the "dd_type" field. It's identical to DdTypeEQ.
func DdType(v string) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldEQ(FieldDdType, v))
}

// CreateTimeEQ applies the EQ predicate on the "create_time" field.
func CreateTimeEQ(v time.Time) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldEQ(FieldCreateTime, v))
}

// CreateTimeNEQ applies the NEQ predicate on the "create_time" field.
func CreateTimeNEQ(v time.Time) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldNEQ(FieldCreateTime, v))
}

// CreateTimeIn applies the In predicate on the "create_time" field.
func CreateTimeIn(vs ...time.Time) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldIn(FieldCreateTime, vs...))
}

// CreateTimeNotIn applies the NotIn predicate on the "create_time" field.
func CreateTimeNotIn(vs ...time.Time) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldNotIn(FieldCreateTime, vs...))
}

// CreateTimeGT applies the GT predicate on the "create_time" field.
func CreateTimeGT(v time.Time) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldGT(FieldCreateTime, v))
}

// CreateTimeGTE applies the GTE predicate on the "create_time" field.
func CreateTimeGTE(v time.Time) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldGTE(FieldCreateTime, v))
}

// CreateTimeLT applies the LT predicate on the "create_time" field.
func CreateTimeLT(v time.Time) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldLT(FieldCreateTime, v))
}

// CreateTimeLTE applies the LTE predicate on the "create_time" field.
func CreateTimeLTE(v time.Time) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldLTE(FieldCreateTime, v))
}

// UpdateTimeEQ applies the EQ predicate on the "update_time" field.
func UpdateTimeEQ(v time.Time) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldEQ(FieldUpdateTime, v))
}

// UpdateTimeNEQ applies the NEQ predicate on the "update_time" field.
func UpdateTimeNEQ(v time.Time) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldNEQ(FieldUpdateTime, v))
}

// UpdateTimeIn applies the In predicate on the "update_time" field.
func UpdateTimeIn(vs ...time.Time) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldIn(FieldUpdateTime, vs...))
}

// UpdateTimeNotIn applies the NotIn predicate on the "update_time" field.
func UpdateTimeNotIn(vs ...time.Time) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldNotIn(FieldUpdateTime, vs...))
}

// UpdateTimeGT applies the GT predicate on the "update_time" field.
func UpdateTimeGT(v time.Time) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldGT(FieldUpdateTime, v))
}

// UpdateTimeGTE applies the GTE predicate on the "update_time" field.
func UpdateTimeGTE(v time.Time) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldGTE(FieldUpdateTime, v))
}

// UpdateTimeLT applies the LT predicate on the "update_time" field.
func UpdateTimeLT(v time.Time) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldLT(FieldUpdateTime, v))
}

// UpdateTimeLTE applies the LTE predicate on the "update_time" field.
func UpdateTimeLTE(v time.Time) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldLTE(FieldUpdateTime, v))
}

// QuoteEQ applies the EQ predicate on the "quote" field.
func QuoteEQ(v string) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldEQ(FieldQuote, v))
}

// QuoteNEQ applies the NEQ predicate on the "quote" field.
func QuoteNEQ(v string) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldNEQ(FieldQuote, v))
}

// QuoteIn applies the In predicate on the "quote" field.
func QuoteIn(vs ...string) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldIn(FieldQuote, vs...))
}

// QuoteNotIn applies the NotIn predicate on the "quote" field.
func QuoteNotIn(vs ...string) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldNotIn(FieldQuote, vs...))
}

// QuoteGT applies the GT predicate on the "quote" field.
func QuoteGT(v string) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldGT(FieldQuote, v))
}

// QuoteGTE applies the GTE predicate on the "quote" field.
func QuoteGTE(v string) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldGTE(FieldQuote, v))
}

// QuoteLT applies the LT predicate on the "quote" field.
func QuoteLT(v string) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldLT(FieldQuote, v))
}

// QuoteLTE applies the LTE predicate on the "quote" field.
func QuoteLTE(v string) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldLTE(FieldQuote, v))
}

// QuoteContains applies the Contains predicate on the "quote" field.
func QuoteContains(v string) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldContains(FieldQuote, v))
}

// QuoteHasPrefix applies the HasPrefix predicate on the "quote" field.
func QuoteHasPrefix(v string) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldHasPrefix(FieldQuote, v))
}

// QuoteHasSuffix applies the HasSuffix predicate on the "quote" field.
func QuoteHasSuffix(v string) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldHasSuffix(FieldQuote, v))
}

// QuoteEqualFold applies the EqualFold predicate on the "quote" field.
func QuoteEqualFold(v string) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldEqualFold(FieldQuote, v))
}

// QuoteContainsFold applies the ContainsFold predicate on the "quote" field.
func QuoteContainsFold(v string) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldContainsFold(FieldQuote, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldContainsFold(FieldSource, v))
}

// DdTypeEQ applies the EQ predicate on the "dd_type" field.
func DdTypeEQ(v string) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldEQ(FieldDdType, v))
}

// DdTypeNEQ applies the NEQ predicate on the "dd_type" field.
func DdTypeNEQ(v string) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldNEQ(FieldDdType, v))
}

// DdTypeIn applies the In predicate on the "dd_type" field.
func DdTypeIn(vs ...string) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldIn(FieldDdType, vs...))
}

// DdTypeNotIn applies the NotIn predicate on the "dd_type" field.
func DdTypeNotIn(vs ...string) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldNotIn(FieldDdType, vs...))
}

// DdTypeGT applies the GT predicate on the "dd_type" field.
func DdTypeGT(v string) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldGT(FieldDdType, v))
}

// DdTypeGTE applies the GTE predicate on the "dd_type" field.
func DdTypeGTE(v string) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldGTE(FieldDdType, v))
}

// DdTypeLT applies the LT predicate on the "dd_type" field.
func DdTypeLT(v string) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldLT(FieldDdType, v))
}

// DdTypeLTE applies the LTE predicate on the "dd_type" field.
func DdTypeLTE(v string) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldLTE(FieldDdType, v))
}

// DdTypeContains applies the Contains predicate on the "dd_type" field.
func DdTypeContains(v string) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldContains(FieldDdType, v))
}

// DdTypeHasPrefix applies the HasPrefix predicate on the "dd_type" field.
func DdTypeHasPrefix(v string) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldHasPrefix(FieldDdType, v))
}

// DdTypeHasSuffix applies the HasSuffix predicate on the "dd_type" field.
func DdTypeHasSuffix(v string) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldHasSuffix(FieldDdType, v))
}

// DdTypeEqualFold applies the EqualFold predicate on the "dd_type" field.
func DdTypeEqualFold(v string) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldEqualFold(FieldDdType, v))
}

// DdTypeContainsFold applies the ContainsFold predicate on the "dd_type" field.
func DdTypeContainsFold(v string) predicate.DailyDose {
	return predicate.DailyDose(sql.FieldContainsFold(FieldDdType, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DailyDose) predicate.DailyDose {
	return predicate.DailyDose(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DailyDose) predicate.DailyDose {
	return predicate.DailyDose(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DailyDose) predicate.DailyDose {
	return predicate.DailyDose(sql.NotPredicates(p))
}
