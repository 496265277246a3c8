// Code generated by ent, DO NOT EDIT.

package digestrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fachebot/ko-digest-bot/internal/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DigestRun {
	return predicate.DigestRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DigestRun {
	return predicate.DigestRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DigestRun {
	return predicate.DigestRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DigestRun {
	return predicate.DigestRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DigestRun {
	return predicate.DigestRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DigestRun {
	return predicate.DigestRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DigestRun {
	return predicate.DigestRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DigestRun {
	return predicate.DigestRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DigestRun {
	return predicate.DigestRun(sql.FieldLTE(FieldID, id))
}

// CreateTime applies equality check predicate on the "create_time" field. It's identical to CreateTimeEQ.
func CreateTime(v time.Time) predicate.DigestRun {
	return predicate.DigestRun(sql.FieldEQ(FieldCreateTime, v))
}

// UpdateTime applies equality check predicate on the "update_time" field. It's identical to UpdateTimeEQ.
func UpdateTime(v time.Time) predicate.DigestRun {
	return predicate.DigestRun(sql.FieldEQ(FieldUpdateTime, v))
}

// SelectFrom applies equality check predicate on the "select_from" field. It's identical to SelectFromEQ.
func SelectFrom(v time.Time) predicate.DigestRun {
	return predicate.DigestRun(sql.FieldEQ(FieldSelectFrom, v))
}

// RunDate applies equality check predicate on the "run_date" field. It's identical to RunDateEQ.
func RunDate(v time.Time) predicate.DigestRun {
	return predicate.DigestRun(sql.FieldEQ(FieldRunDate, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.DigestRun {
	return predicate.DigestRun(sql.FieldEQ(FieldErrorMessage, v))
}

// CreateTimeEQ applies the EQ predicate on the "create_time" field.
func CreateTimeEQ(v time.Time) predicate.DigestRun {
	return predicate.DigestRun(sql.FieldEQ(FieldCreateTime, v))
}

// CreateTimeNEQ applies the NEQ predicate on the "create_time" field.
func CreateTimeNEQ(v time.Time) predicate.DigestRun {
	return predicate.DigestRun(sql.FieldNEQ(FieldCreateTime, v))
}

// CreateTimeIn applies the In predicate on the "create_time" field.
func CreateTimeIn(vs ...time.Time) predicate.DigestRun {
	return predicate.DigestRun(sql.FieldIn(FieldCreateTime, vs...))
}

// CreateTimeNotIn applies the NotIn predicate on the "create_time" field.
func CreateTimeNotIn(vs ...time.Time) predicate.DigestRun {
	return predicate.DigestRun(sql.FieldNotIn(FieldCreateTime, vs...))
}

// CreateTimeGT applies the GT predicate on the "create_time" field.
func CreateTimeGT(v time.Time) predicate.DigestRun {
	return predicate.DigestRun(sql.FieldGT(FieldCreateTime, v))
}

// CreateTimeGTE applies the GTE predicate on the "create_time" field.
func CreateTimeGTE(v time.Time) predicate.DigestRun {
	return predicate.DigestRun(sql.FieldGTE(FieldCreateTime, v))
}

// CreateTimeLT applies the LT predicate on the "create_time" field.
func CreateTimeLT(v time.Time) predicate.DigestRun {
	return predicate.DigestRun(sql.FieldLT(FieldCreateTime, v))
}

// CreateTimeLTE applies the LTE predicate on the "create_time" field.
func CreateTimeLTE(v time.Time) predicate.DigestRun {
	return predicate.DigestRun(sql.FieldLTE(FieldCreateTime, v))
}

// UpdateTimeEQ applies the EQ predicate on the "update_time" field.
func UpdateTimeEQ(v time.Time) predicate.DigestRun {
	return predicate.DigestRun(sql.FieldEQ(FieldUpdateTime, v))
}

// UpdateTimeNEQ applies the NEQ predicate on the "update_time" field.
func UpdateTimeNEQ(v time.Time) predicate.DigestRun {
	return predicate.DigestRun(sql.FieldNEQ(FieldUpdateTime, v))
}

// UpdateTimeIn applies the In predicate on the "update_time" field.
func UpdateTimeIn(vs ...time.Time) predicate.DigestRun {
	return predicate.DigestRun(sql.FieldIn(FieldUpdateTime, vs...))
}

// UpdateTimeNotIn applies the NotIn predicate on the "update_time" field.
func UpdateTimeNotIn(vs ...time.Time) predicate.DigestRun {
	return predicate.DigestRun(sql.FieldNotIn(FieldUpdateTime, vs...))
}

// UpdateTimeGT applies the GT predicate on the "update_time" field.
func UpdateTimeGT(v time.Time) predicate.DigestRun {
	return predicate.DigestRun(sql.FieldGT(FieldUpdateTime, v))
}

// UpdateTimeGTE applies the GTE predicate on the "update_time" field.
func UpdateTimeGTE(v time.Time) predicate.DigestRun {
	return predicate.DigestRun(sql.FieldGTE(FieldUpdateTime, v))
}

// UpdateTimeLT applies the LT predicate on the "update_time" field.
func UpdateTimeLT(v time.Time) predicate.DigestRun {
	return predicate.DigestRun(sql.FieldLT(FieldUpdateTime, v))
}

// UpdateTimeLTE applies the LTE predicate on the "update_time" field.
func UpdateTimeLTE(v time.Time) predicate.DigestRun {
	return predicate.DigestRun(sql.FieldLTE(FieldUpdateTime, v))
}

// SelectFromEQ applies the EQ predicate on the "select_from" field.
func SelectFromEQ(v time.Time) predicate.DigestRun {
	return predicate.DigestRun(sql.FieldEQ(FieldSelectFrom, v))
}

// SelectFromNEQ applies the NEQ predicate on the "select_from" field.
func SelectFromNEQ(v time.Time) predicate.DigestRun {
	return predicate.DigestRun(sql.FieldNEQ(FieldSelectFrom, v))
}

// SelectFromIn applies the In predicate on the "select_from" field.
func SelectFromIn(vs ...time.Time) predicate.DigestRun {
	return predicate.DigestRun(sql.FieldIn(FieldSelectFrom, vs...))
}

// SelectFromNotIn applies the NotIn predicate on the "select_from" field.
func SelectFromNotIn(vs ...time.Time) predicate.DigestRun {
	return predicate.DigestRun(sql.FieldNotIn(FieldSelectFrom, vs...))
}

// SelectFromGT applies the GT predicate on the "select_from" field.
func SelectFromGT(v time.Time) predicate.DigestRun {
	return predicate.DigestRun(sql.FieldGT(FieldSelectFrom, v))
}

// SelectFromGTE applies the GTE predicate on the "select_from" field.
func SelectFromGTE(v time.Time) predicate.DigestRun {
	return predicate.DigestRun(sql.FieldGTE(FieldSelectFrom, v))
}

// SelectFromLT applies the LT predicate on the "select_from" field.
func SelectFromLT(v time.Time) predicate.DigestRun {
	return predicate.DigestRun(sql.FieldLT(FieldSelectFrom, v))
}

// SelectFromLTE applies the LTE predicate on the "select_from" field.
func SelectFromLTE(v time.Time) predicate.DigestRun {
	return predicate.DigestRun(sql.FieldLTE(FieldSelectFrom, v))
}

// RunDateEQ applies the EQ predicate on the "run_date" field.
func RunDateEQ(v time.Time) predicate.DigestRun {
	return predicate.DigestRun(sql.FieldEQ(FieldRunDate, v))
}

// RunDateNEQ applies the NEQ predicate on the "run_date" field.
func RunDateNEQ(v time.Time) predicate.DigestRun {
	return predicate.DigestRun(sql.FieldNEQ(FieldRunDate, v))
}

// RunDateIn applies the In predicate on the "run_date" field.
func RunDateIn(vs ...time.Time) predicate.DigestRun {
	return predicate.DigestRun(sql.FieldIn(FieldRunDate, vs...))
}

// RunDateNotIn applies the NotIn predicate on the "run_date" field.
func RunDateNotIn(vs ...time.Time) predicate.DigestRun {
	return predicate.DigestRun(sql.FieldNotIn(FieldRunDate, vs...))
}

// RunDateGT applies the GT predicate on the "run_date" field.
func RunDateGT(v time.Time) predicate.DigestRun {
	return predicate.DigestRun(sql.FieldGT(FieldRunDate, v))
}

// RunDateGTE applies the GTE predicate on the "run_date" field.
func RunDateGTE(v time.Time) predicate.DigestRun {
	return predicate.DigestRun(sql.FieldGTE(FieldRunDate, v))
}

// RunDateLT applies the LT predicate on the "run_date" field.
func RunDateLT(v time.Time) predicate.DigestRun {
	return predicate.DigestRun(sql.FieldLT(FieldRunDate, v))
}

// RunDateLTE applies the LTE predicate on the "run_date" field.
func RunDateLTE(v time.Time) predicate.DigestRun {
	return predicate.DigestRun(sql.FieldLTE(FieldRunDate, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.DigestRun {
	return predicate.DigestRun(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.DigestRun {
	return predicate.DigestRun(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.DigestRun {
	return predicate.DigestRun(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.DigestRun {
	return predicate.DigestRun(sql.FieldNotIn(FieldStatus, vs...))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.DigestRun {
	return predicate.DigestRun(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.DigestRun {
	return predicate.DigestRun(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.DigestRun {
	return predicate.DigestRun(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.DigestRun {
	return predicate.DigestRun(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.DigestRun {
	return predicate.DigestRun(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.DigestRun {
	return predicate.DigestRun(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.DigestRun {
	return predicate.DigestRun(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.DigestRun {
	return predicate.DigestRun(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.DigestRun {
	return predicate.DigestRun(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.DigestRun {
	return predicate.DigestRun(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.DigestRun {
	return predicate.DigestRun(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.DigestRun {
	return predicate.DigestRun(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.DigestRun {
	return predicate.DigestRun(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.DigestRun {
	return predicate.DigestRun(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.DigestRun {
	return predicate.DigestRun(sql.FieldContainsFold(FieldErrorMessage, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DigestRun) predicate.DigestRun {
	return predicate.DigestRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DigestRun) predicate.DigestRun {
	return predicate.DigestRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DigestRun) predicate.DigestRun {
	return predicate.DigestRun(sql.NotPredicates(p))
}
